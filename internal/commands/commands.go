package commands

import (
	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/commands/announcement"
	"github.com/smartlms/smartlms-cli/internal/commands/certificate"
	"github.com/smartlms/smartlms-cli/internal/commands/comment"
	"github.com/smartlms/smartlms-cli/internal/commands/course"
	"github.com/smartlms/smartlms-cli/internal/commands/dashboard"
	"github.com/smartlms/smartlms-cli/internal/commands/enrollment"
	"github.com/smartlms/smartlms-cli/internal/commands/lesson"
	"github.com/smartlms/smartlms-cli/internal/commands/login"
	"github.com/smartlms/smartlms-cli/internal/commands/logout"
	"github.com/smartlms/smartlms-cli/internal/commands/module"
	"github.com/smartlms/smartlms-cli/internal/commands/profile"
	"github.com/smartlms/smartlms-cli/internal/commands/register"
	"github.com/smartlms/smartlms-cli/internal/commands/user"
	"github.com/smartlms/smartlms-cli/internal/commands/whoami"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in to SmartLMS with your username and password",
		Help: `Log in to SmartLMS with your username and password

The session tokens are stored in your CLI profile and refreshed automatically
once the access token expires. Logging in as another user terminates the
existing session.`,
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help:        "Displays the logged in user, their role and when the access token expires.",
	}
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Aliases:     []string{"signup"},
		Description: "Create a new SmartLMS account",
		Help: `Create a new SmartLMS account

The "--role" flag only requests a role: the SmartLMS server decides which role
is granted to the new account.`,
	}

	Dashboard = cli.CommandDefinition{
		Command:     &dashboard.Command{},
		Use:         "dashboard",
		Aliases:     []string{"home"},
		Description: "Display an overview tailored to your role",
		Help: `Display an overview tailored to your role

Students see their enrollments, progress and certificates. Teachers see the
courses they teach. Admins see the users and courses of the platform.`,
	}

	Course = cli.CommandDefinition{
		Use:         "course",
		Aliases:     []string{"courses"},
		Description: "Browse and manage SmartLMS courses",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "course list",
				Description: "List the available courses",
				Command:     &course.CommandList{},
			},
			{
				Use:         "describe",
				Display:     "course describe",
				Description: "Display a course along with its modules and lessons",
				Command:     &course.CommandDescribe{},
			},
			{
				Use:         "create",
				Display:     "course create",
				Description: "Create a new course",
				Help:        "Only available to Admin and Teacher users.",
				Command:     &course.CommandCreate{},
			},
			{
				Use:         "build",
				Display:     "course build",
				Description: "Create a course along with its modules and lessons from an outline file",
				Help: `Create a course along with its modules and lessons from an outline file

The outline is a YAML file describing the course title, description and
category followed by its modules, each listing its lessons in order:

  title: Intro to Go
  description: Learn the basics of Go
  category: Programming
  modules:
    - title: Getting started
      lessons:
        - title: Installing Go
          video_url: https://example.com/install.mp4
        - title: Hello, world
          content: Write your first program

Only available to Admin and Teacher users.`,
				Command: &course.CommandBuild{},
			},
			{
				Use:         "delete",
				Display:     "course delete",
				Description: "Delete a course along with its modules and lessons",
				Help:        "Only available to Admin and Teacher users.",
				Command:     &course.CommandDelete{},
			},
		},
	}

	Module = cli.CommandDefinition{
		Use:         "module",
		Aliases:     []string{"modules"},
		Description: "Manage the modules of your courses",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "create",
				Display:     "module create",
				Description: "Add a module to a course",
				Command:     &module.CommandCreate{},
			},
			{
				Use:         "delete",
				Display:     "module delete",
				Description: "Delete a module along with its lessons",
				Command:     &module.CommandDelete{},
			},
		},
	}

	Lesson = cli.CommandDefinition{
		Use:         "lesson",
		Aliases:     []string{"lessons"},
		Description: "Manage and complete lessons",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "create",
				Display:     "lesson create",
				Description: "Add a lesson to a module",
				Command:     &lesson.CommandCreate{},
			},
			{
				Use:         "delete",
				Display:     "lesson delete",
				Description: "Delete a lesson",
				Command:     &lesson.CommandDelete{},
			},
			{
				Use:         "complete",
				Display:     "lesson complete",
				Description: "Mark a lesson as completed",
				Help:        "Only available to Student users. Completing every lesson of a course earns a certificate.",
				Command:     &lesson.CommandComplete{},
			},
		},
	}

	Enroll = cli.CommandDefinition{
		Command:     &enrollment.CommandEnroll{},
		Use:         "enroll",
		Description: "Enroll in a course",
		Help:        "Only available to Student users.",
	}

	Enrollment = cli.CommandDefinition{
		Use:         "enrollment",
		Aliases:     []string{"enrollments"},
		Description: "Track your course enrollments",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "enrollment list",
				Description: "List your enrollments along with their progress",
				Command:     &enrollment.CommandList{},
			},
		},
	}

	Certificate = cli.CommandDefinition{
		Use:         "certificate",
		Aliases:     []string{"certificates"},
		Description: "View the certificates of the courses you completed",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "certificate list",
				Description: "List your certificates",
				Command:     &certificate.CommandList{},
			},
			{
				Use:         "show",
				Display:     "certificate show",
				Description: "Display a certificate of completion",
				Command:     &certificate.CommandShow{},
			},
		},
	}

	Announcement = cli.CommandDefinition{
		Use:         "announcement",
		Aliases:     []string{"announcements"},
		Description: "Post announcements to the students of a course",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "create",
				Display:     "announcement create",
				Description: "Post an announcement to a course",
				Help:        "Only available to Admin and Teacher users.",
				Command:     &announcement.CommandCreate{},
			},
		},
	}

	Comment = cli.CommandDefinition{
		Use:         "comment",
		Aliases:     []string{"comments"},
		Description: "Discuss lessons",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "create",
				Display:     "comment create",
				Description: "Comment on a lesson",
				Command:     &comment.CommandCreate{},
			},
		},
	}

	User = cli.CommandDefinition{
		Use:         "user",
		Aliases:     []string{"users"},
		Description: "Manage the users of SmartLMS",
		Help:        "Only available to Admin users.",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "user list",
				Description: "List the SmartLMS users",
				Command:     &user.CommandList{},
			},
			{
				Use:         "delete",
				Display:     "user delete",
				Description: "Delete SmartLMS users",
				Help: `Delete SmartLMS users

You can remove multiple users at once with the "--user" flag. You can only
specify these users using their ID values. The logged in user cannot be deleted.`,
				Command: &user.CommandDelete{},
			},
		},
	}

	Profile = cli.CommandDefinition{
		Use:         "profile",
		Aliases:     []string{"profiles"},
		Description: "Manage the profiles of your local CLI environment",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "profile list",
				Description: "List the profiles of your local CLI environment",
				Command:     &profile.CommandList{},
			},
		},
	}
)
