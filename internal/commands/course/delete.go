package course

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `course delete` command
type CommandDelete struct {
	inputs cli.CourseInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs, flagCourseUsage)
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin, user.RoleTeacher); err != nil {
		return err
	}

	course, err := cmd.inputs.ResolveCourse(ctx, ui, clients.LMS)
	if err != nil {
		return err
	}

	proceed, err := ui.Confirm(
		"Are you sure you want to delete %s along with its %d modules and %d lessons?",
		cli.CourseOption(course),
		len(course.Modules),
		course.Lessons(),
	)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.LMS.DeleteCourse(ctx, course.ID); err != nil {
		return cli.NewPrivileged("failed to delete course", err)
	}

	ui.Print(terminal.NewTextLog("Successfully deleted course %s", cli.CourseOption(course)))
	return nil
}
