package announcement

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagCourseUsage = "the id of the course to announce to"

	flagTitle      = "title"
	flagTitleUsage = "the announcement title"

	flagContent      = "content"
	flagContentUsage = "the announcement content"
)

// CommandCreate is the `announcement create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	cli.CourseInputs
	Title   string
	Content string
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.CourseInputs.Flags(fs, flagCourseUsage)
	fs.StringVar(&cmd.inputs.Title, flagTitle, "", flagTitleUsage)
	fs.StringVar(&cmd.inputs.Content, flagContent, "", flagContentUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin, user.RoleTeacher); err != nil {
		return err
	}

	course, err := cmd.inputs.ResolveCourse(ctx, ui, clients.LMS)
	if err != nil {
		return err
	}

	req := lms.AnnouncementRequest{
		Course:  course.ID,
		Title:   cmd.inputs.Title,
		Content: cmd.inputs.Content,
	}
	if err := lms.Validate(req); err != nil {
		return err
	}

	announcement, err := clients.LMS.CreateAnnouncement(ctx, req)
	if err != nil {
		return cli.NewPrivileged("failed to create announcement", err)
	}

	ui.Print(terminal.NewTextLog("Successfully announced %s to the students of %s", announcement.Title, cli.CourseOption(course)))
	return nil
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Title == "" {
		questions = append(questions, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Announcement Title"},
			Validate: survey.Required,
		})
	}

	if i.Content == "" {
		questions = append(questions, &survey.Question{
			Name:     "content",
			Prompt:   &survey.Multiline{Message: "Announcement Content"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
