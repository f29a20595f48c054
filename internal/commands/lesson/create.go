package lesson

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandCreate is the `lesson create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	Module   int
	Title    string
	Content  string
	VideoURL string
	Order    int
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.inputs.Module, flagModule, 0, flagModuleUsage)
	fs.StringVar(&cmd.inputs.Title, flagTitle, "", flagTitleUsage)
	fs.StringVar(&cmd.inputs.Content, flagContent, "", flagContentUsage)
	fs.StringVar(&cmd.inputs.VideoURL, flagVideoURL, "", flagVideoURLUsage)
	fs.IntVar(&cmd.inputs.Order, flagOrder, 1, flagOrderUsage)
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

	req := lms.LessonRequest(cmd.inputs)
	if req.Content == "" {
		req.Content = lms.DefaultLessonContent
	}
	if err := lms.Validate(req); err != nil {
		return err
	}

	lesson, err := clients.LMS.CreateLesson(ctx, req)
	if err != nil {
		return cli.NewPrivileged("failed to create lesson", err)
	}

	ui.Print(terminal.NewTextLog("Successfully created lesson %s (#%d) in module #%d", lesson.Title, lesson.ID, lesson.Module))
	return nil
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if err := cli.ResolveID(ui, &i.Module, "Module ID"); err != nil {
		return err
	}

	var questions []*survey.Question

	if i.Title == "" {
		questions = append(questions, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Lesson Title"},
			Validate: survey.Required,
		})
	}

	if i.Content == "" {
		questions = append(questions, &survey.Question{
			Name:   "content",
			Prompt: &survey.Multiline{Message: "Lesson Content"},
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
