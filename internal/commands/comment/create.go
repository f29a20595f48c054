package comment

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
	flagLesson      = "lesson"
	flagLessonUsage = "the id of the lesson to comment on"

	flagText      = "text"
	flagTextUsage = "the comment text"
)

// CommandCreate is the `comment create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	Lesson int
	Text   string
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.inputs.Lesson, flagLesson, 0, flagLessonUsage)
	fs.StringVar(&cmd.inputs.Text, flagText, "", flagTextUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireLogin(profile); err != nil {
		return err
	}

	req := lms.CommentRequest(cmd.inputs)
	if err := lms.Validate(req); err != nil {
		return err
	}

	comment, err := clients.LMS.CreateComment(ctx, req)
	if err != nil {
		return cli.NewPrivileged("failed to post comment", err)
	}

	ui.Print(terminal.NewTextLog("Successfully posted comment #%d on lesson #%d", comment.ID, comment.Lesson))
	return nil
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if err := cli.ResolveID(ui, &i.Lesson, "Lesson ID"); err != nil {
		return err
	}

	if i.Text == "" {
		return ui.AskOne(&i.Text, &survey.Multiline{Message: "Comment"}, survey.WithValidator(survey.Required))
	}
	return nil
}
