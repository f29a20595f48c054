package lesson

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandComplete is the `lesson complete` command
type CommandComplete struct {
	inputs lessonInputs
}

// Flags is the command flags
func (cmd *CommandComplete) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.inputs.ID, flagID, 0, "the id of the lesson to mark as completed")
}

// Inputs is the command inputs
func (cmd *CommandComplete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandComplete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleStudent); err != nil {
		return err
	}

	completion, err := clients.LMS.CompleteLesson(ctx, cmd.inputs.ID)
	if err != nil {
		return cli.NewPrivileged("failed to complete lesson", err)
	}

	ui.Print(terminal.NewTextLog("Lesson #%d marked as completed at %s", completion.Lesson, completion.CompletedAt.UTC().Format(terminal.TimeFormat)))
	return nil
}
