package lesson

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `lesson delete` command
type CommandDelete struct {
	inputs lessonInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.inputs.ID, flagID, 0, "the id of the lesson to delete")
}

// Inputs is the command inputs
func (cmd *CommandDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin, user.RoleTeacher); err != nil {
		return err
	}

	proceed, err := ui.Confirm("Are you sure you want to delete lesson #%d?", cmd.inputs.ID)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.LMS.DeleteLesson(ctx, cmd.inputs.ID); err != nil {
		return cli.NewPrivileged("failed to delete lesson", err)
	}

	ui.Print(terminal.NewTextLog("Successfully deleted lesson #%d", cmd.inputs.ID))
	return nil
}

type lessonInputs struct {
	ID int
}

func (i *lessonInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	return cli.ResolveID(ui, &i.ID, "Lesson ID")
}
