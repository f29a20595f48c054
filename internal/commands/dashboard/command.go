package dashboard

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

// Command is the `dashboard` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireLogin(profile); err != nil {
		return err
	}

	u := profile.User()

	var logs []terminal.Log
	var err error

	switch u.Role {
	case user.RoleStudent:
		logs, err = studentDashboard(ctx, clients)
	case user.RoleTeacher:
		logs, err = teacherDashboard(ctx, u, clients)
	case user.RoleAdmin:
		logs, err = adminDashboard(ctx, clients)
	default:
		return cli.ErrAccessDenied{}
	}
	if err != nil {
		return err
	}

	ui.Print(append([]terminal.Log{terminal.NewTextLog("Welcome back, %s (%s)", u.DisplayName(), u.Role)}, logs...)...)
	return nil
}
