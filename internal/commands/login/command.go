package login

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Username, flagUsername, flagUsernameShort, "", flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	existingUser := profile.User()

	if profile.Session().AccessToken != "" && existingUser.Username != "" && existingUser.Username != cmd.inputs.Username {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s (%s), would you like to proceed?",
			existingUser.Username,
			existingUser.Role,
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	session, err := clients.LMS.Authenticate(ctx, cmd.inputs.Username, cmd.inputs.Password)
	if err != nil {
		return cli.NewPrivileged("failed to authenticate", err)
	}

	profile.ClearSession()
	profile.SetSession(session)

	me, err := clients.LMS.UserProfile(ctx)
	if err != nil {
		profile.ClearSession()
		return cli.NewPrivileged("failed to fetch the user profile", err)
	}

	loggedIn := user.User{
		Username:  me.Username,
		FirstName: me.FirstName,
		LastName:  me.LastName,
		Role:      user.Role(me.RoleName),
	}
	profile.SetUser(loggedIn)

	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged in as %s (%s)", loggedIn.DisplayName(), loggedIn.Role))
	return nil
}
