package register

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagUsername      = "username"
	flagUsernameShort = "u"
	flagUsernameUsage = "the username of the new account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "the password of the new account"

	flagEmail      = "email"
	flagEmailUsage = "the email address of the new account"

	flagFirstName      = "first-name"
	flagFirstNameUsage = "the first name of the new account"

	flagLastName      = "last-name"
	flagLastNameUsage = "the last name of the new account"

	flagRole      = "role"
	flagRoleUsage = `request a role for the new account, the server decides which role is granted (Allowed values: "Student", "Teacher")`
)

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Username, flagUsername, flagUsernameShort, "", flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.Email, flagEmail, "", flagEmailUsage)
	fs.StringVar(&cmd.inputs.FirstName, flagFirstName, "", flagFirstNameUsage)
	fs.StringVar(&cmd.inputs.LastName, flagLastName, "", flagLastNameUsage)
	fs.StringVar(&cmd.inputs.Role, flagRole, "", flagRoleUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	registration := lms.Registration(cmd.inputs)
	if err := lms.Validate(registration); err != nil {
		return err
	}

	created, err := clients.LMS.Register(ctx, registration)
	if err != nil {
		return cli.NewPrivileged("failed to register", err)
	}

	ui.Print(terminal.NewTextLog("Successfully registered %s with role %s", created.Username, created.RoleName))

	if registration.Role != "" && registration.Role != created.RoleName {
		ui.Print(terminal.NewWarningLog("The requested role %s was not granted", registration.Role))
	}
	return nil
}
