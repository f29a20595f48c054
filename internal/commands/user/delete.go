package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagUser      = "user"
	flagUserShort = "u"
	flagUserUsage = "Specify the ID(s) of the users to delete"
)

// CommandDelete is the `user delete` command
type CommandDelete struct {
	users []int
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	fs.IntSliceVarP(&cmd.users, flagUser, flagUserShort, nil, flagUserUsage)
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin); err != nil {
		return err
	}

	found, err := clients.LMS.Users(ctx)
	if err != nil {
		return err
	}

	users, err := cmd.selectUsers(ui, profile.User().Username, found)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		ui.Print(terminal.NewTextLog("No users to delete"))
		return nil
	}

	usernames := make([]string, len(users))
	for i, u := range users {
		usernames[i] = u.Username
	}

	proceed, err := ui.Confirm("Are you sure you want to delete %d users (%s)?", len(users), strings.Join(usernames, ", "))
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, deleteRow(userOutput{u, clients.LMS.DeleteUser(ctx, u.ID)}))
	}

	headers := make([]string, 0, len(Headers)+2)
	headers = append(headers, Headers...)
	headers = append(headers, headerDeleted, headerDetails)

	ui.Print(terminal.NewTableLog(fmt.Sprintf("Deleted users (%d)", len(rows)), headers, rows...))
	return nil
}

// selectUsers never offers the logged in user for deletion
func (cmd *CommandDelete) selectUsers(ui terminal.UI, self string, found []lms.User) ([]lms.User, error) {
	usersByID := make(map[int]lms.User, len(found))
	candidates := make([]lms.User, 0, len(found))
	for _, u := range found {
		if u.Username == self {
			continue
		}
		usersByID[u.ID] = u
		candidates = append(candidates, u)
	}

	if len(cmd.users) > 0 {
		users := make([]lms.User, 0, len(cmd.users))
		for _, id := range cmd.users {
			u, ok := usersByID[id]
			if !ok {
				return nil, fmt.Errorf("failed to find user #%d", id)
			}
			users = append(users, u)
		}
		return users, nil
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	usersByOption := make(map[string]lms.User, len(candidates))
	options := make([]string, len(candidates))
	for i, u := range candidates {
		option := fmt.Sprintf("%s (#%d, %s)", u.Username, u.ID, u.RoleName)
		usersByOption[option] = u
		options[i] = option
	}

	var selections []string
	if err := ui.AskOne(&selections, &survey.MultiSelect{Message: "Which user(s) would you like to delete?", Options: options}); err != nil {
		return nil, fmt.Errorf("failed to select user(s): %w", err)
	}

	users := make([]lms.User, len(selections))
	for i, selection := range selections {
		users[i] = usersByOption[selection]
	}
	return users, nil
}
