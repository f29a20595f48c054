package user

import (
	"context"
	"fmt"
	"sort"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"
	"github.com/smartlms/smartlms-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagRole      = "role"
	flagRoleUsage = `Filter the users by role (Allowed values: "Admin", "Teacher", "Student")`
)

var roles = []string{string(user.RoleAdmin), string(user.RoleTeacher), string(user.RoleStudent)}

// CommandList is the `user list` command
type CommandList struct {
	roles  []string
	filter *flags.EnumSet
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	cmd.filter = flags.NewEnumSet(&cmd.roles, roles)
	fs.Var(cmd.filter, flagRole, flagRoleUsage)
}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin); err != nil {
		return err
	}

	users, err := clients.LMS.Users(ctx)
	if err != nil {
		return err
	}

	found := make([]lms.User, 0, len(users))
	for _, u := range users {
		if cmd.filter == nil || cmd.filter.Contains(u.RoleName) {
			found = append(found, u)
		}
	}

	if len(found) == 0 {
		ui.Print(terminal.NewTextLog("No available users to show"))
		return nil
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].ID < found[j].ID })

	rows := make([]map[string]interface{}, 0, len(found))
	for _, u := range found {
		rows = append(rows, Row(u))
	}

	ui.Print(terminal.NewTableLog(fmt.Sprintf("Users (%d)", len(rows)), Headers, rows...))
	return nil
}
