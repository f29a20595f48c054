package course

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"
	"github.com/smartlms/smartlms-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

// CommandList is the `course list` command
type CommandList struct {
	categories []string
	filter     *flags.EnumSet
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	cmd.filter = flags.NewEnumSet(&cmd.categories, lms.Categories)
	fs.Var(cmd.filter, flagCategory, flagCategoryListUsage)
}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	courses, err := clients.LMS.Courses(ctx)
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0, len(courses))
	for _, course := range courses {
		if cmd.filter != nil && !cmd.filter.Contains(course.Category) {
			continue
		}
		rows = append(rows, courseRow(course))
	}

	if len(rows) == 0 {
		ui.Print(terminal.NewTextLog("No available courses to show"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Available courses (%d)", len(rows)),
		courseHeaders,
		rows...,
	))
	return nil
}
