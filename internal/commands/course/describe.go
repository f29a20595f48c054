package course

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDescribe is the `course describe` command
type CommandDescribe struct {
	inputs cli.CourseInputs
}

// Flags is the command flags
func (cmd *CommandDescribe) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs, flagCourseUsage)
}

// Handler is the command handler
func (cmd *CommandDescribe) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	course, err := cmd.inputs.ResolveCourse(ctx, ui, clients.LMS)
	if err != nil {
		return err
	}

	logs := []terminal.Log{
		terminal.NewTextLog("%s (#%d)", course.Title, course.ID),
		terminal.NewListLog("Details",
			"Category: "+course.Category,
			"Instructor: "+course.InstructorName,
			"Description: "+course.Description,
		),
	}

	if len(course.Modules) == 0 {
		logs = append(logs, terminal.NewTextLog("This course has no modules yet"))
	} else {
		logs = append(logs, terminal.NewTableLog(
			fmt.Sprintf("Contents (%d modules, %d lessons)", len(course.Modules), course.Lessons()),
			contentHeaders,
			contentRows(course)...,
		))
	}

	ui.Print(logs...)
	return nil
}
