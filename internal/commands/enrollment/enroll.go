package enrollment

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandEnroll is the `enroll` command
type CommandEnroll struct {
	inputs cli.CourseInputs
}

// Flags is the command flags
func (cmd *CommandEnroll) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs, "the id of the course to enroll in")
}

// Handler is the command handler
func (cmd *CommandEnroll) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleStudent); err != nil {
		return err
	}

	course, err := cmd.inputs.ResolveCourse(ctx, ui, clients.LMS)
	if err != nil {
		return err
	}

	if _, err := clients.LMS.Enroll(ctx, course.ID); err != nil {
		return cli.NewPrivileged("failed to enroll", err)
	}

	ui.Print(terminal.NewTextLog("Successfully enrolled in %s", cli.CourseOption(course)))
	return nil
}
