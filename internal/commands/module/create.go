package module

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagTitle      = "title"
	flagTitleUsage = "the module title"

	flagOrder      = "order"
	flagOrderUsage = "the position of the module within the course, defaults to after the last module"

	flagCourseUsage = "the id of the course to add the module to"

	flagID      = "id"
	flagIDUsage = "the id of the module to delete"
)

// CommandCreate is the `module create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	cli.CourseInputs
	Title string
	Order int
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.CourseInputs.Flags(fs, flagCourseUsage)
	fs.StringVar(&cmd.inputs.Title, flagTitle, "", flagTitleUsage)
	fs.IntVar(&cmd.inputs.Order, flagOrder, 0, flagOrderUsage)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin, user.RoleTeacher); err != nil {
		return err
	}

	course, err := cmd.inputs.ResolveCourse(ctx, ui, clients.LMS)
	if err != nil {
		return err
	}

	order := cmd.inputs.Order
	if order == 0 {
		order = nextOrder(course)
	}

	req := lms.ModuleRequest{Course: course.ID, Title: cmd.inputs.Title, Order: order}
	if err := lms.Validate(req); err != nil {
		return err
	}

	module, err := clients.LMS.CreateModule(ctx, req)
	if err != nil {
		return cli.NewPrivileged("failed to create module", err)
	}

	ui.Print(terminal.NewTextLog("Successfully created module %s (#%d) in %s", module.Title, module.ID, cli.CourseOption(course)))
	return nil
}

func nextOrder(course lms.Course) int {
	var order int
	for _, module := range course.Modules {
		if module.Order > order {
			order = module.Order
		}
	}
	return order + 1
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.Title != "" {
		return nil
	}
	return ui.AskOne(&i.Title, &survey.Input{Message: "Module Title"}, survey.WithValidator(survey.Required))
}
