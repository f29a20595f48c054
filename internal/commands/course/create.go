package course

import (
	"context"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandCreate is the `course create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	Title       string
	Description string
	Category    string
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Title, flagTitle, "", flagTitleUsage)
	fs.StringVar(&cmd.inputs.Description, flagDescription, "", flagDescriptionUsage)
	fs.StringVar(&cmd.inputs.Category, flagCategory, "", flagCategoryUsage)
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

	req := lms.CourseRequest(cmd.inputs)
	if err := lms.Validate(req); err != nil {
		return err
	}

	course, err := clients.LMS.CreateCourse(ctx, req)
	if err != nil {
		return cli.NewPrivileged("failed to create course", err)
	}

	ui.Print(terminal.NewTextLog("Successfully created course %s", cli.CourseOption(course)))
	return nil
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Title == "" {
		questions = append(questions, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Course Title"},
			Validate: survey.Required,
		})
	}

	if i.Description == "" {
		questions = append(questions, &survey.Question{
			Name:     "description",
			Prompt:   &survey.Input{Message: "Course Description"},
			Validate: survey.Required,
		})
	}

	if i.Category == "" {
		questions = append(questions, &survey.Question{
			Name:   "category",
			Prompt: &survey.Select{Message: "Course Category", Options: lms.Categories, Default: lms.CategoryProgramming},
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
