package course

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// Outline describes a course along with its modules and lessons, in order
type Outline struct {
	Title       string          `yaml:"title" json:"title" validate:"required,max=200"`
	Description string          `yaml:"description" json:"description" validate:"required"`
	Category    string          `yaml:"category" json:"category" validate:"required,oneof=Programming Design Business DevOps Other"`
	Modules     []ModuleOutline `yaml:"modules" json:"modules" validate:"dive"`
}

// ModuleOutline describes a course module
type ModuleOutline struct {
	Title   string          `yaml:"title" json:"title" validate:"required,max=200"`
	Lessons []LessonOutline `yaml:"lessons" json:"lessons" validate:"dive"`
}

// LessonOutline describes a module lesson
type LessonOutline struct {
	Title    string `yaml:"title" json:"title" validate:"required,max=200"`
	Content  string `yaml:"content" json:"content"`
	VideoURL string `yaml:"video_url" json:"video_url" validate:"omitempty,url"`
}

// ReadOutline reads and validates the course outline at path
func ReadOutline(fs afero.Fs, path string) (Outline, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Outline{}, fmt.Errorf("failed to read course outline: %w", err)
	}

	var outline Outline
	if err := yaml.UnmarshalStrict(data, &outline); err != nil {
		return Outline{}, fmt.Errorf("failed to parse course outline %s: %w", path, err)
	}

	if err := lms.Validate(outline); err != nil {
		return Outline{}, err
	}
	return outline, nil
}

// CommandBuild is the `course build` command
type CommandBuild struct {
	inputs buildInputs
}

type buildInputs struct {
	File string
}

// Flags is the command flags
func (cmd *CommandBuild) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.File, flagFile, "", flagFileUsage)
}

// Inputs is the command inputs
func (cmd *CommandBuild) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandBuild) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireRole(profile, user.RoleAdmin, user.RoleTeacher); err != nil {
		return err
	}

	outline, err := ReadOutline(profile.Fs(), cmd.inputs.File)
	if err != nil {
		return err
	}

	course, err := clients.LMS.CreateCourse(ctx, lms.CourseRequest{
		Title:       outline.Title,
		Description: outline.Description,
		Category:    outline.Category,
	})
	if err != nil {
		return cli.NewPrivileged("failed to create course", err)
	}

	var lessons int
	for i, m := range outline.Modules {
		module, err := clients.LMS.CreateModule(ctx, lms.ModuleRequest{Course: course.ID, Title: m.Title, Order: i + 1})
		if err != nil {
			return partialBuildErr(course, fmt.Sprintf("failed to create module %q", m.Title), err)
		}

		for j, l := range m.Lessons {
			content := l.Content
			if content == "" {
				content = lms.DefaultLessonContent
			}

			if _, err := clients.LMS.CreateLesson(ctx, lms.LessonRequest{
				Module:   module.ID,
				Title:    l.Title,
				Content:  content,
				VideoURL: l.VideoURL,
				Order:    j + 1,
			}); err != nil {
				return partialBuildErr(course, fmt.Sprintf("failed to create lesson %q", l.Title), err)
			}
			lessons++
		}
	}

	ui.Print(terminal.NewTextLog(
		"Successfully built course %s with %d modules and %d lessons",
		cli.CourseOption(course),
		len(outline.Modules),
		lessons,
	))
	return nil
}

func partialBuildErr(course lms.Course, message string, err error) error {
	return cli.NewPrivileged(fmt.Sprintf("%s, course %s is only partially built", message, cli.CourseOption(course)), err)
}

func (i *buildInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.File != "" {
		return nil
	}
	return ui.AskOne(&i.File, &survey.Input{Message: "Course outline file"})
}
