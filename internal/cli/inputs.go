package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagCourse      = "course"
	flagCourseShort = "c"
)

// CourseInputs are the course inputs for a command
type CourseInputs struct {
	Course int
}

// Flags registers the course input flag to the provided flag set
func (i *CourseInputs) Flags(fs *pflag.FlagSet, usage string) {
	fs.IntVarP(&i.Course, flagCourse, flagCourseShort, 0, usage)
}

// ResolveCourse will use the provided SmartLMS client to resolve the course specified by the inputs,
// prompting for a selection among the available courses when none is specified
func (i CourseInputs) ResolveCourse(ctx context.Context, ui terminal.UI, client lms.Client) (lms.Course, error) {
	if i.Course != 0 {
		return client.Course(ctx, i.Course)
	}

	courses, err := client.Courses(ctx)
	if err != nil {
		return lms.Course{}, err
	}

	switch len(courses) {
	case 0:
		return lms.Course{}, New("no courses are available")
	case 1:
		return client.Course(ctx, courses[0].ID)
	}

	coursesByOption := make(map[string]lms.Course, len(courses))
	courseOptions := make([]string, len(courses))
	for i, course := range courses {
		option := CourseOption(course)
		coursesByOption[option] = course
		courseOptions[i] = option
	}

	var selection string
	if err := ui.AskOne(&selection, &survey.Select{
		Message: "Select Course",
		Options: courseOptions,
	}); err != nil {
		return lms.Course{}, fmt.Errorf("failed to select course: %w", err)
	}
	return client.Course(ctx, coursesByOption[selection].ID)
}

// CourseOption is how a course is displayed among prompt options
func CourseOption(course lms.Course) string {
	return fmt.Sprintf("%s (#%d)", course.Title, course.ID)
}

// ResolveID prompts for an id when the provided one is unset
func ResolveID(ui terminal.UI, id *int, message string) error {
	if *id != 0 {
		return nil
	}

	var answer string
	if err := ui.AskOne(&answer, &survey.Input{Message: message}); err != nil {
		return err
	}

	parsed, err := strconv.Atoi(answer)
	if err != nil || parsed <= 0 {
		return fmt.Errorf("%q is not a valid id", answer)
	}
	*id = parsed
	return nil
}
