package dashboard

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

const (
	headerID       = "ID"
	headerTitle    = "Title"
	headerCategory = "Category"
	headerModules  = "Modules"
	headerLessons  = "Lessons"
	headerCreated  = "Created"
	headerCourses  = "Courses"
)

var taughtHeaders = []string{headerID, headerTitle, headerCategory, headerModules, headerLessons, headerCreated}

// teaches matches on the instructor name since the stored profile carries no user id
func teaches(u user.User, course lms.Course) bool {
	return course.InstructorName != "" && (course.InstructorName == u.Username || course.InstructorName == u.DisplayName())
}

func teacherDashboard(ctx context.Context, u user.User, clients cli.Clients) ([]terminal.Log, error) {
	courses, err := clients.LMS.Courses(ctx)
	if err != nil {
		return nil, err
	}

	var modules, lessons int
	rows := make([]map[string]interface{}, 0, len(courses))
	for _, course := range courses {
		if !teaches(u, course) {
			continue
		}
		modules += len(course.Modules)
		lessons += course.Lessons()
		rows = append(rows, map[string]interface{}{
			headerID:       course.ID,
			headerTitle:    course.Title,
			headerCategory: course.Category,
			headerModules:  len(course.Modules),
			headerLessons:  course.Lessons(),
			headerCreated:  course.CreatedAt,
		})
	}

	if len(rows) == 0 {
		return []terminal.Log{
			terminal.NewTextLog("You are not teaching any course yet"),
			terminal.NewFollowupLog("Create your first course with", fmt.Sprintf("%s course create", cli.Name)),
		}, nil
	}

	return []terminal.Log{
		terminal.NewListLog("Summary",
			fmt.Sprintf("Courses taught: %d", len(rows)),
			fmt.Sprintf("Modules: %d", modules),
			fmt.Sprintf("Lessons: %d", lessons),
		),
		terminal.NewTableLog(fmt.Sprintf("Your courses (%d)", len(rows)), taughtHeaders, rows...),
	}, nil
}
