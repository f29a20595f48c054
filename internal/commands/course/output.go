package course

import (
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
)

const (
	headerID         = "ID"
	headerTitle      = "Title"
	headerCategory   = "Category"
	headerInstructor = "Instructor"
	headerCreated    = "Created"

	headerModule   = "Module"
	headerLessonID = "Lesson ID"
	headerLesson   = "Lesson"
	headerVideo    = "Video"
)

var courseHeaders = []string{headerID, headerTitle, headerCategory, headerInstructor, headerCreated}

func courseRow(course lms.Course) map[string]interface{} {
	return map[string]interface{}{
		headerID:         course.ID,
		headerTitle:      course.Title,
		headerCategory:   course.Category,
		headerInstructor: course.InstructorName,
		headerCreated:    course.CreatedAt,
	}
}

var contentHeaders = []string{headerModule, headerLessonID, headerLesson, headerVideo}

func contentRows(course lms.Course) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, course.Lessons()+len(course.Modules))
	for _, module := range course.Modules {
		if len(module.Lessons) == 0 {
			rows = append(rows, map[string]interface{}{headerModule: module.Title})
			continue
		}
		for i, lesson := range module.Lessons {
			row := map[string]interface{}{
				headerLessonID: lesson.ID,
				headerLesson:   lesson.Title,
				headerVideo:    lesson.VideoURL != "",
			}
			if i == 0 {
				row[headerModule] = module.Title
			}
			rows = append(rows, row)
		}
	}
	return rows
}
