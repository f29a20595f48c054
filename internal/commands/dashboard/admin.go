package dashboard

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

func adminDashboard(ctx context.Context, clients cli.Clients) ([]terminal.Log, error) {
	var users []lms.User
	var courses []lms.Course

	if err := fetchAll(ctx,
		func(ctx context.Context) (err error) {
			users, err = clients.LMS.Users(ctx)
			return
		},
		func(ctx context.Context) (err error) {
			courses, err = clients.LMS.Courses(ctx)
			return
		},
	); err != nil {
		return nil, err
	}

	usersByRole := map[string]int{}
	for _, u := range users {
		usersByRole[u.RoleName]++
	}

	coursesByCategory := map[string]int{}
	for _, course := range courses {
		coursesByCategory[course.Category]++
	}

	logs := []terminal.Log{
		terminal.NewListLog("Summary",
			fmt.Sprintf("Users: %d", len(users)),
			fmt.Sprintf("Students: %d", usersByRole[string(user.RoleStudent)]),
			fmt.Sprintf("Teachers: %d", usersByRole[string(user.RoleTeacher)]),
			fmt.Sprintf("Admins: %d", usersByRole[string(user.RoleAdmin)]),
			fmt.Sprintf("Courses: %d", len(courses)),
		),
	}

	if len(courses) > 0 {
		rows := make([]map[string]interface{}, 0, len(lms.Categories))
		for _, category := range lms.Categories {
			if n := coursesByCategory[category]; n > 0 {
				rows = append(rows, map[string]interface{}{headerCategory: category, headerCourses: n})
			}
		}
		logs = append(logs, terminal.NewTableLog("Courses by category", []string{headerCategory, headerCourses}, rows...))
	}

	return logs, nil
}
