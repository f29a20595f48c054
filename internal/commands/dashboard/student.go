package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/commands/certificate"
	"github.com/smartlms/smartlms-cli/internal/commands/enrollment"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

func studentDashboard(ctx context.Context, clients cli.Clients) ([]terminal.Log, error) {
	var enrollments []lms.Enrollment
	var certificates []lms.Certificate

	if err := fetchAll(ctx,
		func(ctx context.Context) (err error) {
			enrollments, err = clients.LMS.Enrollments(ctx)
			return
		},
		func(ctx context.Context) (err error) {
			certificates, err = clients.LMS.Certificates(ctx)
			return
		},
	); err != nil {
		return nil, err
	}

	if len(enrollments) == 0 {
		return []terminal.Log{
			terminal.NewTextLog("You are not enrolled in any course yet"),
			terminal.NewFollowupLog("Browse the available courses with", fmt.Sprintf("%s course list", cli.Name)),
		}, nil
	}

	var inProgress, completed []lms.Enrollment
	for _, e := range enrollments {
		if e.Completed() {
			completed = append(completed, e)
		} else {
			inProgress = append(inProgress, e)
		}
	}

	logs := []terminal.Log{
		terminal.NewListLog("Summary",
			fmt.Sprintf("Enrolled courses: %d", len(enrollments)),
			fmt.Sprintf("In progress: %d", len(inProgress)),
			fmt.Sprintf("Completed: %d", len(completed)),
			fmt.Sprintf("Certificates earned: %d", len(certificates)),
		),
	}

	if len(inProgress) > 0 {
		sort.SliceStable(inProgress, func(i, j int) bool {
			return inProgress[i].ProgressPercentage > inProgress[j].ProgressPercentage
		})

		rows := make([]map[string]interface{}, 0, len(inProgress))
		for _, e := range inProgress {
			rows = append(rows, enrollment.Row(e))
		}
		logs = append(logs, terminal.NewTableLog(fmt.Sprintf("Continue learning (%d)", len(rows)), enrollment.Headers, rows...))
	}

	if len(certificates) > 0 {
		rows := make([]map[string]interface{}, 0, len(certificates))
		for _, c := range certificates {
			rows = append(rows, certificate.Row(c))
		}
		logs = append(logs, terminal.NewTableLog(fmt.Sprintf("Certificates (%d)", len(rows)), certificate.Headers, rows...))
	}

	return logs, nil
}
