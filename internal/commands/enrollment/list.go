package enrollment

import (
	"context"
	"fmt"
	"sort"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"
	"github.com/smartlms/smartlms-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	headerCourse   = "Course"
	headerEnrolled = "Enrolled"
	headerProgress = "Progress"
	headerStatus   = "Status"

	statusCompleted  = "Completed"
	statusInProgress = "In progress"

	flagSince      = "since"
	flagSinceUsage = `only list enrollments made after this date (e.g. "2024-01-31" or "7d")`
)

// CommandList is the `enrollment list` command
type CommandList struct {
	since flags.Date
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	fs.Var(&cmd.since, flagSince, flagSinceUsage)
}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireLogin(profile); err != nil {
		return err
	}

	enrollments, err := clients.LMS.Enrollments(ctx)
	if err != nil {
		return err
	}

	filtered := make([]lms.Enrollment, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if !cmd.since.Time.IsZero() && enrollment.EnrolledAt.Before(cmd.since.Time) {
			continue
		}
		filtered = append(filtered, enrollment)
	}

	if len(filtered) == 0 {
		ui.Print(terminal.NewTextLog("No enrollments to show"))
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].EnrolledAt.After(filtered[j].EnrolledAt)
	})

	rows := make([]map[string]interface{}, 0, len(filtered))
	for _, enrollment := range filtered {
		rows = append(rows, Row(enrollment))
	}

	ui.Print(terminal.NewTableLog(fmt.Sprintf("Enrollments (%d)", len(rows)), Headers, rows...))
	return nil
}

// Headers are the enrollment table headers
var Headers = []string{headerCourse, headerEnrolled, headerProgress, headerStatus}

// Row is the enrollment table row
func Row(enrollment lms.Enrollment) map[string]interface{} {
	status := statusInProgress
	if enrollment.Completed() {
		status = statusCompleted
	}
	return map[string]interface{}{
		headerCourse:   enrollment.Course,
		headerEnrolled: enrollment.EnrolledAt,
		headerProgress: fmt.Sprintf("%.0f%%", enrollment.ProgressPercentage),
		headerStatus:   status,
	}
}
