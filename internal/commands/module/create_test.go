package module

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"
)

func newTeacherProfile(t *testing.T) *user.Profile {
	t.Helper()
	return mock.NewProfileWithSession(t,
		api.Session{AccessToken: "accessToken", RefreshToken: "refreshToken"},
		user.User{Username: "teacher1", Role: user.RoleTeacher},
	)
}

func TestModuleCreateHandler(t *testing.T) {
	course := lms.Course{ID: 1, Title: "Intro to Go", Modules: []lms.Module{{ID: 10, Order: 1}, {ID: 11, Order: 4}}}

	for _, tc := range []struct {
		description     string
		inputs          createInputs
		expectedRequest lms.ModuleRequest
	}{
		{
			description:     "should append the module after the last one",
			inputs:          createInputs{CourseInputs: cli.CourseInputs{Course: 1}, Title: "Concurrency"},
			expectedRequest: lms.ModuleRequest{Course: 1, Title: "Concurrency", Order: 5},
		},
		{
			description:     "should keep an explicit order",
			inputs:          createInputs{CourseInputs: cli.CourseInputs{Course: 1}, Title: "Basics", Order: 2},
			expectedRequest: lms.ModuleRequest{Course: 1, Title: "Basics", Order: 2},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var requests []lms.ModuleRequest

			lmsClient := mock.LMSClient{}
			lmsClient.CourseFn = func(ctx context.Context, courseID int) (lms.Course, error) {
				return course, nil
			}
			lmsClient.CreateModuleFn = func(ctx context.Context, req lms.ModuleRequest) (lms.Module, error) {
				requests = append(requests, req)
				return lms.Module{ID: 12, Course: req.Course, Title: req.Title, Order: req.Order}, nil
			}

			out, ui := mock.NewUI()

			cmd := &CommandCreate{tc.inputs}
			assert.Nil(t, cmd.Handler(context.Background(), newTeacherProfile(t), ui, cli.Clients{LMS: lmsClient}))

			assert.Equal(t, []lms.ModuleRequest{tc.expectedRequest}, requests)
			assert.Equal(t, "01:23:45 UTC INFO  Successfully created module "+tc.inputs.Title+" (#12) in Intro to Go (#1)\n", out.String())
		})
	}

	t.Run("should validate the module before sending it", func(t *testing.T) {
		lmsClient := mock.LMSClient{}
		lmsClient.CourseFn = func(ctx context.Context, courseID int) (lms.Course, error) {
			return course, nil
		}

		_, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{CourseInputs: cli.CourseInputs{Course: 1}, Order: -1}}
		err := cmd.Handler(context.Background(), newTeacherProfile(t), ui, cli.Clients{LMS: lmsClient})
		assert.Equal(t, errors.New("invalid module: title is required, order must not be negative"), err)
	})
}

func TestModuleDeleteHandler(t *testing.T) {
	t.Run("should delete the module when auto confirmed", func(t *testing.T) {
		var deleted []int

		lmsClient := mock.LMSClient{}
		lmsClient.DeleteModuleFn = func(ctx context.Context, moduleID int) error {
			deleted = append(deleted, moduleID)
			return nil
		}

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		cmd := &CommandDelete{deleteInputs{ID: 10}}
		assert.Nil(t, cmd.Handler(context.Background(), newTeacherProfile(t), ui, cli.Clients{LMS: lmsClient}))

		assert.Equal(t, []int{10}, deleted)
		assert.Equal(t, "01:23:45 UTC INFO  Successfully deleted module #10\n", out.String())
	})

	t.Run("should return the server failure", func(t *testing.T) {
		lmsClient := mock.LMSClient{}
		lmsClient.DeleteModuleFn = func(ctx context.Context, moduleID int) error {
			return api.ServerError{StatusCode: 404, Status: "404 Not Found", Detail: "Not found."}
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, nil)

		cmd := &CommandDelete{deleteInputs{ID: 10}}
		err := cmd.Handler(context.Background(), newTeacherProfile(t), ui, cli.Clients{LMS: lmsClient})
		assert.Equal(t, errors.New("failed to delete module: 404 Not Found: Not found."), err)
	})
}
