package register

import (
	"context"
	"errors"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("should register the account and report the role granted by the server", func(t *testing.T) {
		var registrations []lms.Registration

		lmsClient := mock.LMSClient{}
		lmsClient.RegisterFn = func(ctx context.Context, registration lms.Registration) (lms.User, error) {
			registrations = append(registrations, registration)
			return lms.User{ID: 9, Username: registration.Username, RoleName: "Student"}, nil
		}

		out, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "newbie", Password: "password1", Email: "newbie@example.com", Role: "Teacher"}}
		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{LMS: lmsClient}))

		assert.Equal(t, []lms.Registration{{Username: "newbie", Password: "password1", Email: "newbie@example.com", Role: "Teacher"}}, registrations)
		assert.Equal(t, `01:23:45 UTC INFO  Successfully registered newbie with role Student
01:23:45 UTC WARN  The requested role Teacher was not granted
`, out.String())
	})

	t.Run("should not reach the server with an invalid registration", func(t *testing.T) {
		lmsClient := mock.LMSClient{}
		lmsClient.RegisterFn = func(ctx context.Context, registration lms.Registration) (lms.User, error) {
			t.Fatal("unexpected registration")
			return lms.User{}, nil
		}

		_, ui := mock.NewUI()

		cmd := &Command{inputs{Username: "newbie", Password: "short", Role: "Admin"}}
		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{LMS: lmsClient})

		assert.Equal(t, errors.New("invalid registration: password must be at least 8 characters, role must be one of [Student, Teacher]"), err)
	})
}
