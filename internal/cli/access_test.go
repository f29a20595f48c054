package cli

import (
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"
)

func TestRequireRole(t *testing.T) {
	t.Run("should return not logged in without a session", func(t *testing.T) {
		profile := mock.NewProfile(t)
		assert.Equal(t, ErrNotLoggedIn, RequireLogin(profile))
		assert.Equal(t, ErrNotLoggedIn, RequireRole(profile, user.RoleAdmin))
	})

	t.Run("should allow the listed roles", func(t *testing.T) {
		profile := mock.NewProfileWithSession(t, api.Session{AccessToken: "A1", RefreshToken: "R1"}, user.User{Username: "teacher1", Role: user.RoleTeacher})

		assert.Nil(t, RequireLogin(profile))
		assert.Nil(t, RequireRole(profile, user.RoleAdmin, user.RoleTeacher))
	})

	t.Run("should deny other roles", func(t *testing.T) {
		profile := mock.NewProfileWithSession(t, api.Session{AccessToken: "A1", RefreshToken: "R1"}, user.User{Username: "student1", Role: user.RoleStudent})

		err := RequireRole(profile, user.RoleAdmin, user.RoleTeacher)
		assert.Equal(t, ErrAccessDenied{[]string{"Admin", "Teacher"}}, err)
	})
}
