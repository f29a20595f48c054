package profile

import (
	"context"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
	"github.com/smartlms/smartlms-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestProfileList(t *testing.T) {
	t.Run("should list every saved profile", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		defaultProfile := user.NewProfileWithFs(user.DefaultProfile, mock.ProfileDir, fs)
		defaultProfile.SetBaseURL("http://localhost:8000/api")
		defaultProfile.SetSession(api.Session{AccessToken: "accessToken", RefreshToken: "refreshToken"})
		defaultProfile.SetUser(user.User{Username: "student1", Role: user.RoleStudent})
		assert.Nil(t, defaultProfile.Save())

		staging := user.NewProfileWithFs("staging", mock.ProfileDir, fs)
		staging.SetBaseURL("https://staging.smartlms.io/api")
		assert.Nil(t, staging.Save())

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(context.Background(), defaultProfile, ui, cli.Clients{}))

		assert.Equal(t, `01:23:45 UTC INFO  Profiles (2)
  Profile  User                Server                           Active
  -------  ------------------  -------------------------------  ------
  default  student1 (Student)  http://localhost:8000/api        true
  staging  (logged out)        https://staging.smartlms.io/api  false
`, out.String())
	})

	t.Run("should report when no profiles are saved", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{}))
		assert.Equal(t, "01:23:45 UTC INFO  No profiles saved yet\n", out.String())
	})
}
