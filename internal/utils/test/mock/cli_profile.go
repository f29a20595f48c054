package mock

import (
	"testing"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	u "github.com/smartlms/smartlms-cli/internal/utils/test"
	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileDir is the directory mock profiles are stored in
const ProfileDir = "/home/smartlms/.config/smartlms"

// NewProfile returns a new CLI profile with a random name stored in memory
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	return user.NewProfileWithFs(primitive.NewObjectID().Hex(), ProfileDir, afero.NewMemMapFs())
}

// NewProfileFromTmpDir returns a new CLI profile with a random name
// stored in a temporary home directory along with the associated cleanup function
func NewProfileFromTmpDir(t *testing.T, name string) (*user.Profile, func()) {
	t.Helper()

	tmpDir, teardown, err := u.NewTempDir(name)
	assert.Nil(t, err)

	_, resetHomeDir := u.SetupHomeDir(tmpDir)

	profile, err := user.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)

	return profile, func() {
		resetHomeDir()
		teardown()
	}
}

// NewProfileWithSession returns a new CLI profile with a session and logged in user
func NewProfileWithSession(t *testing.T, session api.Session, loggedIn user.User) *user.Profile {
	t.Helper()
	profile := NewProfile(t)
	profile.SetSession(session)
	profile.SetUser(loggedIn)
	return profile
}
