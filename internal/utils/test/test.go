package testutils

import (
	"os"
	"testing"
)

const (
	envNoSkipTest = "SMARTLMS_NO_SKIP_TEST"
	envServerURL  = "SMARTLMS_TEST_SERVER_URL"
	envUsername   = "SMARTLMS_TEST_USERNAME"
	envPassword   = "SMARTLMS_TEST_PASSWORD"
)

// MustSkipf skips a test suite, but panics if SMARTLMS_NO_SKIP_TEST is set
func MustSkipf(t *testing.T, format string, args ...interface{}) {
	t.Helper()
	if len(os.Getenv(envNoSkipTest)) > 0 {
		panic("test was skipped, but " + envNoSkipTest + " is set")
	}
	t.Skipf(format, args...)
}

// ServerURL returns the url of a running SmartLMS backend to test against
func ServerURL() string {
	return os.Getenv(envServerURL)
}

// SkipUnlessServerConfigured skips tests that need a running SmartLMS backend
// when no server url is configured (see: ServerURL())
func SkipUnlessServerConfigured(t *testing.T) {
	t.Helper()
	if ServerURL() == "" {
		MustSkipf(t, "%s is not set", envServerURL)
	}
}

// ServerCredentials returns the username and password of a user
// registered on the SmartLMS backend to test against
func ServerCredentials() (string, string) {
	return os.Getenv(envUsername), os.Getenv(envPassword)
}

// SkipUnlessServerCredentialsConfigured skips tests that need a logged in user
// when no server url or credentials are configured (see: ServerCredentials())
func SkipUnlessServerCredentialsConfigured(t *testing.T) {
	t.Helper()
	SkipUnlessServerConfigured(t)
	if username, password := ServerCredentials(); username == "" || password == "" {
		MustSkipf(t, "%s and %s must be set", envUsername, envPassword)
	}
}
