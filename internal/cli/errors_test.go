package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/utils/test/so"
)

func TestErr(t *testing.T) {
	t.Run("New should return a new error with no cause", func(t *testing.T) {
		err := New("failed to enroll")

		so.So(t, err.Error(), so.ShouldEqual, "failed to enroll")
		so.So(t, err.Unwrap(), so.ShouldBeNil)
		so.So(t, err.String(), so.ShouldEqual, err.Error())
	})

	t.Run("NewWrapped should return a new error with a wrapped cause and omit the details", func(t *testing.T) {
		cause := rootCause()
		err := NewWrapped("failed to enroll", cause)

		so.So(t, err.Error(), so.ShouldEqual, "failed to enroll")
		so.So(t, err.Unwrap(), so.ShouldEqual, cause)
		so.So(t, err.String(), so.ShouldEqual, "failed to enroll: course is not published")

		t.Run("NewWrapped should return an error with a deeply nested wrapped cause and omit the details", func(t *testing.T) {
			wrappedErr := NewWrapped("failed to start course", err)

			so.So(t, wrappedErr.Error(), so.ShouldEqual, "failed to start course")
			so.So(t, wrappedErr.Unwrap(), so.ShouldEqual, cause)
			so.So(t, wrappedErr.String(), so.ShouldEqual, "failed to start course: failed to enroll: course is not published")
		})
	})

	t.Run("NewPrivileged should return a new error with a wrapped cause and include the details", func(t *testing.T) {
		cause := rootCause()
		err := NewPrivileged("failed to enroll", cause)

		so.So(t, err.Error(), so.ShouldEqual, "failed to enroll: course is not published")
		so.So(t, err.Unwrap(), so.ShouldEqual, cause)
		so.So(t, err.String(), so.ShouldEqual, err.Error())

		t.Run("NewPrivileged should return an error with a deeply nested wrapped cause", func(t *testing.T) {
			wrappedErr := NewPrivileged("failed to start course", err)

			so.So(t, wrappedErr.Error(), so.ShouldEqual, "failed to start course: course is not published")
			so.So(t, wrappedErr.Unwrap(), so.ShouldEqual, cause)
			so.So(t, wrappedErr.String(), so.ShouldEqual, "failed to start course: failed to enroll: course is not published")
		})
	})
}

func TestSessionErrors(t *testing.T) {
	t.Run("ErrNotLoggedIn should suggest logging in", func(t *testing.T) {
		var suggester CommandSuggester
		so.So(t, errors.As(fmt.Errorf("whoami failed: %w", ErrNotLoggedIn), &suggester), so.ShouldBeTrue)
		so.So(t, suggester.SuggestedCommands(), so.ShouldResemble, []interface{}{"smartlms login"})
	})

	t.Run("ErrSessionExpired should keep the failure which ended the session", func(t *testing.T) {
		cause := rootCause()
		err := ErrSessionExpired{cause}

		so.So(t, err.Error(), so.ShouldEqual, "your session has expired, please log in again: course is not published")
		so.So(t, errors.Is(err, cause), so.ShouldBeTrue)
		so.So(t, err.SuggestedCommands(), so.ShouldResemble, []interface{}{"smartlms login"})
	})
}

func TestErrAccessDenied(t *testing.T) {
	for _, tc := range []struct {
		allowed  []string
		expected string
	}{
		{expected: "Access denied"},
		{allowed: []string{"Admin"}, expected: "Access denied: this command is only available to Admin users"},
		{allowed: []string{"Admin", "Teacher"}, expected: "Access denied: this command is only available to Admin and Teacher users"},
	} {
		t.Run(fmt.Sprintf("Should print the expected message for %v", tc.allowed), func(t *testing.T) {
			so.So(t, ErrAccessDenied{tc.allowed}.Error(), so.ShouldEqual, tc.expected)
		})
	}
}

func rootCause() error {
	return errors.New("course is not published")
}
