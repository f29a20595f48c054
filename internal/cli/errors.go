package cli

import (
	"errors"
	"fmt"
	"strings"
)

// New creates a new CLI error
func New(message string) Err {
	return Err{message: message}
}

// NewWrapped creates a new CLI error with the wrapped cause's details
// hidden from the resulting error message
func NewWrapped(message string, err error) Err {
	return Err{message: message, cause: err}
}

// NewPrivileged creates a new CLI error with the wrapped cause's details
// exposed in the resulting error message
func NewPrivileged(message string, err error) PrivilegedErr {
	return PrivilegedErr{NewWrapped(message, err)}
}

// Err is a CLI error
type Err struct {
	message string
	cause   error
}

func (err Err) Error() string { return err.message }

// Unwrap unwraps the first non-CLI error as the root cause
func (err Err) Unwrap() error { return findRootCause(err.cause) }

func (err Err) String() string {
	if err.cause == nil {
		return err.message
	}

	var cause string
	switch c := err.cause.(type) {
	case Err:
		cause = c.String()
	default:
		cause = c.Error()
	}
	return fmt.Sprintf("%s: %s", err.message, cause)
}

// PrivilegedErr is a privileged CLI error
type PrivilegedErr struct {
	Err
}

func (err PrivilegedErr) Error() string {
	if err.cause == nil {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.message, err.Unwrap().Error())
}

func findRootCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return findRootCause(cause)
	}
	return err
}

// CommandSuggester is an error that suggests commands to run instead
type CommandSuggester interface {
	SuggestedCommands() []interface{}
}

// DisableUsage is an error that should not print the command usage
type DisableUsage interface {
	DisableUsage()
}

type errDisableUsage struct {
	error
}

func (err errDisableUsage) DisableUsage() {}

func (err errDisableUsage) Unwrap() error { return err.error }

// ErrNotLoggedIn is returned by commands which need a logged in user
var ErrNotLoggedIn = errNotLoggedIn{}

type errNotLoggedIn struct{}

func (err errNotLoggedIn) Error() string { return "no user is currently logged in" }

func (err errNotLoggedIn) SuggestedCommands() []interface{} {
	return []interface{}{fmt.Sprintf("%s login", Name)}
}

// ErrSessionExpired is returned by commands whose session could not be recovered
type ErrSessionExpired struct {
	Cause error
}

func (err ErrSessionExpired) Error() string {
	return fmt.Sprintf("your session has expired, please log in again: %s", err.Cause)
}

// Unwrap returns the failure which ended the session
func (err ErrSessionExpired) Unwrap() error { return err.Cause }

// SuggestedCommands returns the command to log in again
func (err ErrSessionExpired) SuggestedCommands() []interface{} {
	return []interface{}{fmt.Sprintf("%s login", Name)}
}

// ErrAccessDenied is returned by commands restricted to other roles
type ErrAccessDenied struct {
	Allowed []string
}

func (err ErrAccessDenied) Error() string {
	if len(err.Allowed) == 0 {
		return "Access denied"
	}
	return fmt.Sprintf("Access denied: this command is only available to %s users", strings.Join(err.Allowed, " and "))
}
