package user

import (
	"strings"
)

// Role is a SmartLMS user role
type Role string

// set of known SmartLMS user roles
const (
	RoleAdmin   Role = "Admin"
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)

// User is the logged in SmartLMS user
type User struct {
	Username  string
	FirstName string
	LastName  string
	Role      Role
}

// DisplayName returns the user's full name, or the username when no name is set
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Credentials are the user credentials
type Credentials struct {
	Username string
	Password string
}

// RedactedPassword returns the user's password with sensitive information redacted
func (creds Credentials) RedactedPassword() string {
	return redact(creds.Password)
}

// RedactedToken returns a token with all but its last characters redacted
func RedactedToken(token string) string {
	const visible = 4
	if len(token) <= visible {
		return redact(token)
	}
	return redact(token[:len(token)-visible]) + token[len(token)-visible:]
}

func redact(s string) string {
	return strings.Repeat("*", len(s))
}
