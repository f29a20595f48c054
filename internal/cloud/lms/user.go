package lms

import (
	"context"
	"fmt"
	"strings"
)

const (
	usersPath       = "/users/"
	userPathPattern = usersPath + "%d/"
	userProfilePath = usersPath + "me/"
)

// User is a SmartLMS user
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoleName  string `json:"role_name"`
	Bio       string `json:"bio"`
}

// FullName returns the user's full name
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Registration is the payload of a new SmartLMS account.
// The requested role is only a hint: the server decides which role is granted.
type Registration struct {
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName string `json:"first_name,omitempty" validate:"max=150"`
	LastName  string `json:"last_name,omitempty" validate:"max=150"`
	Role      string `json:"role,omitempty" validate:"omitempty,oneof=Student Teacher"`
}

func (c *lmsClient) UserProfile(ctx context.Context) (User, error) {
	var user User
	if err := c.get(ctx, userProfilePath, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *lmsClient) Register(ctx context.Context, registration Registration) (User, error) {
	var user User
	if err := c.post(ctx, usersPath, registration, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *lmsClient) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, usersPath, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *lmsClient) DeleteUser(ctx context.Context, userID int) error {
	return c.delete(ctx, fmt.Sprintf(userPathPattern, userID))
}
