package api

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims carried by a SmartLMS access token
type Claims struct {
	jwt.RegisteredClaims
	TokenType string      `json:"token_type,omitempty"`
	UserID    interface{} `json:"user_id,omitempty"`
}

// User returns the user id the token was issued to
func (c Claims) User() string {
	if c.UserID == nil {
		return c.Subject
	}
	return fmt.Sprint(c.UserID)
}

// ParseClaims reads the claims of an access token without verifying its signature.
// Verification is the server's job: the claims are only used for display.
func ParseClaims(token string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
