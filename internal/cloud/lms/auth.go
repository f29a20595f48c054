package lms

import (
	"context"
	"errors"

	"github.com/smartlms/smartlms-cli/internal/api"
)

const (
	tokenPath = "/token/"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var errMissingTokens = errors.New("authentication response did not include both an access and a refresh token")

func (c *lmsClient) Authenticate(ctx context.Context, username, password string) (api.Session, error) {
	var res authResponse
	// credentials are issued without presenting the stored ones
	if err := c.postWithAuth(ctx, tokenPath, authRequest{username, password}, &res, false); err != nil {
		return api.Session{}, err
	}
	if res.Access == "" || res.Refresh == "" {
		return api.Session{}, errMissingTokens
	}
	return api.Session{AccessToken: res.Access, RefreshToken: res.Refresh}, nil
}
