package cli

import (
	"github.com/smartlms/smartlms-cli/internal/cli/user"
)

// RequireLogin returns ErrNotLoggedIn when the profile holds no session
func RequireLogin(profile *user.Profile) error {
	if profile.Session().AccessToken == "" {
		return ErrNotLoggedIn
	}
	return nil
}

// RequireRole returns an error unless the logged in user holds one of the provided roles
func RequireRole(profile *user.Profile, roles ...user.Role) error {
	if err := RequireLogin(profile); err != nil {
		return err
	}

	role := profile.User().Role
	for _, allowed := range roles {
		if role == allowed {
			return nil
		}
	}

	names := make([]string, 0, len(roles))
	for _, allowed := range roles {
		names = append(names, string(allowed))
	}
	return ErrAccessDenied{names}
}
