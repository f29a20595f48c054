package whoami

import (
	"context"
	"time"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	session := profile.Session()
	if session.AccessToken == "" {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	u := profile.User()
	ui.Print(terminal.NewTextLog("Currently logged in user: %s (%s) with role %s", u.Username, u.DisplayName(), u.Role))

	claims, err := api.ParseClaims(session.AccessToken)
	if err != nil {
		ui.Print(terminal.NewWarningLog("Unable to read the access token: %s", err))
		return nil
	}

	if claims.ExpiresAt == nil {
		return nil
	}

	token := user.RedactedToken(session.AccessToken)
	expiresAt := claims.ExpiresAt.Time.UTC().Format(terminal.TimeFormat)

	if claims.ExpiresAt.Time.Before(time.Now()) {
		ui.Print(terminal.NewTextLog("Access token %s expired at %s, it will be refreshed on the next request", token, expiresAt))
		return nil
	}
	ui.Print(terminal.NewTextLog("Access token %s expires at %s", token, expiresAt))
	return nil
}
