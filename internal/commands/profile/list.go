package profile

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

const (
	headerName   = "Profile"
	headerUser   = "User"
	headerServer = "Server"
	headerActive = "Active"

	loggedOut = "(logged out)"
)

// CommandList is the `profile list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	metas, err := user.ProfilesFromFs(profile.Fs(), profile.Dir())
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		ui.Print(terminal.NewTextLog("No profiles saved yet"))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(metas))
	for _, meta := range metas {
		p := user.NewProfileWithFs(meta.Name, profile.Dir(), profile.Fs())
		if err := p.Load(); err != nil {
			return err
		}

		loggedIn := loggedOut
		if p.Session().AccessToken != "" {
			u := p.User()
			loggedIn = fmt.Sprintf("%s (%s)", u.Username, u.Role)
		}

		rows = append(rows, map[string]interface{}{
			headerName:   meta.Name,
			headerUser:   loggedIn,
			headerServer: p.BaseURL(),
			headerActive: meta.Name == profile.Name,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Profiles (%d)", len(rows)),
		[]string{headerName, headerUser, headerServer, headerActive},
		rows...,
	))
	return nil
}
