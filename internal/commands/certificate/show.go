package certificate

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

// CommandShow is the `certificate show` command
type CommandShow struct {
	certificateID string
}

// Flags is the command flags
func (cmd *CommandShow) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.certificateID, "id", "", `the verification id of the certificate (e.g. "SLMS-1A2B3C4D")`)
}

// Handler is the command handler
func (cmd *CommandShow) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireLogin(profile); err != nil {
		return err
	}

	certificates, err := clients.LMS.Certificates(ctx)
	if err != nil {
		return err
	}

	certificate, err := cmd.resolveCertificate(ui, certificates)
	if err != nil {
		return err
	}

	ui.Print(
		terminal.NewTextLog("Certificate of Completion %s", certificate.CertificateID),
		terminal.NewListLog("This certifies that",
			profile.User().DisplayName(),
			"has completed "+certificate.Title(),
			"on "+certificate.IssuedAt.UTC().Format("January 2, 2006"),
		),
	)
	return nil
}

func (cmd *CommandShow) resolveCertificate(ui terminal.UI, certificates []lms.Certificate) (lms.Certificate, error) {
	if cmd.certificateID != "" {
		for _, certificate := range certificates {
			if strings.EqualFold(certificate.CertificateID, cmd.certificateID) {
				return certificate, nil
			}
		}
		return lms.Certificate{}, fmt.Errorf("failed to find certificate %s", cmd.certificateID)
	}

	switch len(certificates) {
	case 0:
		return lms.Certificate{}, cli.New("no certificates earned yet")
	case 1:
		return certificates[0], nil
	}

	byOption := make(map[string]lms.Certificate, len(certificates))
	options := make([]string, len(certificates))
	for i, certificate := range certificates {
		option := fmt.Sprintf("%s (%s)", certificate.Title(), certificate.CertificateID)
		byOption[option] = certificate
		options[i] = option
	}

	var selection string
	if err := ui.AskOne(&selection, &survey.Select{Message: "Select Certificate", Options: options}); err != nil {
		return lms.Certificate{}, fmt.Errorf("failed to select certificate: %w", err)
	}
	return byOption[selection], nil
}
