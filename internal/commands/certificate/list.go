package certificate

import (
	"context"
	"fmt"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/terminal"
)

const (
	headerCertificateID = "Certificate ID"
	headerCourse        = "Course"
	headerIssued        = "Issued"
)

// Headers are the certificate table headers
var Headers = []string{headerCertificateID, headerCourse, headerIssued}

// Row is the certificate table row
func Row(certificate lms.Certificate) map[string]interface{} {
	return map[string]interface{}{
		headerCertificateID: certificate.CertificateID,
		headerCourse:        certificate.Title(),
		headerIssued:        certificate.IssuedAt,
	}
}

// CommandList is the `certificate list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := cli.RequireLogin(profile); err != nil {
		return err
	}

	certificates, err := clients.LMS.Certificates(ctx)
	if err != nil {
		return err
	}

	if len(certificates) == 0 {
		ui.Print(terminal.NewTextLog("No certificates earned yet, complete every lesson of a course to earn one"))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(certificates))
	for _, certificate := range certificates {
		rows = append(rows, Row(certificate))
	}

	ui.Print(terminal.NewTableLog(fmt.Sprintf("Certificates (%d)", len(rows)), Headers, rows...))
	return nil
}
