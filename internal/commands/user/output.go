package user

import (
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
)

const (
	headerID       = "ID"
	headerUsername = "Username"
	headerName     = "Name"
	headerEmail    = "Email"
	headerRole     = "Role"
	headerDeleted  = "Deleted"
	headerDetails  = "Details"
)

// Headers are the user table headers
var Headers = []string{headerID, headerUsername, headerName, headerEmail, headerRole}

// Row is the user table row
func Row(u lms.User) map[string]interface{} {
	return map[string]interface{}{
		headerID:       u.ID,
		headerUsername: u.Username,
		headerName:     u.FullName(),
		headerEmail:    u.Email,
		headerRole:     u.RoleName,
	}
}

type userOutput struct {
	user lms.User
	err  error
}

func deleteRow(output userOutput) map[string]interface{} {
	row := Row(output.user)

	var details string
	if output.err != nil {
		details = output.err.Error()
	}
	row[headerDeleted] = output.err == nil
	row[headerDetails] = details
	return row
}
