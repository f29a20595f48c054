package login

import (
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldUsername = "username"
	inputFieldPassword = "password"
)

type inputs struct {
	Username string
	Password string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Username == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldUsername,
			Prompt:   &survey.Input{Message: "Username", Default: profile.User().Username},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
