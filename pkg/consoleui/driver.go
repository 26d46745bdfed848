package consoleui

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// PromptDriver abstracts the interactive prompt backend so field entry flows
// can run and be tested without a real terminal.
type PromptDriver interface {
	Input(message, def string) (string, error)
	Password(message string) (string, error)
	Select(message string, options []string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// surveyDriver is the default PromptDriver, backed by AlecAivazis/survey.
type surveyDriver struct{}

func (surveyDriver) Input(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyDriver) Password(message string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Password{Message: message}, &out)
	return out, translateSurveyErr(err)
}

func (surveyDriver) Select(message string, options []string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options}, &out)
	return out, translateSurveyErr(err)
}

func (surveyDriver) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
