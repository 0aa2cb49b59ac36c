package main

import (
	"github.com/AlecAivazis/survey/v2"
)

func questions() []*survey.Question {
	return []*survey.Question{
		{
			Name: "fileSize",
			Prompt: &survey.Input{
				Message: LocalSprintf("ask file size"),
				Default: "1M",
				Help:    LocalSprintf("ask file size help"),
			},
			Validate: survey.Required,
		},
		{
			Name: "fileNumber",
			Prompt: &survey.Input{
				Message: LocalSprintf("ask file number"),
				Default: "3",
				Help:    LocalSprintf("ask file number help"),
			},
		},
	}
}

// SurveyCmd fills the scan options from interactive answers.
func (op *Options) SurveyCmd() error {

	answers := struct {
		Threshold string `survey:"fileSize"`
		ShowNum   uint32 `survey:"fileNumber"`
	}{}

	if err := survey.Ask(questions(), &answers, survey.WithHelpInput('?')); err != nil {
		return err
	}
	op.limit = answers.Threshold
	op.number = answers.ShowNum
	return nil
}

// MultiSelectPatterns lets the user pick which derived patterns to act on.
func MultiSelectPatterns(patterns []string) []string {
	selected := []string{}

	prompt := &survey.MultiSelect{
		Message:  LocalSprintf("select patterns message"),
		Options:  patterns,
		PageSize: 10,
		Help:     LocalSprintf("select patterns help"),
	}
	survey.AskOne(prompt, &selected, survey.WithHelpInput('?'))

	return selected
}

// ConfirmMigrate double-checks before the destructive history rewrite.
func ConfirmMigrate() bool {
	ok := false
	prompt := &survey.Confirm{
		Message: LocalSprintf("confirm migrate message"),
	}
	survey.AskOne(prompt, &ok)
	return ok
}
