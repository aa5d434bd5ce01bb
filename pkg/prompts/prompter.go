// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/manifoldco/promptui"
)

const (
	Yes = "Yes"
	No  = "No"
)

type Prompter interface {
	// CaptureString reads one line, empty input allowed
	CaptureString(promptStr string) (string, error)
	// CapturePath reads one line offering tab completion from [completer].
	// A nil completer disables completion.
	CapturePath(promptStr string, completer Completer) (string, error)
	CaptureYesNo(promptStr string) (bool, error)
	CaptureNoYes(promptStr string) (bool, error)
}

type realPrompter struct{}

// Global variable that can be replaced during testing
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// Global variable for Select operations that can be replaced during testing
var promptUISelectRunner = func(prompt promptui.Select) (int, string, error) {
	return prompt.Run()
}

// Global variable for line reads with completion that can be replaced during testing
var readlineRunner = func(conf *readline.Config) (string, error) {
	rl, err := readline.NewEx(conf)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	return rl.Readline()
}

func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
	}

	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(str), nil
}

func (*realPrompter) CapturePath(promptStr string, completer Completer) (string, error) {
	conf := &readline.Config{
		Prompt: promptStr + ": ",
	}
	if completer != nil {
		conf.AutoComplete = &readlineCompleter{completer: completer}
	}

	str, err := readlineRunner(conf)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(str), nil
}

func yesNoBase(promptStr string, orderedOptions []string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: orderedOptions,
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{Yes, No})
}

func (*realPrompter) CaptureNoYes(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{No, Yes})
}
