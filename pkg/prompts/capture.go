// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"

	"github.com/xverify/xverify-cli/pkg/ux"
)

var (
	ErrMaxAttemptsExceeded = errors.New("maximum number of attempts exceeded")
	ErrInvalidFlagValue    = errors.New("invalid flag value")
)

// RetryPolicy bounds how many times an invalid answer is re-prompted.
// MaxAttempts <= 0 keeps asking until the answer is valid.
type RetryPolicy struct {
	MaxAttempts int
}

var UnboundedRetries = RetryPolicy{}

func (p RetryPolicy) exhausted(attempt int) bool {
	return p.MaxAttempts > 0 && attempt >= p.MaxAttempts
}

// CaptureUntilValid keeps calling [capture] until [validate] accepts the
// answer, printing the validation error between attempts.
func CaptureUntilValid(
	capture func() (string, error),
	validate func(string) error,
	policy RetryPolicy,
) (string, error) {
	for attempt := 1; ; attempt++ {
		value, err := capture()
		if err != nil {
			return "", err
		}
		if validate == nil {
			return value, nil
		}
		verr := validate(value)
		if verr == nil {
			return value, nil
		}
		ux.Logger.PrintToUser("%s", verr.Error())
		if policy.exhausted(attempt) {
			return "", fmt.Errorf("%w (%d): %w", ErrMaxAttemptsExceeded, attempt, verr)
		}
	}
}

// Field describes one run parameter that comes from a flag or a prompt
type Field struct {
	// FlagName is used in errors about an invalid flag value
	FlagName string
	Prompt   string
	// Completer enables tab completion when set
	Completer Completer
	Validate  func(string) error
}

// CaptureField returns [flagValue] when it was supplied, otherwise it prompts
// until the answer is valid. An invalid flag value is an error: re-reading a
// fixed flag would never succeed.
func CaptureField(prompter Prompter, flagValue string, field Field, policy RetryPolicy) (string, error) {
	if flagValue != "" {
		if field.Validate != nil {
			if err := field.Validate(flagValue); err != nil {
				return "", fmt.Errorf("%w --%s=%s: %w", ErrInvalidFlagValue, field.FlagName, flagValue, err)
			}
		}
		return flagValue, nil
	}
	capture := func() (string, error) {
		if field.Completer != nil {
			return prompter.CapturePath(field.Prompt, field.Completer)
		}
		return prompter.CaptureString(field.Prompt)
	}
	return CaptureUntilValid(capture, field.Validate, policy)
}

// ConfirmUntilYes asks [promptStr] until the user answers yes, printing
// [retryMsg] after every other answer.
func ConfirmUntilYes(prompter Prompter, promptStr string, retryMsg string, policy RetryPolicy) error {
	for attempt := 1; ; attempt++ {
		yes, err := prompter.CaptureYesNo(promptStr)
		if err != nil {
			return err
		}
		if yes {
			return nil
		}
		ux.Logger.PrintToUser("%s", retryMsg)
		if policy.exhausted(attempt) {
			return fmt.Errorf("%w (%d)", ErrMaxAttemptsExceeded, attempt)
		}
	}
}
