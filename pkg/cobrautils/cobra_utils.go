// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/prompts"
	"github.com/xverify/xverify-cli/pkg/ux"

	"github.com/spf13/cobra"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

type UsageError struct {
	cmd *cobra.Command
	err error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("Usage error: %s", e.err)
}

func (e UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(cmd *cobra.Command, err error) UsageError {
	return UsageError{
		cmd: cmd,
		err: err,
	}
}

// withUsage shows the command help and marks the error of [check] as a usage
// error
func withUsage(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := check(cmd, args)
		if err != nil {
			_ = cmd.Help()
			err = NewUsageError(cmd, err)
		}
		return err
	}
}

func ExactArgs(n int) cobra.PositionalArgs {
	return withUsage(cobra.ExactArgs(n))
}

func MaximumNArgs(n int) cobra.PositionalArgs {
	return withUsage(cobra.MaximumNArgs(n))
}

// OnlyValidArgsUpTo accepts at most [n] args, each one of cmd.ValidArgs
func OnlyValidArgsUpTo(n int) cobra.PositionalArgs {
	return withUsage(cobra.MatchAll(cobra.MaximumNArgs(n), cobra.OnlyValidArgs))
}

// ExitCode maps an error returned by a command to the process exit status.
// A failing child process passes its own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr UsageError
	if errors.As(err, &usageErr) || errors.Is(err, prompts.ErrInvalidFlagValue) {
		return exitUsage
	}
	var perr *binutils.ProcessError
	if errors.As(err, &perr) && perr.ExitCode > 0 {
		return perr.ExitCode
	}
	return exitFailure
}

func HandleErrors(err error) {
	if err == nil {
		return
	}
	var usageErr UsageError
	if errors.As(err, &usageErr) {
		usageErr.cmd.Println(usageErr.cmd.UsageString())
		usageErr.cmd.Println()
		usageErr.cmd.Println(usageErr)
	} else {
		ux.Logger.PrintToUser("Error: %s", err)
	}
	os.Exit(ExitCode(err))
}

func CommandSuiteUsage(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return NewUsageError(
			cmd,
			fmt.Errorf("invalid subcommand %q", strings.Join(args, " ")),
		)
	}
	err := cmd.Help()
	if err != nil {
		fmt.Println(err)
	}
	return nil
}

func ConfigureRootCmd(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})
}
