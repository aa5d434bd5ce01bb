// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package binutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/utils"
	"github.com/xverify/xverify-cli/pkg/ux"
)

const stderrTailLines = 10

// Runner spawns external tools and waits for them to terminate
type Runner interface {
	// Run streams the process output to the user
	Run(ctx context.Context, command models.ExternalCommand) error
	// Output runs the process silently and returns its stdout
	Output(ctx context.Context, command models.ExternalCommand) ([]byte, error)
}

// ProcessError is returned whenever a spawned process could not be started or
// exited with a non zero status.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("failed to run %q: %s", e.Command, e.Err)
	}
	msg := fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the process binary could not be found
func (e *ProcessError) IsNotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, os.ErrNotExist)
}

type realRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewRunner() Runner {
	return &realRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewRunnerWithOutput builds a Runner streaming to the given writers
func NewRunnerWithOutput(stdout io.Writer, stderr io.Writer) Runner {
	return &realRunner{
		stdout: stdout,
		stderr: stderr,
	}
}

func (r *realRunner) Run(ctx context.Context, command models.ExternalCommand) error {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Stdin = r.stdin
	_, stderr := utils.SetupRealtimeCLIOutput(cmd, r.stdout, r.stderr)
	ux.Logger.Info("running %s", command)
	if err := cmd.Run(); err != nil {
		return newProcessError(command, err, stderr.String())
	}
	ux.Logger.Info("%s finished", command.Name)
	return nil
}

func (*realRunner) Output(ctx context.Context, command models.ExternalCommand) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	stdout, stderr := utils.SetupRealtimeCLIOutput(cmd, nil, nil)
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), newProcessError(command, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func newProcessError(command models.ExternalCommand, err error, stderr string) error {
	perr := &ProcessError{
		Command:  command.String(),
		ExitCode: -1,
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		perr.ExitCode = exitErr.ExitCode()
		perr.Stderr = utils.LastLines(stderr, stderrTailLines)
	}
	ux.Logger.Error("%s", perr)
	return perr
}
