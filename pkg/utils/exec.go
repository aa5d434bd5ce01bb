// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"bytes"
	"io"
	"os/exec"
)

// SetupRealtimeCLIOutput streams the command output to [stdout]/[stderr] while
// keeping a copy of each stream. A nil writer only buffers.
func SetupRealtimeCLIOutput(
	cmd *exec.Cmd,
	stdout io.Writer,
	stderr io.Writer,
) (*bytes.Buffer, *bytes.Buffer) {
	var stdoutBuffer bytes.Buffer
	var stderrBuffer bytes.Buffer
	if stdout != nil {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuffer)
	} else {
		cmd.Stdout = &stdoutBuffer
	}
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuffer)
	} else {
		cmd.Stderr = &stderrBuffer
	}
	return &stdoutBuffer, &stderrBuffer
}

// LastLines returns at most [n] trailing non empty lines of [s]
func LastLines(s string, n int) string {
	lines := bytes.Split(bytes.TrimRight([]byte(s), "\n"), []byte("\n"))
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return string(bytes.Join(lines, []byte("\n")))
}
