// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package docker

import (
	"context"
	"errors"
	"testing"

	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/models"

	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	err  error
	runs []string
}

func (r *stubRunner) Run(_ context.Context, command models.ExternalCommand) error {
	r.runs = append(r.runs, command.String())
	return r.err
}

func (r *stubRunner) Output(_ context.Context, command models.ExternalCommand) ([]byte, error) {
	r.runs = append(r.runs, command.String())
	return nil, r.err
}

func TestImageReference(t *testing.T) {
	require.Equal(t, "multiversx/sdk-rust-contract-builder:v5.3.0", ImageReference("v5.3.0"))
	require.Equal(t, "multiversx/sdk-rust-contract-builder:latest", ImageReference("latest"))
}

func TestBuilderCommand(t *testing.T) {
	image := ImageReference("v5.3.0")

	cmd := BuilderCommand(DefaultBuildToolConfig(), image, "/work/barterswap", "/work/verifyswap")
	require.Equal(t,
		"sudo python3 ./build_with_docker.py --image multiversx/sdk-rust-contract-builder:v5.3.0 --project /work/barterswap --output /work/verifyswap",
		cmd.String(),
	)

	cmd = BuilderCommand(BuildToolConfig{Script: "mxpy-build"}, image, "p", "o")
	require.Equal(t, []string{"mxpy-build", "--image", image, "--project", "p", "--output", "o"}, cmd.Argv())
}

func TestLocalImageExists(t *testing.T) {
	image := ImageReference("v5.3.0")
	tests := []struct {
		name        string
		err         error
		expectedErr bool
	}{
		{name: "present"},
		{name: "absent", err: &binutils.ProcessError{ExitCode: 1}},
		{name: "docker not startable", err: &binutils.ProcessError{ExitCode: -1, Err: errors.New("no docker")}, expectedErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{err: tt.err}
			exists, err := LocalImageExists(context.Background(), runner, true, image)
			if tt.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.err == nil, exists)
			require.Equal(t, []string{"sudo docker image inspect " + image}, runner.runs)
		})
	}
}

func TestPullImage(t *testing.T) {
	runner := &stubRunner{}
	require.NoError(t, PullImage(context.Background(), runner, false, "img:v1"))
	require.Equal(t, []string{"docker pull img:v1"}, runner.runs)
}
