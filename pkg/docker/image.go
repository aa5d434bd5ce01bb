// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package docker

import (
	"context"
	"errors"

	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/ux"
)

// ImageReference returns the contract builder image for [version]. The tag is
// not checked against the registry.
func ImageReference(version string) string {
	return constants.BuilderImageRepository + ":" + version
}

func dockerCommand(sudo bool, args ...string) models.ExternalCommand {
	cmd := models.NewExternalCommand(constants.DockerBin, args...)
	if sudo {
		return cmd.WithPrefix(constants.SudoBin)
	}
	return cmd
}

func InspectImageCommand(sudo bool, image string) models.ExternalCommand {
	return dockerCommand(sudo, "image", "inspect", image)
}

func PullImageCommand(sudo bool, image string) models.ExternalCommand {
	return dockerCommand(sudo, "pull", image)
}

// LocalImageExists checks if a docker image is present on this host. A non
// zero exit of docker image inspect means the image is absent; failing to
// start docker at all is an error.
func LocalImageExists(ctx context.Context, runner binutils.Runner, sudo bool, image string) (bool, error) {
	_, err := runner.Output(ctx, InspectImageCommand(sudo, image))
	if err == nil {
		return true, nil
	}
	var perr *binutils.ProcessError
	if errors.As(err, &perr) && perr.ExitCode > 0 {
		return false, nil
	}
	return false, err
}

// PullImage pulls a docker image, streaming the docker output to the user.
func PullImage(ctx context.Context, runner binutils.Runner, sudo bool, image string) error {
	ux.Logger.PrintToUser("Pulling Docker image %s...", image)
	return runner.Run(ctx, PullImageCommand(sudo, image))
}
