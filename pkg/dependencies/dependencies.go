// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"context"
	"errors"
	"fmt"

	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
)

var ErrToolNotInstalled = errors.New("required tool is not installed")

// Tool is an external program the workflow shells out to
type Tool struct {
	Name        string
	DisplayName string
	VersionFlag string
}

var (
	Docker = Tool{
		Name:        constants.DockerBin,
		DisplayName: "Docker",
		VersionFlag: constants.VersionFlag,
	}
	Mxpy = Tool{
		Name:        constants.MxpyBin,
		DisplayName: "mxpy",
		VersionFlag: constants.VersionFlag,
	}
)

// RequiredTools are checked before any other work happens
var RequiredTools = []Tool{Docker, Mxpy}

// CheckInstalled runs the tool version command and fails if the tool cannot
// be started or does not exit cleanly.
func CheckInstalled(ctx context.Context, runner binutils.Runner, tool Tool) error {
	if _, err := runner.Output(ctx, models.NewExternalCommand(tool.Name, tool.VersionFlag)); err != nil {
		return fmt.Errorf(
			"%s is not installed. Please install %s and try again: %w",
			tool.DisplayName,
			tool.DisplayName,
			ErrToolNotInstalled,
		)
	}
	return nil
}

// CheckPrerequisites stops at the first missing tool
func CheckPrerequisites(ctx context.Context, runner binutils.Runner, tools ...Tool) error {
	for _, tool := range tools {
		if err := CheckInstalled(ctx, runner, tool); err != nil {
			return err
		}
	}
	return nil
}
