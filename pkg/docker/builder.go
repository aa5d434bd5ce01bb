// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package docker

import (
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
)

// BuildToolConfig describes how the containerized builder wrapper is started
type BuildToolConfig struct {
	Sudo        bool
	Interpreter string
	Script      string
}

func DefaultBuildToolConfig() BuildToolConfig {
	return BuildToolConfig{
		Sudo:        true,
		Interpreter: constants.PythonBin,
		Script:      constants.DefaultBuildScript,
	}
}

// BuilderCommand assembles the build wrapper invocation that compiles
// [projectPath] inside [image] and writes the artifacts to [outputPath].
func BuilderCommand(conf BuildToolConfig, image string, projectPath string, outputPath string) models.ExternalCommand {
	args := []string{
		"--image", image,
		"--project", projectPath,
		"--output", outputPath,
	}
	var cmd models.ExternalCommand
	if conf.Interpreter != "" {
		cmd = models.NewExternalCommand(conf.Interpreter, append([]string{conf.Script}, args...)...)
	} else {
		cmd = models.NewExternalCommand(conf.Script, args...)
	}
	if conf.Sudo {
		cmd = cmd.WithPrefix(constants.SudoBin)
	}
	return cmd
}
