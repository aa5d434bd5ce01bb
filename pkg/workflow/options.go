// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workflow

import (
	"slices"

	"github.com/xverify/xverify-cli/pkg/docker"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/mxpy"
	"github.com/xverify/xverify-cli/pkg/prompts"
)

// InputFlags are the values given on the command line. Empty values are
// prompted for.
type InputFlags struct {
	ProjectDir      string
	BuildOutputDir  string
	ImageVersion    string
	Network         string
	Wallet          string
	ContractAddress string
}

type Options struct {
	Mode     models.Mode
	Flags    InputFlags
	Simulate bool
	// Deployed skips the manual deployment confirmation of scripted runs
	Deployed  bool
	BuildTool docker.BuildToolConfig
	ArgStyle  mxpy.ArgStyle
	Retry     prompts.RetryPolicy
	// Gate overrides the gate picked from Mode
	Gate Gate
}

type Result struct {
	Params    models.RunParameters
	Image     string
	Artifacts models.BuildArtifactSet
	Build     models.ExternalCommand
	Deploy    models.ExternalCommand
	Verify    models.ExternalCommand
	// Executed lists the RunOrSkip stages whose command was spawned
	Executed []Stage
}

func (r *Result) Ran(stage Stage) bool {
	return slices.Contains(r.Executed, stage)
}
