// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workflow

type Stage string

const (
	CollectBuildParams  Stage = "CollectBuildParams"
	RunOrSkipBuild      Stage = "RunOrSkipBuild"
	LocateArtifacts     Stage = "LocateArtifacts"
	CollectDeployParams Stage = "CollectDeployParams"
	ConstructDeployCmd  Stage = "ConstructDeployCmd"
	RunOrSkipDeploy     Stage = "RunOrSkipDeploy"
	CollectVerifyParams Stage = "CollectVerifyParams"
	ConstructVerifyCmd  Stage = "ConstructVerifyCmd"
	RunOrSkipVerify     Stage = "RunOrSkipVerify"
)

// Stages in execution order. The run is done once the last one completes.
var Stages = []Stage{
	CollectBuildParams,
	RunOrSkipBuild,
	LocateArtifacts,
	CollectDeployParams,
	ConstructDeployCmd,
	RunOrSkipDeploy,
	CollectVerifyParams,
	ConstructVerifyCmd,
	RunOrSkipVerify,
}

// description names the command a RunOrSkip stage spawns
func (s Stage) description() string {
	switch s {
	case RunOrSkipBuild:
		return "Docker build command"
	case RunOrSkipDeploy:
		return "mxpy contract deployment command"
	case RunOrSkipVerify:
		return "mxpy verification command"
	}
	return string(s)
}

func stageNames() []string {
	names := make([]string, 0, len(Stages))
	for _, s := range Stages {
		names = append(names, string(s))
	}
	return names
}
