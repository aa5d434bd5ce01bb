// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workflow

import (
	"fmt"

	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/prompts"
)

// Gate decides whether the command assembled for a RunOrSkip stage is spawned
type Gate interface {
	Allow(stage Stage, command models.ExternalCommand) (bool, error)
}

// ConfirmGate asks the operator before every command. Anything but yes skips
// the command.
type ConfirmGate struct {
	Prompter prompts.Prompter
}

func (g ConfirmGate) Allow(stage Stage, _ models.ExternalCommand) (bool, error) {
	return g.Prompter.CaptureYesNo(fmt.Sprintf("Do you want to execute the %s?", stage.description()))
}

// ScriptedGate always runs the build and never the deploy or verify
// commands, which are handed back to the caller instead.
type ScriptedGate struct{}

func (ScriptedGate) Allow(stage Stage, _ models.ExternalCommand) (bool, error) {
	return stage == RunOrSkipBuild, nil
}

func NewGate(mode models.Mode, prompter prompts.Prompter) Gate {
	if mode == models.Scripted {
		return ScriptedGate{}
	}
	return ConfirmGate{Prompter: prompter}
}
