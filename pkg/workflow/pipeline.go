// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/xverify/xverify-cli/pkg/application"
	"github.com/xverify/xverify-cli/pkg/artifacts"
	"github.com/xverify/xverify-cli/pkg/docker"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/mxpy"
	"github.com/xverify/xverify-cli/pkg/prompts"
	"github.com/xverify/xverify-cli/pkg/statemachine"
	"github.com/xverify/xverify-cli/pkg/utils"
	"github.com/xverify/xverify-cli/pkg/ux"

	"golang.org/x/mod/semver"
)

var ErrImageRequired = errors.New("docker image is required to proceed")

const (
	projectDirPrompt     = "Enter the project directory (relative to current dir)"
	buildOutputDirPrompt = "Enter the build output directory (relative to current dir)"
	imageVersionPrompt   = "Enter the image version (e.g., v5.3.0)"
	networkPrompt        = "Enter the network of the smart contract (D for Devnet, M for Mainnet)"
	walletPrompt         = "Enter the wallet file name (relative to current dir) (with .pem or .json extension)"
	addressPrompt        = "Enter the smart contract address"
)

type pipeline struct {
	app    *application.App
	opts   Options
	gate   Gate
	result *Result

	projectPath string
	outputPath  string
}

// Run walks every stage in order and returns what was collected and
// assembled, also on failure. The first failing stage stops the run.
func Run(ctx context.Context, app *application.App, opts Options) (*Result, error) {
	gate := opts.Gate
	if gate == nil {
		gate = NewGate(opts.Mode, app.Prompt)
	}
	p := &pipeline{
		app:  app,
		opts: opts,
		gate: gate,
		result: &Result{
			Params: models.RunParameters{
				Mode:     opts.Mode,
				Simulate: opts.Simulate,
			},
		},
	}
	return p.result, p.run(ctx)
}

func (p *pipeline) run(ctx context.Context) error {
	// flags are fixed, so reject bad ones before anything is spawned
	if err := validateFlags(p.opts.Flags); err != nil {
		return err
	}
	sm, err := statemachine.NewStateMachine(stageNames())
	if err != nil {
		return err
	}
	for sm.Running() {
		if err := ctx.Err(); err != nil {
			sm.Stop()
			return err
		}
		stage := Stage(sm.CurrentState())
		ux.Logger.Info("entering stage %s", stage)
		if err := p.step(ctx, stage); err != nil {
			sm.NextState(statemachine.Stop)
			ux.Logger.Error("stage %s failed: %s", stage, err)
			return err
		}
		sm.NextState(statemachine.Forward)
	}
	ux.Logger.PrintToUser("%s", renderSummary(p.result))
	return nil
}

func (p *pipeline) step(ctx context.Context, stage Stage) error {
	switch stage {
	case CollectBuildParams:
		return p.collectBuildParams(ctx)
	case RunOrSkipBuild:
		_, err := p.runOrSkip(ctx, stage, p.result.Build, "Skipping Docker build command.")
		return err
	case LocateArtifacts:
		return p.locateArtifacts()
	case CollectDeployParams:
		return p.collectDeployParams()
	case ConstructDeployCmd:
		return p.constructDeployCmd()
	case RunOrSkipDeploy:
		return p.runOrSkipDeploy(ctx)
	case CollectVerifyParams:
		return p.collectVerifyParams()
	case ConstructVerifyCmd:
		return p.constructVerifyCmd()
	case RunOrSkipVerify:
		_, err := p.runOrSkip(ctx, stage, p.result.Verify, "Skipping mxpy verification command.")
		return err
	}
	return fmt.Errorf("unknown stage %q", stage)
}

func validateFlags(flags InputFlags) error {
	checks := []struct {
		name     string
		value    string
		validate func(string) error
	}{
		{"network", flags.Network, prompts.ValidateNetwork},
		{"wallet", flags.Wallet, prompts.ValidateWallet},
		{"smart_contract_address", flags.ContractAddress, prompts.ValidateContractAddress},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if err := c.validate(c.value); err != nil {
			return fmt.Errorf("%w --%s=%s: %w", prompts.ErrInvalidFlagValue, c.name, c.value, err)
		}
	}
	return nil
}

func (p *pipeline) capture(flagValue string, field prompts.Field) (string, error) {
	return prompts.CaptureField(p.app.Prompt, flagValue, field, p.opts.Retry)
}

// completer lists the working directory, every prompted field offers it
func (p *pipeline) completer() prompts.Completer {
	return prompts.NewDirCompleter(p.app.Fs, p.app.GetWorkDir())
}

func (p *pipeline) collectBuildParams(ctx context.Context) error {
	workDir := p.app.GetWorkDir()
	completer := p.completer()
	projectDir, err := p.capture(p.opts.Flags.ProjectDir, prompts.Field{
		FlagName:  "project_dir",
		Prompt:    projectDirPrompt,
		Completer: completer,
		Validate:  prompts.ValidateNonEmpty,
	})
	if err != nil {
		return err
	}
	buildOutputDir, err := p.capture(p.opts.Flags.BuildOutputDir, prompts.Field{
		FlagName:  "build_output_dir",
		Prompt:    buildOutputDirPrompt,
		Completer: completer,
		Validate:  prompts.ValidateNonEmpty,
	})
	if err != nil {
		return err
	}
	p.projectPath = utils.ResolvePath(workDir, projectDir)
	p.outputPath = utils.ResolvePath(workDir, buildOutputDir)
	p.result.Params.ProjectDir = p.projectPath
	p.result.Params.BuildOutputDir = p.outputPath

	created, err := artifacts.EnsureDir(p.app.Fs, p.outputPath)
	if err != nil {
		return err
	}
	if created {
		ux.Logger.PrintToUser("Build output directory does not exist. Created directory: %s", p.outputPath)
	}

	imageVersion, err := p.capture(p.opts.Flags.ImageVersion, prompts.Field{
		FlagName:  "image_version",
		Prompt:    imageVersionPrompt,
		Completer: completer,
		Validate:  prompts.ValidateNonEmpty,
	})
	if err != nil {
		return err
	}
	if !semver.IsValid(imageVersion) {
		ux.Logger.YellowToUser("Warning: image version %s is not a semantic version (e.g., v5.3.0)", imageVersion)
	}
	p.result.Params.ImageVersion = imageVersion
	p.result.Image = docker.ImageReference(imageVersion)

	if p.opts.Mode == models.Interactive {
		if err := p.ensureImage(ctx); err != nil {
			return err
		}
	}
	p.result.Build = docker.BuilderCommand(p.opts.BuildTool, p.result.Image, p.projectPath, p.outputPath)
	ux.Logger.PrintToUser("Executing command: %s", p.result.Build)
	return nil
}

// ensureImage offers to pull the builder image when it is missing locally
func (p *pipeline) ensureImage(ctx context.Context) error {
	image := p.result.Image
	exists, err := docker.LocalImageExists(ctx, p.app.Runner, p.opts.BuildTool.Sudo, image)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	pull, err := p.app.Prompt.CaptureYesNo(
		fmt.Sprintf("The Docker image '%s' is not available locally. Do you want to download it?", image),
	)
	if err != nil {
		return err
	}
	if !pull {
		ux.Logger.PrintToUser("Docker image is required to proceed. Exiting.")
		return ErrImageRequired
	}
	if err := docker.PullImage(ctx, p.app.Runner, p.opts.BuildTool.Sudo, image); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Pulled Docker image %s", image)
	return nil
}

// runOrSkip spawns [command] when the gate allows it. It reports whether the
// command ran.
func (p *pipeline) runOrSkip(ctx context.Context, stage Stage, command models.ExternalCommand, skipMsg string) (bool, error) {
	allowed, err := p.gate.Allow(stage, command)
	if err != nil {
		return false, err
	}
	if !allowed {
		if p.opts.Mode == models.Interactive {
			ux.Logger.PrintToUser("%s", skipMsg)
		}
		return false, nil
	}
	if err := p.app.Runner.Run(ctx, command); err != nil {
		ux.Logger.RedXToUser("%s failed", stage.description())
		return false, fmt.Errorf("%s failed: %w", stage.description(), err)
	}
	p.result.Executed = append(p.result.Executed, stage)
	ux.Logger.GreenCheckmarkToUser("%s completed", stage.description())
	return true, nil
}

func (p *pipeline) locateArtifacts() error {
	set, err := artifacts.Locate(p.app.Fs, p.outputPath)
	if err != nil {
		ux.Logger.RedXToUser("Error: %s", err)
		return err
	}
	p.result.Artifacts = set
	ux.Logger.PrintToUser("Packaged source: %s", set.PackagedSource)
	ux.Logger.PrintToUser("Bytecode: %s", set.Bytecode)
	return nil
}

func (p *pipeline) collectDeployParams() error {
	network, err := p.capture(p.opts.Flags.Network, prompts.Field{
		FlagName:  "network",
		Prompt:    networkPrompt,
		Completer: p.completer(),
		Validate:  prompts.ValidateNetwork,
	})
	if err != nil {
		return err
	}
	wallet, err := p.capture(p.opts.Flags.Wallet, prompts.Field{
		FlagName:  "wallet",
		Prompt:    walletPrompt,
		Completer: p.completer(),
		Validate:  prompts.ValidateWallet,
	})
	if err != nil {
		return err
	}
	p.result.Params.Network = models.NetworkFromSelector(network)
	p.result.Params.WalletPath = wallet
	return nil
}

func (p *pipeline) constructDeployCmd() error {
	command, err := mxpy.DeployCommand(mxpy.DeployParams{
		Bytecode:   p.result.Artifacts.Bytecode,
		WalletPath: p.result.Params.WalletPath,
		Network:    p.result.Params.Network,
		Simulate:   p.result.Params.Simulate,
		ArgStyle:   p.opts.ArgStyle,
	})
	if err != nil {
		return err
	}
	p.result.Deploy = command
	ux.Logger.PrintToUser(
		"Please deploy the smart contract created in '%s' to %s.",
		p.outputPath,
		p.result.Params.Network,
	)
	ux.Logger.PrintToUser("You can deploy the contract using the following command: %s", command)
	return nil
}

func (p *pipeline) runOrSkipDeploy(ctx context.Context) error {
	ran, err := p.runOrSkip(ctx, RunOrSkipDeploy, p.result.Deploy, "Skipping contract deployment.")
	if err != nil || ran {
		return err
	}
	if p.opts.Mode != models.Scripted || p.opts.Deployed {
		return nil
	}
	// scripted runs leave the deployment to the operator
	return prompts.ConfirmUntilYes(
		p.app.Prompt,
		fmt.Sprintf("Did you deploy the smart contract created in '%s' to %s?", p.outputPath, p.result.Params.Network),
		"Deploy the smart contract first, then answer yes.",
		p.opts.Retry,
	)
}

func (p *pipeline) collectVerifyParams() error {
	address, err := p.capture(p.opts.Flags.ContractAddress, prompts.Field{
		FlagName:  "smart_contract_address",
		Prompt:    addressPrompt,
		Completer: p.completer(),
		Validate:  prompts.ValidateContractAddress,
	})
	if err != nil {
		return err
	}
	p.result.Params.ContractAddress = address
	return nil
}

func (p *pipeline) constructVerifyCmd() error {
	command, err := mxpy.VerifyCommand(mxpy.VerifyParams{
		ContractAddress: p.result.Params.ContractAddress,
		PackagedSource:  p.result.Artifacts.PackagedSource,
		Network:         p.result.Params.Network,
		DockerImage:     p.result.Image,
		WalletPath:      p.result.Params.WalletPath,
		ArgStyle:        p.opts.ArgStyle,
	})
	if err != nil {
		return err
	}
	p.result.Verify = command
	ux.Logger.PrintToUser("Executing command: %s", command)
	return nil
}
