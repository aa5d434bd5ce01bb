// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workflow

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/xverify/xverify-cli/pkg/application"
	"github.com/xverify/xverify-cli/pkg/artifacts"
	"github.com/xverify/xverify-cli/pkg/binutils"
	"github.com/xverify/xverify-cli/pkg/config"
	"github.com/xverify/xverify-cli/pkg/docker"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/mxpy"
	"github.com/xverify/xverify-cli/pkg/prompts"
	"github.com/xverify/xverify-cli/pkg/ux"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	workDir     = "/work"
	testAddress = "erd1qqqqqqqqqqqqqpgq5cfxcvq5dqp290j2q9gw5yc8fcremmlqplkqtly3rs"
)

type fakePrompter struct {
	answers    []string
	yesNo      []bool
	prompts    []string
	completers []prompts.Completer
}

func (p *fakePrompter) CaptureString(promptStr string) (string, error) {
	p.prompts = append(p.prompts, promptStr)
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *fakePrompter) CapturePath(promptStr string, completer prompts.Completer) (string, error) {
	p.completers = append(p.completers, completer)
	return p.CaptureString(promptStr)
}

func (p *fakePrompter) CaptureYesNo(promptStr string) (bool, error) {
	p.prompts = append(p.prompts, promptStr)
	if len(p.yesNo) == 0 {
		return false, errors.New("no more answers")
	}
	answer := p.yesNo[0]
	p.yesNo = p.yesNo[1:]
	return answer, nil
}

func (p *fakePrompter) CaptureNoYes(promptStr string) (bool, error) {
	return p.CaptureYesNo(promptStr)
}

// fakeRunner records spawned commands. A build command drops the contract
// artifacts into its output dir unless skipArtifacts is set.
type fakeRunner struct {
	fs            afero.Fs
	run           []models.ExternalCommand
	output        []models.ExternalCommand
	failOn        string
	imageMissing  bool
	skipArtifacts bool
}

func argAfter(args []string, flag string) string {
	i := slices.Index(args, flag)
	if i < 0 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}

func (r *fakeRunner) Run(_ context.Context, command models.ExternalCommand) error {
	r.run = append(r.run, command)
	if r.failOn != "" && strings.Contains(command.String(), r.failOn) {
		return &binutils.ProcessError{Command: command.String(), ExitCode: 2, Err: errors.New("exit status 2")}
	}
	if out := argAfter(command.Args, "--output"); out != "" && !r.skipArtifacts {
		dir := filepath.Join(out, "barterswap")
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(r.fs, filepath.Join(dir, "barterswap-1.0.0.source.json"), []byte("{}"), 0o644); err != nil {
			return err
		}
		return afero.WriteFile(r.fs, filepath.Join(dir, "barterswap.wasm"), []byte{0, 'a', 's', 'm'}, 0o644)
	}
	return nil
}

func (r *fakeRunner) Output(_ context.Context, command models.ExternalCommand) ([]byte, error) {
	r.output = append(r.output, command)
	if r.imageMissing {
		return nil, &binutils.ProcessError{Command: command.String(), ExitCode: 1, Err: errors.New("exit status 1")}
	}
	return []byte("[]"), nil
}

func setup(t *testing.T, prompter *fakePrompter) (*application.App, *fakeRunner) {
	t.Helper()
	ux.NewUserLog(zap.NewNop(), &bytes.Buffer{})
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Join(workDir, "barterswap"), 0o755))
	runner := &fakeRunner{fs: fs}
	app := application.New()
	app.Setup(t.TempDir(), workDir, zap.NewNop(), config.New(), prompter, runner, fs)
	return app, runner
}

func scriptedOptions(network string, wallet string) Options {
	return Options{
		Mode: models.Scripted,
		Flags: InputFlags{
			ProjectDir:      "barterswap",
			BuildOutputDir:  "verifyswap",
			ImageVersion:    "v5.3.0",
			Network:         network,
			Wallet:          wallet,
			ContractAddress: testAddress,
		},
		Deployed:  true,
		BuildTool: docker.DefaultBuildToolConfig(),
		Retry:     prompts.UnboundedRetries,
	}
}

func TestScriptedDevnetPem(t *testing.T) {
	prompter := &fakePrompter{}
	app, runner := setup(t, prompter)

	result, err := Run(context.Background(), app, scriptedOptions("D", "mywallet.pem"))
	require.NoError(t, err)
	require.Empty(t, prompter.prompts)

	require.Equal(t,
		"sudo python3 ./build_with_docker.py --image multiversx/sdk-rust-contract-builder:v5.3.0 --project /work/barterswap --output /work/verifyswap",
		result.Build.String(),
	)
	require.Len(t, runner.run, 1)
	require.Equal(t, []Stage{RunOrSkipBuild}, result.Executed)
	require.False(t, result.Ran(RunOrSkipDeploy))
	require.False(t, result.Ran(RunOrSkipVerify))

	verify := result.Verify.String()
	require.Contains(t, verify, "mxpy --verbose contract verify "+testAddress)
	require.Contains(t, verify, "--packaged-src=/work/verifyswap/barterswap/barterswap-1.0.0.source.json")
	require.Contains(t, verify, "--verifier-url=https://devnet-play-api.multiversx.com")
	require.Contains(t, verify, "--docker-image=multiversx/sdk-rust-contract-builder:v5.3.0")
	require.Contains(t, verify, "--pem mywallet.pem")

	deploy := result.Deploy.String()
	require.Contains(t, deploy, "--bytecode /work/verifyswap/barterswap/barterswap.wasm")
	require.Contains(t, deploy, "--proxy https://devnet-gateway.multiversx.com --chain D")
	require.True(t, strings.HasSuffix(deploy, "--send"))
}

func TestScriptedMainnetKeyfile(t *testing.T) {
	app, _ := setup(t, &fakePrompter{})

	result, err := Run(context.Background(), app, scriptedOptions("M", "mywallet.json"))
	require.NoError(t, err)
	require.Equal(t, models.Mainnet, result.Params.Network)
	require.Equal(t, models.KeyfileWallet, result.Params.WalletKind())

	verify := result.Verify.String()
	require.Contains(t, verify, "--verifier-url=https://play-api.multiversx.com")
	require.Contains(t, verify, "--keyfile mywallet.json")
	require.Contains(t, result.Deploy.String(), "--chain 1")
}

func TestScriptedCombinedArgStyle(t *testing.T) {
	app, _ := setup(t, &fakePrompter{})
	opts := scriptedOptions("D", "mywallet.pem")
	opts.ArgStyle = mxpy.ArgStyleCombined

	result, err := Run(context.Background(), app, opts)
	require.NoError(t, err)
	require.Contains(t, result.Verify.String(), "--pem=mywallet.pem")
}

func TestScriptedWaitsForDeployment(t *testing.T) {
	prompter := &fakePrompter{yesNo: []bool{false, false, true}}
	app, _ := setup(t, prompter)
	opts := scriptedOptions("D", "mywallet.pem")
	opts.Deployed = false

	result, err := Run(context.Background(), app, opts)
	require.NoError(t, err)
	require.Len(t, prompter.prompts, 3)
	require.Equal(t, "Did you deploy the smart contract created in '/work/verifyswap' to Devnet?", prompter.prompts[0])
	require.False(t, result.Verify.IsEmpty())
}

func TestScriptedDeploymentConfirmationBounded(t *testing.T) {
	prompter := &fakePrompter{yesNo: []bool{false, false}}
	app, _ := setup(t, prompter)
	opts := scriptedOptions("D", "mywallet.pem")
	opts.Deployed = false
	opts.Retry = prompts.RetryPolicy{MaxAttempts: 2}

	result, err := Run(context.Background(), app, opts)
	require.ErrorIs(t, err, prompts.ErrMaxAttemptsExceeded)
	require.True(t, result.Verify.IsEmpty())
}

func TestScriptedSimulate(t *testing.T) {
	app, _ := setup(t, &fakePrompter{})
	opts := scriptedOptions("D", "mywallet.pem")
	opts.Simulate = true

	result, err := Run(context.Background(), app, opts)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(result.Deploy.String(), "--simulate"))
}

func TestInvalidFlagFailsBeforeBuild(t *testing.T) {
	app, runner := setup(t, &fakePrompter{})

	_, err := Run(context.Background(), app, scriptedOptions("T", "mywallet.pem"))
	require.ErrorIs(t, err, prompts.ErrInvalidFlagValue)
	require.ErrorIs(t, err, prompts.ErrInvalidNetwork)
	require.Empty(t, runner.run)

	_, err = Run(context.Background(), app, scriptedOptions("D", "wallet.txt"))
	require.ErrorIs(t, err, prompts.ErrInvalidWallet)
	require.Empty(t, runner.run)
}

func TestMissingArtifactsAbort(t *testing.T) {
	prompter := &fakePrompter{}
	app, runner := setup(t, prompter)
	runner.skipArtifacts = true
	opts := scriptedOptions("", "")

	result, err := Run(context.Background(), app, opts)
	require.ErrorIs(t, err, artifacts.ErrNoPackagedSource)
	require.True(t, result.Deploy.IsEmpty())
	require.True(t, result.Verify.IsEmpty())
	// deploy parameters are never asked for
	require.Empty(t, prompter.prompts)
}

func TestBuildFailureStopsRun(t *testing.T) {
	app, runner := setup(t, &fakePrompter{})
	runner.failOn = "build_with_docker.py"

	result, err := Run(context.Background(), app, scriptedOptions("D", "mywallet.pem"))
	var perr *binutils.ProcessError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.ExitCode)
	require.Empty(t, result.Executed)
	require.True(t, result.Deploy.IsEmpty())
}

func TestCreatesBuildOutputDir(t *testing.T) {
	app, _ := setup(t, &fakePrompter{})
	exists, err := afero.DirExists(app.Fs, "/work/verifyswap")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = Run(context.Background(), app, scriptedOptions("D", "mywallet.pem"))
	require.NoError(t, err)
	exists, err = afero.DirExists(app.Fs, "/work/verifyswap")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestInteractiveRun(t *testing.T) {
	prompter := &fakePrompter{
		answers: []string{
			"barterswap", "verifyswap", "v5.3.0",
			"X", "D",
			"wallet.txt", "mywallet.pem",
			"erd1short", testAddress,
		},
		// build yes, deploy no, verify yes
		yesNo: []bool{true, false, true},
	}
	app, runner := setup(t, prompter)

	result, err := Run(context.Background(), app, Options{
		Mode:      models.Interactive,
		BuildTool: docker.DefaultBuildToolConfig(),
		Retry:     prompts.UnboundedRetries,
	})
	require.NoError(t, err)
	require.Equal(t, []Stage{RunOrSkipBuild, RunOrSkipVerify}, result.Executed)
	require.Len(t, runner.output, 1)
	require.Equal(t, "sudo docker image inspect multiversx/sdk-rust-contract-builder:v5.3.0", runner.output[0].String())
	require.Len(t, runner.run, 2)
	require.Equal(t, result.Verify, runner.run[1])
	require.Equal(t, testAddress, result.Params.ContractAddress)
	require.Contains(t, prompter.prompts, "Do you want to execute the mxpy contract deployment command?")
	// every typed field, retries included, offers tab completion
	require.Len(t, prompter.completers, 9)
	for _, completer := range prompter.completers {
		require.NotNil(t, completer)
	}
}

func TestInteractiveSkipAll(t *testing.T) {
	prompter := &fakePrompter{
		answers: []string{"barterswap", "verifyswap", "v5.3.0", "M", "mywallet.json", testAddress},
		yesNo:   []bool{false, false, false},
	}
	app, runner := setup(t, prompter)
	// artifacts of an earlier build
	_, err := Run(context.Background(), app, scriptedOptions("M", "mywallet.json"))
	require.NoError(t, err)
	runner.run = nil

	result, err := Run(context.Background(), app, Options{
		Mode:      models.Interactive,
		BuildTool: docker.DefaultBuildToolConfig(),
	})
	require.NoError(t, err)
	require.Empty(t, result.Executed)
	require.Empty(t, runner.run)
	require.False(t, result.Verify.IsEmpty())
}

func TestUserTextWithPercentIsPrintedVerbatim(t *testing.T) {
	prompter := &fakePrompter{
		answers: []string{"barterswap", "verifyswap", "v5%d", "D", "mywallet.pem", testAddress},
	}
	app, _ := setup(t, prompter)
	out := &bytes.Buffer{}
	ux.Logger = &ux.UserLog{Writer: out}

	result, err := Run(context.Background(), app, Options{
		Mode:      models.Interactive,
		BuildTool: docker.DefaultBuildToolConfig(),
		Gate:      ScriptedGate{},
	})
	require.NoError(t, err)
	require.Equal(t, "v5%d", result.Params.ImageVersion)
	output := out.String()
	require.Contains(t, output, "Warning: image version v5%d is not a semantic version")
	require.Contains(t, output, "multiversx/sdk-rust-contract-builder:v5%d")
	require.Contains(t, output, "Skipping contract deployment.")
	require.NotContains(t, output, "%!")
}

func TestInteractiveMissingImage(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		prompter := &fakePrompter{
			answers: []string{"barterswap", "verifyswap", "v5.3.0"},
			yesNo:   []bool{false},
		}
		app, runner := setup(t, prompter)
		runner.imageMissing = true

		_, err := Run(context.Background(), app, Options{Mode: models.Interactive, BuildTool: docker.DefaultBuildToolConfig()})
		require.ErrorIs(t, err, ErrImageRequired)
		require.Empty(t, runner.run)
	})

	t.Run("pulled", func(t *testing.T) {
		prompter := &fakePrompter{
			answers: []string{"barterswap", "verifyswap", "v5.3.0", "D", "mywallet.pem", testAddress},
			yesNo:   []bool{true, true, false, false},
		}
		app, runner := setup(t, prompter)
		runner.imageMissing = true

		result, err := Run(context.Background(), app, Options{Mode: models.Interactive, BuildTool: docker.DefaultBuildToolConfig()})
		require.NoError(t, err)
		require.Equal(t, "sudo docker pull multiversx/sdk-rust-contract-builder:v5.3.0", runner.run[0].String())
		require.Equal(t, []Stage{RunOrSkipBuild}, result.Executed)
	})
}

func TestInteractiveMaxAttempts(t *testing.T) {
	prompter := &fakePrompter{
		answers: []string{"barterswap", "verifyswap", "v5.3.0", "X", "Y"},
		yesNo:   []bool{true},
	}
	app, _ := setup(t, prompter)

	_, err := Run(context.Background(), app, Options{
		Mode:      models.Interactive,
		BuildTool: docker.DefaultBuildToolConfig(),
		Retry:     prompts.RetryPolicy{MaxAttempts: 2},
	})
	require.ErrorIs(t, err, prompts.ErrMaxAttemptsExceeded)
}

func TestCanceledContext(t *testing.T) {
	app, runner := setup(t, &fakePrompter{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, app, scriptedOptions("D", "mywallet.pem"))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, runner.run)
}

func TestGates(t *testing.T) {
	require.IsType(t, ScriptedGate{}, NewGate(models.Scripted, nil))
	require.IsType(t, ConfirmGate{}, NewGate(models.Interactive, &fakePrompter{}))

	gate := ScriptedGate{}
	for _, stage := range []Stage{RunOrSkipBuild, RunOrSkipDeploy, RunOrSkipVerify} {
		allowed, err := gate.Allow(stage, models.ExternalCommand{})
		require.NoError(t, err)
		require.Equal(t, stage == RunOrSkipBuild, allowed)
	}

	prompter := &fakePrompter{yesNo: []bool{true}}
	allowed, err := ConfirmGate{Prompter: prompter}.Allow(RunOrSkipVerify, models.ExternalCommand{})
	require.NoError(t, err)
	require.True(t, allowed)
	require.Equal(t, []string{"Do you want to execute the mxpy verification command?"}, prompter.prompts)
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(&Result{
		Params:   models.RunParameters{Network: models.Devnet, WalletPath: "mywallet.pem"},
		Executed: []Stage{RunOrSkipBuild},
	})
	require.Contains(t, out, "60_000_000")
	require.Contains(t, out, "Devnet")
	require.Contains(t, out, "mywallet.pem (PEM)")
	require.Contains(t, out, "Docker build command")
}
