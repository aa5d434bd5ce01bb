// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"errors"
	"fmt"

	"github.com/xverify/xverify-cli/pkg/config"
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/docker"
	"github.com/xverify/xverify-cli/pkg/mxpy"
	"github.com/xverify/xverify-cli/pkg/prompts"
	"github.com/xverify/xverify-cli/pkg/workflow"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	buildScriptFlag    = "build-script"
	sudoFlag           = "sudo"
	walletArgStyleFlag = "wallet-arg-style"
	maxAttemptsFlag    = "max-attempts"
)

// BuildToolFlags are shared by every contract command. Flags left unset on
// the command line take their value from the config file, if any.
type BuildToolFlags struct {
	BuildScript    string
	Sudo           bool
	WalletArgStyle string
	MaxAttempts    int
}

func addBuildToolFlags(cmd *cobra.Command, flags *BuildToolFlags) {
	set := pflag.NewFlagSet("build tool", pflag.ContinueOnError)
	set.StringVar(&flags.BuildScript, buildScriptFlag, constants.DefaultBuildScript, "contract build script, run with python3")
	set.BoolVar(&flags.Sudo, sudoFlag, true, "run docker and the build script with sudo")
	set.StringVar(
		&flags.WalletArgStyle,
		walletArgStyleFlag,
		mxpy.ArgStyleSeparateName,
		fmt.Sprintf("how the wallet flag is passed to mxpy (%s or %s)", mxpy.ArgStyleSeparateName, mxpy.ArgStyleCombinedName),
	)
	set.IntVar(&flags.MaxAttempts, maxAttemptsFlag, 0, "attempts allowed for an invalid answer, 0 asks until valid")
	cmd.Flags().AddFlagSet(set)
}

func invalidFlag(name string, value any, err error) error {
	return fmt.Errorf("%w --%s=%v: %w", prompts.ErrInvalidFlagValue, name, value, err)
}

// apply merges the flags with the config file defaults into [opts]
func (f BuildToolFlags) apply(set *pflag.FlagSet, conf *config.Config, opts *workflow.Options) error {
	if conf != nil {
		if !set.Changed(buildScriptFlag) && conf.ConfigValueIsSet(constants.ConfigBuildScriptKey) {
			f.BuildScript = conf.GetConfigStringValue(constants.ConfigBuildScriptKey)
		}
		if !set.Changed(sudoFlag) && conf.ConfigValueIsSet(constants.ConfigSudoKey) {
			f.Sudo = conf.GetConfigBoolValue(constants.ConfigSudoKey)
		}
		if !set.Changed(walletArgStyleFlag) && conf.ConfigValueIsSet(constants.ConfigWalletArgStyleKey) {
			f.WalletArgStyle = conf.GetConfigStringValue(constants.ConfigWalletArgStyleKey)
		}
		if !set.Changed(maxAttemptsFlag) && conf.ConfigValueIsSet(constants.ConfigMaxAttemptsKey) {
			f.MaxAttempts = conf.GetConfigIntValue(constants.ConfigMaxAttemptsKey)
		}
	}
	style, err := mxpy.ArgStyleFromString(f.WalletArgStyle)
	if err != nil {
		return invalidFlag(walletArgStyleFlag, f.WalletArgStyle, err)
	}
	if f.MaxAttempts < 0 {
		return invalidFlag(maxAttemptsFlag, f.MaxAttempts, errors.New("must not be negative"))
	}
	if f.BuildScript == "" {
		return invalidFlag(buildScriptFlag, f.BuildScript, prompts.ErrEmptyInput)
	}
	opts.BuildTool = docker.BuildToolConfig{
		Sudo:        f.Sudo,
		Interpreter: constants.PythonBin,
		Script:      f.BuildScript,
	}
	opts.ArgStyle = style
	opts.Retry = prompts.RetryPolicy{MaxAttempts: f.MaxAttempts}
	return nil
}
