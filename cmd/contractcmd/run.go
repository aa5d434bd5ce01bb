// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/xverify/xverify-cli/pkg/cobrautils"
	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/workflow"

	"github.com/spf13/cobra"
)

var runFlags BuildToolFlags

// xverify contract run [simulate]
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [simulate]",
		Short: "Build, deploy and verify a smart contract step by step",
		Long: `The contract run command asks for every parameter (with tab completion for
paths) and confirms each command before running it: the Docker build, the mxpy
deployment and the mxpy verification. Answering no skips a command.

Pass simulate to only simulate the deployment transaction.`,
		ValidArgs: []string{constants.SimulateArg},
		Args:      cobrautils.OnlyValidArgsUpTo(1),
		RunE:      runContract,
	}
	addBuildToolFlags(cmd, &runFlags)
	return cmd
}

func runContract(cmd *cobra.Command, args []string) error {
	opts := workflow.Options{
		Mode:     models.Interactive,
		Simulate: len(args) == 1 && args[0] == constants.SimulateArg,
	}
	if err := runFlags.apply(cmd.Flags(), app.Conf, &opts); err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := checkPrerequisites(ctx); err != nil {
		return err
	}
	_, err := workflow.Run(ctx, app, opts)
	return err
}
