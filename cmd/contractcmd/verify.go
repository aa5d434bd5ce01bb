// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/xverify/xverify-cli/pkg/cobrautils"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/ux"
	"github.com/xverify/xverify-cli/pkg/workflow"

	"github.com/spf13/cobra"
)

type VerifyFlags struct {
	Inputs   workflow.InputFlags
	Deployed bool
	Tool     BuildToolFlags
}

var verifyFlags VerifyFlags

// xverify contract verify
func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Build a smart contract and print its verification command",
		Long: `The contract verify command runs the Docker build with the given parameters
and prints the mxpy verification command for the deployed contract. It asks
for any parameter not given as a flag, and waits until you confirm the
contract was deployed unless --deployed is set.`,
		Args: cobrautils.ExactArgs(0),
		RunE: verifyContract,
	}
	cmd.Flags().StringVar(&verifyFlags.Inputs.ProjectDir, "project_dir", "", "smart contract project directory")
	cmd.Flags().StringVar(&verifyFlags.Inputs.BuildOutputDir, "build_output_dir", "", "directory the build artifacts are written to")
	cmd.Flags().StringVar(&verifyFlags.Inputs.ImageVersion, "image_version", "", "contract builder image version (e.g. v5.3.0)")
	cmd.Flags().StringVar(&verifyFlags.Inputs.ContractAddress, "smart_contract_address", "", "address of the deployed contract")
	cmd.Flags().StringVar(&verifyFlags.Inputs.Network, "network", "", "network of the contract (D for Devnet, M for Mainnet)")
	cmd.Flags().StringVar(&verifyFlags.Inputs.Wallet, "wallet", "", "wallet file (.pem or .json)")
	cmd.Flags().BoolVar(&verifyFlags.Deployed, "deployed", false, "the contract is already deployed, skip the confirmation")
	addBuildToolFlags(cmd, &verifyFlags.Tool)
	return cmd
}

func verifyContract(cmd *cobra.Command, _ []string) error {
	opts := workflow.Options{
		Mode:     models.Scripted,
		Flags:    verifyFlags.Inputs,
		Deployed: verifyFlags.Deployed,
	}
	if err := verifyFlags.Tool.apply(cmd.Flags(), app.Conf, &opts); err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := checkPrerequisites(ctx); err != nil {
		return err
	}
	result, err := workflow.Run(ctx, app, opts)
	if err != nil {
		return err
	}
	ux.Logger.PrintLineSeparator()
	ux.Logger.PrintToUser("Build command: %s", result.Build)
	ux.Logger.PrintToUser("Verify command: %s", result.Verify)
	return nil
}
