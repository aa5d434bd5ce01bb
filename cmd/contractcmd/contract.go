// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/xverify/xverify-cli/pkg/application"
	"github.com/xverify/xverify-cli/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.App

// xverify contract
func NewCmd(injectedApp *application.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Build, deploy and verify MultiversX smart contracts",
		Long: `The contract command suite builds a smart contract inside the reproducible
contract builder image, assembles the mxpy deployment command and submits the
packaged source for verification.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// contract run
	cmd.AddCommand(newRunCmd())
	// contract verify
	cmd.AddCommand(newVerifyCmd())
	return cmd
}
