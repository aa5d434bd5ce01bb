// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package workflow

import (
	"strings"

	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func renderSummary(result *Result) string {
	params := result.Params
	t := ux.DefaultTable("Run Summary", nil)
	t.AppendRow(table.Row{"Mode", params.Mode})
	t.AppendRow(table.Row{"Project", params.ProjectDir})
	t.AppendRow(table.Row{"Build Output", params.BuildOutputDir})
	t.AppendRow(table.Row{"Docker Image", result.Image})
	t.AppendRow(table.Row{"Network", params.Network})
	t.AppendRow(table.Row{"Wallet", params.WalletPath + " (" + params.WalletKind().String() + ")"})
	t.AppendRow(table.Row{"Contract Address", params.ContractAddress})
	t.AppendRow(table.Row{"Packaged Source", result.Artifacts.PackagedSource})
	t.AppendRow(table.Row{"Bytecode", result.Artifacts.Bytecode})
	t.AppendRow(table.Row{"Gas Limit", ux.ConvertToStringWithThousandSeparator(constants.DeployGasLimit)})
	t.AppendRow(table.Row{"Simulate Deploy", yesNo(params.Simulate)})
	executed := []string{}
	for _, stage := range result.Executed {
		executed = append(executed, stage.description())
	}
	t.AppendRow(table.Row{"Executed", strings.Join(executed, "\n")})
	return t.Render()
}
