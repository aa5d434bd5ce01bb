// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"context"

	"github.com/xverify/xverify-cli/pkg/dependencies"
	"github.com/xverify/xverify-cli/pkg/ux"
)

func checkPrerequisites(ctx context.Context) error {
	spinSession := ux.NewUserSpinner()
	defer spinSession.Stop()
	spinner := spinSession.SpinToUser("Checking Docker and mxpy installation")
	if err := dependencies.CheckPrerequisites(ctx, app.Runner, dependencies.RequiredTools...); err != nil {
		ux.SpinFailWithError(spinner, "", err)
		return err
	}
	ux.SpinComplete(spinner)
	return nil
}
