// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package mxpy

import (
	"strconv"

	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
)

type DeployParams struct {
	Bytecode   string
	WalletPath string
	Network    models.Network
	Simulate   bool
	ArgStyle   ArgStyle
}

type VerifyParams struct {
	ContractAddress string
	PackagedSource  string
	Network         models.Network
	DockerImage     string
	WalletPath      string
	ArgStyle        ArgStyle
}

func baseArgs(subcommand ...string) []string {
	return append([]string{"--verbose", "contract"}, subcommand...)
}

// DeployCommand assembles
//
//	mxpy --verbose contract deploy --recall-nonce --metadata-not-upgradeable
//	  --metadata-payable --bytecode <wasm> <auth> --gas-limit 60000000
//	  --proxy <gateway> --chain <chain> {--send|--simulate}
func DeployCommand(params DeployParams) (models.ExternalCommand, error) {
	if params.Bytecode == "" {
		return models.ExternalCommand{}, ErrMissingArtifact
	}
	if params.Network == models.UndefinedNetwork {
		return models.ExternalCommand{}, ErrUndefinedNetwork
	}
	auth, err := WalletAuthArgs(params.WalletPath, params.ArgStyle)
	if err != nil {
		return models.ExternalCommand{}, err
	}
	args := baseArgs(
		"deploy",
		"--recall-nonce",
		"--metadata-not-upgradeable",
		"--metadata-payable",
		"--bytecode", params.Bytecode,
	)
	args = append(args, auth...)
	args = append(args,
		"--gas-limit", strconv.FormatUint(constants.DeployGasLimit, 10),
		"--proxy", params.Network.GatewayURL(),
		"--chain", params.Network.ChainID(),
	)
	if params.Simulate {
		args = append(args, "--simulate")
	} else {
		args = append(args, "--send")
	}
	return models.NewExternalCommand(constants.MxpyBin, args...), nil
}

// VerifyCommand assembles
//
//	mxpy --verbose contract verify <address> --packaged-src=<path>
//	  --verifier-url=<url> --docker-image=<image> <auth>
func VerifyCommand(params VerifyParams) (models.ExternalCommand, error) {
	switch {
	case params.ContractAddress == "":
		return models.ExternalCommand{}, ErrMissingAddress
	case params.PackagedSource == "":
		return models.ExternalCommand{}, ErrMissingArtifact
	case params.DockerImage == "":
		return models.ExternalCommand{}, ErrMissingDockerImage
	case params.Network == models.UndefinedNetwork:
		return models.ExternalCommand{}, ErrUndefinedNetwork
	}
	auth, err := WalletAuthArgs(params.WalletPath, params.ArgStyle)
	if err != nil {
		return models.ExternalCommand{}, err
	}
	args := baseArgs(
		"verify",
		params.ContractAddress,
		"--packaged-src="+params.PackagedSource,
		"--verifier-url="+params.Network.VerifierURL(),
		"--docker-image="+params.DockerImage,
	)
	args = append(args, auth...)
	return models.NewExternalCommand(constants.MxpyBin, args...), nil
}
