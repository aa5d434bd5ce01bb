// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strings"

	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
)

// user facing messages, printed as is before re-prompting
//
//nolint:stylecheck
var (
	ErrInvalidNetwork         = errors.New("Invalid network. Please enter 'D' for Devnet or 'M' for Mainnet.")
	ErrInvalidWallet          = errors.New("Invalid wallet file. The extension must be .pem or .json.")
	ErrInvalidContractAddress = errors.New("Invalid smart contract address. It should start with 'erd1' and be 62 characters long.")
	ErrEmptyInput             = errors.New("the value can't be empty")
)

func ValidateNetwork(input string) error {
	if models.NetworkFromSelector(input) == models.UndefinedNetwork {
		return ErrInvalidNetwork
	}
	return nil
}

func ValidateWallet(input string) error {
	if models.WalletKindFromPath(input) == models.UndefinedWallet {
		return ErrInvalidWallet
	}
	return nil
}

// ValidateContractAddress only checks the shape of the address, not its
// checksum nor whether it exists on chain.
func ValidateContractAddress(input string) error {
	if !strings.HasPrefix(input, constants.ContractAddressPrefix) || len(input) != constants.ContractAddressLength {
		return ErrInvalidContractAddress
	}
	return nil
}

func ValidateNonEmpty(input string) error {
	if input == "" {
		return ErrEmptyInput
	}
	return nil
}
