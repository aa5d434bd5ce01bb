// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package mxpy

import (
	"errors"
	"fmt"

	"github.com/xverify/xverify-cli/pkg/models"
)

var (
	ErrUnsupportedWallet  = errors.New("unsupported wallet file, the extension must be .pem or .json")
	ErrUnknownArgStyle    = errors.New("unknown wallet argument style")
	ErrUndefinedNetwork   = errors.New("undefined network")
	ErrMissingArtifact    = errors.New("missing build artifact")
	ErrMissingAddress     = errors.New("missing smart contract address")
	ErrMissingDockerImage = errors.New("missing docker image")
)

// ArgStyle selects how a flag and its value are laid out on the command line.
// mxpy accepts both forms.
type ArgStyle int64

const (
	// ArgStyleSeparate emits two tokens: --pem wallet.pem
	ArgStyleSeparate ArgStyle = iota
	// ArgStyleCombined emits one token: --pem=wallet.pem
	ArgStyleCombined
)

const (
	ArgStyleSeparateName = "separate"
	ArgStyleCombinedName = "combined"
)

func (s ArgStyle) String() string {
	switch s {
	case ArgStyleSeparate:
		return ArgStyleSeparateName
	case ArgStyleCombined:
		return ArgStyleCombinedName
	}
	return "unknown"
}

func ArgStyleFromString(s string) (ArgStyle, error) {
	switch s {
	case ArgStyleSeparateName, "":
		return ArgStyleSeparate, nil
	case ArgStyleCombinedName:
		return ArgStyleCombined, nil
	}
	return ArgStyleSeparate, fmt.Errorf("%w %q, valid values are %q and %q", ErrUnknownArgStyle, s, ArgStyleSeparateName, ArgStyleCombinedName)
}

// FlagArgs formats a flag with its value according to the style
func (s ArgStyle) FlagArgs(flag string, value string) []string {
	if s == ArgStyleCombined {
		return []string{flag + "=" + value}
	}
	return []string{flag, value}
}

// WalletAuthArgs is the single place where the wallet flag (--pem or
// --keyfile, by extension) is rendered for both deploy and verify.
func WalletAuthArgs(walletPath string, style ArgStyle) ([]string, error) {
	flag := models.WalletKindFromPath(walletPath).AuthFlag()
	if flag == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWallet, walletPath)
	}
	return style.FlagArgs(flag, walletPath), nil
}
