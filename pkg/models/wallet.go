// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"strings"

	"github.com/xverify/xverify-cli/pkg/constants"
)

type WalletKind int64

const (
	UndefinedWallet WalletKind = iota
	PemWallet
	KeyfileWallet
)

// WalletKindFromPath decides the wallet kind from the file extension only.
func WalletKindFromPath(path string) WalletKind {
	switch {
	case strings.HasSuffix(path, constants.PemExtension):
		return PemWallet
	case strings.HasSuffix(path, constants.KeyfileExtension):
		return KeyfileWallet
	}
	return UndefinedWallet
}

// AuthFlag is the mxpy flag that takes the wallet path
func (w WalletKind) AuthFlag() string {
	switch w {
	case PemWallet:
		return constants.PemFlag
	case KeyfileWallet:
		return constants.KeyfileFlag
	}
	return ""
}

func (w WalletKind) String() string {
	switch w {
	case PemWallet:
		return "PEM"
	case KeyfileWallet:
		return "Keyfile"
	}
	return "Unknown Wallet"
}
