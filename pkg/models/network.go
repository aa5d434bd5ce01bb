// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "github.com/xverify/xverify-cli/pkg/constants"

type Network int64

const (
	UndefinedNetwork Network = iota
	Devnet
	Mainnet
)

func (n Network) String() string {
	switch n {
	case Devnet:
		return "Devnet"
	case Mainnet:
		return "Mainnet"
	}
	return "Unknown Network"
}

// NetworkFromSelector maps the single character network code the user types
// ("D" or "M") to a Network. Anything else is UndefinedNetwork.
func NetworkFromSelector(selector string) Network {
	switch selector {
	case constants.DevnetSelector:
		return Devnet
	case constants.MainnetSelector:
		return Mainnet
	}
	return UndefinedNetwork
}

func (n Network) Selector() string {
	switch n {
	case Devnet:
		return constants.DevnetSelector
	case Mainnet:
		return constants.MainnetSelector
	}
	return ""
}

// GatewayURL is the proxy mxpy sends deploy transactions to.
func (n Network) GatewayURL() string {
	switch n {
	case Devnet:
		return constants.DevnetGatewayURL
	case Mainnet:
		return constants.MainnetGatewayURL
	}
	return ""
}

func (n Network) VerifierURL() string {
	switch n {
	case Devnet:
		return constants.DevnetVerifierURL
	case Mainnet:
		return constants.MainnetVerifierURL
	}
	return ""
}

func (n Network) ChainID() string {
	switch n {
	case Devnet:
		return constants.DevnetChainID
	case Mainnet:
		return constants.MainnetChainID
	}
	return ""
}
