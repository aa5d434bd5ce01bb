// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

type Mode int64

const (
	// Interactive asks for confirmation before spawning each command
	Interactive Mode = iota
	// Scripted always runs the build, never runs deploy or verify, and hands
	// the assembled commands back to the caller
	Scripted
)

func (m Mode) String() string {
	switch m {
	case Interactive:
		return "Interactive"
	case Scripted:
		return "Scripted"
	}
	return "Unknown Mode"
}

type RunParameters struct {
	ProjectDir      string
	BuildOutputDir  string
	ImageVersion    string
	Network         Network
	WalletPath      string
	ContractAddress string
	Simulate        bool
	Mode            Mode
}

func (p RunParameters) WalletKind() WalletKind {
	return WalletKindFromPath(p.WalletPath)
}

// BuildArtifactSet holds the files produced by the contract builder
type BuildArtifactSet struct {
	PackagedSource string
	Bytecode       string
}
