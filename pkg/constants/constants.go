// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".xverify"
	LogDir      = "logs"
	LogFileName = "xverify.log"

	// log rotation, in megabytes / files / days
	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0

	DefaultLogLevel = "info"
)

// external tools
const (
	DockerBin = "docker"
	MxpyBin   = "mxpy"
	SudoBin   = "sudo"
	PythonBin = "python3"

	DefaultBuildScript = "./build_with_docker.py"
	VersionFlag        = "--version"
)

// contract builder image
const (
	BuilderImageRepository = "multiversx/sdk-rust-contract-builder"
	ExampleImageVersion    = "v5.3.0"
)

// build artifacts
const (
	PackagedSourcePattern = "*.source.json"
	BytecodePattern       = "*.wasm"
)

// wallets and addresses
const (
	PemExtension     = ".pem"
	KeyfileExtension = ".json"

	PemFlag     = "--pem"
	KeyfileFlag = "--keyfile"

	ContractAddressPrefix = "erd1"
	ContractAddressLength = 62
)

// deploy
const (
	DeployGasLimit = 60000000
	SimulateArg    = "simulate"
)

// network endpoints
const (
	DevnetSelector    = "D"
	DevnetGatewayURL  = "https://devnet-gateway.multiversx.com"
	DevnetVerifierURL = "https://devnet-play-api.multiversx.com"
	DevnetChainID     = "D"

	MainnetSelector    = "M"
	MainnetGatewayURL  = "https://gateway.multiversx.com"
	MainnetVerifierURL = "https://play-api.multiversx.com"
	MainnetChainID     = "1"
)

// config file keys
const (
	ConfigBuildScriptKey    = "build-script"
	ConfigSudoKey           = "sudo"
	ConfigWalletArgStyleKey = "wallet-arg-style"
	ConfigMaxAttemptsKey    = "max-attempts"
)
