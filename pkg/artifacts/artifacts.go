// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/xverify/xverify-cli/pkg/constants"
	"github.com/xverify/xverify-cli/pkg/models"
	"github.com/xverify/xverify-cli/pkg/ux"

	"github.com/spf13/afero"
)

var (
	ErrNoPackagedSource = errors.New("no '.source.json' file found in the build output directory")
	ErrNoBytecode       = errors.New("no '.wasm' file found in the build output directory")
)

// Locate looks one directory level below [buildOutputDir] for the packaged
// source bundle and the bytecode produced by the contract builder. When more
// than one file matches a pattern the lexicographically smallest path wins.
func Locate(fs afero.Fs, buildOutputDir string) (models.BuildArtifactSet, error) {
	packagedSource, err := findFirst(fs, buildOutputDir, constants.PackagedSourcePattern)
	if err != nil {
		return models.BuildArtifactSet{}, err
	}
	if packagedSource == "" {
		return models.BuildArtifactSet{}, fmt.Errorf("%w: %s", ErrNoPackagedSource, buildOutputDir)
	}
	bytecode, err := findFirst(fs, buildOutputDir, constants.BytecodePattern)
	if err != nil {
		return models.BuildArtifactSet{}, err
	}
	if bytecode == "" {
		return models.BuildArtifactSet{}, fmt.Errorf("%w: %s", ErrNoBytecode, buildOutputDir)
	}
	return models.BuildArtifactSet{
		PackagedSource: packagedSource,
		Bytecode:       bytecode,
	}, nil
}

func findFirst(fs afero.Fs, dir string, pattern string) (string, error) {
	matches, err := afero.Glob(fs, filepath.Join(dir, "*", pattern))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	if len(matches) > 1 {
		ux.Logger.Warn("found %d files matching %s under %s, using %s", len(matches), pattern, dir, matches[0])
	}
	return matches[0], nil
}

// EnsureDir creates [dir] when it does not exist yet. It returns whether the
// directory was created.
func EnsureDir(fs afero.Fs, dir string) (bool, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := fs.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return false, fmt.Errorf("failed creating build output directory %s: %w", dir, err)
	}
	return true, nil
}
