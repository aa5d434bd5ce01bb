// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newWorkDir(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range []string{"barterswap", "bartercoin", "verifyswap", "contracts/adder"} {
		require.NoError(t, fs.MkdirAll(filepath.Join("/work", dir), 0o755))
	}
	require.NoError(t, afero.WriteFile(fs, "/work/mywallet.pem", []byte("key"), 0o600))
	return fs
}

func TestDirCompleter(t *testing.T) {
	completer := NewDirCompleter(newWorkDir(t), "/work")

	require.Equal(t, []string{"bartercoin", "barterswap"}, completer.Complete("bar"))
	require.Equal(t, []string{"mywallet.pem"}, completer.Complete("my"))
	require.Equal(t, []string{"contracts/adder"}, completer.Complete("contracts/a"))
	require.Empty(t, completer.Complete("zzz"))
	require.Empty(t, completer.Complete("missing/dir"))
	require.Len(t, completer.Complete(""), 5)
}

func TestCandidate(t *testing.T) {
	completer := NewDirCompleter(newWorkDir(t), "/work")

	var found []string
	for state := 0; ; state++ {
		candidate, ok := Candidate(completer, "barter", state)
		if !ok {
			break
		}
		found = append(found, candidate)
	}
	require.Equal(t, []string{"bartercoin", "barterswap"}, found)

	_, ok := Candidate(completer, "barter", -1)
	require.False(t, ok)
}

func TestReadlineCompleter(t *testing.T) {
	rc := &readlineCompleter{completer: NewDirCompleter(newWorkDir(t), "/work")}

	line := []rune("verify")
	suffixes, length := rc.Do(line, len(line))
	require.Equal(t, 6, length)
	require.Equal(t, [][]rune{[]rune("swap")}, suffixes)

	// only the word after the last delimiter is completed
	line = []rune("--project=barters")
	suffixes, length = rc.Do(line, len(line))
	require.Equal(t, len("barters"), length)
	require.Equal(t, [][]rune{[]rune("wap")}, suffixes)

	suffixes, length = rc.Do([]rune("nothing"), 7)
	require.Equal(t, 7, length)
	require.Empty(t, suffixes)
}
