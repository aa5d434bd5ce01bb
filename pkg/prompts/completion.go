// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// characters that end the word being completed
const completionDelimiters = " \t\n="

// Completer returns every candidate that starts with [prefix]
type Completer interface {
	Complete(prefix string) []string
}

// DirCompleter offers the entries of [Dir] as candidates. A prefix containing
// a path separator completes inside the matching sub directory.
type DirCompleter struct {
	Fs  afero.Fs
	Dir string
}

func NewDirCompleter(fs afero.Fs, dir string) DirCompleter {
	return DirCompleter{
		Fs:  fs,
		Dir: dir,
	}
}

func (c DirCompleter) Complete(prefix string) []string {
	subdir, base := filepath.Split(prefix)
	entries, err := afero.ReadDir(c.Fs, filepath.Join(c.Dir, subdir))
	if err != nil {
		return nil
	}
	candidates := []string{}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), base) {
			candidates = append(candidates, subdir+entry.Name())
		}
	}
	return candidates
}

// Candidate returns the [state]-th candidate for [prefix], false once the
// candidates are exhausted. Tab cycling asks for state 0, 1, 2... until false.
func Candidate(completer Completer, prefix string, state int) (string, bool) {
	candidates := completer.Complete(prefix)
	if state < 0 || state >= len(candidates) {
		return "", false
	}
	return candidates[state], true
}

// readlineCompleter adapts a Completer to readline.AutoCompleter
type readlineCompleter struct {
	completer Completer
}

func (r *readlineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	if i := strings.LastIndexAny(typed, completionDelimiters); i >= 0 {
		typed = typed[i+1:]
	}
	candidates := r.completer.Complete(typed)
	suffixes := make([][]rune, 0, len(candidates))
	for _, candidate := range candidates {
		suffixes = append(suffixes, []rune(strings.TrimPrefix(candidate, typed)))
	}
	return suffixes, len([]rune(typed))
}
