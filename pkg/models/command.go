// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "strings"

// ExternalCommand is one invocation of an external tool, argv style.
type ExternalCommand struct {
	Name string
	Args []string
}

func NewExternalCommand(name string, args ...string) ExternalCommand {
	return ExternalCommand{
		Name: name,
		Args: args,
	}
}

// Argv returns the name followed by the arguments
func (c ExternalCommand) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String joins all tokens with a single space, the way the command is shown
// to the user.
func (c ExternalCommand) String() string {
	return strings.Join(c.Argv(), " ")
}

func (c ExternalCommand) IsEmpty() bool {
	return c.Name == ""
}

// WithPrefix returns a copy of the command run through [prefix], e.g. sudo.
func (c ExternalCommand) WithPrefix(prefix string) ExternalCommand {
	if prefix == "" {
		return c
	}
	return NewExternalCommand(prefix, c.Argv()...)
}
