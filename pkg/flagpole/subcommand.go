// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import "context"

// Args carries a subcommand's own flag table plus the root context so a
// handler can read global flag values alongside its own.
type Args struct {
	Flags   *FlagSet
	Context *Context
}

// Handler is invoked when its subcommand is selected by a parse.
type Handler func(ctx context.Context, args Args) error

// Subcommand is a named sub-mode of the program with its own flag table
// and handler. Subcommands cannot nest: a Subcommand registers flags only.
type Subcommand struct {
	name        string
	description string
	handler     Handler
	flags       *FlagSet
}

// Name returns the subcommand's name.
func (s *Subcommand) Name() string { return s.name }

// Description returns the registration-time description.
func (s *Subcommand) Description() string { return s.description }

// Flags returns the subcommand's flag table.
func (s *Subcommand) Flags() *FlagSet { return s.flags }

// Flag registers a flag scoped to the subcommand. See [FlagSet.Add].
func (s *Subcommand) Flag(name string, kind Kind, description string, required bool) *Flag {
	return s.flags.Add(name, kind, description, required)
}

// call invokes the handler with the subcommand's flags and the root
// context.
func (s *Subcommand) call(ctx context.Context, root *Context) error {
	return s.handler(ctx, Args{Flags: s.flags, Context: root})
}
