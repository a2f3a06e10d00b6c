// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Context is the root of a parse: the global flag table plus every
// registered subcommand. The lifecycle is construct, register, parse once,
// read values. A Context is not safe for concurrent use; registration and
// parsing are single-threaded by design.
type Context struct {
	name        string
	description string
	global      *FlagSet
	subs        []*Subcommand
}

// New returns a Context for the named program. name and description head
// the help output.
func New(name, description string) *Context {
	return &Context{
		name:        name,
		description: description,
		global:      NewFlagSet(0),
	}
}

// Flags returns the global flag table.
func (c *Context) Flags() *FlagSet { return c.global }

// Flag registers a global flag. See [FlagSet.Add].
func (c *Context) Flag(name string, kind Kind, description string, required bool) *Flag {
	return c.global.Add(name, kind, description, required)
}

// Lookup returns the current value of a global flag.
func (c *Context) Lookup(name string) (Value, bool) {
	return c.global.Lookup(name)
}

// Subcommand registers a named sub-mode with its handler and a flag table
// holding at most flagCapacity flags (zero or negative for unbounded). It
// panics on an empty name or nil handler; both are programmer errors.
func (c *Context) Subcommand(name, description string, h Handler, flagCapacity int) *Subcommand {
	if name == "" {
		panic("flagpole: subcommand name must not be empty")
	}
	if h == nil {
		panic(fmt.Sprintf("flagpole: no handler provided for subcommand %q", name))
	}
	s := &Subcommand{
		name:        name,
		description: description,
		handler:     h,
		flags:       NewFlagSet(flagCapacity),
	}
	c.subs = append(c.subs, s)
	return s
}

// Subcommands returns the registered subcommands in registration order.
// The returned slice is shared; callers must not modify it.
func (c *Context) Subcommands() []*Subcommand { return c.subs }

func (c *Context) findSub(name string) *Subcommand {
	for _, s := range c.subs {
		if s.name == name {
			return s
		}
	}
	return nil
}

// isTerminalFn is swappable for tests.
var isTerminalFn = term.IsTerminal

// Run parses args and, when a subcommand was selected, invokes its
// handler. A help request prints usage to stdout and returns nil. A
// missing required flag prints usage to stderr before the error is
// returned, so the caller only has to report the message and exit
// non-zero.
func (c *Context) Run(ctx context.Context, args []string) error {
	if !isTerminalFn(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	sub, err := c.Parse(args)
	if errors.Is(err, ErrHelp) {
		c.WriteHelp(os.Stdout)
		return nil
	}
	var missing *MissingFlagError
	if errors.As(err, &missing) {
		c.WriteHelp(os.Stderr)
		return err
	}
	if err != nil {
		return err
	}
	if sub == nil {
		return nil
	}
	return sub.call(ctx, c)
}
