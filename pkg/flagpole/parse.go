// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import "strings"

// trimDashes strips one or two leading dashes; -x and --x are
// interchangeable notations for the same flag everywhere.
func trimDashes(tok string) string {
	tok = strings.TrimPrefix(tok, "-")
	return strings.TrimPrefix(tok, "-")
}

// Parse walks args (os.Args[1:]) in two sequential phases and returns the
// selected subcommand, or nil when no token named one.
//
// Phase 1 consumes global flags up to the first token that names a
// registered subcommand; dash-prefixed tokens that match no global flag
// and bare tokens that match no subcommand are skipped silently. Phase 2
// scans the remaining tokens against the subcommand's flag table and then
// enforces its required flags. Global flag syntax after the subcommand
// token is never treated as global.
//
// Parse mutates the registered flag tables; call it once per Context.
func (c *Context) Parse(args []string) (*Subcommand, error) {
	var sub *Subcommand
	rest := -1

	for i := 0; i < len(args); i++ {
		tok := args[i]
		if strings.HasPrefix(tok, "-") {
			name := trimDashes(tok)
			if name == helpName {
				return nil, ErrHelp
			}
			f := c.global.find(name)
			if f == nil {
				continue
			}
			consumed, err := consumeValue(f, args, i)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}
		if sub = c.findSub(tok); sub != nil {
			rest = i + 1
			break
		}
	}

	if sub == nil {
		return nil, nil
	}
	if err := scanSubcommand(sub, args[rest:]); err != nil {
		return nil, err
	}
	return sub, nil
}

// scanSubcommand consumes a subcommand's portion of the argument vector
// and then enforces required flags. Tokens that match no flag are skipped
// in pairs (candidate name plus its would-be value).
func scanSubcommand(sub *Subcommand, args []string) error {
	for i := 0; i < len(args); {
		f := sub.flags.find(trimDashes(args[i]))
		if f == nil {
			i += 2
			continue
		}
		consumed, err := consumeValue(f, args, i)
		if err != nil {
			return err
		}
		i += 1 + consumed
	}
	for _, f := range sub.flags.Flags() {
		if f.required && !f.set {
			return &MissingFlagError{Flag: f.name, Subcommand: sub.name}
		}
	}
	return nil
}

// consumeValue converts the value belonging to the flag at args[i] and
// assigns it, running the validator. It returns how many tokens beyond the
// flag name were consumed.
//
// Boolean flags consume the next token only when it is literally
// true/false; any other token means bare presence and stays in the stream.
// All other kinds require a following value token.
func consumeValue(f *Flag, args []string, i int) (int, error) {
	if f.kind == KindBool {
		if i+1 < len(args) {
			if v, err := convert(KindBool, args[i+1]); err == nil {
				return 1, f.assign(v)
			}
		}
		return 0, f.assign(Value{kind: KindBool, v: true})
	}

	if i+1 >= len(args) {
		return 0, &ValueError{Flag: f.name, Kind: f.kind, Err: errMissingValue}
	}
	tok := args[i+1]
	v, err := convert(f.kind, tok)
	if err != nil {
		return 0, &ValueError{Flag: f.name, Value: tok, Kind: f.kind, Err: err}
	}
	return 1, f.assign(v)
}
