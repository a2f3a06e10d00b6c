// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagpole provides a typed command-line flag parser with
// subcommand dispatch.
//
// A program declares named flags on a root [Context] and on zero or more
// subcommands, each flag with a value kind, a description, an optional
// required marker and an optional validator. Parsing walks the argument
// vector in two phases: global flags are consumed up to the first token
// that names a registered subcommand, and everything after that token
// belongs to the subcommand's own flag table. At most one subcommand is
// selected per parse.
//
// # Basic Usage
//
//	ctx := flagpole.New("mytool", "Does things")
//	ctx.Flag("port", flagpole.KindInt, "Listen port", false)
//
//	greet := ctx.Subcommand("greet", "Greets the user", handleGreet, 0)
//	greet.Flag("name", flagpole.KindString, "The name of the user", true)
//
//	if err := ctx.Run(context.Background(), os.Args[1:]); err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(1)
//	}
//
// Handlers receive their own flag table plus the root context, so a
// subcommand can read global flag values alongside its own:
//
//	func handleGreet(ctx context.Context, args flagpole.Args) error {
//	    name, _ := flagpole.Get[string](args.Flags, "name")
//	    fmt.Printf("Hello, %s!\n", name)
//	    return nil
//	}
//
// # Flag Syntax
//
// Both -name and --name are accepted everywhere and mean the same thing.
// Non-boolean flags consume the following token as their value. Boolean
// flags consume the following token only when it is a literal "true" or
// "false" (case-insensitive); any other token leaves the flag set to true
// and is handed back to the scanner. The reserved name "help" prints usage
// for every registered flag and subcommand.
//
// # Errors
//
// Parsing never terminates the process. Conversion failures, validator
// rejections and missing required flags are returned as typed errors
// ([ValueError], [ValidationError], [MissingFlagError]); a help request
// surfaces as [ErrHelp]. [Context.Run] converts these into the
// conventional CLI behavior: help on stdout with a nil return, everything
// else propagated for the caller to report and exit non-zero.
package flagpole
