// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet demonstrates the flagpole engine: a global flag of every
// supported kind, validator hooks, and subcommand dispatch.
//
// Try:
//
//	greet -int 5 -string hi greet -name World
//	greet --help
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/yeetrun/flagpole/pkg/cmdutil"
	"github.com/yeetrun/flagpole/pkg/flagpole"
)

func main() {
	cmdutil.Main(run)
}

func run() error {
	root := flagpole.New("greet", "Demonstrates typed flag parsing with subcommands")

	root.Flag("int", flagpole.KindInt, "An integer flag", false).
		Validate(func(v flagpole.Value) bool {
			return v.Int() >= 0 && v.Int() <= 10
		}, "Must be between 0 and 10")
	root.Flag("string", flagpole.KindString, "A string flag", false)
	root.Flag("size", flagpole.KindSize, "A size flag", false)
	root.Flag("int8", flagpole.KindInt8, "An int8 flag", false)
	root.Flag("int16", flagpole.KindInt16, "An int16 flag", false)
	root.Flag("int32", flagpole.KindInt32, "An int32 flag", false)
	root.Flag("int64", flagpole.KindInt64, "An int64 flag", false)
	root.Flag("uint", flagpole.KindUint, "An unsigned int flag", false)
	root.Flag("uint8", flagpole.KindUint8, "A uint8 flag", false)
	root.Flag("uint16", flagpole.KindUint16, "A uint16 flag", false)
	root.Flag("uint32", flagpole.KindUint32, "A uint32 flag", false)
	root.Flag("uint64", flagpole.KindUint64, "A uint64 flag", false)
	root.Flag("uintptr", flagpole.KindUintptr, "A uintptr flag", false)
	root.Flag("float32", flagpole.KindFloat32, "A float32 flag", false)
	root.Flag("float64", flagpole.KindFloat64, "A float64 flag", false)
	root.Flag("id", flagpole.KindString, "Request ID", false).
		Validate(func(v flagpole.Value) bool {
			_, err := uuid.Parse(v.Str())
			return err == nil
		}, "id must be a valid UUID")

	greet := root.Subcommand("greet", "Greets the user", handleGreet, 2)
	greet.Flag("name", flagpole.KindString, "The name of the user", true)
	greet.Flag("shout", flagpole.KindBool, "Uppercase the greeting", false)

	release := root.Subcommand("release", "Prints release info", handleRelease, 3)
	release.Flag("version", flagpole.KindString, "Release version", true).
		Validate(func(v flagpole.Value) bool {
			_, err := semver.NewVersion(v.Str())
			return err == nil
		}, "version must be a valid semantic version")
	release.Flag("count", flagpole.KindInt, "The number of times to print", false)
	release.Flag("verbose", flagpole.KindBool, "Verbose output", false)

	reset := root.Subcommand("reset", "Resets saved state", handleReset, 1)
	reset.Flag("force", flagpole.KindBool, "Skip confirmation", false)

	return root.Run(context.Background(), os.Args[1:])
}

func handleGreet(ctx context.Context, args flagpole.Args) error {
	name, _ := flagpole.Get[string](args.Flags, "name")
	msg := fmt.Sprintf("Hello, %s!", name)
	if shout, _ := flagpole.Get[bool](args.Flags, "shout"); shout {
		msg = strings.ToUpper(msg)
	}
	fmt.Println(msg)

	// Handlers can read global flag values through the root context.
	if v, ok := args.Context.Lookup("float64"); ok {
		fmt.Printf("float64 value in handler: %v\n", v.Float())
	}
	return nil
}

func handleRelease(ctx context.Context, args flagpole.Args) error {
	version, _ := flagpole.Get[string](args.Flags, "version")
	count, _ := flagpole.Get[int](args.Flags, "count")
	verbose, _ := flagpole.Get[bool](args.Flags, "verbose")

	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		fmt.Printf("release %s\n", color.GreenString(version))
	}
	if verbose {
		v := semver.MustParse(version)
		fmt.Printf("major=%d minor=%d patch=%d\n", v.Major(), v.Minor(), v.Patch())
	}
	return nil
}

func handleReset(ctx context.Context, args flagpole.Args) error {
	if force, _ := flagpole.Get[bool](args.Flags, "force"); !force {
		ok, err := cmdutil.Confirm(os.Stdin, os.Stdout, "Reset all saved state?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted")
			return nil
		}
	}
	fmt.Println("state reset")
	return nil
}
