// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrHelp is returned by Parse when -help or --help is encountered.
// Callers should print usage and exit with success status.
var ErrHelp = errors.New("help requested")

// errMissingValue marks a non-boolean flag that appeared as the final
// token with nothing left to consume as its value.
var errMissingValue = errors.New("missing value")

// ValueError is returned when a flag's value token cannot be converted to
// the flag's kind.
type ValueError struct {
	Flag  string
	Value string
	Kind  Kind
	Err   error
}

func (e *ValueError) Error() string {
	switch {
	case errors.Is(e.Err, errMissingValue):
		return fmt.Sprintf("no value specified for flag -%s", e.Flag)
	case errors.Is(e.Err, strconv.ErrRange):
		return fmt.Sprintf("value %q out of range for %s flag -%s", e.Value, e.Kind, e.Flag)
	default:
		return fmt.Sprintf("invalid %s value %q for flag -%s", e.Kind, e.Value, e.Flag)
	}
}

func (e *ValueError) Unwrap() error { return e.Err }

// ValidationError is returned when a converted value is rejected by the
// flag's validator. Message is the validator's configured text; when none
// was supplied a generic message naming the flag is used.
type ValidationError struct {
	Flag    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid value for flag -%s", e.Flag)
}

// MissingFlagError is returned after a subcommand scan when a required
// flag was never matched.
type MissingFlagError struct {
	Flag       string
	Subcommand string
}

func (e *MissingFlagError) Error() string {
	if e.Subcommand != "" {
		return fmt.Sprintf("flag -%s is required for %q", e.Flag, e.Subcommand)
	}
	return fmt.Sprintf("flag -%s is required", e.Flag)
}
