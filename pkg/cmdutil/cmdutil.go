// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdutil holds the process-level glue for CLI binaries: the
// error-to-exit-status driver and an interactive confirmation prompt.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Main runs fn and converts its result into process termination: nil
// exits 0, any error is reported on stderr and exits 1. The parsing
// engine itself never exits; this is the single place that does.
func Main(fn func() error) {
	if err := fn(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Confirm prompts on w and reads a y/N answer from r. Anything but a
// leading y (case-insensitive) declines.
func Confirm(r io.Reader, w io.Writer, msg string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", msg)

	var confirm string
	_, err := fmt.Fscanln(r, &confirm)
	if err != nil && err.Error() != "unexpected newline" {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return strings.HasPrefix(strings.ToLower(confirm), "y"), nil
}
