// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var headingColor = color.New(color.FgYellow)

// WriteHelp renders usage for every registered global flag and subcommand:
// name, required/optional status, kind name and description, aligned per
// table. Column layout is best effort; only the content is a contract.
func (c *Context) WriteHelp(w io.Writer) {
	if c.description != "" {
		fmt.Fprintf(w, "%s - %s\n\n", c.name, c.description)
	} else {
		fmt.Fprintf(w, "%s\n\n", c.name)
	}

	fmt.Fprintln(w, headingColor.Sprint("GLOBAL FLAGS:"))
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, f := range c.global.Flags() {
		writeFlagRow(tw, "    ", f)
	}
	fmt.Fprintf(tw, "    -%s, --%s\t\t\tShow this help message\n", helpName, helpName)
	tw.Flush()

	if len(c.subs) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, headingColor.Sprint("SUBCOMMANDS:"))
	for _, s := range c.subs {
		fmt.Fprintf(w, "    %s: %s\n", s.name, s.description)
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, f := range s.flags.Flags() {
			writeFlagRow(tw, "        ", f)
		}
		tw.Flush()
	}
}

func writeFlagRow(w io.Writer, indent string, f *Flag) {
	req := "Optional"
	if f.required {
		req = "Required"
	}
	fmt.Fprintf(w, "%s-%s, --%s\t(%s)\t<%s>\t%s\n", indent, f.name, f.name, req, f.kind, f.description)
}

// Help returns the rendered help text.
func (c *Context) Help() string {
	var b strings.Builder
	c.WriteHelp(&b)
	return b.String()
}
