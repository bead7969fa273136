/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"io"
	"os"
	"strings"

	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dburkart/clex/pkg/token"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal, and so should receive color.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DiagnosticPrinter writes diagnostics underlined beneath their source line.
type DiagnosticPrinter struct {
	w io.Writer

	heading *color.Color
	marker  *color.Color
	fatal   *color.Color
}

func NewDiagnosticPrinter(w io.Writer, colorize bool) DiagnosticPrinter {
	p := DiagnosticPrinter{
		w:       w,
		heading: color.New(color.Bold),
		marker:  color.New(color.FgYellow),
		fatal:   color.New(color.FgRed, color.Bold),
	}

	for _, c := range []*color.Color{p.heading, p.marker, p.fatal} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// Print writes every diagnostic of result, in order, and returns how many
// were written.
func (p DiagnosticPrinter) Print(source string, result scanner.Result) (int, error) {
	return p.PrintEntries(source, NewDiagnosticListing("", result).Diagnostics)
}

// PrintEntries renders diagnostics that have already left the scanner, such
// as those decoded from a server response.
func (p DiagnosticPrinter) PrintEntries(source string, entries []DiagnosticEntry) (int, error) {
	for i, e := range entries {
		d := scanner.Diagnostic{
			Span:     token.Span{Start: 0, End: e.Length},
			Position: token.Position{Row: e.Row, Col: e.Col},
			Message:  e.Message,
		}
		lines := strings.SplitN(d.FormatError(source), "\n", 3)

		marker := p.marker
		if e.Fatal {
			marker = p.fatal
		}

		if _, err := p.heading.Fprintln(p.w, lines[0]); err != nil {
			return i, err
		}
		if _, err := io.WriteString(p.w, lines[1]+"\n"); err != nil {
			return i, err
		}
		if _, err := marker.Fprintln(p.w, strings.TrimSuffix(lines[2], "\n")); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
