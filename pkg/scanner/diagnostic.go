/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dburkart/clex/pkg/token"
)

type DiagnosticKind int

const (
	DIAG_UNRECOGNIZED_CHARACTER DiagnosticKind = iota
	DIAG_MALFORMED_NUMBER
	DIAG_UNTERMINATED_LITERAL
	DIAG_INTERNAL
)

func (k DiagnosticKind) ToString() string {
	switch k {
	case DIAG_UNRECOGNIZED_CHARACTER:
		return "unrecognized-character"
	case DIAG_MALFORMED_NUMBER:
		return "malformed-number"
	case DIAG_UNTERMINATED_LITERAL:
		return "unterminated-literal"
	case DIAG_INTERNAL:
		return "internal"
	}
	return "unknown"
}

// Fatal reports whether a diagnostic of this kind stops the scan.
func (k DiagnosticKind) Fatal() bool {
	return k == DIAG_UNTERMINATED_LITERAL
}

// A Diagnostic records malformed input found while scanning. State is the
// DFA state that produced it and Span the offending characters.
type Diagnostic struct {
	Kind     DiagnosticKind
	State    State
	Span     token.Span
	Position token.Position
	Message  string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Position.String(), d.Message)
}

// FormatError renders the diagnostic under the source line it points at.
func (d Diagnostic) FormatError(input string) string {
	lines := strings.Split(input, "\n")
	line := ""
	if d.Position.Row >= 1 && d.Position.Row <= len(lines) {
		line = strings.TrimRight(lines[d.Position.Row-1], "\r")
	}

	offset := d.Position.Col - 1
	if offset < 0 {
		offset = 0
	}

	repeat := d.Span.End - d.Span.Start - 1
	if room := utf8.RuneCountInString(line) - offset - 1; repeat > room {
		repeat = room
	}
	if repeat < 0 {
		repeat = 0
	}

	errorString := fmt.Sprintf("Lexical error at %s:\n", d.Position.String())
	errorString += line
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", offset), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", d.Message)
	return errorString
}
