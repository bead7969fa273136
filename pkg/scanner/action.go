/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"

	"github.com/dburkart/clex/pkg/token"
)

// An Action is the outcome of a single transition. The driver applies it in
// order: mark the lexeme start (Begin), consume Advance characters, emit
// Token, record Diagnostic, then move to Next. Halt stops the scan.
type Action struct {
	Next    State
	Advance int
	Begin   bool

	Emit  bool
	Token token.Token

	Diagnose   bool
	Diagnostic Diagnostic

	Halt bool
}

// cursor is the read-only view a transition gets of the scan in progress.
type cursor struct {
	buf   *Buffer
	start int
	pos   int
	prev  tokenClass

	extendedWhitespace bool
}

func (c cursor) char() rune {
	return c.buf.At(c.pos)
}

func (c cursor) peek() rune {
	return c.buf.At(c.pos + 1)
}

// lead is the first character of the lexeme under construction.
func (c cursor) lead() rune {
	return c.buf.At(c.start)
}

// lexeme is the text of the lexeme so far, excluding the current character.
func (c cursor) lexeme() string {
	return c.buf.Slice(c.start, c.pos)
}

// atSentinel reports whether the current character is the appended sentinel.
func (c cursor) atSentinel() bool {
	return c.pos >= c.buf.Last()
}

func move(n int, next State) Action {
	return Action{Next: next, Advance: n}
}

func begin(n int, next State) Action {
	return Action{Next: next, Advance: n, Begin: true}
}

func emit(t token.Token, n int) Action {
	return Action{Next: STATE_START, Advance: n, Emit: true, Token: t}
}

func report(kind DiagnosticKind, n int, format string, args ...interface{}) Action {
	return Action{
		Next:       STATE_START,
		Advance:    n,
		Diagnose:   true,
		Diagnostic: Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)},
	}
}

func wrongPattern(st State) Action {
	return report(DIAG_INTERNAL, 0, "Entered a wrong pattern: %s", st.ToString())
}
