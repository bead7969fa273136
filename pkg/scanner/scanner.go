/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"github.com/dburkart/clex/pkg/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrUnterminatedLiteral is returned by Result.Err when a quoted literal ran
// into the end of input and the scan was cut short.
var ErrUnterminatedLiteral = errors.New("unterminated literal")

// Result is the output of a scan. Tokens and Positions are parallel: the
// position at index i belongs to the token at index i, and the last token is
// always TOK_EOF.
type Result struct {
	Tokens      []token.Token
	Positions   []token.Position
	Diagnostics []Diagnostic
	Fatal       bool
}

// Messages renders the diagnostics in the order they were produced.
func (r Result) Messages() []string {
	messages := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		messages = append(messages, d.Error())
	}
	return messages
}

// Err is non-nil only when the scan was stopped by an unterminated literal.
// Every other diagnostic is informational.
func (r Result) Err() error {
	if !r.Fatal {
		return nil
	}
	for _, d := range r.Diagnostics {
		if d.Kind.Fatal() {
			return errors.Wrap(ErrUnterminatedLiteral, d.Error())
		}
	}
	return ErrUnterminatedLiteral
}

type Option func(*Scanner)

// WithLogger makes the scanner log diagnostics at debug level and a summary
// at trace level.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

// WithExtendedWhitespace treats tab, carriage return, vertical tab and form
// feed as whitespace. Without it only space and newline are skipped and the
// others are reported as unrecognized characters.
func WithExtendedWhitespace(enabled bool) Option {
	return func(s *Scanner) {
		s.extendedWhitespace = enabled
	}
}

// Scanner drives the DFA over a single input. It is not safe for concurrent
// use; scan separate inputs with separate Scanners.
type Scanner struct {
	buf   *Buffer
	state State
	start int
	pos   int

	row      int
	col      int
	startPos token.Position

	prev   tokenClass
	result Result
	done   bool

	extendedWhitespace bool
	log                zerolog.Logger
}

func New(input string, opts ...Option) *Scanner {
	s := &Scanner{
		buf:      NewBuffer(input),
		state:    STATE_START,
		row:      1,
		col:      1,
		startPos: token.Position{Row: 1, Col: 1},
		prev:     CLASS_NONE,
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan tokenizes the whole input in one call.
func Scan(input string, opts ...Option) Result {
	return New(input, opts...).Scan()
}

// Scan runs the DFA to completion. Calling it again returns the same Result.
func (s *Scanner) Scan() Result {
	if s.done {
		return s.result
	}

	for s.pos < s.buf.Len() {
		s.pos = s.step(s.pos)
	}

	end := s.buf.Last()
	s.result.Tokens = append(s.result.Tokens, token.Token{
		Kind: token.TOK_EOF,
		Span: token.Span{Start: end, End: end},
	})
	s.result.Positions = append(s.result.Positions, token.Position{Row: s.row, Col: s.col})
	s.done = true

	s.log.Trace().
		Int("characters", end).
		Int("tokens", len(s.result.Tokens)).
		Int("diagnostics", len(s.result.Diagnostics)).
		Bool("fatal", s.result.Fatal).
		Msg("scan complete")

	return s.result
}

// step applies one transition at pos and returns the next cursor index.
func (s *Scanner) step(pos int) int {
	a := transition(s.state, cursor{
		buf:                s.buf,
		start:              s.start,
		pos:                pos,
		prev:               s.prev,
		extendedWhitespace: s.extendedWhitespace,
	})

	// A transition that neither consumes, emits, reports nor changes state
	// would never terminate.
	if a.Advance == 0 && a.Next == s.state && !a.Emit && !a.Diagnose && !a.Halt {
		a = wrongPattern(s.state)
		a.Advance = 1
	}

	if a.Begin {
		s.start = pos
		s.startPos = token.Position{Row: s.row, Col: s.col}
	}

	end := pos + a.Advance
	if end > s.buf.Len() {
		end = s.buf.Len()
	}
	for i := pos; i < end; i++ {
		s.consume(s.buf.At(i))
	}

	if a.Emit {
		s.emit(a.Token, end)
	}

	if a.Diagnose {
		a.Diagnostic.State = s.state
		s.diagnose(a.Diagnostic, end)
	}

	s.state = a.Next

	if a.Halt {
		s.result.Fatal = true
		return s.buf.Len()
	}

	return end
}

func (s *Scanner) consume(r rune) {
	if r == '\n' {
		s.row += 1
		s.col = 1
		return
	}
	s.col += 1
}

func (s *Scanner) emit(t token.Token, end int) {
	t.Span = token.Span{Start: s.start, End: end}
	t.Lexeme = s.buf.Slice(s.start, end)

	s.result.Tokens = append(s.result.Tokens, t)
	s.result.Positions = append(s.result.Positions, s.startPos)
	s.prev = classOf(t)
}

func (s *Scanner) diagnose(d Diagnostic, end int) {
	d.Span = token.Span{Start: s.start, End: end}
	d.Position = s.startPos

	s.result.Diagnostics = append(s.result.Diagnostics, d)

	s.log.Debug().
		Str("kind", d.Kind.ToString()).
		Str("state", d.State.ToString()).
		Str("position", d.Position.String()).
		Msg(d.Message)
}
