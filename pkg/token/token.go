/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	TOK_INVALID Kind = iota
	TOK_EOF

	TOK_KEYWORD
	TOK_IDENTIFIER
	TOK_NUMBER
	TOK_OPERATOR
	TOK_DELIMITER
	TOK_STRING
)

func (k Kind) ToString() string {
	switch k {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_KEYWORD:
		return "TOK_KEYWORD"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_OPERATOR:
		return "TOK_OPERATOR"
	case TOK_DELIMITER:
		return "TOK_DELIMITER"
	case TOK_STRING:
		return "TOK_STRING"
	}
	return "TOK_UNKNOWN"
}

// Number holds the value of a numeric literal. Only one of Int or Real is
// meaningful, depending on Float.
type Number struct {
	Float bool
	Int   int64
	Real  float64
}

func Integer(v int64) Number {
	return Number{Int: v}
}

func Float(v float64) Number {
	return Number{Float: true, Real: v}
}

func (n Number) ToString() string {
	if n.Float {
		return strconv.FormatFloat(n.Real, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// Span is a half-open range [Start, End) of character offsets into the
// scanned text.
type Span struct {
	Start int
	End   int
}

// Position is the 1-based row and column of the first character of a lexeme.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Token is a classified lexeme. Which payload field is meaningful depends on
// Kind: Keyword for TOK_KEYWORD, Operator for TOK_OPERATOR, Delimiter for
// TOK_DELIMITER, Number for TOK_NUMBER, and Text for TOK_IDENTIFIER and
// TOK_STRING (strings keep their quote characters).
type Token struct {
	Kind      Kind
	Keyword   Keyword
	Operator  Operator
	Delimiter Delimiter
	Number    Number
	Text      string

	Lexeme string
	Span   Span
}

// Value returns the source-level rendering of the token's payload.
func (t Token) Value() string {
	switch t.Kind {
	case TOK_KEYWORD:
		return t.Keyword.Spelling()
	case TOK_IDENTIFIER, TOK_STRING:
		return t.Text
	case TOK_NUMBER:
		return t.Number.ToString()
	case TOK_OPERATOR:
		return t.Operator.Symbol()
	case TOK_DELIMITER:
		return t.Delimiter.Symbol()
	}
	return ""
}

func (t Token) String() string {
	switch t.Kind {
	case TOK_EOF:
		return "EndOfInput"
	case TOK_KEYWORD:
		return "Keyword(" + t.Keyword.ToString() + ")"
	case TOK_IDENTIFIER:
		return "Identifier(" + strconv.Quote(t.Text) + ")"
	case TOK_NUMBER:
		if t.Number.Float {
			return "Float(" + t.Number.ToString() + ")"
		}
		return "Integer(" + t.Number.ToString() + ")"
	case TOK_OPERATOR:
		return "Operator(" + t.Operator.ToString() + ")"
	case TOK_DELIMITER:
		return "Delimiter(" + t.Delimiter.ToString() + ")"
	case TOK_STRING:
		return "String(" + strconv.Quote(t.Text) + ")"
	}
	return "Invalid"
}

// IsEOF reports whether t marks the end of input.
func (t Token) IsEOF() bool {
	return t.Kind == TOK_EOF
}

// Is reports whether t is the given operator.
func (t Token) Is(op Operator) bool {
	return t.Kind == TOK_OPERATOR && t.Operator == op
}

// IsDelimiter reports whether t is the given delimiter.
func (t Token) IsDelimiter(d Delimiter) bool {
	return t.Kind == TOK_DELIMITER && t.Delimiter == d
}
