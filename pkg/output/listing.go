/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"strconv"

	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dburkart/clex/pkg/token"
)

// TokenEntry is one token of a listing in its wire form.
type TokenEntry struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Lexeme string `json:"lexeme"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// DiagnosticEntry is one diagnostic of a listing in its wire form.
type DiagnosticEntry struct {
	Kind    string `json:"kind"`
	State   string `json:"state"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Length  int    `json:"length"`
	Fatal   bool   `json:"fatal"`
	Message string `json:"message"`
}

// TokenListing pairs every token with its position.
type TokenListing struct {
	Source string       `json:"source,omitempty"`
	Tokens []TokenEntry `json:"tokens"`
	Fatal  bool         `json:"fatal"`
}

// DiagnosticListing holds the diagnostics of a scan.
type DiagnosticListing struct {
	Source      string            `json:"source,omitempty"`
	Diagnostics []DiagnosticEntry `json:"diagnostics"`
}

func tokenKind(t token.Token) string {
	switch t.Kind {
	case token.TOK_KEYWORD:
		return "Keyword"
	case token.TOK_IDENTIFIER:
		return "Identifier"
	case token.TOK_NUMBER:
		if t.Number.Float {
			return "Float"
		}
		return "Integer"
	case token.TOK_OPERATOR:
		return "Operator"
	case token.TOK_DELIMITER:
		return "Delimiter"
	case token.TOK_STRING:
		return "String"
	case token.TOK_EOF:
		return "EndOfInput"
	}
	return "Invalid"
}

func tokenValue(t token.Token) string {
	switch t.Kind {
	case token.TOK_KEYWORD:
		return t.Keyword.ToString()
	case token.TOK_OPERATOR:
		return t.Operator.ToString()
	case token.TOK_DELIMITER:
		return t.Delimiter.ToString()
	}
	return t.Value()
}

func NewTokenListing(source string, result scanner.Result) TokenListing {
	listing := TokenListing{
		Source: source,
		Tokens: make([]TokenEntry, 0, len(result.Tokens)),
		Fatal:  result.Fatal,
	}

	for i, t := range result.Tokens {
		pos := result.Positions[i]
		listing.Tokens = append(listing.Tokens, TokenEntry{
			Kind:   tokenKind(t),
			Value:  tokenValue(t),
			Lexeme: t.Lexeme,
			Row:    pos.Row,
			Col:    pos.Col,
		})
	}

	return listing
}

func NewDiagnosticListing(source string, result scanner.Result) DiagnosticListing {
	listing := DiagnosticListing{
		Source:      source,
		Diagnostics: make([]DiagnosticEntry, 0, len(result.Diagnostics)),
	}

	for _, d := range result.Diagnostics {
		listing.Diagnostics = append(listing.Diagnostics, DiagnosticEntry{
			Kind:    d.Kind.ToString(),
			State:   d.State.ToString(),
			Row:     d.Position.Row,
			Col:     d.Position.Col,
			Length:  d.Span.End - d.Span.Start,
			Fatal:   d.Kind.Fatal(),
			Message: d.Message,
		})
	}

	return listing
}

func (l TokenListing) Headers() []string {
	return []string{"row", "col", "kind", "value"}
}

func (l TokenListing) Values() [][]string {
	rows := make([][]string, 0, len(l.Tokens))
	for _, t := range l.Tokens {
		rows = append(rows, []string{strconv.Itoa(t.Row), strconv.Itoa(t.Col), t.Kind, t.Value})
	}
	return rows
}

func (l DiagnosticListing) Headers() []string {
	return []string{"row", "col", "kind", "message"}
}

func (l DiagnosticListing) Values() [][]string {
	rows := make([][]string, 0, len(l.Diagnostics))
	for _, d := range l.Diagnostics {
		rows = append(rows, []string{strconv.Itoa(d.Row), strconv.Itoa(d.Col), d.Kind, d.Message})
	}
	return rows
}
