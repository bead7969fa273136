/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"github.com/dburkart/clex/pkg/token"
)

// Identifiers are split in two sub-states. STATE_IDENTIFIER_SHORT holds
// lexemes of at most token.MaxKeywordLength letters, the only ones that can
// be keywords. A digit, an underscore or an eleventh letter moves the lexeme
// to STATE_IDENTIFIER_LONG, which always ends as an identifier.
func identifier(st State, c cursor) Action {
	r := c.char()

	switch st {
	case STATE_IDENTIFIER:
		switch {
		case isLetter(r):
			return move(1, STATE_IDENTIFIER_SHORT)
		case r == '_':
			return move(1, STATE_IDENTIFIER_LONG)
		}
		return wrongPattern(st)

	case STATE_IDENTIFIER_SHORT:
		switch {
		case isLetter(r) && c.pos-c.start < token.MaxKeywordLength:
			return move(1, STATE_IDENTIFIER_SHORT)
		case isWordChar(r):
			return move(1, STATE_IDENTIFIER_LONG)
		}
		return emit(classifyWord(c.lexeme()), 0)

	case STATE_IDENTIFIER_LONG:
		if isWordChar(r) {
			return move(1, STATE_IDENTIFIER_LONG)
		}
		return emit(token.Token{Kind: token.TOK_IDENTIFIER, Text: c.lexeme()}, 0)
	}

	return wrongPattern(st)
}

func classifyWord(word string) token.Token {
	if kw, ok := token.LookupKeyword(word); ok {
		return token.Token{Kind: token.TOK_KEYWORD, Keyword: kw, Text: word}
	}
	return token.Token{Kind: token.TOK_IDENTIFIER, Text: word}
}
