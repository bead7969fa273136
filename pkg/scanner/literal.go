/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"github.com/dburkart/clex/pkg/token"
)

func delimiter(st State, c cursor) Action {
	switch st {
	case STATE_CHAR_LITERAL:
		return quoted(st, c, '\'')
	case STATE_STRING_LITERAL:
		return quoted(st, c, '"')
	case STATE_DELIMITER:
		switch c.lead() {
		case '\'':
			return move(0, STATE_CHAR_LITERAL)
		case '"':
			return move(0, STATE_STRING_LITERAL)
		}

		if d, ok := token.LookupDelimiter(c.lead()); ok {
			return emit(token.Token{Kind: token.TOK_DELIMITER, Delimiter: d}, 0)
		}
		return report(DIAG_UNRECOGNIZED_CHARACTER, 0, "Unrecognized character: %q in %s", c.lead(), st.ToString())
	}

	return wrongPattern(st)
}

// quoted consumes a literal verbatim up to the matching quote. Escape
// sequences are not interpreted, so a backslash does not protect a quote.
// Running into the sentinel halts the whole scan.
func quoted(st State, c cursor, quote rune) Action {
	if c.char() == quote {
		return emit(token.Token{
			Kind: token.TOK_STRING,
			Text: c.buf.Slice(c.start, c.pos+1),
		}, 1)
	}

	if c.atSentinel() {
		a := report(DIAG_UNTERMINATED_LITERAL, 0, "Unmatched key: %c", quote)
		a.Halt = true
		return a
	}

	return move(1, st)
}
