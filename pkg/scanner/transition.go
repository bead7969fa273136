/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

// transition is the DFA: given the current state and a view of the input it
// decides what happens to the character under the cursor. It never mutates
// the scan; the driver applies the returned Action.
func transition(st State, c cursor) Action {
	switch st {
	case STATE_START:
		return start(c)
	case STATE_IDENTIFIER, STATE_IDENTIFIER_SHORT, STATE_IDENTIFIER_LONG:
		return identifier(st, c)
	case STATE_NUMBER, STATE_DECIMAL, STATE_FRACTION_START, STATE_FRACTION,
		STATE_EXPONENT_START, STATE_EXPONENT_SIGN, STATE_EXPONENT, STATE_ZERO,
		STATE_HEX_START, STATE_HEX, STATE_BINARY_START, STATE_BINARY,
		STATE_OCTAL, STATE_OCTAL_INVALID:
		return number(st, c)
	case STATE_OPERATOR, STATE_SHIFT_LEFT, STATE_SHIFT_RIGHT,
		STATE_LINE_COMMENT, STATE_BLOCK_COMMENT:
		return operator(st, c)
	case STATE_DELIMITER, STATE_CHAR_LITERAL, STATE_STRING_LITERAL:
		return delimiter(st, c)
	}
	return wrongPattern(st)
}

func start(c cursor) Action {
	r := c.char()

	switch {
	case isLetter(r) || r == '_':
		return begin(0, STATE_IDENTIFIER)
	case isDigit(r):
		return begin(0, STATE_NUMBER)
	case isOperatorStart(r):
		return begin(1, STATE_OPERATOR)
	case isDelimiterStart(r):
		return begin(1, STATE_DELIMITER)
	case r == ' ' || r == '\n':
		return move(1, STATE_START)
	case c.extendedWhitespace && isExtendedSpace(r):
		return move(1, STATE_START)
	}

	a := report(DIAG_UNRECOGNIZED_CHARACTER, 1, "Unrecognized character: %q at index %d", r, c.pos)
	a.Begin = true
	return a
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isWordChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', '.':
		return true
	}
	return false
}

func isDelimiterStart(r rune) bool {
	switch r {
	case ';', ',', '(', ')', '[', ']', '{', '}', '\'', '"', ':', '?', '\\':
		return true
	}
	return false
}

func isExtendedSpace(r rune) bool {
	switch r {
	case '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
