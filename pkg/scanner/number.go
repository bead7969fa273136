/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strconv"
	"strings"

	"github.com/dburkart/clex/pkg/token"
)

// number recognizes decimal integers and floats, and hexadecimal, binary and
// octal integers. The lexeme may carry a leading sign folded in by the
// operator states.
func number(st State, c cursor) Action {
	r := c.char()

	switch st {
	case STATE_NUMBER:
		switch {
		case r == '0':
			return move(1, STATE_ZERO)
		case isDigit(r):
			return move(1, STATE_DECIMAL)
		}
		return wrongPattern(st)

	case STATE_DECIMAL:
		switch {
		case isDigit(r):
			return move(1, STATE_DECIMAL)
		case r == '.':
			return move(1, STATE_FRACTION_START)
		case r == 'e' || r == 'E':
			return move(1, STATE_EXPONENT_START)
		}
		return emitInteger(c.lexeme(), 10)

	case STATE_FRACTION_START:
		if isDigit(r) {
			return move(1, STATE_FRACTION)
		}
		return malformed("Error number: %s", c.lexeme())

	case STATE_FRACTION:
		switch {
		case isDigit(r):
			return move(1, STATE_FRACTION)
		case r == 'e' || r == 'E':
			return move(1, STATE_EXPONENT_START)
		}
		return emitFloat(c.lexeme())

	case STATE_EXPONENT_START:
		switch {
		case isDigit(r):
			return move(1, STATE_EXPONENT)
		case r == '+' || r == '-':
			return move(1, STATE_EXPONENT_SIGN)
		}
		return malformed("Error number: %s", c.lexeme())

	case STATE_EXPONENT_SIGN:
		if isDigit(r) {
			return move(1, STATE_EXPONENT)
		}
		return malformed("Error number: %s", c.lexeme())

	case STATE_EXPONENT:
		if isDigit(r) {
			return move(1, STATE_EXPONENT)
		}
		return emitFloat(c.lexeme())

	case STATE_ZERO:
		switch {
		case r == '.':
			return move(1, STATE_FRACTION_START)
		case r == 'x' || r == 'X':
			return move(1, STATE_HEX_START)
		case r == 'b' || r == 'B':
			return move(1, STATE_BINARY_START)
		case isOctalDigit(r):
			return move(1, STATE_OCTAL)
		case r == 'e' || r == 'E':
			return move(1, STATE_EXPONENT_START)
		case r == '8' || r == '9':
			return move(1, STATE_OCTAL_INVALID)
		}
		return emitInteger(c.lexeme(), 10)

	case STATE_HEX_START:
		if isHexDigit(r) {
			return move(1, STATE_HEX)
		}
		return malformed("Error hexadecimal number: %s", c.lexeme())

	case STATE_HEX:
		if isHexDigit(r) {
			return move(1, STATE_HEX)
		}
		return emitInteger(c.lexeme(), 16)

	case STATE_BINARY_START:
		if r == '0' || r == '1' {
			return move(1, STATE_BINARY)
		}
		return malformed("Error number: %s in %s", c.lexeme(), st.ToString())

	case STATE_BINARY:
		if r == '0' || r == '1' {
			return move(1, STATE_BINARY)
		}
		return emitInteger(c.lexeme(), 2)

	case STATE_OCTAL:
		switch {
		case isOctalDigit(r):
			return move(1, STATE_OCTAL)
		case r == '8' || r == '9':
			return move(1, STATE_OCTAL_INVALID)
		case r == '.':
			return move(1, STATE_FRACTION_START)
		case r == 'e' || r == 'E':
			return move(1, STATE_EXPONENT_START)
		}
		return emitInteger(c.lexeme(), 8)

	case STATE_OCTAL_INVALID:
		if isDigit(r) {
			return move(1, STATE_OCTAL_INVALID)
		}
		lexeme := c.lexeme()
		if _, digits := splitSign(lexeme); len(digits) > 1 && (digits[1] == '8' || digits[1] == '9') {
			return malformed("Error octal number: %s", lexeme)
		}
		return malformed("Invalid octal number: %s", lexeme)
	}

	return wrongPattern(st)
}

func malformed(format string, args ...interface{}) Action {
	return report(DIAG_MALFORMED_NUMBER, 0, format, args...)
}

// splitSign separates a folded-in '+' or '-' from the digits of a lexeme.
func splitSign(lexeme string) (string, string) {
	if strings.HasPrefix(lexeme, "+") || strings.HasPrefix(lexeme, "-") {
		return lexeme[:1], lexeme[1:]
	}
	return "", lexeme
}

func emitInteger(lexeme string, base int) Action {
	sign, digits := splitSign(lexeme)
	if base == 16 || base == 2 {
		// Drop the 0x / 0b prefix; strconv only accepts it with base 0.
		digits = digits[2:]
	}

	v, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		return malformed("Error number: %s out of range", lexeme)
	}

	return emit(token.Token{Kind: token.TOK_NUMBER, Number: token.Integer(v)}, 0)
}

func emitFloat(lexeme string) Action {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return malformed("Error number: %s out of range", lexeme)
	}

	return emit(token.Token{Kind: token.TOK_NUMBER, Number: token.Float(v)}, 0)
}
