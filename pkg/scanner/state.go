/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type State int

const (
	STATE_START State = iota

	// Identifier family
	STATE_IDENTIFIER
	STATE_IDENTIFIER_SHORT
	STATE_IDENTIFIER_LONG

	// Number family
	STATE_NUMBER
	STATE_DECIMAL
	STATE_FRACTION_START
	STATE_FRACTION
	STATE_EXPONENT_START
	STATE_EXPONENT_SIGN
	STATE_EXPONENT
	STATE_ZERO
	STATE_HEX_START
	STATE_HEX
	STATE_BINARY_START
	STATE_BINARY
	STATE_OCTAL
	STATE_OCTAL_INVALID

	// Operator family
	STATE_OPERATOR
	STATE_SHIFT_LEFT
	STATE_SHIFT_RIGHT
	STATE_LINE_COMMENT
	STATE_BLOCK_COMMENT

	// Delimiter and literal family
	STATE_DELIMITER
	STATE_CHAR_LITERAL
	STATE_STRING_LITERAL
)

var stateNames = [...]string{
	STATE_START:            "STATE_START",
	STATE_IDENTIFIER:       "STATE_IDENTIFIER",
	STATE_IDENTIFIER_SHORT: "STATE_IDENTIFIER_SHORT",
	STATE_IDENTIFIER_LONG:  "STATE_IDENTIFIER_LONG",
	STATE_NUMBER:           "STATE_NUMBER",
	STATE_DECIMAL:          "STATE_DECIMAL",
	STATE_FRACTION_START:   "STATE_FRACTION_START",
	STATE_FRACTION:         "STATE_FRACTION",
	STATE_EXPONENT_START:   "STATE_EXPONENT_START",
	STATE_EXPONENT_SIGN:    "STATE_EXPONENT_SIGN",
	STATE_EXPONENT:         "STATE_EXPONENT",
	STATE_ZERO:             "STATE_ZERO",
	STATE_HEX_START:        "STATE_HEX_START",
	STATE_HEX:              "STATE_HEX",
	STATE_BINARY_START:     "STATE_BINARY_START",
	STATE_BINARY:           "STATE_BINARY",
	STATE_OCTAL:            "STATE_OCTAL",
	STATE_OCTAL_INVALID:    "STATE_OCTAL_INVALID",
	STATE_OPERATOR:         "STATE_OPERATOR",
	STATE_SHIFT_LEFT:       "STATE_SHIFT_LEFT",
	STATE_SHIFT_RIGHT:      "STATE_SHIFT_RIGHT",
	STATE_LINE_COMMENT:     "STATE_LINE_COMMENT",
	STATE_BLOCK_COMMENT:    "STATE_BLOCK_COMMENT",
	STATE_DELIMITER:        "STATE_DELIMITER",
	STATE_CHAR_LITERAL:     "STATE_CHAR_LITERAL",
	STATE_STRING_LITERAL:   "STATE_STRING_LITERAL",
}

func (s State) ToString() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "STATE_UNKNOWN"
	}
	return stateNames[s]
}

func (s State) String() string {
	return s.ToString()
}
