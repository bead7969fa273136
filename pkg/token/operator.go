/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

type Operator int

const (
	OP_NONE Operator = iota

	// Arithmetic
	OP_ADD
	OP_SUBTRACT
	OP_MULTIPLY
	OP_DIVIDE
	OP_MODULUS

	// Relational
	OP_EQUAL
	OP_NOT_EQUAL
	OP_LESS
	OP_GREATER
	OP_LESS_EQ
	OP_GREATER_EQ

	// Logical
	OP_LOGICAL_AND
	OP_LOGICAL_OR
	OP_LOGICAL_NOT

	// Bitwise
	OP_BITWISE_AND
	OP_BITWISE_OR
	OP_BITWISE_XOR
	OP_BITWISE_NOT
	OP_SHIFT_LEFT
	OP_SHIFT_RIGHT

	// Assignment
	OP_ASSIGN
	OP_ADD_ASSIGN
	OP_INCREMENT
	OP_DECREMENT
	OP_SUBTRACT_ASSIGN
	OP_MULTIPLY_ASSIGN
	OP_DIVIDE_ASSIGN
	OP_MODULUS_ASSIGN
	OP_SHIFT_LEFT_ASSIGN
	OP_SHIFT_RIGHT_ASSIGN
	OP_BITWISE_AND_ASSIGN
	OP_BITWISE_OR_ASSIGN
	OP_BITWISE_XOR_ASSIGN

	// Unary and member access
	OP_ADDRESS_OF
	OP_DEREFERENCE
	OP_MEMBER_ACCESS
	OP_POINTER_MEMBER_ACCESS
)

var operatorNames = [...]struct {
	name   string
	symbol string
}{
	OP_NONE:                  {"Unknown", ""},
	OP_ADD:                   {"Add", "+"},
	OP_SUBTRACT:              {"Subtract", "-"},
	OP_MULTIPLY:              {"Multiply", "*"},
	OP_DIVIDE:                {"Divide", "/"},
	OP_MODULUS:               {"Modulus", "%"},
	OP_EQUAL:                 {"Equal", "=="},
	OP_NOT_EQUAL:             {"NotEqual", "!="},
	OP_LESS:                  {"LessThan", "<"},
	OP_GREATER:               {"GreaterThan", ">"},
	OP_LESS_EQ:               {"LessThanOrEqual", "<="},
	OP_GREATER_EQ:            {"GreaterThanOrEqual", ">="},
	OP_LOGICAL_AND:           {"LogicalAnd", "&&"},
	OP_LOGICAL_OR:            {"LogicalOr", "||"},
	OP_LOGICAL_NOT:           {"LogicalNot", "!"},
	OP_BITWISE_AND:           {"BitwiseAnd", "&"},
	OP_BITWISE_OR:            {"BitwiseOr", "|"},
	OP_BITWISE_XOR:           {"BitwiseXor", "^"},
	OP_BITWISE_NOT:           {"BitwiseNot", "~"},
	OP_SHIFT_LEFT:            {"LeftShift", "<<"},
	OP_SHIFT_RIGHT:           {"RightShift", ">>"},
	OP_ASSIGN:                {"Assign", "="},
	OP_ADD_ASSIGN:            {"AddAssign", "+="},
	OP_INCREMENT:             {"Increment", "++"},
	OP_DECREMENT:             {"Decrement", "--"},
	OP_SUBTRACT_ASSIGN:       {"SubtractAssign", "-="},
	OP_MULTIPLY_ASSIGN:       {"MultiplyAssign", "*="},
	OP_DIVIDE_ASSIGN:         {"DivideAssign", "/="},
	OP_MODULUS_ASSIGN:        {"ModulusAssign", "%="},
	OP_SHIFT_LEFT_ASSIGN:     {"LeftShiftAssign", "<<="},
	OP_SHIFT_RIGHT_ASSIGN:    {"RightShiftAssign", ">>="},
	OP_BITWISE_AND_ASSIGN:    {"BitwiseAndAssign", "&="},
	OP_BITWISE_OR_ASSIGN:     {"BitwiseOrAssign", "|="},
	OP_BITWISE_XOR_ASSIGN:    {"BitwiseXorAssign", "^="},
	OP_ADDRESS_OF:            {"AddressOf", "&"},
	OP_DEREFERENCE:           {"Dereference", "*"},
	OP_MEMBER_ACCESS:         {"MemberAccess", "."},
	OP_POINTER_MEMBER_ACCESS: {"PointerMemberAccess", "->"},
}

func (o Operator) valid() bool {
	return o > OP_NONE && int(o) < len(operatorNames)
}

func (o Operator) ToString() string {
	if !o.valid() {
		return "Unknown"
	}
	return operatorNames[o].name
}

func (o Operator) Symbol() string {
	if !o.valid() {
		return ""
	}
	return operatorNames[o].symbol
}

type Delimiter int

const (
	DELIM_NONE Delimiter = iota
	DELIM_SEMICOLON
	DELIM_COMMA
	DELIM_PAREN_L
	DELIM_PAREN_R
	DELIM_BRACKET_L
	DELIM_BRACKET_R
	DELIM_BRACE_L
	DELIM_BRACE_R
	DELIM_BACKSLASH
	DELIM_QUESTION
	DELIM_COLON
)

var delimiterNames = [...]struct {
	name   string
	symbol string
}{
	DELIM_NONE:      {"Unknown", ""},
	DELIM_SEMICOLON: {"Semicolon", ";"},
	DELIM_COMMA:     {"Comma", ","},
	DELIM_PAREN_L:   {"LeftParenthesis", "("},
	DELIM_PAREN_R:   {"RightParenthesis", ")"},
	DELIM_BRACKET_L: {"LeftBracket", "["},
	DELIM_BRACKET_R: {"RightBracket", "]"},
	DELIM_BRACE_L:   {"LeftBrace", "{"},
	DELIM_BRACE_R:   {"RightBrace", "}"},
	DELIM_BACKSLASH: {"Backslash", "\\"},
	DELIM_QUESTION:  {"ConditionalOperator", "?"},
	DELIM_COLON:     {"ConditionalSeparator", ":"},
}

func (d Delimiter) valid() bool {
	return d > DELIM_NONE && int(d) < len(delimiterNames)
}

func (d Delimiter) ToString() string {
	if !d.valid() {
		return "Unknown"
	}
	return delimiterNames[d].name
}

func (d Delimiter) Symbol() string {
	if !d.valid() {
		return ""
	}
	return delimiterNames[d].symbol
}

// LookupDelimiter maps a single punctuation character to its delimiter tag.
// Quote characters are not delimiters; they open literals.
func LookupDelimiter(r rune) (Delimiter, bool) {
	switch r {
	case ';':
		return DELIM_SEMICOLON, true
	case ',':
		return DELIM_COMMA, true
	case '(':
		return DELIM_PAREN_L, true
	case ')':
		return DELIM_PAREN_R, true
	case '[':
		return DELIM_BRACKET_L, true
	case ']':
		return DELIM_BRACKET_R, true
	case '{':
		return DELIM_BRACE_L, true
	case '}':
		return DELIM_BRACE_R, true
	case '\\':
		return DELIM_BACKSLASH, true
	case '?':
		return DELIM_QUESTION, true
	case ':':
		return DELIM_COLON, true
	}
	return DELIM_NONE, false
}
