/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"github.com/dburkart/clex/pkg/token"
)

// tokenClass summarizes the last emitted token for the context-sensitive
// operators.
type tokenClass int

const (
	CLASS_NONE tokenClass = iota
	CLASS_IDENTIFIER
	CLASS_NUMBER
	CLASS_STRING
	CLASS_PAREN_R
	CLASS_OTHER
)

func classOf(t token.Token) tokenClass {
	switch t.Kind {
	case token.TOK_IDENTIFIER:
		return CLASS_IDENTIFIER
	case token.TOK_NUMBER:
		return CLASS_NUMBER
	case token.TOK_STRING:
		return CLASS_STRING
	case token.TOK_DELIMITER:
		if t.Delimiter == token.DELIM_PAREN_R {
			return CLASS_PAREN_R
		}
	}
	return CLASS_OTHER
}

// endsOperand reports whether a following '+', '-' or '*' is binary.
func (c tokenClass) endsOperand() bool {
	return c == CLASS_IDENTIFIER || c == CLASS_PAREN_R || c == CLASS_NUMBER
}

// endsAddressable reports whether a following '&' is a bitwise and.
func (c tokenClass) endsAddressable() bool {
	return c == CLASS_IDENTIFIER || c == CLASS_PAREN_R || c == CLASS_STRING
}

func emitOp(op token.Operator, n int) Action {
	return emit(token.Token{Kind: token.TOK_OPERATOR, Operator: op}, n)
}

// operator resolves the operator whose first character is the lexeme lead,
// looking at the character after it. Comments are also opened here.
func operator(st State, c cursor) Action {
	r := c.char()

	switch st {
	case STATE_SHIFT_LEFT:
		if r == '=' {
			return emitOp(token.OP_SHIFT_LEFT_ASSIGN, 1)
		}
		return emitOp(token.OP_SHIFT_LEFT, 0)

	case STATE_SHIFT_RIGHT:
		if r == '=' {
			return emitOp(token.OP_SHIFT_RIGHT_ASSIGN, 1)
		}
		return emitOp(token.OP_SHIFT_RIGHT, 0)

	case STATE_LINE_COMMENT:
		// The newline itself is left for STATE_START to count.
		if r == '\n' {
			return move(0, STATE_START)
		}
		return move(1, STATE_LINE_COMMENT)

	case STATE_BLOCK_COMMENT:
		if r == '*' && c.peek() == '/' {
			return move(2, STATE_START)
		}
		return move(1, STATE_BLOCK_COMMENT)

	case STATE_OPERATOR:
		return resolveOperator(c)
	}

	return wrongPattern(st)
}

func resolveOperator(c cursor) Action {
	r := c.char()

	switch c.lead() {
	case '+':
		switch {
		case r == '=':
			return emitOp(token.OP_ADD_ASSIGN, 1)
		case r == '+':
			return emitOp(token.OP_INCREMENT, 1)
		case isDigit(r):
			return signOrBinary(c, token.OP_ADD)
		}
		return emitOp(token.OP_ADD, 0)

	case '-':
		switch {
		case r == '=':
			return emitOp(token.OP_SUBTRACT_ASSIGN, 1)
		case r == '-':
			return emitOp(token.OP_DECREMENT, 1)
		case r == '>':
			return emitOp(token.OP_POINTER_MEMBER_ACCESS, 1)
		case isDigit(r):
			return signOrBinary(c, token.OP_SUBTRACT)
		}
		return emitOp(token.OP_SUBTRACT, 0)

	case '*':
		if r == '=' {
			return emitOp(token.OP_MULTIPLY_ASSIGN, 1)
		}
		if c.prev.endsOperand() {
			return emitOp(token.OP_MULTIPLY, 0)
		}
		return emitOp(token.OP_DEREFERENCE, 0)

	case '/':
		switch r {
		case '=':
			return emitOp(token.OP_DIVIDE_ASSIGN, 1)
		case '/':
			return move(1, STATE_LINE_COMMENT)
		case '*':
			return move(1, STATE_BLOCK_COMMENT)
		}
		return emitOp(token.OP_DIVIDE, 0)

	case '%':
		if r == '=' {
			return emitOp(token.OP_MODULUS_ASSIGN, 1)
		}
		return emitOp(token.OP_MODULUS, 0)

	case '=':
		if r == '=' {
			return emitOp(token.OP_EQUAL, 1)
		}
		return emitOp(token.OP_ASSIGN, 0)

	case '!':
		if r == '=' {
			return emitOp(token.OP_NOT_EQUAL, 1)
		}
		return emitOp(token.OP_LOGICAL_NOT, 0)

	case '<':
		switch r {
		case '=':
			return emitOp(token.OP_LESS_EQ, 1)
		case '<':
			return move(1, STATE_SHIFT_LEFT)
		}
		return emitOp(token.OP_LESS, 0)

	case '>':
		switch r {
		case '=':
			return emitOp(token.OP_GREATER_EQ, 1)
		case '>':
			return move(1, STATE_SHIFT_RIGHT)
		}
		return emitOp(token.OP_GREATER, 0)

	case '&':
		switch r {
		case '=':
			return emitOp(token.OP_BITWISE_AND_ASSIGN, 1)
		case '&':
			return emitOp(token.OP_LOGICAL_AND, 1)
		}
		if c.prev.endsAddressable() {
			return emitOp(token.OP_BITWISE_AND, 0)
		}
		return emitOp(token.OP_ADDRESS_OF, 0)

	case '|':
		switch r {
		case '=':
			return emitOp(token.OP_BITWISE_OR_ASSIGN, 1)
		case '|':
			return emitOp(token.OP_LOGICAL_OR, 1)
		}
		return emitOp(token.OP_BITWISE_OR, 0)

	case '^':
		if r == '=' {
			return emitOp(token.OP_BITWISE_XOR_ASSIGN, 1)
		}
		return emitOp(token.OP_BITWISE_XOR, 0)

	case '~':
		return emitOp(token.OP_BITWISE_NOT, 0)

	case '.':
		return emitOp(token.OP_MEMBER_ACCESS, 0)
	}

	return report(DIAG_UNRECOGNIZED_CHARACTER, 0, "Unrecognized character: %q in %s", c.lead(), STATE_OPERATOR.ToString())
}

// signOrBinary decides whether a '+' or '-' directly followed by a digit is a
// binary operator or the sign of a numeric literal.
func signOrBinary(c cursor, op token.Operator) Action {
	if c.prev.endsOperand() {
		return emitOp(op, 0)
	}
	return move(0, STATE_NUMBER)
}
