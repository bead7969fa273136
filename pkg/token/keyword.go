/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package token

import "strings"

type Keyword int

const (
	KW_NONE Keyword = iota
	KW_AUTO
	KW_BREAK
	KW_CASE
	KW_CHAR
	KW_CONST
	KW_CONTINUE
	KW_DEFAULT
	KW_DO
	KW_DOUBLE
	KW_ELSE
	KW_ENUM
	KW_EXTERN
	KW_FLOAT
	KW_FOR
	KW_GOTO
	KW_IF
	KW_INT
	KW_LONG
	KW_REGISTER
	KW_RETURN
	KW_SHORT
	KW_SIGNED
	KW_SIZEOF
	KW_STATIC
	KW_STRUCT
	KW_SWITCH
	KW_TYPEDEF
	KW_UNION
	KW_UNSIGNED
	KW_VOID
	KW_VOLATILE
	KW_WHILE
)

// MaxKeywordLength bounds the lexemes that are looked up in the keyword
// table; anything longer is always an identifier.
const MaxKeywordLength = 10

var keywordSpellings = [...]string{
	KW_NONE:     "",
	KW_AUTO:     "auto",
	KW_BREAK:    "break",
	KW_CASE:     "case",
	KW_CHAR:     "char",
	KW_CONST:    "const",
	KW_CONTINUE: "continue",
	KW_DEFAULT:  "default",
	KW_DO:       "do",
	KW_DOUBLE:   "double",
	KW_ELSE:     "else",
	KW_ENUM:     "enum",
	KW_EXTERN:   "extern",
	KW_FLOAT:    "float",
	KW_FOR:      "for",
	KW_GOTO:     "goto",
	KW_IF:       "if",
	KW_INT:      "int",
	KW_LONG:     "long",
	KW_REGISTER: "register",
	KW_RETURN:   "return",
	KW_SHORT:    "short",
	KW_SIGNED:   "signed",
	KW_SIZEOF:   "sizeof",
	KW_STATIC:   "static",
	KW_STRUCT:   "struct",
	KW_SWITCH:   "switch",
	KW_TYPEDEF:  "typedef",
	KW_UNION:    "union",
	KW_UNSIGNED: "unsigned",
	KW_VOID:     "void",
	KW_VOLATILE: "volatile",
	KW_WHILE:    "while",
}

var keywords map[string]Keyword

func init() {
	keywords = make(map[string]Keyword, len(keywordSpellings))
	for kw, spelling := range keywordSpellings {
		if spelling != "" {
			keywords[spelling] = Keyword(kw)
		}
	}
}

// LookupKeyword matches s against the keyword table. Matching ignores case,
// so "IF" and "If" both resolve to KW_IF.
func LookupKeyword(s string) (Keyword, bool) {
	if len(s) == 0 || len(s) > MaxKeywordLength {
		return KW_NONE, false
	}
	kw, ok := keywords[strings.ToLower(s)]
	return kw, ok
}

// Keywords returns every reserved word spelling in declaration order.
func Keywords() []string {
	return append([]string(nil), keywordSpellings[1:]...)
}

func (k Keyword) Spelling() string {
	if k <= KW_NONE || int(k) >= len(keywordSpellings) {
		return ""
	}
	return keywordSpellings[k]
}

// ToString returns the tag name of the keyword, e.g. "Sizeof".
func (k Keyword) ToString() string {
	s := k.Spelling()
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
