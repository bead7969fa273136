/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dburkart/clex/pkg/token"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func render(tokens []token.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.String())
	}
	return out
}

func expectTokens(t *testing.T, input string, want ...string) scanner.Result {
	t.Helper()

	result := scanner.Scan(input)
	if diff := cmp.Diff(want, render(result.Tokens)); diff != "" {
		t.Errorf("tokens for %q mismatch (-want +got):\n%s", input, diff)
	}
	return result
}

func diagnosticKinds(result scanner.Result) []scanner.DiagnosticKind {
	kinds := []scanner.DiagnosticKind{}
	for _, d := range result.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

func TestParallelOutputs(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"int main() { return 0; }",
		"a //comment\nb",
		"/* never closed",
		"\"abc",
		"@#$ 089 0x 1. 1e+",
		"x->y.z <<= 3 >>= 4",
	}

	for _, input := range inputs {
		result := scanner.Scan(input)

		if len(result.Tokens) != len(result.Positions) {
			t.Errorf("%q: %d tokens but %d positions", input, len(result.Tokens), len(result.Positions))
		}

		if len(result.Tokens) == 0 || !result.Tokens[len(result.Tokens)-1].IsEOF() {
			t.Errorf("%q: last token should be EndOfInput", input)
		}

		for _, tok := range result.Tokens[:len(result.Tokens)-1] {
			if tok.IsEOF() {
				t.Errorf("%q: EndOfInput emitted before the end", input)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	input := "struct point *p = &origin; p->x += -1.5e3; /* done */ return p;"

	first := scanner.Scan(input)
	second := scanner.Scan(input)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("scanning twice gave different results:\n%s", diff)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	s := scanner.New("a b c")

	first := s.Scan()
	second := s.Scan()

	if len(first.Tokens) != 4 || len(second.Tokens) != 4 {
		t.Errorf("wanted 4 tokens from both calls, got %d and %d", len(first.Tokens), len(second.Tokens))
	}
}

func TestLexemeCoverage(t *testing.T) {
	input := "int main(void){\n\tchar*s=\"hi\";\n\tlong x=-0x1F+017*0b11;\n\tx<<=2;if(x>=3.5e2&&!y)return x->z;\n}\n"
	result := scanner.Scan(input, scanner.WithExtendedWhitespace(true))

	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Messages())
	}

	var rebuilt strings.Builder
	for _, tok := range result.Tokens {
		rebuilt.WriteString(tok.Lexeme)
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)

	if rebuilt.String() != stripped {
		t.Errorf("lexemes do not cover the input:\nwant %s\ngot  %s", stripped, rebuilt.String())
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := map[string]string{
		"0":      "Integer(0)",
		"42":     "Integer(42)",
		"3.14":   "Float(3.14)",
		"1e10":   "Float(1e+10)",
		"0x1A":   "Integer(26)",
		"0XfF":   "Integer(255)",
		"0b101":  "Integer(5)",
		"0B1":    "Integer(1)",
		"017":    "Integer(15)",
		"0.5":    "Float(0.5)",
		"017.5":  "Float(17.5)",
		"07e1":   "Float(70)",
		"0e0":    "Float(0)",
		"2E-3":   "Float(0.002)",
		"1.5e+2": "Float(150)",
	}

	for input, want := range tests {
		result := expectTokens(t, input, want, "EndOfInput")
		if len(result.Diagnostics) != 0 {
			t.Errorf("%q: unexpected diagnostics %v", input, result.Messages())
		}
	}
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		input   string
		message string
		tokens  []string
	}{
		{"089", "Error octal number: 089", []string{"EndOfInput"}},
		{"0189", "Invalid octal number: 0189", []string{"EndOfInput"}},
		{"0x", "Error hexadecimal number: 0x", []string{"EndOfInput"}},
		{"0xg", "Error hexadecimal number: 0x", []string{`Identifier("g")`, "EndOfInput"}},
		{"0b2", "Error number: 0b in STATE_BINARY_START", []string{"Integer(2)", "EndOfInput"}},
		{"1.", "Error number: 1.", []string{"EndOfInput"}},
		{"1.x", "Error number: 1.", []string{`Identifier("x")`, "EndOfInput"}},
		{"1e", "Error number: 1e", []string{"EndOfInput"}},
		{"1e+", "Error number: 1e+", []string{"EndOfInput"}},
		{"99999999999999999999", "Error number: 99999999999999999999 out of range", []string{"EndOfInput"}},
		{"1e999", "Error number: 1e999 out of range", []string{"EndOfInput"}},
	}

	for _, test := range tests {
		result := expectTokens(t, test.input, test.tokens...)

		if len(result.Diagnostics) != 1 {
			t.Errorf("%q: wanted 1 diagnostic, got %v", test.input, result.Messages())
			continue
		}

		d := result.Diagnostics[0]
		if d.Kind != scanner.DIAG_MALFORMED_NUMBER {
			t.Errorf("%q: wanted malformed-number, got %s", test.input, d.Kind.ToString())
		}
		if d.Message != test.message {
			t.Errorf("%q: wanted message '%s', got '%s'", test.input, test.message, d.Message)
		}
		if result.Fatal {
			t.Errorf("%q: malformed numbers must not stop the scan", test.input)
		}
	}
}

func TestMalformedNumberRecovers(t *testing.T) {
	result := expectTokens(t, "x = 089; y = 1;",
		`Identifier("x")`, "Operator(Assign)", "Delimiter(Semicolon)",
		`Identifier("y")`, "Operator(Assign)", "Integer(1)", "Delimiter(Semicolon)",
		"EndOfInput",
	)

	if diff := cmp.Diff([]scanner.DiagnosticKind{scanner.DIAG_MALFORMED_NUMBER}, diagnosticKinds(result)); diff != "" {
		t.Error(diff)
	}

	d := result.Diagnostics[0]
	if d.Span != (token.Span{Start: 4, End: 7}) {
		t.Errorf("wanted span [4,7), got %v", d.Span)
	}
	if d.Position != (token.Position{Row: 1, Col: 5}) {
		t.Errorf("wanted position 1:5, got %s", d.Position.String())
	}
}

func TestSignDisambiguation(t *testing.T) {
	expectTokens(t, "a-1", `Identifier("a")`, "Operator(Subtract)", "Integer(1)", "EndOfInput")
	expectTokens(t, "(-1)", "Delimiter(LeftParenthesis)", "Integer(-1)", "Delimiter(RightParenthesis)", "EndOfInput")
	expectTokens(t, "x=+2", `Identifier("x")`, "Operator(Assign)", "Integer(2)", "EndOfInput")
	expectTokens(t, "3+4", "Integer(3)", "Operator(Add)", "Integer(4)", "EndOfInput")
	expectTokens(t, "(a)-1", "Delimiter(LeftParenthesis)", `Identifier("a")`, "Delimiter(RightParenthesis)", "Operator(Subtract)", "Integer(1)", "EndOfInput")
	expectTokens(t, "-0x10", "Integer(-16)", "EndOfInput")
	expectTokens(t, "-017", "Integer(-15)", "EndOfInput")
	expectTokens(t, "-2.5", "Float(-2.5)", "EndOfInput")
	expectTokens(t, "a - 1", `Identifier("a")`, "Operator(Subtract)", "Integer(1)", "EndOfInput")
	expectTokens(t, "- 1", "Operator(Subtract)", "Integer(1)", "EndOfInput")
}

func TestSignedNumberPosition(t *testing.T) {
	result := scanner.Scan("f(-12)")

	if result.Positions[2] != (token.Position{Row: 1, Col: 3}) {
		t.Errorf("signed literal should start at its sign, got %s", result.Positions[2].String())
	}
	if result.Tokens[2].Lexeme != "-12" {
		t.Errorf("wanted lexeme '-12', got '%s'", result.Tokens[2].Lexeme)
	}
}

func TestStarDisambiguation(t *testing.T) {
	expectTokens(t, "*p", "Operator(Dereference)", `Identifier("p")`, "EndOfInput")
	expectTokens(t, "a*b", `Identifier("a")`, "Operator(Multiply)", `Identifier("b")`, "EndOfInput")
	expectTokens(t, "2*3", "Integer(2)", "Operator(Multiply)", "Integer(3)", "EndOfInput")
	expectTokens(t, "(x)*y", "Delimiter(LeftParenthesis)", `Identifier("x")`, "Delimiter(RightParenthesis)", "Operator(Multiply)", `Identifier("y")`, "EndOfInput")
	expectTokens(t, "x=*p", `Identifier("x")`, "Operator(Assign)", "Operator(Dereference)", `Identifier("p")`, "EndOfInput")
	expectTokens(t, "x*=2", `Identifier("x")`, "Operator(MultiplyAssign)", "Integer(2)", "EndOfInput")
}

func TestAmpersandDisambiguation(t *testing.T) {
	expectTokens(t, "&x", "Operator(AddressOf)", `Identifier("x")`, "EndOfInput")
	expectTokens(t, "a & b", `Identifier("a")`, "Operator(BitwiseAnd)", `Identifier("b")`, "EndOfInput")
	expectTokens(t, "p = &x;", `Identifier("p")`, "Operator(Assign)", "Operator(AddressOf)", `Identifier("x")`, "Delimiter(Semicolon)", "EndOfInput")
	expectTokens(t, "(a)&b", "Delimiter(LeftParenthesis)", `Identifier("a")`, "Delimiter(RightParenthesis)", "Operator(BitwiseAnd)", `Identifier("b")`, "EndOfInput")
	expectTokens(t, `"s"&b`, `String("\"s\"")`, "Operator(BitwiseAnd)", `Identifier("b")`, "EndOfInput")
	// Numbers do not make a following '&' binary.
	expectTokens(t, "1&b", "Integer(1)", "Operator(AddressOf)", `Identifier("b")`, "EndOfInput")
	expectTokens(t, "a&&b", `Identifier("a")`, "Operator(LogicalAnd)", `Identifier("b")`, "EndOfInput")
	expectTokens(t, "a&=b", `Identifier("a")`, "Operator(BitwiseAndAssign)", `Identifier("b")`, "EndOfInput")
}

func TestOperators(t *testing.T) {
	tests := map[string]string{
		"a+=b":  "AddAssign",
		"a++b":  "Increment",
		"a--b":  "Decrement",
		"a-=b":  "SubtractAssign",
		"a->b":  "PointerMemberAccess",
		"a/b":   "Divide",
		"a/=b":  "DivideAssign",
		"a%b":   "Modulus",
		"a%=b":  "ModulusAssign",
		"a==b":  "Equal",
		"a=b":   "Assign",
		"a!=b":  "NotEqual",
		"a<b":   "LessThan",
		"a<=b":  "LessThanOrEqual",
		"a<<b":  "LeftShift",
		"a<<=b": "LeftShiftAssign",
		"a>b":   "GreaterThan",
		"a>=b":  "GreaterThanOrEqual",
		"a>>b":  "RightShift",
		"a>>=b": "RightShiftAssign",
		"a|b":   "BitwiseOr",
		"a||b":  "LogicalOr",
		"a|=b":  "BitwiseOrAssign",
		"a^b":   "BitwiseXor",
		"a^=b":  "BitwiseXorAssign",
		"a.b":   "MemberAccess",
	}

	for input, op := range tests {
		expectTokens(t, input, `Identifier("a")`, "Operator("+op+")", `Identifier("b")`, "EndOfInput")
	}

	expectTokens(t, "a++;", `Identifier("a")`, "Operator(Increment)", "Delimiter(Semicolon)", "EndOfInput")
	expectTokens(t, "a--", `Identifier("a")`, "Operator(Decrement)", "EndOfInput")

	expectTokens(t, "~a", "Operator(BitwiseNot)", `Identifier("a")`, "EndOfInput")
	expectTokens(t, "!a", "Operator(LogicalNot)", `Identifier("a")`, "EndOfInput")
	expectTokens(t, ".5", "Operator(MemberAccess)", "Integer(5)", "EndOfInput")
}

func TestDelimiters(t *testing.T) {
	expectTokens(t, ";,()[]{}\\?:",
		"Delimiter(Semicolon)", "Delimiter(Comma)",
		"Delimiter(LeftParenthesis)", "Delimiter(RightParenthesis)",
		"Delimiter(LeftBracket)", "Delimiter(RightBracket)",
		"Delimiter(LeftBrace)", "Delimiter(RightBrace)",
		"Delimiter(Backslash)", "Delimiter(ConditionalOperator)", "Delimiter(ConditionalSeparator)",
		"EndOfInput",
	)
}

func TestComments(t *testing.T) {
	result := expectTokens(t, "a //comment\nb", `Identifier("a")`, `Identifier("b")`, "EndOfInput")
	if result.Positions[1] != (token.Position{Row: 2, Col: 1}) {
		t.Errorf("wanted b at 2:1, got %s", result.Positions[1].String())
	}

	result = expectTokens(t, "a /* one\ntwo\n */ b", `Identifier("a")`, `Identifier("b")`, "EndOfInput")
	if result.Positions[1] != (token.Position{Row: 3, Col: 5}) {
		t.Errorf("wanted b at 3:5, got %s", result.Positions[1].String())
	}

	expectTokens(t, "a // trailing", `Identifier("a")`, "EndOfInput")
	expectTokens(t, "a/**/b", `Identifier("a")`, `Identifier("b")`, "EndOfInput")
	expectTokens(t, "/***/x", `Identifier("x")`, "EndOfInput")
}

// An unterminated block comment swallows the rest of the input without a
// diagnostic, unlike an unterminated quote.
func TestUnterminatedBlockComment(t *testing.T) {
	result := expectTokens(t, "a /* b c", `Identifier("a")`, "EndOfInput")

	if len(result.Diagnostics) != 0 {
		t.Errorf("wanted no diagnostics, got %v", result.Messages())
	}
	if result.Fatal {
		t.Error("an unterminated comment is not fatal")
	}
}

func TestCommentKeepsPreviousToken(t *testing.T) {
	// The previous token is not changed by a comment.
	expectTokens(t, "a /* c */ -1", `Identifier("a")`, "Operator(Subtract)", "Integer(1)", "EndOfInput")
}

func TestStringLiterals(t *testing.T) {
	expectTokens(t, `c = 'x';`, `Identifier("c")`, "Operator(Assign)", `String("'x'")`, "Delimiter(Semicolon)", "EndOfInput")
	expectTokens(t, `"two words"`, `String("\"two words\"")`, "EndOfInput")
	expectTokens(t, `"it's"`, `String("\"it's\"")`, "EndOfInput")
	expectTokens(t, `""`, `String("\"\"")`, "EndOfInput")

	// Backslashes are kept verbatim and do not escape the closing quote.
	result := expectTokens(t, `"a\"b`, `String("\"a\\\"")`, `Identifier("b")`, "EndOfInput")
	if len(result.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", result.Messages())
	}
}

func TestStringSpansLines(t *testing.T) {
	result := expectTokens(t, "\"a\nb\" x", `String("\"a\nb\"")`, `Identifier("x")`, "EndOfInput")

	if result.Positions[1] != (token.Position{Row: 2, Col: 4}) {
		t.Errorf("wanted x at 2:4, got %s", result.Positions[1].String())
	}
}

func TestUnterminatedString(t *testing.T) {
	result := expectTokens(t, `"abc`, "EndOfInput")

	if !result.Fatal {
		t.Error("an unterminated string should stop the scan")
	}

	if diff := cmp.Diff([]scanner.DiagnosticKind{scanner.DIAG_UNTERMINATED_LITERAL}, diagnosticKinds(result)); diff != "" {
		t.Error(diff)
	}

	if !errors.Is(result.Err(), scanner.ErrUnterminatedLiteral) {
		t.Errorf("wanted ErrUnterminatedLiteral, got %v", result.Err())
	}
}

func TestUnterminatedStringKeepsPartialOutput(t *testing.T) {
	result := expectTokens(t, "int x = 'a; y = 2; @",
		"Keyword(Int)", `Identifier("x")`, "Operator(Assign)", "EndOfInput",
	)

	// Nothing after the open quote is examined, including the '@'.
	if len(result.Diagnostics) != 1 {
		t.Errorf("wanted a single diagnostic, got %v", result.Messages())
	}
	if result.Diagnostics[0].Message != "Unmatched key: '" {
		t.Errorf("wanted \"Unmatched key: '\", got %q", result.Diagnostics[0].Message)
	}
}

func TestErrIsNilWithoutFatalDiagnostic(t *testing.T) {
	result := scanner.Scan("@ 089")

	if len(result.Diagnostics) != 2 {
		t.Errorf("wanted 2 diagnostics, got %v", result.Messages())
	}
	if result.Err() != nil {
		t.Errorf("non-fatal diagnostics should not produce an error, got %v", result.Err())
	}
}

func TestKeywords(t *testing.T) {
	expectTokens(t, "if", "Keyword(If)", "EndOfInput")
	// Keyword matching ignores case.
	expectTokens(t, "IF", "Keyword(If)", "EndOfInput")
	expectTokens(t, "While", "Keyword(While)", "EndOfInput")
	expectTokens(t, "If2", `Identifier("If2")`, "EndOfInput")
	expectTokens(t, "_if", `Identifier("_if")`, "EndOfInput")
	expectTokens(t, "if_", `Identifier("if_")`, "EndOfInput")
	expectTokens(t, "iffy", `Identifier("iffy")`, "EndOfInput")
	expectTokens(t, "unsigned", "Keyword(Unsigned)", "EndOfInput")
	expectTokens(t, "abcdefghij", `Identifier("abcdefghij")`, "EndOfInput")
	expectTokens(t, "abcdefghijk", `Identifier("abcdefghijk")`, "EndOfInput")

	for _, spelling := range token.Keywords() {
		result := scanner.Scan(spelling)
		if result.Tokens[0].Kind != token.TOK_KEYWORD || result.Tokens[0].Keyword.Spelling() != spelling {
			t.Errorf("wanted '%s' to scan as a keyword, got %s", spelling, result.Tokens[0].String())
		}
	}
}

func TestIdentifierBoundary(t *testing.T) {
	expectTokens(t, "foo(bar)", `Identifier("foo")`, "Delimiter(LeftParenthesis)", `Identifier("bar")`, "Delimiter(RightParenthesis)", "EndOfInput")
	expectTokens(t, "x1_y2+z", `Identifier("x1_y2")`, "Operator(Add)", `Identifier("z")`, "EndOfInput")
	expectTokens(t, "12ab", "Integer(12)", `Identifier("ab")`, "EndOfInput")
}

func TestUnrecognizedCharacters(t *testing.T) {
	result := expectTokens(t, "a @ b $", `Identifier("a")`, `Identifier("b")`, "EndOfInput")

	if len(result.Diagnostics) != 2 {
		t.Fatalf("wanted 2 diagnostics, got %v", result.Messages())
	}

	for _, d := range result.Diagnostics {
		if d.Kind != scanner.DIAG_UNRECOGNIZED_CHARACTER {
			t.Errorf("wanted unrecognized-character, got %s", d.Kind.ToString())
		}
		if d.State != scanner.STATE_START {
			t.Errorf("wanted diagnostic from STATE_START, got %s", d.State.ToString())
		}
	}

	if result.Diagnostics[0].Position != (token.Position{Row: 1, Col: 3}) {
		t.Errorf("wanted '@' at 1:3, got %s", result.Diagnostics[0].Position.String())
	}
	if result.Diagnostics[1].Span != (token.Span{Start: 6, End: 7}) {
		t.Errorf("wanted '$' span [6,7), got %v", result.Diagnostics[1].Span)
	}
}

func TestTabsAreUnrecognizedByDefault(t *testing.T) {
	result := expectTokens(t, "a\tb", `Identifier("a")`, `Identifier("b")`, "EndOfInput")
	if len(result.Diagnostics) != 1 {
		t.Errorf("wanted the tab to be reported, got %v", result.Messages())
	}

	result = scanner.Scan("a\tb\r\n", scanner.WithExtendedWhitespace(true))
	if len(result.Diagnostics) != 0 {
		t.Errorf("wanted no diagnostics with extended whitespace, got %v", result.Messages())
	}
	if diff := cmp.Diff([]string{`Identifier("a")`, `Identifier("b")`, "EndOfInput"}, render(result.Tokens)); diff != "" {
		t.Error(diff)
	}
}

func TestPositions(t *testing.T) {
	input := "int x;\n  x = 10;\n"
	result := scanner.Scan(input)

	want := []token.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 5}, {Row: 1, Col: 6},
		{Row: 2, Col: 3}, {Row: 2, Col: 5}, {Row: 2, Col: 7}, {Row: 2, Col: 9},
		{Row: 3, Col: 2},
	}

	if diff := cmp.Diff(want, result.Positions); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestMessages(t *testing.T) {
	result := scanner.Scan("x = 0x;")

	want := []string{"1:5: Error hexadecimal number: 0x"}
	if diff := cmp.Diff(want, result.Messages()); diff != "" {
		t.Error(diff)
	}
}

func TestFormatError(t *testing.T) {
	input := "int a;\nint b = 0189;\n"
	result := scanner.Scan(input)

	if len(result.Diagnostics) != 1 {
		t.Fatalf("wanted 1 diagnostic, got %v", result.Messages())
	}

	want := "Lexical error at 2:9:\nint b = 0189;\n        ^~~~ Invalid octal number: 0189\n"
	if got := result.Diagnostics[0].FormatError(input); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatErrorOnValue(t *testing.T) {
	d := scanner.Diagnostic{
		Span:     token.Span{Start: 0, End: 3},
		Position: token.Position{Row: 1, Col: 1},
		Message:  "Unexpected character: abc",
	}

	// Both renderings must be callable on a diagnostic that is not addressable.
	diagnostics := map[string]scanner.Diagnostic{"abc": d}

	want := "Lexical error at 1:1:\nabc\n^~~ Unexpected character: abc\n"
	if got := diagnostics["abc"].FormatError("abc"); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
	if got := diagnostics["abc"].Error(); got != "1:1: Unexpected character: abc" {
		t.Errorf("unexpected error string %q", got)
	}
}
