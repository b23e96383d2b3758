package lexer

import (
	"testing"
)

func kinds(input string) []TokenKind {
	var got []TokenKind
	for _, tok := range Tokenize([]byte(input), "test.kt") {
		got = append(got, tok.Kind)
	}
	return got
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"val x = 1", []TokenKind{TokenVal, TokenIdent, TokenAssign, TokenIntLiteral, TokenEOF}},
		{"a?.b", []TokenKind{TokenIdent, TokenQuestion, TokenDot, TokenIdent, TokenEOF}},
		{"a ?: b", []TokenKind{TokenIdent, TokenQuestion, TokenColon, TokenIdent, TokenEOF}},
		{"a!!", []TokenKind{TokenIdent, TokenExcl, TokenExcl, TokenEOF}},
		{"x as? T", []TokenKind{TokenIdent, TokenAsSafe, TokenIdent, TokenEOF}},
		{"x as T", []TokenKind{TokenIdent, TokenAs, TokenIdent, TokenEOF}},
		{"a !in b", []TokenKind{TokenIdent, TokenNotIn, TokenIdent, TokenEOF}},
		{"a !is B", []TokenKind{TokenIdent, TokenNotIs, TokenIdent, TokenEOF}},
		{"!isEmpty", []TokenKind{TokenExcl, TokenIdent, TokenEOF}},
		{"1..2", []TokenKind{TokenIntLiteral, TokenRange, TokenIntLiteral, TokenEOF}},
		{"1.5f", []TokenKind{TokenFloatLiteral, TokenEOF}},
		{"2e10", []TokenKind{TokenFloatLiteral, TokenEOF}},
		{"0xFFL", []TokenKind{TokenIntLiteral, TokenEOF}},
		{"0b1010", []TokenKind{TokenIntLiteral, TokenEOF}},
		{"'a'", []TokenKind{TokenCharLiteral, TokenEOF}},
		{"'\\n'", []TokenKind{TokenCharLiteral, TokenEOF}},
		{"Foo::bar", []TokenKind{TokenIdent, TokenColonColon, TokenIdent, TokenEOF}},
		{"== != === !==", []TokenKind{TokenEQ, TokenNE, TokenEQEQEQ, TokenNEEQEQ, TokenEOF}},
		{"< > <= >=", []TokenKind{TokenLT, TokenGT, TokenLE, TokenGE, TokenEOF}},
		{"&& ||", []TokenKind{TokenAndAnd, TokenOrOr, TokenEOF}},
		{"++ -- += -= *= /= %=", []TokenKind{TokenPlusPlus, TokenMinusMinus, TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign, TokenPercentAssign, TokenEOF}},
		{"{ x -> x }", []TokenKind{TokenLBrace, TokenIdent, TokenArrow, TokenIdent, TokenRBrace, TokenEOF}},
		{"@Ann", []TokenKind{TokenAt, TokenIdent, TokenEOF}},
		{"`fun name`", []TokenKind{TokenIdent, TokenEOF}},
		{"/* a /* b */ c */ x", []TokenKind{TokenIdent, TokenEOF}},
		{"#!/usr/bin/env kotlin\nval", []TokenKind{TokenVal, TokenEOF}},
		{"x // comment", []TokenKind{TokenIdent, TokenEOF}},
		{"by get where", []TokenKind{TokenIdent, TokenIdent, TokenIdent, TokenEOF}},
		{`"plain"`, []TokenKind{TokenOpenQuote, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{`""`, []TokenKind{TokenOpenQuote, TokenClosingQuote, TokenEOF}},
		{`"a${b}c"`, []TokenKind{TokenOpenQuote, TokenRegularStringPart, TokenLongTemplateEntryStart, TokenIdent, TokenLongTemplateEntryEnd, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{`"$x!"`, []TokenKind{TokenOpenQuote, TokenShortTemplateEntryStart, TokenIdent, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{`"$this"`, []TokenKind{TokenOpenQuote, TokenShortTemplateEntryStart, TokenThis, TokenClosingQuote, TokenEOF}},
		{`"cost: $"`, []TokenKind{TokenOpenQuote, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{`"\n\t"`, []TokenKind{TokenOpenQuote, TokenEscapeSequence, TokenEscapeSequence, TokenClosingQuote, TokenEOF}},
		{`"${ {1} }"`, []TokenKind{TokenOpenQuote, TokenLongTemplateEntryStart, TokenLBrace, TokenIntLiteral, TokenRBrace, TokenLongTemplateEntryEnd, TokenClosingQuote, TokenEOF}},
		{`"${"in"}"`, []TokenKind{TokenOpenQuote, TokenLongTemplateEntryStart, TokenOpenQuote, TokenRegularStringPart, TokenClosingQuote, TokenLongTemplateEntryEnd, TokenClosingQuote, TokenEOF}},
		{`"""a"b"""`, []TokenKind{TokenOpenQuote, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{`"""\n"""`, []TokenKind{TokenOpenQuote, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{`""""a""""`, []TokenKind{TokenOpenQuote, TokenRegularStringPart, TokenRegularStringPart, TokenClosingQuote, TokenEOF}},
		{"$", []TokenKind{TokenError, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(tt.input)
			if len(got) != len(tt.expected) {
				t.Errorf("got %d tokens %v, want %d %v", len(got), got, len(tt.expected), tt.expected)
				return
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("class Foo {}"), "Test.kt")
	pos := lexer.Position()

	if pos.File != "Test.kt" {
		t.Errorf("File = %q, want %q", pos.File, "Test.kt")
	}
	if pos.Line != 1 {
		t.Errorf("Line = %d, want %d", pos.Line, 1)
	}
	if pos.Column != 1 {
		t.Errorf("Column = %d, want %d", pos.Column, 1)
	}
}

func TestLexerKeywords(t *testing.T) {
	for word, kind := range keywords {
		t.Run(word, func(t *testing.T) {
			tok := NewLexer([]byte(word), "test.kt").NextToken()
			if tok.Kind != kind {
				t.Errorf("got %v, want %v", tok.Kind, kind)
			}
			if !tok.Kind.IsKeyword() {
				t.Errorf("%v: IsKeyword() = false", tok.Kind)
			}
		})
	}
}

func TestLexerSoftKeywordsAreIdentifiers(t *testing.T) {
	for word := range SoftKeywords {
		t.Run(word, func(t *testing.T) {
			tok := NewLexer([]byte(word), "test.kt").NextToken()
			if tok.Kind != TokenIdent {
				t.Errorf("got %v, want %v", tok.Kind, TokenIdent)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := Tokenize([]byte("val\n  x = 1"), "p.kt")
	x := tokens[1]
	if x.Literal != "x" {
		t.Fatalf("got %q, want %q", x.Literal, "x")
	}
	if x.Span.Start.Line != 2 || x.Span.Start.Column != 3 {
		t.Errorf("x starts at %v, want 2:3", x.Span.Start)
	}
	if x.Span.Start.Offset != 6 || x.Span.End.Offset != 7 {
		t.Errorf("x offsets = %d-%d, want 6-7", x.Span.Start.Offset, x.Span.End.Offset)
	}
	if got := x.Span.Start.String(); got != "p.kt:2:3" {
		t.Errorf("String() = %q, want %q", got, "p.kt:2:3")
	}
}
