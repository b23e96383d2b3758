package lexer

import "strings"

// Tokenize lexes input to completion and returns the significant tokens,
// ending with a single TokenEOF. Whitespace and comments are dropped; a
// line break inside them is recorded as NewlineBefore on the next token.
func Tokenize(input []byte, file string) []Token {
	l := NewLexer(input, file)
	var tokens []Token
	newline := false
	for {
		tok := l.NextToken()
		if tok.Kind.IsTrivia() {
			if tok.Kind != TokenLineComment && strings.Contains(tok.Literal, "\n") {
				newline = true
			}
			continue
		}
		tok.NewlineBefore = newline
		newline = false
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}
