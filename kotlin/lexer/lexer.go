package lexer

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

type lexMode int

const (
	modeCode lexMode = iota
	modeString
	modeRawString
)

// state is one level of string template nesting. depth counts the
// unmatched '{' seen in a template entry, so the '}' that closes the
// entry can be told apart from one that closes a lambda inside it.
type state struct {
	mode  lexMode
	depth int
}

type Lexer struct {
	input      []byte
	file       string
	pos        int
	line       int
	column     int
	states     []state
	shortEntry bool
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
		states: []state{{mode: modeCode}},
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) top() *state {
	return &l.states[len(l.states)-1]
}

func (l *Lexer) push(m lexMode) {
	l.states = append(l.states, state{mode: m})
}

func (l *Lexer) pop() {
	if len(l.states) > 1 {
		l.states = l.states[:len(l.states)-1]
	}
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	if l.shortEntry {
		l.shortEntry = false
		if isIdentStart(l.input[l.pos:]) {
			return l.scanIdentOrKeyword(startPos)
		}
	}

	switch l.top().mode {
	case modeString:
		return l.scanStringPart(startPos, false)
	case modeRawString:
		return l.scanStringPart(startPos, true)
	}

	ch := l.peek()

	if ch == '#' && l.pos == 0 && l.peekN(1) == '!' {
		for l.peek() != 0 && l.peek() != '\n' {
			l.advance()
		}
		return l.token(TokenShebang, startPos)
	}

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos)
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' {
		return l.scanWhitespace(startPos)
	}

	if ch == '`' {
		return l.scanQuotedIdent(startPos)
	}

	if isIdentStart(l.input[l.pos:]) {
		return l.scanIdentOrKeyword(startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if ch == '\'' {
		return l.scanCharLiteral(startPos)
	}

	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			l.push(modeRawString)
		} else {
			l.advance()
			l.push(modeString)
		}
		return l.token(TokenOpenQuote, startPos)
	}

	if ch == '{' {
		l.advance()
		l.top().depth++
		return l.token(TokenLBrace, startPos)
	}

	if ch == '}' {
		l.advance()
		if len(l.states) > 1 && l.top().depth == 0 {
			l.pop()
			return l.token(TokenLongTemplateEntryEnd, startPos)
		}
		if l.top().depth > 0 {
			l.top().depth--
		}
		return l.token(TokenRBrace, startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' {
			l.advance()
		} else {
			break
		}
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanLineComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenLineComment, start)
}

// Block comments nest.
func (l *Lexer) scanBlockComment(start Position) Token {
	l.advanceN(2)
	depth := 1
	for depth > 0 && l.pos < len(l.input) {
		switch {
		case l.peek() == '/' && l.peekN(1) == '*':
			l.advanceN(2)
			depth++
		case l.peek() == '*' && l.peekN(1) == '/':
			l.advanceN(2)
			depth--
		default:
			l.advance()
		}
	}
	return l.token(TokenComment, start)
}

func (l *Lexer) scanQuotedIdent(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '`' && l.peek() != '\n' {
		l.advance()
	}
	if l.peek() != '`' {
		return l.token(TokenError, start)
	}
	l.advance()
	return l.token(TokenIdent, start)
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos:]) {
		_, size := utf8.DecodeRune(l.input[l.pos:])
		l.advanceN(size)
	}
	literal := string(l.input[start.Offset:l.pos])

	kind := LookupKeyword(literal)
	if kind == TokenAs && l.peek() == '?' {
		l.advance()
		kind = TokenAsSafe
	}
	return l.token(kind, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.advanceN(2)
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		l.scanIntSuffix()
		return l.token(TokenIntLiteral, start)
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		l.advanceN(2)
		for l.peek() == '0' || l.peek() == '1' || l.peek() == '_' {
			l.advance()
		}
		l.scanIntSuffix()
		return l.token(TokenIntLiteral, start)
	}

	isFloat := false
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	if ch := l.peek(); ch == 'f' || ch == 'F' {
		isFloat = true
		l.advance()
	} else if !isFloat {
		l.scanIntSuffix()
	}

	if isFloat {
		return l.token(TokenFloatLiteral, start)
	}
	return l.token(TokenIntLiteral, start)
}

func (l *Lexer) scanIntSuffix() {
	if l.peek() == 'u' || l.peek() == 'U' {
		l.advance()
	}
	if l.peek() == 'L' {
		l.advance()
	}
}

func (l *Lexer) scanCharLiteral(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() != '\'' {
		return l.token(TokenError, start)
	}
	l.advance()
	return l.token(TokenCharLiteral, start)
}

func (l *Lexer) scanStringPart(start Position, raw bool) Token {
	ch := l.peek()

	if ch == '"' {
		if !raw {
			l.advance()
			l.pop()
			return l.token(TokenClosingQuote, start)
		}
		run := 0
		for l.peekN(run) == '"' {
			run++
		}
		if run >= 3 {
			if run > 3 {
				l.advanceN(run - 3)
				return l.token(TokenRegularStringPart, start)
			}
			l.advanceN(3)
			l.pop()
			return l.token(TokenClosingQuote, start)
		}
	}

	if ch == '\n' && !raw {
		l.advance()
		l.pop()
		return l.token(TokenError, start)
	}

	if ch == '\\' && !raw {
		l.advance()
		if l.peek() == 'u' {
			l.advance()
			for i := 0; i < 4 && isHexDigit(l.peek()); i++ {
				l.advance()
			}
		} else if l.peek() != 0 && l.peek() != '\n' {
			l.advance()
		}
		return l.token(TokenEscapeSequence, start)
	}

	if ch == '$' {
		if l.peekN(1) == '{' {
			l.advanceN(2)
			l.push(modeCode)
			return l.token(TokenLongTemplateEntryStart, start)
		}
		if l.pos+1 < len(l.input) && isIdentStart(l.input[l.pos+1:]) {
			l.advance()
			// The identifier after '$' is lexed as code, then the string
			// resumes.
			l.shortEntry = true
			return l.token(TokenShortTemplateEntryStart, start)
		}
	}

	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == '"' && (!raw || (l.peekN(1) == '"' && l.peekN(2) == '"')) {
			break
		}
		if !raw && (ch == '\\' || ch == '\n') {
			break
		}
		if ch == '$' && (l.peekN(1) == '{' || (l.pos+1 < len(l.input) && isIdentStart(l.input[l.pos+1:]))) {
			break
		}
		l.advance()
	}
	return l.token(TokenRegularStringPart, start)
}

var operators = []struct {
	text string
	kind TokenKind
}{
	{"===", TokenEQEQEQ},
	{"!==", TokenNEEQEQ},
	{"==", TokenEQ},
	{"!=", TokenNE},
	{"<=", TokenLE},
	{">=", TokenGE},
	{"&&", TokenAndAnd},
	{"||", TokenOrOr},
	{"++", TokenPlusPlus},
	{"--", TokenMinusMinus},
	{"+=", TokenPlusAssign},
	{"-=", TokenMinusAssign},
	{"*=", TokenStarAssign},
	{"/=", TokenSlashAssign},
	{"%=", TokenPercentAssign},
	{"->", TokenArrow},
	{"..", TokenRange},
	{"::", TokenColonColon},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"[", TokenLBracket},
	{"]", TokenRBracket},
	{";", TokenSemicolon},
	{",", TokenComma},
	{".", TokenDot},
	{":", TokenColon},
	{"?", TokenQuestion},
	{"!", TokenExcl},
	{"@", TokenAt},
	{"#", TokenHash},
	{"=", TokenAssign},
	{"<", TokenLT},
	{">", TokenGT},
	{"+", TokenPlus},
	{"-", TokenMinus},
	{"*", TokenStar},
	{"/", TokenSlash},
	{"%", TokenPercent},
}

func (l *Lexer) scanOperator(start Position) Token {
	rest := l.input[l.pos:]

	// "!in" and "!is" are single tokens unless they start a longer name.
	if len(rest) >= 3 && rest[0] == '!' && (string(rest[1:3]) == "in" || string(rest[1:3]) == "is") {
		if len(rest) == 3 || !isIdentPart(rest[3:]) {
			l.advanceN(3)
			if rest[2] == 'n' {
				return l.token(TokenNotIn, start)
			}
			return l.token(TokenNotIs, start)
		}
	}

	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op.text)) {
			l.advanceN(len(op.text))
			return l.token(op.kind, start)
		}
	}

	_, size := utf8.DecodeRune(rest)
	l.advanceN(size)
	return l.token(TokenError, start)
}

func isIdentStart(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] < utf8.RuneSelf {
		ch := b[0]
		return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
	}
	r, _ := utf8.DecodeRune(b)
	return unicode.IsLetter(r)
}

func isIdentPart(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] < utf8.RuneSelf {
		return isIdentStart(b) || isDigit(b[0])
	}
	r, _ := utf8.DecodeRune(b)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
