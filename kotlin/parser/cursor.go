package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

// Tokens that may start a line and still continue the expression on the
// previous line.
var allowedAfterNewline = map[lexer.TokenKind]bool{
	lexer.TokenDot:        true,
	lexer.TokenSafeAccess: true,
	lexer.TokenColon:      true,
	lexer.TokenAs:         true,
	lexer.TokenAsSafe:     true,
	lexer.TokenElvis:      true,
	lexer.TokenAndAnd:     true,
	lexer.TokenOrOr:       true,
}

// Adjacent raw tokens the cursor reads as one when joining is enabled.
var joinable = map[[2]lexer.TokenKind]lexer.TokenKind{
	{lexer.TokenQuestion, lexer.TokenDot}:   lexer.TokenSafeAccess,
	{lexer.TokenQuestion, lexer.TokenColon}: lexer.TokenElvis,
	{lexer.TokenExcl, lexer.TokenExcl}:      lexer.TokenExclExcl,
}

// limit is the index at which the stream currently ends: the EOF token or
// the active stop marker, whichever comes first.
func (p *Parser) limit() int {
	end := len(p.tokens) - 1
	if stop := p.mode().stopAt; stop >= 0 && stop < end {
		return stop
	}
	return end
}

// peekToken returns the current token, joining complex tokens and
// honouring the stop marker. At or past the limit it returns an EOF token.
func (p *Parser) peekToken() *lexer.Token {
	limit := p.limit()
	if p.pos >= limit {
		return p.eofAt(limit)
	}
	tok := &p.tokens[p.pos]
	if p.mode().join && p.pos+1 < limit {
		if joined := p.join(p.pos); joined != nil {
			return joined
		}
	}
	return tok
}

func (p *Parser) eofAt(i int) *lexer.Token {
	if i == len(p.tokens)-1 {
		return &p.tokens[i]
	}
	if tok, ok := p.stops[i]; ok {
		return tok
	}
	at := p.tokens[i].Span.Start
	tok := &lexer.Token{
		Kind:          lexer.TokenEOF,
		Span:          lexer.Span{Start: at, End: at},
		NewlineBefore: p.tokens[i].NewlineBefore,
	}
	p.stops[i] = tok
	return tok
}

// join returns the synthetic token for raw tokens i and i+1, or nil when
// they do not form a complex token. Synthetic tokens are cached so that
// repeated reads after backtracking yield the same pointer.
func (p *Parser) join(i int) *lexer.Token {
	a, b := &p.tokens[i], &p.tokens[i+1]
	kind, ok := joinable[[2]lexer.TokenKind{a.Kind, b.Kind}]
	if !ok || a.Span.End.Offset != b.Span.Start.Offset {
		return nil
	}
	if tok, ok := p.joined[i]; ok {
		return tok
	}
	tok := &lexer.Token{
		Kind:          kind,
		Span:          lexer.Span{Start: a.Span.Start, End: b.Span.End},
		Literal:       a.Literal + b.Literal,
		NewlineBefore: a.NewlineBefore,
	}
	p.joined[i] = tok
	return tok
}

// width is the number of raw tokens covered by the current token.
func (p *Parser) width() int {
	switch p.peekToken().Kind {
	case lexer.TokenSafeAccess, lexer.TokenElvis, lexer.TokenExclExcl:
		return 2
	}
	return 1
}

func (p *Parser) peekKind() lexer.TokenKind {
	return p.peekToken().Kind
}

// raw returns the raw token n positions ahead, ignoring joining but not
// the stop marker.
func (p *Parser) raw(n int) *lexer.Token {
	i := p.pos + n
	if limit := p.limit(); i >= limit {
		return p.eofAt(limit)
	}
	return &p.tokens[i]
}

func (p *Parser) at(kind lexer.TokenKind) bool {
	return p.peekKind() == kind
}

func (p *Parser) atAny(kinds ...lexer.TokenKind) bool {
	k := p.peekKind()
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// atSoft reports whether the current token is the identifier text.
func (p *Parser) atSoft(text string) bool {
	tok := p.peekToken()
	return tok.Kind == lexer.TokenIdent && tok.Literal == text
}

func (p *Parser) atEOF() bool {
	return p.at(lexer.TokenEOF)
}

// consume appends the current token as a leaf and advances past it.
// It never moves past the end of the stream.
func (p *Parser) consume() {
	tok := p.peekToken()
	if tok.Kind == lexer.TokenEOF {
		return
	}
	p.elems = append(p.elems, &Node{Kind: KindToken, Span: tok.Span, Token: tok})
	p.pos += p.width()
	if p.pos > p.stats.Farthest {
		p.stats.Farthest = p.pos
	}
}

// tok consumes the current token if it has the given kind.
func (p *Parser) tok(kind lexer.TokenKind) bool {
	if p.at(kind) {
		p.consume()
		return true
	}
	p.expected(kind.String())
	return false
}

// kw consumes the current token if it is the soft keyword text.
func (p *Parser) kw(text string) bool {
	if p.atSoft(text) {
		p.consume()
		return true
	}
	p.expected(text)
	return false
}

// newlineBefore reports whether a significant line break precedes the
// current token. The end of the stream always counts as one.
func (p *Parser) newlineBefore() bool {
	if !p.mode().newlines {
		return false
	}
	tok := p.peekToken()
	return tok.Kind == lexer.TokenEOF || tok.NewlineBefore
}

// interrupted reports whether the current token begins a new statement
// rather than continuing the expression before the line break.
func (p *Parser) interrupted() bool {
	return !allowedAfterNewline[p.peekKind()] && p.newlineBefore()
}

// adjacent reports whether raw tokens i and i+1 touch with no whitespace.
func (p *Parser) adjacent(i int) bool {
	if i < 0 || i+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[i].Span.End.Offset == p.tokens[i+1].Span.Start.Offset
}
