package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

// The combinators below all leave the cursor where they found it when
// they fail.

func (p *Parser) seq(fns ...func() bool) bool {
	cp := p.open()
	for _, fn := range fns {
		if !fn() {
			p.rollback(cp)
			return false
		}
	}
	return true
}

func (p *Parser) alt(fns ...func() bool) bool {
	for _, fn := range fns {
		cp := p.open()
		if fn() {
			return true
		}
		p.rollback(cp)
	}
	return false
}

// optional runs fn and succeeds either way.
func (p *Parser) optional(fn func() bool) bool {
	cp := p.open()
	if !fn() {
		p.rollback(cp)
	}
	return true
}

// many runs fn until it fails and succeeds if it matched at least min
// times. An iteration that succeeds without consuming input ends the
// loop.
func (p *Parser) many(min int, fn func() bool) bool {
	cp := p.open()
	n := 0
	for {
		step := p.open()
		if !fn() {
			p.rollback(step)
			break
		}
		if p.pos == step.pos {
			p.rollback(step)
			p.trip("empty iteration at %s", p.peekToken().Span.Start)
			break
		}
		n++
	}
	if n < min {
		p.rollback(cp)
		return false
	}
	return true
}

// lookahead reports whether fn would match, without consuming anything.
func (p *Parser) lookahead(fn func() bool) bool {
	cp := p.open()
	ok := fn()
	p.rollback(cp)
	return ok
}

func (p *Parser) not(fn func() bool) bool {
	return !p.lookahead(fn)
}

// sepBy parses item (sep item)*.
func (p *Parser) sepBy(sep lexer.TokenKind, item func() bool) bool {
	if !item() {
		return false
	}
	return p.many(0, func() bool {
		return p.tok(sep) && item()
	})
}

// sepByTrailing is sepBy with an optional trailing separator.
func (p *Parser) sepByTrailing(sep lexer.TokenKind, item func() bool) bool {
	if !p.sepBy(sep, item) {
		return false
	}
	if p.at(sep) {
		p.consume()
	}
	return true
}

func (p *Parser) r(rule Rule) func() bool {
	return func() bool { return p.call(rule) }
}

func (p *Parser) t(kind lexer.TokenKind) func() bool {
	return func() bool { return p.tok(kind) }
}

// operation consumes the current token wrapped in an operation reference.
func (p *Parser) operation() {
	cp := p.open()
	p.consume()
	p.commit(cp, KindOperationReference)
}

// skipSemis consumes any run of semicolons and reports whether there was
// one.
func (p *Parser) skipSemis() bool {
	found := false
	for p.at(lexer.TokenSemicolon) {
		p.consume()
		found = true
	}
	return found
}
