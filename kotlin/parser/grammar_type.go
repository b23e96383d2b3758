package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

func parseType(p *Parser) bool {
	p.optional(p.typeModifiers)
	return p.call(RuleTypeElement)
}

// typeModifiers reads annotations and "suspend" in front of a type.
func (p *Parser) typeModifiers() bool {
	cp := p.open()
	ok := p.many(1, func() bool {
		if p.atSoft("suspend") {
			switch p.raw(1).Kind {
			case lexer.TokenLParen, lexer.TokenIdent, lexer.TokenAt:
				p.consume()
				return true
			}
			return false
		}
		return p.at(lexer.TokenAt) && p.call(RuleAnnotation)
	})
	if !ok {
		return false
	}
	p.commit(cp, KindModifierList)
	return true
}

// parseTypeElement reads a type without modifiers: a user type, a
// function type, a parenthesized type or "dynamic", followed by any
// number of '?' and optionally by ".(params) -> R" when the type is the
// receiver of a function type.
func parseTypeElement(p *Parser) bool {
	cp := p.open()
	if !p.typeAtom() {
		return false
	}
	for p.atNullableMark() {
		p.withJoin(false, func() bool {
			p.consume()
			return true
		})
		p.commit(cp, KindNullableType)
	}
	if p.at(lexer.TokenDot) && p.raw(1).Kind == lexer.TokenLParen && p.lookahead(func() bool {
		p.consume()
		return p.call(RuleFunctionType)
	}) {
		p.commit(cp, KindFunctionTypeReceiver)
		p.consume()
		if !p.functionTypeTail() {
			return false
		}
		p.commit(cp, KindFunctionType)
	}
	return true
}

// atNullableMark reports whether the raw token is a '?' that belongs to
// the type. A '?' glued to a following ':' is the elvis operator.
func (p *Parser) atNullableMark() bool {
	if p.raw(0).Kind != lexer.TokenQuestion {
		return false
	}
	if p.mode().join && p.raw(1).Kind == lexer.TokenColon && p.adjacent(p.pos) {
		return false
	}
	return true
}

func (p *Parser) typeAtom() bool {
	switch {
	case p.at(lexer.TokenLParen):
		return p.alt(
			p.r(RuleFunctionType),
			func() bool {
				p.consume()
				return p.inBrackets(p.r(RuleType)) && p.tok(lexer.TokenRParen)
			},
		)
	case p.atSoft("dynamic") && p.raw(1).Kind != lexer.TokenDot:
		p.leaf(KindDynamicType)
		return true
	case p.at(lexer.TokenIdent):
		return p.call(RuleUserType)
	}
	p.expected("type")
	return false
}

func parseFunctionType(p *Parser) bool {
	return p.functionTypeTail()
}

// functionTypeTail reads "(params) -> R".
func (p *Parser) functionTypeTail() bool {
	cp := p.open()
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	p.inBrackets(func() bool {
		return p.optional(func() bool {
			return p.sepByTrailing(lexer.TokenComma, p.functionTypeParameter)
		})
	})
	if !p.tok(lexer.TokenRParen) {
		return false
	}
	p.commit(cp, KindValueParameterList)
	return p.tok(lexer.TokenArrow) && p.call(RuleType)
}

// functionTypeParameter reads "name: Type" or a bare type.
func (p *Parser) functionTypeParameter() bool {
	cp := p.open()
	if p.at(lexer.TokenIdent) && p.raw(1).Kind == lexer.TokenColon {
		p.consume()
		p.consume()
	}
	if !p.call(RuleType) {
		return false
	}
	p.commit(cp, KindValueParameter)
	return true
}

// parseUserType reads a possibly qualified type name. Each qualifier
// nests the type before it, so "a.b.C" is UserType(UserType(UserType a) . b) . C.
func parseUserType(p *Parser) bool {
	cp := p.open()
	if !p.tok(lexer.TokenIdent) {
		return false
	}
	p.optional(p.r(RuleTypeArgumentList))
	p.commit(cp, KindUserType)
	for p.at(lexer.TokenDot) && !p.newlineBefore() && p.raw(1).Kind == lexer.TokenIdent {
		p.consume()
		p.consume()
		p.optional(p.r(RuleTypeArgumentList))
		p.commit(cp, KindUserType)
	}
	return true
}

func parseTypeArgumentList(p *Parser) bool {
	if !p.tok(lexer.TokenLT) {
		return false
	}
	ok := p.inBrackets(func() bool {
		return p.sepByTrailing(lexer.TokenComma, p.r(RuleTypeProjection))
	})
	return ok && p.tok(lexer.TokenGT)
}

func parseTypeProjection(p *Parser) bool {
	if p.at(lexer.TokenStar) {
		p.consume()
		return true
	}
	p.optional(p.r(RuleModifierList))
	return p.call(RuleType)
}
