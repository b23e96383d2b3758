package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

func parseBlock(p *Parser) bool {
	if !p.tok(lexer.TokenLBrace) {
		return false
	}
	p.inBlock(func() bool {
		p.sequence(RuleStatement, lexer.TokenRBrace)
		return true
	})
	return p.tok(lexer.TokenRBrace)
}

func parseStatement(p *Parser) bool {
	return p.alt(p.r(RuleDeclaration), p.r(RuleExpression))
}

// parseControlBody reads the body of if, when, for and while: a block
// when it starts with '{', otherwise a single statement.
func parseControlBody(p *Parser) bool {
	if p.at(lexer.TokenLBrace) {
		return p.call(RuleBlock)
	}
	return p.call(RuleStatement)
}

// condition reads "( expression )" with the expression wrapped in a
// Condition node.
func (p *Parser) condition() bool {
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	cp := p.open()
	if !p.inBrackets(p.r(RuleExpression)) {
		return false
	}
	p.commit(cp, KindCondition)
	return p.tok(lexer.TokenRParen)
}

// body reads a loop body. A lone ';' leaves the body empty.
func (p *Parser) body() bool {
	cp := p.open()
	if !p.at(lexer.TokenSemicolon) && !p.call(RuleControlBody) {
		return false
	}
	p.commit(cp, KindBody)
	return true
}

func parseIf(p *Parser) bool {
	if !p.tok(lexer.TokenIf) || !p.condition() {
		return false
	}
	if !p.at(lexer.TokenElse) {
		cp := p.open()
		if !p.call(RuleControlBody) {
			return false
		}
		p.commit(cp, KindThen)
	}

	step := p.open()
	if p.at(lexer.TokenSemicolon) {
		p.consume()
	}
	if !p.at(lexer.TokenElse) {
		p.rollback(step)
		return true
	}
	cp := p.open()
	p.consume()
	if !p.call(RuleControlBody) {
		return false
	}
	p.commit(cp, KindElse)
	return true
}

func parseWhen(p *Parser) bool {
	if !p.tok(lexer.TokenWhen) {
		return false
	}
	if p.at(lexer.TokenLParen) {
		p.consume()
		ok := p.inBrackets(func() bool {
			if p.at(lexer.TokenVal) {
				return p.call(RuleDeclaration)
			}
			return p.call(RuleExpression)
		})
		if !ok || !p.tok(lexer.TokenRParen) {
			return false
		}
	}
	if !p.tok(lexer.TokenLBrace) {
		return false
	}
	p.inBlock(func() bool {
		p.sequence(RuleWhenEntry, lexer.TokenRBrace)
		return true
	})
	return p.tok(lexer.TokenRBrace)
}

func parseWhenEntry(p *Parser) bool {
	if p.at(lexer.TokenElse) {
		p.consume()
	} else if !p.sepByTrailing(lexer.TokenComma, p.r(RuleWhenCondition)) {
		return false
	}
	return p.tok(lexer.TokenArrow) && p.call(RuleControlBody)
}

func parseWhenCondition(p *Parser) bool {
	cp := p.open()
	switch {
	case p.atAny(lexer.TokenIn, lexer.TokenNotIn):
		p.operation()
		if !p.call(RuleExpression) {
			return false
		}
		p.commit(cp, KindWhenConditionIn)
	case p.atAny(lexer.TokenIs, lexer.TokenNotIs):
		p.operation()
		if !p.call(RuleType) {
			return false
		}
		p.commit(cp, KindWhenConditionIs)
	default:
		if !p.call(RuleExpression) {
			return false
		}
		p.commit(cp, KindWhenConditionExpression)
	}
	return true
}

// parseTry needs at least one catch or a finally after the block.
func parseTry(p *Parser) bool {
	if !p.tok(lexer.TokenTry) || !p.call(RuleBlock) {
		return false
	}
	n := 0
	for p.atSoft("catch") {
		if !p.call(RuleCatch) {
			return false
		}
		n++
	}
	if p.atSoft("finally") {
		if !p.call(RuleFinally) {
			return false
		}
		n++
	}
	if n == 0 {
		p.expected("catch or finally")
		return false
	}
	return true
}

func parseCatch(p *Parser) bool {
	if !p.kw("catch") {
		return false
	}
	cp := p.open()
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	ok := p.inBrackets(func() bool {
		return p.call(RuleValueParameter) && (!p.at(lexer.TokenComma) || p.tok(lexer.TokenComma))
	})
	if !ok || !p.tok(lexer.TokenRParen) {
		return false
	}
	p.commit(cp, KindValueParameterList)
	return p.call(RuleBlock)
}

func parseFinally(p *Parser) bool {
	return p.kw("finally") && p.call(RuleBlock)
}

func parseFor(p *Parser) bool {
	if !p.tok(lexer.TokenFor) || !p.tok(lexer.TokenLParen) {
		return false
	}
	ok := p.inBrackets(func() bool {
		p.optional(p.r(RuleModifierList))
		if p.at(lexer.TokenLParen) {
			if !p.call(RuleDestructuring) {
				return false
			}
		} else if !p.call(RuleValueParameter) {
			return false
		}
		if !p.tok(lexer.TokenIn) {
			return false
		}
		cp := p.open()
		if !p.call(RuleExpression) {
			return false
		}
		p.commit(cp, KindLoopRange)
		return true
	})
	if !ok || !p.tok(lexer.TokenRParen) {
		return false
	}
	return p.body()
}

func parseWhile(p *Parser) bool {
	return p.tok(lexer.TokenWhile) && p.condition() && p.body()
}

func parseDoWhile(p *Parser) bool {
	if !p.tok(lexer.TokenDo) {
		return false
	}
	if !p.at(lexer.TokenWhile) {
		cp := p.open()
		if !p.call(RuleControlBody) {
			return false
		}
		p.commit(cp, KindBody)
	}
	return p.tok(lexer.TokenWhile) && p.condition()
}
