package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

const (
	tokOrOr   = lexer.TokenOrOr
	tokAndAnd = lexer.TokenAndAnd
	tokElvis  = lexer.TokenElvis
	tokRange  = lexer.TokenRange
)

var (
	assignmentOps = []lexer.TokenKind{
		lexer.TokenAssign, lexer.TokenPlusAssign, lexer.TokenMinusAssign,
		lexer.TokenStarAssign, lexer.TokenSlashAssign, lexer.TokenPercentAssign,
	}
	equalityOps       = []lexer.TokenKind{lexer.TokenEQ, lexer.TokenNE, lexer.TokenEQEQEQ, lexer.TokenNEEQEQ}
	comparisonOps     = []lexer.TokenKind{lexer.TokenLT, lexer.TokenGT, lexer.TokenLE, lexer.TokenGE}
	additiveOps       = []lexer.TokenKind{lexer.TokenPlus, lexer.TokenMinus}
	multiplicativeOps = []lexer.TokenKind{lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent}
	typeRHSOps        = []lexer.TokenKind{lexer.TokenAs, lexer.TokenAsSafe, lexer.TokenColon}
	prefixOps         = []lexer.TokenKind{lexer.TokenMinus, lexer.TokenPlus, lexer.TokenPlusPlus, lexer.TokenMinusMinus, lexer.TokenExcl}
	postfixOps        = []lexer.TokenKind{lexer.TokenPlusPlus, lexer.TokenMinusMinus, lexer.TokenExclExcl}
)

// binaryLevel builds a left-associative level: operand (op operand)*.
// An operator whose right operand fails to parse is given back, so the
// level ends just before it.
func binaryLevel(operand Rule, ops ...lexer.TokenKind) func(*Parser) bool {
	return func(p *Parser) bool {
		cp := p.open()
		if !p.call(operand) {
			return false
		}
		for !p.interrupted() && p.atAny(ops...) {
			step := p.open()
			p.operation()
			if !p.call(operand) {
				p.rollback(step)
				break
			}
			p.commit(cp, KindBinaryExpression)
		}
		return true
	}
}

// Assignment is right-associative: a = b = c is a = (b = c).
func parseAssignment(p *Parser) bool {
	cp := p.open()
	if !p.call(RuleDisjunction) {
		return false
	}
	if !p.interrupted() && p.atAny(assignmentOps...) {
		step := p.open()
		p.operation()
		if p.call(RuleExpression) {
			p.commit(cp, KindBinaryExpression)
		} else {
			p.rollback(step)
		}
	}
	return true
}

// parseNamedInfix handles in, !in, is and !is. Only the first operator
// of a chain may be a type test.
func parseNamedInfix(p *Parser) bool {
	cp := p.open()
	if !p.call(RuleElvis) {
		return false
	}
	first := true
	for !p.interrupted() {
		step := p.open()
		switch {
		case first && p.atAny(lexer.TokenIs, lexer.TokenNotIs):
			p.operation()
			if !p.call(RuleType) {
				p.rollback(step)
				return true
			}
			p.commit(cp, KindIsExpression)
		case p.atAny(lexer.TokenIn, lexer.TokenNotIn):
			p.operation()
			if !p.call(RuleElvis) {
				p.rollback(step)
				return true
			}
			p.commit(cp, KindBinaryExpression)
		default:
			return true
		}
		first = false
	}
	return true
}

// parseTypeRHS handles as, as? and ':' followed by a type. It binds
// tighter than multiplication and looser than prefix operators.
func parseTypeRHS(p *Parser) bool {
	cp := p.open()
	if !p.call(RulePrefix) {
		return false
	}
	for !p.interrupted() && p.atAny(typeRHSOps...) {
		step := p.open()
		p.operation()
		if !p.call(RuleType) {
			p.rollback(step)
			break
		}
		p.commit(cp, KindBinaryWithType)
	}
	return true
}

func parsePrefix(p *Parser) bool {
	cp := p.open()

	// "!!x" is two negations, so complex tokens stay split while the
	// operator is read.
	isOp := false
	p.withJoin(false, func() bool {
		if p.atAny(prefixOps...) {
			p.operation()
			isOp = true
		}
		return true
	})
	if isOp {
		if !p.call(RulePrefix) {
			return false
		}
		p.commit(cp, KindPrefixExpression)
		return true
	}

	if p.at(lexer.TokenAt) {
		if !p.many(1, p.r(RuleAnnotation)) || !p.call(RulePrefix) {
			return false
		}
		p.commit(cp, KindAnnotatedExpression)
		return true
	}

	if p.atLabelDefinition() {
		p.labelDefinition()
		if !p.call(RulePrefix) {
			return false
		}
		p.commit(cp, KindLabeledExpression)
		return true
	}

	return p.call(RulePostfix)
}

func parsePostfix(p *Parser) bool {
	cp := p.open()
	if !p.call(RuleAtomic) {
		return false
	}
	for !p.interrupted() {
		switch {
		case p.atAny(lexer.TokenDot, lexer.TokenSafeAccess):
			kind := KindDotQualified
			if p.at(lexer.TokenSafeAccess) {
				kind = KindSafeAccess
			}
			step := p.open()
			p.consume()
			if !p.selector() {
				p.rollback(step)
				return true
			}
			p.commit(cp, kind)

		case p.atAny(postfixOps...):
			p.operation()
			p.commit(cp, KindPostfixExpression)

		case p.at(lexer.TokenColonColon):
			if !p.callableReference() {
				return true
			}
			p.commit(cp, KindCallableReference)

		case p.at(lexer.TokenLBracket):
			if !p.call(RuleIndices) {
				return true
			}
			p.commit(cp, KindArrayAccess)

		case p.atAny(lexer.TokenLParen, lexer.TokenLT) || p.atTrailingLambda():
			if !p.call(RuleCallSuffix) {
				return true
			}
			p.commit(cp, KindCallExpression)

		default:
			return true
		}
	}
	return true
}

// selector is the member named after '.' or '?.', with its own call
// suffix if one follows.
func (p *Parser) selector() bool {
	cp := p.open()
	if !p.at(lexer.TokenIdent) {
		p.expected("member name")
		return false
	}
	p.consume()
	p.commit(cp, KindReference)
	if p.atAny(lexer.TokenLParen, lexer.TokenLT) || p.atTrailingLambda() {
		if p.call(RuleCallSuffix) {
			p.commit(cp, KindCallExpression)
		}
	}
	return true
}

func (p *Parser) callableReference() bool {
	cp := p.open()
	p.consume()
	ref := p.open()
	switch {
	case p.at(lexer.TokenIdent):
		p.consume()
		p.commit(ref, KindReference)
	case p.at(lexer.TokenClass):
		p.consume()
	default:
		p.expected("member name")
		p.rollback(cp)
		return false
	}
	return true
}

// parseCallSuffix reads type arguments, value arguments and trailing
// lambdas. At least one of the latter two must be present.
func parseCallSuffix(p *Parser) bool {
	if p.at(lexer.TokenLT) && !p.interrupted() {
		if !p.callTypeArguments() {
			return false
		}
	}
	args := false
	if p.at(lexer.TokenLParen) && !p.interrupted() {
		if !p.call(RuleValueArgumentList) {
			return false
		}
		args = true
	}
	lambdas := p.many(1, p.trailingLambda)
	return args || lambdas
}

// Tokens that cannot occur inside a type argument list. Meeting one while
// scanning for the closing '>' means the '<' is a comparison.
var typeArgumentStoppers = map[lexer.TokenKind]bool{
	lexer.TokenIntLiteral:    true,
	lexer.TokenFloatLiteral:  true,
	lexer.TokenCharLiteral:   true,
	lexer.TokenOpenQuote:     true,
	lexer.TokenPackage:       true,
	lexer.TokenAs:            true,
	lexer.TokenTypealias:     true,
	lexer.TokenInterface:     true,
	lexer.TokenClass:         true,
	lexer.TokenThis:          true,
	lexer.TokenVal:           true,
	lexer.TokenVar:           true,
	lexer.TokenFun:           true,
	lexer.TokenFor:           true,
	lexer.TokenNull:          true,
	lexer.TokenTrue:          true,
	lexer.TokenFalse:         true,
	lexer.TokenIs:            true,
	lexer.TokenThrow:         true,
	lexer.TokenReturn:        true,
	lexer.TokenBreak:         true,
	lexer.TokenContinue:      true,
	lexer.TokenObject:        true,
	lexer.TokenIf:            true,
	lexer.TokenTry:           true,
	lexer.TokenElse:          true,
	lexer.TokenWhile:         true,
	lexer.TokenDo:            true,
	lexer.TokenWhen:          true,
	lexer.TokenRBracket:      true,
	lexer.TokenPlusPlus:      true,
	lexer.TokenMinusMinus:    true,
	lexer.TokenPlus:          true,
	lexer.TokenMinus:         true,
	lexer.TokenExcl:          true,
	lexer.TokenSlash:         true,
	lexer.TokenPercent:       true,
	lexer.TokenLE:            true,
	lexer.TokenEQEQEQ:        true,
	lexer.TokenNEEQEQ:        true,
	lexer.TokenEQ:            true,
	lexer.TokenNE:            true,
	lexer.TokenAndAnd:        true,
	lexer.TokenOrOr:          true,
	lexer.TokenRange:         true,
	lexer.TokenAssign:        true,
	lexer.TokenStarAssign:    true,
	lexer.TokenSlashAssign:   true,
	lexer.TokenPercentAssign: true,
	lexer.TokenPlusAssign:    true,
	lexer.TokenMinusAssign:   true,
	lexer.TokenNotIn:         true,
	lexer.TokenNotIs:         true,
	lexer.TokenColon:         true,
}

// matchingGT returns the index of the '>' closing the '<' at the cursor,
// or -1 if the tokens in between cannot be type arguments.
func (p *Parser) matchingGT() int {
	depth, parens := 0, 0
	for i := p.pos; i < p.limit(); i++ {
		kind := p.tokens[i].Kind
		switch {
		case kind == lexer.TokenLParen:
			parens++
		case kind == lexer.TokenRParen:
			if parens == 0 {
				return -1
			}
			parens--
		case kind == lexer.TokenLBrace, kind == lexer.TokenRBrace, kind == lexer.TokenSemicolon:
			return -1
		case parens > 0:
		case kind == lexer.TokenLT:
			depth++
		case kind == lexer.TokenGT:
			depth--
			if depth == 0 {
				return i
			}
		case typeArgumentStoppers[kind]:
			return -1
		}
	}
	return -1
}

// callTypeArguments speculatively reads "<...>" after a callee. The
// closing '>' found by scanning is made the end of the stream while the
// arguments are parsed, and the list is kept only if it ends exactly
// there and a call follows it.
func (p *Parser) callTypeArguments() bool {
	gt := p.matchingGT()
	if gt < 0 {
		return false
	}
	cp := p.open()
	p.consume()
	ok := p.inBrackets(func() bool {
		return p.withStop(gt, func() bool {
			return p.sepByTrailing(lexer.TokenComma, p.r(RuleTypeProjection)) && p.pos == gt
		})
	})
	if !ok || !p.tok(lexer.TokenGT) {
		p.rollback(cp)
		return false
	}
	p.commit(cp, KindTypeArgumentList)
	if (p.at(lexer.TokenLParen) && !p.interrupted()) || p.atTrailingLambda() {
		return true
	}
	p.rollback(cp)
	return false
}

func (p *Parser) atTrailingLambda() bool {
	if !p.mode().lambdas || p.interrupted() {
		return false
	}
	if p.at(lexer.TokenLBrace) {
		return true
	}
	return p.atLabelDefinition() && p.raw(2).Kind == lexer.TokenLBrace
}

func (p *Parser) trailingLambda() bool {
	if !p.atTrailingLambda() {
		return false
	}
	cp := p.open()
	if p.atLabelDefinition() {
		p.labelDefinition()
		if !p.call(RuleLambda) {
			p.rollback(cp)
			return false
		}
		p.commit(cp, KindLabeledExpression)
	} else if !p.call(RuleLambda) {
		return false
	}
	p.commit(cp, KindLambdaArgument)
	return true
}

func parseValueArgumentList(p *Parser) bool {
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	p.inBrackets(func() bool {
		return p.optional(func() bool {
			return p.sepByTrailing(lexer.TokenComma, p.r(RuleValueArgument))
		})
	})
	return p.tok(lexer.TokenRParen)
}

func parseValueArgument(p *Parser) bool {
	if p.at(lexer.TokenIdent) && p.raw(1).Kind == lexer.TokenAssign {
		cp := p.open()
		p.consume()
		p.commit(cp, KindValueArgumentName)
		p.consume()
	}
	if p.at(lexer.TokenStar) {
		p.consume()
	}
	return p.call(RuleExpression)
}

func parseIndices(p *Parser) bool {
	if !p.tok(lexer.TokenLBracket) {
		return false
	}
	ok := p.inBrackets(func() bool {
		return p.sepBy(lexer.TokenComma, p.r(RuleExpression))
	})
	return ok && p.tok(lexer.TokenRBracket)
}

func parseParenthesized(p *Parser) bool {
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	return p.inBrackets(p.r(RuleExpression)) && p.tok(lexer.TokenRParen)
}

var literalKinds = map[lexer.TokenKind]NodeKind{
	lexer.TokenIntLiteral:   KindIntegerConstant,
	lexer.TokenFloatLiteral: KindFloatConstant,
	lexer.TokenCharLiteral:  KindCharacterConstant,
	lexer.TokenTrue:         KindBooleanConstant,
	lexer.TokenFalse:        KindBooleanConstant,
	lexer.TokenNull:         KindNull,
	lexer.TokenIdent:        KindReference,
}

func parseAtomic(p *Parser) bool {
	kind := p.peekKind()
	if nk, ok := literalKinds[kind]; ok {
		p.leaf(nk)
		return true
	}
	switch kind {
	case lexer.TokenLParen:
		return p.call(RuleParenthesized)
	case lexer.TokenOpenQuote:
		return p.call(RuleStringTemplate)
	case lexer.TokenThis:
		return p.thisExpression()
	case lexer.TokenSuper:
		return p.superExpression()
	case lexer.TokenIf:
		return p.call(RuleIf)
	case lexer.TokenWhen:
		return p.call(RuleWhen)
	case lexer.TokenTry:
		return p.call(RuleTry)
	case lexer.TokenFor:
		return p.call(RuleFor)
	case lexer.TokenWhile:
		return p.call(RuleWhile)
	case lexer.TokenDo:
		return p.call(RuleDoWhile)
	case lexer.TokenReturn, lexer.TokenThrow, lexer.TokenBreak, lexer.TokenContinue:
		return p.call(RuleJump)
	case lexer.TokenObject:
		return p.call(RuleObjectLiteral)
	case lexer.TokenLBrace:
		return p.call(RuleLambda)
	case lexer.TokenFun:
		return p.call(RuleDeclaration)
	case lexer.TokenColonColon:
		cp := p.open()
		if !p.callableReference() {
			return false
		}
		p.commit(cp, KindCallableReference)
		return true
	}
	p.expected("expression")
	return false
}

// leaf consumes the current token wrapped in a node of the given kind.
func (p *Parser) leaf(kind NodeKind) {
	cp := p.open()
	p.consume()
	p.commit(cp, kind)
}

func (p *Parser) thisExpression() bool {
	cp := p.open()
	p.consume()
	p.labelReference()
	p.commit(cp, KindThis)
	return true
}

// super<Base>@label, where both suffixes are optional and the '<' must
// touch the keyword.
func (p *Parser) superExpression() bool {
	cp := p.open()
	p.consume()
	if p.at(lexer.TokenLT) && p.adjacent(p.pos-1) {
		p.consume()
		if !p.inBrackets(p.r(RuleType)) || !p.tok(lexer.TokenGT) {
			p.rollback(cp)
			return false
		}
	}
	p.labelReference()
	p.commit(cp, KindSuper)
	return true
}

// atLabelDefinition reports whether the cursor is at "name@" with the
// '@' touching the name.
func (p *Parser) atLabelDefinition() bool {
	return p.at(lexer.TokenIdent) && p.raw(1).Kind == lexer.TokenAt && p.adjacent(p.pos)
}

func (p *Parser) labelDefinition() {
	cp := p.open()
	p.consume()
	p.consume()
	p.commit(cp, KindLabel)
}

// labelReference reads "@name" directly after return, break, continue,
// this or super.
func (p *Parser) labelReference() bool {
	if !p.at(lexer.TokenAt) || !p.adjacent(p.pos-1) || !p.adjacent(p.pos) || p.raw(1).Kind != lexer.TokenIdent {
		return false
	}
	cp := p.open()
	p.consume()
	p.consume()
	p.commit(cp, KindLabel)
	return true
}

var jumpKinds = map[lexer.TokenKind]NodeKind{
	lexer.TokenReturn:   KindReturn,
	lexer.TokenThrow:    KindThrow,
	lexer.TokenBreak:    KindBreak,
	lexer.TokenContinue: KindContinue,
}

func parseJump(p *Parser) bool {
	cp := p.open()
	kind, ok := jumpKinds[p.peekKind()]
	if !ok {
		return false
	}
	p.consume()
	switch kind {
	case KindThrow:
		if !p.call(RuleExpression) {
			return false
		}
	case KindReturn:
		p.labelReference()
		if !p.newlineBefore() {
			p.optional(p.r(RuleExpression))
		}
	default:
		p.labelReference()
	}
	p.commit(cp, kind)
	return true
}

func parseObjectLiteral(p *Parser) bool {
	cp := p.open()
	if !p.tok(lexer.TokenObject) {
		return false
	}
	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.withLambdas(false, p.r(RuleSuperTypeList)) {
			return false
		}
	}
	if !p.call(RuleClassBody) {
		return false
	}
	p.commit(cp, KindObjectDeclaration)
	return true
}

// parseLambda reads the three lambda shapes: "{ -> body }",
// "{ params -> body }" with an optional receiver and return type, and
// "{ body }".
func parseLambda(p *Parser) bool {
	if !p.tok(lexer.TokenLBrace) {
		return false
	}
	p.inBlock(func() bool {
		p.optional(p.lambdaHeader)
		cp := p.open()
		p.sequence(RuleStatement, lexer.TokenRBrace)
		p.commit(cp, KindBlock)
		return true
	})
	return p.tok(lexer.TokenRBrace)
}

func (p *Parser) lambdaHeader() bool {
	return p.alt(
		p.t(lexer.TokenArrow),
		func() bool {
			p.optional(p.lambdaReceiver)
			if !p.at(lexer.TokenLParen) || !p.call(RuleValueParameterList) {
				return false
			}
			if p.at(lexer.TokenColon) {
				p.consume()
				if !p.call(RuleType) {
					return false
				}
			}
			return p.tok(lexer.TokenArrow)
		},
		func() bool {
			cp := p.open()
			if !p.sepBy(lexer.TokenComma, p.lambdaParameter) {
				return false
			}
			p.commit(cp, KindValueParameterList)
			return p.tok(lexer.TokenArrow)
		},
	)
}

// lambdaReceiver reads "Type." in front of a parenthesised parameter
// list. Joining is off so that "String?." stays a nullable type and a dot.
func (p *Parser) lambdaReceiver() bool {
	cp := p.open()
	ok := p.withJoin(false, func() bool {
		if !p.call(RuleUserType) {
			return false
		}
		for p.at(lexer.TokenQuestion) {
			p.consume()
			p.commit(cp, KindNullableType)
		}
		return true
	})
	if !ok || !p.at(lexer.TokenDot) || p.raw(1).Kind != lexer.TokenLParen {
		return false
	}
	p.commit(cp, KindTypeReference)
	return p.tok(lexer.TokenDot)
}

func (p *Parser) lambdaParameter() bool {
	cp := p.open()
	if p.at(lexer.TokenLParen) {
		if !p.call(RuleDestructuring) {
			return false
		}
	} else if !p.tok(lexer.TokenIdent) {
		return false
	}
	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.call(RuleType) {
			p.rollback(cp)
			return false
		}
	}
	p.commit(cp, KindValueParameter)
	return true
}

func parseStringTemplate(p *Parser) bool {
	if !p.tok(lexer.TokenOpenQuote) {
		return false
	}
	for {
		cp := p.open()
		switch p.peekKind() {
		case lexer.TokenClosingQuote:
			p.consume()
			return true
		case lexer.TokenRegularStringPart:
			p.consume()
			p.commit(cp, KindLiteralStringEntry)
		case lexer.TokenEscapeSequence:
			p.consume()
			p.commit(cp, KindEscapeStringEntry)
		case lexer.TokenShortTemplateEntryStart:
			p.consume()
			switch {
			case p.at(lexer.TokenIdent):
				p.leaf(KindReference)
			case p.at(lexer.TokenThis):
				p.leaf(KindThis)
			default:
				return false
			}
			p.commit(cp, KindShortStringEntry)
		case lexer.TokenLongTemplateEntryStart:
			p.consume()
			if !p.inBrackets(p.r(RuleExpression)) || !p.tok(lexer.TokenLongTemplateEntryEnd) {
				return false
			}
			p.commit(cp, KindLongStringEntry)
		default:
			p.expected(lexer.TokenClosingQuote.String())
			return false
		}
	}
}
