package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

func parseFile(p *Parser) bool {
	p.preamble()
	p.withShortAnnotations(true, func() bool {
		p.sequence(RuleDeclaration, lexer.TokenEOF)
		return true
	})
	return true
}

func parseScript(p *Parser) bool {
	p.preamble()
	p.sequence(RuleStatement, lexer.TokenEOF)
	return true
}

func (p *Parser) preamble() {
	p.optional(p.r(RuleFileAnnotations))
	p.skipSemis()
	p.optional(p.r(RulePackageDirective))
	p.skipSemis()
	p.optional(p.r(RuleImportList))
}

// sequence parses items separated by semicolons or line breaks until end.
// It stops quietly at the first item that does not parse, leaving the
// caller to report whatever follows.
func (p *Parser) sequence(item Rule, end lexer.TokenKind) {
	p.skipSemis()
	for !p.at(end) && !p.atEOF() {
		start := p.pos
		if !p.call(item) {
			return
		}
		if p.pos == start {
			p.trip("%s matched nothing at %s", item, p.peekToken().Span.Start)
			return
		}
		if !p.skipSemis() && !p.newlineBefore() && !p.at(end) {
			p.expected("newline or ';'")
			return
		}
	}
}

func (p *Parser) qualifiedName() bool {
	return p.sepBy(lexer.TokenDot, p.t(lexer.TokenIdent))
}

func parsePackageDirective(p *Parser) bool {
	return p.tok(lexer.TokenPackage) && p.qualifiedName()
}

func parseImportList(p *Parser) bool {
	return p.many(1, func() bool {
		ok := p.call(RuleImportDirective)
		p.skipSemis()
		return ok
	})
}

func parseImportDirective(p *Parser) bool {
	if !p.kw("import") || !p.qualifiedName() {
		return false
	}
	switch {
	case p.at(lexer.TokenDot):
		p.consume()
		return p.tok(lexer.TokenStar)
	case p.at(lexer.TokenAs):
		p.consume()
		return p.tok(lexer.TokenIdent)
	}
	return true
}

// parseFileAnnotations reads "@file:Ann" and "@file:[A B]" entries.
func parseFileAnnotations(p *Parser) bool {
	return p.many(1, func() bool {
		cp := p.open()
		if !p.tok(lexer.TokenAt) || !p.kw("file") || !p.tok(lexer.TokenColon) {
			return false
		}
		if p.at(lexer.TokenLBracket) {
			if !p.annotationBracket() {
				return false
			}
			p.commit(cp, KindAnnotation)
			return true
		}
		if !p.annotationEntryBody() {
			return false
		}
		p.commit(cp, KindAnnotationEntry)
		return true
	})
}

// atModifier reports whether the current token is a modifier keyword
// used as one. A modifier must be followed by something that can carry
// it, so "open" in "val open: Int" or "f(open)" stays a name.
func (p *Parser) atModifier() bool {
	tok := p.peekToken()
	if !(tok.Kind == lexer.TokenIdent && lexer.Modifiers[tok.Literal]) && tok.Kind != lexer.TokenIn {
		return false
	}
	next := p.raw(1)
	switch next.Kind {
	case lexer.TokenIdent, lexer.TokenAt,
		lexer.TokenClass, lexer.TokenInterface, lexer.TokenFun, lexer.TokenVal,
		lexer.TokenVar, lexer.TokenObject, lexer.TokenTypealias:
		return true
	case lexer.TokenEOF:
		// The name that follows is hidden behind a stop marker.
		return p.pos+1 < len(p.tokens)-1
	}
	return false
}

func parseModifierList(p *Parser) bool {
	return p.many(1, func() bool {
		if p.atModifier() {
			p.consume()
			return true
		}
		return p.call(RuleAnnotation)
	})
}

// parseAnnotation reads "@Entry", "@[A B]", or, where short annotations
// are allowed, a bare "Entry".
func parseAnnotation(p *Parser) bool {
	cp := p.open()
	if !p.at(lexer.TokenAt) {
		if !p.mode().shortAnnotations || !p.at(lexer.TokenIdent) || lexer.SoftKeywords[p.peekToken().Literal] {
			return false
		}
		// A short annotation shares the line with what it annotates, so
		// "f(x)" followed by a declaration on the next line stays a call.
		if !p.annotationEntryBody() || p.newlineBefore() {
			return false
		}
		p.commit(cp, KindAnnotationEntry)
		return true
	}
	p.consume()
	if p.at(lexer.TokenLBracket) {
		if !p.annotationBracket() {
			return false
		}
		p.commit(cp, KindAnnotation)
		return true
	}
	if !p.annotationEntryBody() {
		return false
	}
	p.commit(cp, KindAnnotationEntry)
	return true
}

func (p *Parser) annotationBracket() bool {
	if !p.tok(lexer.TokenLBracket) {
		return false
	}
	ok := p.inBrackets(func() bool {
		return p.many(1, func() bool {
			cp := p.open()
			if !p.annotationEntryBody() {
				return false
			}
			p.commit(cp, KindAnnotationEntry)
			return true
		})
	})
	return ok && p.tok(lexer.TokenRBracket)
}

// annotationEntryBody reads the part after '@': an optional use-site
// target such as "get:", the annotation type and its arguments.
func (p *Parser) annotationEntryBody() bool {
	if p.at(lexer.TokenIdent) && p.raw(1).Kind == lexer.TokenColon && p.adjacent(p.pos) {
		p.consume()
		p.consume()
	}
	cp := p.open()
	if !p.call(RuleUserType) {
		return false
	}
	p.commit(cp, KindTypeReference)
	if p.at(lexer.TokenLParen) && !p.interrupted() {
		return p.call(RuleValueArgumentList)
	}
	return true
}

// parseDeclaration reads a modifier list and decides the declaration kind
// from the keyword after it. A modifier list with no declaration after it
// is rolled back. Short annotations are read only where the caller turned
// them on, at file and class member level. Local declarations need "@".
func parseDeclaration(p *Parser) bool {
	cp := p.open()
	p.optional(p.r(RuleModifierList))

	var kind NodeKind
	ok := p.withShortAnnotations(false, func() bool {
		var ok bool
		kind, ok = p.declarationRest(cp)
		return ok
	})
	if !ok {
		return false
	}
	p.commit(cp, kind)
	return true
}

func (p *Parser) declarationRest(cp checkpoint) (kind NodeKind, ok bool) {
	switch {
	case p.atAny(lexer.TokenClass, lexer.TokenInterface):
		kind, ok = KindClass, p.classRest(p.hasModifier(cp, "enum"))
	case p.at(lexer.TokenObject):
		kind, ok = KindObjectDeclaration, p.objectRest(p.hasModifier(cp, "companion"))
	case p.at(lexer.TokenFun):
		kind, ok = KindFunction, p.functionRest()
	case p.atAny(lexer.TokenVal, lexer.TokenVar):
		kind, ok = p.propertyRest()
	case p.at(lexer.TokenTypealias):
		kind, ok = KindTypeAlias, p.typeAliasRest()
	case p.atSoft("constructor"):
		kind, ok = KindSecondaryConstructor, p.secondaryConstructorRest()
	default:
		p.expected("declaration")
	}
	return kind, ok
}

// hasModifier reports whether the modifier list that starts at cp
// contains the given keyword.
func (p *Parser) hasModifier(cp checkpoint, text string) bool {
	if len(p.elems) <= cp.mark || p.elems[cp.mark].Kind != KindModifierList {
		return false
	}
	for _, child := range p.elems[cp.mark].Children {
		if child.IsToken() && child.Token.Literal == text {
			return true
		}
	}
	return false
}

func (p *Parser) classRest(enum bool) bool {
	p.consume()
	if !p.tok(lexer.TokenIdent) {
		return false
	}
	p.optional(p.r(RuleTypeParameterList))
	p.optional(p.r(RulePrimaryConstructor))
	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.withLambdas(false, p.r(RuleSuperTypeList)) {
			return false
		}
	}
	p.optional(p.r(RuleTypeConstraintList))
	if p.at(lexer.TokenLBrace) {
		body := RuleClassBody
		if enum {
			body = RuleEnumClassBody
		}
		return p.call(body)
	}
	return true
}

func (p *Parser) objectRest(companion bool) bool {
	p.consume()
	if !p.tok(lexer.TokenIdent) && !companion {
		return false
	}
	p.optional(p.r(RuleTypeParameterList))
	p.optional(p.r(RulePrimaryConstructor))
	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.withLambdas(false, p.r(RuleSuperTypeList)) {
			return false
		}
	}
	if p.at(lexer.TokenLBrace) {
		return p.call(RuleClassBody)
	}
	return true
}

func (p *Parser) functionRest() bool {
	p.consume()
	p.optional(p.r(RuleTypeParameterList))
	p.optional(p.receiverType)
	if p.at(lexer.TokenIdent) {
		p.consume()
	}
	p.optional(p.r(RuleTypeParameterList))
	if !p.call(RuleValueParameterList) {
		return false
	}
	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.call(RuleType) {
			return false
		}
	}
	p.optional(p.r(RuleTypeConstraintList))
	return p.functionBody()
}

// functionBody reads an optional block or "= expression" body.
func (p *Parser) functionBody() bool {
	switch {
	case p.at(lexer.TokenLBrace):
		return p.call(RuleBlock)
	case p.at(lexer.TokenAssign):
		p.consume()
		return p.call(RuleExpression)
	}
	return true
}

// receiverDot finds the last top-level '.' in front of a declaration
// name, or -1 when the declaration has no receiver type. The scan ends at
// the first token that cannot be part of a receiver type, at the
// parameter list of a function, or where two names follow one another
// as in "val x by lazy".
func (p *Parser) receiverDot() int {
	last := -1
	depth := 0
	limit := p.limit()
	for i := p.pos; i < limit; i++ {
		tok := p.tokens[i]
		switch tok.Kind {
		case lexer.TokenLParen:
			if depth == 0 && i > p.pos && p.tokens[i-1].Kind == lexer.TokenIdent {
				return last
			}
			depth++
		case lexer.TokenLT:
			depth++
		case lexer.TokenGT, lexer.TokenRParen:
			if depth == 0 {
				return last
			}
			depth--
		case lexer.TokenDot:
			if depth == 0 {
				last = i
			}
		case lexer.TokenIdent:
			if depth == 0 && i+1 < limit && p.tokens[i+1].Kind == lexer.TokenIdent {
				return last
			}
		case lexer.TokenQuestion, lexer.TokenArrow, lexer.TokenAt:
		case lexer.TokenComma, lexer.TokenStar, lexer.TokenColon, lexer.TokenIn:
			if depth == 0 {
				return last
			}
		default:
			return last
		}
	}
	return last
}

// receiverType reads "Type." in front of a function or property name.
// The type is parsed with the '.' as end of stream and with complex
// tokens split, so "String?.foo" gives a nullable receiver.
func (p *Parser) receiverType() bool {
	dot := p.receiverDot()
	if dot < 0 {
		return false
	}
	ok := p.withJoin(false, func() bool {
		return p.withStop(dot, func() bool {
			return p.call(RuleType) && p.pos == dot
		})
	})
	return ok && p.tok(lexer.TokenDot)
}

func (p *Parser) propertyRest() (NodeKind, bool) {
	p.consume()
	p.optional(p.r(RuleTypeParameterList))

	kind := KindProperty
	if p.at(lexer.TokenLParen) {
		if !p.destructuring() {
			return kind, false
		}
		kind = KindMultiVariableDeclaration
	} else {
		p.optional(p.receiverType)
		if !p.tok(lexer.TokenIdent) {
			return kind, false
		}
	}

	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.call(RuleType) {
			return kind, false
		}
	}
	p.optional(p.r(RuleTypeConstraintList))

	switch {
	case p.atSoft("by") && kind == KindProperty:
		cp := p.open()
		p.consume()
		if !p.call(RuleExpression) {
			return kind, false
		}
		p.commit(cp, KindPropertyDelegate)
	case p.at(lexer.TokenAssign):
		p.consume()
		if !p.call(RuleExpression) {
			return kind, false
		}
	}
	if kind == KindProperty {
		p.accessors()
	}
	return kind, true
}

// accessors reads up to one getter and one setter, in either order.
func (p *Parser) accessors() {
	seen := ""
	for i := 0; i < 2; i++ {
		cp := p.open()
		p.skipSemis()
		if !p.call(RulePropertyAccessor) {
			p.rollback(cp)
			return
		}
		name := accessorName(p.last())
		if name == seen {
			p.rollback(cp)
			return
		}
		seen = name
	}
}

func accessorName(n *Node) string {
	for _, child := range n.Children {
		if child.Kind == KindToken && (child.Token.Literal == "get" || child.Token.Literal == "set") {
			return child.Token.Literal
		}
	}
	return ""
}

func parsePropertyAccessor(p *Parser) bool {
	mods := p.call(RuleModifierList)
	getter := p.atSoft("get")
	if !getter && !p.atSoft("set") {
		return false
	}
	p.consume()
	if !p.at(lexer.TokenLParen) || p.interrupted() {
		// A bare accessor only changes visibility or annotations.
		return mods || p.newlineBefore() || p.atAny(lexer.TokenSemicolon, lexer.TokenRBrace)
	}

	p.consume()
	if !getter {
		ok := p.inBrackets(func() bool {
			if p.at(lexer.TokenRParen) {
				return true
			}
			return p.call(RuleValueParameter)
		})
		if !ok {
			return false
		}
	}
	if !p.tok(lexer.TokenRParen) {
		return false
	}
	if p.at(lexer.TokenColon) {
		p.consume()
		if !p.call(RuleType) {
			return false
		}
	}
	if !p.atAny(lexer.TokenLBrace, lexer.TokenAssign) {
		p.expected("accessor body")
		return false
	}
	return p.functionBody()
}

func parseDestructuring(p *Parser) bool {
	return p.destructuring()
}

// destructuring reads "(a, b: T)". A destructuring property holds the
// entries itself; parameters and loop variables get a wrapping node from
// the rule.
func (p *Parser) destructuring() bool {
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	ok := p.inBrackets(func() bool {
		return p.sepByTrailing(lexer.TokenComma, func() bool {
			cp := p.open()
			p.optional(p.r(RuleModifierList))
			if !p.tok(lexer.TokenIdent) {
				return false
			}
			if p.at(lexer.TokenColon) {
				p.consume()
				if !p.call(RuleType) {
					return false
				}
			}
			p.commit(cp, KindDestructuringEntry)
			return true
		})
	})
	return ok && p.tok(lexer.TokenRParen)
}

func (p *Parser) typeAliasRest() bool {
	p.consume()
	if !p.tok(lexer.TokenIdent) {
		return false
	}
	p.optional(p.r(RuleTypeParameterList))
	return p.tok(lexer.TokenAssign) && p.call(RuleType)
}

func (p *Parser) secondaryConstructorRest() bool {
	p.consume()
	if !p.call(RuleValueParameterList) {
		return false
	}
	if p.at(lexer.TokenColon) {
		p.consume()
		cp := p.open()
		if !p.atAny(lexer.TokenThis, lexer.TokenSuper) {
			p.expected("this or super")
			return false
		}
		p.consume()
		if !p.call(RuleValueArgumentList) {
			return false
		}
		p.commit(cp, KindConstructorDelegationCall)
	}
	if p.at(lexer.TokenLBrace) {
		return p.call(RuleBlock)
	}
	return true
}

func parsePrimaryConstructor(p *Parser) bool {
	if p.call(RuleModifierList) {
		if !p.kw("constructor") {
			return false
		}
	} else if p.atSoft("constructor") {
		p.consume()
	}
	return p.call(RuleValueParameterList)
}

func parseSuperTypeList(p *Parser) bool {
	return p.sepBy(lexer.TokenComma, p.r(RuleSuperTypeEntry))
}

func parseSuperTypeEntry(p *Parser) bool {
	cp := p.open()
	if !p.call(RuleType) {
		return false
	}
	kind := KindSuperTypeEntry
	switch {
	case p.at(lexer.TokenLParen) && !p.interrupted():
		if !p.call(RuleValueArgumentList) {
			return false
		}
		kind = KindSuperTypeCallEntry
	case p.atSoft("by"):
		p.consume()
		if !p.call(RuleExpression) {
			return false
		}
		kind = KindDelegatedSuperTypeEntry
	}
	p.commit(cp, kind)
	return true
}

func parseClassBody(p *Parser) bool {
	if !p.tok(lexer.TokenLBrace) {
		return false
	}
	p.inBlock(func() bool {
		p.sequence(RuleClassMember, lexer.TokenRBrace)
		return true
	})
	return p.tok(lexer.TokenRBrace)
}

func parseEnumClassBody(p *Parser) bool {
	if !p.tok(lexer.TokenLBrace) {
		return false
	}
	p.inBlock(func() bool {
		p.optional(func() bool {
			return p.sepByTrailing(lexer.TokenComma, p.r(RuleEnumEntry))
		})
		p.sequence(RuleClassMember, lexer.TokenRBrace)
		return true
	})
	return p.tok(lexer.TokenRBrace)
}

func parseEnumEntry(p *Parser) bool {
	p.optional(p.r(RuleModifierList))
	if !p.tok(lexer.TokenIdent) {
		return false
	}
	if p.at(lexer.TokenLParen) && !p.interrupted() {
		if !p.call(RuleValueArgumentList) {
			return false
		}
	}
	if p.at(lexer.TokenLBrace) {
		return p.call(RuleClassBody)
	}
	return true
}

func parseClassMember(p *Parser) bool {
	if p.atSoft("init") && p.raw(1).Kind == lexer.TokenLBrace {
		return p.call(RuleAnonymousInitializer)
	}
	return p.withShortAnnotations(true, p.r(RuleDeclaration))
}

func parseAnonymousInitializer(p *Parser) bool {
	return p.kw("init") && p.call(RuleBlock)
}

func parseValueParameterList(p *Parser) bool {
	if !p.tok(lexer.TokenLParen) {
		return false
	}
	p.inBrackets(func() bool {
		return p.optional(func() bool {
			return p.sepByTrailing(lexer.TokenComma, p.r(RuleValueParameter))
		})
	})
	return p.tok(lexer.TokenRParen)
}

// parseValueParameter reads "modifiers val name: Type = default". The
// type is optional so that the same rule serves lambdas and setters.
func parseValueParameter(p *Parser) bool {
	p.optional(p.r(RuleModifierList))
	if p.atAny(lexer.TokenVal, lexer.TokenVar) {
		p.consume()
	}
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
			return false
		}
	}
	if p.at(lexer.TokenAssign) {
		p.consume()
		return p.call(RuleExpression)
	}
	return true
}

func parseTypeParameterList(p *Parser) bool {
	if !p.tok(lexer.TokenLT) {
		return false
	}
	ok := p.inBrackets(func() bool {
		return p.sepByTrailing(lexer.TokenComma, p.r(RuleTypeParameter))
	})
	return ok && p.tok(lexer.TokenGT)
}

// typeParameterName returns the index of the last top-level identifier
// before the end of the current type parameter: that identifier is the
// name and everything before it is modifiers.
func (p *Parser) typeParameterName() int {
	last := -1
	depth := 0
	for i := p.pos; i < p.limit(); i++ {
		switch p.tokens[i].Kind {
		case lexer.TokenLT, lexer.TokenLParen, lexer.TokenLBracket:
			depth++
		case lexer.TokenGT, lexer.TokenRParen, lexer.TokenRBracket:
			if depth == 0 {
				return last
			}
			depth--
		case lexer.TokenComma, lexer.TokenColon:
			if depth == 0 {
				return last
			}
		case lexer.TokenIdent:
			if depth == 0 {
				last = i
			}
		case lexer.TokenLBrace, lexer.TokenRBrace, lexer.TokenSemicolon:
			return last
		}
	}
	return last
}

func parseTypeParameter(p *Parser) bool {
	name := p.typeParameterName()
	if name < 0 {
		return false
	}
	if name > p.pos {
		ok := p.withStop(name, func() bool {
			return p.call(RuleModifierList) && p.pos == name
		})
		if !ok {
			return false
		}
	}
	if !p.tok(lexer.TokenIdent) {
		return false
	}
	if p.at(lexer.TokenColon) {
		p.consume()
		return p.call(RuleType)
	}
	return true
}

func parseTypeConstraintList(p *Parser) bool {
	return p.kw("where") && p.sepBy(lexer.TokenComma, p.r(RuleTypeConstraint))
}

func parseTypeConstraint(p *Parser) bool {
	p.optional(p.r(RuleModifierList))
	return p.tok(lexer.TokenIdent) && p.tok(lexer.TokenColon) && p.call(RuleType)
}
