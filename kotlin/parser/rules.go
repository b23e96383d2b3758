package parser

import "strings"

// Rule names a grammar rule. Every rule is reachable through Parse and is
// dispatched through the same guarded call.
type Rule int

const (
	RuleFile Rule = iota
	RuleScript
	RulePackageDirective
	RuleImportList
	RuleImportDirective
	RuleFileAnnotations

	RuleDeclaration
	RuleModifierList
	RuleAnnotation
	RuleClassBody
	RuleEnumClassBody
	RuleEnumEntry
	RuleClassMember
	RuleAnonymousInitializer
	RulePrimaryConstructor
	RuleSuperTypeList
	RuleSuperTypeEntry
	RuleValueParameterList
	RuleValueParameter
	RuleTypeParameterList
	RuleTypeParameter
	RuleTypeConstraintList
	RuleTypeConstraint
	RulePropertyAccessor
	RuleDestructuring

	RuleType
	RuleTypeElement
	RuleUserType
	RuleFunctionType
	RuleTypeArgumentList
	RuleTypeProjection

	RuleBlock
	RuleStatement
	RuleControlBody

	RuleExpression
	RuleDisjunction
	RuleConjunction
	RuleEquality
	RuleComparison
	RuleNamedInfix
	RuleElvis
	RuleRange
	RuleAdditive
	RuleMultiplicative
	RuleTypeRHS
	RulePrefix
	RulePostfix
	RuleAtomic
	RuleCallSuffix
	RuleValueArgumentList
	RuleValueArgument
	RuleIndices
	RuleParenthesized
	RuleLambda
	RuleStringTemplate
	RuleIf
	RuleWhen
	RuleWhenEntry
	RuleWhenCondition
	RuleTry
	RuleCatch
	RuleFinally
	RuleFor
	RuleWhile
	RuleDoWhile
	RuleJump
	RuleObjectLiteral

	ruleCount
)

// ruleDef describes one rule. When kind is set the dispatcher wraps
// everything the rule produced in a node of that kind; otherwise the rule
// commits its own nodes, if any.
type ruleDef struct {
	name string
	kind NodeKind
	fn   func(*Parser) bool
}

// The table is filled in init because rule bodies refer back to it
// through call.
var rules [ruleCount]ruleDef

func init() {
	rules = [ruleCount]ruleDef{
		RuleFile:             {"file", KindFile, parseFile},
		RuleScript:           {"script", KindScript, parseScript},
		RulePackageDirective: {"packageDirective", KindPackageDirective, parsePackageDirective},
		RuleImportList:       {"importList", KindImportList, parseImportList},
		RuleImportDirective:  {"importDirective", KindImportDirective, parseImportDirective},
		RuleFileAnnotations:  {"fileAnnotations", KindFileAnnotationList, parseFileAnnotations},

		RuleDeclaration:          {"declaration", KindNone, parseDeclaration},
		RuleModifierList:         {"modifierList", KindModifierList, parseModifierList},
		RuleAnnotation:           {"annotation", KindNone, parseAnnotation},
		RuleClassBody:            {"classBody", KindClassBody, parseClassBody},
		RuleEnumClassBody:        {"enumClassBody", KindClassBody, parseEnumClassBody},
		RuleEnumEntry:            {"enumEntry", KindEnumEntry, parseEnumEntry},
		RuleClassMember:          {"classMember", KindNone, parseClassMember},
		RuleAnonymousInitializer: {"anonymousInitializer", KindAnonymousInitializer, parseAnonymousInitializer},
		RulePrimaryConstructor:   {"primaryConstructor", KindPrimaryConstructor, parsePrimaryConstructor},
		RuleSuperTypeList:        {"superTypeList", KindSuperTypeList, parseSuperTypeList},
		RuleSuperTypeEntry:       {"superTypeEntry", KindNone, parseSuperTypeEntry},
		RuleValueParameterList:   {"valueParameterList", KindValueParameterList, parseValueParameterList},
		RuleValueParameter:       {"valueParameter", KindValueParameter, parseValueParameter},
		RuleTypeParameterList:    {"typeParameterList", KindTypeParameterList, parseTypeParameterList},
		RuleTypeParameter:        {"typeParameter", KindTypeParameter, parseTypeParameter},
		RuleTypeConstraintList:   {"typeConstraintList", KindTypeConstraintList, parseTypeConstraintList},
		RuleTypeConstraint:       {"typeConstraint", KindTypeConstraint, parseTypeConstraint},
		RulePropertyAccessor:     {"propertyAccessor", KindPropertyAccessor, parsePropertyAccessor},
		RuleDestructuring:        {"destructuring", KindMultiVariableDeclaration, parseDestructuring},

		RuleType:             {"type", KindTypeReference, parseType},
		RuleTypeElement:      {"typeElement", KindNone, parseTypeElement},
		RuleUserType:         {"userType", KindNone, parseUserType},
		RuleFunctionType:     {"functionType", KindFunctionType, parseFunctionType},
		RuleTypeArgumentList: {"typeArgumentList", KindTypeArgumentList, parseTypeArgumentList},
		RuleTypeProjection:   {"typeProjection", KindTypeProjection, parseTypeProjection},

		RuleBlock:       {"block", KindBlock, parseBlock},
		RuleStatement:   {"statement", KindNone, parseStatement},
		RuleControlBody: {"controlBody", KindNone, parseControlBody},

		RuleExpression:     {"expression", KindNone, parseAssignment},
		RuleDisjunction:    {"disjunction", KindNone, binaryLevel(RuleConjunction, tokOrOr)},
		RuleConjunction:    {"conjunction", KindNone, binaryLevel(RuleEquality, tokAndAnd)},
		RuleEquality:       {"equality", KindNone, binaryLevel(RuleComparison, equalityOps...)},
		RuleComparison:     {"comparison", KindNone, binaryLevel(RuleNamedInfix, comparisonOps...)},
		RuleNamedInfix:     {"namedInfix", KindNone, parseNamedInfix},
		RuleElvis:          {"elvis", KindNone, binaryLevel(RuleRange, tokElvis)},
		RuleRange:          {"range", KindNone, binaryLevel(RuleAdditive, tokRange)},
		RuleAdditive:       {"additive", KindNone, binaryLevel(RuleMultiplicative, additiveOps...)},
		RuleMultiplicative: {"multiplicative", KindNone, binaryLevel(RuleTypeRHS, multiplicativeOps...)},
		RuleTypeRHS:        {"typeRHS", KindNone, parseTypeRHS},
		RulePrefix:         {"prefix", KindNone, parsePrefix},
		RulePostfix:        {"postfix", KindNone, parsePostfix},
		RuleAtomic:         {"atomic", KindNone, parseAtomic},

		RuleCallSuffix:        {"callSuffix", KindNone, parseCallSuffix},
		RuleValueArgumentList: {"valueArgumentList", KindValueArgumentList, parseValueArgumentList},
		RuleValueArgument:     {"valueArgument", KindValueArgument, parseValueArgument},
		RuleIndices:           {"indices", KindIndices, parseIndices},
		RuleParenthesized:     {"parenthesized", KindParenthesized, parseParenthesized},
		RuleLambda:            {"lambda", KindLambdaExpression, parseLambda},
		RuleStringTemplate:    {"stringTemplate", KindStringTemplate, parseStringTemplate},
		RuleIf:                {"if", KindIf, parseIf},
		RuleWhen:              {"when", KindWhen, parseWhen},
		RuleWhenEntry:         {"whenEntry", KindWhenEntry, parseWhenEntry},
		RuleWhenCondition:     {"whenCondition", KindNone, parseWhenCondition},
		RuleTry:               {"try", KindTry, parseTry},
		RuleCatch:             {"catch", KindCatch, parseCatch},
		RuleFinally:           {"finally", KindFinally, parseFinally},
		RuleFor:               {"for", KindFor, parseFor},
		RuleWhile:             {"while", KindWhile, parseWhile},
		RuleDoWhile:           {"doWhile", KindDoWhile, parseDoWhile},
		RuleJump:              {"jump", KindNone, parseJump},
		RuleObjectLiteral:     {"objectLiteral", KindObjectLiteral, parseObjectLiteral},
	}
}

func (r Rule) String() string {
	if r >= 0 && r < ruleCount && rules[r].name != "" {
		return rules[r].name
	}
	return "Unknown"
}

// Rules lists every rule in table order.
func Rules() []Rule {
	out := make([]Rule, 0, ruleCount)
	for r := Rule(0); r < ruleCount; r++ {
		out = append(out, r)
	}
	return out
}

// LookupRule finds a rule by name, ignoring case.
func LookupRule(name string) (Rule, bool) {
	for r := Rule(0); r < ruleCount; r++ {
		if strings.EqualFold(rules[r].name, name) {
			return r, true
		}
	}
	return 0, false
}

// call runs rule r. On failure the cursor and the builder are restored to
// where they were, so callers never clean up after a failed rule.
func (p *Parser) call(r Rule) bool {
	def := &rules[r]
	start := p.pos
	if !p.guard.enter(r, start) {
		p.trip("%s re-entered at %s without consuming input", def.name, p.peekToken().Span.Start)
		return false
	}
	defer p.guard.leave(r, start)
	if p.guard.depth > p.guard.maxDepth {
		p.trip("%s: nesting deeper than %d at %s", def.name, p.guard.maxDepth, p.peekToken().Span.Start)
		return false
	}

	cp := p.open()
	if !def.fn(p) {
		p.rollback(cp)
		return false
	}
	if def.kind != KindNone {
		p.commit(cp, def.kind)
	} else {
		p.drop(cp)
	}
	return true
}
