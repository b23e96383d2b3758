package parser

import (
	"strings"

	"github.com/dhamidi/ktparse/kotlin/lexer"
)

type NodeKind int

const (
	KindNone NodeKind = iota
	KindToken
	KindFragment

	// Files
	KindFile
	KindScript
	KindPackageDirective
	KindImportList
	KindImportDirective
	KindFileAnnotationList

	// Modifiers and annotations
	KindModifierList
	KindAnnotation
	KindAnnotationEntry

	// Declarations
	KindClass
	KindObjectDeclaration
	KindTypeAlias
	KindFunction
	KindProperty
	KindMultiVariableDeclaration
	KindDestructuringEntry
	KindPrimaryConstructor
	KindSecondaryConstructor
	KindConstructorDelegationCall
	KindAnonymousInitializer
	KindValueParameterList
	KindValueParameter
	KindTypeParameterList
	KindTypeParameter
	KindTypeConstraintList
	KindTypeConstraint
	KindSuperTypeList
	KindSuperTypeEntry
	KindSuperTypeCallEntry
	KindDelegatedSuperTypeEntry
	KindClassBody
	KindEnumEntry
	KindPropertyAccessor
	KindPropertyDelegate

	// Types
	KindTypeReference
	KindUserType
	KindNullableType
	KindFunctionType
	KindFunctionTypeReceiver
	KindDynamicType
	KindTypeArgumentList
	KindTypeProjection

	// Statements
	KindBlock

	// Operators
	KindBinaryExpression
	KindBinaryWithType
	KindIsExpression
	KindOperationReference
	KindPrefixExpression
	KindPostfixExpression
	KindAnnotatedExpression
	KindLabeledExpression
	KindLabel

	// Postfix forms
	KindCallExpression
	KindValueArgumentList
	KindValueArgument
	KindValueArgumentName
	KindLambdaArgument
	KindArrayAccess
	KindIndices
	KindDotQualified
	KindSafeAccess
	KindCallableReference

	// Atoms
	KindParenthesized
	KindIntegerConstant
	KindFloatConstant
	KindCharacterConstant
	KindBooleanConstant
	KindNull
	KindStringTemplate
	KindLiteralStringEntry
	KindEscapeStringEntry
	KindShortStringEntry
	KindLongStringEntry
	KindReference
	KindThis
	KindSuper
	KindObjectLiteral
	KindLambdaExpression

	// Control flow
	KindIf
	KindCondition
	KindThen
	KindElse
	KindWhen
	KindWhenEntry
	KindWhenConditionExpression
	KindWhenConditionIn
	KindWhenConditionIs
	KindTry
	KindCatch
	KindFinally
	KindFor
	KindLoopRange
	KindBody
	KindWhile
	KindDoWhile
	KindReturn
	KindThrow
	KindBreak
	KindContinue
)

var nodeKindNames = map[NodeKind]string{
	KindNone:     "None",
	KindToken:    "Token",
	KindFragment: "Fragment",

	KindFile:               "File",
	KindScript:             "Script",
	KindPackageDirective:   "PackageDirective",
	KindImportList:         "ImportList",
	KindImportDirective:    "ImportDirective",
	KindFileAnnotationList: "FileAnnotationList",

	KindModifierList:    "ModifierList",
	KindAnnotation:      "Annotation",
	KindAnnotationEntry: "AnnotationEntry",

	KindClass:                     "Class",
	KindObjectDeclaration:         "ObjectDeclaration",
	KindTypeAlias:                 "TypeAlias",
	KindFunction:                  "Function",
	KindProperty:                  "Property",
	KindMultiVariableDeclaration:  "MultiVariableDeclaration",
	KindDestructuringEntry:        "DestructuringEntry",
	KindPrimaryConstructor:        "PrimaryConstructor",
	KindSecondaryConstructor:      "SecondaryConstructor",
	KindConstructorDelegationCall: "ConstructorDelegationCall",
	KindAnonymousInitializer:      "AnonymousInitializer",
	KindValueParameterList:        "ValueParameterList",
	KindValueParameter:            "ValueParameter",
	KindTypeParameterList:         "TypeParameterList",
	KindTypeParameter:             "TypeParameter",
	KindTypeConstraintList:        "TypeConstraintList",
	KindTypeConstraint:            "TypeConstraint",
	KindSuperTypeList:             "SuperTypeList",
	KindSuperTypeEntry:            "SuperTypeEntry",
	KindSuperTypeCallEntry:        "SuperTypeCallEntry",
	KindDelegatedSuperTypeEntry:   "DelegatedSuperTypeEntry",
	KindClassBody:                 "ClassBody",
	KindEnumEntry:                 "EnumEntry",
	KindPropertyAccessor:          "PropertyAccessor",
	KindPropertyDelegate:          "PropertyDelegate",

	KindTypeReference:        "TypeReference",
	KindUserType:             "UserType",
	KindNullableType:         "NullableType",
	KindFunctionType:         "FunctionType",
	KindFunctionTypeReceiver: "FunctionTypeReceiver",
	KindDynamicType:          "DynamicType",
	KindTypeArgumentList:     "TypeArgumentList",
	KindTypeProjection:       "TypeProjection",

	KindBlock: "Block",

	KindBinaryExpression:    "BinaryExpression",
	KindBinaryWithType:      "BinaryWithType",
	KindIsExpression:        "IsExpression",
	KindOperationReference:  "OperationReference",
	KindPrefixExpression:    "PrefixExpression",
	KindPostfixExpression:   "PostfixExpression",
	KindAnnotatedExpression: "AnnotatedExpression",
	KindLabeledExpression:   "LabeledExpression",
	KindLabel:               "Label",

	KindCallExpression:    "CallExpression",
	KindValueArgumentList: "ValueArgumentList",
	KindValueArgument:     "ValueArgument",
	KindValueArgumentName: "ValueArgumentName",
	KindLambdaArgument:    "LambdaArgument",
	KindArrayAccess:       "ArrayAccess",
	KindIndices:           "Indices",
	KindDotQualified:      "DotQualified",
	KindSafeAccess:        "SafeAccess",
	KindCallableReference: "CallableReference",

	KindParenthesized:      "Parenthesized",
	KindIntegerConstant:    "IntegerConstant",
	KindFloatConstant:      "FloatConstant",
	KindCharacterConstant:  "CharacterConstant",
	KindBooleanConstant:    "BooleanConstant",
	KindNull:               "Null",
	KindStringTemplate:     "StringTemplate",
	KindLiteralStringEntry: "LiteralStringEntry",
	KindEscapeStringEntry:  "EscapeStringEntry",
	KindShortStringEntry:   "ShortStringEntry",
	KindLongStringEntry:    "LongStringEntry",
	KindReference:          "Reference",
	KindThis:               "This",
	KindSuper:              "Super",
	KindObjectLiteral:      "ObjectLiteral",
	KindLambdaExpression:   "LambdaExpression",

	KindIf:                      "If",
	KindCondition:               "Condition",
	KindThen:                    "Then",
	KindElse:                    "Else",
	KindWhen:                    "When",
	KindWhenEntry:               "WhenEntry",
	KindWhenConditionExpression: "WhenConditionExpression",
	KindWhenConditionIn:         "WhenConditionIn",
	KindWhenConditionIs:         "WhenConditionIs",
	KindTry:                     "Try",
	KindCatch:                   "Catch",
	KindFinally:                 "Finally",
	KindFor:                     "For",
	KindLoopRange:               "LoopRange",
	KindBody:                    "Body",
	KindWhile:                   "While",
	KindDoWhile:                 "DoWhile",
	KindReturn:                  "Return",
	KindThrow:                   "Throw",
	KindBreak:                   "Break",
	KindContinue:                "Continue",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is a concrete syntax tree node. Leaves have Kind KindToken and
// point at the token they were built from; interior nodes hold their
// children in source order.
type Node struct {
	Kind     NodeKind
	Span     lexer.Span
	Children []*Node
	Token    *lexer.Token
}

func (n *Node) IsToken() bool {
	return n.Kind == KindToken
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// FirstToken returns the first leaf child whose token has the given kind.
func (n *Node) FirstToken(kind lexer.TokenKind) *lexer.Token {
	for _, child := range n.Children {
		if child.IsToken() && child.Token.Kind == kind {
			return child.Token
		}
	}
	return nil
}

// Tokens returns the leaves under n in source order.
func (n *Node) Tokens() []*lexer.Token {
	var out []*lexer.Token
	n.Walk(func(m *Node) bool {
		if m.Token != nil {
			out = append(out, m.Token)
		}
		return true
	})
	return out
}

// Text joins the literals of all leaves under n with single spaces.
func (n *Node) Text() string {
	var parts []string
	for _, tok := range n.Tokens() {
		parts = append(parts, tok.Literal)
	}
	return strings.Join(parts, " ")
}

// Walk visits n and its descendants depth first. Returning false from
// visit skips the children of that node.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	var sb strings.Builder
	n.writeIndent(&sb, indent, showPositions)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	if showPositions {
		sb.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Token != nil {
		sb.WriteString(" " + n.Token.Literal)
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}
