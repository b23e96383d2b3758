package lexer

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment
	TokenShebang

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral

	// String templates
	TokenOpenQuote
	TokenClosingQuote
	TokenRegularStringPart
	TokenEscapeSequence
	TokenShortTemplateEntryStart
	TokenLongTemplateEntryStart
	TokenLongTemplateEntryEnd

	// Keywords
	TokenPackage
	TokenAs
	TokenTypealias
	TokenClass
	TokenInterface
	TokenThis
	TokenSuper
	TokenVal
	TokenVar
	TokenFun
	TokenFor
	TokenNull
	TokenTrue
	TokenFalse
	TokenIs
	TokenIn
	TokenThrow
	TokenReturn
	TokenBreak
	TokenContinue
	TokenObject
	TokenIf
	TokenTry
	TokenElse
	TokenWhile
	TokenDo
	TokenWhen
	TokenAsSafe
	TokenNotIn
	TokenNotIs

	// Separators and operators
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenRange
	TokenColon
	TokenColonColon
	TokenQuestion
	TokenExcl
	TokenAt
	TokenHash
	TokenAssign
	TokenEQ
	TokenNE
	TokenEQEQEQ
	TokenNEEQEQ
	TokenLT
	TokenGT
	TokenLE
	TokenGE
	TokenAndAnd
	TokenOrOr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenPlusPlus
	TokenMinusMinus
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenArrow

	// Produced by joining adjacent tokens, never by the lexer itself.
	TokenSafeAccess
	TokenElvis
	TokenExclExcl
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenWhitespace:  "Whitespace",
	TokenComment:     "Comment",
	TokenLineComment: "LineComment",
	TokenShebang:     "Shebang",

	TokenIdent:        "Ident",
	TokenIntLiteral:   "IntLiteral",
	TokenFloatLiteral: "FloatLiteral",
	TokenCharLiteral:  "CharLiteral",

	TokenOpenQuote:               "OpenQuote",
	TokenClosingQuote:            "ClosingQuote",
	TokenRegularStringPart:       "RegularStringPart",
	TokenEscapeSequence:          "EscapeSequence",
	TokenShortTemplateEntryStart: "ShortTemplateEntryStart",
	TokenLongTemplateEntryStart:  "LongTemplateEntryStart",
	TokenLongTemplateEntryEnd:    "LongTemplateEntryEnd",

	TokenPackage:   "package",
	TokenAs:        "as",
	TokenTypealias: "typealias",
	TokenClass:     "class",
	TokenInterface: "interface",
	TokenThis:      "this",
	TokenSuper:     "super",
	TokenVal:       "val",
	TokenVar:       "var",
	TokenFun:       "fun",
	TokenFor:       "for",
	TokenNull:      "null",
	TokenTrue:      "true",
	TokenFalse:     "false",
	TokenIs:        "is",
	TokenIn:        "in",
	TokenThrow:     "throw",
	TokenReturn:    "return",
	TokenBreak:     "break",
	TokenContinue:  "continue",
	TokenObject:    "object",
	TokenIf:        "if",
	TokenTry:       "try",
	TokenElse:      "else",
	TokenWhile:     "while",
	TokenDo:        "do",
	TokenWhen:      "when",
	TokenAsSafe:    "as?",
	TokenNotIn:     "!in",
	TokenNotIs:     "!is",

	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenRange:         "..",
	TokenColon:         ":",
	TokenColonColon:    "::",
	TokenQuestion:      "?",
	TokenExcl:          "!",
	TokenAt:            "@",
	TokenHash:          "#",
	TokenAssign:        "=",
	TokenEQ:            "==",
	TokenNE:            "!=",
	TokenEQEQEQ:        "===",
	TokenNEEQEQ:        "!==",
	TokenLT:            "<",
	TokenGT:            ">",
	TokenLE:            "<=",
	TokenGE:            ">=",
	TokenAndAnd:        "&&",
	TokenOrOr:          "||",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenPlusPlus:      "++",
	TokenMinusMinus:    "--",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenArrow:         "->",

	TokenSafeAccess: "?.",
	TokenElvis:      "?:",
	TokenExclExcl:   "!!",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is a hard keyword.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenPackage && k <= TokenNotIs
}

// IsTrivia reports whether k carries no syntax: whitespace and comments.
func (k TokenKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenComment, TokenLineComment, TokenShebang:
		return true
	}
	return false
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string

	// NewlineBefore is set when at least one line break separates this
	// token from the previous significant token.
	NewlineBefore bool
}

func (t Token) String() string {
	if t.Literal == "" || t.Literal == t.Kind.String() {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
}

var keywords = map[string]TokenKind{
	"package":   TokenPackage,
	"as":        TokenAs,
	"typealias": TokenTypealias,
	"class":     TokenClass,
	"interface": TokenInterface,
	"this":      TokenThis,
	"super":     TokenSuper,
	"val":       TokenVal,
	"var":       TokenVar,
	"fun":       TokenFun,
	"for":       TokenFor,
	"null":      TokenNull,
	"true":      TokenTrue,
	"false":     TokenFalse,
	"is":        TokenIs,
	"in":        TokenIn,
	"throw":     TokenThrow,
	"return":    TokenReturn,
	"break":     TokenBreak,
	"continue":  TokenContinue,
	"object":    TokenObject,
	"if":        TokenIf,
	"try":       TokenTry,
	"else":      TokenElse,
	"while":     TokenWhile,
	"do":        TokenDo,
	"when":      TokenWhen,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}

// SoftKeywords are identifiers that act as keywords only in specific
// grammar positions. The lexer reports them as TokenIdent.
var SoftKeywords = map[string]bool{
	"import":      true,
	"where":       true,
	"by":          true,
	"get":         true,
	"set":         true,
	"constructor": true,
	"init":        true,
	"companion":   true,
	"enum":        true,
	"data":        true,
	"sealed":      true,
	"abstract":    true,
	"open":        true,
	"override":    true,
	"private":     true,
	"public":      true,
	"protected":   true,
	"internal":    true,
	"inner":       true,
	"final":       true,
	"vararg":      true,
	"noinline":    true,
	"crossinline": true,
	"reified":     true,
	"out":         true,
	"inline":      true,
	"lateinit":    true,
	"const":       true,
	"suspend":     true,
	"operator":    true,
	"infix":       true,
	"tailrec":     true,
	"external":    true,
	"annotation":  true,
	"catch":       true,
	"finally":     true,
	"dynamic":     true,
	"field":       true,
	"file":        true,
}

// Modifiers is the subset of soft keywords accepted in a modifier list.
var Modifiers = map[string]bool{
	"abstract":    true,
	"open":        true,
	"enum":        true,
	"data":        true,
	"sealed":      true,
	"annotation":  true,
	"override":    true,
	"private":     true,
	"public":      true,
	"protected":   true,
	"internal":    true,
	"inner":       true,
	"final":       true,
	"vararg":      true,
	"noinline":    true,
	"crossinline": true,
	"reified":     true,
	"out":         true,
	"in":          true,
	"inline":      true,
	"lateinit":    true,
	"const":       true,
	"suspend":     true,
	"operator":    true,
	"infix":       true,
	"tailrec":     true,
	"external":    true,
	"companion":   true,
}
