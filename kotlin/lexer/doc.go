// Package lexer turns Kotlin source bytes into tokens.
//
// The lexer is byte oriented and never fails: input it cannot classify is
// returned as TokenError and left for the parser to reject.
//
// String literals are not single tokens. A template such as "a${b}c" is
// returned as a sequence:
//
//	OpenQuote  RegularStringPart("a")  LongTemplateEntryStart
//	Ident("b")  LongTemplateEntryEnd  RegularStringPart("c")  ClosingQuote
//
// The lexer keeps a small stack of string and code states so that braces
// inside a template entry are balanced correctly.
//
// A few operators are deliberately left split. The lexer emits '?', '.',
// ':' and '!' on their own and the parser joins adjacent pairs into "?.",
// "?:" and "!!" only where the grammar allows it. This keeps "String?.foo"
// (a nullable receiver type) and "!!x" (two negations) parseable.
//
// Soft keywords such as "by", "get" or "where" are returned as TokenIdent;
// see SoftKeywords.
package lexer
