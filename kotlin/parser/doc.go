// Package parser is a backtracking recursive-descent parser for Kotlin.
//
// The parser works on the token stream produced by lexer.Tokenize and
// builds a concrete syntax tree of Node values. Every grammar rule is a
// Rule; any of them can be used as the entry point:
//
//	tokens := lexer.Tokenize(src, "Main.kt")
//	file, err := parser.Parse(parser.RuleFile, tokens)
//
// or, reading from an io.Reader:
//
//	p := parser.ParseFile(r, parser.WithFile("Main.kt"))
//	file := p.Finish()
//	if err := p.Err(); err != nil {
//	    ...
//	}
//
// # Backtracking
//
// Rules return a bool. A rule that fails leaves the cursor and the node
// builder exactly as it found them, so alternatives are tried by calling
// them in order. A successful rule commits the nodes it produced into a
// single node of the rule's kind, or leaves them as siblings when the rule
// has no kind of its own.
//
// # Modes
//
// How tokens are read depends on a stack of mode frames:
//
//   - inside (), [] and <> line breaks are insignificant; inside {} and at
//     top level a binary operator on a new line starts a new statement,
//     except for ., ?., :, as, as?, ?:, && and ||
//   - adjacent "?" ".", "?" ":" and "!" "!" are read as ?., ?: and !!
//     unless joining is switched off, as it is for prefix operators and
//     receiver types
//   - a stop index makes a token read as end of input, which bounds
//     speculative parses such as the type arguments of a generic call
//   - trailing lambdas are disabled in class headers
//
// # Generic calls
//
// "a < b" is read as a comparison unless the '<' has a matching '>' that
// is directly followed by a call, as in "listOf<Int>()" or
// "lazy<String> { }".
//
// # Errors
//
// Parse returns a *ParseError wrapping ErrNoParse or ErrTrailingInput.
// Its position is the farthest token any alternative reached. A rule that
// re-enters itself without consuming input, or a repetition that matches
// nothing, is a grammar defect: it fails, is logged at warning level on
// the "ktparse.parser" logger and is counted in Stats.GuardTrips.
package parser
