package parser

import (
	"bytes"
	_ "embed"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed kotlin.ebnf
var grammarSource []byte

// GrammarStart is the production every other production is reachable
// from.
const GrammarStart = "Entry"

// Grammar parses the EBNF description of the rules. Each rule has a
// production named by ProductionName.
func Grammar() (ebnf.Grammar, error) {
	return ebnf.Parse("kotlin.ebnf", bytes.NewReader(grammarSource))
}

// ProductionName is the grammar production describing r.
func ProductionName(r Rule) string {
	name := r.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Production returns the source text of the production describing r.
func Production(r Rule) (string, bool) {
	src := string(grammarSource)
	head := ProductionName(r) + " ="
	start := -1
	for i := 0; i < len(src); {
		if strings.HasPrefix(src[i:], head) {
			start = i
			break
		}
		next := strings.IndexByte(src[i:], '\n')
		if next < 0 {
			break
		}
		i += next + 1
	}
	if start < 0 {
		return "", false
	}
	end := strings.Index(src[start:], "\n\n")
	if end < 0 {
		return strings.TrimSpace(src[start:]), true
	}
	return src[start : start+end], true
}
