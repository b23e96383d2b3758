package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/ktparse/kotlin/parser"
	"github.com/rivo/uniseg"
)

// readSource reads the named file, or stdin when no file is given.
func readSource(args []string) (string, []byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], data, nil
}

// entryRule picks the rule named by the --rule flag, or the one matching
// the file's extension.
func entryRule(name, filename string) (parser.Rule, error) {
	if name != "" {
		r, ok := parser.LookupRule(name)
		if !ok {
			return 0, fmt.Errorf("unknown rule %q (see 'ktparse rules')", name)
		}
		return r, nil
	}
	if filepath.Ext(filename) == ".kts" {
		return parser.RuleScript, nil
	}
	return parser.RuleFile, nil
}

// excerpt returns the source line holding offset with a caret under the
// offending column. Wide and combined characters are measured in cells so
// the caret lines up in a terminal.
func excerpt(src []byte, offset int) string {
	if offset > len(src) {
		offset = len(src)
	}
	start := strings.LastIndexByte(string(src[:offset]), '\n') + 1
	end := len(src)
	if i := strings.IndexByte(string(src[offset:]), '\n'); i >= 0 {
		end = offset + i
	}
	line := strings.TrimRight(string(src[start:end]), "\r")

	var caret strings.Builder
	g := uniseg.NewGraphemes(string(src[start:offset]))
	for g.Next() {
		if g.Str() == "\t" {
			caret.WriteByte('\t')
			continue
		}
		caret.WriteString(strings.Repeat(" ", g.Width()))
	}
	caret.WriteByte('^')
	return line + "\n" + caret.String()
}

// printError writes err and, for a parse error, the source line it points
// at with a caret under the offending column.
func printError(w io.Writer, err error, src []byte) {
	fmt.Fprintln(w, err)
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(w, excerpt(src, perr.Pos.Offset))
	}
}
