package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ktparse/kotlin/lexer"
	"github.com/tliron/commonlog"
)

var (
	// ErrNoParse means the entry rule did not match the input.
	ErrNoParse = errors.New("no parse")

	// ErrTrailingInput means the entry rule matched a prefix of the input
	// and tokens were left over.
	ErrTrailingInput = errors.New("unexpected trailing input")
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithLogger replaces the "ktparse.parser" logger. A nil logger silences
// guard warnings.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithMaxDepth limits how deeply rules may nest before the parse gives up
// on the innermost one.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Stats counts what one parse did.
type Stats struct {
	Tokens     int
	Nodes      int
	Backtracks int
	GuardTrips int
	// Farthest is the index of the first token never consumed.
	Farthest int
}

// ParseError reports input the entry rule could not parse. Pos and Found
// describe the farthest token any alternative got to, which is usually
// where the input goes wrong.
type ParseError struct {
	Rule     Rule
	Pos      lexer.Position
	Found    lexer.Token
	Expected []string
	Err      error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s: %s", e.Pos, e.Rule, e.Err)
	if e.Found.Kind == lexer.TokenEOF {
		sb.WriteString(" at end of input")
	} else {
		fmt.Fprintf(&sb, " at %s", e.Found)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&sb, ", expected %s", strings.Join(e.Expected, ", "))
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type failure struct {
	pos      int
	expected []string
}

type Parser struct {
	file     string
	reader   io.Reader
	entry    Rule
	log      commonlog.Logger
	maxDepth int

	tokens []lexer.Token
	pos    int
	elems  []*Node
	modes  []mode
	joined map[int]*lexer.Token
	stops  map[int]*lexer.Token
	guard  guard

	failure failure
	stats   Stats
	root    *Node
	err     error
}

func newParser(entry Rule, opts []Option) *Parser {
	p := &Parser{
		entry:    entry,
		log:      defaultLogger(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the entry rule over tokens, which must come from
// lexer.Tokenize or follow its conventions. The whole stream must be
// consumed. tokens is not modified.
func Parse(entry Rule, tokens []lexer.Token, opts ...Option) (*Node, error) {
	if entry < 0 || entry >= ruleCount {
		return nil, fmt.Errorf("parse: unknown rule %d", entry)
	}
	p := newParser(entry, opts)
	return p.run(tokens)
}

func New(entry Rule, r io.Reader, opts ...Option) *Parser {
	p := newParser(entry, opts)
	p.reader = r
	return p
}

func ParseFile(r io.Reader, opts ...Option) *Parser {
	return New(RuleFile, r, opts...)
}

func ParseScript(r io.Reader, opts ...Option) *Parser {
	return New(RuleScript, r, opts...)
}

func ParseExpression(r io.Reader, opts ...Option) *Parser {
	return New(RuleExpression, r, opts...)
}

// Finish reads the input, tokenizes it and parses it with the entry rule.
// It returns nil when the input could not be read or parsed; Err says why.
func (p *Parser) Finish() *Node {
	if p.root != nil || p.err != nil {
		return p.root
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		p.err = fmt.Errorf("read %s: %w", p.file, err)
		return nil
	}
	p.root, p.err = p.run(lexer.Tokenize(data, p.file))
	return p.root
}

func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) Stats() Stats {
	return p.stats
}

// Tokens returns the token stream of the last parse.
func (p *Parser) Tokens() []lexer.Token {
	return p.tokens
}

func (p *Parser) run(tokens []lexer.Token) (*Node, error) {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != lexer.TokenEOF {
		var at lexer.Position
		if n > 0 {
			at = tokens[n-1].Span.End
		}
		eof := lexer.Token{Kind: lexer.TokenEOF, Span: lexer.Span{Start: at, End: at}}
		tokens = append(tokens[:n:n], eof)
	}

	p.reset(tokens)

	var err error
	switch {
	case !p.call(p.entry):
		err = p.fail(ErrNoParse)
	case !p.atEOF():
		p.expected("end of input")
		err = p.fail(ErrTrailingInput)
	}
	if p.log != nil {
		p.log.Debugf("%s: %d tokens, %d nodes, %d backtracks, %d guard trips",
			p.entry, p.stats.Tokens, p.stats.Nodes, p.stats.Backtracks, p.stats.GuardTrips)
	}
	if err != nil {
		return nil, err
	}

	if len(p.elems) == 1 {
		return p.elems[0], nil
	}
	root := &Node{Kind: KindFragment, Children: append([]*Node(nil), p.elems...)}
	root.Span = p.spanOf(root.Children)
	return root, nil
}

func (p *Parser) reset(tokens []lexer.Token) {
	p.tokens = tokens
	p.pos = 0
	p.elems = p.elems[:0]
	p.modes = []mode{rootMode}
	p.joined = make(map[int]*lexer.Token)
	p.stops = make(map[int]*lexer.Token)
	p.guard = newGuard(p.maxDepth)
	p.failure = failure{pos: -1}
	p.stats = Stats{Tokens: len(tokens) - 1}
}

// expected records what the parser was looking for at the current
// position. Only the farthest position reached is kept.
func (p *Parser) expected(what string) {
	switch {
	case p.pos > p.failure.pos:
		p.failure = failure{pos: p.pos, expected: []string{what}}
	case p.pos == p.failure.pos:
		for _, seen := range p.failure.expected {
			if seen == what {
				return
			}
		}
		p.failure.expected = append(p.failure.expected, what)
	}
}

func (p *Parser) fail(err error) error {
	i := p.failure.pos
	if i < p.pos {
		i = p.pos
	}
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	found := p.tokens[i]
	perr := &ParseError{
		Rule:  p.entry,
		Pos:   found.Span.Start,
		Found: found,
		Err:   err,
	}
	if i == p.failure.pos {
		perr.Expected = p.failure.expected
	}
	return perr
}
