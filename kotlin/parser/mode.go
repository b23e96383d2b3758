package parser

// mode is one frame of the lexical mode stack. Frames are pushed for the
// extent of a sub-parse and always popped on the way out, whether the
// sub-parse succeeded or not.
type mode struct {
	// newlines makes line breaks significant: a binary operator on a new
	// line starts a new statement.
	newlines bool

	// shortAnnotations accepts a bare identifier as an annotation in a
	// modifier list.
	shortAnnotations bool

	// join reads adjacent "?" "." and friends as a single token.
	join bool

	// stopAt is a token index that reads as end of stream, or -1.
	stopAt int

	// lambdas allows a trailing lambda after a call. It is off in class
	// headers so that the class body is not taken for a lambda argument.
	lambdas bool
}

var rootMode = mode{
	newlines: true,
	join:     true,
	stopAt:   -1,
	lambdas:  true,
}

func (p *Parser) mode() *mode {
	return &p.modes[len(p.modes)-1]
}

// withMode runs fn with a copy of the current frame modified by set.
func (p *Parser) withMode(set func(*mode), fn func() bool) bool {
	m := *p.mode()
	set(&m)
	p.modes = append(p.modes, m)
	defer func() {
		p.modes = p.modes[:len(p.modes)-1]
	}()
	return fn()
}

// inBrackets is the mode for (), [] and <> contents.
func (p *Parser) inBrackets(fn func() bool) bool {
	return p.withMode(func(m *mode) {
		m.newlines = false
		m.shortAnnotations = false
		m.lambdas = true
	}, fn)
}

// inBlock is the mode for {} contents.
func (p *Parser) inBlock(fn func() bool) bool {
	return p.withMode(func(m *mode) {
		m.newlines = true
		m.shortAnnotations = false
		m.lambdas = true
	}, fn)
}

func (p *Parser) withNewlines(on bool, fn func() bool) bool {
	return p.withMode(func(m *mode) { m.newlines = on }, fn)
}

func (p *Parser) withJoin(on bool, fn func() bool) bool {
	return p.withMode(func(m *mode) { m.join = on }, fn)
}

func (p *Parser) withShortAnnotations(on bool, fn func() bool) bool {
	return p.withMode(func(m *mode) { m.shortAnnotations = on }, fn)
}

func (p *Parser) withLambdas(on bool, fn func() bool) bool {
	return p.withMode(func(m *mode) { m.lambdas = on }, fn)
}

// withStop makes the token at index i read as end of stream. An earlier
// stop that is already active stays in force.
func (p *Parser) withStop(i int, fn func() bool) bool {
	return p.withMode(func(m *mode) {
		if m.stopAt < 0 || i < m.stopAt {
			m.stopAt = i
		}
	}, fn)
}
