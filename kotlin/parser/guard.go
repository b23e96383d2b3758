package parser

import "github.com/tliron/commonlog"

const DefaultMaxDepth = 4096

type guardKey struct {
	rule Rule
	pos  int
}

// guard tracks the rules in progress so that a rule re-entered at the
// position it started from fails instead of recursing forever.
type guard struct {
	active   map[guardKey]struct{}
	depth    int
	maxDepth int
}

func newGuard(maxDepth int) guard {
	return guard{active: make(map[guardKey]struct{}), maxDepth: maxDepth}
}

func (g *guard) enter(r Rule, pos int) bool {
	key := guardKey{r, pos}
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	g.depth++
	return true
}

func (g *guard) leave(r Rule, pos int) {
	delete(g.active, guardKey{r, pos})
	g.depth--
}

// trip records a guard failure. It is logged separately from ordinary
// backtracking, which is silent.
func (p *Parser) trip(format string, args ...any) {
	p.stats.GuardTrips++
	if p.log != nil {
		p.log.Warningf(format, args...)
	}
}

func defaultLogger() commonlog.Logger {
	return commonlog.GetLogger("ktparse.parser")
}
