package parser

import "github.com/dhamidi/ktparse/kotlin/lexer"

// checkpoint records the token position and the number of finished
// elements at the moment a rule began.
type checkpoint struct {
	pos  int
	mark int
}

func (p *Parser) open() checkpoint {
	return checkpoint{pos: p.pos, mark: len(p.elems)}
}

// commit wraps every element produced since cp into a node of the given
// kind. Committing the same checkpoint again wraps the previous result
// together with what followed it, which is how left-associative chains
// are folded.
func (p *Parser) commit(cp checkpoint, kind NodeKind) *Node {
	children := make([]*Node, len(p.elems)-cp.mark)
	copy(children, p.elems[cp.mark:])
	node := &Node{Kind: kind, Children: children, Span: p.spanOf(children)}
	p.elems = append(p.elems[:cp.mark], node)
	p.stats.Nodes++
	return node
}

// rollback restores the cursor to cp and discards everything produced
// since. Rolling back twice to the same checkpoint is harmless.
func (p *Parser) rollback(cp checkpoint) {
	if p.pos != cp.pos || len(p.elems) != cp.mark {
		p.stats.Backtracks++
	}
	p.pos = cp.pos
	if len(p.elems) > cp.mark {
		for i := cp.mark; i < len(p.elems); i++ {
			p.elems[i] = nil
		}
		p.elems = p.elems[:cp.mark]
	}
}

// drop abandons cp without wrapping: the elements stay as siblings and
// the tokens stay consumed.
func (p *Parser) drop(checkpoint) {}

// last returns the most recently finished element, or nil.
func (p *Parser) last() *Node {
	if len(p.elems) == 0 {
		return nil
	}
	return p.elems[len(p.elems)-1]
}

func (p *Parser) spanOf(children []*Node) lexer.Span {
	if len(children) == 0 {
		at := p.peekToken().Span.Start
		return lexer.Span{Start: at, End: at}
	}
	return lexer.Span{
		Start: children[0].Span.Start,
		End:   children[len(children)-1].Span.End,
	}
}
