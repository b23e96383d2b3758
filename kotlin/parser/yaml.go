package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders n as a mapping with kind, span, token and children
// keys in that order, mirroring the JSON form.
func (n *Node) MarshalYAML() (any, error) {
	return n.toYAML(), nil
}

func (n *Node) toYAML() *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		m.Content = append(m.Content, scalar(key), value)
	}

	add("kind", scalar(n.Kind.String()))
	if n.Span.Start.Line != 0 || n.Span.End.Line != 0 {
		add("span", scalar(fmt.Sprintf("%d:%d-%d:%d",
			n.Span.Start.Line, n.Span.Start.Column, n.Span.End.Line, n.Span.End.Column)))
	}
	if n.Token != nil {
		tok := scalar(n.Token.Literal)
		tok.Style = yaml.DoubleQuotedStyle
		add("token", tok)
	}
	if len(n.Children) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, child := range n.Children {
			seq.Content = append(seq.Content, child.toYAML())
		}
		add("children", seq)
	}
	return m
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
