package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)
	require.NoError(t, ebnf.Verify(g, GrammarStart))
}

func TestEveryRuleHasProduction(t *testing.T) {
	g, err := Grammar()
	require.NoError(t, err)

	for _, r := range Rules() {
		t.Run(r.String(), func(t *testing.T) {
			name := ProductionName(r)
			assert.Contains(t, g, name)

			text, ok := Production(r)
			require.True(t, ok)
			assert.True(t, strings.HasPrefix(text, name+" ="), text)
			assert.True(t, strings.HasSuffix(text, "."), text)
		})
	}
}

func TestProduction(t *testing.T) {
	text, ok := Production(RuleRange)
	require.True(t, ok)
	assert.Equal(t, `Range = Additive { ".." Additive } .`, text)

	_, ok = Production(Rule(-1))
	assert.False(t, ok)
}
