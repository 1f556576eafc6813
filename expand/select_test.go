package expand_test

import (
	"testing"

	"github.com/brianlheim/cxgram/expand"
	"github.com/brianlheim/cxgram/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelectRule_Buckets verifies the cumulative-bucket layout for
// weights [2,3,5] (Sum=10): idx ∈ [0,2) → rule 0, [2,5) → rule 1,
// [5,10) → rule 2, including the exact boundary draws and the modulo
// wrap at 10.
func TestSelectRule_Buckets(t *testing.T) {
	s := grammar.Nonterminal("S")
	a := grammar.Terminal("a")
	b := grammar.Terminal("b")
	c := grammar.Terminal("c")

	rules := []grammar.Rule{
		grammar.NewWeightedRule(2, s, a),
		grammar.NewWeightedRule(3, s, b),
		grammar.NewWeightedRule(5, s, c),
	}

	cases := []struct {
		v    uint64
		want *grammar.Symbol
	}{
		{0, a}, {1, a}, // [0,2) → weight-2 rule
		{2, b}, {4, b}, // [2,5) → weight-3 rule
		{5, c}, {9, c}, // [5,10) → weight-5 rule
		{10, a}, {11, a}, // wrap: 10 mod 10 = 0, 11 mod 10 = 1
		{25, c}, // 25 mod 10 = 5
	}

	for _, tc := range cases {
		got, err := expand.SelectRule(rules, tc.v)
		require.NoError(t, err, "v=%d", tc.v)
		assert.Same(t, tc.want, got.Rhs()[0], "v=%d lands in the wrong bucket", tc.v)
	}
}

// TestSelectRule_DeclarationOrderTieBreak verifies that equal-weight
// rules are laid out in list order: with weights [1,1], draw 0 picks the
// first rule and draw 1 the second.
func TestSelectRule_DeclarationOrderTieBreak(t *testing.T) {
	s := grammar.Nonterminal("S")
	x := grammar.Terminal("x")
	y := grammar.Terminal("y")

	rules := []grammar.Rule{
		grammar.NewRule(s, x),
		grammar.NewRule(s, y),
	}

	first, err := expand.SelectRule(rules, 0)
	require.NoError(t, err)
	assert.Same(t, x, first.Rhs()[0])

	second, err := expand.SelectRule(rules, 1)
	require.NoError(t, err)
	assert.Same(t, y, second.Rhs()[0])
}

// TestSelectRule_SingleRule verifies that a one-rule list wins every
// draw.
func TestSelectRule_SingleRule(t *testing.T) {
	s := grammar.Nonterminal("S")
	a := grammar.Terminal("a")
	rules := []grammar.Rule{grammar.NewWeightedRule(7, s, a)}

	for _, v := range []uint64{0, 1, 6, 7, 1 << 63, ^uint64(0)} {
		got, err := expand.SelectRule(rules, v)
		require.NoError(t, err, "v=%d", v)
		assert.Same(t, a, got.Rhs()[0], "v=%d", v)
	}
}

// TestSelectRule_EmptyCandidates verifies the empty list is reported as
// ErrNoRules before any modulo is computed, for any draw.
func TestSelectRule_EmptyCandidates(t *testing.T) {
	for _, v := range []uint64{0, 1, ^uint64(0)} {
		_, err := expand.SelectRule(nil, v)
		assert.ErrorIs(t, err, expand.ErrNoRules, "v=%d", v)
	}
}
