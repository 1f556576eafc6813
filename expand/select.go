// SPDX-License-Identifier: MIT
// Package: cxgram/expand
//
// select.go — cumulative-bucket weighted rule selection.

package expand

import "github.com/brianlheim/cxgram/grammar"

// SelectRule picks one rule from the ordered candidate list rules,
// proportionally to the rules' weights, using the raw draw v.
//
// With Sum = Σ weights, the draw reduces to idx = v mod Sum and the list
// is walked in order: rule i owns the half-open bucket
// [prefixSum(i), prefixSum(i)+weight(i)) of [0, Sum), so the first rule
// with idx < weight wins and otherwise idx is decremented by that
// weight. List order therefore decides bucket layout — callers must pass
// candidates in declaration order, exactly as Grammar.RulesFor returns
// them.
//
// An empty candidate list means Sum == 0 and the modulo would be
// undefined; it is reported as ErrNoRules before any arithmetic.
// Weights are assumed ≥ 1, which grammar.New enforces.
//
// Complexity: O(n) over the candidate list, zero allocations.
func SelectRule(rules []grammar.Rule, v uint64) (grammar.Rule, error) {
	if len(rules) == 0 {
		return grammar.Rule{}, ErrNoRules
	}

	var sum uint64
	for _, r := range rules {
		sum += uint64(r.Weight())
	}

	idx := v % sum
	for _, r := range rules {
		w := uint64(r.Weight())
		if idx < w {
			return r, nil
		}
		idx -= w
	}

	// Unreachable: idx starts below sum and shrinks past every bucket.
	return grammar.Rule{}, ErrNoRules
}
