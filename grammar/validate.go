// SPDX-License-Identifier: MIT
// Package: cxgram/grammar
//
// validate.go — construction-time structural validation.
//
// Design contract (strict):
//   - Every defect is a sentinel error wrapped with rule/symbol context
//     via %w; callers branch with errors.Is. No panics.
//   - Per-rule checks run before the index exists; the completeness check
//     runs after, over the reachable non-terminal closure only. Rules
//     whose lhs the start symbol can never produce are allowed to lack
//     further definitions.

package grammar

import "fmt"

// validateRules applies the per-rule structural checks in declaration
// order: non-nil lhs, non-terminal lhs, weight ≥ 1, non-nil rhs entries.
// The first defect wins; its error names the rule index.
// Complexity: O(R·L).
func (g *Grammar) validateRules() error {
	for i, r := range g.rules {
		if r.lhs == nil {
			return fmt.Errorf("grammar: rule %d: lhs: %w", i, ErrNilSymbol)
		}
		if r.lhs.terminal {
			return fmt.Errorf("grammar: rule %d (%s): %w", i, r.lhs, ErrTerminalLHS)
		}
		if r.weight < 1 {
			return fmt.Errorf("grammar: rule %d (%s): weight %d: %w", i, r.lhs, r.weight, ErrBadWeight)
		}
		for j, s := range r.rhs {
			if s == nil {
				return fmt.Errorf("grammar: rule %d (%s): rhs[%d]: %w", i, r.lhs, j, ErrNilSymbol)
			}
		}
	}

	return nil
}

// checkComplete walks the non-terminal closure reachable from the start
// symbol with a frontier worklist and confirms each member has at least
// one rule. A reachable non-terminal with an empty candidate list would
// give the weighted selector a zero weight sum, so the defect surfaces
// here, strictly before any selection arithmetic.
// Complexity: O(N + R·L) over reachable non-terminals and their rules.
func (g *Grammar) checkComplete() error {
	if g.start.terminal {
		// A terminal start expands to itself; nothing to check.
		return nil
	}

	seen := map[*Symbol]bool{g.start: true}
	frontier := []*Symbol{g.start}

	for len(frontier) > 0 {
		nt := frontier[0]
		frontier = frontier[1:]

		idxs := g.index[nt]
		if len(idxs) == 0 {
			return fmt.Errorf("grammar: %s: %w", nt, ErrIncomplete)
		}
		for _, ri := range idxs {
			for _, s := range g.rules[ri].rhs {
				if s.terminal || seen[s] {
					continue
				}
				seen[s] = true
				frontier = append(frontier, s)
			}
		}
	}

	return nil
}
