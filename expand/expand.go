// SPDX-License-Identifier: MIT
// Package: cxgram/expand
//
// expand.go — the round-based rewriting engine.
//
// Design contract (strict):
//   - Determinism: identical (grammar, seed, options) ⇒ identical Result.
//   - One xorshift step per non-terminal decision; terminals consume none.
//   - The selection for a non-terminal uses the state value *before* that
//     step; the step happens after the rule is chosen.
//   - Bounds are evaluated once per round against the round's starting
//     size, never continuously; a tripped width bound still runs its
//     round ("stop after, not before").

package expand

import (
	"fmt"

	"github.com/brianlheim/cxgram/grammar"
	"github.com/brianlheim/cxgram/xorshift"
)

// Production expands g's start symbol under the given seed and returns
// the serialized output: a thin wrapper over Expand for callers who only
// want the string.
func Production(g *grammar.Grammar, seed uint64, opts ...Option) (string, error) {
	res, err := Expand(g, seed, opts...)
	if err != nil {
		return "", err
	}

	return res.Output, nil
}

// Expand rewrites the sentential form [start] round by round until it is
// all-terminal or a safety bound trips, then serializes it.
//
// Returns:
//   - Result with the output string, final form, round count and the
//     Truncated flag (see types.go).
//   - err: ErrNilGrammar, ErrOptionViolation, ErrNoRules, or — under
//     WithStrictBounds — ErrFormOverflow / ErrRoundLimit.
//
// Complexity: each round is O(W·k) for form width W and candidate-list
// length k; the width bound caps W at one round of growth past
// MaxFormWidth, so a single round is always bounded work.
//
// Concurrency: pure; the form and PRNG state are owned by this call, so
// concurrent invocations on one read-only Grammar need no locking.
func Expand(g *grammar.Grammar, seed uint64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, ErrNilGrammar
	}

	state := seed
	form := []*grammar.Symbol{g.Start()}
	rounds := 0

	for !allTerminal(form) {
		if o.MaxRounds > 0 && rounds >= o.MaxRounds {
			if o.StrictBounds {
				return Result{}, fmt.Errorf("expand: after %d rounds: %w", rounds, ErrRoundLimit)
			}

			break
		}

		// Width bound: decided on the round's starting size. An oversized
		// form gets exactly one more round before the force-stop.
		over := len(form) > o.MaxFormWidth

		next, nextState, err := expandRound(g, form, state)
		if err != nil {
			return Result{}, err
		}
		form, state = next, nextState
		rounds++
		o.OnRound(rounds, form)

		if over {
			if o.StrictBounds {
				return Result{}, fmt.Errorf("expand: form width %d > %d: %w", len(form), o.MaxFormWidth, ErrFormOverflow)
			}

			break
		}
	}

	return Result{
		Output:    Serialize(form),
		Form:      form,
		Rounds:    rounds,
		Truncated: !allTerminal(form),
	}, nil
}

// expandRound performs one full left-to-right scan: terminals copy
// through, each non-terminal is replaced by the rhs of the rule selected
// with the current state, and the state advances once per selection.
func expandRound(g *grammar.Grammar, form []*grammar.Symbol, state uint64) ([]*grammar.Symbol, uint64, error) {
	next := make([]*grammar.Symbol, 0, len(form))
	for _, s := range form {
		if s.IsTerminal() {
			next = append(next, s)

			continue
		}

		candidates := g.RulesFor(s)
		if len(candidates) == 0 {
			return nil, state, fmt.Errorf("expand: %s: %w", s, ErrNoRules)
		}

		rule, err := SelectRule(candidates, state)
		if err != nil {
			return nil, state, fmt.Errorf("expand: %s: %w", s, err)
		}
		state = xorshift.Next(state)

		// Splice: zero or more symbols, relative order preserved.
		next = append(next, rule.Rhs()...)
	}

	return next, state, nil
}

// allTerminal reports whether the form contains no non-terminals.
func allTerminal(form []*grammar.Symbol) bool {
	for _, s := range form {
		if !s.IsTerminal() {
			return false
		}
	}

	return true
}
