// Package expand implements the rewriting engine of cxgram: weighted
// rule selection, round-based sentential-form expansion and final
// serialization.
//
// One expansion is the pure function
//
//	Production(g, seed) → output string
//
// for a fixed *grammar.Grammar. Starting from the form [start], each
// round scans the current form left to right: terminals copy through
// unchanged, and each non-terminal is replaced by the right-hand side of
// one of its rules, chosen by cumulative-bucket weighted selection
// against the current xorshift state. The state advances exactly once
// per non-terminal decision (terminals consume no step), so identical
// (grammar, seed) inputs always produce identical output.
//
// Rounds repeat until the form is entirely terminal, at which point the
// serializer concatenates the terminals' literal text with no
// separators.
//
// Safety bounds:
//
//   - Form width: if a round *starts* with more than Options.MaxFormWidth
//     symbols (default 100), that round still runs and expansion then
//     force-stops. The bound is checked once per round against the
//     round's starting size, which caps runaway growth at one round past
//     the threshold.
//   - Rounds: WithMaxRounds(n) additionally caps the number of rounds,
//     guarding against grammars that oscillate without growing (the width
//     bound alone cannot stop those). Default: unlimited.
//
// When a bound trips, non-terminals may remain in the final form. By
// default they leak: each contributes its declared name to the output,
// and Result.Truncated reports the fact. WithStrictBounds upgrades a
// tripped bound to ErrFormOverflow / ErrRoundLimit instead.
//
// Concurrency: Expand and Production are pure and own all their mutable
// state, so concurrent calls against a shared Grammar are safe without
// locking.
package expand
