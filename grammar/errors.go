// SPDX-License-Identifier: MIT
// Package: cxgram/grammar
//
// errors.go — sentinel errors for the grammar package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • New attaches context (rule index, symbol name) via %w wrapping.
//   • Construction never panics; every structural defect is an error.

package grammar

import "errors"

// ErrNilStart indicates that New was called with a nil start symbol.
// Usage: if errors.Is(err, ErrNilStart) { /* supply a start symbol */ }.
var ErrNilStart = errors.New("grammar: start symbol is nil")

// ErrNilSymbol indicates that a rule carries a nil lhs or a nil entry in
// its rhs sequence. The wrapped context names the offending rule index.
// Usage: if errors.Is(err, ErrNilSymbol) { /* fix rule construction */ }.
var ErrNilSymbol = errors.New("grammar: nil symbol in rule")

// ErrBadWeight indicates a rule declared with weight < 1. A zero or
// negative weight corrupts the cumulative-bucket prefix sums used by
// weighted selection, so it is rejected at construction time.
// Usage: if errors.Is(err, ErrBadWeight) { /* use weight ≥ 1 */ }.
var ErrBadWeight = errors.New("grammar: rule weight must be ≥ 1")

// ErrTerminalLHS indicates a rule whose lhs is a terminal symbol. Such a
// rule can never match (terminals are copied, never rewritten) and is
// almost certainly a construction bug, so it is rejected loudly.
// Usage: if errors.Is(err, ErrTerminalLHS) { /* lhs must be non-terminal */ }.
var ErrTerminalLHS = errors.New("grammar: rule lhs is a terminal")

// ErrIncomplete indicates that some non-terminal reachable from the start
// symbol has no matching rule. Expanding it would leave the weighted
// selector with an empty candidate list and a zero weight sum, so the
// defect is reported here, before any expansion runs.
// Usage: if errors.Is(err, ErrIncomplete) { /* add a rule for the symbol */ }.
var ErrIncomplete = errors.New("grammar: reachable non-terminal has no rules")
