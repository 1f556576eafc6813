// Package grammar defines the static model of a weighted context-free
// grammar: Symbol (terminal or non-terminal), Rule (one lhs, an ordered
// rhs, a positive integer weight) and Grammar (an ordered rule collection
// plus a designated start symbol).
//
// Identity, not names:
//
//	Symbols are compared by identity. Two calls to Terminal("a") produce
//	two distinct symbols even though they carry the same literal text;
//	rule matching, reachability analysis and expansion all key on the
//	*Symbol pointer. Declare each symbol once and reuse it everywhere.
//
// Ordering is part of the contract:
//
//	RulesFor(s) returns the rules whose lhs is s in their original
//	declaration order. The weighted selector in cxgram/expand assigns
//	cumulative buckets in exactly that order, so declaration order is
//	load-bearing for which rule a given draw picks.
//
// Validation happens at construction:
//
//	New rejects nil symbols, non-positive weights, rules headed by a
//	terminal, and grammars in which a non-terminal reachable from the
//	start symbol has no rule at all. A *Grammar that New returns is
//	therefore complete: every expansion the engine can reach has at
//	least one candidate rule. Grammars are immutable afterwards and safe
//	for concurrent readers.
//
// Typical construction:
//
//	s := grammar.Nonterminal("S")
//	a := grammar.Terminal("a")
//	b := grammar.Terminal("b")
//	g, err := grammar.New(s,
//		grammar.NewWeightedRule(3, s, a, s),
//		grammar.NewRule(s, b),
//	)
//
// Errors:
//   - ErrNilStart    — New(nil, ...)
//   - ErrNilSymbol   — a nil lhs or a nil rhs entry
//   - ErrBadWeight   — a rule weight < 1
//   - ErrTerminalLHS — a rule headed by a terminal symbol
//   - ErrIncomplete  — a reachable non-terminal with zero rules
package grammar
