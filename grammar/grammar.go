// Package grammar: Grammar assembly and rule lookup. See doc.go for the
// package-level contract.
package grammar

// Grammar is an ordered collection of weighted rules plus a designated
// start symbol. Alongside the ordered rule list it keeps an
// identity-keyed index (lhs → rule positions) so that per-symbol lookup
// is O(1) while declaration order is preserved exactly.
//
// A Grammar is immutable once New returns and safe for concurrent
// readers; independent expansions may share one Grammar freely.
type Grammar struct {
	start *Symbol
	rules []Rule

	// index maps each lhs symbol to the positions of its rules within
	// rules, in declaration order. Keyed by pointer: symbol identity,
	// never symbol name.
	index map[*Symbol][]int
}

// New assembles a Grammar from a start symbol and rules, preserving the
// given rule order. It validates the whole structure before returning:
// nil symbols, weights < 1 and terminal-headed rules are rejected, and a
// reachability pass confirms that every non-terminal the start symbol can
// ever produce has at least one rule (see validate.go).
//
// Complexity: O(R·L + N) for R rules of max rhs length L and N reachable
// non-terminals.
func New(start *Symbol, rules ...Rule) (*Grammar, error) {
	if start == nil {
		return nil, ErrNilStart
	}

	g := &Grammar{
		start: start,
		rules: make([]Rule, len(rules)),
		index: make(map[*Symbol][]int, len(rules)),
	}
	copy(g.rules, rules)

	if err := g.validateRules(); err != nil {
		return nil, err
	}

	for i, r := range g.rules {
		g.index[r.lhs] = append(g.index[r.lhs], i)
	}

	if err := g.checkComplete(); err != nil {
		return nil, err
	}

	return g, nil
}

// Start returns the designated start symbol.
func (g *Grammar) Start() *Symbol { return g.start }

// RuleCount returns the number of rules in the grammar.
func (g *Grammar) RuleCount() int { return len(g.rules) }

// Rules returns a copy of the full rule list in declaration order.
func (g *Grammar) Rules() []Rule {
	cp := make([]Rule, len(g.rules))
	copy(cp, g.rules)

	return cp
}

// RulesFor returns the rules whose lhs is exactly s (pointer identity),
// in their original declaration order, or nil when none match. The order
// is load-bearing: the weighted selector assigns cumulative buckets in
// this order. Pure lookup, no side effects.
//
// Complexity: O(k) for k matching rules.
func (g *Grammar) RulesFor(s *Symbol) []Rule {
	idxs := g.index[s]
	if len(idxs) == 0 {
		return nil
	}

	out := make([]Rule, len(idxs))
	for i, ri := range idxs {
		out[i] = g.rules[ri]
	}

	return out
}
