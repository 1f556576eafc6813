// Package grammar: Symbol and Rule value types. See doc.go for the
// package-level contract.
package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultWeight is the weight assigned by NewRule when none is specified.
const DefaultWeight = 1

// Symbol is a single grammar symbol. A terminal carries literal text that
// survives into the final output; a non-terminal is rewritten by rules
// until none remain. Symbols are immutable and compared by identity:
// the same *Symbol must be reused wherever the symbol is meant.
type Symbol struct {
	name     string
	terminal bool
}

// Terminal declares a new terminal symbol carrying the given literal text.
// Every call returns a distinct symbol, even for equal text.
func Terminal(name string) *Symbol {
	return &Symbol{name: name, terminal: true}
}

// Nonterminal declares a new non-terminal symbol. The name is used for
// diagnostics and, when a safety bound truncates expansion, as the literal
// text a leaked non-terminal contributes to the serialized output.
func Nonterminal(name string) *Symbol {
	return &Symbol{name: name}
}

// Name returns the symbol's literal text. For terminals this is the text
// concatenated into expansion output; for non-terminals it is a label.
func (s *Symbol) Name() string { return s.name }

// IsTerminal reports whether the symbol is a terminal.
func (s *Symbol) IsTerminal() bool { return s.terminal }

// String renders terminals quoted and non-terminals in angle brackets,
// e.g. "a" and <S>.
func (s *Symbol) String() string {
	if s.terminal {
		return strconv.Quote(s.name)
	}

	return "<" + s.name + ">"
}

// Rule is a single weighted production: lhs → rhs, where lhs is one
// non-terminal and rhs is an ordered (possibly empty) symbol sequence.
// Rules are immutable values; construct them with NewRule or
// NewWeightedRule and group them into a Grammar with New.
type Rule struct {
	lhs    *Symbol
	rhs    []*Symbol
	weight int
}

// NewRule constructs a rule with DefaultWeight (1).
func NewRule(lhs *Symbol, rhs ...*Symbol) Rule {
	return NewWeightedRule(DefaultWeight, lhs, rhs...)
}

// NewWeightedRule constructs a rule with an explicit weight. The rhs is
// copied, so the caller's slice may be reused. Weight validity (≥ 1) is
// enforced by New, where all structural checks live.
func NewWeightedRule(weight int, lhs *Symbol, rhs ...*Symbol) Rule {
	cp := make([]*Symbol, len(rhs))
	copy(cp, rhs)

	return Rule{lhs: lhs, rhs: cp, weight: weight}
}

// Lhs returns the rule's left-hand-side symbol.
func (r Rule) Lhs() *Symbol { return r.lhs }

// Rhs returns a copy of the rule's right-hand-side sequence, preserving
// order. The copy keeps rules immutable even if the caller mutates it.
func (r Rule) Rhs() []*Symbol {
	cp := make([]*Symbol, len(r.rhs))
	copy(cp, r.rhs)

	return cp
}

// RhsLen returns the number of symbols in the right-hand side.
func (r Rule) RhsLen() int { return len(r.rhs) }

// Weight returns the rule's selection weight.
func (r Rule) Weight() int { return r.weight }

// String renders the rule as "<S> -> "a" <S>", with the weight appended
// as "(w=N)" when it differs from DefaultWeight and ε for an empty rhs.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.lhs.String())
	b.WriteString(" -> ")
	if len(r.rhs) == 0 {
		b.WriteString("ε")
	} else {
		parts := make([]string, len(r.rhs))
		for i, s := range r.rhs {
			parts[i] = s.String()
		}
		b.WriteString(strings.Join(parts, " "))
	}
	if r.weight != DefaultWeight {
		fmt.Fprintf(&b, " (w=%d)", r.weight)
	}

	return b.String()
}
