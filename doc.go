// Package cxgram is a deterministic, weighted context-free-grammar
// expansion engine: declare symbols and weighted production rules, pick a
// start symbol, feed in a seed, and get back a fully expanded string.
//
// 🚀 What is cxgram?
//
//	A small, pure-Go library that brings together:
//		• Symbol & rule model: identity-compared terminals and non-terminals
//		• Weighted rules: integer weights, cumulative-bucket selection
//		• Deterministic expansion: a 64-bit xorshift stream seeds every choice
//		• Safety bounds: form-width guard and an optional round cap
//		• Serialization: separator-free concatenation of terminal text
//
// ✨ Why choose cxgram?
//
//   - Reproducible – same grammar, start and seed ⇒ byte-identical output
//   - Pure – no I/O, no globals, no shared mutable state between calls
//   - Parallel-friendly – a Grammar is read-only after construction, so
//     concurrent expansions with different seeds need no locks
//   - Explicit errors – sentinel errors for every structural grammar defect
//
// Under the hood, everything is organized under three subpackages:
//
//	grammar/  — Symbol, Rule and Grammar types, construction & validation
//	xorshift/ — the 64-bit xorshift step driving every expansion decision
//	expand/   — weighted rule selection, the rewriting engine, serializer
//
// Quick example, a two-rule grammar:
//
//	    S → "a" S   (weight 3)
//	    S → "b"     (weight 1)
//
//	expands, for seed 1, through S → aS → aaS → aaaS → aaab.
//
//	go get github.com/brianlheim/cxgram
package cxgram
