// SPDX-License-Identifier: MIT
// Package: cxgram/expand
//
// serialize.go — final concatenation of a sentential form.

package expand

import (
	"strings"

	"github.com/brianlheim/cxgram/grammar"
)

// Serialize concatenates the literal text of every symbol in form, in
// order, with no separators. The output length is exactly the sum of the
// symbols' name lengths.
//
// The form is expected to be all-terminal. When a safety bound truncated
// expansion, any surviving non-terminal contributes its declared name —
// the historical truncate-and-leak behavior, reported (not corrected) via
// Result.Truncated; use WithStrictBounds to forbid it outright.
//
// Complexity: O(total output length), one allocation via Grow.
func Serialize(form []*grammar.Symbol) string {
	var n int
	for _, s := range form {
		n += len(s.Name())
	}

	var b strings.Builder
	b.Grow(n)
	for _, s := range form {
		b.WriteString(s.Name())
	}

	return b.String()
}
