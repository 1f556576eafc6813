// Package expand: options, results and error definitions for the
// expansion engine. See doc.go for the package-level contract.
package expand

import (
	"errors"

	"github.com/brianlheim/cxgram/grammar"
)

// Sentinel errors for expansion.
var (
	// ErrNilGrammar is returned if a nil grammar pointer is passed.
	ErrNilGrammar = errors.New("expand: grammar is nil")

	// ErrNoRules is returned when a non-terminal under expansion has an
	// empty candidate list. The weight sum would be zero and the bucket
	// modulo undefined, so the condition is reported before any
	// arithmetic. grammar.New rejects such grammars up front; this guard
	// keeps hand-assembled rule slices honest too.
	ErrNoRules = errors.New("expand: no rules for non-terminal")

	// ErrFormOverflow is returned under WithStrictBounds when the form
	// width bound trips. Without strict bounds the same condition is
	// reported via Result.Truncated instead.
	ErrFormOverflow = errors.New("expand: sentential form exceeded width bound")

	// ErrRoundLimit is returned under WithStrictBounds when the round cap
	// set by WithMaxRounds is reached before the form is all-terminal.
	ErrRoundLimit = errors.New("expand: round limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("expand: invalid option supplied")
)

// DefaultMaxFormWidth is the default form width bound: a round that
// starts with more symbols than this is the last round.
const DefaultMaxFormWidth = 100

// Option configures expansion behavior via functional arguments.
// If an Option is invalid (e.g. non-positive width), it is recorded
// internally and surfaced as ErrOptionViolation when Expand is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize an expansion.
type Options struct {
	// MaxFormWidth is the form width bound, checked once per round
	// against the round's starting size. Must be ≥ 1.
	MaxFormWidth int

	// MaxRounds, if > 0, stops expansion after this many rounds.
	// A value of 0 explicitly disables the round cap.
	MaxRounds int

	// StrictBounds turns a tripped bound into an error (ErrFormOverflow
	// or ErrRoundLimit) instead of a truncated, leaking Result.
	StrictBounds bool

	// OnRound is called after each completed round with the 1-based
	// round number and the new sentential form. The form must be treated
	// as read-only.
	OnRound func(round int, form []*grammar.Symbol)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - MaxFormWidth = DefaultMaxFormWidth (100)
//   - no round cap (MaxRounds == 0)
//   - compatible truncate-and-leak bounds (StrictBounds == false)
//   - no-op OnRound hook.
func DefaultOptions() Options {
	return Options{
		MaxFormWidth: DefaultMaxFormWidth,
		MaxRounds:    0,
		StrictBounds: false,
		OnRound:      func(int, []*grammar.Symbol) {},
		err:          nil,
	}
}

// WithMaxFormWidth overrides the form width bound. Values < 1 are
// recorded and surfaced as ErrOptionViolation.
func WithMaxFormWidth(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxFormWidth = n
	}
}

// WithMaxRounds caps the number of expansion rounds; 0 disables the cap.
// Negative values are recorded and surfaced as ErrOptionViolation.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxRounds = n
	}
}

// WithStrictBounds makes a tripped bound an error instead of a
// truncated result.
func WithStrictBounds() Option {
	return func(o *Options) {
		o.StrictBounds = true
	}
}

// WithOnRound registers a callback to run after each round.
func WithOnRound(fn func(round int, form []*grammar.Symbol)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// Result reports one finished expansion.
type Result struct {
	// Output is the serialized final form: the concatenation of each
	// symbol's literal text, in order, with no separators.
	Output string

	// Form is the final sentential form. All-terminal unless Truncated.
	// Treat as read-only.
	Form []*grammar.Symbol

	// Rounds is the number of full scans performed.
	Rounds int

	// Truncated reports that a bound stopped expansion while
	// non-terminals remained; their names leak into Output.
	Truncated bool
}
