package xorshift

// Next advances a 64-bit xorshift state by one step. It is a pure
// function of its argument; callers thread the returned value forward.
// Complexity: O(1), three shift-xor pairs.
func Next(s uint64) uint64 {
	s ^= s << 13
	s ^= s >> 7
	s ^= s >> 17

	return s
}

// Source is a stateful convenience wrapper over Next for callers that
// prefer a handle to explicit state threading. Not safe for concurrent
// use; give each goroutine its own Source.
type Source struct {
	state uint64
}

// NewSource returns a Source seeded with the given state. A zero seed is
// legal but degenerate (see the package doc).
func NewSource(seed uint64) *Source {
	return &Source{state: seed}
}

// State returns the current state without advancing it. This is the
// value an expansion decision would consume.
func (s *Source) State() uint64 { return s.state }

// Next advances the source one step and returns the new state.
func (s *Source) Next() uint64 {
	s.state = Next(s.state)

	return s.state
}
