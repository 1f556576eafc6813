// Package xorshift implements the fixed-width pseudo-random step that
// drives every expansion decision in cxgram.
//
// The transform is a 64-bit xorshift (shifts 13, 7, 17):
//
//	s ^= s << 13
//	s ^= s >> 7
//	s ^= s >> 17
//
// Width is pinned to 64 bits (uint64): the state is threaded value to
// value through an expansion, one Next per non-terminal decision, and the
// whole stream — hence the whole output — is reproducible from the seed.
//
// This is deliberately NOT a math/rand source. The engine's outputs are
// defined byte-for-byte in terms of this exact transform applied to the
// raw state, so substituting another generator would silently change
// every production. Do not use it where statistical quality or
// unpredictability matters.
//
// Caveat: zero is a fixed point. Next(0) == 0, so a zero seed yields a
// constant stream and every weighted selection lands in the first bucket.
// That is accepted, documented behavior, not an error.
package xorshift
