// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

import "math/bits"

// reciprocal computes Lemire's precomputed constant
// K = floor((2^64-1)/C) + 1, that is ceil(2^64/C), for a capacity C. Callers must ensure capacity is non-zero; NewInbox
// validates this before calling reciprocal.
//
// Reference: D. Lemire, O. Kaser, N. Kurz, "Faster Remainder by Direct
// Computation: Applications to Compilers and Software Libraries",
// Software: Practice and Experience, 2019.
func reciprocal(capacity uint64) uint64 {
	return (^uint64(0))/capacity + 1
}

// fastMod maps a monotonically increasing counter c to a slot index in
// [0, capacity) using the precomputed reciprocal K, without a division
// instruction. It is invoked on every Inbox read and write (spec.md
// §4.1). It agrees with c % capacity for c drawn from the counter space
// an Inbox actually produces; it is not exact all the way up to
// 2^64-1, since K itself is truncated to 64 bits. spec.md §3 assumes
// 64-bit wrap-around of P/Q is impossible under realistic runtimes, so
// this is the counter domain the function needs to serve, not the full
// mathematical range.
func fastMod(c, capacity, k uint64) uint64 {
	lo := mulLow64(k, c)
	idx, _ := bits.Mul64(lo, capacity)
	return idx
}

// mulLow64 returns the low 64 bits of k*c mod 2^64 (this is just
// unsigned 64-bit multiplication, which already wraps); split out as a
// named step so fastMod reads as the two-multiply algorithm from the
// paper rather than as opaque arithmetic.
func mulLow64(k, c uint64) uint64 {
	return k * c
}
