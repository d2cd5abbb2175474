// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

// pad is cache line padding to prevent false sharing between fields that
// distinct parties mutate independently (see spec.md §4.2: producer
// counter, consumer counter, and the immutable block each get their own
// cache line).
type pad [64]byte

// slotPad cushions a slot's header flags from its payload so that a
// consumer spinning on the flags doesn't false-share the cache line with
// a producer still copying a large payload. The reference implementation
// does not round slot stride to a cache-line multiple; this is the
// documented tunable from spec.md §4.2, sized generously rather than to
// an exact remainder since payload size varies per instantiation.
type slotPad [64]byte
