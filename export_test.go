// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

// ExportFastMod exposes the package-private fast-modulo computer to the
// external xchg_test package so its correctness (spec.md §8 invariant 4)
// can be tested directly against the builtin % operator, without relying
// on Inbox's internal counters to reach every interesting value.
func ExportFastMod(c, capacity uint64) uint64 {
	return fastMod(c, capacity, reciprocal(capacity))
}
