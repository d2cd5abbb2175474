// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

import "code.hybscloud.com/atomix"

// slot is one ring cell (spec.md §3 "Slot header", §4.2). Three
// independent atomic booleans drive its lifecycle:
//
//	EMPTY -> (producer acquires) OCCUPIED
//	      -> (producer finishes copy) OCCUPIED+READY
//	      -> (consumer copies out) EMPTY
//
// sharedLocked is used only by the shared (multi-consumer) read
// operations (§4.3.7/§4.3.8); the non-shared operations never touch it.
// Mixing shared and non-shared operations on one Inbox races on this
// flag and is caller misuse, not a library-detected error (spec.md §5).
//
// The payload is stored inline as T, per spec.md §9's "typed rewrite"
// design note, rather than behind a pointer. Callers who want the
// reference surface's untyped, size-keyed byte payload instead of a
// domain type can instantiate Inbox[[N]byte] directly — a fixed-size Go
// array already serves as that escape hatch without a dedicated wrapper
// type.
type slot[T any] struct {
	occupied     atomix.Bool
	ready        atomix.Bool
	sharedLocked atomix.Bool
	_            slotPad
	payload      T
}
