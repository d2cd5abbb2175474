// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

import "errors"

// Construction errors (spec.md §4.5, §7). These are the only error paths
// in the package: contention outcomes from the try_* operations are
// plain booleans (§4.3.9), never errors, and spinning operations do not
// return until they complete.
var (
	// ErrInvalidCapacity is returned by NewInbox when capacity is zero,
	// negative, or odd.
	ErrInvalidCapacity = errors.New("xchg: capacity must be non-zero and even")

	// ErrEmptyName is returned by NewInbox and NewNode when name is "".
	ErrEmptyName = errors.New("xchg: name must not be empty")

	// ErrNoInboxes is returned by NewNode when given zero inboxes.
	ErrNoInboxes = errors.New("xchg: node requires at least one inbox")

	// ErrNilInbox is returned by NewNode when any referenced inbox is nil.
	ErrNilInbox = errors.New("xchg: node inbox reference is nil")

	// ErrDuplicateInbox is returned by NewNode when the same inbox
	// reference appears more than once in the ordered list.
	ErrDuplicateInbox = errors.New("xchg: node contains duplicate inbox reference")
)
