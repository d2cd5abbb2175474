// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Inbox is a fixed-capacity, lock-free MPMC ring buffer of typed,
// fixed-size message slots (spec.md §3 "Inbox"). There is no queue-wide
// lock: all coordination is per-slot, via the flag protocol in slot[T].
//
// Producer counter and consumer counter each own a cache line, separate
// from the immutable block below them, so that a producer spinning on
// its own counter never false-shares with a consumer spinning on its
// counter (spec.md §4.2).
//
// Capacity, message type, and the reciprocal constant used by the
// fast-modulo index computer are immutable after construction and may be
// read unsynchronized by any thread.
type Inbox[T any] struct {
	_        pad
	producer atomix.Uint64
	_        pad
	consumer atomix.Uint64
	_        pad
	capacity uint64
	k        uint64
	name     string
	slots    []slot[T]
}

// NewInbox allocates an Inbox with the given capacity and name.
// Capacity must be non-zero and even (spec.md §3); the reference
// algorithm does not additionally require a power of two.
//
// NewInbox returns an error (and, if a Reporter is active, emits a
// tagged diagnostic) when a precondition is violated:
//
//	capacity == 0 or capacity is odd -> ErrInvalidCapacity, "INBOX_INCORRECT_SIZE"
//	name == ""                       -> ErrEmptyName, "INBOX_EMPTY_NAME"
//
// Go's allocator panics rather than returning a null pointer on
// out-of-memory, so there is no reachable path corresponding to the
// reference surface's "allocation fails" precondition; see DESIGN.md.
func NewInbox[T any](capacity int, name string) (*Inbox[T], error) {
	if capacity <= 0 || capacity%2 != 0 {
		report("INBOX_INCORRECT_SIZE", fmt.Sprintf("capacity %d must be non-zero and even", capacity))
		return nil, ErrInvalidCapacity
	}
	if name == "" {
		report("INBOX_EMPTY_NAME", "inbox name must not be empty")
		return nil, ErrEmptyName
	}

	n := uint64(capacity)
	return &Inbox[T]{
		capacity: n,
		k:        reciprocal(n),
		name:     name,
		slots:    make([]slot[T], n),
	}, nil
}

// IsValid reports whether ib is a non-nil, constructed Inbox (spec.md
// §4.5's validity predicate: a pure null/sentinel check).
func (ib *Inbox[T]) IsValid() bool {
	return ib != nil
}

// Name returns the inbox's name.
func (ib *Inbox[T]) Name() string {
	return ib.name
}

// NameIs reports whether ib's name equals name.
func (ib *Inbox[T]) NameIs(name string) bool {
	return ib != nil && ib.name == name
}

// Cap returns the inbox's capacity.
func (ib *Inbox[T]) Cap() int {
	return int(ib.capacity)
}

// Len returns an approximate count of occupied slots: producer ticket
// count minus consumer ticket count, both loaded relaxed. This is a
// snapshot, not a guarantee — the inbox has no queue-wide lock, so the
// true occupancy may change before the caller observes the result
// (spec.md §5, "P and Q are observable only as ticket counters").
func (ib *Inbox[T]) Len() int {
	p := ib.producer.LoadRelaxed()
	c := ib.consumer.LoadRelaxed()
	return int(p - c)
}

// Destroy releases the inbox's slot storage and name (spec.md §6
// destroy_inbox). Go's garbage collector reclaims the backing array once
// unreferenced; Destroy exists to make that release explicit and to turn
// any use-after-destroy by a lagging thread into an immediate, loud
// failure (index out of range) rather than a silent read of stale data.
//
// The caller must ensure no thread still references ib when Destroy is
// called (spec.md §5, "Freeing an inbox while any thread still
// references it").
func (ib *Inbox[T]) Destroy() {
	ib.slots = nil
	ib.name = ""
}

// String renders a short diagnostic summary: name, capacity, and an
// approximate occupancy snapshot (see Len).
func (ib *Inbox[T]) String() string {
	if ib == nil {
		return "xchg.Inbox(nil)"
	}
	return fmt.Sprintf("xchg.Inbox{name:%q cap:%d len:%d}", ib.name, ib.Cap(), ib.Len())
}

// TryWrite is the non-blocking single-producer write (spec.md §4.3.1).
//
// It claims the slot addressed by the current producer counter without
// advancing the counter on failure: repeated failed attempts keep
// targeting the same slot until a consumer frees it, giving prompt
// failure feedback for hit-ratio measurement. Using TryWrite with
// multiple concurrent producers on the same Inbox is undefined: two
// producers may observe the same index and only one will succeed, with
// no guarantee which.
func (ib *Inbox[T]) TryWrite(payload *T) bool {
	c := ib.producer.LoadRelaxed()
	s := &ib.slots[fastMod(c, ib.capacity, ib.k)]

	if !s.occupied.CompareAndSwapAcqRel(false, true) {
		return false
	}

	s.payload = *payload
	ib.producer.StoreRelease(c + 1)
	s.ready.StoreRelease(true)
	return true
}

// WriteSpin is the spinning single-producer write (spec.md §4.3.2).
//
// Unlike TryWrite, WriteSpin reserves exactly one monotonically
// increasing ticket by incrementing the producer counter unconditionally
// before it knows whether the target slot is free, then spins on that
// specific slot. Ticket allocation being atomic is what permits multiple
// concurrent producers to call WriteSpin on the same Inbox safely; it
// does not by itself coordinate with non-shared consumers claiming
// beyond outstanding capacity — see spec.md §5's hazards.
func (ib *Inbox[T]) WriteSpin(payload *T) {
	c := ib.producer.AddAcqRel(1) - 1
	s := &ib.slots[fastMod(c, ib.capacity, ib.k)]

	var sw spin.Wait
	for !s.occupied.CompareAndSwapAcqRel(false, true) {
		sw.Once()
	}

	s.payload = *payload
	s.ready.StoreRelease(true)
}

// TryRead is the non-blocking single-consumer read (spec.md §4.3.5).
//
// The double check (occupied then ready) exists because a producer may
// have reserved the slot but not yet finished copying the payload; the
// reader must not consume a partially written slot. The ready acquire
// load pairs with the producer's ready release store, publishing the
// full payload to the reader.
func (ib *Inbox[T]) TryRead(out *T) bool {
	c := ib.consumer.LoadRelaxed()
	s := &ib.slots[fastMod(c, ib.capacity, ib.k)]

	if !s.occupied.LoadRelaxed() {
		return false
	}
	if !s.ready.LoadAcquire() {
		return false
	}

	*out = s.payload
	s.ready.StoreRelaxed(false)
	s.occupied.StoreRelease(false)
	ib.consumer.StoreRelease(c + 1)
	return true
}

// ReadSpin is the spinning single-consumer read (spec.md §4.3.6). It
// reserves a ticket unconditionally, then spins on that slot until a
// producer has both occupied and published it.
func (ib *Inbox[T]) ReadSpin(out *T) {
	c := ib.consumer.AddAcqRel(1) - 1
	s := &ib.slots[fastMod(c, ib.capacity, ib.k)]

	var sw spin.Wait
	for {
		if s.occupied.LoadRelaxed() && s.ready.LoadAcquire() {
			break
		}
		sw.Once()
	}

	*out = s.payload
	s.ready.StoreRelaxed(false)
	s.occupied.StoreRelease(false)
}

// TryReadShared is the non-blocking shared-consumer read (spec.md
// §4.3.7). It adds the per-slot sharedLocked mutual-exclusion flag to
// serialize competing consumers that land on the same slot; the
// consumer counter only advances inside that lock, guaranteeing
// at-most-one consumer drains any given slot occurrence. A consumer that
// loses the CAS on sharedLocked returns immediately so the caller can
// retry or yield.
func (ib *Inbox[T]) TryReadShared(out *T) bool {
	c := ib.consumer.LoadRelaxed()
	s := &ib.slots[fastMod(c, ib.capacity, ib.k)]

	if !s.sharedLocked.CompareAndSwapAcqRel(false, true) {
		return false
	}

	if !s.occupied.LoadRelaxed() || !s.ready.LoadAcquire() {
		s.sharedLocked.StoreRelease(false)
		return false
	}

	*out = s.payload
	ib.consumer.StoreRelease(c + 1)
	s.ready.StoreRelaxed(false)
	s.occupied.StoreRelease(false)
	s.sharedLocked.StoreRelease(false)
	return true
}

// ReadSharedSpin is the spinning shared-consumer read (spec.md §4.3.8):
// a busy-loop wrapper around TryReadShared that retries, with a CPU
// relax hint between attempts, until it drains one slot.
func (ib *Inbox[T]) ReadSharedSpin(out *T) {
	var sw spin.Wait
	for !ib.TryReadShared(out) {
		sw.Once()
	}
}
