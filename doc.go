// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xchg provides a low-latency, in-process, multi-producer/
// multi-consumer message-passing primitive built on a lock-free
// fixed-capacity ring buffer of typed, fixed-size message slots.
//
// It targets threads pinned to separate cores that need to exchange
// fixed-layout records with bounded latency and without kernel
// synchronization: high-frequency trading pipelines, real-time
// telemetry, simulation meshes.
//
// # Quick Start
//
// Create an Inbox parameterized by the message type, then write and
// read from separate goroutines:
//
//	ib, err := xchg.NewInbox[Tick](1024, "ticks")
//	if err != nil {
//	    // capacity not even, or name empty
//	}
//
//	// Producer
//	t := Tick{Price: 101, Size: 5}
//	if ok := ib.TryWrite(&t); !ok {
//	    // inbox full for the slot this producer targets
//	}
//
//	// Consumer
//	var out Tick
//	if ok := ib.TryRead(&out); ok {
//	    process(out)
//	}
//
// # Operation Variants
//
// Six operations cover the two roles (producer, consumer), the two
// waiting styles (non-blocking, spinning), and, for consumers, the two
// sharing modes (single, shared):
//
//	TryWrite / WriteSpin             - producer (TryWrite single-producer only*)
//	TryRead / ReadSpin                - consumer, single-consumer only
//	TryReadShared / ReadSharedSpin    - consumer, safe for multiple consumers
//
// *TryWrite does not advance the producer counter on failure, so it is
// only safe with exactly one producer goroutine per Inbox. WriteSpin
// reserves a ticket unconditionally before spinning, which is what makes
// it safe with multiple concurrent producers. There is no non-blocking
// shared-producer write in this surface: callers needing multi-producer
// semantics with immediate backpressure feedback use WriteSpin from a
// bounded number of producer goroutines instead (see DESIGN.md's Open
// Question notes on this asymmetry).
//
// Mixing the shared and non-shared consumer operations on the same
// Inbox is undefined: the non-shared operations never touch the
// sharedLocked flag, so a shared reader and a non-shared reader can both
// observe the same slot as ready and both think they drained it.
//
// # Producer-Consumer Pipeline (single producer, single consumer)
//
//	ib, _ := xchg.NewInbox[Event](1024, "pipeline")
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for ev := range input {
//	        for !ib.TryWrite(&ev) {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    var out Event
//	    for {
//	        if !ib.TryRead(&out) {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(out)
//	    }
//	}()
//
// # Worker Pool (shared producers, shared consumers)
//
//	ib, _ := xchg.NewInbox[Job](4096, "jobs")
//
//	// Submitters (call WriteSpin from many goroutines; this is safe
//	// because ticket allocation is atomic)
//	func Submit(j Job) { ib.WriteSpin(&j) }
//
//	// Workers (shared consumers)
//	for range numWorkers {
//	    go func() {
//	        var job Job
//	        for {
//	            ib.ReadSharedSpin(&job)
//	            job.Run()
//	        }
//	    }()
//	}
//
// # Node and Broadcast
//
// A Node bundles named inboxes and lets a single producer fan a message
// out to all of them, blocking until every inbox has accepted it:
//
//	a, _ := xchg.NewInbox[Event](64, "a")
//	b, _ := xchg.NewInbox[Event](64, "b")
//	c, _ := xchg.NewInbox[Event](64, "c")
//	node, err := xchg.NewNode("fanout", []*xchg.Inbox[Event]{a, b, c})
//	if err != nil {
//	    // duplicate reference, nil reference, or zero inboxes
//	}
//
//	ev := Event{Kind: "shutdown"}
//	node.Broadcast(&ev) // every inbox receives ev, in list order
//
//	if target, ok := node.SelectInbox("b"); ok {
//	    var out Event
//	    target.ReadSpin(&out)
//	}
//
// # Fast Modulo
//
// Every read and write maps a monotonically increasing 64-bit counter to
// a slot index using Lemire's "Faster Remainder by Direct Computation": a
// precomputed reciprocal constant and a 128-bit widening multiply,
// branch-free, computed once per operation. Capacity need not be a power
// of two — it must only be non-zero and even.
//
// # Ordering Guarantees
//
// A write that returns true (TryWrite) or returns (WriteSpin) happens-
// before the matching read that returns true/returns — the ready flag's
// release/acquire pair publishes the payload. There is no inter-slot
// ordering: the ready flag covers exactly the payload of its own slot.
// Producer and consumer counters are observable only as ticket counters
// assigning a unique slot per spinning-variant call; their absolute
// values are not otherwise meaningful to callers.
//
// # Debug Reporting
//
// Construction failures in NewInbox and NewNode emit a tagged, human-
// readable reason through the package's Reporter hook in addition to
// returning an error. The default Reporter is a no-op unless the binary
// is built with the xchgdebug tag (in which case reasons print to
// standard output) or a caller installs its own with SetReporter.
//
// # Non-Goals
//
// Dynamic resizing, persistence, cross-process transport, per-message
// priorities, variable-length messages, fairness guarantees between
// competing producers or consumers, and waking waiters via OS primitives
// are all explicitly out of scope — the spinning variants busy-wait,
// they do not block on a futex or condition variable.
//
// Thread creation, CPU affinity, command-line tooling, statistics
// reporting, and example programs are external collaborators, not part
// of this package.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions in the spinning variants, and [code.hybscloud.com/iox]
// for the Backoff helper callers use to retry the non-blocking variants
// shown above.
package xchg
