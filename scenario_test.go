// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// This file contains the end-to-end scenarios from spec.md §8 (S1-S6).
// Message counts are scaled down from the spec's 1,000,000 to keep the
// suite fast; the invariants checked are identical. The shared-consumer
// tests (S5, S6) skip themselves under the race detector: the detector
// cannot observe
// happens-before relationships established through atomix's
// acquire/release orderings and reports false positives on them, the
// same reason the teacher's correctness_test.go guards its concurrent
// subtests with RaceEnabled rather than excluding the whole file.
package xchg_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.ringforge.dev/xchg"
)

const scenarioN = 20_000

type arith struct {
	A, B, Sum int64
}

type arithProduct struct {
	A, B, Sum, Product int64
}

// TestScenarioS1SingleProducerSingleConsumerSpinning: C=4, spinning
// write/read, consumer asserts Sum == A+B on every message.
func TestScenarioS1SingleProducerSingleConsumerSpinning(t *testing.T) {
	ib, err := xchg.NewInbox[arith](4, "s1")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := int64(0); i < scenarioN; i++ {
			v := arith{A: i, B: i * 3, Sum: i + i*3}
			ib.WriteSpin(&v)
		}
	}()

	go func() {
		defer wg.Done()
		for i := int64(0); i < scenarioN; i++ {
			var out arith
			ib.ReadSpin(&out)
			if out.Sum != out.A+out.B {
				t.Errorf("message %d: %+v violates Sum == A+B", i, out)
			}
		}
	}()

	wg.Wait()
}

// TestScenarioS2TranslatorPipeline: two writers feed inbox 1, a
// translator reads inbox 1 and writes inbox 2 (converting a sum-only
// message into a sum+product message), one consumer drains inbox 2.
func TestScenarioS2TranslatorPipeline(t *testing.T) {
	in, err := xchg.NewInbox[arith](4, "s2-in")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}
	out, err := xchg.NewInbox[arithProduct](4, "s2-out")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}

	const perProducer = scenarioN
	var producers sync.WaitGroup
	producers.Add(2)
	for p := 0; p < 2; p++ {
		go func(base int64) {
			defer producers.Done()
			for i := int64(0); i < perProducer; i++ {
				v := arith{A: base + i, B: i, Sum: base + i + i}
				in.WriteSpin(&v)
			}
		}(int64(p) * 1_000_000)
	}

	var translator sync.WaitGroup
	translator.Add(1)
	go func() {
		defer translator.Done()
		for i := int64(0); i < 2*perProducer; i++ {
			var v arith
			in.ReadSpin(&v)
			ov := arithProduct{A: v.A, B: v.B, Sum: v.Sum, Product: v.A * v.B}
			out.WriteSpin(&ov)
		}
	}()

	var seen int64
	for i := int64(0); i < 2*perProducer; i++ {
		var ov arithProduct
		out.ReadSpin(&ov)
		if ov.Sum != ov.A+ov.B {
			t.Fatalf("message %d: Sum invariant violated: %+v", i, ov)
		}
		if ov.Product != ov.A*ov.B {
			t.Fatalf("message %d: Product invariant violated: %+v", i, ov)
		}
		seen++
	}

	producers.Wait()
	translator.Wait()
	if seen != 2*perProducer {
		t.Fatalf("seen %d messages, want %d", seen, 2*perProducer)
	}
}

// TestScenarioS3BidirectionalNonBlocking: two threads each act as
// producer+consumer on two inboxes, using the non-blocking variants with
// a retry loop, exchanging messages in both directions.
func TestScenarioS3BidirectionalNonBlocking(t *testing.T) {
	ab, err := xchg.NewInbox[arith](4, "s3-ab")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}
	ba, err := xchg.NewInbox[arith](4, "s3-ba")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}

	const n = scenarioN
	var wg sync.WaitGroup
	wg.Add(2)

	run := func(send, recv *xchg.Inbox[arith], base int64) {
		defer wg.Done()
		sent, received := 0, 0
		pending := arith{A: base, B: 0, Sum: base}
		haveReady := true
		var out arith
		for sent < n || received < n {
			if sent < n {
				if !haveReady {
					pending = arith{A: base, B: int64(sent), Sum: base + int64(sent)}
					haveReady = true
				}
				if send.TryWrite(&pending) {
					sent++
					haveReady = false
				}
			}
			if received < n {
				if recv.TryRead(&out) {
					if out.Sum != out.A+out.B {
						t.Errorf("received message violates Sum == A+B: %+v", out)
					}
					received++
				}
			}
		}
	}

	go run(ab, ba, 1)
	go run(ba, ab, 2)
	wg.Wait()
}

// TestScenarioS4BroadcastMultiConsumer lives in node_test.go as
// TestBroadcast (same scenario, same invariant: identical k-th payload
// across every consumer).

// TestScenarioS5SharedConsumersNonBlocking: 3 producers x 3 shared
// consumers, non-blocking shared reads; sum of consumer counts equals
// 3*N and every consumer count is positive.
func TestScenarioS5SharedConsumersNonBlocking(t *testing.T) {
	if xchg.RaceEnabled {
		t.Skip("shared-consumer contention is excluded under the race detector")
	}

	ib, err := xchg.NewInbox[int](4, "s5")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}

	const producers = 3
	const consumers = 3
	const perProducer = scenarioN
	const total = producers * perProducer

	var produced sync.WaitGroup
	produced.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer produced.Done()
			for i := 0; i < perProducer; i++ {
				v := i
				ib.WriteSpin(&v)
			}
		}()
	}

	var readTotal int64
	counts := make([]int64, consumers)
	var drained sync.WaitGroup
	drained.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func(idx int) {
			defer drained.Done()
			var out int
			var local int64
			for atomic.LoadInt64(&readTotal) < total {
				if ib.TryReadShared(&out) {
					local++
					atomic.AddInt64(&readTotal, 1)
				}
			}
			counts[idx] = local
		}(c)
	}

	produced.Wait()
	drained.Wait()

	var sum int64
	for _, c := range counts {
		sum += c
		if c == 0 {
			t.Error("expected every consumer to read at least one message")
		}
	}
	if sum != total {
		t.Fatalf("sum of consumer counts = %d, want %d", sum, total)
	}
}

// TestScenarioS6SharedConsumersSpinning: 1 producer x 2 shared
// consumers; the last message is flagged, and the first consumer to see
// it re-writes it so the other consumer's ReadSharedSpin can also
// observe it and exit. Total reads is N or N+1; every consumer reads
// at least one message.
func TestScenarioS6SharedConsumersSpinning(t *testing.T) {
	if xchg.RaceEnabled {
		t.Skip("shared-consumer contention is excluded under the race detector")
	}

	type msg struct {
		Value int
		Last  bool
	}

	ib, err := xchg.NewInbox[msg](8, "s6")
	if err != nil {
		t.Fatalf("NewInbox: %v", err)
	}

	const n = scenarioN
	go func() {
		for i := 0; i < n; i++ {
			v := msg{Value: i, Last: i == n-1}
			ib.WriteSpin(&v)
		}
	}()

	counts := make([]int64, 2)
	var rewritten int32
	var wg sync.WaitGroup
	wg.Add(2)
	for c := 0; c < 2; c++ {
		go func(idx int) {
			defer wg.Done()
			var local int64
			for {
				var out msg
				ib.ReadSharedSpin(&out)
				local++
				if out.Last {
					if atomic.CompareAndSwapInt32(&rewritten, 0, 1) {
						// Re-write the flagged message so the other
						// consumer also observes Last and can exit.
						v := out
						ib.WriteSpin(&v)
					}
					counts[idx] = local
					return
				}
			}
		}(c)
	}
	wg.Wait()

	total := counts[0] + counts[1]
	if total != n && total != n+1 {
		t.Fatalf("total reads = %d, want %d or %d", total, n, n+1)
	}
	if counts[0] == 0 || counts[1] == 0 {
		t.Fatalf("expected both consumers to read at least one message, got %v", counts)
	}
}
