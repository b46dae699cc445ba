// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spsc provides a wait-free single-producer/single-consumer ring
// buffer engine with four container shapes and four interchangeable
// counter backends.
//
// The engine is a single algorithm (one producer goroutine advancing a
// head index, one consumer goroutine advancing a tail index, release/
// acquire handshakes between them) exposed through four containers:
//
//   - Fifo / FifoView: a ring of values of any type T.
//   - Pool / PoolView: a ring of pointers to equal-size opaque byte
//     buffers, for carrying payloads without touching any constructor.
//
// The *View variants attach to externally-owned storage instead of
// allocating their own, for placing a ring over shared memory or a
// caller-managed arena.
//
// # Quick Start
//
// Direct constructors select one of the four standard counter backends:
//
//	q := spsc.NewFifoAtomic[Event](1024)      // default: two goroutines
//	q := spsc.NewFifoPlain[Event](1024)       // single goroutine only
//	q := spsc.NewPoolAtomic(1024, 256)        // 1024 slots of 256 bytes
//
// # Basic Usage
//
//	q := spsc.NewFifoAtomic[int](1024)
//
//	// Producer goroutine
//	if !q.TryPush(42) {
//	    // ring full - handle backpressure
//	}
//
//	// Consumer goroutine
//	v, ok := q.TryPop()
//	if !ok {
//	    // ring empty - try again later
//	}
//
// # Common Patterns
//
// Pipeline stage, value ring:
//
//	q := spsc.NewFifoAtomic[Data](1024)
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for !q.TryPush(data) {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, ok := q.TryPop()
//	        if !ok {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Opaque payload ring, fixed-size buffers:
//
//	p := spsc.NewPoolAtomic(1024, 256) // 1024 slots, 256 bytes each
//
//	// Producer copies a message into the next slot
//	if !p.TryPush(encode(msg)) {
//	    // ring full
//	}
//
//	// Consumer reads the payload back out, typed
//	var hdr MessageHeader
//	if spsc.PoolTryPeek(p, &hdr) {
//	    p.PopN(1)
//	}
//
// Bulk transfer with the region calculator, avoiding a claim per
// element:
//
//	claim := q.ClaimWrite(64)
//	for i := uint64(0); i < claim.Total; i++ {
//	    // write element i at claim.PhysicalIndex(i)
//	}
//	q.Publish(claim.Total)
//
// Scoped guards for RAII-style claim/commit/cancel:
//
//	g := q.ScopedWrite()
//	if g.Ok() {
//	    *g.Get() = value
//	    g.Close() // publishes, since Get armed it
//	}
//
// # Counter Backends
//
// Four standard policies are available as both generic aliases and
// direct constructors:
//
//	Plain    - bare integer, single goroutine or externally synchronized
//	Volatile - torn-word-safe loads/stores, no cross-goroutine ordering;
//	           debugging and single-stepping only
//	Atomic   - the default: full acquire/release handshake
//	Padded   - Atomic plus cache-line padding, for high-throughput rings
//
// Selecting a backend other than Atomic for concurrent producer/consumer
// use is a contract violation, not a runtime-checked error.
//
// # Error Handling
//
// Following the engine's own taxonomy, there is no single error type:
//
//   - Un-prefixed operations (Push, Pop, Claim, Publish, At, ...) panic
//     on a precondition violation (full/empty/out-of-range). These
//     indicate a caller bug and are never meant to be recovered locally.
//   - Try-prefixed operations return false (or nil, or a nil/false pair)
//     on capacity exhaustion or emptiness, leaving ring state unchanged.
//   - Snapshot consumption follows the same split: TryConsume returns
//     false on any validation failure; Consume panics.
//   - Initialization failures (a capacity that rounds past
//     RBMaxUnambiguous, a zero-length view attachment, a serialized
//     head/tail pair that violates head-tail <= capacity) leave the
//     ring in the detached state, observable via IsValid() == false.
//
//	backoff := iox.Backoff{}
//	for !q.TryPush(item) {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Capacity and Length
//
// Capacity rounds up to the next power of two:
//
//	q := spsc.NewFifoAtomic[int](3)     // actual capacity: 4
//	q := spsc.NewFifoAtomic[int](1000)  // actual capacity: 1024
//
// Minimum capacity is 2. Panics if capacity < 2.
//
// Size() is exact for this engine — unlike multi-producer/multi-consumer
// algorithms, a single producer and single consumer give Size() a
// well-defined, race-free value at the instant either role reads it.
//
// # Thread Safety
//
// Exactly one producer goroutine and one consumer goroutine may operate
// on a ring concurrently; neither may be further parallelized. A second
// goroutine calling any producer method, or a second calling any
// consumer method, is a contract violation with undefined results.
// Non-concurrent operations (Clear, Destroy, Swap, Resize, Attach,
// Detach, Adopt, Move) require both roles to be quiescent.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but not the acquire/release orderings on
// [code.hybscloud.com/atomix] counters this engine relies on for its
// single happens-before edge in each direction. Concurrent tests that
// would trip false positives are gated by [RaceEnabled] and skipped
// under `-race`.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering. Tests additionally use
// [code.hybscloud.com/iox] for its retry-with-backoff helper.
package spsc
