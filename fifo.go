// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "unsafe"

// fifoCore holds the producer/consumer API shared by the owning Fifo and
// the non-owning FifoView (§4.7): both are thin adapters over the same
// ring core and slot slice, differing only in how storage is obtained
// and released. Embedding fifoCore promotes every method below onto
// both container types without duplicating the engine-facing logic.
type fifoCore[T any, C any, CP counterPtr[C]] struct {
	ring  ringCore[C, CP]
	slice []T
}

func (f *fifoCore[T, C, CP]) Cap() uint64   { return f.ring.capacity() }
func (f *fifoCore[T, C, CP]) Size() uint64  { return f.ring.size() }
func (f *fifoCore[T, C, CP]) Free() uint64  { return f.ring.free() }
func (f *fifoCore[T, C, CP]) Empty() bool   { return f.ring.empty() }
func (f *fifoCore[T, C, CP]) Full() bool    { return f.ring.full() }
func (f *fifoCore[T, C, CP]) IsValid() bool { return f.ring.isValid() }

// Push copies v into the next slot and advances head. Panics if the
// ring is full — a precondition violation per §7 taxonomy 1.
func (f *fifoCore[T, C, CP]) Push(v T) {
	if !f.TryPush(v) {
		panic("spsc: Push: ring full")
	}
}

// TryPush copies v into the next slot if one is free.
func (f *fifoCore[T, C, CP]) TryPush(v T) bool {
	head, avail := f.ring.producerAvailable(1)
	if avail < 1 {
		return false
	}
	f.slice[head&f.ring.mask()] = v
	f.ring.incrementHead()
	return true
}

// Emplace builds the next slot in place via build, avoiding the extra
// copy Push would otherwise incur for large T. Panics if full.
func (f *fifoCore[T, C, CP]) Emplace(build func(*T)) {
	if !f.TryEmplace(build) {
		panic("spsc: Emplace: ring full")
	}
}

// TryEmplace is the falsy-on-full variant of Emplace.
func (f *fifoCore[T, C, CP]) TryEmplace(build func(*T)) bool {
	head, avail := f.ring.producerAvailable(1)
	if avail < 1 {
		return false
	}
	build(&f.slice[head&f.ring.mask()])
	f.ring.incrementHead()
	return true
}

// Claim returns a pointer to the next slot without advancing head.
// Panics if the ring is full. Pair with Publish.
func (f *fifoCore[T, C, CP]) Claim() *T {
	p, ok := f.TryClaim()
	if !ok {
		panic("spsc: Claim: ring full")
	}
	return p
}

// TryClaim is the falsy-on-full variant of Claim.
func (f *fifoCore[T, C, CP]) TryClaim() (*T, bool) {
	head, avail := f.ring.producerAvailable(1)
	if avail < 1 {
		return nil, false
	}
	return &f.slice[head&f.ring.mask()], true
}

// Publish advances head by n, committing n previously claimed slots.
// Panics if n exceeds free space — the caller is responsible for having
// claimed those slots first (§4.4: regions are "never published by the
// calculator itself").
func (f *fifoCore[T, C, CP]) Publish(n uint64) {
	if !f.TryPublish(n) {
		panic("spsc: Publish: n exceeds free space")
	}
}

// TryPublish is the falsy-on-insufficient-space variant of Publish.
func (f *fifoCore[T, C, CP]) TryPublish(n uint64) bool {
	if !f.ring.canWrite(n) {
		return false
	}
	f.ring.advanceHead(n)
	return true
}

// ClaimWrite implements the bulk region calculator (§4.4) against this
// ring's free space, capped by max.
func (f *fifoCore[T, C, CP]) ClaimWrite(max uint64) Claim {
	return claimWrite(&f.ring, max)
}

// Front returns the value at the front of the ring without popping.
// Panics if empty.
func (f *fifoCore[T, C, CP]) Front() T {
	v, ok := f.TryFront()
	if !ok {
		panic("spsc: Front: ring empty")
	}
	return v
}

// TryFront is the falsy-on-empty variant of Front.
func (f *fifoCore[T, C, CP]) TryFront() (T, bool) {
	tail, avail := f.ring.consumerAvailable(1)
	if avail < 1 {
		var zero T
		return zero, false
	}
	return f.slice[tail&f.ring.mask()], true
}

// Pop returns and removes the front value. Popping never runs any
// finalizer for T (§1 Non-goals): the vacated slot is left as-is until
// the next producer write overwrites it. Panics if empty.
func (f *fifoCore[T, C, CP]) Pop() T {
	v, ok := f.TryPop()
	if !ok {
		panic("spsc: Pop: ring empty")
	}
	return v
}

// TryPop is the falsy-on-empty variant of Pop.
func (f *fifoCore[T, C, CP]) TryPop() (T, bool) {
	tail, avail := f.ring.consumerAvailable(1)
	if avail < 1 {
		var zero T
		return zero, false
	}
	v := f.slice[tail&f.ring.mask()]
	f.ring.incrementTail()
	return v, true
}

// PopN discards n already-read values (advances tail by n, raw bulk
// pop). Panics if n exceeds size.
func (f *fifoCore[T, C, CP]) PopN(n uint64) {
	if !f.TryPopN(n) {
		panic("spsc: PopN: n exceeds size")
	}
}

// TryPopN is the falsy-on-insufficient-size variant of PopN.
func (f *fifoCore[T, C, CP]) TryPopN(n uint64) bool {
	if !f.ring.canRead(n) {
		return false
	}
	f.ring.advanceTail(n)
	return true
}

// ClaimRead implements the bulk region calculator (§4.4) against this
// ring's used space, capped by max.
func (f *fifoCore[T, C, CP]) ClaimRead(max uint64) Claim {
	return claimRead(&f.ring, max)
}

// At returns the element at logical offset i from the front,
// 0 <= i < Size() — the fifo's operator[] equivalent. Panics out of
// range.
func (f *fifoCore[T, C, CP]) At(i uint64) T {
	if i >= f.ring.size() {
		panic("spsc: At: index out of range")
	}
	tail := f.ring.tailVal()
	return f.slice[(tail+i)&f.ring.mask()]
}

// MakeSnapshot captures the current used range for later validated
// consumption (§4.5).
func (f *fifoCore[T, C, CP]) MakeSnapshot() Snapshot[T] {
	return makeSnapshot(&f.ring, unsafe.Pointer(unsafe.SliceData(f.slice)), f.slice)
}

// TryConsume validates and commits a snapshot, returning false without
// mutating state on any validation failure.
func (f *fifoCore[T, C, CP]) TryConsume(s Snapshot[T]) bool {
	return tryConsumeSnapshot(&f.ring, unsafe.Pointer(unsafe.SliceData(f.slice)), s)
}

// Consume is the precondition-checked variant of TryConsume.
func (f *fifoCore[T, C, CP]) Consume(s Snapshot[T]) {
	consumeSnapshot(&f.ring, unsafe.Pointer(unsafe.SliceData(f.slice)), s)
}

// ConsumeAll sets tail to head atomically from the consumer side.
func (f *fifoCore[T, C, CP]) ConsumeAll() { f.ring.syncTailToHead() }

// ScopedWrite opens a single-slot producer guard (§4.6). Check Ok()
// before use; defer Close().
func (f *fifoCore[T, C, CP]) ScopedWrite() WriteGuard[T, C, CP] {
	return newWriteGuard(&f.ring, f.slice)
}

// ScopedRead opens a single-slot consumer guard.
func (f *fifoCore[T, C, CP]) ScopedRead() ReadGuard[T, C, CP] {
	return newReadGuard(&f.ring, f.slice)
}

// ScopedWriteN opens a bulk producer guard claiming exactly n slots.
func (f *fifoCore[T, C, CP]) ScopedWriteN(n uint64) BulkWriteGuard[T, C, CP] {
	return newBulkWriteGuard(&f.ring, f.slice, n)
}

// ScopedReadN opens a bulk consumer guard claiming exactly n slots.
func (f *fifoCore[T, C, CP]) ScopedReadN(n uint64) BulkReadGuard[T, C, CP] {
	return newBulkReadGuard(&f.ring, f.slice, n)
}

// Clear resets both indices to zero. Non-concurrent: caller must ensure
// producer and consumer are quiescent.
func (f *fifoCore[T, C, CP]) Clear() { f.ring.clear() }

// Fifo is the owning value-ring container (§4.7): it allocates and frees
// storage for `capacity` elements of T. Capacity rounds up to the next
// power of two, mirroring the teacher's own NewSPSC rounding contract.
type Fifo[T any, C any, CP counterPtr[C]] struct {
	fifoCore[T, C, CP]
}

// NewFifo creates an owning fifo with storage for at least capacity
// elements. Panics if capacity < 2, matching the teacher's own
// `panic("lfq: capacity must be >= 2")` precondition style.
func NewFifo[T any, C any, CP counterPtr[C]](capacity uint64) *Fifo[T, C, CP] {
	if capacity < 2 {
		panic("spsc: capacity must be >= 2")
	}
	f := &Fifo[T, C, CP]{}
	if !f.ring.init(capacity, 0, 0) {
		panic("spsc: capacity exceeds the unambiguous range")
	}
	f.slice = make([]T, f.ring.capacity())
	return f
}

// Destroy releases storage and detaches the ring. Non-concurrent.
func (f *Fifo[T, C, CP]) Destroy() {
	f.slice = nil
	f.ring = ringCore[C, CP]{}
}

// Swap exchanges storage and state with other. Non-concurrent on both
// rings. Each side resyncs its shadow caches after the swap (§9).
func (f *Fifo[T, C, CP]) Swap(other *Fifo[T, C, CP]) {
	f.slice, other.slice = other.slice, f.slice
	f.ring, other.ring = other.ring, f.ring
	f.ring.syncCache()
	other.ring.syncCache()
}

// Resize grows the ring to at least newCap elements (rounded up to the
// next power of two), relocating the current size elements in logical
// order into positions [0, size) of the new buffer; head becomes size,
// tail becomes 0. Grow-only: a newCap that would not grow the rounded
// capacity is refused, returning false, and the old buffer is left
// completely intact. newCap == 0 is the one documented exception:
// it is an explicit shrink-to-zero request, releasing storage and
// clearing the queue via Destroy, and always succeeds.
func (f *Fifo[T, C, CP]) Resize(newCap uint64) bool {
	if newCap == 0 {
		f.Destroy()
		return true
	}

	rounded := roundUpPow2(newCap)
	if rounded <= f.ring.capacity() {
		return false
	}

	size := f.ring.size()
	tail := f.ring.tailVal()
	mask := f.ring.mask()
	newSlice := make([]T, rounded)
	for i := uint64(0); i < size; i++ {
		newSlice[i] = f.slice[(tail+i)&mask]
	}

	f.slice = newSlice
	f.ring.init(rounded, size, 0)
	return true
}
