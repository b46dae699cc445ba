// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "unsafe"

// poolCore holds the producer/consumer API shared by the owning Pool and
// the non-owning PoolView (§4.8). A pool ring stores, per logical slot, a
// []byte that aliases a fixed-size buffer rather than a value of T — the
// table itself plays the role of the C++ `void*[capacity]` slot array.
// A nil table entry is a legal state (§I10, §P14): producer operations
// must check for it and refuse rather than dereference, which is the
// one behavioral difference from fifoCore's otherwise-identical shape.
type poolCore[C any, CP counterPtr[C]] struct {
	ring       ringCore[C, CP]
	table      [][]byte
	bufferSize uint64
}

func (p *poolCore[C, CP]) Cap() uint64        { return p.ring.capacity() }
func (p *poolCore[C, CP]) Size() uint64       { return p.ring.size() }
func (p *poolCore[C, CP]) Free() uint64       { return p.ring.free() }
func (p *poolCore[C, CP]) Empty() bool        { return p.ring.empty() }
func (p *poolCore[C, CP]) Full() bool         { return p.ring.full() }
func (p *poolCore[C, CP]) IsValid() bool      { return p.ring.isValid() }
func (p *poolCore[C, CP]) BufferSize() uint64 { return p.bufferSize }

// Push copies up to min(len(src), BufferSize()) bytes from src into the
// next slot's buffer and advances head. n == 0 (including a nil src) is
// a legal no-op that still consumes one slot. Panics if the ring is
// full or the next slot's buffer is nil.
func (p *poolCore[C, CP]) Push(src []byte) {
	if !p.TryPush(src) {
		panic("spsc: Push: ring full or null slot buffer")
	}
}

// TryPush is the falsy variant of Push: false on a full ring or a nil
// slot buffer (§I10), without ever dereferencing the nil buffer.
func (p *poolCore[C, CP]) TryPush(src []byte) bool {
	head, avail := p.ring.producerAvailable(1)
	if avail < 1 {
		return false
	}
	buf := p.table[head&p.ring.mask()]
	if buf == nil {
		return false
	}
	if uint64(len(buf)) > p.bufferSize {
		buf = buf[:p.bufferSize]
	}
	copy(buf, src)
	p.ring.incrementHead()
	return true
}

// Claim returns the next slot's buffer without advancing head. Pair
// with Publish. Panics if full or the slot buffer is nil.
func (p *poolCore[C, CP]) Claim() []byte {
	buf, ok := p.TryClaim()
	if !ok {
		panic("spsc: Claim: ring full or null slot buffer")
	}
	return buf
}

// TryClaim is the falsy variant of Claim (§P14): returns nil, false on
// a full ring or a nil slot buffer, without dereferencing it.
func (p *poolCore[C, CP]) TryClaim() ([]byte, bool) {
	head, avail := p.ring.producerAvailable(1)
	if avail < 1 {
		return nil, false
	}
	buf := p.table[head&p.ring.mask()]
	if buf == nil {
		return nil, false
	}
	return buf, true
}

// Publish advances head by n, committing n previously claimed slots.
// Panics if n exceeds free space.
func (p *poolCore[C, CP]) Publish(n uint64) {
	if !p.TryPublish(n) {
		panic("spsc: Publish: n exceeds free space")
	}
}

// TryPublish is the falsy-on-insufficient-space variant of Publish.
func (p *poolCore[C, CP]) TryPublish(n uint64) bool {
	if !p.ring.canWrite(n) {
		return false
	}
	p.ring.advanceHead(n)
	return true
}

// ClaimWrite implements the bulk region calculator (§4.4) against this
// ring's free space. Unlike TryPush/TryClaim, the returned Claim exposes
// physical indices regardless of whether the underlying table entries
// are nil — the caller bears the contract to dereference only non-nil
// slots (§4.8 "claim_write still exposes the null pointer to the
// caller").
func (p *poolCore[C, CP]) ClaimWrite(max uint64) Claim {
	return claimWrite(&p.ring, max)
}

// claimAs is the shared implementation behind PoolClaimAs/PoolViewClaimAs:
// it returns the next claimable slot reinterpreted as *U, without
// advancing head, returning false when sizeof(U) exceeds BufferSize(),
// when the slot address is misaligned for U, or when TryClaim itself
// fails (full ring or nil slot buffer). This mirrors claim_as<U>() from
// §4.8.
func claimAs[U any, C any, CP counterPtr[C]](p *poolCore[C, CP]) (*U, bool) {
	buf, ok := p.TryClaim()
	if !ok {
		return nil, false
	}
	var zero U
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if uint64(size) > p.bufferSize || len(buf) < int(size) {
		return nil, false
	}
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%align != 0 {
		return nil, false
	}
	return (*U)(ptr), true
}

// PoolClaimAs is claimAs for an owning Pool. Go forbids extra type
// parameters on methods, so this is a free function over the container
// rather than a generic method.
func PoolClaimAs[U any, C any, CP counterPtr[C]](p *Pool[C, CP]) (*U, bool) {
	return claimAs[U](&p.poolCore)
}

// PoolViewClaimAs is claimAs for a PoolView.
func PoolViewClaimAs[U any, C any, CP counterPtr[C]](p *PoolView[C, CP]) (*U, bool) {
	return claimAs[U](&p.poolCore)
}

// Front returns the front slot's buffer without popping. Panics if
// empty or the slot buffer is nil.
func (p *poolCore[C, CP]) Front() []byte {
	buf, ok := p.TryFront()
	if !ok {
		panic("spsc: Front: ring empty or null slot buffer")
	}
	return buf
}

// TryFront is the falsy variant of Front.
func (p *poolCore[C, CP]) TryFront() ([]byte, bool) {
	tail, avail := p.ring.consumerAvailable(1)
	if avail < 1 {
		return nil, false
	}
	buf := p.table[tail&p.ring.mask()]
	if buf == nil {
		return nil, false
	}
	return buf, true
}

// frontAs is the shared implementation behind PoolFrontAs/PoolViewFrontAs:
// it reinterprets the front slot's buffer as *U without popping, subject
// to the same size/alignment checks as claimAs.
func frontAs[U any, C any, CP counterPtr[C]](p *poolCore[C, CP]) (*U, bool) {
	buf, ok := p.TryFront()
	if !ok {
		return nil, false
	}
	var zero U
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)
	if uint64(size) > p.bufferSize || len(buf) < int(size) {
		return nil, false
	}
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%align != 0 {
		return nil, false
	}
	return (*U)(ptr), true
}

// PoolFrontAs is frontAs for an owning Pool.
func PoolFrontAs[U any, C any, CP counterPtr[C]](p *Pool[C, CP]) (*U, bool) {
	return frontAs[U](&p.poolCore)
}

// PoolViewFrontAs is frontAs for a PoolView.
func PoolViewFrontAs[U any, C any, CP counterPtr[C]](p *PoolView[C, CP]) (*U, bool) {
	return frontAs[U](&p.poolCore)
}

// tryPeek copies the front slot's payload, reinterpreted as U, into out.
// Returns false without touching out if the ring is empty, the slot
// buffer is nil, or U does not fit the size/alignment checks.
func tryPeek[U any, C any, CP counterPtr[C]](p *poolCore[C, CP], out *U) bool {
	src, ok := frontAs[U](p)
	if !ok {
		return false
	}
	*out = *src
	return true
}

// PoolTryPeek is tryPeek for an owning Pool.
func PoolTryPeek[U any, C any, CP counterPtr[C]](p *Pool[C, CP], out *U) bool {
	return tryPeek(&p.poolCore, out)
}

// PoolViewTryPeek is tryPeek for a PoolView.
func PoolViewTryPeek[U any, C any, CP counterPtr[C]](p *PoolView[C, CP], out *U) bool {
	return tryPeek(&p.poolCore, out)
}

// Pop returns and removes the front slot's buffer. Panics if empty or
// the slot buffer is nil.
func (p *poolCore[C, CP]) Pop() []byte {
	buf, ok := p.TryPop()
	if !ok {
		panic("spsc: Pop: ring empty or null slot buffer")
	}
	return buf
}

// TryPop is the falsy variant of Pop.
func (p *poolCore[C, CP]) TryPop() ([]byte, bool) {
	tail, avail := p.ring.consumerAvailable(1)
	if avail < 1 {
		return nil, false
	}
	buf := p.table[tail&p.ring.mask()]
	if buf == nil {
		return nil, false
	}
	p.ring.incrementTail()
	return buf, true
}

// PopN discards n already-read slots (advances tail by n). Panics if n
// exceeds size.
func (p *poolCore[C, CP]) PopN(n uint64) {
	if !p.TryPopN(n) {
		panic("spsc: PopN: n exceeds size")
	}
}

// TryPopN is the falsy-on-insufficient-size variant of PopN.
func (p *poolCore[C, CP]) TryPopN(n uint64) bool {
	if !p.ring.canRead(n) {
		return false
	}
	p.ring.advanceTail(n)
	return true
}

// ClaimRead implements the bulk region calculator (§4.4) against this
// ring's used space.
func (p *poolCore[C, CP]) ClaimRead(max uint64) Claim {
	return claimRead(&p.ring, max)
}

// At returns the slot buffer at logical offset i from the front,
// 0 <= i < Size(). Panics out of range; does not check for a nil
// buffer, matching Fifo.At's un-prefixed-operation contract.
func (p *poolCore[C, CP]) At(i uint64) []byte {
	if i >= p.ring.size() {
		panic("spsc: At: index out of range")
	}
	tail := p.ring.tailVal()
	return p.table[(tail+i)&p.ring.mask()]
}

// MakeSnapshot captures the current used range of the pointer table for
// later validated consumption (§4.5). Snapshot's element type is the
// table's own []byte, so the identical snapshot machinery used by Fifo
// applies unchanged.
func (p *poolCore[C, CP]) MakeSnapshot() Snapshot[[]byte] {
	return makeSnapshot(&p.ring, unsafe.Pointer(unsafe.SliceData(p.table)), p.table)
}

// TryConsume validates and commits a snapshot of the pointer table.
func (p *poolCore[C, CP]) TryConsume(s Snapshot[[]byte]) bool {
	return tryConsumeSnapshot(&p.ring, unsafe.Pointer(unsafe.SliceData(p.table)), s)
}

// Consume is the precondition-checked variant of TryConsume.
func (p *poolCore[C, CP]) Consume(s Snapshot[[]byte]) {
	consumeSnapshot(&p.ring, unsafe.Pointer(unsafe.SliceData(p.table)), s)
}

// ConsumeAll sets tail to head atomically from the consumer side.
func (p *poolCore[C, CP]) ConsumeAll() { p.ring.syncTailToHead() }

// ScopedWrite opens a single-slot producer guard over the pointer table
// (§4.6). Check Ok() before use; defer Close(). Peek()/Get() return a
// pointer to the table entry itself (*[]byte); null-slot defense is the
// caller's responsibility when writing through the guard, matching the
// scope of §P14 (TryClaim/TryPush only).
func (p *poolCore[C, CP]) ScopedWrite() WriteGuard[[]byte, C, CP] {
	return newWriteGuard(&p.ring, p.table)
}

// ScopedRead opens a single-slot consumer guard over the pointer table.
func (p *poolCore[C, CP]) ScopedRead() ReadGuard[[]byte, C, CP] {
	return newReadGuard(&p.ring, p.table)
}

// ScopedWriteN opens a bulk producer guard claiming exactly n slots.
func (p *poolCore[C, CP]) ScopedWriteN(n uint64) BulkWriteGuard[[]byte, C, CP] {
	return newBulkWriteGuard(&p.ring, p.table, n)
}

// ScopedReadN opens a bulk consumer guard claiming exactly n slots.
func (p *poolCore[C, CP]) ScopedReadN(n uint64) BulkReadGuard[[]byte, C, CP] {
	return newBulkReadGuard(&p.ring, p.table, n)
}

// Clear resets both indices to zero. Non-concurrent.
func (p *poolCore[C, CP]) Clear() { p.ring.clear() }

// Pool is the owning opaque-payload ring container (§4.8): it allocates
// and frees both the pointer table and the backing buffers, one of
// BufferSize() bytes per slot. Depth rounds up to the next power of two.
type Pool[C any, CP counterPtr[C]] struct {
	poolCore[C, CP]
}

// NewPool creates an owning pool with depth slots, each backed by a
// freshly zeroed buffer of bufferSize bytes. Panics if depth < 2 or
// bufferSize == 0.
func NewPool[C any, CP counterPtr[C]](depth, bufferSize uint64) *Pool[C, CP] {
	if depth < 2 {
		panic("spsc: depth must be >= 2")
	}
	if bufferSize == 0 {
		panic("spsc: bufferSize must be > 0")
	}
	p := &Pool[C, CP]{}
	if !p.ring.init(depth, 0, 0) {
		panic("spsc: depth exceeds the unambiguous range")
	}
	p.bufferSize = bufferSize
	p.table = make([][]byte, p.ring.capacity())
	for i := range p.table {
		p.table[i] = make([]byte, bufferSize)
	}
	return p
}

// Destroy releases the pointer table and all backing buffers, and
// detaches the ring. Non-concurrent.
func (p *Pool[C, CP]) Destroy() {
	p.table = nil
	p.bufferSize = 0
	p.ring = ringCore[C, CP]{}
}

// Swap exchanges storage and state with other. Non-concurrent on both
// rings; each side resyncs its shadow caches after the swap (§9).
func (p *Pool[C, CP]) Swap(other *Pool[C, CP]) {
	p.table, other.table = other.table, p.table
	p.bufferSize, other.bufferSize = other.bufferSize, p.bufferSize
	p.ring, other.ring = other.ring, p.ring
	p.ring.syncCache()
	other.ring.syncCache()
}

// Resize grows the pool to at least newDepth slots (rounded up to the
// next power of two) and, optionally, newBufferSize bytes per buffer.
// Both axes are grow-only: a rounded depth smaller than the current one,
// or a newBufferSize smaller than the current one, are refused,
// returning false, with the old pool left completely intact. Depth and
// buffer size grow independently — requesting a larger buffer size at
// the same depth (or vice versa) succeeds. newDepth == 0 or
// newBufferSize == 0 is the one documented exception: it is an explicit
// shrink-to-zero request, releasing the table and all buffers via
// Destroy, and always succeeds.
//
// On success the live Size() payloads are linearized into fresh,
// freshly zeroed buffers of newBufferSize bytes: a payload larger than
// the new buffer size is truncated, and a payload smaller than it is
// zero-padded as a direct consequence of make()'s zero-value guarantee
// — the source contract leaves those trailing bytes indeterminate, but
// Go's allocator offers no indeterminate-memory primitive to match that
// exactly (documented in the design ledger).
func (p *Pool[C, CP]) Resize(newDepth, newBufferSize uint64) bool {
	if newDepth == 0 || newBufferSize == 0 {
		p.Destroy()
		return true
	}

	roundedDepth := roundUpPow2(newDepth)
	depthGrows := roundedDepth > p.ring.capacity()
	bufferGrows := newBufferSize > p.bufferSize
	if !depthGrows && !bufferGrows {
		return false
	}
	if roundedDepth < p.ring.capacity() || newBufferSize < p.bufferSize {
		return false
	}

	size := p.ring.size()
	tail := p.ring.tailVal()
	mask := p.ring.mask()
	newTable := make([][]byte, roundedDepth)
	for i := range newTable {
		newTable[i] = make([]byte, newBufferSize)
	}
	for i := uint64(0); i < size; i++ {
		copy(newTable[i], p.table[(tail+i)&mask])
	}

	p.table = newTable
	p.bufferSize = newBufferSize
	p.ring.init(roundedDepth, size, 0)
	return true
}
