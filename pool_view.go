// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// PoolView is the non-owning opaque-payload ring container (§4.8): it
// attaches to an externally-owned pointer table and buffer size instead
// of allocating its own. The engine never allocates or aligns the
// buffers a view points at — that is the caller's contract — and,
// unlike Pool, a view's table entries may legitimately be nil: §I10 and
// §P14 require the producer side to defend against that rather than
// assume the invariant Pool itself always upholds.
type PoolView[C any, CP counterPtr[C]] struct {
	_ noCopy
	poolCore[C, CP]
}

// NewPoolView returns a detached view. Call Attach or Adopt before use.
func NewPoolView[C any, CP counterPtr[C]]() *PoolView[C, CP] {
	return &PoolView[C, CP]{}
}

// Attach binds table and bufferSize as this view's storage, starting
// empty (head = tail = 0). len(table) becomes the ring's depth and must
// already be an exact power of two of at least 2. Individual table
// entries may be nil; Attach does not validate §I10 itself, since a
// view over a deliberately-null slot is a supported configuration
// (§8 scenario 6), not a construction error.
func (v *PoolView[C, CP]) Attach(table [][]byte, bufferSize uint64) bool {
	return v.Adopt(table, bufferSize, 0, 0)
}

// Adopt binds table and bufferSize as this view's storage with explicit
// head/tail state, restoring a ring previously serialized via State
// (§6). Returns false and leaves the view detached if len(table) is not
// a power of two of at least 2, if bufferSize == 0, or if head/tail fail
// the geometry's own validation.
func (v *PoolView[C, CP]) Adopt(table [][]byte, bufferSize, head, tail uint64) bool {
	n := uint64(len(table))
	if n < 2 || n&(n-1) != 0 || bufferSize == 0 {
		v.Detach()
		return false
	}
	if !v.ring.init(n, head, tail) {
		v.Detach()
		return false
	}
	v.table = table
	v.bufferSize = bufferSize
	return true
}

// Detach releases the reference to the table and resets the ring to the
// detached state. The caller retains ownership of table and its
// buffers; Detach never touches their contents.
func (v *PoolView[C, CP]) Detach() {
	v.table = nil
	v.bufferSize = 0
	v.ring = ringCore[C, CP]{}
}

// State returns the current head/tail indices for serialization (§6).
func (v *PoolView[C, CP]) State() (head, tail uint64) {
	return v.ring.headVal(), v.ring.tailVal()
}

// Move transfers this view's storage and indices into a freshly
// returned PoolView, detaching the receiver.
func (v *PoolView[C, CP]) Move() PoolView[C, CP] {
	out := PoolView[C, CP]{poolCore: v.poolCore}
	v.poolCore = poolCore[C, CP]{}
	return out
}

// Swap exchanges storage and state with other. Non-concurrent on both
// rings; each side resyncs its shadow caches after the swap (§9).
func (v *PoolView[C, CP]) Swap(other *PoolView[C, CP]) {
	v.table, other.table = other.table, v.table
	v.bufferSize, other.bufferSize = other.bufferSize, v.bufferSize
	v.ring, other.ring = other.ring, v.ring
	v.ring.syncCache()
	other.ring.syncCache()
}
