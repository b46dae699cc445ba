// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// FifoView is the non-owning value-ring container (§4.7, §9 "View vs.
// owning"): it wraps externally supplied storage instead of allocating
// its own, so it can sit on top of shared memory or a caller-managed
// arena. It forbids copying (embeds noCopy) since a by-value copy would
// alias the same backing slice from two independent sets of indices.
type FifoView[T any, C any, CP counterPtr[C]] struct {
	_ noCopy
	fifoCore[T, C, CP]
}

// NewFifoView returns a detached view. Call Attach or Adopt before use;
// IsValid reports false until one succeeds.
func NewFifoView[T any, C any, CP counterPtr[C]]() *FifoView[T, C, CP] {
	return &FifoView[T, C, CP]{}
}

// Attach binds data as this view's storage, starting empty (head = tail
// = 0). len(data) becomes the ring's capacity and must already be an
// exact power of two of at least 2 — a view cannot reallocate to round
// up the way an owning Fifo does, so a non-power-of-two length is
// refused rather than silently truncated. Returns false and leaves the
// view detached on any validation failure.
func (v *FifoView[T, C, CP]) Attach(data []T) bool {
	return v.Adopt(data, 0, 0)
}

// Adopt binds data as this view's storage with explicit head/tail
// state, restoring a ring previously serialized via State (§6). Returns
// false and leaves the view detached if len(data) is not a power of two
// of at least 2, or if head/tail fail the geometry's own validation
// (e.g. head - tail > capacity).
func (v *FifoView[T, C, CP]) Adopt(data []T, head, tail uint64) bool {
	n := uint64(len(data))
	if n < 2 || n&(n-1) != 0 {
		v.Detach()
		return false
	}
	if !v.ring.init(n, head, tail) {
		v.Detach()
		return false
	}
	v.slice = data
	return true
}

// Detach releases the reference to the backing storage and resets the
// ring to the detached state. The caller retains ownership of data;
// Detach never touches its contents.
func (v *FifoView[T, C, CP]) Detach() {
	v.slice = nil
	v.ring = ringCore[C, CP]{}
}

// State returns the current head/tail indices for serialization (§6),
// e.g. to persist a view over memory-mapped storage across a restart.
func (v *FifoView[T, C, CP]) State() (head, tail uint64) {
	return v.ring.headVal(), v.ring.tailVal()
}

// Move transfers this view's storage and indices into a freshly
// returned FifoView, detaching the receiver. Go has no move
// constructors, so relocation is expressed as this explicit method
// rather than an implicit copy-then-invalidate.
func (v *FifoView[T, C, CP]) Move() FifoView[T, C, CP] {
	out := FifoView[T, C, CP]{fifoCore: v.fifoCore}
	v.fifoCore = fifoCore[T, C, CP]{}
	return out
}

// Swap exchanges storage and state with other. Non-concurrent on both
// rings; each side resyncs its shadow caches after the swap (§9).
func (v *FifoView[T, C, CP]) Swap(other *FifoView[T, C, CP]) {
	v.slice, other.slice = other.slice, v.slice
	v.ring, other.ring = other.ring, v.ring
	v.ring.syncCache()
	other.ring.syncCache()
}
