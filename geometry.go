// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// RBMaxUnambiguous is the largest capacity for which unsigned head-tail
// arithmetic always classifies empty/full/partial correctly: counters are
// 64 bits wide, so the live range must never exceed 2^63 (I9).
const RBMaxUnambiguous = uint64(1) << 63

// geometry holds the immutable-after-init shape of a ring: its capacity
// (always a power of two, or zero when detached) and derived mask. The
// pool/pool_view buffer size is tracked separately on poolCore, since it
// is a container-level property rather than a ring-shape one.
//
// geometry never changes while a producer or consumer is active (I6);
// mutation is only legal from init, clear, resize, swap, attach, adopt,
// detach.
type geometry struct {
	capacity uint64
	mask     uint64
}

// isValid reports whether the geometry describes a usable ring.
func (g *geometry) isValid() bool {
	return g.capacity != 0
}

// roundUpPow2 rounds n up to the next power of two, with a floor of 2.
func roundUpPow2(n uint64) uint64 {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// initGeometry implements §4.2's init algorithm: requestedCapacity == 0
// produces a detached geometry; otherwise it rounds up to the next power
// of two and validates both the unambiguous-range bound and head-tail
// gap. Returns false (and leaves g untouched) on any failure.
func (g *geometry) initGeometry(requestedCapacity uint64, head, tail uint64) bool {
	if requestedCapacity == 0 {
		g.capacity = 0
		g.mask = 0
		return true
	}

	if requestedCapacity > RBMaxUnambiguous {
		return false // would round past 2^63 (and wrap roundUpPow2 to 0)
	}
	cap := roundUpPow2(requestedCapacity)
	if cap > RBMaxUnambiguous {
		return false
	}
	if head-tail > cap {
		return false
	}

	g.capacity = cap
	g.mask = cap - 1
	return true
}
