// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// ringCore is the Ring Core of §4.3: two counters (head owned by the
// producer, tail owned by the consumer) plus geometry, generic over the
// counter backend C.
//
// Memory-ordering protocol: the producer publishes logical index i by
// storing head = i+1 with release, after writing data[i&mask]; the
// consumer only reads data[i&mask] after loading head with acquire and
// observing head > i. Symmetrically for tail: the consumer publishes
// tail = j+1 with release after reading data[j&mask]; the producer only
// overwrites data[j&mask] after loading tail with acquire and observing
// tail > j. These two release/acquire edges are the entire cross-role
// contract; nothing else is shared between producer and consumer.
//
// cachedTail/cachedHead are the shadow caches of §4.1: cachedTail is the
// producer's private view of the consumer's tail, cachedHead is the
// consumer's private view of the producer's head. Each is touched only by
// its owning role on the hot path, and resynced by syncCache on every
// non-concurrent transition.
type ringCore[C any, CP counterPtr[C]] struct {
	head       C
	cachedTail uint64
	tail       C
	cachedHead uint64
	geom       geometry
}

func (r *ringCore[C, CP]) headBackend() CP { return CP(&r.head) }
func (r *ringCore[C, CP]) tailBackend() CP { return CP(&r.tail) }

// init implements §4.2's geometry init plus shadow resync. Returns false
// on invalid capacity or head/tail gap, leaving the ring's geometry and
// counters exactly as they were before the call.
func (r *ringCore[C, CP]) init(capacity, head, tail uint64) bool {
	var g geometry
	if !g.initGeometry(capacity, head, tail) {
		return false
	}
	r.geom = g
	r.headBackend().Store(head)
	r.tailBackend().Store(tail)
	r.syncCache()
	return true
}

// syncCache resynchronizes both shadow caches with the authoritative
// counters. Must run at the end of every non-concurrent transition (init,
// clear, swap, move, adopt, attach) before the ring is exposed to
// producer/consumer use again — this is the one invariant (§9) that
// prevents a shadow from leaking across a transition.
func (r *ringCore[C, CP]) syncCache() {
	r.cachedHead = r.headBackend().Load()
	r.cachedTail = r.tailBackend().Load()
}

// clear resets both indices to zero and resyncs shadows. Non-concurrent:
// caller must ensure producer and consumer are both quiescent.
func (r *ringCore[C, CP]) clear() {
	r.headBackend().Store(0)
	r.tailBackend().Store(0)
	r.syncCache()
}

func (r *ringCore[C, CP]) isValid() bool { return r.geom.isValid() }
func (r *ringCore[C, CP]) capacity() uint64 { return r.geom.capacity }
func (r *ringCore[C, CP]) mask() uint64     { return r.geom.mask }

// headVal/tailVal are the authoritative (acquire) loads used by the
// general-purpose inspection predicates below. They are not the hot-path
// producer/consumer operations, which instead consult the shadow caches
// directly (see producerAvailable/consumerAvailable).
func (r *ringCore[C, CP]) headVal() uint64 { return r.headBackend().LoadAcquire() }
func (r *ringCore[C, CP]) tailVal() uint64 { return r.tailBackend().LoadAcquire() }

func (r *ringCore[C, CP]) size() uint64 { return r.headVal() - r.tailVal() }
func (r *ringCore[C, CP]) free() uint64 { return r.geom.capacity - r.size() }
func (r *ringCore[C, CP]) empty() bool  { return r.size() == 0 }
func (r *ringCore[C, CP]) full() bool   { return r.size() == r.geom.capacity }

func (r *ringCore[C, CP]) canRead(n uint64) bool  { return n <= r.size() }
func (r *ringCore[C, CP]) canWrite(n uint64) bool { return n <= r.free() }

func (r *ringCore[C, CP]) writeIndex() uint64 { return r.headVal() & r.geom.mask }
func (r *ringCore[C, CP]) readIndex() uint64  { return r.tailVal() & r.geom.mask }

func (r *ringCore[C, CP]) writeSize() uint64 {
	free := r.free()
	rem := r.geom.capacity - r.writeIndex()
	if free < rem {
		return free
	}
	return rem
}

func (r *ringCore[C, CP]) readSize() uint64 {
	size := r.size()
	rem := r.geom.capacity - r.readIndex()
	if size < rem {
		return size
	}
	return rem
}

// incrementHead/advanceHead are the producer's monotone advance
// operations. Preconditions (not full()/n<=free()) are the caller's
// responsibility; violating them is undefined per §7.1 taxonomy 1.
func (r *ringCore[C, CP]) incrementHead() {
	r.headBackend().StoreRelease(r.headBackend().Load() + 1)
}

func (r *ringCore[C, CP]) advanceHead(n uint64) {
	r.headBackend().StoreRelease(r.headBackend().Load() + n)
}

// incrementTail/advanceTail/syncTailToHead are the consumer's monotone
// advance operations.
func (r *ringCore[C, CP]) incrementTail() {
	r.tailBackend().StoreRelease(r.tailBackend().Load() + 1)
}

func (r *ringCore[C, CP]) advanceTail(n uint64) {
	r.tailBackend().StoreRelease(r.tailBackend().Load() + n)
}

func (r *ringCore[C, CP]) syncTailToHead() {
	r.tailBackend().StoreRelease(r.headBackend().LoadAcquire())
}

// producerAvailable is the shadow-cache hot path of §4.1 on the producer
// side: it returns the producer's own current head and the number of
// free slots available for at least `need` of them, refreshing the
// cachedTail shadow only on an apparent boundary (free appears to be
// less than need). The returned available count is never more than
// truly free, but may undercount only until the refresh fires.
func (r *ringCore[C, CP]) producerAvailable(need uint64) (head, available uint64) {
	head = r.headBackend().Load()
	available = r.geom.capacity - (head - r.cachedTail)
	if available < need {
		r.cachedTail = r.tailBackend().LoadAcquire()
		available = r.geom.capacity - (head - r.cachedTail)
	}
	return head, available
}

// consumerAvailable is the symmetric shadow-cache hot path on the
// consumer side.
func (r *ringCore[C, CP]) consumerAvailable(need uint64) (tail, available uint64) {
	tail = r.tailBackend().Load()
	available = r.cachedHead - tail
	if available < need {
		r.cachedHead = r.headBackend().LoadAcquire()
		available = r.cachedHead - tail
	}
	return tail, available
}
