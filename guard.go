// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Scoped guards (§4.6) turn the raw claim/publish and front/pop pairs
// into RAII-style scopes with explicit arm/commit/cancel semantics. Go
// has no destructors, so the "runs on destruction" behavior is emulated
// by a Close method: callers are expected to `defer g.Close()` right
// after a successful construction, exactly as they would `defer
// f.Close()` for an *os.File. Close is idempotent and safe to call on a
// falsy (failed-claim) guard.

// WriteGuard is the producer single-slot guard (scoped_write()).
type WriteGuard[T any, C any, CP counterPtr[C]] struct {
	r      *ringCore[C, CP]
	slice  []T
	head   uint64
	ok     bool
	active bool
	armed  bool
}

// newWriteGuard attempts a single-slot claim. The returned guard is
// falsy (Ok() == false) when the ring has no free slot.
func newWriteGuard[T any, C any, CP counterPtr[C]](r *ringCore[C, CP], slice []T) WriteGuard[T, C, CP] {
	head, avail := r.producerAvailable(1)
	if avail < 1 {
		return WriteGuard[T, C, CP]{}
	}
	return WriteGuard[T, C, CP]{r: r, slice: slice, head: head, ok: true, active: true}
}

// Ok reports whether the guard holds a claimed slot.
func (g *WriteGuard[T, C, CP]) Ok() bool { return g.ok }

// Peek returns a pointer to the claimed slot without arming publish.
func (g *WriteGuard[T, C, CP]) Peek() *T {
	return &g.slice[g.head&g.r.geom.mask]
}

// Get returns a pointer to the claimed slot and arms publish-on-close.
func (g *WriteGuard[T, C, CP]) Get() *T {
	g.armed = true
	return g.Peek()
}

// ArmPublish arms publish-on-close without returning the slot pointer.
func (g *WriteGuard[T, C, CP]) ArmPublish() { g.armed = true }

// Commit publishes the slot immediately and deactivates the guard.
func (g *WriteGuard[T, C, CP]) Commit() {
	if !g.active {
		return
	}
	g.r.incrementHead()
	g.active = false
}

// Cancel deactivates the guard without publishing.
func (g *WriteGuard[T, C, CP]) Cancel() { g.active = false }

// Close publishes the slot iff the guard is still active and armed.
func (g *WriteGuard[T, C, CP]) Close() {
	if g.active && g.armed {
		g.r.incrementHead()
	}
	g.active = false
}

// ReadGuard is the consumer single-slot guard (scoped_read()).
type ReadGuard[T any, C any, CP counterPtr[C]] struct {
	r      *ringCore[C, CP]
	slice  []T
	tail   uint64
	ok     bool
	active bool
}

// newReadGuard attempts a single-slot front peek. The returned guard is
// falsy when the ring is empty.
func newReadGuard[T any, C any, CP counterPtr[C]](r *ringCore[C, CP], slice []T) ReadGuard[T, C, CP] {
	tail, avail := r.consumerAvailable(1)
	if avail < 1 {
		return ReadGuard[T, C, CP]{}
	}
	return ReadGuard[T, C, CP]{r: r, slice: slice, tail: tail, ok: true, active: true}
}

func (g *ReadGuard[T, C, CP]) Ok() bool { return g.ok }

// Peek returns a pointer to the front slot.
func (g *ReadGuard[T, C, CP]) Peek() *T {
	return &g.slice[g.tail&g.r.geom.mask]
}

// Commit pops the slot immediately and deactivates the guard.
func (g *ReadGuard[T, C, CP]) Commit() {
	if !g.active {
		return
	}
	g.r.incrementTail()
	g.active = false
}

// Cancel deactivates the guard without popping.
func (g *ReadGuard[T, C, CP]) Cancel() { g.active = false }

// Close pops the slot iff the guard is still active.
func (g *ReadGuard[T, C, CP]) Close() {
	if g.active {
		g.r.incrementTail()
	}
	g.active = false
}

// BulkWriteGuard is the producer bulk guard (scoped_write(n)).
type BulkWriteGuard[T any, C any, CP counterPtr[C]] struct {
	r           *ringCore[C, CP]
	slice       []T
	claim       Claim
	constructed uint64
	ok          bool
	active      bool
	armed       bool
}

// newBulkWriteGuard claims exactly n slots. The guard is falsy when
// fewer than n are free — bulk claims here are all-or-nothing, unlike
// the raw claimWrite used by ClaimWrite on the container API.
func newBulkWriteGuard[T any, C any, CP counterPtr[C]](r *ringCore[C, CP], slice []T, n uint64) BulkWriteGuard[T, C, CP] {
	c := claimWrite(r, n)
	if c.Total < n {
		return BulkWriteGuard[T, C, CP]{}
	}
	return BulkWriteGuard[T, C, CP]{r: r, slice: slice, claim: c, ok: true, active: true}
}

func (g *BulkWriteGuard[T, C, CP]) Ok() bool       { return g.ok }
func (g *BulkWriteGuard[T, C, CP]) Claimed() uint64 { return g.claim.Total }
func (g *BulkWriteGuard[T, C, CP]) Remaining() uint64 {
	return g.claim.Total - g.constructed
}
func (g *BulkWriteGuard[T, C, CP]) Regions() (Region, Region) {
	return g.claim.First, g.claim.Second
}

// GetNext returns a pointer to the next unconstructed slot and advances
// the constructed counter. Panics if called with no slots remaining.
func (g *BulkWriteGuard[T, C, CP]) GetNext() *T {
	if g.constructed >= g.claim.Total {
		panic("spsc: GetNext: no claimed slots remaining")
	}
	idx := g.claim.PhysicalIndex(g.constructed)
	g.constructed++
	return &g.slice[idx]
}

// EmplaceNext writes v into the next unconstructed slot.
func (g *BulkWriteGuard[T, C, CP]) EmplaceNext(v T) {
	*g.GetNext() = v
}

// WriteNext copies src into successive unconstructed slots.
func (g *BulkWriteGuard[T, C, CP]) WriteNext(src []T) {
	for i := range src {
		g.EmplaceNext(src[i])
	}
}

// MarkWritten advances the constructed counter by n without touching
// memory, for callers who wrote directly through Regions().
func (g *BulkWriteGuard[T, C, CP]) MarkWritten(n uint64) {
	if g.constructed+n > g.claim.Total {
		panic("spsc: MarkWritten: exceeds claimed slots")
	}
	g.constructed += n
}

// ArmPublish arms publish-on-close. Requires at least one constructed
// slot.
func (g *BulkWriteGuard[T, C, CP]) ArmPublish() {
	if g.constructed == 0 {
		panic("spsc: ArmPublish: nothing constructed")
	}
	g.armed = true
}

// Commit publishes the constructed slots immediately and deactivates.
func (g *BulkWriteGuard[T, C, CP]) Commit() {
	if !g.active {
		return
	}
	g.r.advanceHead(g.constructed)
	g.active = false
}

// Cancel deactivates without publishing.
func (g *BulkWriteGuard[T, C, CP]) Cancel() { g.active = false }

// Close publishes the constructed slots iff still active and armed.
func (g *BulkWriteGuard[T, C, CP]) Close() {
	if g.active && g.armed {
		g.r.advanceHead(g.constructed)
	}
	g.active = false
}

// BulkReadGuard is the consumer bulk guard (scoped_read(n)).
type BulkReadGuard[T any, C any, CP counterPtr[C]] struct {
	r      *ringCore[C, CP]
	slice  []T
	claim  Claim
	ok     bool
	active bool
}

// newBulkReadGuard claims exactly n slots for reading; falsy when fewer
// than n are available.
func newBulkReadGuard[T any, C any, CP counterPtr[C]](r *ringCore[C, CP], slice []T, n uint64) BulkReadGuard[T, C, CP] {
	c := claimRead(r, n)
	if c.Total < n {
		return BulkReadGuard[T, C, CP]{}
	}
	return BulkReadGuard[T, C, CP]{r: r, slice: slice, claim: c, ok: true, active: true}
}

func (g *BulkReadGuard[T, C, CP]) Ok() bool    { return g.ok }
func (g *BulkReadGuard[T, C, CP]) Len() uint64 { return g.claim.Total }
func (g *BulkReadGuard[T, C, CP]) Regions() (Region, Region) {
	return g.claim.First, g.claim.Second
}

// At returns the element at logical offset i, 0 <= i < Len().
func (g *BulkReadGuard[T, C, CP]) At(i uint64) T {
	return g.slice[g.claim.PhysicalIndex(i)]
}

// Commit pops the claimed slots immediately and deactivates.
func (g *BulkReadGuard[T, C, CP]) Commit() {
	if !g.active {
		return
	}
	g.r.advanceTail(g.claim.Total)
	g.active = false
}

// Cancel deactivates without popping.
func (g *BulkReadGuard[T, C, CP]) Cancel() { g.active = false }

// Close pops the claimed slots iff still active.
func (g *BulkReadGuard[T, C, CP]) Close() {
	if g.active {
		g.r.advanceTail(g.claim.Total)
	}
	g.active = false
}
