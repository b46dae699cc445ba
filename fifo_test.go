// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "testing"

// checkInvariants asserts P1-P5 against a fifo in its current state.
func checkInvariants[T any, C any, CP counterPtr[C]](t *testing.T, f *Fifo[T, C, CP]) {
	t.Helper()
	size, free, cap := f.Size(), f.Free(), f.Cap()
	if size+free != cap {
		t.Fatalf("P1 violated: size(%d)+free(%d) != cap(%d)", size, free, cap)
	}
	if size > cap || free > cap {
		t.Fatalf("P2 violated: size(%d) or free(%d) exceeds cap(%d)", size, free, cap)
	}
	if f.Empty() != (size == 0) {
		t.Fatalf("P3 violated: empty()=%v but size=%d", f.Empty(), size)
	}
	if f.Full() != (size == cap) {
		t.Fatalf("P3 violated: full()=%v but size=%d cap=%d", f.Full(), size, cap)
	}
	if !f.ring.canRead(size) || f.ring.canRead(size+1) {
		t.Fatalf("P4 violated on canRead at size=%d", size)
	}
	if !f.ring.canWrite(free) || f.ring.canWrite(free+1) {
		t.Fatalf("P4 violated on canWrite at free=%d", free)
	}
	if f.ring.readSize() > size || f.ring.writeSize() > free {
		t.Fatalf("P5 violated: readSize=%d writeSize=%d size=%d free=%d", f.ring.readSize(), f.ring.writeSize(), size, free)
	}
}

func TestFifoScenario1SimpleCapacity16(t *testing.T) {
	f := NewFifoAtomic[int](16)
	for i := 1; i <= 16; i++ {
		if !f.TryPush(i) {
			t.Fatalf("push %d unexpectedly failed", i)
		}
		checkInvariants(t, f)
	}
	if !f.Full() {
		t.Fatal("expected ring full after 16 pushes into capacity 16")
	}
	if v, ok := f.TryPop(); !ok || v != 1 {
		t.Fatalf("expected pop 1, got %d ok=%v", v, ok)
	}
	if !f.TryPush(17) {
		t.Fatal("push 17 unexpectedly failed after one pop")
	}
	for want := 2; want <= 17; want++ {
		v, ok := f.TryPop()
		if !ok || v != want {
			t.Fatalf("expected pop %d, got %d ok=%v", want, v, ok)
		}
	}
	if !f.Empty() {
		t.Fatal("expected empty ring after full drain")
	}
}

func TestFifoScenario2BulkPublishPartial(t *testing.T) {
	f := NewFifoAtomic[int](16)
	claim := f.ClaimWrite(6)
	if claim.Total != 6 || claim.First.Count != 6 || claim.Second.Count != 0 {
		t.Fatalf("unexpected claim shape: %+v", claim)
	}
	for i := uint64(0); i < claim.Total; i++ {
		f.slice[claim.PhysicalIndex(i)] = 500 + int(i)
	}
	f.Publish(3)
	checkInvariants(t, f)

	readClaim := f.ClaimRead(10)
	if readClaim.Total != 3 {
		t.Fatalf("expected claim_read total 3, got %d", readClaim.Total)
	}
	want := []int{500, 501, 502}
	for i := uint64(0); i < readClaim.Total; i++ {
		if got := f.slice[readClaim.PhysicalIndex(i)]; got != want[i] {
			t.Fatalf("claim_read[%d] = %d, want %d", i, got, want[i])
		}
	}
	f.PopN(3)
	if !f.Empty() {
		t.Fatal("expected empty ring after pop(3)")
	}
}

func TestFifoScenario3WrapSplit(t *testing.T) {
	f := NewFifoAtomic[int](16)
	for i := 0; i <= 15; i++ {
		f.Push(i)
	}
	f.PopN(14)
	for _, v := range []int{1000, 1001, 1002, 1003} {
		f.Push(v)
	}
	claim := f.ClaimRead(100)
	if claim.Total != 6 || claim.First.Count != 2 || claim.Second.Count != 4 {
		t.Fatalf("unexpected wrap claim: %+v", claim)
	}
	want := []int{14, 15, 1000, 1001, 1002, 1003}
	for i := uint64(0); i < claim.Total; i++ {
		if got := f.slice[claim.PhysicalIndex(i)]; got != want[i] {
			t.Fatalf("wrap claim[%d] = %d, want %d", i, got, want[i])
		}
	}
}

func TestFifoScenario4SnapshotConsumePartial(t *testing.T) {
	f := NewFifoAtomic[int](16)
	for i := 9000; i <= 9011; i++ {
		f.Push(i)
	}
	s := f.MakeSnapshot()
	if s.Len() != 12 {
		t.Fatalf("expected snapshot len 12, got %d", s.Len())
	}
	sub := s.Sub(0, 4)
	f.Consume(sub)
	if front := f.Front(); front != 9004 {
		t.Fatalf("expected front 9004 after partial consume, got %d", front)
	}
	if f.Size() != 8 {
		t.Fatalf("expected size 8, got %d", f.Size())
	}
}

func TestFifoScenario5DynamicResizePreservesOrderAcrossWrap(t *testing.T) {
	f := NewFifoAtomic[int](8)
	for i := 1; i <= 8; i++ {
		f.Push(i)
	}
	f.PopN(3)
	for _, v := range []int{2000, 2001, 2002} {
		f.Push(v)
	}
	if !f.Full() {
		t.Fatal("expected ring full and wrapped before resize")
	}
	if !f.Resize(16) {
		t.Fatal("resize(16) unexpectedly refused")
	}
	if f.Cap() != 16 {
		t.Fatalf("expected capacity 16 after resize, got %d", f.Cap())
	}
	want := []int{4, 5, 6, 7, 8, 2000, 2001, 2002}
	for _, w := range want {
		v, ok := f.TryPop()
		if !ok || v != w {
			t.Fatalf("expected pop %d, got %d ok=%v", w, v, ok)
		}
	}
	if !f.Empty() {
		t.Fatal("expected empty ring after drain")
	}
}

func TestFifoResizeRefusesNonGrowth(t *testing.T) {
	f := NewFifoAtomic[int](16)
	if f.Resize(16) {
		t.Fatal("resize to the same rounded capacity must be refused")
	}
	if f.Resize(8) {
		t.Fatal("resize to a smaller capacity must be refused")
	}
	if f.Cap() != 16 {
		t.Fatal("refused resize must leave capacity untouched")
	}
}

func TestFifoResizeZeroIsExplicitShrinkToZero(t *testing.T) {
	f := NewFifoAtomic[int](16)
	f.Push(1)
	f.Push(2)
	if !f.Resize(0) {
		t.Fatal("resize(0) must succeed as an explicit shrink-to-zero")
	}
	if f.Cap() != 0 || f.IsValid() {
		t.Fatal("resize(0) must destroy storage and detach the ring")
	}
}

func TestFifoSnapshotIdentityAndFreshnessRejection(t *testing.T) {
	a := NewFifoAtomic[int](16)
	b := NewFifoAtomic[int](16)
	for i := 0; i < 4; i++ {
		a.Push(i)
		b.Push(i)
	}
	sa := a.MakeSnapshot()
	if b.TryConsume(sa) {
		t.Fatal("P10 violated: snapshot from a different ring was accepted")
	}
	if a.Size() != 4 || b.Size() != 4 {
		t.Fatal("P10 violated: a failed try_consume must not mutate either ring")
	}

	stale := a.MakeSnapshot()
	a.Push(99) // advance head, not tail, so staleness must come from a tail move
	a.Pop()
	if a.TryConsume(stale) {
		t.Fatal("P11 violated: stale snapshot (tail advanced since capture) was accepted")
	}
}

func TestFifoSwapCoherence(t *testing.T) {
	full := NewFifoAtomic[int](4)
	for i := 0; i < 4; i++ {
		full.Push(i)
	}
	empty := NewFifoAtomic[int](4)

	full.Swap(empty)

	if !empty.Full() {
		t.Fatal("P12 violated: previously full ring must read as full after swap")
	}
	if _, ok := empty.TryClaim(); ok {
		t.Fatal("P12 violated: swapped-in full ring must still refuse try_claim")
	}
	for i := 0; i < 4; i++ {
		v, ok := empty.TryPop()
		if !ok || v != i {
			t.Fatalf("P12 violated: expected %d from swapped ring, got %d ok=%v", i, v, ok)
		}
	}
	if !full.Empty() {
		t.Fatal("P12 violated: receiving side of swap must read as empty")
	}
}

func TestFifoScopedWriteReadGuards(t *testing.T) {
	f := NewFifoAtomic[int](4)

	wg := f.ScopedWrite()
	if !wg.Ok() {
		t.Fatal("expected write guard to claim a slot on an empty ring")
	}
	*wg.Get() = 7
	wg.Close()
	if f.Size() != 1 {
		t.Fatalf("expected size 1 after armed guard close, got %d", f.Size())
	}

	rg := f.ScopedRead()
	if !rg.Ok() {
		t.Fatal("expected read guard to peek the pushed value")
	}
	if got := *rg.Peek(); got != 7 {
		t.Fatalf("expected peeked value 7, got %d", got)
	}
	rg.Commit()
	if !f.Empty() {
		t.Fatal("expected empty ring after committing the read guard")
	}

	cancelGuard := f.ScopedWrite()
	if !cancelGuard.Ok() {
		t.Fatal("expected write guard to claim a slot")
	}
	cancelGuard.Get()
	cancelGuard.Cancel()
	if !f.Empty() {
		t.Fatal("expected cancel to leave the ring unchanged")
	}
}

func TestFifoBulkScopedGuards(t *testing.T) {
	f := NewFifoAtomic[int](8)
	bw := f.ScopedWriteN(5)
	if !bw.Ok() {
		t.Fatal("expected bulk write guard to claim 5 slots on an empty ring")
	}
	for i := 0; i < 5; i++ {
		bw.EmplaceNext(100 + i)
	}
	bw.ArmPublish()
	bw.Close()
	if f.Size() != 5 {
		t.Fatalf("expected size 5 after bulk publish, got %d", f.Size())
	}

	br := f.ScopedReadN(5)
	if !br.Ok() || br.Len() != 5 {
		t.Fatalf("expected bulk read guard over 5 slots, got ok=%v len=%d", br.Ok(), br.Len())
	}
	for i := uint64(0); i < 5; i++ {
		if got := br.At(i); got != 100+int(i) {
			t.Fatalf("bulk read At(%d) = %d, want %d", i, got, 100+int(i))
		}
	}
	br.Commit()
	if !f.Empty() {
		t.Fatal("expected empty ring after committing bulk read")
	}
}

func TestFifoEmplaceAndAt(t *testing.T) {
	f := NewFifoAtomic[string](4)
	f.Emplace(func(s *string) { *s = "hello" })
	f.Emplace(func(s *string) { *s = "world" })
	if got := f.At(0); got != "hello" {
		t.Fatalf("At(0) = %q, want hello", got)
	}
	if got := f.At(1); got != "world" {
		t.Fatalf("At(1) = %q, want world", got)
	}
}

func TestFifoPanicsOnPrecondition(t *testing.T) {
	f := NewFifoAtomic[int](2)
	f.Push(1)
	f.Push(2)

	defer func() {
		if recover() == nil {
			t.Fatal("expected Push to panic on a full ring")
		}
	}()
	f.Push(3)
}

func TestFifoConsumeAll(t *testing.T) {
	f := NewFifoAtomic[int](8)
	for i := 0; i < 5; i++ {
		f.Push(i)
	}
	f.ConsumeAll()
	if !f.Empty() {
		t.Fatal("expected empty ring after ConsumeAll")
	}
}

func TestFifoClearAndDestroy(t *testing.T) {
	f := NewFifoAtomic[int](8)
	f.Push(1)
	f.Push(2)
	f.Clear()
	if !f.Empty() {
		t.Fatal("expected empty ring after Clear")
	}
	f.Push(3)
	f.Destroy()
	if f.IsValid() {
		t.Fatal("expected invalid ring after Destroy")
	}
}
