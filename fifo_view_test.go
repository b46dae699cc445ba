// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "testing"

func TestFifoViewAttachDetach(t *testing.T) {
	v := NewFifoViewAtomic[int]()
	if v.IsValid() {
		t.Fatal("expected a freshly constructed view to be detached")
	}
	storage := make([]int, 8)
	if !v.Attach(storage) {
		t.Fatal("Attach unexpectedly refused a power-of-two-length slice")
	}
	if v.Cap() != 8 || !v.Empty() {
		t.Fatalf("unexpected state after attach: cap=%d empty=%v", v.Cap(), v.Empty())
	}
	v.Push(1)
	v.Push(2)
	if v.Size() != 2 {
		t.Fatalf("expected size 2, got %d", v.Size())
	}
	v.Detach()
	if v.IsValid() {
		t.Fatal("expected detached view to report invalid")
	}
}

func TestFifoViewAttachRejectsNonPowerOfTwo(t *testing.T) {
	v := NewFifoViewAtomic[int]()
	if v.Attach(make([]int, 6)) {
		t.Fatal("Attach must refuse a non-power-of-two-length slice")
	}
	if v.IsValid() {
		t.Fatal("a refused Attach must leave the view detached")
	}
}

func TestFifoViewAdoptRestoresState(t *testing.T) {
	storage := make([]int, 8)
	for i := range storage {
		storage[i] = i * 10
	}
	v := NewFifoViewAtomic[int]()
	if !v.Adopt(storage, 5, 2) {
		t.Fatal("Adopt unexpectedly refused a valid head/tail pair")
	}
	if v.Size() != 3 {
		t.Fatalf("expected size 3 (head=5,tail=2), got %d", v.Size())
	}
	if got := v.Front(); got != 20 {
		t.Fatalf("expected front 20, got %d", got)
	}
	head, tail := v.State()
	if head != 5 || tail != 2 {
		t.Fatalf("State() = (%d,%d), want (5,2)", head, tail)
	}
}

func TestFifoViewAdoptRejectsImpossibleGap(t *testing.T) {
	v := NewFifoViewAtomic[int]()
	storage := make([]int, 8)
	if v.Adopt(storage, 10, 0) {
		t.Fatal("Adopt must refuse a head-tail gap exceeding capacity")
	}
}

func TestFifoViewMoveTransfersOwnership(t *testing.T) {
	v := NewFifoViewAtomic[int]()
	storage := make([]int, 4)
	v.Attach(storage)
	v.Push(42)

	moved := v.Move()
	if v.IsValid() {
		t.Fatal("expected source view to be detached after Move")
	}
	if !moved.IsValid() || moved.Size() != 1 {
		t.Fatalf("expected moved view to carry the prior state, got valid=%v size=%d", moved.IsValid(), moved.Size())
	}
	if got := moved.Front(); got != 42 {
		t.Fatalf("expected moved front 42, got %d", got)
	}
}
