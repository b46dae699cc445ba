// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "testing"

// TestPoolViewNullSlotDefense implements scenario 6 / property P14: a
// pool_view with one null table entry must refuse to claim or push
// through it without ever dereferencing the null slot.
func TestPoolViewNullSlotDefense(t *testing.T) {
	const depth = 16
	table := make([][]byte, depth)
	for i := range table {
		table[i] = make([]byte, 32)
	}
	table[7] = nil

	v := NewPoolViewAtomic()
	if !v.Adopt(table, 32, 7, 7) {
		t.Fatal("Adopt unexpectedly refused head=tail=7")
	}
	if !v.Empty() {
		t.Fatal("expected an empty ring positioned at the null slot")
	}

	if buf, ok := v.TryClaim(); ok || buf != nil {
		t.Fatalf("TryClaim must return nil,false at a null slot, got %v,%v", buf, ok)
	}
	if v.TryPush([]byte("x")) {
		t.Fatal("TryPush must return false at a null slot")
	}

	claim := v.ClaimWrite(1)
	if claim.Total != 1 || claim.First.Count != 1 || claim.First.Index != 7 {
		t.Fatalf("unexpected claim shape at null slot: %+v", claim)
	}
	if table[claim.First.Index] != nil {
		t.Fatal("expected the claimed physical slot to still be the null entry")
	}
}

func TestPoolViewAttachRejectsNonPowerOfTwoOrZeroBufferSize(t *testing.T) {
	v := NewPoolViewAtomic()
	table := make([][]byte, 6)
	if v.Attach(table, 16) {
		t.Fatal("Attach must refuse a non-power-of-two depth")
	}
	table2 := make([][]byte, 8)
	if v.Attach(table2, 0) {
		t.Fatal("Attach must refuse a zero buffer size")
	}
}

func TestPoolViewDetachAndMove(t *testing.T) {
	table := make([][]byte, 4)
	for i := range table {
		table[i] = make([]byte, 8)
	}
	v := NewPoolViewAtomic()
	v.Attach(table, 8)
	v.Push([]byte("hi"))

	moved := v.Move()
	if v.IsValid() {
		t.Fatal("expected source view detached after Move")
	}
	if moved.Size() != 1 {
		t.Fatalf("expected moved view to carry prior state, size=%d", moved.Size())
	}

	moved.Detach()
	if moved.IsValid() {
		t.Fatal("expected detached view to report invalid")
	}
}
