// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import (
	"bytes"
	"testing"
)

func TestPoolPushPopRawBytes(t *testing.T) {
	p := NewPoolAtomic(8, 16)
	if p.BufferSize() != 16 {
		t.Fatalf("expected buffer size 16, got %d", p.BufferSize())
	}
	payload := []byte("hello, pool")
	if !p.TryPush(payload) {
		t.Fatal("TryPush unexpectedly failed")
	}
	front, ok := p.TryFront()
	if !ok {
		t.Fatal("TryFront unexpectedly failed")
	}
	if !bytes.Equal(front[:len(payload)], payload) {
		t.Fatalf("front payload = %q, want %q", front[:len(payload)], payload)
	}
	buf, ok := p.TryPop()
	if !ok || !bytes.Equal(buf[:len(payload)], payload) {
		t.Fatalf("pop payload mismatch: ok=%v buf=%q", ok, buf[:len(payload)])
	}
	if !p.Empty() {
		t.Fatal("expected empty pool after single pop")
	}
}

func TestPoolPushTruncatesOversizedPayload(t *testing.T) {
	p := NewPoolAtomic(4, 4)
	oversized := []byte("this payload is too long")
	p.Push(oversized)
	front := p.Front()
	if !bytes.Equal(front, oversized[:4]) {
		t.Fatalf("expected truncated payload %q, got %q", oversized[:4], front)
	}
}

func TestPoolPushZeroLengthIsLegalNoOp(t *testing.T) {
	p := NewPoolAtomic(4, 8)
	if !p.TryPush(nil) {
		t.Fatal("pushing a nil/zero-length payload must be legal")
	}
	if p.Size() != 1 {
		t.Fatalf("expected size 1 after zero-length push, got %d", p.Size())
	}
}

func TestPoolClaimAsTypedView(t *testing.T) {
	type header struct {
		Kind uint32
		Len  uint32
	}
	p := NewPoolAtomic(4, 16)
	hdr, ok := PoolClaimAs[header](p)
	if !ok {
		t.Fatal("PoolClaimAs unexpectedly failed within buffer size")
	}
	hdr.Kind = 7
	hdr.Len = 99
	p.Publish(1)

	var out header
	if !PoolTryPeek(p, &out) {
		t.Fatal("PoolTryPeek unexpectedly failed")
	}
	if out.Kind != 7 || out.Len != 99 {
		t.Fatalf("unexpected peeked header: %+v", out)
	}
}

func TestPoolClaimAsRejectsOversizedType(t *testing.T) {
	type big struct {
		Data [64]byte
	}
	p := NewPoolAtomic(4, 8)
	if _, ok := PoolClaimAs[big](p); ok {
		t.Fatal("PoolClaimAs must refuse a type larger than BufferSize()")
	}
}

func TestPoolResizeGrowsDepthAndBufferSize(t *testing.T) {
	p := NewPoolAtomic(4, 4)
	p.Push([]byte("ab"))
	p.Push([]byte("cd"))

	if !p.Resize(8, 8) {
		t.Fatal("Resize(8,8) unexpectedly refused")
	}
	if p.Cap() != 8 || p.BufferSize() != 8 {
		t.Fatalf("unexpected post-resize shape: cap=%d bufferSize=%d", p.Cap(), p.BufferSize())
	}
	first := p.Front()
	if !bytes.Equal(first[:2], []byte("ab")) {
		t.Fatalf("expected first payload preserved as 'ab', got %q", first[:2])
	}
}

func TestPoolResizeRefusesShrink(t *testing.T) {
	p := NewPoolAtomic(8, 8)
	if p.Resize(4, 8) {
		t.Fatal("Resize must refuse a smaller depth")
	}
	if p.Resize(8, 4) {
		t.Fatal("Resize must refuse a smaller buffer size")
	}
}

func TestPoolResizeGrowsBufferSizeOnlyAtSameDepth(t *testing.T) {
	p := NewPoolAtomic(4, 4)
	p.Push([]byte("ab"))

	if !p.Resize(4, 8) {
		t.Fatal("Resize must allow growing buffer size alone at an unchanged depth")
	}
	if p.Cap() != 4 || p.BufferSize() != 8 {
		t.Fatalf("unexpected post-resize shape: cap=%d bufferSize=%d", p.Cap(), p.BufferSize())
	}
	first := p.Front()
	if !bytes.Equal(first[:2], []byte("ab")) {
		t.Fatalf("expected payload preserved as 'ab', got %q", first[:2])
	}
}

func TestPoolResizeZeroIsExplicitShrinkToZero(t *testing.T) {
	p := NewPoolAtomic(4, 4)
	p.Push([]byte("ab"))
	if !p.Resize(0, 0) {
		t.Fatal("Resize(0, 0) must succeed as an explicit shrink-to-zero")
	}
	if p.Cap() != 0 || p.IsValid() {
		t.Fatal("Resize(0, 0) must destroy storage and detach the ring")
	}
}

func TestPoolSwapAndDestroy(t *testing.T) {
	a := NewPoolAtomic(4, 4)
	b := NewPoolAtomic(4, 4)
	a.Push([]byte("x"))
	a.Swap(b)
	if b.Size() != 1 {
		t.Fatal("expected payload to move across Swap")
	}
	b.Destroy()
	if b.IsValid() {
		t.Fatal("expected invalid pool after Destroy")
	}
}
