// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// This file binds the four standard policy choices of §6 (P, V, A, CA)
// to short, concrete names for every container shape, so callers do not
// have to spell out the counter backend and its pointer type at every
// use site. A generic type alias names exactly the same type as its
// right-hand side — these are not new types, just shorter spellings.

// Plain-backend aliases (single-thread or externally synchronized use).
type (
	FifoPlain[T any]     = Fifo[T, PlainCounter, *PlainCounter]
	FifoViewPlain[T any] = FifoView[T, PlainCounter, *PlainCounter]
	PoolPlain            = Pool[PlainCounter, *PlainCounter]
	PoolViewPlain        = PoolView[PlainCounter, *PlainCounter]
)

// Volatile-backend aliases (debugging/single-stepping only).
type (
	FifoVolatile[T any]     = Fifo[T, VolatileCounter, *VolatileCounter]
	FifoViewVolatile[T any] = FifoView[T, VolatileCounter, *VolatileCounter]
	PoolVolatile            = Pool[VolatileCounter, *VolatileCounter]
	PoolViewVolatile        = PoolView[VolatileCounter, *VolatileCounter]
)

// Atomic-backend aliases (the default multi-goroutine backend).
type (
	FifoAtomic[T any]     = Fifo[T, AtomicCounter, *AtomicCounter]
	FifoViewAtomic[T any] = FifoView[T, AtomicCounter, *AtomicCounter]
	PoolAtomic            = Pool[AtomicCounter, *AtomicCounter]
	PoolViewAtomic        = PoolView[AtomicCounter, *AtomicCounter]
)

// Padded-atomic-backend aliases (high-throughput, cache-line isolated).
type (
	FifoPadded[T any]     = Fifo[T, PaddedCounter, *PaddedCounter]
	FifoViewPadded[T any] = FifoView[T, PaddedCounter, *PaddedCounter]
	PoolPadded            = Pool[PaddedCounter, *PaddedCounter]
	PoolViewPadded        = PoolView[PaddedCounter, *PaddedCounter]
)

// NewFifoPlain constructs a single-threaded (or externally synchronized)
// owning fifo. See NewFifo for the capacity contract.
func NewFifoPlain[T any](capacity uint64) *FifoPlain[T] {
	return NewFifo[T, PlainCounter, *PlainCounter](capacity)
}

// NewFifoVolatile constructs a debugging-only owning fifo.
func NewFifoVolatile[T any](capacity uint64) *FifoVolatile[T] {
	return NewFifo[T, VolatileCounter, *VolatileCounter](capacity)
}

// NewFifoAtomic constructs the default multi-goroutine owning fifo.
func NewFifoAtomic[T any](capacity uint64) *FifoAtomic[T] {
	return NewFifo[T, AtomicCounter, *AtomicCounter](capacity)
}

// NewFifoPadded constructs a cache-line-isolated owning fifo for
// high-throughput multi-goroutine use.
func NewFifoPadded[T any](capacity uint64) *FifoPadded[T] {
	return NewFifo[T, PaddedCounter, *PaddedCounter](capacity)
}

// NewFifoViewPlain returns a detached single-threaded fifo view.
func NewFifoViewPlain[T any]() *FifoViewPlain[T] {
	return NewFifoView[T, PlainCounter, *PlainCounter]()
}

// NewFifoViewVolatile returns a detached debugging-only fifo view.
func NewFifoViewVolatile[T any]() *FifoViewVolatile[T] {
	return NewFifoView[T, VolatileCounter, *VolatileCounter]()
}

// NewFifoViewAtomic returns a detached multi-goroutine fifo view.
func NewFifoViewAtomic[T any]() *FifoViewAtomic[T] {
	return NewFifoView[T, AtomicCounter, *AtomicCounter]()
}

// NewFifoViewPadded returns a detached cache-line-isolated fifo view.
func NewFifoViewPadded[T any]() *FifoViewPadded[T] {
	return NewFifoView[T, PaddedCounter, *PaddedCounter]()
}

// NewPoolPlain constructs a single-threaded owning pool.
func NewPoolPlain(depth, bufferSize uint64) *PoolPlain {
	return NewPool[PlainCounter, *PlainCounter](depth, bufferSize)
}

// NewPoolVolatile constructs a debugging-only owning pool.
func NewPoolVolatile(depth, bufferSize uint64) *PoolVolatile {
	return NewPool[VolatileCounter, *VolatileCounter](depth, bufferSize)
}

// NewPoolAtomic constructs the default multi-goroutine owning pool.
func NewPoolAtomic(depth, bufferSize uint64) *PoolAtomic {
	return NewPool[AtomicCounter, *AtomicCounter](depth, bufferSize)
}

// NewPoolPadded constructs a cache-line-isolated owning pool.
func NewPoolPadded(depth, bufferSize uint64) *PoolPadded {
	return NewPool[PaddedCounter, *PaddedCounter](depth, bufferSize)
}

// NewPoolViewPlain returns a detached single-threaded pool view.
func NewPoolViewPlain() *PoolViewPlain {
	return NewPoolView[PlainCounter, *PlainCounter]()
}

// NewPoolViewVolatile returns a detached debugging-only pool view.
func NewPoolViewVolatile() *PoolViewVolatile {
	return NewPoolView[VolatileCounter, *VolatileCounter]()
}

// NewPoolViewAtomic returns a detached multi-goroutine pool view.
func NewPoolViewAtomic() *PoolViewAtomic {
	return NewPoolView[AtomicCounter, *AtomicCounter]()
}

// NewPoolViewPadded returns a detached cache-line-isolated pool view.
func NewPoolViewPadded() *PoolViewPadded {
	return NewPoolView[PaddedCounter, *PaddedCounter]()
}
