// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

import "code.hybscloud.com/atomix"

// Counter is the load/store contract a counter backend must provide for a
// single head or tail index. Load/Store are the role-local, same-thread
// operations; LoadAcquire/StoreRelease are the cross-thread handshake used
// to observe or publish the other role's progress.
//
// For single-threaded backends (Plain, Volatile) LoadAcquire/StoreRelease
// degrade to the same access as Load/Store: there is no second thread to
// hand off to.
type Counter interface {
	Load() uint64
	LoadAcquire() uint64
	Store(v uint64)
	StoreRelease(v uint64)
}

// counterPtr constrains a counter backend value type C so that *C
// implements Counter. ringCore stores backends by value and only ever
// takes their address, which is the idiomatic Go stand-in for the
// pointer-receiver "policy" template parameter of the source design.
type counterPtr[C any] interface {
	*C
	Counter
}

// PlainCounter is the P backend: a bare integer with no cross-thread
// ordering beyond program order. Valid only when the ring is used from a
// single thread, or externally synchronized by the caller (e.g. a mutex
// around the whole ring, or carrier synchronization such as a channel).
type PlainCounter struct {
	v uint64
}

func (c *PlainCounter) Load() uint64          { return c.v }
func (c *PlainCounter) LoadAcquire() uint64   { return c.v }
func (c *PlainCounter) Store(v uint64)        { c.v = v }
func (c *PlainCounter) StoreRelease(v uint64) { c.v = v }

// VolatileCounter is the V backend: optimizer-opaque (every load reads a
// consistent, non-torn value) but carries no cross-thread ordering
// guarantee. Go has no `volatile` keyword; an atomic word accessed purely
// through its relaxed load/store is the nearest faithful analogue — it
// rules out word-tearing and reordering-by-the-compiler without promising
// the acquire/release handshake that makes cross-goroutine use safe.
//
// Intended for debugging and single-stepping only, exactly as the source
// design specifies; not safe for concurrent producer/consumer use.
type VolatileCounter struct {
	v atomix.Uint64
}

func (c *VolatileCounter) Load() uint64          { return c.v.LoadRelaxed() }
func (c *VolatileCounter) LoadAcquire() uint64   { return c.v.LoadRelaxed() }
func (c *VolatileCounter) Store(v uint64)        { c.v.StoreRelaxed(v) }
func (c *VolatileCounter) StoreRelease(v uint64) { c.v.StoreRelaxed(v) }

// AtomicCounter is the A backend: the default multi-threaded backend.
// LoadAcquire/StoreRelease pair across head and tail to establish the
// producer/consumer happens-before edges described in §4.3.
type AtomicCounter struct {
	v atomix.Uint64
}

func (c *AtomicCounter) Load() uint64          { return c.v.LoadRelaxed() }
func (c *AtomicCounter) LoadAcquire() uint64   { return c.v.LoadAcquire() }
func (c *AtomicCounter) Store(v uint64)        { c.v.StoreRelaxed(v) }
func (c *AtomicCounter) StoreRelease(v uint64) { c.v.StoreRelease(v) }

// PaddedCounter is the CA backend: AtomicCounter plus cache-line padding on
// both sides, isolating it from whatever sits next to it in a container
// struct. Use for high-throughput rings where head and tail would
// otherwise share a cache line with each other or with hot producer/
// consumer-local fields.
type PaddedCounter struct {
	_ pad
	v atomix.Uint64
	_ pad
}

func (c *PaddedCounter) Load() uint64          { return c.v.LoadRelaxed() }
func (c *PaddedCounter) LoadAcquire() uint64   { return c.v.LoadAcquire() }
func (c *PaddedCounter) Store(v uint64)        { c.v.StoreRelaxed(v) }
func (c *PaddedCounter) StoreRelease(v uint64) { c.v.StoreRelease(v) }
