// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spsc

// Region is a contiguous sub-range of a ring's slot array, expressed as a
// starting physical index and a count. It is transient: produced by a
// bulk claim and meant to be consumed (written or read) in the same
// scope, then published/popped explicitly — the calculator itself never
// publishes or pops (§4.4).
type Region struct {
	Index uint64 // physical start index into the slot array
	Count uint64
}

// Claim is the result of a bulk claim: up to two contiguous regions that
// together cover Total elements. Second is only non-empty when the claim
// wraps past the end of the slot array. First.Count is zero only when
// Total is zero.
type Claim struct {
	First  Region
	Second Region
	Total  uint64
}

// claimWrite implements §4.4's claim_write(max) against the producer's
// shadow-cache view of free space.
func claimWrite[C any, CP counterPtr[C]](r *ringCore[C, CP], maxCount uint64) Claim {
	head, free := r.producerAvailable(maxCount)
	total := maxCount
	if free < total {
		total = free
	}
	return buildClaim(head, r.geom.capacity, total)
}

// claimRead implements §4.4's claim_read(max) against the consumer's
// shadow-cache view of used space.
func claimRead[C any, CP counterPtr[C]](r *ringCore[C, CP], maxCount uint64) Claim {
	tail, size := r.consumerAvailable(maxCount)
	total := maxCount
	if size < total {
		total = size
	}
	return buildClaim(tail, r.geom.capacity, total)
}

// PhysicalIndex maps a logical offset p in [0, Total) within this claim
// to its physical slot index, accounting for the wrap split between
// First and Second.
func (c Claim) PhysicalIndex(p uint64) uint64 {
	if p < c.First.Count {
		return c.First.Index + p
	}
	return c.Second.Index + (p - c.First.Count)
}

// buildClaim turns a starting logical index, a capacity and a desired
// total into the first/second region split around the wrap point.
func buildClaim(start, capacity, total uint64) Claim {
	if total == 0 {
		return Claim{}
	}
	idx := start & (capacity - 1)
	firstN := capacity - idx
	if firstN > total {
		firstN = total
	}
	c := Claim{
		First: Region{Index: idx, Count: firstN},
		Total: total,
	}
	if total > firstN {
		c.Second = Region{Index: 0, Count: total - firstN}
	}
	return c
}
