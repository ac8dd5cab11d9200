// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

// Default pool capacities. One document on one pool; size for the
// largest document the pool must hold.
const (
	DefaultSlotCapacity   = 1024
	DefaultStringCapacity = 256
)

// Opt configures a Pool.
type Opt func(*Pool)

// WithSlotCapacity sets the fixed number of slots the pool can hold.
func WithSlotCapacity(n int) Opt {
	return func(p *Pool) {
		if n > 0 {
			p.slotCap = n
		}
	}
}

// WithStringCapacity sets the fixed number of distinct pooled strings.
func WithStringCapacity(n int) Opt {
	return func(p *Pool) {
		if n > 0 {
			p.strings.cap = n
		}
	}
}

// Pool is the storage arena behind a document: a fixed-capacity slot
// block with an intrusive freelist, and a ref-counted string table.
// Allocation never grows the block; when capacity is reached the
// allocators return NilSlot/NilString and callers surface the failure
// in-band.
//
// A Pool serves exactly one document and is not safe for concurrent use.
type Pool struct {
	slots    []Slot
	slotCap  int
	freeHead SlotID
	freeLen  int
	strings  stringTable
}

// NewPool returns an empty pool with the given options applied.
func NewPool(opts ...Opt) *Pool {
	p := &Pool{
		slotCap:  DefaultSlotCapacity,
		freeHead: NilSlot,
	}
	p.strings.cap = DefaultStringCapacity
	for _, opt := range opts {
		opt(p)
	}
	p.slots = make([]Slot, 0, p.slotCap)
	p.strings.init()
	return p
}

// Slot resolves a slot index. Returns nil for NilSlot or any index
// outside the live block.
func (p *Pool) Slot(id SlotID) *Slot {
	if id < 0 || int(id) >= len(p.slots) {
		return nil
	}
	return &p.slots[id]
}

// AllocSlot returns the index of a fresh null-valued slot, reusing the
// freelist before extending the block. Returns NilSlot at capacity.
func (p *Pool) AllocSlot() SlotID {
	if p.freeHead != NilSlot {
		id := p.freeHead
		s := &p.slots[id]
		p.freeHead = s.next
		p.freeLen--
		s.reset()
		s.data.typ = TypeNull
		return id
	}
	if len(p.slots) >= p.slotCap {
		return NilSlot
	}
	p.slots = append(p.slots, Slot{})
	id := SlotID(len(p.slots) - 1)
	s := &p.slots[id]
	s.reset()
	s.data.typ = TypeNull
	return id
}

// FreeSlot pushes a slot onto the freelist. The caller must have
// released the slot's resources and unlinked it from its collection.
func (p *Pool) FreeSlot(id SlotID) {
	s := p.Slot(id)
	if s == nil {
		return
	}
	s.reset()
	s.next = p.freeHead
	p.freeHead = id
	p.freeLen++
}

// Compact removes the contiguous run of free slots at the front of the
// block by shifting every live slot down, and returns the uniform
// signed distance applied to surviving indices (zero or negative).
// Freelist links inside the pool are rebased here; every document on
// the pool must rebase its own links via MovePointers(distance) before
// touching the tree again.
//
// Only the leading free run is reclaimed: free slots interleaved with
// live ones keep their relative positions so one distance covers all
// survivors.
func (p *Pool) Compact() SlotID {
	k := 0
	for k < len(p.slots) && p.slots[k].data.typ == typeFree {
		k++
	}
	if k == 0 {
		return 0
	}
	distance := SlotID(-k)

	// Surviving freelist entries, rebased, in original order. Collected
	// before the shift while the chain is still intact.
	var free []SlotID
	for id := p.freeHead; id != NilSlot; id = p.slots[id].next {
		if int(id) >= k {
			free = append(free, id+distance)
		}
	}

	copy(p.slots, p.slots[k:])
	p.slots = p.slots[:len(p.slots)-k]

	p.freeHead = NilSlot
	p.freeLen = len(free)
	for i := len(free) - 1; i >= 0; i-- {
		p.slots[free[i]].next = p.freeHead
		p.freeHead = free[i]
	}
	return distance
}

// SaveString interns s and returns its handle, bumping the reference
// count when equal content is already pooled. Returns NilString at
// capacity.
func (p *Pool) SaveString(s string) StringID {
	return p.strings.save(s)
}

// SaveRawString copies s into the pool without deduplication and
// returns its handle. Raw entries never alias interned ones. Returns
// NilString at capacity.
func (p *Pool) SaveRawString(s string) StringID {
	return p.strings.saveRaw(s)
}

// ReleaseString drops one reference; storage is reclaimed when the
// count hits zero. NilString is ignored.
func (p *Pool) ReleaseString(id StringID) {
	p.strings.release(id)
}

// String resolves a string handle, returning "" for NilString or a
// reclaimed entry.
func (p *Pool) String(id StringID) string {
	return p.strings.get(id)
}

// StringRefs returns the reference count of a pooled string, 0 for
// NilString or a reclaimed entry.
func (p *Pool) StringRefs(id StringID) int {
	return p.strings.refs(id)
}

// PoolStats is a point-in-time snapshot of pool occupancy.
type PoolStats struct {
	SlotsUsed      int // live slots holding document data
	SlotsFree      int // slots parked on the freelist
	SlotCapacity   int // fixed slot limit
	Strings        int // live pooled strings (interned and raw)
	StringBytes    int // length-prefixed storage bytes of live strings
	StringCapacity int // fixed string limit
}

// Stats reports current occupancy.
func (p *Pool) Stats() PoolStats {
	live, bytes := p.strings.stats()
	return PoolStats{
		SlotsUsed:      len(p.slots) - p.freeLen,
		SlotsFree:      p.freeLen,
		SlotCapacity:   p.slotCap,
		Strings:        live,
		StringBytes:    bytes,
		StringCapacity: p.strings.cap,
	}
}
