// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

// CollectionData is the shared chain header for arrays and objects: a
// head/tail pair of slot indices. Append is O(1) through tail; every
// other operation walks the chain.
type CollectionData struct {
	head SlotID
	tail SlotID
}

// Head returns the index of the first slot, or NilSlot when empty.
func (c *CollectionData) Head() SlotID {
	return c.head
}

// addSlot links an already-allocated slot at the tail.
func (c *CollectionData) addSlot(p *Pool, id SlotID) {
	if c.tail == NilSlot {
		c.head = id
		c.tail = id
		return
	}
	p.Slot(c.tail).next = id
	c.tail = id
}

// AddElement appends a keyless slot holding null and returns its value
// cell, or nil when the pool is exhausted.
func (c *CollectionData) AddElement(p *Pool) *VariantData {
	id := p.AllocSlot()
	if id == NilSlot {
		return nil
	}
	c.addSlot(p, id)
	return p.Slot(id).Data()
}

// AddMember appends a member whose key is interned into the pool and
// returns its value cell. Fails with nil when either the slot pool or
// the string pool is exhausted; a slot allocated before the key failure
// is returned to the pool. Duplicate keys are not rejected; lookups see
// the first occurrence.
func (c *CollectionData) AddMember(p *Pool, key string) *VariantData {
	id := p.AllocSlot()
	if id == NilSlot {
		return nil
	}
	kid := p.SaveString(key)
	if kid == NilString {
		p.FreeSlot(id)
		return nil
	}
	s := p.Slot(id)
	s.setOwnedKey(kid)
	c.addSlot(p, id)
	return s.Data()
}

// AddLinkedMember appends a member whose key text stays caller-owned:
// nothing is copied into the pool and the key carries no storage charge.
// Empty keys are rejected; an empty linked key would make the slot
// indistinguishable from a keyless array element.
func (c *CollectionData) AddLinkedMember(p *Pool, key string) *VariantData {
	if key == "" {
		return nil
	}
	id := p.AllocSlot()
	if id == NilSlot {
		return nil
	}
	s := p.Slot(id)
	s.setLinkedKey(key)
	c.addSlot(p, id)
	return s.Data()
}

// GetElement returns the value cell at index, or nil when out of range.
func (c *CollectionData) GetElement(p *Pool, index int) *VariantData {
	if index < 0 {
		return nil
	}
	id := c.head
	for id != NilSlot && index > 0 {
		id = p.Slot(id).next
		index--
	}
	if id == NilSlot {
		return nil
	}
	return p.Slot(id).Data()
}

// GetOrAddElement returns the value cell at index, appending null
// elements until the collection reaches index+1 entries. Returns nil
// when the pool runs out mid-growth; elements appended before the
// failure remain.
func (c *CollectionData) GetOrAddElement(p *Pool, index int) *VariantData {
	if index < 0 {
		return nil
	}
	id := c.head
	for id != NilSlot && index > 0 {
		id = p.Slot(id).next
		index--
	}
	if id != NilSlot {
		return p.Slot(id).Data()
	}
	var data *VariantData
	for ; index >= 0; index-- {
		data = c.AddElement(p)
		if data == nil {
			return nil
		}
	}
	return data
}

// GetMember returns the value cell of the first member with the given
// key, or nil when absent.
func (c *CollectionData) GetMember(p *Pool, key string) *VariantData {
	for id := c.head; id != NilSlot; {
		s := p.Slot(id)
		if s.Key(p) == key {
			return s.Data()
		}
		id = s.next
	}
	return nil
}

// GetOrAddMember returns the value cell of the first member with the
// given key, appending a new null member when absent.
func (c *CollectionData) GetOrAddMember(p *Pool, key string) *VariantData {
	if data := c.GetMember(p, key); data != nil {
		return data
	}
	return c.AddMember(p, key)
}

// RemoveElement removes the element at index, releasing its resources
// and returning its slot to the pool. Out-of-range indices are ignored.
func (c *CollectionData) RemoveElement(p *Pool, index int) {
	if index < 0 {
		return
	}
	prev := NilSlot
	id := c.head
	for id != NilSlot && index > 0 {
		prev = id
		id = p.Slot(id).next
		index--
	}
	c.removeAndFree(p, id, prev)
}

// RemoveMember removes the first member with the given key, releasing
// its resources and returning its slot to the pool. Absent keys are
// ignored.
func (c *CollectionData) RemoveMember(p *Pool, key string) {
	prev := NilSlot
	for id := c.head; id != NilSlot; {
		s := p.Slot(id)
		if s.Key(p) == key {
			c.removeAndFree(p, id, prev)
			return
		}
		prev = id
		id = s.next
	}
}

// Remove unlinks the slot at id without releasing it. prev is the slot
// preceding id, or NilSlot when id is the head.
func (c *CollectionData) Remove(p *Pool, id, prev SlotID) {
	if id == NilSlot {
		return
	}
	next := p.Slot(id).next
	if prev == NilSlot {
		c.head = next
	} else {
		p.Slot(prev).next = next
	}
	if c.tail == id {
		c.tail = prev
	}
}

func (c *CollectionData) removeAndFree(p *Pool, id, prev SlotID) {
	if id == NilSlot {
		return
	}
	p.Slot(id).release(p)
	c.Remove(p, id, prev)
	p.FreeSlot(id)
}

// GetPrevious returns the slot preceding target in the chain, or NilSlot
// when target is the head or not linked here.
func (c *CollectionData) GetPrevious(p *Pool, target SlotID) SlotID {
	prev := NilSlot
	for id := c.head; id != NilSlot; {
		if id == target {
			return prev
		}
		prev = id
		id = p.Slot(id).next
	}
	return NilSlot
}

// Clear releases every slot in the chain and empties the collection.
func (c *CollectionData) Clear(p *Pool) {
	for id := c.head; id != NilSlot; {
		s := p.Slot(id)
		next := s.next
		s.release(p)
		p.FreeSlot(id)
		id = next
	}
	c.head = NilSlot
	c.tail = NilSlot
}

// Size returns the number of slots in the chain.
func (c *CollectionData) Size(p *Pool) int {
	n := 0
	for id := c.head; id != NilSlot; id = p.Slot(id).next {
		n++
	}
	return n
}

// MemoryUsage returns the pool bytes held by the chain: one SlotSize per
// slot, the length-prefixed size of each pooled key, and each child's
// own usage. Linked keys cost nothing.
func (c *CollectionData) MemoryUsage(p *Pool) int {
	total := 0
	for id := c.head; id != NilSlot; {
		s := p.Slot(id)
		total += SlotSize
		if s.OwnsKey() {
			total += stringSizeof(len(s.Key(p)))
		}
		total += s.data.MemoryUsage(p)
		id = s.next
	}
	return total
}

// movePointers rebases head, tail, and every chain link by distance,
// recursing into child collections. The rebase happens before the link
// is dereferenced: the old indices are already invalid.
func (c *CollectionData) movePointers(p *Pool, distance SlotID) {
	c.head = moveSlotID(c.head, distance)
	c.tail = moveSlotID(c.tail, distance)
	for id := c.head; id != NilSlot; {
		s := p.Slot(id)
		s.next = moveSlotID(s.next, distance)
		s.data.MovePointers(p, distance)
		id = s.next
	}
}
