// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

// Slot is a singly-linked collection node pairing an optional key with
// one value cell. Arrays use keyless slots; objects set a key. A slot
// belongs to exactly one collection.
type Slot struct {
	key   string    // linked key text; empty when pooled or keyless
	keyID StringID  // pooled key handle; NilString when linked or keyless
	data  VariantData
	next  SlotID
}

// Data returns the slot's value cell.
func (s *Slot) Data() *VariantData {
	return &s.data
}

// Next returns the index of the next slot in the chain.
func (s *Slot) Next() SlotID {
	return s.next
}

// Key returns the key text, resolving pooled keys through p.
func (s *Slot) Key(p *Pool) string {
	if s.keyID != NilString {
		return p.String(s.keyID)
	}
	return s.key
}

// OwnsKey reports whether the key is pool storage (and therefore counted
// and released by the model).
func (s *Slot) OwnsKey() bool {
	return s.keyID != NilString
}

func (s *Slot) setLinkedKey(k string) {
	s.key = k
	s.keyID = NilString
}

func (s *Slot) setOwnedKey(id StringID) {
	s.key = ""
	s.keyID = id
}

// release drops the slot's owned resources: the key's reference count if
// the key is pooled, and the value cell's payload recursively. The slot
// stays linked; callers unlink and free it separately.
func (s *Slot) release(p *Pool) {
	if s.keyID != NilString {
		p.ReleaseString(s.keyID)
		s.keyID = NilString
	}
	s.key = ""
	s.data.release(p)
}

// reset prepares the slot for the freelist.
func (s *Slot) reset() {
	s.key = ""
	s.keyID = NilString
	s.next = NilSlot
	s.data = VariantData{typ: typeFree, str: NilString, coll: CollectionData{head: NilSlot, tail: NilSlot}}
}
