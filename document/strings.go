// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import "github.com/cespare/xxhash/v2"

// stringCell is one entry of the string table.
type stringCell struct {
	data string
	refs int
	hash uint64
	raw  bool
}

// stringTable stores pooled strings with reference counts. Interned
// entries are content-addressed through an xxhash index so equal
// content shares one cell; raw entries bypass the index entirely.
// Handles are positional and stable: freed cells are reused in place,
// never shifted.
type stringTable struct {
	cells []stringCell
	cap   int
	free  []StringID
	index map[uint64][]StringID
}

func (t *stringTable) init() {
	t.cells = make([]stringCell, 0, t.cap)
	t.index = make(map[uint64][]StringID)
}

// alloc returns a reusable or fresh cell index, or NilString at capacity.
func (t *stringTable) alloc() StringID {
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		return id
	}
	if len(t.cells) >= t.cap {
		return NilString
	}
	t.cells = append(t.cells, stringCell{})
	return StringID(len(t.cells) - 1)
}

// save interns s: an existing cell with equal content gains a reference,
// otherwise s is copied into a new cell and indexed.
func (t *stringTable) save(s string) StringID {
	h := xxhash.Sum64String(s)
	for _, id := range t.index[h] {
		if t.cells[id].data == s {
			t.cells[id].refs++
			return id
		}
	}
	id := t.alloc()
	if id == NilString {
		return NilString
	}
	t.cells[id] = stringCell{data: s, refs: 1, hash: h}
	t.index[h] = append(t.index[h], id)
	return id
}

// saveRaw copies s into an unindexed cell. Every call yields a distinct
// handle even for identical content.
func (t *stringTable) saveRaw(s string) StringID {
	id := t.alloc()
	if id == NilString {
		return NilString
	}
	t.cells[id] = stringCell{data: s, refs: 1, raw: true}
	return id
}

// release drops one reference, reclaiming the cell at zero.
func (t *stringTable) release(id StringID) {
	if id < 0 || int(id) >= len(t.cells) {
		return
	}
	c := &t.cells[id]
	if c.refs == 0 {
		return
	}
	c.refs--
	if c.refs > 0 {
		return
	}
	if !c.raw {
		bucket := t.index[c.hash]
		for i, bid := range bucket {
			if bid == id {
				bucket = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(bucket) == 0 {
			delete(t.index, c.hash)
		} else {
			t.index[c.hash] = bucket
		}
	}
	*c = stringCell{}
	t.free = append(t.free, id)
}

func (t *stringTable) get(id StringID) string {
	if id < 0 || int(id) >= len(t.cells) {
		return ""
	}
	return t.cells[id].data
}

func (t *stringTable) refs(id StringID) int {
	if id < 0 || int(id) >= len(t.cells) {
		return 0
	}
	return t.cells[id].refs
}

func (t *stringTable) stats() (live, bytes int) {
	for i := range t.cells {
		if t.cells[i].refs > 0 {
			live++
			bytes += stringSizeof(len(t.cells[i].data))
		}
	}
	return live, bytes
}
