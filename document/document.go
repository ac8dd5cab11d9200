// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

// Document owns a root value cell and the pool backing it, and keeps the
// rebase protocol out of caller code: Compact shifts the pool and
// rebases the tree in one step.
type Document struct {
	pool *Pool
	root VariantData
}

// New returns an empty (null-rooted) document on a fresh pool.
func New(opts ...Opt) *Document {
	return &Document{pool: NewPool(opts...)}
}

// Root returns the document's root cell.
func (d *Document) Root() *VariantData {
	return &d.root
}

// Pool returns the document's backing pool.
func (d *Document) Pool() *Pool {
	return d.pool
}

// Clear releases the whole tree, leaving a null root. Pool capacity is
// retained.
func (d *Document) Clear() {
	d.root.SetNull(d.pool)
}

// Set rebuilds the document from a plain Go value. Returns false when
// the pool runs out mid-build; the root then holds a partial tree.
func (d *Document) Set(value interface{}) bool {
	return SetInterface(d.pool, &d.root, value)
}

// Interface converts the document to plain Go values.
func (d *Document) Interface() interface{} {
	return ToInterface(d.pool, &d.root)
}

// Lookup resolves a parsed path from the root.
func (d *Document) Lookup(path Path) *VariantData {
	return LookupPath(d.pool, &d.root, path)
}

// Size returns the element or member count of the root, 0 for scalars.
func (d *Document) Size() int {
	return d.root.Size(d.pool)
}

// Nesting returns the depth of the tree, 0 for a scalar root.
func (d *Document) Nesting() int {
	return d.root.Nesting(d.pool)
}

// MemoryUsage returns the pool bytes held by the tree.
func (d *Document) MemoryUsage() int {
	return d.root.MemoryUsage(d.pool)
}

// Compact reclaims the pool's leading free run and rebases every link in
// the tree by the resulting distance. Returns the distance (zero or
// negative).
func (d *Document) Compact() SlotID {
	distance := d.pool.Compact()
	if distance != 0 {
		d.root.MovePointers(d.pool, distance)
	}
	return distance
}

// Equal reports deep structural equality with another document.
func (d *Document) Equal(other *Document) bool {
	return Equal(&d.root, d.pool, &other.root, other.pool)
}
