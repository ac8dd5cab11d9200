// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import (
	"math"

	"github.com/jsondoc/jsondoc/numconv"
)

// VariantData is a tagged-union value cell. Exactly one payload
// interpretation is valid at a time, selected by typ; changing typ
// invalidates the previous payload, so every mutating setter releases
// owned resources before overwriting.
//
// The zero value is a null cell.
type VariantData struct {
	typ  ValueType
	num  uint64         // scalar payload: bool 0/1, integers, float bits
	text string         // linked string payload
	str  StringID       // owned/raw string payload
	coll CollectionData // array/object payload
}

// Type returns the value type.
func (v *VariantData) Type() ValueType {
	return v.typ
}

// IsNull reports whether the cell is null. A nil cell reads as null.
func (v *VariantData) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// IsBoolean reports whether the cell holds a boolean.
func (v *VariantData) IsBoolean() bool {
	return v != nil && v.typ == TypeBoolean
}

// IsFloat reports whether the cell holds a float.
func (v *VariantData) IsFloat() bool {
	return v != nil && v.typ == TypeFloat
}

// IsString reports whether the cell holds a linked or owned string.
// Raw strings are preformatted output, not string values.
func (v *VariantData) IsString() bool {
	return v != nil && (v.typ == TypeLinkedString || v.typ == TypeOwnedString)
}

// IsRawString reports whether the cell holds preformatted text.
func (v *VariantData) IsRawString() bool {
	return v != nil && v.typ == TypeRawString
}

// IsArray reports whether the cell holds an array.
func (v *VariantData) IsArray() bool {
	return v != nil && v.typ == TypeArray
}

// IsObject reports whether the cell holds an object.
func (v *VariantData) IsObject() bool {
	return v != nil && v.typ == TypeObject
}

// IsCollection reports whether the cell holds an array or an object.
func (v *VariantData) IsCollection() bool {
	return v != nil && (v.typ == TypeArray || v.typ == TypeObject)
}

// AsBoolean coerces the cell to a boolean: numbers compare against zero,
// null is false, and any other non-null payload is true.
func (v *VariantData) AsBoolean() bool {
	if v == nil {
		return false
	}
	switch v.typ {
	case TypeBoolean, TypeSignedInteger, TypeUnsignedInteger:
		return v.num != 0
	case TypeFloat:
		return math.Float64frombits(v.num) != 0
	case TypeNull:
		return false
	default:
		return true
	}
}

// AsArray returns the collection payload, or nil when the cell is not an
// array.
func (v *VariantData) AsArray() *CollectionData {
	if !v.IsArray() {
		return nil
	}
	return &v.coll
}

// AsObject returns the collection payload, or nil when the cell is not an
// object.
func (v *VariantData) AsObject() *CollectionData {
	if !v.IsObject() {
		return nil
	}
	return &v.coll
}

// AsCollection returns the collection payload of an array or object cell,
// or nil for any other type.
func (v *VariantData) AsCollection() *CollectionData {
	if !v.IsCollection() {
		return nil
	}
	return &v.coll
}

// AsString returns the string payload of a linked or owned string cell,
// or "" for any other type.
func (v *VariantData) AsString(p *Pool) string {
	if v == nil {
		return ""
	}
	switch v.typ {
	case TypeLinkedString:
		return v.text
	case TypeOwnedString:
		return p.String(v.str)
	default:
		return ""
	}
}

// AsRawString returns the preformatted payload of a raw string cell, or
// "" for any other type.
func (v *VariantData) AsRawString(p *Pool) string {
	if v == nil || v.typ != TypeRawString {
		return ""
	}
	return p.String(v.str)
}

// AsFloat coerces the cell to a float: bool becomes 0/1, integers
// convert, string payloads parse best-effort, everything else is zero.
func AsFloat[T numconv.Float](p *Pool, v *VariantData) T {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeBoolean:
		return T(v.num)
	case TypeUnsignedInteger:
		return T(v.num)
	case TypeSignedInteger:
		return T(int64(v.num))
	case TypeLinkedString:
		return numconv.Parse[T](v.text)
	case TypeOwnedString:
		return numconv.Parse[T](p.String(v.str))
	case TypeFloat:
		return T(math.Float64frombits(v.num))
	default:
		return 0
	}
}

// AsIntegral coerces the cell to an integer type: bool becomes 0/1,
// cross-type numeric values convert (out of range yields zero, in-range
// floats truncate), string payloads parse best-effort.
func AsIntegral[T numconv.Integer](p *Pool, v *VariantData) T {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeBoolean:
		return T(v.num)
	case TypeUnsignedInteger:
		return numconv.Convert[T](v.num)
	case TypeSignedInteger:
		return numconv.Convert[T](int64(v.num))
	case TypeLinkedString:
		return numconv.Parse[T](v.text)
	case TypeOwnedString:
		return numconv.Parse[T](p.String(v.str))
	case TypeFloat:
		return numconv.Convert[T](math.Float64frombits(v.num))
	default:
		return 0
	}
}

// IsInteger reports whether the cell holds an integer value representable
// in T without truncation. Float and string cells always report false.
func IsInteger[T numconv.Integer](v *VariantData) bool {
	if v == nil {
		return false
	}
	switch v.typ {
	case TypeUnsignedInteger:
		return numconv.CanConvert[T](v.num)
	case TypeSignedInteger:
		return numconv.CanConvert[T](int64(v.num))
	default:
		return false
	}
}

// setType overwrites the discriminator and clears every payload field.
// Callers must have released owned resources first.
func (v *VariantData) setType(t ValueType) {
	v.typ = t
	v.num = 0
	v.text = ""
	v.str = NilString
	v.coll = CollectionData{head: NilSlot, tail: NilSlot}
}

// SetNull releases the cell's payload and makes it null.
func (v *VariantData) SetNull(p *Pool) {
	v.release(p)
	v.setType(TypeNull)
}

// SetBoolean releases the cell's payload and stores a boolean.
func (v *VariantData) SetBoolean(p *Pool, value bool) {
	v.release(p)
	v.setType(TypeBoolean)
	if value {
		v.num = 1
	}
}

// SetInteger releases the cell's payload and stores a signed integer.
func (v *VariantData) SetInteger(p *Pool, value int64) {
	v.release(p)
	v.setType(TypeSignedInteger)
	v.num = uint64(value)
}

// SetUnsignedInteger releases the cell's payload and stores an unsigned
// integer.
func (v *VariantData) SetUnsignedInteger(p *Pool, value uint64) {
	v.release(p)
	v.setType(TypeUnsignedInteger)
	v.num = value
}

// SetFloat releases the cell's payload and stores a float.
func (v *VariantData) SetFloat(p *Pool, value float64) {
	v.release(p)
	v.setType(TypeFloat)
	v.num = math.Float64bits(value)
}

// SetLinkedString releases the cell's payload and stores a caller-owned
// string. The pool neither copies nor counts it; the caller guarantees
// the text outlives the document.
func (v *VariantData) SetLinkedString(p *Pool, value string) {
	v.release(p)
	v.setType(TypeLinkedString)
	v.text = value
}

// SetOwnedString releases the cell's payload and interns value into the
// pool. Returns false (cell left null) when the string pool is full.
func (v *VariantData) SetOwnedString(p *Pool, value string) bool {
	v.release(p)
	v.setType(TypeNull)
	id := p.SaveString(value)
	if id == NilString {
		return false
	}
	v.setType(TypeOwnedString)
	v.str = id
	return true
}

// SetRawString releases the cell's payload and copies preformatted text
// into the pool. Raw text is excluded from deduplication and from
// quoting/escaping during output. Returns false (cell left null) when
// the string pool is full.
func (v *VariantData) SetRawString(p *Pool, value string) bool {
	v.release(p)
	v.setType(TypeNull)
	id := p.SaveRawString(value)
	if id == NilString {
		return false
	}
	v.setType(TypeRawString)
	v.str = id
	return true
}

// ToArray releases the cell's payload and replaces it with a fresh empty
// array, even if the cell already held a collection of either kind.
func (v *VariantData) ToArray(p *Pool) *CollectionData {
	v.release(p)
	v.setType(TypeArray)
	return &v.coll
}

// ToObject releases the cell's payload and replaces it with a fresh
// empty object, even if the cell already held a collection of either
// kind.
func (v *VariantData) ToObject(p *Pool) *CollectionData {
	v.release(p)
	v.setType(TypeObject)
	return &v.coll
}

// AddElement appends a new null element. A null cell is first promoted
// to an empty array; any other non-array cell fails with nil and is left
// untouched. Nil is also returned when the pool is exhausted.
func (v *VariantData) AddElement(p *Pool) *VariantData {
	arr := v.AsArray()
	if arr == nil {
		if !v.IsNull() {
			return nil
		}
		arr = v.ToArray(p)
	}
	return arr.AddElement(p)
}

// GetElement returns the element at index, or nil when the cell is not
// an array or the index is out of range.
func (v *VariantData) GetElement(p *Pool, index int) *VariantData {
	arr := v.AsArray()
	if arr == nil {
		return nil
	}
	return arr.GetElement(p, index)
}

// GetOrAddElement returns the element at index, appending null elements
// through index if needed. A null cell is first promoted to an array;
// any other non-array cell fails with nil.
func (v *VariantData) GetOrAddElement(p *Pool, index int) *VariantData {
	arr := v.AsArray()
	if arr == nil {
		if !v.IsNull() {
			return nil
		}
		arr = v.ToArray(p)
	}
	return arr.GetOrAddElement(p, index)
}

// GetMember returns the value of the first member with the given key, or
// nil when the cell is not an object or the key is absent.
func (v *VariantData) GetMember(p *Pool, key string) *VariantData {
	obj := v.AsObject()
	if obj == nil {
		return nil
	}
	return obj.GetMember(p, key)
}

// GetOrAddMember returns the value of the first member with the given
// key, adding the member if absent. A null cell is first promoted to an
// object; an empty key or any other non-object cell fails with nil.
func (v *VariantData) GetOrAddMember(p *Pool, key string) *VariantData {
	if key == "" {
		return nil
	}
	obj := v.AsObject()
	if obj == nil {
		if !v.IsNull() {
			return nil
		}
		obj = v.ToObject(p)
	}
	return obj.GetOrAddMember(p, key)
}

// RemoveElement removes the element at index, releasing its resources.
// No-op when the cell is not an array or the index is out of range.
func (v *VariantData) RemoveElement(p *Pool, index int) {
	if arr := v.AsArray(); arr != nil {
		arr.RemoveElement(p, index)
	}
}

// RemoveMember removes the first member with the given key, releasing
// its resources. No-op when the cell is not an object or the key is
// absent.
func (v *VariantData) RemoveMember(p *Pool, key string) {
	if obj := v.AsObject(); obj != nil {
		obj.RemoveMember(p, key)
	}
}

// Size returns the number of elements or members, 0 for non-collections.
func (v *VariantData) Size(p *Pool) int {
	c := v.AsCollection()
	if c == nil {
		return 0
	}
	return c.Size(p)
}

// MemoryUsage returns the pool bytes attributable to this cell: the
// length-prefixed payload size for pooled strings, or the recursive slot
// and key charge for collections. Linked strings and scalars are free.
func (v *VariantData) MemoryUsage(p *Pool) int {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeOwnedString, TypeRawString:
		return stringSizeof(len(p.String(v.str)))
	case TypeArray, TypeObject:
		return v.coll.MemoryUsage(p)
	default:
		return 0
	}
}

// Nesting returns the depth of the deepest descendant plus one for
// collections, 0 for scalars. Recursion is unbounded: callers feeding
// untrusted input must cap depth externally.
func (v *VariantData) Nesting(p *Pool) int {
	c := v.AsCollection()
	if c == nil {
		return 0
	}
	max := 0
	for id := c.head; id != NilSlot; {
		s := p.Slot(id)
		if n := s.data.Nesting(p); n > max {
			max = n
		}
		id = s.next
	}
	return max + 1
}

// MovePointers rebases every slot link reachable from this cell by
// distance. Must run tree-wide exactly once after pool compaction,
// before any other access.
func (v *VariantData) MovePointers(p *Pool, distance SlotID) {
	if v.IsCollection() {
		v.coll.movePointers(p, distance)
	}
}

// release drops the cell's owned resources: the string reference count
// for owned and raw strings, or every child slot for collections. The
// discriminator is left as-is; callers overwrite it right after.
func (v *VariantData) release(p *Pool) {
	switch v.typ {
	case TypeOwnedString, TypeRawString:
		p.ReleaseString(v.str)
		v.str = NilString
	case TypeArray, TypeObject:
		v.coll.Clear(p)
	}
}
