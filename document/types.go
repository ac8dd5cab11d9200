// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import "unsafe"

// ValueType identifies the payload stored in a VariantData.
type ValueType uint8

const (
	TypeNull            ValueType = iota // No payload (zero value of VariantData)
	TypeBoolean                          // Boolean, stored as 0/1
	TypeSignedInteger                    // int64, two's-complement in the raw word
	TypeUnsignedInteger                  // uint64
	TypeFloat                            // float64 bits
	TypeLinkedString                     // Caller-owned string, never released
	TypeOwnedString                      // Pool string handle, deduplicated and ref-counted
	TypeRawString                        // Pool string handle, preformatted output, not deduplicated
	TypeArray                            // Collection without keys
	TypeObject                           // Collection with keys

	// typeFree marks a slot sitting on the pool freelist. Never visible
	// through the public API.
	typeFree ValueType = 0xFF
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeSignedInteger:
		return "signed-integer"
	case TypeUnsignedInteger:
		return "unsigned-integer"
	case TypeFloat:
		return "float"
	case TypeLinkedString:
		return "linked-string"
	case TypeOwnedString:
		return "owned-string"
	case TypeRawString:
		return "raw-string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "free"
	}
}

// SlotID is a pool-relative slot index. Compaction shifts every live
// SlotID by a uniform distance; NilSlot is never shifted.
type SlotID int32

// NilSlot is the absent slot link.
const NilSlot SlotID = -1

// StringID is a pool-relative string handle. String storage is
// index-stable: compaction never invalidates a StringID.
type StringID int32

// NilString is the absent string handle.
const NilString StringID = -1

// SlotSize is the per-slot storage charge reported by MemoryUsage.
const SlotSize = int(unsafe.Sizeof(Slot{}))

// stringSizeof returns the storage charge of a pooled string of n bytes,
// including the length prefix.
func stringSizeof(n int) int {
	return stringLengthPrefix + n
}

const stringLengthPrefix = 4

// moveSlotID rebases id by distance, leaving NilSlot untouched.
func moveSlotID(id, distance SlotID) SlotID {
	if id == NilSlot {
		return NilSlot
	}
	return id + distance
}
