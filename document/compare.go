// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import "math"

// Equal reports deep structural equality of two cells, possibly backed
// by different pools. Semantics:
//   - nil cells compare as null
//   - numbers compare by value across kinds when the comparison is
//     lossless (42 int equals 42.0 float; bool never equals a number)
//   - linked and owned strings compare by content
//   - raw strings compare by content only against other raw strings
//   - arrays compare element-wise in order
//   - objects compare by key lookup and member count, order-insensitive
func Equal(a *VariantData, pa *Pool, b *VariantData, pb *Pool) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	switch a.typ {
	case TypeBoolean:
		return b.typ == TypeBoolean && a.num == b.num
	case TypeSignedInteger, TypeUnsignedInteger, TypeFloat:
		return numbersEqual(a, b)
	case TypeLinkedString, TypeOwnedString:
		return b.IsString() && a.AsString(pa) == b.AsString(pb)
	case TypeRawString:
		return b.typ == TypeRawString && pa.String(a.str) == pb.String(b.str)
	case TypeArray:
		if b.typ != TypeArray {
			return false
		}
		return arraysEqual(&a.coll, pa, &b.coll, pb)
	case TypeObject:
		if b.typ != TypeObject {
			return false
		}
		return objectsEqual(&a.coll, pa, &b.coll, pb)
	default:
		return false
	}
}

// arraysEqual walks both chains in lockstep.
func arraysEqual(a *CollectionData, pa *Pool, b *CollectionData, pb *Pool) bool {
	ida, idb := a.head, b.head
	for ida != NilSlot && idb != NilSlot {
		sa, sb := pa.Slot(ida), pb.Slot(idb)
		if !Equal(&sa.data, pa, &sb.data, pb) {
			return false
		}
		ida, idb = sa.next, sb.next
	}
	return ida == NilSlot && idb == NilSlot
}

// objectsEqual requires equal member counts and, for every member of a,
// a member of b with the same key (first occurrence) and an equal value.
func objectsEqual(a *CollectionData, pa *Pool, b *CollectionData, pb *Pool) bool {
	if a.Size(pa) != b.Size(pb) {
		return false
	}
	for id := a.head; id != NilSlot; {
		s := pa.Slot(id)
		other := b.GetMember(pb, s.Key(pa))
		if other == nil || !Equal(&s.data, pa, other, pb) {
			return false
		}
		id = s.next
	}
	return true
}

// numbersEqual compares two numeric cells by value. b may be any type;
// non-numeric b (including bool) never equals a number.
func numbersEqual(a, b *VariantData) bool {
	switch a.typ {
	case TypeSignedInteger:
		av := int64(a.num)
		switch b.typ {
		case TypeSignedInteger:
			return av == int64(b.num)
		case TypeUnsignedInteger:
			return av >= 0 && uint64(av) == b.num
		case TypeFloat:
			return floatEqualsInt64(math.Float64frombits(b.num), av)
		}
	case TypeUnsignedInteger:
		switch b.typ {
		case TypeSignedInteger:
			bv := int64(b.num)
			return bv >= 0 && a.num == uint64(bv)
		case TypeUnsignedInteger:
			return a.num == b.num
		case TypeFloat:
			return floatEqualsUint64(math.Float64frombits(b.num), a.num)
		}
	case TypeFloat:
		av := math.Float64frombits(a.num)
		switch b.typ {
		case TypeSignedInteger:
			return floatEqualsInt64(av, int64(b.num))
		case TypeUnsignedInteger:
			return floatEqualsUint64(av, b.num)
		case TypeFloat:
			return av == math.Float64frombits(b.num)
		}
	}
	return false
}

// floatEqualsInt64 reports f == i, comparing in integer space so large
// magnitudes never round. f must be whole and in int64 range; the
// exclusive 2^63 bound is exact in float64.
func floatEqualsInt64(f float64, i int64) bool {
	if f != math.Trunc(f) {
		return false
	}
	limit := math.Ldexp(1, 63)
	if f < -limit || f >= limit {
		return false
	}
	return int64(f) == i
}

func floatEqualsUint64(f float64, u uint64) bool {
	if f != math.Trunc(f) || f < 0 {
		return false
	}
	if f >= math.Ldexp(1, 64) {
		return false
	}
	return uint64(f) == u
}
