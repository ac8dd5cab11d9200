// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

// CopyFrom releases dst's payload and deep-copies src into it. The two
// cells may live on the same pool or different pools; key ownership
// modes are preserved, owned strings are re-interned in dst's pool, and
// raw strings are re-copied without deduplication.
//
// The copy is not atomic: dst's previous value is gone even on failure.
// Returns false when dst's pool runs out of slots or strings mid-copy;
// dst is then null (scalar failure) or a truncated collection.
func CopyFrom(dst *VariantData, dstPool *Pool, src *VariantData, srcPool *Pool) bool {
	if src.IsNull() {
		dst.SetNull(dstPool)
		return true
	}
	switch src.typ {
	case TypeArray:
		dstColl := dst.ToArray(dstPool)
		return copyCollection(dstColl, dstPool, &src.coll, srcPool)
	case TypeObject:
		dstColl := dst.ToObject(dstPool)
		return copyCollection(dstColl, dstPool, &src.coll, srcPool)
	case TypeOwnedString:
		return dst.SetOwnedString(dstPool, srcPool.String(src.str))
	case TypeRawString:
		return dst.SetRawString(dstPool, srcPool.String(src.str))
	default:
		// Scalars and linked strings carry no pool resources; a field
		// copy is the whole operation.
		dst.release(dstPool)
		dst.setType(src.typ)
		dst.num = src.num
		dst.text = src.text
		return true
	}
}

func copyCollection(dst *CollectionData, dstPool *Pool, src *CollectionData, srcPool *Pool) bool {
	for id := src.head; id != NilSlot; {
		s := srcPool.Slot(id)
		var child *VariantData
		switch {
		case s.OwnsKey():
			child = dst.AddMember(dstPool, s.Key(srcPool))
		case s.key != "":
			child = dst.AddLinkedMember(dstPool, s.key)
		default:
			child = dst.AddElement(dstPool)
		}
		if child == nil {
			return false
		}
		if !CopyFrom(child, dstPool, &s.data, srcPool) {
			return false
		}
		id = s.next
	}
	return true
}
