// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

// Visitor receives exactly one callback per Accept call, selected by the
// cell's type. Implementations drive their own recursion into the
// collection callbacks; a returned error aborts the caller's traversal.
type Visitor interface {
	VisitNull() error
	VisitBoolean(value bool) error
	VisitSignedInteger(value int64) error
	VisitUnsignedInteger(value uint64) error
	VisitFloat(value float64) error
	VisitString(value string) error
	VisitRawString(value string) error
	VisitArray(arr *CollectionData) error
	VisitObject(obj *CollectionData) error
}

// Accept dispatches v's payload to the matching visitor callback. A nil
// cell dispatches as null.
func Accept(p *Pool, v *VariantData, visitor Visitor) error {
	if v.IsNull() {
		return visitor.VisitNull()
	}
	switch v.typ {
	case TypeBoolean:
		return visitor.VisitBoolean(v.num != 0)
	case TypeSignedInteger:
		return visitor.VisitSignedInteger(int64(v.num))
	case TypeUnsignedInteger:
		return visitor.VisitUnsignedInteger(v.num)
	case TypeFloat:
		return visitor.VisitFloat(AsFloat[float64](p, v))
	case TypeLinkedString, TypeOwnedString:
		return visitor.VisitString(v.AsString(p))
	case TypeRawString:
		return visitor.VisitRawString(p.String(v.str))
	case TypeArray:
		return visitor.VisitArray(&v.coll)
	default:
		return visitor.VisitObject(&v.coll)
	}
}
