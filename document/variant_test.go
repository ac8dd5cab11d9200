// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import "testing"

func TestVariantTypeIntegrity(t *testing.T) {
	p := NewPool()
	var v VariantData

	if !v.IsNull() {
		t.Fatalf("zero value must be null, got %v", v.Type())
	}

	v.SetBoolean(p, true)
	if v.Type() != TypeBoolean || !v.AsBoolean() {
		t.Fatalf("expected boolean true, got %v", v.Type())
	}

	v.SetInteger(p, -42)
	if v.Type() != TypeSignedInteger {
		t.Fatalf("expected signed integer, got %v", v.Type())
	}
	if got := AsIntegral[int64](p, &v); got != -42 {
		t.Fatalf("expected -42, got %d", got)
	}

	v.SetUnsignedInteger(p, 18446744073709551615)
	if v.Type() != TypeUnsignedInteger {
		t.Fatalf("expected unsigned integer, got %v", v.Type())
	}
	if got := AsIntegral[uint64](p, &v); got != 18446744073709551615 {
		t.Fatalf("expected max uint64, got %d", got)
	}

	v.SetFloat(p, 1.5)
	if !v.IsFloat() {
		t.Fatalf("expected float, got %v", v.Type())
	}
	if got := AsFloat[float64](p, &v); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}

	v.SetNull(p)
	if !v.IsNull() {
		t.Fatalf("expected null after SetNull, got %v", v.Type())
	}
}

func TestVariantStringModes(t *testing.T) {
	p := NewPool()
	var v VariantData

	v.SetLinkedString(p, "linked")
	if v.Type() != TypeLinkedString || v.AsString(p) != "linked" {
		t.Fatalf("expected linked string, got %v %q", v.Type(), v.AsString(p))
	}
	if st := p.Stats(); st.Strings != 0 {
		t.Fatalf("linked string must not touch the pool, got %d entries", st.Strings)
	}

	if !v.SetOwnedString(p, "owned") {
		t.Fatal("SetOwnedString failed")
	}
	if v.Type() != TypeOwnedString || v.AsString(p) != "owned" {
		t.Fatalf("expected owned string, got %v %q", v.Type(), v.AsString(p))
	}

	if !v.SetRawString(p, `{"pre":1}`) {
		t.Fatal("SetRawString failed")
	}
	if !v.IsRawString() || v.AsRawString(p) != `{"pre":1}` {
		t.Fatalf("expected raw string, got %v", v.Type())
	}
	if v.IsString() {
		t.Fatal("raw string must not report IsString")
	}
	if v.AsString(p) != "" {
		t.Fatalf("AsString on raw must be empty, got %q", v.AsString(p))
	}

	// Overwriting the raw string must release its pool entry.
	v.SetNull(p)
	if st := p.Stats(); st.Strings != 0 {
		t.Fatalf("expected empty string pool after release, got %d entries", st.Strings)
	}
}

func TestVariantCoercions(t *testing.T) {
	p := NewPool()
	var v VariantData

	// Numbers compare against zero for boolean coercion.
	v.SetInteger(p, 0)
	if v.AsBoolean() {
		t.Fatal("integer 0 must coerce to false")
	}
	v.SetFloat(p, 0.25)
	if !v.AsBoolean() {
		t.Fatal("float 0.25 must coerce to true")
	}

	// Non-null non-numeric payloads coerce to true.
	v.SetLinkedString(p, "")
	if !v.AsBoolean() {
		t.Fatal("string must coerce to true")
	}
	v.ToArray(p)
	if !v.AsBoolean() {
		t.Fatal("array must coerce to true")
	}

	// Bool widens to 0/1 numerically.
	v.SetBoolean(p, true)
	if got := AsIntegral[int](p, &v); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}

	// Strings parse on demand.
	v.SetLinkedString(p, "123")
	if got := AsIntegral[int32](p, &v); got != 123 {
		t.Fatalf("expected 123, got %d", got)
	}
	v.SetOwnedString(p, "2.5")
	if got := AsFloat[float64](p, &v); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	v.SetLinkedString(p, "not a number")
	if got := AsIntegral[int](p, &v); got != 0 {
		t.Fatalf("expected 0 for non-numeric text, got %d", got)
	}

	// Out-of-range conversions yield zero, in-range floats truncate.
	v.SetInteger(p, 300)
	if got := AsIntegral[int8](p, &v); got != 0 {
		t.Fatalf("expected 0 for out-of-range, got %d", got)
	}
	v.SetFloat(p, 3.9)
	if got := AsIntegral[int](p, &v); got != 3 {
		t.Fatalf("expected truncation to 3, got %d", got)
	}
	v.SetFloat(p, -3.9)
	if got := AsIntegral[int](p, &v); got != -3 {
		t.Fatalf("expected truncation toward zero to -3, got %d", got)
	}
}

func TestVariantIsInteger(t *testing.T) {
	p := NewPool()
	var v VariantData

	v.SetInteger(p, 200)
	if !IsInteger[int64](&v) || !IsInteger[uint8](&v) {
		t.Fatal("200 fits int64 and uint8")
	}
	if IsInteger[int8](&v) {
		t.Fatal("200 must not fit int8")
	}

	v.SetInteger(p, -1)
	if IsInteger[uint64](&v) {
		t.Fatal("-1 must not fit uint64")
	}

	// Float cells report false even for whole values.
	v.SetFloat(p, 4.0)
	if IsInteger[int](&v) {
		t.Fatal("float cell must not report integer")
	}
	// So do strings.
	v.SetLinkedString(p, "7")
	if IsInteger[int](&v) {
		t.Fatal("string cell must not report integer")
	}
}

func TestVariantPromotion(t *testing.T) {
	p := NewPool()
	var v VariantData

	// Null promotes to array on AddElement.
	elem := v.AddElement(p)
	if elem == nil || !v.IsArray() {
		t.Fatal("null must promote to array")
	}
	elem.SetInteger(p, 1)

	// A non-array cell refuses element operations.
	var s VariantData
	s.SetBoolean(p, true)
	if s.AddElement(p) != nil {
		t.Fatal("AddElement on a boolean must fail")
	}
	if s.Type() != TypeBoolean {
		t.Fatal("failed AddElement must leave the cell untouched")
	}
	if s.GetOrAddMember(p, "k") != nil {
		t.Fatal("GetOrAddMember on a boolean must fail")
	}

	// Null promotes to object on GetOrAddMember; empty keys are rejected.
	var o VariantData
	if o.GetOrAddMember(p, "") != nil {
		t.Fatal("empty key must be rejected")
	}
	if !o.IsNull() {
		t.Fatal("rejected key must not promote the cell")
	}
	m := o.GetOrAddMember(p, "k")
	if m == nil || !o.IsObject() {
		t.Fatal("null must promote to object")
	}
	if o.GetOrAddMember(p, "k") != m {
		t.Fatal("second lookup must return the same member")
	}
}

func TestVariantToArrayReplacesCollections(t *testing.T) {
	p := NewPool()
	var v VariantData

	obj := v.ToObject(p)
	obj.AddMember(p, "k").SetInteger(p, 1)

	// ToArray on an object drops the members and starts empty.
	arr := v.ToArray(p)
	if !v.IsArray() || arr.Size(p) != 0 {
		t.Fatalf("expected empty array, got size %d", arr.Size(p))
	}
	if st := p.Stats(); st.SlotsUsed != 0 {
		t.Fatalf("old members must be freed, %d slots still used", st.SlotsUsed)
	}
}

func TestVariantGetOrAddElementPads(t *testing.T) {
	p := NewPool()
	var v VariantData

	e := v.GetOrAddElement(p, 3)
	if e == nil {
		t.Fatal("GetOrAddElement failed")
	}
	e.SetInteger(p, 9)

	if got := v.Size(p); got != 4 {
		t.Fatalf("expected 4 elements after padding, got %d", got)
	}
	for i := 0; i < 3; i++ {
		if !v.GetElement(p, i).IsNull() {
			t.Fatalf("element %d must be null padding", i)
		}
	}
	if got := AsIntegral[int](p, v.GetElement(p, 3)); got != 9 {
		t.Fatalf("expected 9 at index 3, got %d", got)
	}
	if v.GetElement(p, 4) != nil {
		t.Fatal("index past the end must return nil")
	}
}

func TestVariantNesting(t *testing.T) {
	p := NewPool()
	var v VariantData

	if v.Nesting(p) != 0 {
		t.Fatal("scalar nesting must be 0")
	}
	arr := v.ToArray(p)
	if v.Nesting(p) != 1 {
		t.Fatal("empty array nesting must be 1")
	}
	inner := arr.AddElement(p).ToObject(p)
	inner.AddMember(p, "k").ToArray(p)
	if got := v.Nesting(p); got != 3 {
		t.Fatalf("expected nesting 3, got %d", got)
	}
}
