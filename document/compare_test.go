// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import "testing"

func TestEqualScalars(t *testing.T) {
	p := NewPool()

	set := func(f func(*VariantData)) *VariantData {
		v := &VariantData{}
		f(v)
		return v
	}

	tests := []struct {
		note string
		a, b *VariantData
		want bool
	}{
		{"nil vs nil", nil, nil, true},
		{"nil vs null", nil, &VariantData{}, true},
		{"nil vs false", nil, set(func(v *VariantData) { v.SetBoolean(p, false) }), false},
		{"true vs true", set(func(v *VariantData) { v.SetBoolean(p, true) }), set(func(v *VariantData) { v.SetBoolean(p, true) }), true},
		{"true vs false", set(func(v *VariantData) { v.SetBoolean(p, true) }), set(func(v *VariantData) { v.SetBoolean(p, false) }), false},
		{"bool vs number", set(func(v *VariantData) { v.SetBoolean(p, true) }), set(func(v *VariantData) { v.SetInteger(p, 1) }), false},
		{"int vs same int", set(func(v *VariantData) { v.SetInteger(p, 42) }), set(func(v *VariantData) { v.SetInteger(p, 42) }), true},
		{"int vs equal uint", set(func(v *VariantData) { v.SetInteger(p, 42) }), set(func(v *VariantData) { v.SetUnsignedInteger(p, 42) }), true},
		{"negative int vs uint", set(func(v *VariantData) { v.SetInteger(p, -1) }), set(func(v *VariantData) { v.SetUnsignedInteger(p, 18446744073709551615) }), false},
		{"int vs equal float", set(func(v *VariantData) { v.SetInteger(p, 42) }), set(func(v *VariantData) { v.SetFloat(p, 42.0) }), true},
		{"int vs close float", set(func(v *VariantData) { v.SetInteger(p, 42) }), set(func(v *VariantData) { v.SetFloat(p, 42.5) }), false},
		{"uint vs equal float", set(func(v *VariantData) { v.SetUnsignedInteger(p, 7) }), set(func(v *VariantData) { v.SetFloat(p, 7.0) }), true},
		{"float vs float", set(func(v *VariantData) { v.SetFloat(p, 1.5) }), set(func(v *VariantData) { v.SetFloat(p, 1.5) }), true},
		{"number vs string", set(func(v *VariantData) { v.SetInteger(p, 42) }), set(func(v *VariantData) { v.SetLinkedString(p, "42") }), false},
	}

	for _, tc := range tests {
		t.Run(tc.note, func(t *testing.T) {
			if got := Equal(tc.a, p, tc.b, p); got != tc.want {
				t.Fatalf("expected %v", tc.want)
			}
			// Equality is symmetric.
			if got := Equal(tc.b, p, tc.a, p); got != tc.want {
				t.Fatalf("asymmetric result, expected %v", tc.want)
			}
		})
	}
}

func TestEqualLargeIntegerPrecision(t *testing.T) {
	p := NewPool()
	var a, b VariantData

	// 2^63-1 is not representable in float64; the nearest float is 2^63.
	a.SetInteger(p, 9223372036854775807)
	b.SetFloat(p, 9223372036854775807)
	if Equal(&a, p, &b, p) {
		t.Fatal("comparison must not round through float64")
	}

	a.SetUnsignedInteger(p, 18446744073709551615)
	b.SetFloat(p, 18446744073709551615)
	if Equal(&a, p, &b, p) {
		t.Fatal("max uint64 must not equal its float rounding")
	}

	// An exactly representable large value does compare equal.
	a.SetInteger(p, 1<<62)
	b.SetFloat(p, 1<<62)
	if !Equal(&a, p, &b, p) {
		t.Fatal("2^62 is exact in float64 and must compare equal")
	}
}

func TestEqualStrings(t *testing.T) {
	pa := NewPool()
	pb := NewPool()
	var a, b VariantData

	// Ownership mode is invisible to equality, across pools too.
	a.SetLinkedString(pa, "text")
	b.SetOwnedString(pb, "text")
	if !Equal(&a, pa, &b, pb) {
		t.Fatal("linked and owned strings with equal content must be equal")
	}

	// Raw strings compare only against raw strings.
	a.SetRawString(pa, "[1]")
	b.SetOwnedString(pb, "[1]")
	if Equal(&a, pa, &b, pb) {
		t.Fatal("raw must not equal a plain string")
	}
	b.SetRawString(pb, "[1]")
	if !Equal(&a, pa, &b, pb) {
		t.Fatal("raw vs raw compares by content")
	}
}

func TestEqualCollections(t *testing.T) {
	pa := NewPool()
	pb := NewPool()
	var a, b VariantData

	build := func(p *Pool, v *VariantData, keys []string) {
		obj := v.ToObject(p)
		for i, k := range keys {
			obj.AddMember(p, k).SetInteger(p, int64(i))
		}
	}

	// Member order is irrelevant for objects.
	buildVals := func(p *Pool, v *VariantData, pairs [][2]any) {
		obj := v.ToObject(p)
		for _, kv := range pairs {
			obj.AddMember(p, kv[0].(string)).SetInteger(p, int64(kv[1].(int)))
		}
	}
	buildVals(pa, &a, [][2]any{{"x", 1}, {"y", 2}})
	buildVals(pb, &b, [][2]any{{"y", 2}, {"x", 1}})
	if !Equal(&a, pa, &b, pb) {
		t.Fatal("object equality must ignore member order")
	}

	// Element order matters for arrays.
	arrA := a.ToArray(pa)
	arrA.AddElement(pa).SetInteger(pa, 1)
	arrA.AddElement(pa).SetInteger(pa, 2)
	arrB := b.ToArray(pb)
	arrB.AddElement(pb).SetInteger(pb, 2)
	arrB.AddElement(pb).SetInteger(pb, 1)
	if Equal(&a, pa, &b, pb) {
		t.Fatal("array equality must respect order")
	}

	// Prefix arrays are not equal.
	arrB.Clear(pb)
	arrB.AddElement(pb).SetInteger(pb, 1)
	if Equal(&a, pa, &b, pb) {
		t.Fatal("length mismatch must fail")
	}

	// Member count mismatch fails even when every key of a matches.
	build(pa, &a, []string{"k"})
	build(pb, &b, []string{"k", "k"})
	if Equal(&a, pa, &b, pb) {
		t.Fatal("member count mismatch must fail")
	}

	// Array never equals object.
	a.ToArray(pa)
	b.ToObject(pb)
	if Equal(&a, pa, &b, pb) {
		t.Fatal("array must not equal object")
	}
}
