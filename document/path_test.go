// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		input   string
		want    Path
		wantErr bool
	}{
		{"", Path{}, false},
		{"/", Path{}, false},
		{"/a/b", Path{"a", "b"}, false},
		{"a/b", Path{"a", "b"}, false},
		{"/a//b", nil, true},
		{"/a/", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePath(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestLookupPath(t *testing.T) {
	doc := New()
	doc.Set(map[string]any{
		"users": []any{
			map[string]any{"name": "alice"},
			map[string]any{"name": "bob"},
		},
		"0": "keyed by digits",
	})

	tests := []struct {
		path string
		want string
	}{
		{"/users/0/name", "alice"},
		{"/users/1/name", "bob"},
		{"/0", "keyed by digits"},
	}
	for _, tc := range tests {
		v := doc.Lookup(MustParsePath(tc.path))
		if v == nil {
			t.Fatalf("%s: not found", tc.path)
		}
		if got := v.AsString(doc.Pool()); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.path, tc.want, got)
		}
	}

	// Root path resolves to the root cell.
	if doc.Lookup(MustParsePath("/")) != doc.Root() {
		t.Fatal("empty path must resolve to the root")
	}

	// Misses return nil: absent key, bad index, step through a scalar.
	for _, path := range []string{"/missing", "/users/9", "/users/x", "/users/0/name/deep"} {
		if doc.Lookup(MustParsePath(path)) != nil {
			t.Fatalf("%s: expected nil", path)
		}
	}
}
