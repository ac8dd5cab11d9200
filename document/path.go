// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a sequence of lookup steps from a root cell: object keys and
// decimal array indices share one string form.
type Path []string

// ParsePath splits a "/"-separated reference into a Path. The leading
// slash is optional; "" and "/" address the root.
func ParsePath(s string) (Path, error) {
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}
	}
	return Path(parts), nil
}

// MustParsePath is ParsePath that panics on error, for fixed paths.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}

// LookupPath resolves the path against v: object steps match member
// keys, array steps parse as decimal indices. Returns nil when any step
// misses.
func LookupPath(pool *Pool, v *VariantData, path Path) *VariantData {
	for _, step := range path {
		if v == nil {
			return nil
		}
		switch v.typ {
		case TypeObject:
			v = v.coll.GetMember(pool, step)
		case TypeArray:
			idx, err := strconv.Atoi(step)
			if err != nil {
				return nil
			}
			v = v.coll.GetElement(pool, idx)
		default:
			return nil
		}
	}
	return v
}
