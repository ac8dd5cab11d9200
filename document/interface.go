// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package document

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ToInterface converts a cell to plain Go values: nil, bool, int64,
// uint64, float64, string, json.RawMessage (raw cells), []interface{},
// and map[string]interface{}. Duplicate object keys keep the first
// occurrence, matching lookup order.
func ToInterface(p *Pool, v *VariantData) interface{} {
	if v.IsNull() {
		return nil
	}
	switch v.typ {
	case TypeBoolean:
		return v.num != 0
	case TypeSignedInteger:
		return int64(v.num)
	case TypeUnsignedInteger:
		return v.num
	case TypeFloat:
		return AsFloat[float64](p, v)
	case TypeLinkedString, TypeOwnedString:
		return v.AsString(p)
	case TypeRawString:
		return json.RawMessage(p.String(v.str))
	case TypeArray:
		out := make([]interface{}, 0, v.coll.Size(p))
		for id := v.coll.head; id != NilSlot; {
			s := p.Slot(id)
			out = append(out, ToInterface(p, &s.data))
			id = s.next
		}
		return out
	default:
		out := make(map[string]interface{}, v.coll.Size(p))
		for id := v.coll.head; id != NilSlot; {
			s := p.Slot(id)
			key := s.Key(p)
			if _, ok := out[key]; !ok {
				out[key] = ToInterface(p, &s.data)
			}
			id = s.next
		}
		return out
	}
}

// SetInterface releases the cell's payload and rebuilds it from a plain
// Go value, the inverse of ToInterface. json.Number prefers the
// narrowest lossless kind (signed, then unsigned, then float);
// json.RawMessage becomes a raw cell; unrecognized types become null.
// Returns false when the pool runs out mid-build.
func SetInterface(p *Pool, v *VariantData, value interface{}) bool {
	switch x := value.(type) {
	case nil:
		v.SetNull(p)
		return true
	case bool:
		v.SetBoolean(p, x)
		return true
	case int:
		v.SetInteger(p, int64(x))
		return true
	case int64:
		v.SetInteger(p, x)
		return true
	case uint64:
		v.SetUnsignedInteger(p, x)
		return true
	case float64:
		v.SetFloat(p, x)
		return true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			v.SetInteger(p, i)
			return true
		}
		if u, err := parseUint(x.String()); err == nil {
			v.SetUnsignedInteger(p, u)
			return true
		}
		f, _ := x.Float64()
		v.SetFloat(p, f)
		return true
	case json.RawMessage:
		return v.SetRawString(p, string(x))
	case string:
		return v.SetOwnedString(p, x)
	case []interface{}:
		coll := v.ToArray(p)
		for _, elem := range x {
			child := coll.AddElement(p)
			if child == nil || !SetInterface(p, child, elem) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		coll := v.ToObject(p)
		for _, key := range sortedKeys(x) {
			child := coll.AddMember(p, key)
			if child == nil || !SetInterface(p, child, x[key]) {
				return false
			}
		}
		return true
	default:
		v.SetNull(p)
		return true
	}
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// sortedKeys makes map-built objects deterministic; Go map iteration
// order would otherwise vary run to run.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
