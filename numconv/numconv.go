// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package numconv provides lossless-aware conversions between numeric
// types and best-effort parsing of numeric text.
//
// The document model coerces values across numeric kinds (bool, signed,
// unsigned, float) and parses string payloads on demand. All functions
// here are total: values that cannot be represented yield zero rather
// than an error.
package numconv

import (
	"math"
	"strconv"
)

// Signed is the constraint for signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is the constraint for unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integer is the constraint for all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the constraint for floating-point types.
type Float interface {
	float32 | float64
}

// Number is the constraint for all numeric types.
type Number interface {
	Integer | Float
}

// isFloat reports whether T is a floating-point type.
// Integer division of 1 by 2 yields 0; float division yields 0.5.
func isFloat[T Number]() bool {
	return T(1)/T(2) != T(0)
}

// isSigned reports whether T can represent negative values.
// For unsigned types, zero minus one wraps to the maximum.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

func bitsOf[T Number]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	default:
		return 64
	}
}

// boundsOf returns the value range of T. Only meaningful for integer T.
func boundsOf[T Number]() (min int64, max uint64) {
	bits := bitsOf[T]()
	if isSigned[T]() {
		return int64(-1) << (bits - 1), uint64(1)<<(bits-1) - 1
	}
	if bits >= 64 {
		return 0, math.MaxUint64
	}
	return 0, uint64(1)<<bits - 1
}

// CanConvert reports whether value is representable in TOut without
// truncation. Float targets accept any numeric input; integer targets
// require a whole, in-range value.
func CanConvert[TOut Number, TIn Number](value TIn) bool {
	if isFloat[TOut]() {
		return true
	}
	switch {
	case isFloat[TIn]():
		f := float64(value)
		if f != math.Trunc(f) { // also rejects NaN
			return false
		}
		return floatInRange[TOut](f)
	case isSigned[TIn]():
		return signedInRange[TOut](int64(value))
	default:
		return unsignedInRange[TOut](uint64(value))
	}
}

// Convert converts value to TOut. In-range floats truncate toward zero
// when the target is an integer type; out-of-range values yield zero.
func Convert[TOut Number, TIn Number](value TIn) TOut {
	if isFloat[TOut]() {
		return TOut(value)
	}
	if isFloat[TIn]() {
		f := math.Trunc(float64(value))
		if !floatInRange[TOut](f) {
			return 0
		}
		if isSigned[TOut]() {
			return TOut(int64(f))
		}
		return TOut(uint64(f))
	}
	if !CanConvert[TOut](value) {
		return 0
	}
	return TOut(value)
}

// Parse parses s as a number of type T, returning zero when the text is
// not numeric. Integer forms are tried first so 64-bit values round-trip
// without passing through float64.
func Parse[T Number](s string) T {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Convert[T](i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Convert[T](u)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Convert[T](f)
	}
	return 0
}

func signedInRange[T Number](v int64) bool {
	min, max := boundsOf[T]()
	if v < min {
		return false
	}
	return v < 0 || uint64(v) <= max
}

func unsignedInRange[T Number](v uint64) bool {
	_, max := boundsOf[T]()
	return v <= max
}

// floatInRange reports whether the whole float f fits the integer type T.
// The exclusive power-of-two upper bound is exact in float64, unlike the
// type's maximum itself.
func floatInRange[T Number](f float64) bool {
	bits := bitsOf[T]()
	if isSigned[T]() {
		limit := math.Ldexp(1, bits-1)
		return f >= -limit && f < limit
	}
	return f >= 0 && f < math.Ldexp(1, bits)
}
