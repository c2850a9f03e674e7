// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric constraints and helper functions
// that work across all numeric types.
package num

// Number is a type constraint that includes all basic numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Signed is a type constraint that includes all signed numeric types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns the absolute value of the given signed number.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp returns the given value clamped to the given minimum and
// maximum bounds (inclusive).
func Clamp[T Number](x, minv, maxv T) T {
	if x < minv {
		return minv
	}
	if x > maxv {
		return maxv
	}
	return x
}

// ToBool returns the given number as a bool, false if zero, true otherwise.
func ToBool[T Number](v T) bool {
	return v != 0
}

// FromBool returns the given bool as a number, 1 if true, 0 if false.
func FromBool[T Number](v bool) T {
	if v {
		return 1
	}
	return 0
}
