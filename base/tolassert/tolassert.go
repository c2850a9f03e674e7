// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, using [assert.InDelta]
// instead of [assert.Equal]).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are equal within a tolerance of
// 0.001 times the larger number.
func Equal[T float32 | float64](t assert.TestingT, expected, actual T, args ...any) bool {
	return EqualTol(t, expected, actual, 0.001, args...)
}

// EqualTol asserts that the two numbers are equal within the given
// absolute tolerance, scaled by the magnitude of the expected number
// when that is larger than 1.
func EqualTol[T float32 | float64](t assert.TestingT, expected, actual, tol T, args ...any) bool {
	atol := tol
	mag := expected
	if mag < 0 {
		mag = -mag
	}
	if mag > 1 {
		atol = tol * mag
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(atol), args...)
}
