// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package minmax

// Range64 represents a range of float64 values, where either
// the min or the max value can optionally be fixed, overriding
// values computed from data.
type Range64 struct {
	F64

	// FixMin indicates whether to use the fixed Min value
	// instead of a value computed from data.
	FixMin bool

	// FixMax indicates whether to use the fixed Max value
	// instead of a value computed from data.
	FixMax bool
}

// SetMin sets a fixed min value.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax sets a fixed max value.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// Clamp returns the given data min, max values, subject to any
// fixed Min, Max values in this range.
func (rr *Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return
}
