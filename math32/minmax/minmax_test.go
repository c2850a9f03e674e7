// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	mr := F64{}
	mr.SetInfinity()
	assert.False(t, mr.IsValid())

	assert.True(t, mr.FitValInRange(2))
	assert.True(t, mr.FitValInRange(8))
	assert.False(t, mr.FitValInRange(5))
	assert.Equal(t, F64{2, 8}, mr)
	assert.True(t, mr.IsValid())

	assert.Equal(t, float64(6), mr.Range())
	assert.Equal(t, float64(5), mr.Midpoint())
	assert.InDelta(t, 1.0/6.0, mr.Scale(), 1e-8)

	assert.True(t, mr.InRange(2))
	assert.False(t, mr.InRange(9))
	assert.True(t, mr.IsLow(1))
	assert.True(t, mr.IsHigh(9))
	assert.False(t, mr.IsHigh(5))

	assert.Equal(t, float64(0.5), mr.NormValue(5))
	assert.Equal(t, float64(0), mr.NormValue(-1))
	assert.Equal(t, float64(1), mr.NormValue(20))
	assert.Equal(t, float64(5), mr.ProjValue(0.5))

	assert.Equal(t, float64(2), mr.ClipValue(0))
	assert.Equal(t, float64(8), mr.ClipValue(10))
	assert.Equal(t, float64(3), mr.ClipValue(3))
	assert.Equal(t, float64(0), mr.ClipNormValue(-10))
	assert.Equal(t, float64(1), mr.ClipNormValue(100))

	or := F64{-1, 4}
	assert.True(t, mr.FitInRange(or))
	assert.Equal(t, F64{-1, 8}, mr)
}

func TestRange64(t *testing.T) {
	rr := Range64{}
	mn, mx := rr.Clamp(1, 5)
	assert.Equal(t, float64(1), mn)
	assert.Equal(t, float64(5), mx)

	rr.SetMin(2)
	mn, mx = rr.Clamp(1, 5)
	assert.Equal(t, float64(2), mn)
	assert.Equal(t, float64(5), mx)

	rr.SetMax(4)
	mn, mx = rr.Clamp(1, 5)
	assert.Equal(t, float64(2), mn)
	assert.Equal(t, float64(4), mx)
}
