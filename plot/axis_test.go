// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"github.com/NGWi/matplotlib/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func majorTicks(ticks []Tick) []Tick {
	var major []Tick
	for _, tk := range ticks {
		if !tk.IsMinor() {
			major = append(major, tk)
		}
	}
	return major
}

func TestDefaultTicks(t *testing.T) {
	ticks := DefaultTicks{}.Ticks(0, 100, 5)
	require.NotEmpty(t, ticks)
	major := majorTicks(ticks)
	require.GreaterOrEqual(t, len(major), 2)
	for _, tk := range ticks {
		assert.GreaterOrEqual(t, tk.Value, 0.0)
		assert.LessOrEqual(t, tk.Value, 100.0)
	}
	for _, tk := range major {
		assert.NotEmpty(t, tk.Label)
	}

	// fractional ranges get fractional labels
	major = majorTicks(DefaultTicks{}.Ticks(0, 1, 5))
	require.GreaterOrEqual(t, len(major), 2)
	assert.Contains(t, major[0].Label, "0")

	assert.Panics(t, func() { DefaultTicks{}.Ticks(1, 1, 5) })
}

func TestLogTicks(t *testing.T) {
	ticks := LogTicks{Prec: 3}.Ticks(1, 100, 5)
	require.NotEmpty(t, ticks)
	var labels []string
	for _, tk := range majorTicks(ticks) {
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []string{"1", "10", "100"}, labels)

	assert.Panics(t, func() { LogTicks{}.Ticks(0, 100, 5) })
}

func TestConstantTicks(t *testing.T) {
	ts := ConstantTicks{{Value: 1, Label: "one"}, {Value: 2}}
	assert.Equal(t, []Tick(ts), ts.Ticks(0, 10, 5))
}

func TestAxisScaleNormalize(t *testing.T) {
	assert.Equal(t, 0.5, LinearScale{}.Normalize(0, 10, 5))
	assert.InDelta(t, 0.5, LogScale{}.Normalize(1, 100, 10), 1e-12)
	assert.Equal(t, 0.75, InvertedScale{LinearScale{}}.Normalize(0, 10, 2.5))
}

func TestAxisSanitizeRange(t *testing.T) {
	var ax Axis
	ax.Defaults(math32.X)
	ax.Range.SetInfinity()
	ax.SanitizeRange()
	assert.True(t, ax.Range.Min < ax.Range.Max)
}
