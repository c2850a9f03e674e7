// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"github.com/NGWi/matplotlib/colors/colormap"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestLinearNorm(t *testing.T) {
	ln := LinearNorm{Min: 10, Max: 20}
	assert.Equal(t, 0.0, ln.Normalize(10))
	assert.Equal(t, 0.5, ln.Normalize(15))
	assert.Equal(t, 1.0, ln.Normalize(20))
	assert.Equal(t, -0.5, ln.Normalize(5))

	// degenerate range maps everything to 0
	ln = LinearNorm{Min: 3, Max: 3}
	assert.Equal(t, 0.0, ln.Normalize(42))
}

func TestLogNorm(t *testing.T) {
	ln := LogNorm{Min: 1, Max: 100}
	assert.InDelta(t, 0.0, ln.Normalize(1), 1e-12)
	assert.InDelta(t, 0.5, ln.Normalize(10), 1e-12)
	assert.InDelta(t, 1.0, ln.Normalize(100), 1e-12)

	// non-positive values and invalid ranges yield NaN
	assert.True(t, math.IsNaN(ln.Normalize(0)))
	assert.True(t, math.IsNaN(ln.Normalize(-1)))
	assert.True(t, math.IsNaN(LogNorm{Min: -1, Max: 100}.Normalize(10)))
	assert.True(t, math.IsNaN(LogNorm{Min: 5, Max: 5}.Normalize(10)))
}

func TestColorMapStyleDefaults(t *testing.T) {
	var cs ColorMapStyle
	assert.True(t, cs.IsZero())
	assert.Same(t, colormap.StandardMaps["viridis"], cs.ColorMap())

	cs.Defaults()
	assert.False(t, cs.IsZero())
	assert.Same(t, colormap.StandardMaps["viridis"], cs.Map)
}

func TestColorMapStyleNormFor(t *testing.T) {
	dataRange := minmax.F64{Min: 0, Max: 10}

	var cs ColorMapStyle
	norm := cs.NormFor(dataRange)
	assert.Equal(t, LinearNorm{Min: 0, Max: 10}, norm)

	// fixed range ends clamp the data range
	cs.Range.SetMin(2)
	cs.Range.SetMax(4)
	norm = cs.NormFor(dataRange)
	assert.Equal(t, LinearNorm{Min: 2, Max: 4}, norm)

	// an explicit Norm takes precedence
	cs = ColorMapStyle{Norm: LogNorm{Min: 1, Max: 100}}
	assert.Equal(t, LogNorm{Min: 1, Max: 100}, cs.NormFor(dataRange))
}

func TestColorMapStyleMapValue(t *testing.T) {
	dataRange := minmax.F64{Min: 0, Max: 10}
	cs := ColorMapStyle{Map: colormap.StandardMaps["viridis"]}
	assert.Equal(t, cs.Map.Map(0), cs.MapValue(0, dataRange))
	assert.Equal(t, cs.Map.Map(0.5), cs.MapValue(5, dataRange))
	assert.Equal(t, cs.Map.Map(1), cs.MapValue(10, dataRange))

	// out of range values clamp to the map ends
	assert.Equal(t, cs.Map.Map(1), cs.MapValue(99, dataRange))

	// NaN values get the map's NoColor
	assert.Equal(t, cs.Map.NoColor, cs.MapValue(math.NaN(), dataRange))
}
