// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"math"

	"github.com/NGWi/matplotlib/colors/colormap"
	"github.com/NGWi/matplotlib/math32/minmax"
)

// Norm rescales data values into the normalized [0, 1] range used to
// index a [colormap.Map]. Values outside of the range are clamped to
// the ends of the color map, and NaN values get the map's NoColor.
type Norm interface {
	// Normalize transforms a data value to the normalized range.
	Normalize(val float64) float64
}

// LinearNorm is a [Norm] that rescales values linearly between
// Min and Max.
type LinearNorm struct {
	Min, Max float64
}

var _ Norm = LinearNorm{}

// Normalize returns the fractional distance of val between Min and Max.
// If Min == Max, it returns 0 for all values.
func (ln LinearNorm) Normalize(val float64) float64 {
	if ln.Min == ln.Max {
		return 0
	}
	return (val - ln.Min) / (ln.Max - ln.Min)
}

// LogNorm is a [Norm] that rescales values logarithmically between
// Min and Max, which must both be positive.
type LogNorm struct {
	Min, Max float64
}

var _ Norm = LogNorm{}

// Normalize returns the fractional logarithmic distance of val between
// Min and Max. Values that cannot be log scaled (including all values
// when the range is invalid) return NaN, which maps to the color map's
// NoColor.
func (ln LogNorm) Normalize(val float64) float64 {
	if val <= 0 || ln.Min <= 0 || ln.Max <= 0 || ln.Min == ln.Max {
		return math.NaN()
	}
	logMin := math.Log(ln.Min)
	return (math.Log(val) - logMin) / (math.Log(ln.Max) - logMin)
}

// ColorMapStyle specifies how numeric data values are mapped to colors:
// a color map, an optional normalization, and an optional fixed range.
// The zero value maps linearly over the data range using the default
// color map from [CurrentSettings].
type ColorMapStyle struct {
	// Map is the color map used to translate normalized values into
	// colors. If nil, the [CurrentSettings].ColorMap map is used.
	Map *colormap.Map

	// Norm normalizes a data value into the [0, 1] range for the Map.
	// If nil, values are normalized linearly over Range.
	// Setting both Norm and a fixed Range end is rejected by plotters
	// that resolve these options.
	Norm Norm

	// Range optionally fixes either end of the data value range being
	// mapped. Ends that are not fixed use the min / max of the data.
	Range minmax.Range64
}

// Defaults sets the default color map per [CurrentSettings].
func (cs *ColorMapStyle) Defaults() {
	cs.Map = DefaultColorMap()
}

// IsZero returns true if no part of the style has been set.
func (cs *ColorMapStyle) IsZero() bool {
	return cs.Map == nil && cs.Norm == nil && !cs.Range.FixMin && !cs.Range.FixMax
}

// ColorMap returns the effective color map, substituting the
// [CurrentSettings] default map if nil.
func (cs *ColorMapStyle) ColorMap() *colormap.Map {
	if cs.Map != nil {
		return cs.Map
	}
	return DefaultColorMap()
}

// DefaultColorMap returns the default color map named in
// [CurrentSettings], falling back on viridis if the name is
// not registered.
func DefaultColorMap() *colormap.Map {
	if cm, ok := colormap.AvailableMaps[CurrentSettings.ColorMap]; ok {
		return cm
	}
	return colormap.StandardMaps["viridis"]
}

// NormFor returns the effective normalization for the given data range:
// the Norm if set, otherwise a [LinearNorm] over the data range as
// clamped by any fixed Range ends.
func (cs *ColorMapStyle) NormFor(dataRange minmax.F64) Norm {
	if cs.Norm != nil {
		return cs.Norm
	}
	mn, mx := cs.Range.Clamp(dataRange.Min, dataRange.Max)
	return LinearNorm{Min: mn, Max: mx}
}

// MapValue returns the color for the given data value, normalized
// over the given data range per [ColorMapStyle.NormFor].
func (cs *ColorMapStyle) MapValue(val float64, dataRange minmax.F64) color.RGBA {
	return cs.ColorMap().Map(float32(cs.NormFor(dataRange).Normalize(val)))
}
