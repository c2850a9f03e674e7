// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

// Package colormap provides standard color maps for mapping data
// values onto colors, and a registry for custom maps.
package colormap

import (
	"image/color"
	"sort"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
)

// Map maps a value onto a color by interpolating between a list of colors
// defining a spectrum, or optionally as an indexed list of colors.
type Map struct {
	// Name is the name of the color map.
	Name string

	// NoColor is the color to use for invalid numbers (e.g., NaN).
	NoColor color.RGBA

	// Colors is the list of colors along the spectrum, which are
	// interpolated between to produce intermediate colors.
	Colors []color.RGBA

	// Indexed uses the colors as an exact indexed list of colors,
	// with no interpolation.
	Indexed bool
}

func (cm *Map) String() string {
	return cm.Name
}

// Map returns the color for the given normalized value in the range 0-1.
// Values outside that range are clamped to the ends of the spectrum,
// and NaN values return NoColor. For an Indexed map, the value is
// used directly as an index via [Map.MapIndex].
func (cm *Map) Map(val float32) color.RGBA {
	nc := len(cm.Colors)
	switch {
	case nc == 0:
		return color.RGBA{}
	case math32.IsNaN(val):
		return cm.NoColor
	case cm.Indexed:
		return cm.MapIndex(int(val))
	case nc == 1:
		return cm.Colors[0]
	case val <= 0:
		return cm.Colors[0]
	case val >= 1:
		return cm.Colors[nc-1]
	}
	ival := val * float32(nc-1)
	lidx := math32.Floor(ival)
	uidx := math32.Ceil(ival)
	if lidx == uidx {
		return cm.Colors[int(lidx)]
	}
	cmix := 100 * (1 - (ival - lidx))
	lclr := cm.Colors[int(lidx)]
	uclr := cm.Colors[int(uidx)]
	return colors.BlendRGB(cmix, lclr, uclr)
}

// MapIndex returns the color for the given index, for an Indexed map.
// Out-of-range indexes return NoColor.
func (cm *Map) MapIndex(idx int) color.RGBA {
	if idx < 0 || idx >= len(cm.Colors) {
		return cm.NoColor
	}
	return cm.Colors[idx]
}

// AvailableMaps is the list of all available color maps,
// indexed by name. See [Register] for adding custom maps.
var AvailableMaps = map[string]*Map{}

// Register adds the given map to [AvailableMaps], under its Name.
func Register(cm *Map) {
	AvailableMaps[cm.Name] = cm
}

// AvailableMapsList returns a sorted list of the names of all
// the available color maps.
func AvailableMapsList() []string {
	sl := make([]string, 0, len(AvailableMaps))
	for nm := range AvailableMaps {
		sl = append(sl, nm)
	}
	sort.Strings(sl)
	return sl
}
