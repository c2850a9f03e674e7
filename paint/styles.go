// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/styles/units"
)

// FillStyle contains all the properties for filling a region.
type FillStyle struct {
	// Color is the image to fill with. A nil color means no fill.
	Color image.Image
}

func (fs *FillStyle) Defaults() {
	fs.Color = nil
}

// StrokeStyle contains all the properties for stroking a path.
type StrokeStyle struct {
	// Color is the image to stroke with. A nil color means no stroke.
	Color image.Image

	// Width is the line width, with a default of 1 dp.
	Width units.Value

	// Dashes are the dashes of the stroke. Each pair of values specifies
	// the amount to paint and then the amount to skip.
	Dashes []float64
}

func (ss *StrokeStyle) Defaults() {
	ss.Color = colors.Uniform(colors.Black)
	ss.Width.Dp(1)
	ss.Dashes = nil
}

// ToDots runs ToDots on unit values, to compile down to raw dots.
func (ss *StrokeStyle) ToDots(uc *units.Context) {
	ss.Width.ToDots(uc)
}
