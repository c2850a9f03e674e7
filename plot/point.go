// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package plot

import (
	"image"
	"strconv"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/styles/units"
)

// PointStyle has style properties for drawing points as different shapes.
type PointStyle struct {
	// On indicates whether to plot points.
	On DefaultOffOn

	// Shape to draw.
	Shape Shapes

	// Color is the stroke color image specification.
	// Setting to nil turns off drawing of the stroke.
	Color image.Image

	// Fill is the color to fill solid regions, in a plot-specific way.
	// Setting to nil turns off filling.
	Fill image.Image

	// Width is the line width for the stroke, with a default of 1 Pt (point).
	Width units.Value

	// Size of shape to draw for each point. Defaults to 4 Pt (point).
	Size units.Value
}

func (ps *PointStyle) Defaults() {
	ps.Shape = CurrentSettings.PointShape
	ps.Color = colors.Uniform(colors.Black)
	ps.Fill = colors.Uniform(colors.White)
	ps.Width.Pt(CurrentSettings.LineWidth)
	ps.Size.Pt(CurrentSettings.PointSize)
}

// SetStroke sets the stroke and fill styles in the plot paint to the
// current point styles, returning false if the points are turned off
// or have no effective stroke.
func (ps *PointStyle) SetStroke(pt *Plot) bool {
	if ps.On == Off || ps.Color == nil {
		return false
	}
	pc := pt.Paint
	uc := &pc.UnitContext
	ps.Width.ToDots(uc)
	ps.Size.ToDots(uc)
	if ps.Width.Dots == 0 || ps.Size.Dots == 0 {
		return false
	}
	pc.StrokeStyle.Width = ps.Width
	pc.StrokeStyle.Color = ps.Color
	pc.StrokeStyle.ToDots(uc)
	pc.FillStyle.Color = ps.Fill
	return true
}

// Shapes has the options for how to draw points in the plot.
type Shapes int32

const (
	// Ring is the outline of a circle
	Ring Shapes = iota

	// Circle is a solid circle
	Circle

	// Square is the outline of a square
	Square

	// Box is a filled square
	Box

	// Triangle is the outline of a triangle
	Triangle

	// Pyramid is a filled triangle
	Pyramid

	// Plus is a plus sign
	Plus

	// Cross is a big X
	Cross
)

// ShapesN is the number of point shape options.
const ShapesN = Cross + 1

var shapeNames = []string{"Ring", "Circle", "Square", "Box", "Triangle", "Pyramid", "Plus", "Cross"}

func (sh Shapes) String() string {
	if sh < 0 || int(sh) >= len(shapeNames) {
		return "Shapes(" + strconv.Itoa(int(sh)) + ")"
	}
	return shapeNames[sh]
}
