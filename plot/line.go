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
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/styles/units"
)

// LineStyle has style properties for drawing lines.
type LineStyle struct {
	// On indicates whether to plot lines.
	On DefaultOffOn

	// Color is the stroke color image specification.
	// Setting to nil turns off drawing of the line.
	Color image.Image

	// Width is the line width, with a default of 1 Pt (point).
	Width units.Value

	// Dashes are the dashes of the stroke. Each pair of values specifies
	// the amount to paint and then the amount to skip.
	Dashes []float64

	// Fill is the color to fill solid regions, in a plot-specific way
	// (e.g., the area below a line plot).
	Fill image.Image

	// NegativeX specifies whether to draw lines that connect points with
	// a negative X-axis direction; otherwise there is a break in the line.
	NegativeX bool

	// Step specifies how to step the line between points.
	Step StepKind
}

func (ls *LineStyle) Defaults() {
	ls.Color = colors.Uniform(colors.Black)
	ls.Width.Pt(CurrentSettings.LineWidth)
}

// SetStroke sets the stroke style in the plot paint to the current line
// style, returning false if the line is turned off or has no effective
// stroke.
func (ls *LineStyle) SetStroke(pt *Plot) bool {
	if ls.On == Off || ls.Color == nil {
		return false
	}
	pc := pt.Paint
	uc := &pc.UnitContext
	ls.Width.ToDots(uc)
	if ls.Width.Dots == 0 {
		return false
	}
	pc.StrokeStyle.Width = ls.Width
	pc.StrokeStyle.Color = ls.Color
	pc.StrokeStyle.Dashes = ls.Dashes
	pc.StrokeStyle.ToDots(uc)
	return true
}

// Draw draws a line segment in the plot between given points,
// if the line style is active.
func (ls *LineStyle) Draw(pt *Plot, start, end math32.Vector2) bool {
	if !ls.SetStroke(pt) {
		return false
	}
	pc := pt.Paint
	pc.MoveTo(start.X, start.Y)
	pc.LineTo(end.X, end.Y)
	pc.Stroke()
	return true
}

// StepKind specifies a form of a connection of two consecutive points.
type StepKind int32

const (
	// NoStep connects two points by a line segment.
	NoStep StepKind = iota

	// PreStep connects two points by following lines: vertical, horizontal.
	PreStep

	// MidStep connects two points by following lines: horizontal, vertical,
	// horizontal. Vertical line is placed in the middle of the interval.
	MidStep

	// PostStep connects two points by following lines: horizontal, vertical.
	PostStep
)

var stepKindNames = []string{"NoStep", "PreStep", "MidStep", "PostStep"}

func (sk StepKind) String() string {
	if sk < 0 || int(sk) >= len(stepKindNames) {
		return "StepKind(" + strconv.Itoa(int(sk)) + ")"
	}
	return stepKindNames[sk]
}
