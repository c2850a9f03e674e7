// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core and gonum.org/v1/plot:
// Copyright (c) 2024, Cogent Core. All rights reserved.
// Copyright ©2015 The Gonum Authors. All rights reserved.

// Package plots defines the standard [plot.Plotter] types: XY lines
// and points, Scatter with independently color-mapped face and edge
// channels, Bar, error bars, Labels, and ColorBar.
package plots

import (
	"math"

	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/plot"
)

// XYType is the registered type name for [XY] plotters.
const XYType = "XY"

func init() {
	plot.RegisterPlotter(XYType, "draws lines between and / or points for X, Y data values, using optional Size data for the points.", []plot.Roles{plot.X, plot.Y}, []plot.Roles{plot.Size}, func(data plot.Data) plot.Plotter {
		return NewXY(data)
	})
}

// XY draws lines between and / or points for XY data values,
// based on the Line and Point styles.
type XY struct {
	// X, Y are the plotted values.
	X, Y plot.Values

	// Size is an optional per-point size multiplier for the points.
	Size plot.Values

	// PX, PY are the actual pixel plotting coordinates for each XY value.
	PX, PY []float32

	// Style is the style for plotting.
	Style plot.Style

	stylers plot.Stylers
}

// NewXY returns a new XY plotter for given X, Y data.
// Styler functions are obtained from the Y data if present.
func NewXY(data plot.Data) *XY {
	if data.CheckLengths() != nil {
		return nil
	}
	xy := &XY{}
	xy.X = plot.MustCopyRole(data, plot.X)
	xy.Y = plot.MustCopyRole(data, plot.Y)
	if xy.X == nil || xy.Y == nil {
		return nil
	}
	xy.Size = plot.CopyRole(data, plot.Size)
	xy.stylers = plot.GetStylersFromData(data, plot.Y)
	xy.Defaults()
	return xy
}

// NewLine returns an XY plotter styled to draw lines only.
func NewLine(data plot.Data) *XY {
	xy := NewXY(data)
	if xy == nil {
		return nil
	}
	return xy.Styler(func(s *plot.Style) {
		s.Line.On = plot.On
		s.Point.On = plot.Off
	})
}

// NewPoints returns an XY plotter styled to draw points only.
func NewPoints(data plot.Data) *XY {
	xy := NewXY(data)
	if xy == nil {
		return nil
	}
	return xy.Styler(func(s *plot.Style) {
		s.Line.On = plot.Off
		s.Point.On = plot.On
	})
}

func (xy *XY) Defaults() {
	xy.Style.Defaults()
}

// Styler adds a style function to set style parameters.
func (xy *XY) Styler(f func(s *plot.Style)) *XY {
	xy.stylers.Add(f)
	return xy
}

func (xy *XY) ApplyStyle(ps *plot.PlotStyle) {
	ps.SetElementStyle(&xy.Style)
	xy.stylers.Run(&xy.Style)
}

func (xy *XY) Stylers() *plot.Stylers { return &xy.stylers }

func (xy *XY) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = xy.PX
	pixY = xy.PY
	data = plot.Data{}
	data[plot.X] = xy.X
	data[plot.Y] = xy.Y
	if xy.Size != nil {
		data[plot.Size] = xy.Size
	}
	return
}

// Plot draws the lines and / or points, implementing the
// plot.Plotter interface.
func (xy *XY) Plot(plt *plot.Plot) {
	pc := plt.Paint
	xy.PX = plot.PlotX(plt, xy.X)
	xy.PY = plot.PlotY(plt, xy.Y)
	np := len(xy.PX)
	if np == 0 {
		return
	}

	if xy.Style.Line.Fill != nil {
		pc.FillStyle.Color = xy.Style.Line.Fill
		minY := plt.PY(plt.Y.Range.Min)
		prevX, prevY := xy.PX[0], minY
		pc.MoveTo(prevX, minY)
		for i := range xy.PX {
			ptx, pty := xy.PX[i], xy.PY[i]
			switch xy.Style.Line.Step {
			case plot.NoStep:
				if ptx < prevX {
					pc.LineTo(prevX, minY)
					pc.ClosePath()
					pc.MoveTo(ptx, minY)
				}
				pc.LineTo(ptx, pty)
			case plot.PreStep:
				if i == 0 {
					continue
				}
				if ptx < prevX {
					pc.LineTo(prevX, minY)
					pc.ClosePath()
					pc.MoveTo(ptx, minY)
				} else {
					pc.LineTo(prevX, pty)
				}
				pc.LineTo(ptx, pty)
			case plot.MidStep:
				if ptx < prevX {
					pc.LineTo(prevX, minY)
					pc.ClosePath()
					pc.MoveTo(ptx, minY)
				} else {
					pc.LineTo(0.5*(prevX+ptx), prevY)
					pc.LineTo(0.5*(prevX+ptx), pty)
				}
				pc.LineTo(ptx, pty)
			case plot.PostStep:
				if ptx < prevX {
					pc.LineTo(prevX, minY)
					pc.ClosePath()
					pc.MoveTo(ptx, minY)
				} else {
					pc.LineTo(ptx, prevY)
				}
				pc.LineTo(ptx, pty)
			}
			prevX, prevY = ptx, pty
		}
		pc.LineTo(prevX, minY)
		pc.ClosePath()
		pc.Fill()
		pc.FillStyle.Color = nil
	}

	if xy.Style.Line.On.Or(plot.CurrentSettings.Lines) && xy.Style.Line.SetStroke(plt) {
		prevX, prevY := xy.PX[0], xy.PY[0]
		pc.MoveTo(prevX, prevY)
		for i := 1; i < np; i++ {
			ptx, pty := xy.PX[i], xy.PY[i]
			if ptx < prevX {
				if !xy.Style.Line.NegativeX {
					pc.MoveTo(ptx, pty)
					prevX, prevY = ptx, pty
					continue
				}
			} else {
				switch xy.Style.Line.Step {
				case plot.PreStep:
					pc.LineTo(prevX, pty)
				case plot.MidStep:
					pc.LineTo(0.5*(prevX+ptx), prevY)
					pc.LineTo(0.5*(prevX+ptx), pty)
				case plot.PostStep:
					pc.LineTo(ptx, prevY)
				}
			}
			pc.LineTo(ptx, pty)
			prevX, prevY = ptx, pty
		}
		pc.Stroke()
	}

	if xy.Style.Point.On.Or(plot.CurrentSettings.Points) && xy.Style.Point.SetStroke(plt) {
		for i := range xy.PX {
			sz := xy.Style.Point.Size.Dots
			if i < len(xy.Size) && !math.IsNaN(xy.Size[i]) {
				sz *= float32(xy.Size[i])
			}
			DrawShape(pc, math32.Vec2(xy.PX[i], xy.PY[i]), sz, xy.Style.Point.Shape)
		}
	}
	pc.FillStyle.Color = nil
}

// Thumbnail draws the legend thumbnail, implementing the
// plot.Thumbnailer interface.
func (xy *XY) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	ptb := pc.Bounds
	midX := 0.5 * float32(ptb.Min.X+ptb.Max.X)
	midY := 0.5 * float32(ptb.Min.Y+ptb.Max.Y)

	if xy.Style.Line.On.Or(plot.CurrentSettings.Lines) && xy.Style.Line.SetStroke(plt) {
		pc.MoveTo(float32(ptb.Min.X), midY)
		pc.LineTo(float32(ptb.Max.X), midY)
		pc.Stroke()
	}
	if xy.Style.Point.On.Or(plot.CurrentSettings.Points) && xy.Style.Point.SetStroke(plt) {
		DrawShape(pc, math32.Vec2(midX, midY), xy.Style.Point.Size.Dots, xy.Style.Point.Shape)
	}
	pc.FillStyle.Color = nil
}

// UpdateRange updates the given ranges.
func (xy *XY) UpdateRange(plt *plot.Plot, xr, yr, zr *minmax.F64) {
	plot.Range(xy.X, xr)
	plot.RangeClamp(xy.Y, yr, &xy.Style.Range)
}
