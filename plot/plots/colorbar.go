// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"strconv"

	"github.com/NGWi/matplotlib/colors/gradient"
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/plot"
	"github.com/NGWi/matplotlib/styles/units"
)

// ColorBarType is the registered type name for [ColorBar] plotters.
const ColorBarType = "ColorBar"

func init() {
	plot.RegisterPlotter(ColorBarType, "draws a vertical color map legend bar at the right edge of the plot area, showing the mapping from the Color data values to colors.", []plot.Roles{plot.Color}, []plot.Roles{}, func(data plot.Data) plot.Plotter {
		return NewColorBar(data)
	})
}

// ColorBar draws a vertical color map legend bar at the right edge
// of the plot area, with the minimum and maximum mapped values
// labeled at the ends. Use [NewColorBarFor] to label the mapping of
// an existing [Scatter] channel.
type ColorBar struct {
	// Values are the mapped data values whose range the bar spans.
	Values plot.Values

	// ColorMap specifies the map, normalization, and fixed range.
	ColorMap plot.ColorMapStyle

	// Width is the width of the bar. Default is 12 Pt.
	Width units.Value

	// Pad is the space between the bar and the plot edge and labels.
	// Default is 4 Pt.
	Pad units.Value

	// Style is the style for plotting. Style.Text is used for the
	// end labels.
	Style plot.Style

	// dataRange is the range of the values, set by UpdateRange.
	dataRange minmax.F64

	stylers plot.Stylers
}

func (cb *ColorBar) Defaults() {
	cb.Style.Defaults()
	cb.Width.Pt(12)
	cb.Pad.Pt(4)
}

// NewColorBar returns a new ColorBar spanning the range of the
// Color role data. Styler functions are obtained from the Color
// data if present.
func NewColorBar(data plot.Data) *ColorBar {
	cv := rawValues(data, plot.Color)
	if cv == nil {
		return nil
	}
	cb := &ColorBar{Values: cv}
	cb.stylers = plot.GetStylersFromData(data, plot.Color)
	cb.Defaults()
	return cb
}

// NewColorBarFor returns a new ColorBar labeling the face or edge
// mapping of the given scatter: the edge channel if edge is true
// and the scatter has mapped edge values, otherwise the face
// channel. Returns nil if the selected channel is not value mapped.
func NewColorBarFor(sc *Scatter, edge bool) *ColorBar {
	cb := &ColorBar{}
	switch {
	case edge && sc.Edge.Kind == MappedColors:
		cb.Values = sc.Edge.Values
		cb.ColorMap = sc.EdgeMap
	case !edge && sc.Face.Kind == MappedColors:
		cb.Values = sc.Face.Values
		cb.ColorMap = sc.FaceMap
	default:
		return nil
	}
	cb.Defaults()
	return cb
}

// Styler adds a style function to set style parameters.
func (cb *ColorBar) Styler(f func(s *plot.Style)) *ColorBar {
	cb.stylers.Add(f)
	return cb
}

func (cb *ColorBar) ApplyStyle(ps *plot.PlotStyle) {
	ps.SetElementStyle(&cb.Style)
	cb.stylers.Run(&cb.Style)
}

func (cb *ColorBar) Stylers() *plot.Stylers { return &cb.stylers }

func (cb *ColorBar) Data() (data plot.Data, pixX, pixY []float32) {
	data = plot.Data{}
	data[plot.Color] = cb.Values
	return
}

// Plot draws the bar, implementing the plot.Plotter interface.
// The bar is a vertical gradient with stops sampled through the
// color map normalization, so nonlinear norms render faithfully.
func (cb *ColorBar) Plot(plt *plot.Plot) {
	pc := plt.Paint
	uc := &pc.UnitContext
	cb.Width.ToDots(uc)
	cb.Pad.ToDots(uc)

	b := pc.Bounds
	x1 := float32(b.Max.X) - cb.Pad.Dots
	x0 := x1 - cb.Width.Dots
	y0 := float32(b.Min.Y) + cb.Pad.Dots
	y1 := float32(b.Max.Y) - cb.Pad.Dots
	if x0 >= x1 || y0 >= y1 {
		return
	}
	box := math32.B2(x0, y0, x1, y1)

	const nstops = 64
	g := gradient.NewLinear().SetStart(math32.Vec2(0, 1)).SetEnd(math32.Vec2(0, 0)).SetBox(box)
	for i := 0; i < nstops; i++ {
		t := float32(i) / float32(nstops-1)
		val := cb.dataRange.Min + float64(t)*cb.dataRange.Range()
		g.AddStop(cb.ColorMap.MapValue(val, cb.dataRange), t)
	}
	pc.FillStyle.Color = g
	pc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	pc.Fill()
	pc.FillStyle.Color = nil

	var ltxt plot.Text
	ltxt.Defaults()
	ltxt.Style = cb.Style.Text
	for _, end := range []struct {
		val float64
		top bool
	}{{cb.dataRange.Max, true}, {cb.dataRange.Min, false}} {
		ltxt.Text = strconv.FormatFloat(end.val, 'g', 4, 64)
		ltxt.Config(plt)
		sz := ltxt.Size()
		y := y1 - sz.Y
		if end.top {
			y = y0
		}
		ltxt.Draw(plt, math32.Vec2(x0-cb.Pad.Dots-sz.X, y))
	}
}

// UpdateRange caches the value range for rendering; the bar does
// not affect the axis ranges.
func (cb *ColorBar) UpdateRange(plt *plot.Plot, xr, yr, zr *minmax.F64) {
	cb.dataRange.SetInfinity()
	rangeFinite(cb.Values, &cb.dataRange)
	cb.dataRange.Min, cb.dataRange.Max = cb.ColorMap.Range.Clamp(cb.dataRange.Min, cb.dataRange.Max)
}

// Thumbnail draws the legend thumbnail, implementing the
// plot.Thumbnailer interface.
func (cb *ColorBar) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	ptb := pc.Bounds
	box := math32.Box2{}
	box.SetFromRect(ptb)
	g := gradient.FromMap(cb.ColorMap.ColorMap(), 16)
	g.SetStart(math32.Vec2(0, 0)).SetEnd(math32.Vec2(1, 0)).SetBox(box)
	pc.FillStyle.Color = g
	pc.DrawRectangle(box.Min.X, box.Min.Y, box.Size().X, box.Size().Y)
	pc.Fill()
	pc.FillStyle.Color = nil
}
