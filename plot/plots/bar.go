// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core and gonum.org/v1/plot:
// Copyright (c) 2024, Cogent Core. All rights reserved.
// Copyright ©2015 The Gonum Authors. All rights reserved.

package plots

import (
	"math"

	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/plot"
)

// BarType is the registered type name for [Bar] plotters.
const BarType = "Bar"

func init() {
	plot.RegisterPlotter(BarType, "draws rectangular bars with heights proportional to the Y values, with an optional error bar at the top of each bar using the High data role.", []plot.Roles{plot.Y}, []plot.Roles{plot.High}, func(data plot.Data) plot.Plotter {
		return NewBar(data)
	})
}

// A Bar presents ordinally-organized data with rectangular bars
// with lengths proportional to the data values, and an optional
// error bar ("handle") at the top of the bar using the given error
// value (single value, like a standard deviation etc, not drawn
// below the bar).
//
// Bars are plotted centered at integer multiples of Stride plus
// Offset, which is modified by the optional Pad amount. The full
// data range includes the Pad value to extend the range beyond the
// edge bar centers. Bar Width is in data units, e.g., it should be
// <= Stride. Defaults provide a unit-spaced plot.
type Bar struct {
	// Y are the plotted values.
	Y plot.Values

	// Errors is an optional error deviation to draw above each bar.
	Errors plot.Values

	// PX, PY are the actual pixel plotting coordinates for each value.
	PX, PY []float32

	// Style is the style for plotting.
	Style plot.Style

	// Horizontal dictates whether the bars should be in the vertical
	// (default) or horizontal direction. If Horizontal is true, all
	// X locations and distances referred to here will actually be Y
	// locations and distances.
	Horizontal bool

	// StackedOn is the bar plotter upon which this one is stacked.
	StackedOn *Bar

	stylers plot.Stylers
}

func (br *Bar) Defaults() {
	br.Style.Defaults()
}

// NewBar returns a new Bar plotter with a single bar for each Y value.
// The bar heights correspond to the values and their X locations
// correspond to the index of their value in the data.
// Optional error-bar values are taken from the High data role.
// Styler functions are obtained from the Y data if present.
func NewBar(data plot.Data) *Bar {
	if data.CheckLengths() != nil {
		return nil
	}
	br := &Bar{}
	br.Y = plot.MustCopyRole(data, plot.Y)
	if br.Y == nil {
		return nil
	}
	br.Errors = plot.CopyRole(data, plot.High)
	br.stylers = plot.GetStylersFromData(data, plot.Y)
	br.Defaults()
	return br
}

// Styler adds a style function to set style parameters.
func (br *Bar) Styler(f func(s *plot.Style)) *Bar {
	br.stylers.Add(f)
	return br
}

func (br *Bar) ApplyStyle(ps *plot.PlotStyle) {
	ps.SetElementStyle(&br.Style)
	br.stylers.Run(&br.Style)
}

func (br *Bar) Stylers() *plot.Stylers { return &br.stylers }

func (br *Bar) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = br.PX
	pixY = br.PY
	data = plot.Data{}
	data[plot.Y] = br.Y
	if br.Errors != nil {
		data[plot.High] = br.Errors
	}
	return
}

// BarHeight returns the total height of the ith bar, taking into
// account any bars upon which it is stacked.
func (br *Bar) BarHeight(i int) float64 {
	ht := float64(0)
	if br == nil {
		return 0
	}
	if i >= 0 && i < len(br.Y) {
		ht += br.Y[i]
	}
	if br.StackedOn != nil {
		ht += br.StackedOn.BarHeight(i)
	}
	return ht
}

// StackOn stacks this bar plotter on top of another, and sets its
// bar positioning options to those of the one it is stacked on.
func (br *Bar) StackOn(on *Bar) {
	br.Style.Width = on.Style.Width
	br.StackedOn = on
}

// Plot implements the plot.Plotter interface.
func (br *Bar) Plot(plt *plot.Plot) {
	pc := plt.Paint
	br.Style.Line.SetStroke(plt)
	pc.FillStyle.Color = br.Style.Line.Fill
	bw := br.Style.Width

	nv := len(br.Y)
	br.PX = make([]float32, nv)
	br.PY = make([]float32, nv)

	hw := 0.5 * bw.Width
	ew := bw.Width / 3
	for i, ht := range br.Y {
		cat := bw.Offset + float64(i)*bw.Stride
		var bottom float64
		var catVal, catMin, catMax, valMin, valMax float32
		var box math32.Box2
		if br.Horizontal {
			catVal = plt.PY(cat)
			catMin = plt.PY(cat - hw)
			catMax = plt.PY(cat + hw)
			bottom = br.StackedOn.BarHeight(i) // nil safe
			valMin = plt.PX(bottom)
			valMax = plt.PX(bottom + ht)
			br.PX[i] = valMax
			br.PY[i] = catVal
			box.Min.Set(valMin, catMin)
			box.Max.Set(valMax, catMax)
		} else {
			catVal = plt.PX(cat)
			catMin = plt.PX(cat - hw)
			catMax = plt.PX(cat + hw)
			bottom = br.StackedOn.BarHeight(i) // nil safe
			valMin = plt.PY(bottom)
			valMax = plt.PY(bottom + ht)
			br.PX[i] = catVal
			br.PY[i] = valMax
			box.Min.Set(catMin, valMin)
			box.Max.Set(catMax, valMax)
		}

		pc.DrawRectangle(box.Min.X, box.Min.Y, box.Size().X, box.Size().Y)
		pc.FillStrokeClear()

		if i < len(br.Errors) {
			errval := math.Abs(br.Errors[i])
			if br.Horizontal {
				eVal := plt.PX(bottom + ht + errval)
				pc.MoveTo(valMax, catVal)
				pc.LineTo(eVal, catVal)
				pc.MoveTo(eVal, plt.PY(cat-ew))
				pc.LineTo(eVal, plt.PY(cat+ew))
			} else {
				eVal := plt.PY(bottom + ht + errval)
				pc.MoveTo(catVal, valMax)
				pc.LineTo(catVal, eVal)
				pc.MoveTo(plt.PX(cat-ew), eVal)
				pc.LineTo(plt.PX(cat+ew), eVal)
			}
			pc.Stroke()
		}
	}
	pc.FillStyle.Color = nil
}

// UpdateRange updates the given ranges.
func (br *Bar) UpdateRange(plt *plot.Plot, xr, yr, zr *minmax.F64) {
	bw := br.Style.Width
	catMin := bw.Offset - bw.Pad
	catMax := bw.Offset + float64(len(br.Y)-1)*bw.Stride + bw.Pad

	for i, val := range br.Y {
		valBot := br.StackedOn.BarHeight(i)
		valTop := valBot + val
		if i < len(br.Errors) {
			valTop += math.Abs(br.Errors[i])
		}
		if br.Horizontal {
			xr.FitInRange(minmax.F64{Min: valBot, Max: valTop})
		} else {
			yr.FitInRange(minmax.F64{Min: valBot, Max: valTop})
		}
	}
	if br.Horizontal {
		yr.FitInRange(minmax.F64{Min: catMin, Max: catMax})
	} else {
		xr.FitInRange(minmax.F64{Min: catMin, Max: catMax})
	}
}

// Thumbnail draws the legend thumbnail, implementing the
// plot.Thumbnailer interface.
func (br *Bar) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	br.Style.Line.SetStroke(plt)
	pc.FillStyle.Color = br.Style.Line.Fill
	ptb := pc.Bounds
	pc.DrawRectangle(float32(ptb.Min.X), float32(ptb.Min.Y), float32(ptb.Size().X), float32(ptb.Size().Y))
	pc.FillStrokeClear()
	pc.FillStyle.Color = nil
}
