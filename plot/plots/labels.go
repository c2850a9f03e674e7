// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package plots

import (
	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/plot"
)

// LabelsType is the registered type name for [Labels] plotters.
const LabelsType = "Labels"

func init() {
	plot.RegisterPlotter(LabelsType, "draws text labels at X, Y points.", []plot.Roles{plot.X, plot.Y, plot.Label}, []plot.Roles{}, func(data plot.Data) plot.Plotter {
		return NewLabels(data)
	})
}

// Labels draws text labels at specified X, Y points.
type Labels struct {
	// X, Y are the label coordinates.
	X, Y plot.Values

	// Labels is the set of labels corresponding to each point.
	Labels plot.Labels

	// PX, PY are the actual pixel plotting coordinates for each XY value.
	PX, PY []float32

	// Style is the style for plotting.
	Style plot.Style

	stylers plot.Stylers
}

func (lb *Labels) Defaults() {
	lb.Style.Defaults()
}

// NewLabels returns a new Labels plotter using the Label data role
// for the label strings. Styler functions are obtained from the
// Label data if present.
func NewLabels(data plot.Data) *Labels {
	if data.CheckLengths() != nil {
		return nil
	}
	lb := &Labels{}
	lb.X = plot.MustCopyRole(data, plot.X)
	lb.Y = plot.MustCopyRole(data, plot.Y)
	if lb.X == nil || lb.Y == nil {
		return nil
	}
	ld, ok := data[plot.Label]
	if !ok {
		errors.Log(errors.New("plots.NewLabels: Label data role is required"))
		return nil
	}
	lb.Labels = make(plot.Labels, ld.Len())
	for i := range lb.Labels {
		lb.Labels[i] = ld.String1D(i)
	}
	lb.stylers = plot.GetStylersFromData(data, plot.Label)
	lb.Defaults()
	return lb
}

// Styler adds a style function to set style parameters.
func (lb *Labels) Styler(f func(s *plot.Style)) *Labels {
	lb.stylers.Add(f)
	return lb
}

func (lb *Labels) ApplyStyle(ps *plot.PlotStyle) {
	ps.SetElementStyle(&lb.Style)
	lb.stylers.Run(&lb.Style)
}

func (lb *Labels) Stylers() *plot.Stylers { return &lb.stylers }

func (lb *Labels) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = lb.PX
	pixY = lb.PY
	data = plot.Data{}
	data[plot.X] = lb.X
	data[plot.Y] = lb.Y
	data[plot.Label] = lb.Labels
	return
}

// Plot implements the plot.Plotter interface, drawing labels.
func (lb *Labels) Plot(plt *plot.Plot) {
	pc := plt.Paint
	uc := &pc.UnitContext
	lb.PX = plot.PlotX(plt, lb.X)
	lb.PY = plot.PlotY(plt, lb.Y)
	st := &lb.Style.Text
	st.Offset.ToDots(uc)
	var ltxt plot.Text
	ltxt.Defaults()
	ltxt.Style = *st
	for i, label := range lb.Labels {
		if label == "" {
			continue
		}
		ltxt.Text = label
		ltxt.Config(plt)
		tht := ltxt.Size().Y
		ltxt.Draw(plt, math32.Vec2(lb.PX[i]+st.Offset.X.Dots, lb.PY[i]+st.Offset.Y.Dots-tht))
	}
}

// UpdateRange updates the given ranges. The Y range is extended
// by an extra proportion of its span so labels above the top data
// points stay inside the plot area.
func (lb *Labels) UpdateRange(plt *plot.Plot, xr, yr, zr *minmax.F64) {
	plot.Range(lb.X, xr)
	plot.Range(lb.Y, yr)
	yr.Max += 0.05 * yr.Range()
}
