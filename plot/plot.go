// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core and gonum.org/v1/plot:
// Copyright (c) 2024, Cogent Core. All rights reserved.
// Copyright ©2015 The Gonum Authors. All rights reserved.

package plot

import (
	"image"
	"image/color"

	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/base/iox/imagex"
	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/paint"
)

// Plot is the basic type representing a plot.
type Plot struct {
	// Title of the plot.
	Title Text

	// Style has the styling properties for the plot.
	Style PlotStyle

	// StandardTextStyle is a standard text style with default options.
	StandardTextStyle TextStyle

	// X and Y are the horizontal and vertical axes
	// of the plot respectively.
	X, Y Axis

	// Legend is the plot's legend.
	Legend Legend

	// Plotters are drawn by calling their Plot method after the axes
	// are drawn.
	Plotters []Plotter

	// Size is the target size of the image to render to.
	Size image.Point

	// DPI is the dots per inch for rendering the image.
	// Larger numbers result in larger scaling of the plot contents
	// which is strongly recommended for print (e.g., use 300 for print).
	DPI float32

	// Paint is the painter for rendering, set by [Plot.Resize].
	Paint *paint.Context

	// Pixels is the image that we are rendering into.
	Pixels *image.RGBA

	// PlotBox is the frame for the plot within the image,
	// the region where the data is plotted, set during drawing.
	PlotBox math32.Box2

	// PanZoom provides post-styling pan and zoom range manipulation.
	PanZoom PanZoom

	// nextColor is the index of the next automatic color,
	// for [Plot.NextColor].
	nextColor int
}

// New returns a new plot with some reasonable default settings.
func New() *Plot {
	pt := &Plot{}
	pt.Defaults()
	return pt
}

// Defaults sets defaults.
func (pt *Plot) Defaults() {
	pt.Style.Defaults()
	pt.Title.Defaults()
	pt.Title.Style.Size.Dp(24)
	pt.X.Defaults(math32.X)
	pt.Y.Defaults(math32.Y)
	pt.Legend.Defaults()
	pt.DPI = 96
	pt.Size = image.Point{X: 640, Y: 480}
	pt.StandardTextStyle.Defaults()
	pt.PanZoom.Defaults()
}

// applyStyle applies all the style parameters, first running any
// plotter stylers on the overall plot style, then applying element
// styles to each plotter and propagating plot styles to the axes,
// title and legend.
func (pt *Plot) applyStyle() {
	var st Style
	st.Defaults()
	st.Plot = pt.Style
	for _, plt := range pt.Plotters {
		plt.Stylers().Run(&st)
	}
	pt.Style = st.Plot
	for _, plt := range pt.Plotters {
		plt.ApplyStyle(&pt.Style)
	}
	pt.Title.Style = pt.Style.TitleStyle
	if pt.Style.Title != "" {
		pt.Title.Text = pt.Style.Title
	}
	pt.Legend.Style = pt.Style.Legend
	pt.X.Style = pt.Style.Axis
	pt.Y.Style = pt.Style.Axis
	if pt.Style.XAxisLabel != "" {
		pt.X.Label.Text = pt.Style.XAxisLabel
	}
	if pt.Style.YAxisLabel != "" {
		pt.Y.Label.Text = pt.Style.YAxisLabel
	}
	pt.X.Label.Style = pt.Style.Axis.Text
	pt.Y.Label.Style = pt.Style.Axis.Text
	pt.X.Style.TickText.Rotation = pt.Style.XAxisRotation
	pt.Y.Label.Style.Rotation = -90
	pt.Y.Style.TickText.Align = End
}

// Add adds Plotters to the plot.
// Plotters are drawn in the order in which they were added.
func (pt *Plot) Add(ps ...Plotter) {
	pt.Plotters = append(pt.Plotters, ps...)
}

// NextColor returns the next automatic color in the plot color cycle,
// for plotters that do not specify their own color.
func (pt *Plot) NextColor() color.RGBA {
	clr := colors.Spaced(pt.nextColor)
	pt.nextColor++
	return clr
}

// SetPixels sets the backing pixels image to the given image,
// and configures the paint rendering context accordingly.
func (pt *Plot) SetPixels(img *image.RGBA) {
	pt.Pixels = img
	pt.Paint = paint.NewContextFromRGBA(img)
	pt.Paint.UnitContext.SetDPI(pt.DPI * pt.Style.Scale)
	pt.Size = img.Bounds().Size()
}

// Resize sets the size of the output image to the given size.
// Does nothing if already the right size.
func (pt *Plot) Resize(sz image.Point) {
	if pt.Pixels != nil {
		ib := pt.Pixels.Bounds().Size()
		if ib == sz {
			pt.Size = sz
			pt.Paint.UnitContext.SetDPI(pt.DPI * pt.Style.Scale)
			return
		}
	}
	pt.SetPixels(image.NewRGBA(image.Rectangle{Max: sz}))
}

// SaveImage saves the last rendered image to the given filename,
// typically a .png file.
func (pt *Plot) SaveImage(filename string) error {
	if pt.Pixels == nil {
		return errors.New("plot.SaveImage: plot has not been rendered")
	}
	return imagex.Save(pt.Pixels, filename)
}

// UpdateRange updates the axis range values based on the current
// data in the plotters, subject to any fixed range settings,
// and then applies any PanZoom changes.
func (pt *Plot) UpdateRange() {
	pt.X.Range.SetInfinity()
	pt.Y.Range.SetInfinity()
	var zr minmax.F64
	zr.SetInfinity()
	for _, pl := range pt.Plotters {
		pl.UpdateRange(pt, &pt.X.Range, &pt.Y.Range, &zr)
	}
	pt.X.SanitizeRange()
	pt.Y.SanitizeRange()
	applyPanZoom(&pt.X.Range, pt.PanZoom.XScale, pt.PanZoom.XOffset)
	applyPanZoom(&pt.Y.Range, pt.PanZoom.YScale, pt.PanZoom.YOffset)
}

// applyPanZoom scales the range around its midpoint and then offsets it.
func applyPanZoom(r *minmax.F64, scale, offset float64) {
	if scale <= 0 {
		scale = 1
	}
	if scale != 1 {
		mid := r.Midpoint()
		ext := 0.5 * r.Range() / scale
		r.Min = mid - ext
		r.Max = mid + ext
	}
	r.Min += offset
	r.Max += offset
}

// PX returns the X-axis rendering coordinate for the given raw data
// value, using the current plot bounding region.
func (pt *Plot) PX(v float64) float32 {
	return pt.PlotBox.ProjectX(float32(pt.X.Norm(v)))
}

// PY returns the Y-axis rendering coordinate for the given raw data
// value, using the current plot bounding region.
func (pt *Plot) PY(v float64) float32 {
	return pt.PlotBox.ProjectY(float32(1 - pt.Y.Norm(v)))
}
