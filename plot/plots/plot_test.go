// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package plots

import (
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/NGWi/matplotlib/base/iox/imagex"
	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineData(n int) (x, y plot.Values) {
	x = make(plot.Values, n)
	y = make(plot.Values, n)
	for i := range x {
		xv := float64(i % 21)
		x[i] = xv * 5
		if i < 21 {
			y[i] = 50 + 40*math.Sin((xv/8)*math.Pi)
		} else {
			y[i] = 50 + 40*math.Cos((xv/8)*math.Pi)
		}
	}
	return
}

func ExampleXY() {
	x, y := sineData(42)
	plt := plot.New()
	plt.Add(NewLine(plot.Data{plot.X: x, plot.Y: y}).Styler(func(s *plot.Style) {
		s.Line.Color = colors.Uniform(colors.Red)
		s.Line.Width.Pt(2)
	}))
	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	plt.SaveImage("testdata/ex_line_plot.png")
	// Output:
}

func TestLine(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Line"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	// note: making two overlapping series
	x, y := sineData(42)
	l1 := NewLine(plot.Data{plot.X: x, plot.Y: y})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line.png")

	l1.Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Yellow)
	})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "line-fill.png")

	for _, step := range []plot.StepKind{plot.PreStep, plot.MidStep, plot.PostStep} {
		l1.Styler(func(s *plot.Style) {
			s.Line.Step = step
		})
		plt.Draw()
		imagex.Assert(t, plt.Pixels, "line-"+step.String()+".png")
	}
}

func TestPoints(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Points"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	x, y := sineData(21)
	l1 := NewPoints(plot.Data{plot.X: x, plot.Y: y})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "points.png")
}

func TestLabels(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Labels"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	x, y := sineData(12)
	labels := make(plot.Labels, 12)
	for i := range labels {
		labels[i] = fmt.Sprintf("%7.4g", y[i])
	}

	l1 := NewLine(plot.Data{plot.X: x, plot.Y: y}).Styler(func(s *plot.Style) {
		s.Point.On = plot.On
	})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewLabels(plot.Data{plot.X: x, plot.Y: y, plot.Label: labels})
	require.NotNil(t, l2)
	l2.Styler(func(s *plot.Style) {
		s.Text.Offset.X.Dp(6)
		s.Text.Offset.Y.Dp(-6)
	})
	plt.Add(l2)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "labels.png")
}

func TestBar(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Bar Chart"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	_, y := sineData(21)
	_, cos := sineData(42)
	cos = cos[21:]

	l1 := NewBar(plot.Data{plot.Y: y}).Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Red)
	})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar.png")

	l2 := NewBar(plot.Data{plot.Y: cos}).Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Blue)
		s.Width.Stride = 2
		s.Width.Offset = 2
	})
	require.NotNil(t, l2)
	l1.Styler(func(s *plot.Style) {
		s.Width.Stride = 2
	})
	plt.Add(l2)
	plt.Legend.Add("Cosine", l2)
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-cos.png")
}

func TestBarErr(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Bar Chart Errors"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	_, y := sineData(21)
	errs := make(plot.Values, 21)
	for i := range errs {
		errs[i] = 5 + 4*math.Cos((float64(i)/8)*math.Pi)
	}

	l1 := NewBar(plot.Data{plot.Y: y, plot.High: errs}).Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Red)
	})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-err.png")

	l1.Horizontal = true
	plt.UpdateRange()
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-err-horiz.png")
}

func TestBarStack(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Bar Chart Stacked"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	_, y := sineData(21)
	cos := make(plot.Values, 21)
	for i := range cos {
		cos[i] = 5 + 4*math.Cos((float64(i)/8)*math.Pi)
	}

	l1 := NewBar(plot.Data{plot.Y: y}).Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Red)
	})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewBar(plot.Data{plot.Y: cos}).Styler(func(s *plot.Style) {
		s.Line.Fill = colors.Uniform(colors.Blue)
	})
	require.NotNil(t, l2)
	l2.StackOn(l1)
	plt.Add(l2)
	plt.Legend.Add("Cos", l2)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "bar-stacked.png")
}

func TestErrBar(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Test Line Errors"
	plt.X.Label.Text = "X Axis"
	plt.Y.Label.Text = "Y Axis"

	x, y := sineData(21)
	low := make(plot.Values, 21)
	high := make(plot.Values, 21)
	for i := range low {
		high[i] = 5 + 4*math.Cos((float64(i)/8)*math.Pi)
		low[i] = -high[i]
	}

	l1 := NewLine(plot.Data{plot.X: x, plot.Y: y})
	require.NotNil(t, l1)
	plt.Add(l1)
	plt.Legend.Add("Sine", l1)

	l2 := NewYErrorBars(plot.Data{plot.X: x, plot.Y: y, plot.Low: low, plot.High: high})
	require.NotNil(t, l2)
	plt.Add(l2)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "errbar.png")
}

func TestRegistryNames(t *testing.T) {
	for _, name := range []string{XYType, BarType, LabelsType, ScatterType, ColorBarType, YErrorBarsType, XErrorBarsType} {
		pt, err := plot.PlotterByType(name)
		require.NoError(t, err)
		assert.Equal(t, name, pt.Name)
		assert.NotEmpty(t, pt.Doc)
	}
}
