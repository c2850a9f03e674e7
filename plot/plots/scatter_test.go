// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"
	"math"
	"testing"

	"github.com/NGWi/matplotlib/base/iox/imagex"
	"github.com/NGWi/matplotlib/base/option"
	"github.com/NGWi/matplotlib/colors/colormap"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/plot"
	"github.com/NGWi/matplotlib/styles/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scatterData(n int) (x, y plot.Values) {
	x = make(plot.Values, n)
	y = make(plot.Values, n)
	for i := range x {
		x[i] = float64(i * 5)
		y[i] = 50 + 40*math.Sin((float64(i)/8)*math.Pi)
	}
	return
}

func TestAddScatterLengthError(t *testing.T) {
	plt := plot.New()
	x, y := scatterData(10)
	_, err := AddScatter(plt, x, y[:8], nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "same length")
	assert.Empty(t, plt.Plotters)
}

func TestAddScatterNormRangeError(t *testing.T) {
	plt := plot.New()
	x, y := scatterData(10)

	opts := &ScatterOptions{FaceMap: plot.ColorMapStyle{Norm: plot.LogNorm{Min: 1, Max: 100}}}
	opts.FaceMap.Range.SetMin(0)
	_, err := AddScatter(plt, x, y, opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FaceMap.Norm")

	opts = &ScatterOptions{EdgeMap: plot.ColorMapStyle{Norm: plot.LogNorm{Min: 1, Max: 100}}}
	opts.EdgeMap.Range.SetMax(10)
	_, err = AddScatter(plt, x, y, opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "EdgeMap.Norm")
	assert.Empty(t, plt.Plotters)
}

func TestAddScatterEdgeCollection(t *testing.T) {
	plt := plot.New()
	x, y := scatterData(10)
	ev := make([]float64, 10)
	for i := range ev {
		ev[i] = float64(i * i)
	}
	opts := &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{Face: y, Edge: ev},
		FaceMap:          plot.ColorMapStyle{Map: colormap.StandardMaps["viridis"]},
	}
	fs, err := AddScatter(plt, x, y, opts)
	require.NoError(t, err)
	require.Len(t, plt.Plotters, 2)
	assert.Same(t, fs, plt.Plotters[0])

	// the face collection keeps the default edge
	assert.Equal(t, MappedColors, fs.Face.Kind)
	assert.Equal(t, FollowFace, fs.Edge.Kind)

	// the edge collection is last, with no fill, inheriting the face map
	es := plt.Plotters[1].(*Scatter)
	assert.Equal(t, NoColors, es.Face.Kind)
	assert.Equal(t, MappedColors, es.Edge.Kind)
	assert.Equal(t, plot.Values(ev), es.Edge.Values)
	assert.Same(t, colormap.StandardMaps["viridis"], es.EdgeMap.Map)
}

func TestResolveEdgeMap(t *testing.T) {
	face := plot.ColorMapStyle{
		Map:  colormap.StandardMaps["viridis"],
		Norm: plot.LogNorm{Min: 1, Max: 100},
	}
	face.Range.SetMin(0)
	face.Range.SetMax(10)

	out := resolveEdgeMap(face, plot.ColorMapStyle{})
	assert.Same(t, face.Map, out.Map)
	assert.Equal(t, face.Norm, out.Norm)
	assert.Equal(t, face.Range, out.Range)

	// the range falls back as a pair: one fixed edge end keeps both,
	// and blocks Norm inheritance so the fixed limits take effect
	edge := plot.ColorMapStyle{Map: colormap.StandardMaps["plasma"]}
	edge.Range.SetMin(2)
	out = resolveEdgeMap(face, edge)
	assert.Same(t, colormap.StandardMaps["plasma"], out.Map)
	assert.Nil(t, out.Norm)
	assert.True(t, out.Range.FixMin)
	assert.False(t, out.Range.FixMax)
	assert.Equal(t, 2.0, out.Range.Min)
}

func TestEdgeFixedRangeOverridesFaceNorm(t *testing.T) {
	face := plot.ColorMapStyle{Norm: plot.LinearNorm{Min: 0, Max: 3}}
	edge := plot.ColorMapStyle{}
	edge.Range.SetMin(0)
	edge.Range.SetMax(100)

	out := resolveEdgeMap(face, edge)
	require.Nil(t, out.Norm)

	// an edge value normalizes over the fixed edge range, not the
	// face normalization's own limits
	var dataRange minmax.F64
	dataRange.SetInfinity()
	dataRange.FitValInRange(30)
	assert.InDelta(t, 0.3, out.NormFor(dataRange).Normalize(30), 1e-12)

	// end to end: the edge collection resolves the same way
	plt := plot.New()
	x, y := scatterData(10)
	ev := make([]float64, 10)
	for i := range ev {
		ev[i] = float64(i * 10)
	}
	opts := &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{Face: y, Edge: ev},
		FaceMap:          face,
	}
	opts.EdgeMap.Range.SetMin(0)
	opts.EdgeMap.Range.SetMax(100)
	_, err := AddScatter(plt, x, y, opts)
	require.NoError(t, err)
	es := plt.Plotters[1].(*Scatter)
	assert.Nil(t, es.EdgeMap.Norm)
	assert.InDelta(t, 0.3, es.EdgeMap.NormFor(dataRange).Normalize(30), 1e-12)
}

func TestScatterNonfinite(t *testing.T) {
	plt := plot.New()
	x, y := scatterData(10)
	cv := make([]float64, 10)
	for i := range cv {
		cv[i] = float64(i)
	}
	cv[3] = math.NaN()
	sc, err := AddScatter(plt, x, y, &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{Face: cv},
	})
	require.NoError(t, err)

	var xr, yr, zr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	zr.SetInfinity()
	sc.UpdateRange(plt, &xr, &yr, &zr)
	assert.Equal(t, 0.0, sc.faceRange.Min)
	assert.Equal(t, 9.0, sc.faceRange.Max)

	_, _, skip := sc.faceColor(3)
	assert.True(t, skip)

	sc.PlotNonfinite = true
	clr, ok, skip := sc.faceColor(3)
	assert.False(t, skip)
	assert.True(t, ok)
	assert.Equal(t, sc.FaceMap.ColorMap().NoColor, clr)
}

func TestScatterRadius(t *testing.T) {
	plt := plot.New()
	plt.Resize(image.Point{X: 640, Y: 480})
	x, y := scatterData(4)
	sc, err := AddScatter(plt, x, y, &ScatterOptions{Size: []float64{4, 9, 16, 25}})
	require.NoError(t, err)

	// marker radius is the square root of the area, in points
	uc := &plt.Paint.UnitContext
	assert.Equal(t, uc.ToDots(2, units.UnitPt), sc.radius(uc, 0))
	assert.Equal(t, uc.ToDots(5, units.UnitPt), sc.radius(uc, 3))

	// a scalar area broadcasts
	sc2, err := AddScatter(plt, x, y, &ScatterOptions{Size: 49.0})
	require.NoError(t, err)
	assert.Equal(t, uc.ToDots(7, units.UnitPt), sc2.radius(uc, 2))
}

func TestScatterMapped(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Mapped Face Colors"
	x, y := scatterData(21)
	sc, err := AddScatter(plt, x, y, &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{Face: y},
		Shape:            plot.Circle,
		Size:             36.0,
	})
	require.NoError(t, err)
	plt.Legend.Add("sine", sc)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "scatter-mapped.png")
}

func TestScatterDualMaps(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Independent Face and Edge Maps"
	x, y := scatterData(21)
	ev := make([]float64, 21)
	for i := range ev {
		ev[i] = float64(i % 7)
	}
	_, err := AddScatter(plt, x, y, &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{Face: y, Edge: ev},
		FaceMap:          plot.ColorMapStyle{Map: colormap.StandardMaps["viridis"]},
		EdgeMap:          plot.ColorMapStyle{Map: colormap.StandardMaps["plasma"]},
		Shape:            plot.Circle,
		Size:             64.0,
		LineWidth:        *option.New(float32(2)),
	})
	require.NoError(t, err)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "scatter-dualmaps.png")
}

func TestScatterLiteral(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Literal Colors"
	x, y := scatterData(12)
	_, err := AddScatter(plt, x, y, &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{
			FaceColors: "none",
			EdgeColors: []string{"red", "green", "blue", "red", "green", "blue", "red", "green", "blue", "red", "green", "blue"},
		},
		Shape: plot.Circle,
		Size:  49.0,
	})
	require.NoError(t, err)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "scatter-literal.png")
}

func TestScatterColorBar(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "Color Bar"
	x, y := scatterData(21)
	sc, err := AddScatter(plt, x, y, &ScatterOptions{
		ScatterColorArgs: ScatterColorArgs{Face: y},
		Shape:            plot.Circle,
		Size:             36.0,
	})
	require.NoError(t, err)
	cb := NewColorBarFor(sc, false)
	require.NotNil(t, cb)
	plt.Add(cb)

	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "scatter-colorbar.png")
}

func TestScatterThumbnailGrid(t *testing.T) {
	plt := plot.New()
	x, y := scatterData(8)
	for i, sh := range []plot.Shapes{plot.Ring, plot.Circle, plot.Square, plot.Triangle, plot.Plus, plot.Cross} {
		yo := make(plot.Values, len(y))
		for j := range y {
			yo[j] = y[j] + float64(i*10)
		}
		_, err := AddScatter(plt, x, yo, &ScatterOptions{Shape: sh, Size: 25.0})
		require.NoError(t, err)
	}
	plt.Resize(image.Point{X: 640, Y: 480})
	plt.Draw()
	imagex.Assert(t, plt.Pixels, "scatter-shapes.png")
}

func TestScatterRegistry(t *testing.T) {
	pt, ok := plot.Plotters[ScatterType]
	require.True(t, ok)
	assert.Equal(t, []plot.Roles{plot.X, plot.Y}, pt.Required)
	assert.Equal(t, []plot.Roles{plot.Color, plot.Edge, plot.Size}, pt.Optional)

	x, y := scatterData(6)
	cv := plot.Values{1, 2, 3, 4, 5, 6}
	plr := pt.New(plot.Data{plot.X: x, plot.Y: y, plot.Color: cv})
	sc, ok := plr.(*Scatter)
	require.True(t, ok)
	assert.Equal(t, MappedColors, sc.Face.Kind)
	assert.Equal(t, cv, sc.Face.Values)
	assert.Equal(t, FollowFace, sc.Edge.Kind)
}
