// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/base/option"
	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/paint"
	"github.com/NGWi/matplotlib/plot"
	"github.com/NGWi/matplotlib/styles/units"
)

// ScatterType is the registered type name for [Scatter] plotters.
const ScatterType = "Scatter"

func init() {
	plot.RegisterPlotter(ScatterType, "draws a shape at each X, Y point, with the marker face (fill) and edge (outline) colors independently driven by the optional Color and Edge value channels through color maps, and optional per-point marker areas from the Size channel.", []plot.Roles{plot.X, plot.Y}, []plot.Roles{plot.Color, plot.Edge, plot.Size}, func(data plot.Data) plot.Plotter {
		return NewScatter(data)
	})
}

// Scatter draws a marker shape at each X, Y point. The marker face
// and edge colors are independent channels: each is either a set of
// numeric values mapped through a color map ([MappedColors]), or
// concrete colors ([LiteralColors]). See [AddScatter] for the full
// argument-driven construction, including a separate edge collection
// when edge values are color mapped.
type Scatter struct {
	// X, Y are the plotted values. Non-finite coordinates are
	// retained here, to stay aligned with the color channels,
	// and skipped at render time.
	X, Y plot.Values

	// PX, PY are the actual pixel plotting coordinates for each XY value.
	PX, PY []float32

	// Face is the resolved face (fill) color channel.
	Face ColorChannel

	// Edge is the resolved edge (outline) color channel.
	Edge ColorChannel

	// Sizes are optional per-point marker areas, in points squared;
	// the drawn marker radius is the square root of the area.
	// Length is 1 (broadcast) or the point count.
	// If empty, the point style Size is used as the radius directly.
	Sizes plot.Values

	// FaceMap specifies how face values are mapped to colors,
	// when Face is a MappedColors channel.
	FaceMap plot.ColorMapStyle

	// EdgeMap specifies how edge values are mapped to colors,
	// when Edge is a MappedColors channel. [AddScatter] resolves
	// unset fields from FaceMap.
	EdgeMap plot.ColorMapStyle

	// Alpha multiplies the opacity of both channels when set.
	Alpha option.Option[float32]

	// PlotNonfinite plots points whose mapped color value is
	// non-finite using the color map NoColor. If false (default),
	// such points are skipped.
	PlotNonfinite bool

	// Style is the style for plotting.
	Style plot.Style

	// faceRange, edgeRange are the data ranges of the mapped
	// channels, set by UpdateRange.
	faceRange, edgeRange minmax.F64

	stylers plot.Stylers
}

func (sc *Scatter) Defaults() {
	sc.Style.Defaults()
}

// NewScatter returns a new Scatter plotter for the given data, with
// the optional Color and Edge roles as value-mapped color channels
// and the Size role as per-point marker areas.
// Styler functions are obtained from the Y data if present.
func NewScatter(data plot.Data) *Scatter {
	if data.CheckLengths() != nil {
		return nil
	}
	sc := &Scatter{}
	sc.X = rawValues(data, plot.X)
	sc.Y = rawValues(data, plot.Y)
	if sc.X == nil || sc.Y == nil {
		slog.Error("plots.NewScatter: X and Y data roles are required")
		return nil
	}
	if cv := rawValues(data, plot.Color); cv != nil {
		sc.Face = ColorChannel{Kind: MappedColors, Values: cv}
	}
	if ev := rawValues(data, plot.Edge); ev != nil {
		sc.Edge = ColorChannel{Kind: MappedColors, Values: ev}
	} else {
		sc.Edge = ColorChannel{Kind: FollowFace}
	}
	sc.Sizes = rawValues(data, plot.Size)
	sc.stylers = plot.GetStylersFromData(data, plot.Y)
	sc.Defaults()
	return sc
}

// rawValues returns a copy of the values for the given role,
// retaining non-finite values so that indexes stay aligned
// across roles. Returns nil if the role is not present.
func rawValues(data plot.Data, role plot.Roles) plot.Values {
	d, ok := data[role]
	if !ok {
		return nil
	}
	vals := make(plot.Values, d.Len())
	for i := range vals {
		vals[i] = d.Float1D(i)
	}
	return vals
}

// ScatterOptions are the arguments to [AddScatter].
// The zero value plots markers in the next plot color.
type ScatterOptions struct {
	ScatterColorArgs

	// Size is the marker area in points squared: a single number
	// for all points, or a sequence of per-point areas. The drawn
	// marker radius is the square root of the area. If nil, the
	// default point size is used as the radius.
	Size any

	// Shape is the marker shape to draw.
	Shape plot.Shapes

	// FaceMap specifies the color map, normalization, and fixed
	// range for mapped face values.
	FaceMap plot.ColorMapStyle

	// EdgeMap specifies the color map, normalization, and fixed
	// range for mapped edge values. Unset fields inherit from
	// FaceMap.
	EdgeMap plot.ColorMapStyle

	// Alpha multiplies the opacity of both channels when set.
	Alpha option.Option[float32]

	// LineWidth is the marker edge line width in points when set.
	LineWidth option.Option[float32]

	// PlotNonfinite plots points with non-finite mapped color
	// values using the color map NoColor, instead of skipping them.
	PlotNonfinite bool
}

// AddScatter builds one or two [Scatter] plotters for the given x, y
// data per the given options, adds them to the plot, and returns the
// primary (face) one. When the edge spec resolves to mapped numeric
// values, a second edge-only plotter sharing the same geometry is
// added after the face one, so edge outlines render above face fills;
// its color mapping inherits any unset EdgeMap fields from FaceMap.
// All option errors are returned before anything is added to the plot.
func AddScatter(plt *plot.Plot, x, y plot.Valuer, opts *ScatterOptions) (*Scatter, error) {
	if opts == nil {
		opts = &ScatterOptions{}
	}
	if x == nil || y == nil {
		return nil, errors.New("plots.AddScatter: X and Y data is required")
	}
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("plots.AddScatter: X and Y must be the same length; got %d and %d", x.Len(), y.Len())
	}
	n := x.Len()
	if opts.FaceMap.Norm != nil && (opts.FaceMap.Range.FixMin || opts.FaceMap.Range.FixMax) {
		return nil, errors.New("plots.AddScatter: supplying a FaceMap.Norm together with fixed FaceMap.Range values is not supported; set the range limits on the Norm instead")
	}
	if opts.EdgeMap.Norm != nil && (opts.EdgeMap.Range.FixMin || opts.EdgeMap.Range.FixMax) {
		return nil, errors.New("plots.AddScatter: supplying an EdgeMap.Norm together with fixed EdgeMap.Range values is not supported; set the range limits on the Norm instead")
	}
	face, edge, err := ParseScatterColors(&opts.ScatterColorArgs, n, plt.NextColor)
	if err != nil {
		return nil, err
	}
	sizes, err := sizeValues(opts.Size, n)
	if err != nil {
		return nil, err
	}

	xv := make(plot.Values, n)
	yv := make(plot.Values, n)
	for i := range xv {
		xv[i] = x.Float1D(i)
		yv[i] = y.Float1D(i)
	}

	fs := &Scatter{
		X:             xv,
		Y:             yv,
		Face:          face,
		Sizes:         sizes,
		FaceMap:       opts.FaceMap,
		Alpha:         opts.Alpha,
		PlotNonfinite: opts.PlotNonfinite,
	}
	fs.Defaults()
	fs.applyOptions(opts)

	var es *Scatter
	if edge.Kind == MappedColors {
		// edge values get their own collection, stroked above the
		// face fills; the face collection keeps the default edge.
		fs.Edge = ColorChannel{Kind: FollowFace}
		es = &Scatter{
			X:             xv,
			Y:             yv,
			Face:          ColorChannel{Kind: NoColors},
			Edge:          edge,
			Sizes:         sizes,
			EdgeMap:       resolveEdgeMap(opts.FaceMap, opts.EdgeMap),
			Alpha:         opts.Alpha,
			PlotNonfinite: opts.PlotNonfinite,
		}
		es.Defaults()
		es.applyOptions(opts)
	} else {
		fs.Edge = edge
	}

	plt.Add(fs)
	if es != nil {
		plt.Add(es)
	}
	return fs, nil
}

// applyOptions adds a styler for the marker shape and line width
// options, so they layer under any later user stylers.
func (sc *Scatter) applyOptions(opts *ScatterOptions) {
	shape := opts.Shape
	lw := opts.LineWidth
	sc.stylers.Add(func(s *plot.Style) {
		s.Point.Shape = shape
		if lw.Valid {
			s.Point.Width.Pt(lw.Value)
		}
	})
}

// resolveEdgeMap returns the effective edge-channel mapping style:
// the edge map, normalization, and range, falling back to the face
// channel's when not set. The range falls back as a pair: if either
// edge end is fixed, the edge range is used as is, and the face Norm
// is not inherited, so the fixed edge limits take effect instead of
// the face normalization's own limits.
func resolveEdgeMap(face, edge plot.ColorMapStyle) plot.ColorMapStyle {
	out := edge
	if out.Map == nil {
		out.Map = face.Map
	}
	if out.Range.FixMin || out.Range.FixMax {
		return out
	}
	if out.Norm == nil {
		out.Norm = face.Norm
	}
	out.Range = face.Range
	return out
}

// sizeValues interprets the Size option as per-point marker areas.
func sizeValues(spec any, n int) (plot.Values, error) {
	if spec == nil {
		return nil, nil
	}
	vals, ok := numericValues(spec)
	if !ok {
		return nil, fmt.Errorf("plots.AddScatter: Size argument must be a number or a sequence of numbers, not %v", spec)
	}
	if len(vals) != 1 && len(vals) != n {
		return nil, fmt.Errorf("plots.AddScatter: Size argument has %d elements, which is inconsistent with x and y with size %d", len(vals), n)
	}
	return vals, nil
}

// Styler adds a style function to set style parameters.
func (sc *Scatter) Styler(f func(s *plot.Style)) *Scatter {
	sc.stylers.Add(f)
	return sc
}

func (sc *Scatter) ApplyStyle(ps *plot.PlotStyle) {
	ps.SetElementStyle(&sc.Style)
	sc.stylers.Run(&sc.Style)
}

func (sc *Scatter) Stylers() *plot.Stylers { return &sc.stylers }

func (sc *Scatter) Data() (data plot.Data, pixX, pixY []float32) {
	pixX = sc.PX
	pixY = sc.PY
	data = plot.Data{}
	data[plot.X] = sc.X
	data[plot.Y] = sc.Y
	if sc.Face.Kind == MappedColors {
		data[plot.Color] = sc.Face.Values
	}
	if sc.Edge.Kind == MappedColors {
		data[plot.Edge] = sc.Edge.Values
	}
	if sc.Sizes != nil {
		data[plot.Size] = sc.Sizes
	}
	return
}

// Plot draws the markers, implementing the plot.Plotter interface.
// Points with non-finite coordinates are skipped, as are points with
// non-finite mapped color values unless PlotNonfinite is set.
func (sc *Scatter) Plot(plt *plot.Plot) {
	pc := plt.Paint
	uc := &pc.UnitContext
	sc.Style.Point.Width.ToDots(uc)
	sc.Style.Point.Size.ToDots(uc)
	sc.PX = plot.PlotX(plt, sc.X)
	sc.PY = plot.PlotY(plt, sc.Y)
	pc.StrokeStyle.Width = sc.Style.Point.Width
	pc.StrokeStyle.ToDots(uc)
	alpha := sc.Alpha.Or(1)
	for i := range sc.X {
		if !isFinite(sc.X[i]) || !isFinite(sc.Y[i]) {
			continue
		}
		fill, hasFill, skip := sc.faceColor(i)
		if skip {
			continue
		}
		stroke, hasStroke, skip := sc.edgeColor(i, fill, hasFill)
		if skip {
			continue
		}
		if hasFill {
			pc.FillStyle.Color = colors.Uniform(colors.ApplyOpacity(fill, alpha))
		} else {
			pc.FillStyle.Color = nil
		}
		if hasStroke {
			pc.StrokeStyle.Color = colors.Uniform(colors.ApplyOpacity(stroke, alpha))
		} else {
			pc.StrokeStyle.Color = nil
		}
		drawMarker(pc, math32.Vec2(sc.PX[i], sc.PY[i]), sc.radius(uc, i), sc.Style.Point.Shape)
	}
	pc.FillStyle.Color = nil
	pc.StrokeStyle.Color = colors.Uniform(colors.Black)
}

// faceColor resolves the face color for point i.
func (sc *Scatter) faceColor(i int) (clr color.RGBA, ok, skip bool) {
	switch sc.Face.Kind {
	case MappedColors:
		v := sc.Face.At(i)
		if !isFinite(v) {
			if !sc.PlotNonfinite {
				return color.RGBA{}, false, true
			}
			return sc.FaceMap.ColorMap().NoColor, true, false
		}
		return sc.FaceMap.MapValue(v, sc.faceRange), true, false
	case LiteralColors:
		clr, ok = sc.Face.ColorAt(i)
		return clr, ok, false
	}
	return color.RGBA{}, false, false
}

// edgeColor resolves the edge color for point i, given the point's
// resolved face color for the FollowFace case. A FollowFace edge with
// no face channel at all strokes in the point style color.
func (sc *Scatter) edgeColor(i int, face color.RGBA, hasFace bool) (clr color.RGBA, ok, skip bool) {
	switch sc.Edge.Kind {
	case MappedColors:
		v := sc.Edge.At(i)
		if !isFinite(v) {
			if !sc.PlotNonfinite {
				return color.RGBA{}, false, true
			}
			return sc.EdgeMap.ColorMap().NoColor, true, false
		}
		return sc.EdgeMap.MapValue(v, sc.edgeRange), true, false
	case LiteralColors:
		clr, ok = sc.Edge.ColorAt(i)
		return clr, ok, false
	case FollowFace:
		if hasFace {
			return face, true, false
		}
		if sc.Face.Kind == NoColors && sc.Style.Point.Color != nil {
			return colors.ToUniform(sc.Style.Point.Color), true, false
		}
	}
	return color.RGBA{}, false, false
}

// radius returns the marker radius in dots for point i.
func (sc *Scatter) radius(uc *units.Context, i int) float32 {
	if len(sc.Sizes) == 0 {
		return sc.Style.Point.Size.Dots
	}
	area := sc.Sizes[0]
	if len(sc.Sizes) > 1 {
		area = sc.Sizes[i]
	}
	if !isFinite(area) || area <= 0 {
		return sc.Style.Point.Size.Dots
	}
	return uc.ToDots(float32(math.Sqrt(area)), units.UnitPt)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// drawMarker draws a marker shape with the current fill and stroke
// styles. Unlike [DrawShape], both the outline and filled variants
// of a shape fill and stroke, per the current styles; the line-only
// Plus and Cross shapes only stroke.
func drawMarker(pc *paint.Context, pos math32.Vector2, size float32, shape plot.Shapes) {
	switch shape {
	case plot.Ring, plot.Circle:
		pc.DrawCircle(pos.X, pos.Y, size)
		pc.FillStrokeClear()
	case plot.Square, plot.Box:
		x := size * 0.9
		pc.MoveTo(pos.X-x, pos.Y-x)
		pc.LineTo(pos.X+x, pos.Y-x)
		pc.LineTo(pos.X+x, pos.Y+x)
		pc.LineTo(pos.X-x, pos.Y+x)
		pc.ClosePath()
		pc.FillStrokeClear()
	case plot.Triangle, plot.Pyramid:
		x := size * 0.9
		pc.MoveTo(pos.X, pos.Y-x)
		pc.LineTo(pos.X-x, pos.Y+x)
		pc.LineTo(pos.X+x, pos.Y+x)
		pc.ClosePath()
		pc.FillStrokeClear()
	case plot.Plus:
		DrawPlus(pc, pos, size)
	case plot.Cross:
		DrawCross(pc, pos, size)
	}
}

// Thumbnail draws the legend thumbnail, implementing the
// plot.Thumbnailer interface.
func (sc *Scatter) Thumbnail(plt *plot.Plot) {
	pc := plt.Paint
	uc := &pc.UnitContext
	sc.Style.Point.Width.ToDots(uc)
	sc.Style.Point.Size.ToDots(uc)
	pc.StrokeStyle.Width = sc.Style.Point.Width
	pc.StrokeStyle.ToDots(uc)
	ptb := pc.Bounds
	mid := math32.Vec2(0.5*float32(ptb.Min.X+ptb.Max.X), 0.5*float32(ptb.Min.Y+ptb.Max.Y))

	fill, hasFill := sc.representative(&sc.Face, &sc.FaceMap)
	stroke, hasStroke := sc.representative(&sc.Edge, &sc.EdgeMap)
	if sc.Edge.Kind == FollowFace {
		stroke, hasStroke = fill, hasFill
	}
	if hasFill {
		pc.FillStyle.Color = colors.Uniform(fill)
	} else {
		pc.FillStyle.Color = nil
	}
	if hasStroke {
		pc.StrokeStyle.Color = colors.Uniform(stroke)
	} else {
		pc.StrokeStyle.Color = colors.Uniform(colors.Black)
	}
	drawMarker(pc, mid, sc.Style.Point.Size.Dots, sc.Style.Point.Shape)
	pc.FillStyle.Color = nil
	pc.StrokeStyle.Color = colors.Uniform(colors.Black)
}

// representative returns a single color standing for the channel:
// the middle of the color map for mapped values, or the first color.
func (sc *Scatter) representative(ch *ColorChannel, cs *plot.ColorMapStyle) (color.RGBA, bool) {
	switch ch.Kind {
	case MappedColors:
		return cs.ColorMap().Map(0.5), true
	case LiteralColors:
		return ch.ColorAt(0)
	}
	return color.RGBA{}, false
}

// UpdateRange updates the given ranges, and caches the data ranges
// of the mapped color channels for rendering.
func (sc *Scatter) UpdateRange(plt *plot.Plot, xr, yr, zr *minmax.F64) {
	plot.Range(sc.X, xr)
	plot.RangeClamp(sc.Y, yr, &sc.Style.Range)
	sc.faceRange.SetInfinity()
	if sc.Face.Kind == MappedColors {
		rangeFinite(sc.Face.Values, &sc.faceRange)
	}
	sc.edgeRange.SetInfinity()
	if sc.Edge.Kind == MappedColors {
		rangeFinite(sc.Edge.Values, &sc.edgeRange)
	}
}

// rangeFinite updates the given range from the finite values only.
func rangeFinite(vals plot.Values, rng *minmax.F64) {
	for _, v := range vals {
		if !isFinite(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}
