// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/plot"
)

// ColorKinds are the possible resolutions of a scatter color channel.
type ColorKinds int32

const (
	// NoColors is an absent channel: no fill for the face, or no
	// stroke for the edge. Used for the face of an edge-only
	// collection built by [AddScatter].
	NoColors ColorKinds = iota

	// MappedColors is a channel of numeric values to be mapped
	// through a color map.
	MappedColors

	// LiteralColors is a channel of concrete colors.
	LiteralColors

	// FollowFace makes the edge channel track the per-point face
	// color. This is the default edge resolution.
	FollowFace
)

var colorKindNames = []string{"NoColors", "MappedColors", "LiteralColors", "FollowFace"}

func (ck ColorKinds) String() string {
	if ck < 0 || int(ck) >= len(colorKindNames) {
		return "ColorKinds(" + strconv.Itoa(int(ck)) + ")"
	}
	return colorKindNames[ck]
}

// ColorChannel is the resolved result for one scatter color channel
// (face or edge): the kind tag plus exactly one of Values (for
// MappedColors) or Colors (for LiteralColors).
type ColorChannel struct {
	// Kind is how this channel was resolved.
	Kind ColorKinds

	// Values are the numeric values to be color mapped,
	// for MappedColors. Length is 1 (broadcast) or the point count.
	Values plot.Values

	// Colors are the concrete colors, for LiteralColors.
	// Length is 0 (none: invisible), 1 (broadcast) or the point count.
	Colors []color.RGBA
}

// At returns the effective value of a MappedColors channel at point i,
// handling length-1 broadcast.
func (cc *ColorChannel) At(i int) float64 {
	if len(cc.Values) == 1 {
		return cc.Values[0]
	}
	return cc.Values[i]
}

// ColorAt returns the effective color of a LiteralColors channel at
// point i, handling length-1 broadcast. The second return value is
// false for an empty (none) channel.
func (cc *ColorChannel) ColorAt(i int) (color.RGBA, bool) {
	switch len(cc.Colors) {
	case 0:
		return color.RGBA{}, false
	case 1:
		return cc.Colors[0], true
	}
	return cc.Colors[i], true
}

// ScatterColorArgs are the raw user color specifications for a scatter
// call, resolved by [ParseScatterColors]. Each spec can be a numeric
// value or slice (float64, float32, int, their slices, [plot.Values],
// or any [plot.Valuer]), a color name or hex string, a [color.Color],
// slices of those, RGB(A) component rows ([][]float64 or [][]float32
// with values in 0..1), or a mixed []any of color specs. Numeric specs
// are mapped through a color map; a single string or color is always a
// literal color, never a value.
type ScatterColorArgs struct {
	// Color is a generic color applied to both channels.
	// It is an error to supply both Color and Face.
	Color any

	// Face is the face (fill) spec: numeric values to be color
	// mapped, or literal colors.
	Face any

	// FaceColors are literal face colors, used when Face is not given.
	FaceColors any

	// Edge is the edge (outline) spec: numeric values to be color
	// mapped, or literal colors. Takes precedence over EdgeColors
	// when both are given.
	Edge any

	// EdgeColors are literal edge colors. The string "face" selects
	// the per-point face color, which is also the default.
	EdgeColors any
}

// ParseScatterColors resolves the raw color specifications in args
// into one face and one edge [ColorChannel], for n data points.
// Exactly one of Values / Colors is populated per channel.
// nextColor supplies the default face color when no face spec is
// given; typically this is [plot.Plot.NextColor].
func ParseScatterColors(args *ScatterColorArgs, n int, nextColor func() color.RGBA) (face, edge ColorChannel, err error) {
	if args.Color != nil && args.Face != nil {
		err = errors.New("plots.ParseScatterColors: supply a Face argument or a Color option but not both; they differ but their functionalities overlap")
		return
	}
	faceSpec := args.Face
	faceColors := args.FaceColors
	edgeColors := args.EdgeColors
	if args.Color != nil {
		if _, cerr := literalColors(args.Color); cerr != nil {
			err = fmt.Errorf("plots.ParseScatterColors: Color option must be a color or sequence of color specs; for a sequence of values to be color-mapped, use the Face argument instead: %w", cerr)
			return
		}
		if edgeColors == nil && args.Edge == nil {
			edgeColors = args.Color
		}
		if faceColors == nil {
			faceColors = args.Color
		}
	}

	faceWasNil := faceSpec == nil
	if faceSpec == nil {
		if faceColors != nil {
			faceSpec = faceColors
		} else {
			faceSpec = nextColor()
		}
	}

	face, err = resolveChannel(faceSpec, n, "Face", !faceWasNil)
	if err != nil {
		return
	}

	switch {
	case args.Edge != nil:
		edge, err = resolveChannel(args.Edge, n, "Edge", true)
	case edgeColors != nil:
		if s, ok := edgeColors.(string); ok && s == "face" {
			edge = ColorChannel{Kind: FollowFace}
			return
		}
		edge, err = resolveChannel(edgeColors, n, "EdgeColors", false)
	default:
		edge = ColorChannel{Kind: FollowFace}
	}
	return
}

// resolveChannel resolves one channel spec: numeric interpretation is
// attempted first when allowed, falling back to literal color parsing.
func resolveChannel(spec any, n int, arg string, numericOK bool) (ColorChannel, error) {
	if numericOK {
		if vals, ok := numericValues(spec); ok {
			nv := len(vals)
			if nv != 1 && nv != n {
				return ColorChannel{}, fmt.Errorf("plots.ParseScatterColors: %s argument has %d elements, which is inconsistent with x and y with size %d", arg, nv, n)
			}
			return ColorChannel{Kind: MappedColors, Values: vals}, nil
		}
	}
	clrs, err := literalColors(spec)
	if err != nil {
		if numericOK {
			return ColorChannel{}, fmt.Errorf("plots.ParseScatterColors: %s argument must be a color, a sequence of colors, or a sequence of numbers, not %v", arg, spec)
		}
		return ColorChannel{}, fmt.Errorf("plots.ParseScatterColors: %s argument must be a color or sequence of colors, not %v", arg, spec)
	}
	nc := len(clrs)
	if nc != 0 && nc != 1 && nc != n {
		return ColorChannel{}, fmt.Errorf("plots.ParseScatterColors: %s argument has %d elements, which is inconsistent with x and y with size %d", arg, nc, n)
	}
	return ColorChannel{Kind: LiteralColors, Colors: clrs}, nil
}

// numericValues interprets the given spec as numeric data if possible.
// A string or color is never numeric.
func numericValues(spec any) (plot.Values, bool) {
	switch v := spec.(type) {
	case float64:
		return plot.Values{v}, true
	case float32:
		return plot.Values{float64(v)}, true
	case int:
		return plot.Values{float64(v)}, true
	case []float64:
		vals := make(plot.Values, len(v))
		copy(vals, v)
		return vals, true
	case []float32:
		vals := make(plot.Values, len(v))
		for i, f := range v {
			vals[i] = float64(f)
		}
		return vals, true
	case []int:
		vals := make(plot.Values, len(v))
		for i, f := range v {
			vals[i] = float64(f)
		}
		return vals, true
	case plot.Values:
		vals := make(plot.Values, len(v))
		copy(vals, v)
		return vals, true
	case plot.Labels:
		return nil, false
	case plot.Valuer:
		vals := make(plot.Values, v.Len())
		for i := range vals {
			vals[i] = v.Float1D(i)
		}
		return vals, true
	}
	return nil, false
}

// literalColors interprets the given spec as one or more concrete
// colors. "" and "none" yield an empty (invisible) channel.
func literalColors(spec any) ([]color.RGBA, error) {
	switch v := spec.(type) {
	case string:
		if v == "" || v == "none" {
			return []color.RGBA{}, nil
		}
		clr, err := colors.FromString(v)
		if err != nil {
			return nil, err
		}
		return []color.RGBA{clr}, nil
	case color.RGBA:
		return []color.RGBA{v}, nil
	case color.Color:
		return []color.RGBA{colors.AsRGBA(v)}, nil
	case []color.RGBA:
		clrs := make([]color.RGBA, len(v))
		copy(clrs, v)
		return clrs, nil
	case []color.Color:
		clrs := make([]color.RGBA, len(v))
		for i, c := range v {
			clrs[i] = colors.AsRGBA(c)
		}
		return clrs, nil
	case []string:
		clrs := make([]color.RGBA, len(v))
		for i, s := range v {
			clr, err := colors.FromString(s)
			if err != nil {
				return nil, err
			}
			clrs[i] = clr
		}
		return clrs, nil
	case [][]float64:
		clrs := make([]color.RGBA, len(v))
		for i, row := range v {
			clr, err := rgbaFromRow(row)
			if err != nil {
				return nil, err
			}
			clrs[i] = clr
		}
		return clrs, nil
	case [][]float32:
		clrs := make([]color.RGBA, len(v))
		for i, row := range v {
			r64 := make([]float64, len(row))
			for j, f := range row {
				r64[j] = float64(f)
			}
			clr, err := rgbaFromRow(r64)
			if err != nil {
				return nil, err
			}
			clrs[i] = clr
		}
		return clrs, nil
	case []any:
		clrs := make([]color.RGBA, len(v))
		for i, c := range v {
			clr, err := colors.FromAny(c)
			if err != nil {
				return nil, err
			}
			clrs[i] = clr
		}
		return clrs, nil
	case nil:
		return []color.RGBA{}, nil
	}
	return nil, fmt.Errorf("unsupported color specification type %T", spec)
}

// rgbaFromRow converts an RGB or RGBA component row, with components
// in the 0..1 range, into a color.
func rgbaFromRow(row []float64) (color.RGBA, error) {
	if len(row) != 3 && len(row) != 4 {
		return color.RGBA{}, fmt.Errorf("color component row must have 3 (RGB) or 4 (RGBA) elements, not %d", len(row))
	}
	a := 1.0
	if len(row) == 4 {
		a = row[3]
	}
	for _, f := range row {
		if f < 0 || f > 1 {
			return color.RGBA{}, fmt.Errorf("color component %g out of 0..1 range", f)
		}
	}
	comp := func(f float64) uint8 {
		return uint8(f*a*255 + 0.5)
	}
	return color.RGBA{R: comp(row[0]), G: comp(row[1]), B: comp(row[2]), A: uint8(a*255 + 0.5)}, nil
}
