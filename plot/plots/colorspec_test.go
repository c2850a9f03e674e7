// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"
	"testing"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/plot"
	"github.com/stretchr/testify/assert"
)

func nextRed() color.RGBA { return colors.Red }

func TestParseScatterColorsDefaults(t *testing.T) {
	face, edge, err := ParseScatterColors(&ScatterColorArgs{}, 4, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, LiteralColors, face.Kind)
	assert.Equal(t, []color.RGBA{colors.Red}, face.Colors)
	assert.Equal(t, FollowFace, edge.Kind)
}

func TestParseScatterColorsConflict(t *testing.T) {
	_, _, err := ParseScatterColors(&ScatterColorArgs{Color: "blue", Face: []float64{1, 2}}, 2, nextRed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "but not both")
}

func TestParseScatterColorsMapped(t *testing.T) {
	face, edge, err := ParseScatterColors(&ScatterColorArgs{Face: []float64{1, 2, 3}}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, MappedColors, face.Kind)
	assert.Equal(t, plot.Values{1, 2, 3}, face.Values)
	assert.Equal(t, FollowFace, edge.Kind)

	// scalars broadcast
	face, _, err = ParseScatterColors(&ScatterColorArgs{Face: 0.5}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, MappedColors, face.Kind)
	assert.Equal(t, 0.5, face.At(2))
}

func TestParseScatterColorsLengthError(t *testing.T) {
	_, _, err := ParseScatterColors(&ScatterColorArgs{Face: []float64{1, 2, 3}}, 10, nextRed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "has 3 elements")
	assert.Contains(t, err.Error(), "size 10")

	_, _, err = ParseScatterColors(&ScatterColorArgs{Edge: []float64{1, 2}}, 5, nextRed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Edge argument has 2 elements")
}

func TestParseScatterColorsEdgePrecedence(t *testing.T) {
	args := &ScatterColorArgs{Edge: []float64{1, 2, 3}, EdgeColors: "black"}
	_, edge, err := ParseScatterColors(args, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, MappedColors, edge.Kind)
	assert.Equal(t, plot.Values{1, 2, 3}, edge.Values)

	// without Edge, EdgeColors applies, and is never numeric
	args = &ScatterColorArgs{EdgeColors: "black"}
	_, edge, err = ParseScatterColors(args, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, LiteralColors, edge.Kind)
	assert.Equal(t, []color.RGBA{colors.Black}, edge.Colors)
}

func TestParseScatterColorsEdgeFace(t *testing.T) {
	_, edge, err := ParseScatterColors(&ScatterColorArgs{EdgeColors: "face"}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, FollowFace, edge.Kind)
}

func TestParseScatterColorsColorSeedsBoth(t *testing.T) {
	face, edge, err := ParseScatterColors(&ScatterColorArgs{Color: "blue"}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, LiteralColors, face.Kind)
	assert.Equal(t, []color.RGBA{colors.Blue}, face.Colors)
	assert.Equal(t, LiteralColors, edge.Kind)
	assert.Equal(t, []color.RGBA{colors.Blue}, edge.Colors)

	// an explicit Edge keeps Color away from the edge channel
	_, edge, err = ParseScatterColors(&ScatterColorArgs{Color: "blue", Edge: []float64{1, 2, 3}}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, MappedColors, edge.Kind)

	// a numeric Color is rejected with a pointer to Face
	_, _, err = ParseScatterColors(&ScatterColorArgs{Color: []float64{1, 2, 3}}, 3, nextRed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "use the Face argument instead")
}

func TestParseScatterColorsLiteralForms(t *testing.T) {
	face, _, err := ParseScatterColors(&ScatterColorArgs{FaceColors: []string{"red", "green", "blue"}}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, LiteralColors, face.Kind)
	assert.Len(t, face.Colors, 3)

	face, _, err = ParseScatterColors(&ScatterColorArgs{FaceColors: [][]float64{{1, 0, 0}, {0, 0, 1, 0.5}}}, 2, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), face.Colors[0].R)
	assert.Equal(t, uint8(128), face.Colors[1].A)

	face, _, err = ParseScatterColors(&ScatterColorArgs{FaceColors: "none"}, 3, nextRed)
	assert.NoError(t, err)
	assert.Equal(t, LiteralColors, face.Kind)
	assert.Empty(t, face.Colors)
	_, ok := face.ColorAt(0)
	assert.False(t, ok)

	_, _, err = ParseScatterColors(&ScatterColorArgs{FaceColors: []string{"red", "green"}}, 3, nextRed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 elements")
}

func TestParseScatterColorsBadSpec(t *testing.T) {
	_, _, err := ParseScatterColors(&ScatterColorArgs{Face: struct{}{}}, 3, nextRed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a color, a sequence of colors, or a sequence of numbers")
}
