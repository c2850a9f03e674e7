// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		str  string
		base color.Color
		want color.RGBA
	}{
		{"blue", nil, Blue},
		{"Seagreen", nil, Seagreen},
		{"#2E8B57", nil, Seagreen},
		{"#F00", nil, Red},
		{"#FF000080", nil, color.RGBA{128, 0, 0, 128}},
		{"rgb(10, 20, 30)", nil, color.RGBA{10, 20, 30, 255}},
		{"rgba(10, 20, 30, 128)", nil, color.RGBA{5, 10, 15, 128}},
		{"hsl(240, 100, 50)", nil, Blue},
		{"none", nil, color.RGBA{}},
		{"off", nil, color.RGBA{}},
		{"", nil, color.RGBA{}},
		{"transparent", nil, Transparent},
		{"inverse", White, Black},
		{"lighten-10", Blue, color.RGBA{51, 51, 255, 255}},
		{"clearer-50", Red, color.RGBA{127, 0, 0, 127}},
		{"blend-50-red", Blue, color.RGBA{128, 0, 128, 255}},
	}
	for _, test := range tests {
		have, err := FromString(test.str, test.base)
		assert.NoError(t, err, test.str)
		assert.Equal(t, test.want, have, test.str)
	}

	_, err := FromString("bogusname")
	assert.Error(t, err)
	_, err = FromString("inverse")
	assert.Error(t, err)
	_, err = FromString("blend-half-red", Blue)
	assert.Error(t, err)
}

func TestFromHex(t *testing.T) {
	assert.Equal(t, Red, MustFromHex("#FF0000"))
	assert.Equal(t, Red, MustFromHex("F00"))
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, MustFromHex("#FF000080"))

	_, err := FromHex("#F0")
	assert.Error(t, err)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF0000", AsHex(Red))
	assert.Equal(t, "#0000FF7F", AsHex(WithAF32(Blue, 0.5)))
	assert.Equal(t, "nil", AsHex(nil))
}

func TestFromAny(t *testing.T) {
	c, err := FromAny("blue")
	assert.NoError(t, err)
	assert.Equal(t, Blue, c)

	c, err = FromAny(color.RGBA{1, 2, 3, 255})
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c)

	_, err = FromAny(5)
	assert.Error(t, err)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(color.RGBA{}))
	assert.False(t, IsNil(Blue))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "rgba(1, 2, 3, 255)", AsString(color.RGBA{1, 2, 3, 255}))
}

func TestTransforms(t *testing.T) {
	assert.Equal(t, color.RGBA{10, 0, 255, 255}, WithR(Blue, 10))
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, WithA(Red, 128))
	assert.Equal(t, color.RGBA{127, 0, 0, 127}, WithAF32(Red, 0.5))
	assert.Equal(t, color.RGBA{63, 0, 0, 63}, ApplyOpacity(WithAF32(Red, 0.5), 0.5))
	assert.Equal(t, Red, ApplyOpacity(Red, 2))
	assert.Equal(t, color.RGBA{}, ApplyOpacity(Red, 0))
	assert.Equal(t, color.RGBA{127, 0, 0, 127}, Clearer(Red, 50))
	assert.Equal(t, color.RGBA{254, 0, 0, 254}, Opaquer(color.RGBA{127, 0, 0, 127}, 50))
	assert.Equal(t, color.RGBA{205, 155, 105, 255}, Inverse(color.RGBA{50, 100, 150, 255}))
	assert.Equal(t, color.RGBA{255, 150, 75, 255}, Add(color.RGBA{200, 100, 50, 255}, color.RGBA{100, 50, 25, 255}))
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, Sub(color.RGBA{200, 100, 50, 255}, color.RGBA{100, 50, 250, 0}))
}

func TestHSLTransforms(t *testing.T) {
	// lighten and darken round-trip through HSL space
	assert.Equal(t, color.RGBA{51, 51, 255, 255}, Lighten(Blue, 10))
	assert.Equal(t, Blue, Darken(color.RGBA{51, 51, 255, 255}, 10))
	assert.Equal(t, White, Lighten(Blue, 100))
	assert.Equal(t, Black, Darken(Blue, 100))
	// desaturating all the way yields gray
	d := Desaturate(Blue, 100)
	assert.Equal(t, d.R, d.G)
	assert.Equal(t, d.G, d.B)
	// fully transparent colors pass through unchanged
	assert.Equal(t, color.RGBA{}, Lighten(Transparent, 10))
}
