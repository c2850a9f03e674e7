// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image/color"
	"testing"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/colors/colormap"
	"github.com/NGWi/matplotlib/math32"
	"github.com/stretchr/testify/assert"
)

func TestGetColor(t *testing.T) {
	l := NewLinear().AddStop(colors.Black, 0).AddStop(colors.White, 1)

	gray := color.RGBA{128, 128, 128, 255}
	assert.Equal(t, colors.Black, l.GetColor(0))
	assert.Equal(t, colors.White, l.GetColor(1))
	assert.Equal(t, gray, l.GetColor(0.5))

	// pad holds the end colors
	assert.Equal(t, colors.White, l.GetColor(1.5))
	assert.Equal(t, colors.Black, l.GetColor(-0.5))

	l.Spread = Reflect
	assert.Equal(t, gray, l.GetColor(1.5))

	l.Spread = Repeat
	assert.Equal(t, color.RGBA{64, 64, 64, 255}, l.GetColor(1.25))
}

func TestAt(t *testing.T) {
	l := NewLinear().AddStop(colors.Black, 0).AddStop(colors.White, 1).
		SetEnd(math32.Vec2(1, 0)) // horizontal over the default 100x100 box

	assert.Equal(t, colors.Black, l.At(-10, 50))
	assert.Equal(t, colors.White, l.At(110, 50))
	assert.Equal(t, color.RGBA{129, 129, 129, 255}, l.At(50, 0))
}

func TestFromMap(t *testing.T) {
	l := FromMap(colormap.AvailableMaps["grays"], 3)
	assert.Len(t, l.Stops, 3)
	assert.Equal(t, colors.Black, l.GetColor(0))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, l.GetColor(0.5))
	assert.Equal(t, colors.White, l.GetColor(1))
	assert.Equal(t, color.RGBA{64, 64, 64, 255}, l.GetColor(0.25))
}

func TestOpacity(t *testing.T) {
	l := NewLinear().AddStop(colors.White, 0).AddStop(colors.White, 1)
	l.Opacity = 0.5
	assert.Equal(t, color.RGBA{127, 127, 127, 127}, l.GetColor(0))
}

func TestDegenerate(t *testing.T) {
	l := NewLinear()
	assert.Equal(t, color.RGBA{}, l.GetColor(0.5))
	l.AddStop(colors.Red, 0.5)
	assert.Equal(t, colors.Red, l.GetColor(0))
	assert.Equal(t, colors.Red, l.GetColor(1))
}
