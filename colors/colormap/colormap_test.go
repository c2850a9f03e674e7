// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"testing"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	cm := AvailableMaps["viridis"]
	if assert.NotNil(t, cm) {
		assert.Equal(t, color.RGBA{68, 1, 84, 255}, cm.Map(0))
		assert.Equal(t, color.RGBA{68, 1, 84, 255}, cm.Map(-1))
		assert.Equal(t, color.RGBA{253, 231, 37, 255}, cm.Map(1))
		assert.Equal(t, color.RGBA{253, 231, 37, 255}, cm.Map(2))
		assert.Equal(t, colors.Lightgray, cm.Map(math32.NaN()))
	}

	gr := AvailableMaps["grays"]
	if assert.NotNil(t, gr) {
		assert.Equal(t, color.RGBA{128, 128, 128, 255}, gr.Map(0.5))
		assert.Equal(t, color.RGBA{64, 64, 64, 255}, gr.Map(0.25))
	}
}

func TestMapIndexed(t *testing.T) {
	cm := &Map{
		Name:    "categories",
		NoColor: colors.Lightgray,
		Colors:  []color.RGBA{colors.Red, colors.Green, colors.Blue},
		Indexed: true,
	}
	assert.Equal(t, colors.Red, cm.Map(0))
	assert.Equal(t, colors.Green, cm.Map(1))
	assert.Equal(t, colors.Blue, cm.MapIndex(2))
	assert.Equal(t, colors.Lightgray, cm.MapIndex(3))
	assert.Equal(t, colors.Lightgray, cm.MapIndex(-1))
	assert.Equal(t, colors.Lightgray, cm.Map(math32.NaN()))
}

func TestRegister(t *testing.T) {
	cm := &Map{Name: "binary", Colors: []color.RGBA{colors.Black, colors.White}}
	Register(cm)
	assert.Equal(t, cm, AvailableMaps["binary"])

	ls := AvailableMapsList()
	assert.Contains(t, ls, "binary")
	assert.Contains(t, ls, "viridis")
	assert.IsIncreasing(t, ls)
}
