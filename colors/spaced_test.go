// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

package colors

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/NGWi/matplotlib/base/iox/imagex"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestSpaced(t *testing.T) {
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	ncats := 8
	nX := ncats
	nY := 5
	mx := nY * nX

	ysp := 8
	xsp := 8
	lnY := 8
	spY := lnY + ysp
	lnX := 40
	spX := lnX + xsp
	sz := image.Point{spX*nX + 2*xsp, spY*nY + 3*ysp}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(img, img.Bounds(), &image.Uniform{White}, image.Point{}, draw.Src)

	for idx := 0; idx < mx; idx++ {
		c := Spaced(idx)
		yp := idx / nX
		xp := idx % nX
		ys := yp*spY + ysp
		xs := xp*spX + xsp
		for y := 0; y < lnY; y++ {
			for x := 0; x < lnX; x++ {
				img.SetRGBA(xs+x, ys+y, c)
			}
		}
	}

	chroma := 0.7
	lum := 0.65
	yp := nY
	for hue := 0; hue < 360; hue++ {
		c := fromColorful(colorful.Hcl(float64(hue), chroma, lum), 255)

		ys := yp*spY + ysp
		xs := hue + xsp
		for y := 0; y < spY; y++ {
			img.SetRGBA(xs, ys+y, c)
		}
		for _, h := range hues {
			if int(h) == hue {
				img.SetRGBA(xs, ys-1, Black)
			}
		}
	}

	imagex.Assert(t, img, "spaced")
}

func TestSpacedUnique(t *testing.T) {
	seen := map[color.RGBA]int{}
	for idx := 0; idx < 40; idx++ {
		c := Spaced(idx)
		assert.Equal(t, uint8(255), c.A)
		if prev, ok := seen[c]; ok {
			t.Errorf("color %v for index %d already used at index %d", c, idx, prev)
		}
		seen[c] = idx
	}
}
