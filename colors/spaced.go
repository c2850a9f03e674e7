// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space.
// This is useful, for example, for assigning colors in graphs.
func Spaced(idx int) color.RGBA {
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	loffs := []float64{0, -0.1, 0, 0.05, 0, 0, 0.05, 0}
	lums := []float64{0.65, 0.8, 0.45, 0.65, 0.8}
	chromas := []float64{0.7, 0.7, 0.7, 0.25, 0.25}
	ncats := len(hues)
	nlc := len(lums)
	hi := idx % ncats
	hr := idx / ncats
	lci := hr % nlc
	hue := hues[hi]
	lum := loffs[hi] + lums[lci]
	chroma := chromas[lci]
	return fromColorful(colorful.Hcl(hue, chroma, lum), 255)
}
