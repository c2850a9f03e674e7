// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

package colormap

import (
	"image/color"

	"github.com/NGWi/matplotlib/colors"
)

// StandardMaps is the set of standard color maps, by name.
// They are all also registered in [AvailableMaps].
var StandardMaps = map[string]*Map{
	"viridis": {
		Name:    "viridis",
		NoColor: colors.Lightgray,
		Colors: []color.RGBA{
			{68, 1, 84, 255},
			{72, 40, 120, 255},
			{62, 74, 137, 255},
			{49, 104, 142, 255},
			{38, 130, 142, 255},
			{31, 158, 137, 255},
			{53, 183, 121, 255},
			{109, 205, 89, 255},
			{180, 222, 44, 255},
			{253, 231, 37, 255},
		},
	},
	"plasma": {
		Name:    "plasma",
		NoColor: colors.Lightgray,
		Colors: []color.RGBA{
			{13, 8, 135, 255},
			{84, 2, 163, 255},
			{139, 10, 165, 255},
			{185, 50, 137, 255},
			{219, 92, 104, 255},
			{244, 136, 73, 255},
			{254, 188, 43, 255},
			{240, 249, 33, 255},
		},
	},
	"inferno": {
		Name:    "inferno",
		NoColor: colors.Lightgray,
		Colors: []color.RGBA{
			{0, 0, 4, 255},
			{31, 12, 72, 255},
			{85, 15, 109, 255},
			{136, 34, 106, 255},
			{186, 54, 85, 255},
			{227, 89, 51, 255},
			{249, 140, 10, 255},
			{249, 201, 50, 255},
			{252, 255, 164, 255},
		},
	},
	"magma": {
		Name:    "magma",
		NoColor: colors.Lightgray,
		Colors: []color.RGBA{
			{0, 0, 4, 255},
			{40, 11, 84, 255},
			{101, 21, 110, 255},
			{159, 42, 99, 255},
			{212, 72, 66, 255},
			{245, 125, 21, 255},
			{250, 193, 39, 255},
			{252, 253, 191, 255},
		},
	},
	"coldhot": {
		Name:    "coldhot",
		NoColor: colors.Yellowgreen,
		Colors: []color.RGBA{
			{0, 255, 255, 255},
			{0, 0, 255, 255},
			{127, 127, 127, 255},
			{255, 0, 0, 255},
			{255, 255, 0, 255},
		},
	},
	"jet": {
		Name:    "jet",
		NoColor: colors.Lightgray,
		Colors: []color.RGBA{
			{0, 0, 127, 255},
			{0, 0, 255, 255},
			{0, 127, 255, 255},
			{0, 255, 255, 255},
			{127, 255, 127, 255},
			{255, 255, 0, 255},
			{255, 127, 0, 255},
			{255, 0, 0, 255},
			{127, 0, 0, 255},
		},
	},
	"grays": {
		Name:    "grays",
		NoColor: colors.Red,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{255, 255, 255, 255},
		},
	},
}

func init() {
	for _, cm := range StandardMaps {
		Register(cm)
	}
}
