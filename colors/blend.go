// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

package colors

import (
	"image/color"
	"log/slog"
	"strconv"

	"github.com/NGWi/matplotlib/math32"
)

// BlendTypes are the different ways of blending colors.
type BlendTypes int32

const (
	// HCL uses the hue, chroma, and luminance color space,
	// which generally produces the best results for perceptual
	// interpolation between colors.
	HCL BlendTypes = iota

	// RGB uses raw RGB space, which is the standard space that
	// most other programs use. It produces decent results with
	// maximum performance.
	RGB

	// LAB uses the CIE L*a*b* color space, which is also
	// perceptually uniform but can traverse gray when blending
	// between complementary hues.
	LAB
)

var blendTypeNames = []string{"HCL", "RGB", "LAB"}

func (bt BlendTypes) String() string {
	if bt < 0 || int(bt) >= len(blendTypeNames) {
		return "BlendTypes(" + strconv.Itoa(int(bt)) + ")"
	}
	return blendTypeNames[bt]
}

// Blend returns a color that is the given percent blend between the first
// and second color. 10 = 10% of the first and 90% of the second, etc.
// Blending is done using the given blending algorithm.
func Blend(bt BlendTypes, pct float32, x, y color.Color) color.RGBA {
	switch bt {
	case HCL:
		return BlendHCL(pct, x, y)
	case RGB:
		return BlendRGB(pct, x, y)
	case LAB:
		return BlendLAB(pct, x, y)
	}
	slog.Error("colors.Blend: got unexpected blend type", "type", bt)
	return color.RGBA{}
}

// BlendRGB returns a color that is the given percent blend between the first
// and second color in RGB colorspace. 10 = 10% of the first and 90% of the
// second, etc. Blending is done directly on non-premultiplied RGB values.
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	xr, xg, xb, xa := nrgbaF32(x)
	yr, yg, yb, ya := nrgbaF32(y)
	pct = math32.Clamp(pct, 0, 100)
	px := pct / 100
	py := 1 - px
	return fromF32(px*xr+py*yr, px*xg+py*yg, px*xb+py*yb, px*xa+py*ya)
}

// BlendHCL returns a color that is the given percent blend between the first
// and second color in HCL colorspace. 10 = 10% of the first and 90% of the
// second, etc. Alpha is blended linearly in non-premultiplied space.
func BlendHCL(pct float32, x, y color.Color) color.RGBA {
	xc, xa, xok := toColorful(x)
	yc, ya, yok := toColorful(y)
	if !xok || !yok { // fully transparent endpoints have no hue
		return BlendRGB(pct, x, y)
	}
	pct = math32.Clamp(pct, 0, 100)
	px := pct / 100
	a := px*float32(xa)/255 + (1-px)*float32(ya)/255
	return fromColorful(xc.BlendHcl(yc, float64(1-px)), uint8(a*255+0.5))
}

// BlendLAB returns a color that is the given percent blend between the first
// and second color in L*a*b* colorspace. 10 = 10% of the first and 90% of
// the second, etc. Alpha is blended linearly in non-premultiplied space.
func BlendLAB(pct float32, x, y color.Color) color.RGBA {
	xc, xa, xok := toColorful(x)
	yc, ya, yok := toColorful(y)
	if !xok || !yok {
		return BlendRGB(pct, x, y)
	}
	pct = math32.Clamp(pct, 0, 100)
	px := pct / 100
	a := px*float32(xa)/255 + (1-px)*float32(ya)/255
	return fromColorful(xc.BlendLab(yc, float64(1-px)), uint8(a*255+0.5))
}

// AlphaBlend blends the two colors, handling alpha blending correctly.
// The src color is rendered on top of the dst color.
func AlphaBlend(dst, src color.Color) color.RGBA {
	res := color.RGBA{}

	dr, dg, db, da := dst.RGBA()
	sr, sg, sb, sa := src.RGBA()
	a := (0xffff - sa)

	res.R = uint8((dr*a/0xffff + sr) >> 8)
	res.G = uint8((dg*a/0xffff + sg) >> 8)
	res.B = uint8((db*a/0xffff + sb) >> 8)
	res.A = uint8((da*a/0xffff + sa) >> 8)
	return res
}

// nrgbaF32 returns the non-premultiplied RGBA components
// of the given color as float32 values in the range 0-1.
func nrgbaF32(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

// fromF32 returns the standard premultiplied RGBA color for the given
// non-premultiplied float32 components in the range 0-1.
func fromF32(r, g, b, a float32) color.RGBA {
	return AsRGBA(color.NRGBA{
		R: uint8(math32.Clamp(r, 0, 1)*255 + 0.5),
		G: uint8(math32.Clamp(g, 0, 1)*255 + 0.5),
		B: uint8(math32.Clamp(b, 0, 1)*255 + 0.5),
		A: uint8(math32.Clamp(a, 0, 1)*255 + 0.5),
	})
}
