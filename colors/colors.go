// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

// Package colors provides named colors, conversions to and from string
// and hex representations, color transformations, and blending in
// different color spaces.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// IsNil returns whether the color is the nil initial default color.
func IsNil(c color.Color) bool {
	return AsRGBA(c) == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as rgba(r, g, b, a) otherwise.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found; see [MustFromName]
// and [LogFromName] for versions that do not return an error.
func FromName(name string) (color.RGBA, error) {
	c, ok := Map[name]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// MustFromName returns the color value specified
// by the given CSS standard color name. It panics
// if the name is not found; see [FromName]
// for a version that returns an error.
func MustFromName(name string) color.RGBA {
	c, err := FromName(name)
	if err != nil {
		panic("colors.MustFromName: " + err.Error())
	}
	return c
}

// LogFromName returns the color value specified
// by the given CSS standard color name. It logs an error
// if the name is not found; see [FromName]
// for a version that returns an error.
func LogFromName(name string) color.RGBA {
	return errors.Log1(FromName(name))
}

// FromString returns a color value from the given string.
// It returns any resulting error; see [MustFromString] and
// [LogFromString] for versions that do not return an error.
// FromString accepts the following types of strings: hex values,
// standard color names, "none" or "off" (transparent), or
// any of the following transformations (which
// use the optional base color as the starting point):
//
//   - inverse = inverse of base color
//   - lighten-PCT or darken-PCT: PCT is amount to lighten or darken (using HSL), e.g., 10=10%
//   - saturate-PCT or desaturate-PCT: manipulates the saturation level in HSL by PCT
//   - clearer-PCT or opaquer-PCT: manipulates the alpha level by PCT
//   - blend-PCT-color: blends given percent of given color name relative to base
func FromString(str string, base ...color.Color) (color.RGBA, error) {
	var bc color.Color
	if len(base) > 0 {
		bc = base[0]
	}
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "hsl("):
		val := lstr[4:]
		val = strings.TrimRight(val, ")")
		var h, s, l int
		fmt.Sscanf(val, "%d,%d,%d", &h, &s, &l)
		return fromHSL(float64(h), float64(s)/100, float64(l)/100, 255), nil
	case strings.HasPrefix(lstr, "rgba("):
		val := lstr[5:]
		val = strings.TrimRight(val, ")")
		val = strings.Trim(val, "%")
		var r, g, b, a int
		fmt.Sscanf(val, "%d,%d,%d,%d", &r, &g, &b, &a)
		return AsRGBA(color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}), nil
	case strings.HasPrefix(lstr, "rgb("):
		val := lstr[4:]
		val = strings.TrimRight(val, ")")
		val = strings.Trim(val, "%")
		var r, g, b, a int
		a = 255
		if strings.Count(val, ",") == 3 {
			fmt.Sscanf(val, "%d,%d,%d,%d", &r, &g, &b, &a)
		} else {
			fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b)
		}
		return AsRGBA(color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}), nil
	default:
		if hidx := strings.Index(lstr, "-"); hidx > 0 {
			cmd := lstr[:hidx]
			pctstr := lstr[hidx+1:]
			pct64, err := strconv.ParseFloat(pctstr, 32)
			if err != nil && cmd != "blend" { // blend handles separately
				return color.RGBA{}, fmt.Errorf("colors.FromString: error getting percent from %q: %w", pctstr, err)
			}
			pct := float32(pct64)
			switch cmd {
			case "lighten":
				return Lighten(bc, pct), nil
			case "darken":
				return Darken(bc, pct), nil
			case "saturate":
				return Saturate(bc, pct), nil
			case "desaturate":
				return Desaturate(bc, pct), nil
			case "clearer":
				return Clearer(bc, pct), nil
			case "opaquer":
				return Opaquer(bc, pct), nil
			case "blend":
				clridx := strings.Index(pctstr, "-")
				if clridx < 0 {
					return color.RGBA{}, fmt.Errorf("colors.FromString: blend color spec not found; format is: blend-PCT-color, got: %v", lstr)
				}
				clrstr := pctstr[clridx+1:]
				pctstr = pctstr[:clridx]
				pct64, err := strconv.ParseFloat(pctstr, 32)
				if err != nil {
					return color.RGBA{}, fmt.Errorf("colors.FromString: error getting percent from %q: %w", pctstr, err)
				}
				pct := float32(pct64)
				othc, err := FromString(clrstr, bc)
				if bc == nil {
					bc = color.RGBA{}
				}
				return BlendRGB(pct, othc, bc), err
			}
		}
		switch lstr {
		case "none", "off":
			return color.RGBA{}, nil
		case "transparent":
			return Transparent, nil
		case "inverse":
			if bc != nil {
				return Inverse(bc), nil
			}
			return color.RGBA{}, errors.New("colors.FromString: base color must be provided for inverse color transformation")
		default:
			return FromName(lstr)
		}
	}
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string, base ...color.Color) color.RGBA {
	c, err := FromString(str, base...)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return c
}

// LogFromString returns a color value from the given string.
// It logs any resulting error; see [FromString] for
// more information and a version that returns an error.
func LogFromString(str string, base ...color.Color) color.RGBA {
	return errors.Log1(FromString(str, base...))
}

// FromAny returns a color from the given value of any type.
// It handles values of types string and [color.Color].
// It returns any error; see [MustFromAny] for a version
// that does not return an error.
func FromAny(val any, base ...color.Color) (color.RGBA, error) {
	switch valv := val.(type) {
	case string:
		return FromString(valv, base...)
	case color.Color:
		return AsRGBA(valv), nil
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromAny: could not get color from value %v of type %T", val, val)
	}
}

// MustFromAny returns a color value from the given value
// of any type. It panics on any resulting error; see [FromAny]
// for more information and a version that returns an error.
func MustFromAny(val any, base ...color.Color) color.RGBA {
	c, err := FromAny(val, base...)
	if err != nil {
		panic("colors.MustFromAny: " + err.Error())
	}
	return c
}

// FromHex parses the given hex color string
// and returns the resulting color. It returns any
// resulting error; see [MustFromHex] for a
// version that does not return an error.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	if len(hex) == 3 {
		format := "%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	} else if len(hex) == 6 {
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	} else if len(hex) == 8 {
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	} else {
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	return AsRGBA(color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}), nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// WithR returns the given color with the red
// component (R) set to the given value.
func WithR(c color.Color, r uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.R = r
	return rc
}

// WithG returns the given color with the green
// component (G) set to the given value.
func WithG(c color.Color, g uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.G = g
	return rc
}

// WithB returns the given color with the blue
// component (B) set to the given value.
func WithB(c color.Color, b uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.B = b
	return rc
}

// WithA returns the given color with the
// transparency (A) set to the given value,
// with the color premultiplication updated.
func WithA(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}

// WithAF32 returns the given color with the
// transparency (A) set to the given float32 value
// between 0 and 1, with the color premultiplication updated.
func WithAF32(c color.Color, a float32) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a = math32.Clamp(a, 0, 1)
	n.A = uint8(a * 255)
	return AsRGBA(n)
}

// ApplyOpacity applies the given opacity (0-1) to the given color
// and returns the result. It is different from [WithAF32] in that it
// sets the transparency to the current transparency multiplied by the
// given opacity, instead of just directly to the given opacity.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	if opacity >= 1 {
		return r
	}
	if opacity <= 0 {
		return color.RGBA{}
	}
	return WithAF32(c, float32(r.A)/255*opacity)
}

// Clearer returns a color that is the given amount
// more transparent (lower alpha value) in terms of
// RGBA absolute alpha from 0 to 100.
func Clearer(c color.Color, amount float32) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := math32.Clamp(float32(n.A)/255-amount/100, 0, 1)
	n.A = uint8(a * 255)
	return AsRGBA(n)
}

// Opaquer returns a color that is the given amount
// more opaque (higher alpha value) in terms of
// RGBA absolute alpha from 0 to 100.
func Opaquer(c color.Color, amount float32) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := math32.Clamp(float32(n.A)/255+amount/100, 0, 1)
	n.A = uint8(a * 255)
	return AsRGBA(n)
}

// Inverse returns the inverse of the given color
// (255 - each component). It does not change the alpha channel.
func Inverse(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return AsRGBA(color.NRGBA{255 - n.R, 255 - n.G, 255 - n.B, n.A})
}

// Add adds the two given colors together, safely avoiding overflow > 255.
func Add(x, y color.Color) color.RGBA {
	xc := AsRGBA(x)
	yc := AsRGBA(y)
	r := min(int(xc.R)+int(yc.R), 255)
	g := min(int(xc.G)+int(yc.G), 255)
	b := min(int(xc.B)+int(yc.B), 255)
	a := min(int(xc.A)+int(yc.A), 255)
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// Sub subtracts the second color from the first color,
// safely avoiding underflow < 0.
func Sub(x, y color.Color) color.RGBA {
	xc := AsRGBA(x)
	yc := AsRGBA(y)
	r := max(int(xc.R)-int(yc.R), 0)
	g := max(int(xc.G)-int(yc.G), 0)
	b := max(int(xc.B)-int(yc.B), 0)
	a := max(int(xc.A)-int(yc.A), 0)
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// Lighten returns the color that is the given percent lighter (relative to
// maximum possible lightness) in the HSL color space.
func Lighten(c color.Color, pct float32) color.RGBA {
	cf, a, ok := toColorful(c)
	if !ok {
		return AsRGBA(c)
	}
	h, s, l := cf.Hsl()
	l = clamp01(l + float64(pct)/100)
	return fromHSL(h, s, l, a)
}

// Darken returns the color that is the given percent darker (relative to
// maximum possible lightness) in the HSL color space.
func Darken(c color.Color, pct float32) color.RGBA {
	cf, a, ok := toColorful(c)
	if !ok {
		return AsRGBA(c)
	}
	h, s, l := cf.Hsl()
	l = clamp01(l - float64(pct)/100)
	return fromHSL(h, s, l, a)
}

// Saturate returns the color that is the given percent
// more saturated in the HSL color space.
func Saturate(c color.Color, pct float32) color.RGBA {
	cf, a, ok := toColorful(c)
	if !ok {
		return AsRGBA(c)
	}
	h, s, l := cf.Hsl()
	s = clamp01(s + float64(pct)/100)
	return fromHSL(h, s, l, a)
}

// Desaturate returns the color that is the given percent
// less saturated in the HSL color space.
func Desaturate(c color.Color, pct float32) color.RGBA {
	cf, a, ok := toColorful(c)
	if !ok {
		return AsRGBA(c)
	}
	h, s, l := cf.Hsl()
	s = clamp01(s - float64(pct)/100)
	return fromHSL(h, s, l, a)
}

// toColorful converts the given color to a [colorful.Color],
// also returning its non-premultiplied alpha value. It reports
// false for fully transparent colors, which cannot be represented.
func toColorful(c color.Color) (colorful.Color, uint8, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return colorful.Color{}, 0, false
	}
	cf, _ := colorful.MakeColor(color.NRGBA{n.R, n.G, n.B, 255})
	return cf, n.A, true
}

// fromColorful converts the given [colorful.Color] and
// non-premultiplied alpha back to a standard RGBA color.
func fromColorful(cf colorful.Color, a uint8) color.RGBA {
	r, g, b := cf.Clamped().RGB255()
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// fromHSL returns the RGBA color for the given HSL values
// (hue 0-360, saturation and lightness 0-1) and alpha.
func fromHSL(h, s, l float64, a uint8) color.RGBA {
	return fromColorful(colorful.Hsl(h, s, l), a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
