// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"sync"

	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

var (
	fontOnce   sync.Once
	fontParsed *sfnt.Font

	faceMu sync.Mutex
	faces  = map[float32]font.Face{}
)

// plotFont returns the shared plot font, parsing it on first use.
func plotFont() *sfnt.Font {
	fontOnce.Do(func() {
		f, err := opentype.Parse(lmroman10regular.TTF)
		if errors.Log(err) != nil {
			return
		}
		fontParsed = f
	})
	return fontParsed
}

// face returns a [font.Face] for the shared plot font at the
// given size in dots, caching faces per size.
func face(size float32) font.Face {
	faceMu.Lock()
	defer faceMu.Unlock()
	if fc, ok := faces[size]; ok {
		return fc
	}
	f := plotFont()
	if f == nil {
		return nil
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if errors.Log(err) != nil {
		return nil
	}
	faces[size] = fc
	return fc
}

// SetFont sets the current font to the shared plot font
// at the given size in dots.
func (pc *Context) SetFont(size float32) {
	if size <= 0 {
		size = 16
	}
	if pc.fontSize == size {
		return
	}
	if fc := face(size); fc != nil {
		pc.gc.SetFontFace(fc)
		pc.fontSize = size
	}
}

// MeasureText returns the rendered size of the given text
// in the current font.
func (pc *Context) MeasureText(s string) math32.Vector2 {
	w, h := pc.gc.MeasureString(s)
	return math32.Vec2(float32(w), float32(h))
}

// DrawText draws the given text with its upper left corner at the
// given position, using the current font and the current fill color.
func (pc *Context) DrawText(s string, pos math32.Vector2) {
	pc.setTextColor()
	pc.gc.DrawStringAnchored(s, float64(pos.X), float64(pos.Y), 0, 1)
}

// DrawTextRotated draws the given text rotated by the given angle in
// degrees around its upper left corner at the given position.
func (pc *Context) DrawTextRotated(s string, pos math32.Vector2, deg float32) {
	pc.setTextColor()
	pc.gc.Push()
	pc.gc.RotateAbout(float64(math32.DegToRad(deg)), float64(pos.X), float64(pos.Y))
	pc.gc.DrawStringAnchored(s, float64(pos.X), float64(pos.Y), 0, 1)
	pc.gc.Pop()
}

// setTextColor sets the rendering color for text from the fill style,
// defaulting to black when there is no fill color.
func (pc *Context) setTextColor() {
	clr := pc.FillStyle.Color
	if clr == nil {
		pc.gc.SetColor(colors.Black)
		return
	}
	pc.gc.SetColor(colors.ToUniform(clr))
}
