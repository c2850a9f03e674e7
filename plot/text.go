// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package plot

import (
	"image"
	"strconv"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/styles/units"
)

// Aligns specifies text alignment along a dimension.
type Aligns int32

const (
	// Start aligns to the start (left, top).
	Start Aligns = iota

	// Center aligns to the center.
	Center

	// End aligns to the end (right, bottom).
	End
)

var alignNames = []string{"Start", "Center", "End"}

func (al Aligns) String() string {
	if al < 0 || int(al) >= len(alignNames) {
		return "Aligns(" + strconv.Itoa(int(al)) + ")"
	}
	return alignNames[al]
}

// TextStyle specifies styling parameters for Text elements.
type TextStyle struct {
	// Size of font to render (default 16dp).
	Size units.Value

	// Color of the text (default black).
	Color image.Image

	// Align specifies how to align the text horizontally
	// relative to its layout region.
	Align Aligns

	// AlignV specifies how to align the text vertically
	// relative to its layout region.
	AlignV Aligns

	// Padding is added on the sides of the text.
	Padding units.Value

	// Rotation of the text, in degrees. Layout assumes
	// rotations in 90 degree steps.
	Rotation float32

	// Offset is added directly to the final label location,
	// for elements such as [plots.Labels] that draw relative to a point.
	Offset units.XY
}

func (ts *TextStyle) Defaults() {
	ts.Size.Dp(16)
	ts.Color = colors.Uniform(colors.Black)
	ts.Align = Center
	ts.AlignV = Start
}

// Text specifies a single text element in a plot.
type Text struct {

	// Text is the text to render.
	Text string

	// Style is the styling for this text element.
	Style TextStyle

	// size is the measured bounding box of the rendered text,
	// accounting for rotation. Set by [Text.Config].
	size math32.Vector2
}

func (tx *Text) Defaults() {
	tx.Style.Defaults()
}

// Config measures the text with the current style settings, caching
// its rendered size. It must be called prior to any layout or drawing
// whenever the text or style changes.
func (tx *Text) Config(pt *Plot) {
	pc := pt.Paint
	uc := &pc.UnitContext
	fs := &tx.Style
	fs.Size.ToDots(uc)
	fs.Padding.ToDots(uc)
	pc.SetFont(fs.Size.Dots)
	sz := pc.MeasureText(tx.Text)
	if fs.Rotation != 0 {
		rad := math32.DegToRad(fs.Rotation)
		cos := math32.Abs(math32.Cos(rad))
		sin := math32.Abs(math32.Sin(rad))
		sz = math32.Vec2(sz.X*cos+sz.Y*sin, sz.X*sin+sz.Y*cos)
	}
	tx.size = sz
}

// Size returns the cached rendered size from the last [Text.Config].
func (tx *Text) Size() math32.Vector2 {
	return tx.size
}

// PosX returns the starting position for drawing the text within a
// region of given width, based on the horizontal alignment style.
func (tx *Text) PosX(width float32) math32.Vector2 {
	pos := math32.Vector2{}
	switch tx.Style.Align {
	case Center:
		pos.X = 0.5 * (width - tx.size.X)
	case End:
		pos.X = width - tx.size.X
	}
	return pos
}

// PosY returns the starting position for drawing the text within a
// region of given height, based on the vertical alignment style.
func (tx *Text) PosY(height float32) math32.Vector2 {
	pos := math32.Vector2{}
	switch tx.Style.AlignV {
	case Center:
		pos.Y = 0.5 * (height - tx.size.Y)
	case End:
		pos.Y = height - tx.size.Y
	}
	return pos
}

// Draw renders the text at the given upper left position of its
// bounding box, in dots.
func (tx *Text) Draw(pt *Plot, pos math32.Vector2) {
	pc := pt.Paint
	fs := &tx.Style
	pc.SetFont(fs.Size.Dots)
	pc.FillStyle.Color = fs.Color
	switch {
	case fs.Rotation == 0:
		pc.DrawText(tx.Text, pos)
	case fs.Rotation < 0:
		// rotation is about the anchor point, so shift to keep the
		// given pos as the upper left of the rotated bounding box
		raw := pc.MeasureText(tx.Text)
		pc.DrawTextRotated(tx.Text, math32.Vec2(pos.X, pos.Y+raw.X), fs.Rotation)
	default:
		raw := pc.MeasureText(tx.Text)
		pc.DrawTextRotated(tx.Text, math32.Vec2(pos.X+raw.Y, pos.Y), fs.Rotation)
	}
}
