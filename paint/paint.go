// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides a 2D rendering context for plots,
// rasterizing through github.com/fogleman/gg.
package paint

import (
	"image"
	"image/color"

	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/styles/units"
	"github.com/fogleman/gg"
)

// Context provides the rendering state, styles, and methods for painting.
type Context struct {
	*State

	// FillStyle is the current fill style used by [Context.Fill]
	// and [Context.FillStrokeClear].
	FillStyle FillStyle

	// StrokeStyle is the current stroke style used by [Context.Stroke]
	// and [Context.FillStrokeClear].
	StrokeStyle StrokeStyle

	// UnitContext converts unit values into rendering dots.
	UnitContext units.Context
}

// State holds the underlying rendering state.
type State struct {
	// Image is the image we are rendering into.
	Image *image.RGBA

	// Bounds is the current clip bounds, controlled by
	// [Context.PushBounds] and [Context.PopBounds].
	Bounds image.Rectangle

	gc          *gg.Context
	boundsStack []image.Rectangle
	fontSize    float32
}

// NewContext returns a new [Context] rendering into a new image
// of the given size, with default styles.
func NewContext(width, height int) *Context {
	return NewContextFromRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewContextFromRGBA returns a new [Context] rendering into the given
// existing image, with default styles.
func NewContextFromRGBA(img *image.RGBA) *Context {
	pc := &Context{
		State: &State{
			Image:  img,
			Bounds: img.Bounds(),
			gc:     gg.NewContextForRGBA(img),
		},
	}
	pc.UnitContext.Defaults()
	pc.FillStyle.Defaults()
	pc.StrokeStyle.Defaults()
	return pc
}

// ToDots compiles the unit values of the current styles into raw dots.
func (pc *Context) ToDots() {
	pc.StrokeStyle.ToDots(&pc.UnitContext)
}

// PushBounds pushes the given bounds as the current clip region,
// saving the previous one for [Context.PopBounds].
func (pc *Context) PushBounds(b image.Rectangle) {
	pc.boundsStack = append(pc.boundsStack, pc.Bounds)
	pc.Bounds = b
	pc.applyClip()
}

// PopBounds restores the previous clip region.
func (pc *Context) PopBounds() {
	n := len(pc.boundsStack)
	if n == 0 {
		return
	}
	pc.Bounds = pc.boundsStack[n-1]
	pc.boundsStack = pc.boundsStack[:n-1]
	pc.applyClip()
}

func (pc *Context) applyClip() {
	pc.gc.ResetClip()
	b := pc.Bounds
	pc.gc.DrawRectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
	pc.gc.Clip()
}

// MoveTo starts a new subpath at the given point.
func (pc *Context) MoveTo(x, y float32) {
	pc.gc.MoveTo(float64(x), float64(y))
}

// LineTo adds a line segment from the current point to the given point.
func (pc *Context) LineTo(x, y float32) {
	pc.gc.LineTo(float64(x), float64(y))
}

// ClosePath closes the current subpath.
func (pc *Context) ClosePath() {
	pc.gc.ClosePath()
}

// ClearPath clears the current path without rendering it.
func (pc *Context) ClearPath() {
	pc.gc.ClearPath()
}

// DrawCircle adds a circle with the given center and radius to the path.
func (pc *Context) DrawCircle(x, y, r float32) {
	pc.gc.NewSubPath()
	pc.gc.DrawCircle(float64(x), float64(y), float64(r))
}

// DrawRectangle adds a rectangle with the given upper-left corner
// and size to the path.
func (pc *Context) DrawRectangle(x, y, w, h float32) {
	pc.gc.NewSubPath()
	pc.gc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
}

// Fill fills the current path with the current [FillStyle]
// and clears the path. It does nothing if the fill color is nil.
func (pc *Context) Fill() {
	if pc.FillStyle.Color == nil {
		pc.gc.ClearPath()
		return
	}
	pc.gc.SetFillStyle(patternFor(pc.FillStyle.Color))
	pc.gc.Fill()
}

// Stroke strokes the current path with the current [StrokeStyle]
// and clears the path. It does nothing if the stroke color is nil
// or the width is not positive.
func (pc *Context) Stroke() {
	if pc.StrokeStyle.Color == nil || pc.StrokeStyle.Width.Dots <= 0 {
		pc.gc.ClearPath()
		return
	}
	pc.gc.SetStrokeStyle(patternFor(pc.StrokeStyle.Color))
	pc.gc.SetLineWidth(float64(pc.StrokeStyle.Width.Dots))
	if len(pc.StrokeStyle.Dashes) > 0 {
		pc.gc.SetDash(pc.StrokeStyle.Dashes...)
	} else {
		pc.gc.SetDash()
	}
	pc.gc.Stroke()
}

// FillStrokeClear fills and strokes the current path and then clears it.
func (pc *Context) FillStrokeClear() {
	if pc.FillStyle.Color != nil {
		pc.gc.SetFillStyle(patternFor(pc.FillStyle.Color))
		pc.gc.FillPreserve()
	}
	pc.Stroke()
}

// BlitBox fills the given box with the given image, which can be
// a [colors.Uniform] or any other pattern image such as a gradient.
func (pc *Context) BlitBox(pos, sz math32.Vector2, img image.Image) {
	if img == nil {
		return
	}
	pc.gc.SetFillStyle(patternFor(img))
	pc.gc.DrawRectangle(float64(pos.X), float64(pos.Y), float64(sz.X), float64(sz.Y))
	pc.gc.Fill()
}

// patternFor adapts an image into a [gg.Pattern] fill or stroke source.
func patternFor(img image.Image) gg.Pattern {
	if u, ok := img.(*image.Uniform); ok {
		return gg.NewSolidPattern(u.C)
	}
	return &imagePattern{img}
}

type imagePattern struct {
	img image.Image
}

func (p *imagePattern) ColorAt(x, y int) color.Color {
	return p.img.At(x, y)
}
