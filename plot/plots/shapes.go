// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package plots

import (
	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/paint"
	"github.com/NGWi/matplotlib/plot"
)

// DrawShape draws the given shape centered at pos, with the given
// size as the radius of a circumscribing circle, in dots.
// It uses the current paint fill and stroke styles.
func DrawShape(pc *paint.Context, pos math32.Vector2, size float32, shape plot.Shapes) {
	switch shape {
	case plot.Ring:
		DrawRing(pc, pos, size)
	case plot.Circle:
		DrawCircle(pc, pos, size)
	case plot.Square:
		DrawSquare(pc, pos, size)
	case plot.Box:
		DrawBox(pc, pos, size)
	case plot.Triangle:
		DrawTriangle(pc, pos, size)
	case plot.Pyramid:
		DrawPyramid(pc, pos, size)
	case plot.Plus:
		DrawPlus(pc, pos, size)
	case plot.Cross:
		DrawCross(pc, pos, size)
	}
}

func DrawRing(pc *paint.Context, pos math32.Vector2, size float32) {
	pc.DrawCircle(pos.X, pos.Y, size)
	pc.Stroke()
}

func DrawCircle(pc *paint.Context, pos math32.Vector2, size float32) {
	pc.DrawCircle(pos.X, pos.Y, size)
	pc.FillStrokeClear()
}

func DrawSquare(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 0.9
	pc.MoveTo(pos.X-x, pos.Y-x)
	pc.LineTo(pos.X+x, pos.Y-x)
	pc.LineTo(pos.X+x, pos.Y+x)
	pc.LineTo(pos.X-x, pos.Y+x)
	pc.ClosePath()
	pc.Stroke()
}

func DrawBox(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 0.9
	pc.MoveTo(pos.X-x, pos.Y-x)
	pc.LineTo(pos.X+x, pos.Y-x)
	pc.LineTo(pos.X+x, pos.Y+x)
	pc.LineTo(pos.X-x, pos.Y+x)
	pc.ClosePath()
	pc.FillStrokeClear()
}

func DrawTriangle(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 0.9
	pc.MoveTo(pos.X, pos.Y-x)
	pc.LineTo(pos.X-x, pos.Y+x)
	pc.LineTo(pos.X+x, pos.Y+x)
	pc.ClosePath()
	pc.Stroke()
}

func DrawPyramid(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 0.9
	pc.MoveTo(pos.X, pos.Y-x)
	pc.LineTo(pos.X-x, pos.Y+x)
	pc.LineTo(pos.X+x, pos.Y+x)
	pc.ClosePath()
	pc.FillStrokeClear()
}

func DrawPlus(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 1.05
	pc.MoveTo(pos.X-x, pos.Y)
	pc.LineTo(pos.X+x, pos.Y)
	pc.MoveTo(pos.X, pos.Y-x)
	pc.LineTo(pos.X, pos.Y+x)
	pc.ClosePath()
	pc.Stroke()
}

func DrawCross(pc *paint.Context, pos math32.Vector2, size float32) {
	x := size * 0.9
	pc.MoveTo(pos.X-x, pos.Y-x)
	pc.LineTo(pos.X+x, pos.Y+x)
	pc.MoveTo(pos.X+x, pos.Y-x)
	pc.LineTo(pos.X-x, pos.Y+x)
	pc.ClosePath()
	pc.Stroke()
}
