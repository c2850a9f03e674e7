// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"testing"

	"github.com/NGWi/matplotlib/base/iox/imagex"
	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/math32"
	"github.com/stretchr/testify/assert"
)

func TestShapes(t *testing.T) {
	pc := NewContext(200, 200)
	pc.ToDots()
	pc.BlitBox(math32.Vector2{}, math32.Vec2(200, 200), colors.Uniform(colors.White))

	pc.StrokeStyle.Color = colors.Uniform(colors.Blue)
	pc.StrokeStyle.Width.Dots = 2
	pc.DrawCircle(50, 50, 30)
	pc.Stroke()

	pc.FillStyle.Color = colors.Uniform(colors.Lightblue)
	pc.StrokeStyle.Color = colors.Uniform(colors.Black)
	pc.DrawRectangle(100, 20, 60, 40)
	pc.FillStrokeClear()

	pc.FillStyle.Color = colors.Uniform(colors.Red)
	pc.MoveTo(50, 120)
	pc.LineTo(90, 180)
	pc.LineTo(10, 180)
	pc.ClosePath()
	pc.FillStrokeClear()

	pc.StrokeStyle.Dashes = []float64{6, 4}
	pc.MoveTo(110, 120)
	pc.LineTo(190, 180)
	pc.Stroke()
	pc.StrokeStyle.Dashes = nil

	imagex.Assert(t, pc.Image, "shapes")
}

func TestBounds(t *testing.T) {
	pc := NewContext(100, 100)
	pc.BlitBox(math32.Vector2{}, math32.Vec2(100, 100), colors.Uniform(colors.White))

	pc.PushBounds(image.Rect(25, 25, 75, 75))
	// fill goes over the whole image but is clipped to the pushed bounds
	pc.BlitBox(math32.Vector2{}, math32.Vec2(100, 100), colors.Uniform(colors.Green))
	pc.PopBounds()

	pc.FillStyle.Color = colors.Uniform(colors.Black)
	pc.DrawRectangle(0, 0, 10, 10)
	pc.Fill()

	assert.Equal(t, colors.White.R, pc.Image.RGBAAt(80, 80).R)
	imagex.Assert(t, pc.Image, "bounds")
}

func TestText(t *testing.T) {
	pc := NewContext(200, 100)
	pc.BlitBox(math32.Vector2{}, math32.Vec2(200, 100), colors.Uniform(colors.White))

	pc.SetFont(16)
	sz := pc.MeasureText("hello")
	assert.Greater(t, sz.X, float32(0))
	assert.Greater(t, sz.Y, float32(0))

	pc.FillStyle.Color = colors.Uniform(colors.Black)
	pc.DrawText("hello", math32.Vec2(10, 10))
	pc.DrawTextRotated("rotated", math32.Vec2(100, 80), -90)

	imagex.Assert(t, pc.Image, "text")
}
