// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, FromPoint(image.Pt(15, -5)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetPoint(image.Pt(8, 9))
	assert.Equal(t, Vector2{8, 9}, v)

	assert.Equal(t, image.Pt(8, 9), v.ToPoint())
	assert.Equal(t, image.Pt(4, 5), Vec2(4.6, 5.3).ToPointFloor())
	assert.Equal(t, image.Pt(5, 6), Vec2(4.6, 5.3).ToPointCeil())
	assert.Equal(t, image.Pt(5, 5), Vec2(4.6, 5.3).ToPointRound())

	assert.Equal(t, Vector2{11, 14}, Vec2(8, 9).Add(Vec2(3, 5)))
	assert.Equal(t, Vector2{10, 11}, Vec2(8, 9).AddScalar(2))
	assert.Equal(t, Vector2{5, 4}, Vec2(8, 9).Sub(Vec2(3, 5)))
	assert.Equal(t, Vector2{6, 7}, Vec2(8, 9).SubScalar(2))
	assert.Equal(t, Vector2{24, 45}, Vec2(8, 9).Mul(Vec2(3, 5)))
	assert.Equal(t, Vector2{16, 18}, Vec2(8, 9).MulScalar(2))
	assert.Equal(t, Vector2{4, 3}, Vec2(8, 9).Div(Vec2(2, 3)))
	assert.Equal(t, Vector2{4, 4.5}, Vec2(8, 9).DivScalar(2))
	assert.Equal(t, Vector2{}, Vec2(8, 9).DivScalar(0))

	assert.Equal(t, Vector2{3, 5}, Vec2(8, 5).Min(Vec2(3, 9)))
	assert.Equal(t, Vector2{8, 9}, Vec2(8, 5).Max(Vec2(3, 9)))
	assert.Equal(t, Vector2{-8, 9}, Vec2(8, -9).Negate())
	assert.Equal(t, Vector2{8, 9}, Vec2(-8, 9).Abs())

	assert.Equal(t, float32(49), Vec2(8, 3).Dot(Vec2(5, 3)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(Vec2(3, 4)))
	assert.Equal(t, Vector2{1, 0}, Vec2(2, 0).Normal())

	assert.Equal(t, Vector2{5, 10}, Vec2(0, 0).Lerp(Vec2(10, 20), 0.5))
}

func TestBox2(t *testing.T) {
	b := B2(1, 2, 5, 8)
	assert.Equal(t, Vector2{4, 6}, b.Size())
	assert.Equal(t, Vector2{3, 5}, b.Center())
	assert.True(t, b.ContainsPoint(Vec2(2, 3)))
	assert.False(t, b.ContainsPoint(Vec2(0, 3)))

	eb := B2Empty()
	assert.True(t, eb.IsEmpty())
	eb.ExpandByPoint(Vec2(3, 4))
	eb.ExpandByPoint(Vec2(-1, 7))
	assert.Equal(t, B2(-1, 4, 3, 7), eb)

	assert.Equal(t, B2(1, 2, 5, 8), B2FromRect(image.Rect(1, 2, 5, 8)))
	assert.Equal(t, image.Rect(1, 2, 5, 8), B2(1, 2, 5, 8).ToRect())

	assert.Equal(t, float32(3), B2(1, 2, 5, 8).ProjectX(0.5))
	assert.Equal(t, float32(5), B2(1, 2, 5, 8).ProjectY(0.5))

	u := B2(0, 0, 2, 2).Union(B2(1, 1, 5, 3))
	assert.Equal(t, B2(0, 0, 5, 3), u)
	in := B2(0, 0, 2, 2).Intersect(B2(1, 1, 5, 3))
	assert.Equal(t, B2(1, 1, 2, 2), in)
}
