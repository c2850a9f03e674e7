// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.
// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.

// Package gradient provides linear color gradients that can be used
// anywhere an [image.Image] is accepted.
package gradient

import (
	"image"
	"image/color"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/colors/colormap"
	"github.com/NGWi/matplotlib/math32"
)

// Stop represents a single stop in a gradient.
type Stop struct {
	// Color is the color of the stop.
	Color color.RGBA

	// Pos is the position of the stop between 0 and 1.
	Pos float32
}

// Spreads are the spread methods used when a gradient reaches
// its end but the object isn't yet fully filled.
type Spreads int32

const (
	// Pad indicates to have the final color of the gradient fill
	// the object beyond the end of the gradient.
	Pad Spreads = iota

	// Reflect indicates to have a gradient repeat in reverse order
	// (offset 1 to 0) to fully fill an object beyond the end of the gradient.
	Reflect

	// Repeat indicates to have a gradient continue in its original order
	// (offset 0 to 1) by jumping back to the start to fully fill an object
	// beyond the end of the gradient.
	Repeat
)

var spreadNames = []string{"pad", "reflect", "repeat"}

func (sp Spreads) String() string {
	if sp < 0 || int(sp) >= len(spreadNames) {
		return "pad"
	}
	return spreadNames[sp]
}

// Linear is a linear gradient between two points, which renders
// as an unbounded [image.Image]. The gradient coordinates are
// normalized relative to Box, so that Start (0,0) and End (0,1)
// is a vertical gradient spanning the box.
type Linear struct {
	// Stops are the stops for the gradient; use [Linear.AddStop] to add stops.
	Stops []Stop

	// Spread is the spread method used for the gradient if it stops
	// before the end.
	Spread Spreads

	// Blend is the colorspace algorithm to use for blending colors.
	Blend colors.BlendTypes

	// Start is the starting point of the gradient, in normalized
	// units relative to Box.
	Start math32.Vector2

	// End is the ending point of the gradient, in normalized
	// units relative to Box.
	End math32.Vector2

	// Box is the bounding box of the object being filled with the gradient.
	Box math32.Box2

	// Opacity is an overall opacity multiplier applied to the stop colors.
	Opacity float32
}

// NewLinear returns a new vertical [Linear] gradient.
func NewLinear() *Linear {
	return &Linear{
		Blend:   colors.RGB,
		End:     math32.Vec2(0, 1),
		Box:     math32.B2(0, 0, 100, 100),
		Opacity: 1,
	}
}

// AddStop adds a new stop with the given color and position to the gradient.
func (l *Linear) AddStop(color color.RGBA, pos float32) *Linear {
	l.Stops = append(l.Stops, Stop{color, pos})
	return l
}

// SetStart sets the starting point of the gradient.
func (l *Linear) SetStart(start math32.Vector2) *Linear {
	l.Start = start
	return l
}

// SetEnd sets the ending point of the gradient.
func (l *Linear) SetEnd(end math32.Vector2) *Linear {
	l.End = end
	return l
}

// SetBox sets the bounding box of the object being filled.
func (l *Linear) SetBox(box math32.Box2) *Linear {
	l.Box = box
	return l
}

// FromMap returns a new [Linear] gradient running through n evenly
// spaced samples of the given color map.
func FromMap(cm *colormap.Map, n int) *Linear {
	l := NewLinear()
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		pos := float32(i) / float32(n-1)
		l.AddStop(cm.Map(pos), pos)
	}
	return l
}

// ColorModel returns the color model used by the gradient image,
// which is [color.RGBAModel].
func (l *Linear) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds returns the bounds of the gradient image, which are infinite.
func (l *Linear) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// At returns the color of the gradient at the given point.
func (l *Linear) At(x, y int) color.Color {
	sz := l.Box.Size()
	st := l.Box.Min.Add(l.Start.Mul(sz))
	ed := l.Box.Min.Add(l.End.Mul(sz))
	d := ed.Sub(st)
	denom := d.LengthSquared()
	if denom == 0 {
		return l.GetColor(0)
	}
	p := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
	pos := p.Sub(st).Dot(d) / denom
	return l.GetColor(pos)
}

// GetColor returns the color at the given normalized position along the
// gradient's stops using its spread method and blend algorithm.
func (l *Linear) GetColor(pos float32) color.RGBA {
	d := len(l.Stops)
	if d == 0 {
		return color.RGBA{}
	}
	if d == 1 {
		return l.stopColor(l.Stops[0])
	}

	// these cases can be taken care of early on
	if l.Spread == Pad {
		if pos >= 1 {
			return l.stopColor(l.Stops[d-1])
		}
		if pos <= 0 {
			return l.stopColor(l.Stops[0])
		}
	}

	modRange := float32(1)
	if l.Spread == Reflect {
		modRange = 2
	}
	mod := math32.Mod(pos, modRange)
	if mod < 0 {
		mod += modRange
	}

	place := 0 // advance to place where mod is greater than the indicated stop
	for place != len(l.Stops) && mod > l.Stops[place].Pos {
		place++
	}
	switch l.Spread {
	case Repeat:
		var s1, s2 Stop
		switch place {
		case 0, d:
			s1, s2 = l.Stops[d-1], l.Stops[0]
		default:
			s1, s2 = l.Stops[place-1], l.Stops[place]
		}
		return l.blendStops(mod, s1, s2, false)
	case Reflect:
		switch place {
		case 0:
			return l.stopColor(l.Stops[0])
		case d:
			// advance to place where mod-1 is greater than the stop indicated
			// by place in reverse of the stop slice. since this is reflect
			// spread mode, the mod interval is two, allowing the stop list to
			// be iterated in reverse before repeating the sequence.
			for place != d*2 && mod-1 > (1-l.Stops[d*2-place-1].Pos) {
				place++
			}
			switch place {
			case d:
				return l.stopColor(l.Stops[d-1])
			case d * 2:
				return l.stopColor(l.Stops[0])
			default:
				return l.blendStops(mod-1, l.Stops[d*2-place], l.Stops[d*2-place-1], true)
			}
		default:
			return l.blendStops(mod, l.Stops[place-1], l.Stops[place], false)
		}
	default: // Pad
		switch place {
		case 0:
			return l.stopColor(l.Stops[0])
		case d:
			return l.stopColor(l.Stops[d-1])
		default:
			return l.blendStops(mod, l.Stops[place-1], l.Stops[place], false)
		}
	}
}

// blendStops blends the given two gradient stops together based on the given
// position, using the gradient's blending algorithm. If flip is true, it
// flips the given position.
func (l *Linear) blendStops(pos float32, s1, s2 Stop, flip bool) color.RGBA {
	s1off := s1.Pos
	if s1.Pos > s2.Pos && !flip { // happens in repeat spread mode
		s1off--
		if pos > 1 {
			pos--
		}
	}
	if s2.Pos == s1off {
		return l.stopColor(s2)
	}
	if flip {
		pos = 1 - pos
	}
	tp := (pos - s1off) / (s2.Pos - s1off)
	return colors.ApplyOpacity(colors.Blend(l.Blend, 100*(1-tp), s1.Color, s2.Color), l.Opacity)
}

// stopColor returns the given stop color with the gradient opacity applied.
func (l *Linear) stopColor(s Stop) color.RGBA {
	return colors.ApplyOpacity(s.Color, l.Opacity)
}
