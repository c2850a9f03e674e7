// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core and gonum.org/v1/plot:
// Copyright (c) 2024, Cogent Core. All rights reserved.
// Copyright ©2015 The Gonum Authors. All rights reserved.

package plot

import (
	"image"

	"github.com/NGWi/matplotlib/math32"
)

// drawConfig configures everything for drawing: applies the styles,
// ensures the rendering context matches the target size, and updates
// the axis ranges from the plotter data.
func (pt *Plot) drawConfig() {
	pt.applyStyle()
	pt.Resize(pt.Size)
	pt.X.drawConfig()
	pt.Y.drawConfig()
	pt.UpdateRange()
	pt.Paint.ToDots()
}

// Draw draws the plot to its Pixels image, at its current Size.
// Plotters are drawn in the order in which they were added to the plot.
func (pt *Plot) Draw() {
	pt.drawConfig()
	pc := pt.Paint
	ptw := float32(pt.Size.X)

	ptb := image.Rectangle{Max: pt.Size}
	pc.PushBounds(ptb)

	if pt.Style.Background != nil {
		pc.BlitBox(math32.Vector2{}, math32.FromPoint(pt.Size), pt.Style.Background)
	}

	if pt.Title.Text != "" {
		pt.Title.Config(pt)
		pos := pt.Title.PosX(ptw)
		pad := pt.Title.Style.Padding.Dots
		pos.Y = pad
		pt.Title.Draw(pt, pos)
		th := pt.Title.Size().Y + 2*pad
		ptb.Min.Y += int(math32.Ceil(th))
	}

	ywidth := pt.Y.size(pt)
	xheight := pt.X.size(pt)

	pc.PushBounds(ptb)
	pt.X.drawX(pt, ywidth)
	pt.Y.drawY(pt, xheight)
	pc.PopBounds()

	db := ptb
	db.Min.X += ywidth
	db.Max.Y -= xheight
	pt.PlotBox.SetFromRect(db)

	pc.PushBounds(db)
	for _, plt := range pt.Plotters {
		plt.Plot(pt)
	}
	pt.Legend.draw(pt)
	pc.PopBounds()

	pc.PopBounds()
}

////////////////////////////////////////////////////////////////
//		Axis

// drawTicks returns true if the tick marks should be drawn.
func (ax *Axis) drawTicks() bool {
	return ax.Style.TickLine.Width.Value > 0 && ax.Style.TickLength.Value > 0
}

// size returns the render size of the axis: the height of the X axis
// or the width of the Y axis. It also generates the ticks.
func (ax *Axis) size(pt *Plot) int {
	uc := &pt.Paint.UnitContext
	ax.Style.Padding.ToDots(uc)
	ax.Style.TickLength.ToDots(uc)
	ax.Style.Line.Width.ToDots(uc)
	ax.Style.TickLine.Width.ToDots(uc)
	ax.TickText.Style = ax.Style.TickText
	ax.ticks = ax.Ticker.Ticks(ax.Range.Min, ax.Range.Max, ax.Style.NTicks)
	if ax.Axis == math32.X {
		return ax.sizeX(pt)
	}
	return ax.sizeY(pt)
}

func (ax *Axis) sizeX(pt *Plot) int {
	h := float32(0)
	if ax.Label.Text != "" { // We assume that the label isn't rotated.
		ax.Label.Config(pt)
		h += ax.Label.Size().Y
		h += ax.Label.Style.Padding.Dots
	}

	if len(ax.ticks) > 0 {
		if ax.drawTicks() {
			h += ax.Style.TickLength.Dots
		}
		ax.TickText.Text = ax.longestTickLabel()
		if ax.TickText.Text != "" {
			ax.TickText.Config(pt)
			h += ax.TickText.Size().Y
			h += ax.TickText.Style.Padding.Dots
		}
	}
	h += ax.Style.Line.Width.Dots / 2
	h += ax.Style.Padding.Dots

	return int(math32.Ceil(h))
}

func (ax *Axis) sizeY(pt *Plot) int {
	w := float32(0)
	if ax.Label.Text != "" { // Label is rotated, consuming its height.
		ax.Label.Config(pt)
		w += ax.Label.Size().X
		w += ax.Label.Style.Padding.Dots
	}

	if len(ax.ticks) > 0 {
		if ax.drawTicks() {
			w += ax.Style.TickLength.Dots
		}
		ax.TickText.Text = ax.longestTickLabel()
		if ax.TickText.Text != "" {
			ax.TickText.Config(pt)
			w += ax.TickText.Size().X
			w += ax.TickText.Style.Padding.Dots
		}
	}
	w += ax.Style.Line.Width.Dots / 2
	w += ax.Style.Padding.Dots

	return int(math32.Ceil(w))
}

func (ax *Axis) longestTickLabel() string {
	lst := ""
	for _, tk := range ax.ticks {
		if len(tk.Label) > len(lst) {
			lst = tk.Label
		}
	}
	return lst
}

// drawX draws the horizontal axis along the bottom of the current
// bounds, with the axis span starting after the given Y axis width.
func (ax *Axis) drawX(pt *Plot, ywidth int) {
	pc := pt.Paint
	ab := pc.Bounds
	ab.Min.X += ywidth
	axw := float32(ab.Size().X)

	if ax.Label.Text != "" {
		ax.Label.Config(pt)
		pos := ax.Label.PosX(axw)
		pos.X += float32(ab.Min.X)
		th := ax.Label.Size().Y
		pos.Y = float32(ab.Max.Y) - th
		ax.Label.Draw(pt, pos)
		ab.Max.Y -= int(math32.Ceil(th + ax.Label.Style.Padding.Dots))
	}

	tickHt := float32(0)
	for _, t := range ax.ticks {
		x := axw * float32(ax.Norm(t.Value))
		if x < 0 || x > axw || t.IsMinor() {
			continue
		}
		ax.TickText.Text = t.Label
		ax.TickText.Config(pt)
		pos := ax.TickText.PosX(0)
		pos.X += x + float32(ab.Min.X)
		tickHt = ax.TickText.Size().Y + ax.TickText.Style.Padding.Dots
		pos.Y = float32(ab.Max.Y) - tickHt
		ax.TickText.Draw(pt, pos)
	}
	if tickHt > 0 {
		ab.Max.Y -= int(math32.Ceil(tickHt))
	}

	if len(ax.ticks) > 0 && ax.drawTicks() {
		ln := ax.Style.TickLength.Dots
		for _, t := range ax.ticks {
			x := axw * float32(ax.Norm(t.Value))
			if x < 0 || x > axw {
				continue
			}
			x += float32(ab.Min.X)
			ax.Style.TickLine.Draw(pt, math32.Vec2(x, float32(ab.Max.Y)), math32.Vec2(x, float32(ab.Max.Y)-ln))
		}
		ab.Max.Y -= int(math32.Ceil(ln))
	}

	ax.Style.Line.Draw(pt, math32.Vec2(float32(ab.Min.X), float32(ab.Max.Y)), math32.Vec2(float32(ab.Max.X), float32(ab.Max.Y)))
}

// drawY draws the vertical axis along the left of the current bounds,
// with the axis span ending above the given X axis height.
func (ax *Axis) drawY(pt *Plot, xheight int) {
	pc := pt.Paint
	ab := pc.Bounds
	ab.Max.Y -= xheight
	axh := float32(ab.Size().Y)

	if ax.Label.Text != "" {
		ax.Label.Config(pt)
		pos := math32.Vec2(float32(ab.Min.X), float32(ab.Min.Y)+0.5*(axh-ax.Label.Size().Y))
		ax.Label.Draw(pt, pos)
		ab.Min.X += int(math32.Ceil(ax.Label.Size().X + ax.Label.Style.Padding.Dots))
	}

	tickWd := float32(0)
	if len(ax.ticks) > 0 {
		ax.TickText.Text = ax.longestTickLabel()
		if ax.TickText.Text != "" {
			ax.TickText.Config(pt)
			tickWd = ax.TickText.Size().X + ax.TickText.Style.Padding.Dots
			for _, t := range ax.ticks {
				y := axh * float32(1-ax.Norm(t.Value))
				if y < 0 || y > axh || t.IsMinor() {
					continue
				}
				ax.TickText.Text = t.Label
				ax.TickText.Config(pt)
				pos := ax.TickText.PosX(tickWd - ax.TickText.Style.Padding.Dots)
				pos.X += float32(ab.Min.X)
				pos.Y = float32(ab.Min.Y) + y - 0.5*ax.TickText.Size().Y
				ax.TickText.Draw(pt, pos)
			}
			ab.Min.X += int(math32.Ceil(tickWd))
		}
	}

	if len(ax.ticks) > 0 && ax.drawTicks() {
		ln := ax.Style.TickLength.Dots
		for _, t := range ax.ticks {
			y := axh * float32(1-ax.Norm(t.Value))
			if y < 0 || y > axh {
				continue
			}
			yy := float32(ab.Min.Y) + y
			ax.Style.TickLine.Draw(pt, math32.Vec2(float32(ab.Min.X), yy), math32.Vec2(float32(ab.Min.X)+ln, yy))
		}
		ab.Min.X += int(math32.Ceil(ln))
	}

	ax.Style.Line.Draw(pt, math32.Vec2(float32(ab.Min.X), float32(ab.Min.Y)), math32.Vec2(float32(ab.Min.X), float32(ab.Max.Y)))
}

////////////////////////////////////////////////////////////////
//		Legend

// draw draws the legend within the current plot bounds.
func (lg *Legend) draw(pt *Plot) {
	if len(lg.Entries) == 0 {
		return
	}
	pc := pt.Paint
	uc := &pc.UnitContext
	ptb := pc.Bounds

	lg.Style.ThumbnailWidth.ToDots(uc)
	lg.Style.Position.XOffs.ToDots(uc)
	lg.Style.Position.YOffs.ToDots(uc)

	var ltxt Text
	ltxt.Defaults()
	ltxt.Style = lg.Style.Text
	tw := lg.Style.ThumbnailWidth.Dots
	maxTw, rowH := float32(0), float32(0)
	for _, e := range lg.Entries {
		ltxt.Text = e.Text
		ltxt.Config(pt)
		maxTw = math32.Max(maxTw, ltxt.Size().X)
		rowH = math32.Max(rowH, ltxt.Size().Y)
	}
	pad := ltxt.Style.Padding.Dots
	w := tw + pad + maxTw + 2*pad
	h := float32(len(lg.Entries))*(rowH+pad) + pad

	pos := math32.Vec2(float32(ptb.Min.X), float32(ptb.Min.Y))
	if !lg.Style.Position.Left {
		pos.X = float32(ptb.Max.X) - w
	}
	if !lg.Style.Position.Top {
		pos.Y = float32(ptb.Max.Y) - h
	}
	pos.X += lg.Style.Position.XOffs.Dots
	pos.Y += lg.Style.Position.YOffs.Dots

	if lg.Style.Fill != nil {
		pc.FillStyle.Color = lg.Style.Fill
		pc.DrawRectangle(pos.X, pos.Y, w, h)
		pc.Fill()
	}

	cp := pos.Add(math32.Vec2(pad, pad))
	for _, e := range lg.Entries {
		tb := image.Rect(int(cp.X), int(cp.Y), int(cp.X+tw), int(cp.Y+rowH))
		pc.PushBounds(tb)
		for _, t := range e.Thumbs {
			t.Thumbnail(pt)
		}
		pc.PopBounds()
		ltxt.Text = e.Text
		ltxt.Config(pt)
		ltxt.Draw(pt, math32.Vec2(cp.X+tw+pad, cp.Y))
		cp.Y += rowH + pad
	}
}
