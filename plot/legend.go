// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core and gonum.org/v1/plot:
// Copyright (c) 2024, Cogent Core. All rights reserved.
// Copyright ©2015 The Gonum Authors. All rights reserved.

package plot

import (
	"image"

	"github.com/NGWi/matplotlib/colors"
	"github.com/NGWi/matplotlib/styles/units"
)

// LegendStyle has the styling properties for the plot legend.
type LegendStyle struct {
	// Column is for table-based plotting, specifying the column
	// with the legend values.
	Column string

	// Text is the style given to the legend entry texts.
	Text TextStyle

	// Position specifies where to put the legend.
	Position LegendPosition

	// ThumbnailWidth is the width of legend thumbnails.
	ThumbnailWidth units.Value

	// Fill specifies the background fill color for the legend box,
	// if non-nil.
	Fill image.Image
}

func (ls *LegendStyle) Defaults() {
	ls.Text.Defaults()
	ls.Text.Padding.Dp(2)
	ls.Text.Size.Dp(20)
	ls.Text.Align = Start
	ls.Position.Defaults()
	ls.ThumbnailWidth.Pt(20)
	ls.Fill = colors.Uniform(colors.ApplyOpacity(colors.White, 0.75))
}

// LegendPosition specifies where to put the legend.
type LegendPosition struct {
	// Top and Left specify the location of the legend.
	Top, Left bool

	// XOffs and YOffs are added to the legend position.
	XOffs, YOffs units.Value
}

func (lg *LegendPosition) Defaults() {
	lg.Top = true
}

// A Legend gives a description of the meaning of different data elements of
// the plot. Each legend entry has a name and a thumbnail, where the thumbnail
// shows a small sample of the display style of the corresponding data.
type Legend struct {
	// Style has the legend styling parameters.
	Style LegendStyle

	// Entries are all of the LegendEntries described by this legend.
	Entries []LegendEntry
}

func (lg *Legend) Defaults() {
	lg.Style.Defaults()
}

// Add adds an entry to the legend with the given name.
// The entry's thumbnail is drawn as the composite of all of the
// thumbnails.
func (lg *Legend) Add(name string, thumbs ...Thumbnailer) {
	lg.Entries = append(lg.Entries, LegendEntry{Text: name, Thumbs: thumbs})
}

// LegendForPlotter returns the legend Text for given plotter,
// if it exists as a Thumbnailer in the legend entries.
func (lg *Legend) LegendForPlotter(plt Plotter) string {
	for _, e := range lg.Entries {
		for _, tn := range e.Thumbs {
			if tp, isp := tn.(Plotter); isp && tp == plt {
				return e.Text
			}
		}
	}
	return ""
}

// A LegendEntry represents a single line of a legend, it
// has a name and an icon.
type LegendEntry struct {
	// Text is the text associated with this entry.
	Text string

	// Thumbs is a slice of all of the thumbnails styles
	Thumbs []Thumbnailer
}

// Thumbnailer wraps the Thumbnail method, which draws the small
// image in a legend representing the style of data.
type Thumbnailer interface {
	// Thumbnail draws an thumbnail representing a legend entry.
	// The thumbnail will usually show a smaller representation
	// of the style used to plot the corresponding data.
	Thumbnail(pt *Plot)
}
