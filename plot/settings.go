// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"path/filepath"
	"strings"

	"github.com/NGWi/matplotlib/base/errors"
	"github.com/NGWi/matplotlib/base/iox/jsonx"
	"github.com/NGWi/matplotlib/base/iox/tomlx"
	"github.com/NGWi/matplotlib/base/iox/yamlx"
)

// Settings are the overall default settings for plots, which can be
// saved and loaded from settings files. New plots start from
// [CurrentSettings]; fields set here act as the defaults that element
// and plot styles build on.
type Settings struct {

	// Lines specifies whether lines are plotted by default,
	// for elements that can plot lines.
	Lines bool `default:"true"`

	// Points specifies whether points are plotted by default,
	// for elements that can plot points.
	Points bool

	// LineWidth is the default width of lines, in points.
	LineWidth float32 `default:"1"`

	// PointSize is the default size of points, in points.
	PointSize float32 `default:"4"`

	// PointShape is the default shape used to draw points.
	PointShape Shapes

	// NTicks is the default desired number of axis ticks.
	NTicks int `default:"5"`

	// ColorMap is the name of the default color map for
	// value-mapped colors, from [colormap.AvailableMaps].
	ColorMap string `default:"viridis"`

	// Scale multiplies the plot DPI value, to change the overall
	// scale of the rendered plot.
	Scale float32 `default:"1"`
}

// Defaults sets default settings values.
func (se *Settings) Defaults() {
	se.Lines = true
	se.Points = false
	se.LineWidth = 1
	se.PointSize = 4
	se.PointShape = Ring
	se.NTicks = 5
	se.ColorMap = "viridis"
	se.Scale = 1
}

// CurrentSettings are the current default settings for plots.
// See [OpenSettings] and [SaveSettings] for persisting them.
var CurrentSettings = func() Settings {
	var se Settings
	se.Defaults()
	return se
}()

// OpenSettings opens [CurrentSettings] from the given filename, with the
// format determined by the extension: .json and .yaml / .yml are
// supported, with TOML the default.
func OpenSettings(filename string) error {
	se := &CurrentSettings
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return errors.Log(jsonx.Open(se, filename))
	case ".yaml", ".yml":
		return errors.Log(yamlx.Open(se, filename))
	default:
		return errors.Log(tomlx.Open(se, filename))
	}
}

// SaveSettings saves [CurrentSettings] to the given filename, with the
// format determined by the extension: .json and .yaml / .yml are
// supported, with TOML the default.
func SaveSettings(filename string) error {
	se := &CurrentSettings
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return errors.Log(jsonx.SaveIndent(se, filename))
	case ".yaml", ".yml":
		return errors.Log(yamlx.Save(se, filename))
	default:
		return errors.Log(tomlx.Save(se, filename))
	}
}
