// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	var se Settings
	se.Defaults()
	assert.True(t, se.Lines)
	assert.False(t, se.Points)
	assert.Equal(t, float32(1), se.LineWidth)
	assert.Equal(t, float32(4), se.PointSize)
	assert.Equal(t, 5, se.NTicks)
	assert.Equal(t, "viridis", se.ColorMap)
}

func TestSettingsSaveOpen(t *testing.T) {
	saved := CurrentSettings
	defer func() { CurrentSettings = saved }()

	dir := t.TempDir()
	for _, fname := range []string{"settings.toml", "settings.json", "settings.yaml"} {
		path := filepath.Join(dir, fname)
		CurrentSettings.Defaults()
		CurrentSettings.LineWidth = 2.5
		CurrentSettings.NTicks = 9
		CurrentSettings.ColorMap = "plasma"
		require.NoError(t, SaveSettings(path))

		CurrentSettings.Defaults()
		require.NoError(t, OpenSettings(path))
		assert.Equal(t, float32(2.5), CurrentSettings.LineWidth, fname)
		assert.Equal(t, 9, CurrentSettings.NTicks, fname)
		assert.Equal(t, "plasma", CurrentSettings.ColorMap, fname)
	}
}
