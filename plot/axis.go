// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core and gonum.org/v1/plot:
// Copyright (c) 2024, Cogent Core. All rights reserved.
// Copyright ©2015 The Gonum Authors. All rights reserved.

package plot

import (
	"math"
	"strconv"

	"github.com/NGWi/matplotlib/math32"
	"github.com/NGWi/matplotlib/math32/minmax"
	"github.com/NGWi/matplotlib/styles/units"
)

// AxisScales are the scaling options for how values are distributed
// along an axis: Linear, Log, etc.
type AxisScales int32

const (
	// Linear is a linear axis scale.
	Linear AxisScales = iota

	// Log is a Logarithmic axis scale.
	Log

	// InverseLinear is an inverted linear axis scale.
	InverseLinear

	// InverseLog is an inverted log axis scale.
	InverseLog
)

var axisScaleNames = []string{"Linear", "Log", "InverseLinear", "InverseLog"}

func (as AxisScales) String() string {
	if as < 0 || int(as) >= len(axisScaleNames) {
		return "AxisScales(" + strconv.Itoa(int(as)) + ")"
	}
	return axisScaleNames[as]
}

// AxisStyle has style properties for the axis.
type AxisStyle struct {
	// Text has the text style parameters for the text label.
	Text TextStyle

	// Line has styling properties for the axis line.
	Line LineStyle

	// Padding between the axis line and the data. Having
	// non-zero padding ensures that the data is never drawn
	// on the axis, thus making it easier to see.
	Padding units.Value

	// NTicks is the desired number of ticks (at least 2).
	NTicks int

	// Scale specifies how values are scaled along the axis:
	// Linear, Log, Inverted
	Scale AxisScales

	// TickText has the text style for rendering tick labels,
	// and is shared for actual rendering.
	TickText TextStyle

	// TickLine has line style for drawing tick lines.
	TickLine LineStyle

	// TickLength is the length of tick lines.
	TickLength units.Value
}

func (ax *AxisStyle) Defaults() {
	ax.Line.Defaults()
	ax.Text.Defaults()
	ax.Text.Size.Dp(20)
	ax.TickText.Defaults()
	ax.TickText.Size.Dp(16)
	ax.TickText.Padding.Dp(2)
	ax.TickLine.Defaults()
	ax.TickLength.Dp(8)
	ax.NTicks = CurrentSettings.NTicks
	ax.Padding.Dp(5)
}

// Axis represents either a horizontal or vertical axis of a plot.
type Axis struct {
	// Range has the Min, Max range of values for the axis (in raw data units.)
	Range minmax.F64

	// Axis specifies which axis this is: X or Y.
	Axis math32.Dims

	// Label for the axis.
	Label Text

	// Style has the style parameters for the Axis.
	Style AxisStyle

	// TickText is used for rendering the tick text labels.
	TickText Text

	// Ticker generates the tick marks. Any tick marks returned by the Marker
	// function that are not in range of the axis are not drawn.
	Ticker Ticker

	// Scale transforms a value given in the data coordinate system
	// to the normalized coordinate system of the axis. Set according
	// to the Style.Scale option in drawConfig.
	Scale Normalizer

	// AutoRescale enables an axis to automatically adapt its minimum
	// and maximum boundaries, according to its underlying Ticker.
	AutoRescale bool

	// cached list of ticks, set in drawTicks
	ticks []Tick
}

// Defaults sets the default style parameters for given dimension.
func (ax *Axis) Defaults(dim math32.Dims) {
	ax.Style.Defaults()
	ax.Axis = dim
	if dim == math32.Y {
		ax.Label.Style.Rotation = -90
		ax.Style.TickText.Align = End
	}
	ax.Scale = LinearScale{}
	ax.Ticker = DefaultTicks{}
}

// drawConfig configures the axis scale and ticker for drawing,
// based on the Style.Scale setting.
func (ax *Axis) drawConfig() {
	switch ax.Style.Scale {
	case Linear:
		ax.Scale = LinearScale{}
		ax.Ticker = DefaultTicks{}
	case Log:
		ax.Scale = LogScale{}
		ax.Ticker = LogTicks{}
	case InverseLinear:
		ax.Scale = InvertedScale{LinearScale{}}
		ax.Ticker = DefaultTicks{}
	case InverseLog:
		ax.Scale = InvertedScale{LogScale{}}
		ax.Ticker = LogTicks{}
	}
}

// SanitizeRange ensures that the range of the axis makes sense.
func (ax *Axis) SanitizeRange() {
	if math.IsInf(ax.Range.Min, 0) {
		ax.Range.Min = 0
	}
	if math.IsInf(ax.Range.Max, 0) {
		ax.Range.Max = 0
	}
	if ax.Range.Min > ax.Range.Max {
		ax.Range.Min, ax.Range.Max = ax.Range.Max, ax.Range.Min
	}
	if ax.Range.Min == ax.Range.Max {
		ax.Range.Min--
		ax.Range.Max++
	}

	if ax.AutoRescale {
		marks := ax.Ticker.Ticks(ax.Range.Min, ax.Range.Max, ax.Style.NTicks)
		for _, t := range marks {
			ax.Range.FitValInRange(t.Value)
		}
	}
}

// Normalizer rescales values from the data coordinate system to the
// normalized coordinate system.
type Normalizer interface {
	// Normalize transforms a value x in the data coordinate system to
	// the normalized coordinate system.
	Normalize(min, max, x float64) float64
}

// LinearScale can be used as the value of an Axis.Scale function to
// set the axis to a standard linear scale.
type LinearScale struct{}

var _ Normalizer = LinearScale{}

// Normalize returns the fractional distance of x between min and max.
func (LinearScale) Normalize(min, max, x float64) float64 {
	return (x - min) / (max - min)
}

// LogScale can be used as the value of an Axis.Scale function to set
// the axis to a log scale.
type LogScale struct{}

var _ Normalizer = LogScale{}

// Normalize returns the fractional logarithmic distance of
// x between min and max.
func (LogScale) Normalize(min, max, x float64) float64 {
	if min <= 0 || max <= 0 || x <= 0 {
		panic("Values must be greater than 0 for a log scale.")
	}
	logMin := math.Log(min)
	return (math.Log(x) - logMin) / (math.Log(max) - logMin)
}

// InvertedScale can be used as the value of an Axis.Scale function to
// invert the axis using any Normalizer.
type InvertedScale struct{ Normalizer }

var _ Normalizer = InvertedScale{}

// Normalize returns a normalized [0, 1] value for the position of x.
func (is InvertedScale) Normalize(min, max, x float64) float64 {
	return 1 - is.Normalizer.Normalize(min, max, x)
}

// Norm returns the value normalized to the range between Min and Max.
func (ax *Axis) Norm(x float64) float64 {
	return ax.Scale.Normalize(ax.Range.Min, ax.Range.Max, x)
}

// Tick is a single tick mark on an axis.
type Tick struct {
	// Value is the data value marked by this Tick.
	Value float64

	// Label is the text to display at the tick mark.
	// If Label is an empty string then this Tick is a minor tick mark.
	Label string
}

// IsMinor returns true if this is a minor tick mark.
func (tk *Tick) IsMinor() bool {
	return tk.Label == ""
}

// Ticker creates Ticks in a specified range
type Ticker interface {
	// Ticks returns Ticks in a specified range, with desired number of ticks,
	// which can be ignored depending on the ticker type.
	Ticks(min, max float64, nticks int) []Tick
}

// DefaultTicks is suitable for the Ticker field of an Axis,
// it returns a reasonable default set of tick marks.
type DefaultTicks struct{}

var _ Ticker = DefaultTicks{}

// Ticks returns Ticks in the specified range.
func (DefaultTicks) Ticks(mn, mx float64, nticks int) []Tick {
	if mx <= mn {
		panic("illegal range")
	}

	labels, step, q, mag := talbotLinHanrahan(mn, mx, nticks, withinData, nil, nil, nil)
	majorDelta := step * math.Pow10(mag)
	if q == 0 {
		// Simple fall back was chosen, so
		// majorDelta is the label distance.
		majorDelta = labels[1] - labels[0]
	}

	// Choose a reasonable, but ad
	// hoc formatting for labels.
	fc := byte('f')
	var off int
	if mag < -1 || 6 < mag {
		off = 1
		fc = 'g'
	}
	if math.Trunc(q) != q {
		off += 2
	}
	prec := min(off+mag, -mag)
	var ticks []Tick
	for _, v := range labels {
		ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, fc, prec, 64)})
	}

	var minorDelta float64
	// See talbotLinHanrahan for the values used here.
	switch step {
	case 1, 2.5:
		minorDelta = majorDelta / 5
	case 2, 3, 4, 5:
		minorDelta = majorDelta / step
	default:
		if majorDelta/2 < dlamchP {
			return ticks
		}
		minorDelta = majorDelta / 2
	}

	// Find the first minor tick not greater
	// than the lowest data value.
	var i float64
	for labels[0]+(i-1)*minorDelta > mn {
		i--
	}
	// Add ticks at minorDelta intervals when
	// they are not within minorDelta/2 of a
	// labelled tick.
	for {
		val := labels[0] + i*minorDelta
		if val > mx {
			break
		}
		found := false
		for _, t := range ticks {
			if math.Abs(t.Value-val) < minorDelta/2 {
				found = true
			}
		}
		if !found {
			ticks = append(ticks, Tick{Value: val})
		}
		i++
	}

	return ticks
}

// LogTicks is suitable for the Ticker field of an Axis,
// it returns tick marks suitable for a log-scale axis.
type LogTicks struct {
	// Prec specifies the precision of tick rendering
	// according to the documentation for strconv.FormatFloat.
	Prec int
}

var _ Ticker = LogTicks{}

// Ticks returns Ticks in a specified range
func (t LogTicks) Ticks(min, max float64, nticks int) []Tick {
	if min <= 0 || max <= 0 {
		panic("Values must be greater than 0 for a log scale.")
	}

	val := math.Pow10(int(math.Log10(min)))
	max = math.Pow10(int(math.Ceil(math.Log10(max))))
	var ticks []Tick
	for val < max {
		for i := 1; i < 10; i++ {
			if i == 1 {
				ticks = append(ticks, Tick{Value: val, Label: formatFloatTick(val, t.Prec)})
			}
			ticks = append(ticks, Tick{Value: val * float64(i)})
		}
		val *= 10
	}
	ticks = append(ticks, Tick{Value: val, Label: formatFloatTick(val, t.Prec)})

	return ticks
}

// ConstantTicks is suitable for the Ticker field of an Axis.
// This function returns the given set of ticks.
type ConstantTicks []Tick

var _ Ticker = ConstantTicks{}

// Ticks returns Ticks in a specified range
func (ts ConstantTicks) Ticks(float64, float64, int) []Tick {
	return ts
}

// formatFloatTick returns a g-formated string representation of v
// to the specified precision.
func formatFloatTick(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
