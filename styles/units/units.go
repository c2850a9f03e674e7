// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2018, Cogent Core. All rights reserved.

// Package units supports full range of CSS-style size units: px, dp, em etc.
// The unit is stored along with a value, and can be converted at a later point
// into a raw display pixel value using the Context which contains all the
// necessary reference values to perform the conversion.
package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NGWi/matplotlib/base/errors"
)

// Units is a list of the supported units of measure.
type Units int32

const (
	// UnitDp is density-independent pixels, 1/160th of an inch.
	UnitDp Units = iota

	// UnitPx is logical pixels, 1/96th of an inch.
	UnitPx

	// UnitEm is the font size of the element.
	UnitEm

	// UnitRem is the font size of the root element.
	UnitRem

	// UnitPt is points, 1/72th of an inch.
	UnitPt

	// UnitPc is picas, 1/6th of an inch.
	UnitPc

	// UnitIn is inches.
	UnitIn

	// UnitCm is centimeters, 1/2.54th of an inch.
	UnitCm

	// UnitMm is millimeters, 1/25.4th of an inch.
	UnitMm

	// UnitQ is quarter-millimeters, 1/101.6th of an inch.
	UnitQ

	// UnitDot is actual real display pixels, which are generally only used
	// internally.
	UnitDot

	// UnitsN is the number of units.
	UnitsN
)

var unitNames = [UnitsN]string{"dp", "px", "em", "rem", "pt", "pc", "in", "cm", "mm", "q", "dot"}

func (un Units) String() string {
	if un < 0 || un >= UnitsN {
		return "dp"
	}
	return unitNames[un]
}

// SetString sets the unit from the given string name, returning an error
// if the name is not recognized.
func (un *Units) SetString(str string) error {
	for i, nm := range unitNames {
		if nm == str {
			*un = Units(i)
			return nil
		}
	}
	return errors.Newf("units.Units: name %q not recognized", str)
}

// UnitsValues returns all the available units.
func UnitsValues() []Units {
	vals := make([]Units, UnitsN)
	for i := range vals {
		vals[i] = Units(i)
	}
	return vals
}

// DpPerInch is the number of density-independent pixels per inch.
const DpPerInch = 160

// PxPerInch is the number of logical pixels per inch.
const PxPerInch = 96

// Context specifies everything about the current context necessary for
// converting the number of any given unit type into raw display dots.
type Context struct {
	// DPI is dots-per-inch of the display.
	DPI float32

	// FontEm is the size of the font of the element in dots.
	FontEm float32

	// FontRem is the size of the font of the root element in dots.
	FontRem float32
}

// Defaults sets default values: 160 DPI and 16dp fonts.
func (uc *Context) Defaults() {
	uc.DPI = DpPerInch
	uc.FontEm = 16 * uc.Dp(1)
	uc.FontRem = uc.FontEm
}

// NewContext returns a new [Context] with the given DPI,
// and default font sizes.
func NewContext(dpi float32) *Context {
	uc := &Context{}
	uc.Defaults()
	uc.SetDPI(dpi)
	return uc
}

// SetDPI sets the DPI, updating the font sizes proportionally.
func (uc *Context) SetDPI(dpi float32) {
	if dpi <= 0 {
		dpi = DpPerInch
	}
	uc.DPI = dpi
	uc.FontEm = 16 * uc.Dp(1)
	uc.FontRem = uc.FontEm
}

// Dp returns the dots for the given number of density-independent pixels.
func (uc *Context) Dp(val float32) float32 {
	return val * uc.DPI / DpPerInch
}

// Px returns the dots for the given number of logical pixels.
func (uc *Context) Px(val float32) float32 {
	return val * uc.DPI / PxPerInch
}

// ToDots converts the given value from the given unit into raw display dots.
func (uc *Context) ToDots(val float32, un Units) float32 {
	if uc.DPI == 0 {
		uc.Defaults()
	}
	switch un {
	case UnitDp:
		return uc.Dp(val)
	case UnitPx:
		return uc.Px(val)
	case UnitEm:
		return val * uc.FontEm
	case UnitRem:
		return val * uc.FontRem
	case UnitPt:
		return val * uc.DPI / 72
	case UnitPc:
		return val * uc.DPI / 6
	case UnitIn:
		return val * uc.DPI
	case UnitCm:
		return val * uc.DPI / 2.54
	case UnitMm:
		return val * uc.DPI / 25.4
	case UnitQ:
		return val * uc.DPI / 101.6
	case UnitDot:
		return val
	}
	return uc.Dp(val)
}

// Convert converts the given value from one unit to another,
// given the conversion context.
func (uc *Context) Convert(val float32, from, to Units) float32 {
	dots := uc.ToDots(val, from)
	todots := uc.ToDots(1, to)
	if todots == 0 {
		return dots
	}
	return dots / todots
}

// Value is a value with a unit type, and the converted raw dots value.
type Value struct {
	// Value is the value in terms of the specified unit.
	Value float32

	// Unit is the unit used for the value.
	Unit Units

	// Dots is the computed value in raw pixels (dots in DPI).
	Dots float32
}

// New returns a new value with the given unit.
func New(val float32, un Units) Value {
	return Value{Value: val, Unit: un}
}

// Dp returns a new density-independent pixel value.
func Dp(val float32) Value {
	return Value{Value: val, Unit: UnitDp}
}

// Px returns a new logical pixel value.
func Px(val float32) Value {
	return Value{Value: val, Unit: UnitPx}
}

// Em returns a new em value.
func Em(val float32) Value {
	return Value{Value: val, Unit: UnitEm}
}

// Rem returns a new rem value.
func Rem(val float32) Value {
	return Value{Value: val, Unit: UnitRem}
}

// Pt returns a new points value.
func Pt(val float32) Value {
	return Value{Value: val, Unit: UnitPt}
}

// Pc returns a new picas value.
func Pc(val float32) Value {
	return Value{Value: val, Unit: UnitPc}
}

// In returns a new inches value.
func In(val float32) Value {
	return Value{Value: val, Unit: UnitIn}
}

// Cm returns a new centimeters value.
func Cm(val float32) Value {
	return Value{Value: val, Unit: UnitCm}
}

// Mm returns a new millimeters value.
func Mm(val float32) Value {
	return Value{Value: val, Unit: UnitMm}
}

// Q returns a new quarter-millimeters value.
func Q(val float32) Value {
	return Value{Value: val, Unit: UnitQ}
}

// Dot returns a new value in raw display dots.
func Dot(val float32) Value {
	return Value{Value: val, Unit: UnitDot, Dots: val}
}

// Set sets the value and unit of this value.
func (v *Value) Set(val float32, un Units) {
	v.Value = val
	v.Unit = un
}

// Zero sets the value to zero.
func (v *Value) Zero() {
	v.Value = 0
	v.Unit = UnitDp
	v.Dots = 0
}

// Dp sets the value in terms of density-independent pixels.
func (v *Value) Dp(val float32) {
	v.Set(val, UnitDp)
}

// Px sets the value in terms of logical pixels.
func (v *Value) Px(val float32) {
	v.Set(val, UnitPx)
}

// Pt sets the value in terms of points.
func (v *Value) Pt(val float32) {
	v.Set(val, UnitPt)
}

// Em sets the value in terms of the element font size.
func (v *Value) Em(val float32) {
	v.Set(val, UnitEm)
}

// ToDots converts value to raw display pixels (dots as in DPI), setting also
// the Dots field.
func (v *Value) ToDots(uc *Context) float32 {
	v.Dots = uc.ToDots(v.Value, v.Unit)
	return v.Dots
}

// Convert converts value to the given units, given the unit context.
func (v Value) Convert(to Units, uc *Context) Value {
	dots := v.ToDots(uc)
	return Value{Value: dots / uc.ToDots(1, to), Unit: to, Dots: dots}
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.Value, v.Unit)
}

// StringToValue converts a string to a value representation.
func StringToValue(str string) Value {
	v := Value{}
	v.SetString(str)
	return v
}

// SetString sets the value from the given string, interpreting a
// trailing unit name (defaulting to dp if none is present).
func (v *Value) SetString(str string) error {
	str = strings.TrimSpace(str)
	if str == "" {
		return errors.New("units.Value.SetString: empty string")
	}
	un := UnitDp
	numStr := str
	for i := UnitsN - 1; i >= 0; i-- {
		nm := unitNames[i]
		if strings.HasSuffix(str, nm) {
			un = Units(i)
			numStr = strings.TrimSpace(strings.TrimSuffix(str, nm))
			break
		}
	}
	val, err := strconv.ParseFloat(numStr, 32)
	if err != nil {
		return errors.Newf("units.Value.SetString: could not parse number in %q: %w", str, err)
	}
	v.Set(float32(val), un)
	return nil
}
