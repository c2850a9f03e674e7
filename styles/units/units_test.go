// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2018, Cogent Core. All rights reserved.

package units

import (
	"fmt"
	"testing"

	"github.com/NGWi/matplotlib/base/tolassert"
)

func TestToDots(t *testing.T) {
	tests := map[Units]float32{
		UnitPx:  83.33333,
		UnitDp:  50,
		UnitRem: 800,
		UnitEm:  800,
		UnitCm:  3149.6064,
		UnitMm:  314.96063,
		UnitQ:   78.74016,
		UnitIn:  8000,
		UnitPc:  1333.3333,
		UnitPt:  111.111115,
		UnitDot: 50,
	}
	var uc Context
	uc.Defaults()
	for unit, want := range tests {
		v := New(50, unit)
		have := v.ToDots(&uc)
		tolassert.Equal(t, want, have, unit)
	}
}

func TestValueConvert(t *testing.T) {
	var ctxt Context
	ctxt.Defaults()
	for _, un := range UnitsValues() {
		v1 := New(1.0, un)
		s1 := fmt.Sprintf("%v = %v dots", v1, v1.ToDots(&ctxt))
		v2 := StringToValue("1.0" + un.String())
		s2 := fmt.Sprintf("%v = %v dots", v2, v2.ToDots(&ctxt))
		if s1 != s2 {
			t.Errorf("strings don't match: %v != %v\n", s1, s2)
		}
	}
	v1 := In(1)
	v2 := v1.Convert(UnitPx, &ctxt)
	s1 := fmt.Sprintf("%v dots\n", v1.ToDots(&ctxt))
	s2 := fmt.Sprintf("%v dots\n", v2.ToDots(&ctxt))
	if s1 != s2 {
		t.Errorf("strings don't match: %v != %v\n", s1, s2)
	}

	tolassert.Equal(t, 72, ctxt.Convert(1, UnitIn, UnitPt))
	tolassert.Equal(t, 25.4/72.0, ctxt.Convert(1, UnitPt, UnitMm))
}
