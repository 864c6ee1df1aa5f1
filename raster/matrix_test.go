// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"
)

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translation(3, -4)},
		{"flip", Translation(7, 0).Multiply(Scaling(-1, 1)).Multiply(Translation(-7, 0))},
		{"scale", Scaling(0.5, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert() ok = false")
			}
			x, y := tt.m.TransformPoint(1.25, -2)
			bx, by := inv.TransformPoint(x, y)
			if math.Abs(bx-1.25) > 1e-9 || math.Abs(by+2) > 1e-9 {
				t.Errorf("round trip = (%v, %v), want (1.25, -2)", bx, by)
			}
		})
	}

	if _, ok := Scaling(0, 1).Invert(); ok {
		t.Error("singular matrix inverted")
	}
}

func TestMatrixFlipAroundCentre(t *testing.T) {
	m := Translation(7, 0).Multiply(Scaling(-1, 1)).Multiply(Translation(-7, 0))
	if x, _ := m.TransformPoint(5, 0); x != 9 {
		t.Errorf("flip of 5 around 7 = %v, want 9", x)
	}
}
