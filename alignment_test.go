package imagebox

import (
	"errors"
	"testing"
)

func TestAlignmentInscribe(t *testing.T) {
	rect := RectFromLTWH(10, 10, 100, 50)
	size := Sz(20, 10)
	tests := []struct {
		a    Alignment
		want Rect
	}{
		{AlignmentTopLeft, RectFromLTWH(10, 10, 20, 10)},
		{AlignmentCenter, RectFromLTWH(50, 30, 20, 10)},
		{AlignmentBottomRight, RectFromLTWH(90, 50, 20, 10)},
		{AlignmentCenterRight, RectFromLTWH(90, 30, 20, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			if got := tt.a.Inscribe(size, rect); got != tt.want {
				t.Errorf("Inscribe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignmentDirectionalResolve(t *testing.T) {
	tests := []struct {
		name string
		a    AlignmentGeometry
		dir  *TextDirection
		want Alignment
	}{
		{"absolute ignores direction", AlignmentTopRight, RTL.Ptr(), AlignmentTopRight},
		{"absolute without direction", AlignmentBottomLeft, nil, AlignmentBottomLeft},
		{"start ltr", AlignmentDirectionalCenterStart, LTR.Ptr(), AlignmentCenterLeft},
		{"start rtl", AlignmentDirectionalCenterStart, RTL.Ptr(), AlignmentCenterRight},
		{"end rtl", AlignmentDirectionalBottomEnd, RTL.Ptr(), AlignmentBottomLeft},
		{"custom rtl", AlignmentDirectional{Start: 0.5, Y: 0.25}, RTL.Ptr(), Alignment{X: -0.5, Y: 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Resolve(tt.dir)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := AlignmentDirectionalTopStart.Resolve(nil); !errors.Is(err, ErrContract) {
		t.Errorf("Resolve(nil) error = %v, want ErrContract", err)
	}
	if AlignmentCenter.IsDirectional() || !AlignmentDirectionalTopEnd.IsDirectional() {
		t.Error("IsDirectional() wrong")
	}
}

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    AlignmentGeometry
		want string
	}{
		{AlignmentCenter, "Alignment.center"},
		{Alignment{X: 0.5, Y: -0.5}, "Alignment(0.5, -0.5)"},
		{AlignmentDirectionalCenterEnd, "AlignmentDirectional.centerEnd"},
		{AlignmentDirectional{Start: 0.2, Y: 0}, "AlignmentDirectional(0.2, 0.0)"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
