package imagebox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestApplyBoxFit(t *testing.T) {
	tests := []struct {
		name   string
		fit    BoxFit
		input  Size
		output Size
		want   FittedSizes
	}{
		{"fill", FitFill, Sz(4, 2), Sz(8, 8), FittedSizes{Sz(4, 2), Sz(8, 8)}},
		{"contain", FitContain, Sz(4, 2), Sz(8, 8), FittedSizes{Sz(4, 2), Sz(8, 4)}},
		{"contain wide output", FitContain, Sz(4, 2), Sz(8, 2), FittedSizes{Sz(4, 2), Sz(4, 2)}},
		{"cover", FitCover, Sz(4, 2), Sz(8, 8), FittedSizes{Sz(2, 2), Sz(8, 8)}},
		{"cover wide output", FitCover, Sz(4, 4), Sz(8, 2), FittedSizes{Sz(4, 1), Sz(8, 2)}},
		{"fitWidth", FitFitWidth, Sz(4, 2), Sz(8, 8), FittedSizes{Sz(4, 2), Sz(8, 4)}},
		{"fitWidth wide output", FitFitWidth, Sz(4, 4), Sz(8, 2), FittedSizes{Sz(4, 1), Sz(8, 2)}},
		{"fitHeight", FitFitHeight, Sz(4, 2), Sz(8, 8), FittedSizes{Sz(2, 2), Sz(8, 8)}},
		{"fitHeight wide output", FitFitHeight, Sz(4, 4), Sz(8, 2), FittedSizes{Sz(4, 4), Sz(2, 2)}},
		{"none crops", FitNone, Sz(4, 2), Sz(3, 8), FittedSizes{Sz(3, 2), Sz(3, 2)}},
		{"scaleDown fits", FitScaleDown, Sz(4, 2), Sz(8, 8), FittedSizes{Sz(4, 2), Sz(4, 2)}},
		{"scaleDown shrinks", FitScaleDown, Sz(16, 8), Sz(8, 8), FittedSizes{Sz(16, 8), Sz(8, 4)}},
		{"empty input", FitFill, Sz(0, 2), Sz(8, 8), FittedSizes{}},
		{"empty output", FitContain, Sz(4, 2), Sz(8, 0), FittedSizes{}},
		{"negative output", FitCover, Sz(4, 2), Sz(-1, 8), FittedSizes{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyBoxFit(tt.fit, tt.input, tt.output)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ApplyBoxFit(%v, %v, %v) mismatch (-want +got):\n%s", tt.fit, tt.input, tt.output, diff)
			}
		})
	}
}

func TestApplyBoxFitFractional(t *testing.T) {
	got := ApplyBoxFit(FitContain, Sz(3, 7), Sz(10, 10))
	want := FittedSizes{Source: Sz(3, 7), Destination: Sz(30.0/7.0, 10)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("contain mismatch (-want +got):\n%s", diff)
	}

	got = ApplyBoxFit(FitScaleDown, Sz(30, 70), Sz(10, 10))
	want = FittedSizes{Source: Sz(30, 70), Destination: Sz(30.0/7.0, 10)}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("scaleDown mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxFitString(t *testing.T) {
	names := map[BoxFit]string{
		FitFill:      "fill",
		FitContain:   "contain",
		FitCover:     "cover",
		FitFitWidth:  "fitWidth",
		FitFitHeight: "fitHeight",
		FitNone:      "none",
		FitScaleDown: "scaleDown",
		BoxFit(99):   "unknown",
	}
	for fit, want := range names {
		if got := fit.String(); got != want {
			t.Errorf("BoxFit(%d).String() = %q, want %q", fit, got, want)
		}
	}
}

func TestImageRepeatAxes(t *testing.T) {
	tests := []struct {
		repeat ImageRepeat
		x, y   bool
	}{
		{NoRepeat, false, false},
		{Repeat, true, true},
		{RepeatX, true, false},
		{RepeatY, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.repeat.String(), func(t *testing.T) {
			if !tt.repeat.Valid() {
				t.Errorf("%v.Valid() = false", tt.repeat)
			}
			if got := tt.repeat.RepeatsX(); got != tt.x {
				t.Errorf("RepeatsX() = %v, want %v", got, tt.x)
			}
			if got := tt.repeat.RepeatsY(); got != tt.y {
				t.Errorf("RepeatsY() = %v, want %v", got, tt.y)
			}
		})
	}
	if ImageRepeat(4).Valid() {
		t.Error("ImageRepeat(4).Valid() = true, want false")
	}
}
