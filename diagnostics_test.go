package imagebox

import (
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribeSuppressesDefaults(t *testing.T) {
	node := NewRenderImage()
	if got, want := node.Describe(), "RenderImage\n  image: null"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestDescribe(t *testing.T) {
	node := NewRenderImage(
		WithImage(solidImage(t, 4, 2, color.NRGBA{A: 255})),
		WithDebugImageLabel("logo.png"),
		WithWidth(30),
		WithScale(2),
		WithFit(FitCover),
		WithRepeat(RepeatX),
		WithMatchTextDirection(true),
		WithTextDirection(RTL),
	)
	node.Layout(Loose(Sz(100, 100)))

	want := strings.Join([]string{
		"RenderImage",
		"  size: Size(30.0, 15.0)",
		"  image: [4×2] logo.png",
		"  width: 30",
		"  scale: 2",
		"  fit: cover",
		"  repeat: repeatX",
		"  matchTextDirection: true",
		"  textDirection: rtl",
	}, "\n")
	if diff := cmp.Diff(want, node.Describe()); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnosticsProperty(t *testing.T) {
	tests := []struct {
		name      string
		p         DiagnosticsProperty
		isDefault bool
		str       string
	}{
		{"no default", DiagnosticsProperty{Name: "image", DefaultValue: NoDefault}, false, "image: null"},
		{"if null", DiagnosticsProperty{Name: "width", IfNull: "unconstrained"}, true, "width: unconstrained"},
		{"at default", DiagnosticsProperty{Name: "scale", Value: 1.0, DefaultValue: 1.0}, true, "scale: 1"},
		{"off default", DiagnosticsProperty{Name: "fit", Value: FitNone}, false, "fit: none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsDefault(); got != tt.isDefault {
				t.Errorf("IsDefault() = %v, want %v", got, tt.isDefault)
			}
			if got := tt.p.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	var b DiagnosticPropertiesBuilder
	b.Add(DiagnosticsProperty{Name: "secret", Value: 1, DefaultValue: NoDefault, Hidden: true})
	b.Add(DiagnosticsProperty{Name: "shown", Value: 2, DefaultValue: NoDefault})
	if diff := cmp.Diff([]string{"shown: 2"}, b.Describe()); diff != "" {
		t.Errorf("Describe() mismatch (-want +got):\n%s", diff)
	}
}
