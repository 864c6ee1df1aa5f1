package imagebox

import (
	"fmt"
	"strings"
)

type noDefaultValue struct{}

// NoDefault marks a property that has no default and is always shown.
var NoDefault any = noDefaultValue{}

// DiagnosticsProperty is one named value in a node description.
// Value and DefaultValue must hold comparable types; a nil Value means the
// property is unset.
type DiagnosticsProperty struct {
	Name         string
	Value        any
	DefaultValue any
	// IfNull is shown instead of "null" when Value is nil.
	IfNull string
	// Hidden properties are collected but never described.
	Hidden bool
}

// IsDefault reports whether the property holds its default value.
func (p DiagnosticsProperty) IsDefault() bool {
	return p.DefaultValue != NoDefault && p.Value == p.DefaultValue
}

// String formats the property as "name: value".
func (p DiagnosticsProperty) String() string {
	if p.Value == nil {
		if p.IfNull != "" {
			return p.Name + ": " + p.IfNull
		}
		return p.Name + ": null"
	}
	return fmt.Sprintf("%s: %v", p.Name, p.Value)
}

// DiagnosticPropertiesBuilder collects properties from DebugFillProperties.
type DiagnosticPropertiesBuilder struct {
	Properties []DiagnosticsProperty
}

// Add appends p.
func (b *DiagnosticPropertiesBuilder) Add(p DiagnosticsProperty) {
	b.Properties = append(b.Properties, p)
}

// Describe returns one line per visible, non-default property.
func (b *DiagnosticPropertiesBuilder) Describe() []string {
	var lines []string
	for _, p := range b.Properties {
		if p.Hidden || p.IsDefault() {
			continue
		}
		lines = append(lines, p.String())
	}
	return lines
}

// deref turns an optional value into an interface holding the value or nil.
func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// DebugFillProperties adds the node's configuration to b.
func (r *RenderImage) DebugFillProperties(b *DiagnosticPropertiesBuilder) {
	var img any
	if r.image != nil {
		desc := r.image.String()
		if r.debugImageLabel != "" {
			desc += " " + r.debugImageLabel
		}
		img = desc
	}
	var alignment any
	if r.alignment != nil {
		alignment = r.alignment.String()
	}

	b.Add(DiagnosticsProperty{Name: "image", Value: img, DefaultValue: NoDefault})
	b.Add(DiagnosticsProperty{Name: "width", Value: deref(r.width), IfNull: "unconstrained"})
	b.Add(DiagnosticsProperty{Name: "height", Value: deref(r.height), IfNull: "unconstrained"})
	b.Add(DiagnosticsProperty{Name: "scale", Value: r.scale, DefaultValue: 1.0})
	b.Add(DiagnosticsProperty{Name: "color", Value: deref(r.color)})
	b.Add(DiagnosticsProperty{Name: "colorBlendMode", Value: deref(r.colorBlendMode)})
	b.Add(DiagnosticsProperty{Name: "fit", Value: deref(r.fit)})
	b.Add(DiagnosticsProperty{Name: "alignment", Value: alignment, DefaultValue: AlignmentCenter.String()})
	b.Add(DiagnosticsProperty{Name: "repeat", Value: r.repeat, DefaultValue: NoRepeat})
	b.Add(DiagnosticsProperty{Name: "centerSlice", Value: deref(r.centerSlice)})
	b.Add(DiagnosticsProperty{Name: "matchTextDirection", Value: r.matchTextDirection, DefaultValue: false})
	b.Add(DiagnosticsProperty{Name: "textDirection", Value: deref(r.textDirection)})
	b.Add(DiagnosticsProperty{Name: "opacity", Value: r.opacity, DefaultValue: 1.0})
	b.Add(DiagnosticsProperty{Name: "invertColors", Value: r.invertColors, DefaultValue: false})
	b.Add(DiagnosticsProperty{Name: "filterQuality", Value: r.filterQuality, DefaultValue: FilterQualityLow})
	b.Add(DiagnosticsProperty{Name: "isAntiAlias", Value: r.isAntiAlias, DefaultValue: false})
}

// Describe returns a multi-line description listing every property that
// differs from its default.
func (r *RenderImage) Describe() string {
	var b DiagnosticPropertiesBuilder
	r.DebugFillProperties(&b)
	var sb strings.Builder
	sb.WriteString("RenderImage")
	if r.constraints != nil {
		fmt.Fprintf(&sb, "\n  size: %v", r.size)
	}
	for _, line := range b.Describe() {
		sb.WriteString("\n  ")
		sb.WriteString(line)
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (r *RenderImage) String() string {
	return r.Describe()
}
