package imagebox

import (
	"fmt"
	"math"
)

// Infinity is the unbounded extent used by constraints.
var Infinity = math.Inf(1)

// Offset is a 2D translation or point in logical pixels.
type Offset struct {
	X, Y float64
}

// Pt is a convenience function to create an Offset.
func Pt(x, y float64) Offset {
	return Offset{X: x, Y: y}
}

// Add returns o translated by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o minus other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// String implements fmt.Stringer.
func (o Offset) String() string {
	return fmt.Sprintf("Offset(%.1f, %.1f)", o.X, o.Y)
}

// Size is a width and height in logical pixels.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Scale multiplies both dimensions by f.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Div divides both dimensions by f.
func (s Size) Div(f float64) Size {
	return Size{Width: s.Width / f, Height: s.Height / f}
}

// Add returns the component-wise sum.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// AspectRatio returns width / height.
func (s Size) AspectRatio() float64 {
	return s.Width / s.Height
}

// Contains reports whether p lies in [0, Width) x [0, Height).
func (s Size) Contains(p Offset) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("Size(%.1f, %.1f)", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromLTWH creates a rectangle from its top-left corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// RectFromLTRB creates a rectangle from its edges.
func RectFromLTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromOffsetSize places size at origin.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Offset { return Offset{X: r.Left, Y: r.Top} }

// Center returns the centre point.
func (r Rect) Center() Offset {
	return Offset{X: r.Left + r.Width()/2, Y: r.Top + r.Height()/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Shift translates the rectangle by o.
func (r Rect) Shift(o Offset) Rect {
	return Rect{Left: r.Left + o.X, Top: r.Top + o.Y, Right: r.Right + o.X, Bottom: r.Bottom + o.Y}
}

// Scale multiplies every edge by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{Left: r.Left * f, Top: r.Top * f, Right: r.Right * f, Bottom: r.Bottom * f}
}

// Contains reports whether p lies inside the half-open rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the overlap of r and other. The result may be empty.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect.fromLTRB(%.1f, %.1f, %.1f, %.1f)", r.Left, r.Top, r.Right, r.Bottom)
}
