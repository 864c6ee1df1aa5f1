package imagebox

import (
	"fmt"
	"math"
)

// BoxConstraints bounds the size a box may take on each axis.
//
// A size satisfies the constraints when
// MinWidth <= width <= MaxWidth and MinHeight <= height <= MaxHeight.
// Max values may be Infinity.
type BoxConstraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight returns constraints satisfied only by size.
func Tight(size Size) BoxConstraints {
	return BoxConstraints{
		MinWidth: size.Width, MaxWidth: size.Width,
		MinHeight: size.Height, MaxHeight: size.Height,
	}
}

// Loose returns constraints that forbid sizes larger than size.
func Loose(size Size) BoxConstraints {
	return BoxConstraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unconstrained returns constraints with zero minimums and infinite maximums.
func Unconstrained() BoxConstraints {
	return BoxConstraints{MaxWidth: Infinity, MaxHeight: Infinity}
}

// TightFor fixes the axes whose value is non-nil and leaves the others free.
func TightFor(width, height *float64) BoxConstraints {
	c := Unconstrained()
	if width != nil {
		c.MinWidth, c.MaxWidth = *width, *width
	}
	if height != nil {
		c.MinHeight, c.MaxHeight = *height, *height
	}
	return c
}

// TightForFinite fixes the axes whose value is finite and leaves
// infinite axes free.
func TightForFinite(width, height float64) BoxConstraints {
	c := Unconstrained()
	if !math.IsInf(width, 1) {
		c.MinWidth, c.MaxWidth = width, width
	}
	if !math.IsInf(height, 1) {
		c.MinHeight, c.MaxHeight = height, height
	}
	return c
}

// Enforce returns c clamped into other: every bound of c is moved into
// other's range on the same axis.
func (c BoxConstraints) Enforce(other BoxConstraints) BoxConstraints {
	return BoxConstraints{
		MinWidth:  clampFloat(c.MinWidth, other.MinWidth, other.MaxWidth),
		MaxWidth:  clampFloat(c.MaxWidth, other.MinWidth, other.MaxWidth),
		MinHeight: clampFloat(c.MinHeight, other.MinHeight, other.MaxHeight),
		MaxHeight: clampFloat(c.MaxHeight, other.MinHeight, other.MaxHeight),
	}
}

// ConstrainWidth clamps width into [MinWidth, MaxWidth].
func (c BoxConstraints) ConstrainWidth(width float64) float64 {
	return clampFloat(width, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps height into [MinHeight, MaxHeight].
func (c BoxConstraints) ConstrainHeight(height float64) float64 {
	return clampFloat(height, c.MinHeight, c.MaxHeight)
}

// Constrain returns the size closest to size that satisfies c.
func (c BoxConstraints) Constrain(size Size) Size {
	return Size{Width: c.ConstrainWidth(size.Width), Height: c.ConstrainHeight(size.Height)}
}

// Smallest returns the smallest size that satisfies c.
func (c BoxConstraints) Smallest() Size {
	return Size{Width: c.ConstrainWidth(0), Height: c.ConstrainHeight(0)}
}

// Biggest returns the largest size that satisfies c.
func (c BoxConstraints) Biggest() Size {
	return Size{Width: c.ConstrainWidth(Infinity), Height: c.ConstrainHeight(Infinity)}
}

// HasTightWidth reports whether exactly one width satisfies c.
func (c BoxConstraints) HasTightWidth() bool { return c.MinWidth >= c.MaxWidth }

// HasTightHeight reports whether exactly one height satisfies c.
func (c BoxConstraints) HasTightHeight() bool { return c.MinHeight >= c.MaxHeight }

// IsTight reports whether exactly one size satisfies c.
func (c BoxConstraints) IsTight() bool { return c.HasTightWidth() && c.HasTightHeight() }

// HasBoundedWidth reports whether MaxWidth is finite.
func (c BoxConstraints) HasBoundedWidth() bool { return !math.IsInf(c.MaxWidth, 1) }

// HasBoundedHeight reports whether MaxHeight is finite.
func (c BoxConstraints) HasBoundedHeight() bool { return !math.IsInf(c.MaxHeight, 1) }

// IsNormalized reports whether every bound is non-negative and each minimum
// does not exceed its maximum.
func (c BoxConstraints) IsNormalized() bool {
	return c.MinWidth >= 0 && c.MinWidth <= c.MaxWidth &&
		c.MinHeight >= 0 && c.MinHeight <= c.MaxHeight
}

// IsSatisfiedBy reports whether size lies within c.
func (c BoxConstraints) IsSatisfiedBy(size Size) bool {
	return c.MinWidth <= size.Width && size.Width <= c.MaxWidth &&
		c.MinHeight <= size.Height && size.Height <= c.MaxHeight
}

// ConstrainSizeAndAttemptToPreserveAspectRatio returns a size satisfying c
// that keeps size's aspect ratio where the bounds allow it.
//
// Tight constraints return Smallest. Otherwise the size is shrunk to fit the
// maximums, grown to reach the minimums, each step deriving the other axis
// from the ratio, and finally clamped on both axes.
func (c BoxConstraints) ConstrainSizeAndAttemptToPreserveAspectRatio(size Size) Size {
	if c.IsTight() {
		return c.Smallest()
	}
	if size.Width <= 0 || size.Height <= 0 {
		// A degenerate size has no ratio to keep.
		return c.Constrain(size)
	}

	width, height := size.Width, size.Height
	aspect := width / height

	if width > c.MaxWidth {
		width = c.MaxWidth
		height = width / aspect
	}
	if height > c.MaxHeight {
		height = c.MaxHeight
		width = height * aspect
	}
	if width < c.MinWidth {
		width = c.MinWidth
		height = width / aspect
	}
	if height < c.MinHeight {
		height = c.MinHeight
		width = height * aspect
	}
	return Size{Width: c.ConstrainWidth(width), Height: c.ConstrainHeight(height)}
}

// String implements fmt.Stringer.
func (c BoxConstraints) String() string {
	if c.IsTight() {
		return fmt.Sprintf("BoxConstraints(w=%s, h=%s)", fmtExtent(c.MinWidth), fmtExtent(c.MinHeight))
	}
	return fmt.Sprintf("BoxConstraints(%s<=w<=%s, %s<=h<=%s)",
		fmtExtent(c.MinWidth), fmtExtent(c.MaxWidth), fmtExtent(c.MinHeight), fmtExtent(c.MaxHeight))
}

func fmtExtent(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	return fmt.Sprintf("%.1f", v)
}

// clampFloat clamps v into [lo, hi]. When lo > hi the lower bound wins.
func clampFloat(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
