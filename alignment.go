package imagebox

import "fmt"

// AlignmentGeometry is an alignment that may depend on the writing
// direction. Resolve converts it to an absolute Alignment.
//
// The interface is sealed: Alignment and AlignmentDirectional are its only
// implementations, and both compare with ==.
type AlignmentGeometry interface {
	// Resolve returns the absolute alignment for direction. Implementations
	// that depend on the direction return an error wrapping ErrContract when
	// direction is nil.
	Resolve(direction *TextDirection) (Alignment, error)

	// IsDirectional reports whether Resolve needs a direction.
	IsDirectional() bool

	fmt.Stringer

	alignmentGeometry()
}

// Alignment is a point within a rectangle expressed as fractions of its
// half-extent: (-1, -1) is the top-left corner, (0, 0) the centre and
// (1, 1) the bottom-right corner.
type Alignment struct {
	X, Y float64
}

// Named absolute alignments.
var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// Resolve returns a itself; absolute alignments ignore the direction.
func (a Alignment) Resolve(*TextDirection) (Alignment, error) {
	return a, nil
}

// IsDirectional returns false.
func (a Alignment) IsDirectional() bool { return false }

func (Alignment) alignmentGeometry() {}

// Inscribe places a box of size within rect according to a.
// The box may overflow rect when size is larger.
func (a Alignment) Inscribe(size Size, rect Rect) Rect {
	halfWidthDelta := (rect.Width() - size.Width) / 2
	halfHeightDelta := (rect.Height() - size.Height) / 2
	return RectFromLTWH(
		rect.Left+halfWidthDelta+a.X*halfWidthDelta,
		rect.Top+halfHeightDelta+a.Y*halfHeightDelta,
		size.Width,
		size.Height,
	)
}

// AlongOffset returns the point a describes within a box spanning
// other's width and height from the origin.
func (a Alignment) AlongOffset(other Offset) Offset {
	centerX := other.X / 2
	centerY := other.Y / 2
	return Offset{X: centerX + a.X*centerX, Y: centerY + a.Y*centerY}
}

// String implements fmt.Stringer.
func (a Alignment) String() string {
	switch a {
	case AlignmentTopLeft:
		return "Alignment.topLeft"
	case AlignmentTopCenter:
		return "Alignment.topCenter"
	case AlignmentTopRight:
		return "Alignment.topRight"
	case AlignmentCenterLeft:
		return "Alignment.centerLeft"
	case AlignmentCenter:
		return "Alignment.center"
	case AlignmentCenterRight:
		return "Alignment.centerRight"
	case AlignmentBottomLeft:
		return "Alignment.bottomLeft"
	case AlignmentBottomCenter:
		return "Alignment.bottomCenter"
	case AlignmentBottomRight:
		return "Alignment.bottomRight"
	}
	return fmt.Sprintf("Alignment(%.1f, %.1f)", a.X, a.Y)
}

// AlignmentDirectional is an alignment whose horizontal component is
// measured from the start edge of the writing direction: Start = -1 is the
// left edge for LTR and the right edge for RTL.
type AlignmentDirectional struct {
	Start, Y float64
}

// Named directional alignments.
var (
	AlignmentDirectionalTopStart    = AlignmentDirectional{Start: -1, Y: -1}
	AlignmentDirectionalTopEnd      = AlignmentDirectional{Start: 1, Y: -1}
	AlignmentDirectionalCenterStart = AlignmentDirectional{Start: -1, Y: 0}
	AlignmentDirectionalCenterEnd   = AlignmentDirectional{Start: 1, Y: 0}
	AlignmentDirectionalBottomStart = AlignmentDirectional{Start: -1, Y: 1}
	AlignmentDirectionalBottomEnd   = AlignmentDirectional{Start: 1, Y: 1}
)

// Resolve mirrors Start for RTL.
func (a AlignmentDirectional) Resolve(direction *TextDirection) (Alignment, error) {
	if direction == nil {
		return Alignment{}, fmt.Errorf("%w: cannot resolve %v without a text direction", ErrContract, a)
	}
	if *direction == RTL {
		return Alignment{X: -a.Start, Y: a.Y}, nil
	}
	return Alignment{X: a.Start, Y: a.Y}, nil
}

// IsDirectional returns true.
func (a AlignmentDirectional) IsDirectional() bool { return true }

func (AlignmentDirectional) alignmentGeometry() {}

// String implements fmt.Stringer.
func (a AlignmentDirectional) String() string {
	switch a {
	case AlignmentDirectionalTopStart:
		return "AlignmentDirectional.topStart"
	case AlignmentDirectionalTopEnd:
		return "AlignmentDirectional.topEnd"
	case AlignmentDirectionalCenterStart:
		return "AlignmentDirectional.centerStart"
	case AlignmentDirectionalCenterEnd:
		return "AlignmentDirectional.centerEnd"
	case AlignmentDirectionalBottomStart:
		return "AlignmentDirectional.bottomStart"
	case AlignmentDirectionalBottomEnd:
		return "AlignmentDirectional.bottomEnd"
	}
	return fmt.Sprintf("AlignmentDirectional(%.1f, %.1f)", a.Start, a.Y)
}
