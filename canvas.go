package imagebox

import (
	"image/color"
	"math"

	"github.com/gogpu/imagebox/internal/pixel"
)

// FilterQuality trades sampling quality for speed when an image is scaled.
type FilterQuality uint8

const (
	// FilterQualityNone samples the nearest pixel.
	FilterQualityNone FilterQuality = iota
	// FilterQualityLow interpolates bilinearly. It is the default.
	FilterQualityLow
	// FilterQualityMedium interpolates bilinearly.
	FilterQualityMedium
	// FilterQualityHigh uses bicubic (Catmull-Rom) interpolation.
	FilterQualityHigh
)

// String returns the quality name.
func (q FilterQuality) String() string {
	switch q {
	case FilterQualityNone:
		return "none"
	case FilterQualityLow:
		return "low"
	case FilterQualityMedium:
		return "medium"
	case FilterQualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

func (q FilterQuality) filter() pixel.Filter {
	switch q {
	case FilterQualityNone:
		return pixel.FilterNearest
	case FilterQualityHigh:
		return pixel.FilterBicubic
	default:
		return pixel.FilterBilinear
	}
}

// Paint carries the per-draw state of an image draw.
type Paint struct {
	// ColorFilter, when non-nil, is applied to every sampled pixel.
	ColorFilter *ColorFilter

	// Opacity scales the alpha of the drawn image, in [0, 1].
	Opacity float64

	// FilterQuality selects the sampling filter.
	FilterQuality FilterQuality

	// InvertColors inverts the colour channels after ColorFilter.
	InvertColors bool

	// IsAntiAlias requests anti-aliased edges where the canvas supports it.
	IsAntiAlias bool
}

// Shade applies the colour filter, colour inversion and opacity to one
// premultiplied pixel, in that order.
func (p *Paint) Shade(px color.RGBA) color.RGBA {
	if p.ColorFilter != nil {
		px = p.ColorFilter.Apply(px)
	}
	if p.InvertColors {
		px.R, px.G, px.B = px.A-px.R, px.A-px.G, px.A-px.B
	}
	if op := clampFloat(p.Opacity, 0, 1); op < 1 {
		k := func(v uint8) uint8 { return uint8(math.Round(float64(v) * op)) }
		px = color.RGBA{R: k(px.R), G: k(px.G), B: k(px.B), A: k(px.A)}
	}
	return px
}

// Canvas is the drawing surface an image is painted onto.
//
// Coordinates pass through the canvas's current transform, which Save and
// Restore push and pop together with the clip.
type Canvas interface {
	Save()
	Restore()
	ClipRect(r Rect)
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	// DrawImageRect draws the src portion of img (in image pixels) stretched
	// into dst.
	DrawImageRect(img *Image, src, dst Rect, p *Paint)

	// DrawImageNine draws img as a nine-patch: center (in image pixels)
	// stretches on both axes, the edge strips on one, the corners not at all.
	DrawImageNine(img *Image, center, dst Rect, p *Paint)
}
