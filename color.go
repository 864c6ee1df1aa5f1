package imagebox

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/imagebox/internal/blend"
)

// Color is a straight-alpha colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a colour from all four components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex creates a colour from "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an
// optional leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{A: 1}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{A: 1}
	}
	n := uint32(v)
	var r, g, b uint32
	a := uint32(255)
	switch len(hex) {
	case 3:
		r, g, b = (n>>8&0xf)*17, (n>>4&0xf)*17, (n&0xf)*17
	case 4:
		r, g, b, a = (n>>12&0xf)*17, (n>>8&0xf)*17, (n>>4&0xf)*17, (n&0xf)*17
	case 6:
		r, g, b = n>>16&0xff, n>>8&0xff, n&0xff
	case 8:
		r, g, b, a = n>>24&0xff, n>>16&0xff, n>>8&0xff, n&0xff
	}
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255, A: float64(n.A) / 255}
}

// NRGBA returns the colour as 8-bit straight alpha.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Premultiplied returns the colour as 8-bit premultiplied alpha.
func (c Color) Premultiplied() color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA()).(color.RGBA)
}

// Ptr returns a pointer to a copy of c, for optional fields.
func (c Color) Ptr() *Color {
	return &c
}

// String formats the colour as #RRGGBBAA.
func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clampFloat(v, 0, 1) * 255))
}

// BlendMode selects how a colour filter's constant colour (the source) is
// composited onto each image pixel (the destination).
type BlendMode uint8

// Blend modes. BlendSrcIn is the default for colour filters.
const (
	BlendClear      = BlendMode(blend.ModeClear)
	BlendSrc        = BlendMode(blend.ModeSrc)
	BlendDst        = BlendMode(blend.ModeDst)
	BlendSrcOver    = BlendMode(blend.ModeSrcOver)
	BlendDstOver    = BlendMode(blend.ModeDstOver)
	BlendSrcIn      = BlendMode(blend.ModeSrcIn)
	BlendDstIn      = BlendMode(blend.ModeDstIn)
	BlendSrcOut     = BlendMode(blend.ModeSrcOut)
	BlendDstOut     = BlendMode(blend.ModeDstOut)
	BlendSrcATop    = BlendMode(blend.ModeSrcATop)
	BlendDstATop    = BlendMode(blend.ModeDstATop)
	BlendXor        = BlendMode(blend.ModeXor)
	BlendPlus       = BlendMode(blend.ModePlus)
	BlendModulate   = BlendMode(blend.ModeModulate)
	BlendMultiply   = BlendMode(blend.ModeMultiply)
	BlendScreen     = BlendMode(blend.ModeScreen)
	BlendOverlay    = BlendMode(blend.ModeOverlay)
	BlendDarken     = BlendMode(blend.ModeDarken)
	BlendLighten    = BlendMode(blend.ModeLighten)
	BlendDifference = BlendMode(blend.ModeDifference)
	BlendExclusion  = BlendMode(blend.ModeExclusion)
)

// Valid reports whether m is a known blend mode.
func (m BlendMode) Valid() bool {
	return blend.Mode(m).Valid()
}

// String returns the mode name, e.g. "srcIn".
func (m BlendMode) String() string {
	return blend.Mode(m).String()
}

// Ptr returns a pointer to a copy of m, for optional fields.
func (m BlendMode) Ptr() *BlendMode {
	return &m
}

// ParseBlendMode returns the mode with the given name.
func ParseBlendMode(name string) (BlendMode, error) {
	for m := BlendClear; m.Valid(); m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// ColorFilter composites a constant colour onto every pixel it filters.
type ColorFilter struct {
	Color Color
	Mode  BlendMode
}

// NewModeFilter returns a filter that blends c onto pixels with mode.
func NewModeFilter(c Color, mode BlendMode) *ColorFilter {
	return &ColorFilter{Color: c, Mode: mode}
}

// Apply filters one premultiplied pixel.
func (f *ColorFilter) Apply(px color.RGBA) color.RGBA {
	if f == nil {
		return px
	}
	s := f.Color.Premultiplied()
	r, g, b, a := blend.Apply(blend.Mode(f.Mode), s.R, s.G, s.B, s.A, px.R, px.G, px.B, px.A)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// String implements fmt.Stringer.
func (f *ColorFilter) String() string {
	if f == nil {
		return "null"
	}
	return fmt.Sprintf("ColorFilter.mode(%v, %v)", f.Color, f.Mode)
}
