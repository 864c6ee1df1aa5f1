package pixel

import "errors"

var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixel: invalid format")

	// ErrInvalidStride is returned when stride is less than the row size.
	ErrInvalidStride = errors.New("pixel: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")
)

// Color is a premultiplied 8-bit colour.
type Color struct {
	R, G, B, A uint8
}

// Buffer is a contiguous 4-byte-per-pixel image.
//
// Reads through Premul always return premultiplied colour regardless of the
// storage format; writes through SetPremul convert back.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// New allocates a zeroed buffer.
func New(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	stride := format.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// The caller must keep data alive and unmodified for the buffer's lifetime.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	required := stride*(height-1) + format.RowBytes(width)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}
	return &Buffer{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int { return b.stride }

// Format returns the storage format.
func (b *Buffer) Format() Format { return b.format }

// Data returns the raw bytes.
func (b *Buffer) Data() []byte { return b.data }

func (b *Buffer) offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// Premul returns the premultiplied colour at (x, y).
// Out-of-bounds reads return transparent black.
func (b *Buffer) Premul(x, y int) Color {
	o := b.offset(x, y)
	if o < 0 {
		return Color{}
	}
	p := b.data[o : o+BytesPerPixel]
	c := Color{R: p[0], G: p[1], B: p[2], A: p[3]}
	if b.format.IsBGR() {
		c.R, c.B = c.B, c.R
	}
	if !b.format.IsPremultiplied() {
		c = Premultiply(c)
	}
	return c
}

// SetPremul stores a premultiplied colour at (x, y).
// Out-of-bounds writes are ignored.
func (b *Buffer) SetPremul(x, y int, c Color) {
	o := b.offset(x, y)
	if o < 0 {
		return
	}
	if !b.format.IsPremultiplied() {
		c = Unpremultiply(c)
	}
	if b.format.IsBGR() {
		c.R, c.B = c.B, c.R
	}
	p := b.data[o : o+BytesPerPixel]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Fill sets every pixel to the premultiplied colour c.
func (b *Buffer) Fill(c Color) {
	for y := range b.height {
		for x := range b.width {
			b.SetPremul(x, y, c)
		}
	}
}

// Premultiply converts a straight-alpha colour to premultiplied form.
func Premultiply(c Color) Color {
	a := uint16(c.A)
	return Color{
		R: uint8((uint16(c.R)*a + 127) / 255),
		G: uint8((uint16(c.G)*a + 127) / 255),
		B: uint8((uint16(c.B)*a + 127) / 255),
		A: c.A,
	}
}

// Unpremultiply converts a premultiplied colour to straight alpha.
func Unpremultiply(c Color) Color {
	if c.A == 0 {
		return Color{}
	}
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	un := func(v uint8) uint8 {
		r := (uint32(v)*255 + a/2) / a
		if r > 255 {
			return 255
		}
		return uint8(r)
	}
	return Color{R: un(c.R), G: un(c.G), B: un(c.B), A: c.A}
}
