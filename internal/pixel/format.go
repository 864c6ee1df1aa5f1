// Package pixel provides the 8-bit pixel buffers and samplers used by the
// imagebox canvases.
package pixel

// Format is the byte layout of a pixel in a Buffer.
type Format uint8

const (
	// FormatRGBA8 is straight (non-premultiplied) RGBA, 4 bytes per pixel.
	FormatRGBA8 Format = iota

	// FormatRGBAPremul is premultiplied RGBA, 4 bytes per pixel.
	FormatRGBAPremul

	// FormatBGRA8 is straight BGRA, 4 bytes per pixel.
	FormatBGRA8

	// FormatBGRAPremul is premultiplied BGRA, 4 bytes per pixel.
	FormatBGRAPremul

	formatCount
)

// BytesPerPixel is the same for every supported format.
const BytesPerPixel = 4

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// IsPremultiplied reports whether colour channels are stored premultiplied.
func (f Format) IsPremultiplied() bool {
	return f == FormatRGBAPremul || f == FormatBGRAPremul
}

// IsBGR reports whether the red and blue channels are swapped in memory.
func (f Format) IsBGR() bool {
	return f == FormatBGRA8 || f == FormatBGRAPremul
}

// RowBytes returns the minimum stride for a row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * BytesPerPixel
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGBAPremul:
		return "RGBAPremul"
	case FormatBGRA8:
		return "BGRA8"
	case FormatBGRAPremul:
		return "BGRAPremul"
	default:
		return "Unknown"
	}
}
