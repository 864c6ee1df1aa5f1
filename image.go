package imagebox

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/imagebox/internal/pixel"
)

// PixelFormat is the byte layout of an Image's pixel storage.
type PixelFormat uint8

const (
	// PixelFormatRGBA8 is straight-alpha RGBA.
	PixelFormatRGBA8 = PixelFormat(pixel.FormatRGBA8)
	// PixelFormatRGBAPremul is premultiplied RGBA.
	PixelFormatRGBAPremul = PixelFormat(pixel.FormatRGBAPremul)
	// PixelFormatBGRA8 is straight-alpha BGRA.
	PixelFormatBGRA8 = PixelFormat(pixel.FormatBGRA8)
	// PixelFormatBGRAPremul is premultiplied BGRA.
	PixelFormatBGRAPremul = PixelFormat(pixel.FormatBGRAPremul)
)

// String returns the format name.
func (f PixelFormat) String() string {
	return pixel.Format(f).String()
}

// IsBGR reports whether red and blue are swapped in memory.
func (f PixelFormat) IsBGR() bool {
	return pixel.Format(f).IsBGR()
}

// Image is an immutable, already decoded raster.
//
// An Image may be shared by any number of render nodes; none of them modify
// its pixels. Image implements image.Image with premultiplied colour.
type Image struct {
	buf *pixel.Buffer
}

// NewImage copies straight-alpha RGBA pixels (4 bytes per pixel, tightly
// packed rows) into a new Image.
func NewImage(width, height int, pix []byte) (*Image, error) {
	return NewImageWithFormat(width, height, pix, width*pixel.BytesPerPixel, PixelFormatRGBA8)
}

// NewImageWithFormat copies pixels with an explicit row stride and layout.
func NewImageWithFormat(width, height int, pix []byte, stride int, format PixelFormat) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	owned := make([]byte, len(pix))
	copy(owned, pix)
	buf, err := pixel.FromRaw(owned, width, height, pixel.Format(format), stride)
	if err != nil {
		if errors.Is(err, pixel.ErrDataTooSmall) {
			return nil, fmt.Errorf("%w: have %d bytes for %dx%d", ErrDataTooSmall, len(pix), width, height)
		}
		return nil, fmt.Errorf("imagebox: new image: %w", err)
	}
	return &Image{buf: buf}, nil
}

// ImageFromStd converts any standard library image.
func ImageFromStd(src image.Image) (*Image, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	buf, err := pixel.FromRaw(rgba.Pix, b.Dx(), b.Dy(), pixel.FormatRGBAPremul, rgba.Stride)
	if err != nil {
		return nil, fmt.Errorf("imagebox: convert image: %w", err)
	}
	return &Image{buf: buf}, nil
}

// Width returns the width in pixels.
func (i *Image) Width() int { return i.buf.Width() }

// Height returns the height in pixels.
func (i *Image) Height() int { return i.buf.Height() }

// Size returns the pixel dimensions as a Size.
func (i *Image) Size() Size {
	return Size{Width: float64(i.buf.Width()), Height: float64(i.buf.Height())}
}

// Format returns the storage layout.
func (i *Image) Format() PixelFormat {
	return PixelFormat(i.buf.Format())
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.buf.Width(), i.buf.Height())
}

// At implements image.Image.
func (i *Image) At(x, y int) color.Color {
	return i.RGBAAt(x, y)
}

// RGBAAt returns the premultiplied pixel at (x, y).
func (i *Image) RGBAAt(x, y int) color.RGBA {
	c := i.buf.Premul(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Sample returns the premultiplied colour at continuous image coordinates
// (x, y), never reading outside region.
func (i *Image) Sample(x, y float64, region image.Rectangle, quality FilterQuality) color.RGBA {
	r := pixel.Region{X0: region.Min.X, Y0: region.Min.Y, X1: region.Max.X, Y1: region.Max.Y}
	c := pixel.Sample(i.buf, x, y, r, quality.filter())
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String implements fmt.Stringer.
func (i *Image) String() string {
	if i == nil {
		return "null"
	}
	return fmt.Sprintf("[%d×%d]", i.Width(), i.Height())
}
