package imagebox

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewImage(t *testing.T) {
	pix := []byte{
		255, 0, 0, 128,
		0, 255, 0, 255,
	}
	img, err := NewImage(2, 1, pix)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	if img.Width() != 2 || img.Height() != 1 || img.Size() != Sz(2, 1) {
		t.Errorf("dimensions = %dx%d, want 2x1", img.Width(), img.Height())
	}
	if got, want := img.RGBAAt(0, 0), (color.RGBA{R: 128, A: 128}); got != want {
		t.Errorf("RGBAAt(0, 0) = %v, want %v", got, want)
	}
	if got := img.RGBAAt(5, 0); got != (color.RGBA{}) {
		t.Errorf("RGBAAt out of bounds = %v, want transparent", got)
	}

	pix[4] = 99
	if got := img.RGBAAt(1, 0); got.R != 0 {
		t.Error("image aliases the caller's slice")
	}
	if got := img.String(); got != "[2×1]" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewImageErrors(t *testing.T) {
	if _, err := NewImage(0, 4, nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewImage(2, 2, make([]byte, 8)); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

func TestNewImageWithFormatBGRA(t *testing.T) {
	img, err := NewImageWithFormat(1, 1, []byte{255, 0, 0, 255}, 4, PixelFormatBGRA8)
	if err != nil {
		t.Fatalf("NewImageWithFormat() error = %v", err)
	}
	if got, want := img.RGBAAt(0, 0), (color.RGBA{B: 255, A: 255}); got != want {
		t.Errorf("RGBAAt() = %v, want %v", got, want)
	}
	if !img.Format().IsBGR() {
		t.Error("Format().IsBGR() = false")
	}
}

func TestImageFromStd(t *testing.T) {
	src := image.NewNRGBA(image.Rect(3, 3, 5, 4))
	src.SetNRGBA(3, 3, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(4, 3, color.NRGBA{R: 255, A: 0})

	img, err := ImageFromStd(src)
	if err != nil {
		t.Fatalf("ImageFromStd() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Errorf("Bounds() = %v, want origin-based", img.Bounds())
	}
	if got, want := img.RGBAAt(0, 0), (color.RGBA{G: 255, A: 255}); got != want {
		t.Errorf("RGBAAt(0, 0) = %v, want %v", got, want)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{}) {
		t.Errorf("RGBAAt(1, 0) = %v, want transparent", got)
	}

	if _, err := ImageFromStd(image.NewRGBA(image.Rectangle{})); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty image error = %v, want ErrInvalidDimensions", err)
	}
}

func TestImageSample(t *testing.T) {
	pix := []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
	}
	img, err := NewImage(2, 1, pix)
	if err != nil {
		t.Fatal(err)
	}
	region := img.Bounds()
	if got := img.Sample(0.5, 0.5, region, FilterQualityNone); got != (color.RGBA{A: 255}) {
		t.Errorf("nearest at first centre = %v, want black", got)
	}
	if got := img.Sample(1.0, 0.5, region, FilterQualityLow); got.R < 120 || got.R > 135 {
		t.Errorf("bilinear midpoint R = %d, want about 128", got.R)
	}
}
