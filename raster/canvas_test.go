// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/imagebox"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// makeImage builds an image from rows of straight-alpha colours.
func makeImage(t *testing.T, rows ...[]color.NRGBA) *imagebox.Image {
	t.Helper()
	w, h := len(rows[0]), len(rows)
	pix := make([]byte, 0, w*h*4)
	for _, row := range rows {
		for _, c := range row {
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	img, err := imagebox.NewImage(w, h, pix)
	if err != nil {
		t.Fatalf("NewImage() error = %v", err)
	}
	return img
}

func premul(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// rowColors returns the colours of row y.
func rowColors(img *image.RGBA, y int) []color.RGBA {
	var out []color.RGBA
	for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
		out = append(out, img.RGBAAt(x, y))
	}
	return out
}

func expectRow(t *testing.T, img *image.RGBA, y int, want ...color.RGBA) {
	t.Helper()
	got := rowColors(img, y)
	if len(got) != len(want) {
		t.Fatalf("row %d has %d pixels, want %d", y, len(got), len(want))
	}
	for x := range want {
		if got[x] != want[x] {
			t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got[x], want[x])
		}
	}
}

func TestPaintImageFill(t *testing.T) {
	img := makeImage(t, []color.NRGBA{red, blue})
	c := New(4, 2)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:    imagebox.RectFromLTWH(0, 0, 4, 2),
		Image:   img,
		Opacity: 1,
		Fit:     imagebox.FitFill.Ptr(),
	})
	r, b := premul(red), premul(blue)
	expectRow(t, c.Image(), 0, r, r, b, b)
	expectRow(t, c.Image(), 1, r, r, b, b)
}

func TestPaintImageFlip(t *testing.T) {
	img := makeImage(t, []color.NRGBA{red, blue})
	c := New(4, 1)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:             imagebox.RectFromLTWH(0, 0, 4, 1),
		Image:            img,
		Opacity:          1,
		Fit:              imagebox.FitFill.Ptr(),
		FlipHorizontally: true,
	})
	r, b := premul(red), premul(blue)
	expectRow(t, c.Image(), 0, b, b, r, r)
	if !c.Transform().IsIdentity() {
		t.Errorf("transform not restored: %v", c.Transform())
	}
}

func TestPaintImageFlipWithOffsetRect(t *testing.T) {
	img := makeImage(t, []color.NRGBA{red, blue})
	c := New(6, 1)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:             imagebox.RectFromLTWH(2, 0, 4, 1),
		Image:            img,
		Opacity:          1,
		Fit:              imagebox.FitFill.Ptr(),
		FlipHorizontally: true,
	})
	r, b := premul(red), premul(blue)
	expectRow(t, c.Image(), 0, color.RGBA{}, color.RGBA{}, b, b, r, r)
}

func TestPaintImageRepeatX(t *testing.T) {
	img := makeImage(t, []color.NRGBA{red, blue}, []color.NRGBA{red, blue})
	c := New(7, 2)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:      imagebox.RectFromLTWH(0, 0, 6, 2),
		Image:     img,
		Opacity:   1,
		Fit:       imagebox.FitNone.Ptr(),
		Alignment: imagebox.AlignmentTopLeft,
		Repeat:    imagebox.RepeatX,
	})
	r, b := premul(red), premul(blue)
	expectRow(t, c.Image(), 1, r, b, r, b, r, b, color.RGBA{})
}

func TestPaintImageShading(t *testing.T) {
	tests := []struct {
		name string
		p    imagebox.ImagePaint
		bg   color.Color
		want color.RGBA
	}{
		{
			name: "srcIn tint",
			p:    imagebox.ImagePaint{Opacity: 1, ColorFilter: imagebox.NewModeFilter(imagebox.RGB(0, 1, 0), imagebox.BlendSrcIn)},
			want: color.RGBA{G: 255, A: 255},
		},
		{
			name: "invert",
			p:    imagebox.ImagePaint{Opacity: 1, InvertColors: true},
			want: color.RGBA{G: 255, B: 255, A: 255},
		},
		{
			name: "half opacity over white",
			p:    imagebox.ImagePaint{Opacity: 0.5},
			bg:   white,
			want: color.RGBA{R: 255, G: 127, B: 127, A: 255},
		},
		{
			name: "zero opacity",
			p:    imagebox.ImagePaint{Opacity: 0},
			bg:   white,
			want: white,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.bg != nil {
				opts = append(opts, WithBackground(tt.bg))
			}
			c := New(1, 1, opts...)
			p := tt.p
			p.Rect = imagebox.RectFromLTWH(0, 0, 1, 1)
			p.Image = makeImage(t, []color.NRGBA{red})
			imagebox.PaintImage(c, p)
			if got := c.Image().RGBAAt(0, 0); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaintImageNinePatch(t *testing.T) {
	img := makeImage(t,
		[]color.NRGBA{red, red, red},
		[]color.NRGBA{red, green, red},
		[]color.NRGBA{red, red, red},
	)
	cs := imagebox.RectFromLTRB(1, 1, 2, 2)
	c := New(6, 6)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:        imagebox.RectFromLTWH(0, 0, 6, 6),
		Image:       img,
		Opacity:     1,
		CenterSlice: &cs,
	})
	r, g := premul(red), premul(green)
	expectRow(t, c.Image(), 0, r, r, r, r, r, r)
	expectRow(t, c.Image(), 3, r, g, g, g, g, r)
	expectRow(t, c.Image(), 5, r, r, r, r, r, r)
}

func TestPaintImageNinePatchFullWidth(t *testing.T) {
	img := makeImage(t,
		[]color.NRGBA{red},
		[]color.NRGBA{green},
		[]color.NRGBA{red},
	)
	cs := imagebox.RectFromLTRB(0, 1, 1, 2)
	c := New(4, 5)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:        imagebox.RectFromLTWH(0, 0, 4, 5),
		Image:       img,
		Opacity:     1,
		CenterSlice: &cs,
	})
	r, g := premul(red), premul(green)
	expectRow(t, c.Image(), 0, r, r, r, r)
	for y := 1; y <= 3; y++ {
		expectRow(t, c.Image(), y, g, g, g, g)
	}
	expectRow(t, c.Image(), 4, r, r, r, r)
}

func TestPaintImageNinePatchContainWideCentre(t *testing.T) {
	img := makeImage(t,
		[]color.NRGBA{red, red, red, red},
		[]color.NRGBA{red, green, green, red},
		[]color.NRGBA{red, red, red, red},
	)
	cs := imagebox.RectFromLTRB(1, 1, 3, 2)
	c := New(8, 7)
	imagebox.PaintImage(c, imagebox.ImagePaint{
		Rect:        imagebox.RectFromLTWH(0, 0, 8, 7),
		Image:       img,
		Opacity:     1,
		Fit:         imagebox.FitContain.Ptr(),
		CenterSlice: &cs,
	})
	r, g, none := premul(red), premul(green), color.RGBA{}
	expectRow(t, c.Image(), 0, none, none, none, none, none, none, none, none)
	expectRow(t, c.Image(), 1, r, r, r, r, r, r, r, r)
	for y := 2; y <= 4; y++ {
		expectRow(t, c.Image(), y, r, g, g, g, g, g, g, r)
	}
	expectRow(t, c.Image(), 5, r, r, r, r, r, r, r, r)
	expectRow(t, c.Image(), 6, none, none, none, none, none, none, none, none)
}

func TestCanvasClipAndRestore(t *testing.T) {
	c := New(10, 10)
	c.Save()
	c.Translate(2, 3)
	c.ClipRect(imagebox.RectFromLTWH(0, 0, 4, 4))
	if got, want := c.Clip(), image.Rect(2, 3, 6, 7); got != want {
		t.Errorf("Clip() = %v, want %v", got, want)
	}

	img := makeImage(t, []color.NRGBA{red})
	c.DrawImageRect(img, imagebox.RectFromLTWH(0, 0, 1, 1), imagebox.RectFromLTWH(-2, -3, 10, 10), nil)
	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel outside clip = %v, want transparent", got)
	}
	if got := c.Image().RGBAAt(3, 4); got != premul(red) {
		t.Errorf("pixel inside clip = %v, want red", got)
	}

	c.Restore()
	if got := c.Clip(); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("Clip() after Restore = %v, want full canvas", got)
	}
	if !c.Transform().IsIdentity() {
		t.Error("Transform() not restored")
	}
	c.Restore()
}

func TestRenderImageOnRaster(t *testing.T) {
	img := makeImage(t, []color.NRGBA{red, blue})
	node := imagebox.NewRenderImage(
		imagebox.WithImage(img),
		imagebox.WithFit(imagebox.FitFill),
		imagebox.WithAlignment(imagebox.AlignmentDirectionalCenterStart),
		imagebox.WithMatchTextDirection(true),
		imagebox.WithTextDirection(imagebox.RTL),
		imagebox.WithFilterQuality(imagebox.FilterQualityNone),
	)
	node.Layout(imagebox.Tight(imagebox.Sz(4, 1)))

	c := New(4, 1)
	node.Paint(&imagebox.PaintContext{Canvas: c}, imagebox.Offset{})
	r, b := premul(red), premul(blue)
	expectRow(t, c.Image(), 0, b, b, r, r)
}

func TestEncodePNG(t *testing.T) {
	c := New(2, 2, WithBackground(white))
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("decoded bounds = %v", decoded.Bounds())
	}
}

func TestWithTarget(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 3, 3))
	c := New(0, 0, WithTarget(dst), WithBackground(white))
	if c.Image() != dst {
		t.Fatal("Image() is not the target")
	}
	if dst.RGBAAt(2, 2) != white {
		t.Error("background not applied to target")
	}
}
