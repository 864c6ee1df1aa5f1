// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fogcanvas

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/gogpu/imagebox"
)

// ErrInvalidDimensions is returned when width or height is not positive.
var ErrInvalidDimensions = errors.New("fogcanvas: invalid dimensions")

// Canvas adapts a *gg.Context to imagebox.Canvas.
type Canvas struct {
	dc    *gg.Context
	depth int
}

var _ imagebox.Canvas = (*Canvas)(nil)

// New creates a canvas backed by a fresh width×height context.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return NewForContext(gg.NewContext(width, height)), nil
}

// NewForContext wraps an existing context. Drawing goes through the
// context's current transform and clip.
func NewForContext(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the underlying drawing context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Image returns the context's pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Save implements imagebox.Canvas.
func (c *Canvas) Save() {
	c.depth++
	c.dc.Push()
}

// Restore implements imagebox.Canvas. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if c.depth == 0 {
		imagebox.Logger().Warn("fogcanvas: restore without save")
		return
	}
	c.depth--
	c.dc.Pop()
}

// ClipRect implements imagebox.Canvas.
func (c *Canvas) ClipRect(r imagebox.Rect) {
	c.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	c.dc.Clip()
}

// Translate implements imagebox.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

// Scale implements imagebox.Canvas.
func (c *Canvas) Scale(sx, sy float64) {
	c.dc.Scale(sx, sy)
}

// DrawImageRect implements imagebox.Canvas.
func (c *Canvas) DrawImageRect(img *imagebox.Image, src, dst imagebox.Rect, p *imagebox.Paint) {
	if img == nil || src.IsEmpty() || dst.IsEmpty() {
		return
	}
	region := image.Rect(
		int(math.Floor(src.Left)), int(math.Floor(src.Top)),
		int(math.Ceil(src.Right)), int(math.Ceil(src.Bottom)),
	).Intersect(img.Bounds())
	if region.Empty() {
		return
	}

	paint := imagebox.Paint{Opacity: 1}
	if p != nil {
		paint = *p
	}
	sub := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := 0; y < region.Dy(); y++ {
		for x := 0; x < region.Dx(); x++ {
			sub.SetRGBA(x, y, paint.Shade(img.RGBAAt(region.Min.X+x, region.Min.Y+y)))
		}
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.DrawRectangle(dst.Left, dst.Top, dst.Width(), dst.Height())
	c.dc.Clip()
	c.dc.Translate(dst.Left, dst.Top)
	c.dc.Scale(dst.Width()/src.Width(), dst.Height()/src.Height())
	c.dc.Translate(float64(region.Min.X)-src.Left, float64(region.Min.Y)-src.Top)
	c.dc.DrawImage(sub, 0, 0)
}

// DrawImageNine implements imagebox.Canvas.
func (c *Canvas) DrawImageNine(img *imagebox.Image, center, dst imagebox.Rect, p *imagebox.Paint) {
	if img == nil {
		return
	}
	for _, patch := range imagebox.NinePatch(img.Size(), center, dst) {
		c.DrawImageRect(img, patch.Src, patch.Dst, p)
	}
}

// SavePNG writes the context to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
