// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements imagebox.Canvas in software, drawing into an
// *image.RGBA.
//
// Pixels are covered when their centre falls inside a transformed
// destination rectangle; there is no partial edge coverage, so IsAntiAlias
// has no effect. Sampled pixels pass through the colour filter, colour
// inversion and opacity before being composited source-over.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/imagebox"
	"github.com/gogpu/imagebox/internal/blend"
)

type state struct {
	transform Matrix
	clip      image.Rectangle
}

// Canvas is a software imagebox.Canvas.
type Canvas struct {
	dst   *image.RGBA
	cur   state
	stack []state
}

var _ imagebox.Canvas = (*Canvas)(nil)

// New creates a width×height canvas, transparent unless WithBackground is
// given.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dst := o.target
	if dst == nil {
		dst = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	if o.background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)
	}
	return &Canvas{
		dst: dst,
		cur: state{transform: Identity(), clip: dst.Bounds()},
	}
}

// Image returns the pixels drawn so far. The canvas keeps drawing into the
// returned image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Transform returns the current transform.
func (c *Canvas) Transform() Matrix { return c.cur.transform }

// Clip returns the current clip in device pixels.
func (c *Canvas) Clip() image.Rectangle { return c.cur.clip }

// Save pushes the transform and clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the transform and clip. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		imagebox.Logger().Warn("raster: restore without save")
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by (dx, dy).
func (c *Canvas) Translate(dx, dy float64) {
	c.cur.transform = c.cur.transform.Multiply(Translation(dx, dy))
}

// Scale scales subsequent drawing by (sx, sy).
func (c *Canvas) Scale(sx, sy float64) {
	c.cur.transform = c.cur.transform.Multiply(Scaling(sx, sy))
}

// ClipRect intersects the clip with r under the current transform.
func (c *Canvas) ClipRect(r imagebox.Rect) {
	c.cur.clip = c.cur.clip.Intersect(c.deviceBounds(r))
}

// deviceBounds returns the pixels whose centres lie inside the bounding box
// of r under the current transform.
func (c *Canvas) deviceBounds(r imagebox.Rect) image.Rectangle {
	m := c.cur.transform
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{r.Left, r.Top}, {r.Right, r.Top}, {r.Left, r.Bottom}, {r.Right, r.Bottom}} {
		x, y := m.TransformPoint(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return image.Rect(
		int(math.Ceil(minX-0.5)), int(math.Ceil(minY-0.5)),
		int(math.Ceil(maxX-0.5)), int(math.Ceil(maxY-0.5)),
	)
}

// DrawImageRect draws the src region of img stretched into dst.
func (c *Canvas) DrawImageRect(img *imagebox.Image, src, dst imagebox.Rect, p *imagebox.Paint) {
	if img == nil || src.IsEmpty() || dst.IsEmpty() {
		return
	}
	inv, ok := c.cur.transform.Invert()
	if !ok {
		return
	}
	area := c.deviceBounds(dst).Intersect(c.cur.clip)
	if area.Empty() {
		return
	}

	region := image.Rect(
		int(math.Floor(src.Left)), int(math.Floor(src.Top)),
		int(math.Ceil(src.Right)), int(math.Ceil(src.Bottom)),
	).Intersect(img.Bounds())
	if region.Empty() {
		return
	}

	var paint imagebox.Paint
	if p != nil {
		paint = *p
	} else {
		paint.Opacity = 1
	}
	sx := src.Width() / dst.Width()
	sy := src.Height() / dst.Height()

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			lx, ly := inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			if !dst.Contains(imagebox.Pt(lx, ly)) {
				continue
			}
			px := img.Sample(src.Left+(lx-dst.Left)*sx, src.Top+(ly-dst.Top)*sy, region, paint.FilterQuality)
			c.composite(x, y, paint.Shade(px))
		}
	}
}

// DrawImageNine draws img as a nine-patch around center stretched to dst.
func (c *Canvas) DrawImageNine(img *imagebox.Image, center, dst imagebox.Rect, p *imagebox.Paint) {
	if img == nil {
		return
	}
	for _, patch := range imagebox.NinePatch(img.Size(), center, dst) {
		c.DrawImageRect(img, patch.Src, patch.Dst, p)
	}
}

func (c *Canvas) composite(x, y int, s color.RGBA) {
	if s.A == 0 {
		return
	}
	i := c.dst.PixOffset(x, y)
	d := c.dst.Pix[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = blend.Apply(blend.ModeSrcOver, s.R, s.G, s.B, s.A, d[0], d[1], d[2], d[3])
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.dst)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return c.EncodePNG(f)
}
