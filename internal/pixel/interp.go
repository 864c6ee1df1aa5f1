package pixel

import "math"

// Filter selects how a Buffer is sampled between pixel centres.
type Filter uint8

const (
	// FilterNearest selects the pixel containing the sample point.
	FilterNearest Filter = iota

	// FilterBilinear interpolates the four nearest pixel centres.
	FilterBilinear

	// FilterBicubic uses Catmull-Rom weights over a 4x4 neighbourhood.
	FilterBicubic
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Region is a half-open pixel rectangle [X0, X1) x [Y0, Y1) that sampling is
// clamped to, so neighbouring parts of the buffer never bleed in.
type Region struct {
	X0, Y0, X1, Y1 int
}

// Full returns the region covering the whole buffer.
func (b *Buffer) Full() Region {
	return Region{X1: b.width, Y1: b.height}
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Sample returns the premultiplied colour at continuous coordinates (x, y),
// where pixel (i, j) covers [i, i+1) x [j, j+1).
func Sample(b *Buffer, x, y float64, r Region, f Filter) Color {
	if r.Empty() {
		return Color{}
	}
	switch f {
	case FilterNearest:
		return sampleNearest(b, x, y, r)
	case FilterBicubic:
		return sampleBicubic(b, x, y, r)
	default:
		return sampleBilinear(b, x, y, r)
	}
}

func sampleNearest(b *Buffer, x, y float64, r Region) Color {
	px := clamp(int(math.Floor(x)), r.X0, r.X1-1)
	py := clamp(int(math.Floor(y)), r.Y0, r.Y1-1)
	return b.Premul(px, py)
}

func sampleBilinear(b *Buffer, x, y float64, r Region) Color {
	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, r.X0, r.X1-1)
	y1 := clamp(y0+1, r.Y0, r.Y1-1)
	x0 = clamp(x0, r.X0, r.X1-1)
	y0 = clamp(y0, r.Y0, r.Y1-1)

	c00 := b.Premul(x0, y0)
	c10 := b.Premul(x1, y0)
	c01 := b.Premul(x0, y1)
	c11 := b.Premul(x1, y1)

	ch := func(v00, v10, v01, v11 uint8) uint8 {
		v := lerp(lerp(float64(v00), float64(v10), tx), lerp(float64(v01), float64(v11), tx), ty)
		return uint8(clampFloat(math.Round(v), 0, 255))
	}
	return Color{
		R: ch(c00.R, c10.R, c01.R, c11.R),
		G: ch(c00.G, c10.G, c01.G, c11.G),
		B: ch(c00.B, c10.B, c01.B, c11.B),
		A: ch(c00.A, c10.A, c01.A, c11.A),
	}
}

func sampleBicubic(b *Buffer, x, y float64, r Region) Color {
	fx := x - 0.5
	fy := y - 0.5
	ix := int(math.Floor(fx))
	iy := int(math.Floor(fy))
	tx := fx - float64(ix)
	ty := fy - float64(iy)

	wx := [4]float64{cubicWeight(tx + 1), cubicWeight(tx), cubicWeight(tx - 1), cubicWeight(tx - 2)}
	wy := [4]float64{cubicWeight(ty + 1), cubicWeight(ty), cubicWeight(ty - 1), cubicWeight(ty - 2)}

	var sr, sg, sb, sa float64
	for j := range 4 {
		py := clamp(iy+j-1, r.Y0, r.Y1-1)
		for i := range 4 {
			px := clamp(ix+i-1, r.X0, r.X1-1)
			c := b.Premul(px, py)
			w := wx[i] * wy[j]
			sr += float64(c.R) * w
			sg += float64(c.G) * w
			sb += float64(c.B) * w
			sa += float64(c.A) * w
		}
	}
	a := clampFloat(math.Round(sa), 0, 255)
	// Catmull-Rom overshoots; keep the result a valid premultiplied colour.
	return Color{
		R: uint8(clampFloat(math.Round(sr), 0, a)),
		G: uint8(clampFloat(math.Round(sg), 0, a)),
		B: uint8(clampFloat(math.Round(sb), 0, a)),
		A: uint8(a),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// cubicWeight is the Catmull-Rom kernel (Mitchell-Netravali B=0, C=0.5).
func cubicWeight(t float64) float64 {
	at := math.Abs(t)
	if at < 1 {
		return 1.5*at*at*at - 2.5*at*at + 1.0
	}
	if at < 2 {
		return -0.5*at*at*at + 2.5*at*at - 4.0*at + 2.0
	}
	return 0
}
