// Package gpudesc describes how a GPU backend would bind and composite an
// imagebox paint command: texture format, sampler state and blending.
//
// The package builds plain gputypes values and owns no device.
package gpudesc

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imagebox"
)

// Descriptor holds the GPU state for drawing one ImagePaint.
type Descriptor struct {
	Label string

	// Texture.
	Format gputypes.TextureFormat
	Size   gputypes.Extent3D
	Usage  gputypes.TextureUsage

	// Sampler.
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
	MipmapFilter gputypes.FilterMode

	// Target is the colour target the image composites into.
	Target gputypes.ColorTargetState

	// Opacity is the constant alpha multiplier passed to the shader.
	Opacity float32
}

// ForCommand derives the descriptor for p. The target format follows the
// image's byte order so uploads need no swizzle.
func ForCommand(p imagebox.ImagePaint) Descriptor {
	d := Descriptor{
		Label:        p.DebugLabel,
		Format:       gputypes.TextureFormatRGBA8Unorm,
		Usage:        gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		AddressModeU: addressMode(p.Repeat.RepeatsX()),
		AddressModeV: addressMode(p.Repeat.RepeatsY()),
		MagFilter:    filterMode(p.FilterQuality),
		MinFilter:    filterMode(p.FilterQuality),
		MipmapFilter: gputypes.FilterModeNearest,
		Opacity:      float32(clamp01(p.Opacity)),
	}
	if p.FilterQuality >= imagebox.FilterQualityMedium {
		d.MipmapFilter = gputypes.FilterModeLinear
	}
	if p.Image != nil {
		if p.Image.Format().IsBGR() {
			d.Format = gputypes.TextureFormatBGRA8Unorm
		}
		d.Size = gputypes.Extent3D{
			Width:              uint32(p.Image.Width()),
			Height:             uint32(p.Image.Height()),
			DepthOrArrayLayers: 1,
		}
	}
	blend := gputypes.BlendStatePremultiplied()
	d.Target = gputypes.ColorTargetState{
		Format:    d.Format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	return d
}

func addressMode(repeats bool) gputypes.AddressMode {
	if repeats {
		return gputypes.AddressModeRepeat
	}
	return gputypes.AddressModeClampToEdge
}

func filterMode(q imagebox.FilterQuality) gputypes.FilterMode {
	if q == imagebox.FilterQualityNone {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
