// Package imagebox provides a render-tree node that lays out and paints a
// raster image inside a box.
//
// # Overview
//
// RenderImage sizes itself from incoming BoxConstraints, optional explicit
// dimensions and the image's logical size (pixels divided by scale), keeping
// the image's aspect ratio where the constraints allow. When painted it emits
// a single ImagePaint draw that PaintImage turns into canvas calls.
//
// # Quick Start
//
//	img, _ := imagebox.ImageFromStd(decoded)
//	node := imagebox.NewRenderImage(
//		imagebox.WithImage(img),
//		imagebox.WithFit(imagebox.FitContain),
//	)
//	node.Layout(imagebox.Loose(imagebox.Sz(200, 100)))
//
//	c := raster.New(200, 100)
//	node.Paint(&imagebox.PaintContext{Canvas: c}, imagebox.Offset{})
//
// # Painting
//
// PaintImage supports the BoxFit modes, alignment, tiling with ImageRepeat,
// nine-patch stretching with a centre slice, horizontal mirroring for
// right-to-left text and a per-pixel colour filter. Canvas implementations
// live in subpackages:
//   - raster: software rendering into an image.RGBA
//   - recording: captures draw commands for inspection and replay
//   - integration/fogcanvas: draws onto a fogleman/gg context
//
// The gpudesc package maps a draw to GPU sampler and blend descriptors.
//
// # Invalidation
//
// Setters are no-ops for unchanged values. Effective changes request layout
// or paint from the attached Scheduler; PipelineOwner coalesces requests and
// flushes them in batches.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package imagebox
