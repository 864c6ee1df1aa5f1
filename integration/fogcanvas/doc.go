// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fogcanvas draws imagebox paint commands onto a fogleman/gg
// context.
//
// The canvas maps Save and Restore to Push and Pop, clips with rectangle
// paths and draws each image region as a pre-shaded sub-image through the
// context's transform. fogleman/gg always resamples bilinearly, so
// FilterQuality is ignored.
//
// # Usage
//
//	dc := gg.NewContext(400, 300)
//	c := fogcanvas.NewForContext(dc)
//	node.Paint(&imagebox.PaintContext{Canvas: c}, imagebox.Offset{})
//	_ = dc.SavePNG("out.png")
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use.
package fogcanvas
