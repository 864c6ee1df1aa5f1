// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background color.Color
	target     *image.RGBA
}

func defaultOptions() options {
	return options{}
}

// WithBackground fills the canvas with c before any drawing.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithTarget draws into an existing image instead of allocating one. The
// width and height passed to New are ignored.
func WithTarget(dst *image.RGBA) Option {
	return func(o *options) {
		o.target = dst
	}
}
