package imagebox

// Option configures a RenderImage during creation.
// Options go through the same validation as the matching setters.
//
// Example:
//
//	node := imagebox.NewRenderImage(
//		imagebox.WithImage(img),
//		imagebox.WithFit(imagebox.FitCover),
//		imagebox.WithAlignment(imagebox.AlignmentDirectionalCenterStart),
//		imagebox.WithTextDirection(imagebox.RTL),
//	)
type Option func(*RenderImage)

// WithImage sets the image.
func WithImage(img *Image) Option {
	return func(r *RenderImage) { r.SetImage(img) }
}

// WithDebugImageLabel sets the label shown in diagnostics.
func WithDebugImageLabel(label string) Option {
	return func(r *RenderImage) { r.SetDebugImageLabel(label) }
}

// WithWidth fixes the width.
func WithWidth(w float64) Option {
	return func(r *RenderImage) { r.SetWidth(&w) }
}

// WithHeight fixes the height.
func WithHeight(h float64) Option {
	return func(r *RenderImage) { r.SetHeight(&h) }
}

// WithSize fixes both dimensions.
func WithSize(w, h float64) Option {
	return func(r *RenderImage) {
		r.SetWidth(&w)
		r.SetHeight(&h)
	}
}

// WithScale sets the image pixels per logical pixel.
func WithScale(s float64) Option {
	return func(r *RenderImage) { r.SetScale(s) }
}

// WithColor sets the tint colour.
func WithColor(c Color) Option {
	return func(r *RenderImage) { r.SetColor(&c) }
}

// WithColorBlendMode sets how the tint colour is blended.
func WithColorBlendMode(m BlendMode) Option {
	return func(r *RenderImage) { r.SetColorBlendMode(&m) }
}

// WithFit sets the box fit.
func WithFit(f BoxFit) Option {
	return func(r *RenderImage) { r.SetFit(&f) }
}

// WithAlignment sets the alignment.
func WithAlignment(a AlignmentGeometry) Option {
	return func(r *RenderImage) { r.SetAlignment(a) }
}

// WithRepeat sets the repeat mode.
func WithRepeat(rep ImageRepeat) Option {
	return func(r *RenderImage) { r.SetRepeat(rep) }
}

// WithCenterSlice sets the nine-patch centre.
func WithCenterSlice(cs Rect) Option {
	return func(r *RenderImage) { r.SetCenterSlice(&cs) }
}

// WithMatchTextDirection mirrors the image in RTL.
func WithMatchTextDirection(match bool) Option {
	return func(r *RenderImage) { r.SetMatchTextDirection(match) }
}

// WithTextDirection sets the text direction.
func WithTextDirection(d TextDirection) Option {
	return func(r *RenderImage) { r.SetTextDirection(&d) }
}

// WithOpacity sets the opacity.
func WithOpacity(o float64) Option {
	return func(r *RenderImage) { r.SetOpacity(o) }
}

// WithFilterQuality sets the sampling quality.
func WithFilterQuality(q FilterQuality) Option {
	return func(r *RenderImage) { r.SetFilterQuality(q) }
}

// WithInvertColors inverts colours when painting.
func WithInvertColors(invert bool) Option {
	return func(r *RenderImage) { r.SetInvertColors(invert) }
}

// WithIsAntiAlias requests anti-aliasing.
func WithIsAntiAlias(aa bool) Option {
	return func(r *RenderImage) { r.SetIsAntiAlias(aa) }
}
