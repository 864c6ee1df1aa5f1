package imagebox

import "math"

// property names one mutable attribute of a RenderImage.
type property uint8

const (
	propImage property = iota
	propWidth
	propHeight
	propScale
	propColor
	propColorBlendMode
	propFit
	propAlignment
	propRepeat
	propCenterSlice
	propMatchTextDirection
	propTextDirection
	propOpacity
	propFilterQuality
	propInvertColors
	propIsAntiAlias

	propCount
)

// tier is the invalidation an effective property change requests.
type tier uint8

const (
	tierPaint tier = iota
	tierLayout
	// tierLayoutUnlessSized requests layout unless both explicit
	// dimensions are set, in which case the size cannot change.
	tierLayoutUnlessSized
)

type propertyEffect struct {
	tier      tier
	refilter  bool
	unresolve bool
}

var propertyTiers = [propCount]propertyEffect{
	propImage:              {tier: tierLayoutUnlessSized},
	propWidth:              {tier: tierLayout},
	propHeight:             {tier: tierLayout},
	propScale:              {tier: tierLayout},
	propColor:              {tier: tierPaint, refilter: true},
	propColorBlendMode:     {tier: tierPaint, refilter: true},
	propFit:                {tier: tierPaint},
	propAlignment:          {tier: tierPaint, unresolve: true},
	propRepeat:             {tier: tierPaint},
	propCenterSlice:        {tier: tierPaint},
	propMatchTextDirection: {tier: tierPaint, unresolve: true},
	propTextDirection:      {tier: tierPaint, unresolve: true},
	propOpacity:            {tier: tierPaint},
	propFilterQuality:      {tier: tierPaint},
	propInvertColors:       {tier: tierPaint},
	propIsAntiAlias:        {tier: tierPaint},
}

// RenderImage is a render object that sizes itself from its constraints and
// an image, and paints that image into its box.
//
// Every setter is a no-op when the new value equals the current one
// (optional values compare by pointee). An effective change requests exactly
// one invalidation from the attached Scheduler.
type RenderImage struct {
	image              *Image
	debugImageLabel    string
	width              *float64
	height             *float64
	scale              float64
	color              *Color
	colorBlendMode     *BlendMode
	fit                *BoxFit
	alignment          AlignmentGeometry
	repeat             ImageRepeat
	centerSlice        *Rect
	matchTextDirection bool
	textDirection      *TextDirection
	opacity            float64
	filterQuality      FilterQuality
	invertColors       bool
	isAntiAlias        bool

	colorFilter *ColorFilter

	// resolvedAlignment and flipHorizontally are nil until the next paint
	// resolves them.
	resolvedAlignment *Alignment
	flipHorizontally  *bool

	owner       Scheduler
	constraints *BoxConstraints
	size        Size
	needsLayout bool
	needsPaint  bool
}

// NewRenderImage creates a node with the given options applied in order.
func NewRenderImage(opts ...Option) *RenderImage {
	r := &RenderImage{
		scale:         1,
		alignment:     AlignmentCenter,
		repeat:        NoRepeat,
		opacity:       1,
		filterQuality: FilterQualityLow,
		needsLayout:   true,
		needsPaint:    true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RenderImage) changed(p property) {
	effect := propertyTiers[p]
	if effect.refilter {
		r.updateColorFilter()
	}
	if effect.unresolve {
		r.markNeedResolution()
	}
	switch effect.tier {
	case tierLayout:
		r.markNeedsLayout()
	case tierLayoutUnlessSized:
		if r.width == nil || r.height == nil {
			r.markNeedsLayout()
		} else {
			r.markNeedsPaint()
		}
	default:
		r.markNeedsPaint()
	}
}

func (r *RenderImage) markNeedsLayout() {
	r.needsLayout = true
	r.needsPaint = true
	if r.owner != nil {
		r.owner.ScheduleLayout(r)
	}
}

func (r *RenderImage) markNeedsPaint() {
	r.needsPaint = true
	if r.owner != nil {
		r.owner.SchedulePaint(r)
	}
}

func (r *RenderImage) markNeedResolution() {
	r.resolvedAlignment = nil
	r.flipHorizontally = nil
}

func (r *RenderImage) updateColorFilter() {
	if r.color == nil {
		r.colorFilter = nil
		return
	}
	mode := BlendSrcIn
	if r.colorBlendMode != nil {
		mode = *r.colorBlendMode
	}
	r.colorFilter = NewModeFilter(*r.color, mode)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ptrCopy[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Image returns the image, or nil.
func (r *RenderImage) Image() *Image { return r.image }

// SetImage sets the image to display. A nil image makes the node paint
// nothing and take the smallest size its constraints allow.
func (r *RenderImage) SetImage(img *Image) {
	if img == r.image {
		return
	}
	r.image = img
	r.changed(propImage)
}

// DebugImageLabel returns the label used in diagnostics.
func (r *RenderImage) DebugImageLabel() string { return r.debugImageLabel }

// SetDebugImageLabel sets the label used in diagnostics. It never
// invalidates the node.
func (r *RenderImage) SetDebugImageLabel(label string) {
	r.debugImageLabel = label
}

// Width returns the explicit width, or nil.
func (r *RenderImage) Width() *float64 { return ptrCopy(r.width) }

// SetWidth fixes the node's width. Nil lets the image and constraints
// decide.
func (r *RenderImage) SetWidth(w *float64) {
	if ptrEqual(w, r.width) {
		return
	}
	r.width = ptrCopy(w)
	r.changed(propWidth)
}

// Height returns the explicit height, or nil.
func (r *RenderImage) Height() *float64 { return ptrCopy(r.height) }

// SetHeight fixes the node's height. Nil lets the image and constraints
// decide.
func (r *RenderImage) SetHeight(h *float64) {
	if ptrEqual(h, r.height) {
		return
	}
	r.height = ptrCopy(h)
	r.changed(propHeight)
}

// Scale returns the image pixels per logical pixel.
func (r *RenderImage) Scale() float64 { return r.scale }

// SetScale sets the image pixels per logical pixel. It panics unless s is
// finite and positive.
func (r *RenderImage) SetScale(s float64) {
	if !(s > 0) || math.IsInf(s, 0) {
		contractf("scale must be finite and positive, got %v", s)
	}
	if s == r.scale {
		return
	}
	r.scale = s
	r.changed(propScale)
}

// Color returns the tint colour, or nil.
func (r *RenderImage) Color() *Color { return ptrCopy(r.color) }

// SetColor sets the colour blended into every pixel with ColorBlendMode.
func (r *RenderImage) SetColor(c *Color) {
	if ptrEqual(c, r.color) {
		return
	}
	r.color = ptrCopy(c)
	r.changed(propColor)
}

// ColorBlendMode returns the blend mode for Color, or nil.
func (r *RenderImage) ColorBlendMode() *BlendMode { return ptrCopy(r.colorBlendMode) }

// SetColorBlendMode sets how Color is combined with the image. Nil means
// BlendSrcIn. It panics on an unknown mode.
func (r *RenderImage) SetColorBlendMode(m *BlendMode) {
	if m != nil && !m.Valid() {
		contractf("unknown blend mode %d", uint8(*m))
	}
	if ptrEqual(m, r.colorBlendMode) {
		return
	}
	r.colorBlendMode = ptrCopy(m)
	r.changed(propColorBlendMode)
}

// ColorFilter returns the filter derived from Color and ColorBlendMode, or
// nil when no colour is set.
func (r *RenderImage) ColorFilter() *ColorFilter { return r.colorFilter }

// Fit returns the fit, or nil for the paint-time default.
func (r *RenderImage) Fit() *BoxFit { return ptrCopy(r.fit) }

// SetFit sets how the image is inscribed into the box.
func (r *RenderImage) SetFit(f *BoxFit) {
	if ptrEqual(f, r.fit) {
		return
	}
	r.fit = ptrCopy(f)
	r.changed(propFit)
}

// Alignment returns the alignment as set.
func (r *RenderImage) Alignment() AlignmentGeometry { return r.alignment }

// SetAlignment sets where the image sits within the box. It panics on nil.
func (r *RenderImage) SetAlignment(a AlignmentGeometry) {
	if a == nil {
		contractf("alignment must not be nil")
	}
	if a == r.alignment {
		return
	}
	r.alignment = a
	r.changed(propAlignment)
}

// Repeat returns the repeat mode.
func (r *RenderImage) Repeat() ImageRepeat { return r.repeat }

// SetRepeat sets how the image tiles the part of the box it does not
// cover. It panics on an unknown mode.
func (r *RenderImage) SetRepeat(rep ImageRepeat) {
	if !rep.Valid() {
		contractf("unknown repeat mode %d", uint8(rep))
	}
	if rep == r.repeat {
		return
	}
	r.repeat = rep
	r.changed(propRepeat)
}

// CenterSlice returns the nine-patch centre, or nil.
func (r *RenderImage) CenterSlice() *Rect { return ptrCopy(r.centerSlice) }

// SetCenterSlice sets the nine-patch centre in logical image coordinates.
func (r *RenderImage) SetCenterSlice(cs *Rect) {
	if ptrEqual(cs, r.centerSlice) {
		return
	}
	r.centerSlice = ptrCopy(cs)
	r.changed(propCenterSlice)
}

// MatchTextDirection reports whether the image is mirrored in RTL.
func (r *RenderImage) MatchTextDirection() bool { return r.matchTextDirection }

// SetMatchTextDirection sets whether the image is mirrored when the text
// direction is RTL.
func (r *RenderImage) SetMatchTextDirection(match bool) {
	if match == r.matchTextDirection {
		return
	}
	r.matchTextDirection = match
	r.changed(propMatchTextDirection)
}

// TextDirection returns the text direction, or nil.
func (r *RenderImage) TextDirection() *TextDirection { return ptrCopy(r.textDirection) }

// SetTextDirection sets the direction used to resolve a directional
// alignment and to decide mirroring.
func (r *RenderImage) SetTextDirection(d *TextDirection) {
	if ptrEqual(d, r.textDirection) {
		return
	}
	r.textDirection = ptrCopy(d)
	r.changed(propTextDirection)
}

// Opacity returns the opacity.
func (r *RenderImage) Opacity() float64 { return r.opacity }

// SetOpacity sets the opacity. Values outside [0, 1] are clamped when
// painting. It panics on NaN.
func (r *RenderImage) SetOpacity(o float64) {
	if math.IsNaN(o) {
		contractf("opacity must not be NaN")
	}
	if o == r.opacity {
		return
	}
	r.opacity = o
	r.changed(propOpacity)
}

// FilterQuality returns the sampling quality.
func (r *RenderImage) FilterQuality() FilterQuality { return r.filterQuality }

// SetFilterQuality sets the sampling quality.
func (r *RenderImage) SetFilterQuality(q FilterQuality) {
	if q == r.filterQuality {
		return
	}
	r.filterQuality = q
	r.changed(propFilterQuality)
}

// InvertColors reports whether colours are inverted when painting.
func (r *RenderImage) InvertColors() bool { return r.invertColors }

// SetInvertColors sets whether colours are inverted after filtering.
func (r *RenderImage) SetInvertColors(invert bool) {
	if invert == r.invertColors {
		return
	}
	r.invertColors = invert
	r.changed(propInvertColors)
}

// IsAntiAlias reports whether anti-aliasing is requested.
func (r *RenderImage) IsAntiAlias() bool { return r.isAntiAlias }

// SetIsAntiAlias sets whether anti-aliasing is requested.
func (r *RenderImage) SetIsAntiAlias(aa bool) {
	if aa == r.isAntiAlias {
		return
	}
	r.isAntiAlias = aa
	r.changed(propIsAntiAlias)
}

// Attach connects the node to owner and re-issues any pending
// invalidation.
func (r *RenderImage) Attach(owner Scheduler) {
	r.owner = owner
	if owner == nil {
		return
	}
	if r.needsLayout {
		owner.ScheduleLayout(r)
	} else if r.needsPaint {
		owner.SchedulePaint(r)
	}
}

// Detach disconnects the node from its owner. Owners that can forget a
// node (such as PipelineOwner) drop its pending work.
func (r *RenderImage) Detach() {
	if d, ok := r.owner.(interface{ Drop(RenderObject) }); ok {
		d.Drop(r)
	}
	r.owner = nil
}

// Owner returns the attached scheduler, or nil.
func (r *RenderImage) Owner() Scheduler { return r.owner }

// NeedsLayout reports whether the node's size is stale.
func (r *RenderImage) NeedsLayout() bool { return r.needsLayout }

// NeedsPaint reports whether the node must be repainted.
func (r *RenderImage) NeedsPaint() bool { return r.needsPaint }

// sizeForConstraints applies the explicit dimensions, then fits the image's
// logical size into the result while keeping its aspect ratio.
func (r *RenderImage) sizeForConstraints(c BoxConstraints) Size {
	c = TightFor(r.width, r.height).Enforce(c)
	if r.image == nil {
		return c.Smallest()
	}
	return c.ConstrainSizeAndAttemptToPreserveAspectRatio(r.image.Size().Div(r.scale))
}

func checkExtent(name string, v float64) {
	if !(v >= 0) {
		contractf("%s must be non-negative, got %v", name, v)
	}
}

// MinIntrinsicWidth returns the smallest width the node can take at
// height. Without explicit dimensions the image may shrink to nothing.
func (r *RenderImage) MinIntrinsicWidth(height float64) float64 {
	checkExtent("height", height)
	if r.width == nil && r.height == nil {
		return 0
	}
	return r.sizeForConstraints(TightForFinite(Infinity, height)).Width
}

// MaxIntrinsicWidth returns the width the node would like at height.
func (r *RenderImage) MaxIntrinsicWidth(height float64) float64 {
	checkExtent("height", height)
	return r.sizeForConstraints(TightForFinite(Infinity, height)).Width
}

// MinIntrinsicHeight returns the smallest height the node can take at
// width.
func (r *RenderImage) MinIntrinsicHeight(width float64) float64 {
	checkExtent("width", width)
	if r.width == nil && r.height == nil {
		return 0
	}
	return r.sizeForConstraints(TightForFinite(width, Infinity)).Height
}

// MaxIntrinsicHeight returns the height the node would like at width.
func (r *RenderImage) MaxIntrinsicHeight(width float64) float64 {
	checkExtent("width", width)
	return r.sizeForConstraints(TightForFinite(width, Infinity)).Height
}

// ComputeDryLayout returns the size Layout would choose for c without
// changing the node.
func (r *RenderImage) ComputeDryLayout(c BoxConstraints) Size {
	return r.sizeForConstraints(c)
}

// Layout sizes the node for c. It panics if c is not normalized.
func (r *RenderImage) Layout(c BoxConstraints) {
	if !c.IsNormalized() {
		contractf("constraints are not normalized: %v", c)
	}
	r.constraints = &c
	r.size = r.sizeForConstraints(c)
	r.needsLayout = false
	Logger().Debug("imagebox: layout", "constraints", c, "size", r.size)
}

// PerformLayout re-runs layout with the last constraints. It does nothing
// before the first Layout.
func (r *RenderImage) PerformLayout() {
	if r.constraints == nil {
		return
	}
	r.Layout(*r.constraints)
}

// Constraints returns the constraints of the last layout, or nil.
func (r *RenderImage) Constraints() *BoxConstraints { return ptrCopy(r.constraints) }

// Size returns the size chosen by the last layout.
func (r *RenderImage) Size() Size { return r.size }

// resolve fills the alignment cache if it is stale.
func (r *RenderImage) resolve() {
	if r.resolvedAlignment != nil {
		return
	}
	if r.matchTextDirection && r.textDirection == nil {
		contractf("matchTextDirection requires a text direction")
	}
	a, err := r.alignment.Resolve(r.textDirection)
	if err != nil {
		panic(err)
	}
	flip := r.matchTextDirection && *r.textDirection == RTL
	r.resolvedAlignment = &a
	r.flipHorizontally = &flip
	Logger().Debug("imagebox: resolved alignment", "alignment", a, "flip", flip)
}

// ImagePaintCommand resolves the alignment if needed and returns the draw
// the node would issue at offset. ok is false when there is no image.
func (r *RenderImage) ImagePaintCommand(offset Offset) (p ImagePaint, ok bool) {
	if r.image == nil {
		return ImagePaint{}, false
	}
	r.resolve()
	return ImagePaint{
		Rect:             RectFromOffsetSize(offset, r.size),
		Image:            r.image,
		DebugLabel:       r.debugImageLabel,
		Scale:            r.scale,
		Opacity:          r.opacity,
		ColorFilter:      r.colorFilter,
		Fit:              ptrCopy(r.fit),
		Alignment:        *r.resolvedAlignment,
		CenterSlice:      ptrCopy(r.centerSlice),
		Repeat:           r.repeat,
		FlipHorizontally: *r.flipHorizontally,
		InvertColors:     r.invertColors,
		FilterQuality:    r.filterQuality,
		IsAntiAlias:      r.isAntiAlias,
	}, true
}

// Paint draws the image at offset. It panics when the alignment cannot be
// resolved because the text direction is missing.
func (r *RenderImage) Paint(ctx *PaintContext, offset Offset) {
	r.needsPaint = false
	p, ok := r.ImagePaintCommand(offset)
	if !ok {
		return
	}
	ctx.PaintImage(p)
}

// HitTestSelf reports whether a point inside the node hits it. Images are
// always opaque to hits.
func (r *RenderImage) HitTestSelf(Offset) bool { return true }

// HitTest adds the node to result when position lies within its size.
func (r *RenderImage) HitTest(result *HitTestResult, position Offset) bool {
	if !r.size.Contains(position) || !r.HitTestSelf(position) {
		return false
	}
	result.Add(r, position)
	return true
}
