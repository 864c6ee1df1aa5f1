package imagebox

import "math"

// ImagePaint describes one image draw: which image, into which rectangle and
// how it is fitted, aligned, tiled, sliced, flipped and filtered.
//
// A zero Scale is treated as 1. Opacity is used as given and clamped to
// [0, 1], so a zero Opacity draws nothing.
type ImagePaint struct {
	Rect        Rect
	Image       *Image
	DebugLabel  string
	Scale       float64
	Opacity     float64
	ColorFilter *ColorFilter

	// Fit is nil for the default: FitScaleDown, or FitFill when CenterSlice
	// is set.
	Fit       *BoxFit
	Alignment Alignment

	// CenterSlice is the stretchable centre of a nine-patch image, in
	// logical image coordinates (pixels divided by Scale).
	CenterSlice *Rect

	Repeat           ImageRepeat
	FlipHorizontally bool
	InvertColors     bool
	FilterQuality    FilterQuality
	IsAntiAlias      bool
}

// PaintImage draws p onto canvas.
//
// It panics with an error wrapping ErrContract when CenterSlice is combined
// with FitNone or FitCover, or with any fit that would crop the image.
func PaintImage(canvas Canvas, p ImagePaint) {
	if p.Rect.IsEmpty() || p.Image == nil {
		return
	}
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}

	rect := p.Rect
	outputSize := rect.Size()
	inputSize := p.Image.Size()

	var sliceBorder Size
	if p.CenterSlice != nil {
		sliceBorder = inputSize.Div(scale).Sub(p.CenterSlice.Size())
		outputSize = outputSize.Sub(sliceBorder)
		inputSize = inputSize.Sub(sliceBorder.Scale(scale))
	}

	fit := defaultFit(p.Fit, p.CenterSlice != nil)
	if p.CenterSlice != nil && (fit == FitNone || fit == FitCover) {
		contractf("center slice cannot be used with fit %v", fit)
	}

	fitted := ApplyBoxFit(fit, inputSize.Div(scale), outputSize)
	sourceSize := fitted.Source.Scale(scale)
	destinationSize := fitted.Destination
	if p.CenterSlice != nil {
		outputSize = outputSize.Add(sliceBorder)
		destinationSize = destinationSize.Add(sliceBorder)
		if !sizeNear(sourceSize, inputSize) {
			contractf("center slice used with fit %v that does not keep the image fully visible", fit)
		}
	}

	repeat := p.Repeat
	if repeat != NoRepeat && destinationSize == outputSize {
		repeat = NoRepeat
	}

	paint := &Paint{
		ColorFilter:   p.ColorFilter,
		Opacity:       clampFloat(p.Opacity, 0, 1),
		FilterQuality: p.FilterQuality,
		InvertColors:  p.InvertColors,
		IsAntiAlias:   p.IsAntiAlias,
	}

	halfWidthDelta := (outputSize.Width - destinationSize.Width) / 2
	halfHeightDelta := (outputSize.Height - destinationSize.Height) / 2
	ax := p.Alignment.X
	if p.FlipHorizontally {
		ax = -ax
	}
	dx := halfWidthDelta + ax*halfWidthDelta
	dy := halfHeightDelta + p.Alignment.Y*halfHeightDelta
	destinationRect := RectFromOffsetSize(rect.TopLeft().Add(Offset{X: dx, Y: dy}), destinationSize)

	needsSave := p.CenterSlice != nil || repeat != NoRepeat || p.FlipHorizontally
	if needsSave {
		canvas.Save()
	}
	if repeat != NoRepeat {
		canvas.ClipRect(rect)
	}
	if p.FlipHorizontally {
		d := -(rect.Left + rect.Width()/2)
		canvas.Translate(-d, 0)
		canvas.Scale(-1, 1)
		canvas.Translate(d, 0)
	}

	if p.CenterSlice == nil {
		src := p.Alignment.Inscribe(sourceSize, RectFromOffsetSize(Offset{}, inputSize))
		if repeat == NoRepeat {
			canvas.DrawImageRect(p.Image, src, destinationRect, paint)
		} else {
			for _, tile := range TileRects(rect, destinationRect, repeat) {
				canvas.DrawImageRect(p.Image, src, tile, paint)
			}
		}
	} else {
		canvas.Scale(1/scale, 1/scale)
		center := p.CenterSlice.Scale(scale)
		if repeat == NoRepeat {
			canvas.DrawImageNine(p.Image, center, destinationRect.Scale(scale), paint)
		} else {
			for _, tile := range TileRects(rect, destinationRect, repeat) {
				canvas.DrawImageNine(p.Image, center, tile.Scale(scale), paint)
			}
		}
	}

	if needsSave {
		canvas.Restore()
	}
}

// TileRects returns copies of fundamental shifted by whole strides so that
// together they cover output along the axes repeat tiles on.
// Tiles are ordered column by column, left to right then top to bottom.
func TileRects(output, fundamental Rect, repeat ImageRepeat) []Rect {
	if fundamental.IsEmpty() {
		return nil
	}
	strideX := fundamental.Width()
	strideY := fundamental.Height()

	var startX, startY, stopX, stopY int
	if repeat.RepeatsX() {
		startX = int(math.Floor((output.Left - fundamental.Left) / strideX))
		stopX = int(math.Ceil((output.Right - fundamental.Right) / strideX))
	}
	if repeat.RepeatsY() {
		startY = int(math.Floor((output.Top - fundamental.Top) / strideY))
		stopY = int(math.Ceil((output.Bottom - fundamental.Bottom) / strideY))
	}

	tiles := make([]Rect, 0, (stopX-startX+1)*(stopY-startY+1))
	for i := startX; i <= stopX; i++ {
		for j := startY; j <= stopY; j++ {
			tiles = append(tiles, fundamental.Shift(Offset{X: float64(i) * strideX, Y: float64(j) * strideY}))
		}
	}
	return tiles
}

func defaultFit(fit *BoxFit, sliced bool) BoxFit {
	if fit != nil {
		return *fit
	}
	if sliced {
		return FitFill
	}
	return FitScaleDown
}

func sizeNear(a, b Size) bool {
	const eps = 1e-9
	return math.Abs(a.Width-b.Width) <= eps*math.Max(1, math.Abs(b.Width)) &&
		math.Abs(a.Height-b.Height) <= eps*math.Max(1, math.Abs(b.Height))
}
