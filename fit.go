package imagebox

import "math"

// BoxFit describes how an input box is inscribed into an output box.
type BoxFit uint8

const (
	// FitFill stretches the input to the output, distorting the aspect ratio.
	FitFill BoxFit = iota
	// FitContain is as large as possible while fully inside the output.
	FitContain
	// FitCover is as small as possible while covering the whole output.
	FitCover
	// FitFitWidth matches the output width, overflowing or underfilling vertically.
	FitFitWidth
	// FitFitHeight matches the output height.
	FitFitHeight
	// FitNone keeps the input size, cropping what does not fit.
	FitNone
	// FitScaleDown behaves like FitNone when the input fits and FitContain otherwise.
	FitScaleDown
)

// String returns the fit name.
func (f BoxFit) String() string {
	switch f {
	case FitFill:
		return "fill"
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	case FitFitWidth:
		return "fitWidth"
	case FitFitHeight:
		return "fitHeight"
	case FitNone:
		return "none"
	case FitScaleDown:
		return "scaleDown"
	default:
		return "unknown"
	}
}

// Ptr returns a pointer to a copy of f, for optional fields.
func (f BoxFit) Ptr() *BoxFit {
	return &f
}

// FittedSizes is the result of ApplyBoxFit: the portion of the input that is
// shown and the size it is drawn at.
type FittedSizes struct {
	Source      Size
	Destination Size
}

// ApplyBoxFit computes how much of inputSize is shown and how large it is
// drawn inside outputSize. Any non-positive dimension yields zero sizes.
func ApplyBoxFit(fit BoxFit, inputSize, outputSize Size) FittedSizes {
	if inputSize.IsEmpty() || outputSize.IsEmpty() {
		return FittedSizes{}
	}

	var source, destination Size
	outWider := outputSize.Width/outputSize.Height > inputSize.Width/inputSize.Height

	switch fit {
	case FitFill:
		source = inputSize
		destination = outputSize
	case FitContain:
		source = inputSize
		if outWider {
			destination = Size{Width: source.Width * outputSize.Height / source.Height, Height: outputSize.Height}
		} else {
			destination = Size{Width: outputSize.Width, Height: source.Height * outputSize.Width / source.Width}
		}
	case FitCover:
		if outWider {
			source = Size{Width: inputSize.Width, Height: inputSize.Width * outputSize.Height / outputSize.Width}
		} else {
			source = Size{Width: inputSize.Height * outputSize.Width / outputSize.Height, Height: inputSize.Height}
		}
		destination = outputSize
	case FitFitWidth:
		if outWider {
			source = Size{Width: inputSize.Width, Height: inputSize.Width * outputSize.Height / outputSize.Width}
			destination = outputSize
		} else {
			source = inputSize
			destination = Size{Width: outputSize.Width, Height: source.Height * outputSize.Width / source.Width}
		}
	case FitFitHeight:
		if outWider {
			source = inputSize
			destination = Size{Width: source.Width * outputSize.Height / source.Height, Height: outputSize.Height}
		} else {
			source = Size{Width: inputSize.Height * outputSize.Width / outputSize.Height, Height: inputSize.Height}
			destination = outputSize
		}
	case FitNone:
		source = Size{
			Width:  math.Min(inputSize.Width, outputSize.Width),
			Height: math.Min(inputSize.Height, outputSize.Height),
		}
		destination = source
	case FitScaleDown:
		source = inputSize
		destination = inputSize
		aspect := inputSize.Width / inputSize.Height
		if destination.Height > outputSize.Height {
			destination = Size{Width: outputSize.Height * aspect, Height: outputSize.Height}
		}
		if destination.Width > outputSize.Width {
			destination = Size{Width: outputSize.Width, Height: outputSize.Width / aspect}
		}
	}
	return FittedSizes{Source: source, Destination: destination}
}

// ImageRepeat selects which axes an image tiles along when it does not fill
// its box.
type ImageRepeat uint8

const (
	// NoRepeat draws the image once.
	NoRepeat ImageRepeat = iota
	// Repeat tiles on both axes.
	Repeat
	// RepeatX tiles horizontally.
	RepeatX
	// RepeatY tiles vertically.
	RepeatY

	repeatCount
)

// Valid reports whether r is a known repeat mode.
func (r ImageRepeat) Valid() bool {
	return r < repeatCount
}

// RepeatsX reports whether r tiles horizontally.
func (r ImageRepeat) RepeatsX() bool { return r == Repeat || r == RepeatX }

// RepeatsY reports whether r tiles vertically.
func (r ImageRepeat) RepeatsY() bool { return r == Repeat || r == RepeatY }

// String returns the repeat name.
func (r ImageRepeat) String() string {
	switch r {
	case NoRepeat:
		return "noRepeat"
	case Repeat:
		return "repeat"
	case RepeatX:
		return "repeatX"
	case RepeatY:
		return "repeatY"
	default:
		return "unknown"
	}
}
