package imagebox

import (
	"errors"
	"fmt"
)

// Common errors for imagebox operations.
var (
	// ErrContract marks a violated precondition. Operations that detect one
	// panic with an error wrapping ErrContract; callers are expected never to
	// trigger them.
	ErrContract = errors.New("imagebox: contract violation")

	// ErrInvalidDimensions is returned when an image has non-positive size.
	ErrInvalidDimensions = errors.New("imagebox: invalid image dimensions")

	// ErrDataTooSmall is returned when pixel data is shorter than width*height*4.
	ErrDataTooSmall = errors.New("imagebox: pixel data too small")

	// ErrUnknownBlendMode is returned when parsing an unrecognised blend mode name.
	ErrUnknownBlendMode = errors.New("imagebox: unknown blend mode")
)

// contractf panics with an error wrapping ErrContract.
func contractf(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrContract}, args...)...))
}
