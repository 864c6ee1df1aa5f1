package imagebox

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// TextDirection is the horizontal writing direction that directional
// alignments and mirrored images resolve against.
type TextDirection uint8

const (
	// LTR is left-to-right text, such as English.
	LTR TextDirection = iota
	// RTL is right-to-left text, such as Arabic or Hebrew.
	RTL
)

// String returns "ltr" or "rtl".
func (d TextDirection) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Ptr returns a pointer to a copy of d, for optional fields.
func (d TextDirection) Ptr() *TextDirection {
	return &d
}

// DI converts d to the go-text shaping direction.
func (d TextDirection) DI() di.Direction {
	if d == RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// FromDI converts a horizontal go-text direction. Vertical directions have
// no horizontal writing direction and report false.
func FromDI(d di.Direction) (TextDirection, bool) {
	switch d {
	case di.DirectionLTR:
		return LTR, true
	case di.DirectionRTL:
		return RTL, true
	default:
		return LTR, false
	}
}

// DetectTextDirection returns the base direction of text per the Unicode
// bidirectional algorithm: the direction of the first strongly directional
// run. Text without strong characters reports false.
func DetectTextDirection(text string) (TextDirection, bool) {
	if text == "" {
		return LTR, false
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return LTR, false
	}
	ordering, err := p.Order()
	if err != nil {
		return LTR, false
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		switch run.Direction() {
		case bidi.LeftToRight:
			if hasStrong(run.String()) {
				return LTR, true
			}
		case bidi.RightToLeft:
			return RTL, true
		}
	}
	return LTR, false
}

// hasStrong reports whether s contains a strong left-to-right character;
// neutral-only runs are reported left-to-right by the bidi package.
func hasStrong(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		if props.Class() == bidi.L {
			return true
		}
	}
	return false
}
