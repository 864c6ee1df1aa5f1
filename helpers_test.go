package imagebox

import (
	"errors"
	"fmt"
	"image/color"
	"testing"
)

// solidImage returns a w×h image filled with c.
func solidImage(t *testing.T, w, h int, c color.NRGBA) *Image {
	t.Helper()
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	img, err := NewImage(w, h, pix)
	if err != nil {
		t.Fatalf("NewImage(%d, %d) error = %v", w, h, err)
	}
	return img
}

// expectContractPanic fails t unless fn panics with an error wrapping
// ErrContract.
func expectContractPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrContract) {
			t.Fatalf("panic = %v, want error wrapping ErrContract", r)
		}
	}()
	fn()
}

// countingScheduler records every invalidation request.
type countingScheduler struct {
	layouts int
	paints  int
}

func (s *countingScheduler) ScheduleLayout(RenderObject) { s.layouts++ }
func (s *countingScheduler) SchedulePaint(RenderObject)  { s.paints++ }

func (s *countingScheduler) reset() { s.layouts, s.paints = 0, 0 }

// canvasLog records canvas calls as strings.
type canvasLog struct {
	calls  []string
	paints []*Paint
}

func (c *canvasLog) Save()           { c.calls = append(c.calls, "save") }
func (c *canvasLog) Restore()        { c.calls = append(c.calls, "restore") }
func (c *canvasLog) ClipRect(r Rect) { c.calls = append(c.calls, "clip "+fmtRect(r)) }

func (c *canvasLog) Translate(dx, dy float64) {
	c.calls = append(c.calls, fmt.Sprintf("translate %g %g", dx, dy))
}

func (c *canvasLog) Scale(sx, sy float64) {
	c.calls = append(c.calls, fmt.Sprintf("scale %g %g", sx, sy))
}

func (c *canvasLog) DrawImageRect(_ *Image, src, dst Rect, p *Paint) {
	c.calls = append(c.calls, "rect "+fmtRect(src)+" -> "+fmtRect(dst))
	c.paints = append(c.paints, p)
}

func (c *canvasLog) DrawImageNine(_ *Image, center, dst Rect, p *Paint) {
	c.calls = append(c.calls, "nine "+fmtRect(center)+" -> "+fmtRect(dst))
	c.paints = append(c.paints, p)
}

func fmtRect(r Rect) string {
	return fmt.Sprintf("[%g %g %g %g]", r.Left, r.Top, r.Right, r.Bottom)
}
