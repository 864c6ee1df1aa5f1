package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/imagebox"
)

// ErrInvalidRef is returned by Playback when a command references an image
// missing from the pool.
var ErrInvalidRef = errors.New("recording: invalid image reference")

// Recorder is an imagebox.Canvas that records every call.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	commands  []Command
	resources *ResourcePool
	depth     int
}

var _ imagebox.Canvas = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 16),
		resources: NewResourcePool(),
	}
}

// FinishRecording returns the recorded commands and resets the recorder.
func (r *Recorder) FinishRecording() *Recording {
	if r.depth != 0 {
		imagebox.Logger().Warn("recording: unbalanced save", "depth", r.depth)
	}
	rec := &Recording{commands: r.commands, resources: r.resources}
	r.commands = make([]Command, 0, 16)
	r.resources = NewResourcePool()
	r.depth = 0
	return rec
}

// Save implements imagebox.Canvas.
func (r *Recorder) Save() {
	r.depth++
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements imagebox.Canvas. Unbalanced calls are dropped.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		imagebox.Logger().Warn("recording: restore without save")
		return
	}
	r.depth--
	r.commands = append(r.commands, RestoreCommand{})
}

// ClipRect implements imagebox.Canvas.
func (r *Recorder) ClipRect(rect imagebox.Rect) {
	r.commands = append(r.commands, ClipRectCommand{Rect: rect})
}

// Translate implements imagebox.Canvas.
func (r *Recorder) Translate(dx, dy float64) {
	r.commands = append(r.commands, TranslateCommand{DX: dx, DY: dy})
}

// Scale implements imagebox.Canvas.
func (r *Recorder) Scale(sx, sy float64) {
	r.commands = append(r.commands, ScaleCommand{SX: sx, SY: sy})
}

// DrawImageRect implements imagebox.Canvas.
func (r *Recorder) DrawImageRect(img *imagebox.Image, src, dst imagebox.Rect, p *imagebox.Paint) {
	if img == nil {
		return
	}
	r.commands = append(r.commands, DrawImageRectCommand{
		Image: r.resources.AddImage(img),
		Src:   src,
		Dst:   dst,
		Paint: clonePaint(p),
	})
}

// DrawImageNine implements imagebox.Canvas.
func (r *Recorder) DrawImageNine(img *imagebox.Image, center, dst imagebox.Rect, p *imagebox.Paint) {
	if img == nil {
		return
	}
	r.commands = append(r.commands, DrawImageNineCommand{
		Image:  r.resources.AddImage(img),
		Center: center,
		Dst:    dst,
		Paint:  clonePaint(p),
	})
}

func clonePaint(p *imagebox.Paint) *imagebox.Paint {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Recording is an immutable list of recorded canvas calls.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Types returns the type of every command, in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, cmd := range r.commands {
		types[i] = cmd.Type()
	}
	return types
}

// Playback replays the recording onto canvas.
func (r *Recording) Playback(canvas imagebox.Canvas) error {
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			canvas.Save()
		case RestoreCommand:
			canvas.Restore()
		case ClipRectCommand:
			canvas.ClipRect(c.Rect)
		case TranslateCommand:
			canvas.Translate(c.DX, c.DY)
		case ScaleCommand:
			canvas.Scale(c.SX, c.SY)
		case DrawImageRectCommand:
			img := r.resources.GetImage(c.Image)
			if img == nil {
				return fmt.Errorf("%w: command %d references %d", ErrInvalidRef, i, c.Image)
			}
			canvas.DrawImageRect(img, c.Src, c.Dst, c.Paint)
		case DrawImageNineCommand:
			img := r.resources.GetImage(c.Image)
			if img == nil {
				return fmt.Errorf("%w: command %d references %d", ErrInvalidRef, i, c.Image)
			}
			canvas.DrawImageNine(img, c.Center, c.Dst, c.Paint)
		}
	}
	return nil
}
