// Package recording captures imagebox canvas calls as typed commands that
// can be inspected and replayed onto another canvas.
//
// # Architecture
//
//   - Recorder: an imagebox.Canvas that records instead of drawing
//   - Recording: the immutable command list with its resources
//   - ResourcePool: images referenced by ImageRef, deduplicated by identity
//
// # Example
//
//	rec := recording.NewRecorder()
//	node.Paint(&imagebox.PaintContext{Canvas: rec}, imagebox.Offset{})
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//		fmt.Println(cmd.Type())
//	}
//	_ = r.Playback(raster.New(200, 100))
package recording
