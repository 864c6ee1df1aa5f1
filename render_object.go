package imagebox

// RenderObject is a node the pipeline owner can lay out and paint.
type RenderObject interface {
	// PerformLayout recomputes the node's size from its last constraints.
	PerformLayout()

	// Paint draws the node with its top-left corner at offset.
	Paint(ctx *PaintContext, offset Offset)
}

// PaintContext carries the canvas a paint pass draws onto.
type PaintContext struct {
	Canvas Canvas
}

// PaintImage draws p onto the context's canvas.
func (ctx *PaintContext) PaintImage(p ImagePaint) {
	PaintImage(ctx.Canvas, p)
}

// HitTestEntry records one node hit at a local position.
type HitTestEntry struct {
	Target   RenderObject
	Position Offset
}

// HitTestResult accumulates the nodes under a hit-test point, innermost
// first.
type HitTestResult struct {
	entries []HitTestEntry
}

// Add appends target to the result.
func (r *HitTestResult) Add(target RenderObject, position Offset) {
	r.entries = append(r.entries, HitTestEntry{Target: target, Position: position})
}

// Entries returns the recorded hits.
func (r *HitTestResult) Entries() []HitTestEntry {
	return r.entries
}
