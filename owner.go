package imagebox

import (
	"context"
	"sync"
)

// Scheduler receives invalidation requests from render objects.
type Scheduler interface {
	// ScheduleLayout requests that node be laid out and then repainted.
	ScheduleLayout(node RenderObject)

	// SchedulePaint requests that node be repainted.
	SchedulePaint(node RenderObject)
}

// PipelineOwner collects dirty render objects and flushes them in batches.
// Repeated requests for the same node coalesce into a single entry per tier.
//
// PipelineOwner is safe for concurrent use.
type PipelineOwner struct {
	mu          sync.Mutex
	needsLayout []RenderObject
	needsPaint  []RenderObject
	layoutSet   map[RenderObject]struct{}
	paintSet    map[RenderObject]struct{}
	offsets     map[RenderObject]Offset
}

// NewPipelineOwner returns an empty owner.
func NewPipelineOwner() *PipelineOwner {
	return &PipelineOwner{
		layoutSet: make(map[RenderObject]struct{}),
		paintSet:  make(map[RenderObject]struct{}),
		offsets:   make(map[RenderObject]Offset),
	}
}

// ScheduleLayout implements Scheduler. A layout request also marks the node
// for paint.
func (o *PipelineOwner) ScheduleLayout(node RenderObject) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.layoutSet[node]; !ok {
		o.layoutSet[node] = struct{}{}
		o.needsLayout = append(o.needsLayout, node)
	}
	o.addPaintLocked(node)
}

// SchedulePaint implements Scheduler.
func (o *PipelineOwner) SchedulePaint(node RenderObject) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.addPaintLocked(node)
}

func (o *PipelineOwner) addPaintLocked(node RenderObject) {
	if _, ok := o.paintSet[node]; ok {
		return
	}
	o.paintSet[node] = struct{}{}
	o.needsPaint = append(o.needsPaint, node)
}

// SetOffset records where node is painted by FlushPaint.
func (o *PipelineOwner) SetOffset(node RenderObject, offset Offset) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.offsets[node] = offset
}

// NeedsLayout reports how many nodes are waiting for layout.
func (o *PipelineOwner) NeedsLayout() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.needsLayout)
}

// NeedsPaint reports how many nodes are waiting for paint.
func (o *PipelineOwner) NeedsPaint() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.needsPaint)
}

// FlushLayout lays out every dirty node once, in request order.
func (o *PipelineOwner) FlushLayout() {
	o.mu.Lock()
	dirty := o.needsLayout
	o.needsLayout = nil
	clear(o.layoutSet)
	o.mu.Unlock()

	if len(dirty) > 0 {
		Logger().Debug("imagebox: flush layout", "nodes", len(dirty))
	}
	for _, node := range dirty {
		node.PerformLayout()
	}
}

// FlushPaint paints every dirty node once onto pc, in request order.
// It stops early and returns the context error when ctx is cancelled;
// nodes not yet painted stay dirty.
func (o *PipelineOwner) FlushPaint(ctx context.Context, pc *PaintContext) error {
	o.mu.Lock()
	dirty := o.needsPaint
	o.needsPaint = nil
	clear(o.paintSet)
	o.mu.Unlock()

	if len(dirty) > 0 {
		Logger().Debug("imagebox: flush paint", "nodes", len(dirty))
	}
	for i, node := range dirty {
		if err := ctx.Err(); err != nil {
			o.mu.Lock()
			for _, n := range dirty[i:] {
				o.addPaintLocked(n)
			}
			o.mu.Unlock()
			return err
		}
		o.mu.Lock()
		offset := o.offsets[node]
		o.mu.Unlock()
		node.Paint(pc, offset)
	}
	return nil
}

// Drop forgets node entirely. Detached nodes call it.
func (o *PipelineOwner) Drop(node RenderObject) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.needsLayout = removeNode(o.needsLayout, node)
	o.needsPaint = removeNode(o.needsPaint, node)
	delete(o.layoutSet, node)
	delete(o.paintSet, node)
	delete(o.offsets, node)
}

func removeNode(nodes []RenderObject, node RenderObject) []RenderObject {
	out := nodes[:0]
	for _, n := range nodes {
		if n != node {
			out = append(out, n)
		}
	}
	return out
}
