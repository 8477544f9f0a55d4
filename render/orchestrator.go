package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(w, h),
		renderers: make([]rendererEntry, 0, 4),
	}
}

// before orders by priority, then registration order
func (e rendererEntry) before(other rendererEntry) bool {
	if e.priority != other.priority {
		return e.priority < other.priority
	}
	return e.index < other.index
}

// Register adds a renderer at the specified priority
// Equal priorities render in registration order
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := slices.IndexFunc(o.renderers, entry.before)
	if pos < 0 {
		pos = len(o.renderers)
	}
	o.renderers = slices.Insert(o.renderers, pos, entry)
}

// Bounds returns the current buffer size
func (o *Orchestrator) Bounds() (int, int) {
	return o.buffer.Bounds()
}

// Resize matches the buffer to the screen and syncs it
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
}
