package render

import "github.com/lixenwraith/droid-court/engine"

// HUD rows reserved above and below the court view
const (
	hudTopRows    = 2
	hudBottomRows = 1
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap *engine.Snapshot

	// Best recorded score, shown next to the live score
	Best int

	// Help line shown at the bottom
	Help string

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Court view rectangle between HUD rows
	ViewX      int
	ViewY      int
	ViewWidth  int
	ViewHeight int
}

// NewRenderContext lays out the screen around a snapshot
func NewRenderContext(snap *engine.Snapshot, best int, help string, width, height int) RenderContext {
	return RenderContext{
		Snap:         snap,
		Best:         best,
		Help:         help,
		ScreenWidth:  width,
		ScreenHeight: height,
		ViewX:        0,
		ViewY:        hudTopRows,
		ViewWidth:    width,
		ViewHeight:   max(height-hudTopRows-hudBottomRows, 0),
	}
}

// InView reports whether a screen cell lies in the court view
func (rc *RenderContext) InView(col, row int) bool {
	return col >= rc.ViewX && col < rc.ViewX+rc.ViewWidth &&
		row >= rc.ViewY && row < rc.ViewY+rc.ViewHeight
}
