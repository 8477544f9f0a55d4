package render

import (
	"math"

	"github.com/lixenwraith/droid-court/game"
)

// FirstPersonRange is the forward distance visible in first-person view, in court units
const FirstPersonRange = 120.0

// cellAspect is the height/width ratio of a terminal cell
const cellAspect = 2.0

// Projection maps the court's XZ plane onto screen cells
// Screen up is the heading direction; the droid's left (+X at heading 0) is screen left
type Projection struct {
	cx, cy  float64 // screen position of the origin
	ox, oz  float64 // world origin
	sx, sz  float64 // columns and rows per world unit
	sin     float64
	cos     float64
	heading float64
}

// NewProjection builds the camera projection for the snapshot's camera mode
// Chase fits the whole court; first-person follows the eye looking up the screen
func NewProjection(ctx RenderContext) Projection {
	snap := ctx.Snap
	w, h := float64(ctx.ViewWidth), float64(ctx.ViewHeight)

	var p Projection
	if snap.State.Camera == game.FirstPerson {
		p.heading = math.Atan2(snap.EyeDir.X(), snap.EyeDir.Z())
		p.ox, p.oz = snap.EyePos.X(), snap.EyePos.Z()
		p.sz = h * 0.75 / FirstPersonRange
		p.cx = float64(ctx.ViewX) + w/2
		p.cy = float64(ctx.ViewY) + h*0.8
	} else {
		f := snap.Field
		p.sz = (h - 1) / (2 * f.HalfLength)
		if sxFit := (w - 1) / (2 * f.HalfWidth); sxFit < p.sz*cellAspect {
			p.sz = sxFit / cellAspect
		}
		p.cx = float64(ctx.ViewX) + (w-1)/2
		p.cy = float64(ctx.ViewY) + (h-1)/2
	}
	p.sx = p.sz * cellAspect
	p.sin, p.cos = math.Sincos(p.heading)
	return p
}

// Project returns the screen cell of a court point
func (p Projection) Project(x, z float64) (col, row int) {
	dx, dz := x-p.ox, z-p.oz
	fwd := dx*p.sin + dz*p.cos
	left := dx*p.cos - dz*p.sin
	return int(math.Round(p.cx - left*p.sx)), int(math.Round(p.cy - fwd*p.sz))
}

// Heading returns the world yaw that points up the screen
func (p Projection) Heading() float64 {
	return p.heading
}

// Scale returns rows per world unit
func (p Projection) Scale() float64 {
	return p.sz
}

var arrows = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// Arrow picks the glyph pointing along yaw on screen
func (p Projection) Arrow(yaw float64) rune {
	rel := yaw - p.heading
	idx := int(math.Round(rel/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}
