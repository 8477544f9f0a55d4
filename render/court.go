package render

import (
	"math"

	"github.com/lixenwraith/droid-court/spawn"
)

// CourtRenderer draws the court boundary, obstacles and the droid
type CourtRenderer struct{}

// NewCourtRenderer creates the court renderer
func NewCourtRenderer() *CourtRenderer {
	return &CourtRenderer{}
}

// Render implements SystemRenderer
func (r *CourtRenderer) Render(ctx RenderContext, buf *Buffer) {
	if ctx.Snap == nil || ctx.ViewWidth <= 0 || ctx.ViewHeight <= 0 {
		return
	}
	p := NewProjection(ctx)
	snap := ctx.Snap
	f := snap.Field

	// Boundary, sampled densely enough to leave no gaps at this scale
	corners := [4][2]float64{
		{-f.HalfWidth, -f.HalfLength},
		{f.HalfWidth, -f.HalfLength},
		{f.HalfWidth, f.HalfLength},
		{-f.HalfWidth, f.HalfLength},
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		r.segment(ctx, buf, p, a, b)
	}
	for _, c := range corners {
		r.plot(ctx, buf, p, c[0], c[1], '+', StyleCourtLine)
	}

	// Contact ring around the chest
	ring := snap.ContactRadius
	steps := int(math.Max(16, 2*math.Pi*ring*p.sx))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		r.plot(ctx, buf, p, snap.Chest.X()+ring*math.Sin(a), snap.Chest.Z()+ring*math.Cos(a), '·', StyleContact)
	}

	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		r.plot(ctx, buf, p, o.X, o.Z, obstacleGlyph(o), obstacleStyle(o))
	}

	r.plot(ctx, buf, p, snap.Root.X(), snap.Root.Z(), p.Arrow(snap.Yaw), StyleDroid)
}

func (r *CourtRenderer) segment(ctx RenderContext, buf *Buffer, p Projection, a, b [2]float64) {
	length := math.Hypot(b[0]-a[0], b[1]-a[1])
	steps := int(length*p.sx) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.plot(ctx, buf, p, a[0]+(b[0]-a[0])*t, a[1]+(b[1]-a[1])*t, '·', StyleCourtLine)
	}
}

func (r *CourtRenderer) plot(ctx RenderContext, buf *Buffer, p Projection, x, z float64, glyph rune, style Style) {
	col, row := p.Project(x, z)
	if ctx.InView(col, row) {
		buf.Set(col, row, glyph, style)
	}
}

func obstacleGlyph(o *spawn.Obstacle) rune {
	if o.Kind == spawn.Benign {
		return 'o'
	}
	return '*'
}

func obstacleStyle(o *spawn.Obstacle) Style {
	switch {
	case o.Collided:
		return StyleCollided
	case o.Kind == spawn.Benign:
		return StyleBenign
	default:
		return StyleHarmful
	}
}
