package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/droid-court/engine"
	"github.com/lixenwraith/droid-court/game"
	"github.com/lixenwraith/droid-court/rig"
	"github.com/lixenwraith/droid-court/spawn"
)

func testSnapshot() *engine.Snapshot {
	b := rig.NewBody(rig.DefaultDimensions())
	eyePos, eyeDir := b.EyeView()
	return &engine.Snapshot{
		State:         game.NewState(300),
		Root:          b.Root(),
		Yaw:           b.Yaw(),
		Facing:        b.Facing(),
		Chest:         b.ChestPoint(),
		EyePos:        eyePos,
		EyeDir:        eyeDir,
		DOFs:          b.DOFs(),
		Field:         spawn.DefaultField(),
		ContactRadius: b.Dimensions().ContactRadius(),
		Target:        20,
	}
}

// 81x44 screen gives a 81x41 view: 0.1 columns and 0.05 rows per unit, centered at (40, 22)
const testW, testH = 81, 44

func TestBufferClipsAndClears(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Set(-1, 0, 'x', StyleDroid)
	b.Set(4, 1, 'x', StyleDroid)
	b.Set(3, 1, 'z', StyleDroid)

	if got := b.Line(1); got != "   z" {
		t.Errorf("line 1 = %q", got)
	}
	if c := b.Get(9, 9); c.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %q", c.Rune)
	}

	b.Clear()
	if got := b.Line(1); got != "    " {
		t.Errorf("after clear line 1 = %q", got)
	}
}

func TestBufferResizeKeepsCapacity(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Set(1, 1, 'x', StyleDroid)
	b.Resize(3, 3)
	if w, h := b.Bounds(); w != 3 || h != 3 {
		t.Fatalf("bounds = %dx%d", w, h)
	}
	if b.Get(1, 1).Rune != ' ' {
		t.Error("resize did not clear")
	}
	b.Resize(-2, 5)
	if w, h := b.Bounds(); w != 0 || h != 5 {
		t.Errorf("bounds = %dx%d, want 0x5", w, h)
	}
}

func TestBufferStrings(t *testing.T) {
	b := NewBuffer(11, 1)
	if end := b.SetString(1, 0, "abc", StyleHelp); end != 4 {
		t.Errorf("SetString end = %d, want 4", end)
	}
	b.Clear()
	b.SetCentered(0, "xyz", StyleHelp)
	if got := b.Line(0); got != "    xyz    " {
		t.Errorf("centered = %q", got)
	}
}

func TestChaseProjection(t *testing.T) {
	ctx := NewRenderContext(testSnapshot(), 0, "", testW, testH)
	p := NewProjection(ctx)

	tests := []struct {
		x, z     float64
		col, row int
	}{
		{0, 0, 40, 22},
		{100, 0, 30, 22},  // droid's left is screen left
		{-100, 0, 50, 22}, // right
		{0, 400, 40, 2},   // far edge at the top of the view
		{0, -400, 40, 42}, // near edge at the bottom
	}
	for _, tt := range tests {
		col, row := p.Project(tt.x, tt.z)
		if col != tt.col || row != tt.row {
			t.Errorf("Project(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.z, col, row, tt.col, tt.row)
		}
	}
}

func TestFirstPersonLooksUp(t *testing.T) {
	snap := testSnapshot()
	snap.State.Camera = game.FirstPerson
	snap.EyePos = mgl64.Vec3{10, 30, 10}
	snap.EyeDir = mgl64.Vec3{1, 0, 0}

	p := NewProjection(NewRenderContext(snap, 0, "", testW, testH))
	eyeCol, eyeRow := p.Project(10, 10)
	aheadCol, aheadRow := p.Project(60, 10)

	if aheadCol != eyeCol || aheadRow >= eyeRow {
		t.Errorf("point ahead at (%d, %d), eye at (%d, %d)", aheadCol, aheadRow, eyeCol, eyeRow)
	}
	if got := p.Arrow(math.Pi / 2); got != '↑' {
		t.Errorf("arrow along heading = %q, want ↑", got)
	}
}

func TestArrow(t *testing.T) {
	p := NewProjection(NewRenderContext(testSnapshot(), 0, "", testW, testH))
	tests := map[float64]rune{
		0:            '↑',
		math.Pi / 2:  '←',
		-math.Pi / 2: '→',
		math.Pi:      '↓',
		-math.Pi / 4: '↗',
	}
	for yaw, want := range tests {
		if got := p.Arrow(yaw); got != want {
			t.Errorf("Arrow(%v) = %q, want %q", yaw, got, want)
		}
	}
}

func TestCourtRendererGlyphs(t *testing.T) {
	snap := testSnapshot()
	snap.Obstacles = []spawn.Obstacle{
		{ID: 1, Kind: spawn.Benign, X: 100, Z: 0},
		{ID: 2, Kind: spawn.Harmful, X: -100, Z: 100},
		{ID: 3, Kind: spawn.Harmful, X: 0, Z: -200, Collided: true},
		{ID: 4, Kind: spawn.Harmful, X: 0, Z: 900}, // still in the spawn band
	}
	ctx := NewRenderContext(snap, 0, "", testW, testH)
	buf := NewBuffer(testW, testH)
	NewCourtRenderer().Render(ctx, buf)

	checks := []struct {
		col, row int
		glyph    rune
		style    Style
	}{
		{30, 22, 'o', StyleBenign},
		{50, 17, '*', StyleHarmful},
		{40, 32, '*', StyleCollided},
		{40, 22, '↑', StyleDroid},
		{80, 2, '+', StyleCourtLine},
	}
	for _, c := range checks {
		got := buf.Get(c.col, c.row)
		if got.Rune != c.glyph || got.Style != c.style {
			t.Errorf("cell (%d, %d) = %q, want %q", c.col, c.row, got.Rune, c.glyph)
		}
	}

	for row := 0; row < 2; row++ {
		if strings.TrimSpace(buf.Line(row)) != "" {
			t.Errorf("court drawn over HUD row %d: %q", row, buf.Line(row))
		}
	}
}

func TestHUDBanners(t *testing.T) {
	snap := testSnapshot()
	ctx := NewRenderContext(snap, 12, "arrows move", testW, testH)
	buf := NewBuffer(testW, testH)
	h := NewHUDRenderer()

	h.Render(ctx, buf)
	top := buf.Line(0)
	for _, want := range []string{"ENERGY 300", "SCORE 0", "best 12", "spawned 0/20"} {
		if !strings.Contains(top, want) {
			t.Errorf("top row %q missing %q", top, want)
		}
	}
	if !strings.Contains(buf.Line(1), "arms 1.00") {
		t.Errorf("pose row = %q", buf.Line(1))
	}
	if !strings.HasPrefix(buf.Line(testH-1), "arrows move") {
		t.Errorf("help row = %q", buf.Line(testH-1))
	}

	mid := ctx.ViewY + ctx.ViewHeight/2
	snap.State.TogglePause()
	buf.Clear()
	h.Render(ctx, buf)
	if !strings.Contains(buf.Line(mid), "PAUSED") {
		t.Errorf("paused banner missing: %q", buf.Line(mid))
	}

	snap.State.End(game.EnergyExhausted)
	buf.Clear()
	h.Render(ctx, buf)
	if !strings.Contains(buf.Line(mid), "GAME OVER") || !strings.Contains(buf.Line(mid+1), "energy exhausted") {
		t.Errorf("end banner missing: %q / %q", buf.Line(mid), buf.Line(mid+1))
	}
}

func TestFormatPose(t *testing.T) {
	got := FormatPose(
		rig.DOF{Value: -15},
		rig.DOF{Value: 5},
		rig.DOF{Value: 1.1},
	)
	if got != "head  -15°  tilt   +5°  arms 1.10" {
		t.Errorf("FormatPose = %q", got)
	}
}

type countingRenderer struct {
	calls   *[]string
	name    string
	visible bool
}

func (c countingRenderer) Render(RenderContext, *Buffer) { *c.calls = append(*c.calls, c.name) }
func (c countingRenderer) IsVisible() bool               { return c.visible }

func TestOrchestratorOrderAndFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(testW, testH)

	o := NewOrchestrator(screen)
	var calls []string
	o.Register(countingRenderer{&calls, "ui", true}, PriorityUI)
	o.Register(countingRenderer{&calls, "hidden", false}, PriorityCourt)
	o.Register(countingRenderer{&calls, "court", true}, PriorityCourt)
	o.Register(NewCourtRenderer(), PriorityCourt)

	o.RenderFrame(NewRenderContext(testSnapshot(), 0, "", testW, testH))

	if strings.Join(calls, ",") != "court,ui" {
		t.Errorf("render order = %v", calls)
	}
	if r, _, _, _ := screen.GetContent(40, 22); r != '↑' {
		t.Errorf("screen (40, 22) = %q, want droid", r)
	}
}

func TestOrchestratorEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(testW, testH)

	o := NewOrchestrator(screen)
	var calls []string
	o.Register(countingRenderer{&calls, "overlay", true}, PriorityUI)
	o.Register(countingRenderer{&calls, "first", true}, PriorityCourt)
	o.Register(countingRenderer{&calls, "second", true}, PriorityCourt)
	o.Register(countingRenderer{&calls, "third", true}, PriorityCourt)
	o.Register(countingRenderer{&calls, "hud", true}, PriorityUI)

	o.RenderFrame(NewRenderContext(testSnapshot(), 0, "", testW, testH))

	if got := strings.Join(calls, ","); got != "first,second,third,overlay,hud" {
		t.Errorf("render order = %s", got)
	}
}
