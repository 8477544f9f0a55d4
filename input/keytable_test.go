package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), MoveForward},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), MoveBackward},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), TurnLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), TurnRight},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), HeadLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), HeadRight},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), TiltForward},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), TiltBack},
		{tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), ArmsUp},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ArmsDown},
		{tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone), ToggleCamera},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), TogglePause},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), Reset},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Quit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Quit},
	}
	for _, tt := range tests {
		got, ok := kt.Lookup(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%s) = %s, %v, want %s", tt.ev.Name(), got, ok, tt.want)
		}
	}

	if _, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); ok {
		t.Error("unbound rune resolved")
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %d, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("fly"); ok {
		t.Error("unknown action parsed")
	}
}

func TestActionClasses(t *testing.T) {
	for a := ActionNone + 1; a < actionCount; a++ {
		n := 0
		for _, c := range []bool{a.IsMovement(), a.IsPose(), a.IsSystem()} {
			if c {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%s belongs to %d classes", a, n)
		}
	}
}

func TestParseBindingsOverrides(t *testing.T) {
	kt, err := LoadKeyTable(map[string]string{
		"j":     "head_left",
		"space": "none",
		"p":     "toggle_pause",
		"Home":  "reset",
	})
	if err != nil {
		t.Fatalf("LoadKeyTable: %v", err)
	}

	if a, _ := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)); a != HeadLeft {
		t.Errorf("j = %s, want head_left", a)
	}
	if _, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); ok {
		t.Error("space still bound after unbind")
	}
	if a, _ := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)); a != TogglePause {
		t.Errorf("p = %s, want toggle_pause", a)
	}
	if a, _ := kt.Lookup(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone)); a != Reset {
		t.Errorf("Home = %s, want reset", a)
	}
	// defaults survive
	if a, _ := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)); a != HeadLeft {
		t.Errorf("a = %s, want head_left", a)
	}
}

func TestParseBindingsErrors(t *testing.T) {
	if _, err := ParseBindings(map[string]string{"x": "jump"}); err == nil {
		t.Error("unknown action accepted")
	}
	if _, err := ParseBindings(map[string]string{"hyperkey": "quit"}); err == nil {
		t.Error("unknown key name accepted")
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{Runes: map[rune]Action{'a': ActionNone}}

	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes['a']; ok {
		t.Error("merged table kept unbound rune")
	}
	if base.Runes['a'] != HeadLeft {
		t.Error("base table mutated")
	}
}

func TestBindings(t *testing.T) {
	kt := DefaultKeyTable()
	got := kt.Bindings(TogglePause)
	if len(got) != 1 || got[0] != "space" {
		t.Errorf("Bindings(toggle_pause) = %v, want [space]", got)
	}
	if n := len(kt.Bindings(Quit)); n != 2 {
		t.Errorf("quit has %d bindings, want 2", n)
	}
}
