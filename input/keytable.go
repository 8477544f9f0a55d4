package input

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     MoveForward,
			tcell.KeyDown:   MoveBackward,
			tcell.KeyLeft:   TurnLeft,
			tcell.KeyRight:  TurnRight,
			tcell.KeyEscape: Quit,
			tcell.KeyCtrlC:  Quit,
		},
		Runes: map[rune]Action{
			'a': HeadLeft,
			'd': HeadRight,
			'w': TiltForward,
			's': TiltBack,
			'e': ArmsUp,
			'q': ArmsDown,
			'v': ToggleCamera,
			' ': TogglePause,
			'r': Reset,
		},
	}
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.Keys[ev.Key()]
	return a, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}

// Bindings lists the keys bound to an action, special keys first
func (kt *KeyTable) Bindings(a Action) []string {
	var keys, runes []string
	for k, v := range kt.Keys {
		if v == a {
			keys = append(keys, tcell.KeyNames[k])
		}
	}
	for r, v := range kt.Runes {
		if v == a {
			runes = append(runes, runeName(r))
		}
	}
	slices.Sort(keys)
	slices.Sort(runes)
	return append(keys, runes...)
}
