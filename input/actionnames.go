package input

import "strings"

// Action is a discrete player command produced by the key feed
type Action uint8

const (
	ActionNone Action = iota
	MoveForward
	MoveBackward
	TurnLeft
	TurnRight
	HeadLeft
	HeadRight
	TiltForward
	TiltBack
	ArmsUp
	ArmsDown
	ToggleCamera
	TogglePause
	Reset
	Quit
	actionCount
)

// actionNames maps canonical action names to actions
// Used by the keymap loader to resolve config action strings
var actionNames = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	// Movement
	"move_forward":  MoveForward,
	"move_backward": MoveBackward,
	"turn_left":     TurnLeft,
	"turn_right":    TurnRight,

	// Degrees of freedom
	"head_left":    HeadLeft,
	"head_right":   HeadRight,
	"tilt_forward": TiltForward,
	"tilt_back":    TiltBack,
	"arms_up":      ArmsUp,
	"arms_down":    ArmsDown,

	// System
	"toggle_camera": ToggleCamera,
	"toggle_pause":  TogglePause,
	"reset":         Reset,
	"quit":          Quit,
}

var actionStrings [actionCount]string

func init() {
	for name, a := range actionNames {
		actionStrings[a] = name
	}
}

func (a Action) String() string {
	if a < actionCount {
		return actionStrings[a]
	}
	return "unknown"
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// IsMovement reports whether the action displaces or turns the droid
func (a Action) IsMovement() bool {
	return a >= MoveForward && a <= TurnRight
}

// IsPose reports whether the action adjusts a degree of freedom
func (a Action) IsPose() bool {
	return a >= HeadLeft && a <= ArmsDown
}

// IsSystem reports whether the action is honoured in every game phase
func (a Action) IsSystem() bool {
	return a >= ToggleCamera && a < actionCount
}
