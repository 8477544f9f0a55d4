package game

// Phase is the game state machine position
type Phase uint8

const (
	Running Phase = iota
	Paused
	Ended
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Camera selects the view projection
type Camera uint8

const (
	Chase Camera = iota
	FirstPerson
)

func (c Camera) String() string {
	if c == FirstPerson {
		return "first-person"
	}
	return "chase"
}

// EndReason records why a game reached Ended
type EndReason uint8

const (
	NotEnded EndReason = iota
	EnergyExhausted
	OutOfBounds
)

func (r EndReason) String() string {
	switch r {
	case EnergyExhausted:
		return "energy exhausted"
	case OutOfBounds:
		return "out of bounds"
	}
	return ""
}

// State is the numeric game state published to the UI
type State struct {
	Energy int
	Score  int
	Phase  Phase
	Camera Camera
	Reason EndReason
}

// NewState returns a running game with the given starting energy
func NewState(energy int) State {
	return State{Energy: energy}
}

func (s *State) Running() bool { return s.Phase == Running }
func (s *State) Paused() bool  { return s.Phase == Paused }
func (s *State) Ended() bool   { return s.Phase == Ended }

// TogglePause flips Running and Paused, returns false once Ended
func (s *State) TogglePause() bool {
	switch s.Phase {
	case Running:
		s.Phase = Paused
	case Paused:
		s.Phase = Running
	default:
		return false
	}
	return true
}

// ToggleCamera switches between chase and first-person views
func (s *State) ToggleCamera() {
	if s.Camera == Chase {
		s.Camera = FirstPerson
	} else {
		s.Camera = Chase
	}
}

// ChargeMove deducts the per-move cost, only while running
func (s *State) ChargeMove(cost int) bool {
	if s.Phase != Running {
		return false
	}
	s.Energy -= cost
	return true
}

// End transitions to Ended; returns false if already ended
func (s *State) End(reason EndReason) bool {
	if s.Phase == Ended {
		return false
	}
	s.Phase = Ended
	s.Reason = reason
	return true
}
