package audio

// Cue is a game event with an associated sound
type Cue int

const (
	CueBonus    Cue = iota // benign contact
	CueHit                 // harmful contact
	CueGameOver            // game ended
	cueCount
)

var cueNames = [cueCount]string{"bonus", "hit", "game_over"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}
