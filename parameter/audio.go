package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5

	// MinSoundGap between consecutive plays of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Bonus Sound, two-note chime on benign contact
const (
	BonusSoundNote1Duration = 80 * time.Millisecond
	BonusSoundNote2Duration = 280 * time.Millisecond
	BonusSoundAttack        = 5 * time.Millisecond
	BonusSoundNote1Release  = 40 * time.Millisecond
	BonusSoundNote2Release  = 200 * time.Millisecond
)

// Hit Sound, saw buzz on harmful contact
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
	HitSoundFreq     = 100.0 // Hz
)

// Game Over Sound, descending square notes
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverNoteAttack   = 5 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)

// GameOverNotes are played in order, Hz
var GameOverNotes = [3]float64{392.00, 311.13, 196.00}
