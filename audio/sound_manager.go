package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/droid-court/parameter"
)

// SoundManager plays game cues through a single speaker mixer
// Every method is safe before Initialize and after Cleanup; cues are dropped silently
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	lastPlayed  [cueCount]time.Time
	played      [cueCount]int
	now         func() time.Time
	log         zerolog.Logger
}

// NewSoundManager creates a sound manager; call Initialize to open the speaker
func NewSoundManager(cfg Config, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
		log:   log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("Audio started")
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayBonus plays the benign contact chime
func (sm *SoundManager) PlayBonus() { sm.Play(CueBonus) }

// PlayHit plays the harmful contact buzz
func (sm *SoundManager) PlayHit() { sm.Play(CueHit) }

// PlayGameOver plays the end-of-game phrase
func (sm *SoundManager) PlayGameOver() { sm.Play(CueGameOver) }

// Play queues a cue, dropping repeats within MinSoundGap
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.accept(cue) || !sm.initialized {
		return
	}

	s := CueSound(cue, &sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// accept applies the per-cue gap and counts the cue, caller holds mu
func (sm *SoundManager) accept(cue Cue) bool {
	if cue < 0 || cue >= cueCount {
		return false
	}
	now := sm.now()
	if last := sm.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[cue] = now
	sm.played[cue]++
	return true
}

// Played returns how many times a cue passed the gap filter
func (sm *SoundManager) Played(cue Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return sm.played[cue]
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
