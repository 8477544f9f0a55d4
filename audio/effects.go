package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/droid-court/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseStart   int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseStart:   max(total-rel, att),
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateBonusSound generates a rising two-note chime (B5, E6)
func CreateBonusSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(987.77, WaveSquare, parameter.BonusSoundNote1Duration, parameter.BonusSoundAttack, parameter.BonusSoundNote1Release, rate),
		tone(1318.51, WaveSquare, parameter.BonusSoundNote2Duration, parameter.BonusSoundAttack, parameter.BonusSoundNote2Release, rate),
	)
	return newVolume(seq, cfg.volume(CueBonus))
}

// CreateHitSound generates a harsh saw buzz layered with noise
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease
	mixed := beep.Mix(
		newVolume(tone(parameter.HitSoundFreq, WaveSaw, d, a, r, rate), 0.8),
		newVolume(tone(0, WaveNoise, d, a, r, rate), 0.2),
	)
	return newVolume(mixed, cfg.volume(CueHit))
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := make([]beep.Streamer, 0, len(parameter.GameOverNotes))
	for _, f := range parameter.GameOverNotes {
		notes = append(notes, tone(f, WaveSquare, parameter.GameOverNoteDuration, parameter.GameOverNoteAttack, parameter.GameOverNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.volume(CueGameOver))
}

// CueSound returns a fresh streamer for the cue, nil for unknown cues
func CueSound(cue Cue, cfg *Config) beep.Streamer {
	switch cue {
	case CueBonus:
		return CreateBonusSound(cfg)
	case CueHit:
		return CreateHitSound(cfg)
	case CueGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

// CueDuration returns the length of a cue's sound
func CueDuration(cue Cue) time.Duration {
	switch cue {
	case CueBonus:
		return parameter.BonusSoundNote1Duration + parameter.BonusSoundNote2Duration
	case CueHit:
		return parameter.HitSoundDuration
	case CueGameOver:
		return time.Duration(len(parameter.GameOverNotes)) * parameter.GameOverNoteDuration
	}
	return 0
}
