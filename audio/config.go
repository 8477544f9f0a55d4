package audio

import "github.com/lixenwraith/droid-court/parameter"

// Config holds audio settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns audio enabled at the default master volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		CueVolumes: [cueCount]float64{
			CueBonus:    0.6,
			CueHit:      0.8,
			CueGameOver: 1.0,
		},
	}
}

// volume returns the effective gain of a cue
func (c *Config) volume(cue Cue) float64 {
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return c.CueVolumes[cue] * c.MasterVolume
}
