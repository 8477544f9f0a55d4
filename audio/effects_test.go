package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion in small chunks and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, v := range buf[:n] {
			peak = math.Max(peak, math.Abs(v[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

// TestOscillatorSine verifies sine wave range and length
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = (%d, %v), want (100, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
			t.Errorf("sample %d = %v", i, samples[i])
		}
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

// TestOscillatorDrains verifies the oscillator stops after its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(44100)
	total, _ := drain(t, NewOscillator(220, 50*time.Millisecond, WaveSquare, rate))
	if want := rate.N(50 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

// TestOscillatorSquareLevels verifies the square wave only produces full-scale values
func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(1000, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %f, want ±1", i, v)
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silence
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSaw, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	// Zero-frequency saw holds at -1, so the envelope gain is directly visible
	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("streamed %d, want %d", n, len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != -1 {
		t.Errorf("sustain sample = %f, want -1", mid)
	}
	if last := math.Abs(samples[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %f, want near 0", last)
	}
}

// TestNewVolumeSilent verifies zero volume produces silence
func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	_, peak := drain(t, newVolume(NewOscillator(440, 20*time.Millisecond, WaveSquare, rate), 0))
	if peak != 0 {
		t.Errorf("peak = %f, want silence", peak)
	}
}

// TestCueSounds verifies every cue produces an audible sound of its declared length
func TestCueSounds(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for c := Cue(0); c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := CueSound(c, &cfg)
			if s == nil {
				t.Fatal("nil streamer")
			}
			total, peak := drain(t, s)
			want := rate.N(CueDuration(c))
			if total < want-4 || total > want+256 {
				t.Errorf("streamed %d samples, want about %d", total, want)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %f", peak)
			}
		})
	}

	if CueSound(cueCount, &cfg) != nil {
		t.Error("unknown cue should have no sound")
	}
}

// TestCueVolumeScaling verifies master volume scales every cue
func TestCueVolumeScaling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	for c := Cue(0); c < cueCount; c++ {
		if _, peak := drain(t, CueSound(c, &cfg)); peak != 0 {
			t.Errorf("%s: peak = %f with master volume 0", c, peak)
		}
	}
}
