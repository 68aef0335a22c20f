package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	speakerBuffer = 100 * time.Millisecond
	toneAttack    = 5 * time.Millisecond
	toneRelease   = 20 * time.Millisecond
)

// ToneAlerter plays a short tone through the system speaker on every Alert
type ToneAlerter struct {
	mu          sync.Mutex
	cfg         *ToneConfig
	rate        beep.SampleRate
	initialized bool
}

// NewToneAlerter initialises the speaker unless the tone is disabled.
// A disabled alerter is valid and silent.
func NewToneAlerter(cfg *ToneConfig) (*ToneAlerter, error) {
	if cfg == nil {
		cfg = DefaultToneConfig()
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", cfg.SampleRate)
	}

	a := &ToneAlerter{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
	}
	if !cfg.Enabled {
		return a, nil
	}

	if err := speaker.Init(a.rate, a.rate.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	a.initialized = true
	return a, nil
}

// Tone builds one alert streamer, shaped and scaled by volume
func (a *ToneAlerter) Tone() (beep.Streamer, error) {
	var wave beep.Streamer
	if a.cfg.Wave == WaveSine {
		sine, err := generators.SineTone(a.rate, a.cfg.Frequency)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0f Hz: %w", a.cfg.Frequency, err)
		}
		wave = beep.Take(a.rate.N(a.cfg.Duration), sine)
	} else {
		wave = NewOscillator(a.cfg.Frequency, a.cfg.Duration, a.cfg.Wave, a.rate)
	}

	shaped := NewEnvelope(wave, a.cfg.Duration, toneAttack, toneRelease, a.rate)
	return newVolume(shaped, a.cfg.Volume), nil
}

// Alert queues the tone and returns without waiting for playback
func (a *ToneAlerter) Alert() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return nil
	}
	tone, err := a.Tone()
	if err != nil {
		return err
	}
	speaker.Play(tone)
	return nil
}

// Close stops playback and releases the speaker
func (a *ToneAlerter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}
