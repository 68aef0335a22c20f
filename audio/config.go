package audio

import (
	"os"
	"strconv"
	"time"
)

// ToneConfig describes the alert tone
type ToneConfig struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Wave       WaveType
}

// DefaultToneConfig returns the 880 Hz, 200 ms sine alert
func DefaultToneConfig() *ToneConfig {
	return &ToneConfig{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
		Frequency:  880,
		Duration:   200 * time.Millisecond,
		Wave:       WaveSine,
	}
}

// LoadToneConfig applies ASCLOCK_* environment overrides to the defaults
func LoadToneConfig() *ToneConfig {
	cfg := DefaultToneConfig()

	if enabled := os.Getenv("ASCLOCK_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ASCLOCK_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if freq := os.Getenv("ASCLOCK_AUDIO_FREQUENCY"); freq != "" {
		if val, err := strconv.ParseFloat(freq, 64); err == nil && val > 0 {
			cfg.Frequency = val
		}
	}

	if wave := os.Getenv("ASCLOCK_AUDIO_WAVE"); wave != "" {
		if val, ok := ParseWave(wave); ok {
			cfg.Wave = val
		}
	}

	if sampleRate := os.Getenv("ASCLOCK_AUDIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
