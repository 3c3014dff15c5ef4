// SPDX-License-Identifier: EPL-2.0

// Package config loads render settings from XFADE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/command"
	"github.com/ik5/xfadegen/generator/clip"
	"github.com/ik5/xfadegen/generator/crossfade"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all render configuration.
type Config struct {
	// Output format
	SampleRate  int
	Channels    int
	BlockFrames int

	// Render timeline
	Duration    time.Duration // total rendered length
	FadeAt      time.Duration // when the crossfade to B is sent
	FadeSeconds float64

	Curve string // equal-power, linear, s-curve

	// Clip playback
	ResampleMode string // auto, off, force
	Quality      string // nearest, linear, hermite4
	Loop         bool
	Gain         float64

	// Sources; an empty path falls back to a tone at the matching frequency.
	ClipA string
	ClipB string
	ToneA float64
	ToneB float64

	Output string // "-" writes to stdout
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		SampleRate:  envInt("XFADE_SAMPLE_RATE", 48000),
		Channels:    envInt("XFADE_CHANNELS", 2),
		BlockFrames: envInt("XFADE_BLOCK_FRAMES", 512),

		Duration:    time.Duration(envFloat("XFADE_DURATION", 6) * float64(time.Second)),
		FadeAt:      time.Duration(envFloat("XFADE_FADE_AT", 2) * float64(time.Second)),
		FadeSeconds: envFloat("XFADE_FADE_SECONDS", 2),
		Curve:       envStr("XFADE_CURVE", command.EqualPower.String()),

		ResampleMode: envStr("XFADE_RESAMPLE", audio.ResampleAuto.String()),
		Quality:      envStr("XFADE_QUALITY", audio.QualityLinear.String()),
		Loop:         envBool("XFADE_LOOP", true),
		Gain:         envFloat("XFADE_GAIN", 1),

		ClipA: envStr("XFADE_CLIP_A", ""),
		ClipB: envStr("XFADE_CLIP_B", ""),
		ToneA: envFloat("XFADE_TONE_A", 440),
		ToneB: envFloat("XFADE_TONE_B", 660),

		Output: envStr("XFADE_OUTPUT", "xfade.wav"),
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("sample rate %d: %w", c.SampleRate, ErrInvalidConfig)
	case audio.LayoutForChannels(c.Channels) == audio.LayoutUnknown:
		return fmt.Errorf("no channel layout for %d channels: %w", c.Channels, ErrInvalidConfig)
	case c.BlockFrames <= 0:
		return fmt.Errorf("block frames %d: %w", c.BlockFrames, ErrInvalidConfig)
	case c.Duration <= 0:
		return fmt.Errorf("duration %v: %w", c.Duration, ErrInvalidConfig)
	case c.FadeAt < 0:
		return fmt.Errorf("fade at %v: %w", c.FadeAt, ErrInvalidConfig)
	case c.FadeSeconds < 0:
		return fmt.Errorf("fade seconds %v: %w", c.FadeSeconds, ErrInvalidConfig)
	case c.Output == "":
		return fmt.Errorf("empty output path: %w", ErrInvalidConfig)
	}

	if _, err := c.CrossfadeConfig(); err != nil {
		return err
	}
	if _, err := c.ClipConfig(); err != nil {
		return err
	}

	return nil
}

// Format is the output format the graph is configured with.
func (c Config) Format() audio.Format {
	return audio.Format{
		SampleRate:       c.SampleRate,
		Layout:           audio.LayoutForChannels(c.Channels),
		BufferFrameCount: c.BlockFrames,
	}
}

// TotalFrames is Duration expressed in output frames.
func (c Config) TotalFrames() int {
	return int(c.Duration.Seconds() * float64(c.SampleRate))
}

// FadeFrame is the output frame at which the crossfade command is sent.
func (c Config) FadeFrame() int {
	return int(c.FadeAt.Seconds() * float64(c.SampleRate))
}

// ClipConfig parses the playback settings shared by both clips.
func (c Config) ClipConfig() (clip.Config, error) {
	cfg := clip.DefaultConfig()
	cfg.Loop = c.Loop
	cfg.Gain = float32(c.Gain)

	var err error
	if cfg.ResampleMode, err = audio.ParseResampleMode(c.ResampleMode); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Quality, err = audio.ParseResampleQuality(c.Quality); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

func (c Config) CrossfadeConfig() (crossfade.Config, error) {
	cfg := crossfade.DefaultConfig()
	cfg.DefaultFadeSeconds = float32(c.FadeSeconds)

	curve, err := command.ParseCurve(c.Curve)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Curve = curve

	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
