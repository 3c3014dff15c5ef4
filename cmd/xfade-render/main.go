// SPDX-License-Identifier: EPL-2.0

// Command xfade-render renders a crossfade between two sources to a 16-bit
// WAV file.
//
// Usage:
//
//	xfade-render -a intro.wav -b loop.ogg -o out.wav
//	xfade-render -fade-at 1.5 -fade 3 -curve s-curve -o out.wav   # two tones
//	xfade-render -a speech.mp3 -o - > out.wav
//
// Every flag defaults to its XFADE_* environment variable. A source without
// a path is replaced by a sine tone.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ik5/xfadegen"
	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/formats/wav"
	"github.com/ik5/xfadegen/generator"
	"github.com/ik5/xfadegen/generator/crossfade"
	"github.com/ik5/xfadegen/internal/config"
)

const wavWriterBufferSize = 256 * 1024

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.Load()

	flag.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "Output sample rate in Hz")
	flag.IntVar(&cfg.Channels, "channels", cfg.Channels, "Output channel count: 1, 2, 4, 5, 6 or 8")
	flag.IntVar(&cfg.BlockFrames, "block", cfg.BlockFrames, "Frames pulled per block")
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Rendered length")
	flag.DurationVar(&cfg.FadeAt, "fade-at", cfg.FadeAt, "When the crossfade to B starts")
	flag.Float64Var(&cfg.FadeSeconds, "fade", cfg.FadeSeconds, "Crossfade length in seconds")
	flag.StringVar(&cfg.Curve, "curve", cfg.Curve, "Crossfade curve: equal-power, linear, s-curve")
	flag.StringVar(&cfg.ResampleMode, "resample", cfg.ResampleMode, "Resample mode: auto, off, force")
	flag.StringVar(&cfg.Quality, "quality", cfg.Quality, "Resample quality: nearest, linear, hermite4")
	flag.BoolVar(&cfg.Loop, "loop", cfg.Loop, "Loop clip sources")
	flag.Float64Var(&cfg.Gain, "gain", cfg.Gain, "Clip gain")
	flag.StringVar(&cfg.ClipA, "a", cfg.ClipA, "Source A (wav, aiff, mp3, ogg); empty for a tone")
	flag.StringVar(&cfg.ClipB, "b", cfg.ClipB, "Source B (wav, aiff, mp3, ogg); empty for a tone")
	flag.Float64Var(&cfg.ToneA, "tone-a", cfg.ToneA, "Tone frequency used when A has no path")
	flag.Float64Var(&cfg.ToneB, "tone-b", cfg.ToneB, "Tone frequency used when B has no path")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "Output WAV path, - for stdout")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "xfade-render: ", log.LstdFlags)
	}

	start := time.Now()

	samples, err := render(cfg, logger)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.Output, cfg.SampleRate, cfg.Channels, samples); err != nil {
		return err
	}

	logger.Printf("wrote %d frames to %s in %v", len(samples)/cfg.Channels, cfg.Output, time.Since(start).Round(time.Millisecond))

	return nil
}

// render builds the A/B graph, sends the crossfade ahead of the first block
// at or after cfg.FadeFrame and returns the interleaved output.
func render(cfg config.Config, logger *log.Logger) ([]float32, error) {
	clipCfg, err := cfg.ClipConfig()
	if err != nil {
		return nil, err
	}
	fadeCfg, err := cfg.CrossfadeConfig()
	if err != nil {
		return nil, err
	}

	pool := audio.NewPool()
	graph := generator.NewGraph(pool, generator.WithLogger(logger))
	defer graph.Close()

	provider := audio.FileProvider{Registry: newRegistry(), Pool: pool}
	format := cfg.Format()

	a, err := graph.Add(newSource(provider, cfg.ClipA, cfg.ToneA, pool, clipCfg, logger))
	if err != nil {
		return nil, fmt.Errorf("adding source A: %w", err)
	}
	b, err := graph.Add(newSource(provider, cfg.ClipB, cfg.ToneB, pool, clipCfg, logger))
	if err != nil {
		return nil, fmt.Errorf("adding source B: %w", err)
	}

	xf, err := crossfade.Attach(graph, crossfade.New(pool, a, b, format, fadeCfg))
	if err != nil {
		return nil, fmt.Errorf("adding crossfade: %w", err)
	}

	r, err := xfadegen.NewRenderer(graph, xf.Node(), format)
	if r == nil {
		return nil, err
	}
	if err != nil {
		logger.Printf("configure: %v", err)
	}

	fadeFrame := cfg.FadeFrame()
	sent := false

	return r.Render(cfg.TotalFrames(), func(frame int) {
		if sent || frame < fadeFrame {
			return
		}
		sent = true
		if !xf.TryCrossfade(1, float32(cfg.FadeSeconds), fadeCfg.Curve) {
			logger.Printf("crossfade command rejected at frame %d", frame)
			return
		}
		logger.Printf("crossfade to B over %.2fs at frame %d", cfg.FadeSeconds, frame)
	}), nil
}

func writeOutput(path string, rate, channels int, samples []float32) error {
	if path == "-" {
		w := bufio.NewWriterSize(os.Stdout, wavWriterBufferSize)
		if err := wav.WriteFloat16(w, rate, channels, samples); err != nil {
			return fmt.Errorf("writing wav: %w", err)
		}
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	w := bufio.NewWriterSize(f, wavWriterBufferSize)
	if err := wav.WriteFloat16(w, rate, channels, samples); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing wav: %w", err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing wav: %w", err)
	}

	return f.Close()
}
