// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"io"
	"log"

	"github.com/tphakala/simd/f32"

	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/generator"
)

// Config controls playback of one clip.
type Config struct {
	Loop         bool
	Gain         float32
	ResampleMode audio.ResampleMode
	Quality      audio.ResampleQuality
}

// DefaultConfig plays once at unity gain and resamples linearly on a rate mismatch.
func DefaultConfig() Config {
	return Config{
		Gain:         1,
		ResampleMode: audio.ResampleAuto,
		Quality:      audio.QualityLinear,
	}
}

// Generator plays a PCM clip. It is Invalid when created without usable PCM
// and then produces silence for every request.
type Generator struct {
	cfg    Config
	pcm    audio.PCM
	pool   *audio.Pool
	source string

	// established by Configure
	outRate     int
	outChannels int
	valid       bool

	// realtime
	position float64
}

var _ generator.Node = (*Generator)(nil)

// New returns a generator over pcm. The generator does not own pcm.
func New(pcm audio.PCM, cfg Config) *Generator {
	if cfg.Gain < 0 {
		cfg.Gain = 0
	}

	return &Generator{cfg: cfg, pcm: pcm}
}

// Load fetches id from p into storage rented from pool. A provider failure is
// logged and leaves the generator Invalid. The PCM goes back to pool on Dispose.
func Load(p audio.Provider, id string, pool *audio.Pool, cfg Config, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := New(audio.PCM{}, cfg)
	g.source = id

	if p == nil {
		logger.Printf("clip %q: no sample provider", id)
		return g
	}

	pcm, err := p.Provide(id)
	if err != nil {
		logger.Printf("clip %q: %v", id, err)
		return g
	}
	if !pcm.Valid() {
		logger.Printf("clip %q: provider returned %d frames x %d channels at %d Hz", id, pcm.Frames, pcm.Channels, pcm.SampleRate)
		return g
	}

	g.pcm = pcm
	g.pool = pool

	return g
}

// Configure records the output format. The generator becomes playable when it
// holds valid PCM and format is valid.
func (g *Generator) Configure(_ *generator.ControlContext, format audio.Format) generator.Setup {
	g.outRate = format.SampleRate
	g.outChannels = format.Channels()
	g.valid = g.pcm.Valid() && format.Validate() == nil

	return generator.SetupFor(format)
}

// Update has no realtime messages to apply.
func (g *Generator) Update(*generator.RealtimeContext) {}

// Process writes the next block of the clip into buf.
func (g *Generator) Process(_ *generator.RealtimeContext, buf audio.Buffer) int {
	requested := buf.Frames
	if requested <= 0 || buf.Channels <= 0 || !buf.Valid() {
		return 0
	}

	pcm := g.pcm
	if !g.valid || !pcm.Valid() || g.outRate <= 0 || g.outChannels <= 0 {
		buf.Clear()
		return requested
	}

	if buf.Channels != g.outChannels || g.outChannels != pcm.Channels {
		buf.Clear()
		return requested
	}

	mismatch := pcm.SampleRate != g.outRate
	if g.cfg.ResampleMode == audio.ResampleOff && mismatch {
		buf.Clear()
		return 0
	}

	var written int
	if g.cfg.ResampleMode == audio.ResampleForce || mismatch {
		written = g.resample(buf, float64(pcm.SampleRate)/float64(g.outRate))
	} else {
		written = g.copyFrames(buf)
	}

	if written > 0 && g.cfg.Gain != 1 {
		out := buf.Data[:written*buf.Channels]
		f32.Scale(out, out, g.cfg.Gain)
	}

	buf.ClearRange(written, requested-written)

	return written
}

func (g *Generator) copyFrames(buf audio.Buffer) int {
	pcm := g.pcm
	ch := pcm.Channels

	written := 0
	for frame := range buf.Frames {
		src := int(g.position)
		if !g.cfg.Loop && src >= pcm.Frames {
			break
		}
		src = WrapFrame(src, pcm.Frames, g.cfg.Loop)

		copy(buf.Data[frame*ch:(frame+1)*ch], pcm.Data[src*ch:(src+1)*ch])

		g.advance(1)
		written++
	}

	return written
}

func (g *Generator) resample(buf audio.Buffer, step float64) int {
	pcm := g.pcm
	ch := pcm.Channels
	q := g.cfg.Quality

	written := 0
	for frame := range buf.Frames {
		i0 := int(g.position)
		if !g.cfg.Loop && i0 >= pcm.Frames {
			break
		}
		t := float32(g.position - float64(i0))

		bm1 := WrapFrame(i0-1, pcm.Frames, g.cfg.Loop) * ch
		b1 := WrapFrame(i0+1, pcm.Frames, g.cfg.Loop) * ch
		b2 := WrapFrame(i0+2, pcm.Frames, g.cfg.Loop) * ch
		b0 := WrapFrame(i0, pcm.Frames, g.cfg.Loop) * ch

		out := frame * ch
		for c := range ch {
			buf.Data[out+c] = audio.Interp(q,
				pcm.Data[bm1+c], pcm.Data[b0+c], pcm.Data[b1+c], pcm.Data[b2+c], t)
		}

		g.advance(step)
		written++
	}

	return written
}

// advance moves the read position, wrapping it under loop so it stays bounded.
func (g *Generator) advance(step float64) {
	g.position += step
	if g.cfg.Loop {
		total := float64(g.pcm.Frames)
		for g.position >= total {
			g.position -= total
		}
	}
}

// WrapFrame maps a frame index into [0, total). Looping indices wrap modulo
// total; others clamp to the first or last frame.
func WrapFrame(index, total int, loop bool) int {
	if total <= 0 {
		return 0
	}

	if loop {
		m := index % total
		if m < 0 {
			m += total
		}
		return m
	}

	switch {
	case index < 0:
		return 0
	case index >= total:
		return total - 1
	default:
		return index
	}
}

// Dispose returns pooled PCM and leaves the generator Invalid.
func (g *Generator) Dispose(*generator.ControlContext) {
	if g.pool != nil && g.pcm.Data != nil {
		g.pool.Return(g.pcm.Data)
	}

	g.pool = nil
	g.pcm = audio.PCM{}
	g.valid = false
}

// Valid reports whether the generator plays real data.
func (g *Generator) Valid() bool { return g.valid }

// Position returns the fractional source frame index of the next output frame.
func (g *Generator) Position() float64 { return g.position }

// Finite reports whether the clip ends, which is when it does not loop.
func (g *Generator) Finite() bool { return !g.cfg.Loop }

// Source returns the asset id passed to Load.
func (g *Generator) Source() string { return g.source }
