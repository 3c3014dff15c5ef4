// SPDX-License-Identifier: EPL-2.0

// Package tone is a sine generator. It never runs out, so it is handy as a
// stand-in clip and for exercising the command path on a second node kind.
package tone

import (
	"math"

	"github.com/tphakala/simd/f32"

	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/command"
	"github.com/ik5/xfadegen/generator"
)

// Generator writes the same sine on every channel.
type Generator struct {
	amplitude float32
	frequency float64

	inbox *command.Mailbox[command.Frequency]

	sampleRate int
	phase      float64
}

var (
	_ generator.Node     = (*Generator)(nil)
	_ generator.Receiver = (*Generator)(nil)
	_ generator.Flusher  = (*Generator)(nil)
)

// New returns a sine of freq Hz at amplitude amp, clamped to [0, 1].
func New(freq float64, amp float32) *Generator {
	return &Generator{
		amplitude: command.Clamp01(amp),
		frequency: max(freq, 0),
		inbox:     command.NewMailbox[command.Frequency](4),
	}
}

func (g *Generator) Configure(_ *generator.ControlContext, format audio.Format) generator.Setup {
	g.sampleRate = max(format.SampleRate, 0)
	g.phase = 0

	return generator.SetupFor(format)
}

// Update applies the latest queued frequency change.
func (g *Generator) Update(*generator.RealtimeContext) {
	for {
		msg, ok := g.inbox.Next()
		if !ok {
			return
		}
		if msg.Hz > 0 {
			g.frequency = msg.Hz
		}
	}
}

// Process fills buf completely. An unconfigured generator writes silence.
func (g *Generator) Process(_ *generator.RealtimeContext, buf audio.Buffer) int {
	if buf.Frames <= 0 || buf.Channels <= 0 || !buf.Valid() {
		return 0
	}
	if g.sampleRate <= 0 {
		buf.Clear()
		return buf.Frames
	}

	step := 2 * math.Pi * g.frequency / float64(g.sampleRate)
	for frame := range buf.Frames {
		v := float32(math.Sin(g.phase))
		base := frame * buf.Channels
		for c := range buf.Channels {
			buf.Data[base+c] = v
		}

		g.phase += step
		if g.phase >= 2*math.Pi {
			g.phase = math.Mod(g.phase, 2*math.Pi)
		}
	}

	samples := buf.Samples()
	f32.Scale(samples, samples, g.amplitude)

	return buf.Frames
}

// Post accepts command.Frequency.
func (g *Generator) Post(msg any) bool {
	f, ok := msg.(command.Frequency)
	if !ok {
		return false
	}
	g.inbox.Post(f)

	return true
}

// Flush moves backlogged frequency changes into the realtime queue.
func (g *Generator) Flush() { g.inbox.Flush() }

func (g *Generator) Dispose(*generator.ControlContext) {
	g.sampleRate = 0
}

// Frequency returns the frequency currently playing.
func (g *Generator) Frequency() float64 { return g.frequency }
