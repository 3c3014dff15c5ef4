// SPDX-License-Identifier: EPL-2.0

package crossfade

import (
	"math"

	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/command"
	"github.com/ik5/xfadegen/generator"
)

// DefaultQueueSize is the number of commands the realtime queue holds before
// posts spill into the control-side backlog.
const DefaultQueueSize = 16

// Config sets the starting state of a crossfade.
type Config struct {
	// InitialPosition is 0 for all A and 1 for all B.
	InitialPosition float32
	Curve           command.Curve
	// DefaultFadeSeconds is used by Handle.TryCrossfadeDefault.
	DefaultFadeSeconds float32
}

// DefaultConfig starts on A with an equal-power curve and quarter-second fades.
func DefaultConfig() Config {
	return Config{
		Curve:              command.EqualPower,
		DefaultFadeSeconds: 0.25,
	}
}

// Generator mixes two child nodes with a time-varying weight.
type Generator struct {
	cfg  Config
	pool *audio.Pool

	a, b     generator.Handle
	scratchA []float32
	scratchB []float32

	inbox *command.Mailbox[command.Crossfade]

	// established by Configure
	sampleRate  int
	channels    int
	compatibleA bool
	compatibleB bool

	// realtime; a running fade is at start + step*elapsed
	position  float32
	target    float32
	start     float64
	step      float64
	elapsed   int
	remaining int
	curve     command.Curve
	finishedA bool
	finishedB bool
}

var (
	_ generator.Node     = (*Generator)(nil)
	_ generator.Receiver = (*Generator)(nil)
	_ generator.Flusher  = (*Generator)(nil)
)

// New returns a crossfade between the nodes behind a and b. Either handle may
// be zero, in which case that side is silent. Scratch blocks for format are
// rented from pool up front; a nil pool falls back to the graph pool at
// Configure. The generator owns a and b and destroys them on Dispose.
func New(pool *audio.Pool, a, b generator.Handle, format audio.Format, cfg Config) *Generator {
	cfg.InitialPosition = command.Clamp01(cfg.InitialPosition)
	if !(cfg.DefaultFadeSeconds >= 0) {
		cfg.DefaultFadeSeconds = 0
	}

	g := &Generator{
		cfg:   cfg,
		pool:  pool,
		a:     a,
		b:     b,
		inbox: command.NewMailbox[command.Crossfade](DefaultQueueSize),
	}

	if pool != nil {
		if n := format.Samples(); n > 0 {
			g.scratchA = pool.Rent(n)
			g.scratchB = pool.Rent(n)
		}
	}

	g.reset()

	return g
}

func (g *Generator) reset() {
	g.position = g.cfg.InitialPosition
	g.target = g.cfg.InitialPosition
	g.step = 0
	g.elapsed = 0
	g.remaining = 0
	g.curve = g.cfg.Curve
}

// Configure records the output format, sizes the scratch blocks and checks
// the children's established setups. It never configures the children.
func (g *Generator) Configure(ctx *generator.ControlContext, format audio.Format) generator.Setup {
	g.sampleRate = max(format.SampleRate, 0)
	g.channels = format.Channels()

	if g.pool == nil && ctx != nil {
		g.pool = ctx.Pool()
	}
	if n := format.Samples(); n > 0 && g.pool != nil {
		g.scratchA = g.grow(g.scratchA, n)
		g.scratchB = g.grow(g.scratchB, n)
	}

	g.compatibleA = childCompatible(ctx, g.a, format)
	g.compatibleB = childCompatible(ctx, g.b, format)

	g.reset()

	return generator.SetupFor(format)
}

func (g *Generator) grow(buf []float32, n int) []float32 {
	if len(buf) >= n {
		return buf
	}
	g.pool.Return(buf)

	return g.pool.Rent(n)
}

func childCompatible(ctx *generator.ControlContext, h generator.Handle, format audio.Format) bool {
	if ctx == nil || h.IsZero() || !ctx.Exists(h) {
		return false
	}

	setup, ok := ctx.Configuration(h)

	return ok && setup.Compatible(format)
}

// Update applies queued commands in the order they were posted.
func (g *Generator) Update(*generator.RealtimeContext) {
	for {
		cmd, ok := g.inbox.Next()
		if !ok {
			return
		}
		g.ApplyCommand(cmd)
	}
}

// ApplyCommand starts a fade from the current position. It replaces any
// fade in progress.
func (g *Generator) ApplyCommand(cmd command.Crossfade) {
	target := command.Clamp01(cmd.Target)
	g.curve = cmd.Curve
	g.target = target

	seconds := min(cmd.Duration, command.MaxDuration)
	if !(seconds > 0) || g.sampleRate <= 0 {
		g.position = target
		g.step = 0
		g.elapsed = 0
		g.remaining = 0
		return
	}

	span := max(1, float64(seconds)*float64(g.sampleRate))
	g.start = float64(g.position)
	g.step = (float64(target) - g.start) / span
	g.elapsed = 0
	g.remaining = int(math.Ceil(span))
	if g.step == 0 {
		g.position = target
		g.remaining = 0
	}
}

// Process pulls a block from each child and writes the weighted sum to buf.
func (g *Generator) Process(ctx *generator.RealtimeContext, buf audio.Buffer) int {
	requested := buf.Frames
	channels := buf.Channels
	if requested <= 0 || channels <= 0 || !buf.Valid() {
		return 0
	}
	buf.Clear()

	need := requested * channels
	useA := !g.finishedA && g.compatibleA && !g.a.IsZero() && ctx != nil && len(g.scratchA) >= need
	useB := !g.finishedB && g.compatibleB && !g.b.IsZero() && ctx != nil && len(g.scratchB) >= need

	var blockA, blockB audio.Buffer
	var wroteA, wroteB int

	if useA {
		blockA = audio.Slice(g.scratchA, requested, channels)
		blockA.Clear()
		wroteA = ctx.Process(g.a, blockA)
		if wroteA < requested {
			g.finishedA = true
		}
	}
	if useB {
		blockB = audio.Slice(g.scratchB, requested, channels)
		blockB.Clear()
		wroteB = ctx.Process(g.b, blockB)
		if wroteB < requested {
			g.finishedB = true
		}
	}

	frames := min(max(wroteA, wroteB), requested)
	if frames <= 0 {
		return 0
	}

	g.mix(buf, blockA, blockB, useA, useB, frames)

	return frames
}

func (g *Generator) mix(out, a, b audio.Buffer, useA, useB bool, frames int) {
	channels := out.Channels
	pos := g.position

	for frame := range frames {
		wA, wB := Weights(g.curve, pos)

		base := frame * channels
		for c := range channels {
			var s float32
			if useA {
				s += a.Data[base+c] * wA
			}
			if useB {
				s += b.Data[base+c] * wB
			}
			out.Data[base+c] = s
		}

		if g.step != 0 {
			g.elapsed++
			g.remaining--
			next := g.start + g.step*float64(g.elapsed)
			if g.remaining <= 0 || (g.step > 0 && next >= float64(g.target)) || (g.step < 0 && next <= float64(g.target)) {
				pos = g.target
				g.step = 0
				g.remaining = 0
			} else {
				pos = float32(next)
			}
		}
	}

	g.position = command.Clamp01(pos)
}

// Weights returns the gains of A and B at fade position p, clamped to [0, 1].
// Unknown curves use EqualPower.
func Weights(curve command.Curve, p float32) (wA, wB float32) {
	p = command.Clamp01(p)

	switch curve {
	case command.Linear:
		return 1 - p, p
	case command.SCurve:
		s := p * p * (3 - 2*p)
		return 1 - s, s
	default:
		switch p {
		case 0:
			return 1, 0
		case 1:
			return 0, 1
		}
		t := float64(p) * math.Pi / 2
		return float32(math.Cos(t)), float32(math.Sin(t))
	}
}

// Post queues a command.Crossfade for the next realtime cycle. Other messages
// are rejected.
func (g *Generator) Post(msg any) bool {
	cmd, ok := msg.(command.Crossfade)
	if !ok || g.inbox == nil {
		return false
	}
	g.inbox.Post(cmd)

	return true
}

// Flush moves backlogged commands into the realtime queue.
func (g *Generator) Flush() {
	if g.inbox != nil {
		g.inbox.Flush()
	}
}

// Dispose destroys both children and returns the scratch blocks.
func (g *Generator) Dispose(ctx *generator.ControlContext) {
	if ctx != nil {
		if !g.a.IsZero() {
			ctx.Destroy(g.a)
		}
		if !g.b.IsZero() {
			ctx.Destroy(g.b)
		}
	}
	g.a = generator.Handle{}
	g.b = generator.Handle{}

	if g.pool != nil {
		g.pool.Return(g.scratchA)
		g.pool.Return(g.scratchB)
	}
	g.scratchA = nil
	g.scratchB = nil

	g.compatibleA = false
	g.compatibleB = false
	g.sampleRate = 0
	g.channels = 0
}

// Position returns the current fade position.
func (g *Generator) Position() float32 { return g.position }

// Target returns the position the current fade is heading to.
func (g *Generator) Target() float32 { return g.target }

// Increment returns the per-frame position change, zero when no fade runs.
func (g *Generator) Increment() float32 { return float32(g.step) }

// Finished reports which children have been latched as exhausted.
func (g *Generator) Finished() (a, b bool) { return g.finishedA, g.finishedB }

// DefaultFadeSeconds returns the fade length used by TryCrossfadeDefault.
func (g *Generator) DefaultFadeSeconds() float32 { return g.cfg.DefaultFadeSeconds }
