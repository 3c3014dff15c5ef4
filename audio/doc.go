// SPDX-License-Identifier: EPL-2.0

// Package audio holds the data model and control-side primitives shared by
// every generator.
//
//   - Format, ChannelLayout: the output format negotiated by the host
//   - Buffer: one interleaved block handed to Process
//   - PCM: an owned clip buffer (frames x channels float32)
//   - Pool: length-bucketed scratch buffer reuse for the control side
//   - Interp: nearest, linear and 4-point Hermite resampling kernels
//   - Source, Decoder, Registry, Provider: the external sample source
//
// # Scratch buffers
//
// Pool hands out buffers of an exact length and takes them back when a node is
// disposed or reconfigured:
//
//	pool := audio.NewPool()
//	scratch := pool.Rent(format.Samples())
//	// ...
//	pool.Return(scratch)
//
// At most DefaultMaxPerLength buffers are kept per length and at most
// DefaultMaxRetained elements overall. Buffers beyond either cap are dropped
// rather than queued. Pool is not safe for concurrent use and must never be
// called from a realtime Process.
//
// # Resampling kernels
//
// Interp interpolates between x0 and x1 at a fractional position t:
//
//	y := audio.Interp(audio.QualityHermite4, xm1, x0, x1, x2, t)
//
// Every kernel returns x0 at t == 0 and x1 at t == 1. The Hermite kernel
// reproduces a straight line exactly when its four inputs are collinear.
//
// # Loading clips
//
// Decoders from the formats packages produce a Source; ReadPCM drains it into
// pooled storage:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	provider := audio.FileProvider{Registry: registry, Pool: pool}
//	pcm, err := provider.Provide("loop.wav")
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0], interleaved frame by frame. Frame f of
// channel c in a Buffer lives at Data[f*Channels+c].
package audio
