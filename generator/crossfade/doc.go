// SPDX-License-Identifier: EPL-2.0

// Package crossfade mixes two child generators with a click-free fade.
//
// The fade position runs from 0 (only A) to 1 (only B). Commands posted on
// the control side start a fade on the next realtime cycle; a newer command
// replaces the one in progress. A fade of D seconds at R Hz lands on its
// target after exactly ceil(D*R) mixed frames and never passes it.
//
// A child that returns fewer frames than requested is latched as finished and
// stays silent for the rest of the crossfade's life.
//
//	a, _ := graph.Add(clip.New(pcmA, clip.DefaultConfig()))
//	b, _ := graph.Add(clip.New(pcmB, clip.DefaultConfig()))
//	xf, _ := crossfade.Attach(graph, crossfade.New(pool, a, b, format, crossfade.DefaultConfig()))
//	_ = graph.ConfigureAll(format)
//	xf.TryCrossfadeToB(2, command.EqualPower)
package crossfade
