// SPDX-License-Identifier: EPL-2.0

// Package xfadegen is a small real-time audio generation engine built around
// a graph of nodes that a host pulls fixed-size blocks from.
//
// # Nodes
//
// Three node kinds ship with the engine:
//   - generator/clip plays a decoded PCM clip, resampling on rate mismatch
//   - generator/crossfade mixes two child nodes with a weight that moves
//     on command
//   - generator/tone is a sine generator for smoke tests
//
// Nodes live in a generator.Graph, which hands out generation-checked
// handles and routes commands from the control side to the realtime side
// through lock-free mailboxes.
//
// # Control and realtime
//
// Everything that allocates, blocks or logs happens on the control side:
// building nodes, Graph.Configure, Graph.Send, Graph.Update, Graph.Destroy.
// Graph.Process is the realtime entry point. It never allocates, never
// locks and never panics.
//
// # Rendering offline
//
// Renderer drives a graph the way an audio callback would and is what
// cmd/xfade-render uses to write a crossfade to a WAV file:
//
//	r, err := xfadegen.NewRenderer(graph, root, format)
//	samples := r.Render(frames, func(frame int) {
//		if frame == fadeAt {
//			handle.TryCrossfadeToB(2, command.EqualPower)
//		}
//	})
//
// # Supported Formats
//
// Clips are decoded through audio.Registry:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
package xfadegen
