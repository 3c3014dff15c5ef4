// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// The decoder always produces stereo. Mono files are duplicated to both
// channels by go-mp3, so a mono MP3 clip has two channels and only mixes
// with other stereo generators. Samples are converted from int16 to
// float32 in [-1.0, 1.0).
//
//	registry.Register("mp3", mp3.Decoder{})
package mp3
