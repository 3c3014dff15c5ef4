// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Decoding goes through github.com/go-audio/aiff. Samples are big-endian
// signed integers on disk and come out of the returned audio.Source as
// float32 in [-1.0, 1.0). Inputs that cannot seek are buffered in memory.
//
//	registry.Register("aiff", aiff.Decoder{})
//	registry.Register("aif", aiff.Decoder{})
//
// Errors:
//   - ErrNotAiffFile: no FORM/AIFF header or no sound data
//   - ErrUnsupportedBitDepth: 8 or 32-bit samples
//   - ErrUnsupportedAiffLayout: a header without channels or sample rate
package aiff
