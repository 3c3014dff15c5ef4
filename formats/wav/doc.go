// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV files.
//
// Decoder reads integer PCM at 16, 24 or 32 bits through
// github.com/go-audio/wav and yields an audio.Source of float32 samples in
// [-1.0, 1.0). Inputs that cannot seek are buffered in memory first.
//
//	src, err := wav.Decoder{}.Decode(file)
//	pcm, err := audio.ReadPCM(src, pool)
//
// WriteWAV16 and WriteFloat16 write interleaved 16-bit PCM with a canonical
// 44-byte header. They only need an io.Writer, so output can stream to a
// pipe:
//
//	err := wav.WriteFloat16(os.Stdout, 48000, 2, rendered)
//
// Errors:
//   - ErrNotWavFile: no RIFF/WAVE header or no samples
//   - ErrUnsupportedEncoding: compressed or floating-point WAV
//   - ErrUnsupportedBitDepth: 8-bit or other widths
//   - ErrInvalidChannels, ErrPartialFrame: bad WriteWAV16 arguments
package wav
