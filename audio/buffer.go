// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is one interleaved block handed to Process. Data holds at least
// Frames*Channels samples; frame f of channel c lives at Data[f*Channels+c].
type Buffer struct {
	Data     []float32
	Channels int
	Frames   int
}

// NewBuffer wraps data as a block of frames. It does not copy.
func NewBuffer(data []float32, channels int) Buffer {
	if channels <= 0 {
		return Buffer{}
	}

	return Buffer{
		Data:     data,
		Channels: channels,
		Frames:   len(data) / channels,
	}
}

// Samples returns the interleaved span covering all frames, clipped to Data.
func (b Buffer) Samples() []float32 {
	n := b.Frames * b.Channels
	if n <= 0 {
		return nil
	}

	return b.Data[:min(n, len(b.Data))]
}

// Valid reports whether Data is large enough for Frames*Channels samples.
func (b Buffer) Valid() bool {
	return b.Frames >= 0 && b.Channels > 0 && len(b.Data) >= b.Frames*b.Channels
}

// Clear writes silence over the whole block.
func (b Buffer) Clear() {
	clear(b.Samples())
}

// ClearRange writes silence over count frames starting at start, clipped to
// the block.
func (b Buffer) ClearRange(start, count int) {
	if count <= 0 {
		return
	}

	end := start + count
	if start < 0 {
		start = 0
	}
	if end > b.Frames {
		end = b.Frames
	}
	if start >= end {
		return
	}

	samples := b.Samples()
	clear(samples[min(start*b.Channels, len(samples)):min(end*b.Channels, len(samples))])
}

// Slice returns a view over the first frames frames of data, re-shaped to
// channels. It is used to carve a scratch block out of a larger pooled buffer.
func Slice(data []float32, frames, channels int) Buffer {
	return Buffer{
		Data:     data[:frames*channels],
		Channels: channels,
		Frames:   frames,
	}
}

// PCM is an owned, fixed-length, interleaved clip buffer.
type PCM struct {
	Data       []float32
	Channels   int
	SampleRate int
	Frames     int
}

// Valid reports whether the buffer can be dereferenced by a realtime node.
func (p PCM) Valid() bool {
	if p.Frames <= 0 || p.Channels <= 0 || p.SampleRate <= 0 {
		return false
	}

	return len(p.Data) >= p.Frames*p.Channels
}

// Duration in seconds.
func (p PCM) Duration() float64 {
	if p.SampleRate <= 0 {
		return 0
	}

	return float64(p.Frames) / float64(p.SampleRate)
}
