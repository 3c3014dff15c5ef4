// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader serves int16 samples as little-endian bytes, at most
// chunk bytes per Read when chunk is set.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	chunk      int
	err        error
}

func newMockReader(rate int, samples ...int16) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
	}
	return &mockMP3Reader{sampleRate: rate, data: data}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}
	if m.chunk > 0 && len(buf) > m.chunk {
		buf = buf[:m.chunk]
	}
	n := copy(buf, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	for name, input := range map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": nil,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := (Decoder{}).Decode(bytes.NewReader(input)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(8000, 0, 16384, -16384, -32768), sampleRate: 8000}

	if src.SampleRate() != 8000 || src.Channels() != 2 {
		t.Fatalf("format = %d Hz, %d ch", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != DefaultBufSize {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), DefaultBufSize)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() error = %v, want io.EOF on short stream", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	// 3 bytes per decoder Read never splits a frame in the output.
	mock := newMockReader(8000, 1, 2, 3, 4, 5, 6)
	mock.chunk = 3
	src := &source{dec: mock, sampleRate: 8000}

	dst := make([]float32, 5) // rounds down to 2 frames
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
	if dst[3] != 4.0/32768.0 {
		t.Errorf("dst[3] = %v, want right channel of frame 1", dst[3])
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() tail = %d, %v; want 2, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_OddTail(t *testing.T) {
	t.Parallel()

	mock := newMockReader(8000, 7, 8)
	mock.data = append(mock.data, 0x01) // stray byte of a truncated frame
	src := &source{dec: mock, sampleRate: 8000}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v; want 2, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_Errors(t *testing.T) {
	t.Parallel()

	broken := errors.New("corrupt frame")
	src := &source{dec: &mockMP3Reader{sampleRate: 44100, err: broken}, sampleRate: 44100}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, broken) {
		t.Errorf("ReadSamples() error = %v, want %v", err, broken)
	}

	empty := &source{dec: newMockReader(44100), sampleRate: 44100}
	if n, err := empty.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 8192)
	for i := range samples {
		samples[i] = int16(i)
	}
	mock := newMockReader(44100, samples...)
	src := &source{dec: mock, sampleRate: 44100}
	dst := make([]float32, len(samples))

	b.ReportAllocs()

	for b.Loop() {
		mock.offset = 0
		src.done = false
		_, _ = src.ReadSamples(dst)
	}
}
