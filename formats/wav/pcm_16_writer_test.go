// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

type failingWriter struct {
	failAfter int
	writes    int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.failAfter {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		samples  []int16
	}{
		{"mono", 8000, 1, []int16{1, 2, 3}},
		{"stereo", 44100, 2, []int16{1, -1, 2, -2}},
		{"5.1", 48000, 6, make([]int16, 12)},
		{"empty", 16000, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteWAV16(&buf, tt.rate, tt.channels, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			data := buf.Bytes()
			if len(data) != headerSize+len(tt.samples)*2 {
				t.Fatalf("size = %d, want %d", len(data), headerSize+len(tt.samples)*2)
			}
			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" || string(data[36:40]) != "data" {
				t.Errorf("markers = %q %q %q", data[0:4], data[8:12], data[36:40])
			}

			le := binary.LittleEndian
			checks := []struct {
				field string
				got   uint32
				want  uint32
			}{
				{"riff size", le.Uint32(data[4:8]), uint32(36 + len(tt.samples)*2)},
				{"channels", uint32(le.Uint16(data[22:24])), uint32(tt.channels)},
				{"sample rate", le.Uint32(data[24:28]), uint32(tt.rate)},
				{"byte rate", le.Uint32(data[28:32]), uint32(tt.rate * tt.channels * 2)},
				{"block align", uint32(le.Uint16(data[32:34])), uint32(tt.channels * 2)},
				{"bits", uint32(le.Uint16(data[34:36])), 16},
				{"data size", le.Uint32(data[40:44]), uint32(len(tt.samples) * 2)},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %d, want %d", c.field, c.got, c.want)
				}
			}

			for i, s := range tt.samples {
				if got := int16(le.Uint16(data[headerSize+2*i:])); got != s {
					t.Errorf("sample %d = %d, want %d", i, got, s)
				}
			}
		})
	}
}

func TestWriteWAV16_LargeInputSpansChunks(t *testing.T) {
	t.Parallel()

	samples := make([]int16, chunkSize*2+10)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 1, samples); err != nil {
		t.Fatal(err)
	}

	last := len(samples) - 1
	got := int16(binary.LittleEndian.Uint16(buf.Bytes()[headerSize+2*last:]))
	if got != samples[last] {
		t.Errorf("last sample = %d, want %d", got, samples[last])
	}
}

func TestWriteWAV16_InvalidArguments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("zero channels error = %v", err)
	}
	if err := WriteWAV16(&buf, 8000, 2, []int16{1, 2, 3}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("partial frame error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes written for invalid arguments", buf.Len())
	}
}

func TestWriteWAV16_WriterErrors(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(&failingWriter{failAfter: 0}, 8000, 1, []int16{1}); err == nil {
		t.Error("header write error was swallowed")
	}
	if err := WriteWAV16(&failingWriter{failAfter: 1}, 8000, 1, []int16{1}); err == nil {
		t.Error("data write error was swallowed")
	}
	if err := WriteFloat16(&failingWriter{failAfter: 1}, 8000, 1, []float32{1}); err == nil {
		t.Error("float data write error was swallowed")
	}
}

func TestWriteFloat16_ClipsAndScales(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteFloat16(&buf, 8000, 2, []float32{0, 1, -1, 2}); err != nil {
		t.Fatal(err)
	}

	want := []int16{0, 32767, -32767, 32767}
	for i, w := range want {
		if got := int16(binary.LittleEndian.Uint16(buf.Bytes()[headerSize+2*i:])); got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func BenchmarkWriteFloat16(b *testing.B) {
	samples := make([]float32, 48000*2)
	var buf bytes.Buffer

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		_ = WriteFloat16(&buf, 48000, 2, samples)
	}
}
