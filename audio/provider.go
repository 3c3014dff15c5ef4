// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const defaultReadChunk = 4096

// Provider yields the immutable PCM of an asset. Provide runs on the control
// side and may fail; clip generators stay silent when it does.
type Provider interface {
	Provide(id string) (PCM, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(id string) (PCM, error)

func (f ProviderFunc) Provide(id string) (PCM, error) { return f(id) }

// ReadPCM drains src into a PCM whose storage is rented from pool. A nil pool
// allocates directly. Trailing partial frames are dropped.
func ReadPCM(src Source, pool *Pool) (PCM, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels <= 0 || rate <= 0 {
		return PCM{}, fmt.Errorf("source reports %d channels at %d Hz: %w", channels, rate, ErrInvalidPCM)
	}

	chunk := src.BufSize()
	if chunk <= 0 {
		chunk = defaultReadChunk
	}
	chunk -= chunk % channels
	if chunk == 0 {
		chunk = channels
	}

	buf := make([]float32, chunk)
	var acc []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			acc = append(acc, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return PCM{}, fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := len(acc) / channels
	if frames == 0 {
		return PCM{}, ErrEmptySource
	}

	var data []float32
	if pool != nil {
		data = pool.Rent(frames * channels)
	} else {
		data = make([]float32, frames*channels)
	}
	copy(data, acc)

	return PCM{
		Data:       data,
		Channels:   channels,
		SampleRate: rate,
		Frames:     frames,
	}, nil
}

// FileProvider decodes files from disk, choosing the decoder by extension.
type FileProvider struct {
	Registry *Registry
	Pool     *Pool
}

func (p FileProvider) Provide(path string) (PCM, error) {
	dec, ok := p.Registry.ForPath(path)
	if !ok {
		return PCM{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return PCM{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return PCM{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	pcm, err := ReadPCM(src, p.Pool)
	if err != nil {
		return PCM{}, fmt.Errorf("%s: %w", path, err)
	}

	return pcm, nil
}
