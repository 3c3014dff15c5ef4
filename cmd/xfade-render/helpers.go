// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log"

	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/formats/aiff"
	"github.com/ik5/xfadegen/formats/mp3"
	"github.com/ik5/xfadegen/formats/vorbis"
	"github.com/ik5/xfadegen/formats/wav"
	"github.com/ik5/xfadegen/generator"
	"github.com/ik5/xfadegen/generator/clip"
	"github.com/ik5/xfadegen/generator/tone"
)

const toneAmplitude = 0.5

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// newSource loads path as a clip, or returns a tone at freq when path is
// empty. A clip that fails to load stays silent; Load logs why.
func newSource(p audio.Provider, path string, freq float64, pool *audio.Pool, cfg clip.Config, logger *log.Logger) generator.Node {
	if path == "" {
		logger.Printf("no clip given, using a %.1f Hz tone", freq)
		return tone.New(freq, toneAmplitude)
	}

	return clip.Load(p, path, pool, cfg, logger)
}
