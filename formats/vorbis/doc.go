// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float32, so no integer conversion happens.
// The channel count comes from the identification header.
//
//	registry.Register("ogg", vorbis.Decoder{})
//	registry.Register("oga", vorbis.Decoder{})
package vorbis
