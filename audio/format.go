// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// DefaultChannelCount is used when a layout does not map to a known speaker
// arrangement.
const DefaultChannelCount = 2

// ChannelLayout names a speaker arrangement. It maps to a channel count.
type ChannelLayout int

const (
	LayoutUnknown ChannelLayout = iota
	LayoutMono
	LayoutStereo
	LayoutQuad
	LayoutSurround
	LayoutSurround51
	LayoutSurround71
)

// Channels returns the interleaved channel count of the layout.
func (l ChannelLayout) Channels() int {
	switch l {
	case LayoutMono:
		return 1
	case LayoutStereo:
		return 2
	case LayoutQuad:
		return 4
	case LayoutSurround:
		return 5
	case LayoutSurround51:
		return 6
	case LayoutSurround71:
		return 8
	default:
		return DefaultChannelCount
	}
}

func (l ChannelLayout) String() string {
	switch l {
	case LayoutMono:
		return "mono"
	case LayoutStereo:
		return "stereo"
	case LayoutQuad:
		return "quad"
	case LayoutSurround:
		return "surround"
	case LayoutSurround51:
		return "5.1"
	case LayoutSurround71:
		return "7.1"
	default:
		return "unknown"
	}
}

// LayoutForChannels is the inverse of ChannelLayout.Channels. Counts without
// a matching arrangement yield LayoutUnknown.
func LayoutForChannels(n int) ChannelLayout {
	switch n {
	case 1:
		return LayoutMono
	case 2:
		return LayoutStereo
	case 4:
		return LayoutQuad
	case 5:
		return LayoutSurround
	case 6:
		return LayoutSurround51
	case 8:
		return LayoutSurround71
	default:
		return LayoutUnknown
	}
}

// Format is the output format negotiated by the host for one configuration
// epoch.
type Format struct {
	SampleRate int
	Layout     ChannelLayout
	// BufferFrameCount is the maximum number of frames requested per Process call.
	BufferFrameCount int
}

func (f Format) Channels() int { return f.Layout.Channels() }

// Samples is the interleaved element count of one full block.
func (f Format) Samples() int { return f.BufferFrameCount * f.Channels() }

// Validate reports the first invalid field wrapped in ErrInvalidFormat.
func (f Format) Validate() error {
	switch {
	case f.SampleRate <= 0:
		return fmt.Errorf("sample rate %d: %w", f.SampleRate, ErrInvalidFormat)
	case f.Layout == LayoutUnknown:
		return fmt.Errorf("channel layout %v: %w", f.Layout, ErrInvalidFormat)
	case f.BufferFrameCount <= 0:
		return fmt.Errorf("buffer frame count %d: %w", f.BufferFrameCount, ErrInvalidFormat)
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz %s x%d", f.SampleRate, f.Layout, f.BufferFrameCount)
}
