// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestChannelLayout_Channels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout ChannelLayout
		want   int
	}{
		{LayoutMono, 1},
		{LayoutStereo, 2},
		{LayoutQuad, 4},
		{LayoutSurround, 5},
		{LayoutSurround51, 6},
		{LayoutSurround71, 8},
		{LayoutUnknown, DefaultChannelCount},
		{ChannelLayout(42), DefaultChannelCount},
	}

	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.layout.Channels(); got != tt.want {
				t.Errorf("%v.Channels() = %d, want %d", tt.layout, got, tt.want)
			}
			if tt.layout != LayoutUnknown && tt.layout.String() != "unknown" {
				if back := LayoutForChannels(tt.want); back != tt.layout {
					t.Errorf("LayoutForChannels(%d) = %v, want %v", tt.want, back, tt.layout)
				}
			}
		})
	}

	if got := LayoutForChannels(3); got != LayoutUnknown {
		t.Errorf("LayoutForChannels(3) = %v, want unknown", got)
	}
}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"valid", Format{SampleRate: 48000, Layout: LayoutStereo, BufferFrameCount: 512}, false},
		{"zero rate", Format{SampleRate: 0, Layout: LayoutStereo, BufferFrameCount: 512}, true},
		{"negative rate", Format{SampleRate: -1, Layout: LayoutStereo, BufferFrameCount: 512}, true},
		{"unknown layout", Format{SampleRate: 48000, BufferFrameCount: 512}, true},
		{"zero frames", Format{SampleRate: 48000, Layout: LayoutMono}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.format.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Validate() = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestFormat_Samples(t *testing.T) {
	t.Parallel()

	f := Format{SampleRate: 44100, Layout: LayoutSurround51, BufferFrameCount: 256}
	if got := f.Samples(); got != 256*6 {
		t.Errorf("Samples() = %d, want %d", got, 256*6)
	}
}
