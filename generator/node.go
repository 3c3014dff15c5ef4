// SPDX-License-Identifier: EPL-2.0

package generator

import "github.com/ik5/xfadegen/audio"

// Node produces audio blocks on demand.
//
// Configure and Dispose run on the control side and may allocate. Update and
// Process run on the realtime side: they must not allocate, lock, block or
// log, and must not panic. Process writes at most buf.Frames frames and
// returns how many carry real data; a short count signals exhaustion.
type Node interface {
	Configure(ctx *ControlContext, format audio.Format) Setup
	Update(ctx *RealtimeContext)
	Process(ctx *RealtimeContext, buf audio.Buffer) int
	Dispose(ctx *ControlContext)
}

// Receiver is implemented by nodes that accept control messages. Post runs on
// the control side and reports whether msg was understood.
type Receiver interface {
	Post(msg any) bool
}

// Flusher is implemented by nodes with a control-side backlog that the host
// should drain into the realtime queue between callbacks.
type Flusher interface {
	Flush()
}

// Setup is the format a node settled on during Configure.
type Setup struct {
	SampleRate int
	Layout     audio.ChannelLayout
}

// SetupFor returns the Setup that matches format exactly.
func SetupFor(format audio.Format) Setup {
	return Setup{SampleRate: format.SampleRate, Layout: format.Layout}
}

// Compatible reports whether a node configured with s can feed a block of
// format without conversion.
func (s Setup) Compatible(format audio.Format) bool {
	return s.SampleRate == format.SampleRate && s.Layout.Channels() == format.Channels()
}

// Handle identifies a node inside a Graph. The zero Handle never refers to a
// node, and a handle goes stale once its node is destroyed.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }
