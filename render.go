// SPDX-License-Identifier: EPL-2.0

package xfadegen

import (
	"fmt"

	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/generator"
	"github.com/ik5/xfadegen/utils"
)

// Renderer pulls fixed-size blocks from one node of a graph, the way an
// audio callback would. It plays both sides: Update is the control tick and
// Process the realtime pull.
type Renderer struct {
	graph  *generator.Graph
	root   generator.Handle
	format audio.Format
	block  []float32
	frame  int
}

// NewRenderer configures every node of graph with format and prepares a
// block buffer. Configuration problems of individual nodes are returned but
// the renderer is still usable; affected nodes render silence.
func NewRenderer(graph *generator.Graph, root generator.Handle, format audio.Format) (*Renderer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if !graph.Exists(root) {
		return nil, fmt.Errorf("root node: %w", generator.ErrStaleHandle)
	}

	r := &Renderer{
		graph:  graph,
		root:   root,
		format: format,
		block:  make([]float32, format.Samples()),
	}

	return r, graph.ConfigureAll(format)
}

// Frame is the number of frames rendered so far.
func (r *Renderer) Frame() int { return r.frame }

// Next renders one block of up to frames frames. The returned buffer is
// reused by the following call. written is what the root node reported;
// frames past it are silence.
func (r *Renderer) Next(frames int) (buf audio.Buffer, written int) {
	frames = min(max(frames, 0), r.format.BufferFrameCount)
	buf = audio.Slice(r.block, frames, r.format.Channels())

	r.graph.Update()
	written = r.graph.Process(r.root, buf)
	buf.ClearRange(written, frames-written)
	r.frame += frames

	return buf, written
}

// Render produces frames frames of interleaved output. before, when not
// nil, runs on the control side ahead of every block with the index of the
// block's first frame; commands sent there apply to that block.
func (r *Renderer) Render(frames int, before func(frame int)) []float32 {
	channels := r.format.Channels()
	out := make([]float32, 0, max(frames, 0)*channels)

	for remaining := frames; remaining > 0; {
		if before != nil {
			before(r.frame)
		}

		buf, _ := r.Next(min(remaining, r.format.BufferFrameCount))
		out = append(out, buf.Samples()...)
		remaining -= buf.Frames
	}

	return out
}

// RenderPCM16 is Render followed by conversion to 16-bit PCM.
func (r *Renderer) RenderPCM16(frames int, before func(frame int)) []int16 {
	samples := r.Render(frames, before)
	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return pcm
}
