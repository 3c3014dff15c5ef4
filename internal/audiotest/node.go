// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/xfadegen/audio"
	"github.com/ik5/xfadegen/generator"
)

// ScriptedNode fills every block with Value and reports frame counts from
// Script, one entry per Process call. Once the script runs out the last entry
// repeats; a negative entry or an empty script means the full request.
type ScriptedNode struct {
	Value  float32
	Script []int

	Calls    int
	Updates  int
	Disposed int
	Format   audio.Format
}

var _ generator.Node = (*ScriptedNode)(nil)

// NewConstantNode returns a node that always fills the whole block with value.
func NewConstantNode(value float32) *ScriptedNode {
	return &ScriptedNode{Value: value}
}

// NewScriptedNode returns a node that reports script[i] frames on call i.
func NewScriptedNode(value float32, script ...int) *ScriptedNode {
	return &ScriptedNode{Value: value, Script: script}
}

func (n *ScriptedNode) Configure(_ *generator.ControlContext, format audio.Format) generator.Setup {
	n.Format = format
	return generator.SetupFor(format)
}

func (n *ScriptedNode) Update(*generator.RealtimeContext) { n.Updates++ }

func (n *ScriptedNode) Process(_ *generator.RealtimeContext, buf audio.Buffer) int {
	frames := buf.Frames
	if len(n.Script) > 0 {
		step := n.Script[min(n.Calls, len(n.Script)-1)]
		if step >= 0 {
			frames = min(step, buf.Frames)
		}
	}
	n.Calls++

	buf.Clear()
	Fill(buf.Data[:frames*buf.Channels], n.Value)

	return frames
}

func (n *ScriptedNode) Dispose(*generator.ControlContext) { n.Disposed++ }
