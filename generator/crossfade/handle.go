// SPDX-License-Identifier: EPL-2.0

package crossfade

import (
	"github.com/ik5/xfadegen/command"
	"github.com/ik5/xfadegen/generator"
)

// Handle is the control-side remote for a crossfade node in a graph. Every
// Try method reports false when the node is gone instead of failing.
type Handle struct {
	graph *generator.Graph
	node  generator.Handle
	fade  float32
}

// Attach adds g to graph and returns a Handle for it.
func Attach(graph *generator.Graph, g *Generator) (Handle, error) {
	h, err := graph.Add(g)
	if err != nil {
		return Handle{}, err
	}

	return Handle{graph: graph, node: h, fade: g.DefaultFadeSeconds()}, nil
}

// Node returns the graph handle of the crossfade node.
func (h Handle) Node() generator.Handle { return h.node }

// IsValid reports whether the node still exists.
func (h Handle) IsValid() bool {
	return h.graph != nil && h.graph.Exists(h.node)
}

// TryCrossfade fades to target over seconds with curve.
func (h Handle) TryCrossfade(target, seconds float32, curve command.Curve) bool {
	if h.graph == nil {
		return false
	}

	return h.graph.Send(h.node, command.NewCrossfade(target, seconds, curve))
}

// TryCrossfadeToA fades fully to A.
func (h Handle) TryCrossfadeToA(seconds float32, curve command.Curve) bool {
	return h.TryCrossfade(0, seconds, curve)
}

// TryCrossfadeToB fades fully to B.
func (h Handle) TryCrossfadeToB(seconds float32, curve command.Curve) bool {
	return h.TryCrossfade(1, seconds, curve)
}

// TrySetImmediate jumps to position on the next cycle and switches the node
// to the linear curve, so position is the exact weight of B.
func (h Handle) TrySetImmediate(position float32) bool {
	return h.TryCrossfade(position, 0, command.Linear)
}

// TryCrossfadeDefault fades to target over the node's default fade length
// with an equal-power curve.
func (h Handle) TryCrossfadeDefault(target float32) bool {
	return h.TryCrossfade(target, h.fade, command.EqualPower)
}
