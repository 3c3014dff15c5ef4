// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"log"

	"github.com/ik5/xfadegen/audio"
)

// ControlContext is handed to Configure and Dispose. Its methods are only
// valid for the duration of that call.
type ControlContext struct {
	g *Graph
}

// Pool returns the scratch pool shared by the graph.
func (c *ControlContext) Pool() *audio.Pool { return c.g.pool }

// Logger returns the graph logger.
func (c *ControlContext) Logger() *log.Logger { return c.g.logger }

// Exists reports whether h refers to a live node.
func (c *ControlContext) Exists(h Handle) bool {
	_, ok := c.g.lookupLocked(h)
	return ok
}

// Configuration returns the Setup h settled on during its last Configure. It
// never configures the node.
func (c *ControlContext) Configuration(h Handle) (Setup, bool) {
	return c.g.configurationLocked(h)
}

// Destroy disposes the node behind h.
func (c *ControlContext) Destroy(h Handle) bool {
	return c.g.destroyLocked(h)
}

// RealtimeContext is handed to Update and Process.
type RealtimeContext struct {
	g *Graph
}

// Process updates and runs the node behind h into buf and returns the frames
// it produced. A stale handle produces 0 frames.
func (c *RealtimeContext) Process(h Handle, buf audio.Buffer) int {
	return c.g.processNode(h, buf)
}
