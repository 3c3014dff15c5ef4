// SPDX-License-Identifier: EPL-2.0

package generator

import (
	"fmt"
	"io"
	"log"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ik5/xfadegen/audio"
)

// DefaultCapacity is the number of node slots a Graph gets without WithCapacity.
const DefaultCapacity = 64

// entry is published to the realtime side. It is immutable once stored.
type entry struct {
	node Node
	gen  uint32
}

// slot is the control-side record of a node.
type slot struct {
	node       Node
	gen        uint32
	seq        uint64
	setup      Setup
	configured bool
}

// Graph owns nodes and hands out Handles to them. It plays the host role for
// a small node tree: it configures nodes, routes control messages and runs the
// realtime Process entry point.
//
// Control methods serialise on a mutex. Process only performs atomic loads and
// may run on an audio goroutine concurrently with Send and Update. Destroy and
// Configure must not race a Process of the same node tree.
type Graph struct {
	pool   *audio.Pool
	logger *log.Logger

	live []atomic.Pointer[entry]

	mu     sync.Mutex
	slots  []slot
	free   []uint32
	seq    uint64
	closed bool

	ctl ControlContext
	rt  RealtimeContext
}

// Option configures a Graph.
type Option func(*Graph)

// WithCapacity sets the number of node slots. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.slots = make([]slot, n)
		}
	}
}

// WithLogger sets the control-side logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Graph) {
		g.logger = l
	}
}

// NewGraph returns an empty graph that rents scratch memory from pool. A nil
// pool gets a fresh default Pool.
func NewGraph(pool *audio.Pool, opts ...Option) *Graph {
	if pool == nil {
		pool = audio.NewPool()
	}

	g := &Graph{pool: pool}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = log.New(io.Discard, "", 0)
	}
	if g.slots == nil {
		g.slots = make([]slot, DefaultCapacity)
	}

	g.live = make([]atomic.Pointer[entry], len(g.slots))
	g.free = make([]uint32, 0, len(g.slots))
	for i := len(g.slots) - 1; i >= 0; i-- {
		g.free = append(g.free, uint32(i))
	}

	g.ctl = ControlContext{g: g}
	g.rt = RealtimeContext{g: g}

	return g
}

// Pool returns the graph's scratch pool.
func (g *Graph) Pool() *audio.Pool { return g.pool }

// Add registers node and returns its handle.
func (g *Graph) Add(node Node) (Handle, error) {
	if node == nil {
		return Handle{}, ErrNilNode
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return Handle{}, ErrClosed
	}
	if len(g.free) == 0 {
		return Handle{}, fmt.Errorf("adding node: %w (%d slots)", ErrGraphFull, len(g.slots))
	}

	idx := g.free[len(g.free)-1]
	g.free = g.free[:len(g.free)-1]

	s := &g.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	g.seq++
	s.node = node
	s.seq = g.seq
	s.setup = Setup{}
	s.configured = false

	g.live[idx].Store(&entry{node: node, gen: s.gen})

	return Handle{index: idx, gen: s.gen}, nil
}

// Configure negotiates format with the node behind h. An invalid format is
// still handed to the node, which degrades to silence, and is reported as an
// error wrapping audio.ErrInvalidFormat.
func (g *Graph) Configure(h Handle, format audio.Format) (Setup, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.configureLocked(h, format)
}

// ConfigureAll configures every live node in the order it was added, so
// children are configured before the nodes that mix them. The first error is
// returned after every node has been configured.
func (g *Graph) ConfigureAll(format audio.Format) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var order []Handle
	for i := range g.slots {
		if g.slots[i].node != nil {
			order = append(order, Handle{index: uint32(i), gen: g.slots[i].gen})
		}
	}
	slices.SortFunc(order, func(a, b Handle) int {
		sa, sb := g.slots[a.index].seq, g.slots[b.index].seq
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		default:
			return 0
		}
	})

	var first error
	for _, h := range order {
		if _, err := g.configureLocked(h, format); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func (g *Graph) configureLocked(h Handle, format audio.Format) (Setup, error) {
	s, ok := g.lookupLocked(h)
	if !ok {
		return Setup{}, ErrStaleHandle
	}

	verr := format.Validate()
	if verr != nil {
		g.logger.Printf("generator: configuring node %d with %v: %v", h.index, format, verr)
	}

	setup := s.node.Configure(&g.ctl, format)
	s.setup = setup
	s.configured = true

	if verr != nil {
		return setup, fmt.Errorf("configuring node %d: %w", h.index, verr)
	}

	return setup, nil
}

// Configuration returns the Setup of the node behind h from its last
// Configure call.
func (g *Graph) Configuration(h Handle) (Setup, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.configurationLocked(h)
}

func (g *Graph) configurationLocked(h Handle) (Setup, bool) {
	s, ok := g.lookupLocked(h)
	if !ok || !s.configured {
		return Setup{}, false
	}

	return s.setup, true
}

// Exists reports whether h refers to a live node.
func (g *Graph) Exists(h Handle) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.lookupLocked(h)
	return ok
}

func (g *Graph) lookupLocked(h Handle) (*slot, bool) {
	if h.IsZero() || int(h.index) >= len(g.slots) {
		return nil, false
	}

	s := &g.slots[h.index]
	if s.node == nil || s.gen != h.gen {
		return nil, false
	}

	return s, true
}

// Send delivers msg to the node behind h. It reports false when the handle is
// zero or stale, or when the node does not accept msg.
func (g *Graph) Send(h Handle, msg any) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.lookupLocked(h)
	if !ok {
		return false
	}

	r, ok := s.node.(Receiver)
	if !ok {
		return false
	}

	return r.Post(msg)
}

// Update is the control tick between audio callbacks. It moves backlogged
// messages of every node into their realtime queues.
func (g *Graph) Update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.slots {
		if f, ok := g.slots[i].node.(Flusher); ok {
			f.Flush()
		}
	}
}

// Destroy disposes the node behind h and invalidates the handle. Messages
// still queued for it are dropped.
func (g *Graph) Destroy(h Handle) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.destroyLocked(h)
}

func (g *Graph) destroyLocked(h Handle) bool {
	s, ok := g.lookupLocked(h)
	if !ok {
		return false
	}

	node := s.node
	g.live[h.index].Store(nil)
	s.node = nil
	s.setup = Setup{}
	s.configured = false
	g.free = append(g.free, h.index)

	node.Dispose(&g.ctl)

	return true
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.slots) - len(g.free)
}

// Close destroys every node, newest first, and clears the pool. Further
// calls to Add fail with ErrClosed.
func (g *Graph) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}
	g.closed = true

	for {
		var newest Handle
		var seq uint64
		for i := range g.slots {
			if s := &g.slots[i]; s.node != nil && s.seq > seq {
				seq = s.seq
				newest = Handle{index: uint32(i), gen: s.gen}
			}
		}
		if newest.IsZero() {
			break
		}
		g.destroyLocked(newest)
	}

	g.pool.Clear()

	return nil
}

// Process is the realtime entry point. It drains pending messages of the node
// behind h, then asks it for buf.Frames frames. A stale handle clears buf and
// returns 0. Process never panics; a panicking node yields silence.
func (g *Graph) Process(h Handle, buf audio.Buffer) (frames int) {
	defer func() {
		if recover() != nil {
			buf.Clear()
			frames = 0
		}
	}()

	frames = g.processNode(h, buf)
	if frames < 0 {
		frames = 0
	}

	return frames
}

func (g *Graph) processNode(h Handle, buf audio.Buffer) int {
	if h.IsZero() || int(h.index) >= len(g.live) {
		buf.Clear()
		return 0
	}

	e := g.live[h.index].Load()
	if e == nil || e.gen != h.gen {
		buf.Clear()
		return 0
	}

	e.node.Update(&g.rt)

	return min(e.node.Process(&g.rt, buf), buf.Frames)
}
