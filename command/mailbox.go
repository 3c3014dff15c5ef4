// SPDX-License-Identifier: EPL-2.0

package command

import "sync"

// Mailbox delivers values from the control side to the realtime side.
//
// Values go through a Ring. When the ring is full they wait in a
// control-owned backlog and are moved over by Flush, so a value posted
// while the receiver is alive is never dropped. Post and Flush may be
// called from several control goroutines. Drain must be called from a
// single realtime goroutine.
type Mailbox[T any] struct {
	ring *Ring[T]

	mu      sync.Mutex
	backlog []T
}

// NewMailbox returns a mailbox backed by a ring of the given capacity.
func NewMailbox[T any](capacity int) *Mailbox[T] {
	return &Mailbox[T]{ring: NewRing[T](capacity)}
}

// Post queues v for the next Drain. Order is preserved across the ring and
// the backlog.
func (m *Mailbox[T]) Post(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flushLocked()
	if len(m.backlog) == 0 && m.ring.Push(v) {
		return
	}

	m.backlog = append(m.backlog, v)
}

// Flush moves backlogged values into the ring as space allows and returns
// the number still waiting.
func (m *Mailbox[T]) Flush() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flushLocked()

	return len(m.backlog)
}

func (m *Mailbox[T]) flushLocked() {
	n := 0
	for n < len(m.backlog) && m.ring.Push(m.backlog[n]) {
		n++
	}
	if n == 0 {
		return
	}

	var zero T
	copied := copy(m.backlog, m.backlog[n:])
	for i := copied; i < len(m.backlog); i++ {
		m.backlog[i] = zero
	}
	m.backlog = m.backlog[:copied]
}

// Drain hands every value currently in the ring to fn in FIFO order and
// returns how many were delivered. Backlogged values arrive after a Flush.
func (m *Mailbox[T]) Drain(fn func(T)) int {
	n := 0
	for {
		v, ok := m.ring.Pop()
		if !ok {
			return n
		}
		fn(v)
		n++
	}
}

// Next pops one value on the realtime side.
func (m *Mailbox[T]) Next() (T, bool) {
	return m.ring.Pop()
}

// Pending returns the number of values not yet drained.
func (m *Mailbox[T]) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Len() + len(m.backlog)
}
