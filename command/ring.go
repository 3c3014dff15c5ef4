// SPDX-License-Identifier: EPL-2.0

package command

import "sync/atomic"

// DefaultCapacity is the ring size used when a non-positive capacity is requested.
const DefaultCapacity = 64

// Ring is a bounded single-producer/single-consumer queue. Push must only be
// called from one goroutine and Pop from one other goroutine. Neither side
// blocks, locks or allocates.
type Ring[T any] struct {
	buf  []T
	mask uint64

	// head is owned by the consumer, tail by the producer.
	head atomic.Uint64
	_    [56]byte
	tail atomic.Uint64
}

// NewRing returns a ring holding at least capacity values. The capacity is
// rounded up to a power of two.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	size := 1
	for size < capacity {
		size <<= 1
	}

	return &Ring[T]{
		buf:  make([]T, size),
		mask: uint64(size - 1),
	}
}

// Push appends v. It reports false when the ring is full.
func (r *Ring[T]) Push(v T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.buf)) {
		return false
	}

	r.buf[tail&r.mask] = v
	r.tail.Store(tail + 1)

	return true
}

// Pop removes the oldest value. It reports false when the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T

	head := r.head.Load()
	if head == r.tail.Load() {
		return zero, false
	}

	idx := head & r.mask
	v := r.buf[idx]
	r.buf[idx] = zero
	r.head.Store(head + 1)

	return v, true
}

// Len returns the number of queued values. The result is a snapshot.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the ring size.
func (r *Ring[T]) Cap() int { return len(r.buf) }
