// SPDX-License-Identifier: EPL-2.0

package audio

const (
	// DefaultMaxPerLength is the number of buffers kept per exact length.
	DefaultMaxPerLength = 8
	// DefaultMaxRetained caps the total elements kept across all lengths
	// (8M floats, 32 MiB).
	DefaultMaxRetained = 8 * 1024 * 1024
)

// Pool keeps released float32 buffers bucketed by exact length so that
// reconfiguring nodes does not churn the allocator.
//
// Pool belongs to the control side. It is not safe for concurrent use and must
// never be touched from a Process call; generator.Graph serializes access.
type Pool struct {
	buckets      map[int][][]float32
	retained     int
	maxPerLength int
	maxRetained  int
}

// PoolOption mutates a Pool at construction.
type PoolOption func(*Pool)

// WithMaxPerLength sets how many buffers of one length are retained.
func WithMaxPerLength(n int) PoolOption {
	return func(p *Pool) {
		if n >= 0 {
			p.maxPerLength = n
		}
	}
}

// WithMaxRetained sets the global cap on retained elements.
func WithMaxRetained(n int) PoolOption {
	return func(p *Pool) {
		if n >= 0 {
			p.maxRetained = n
		}
	}
}

func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		buckets:      make(map[int][][]float32),
		maxPerLength: DefaultMaxPerLength,
		maxRetained:  DefaultMaxRetained,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// Rent returns a buffer of exactly length elements. A previously returned
// buffer of the same length is reused when available; otherwise fresh memory
// is allocated. Contents are unspecified. length <= 0 yields nil.
func (p *Pool) Rent(length int) []float32 {
	if length <= 0 {
		return nil
	}

	stack := p.buckets[length]
	if len(stack) == 0 {
		return make([]float32, length)
	}

	top := len(stack) - 1
	buf := stack[top]
	stack[top] = nil
	p.buckets[length] = stack[:top]

	p.retained -= length
	if p.retained < 0 {
		p.retained = 0
	}

	return buf
}

// Return hands buf back to its length bucket. The buffer is dropped instead
// when the bucket is full or retaining it would exceed the global cap. Nil,
// empty and already-retained buffers are ignored.
func (p *Pool) Return(buf []float32) {
	length := len(buf)
	if length <= 0 {
		return
	}
	buf = buf[:length:length]

	stack := p.buckets[length]
	for _, held := range stack {
		if &held[0] == &buf[0] {
			return
		}
	}

	if p.retained+length > p.maxRetained {
		return
	}
	if len(stack) >= p.maxPerLength {
		return
	}

	if stack == nil {
		stack = make([][]float32, 0, p.maxPerLength)
	}
	p.buckets[length] = append(stack, buf)
	p.retained += length
}

// Clear drops every retained buffer and resets the counters. Call it at host
// shutdown or on a hot-reload boundary.
func (p *Pool) Clear() {
	clear(p.buckets)
	p.retained = 0
}

// Retained is the number of elements currently held by the pool.
func (p *Pool) Retained() int { return p.retained }

// RetainedFor is the number of buffers of exactly length held by the pool.
func (p *Pool) RetainedFor(length int) int { return len(p.buckets[length]) }
