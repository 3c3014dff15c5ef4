// SPDX-License-Identifier: EPL-2.0

package command

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRing_RoundsCapacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		capacity int
		want     int
	}{
		{0, DefaultCapacity},
		{-3, DefaultCapacity},
		{1, 1},
		{3, 4},
		{16, 16},
		{17, 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewRing[int](tt.capacity).Cap(), "capacity %d", tt.capacity)
	}
}

func TestRing_FIFOAndFull(t *testing.T) {
	t.Parallel()

	r := NewRing[int](4)
	for i := range 4 {
		require.True(t, r.Push(i))
	}
	assert.False(t, r.Push(99), "push into a full ring")
	assert.Equal(t, 4, r.Len())

	for i := range 4 {
		v, ok := r.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}

	_, ok := r.Pop()
	assert.False(t, ok, "pop from an empty ring")
	assert.Zero(t, r.Len())
}

func TestRing_WrapsAround(t *testing.T) {
	t.Parallel()

	r := NewRing[int](2)
	for i := range 10 {
		require.True(t, r.Push(i))
		v, ok := r.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestRing_ConcurrentProducerConsumer(t *testing.T) {
	t.Parallel()

	const total = 10000
	r := NewRing[int](8)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; {
			if r.Push(i) {
				i++
			}
		}
	}()

	for want := 0; want < total; {
		v, ok := r.Pop()
		if !ok {
			continue
		}
		require.Equal(t, want, v)
		want++
	}
	wg.Wait()
}

func TestRing_ZeroAllocs(t *testing.T) {
	r := NewRing[Crossfade](4)
	cmd := NewCrossfade(1, 0.5, Linear)

	allocs := testing.AllocsPerRun(1000, func() {
		r.Push(cmd)
		_, _ = r.Pop()
	})
	assert.Zero(t, allocs)
}

func BenchmarkRing_PushPop(b *testing.B) {
	r := NewRing[Crossfade](64)
	cmd := NewCrossfade(1, 0.5, Linear)

	b.ReportAllocs()
	for b.Loop() {
		r.Push(cmd)
		_, _ = r.Pop()
	}
}
