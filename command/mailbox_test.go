// SPDX-License-Identifier: EPL-2.0

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainAll(m *Mailbox[int]) []int {
	var got []int
	m.Drain(func(v int) { got = append(got, v) })
	return got
}

func TestMailbox_DeliversInOrder(t *testing.T) {
	t.Parallel()

	m := NewMailbox[int](8)
	for i := range 5 {
		m.Post(i)
	}

	assert.Equal(t, 5, m.Pending())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, drainAll(m))
	assert.Zero(t, m.Pending())
	assert.Empty(t, drainAll(m))
}

func TestMailbox_BacklogKeepsEveryValue(t *testing.T) {
	t.Parallel()

	m := NewMailbox[int](2)
	for i := range 7 {
		m.Post(i)
	}
	require.Equal(t, 7, m.Pending())

	// only the ring contents are visible to the realtime side
	assert.Equal(t, []int{0, 1}, drainAll(m))

	assert.Equal(t, 3, m.Flush())
	assert.Equal(t, []int{2, 3}, drainAll(m))

	// a post while backlogged must queue behind the backlog
	m.Post(7)
	assert.Equal(t, []int{4, 5}, drainAll(m))

	assert.Zero(t, m.Flush())
	assert.Equal(t, []int{6, 7}, drainAll(m))
	assert.Zero(t, m.Pending())
}

func TestMailbox_Next(t *testing.T) {
	t.Parallel()

	m := NewMailbox[Crossfade](4)
	m.Post(NewCrossfade(0.5, 1, SCurve))

	got, ok := m.Next()
	require.True(t, ok)
	assert.Equal(t, Crossfade{Target: 0.5, Duration: 1, Curve: SCurve}, got)

	_, ok = m.Next()
	assert.False(t, ok)
}
