package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	require.NoError(t, rq.Enqueue(1))
	require.NoError(t, rq.Enqueue(2))
	require.NoError(t, rq.Enqueue(3))
	assert.True(t, rq.IsFull())
	assert.ErrorIs(t, rq.Enqueue(4), ErrQueueFull)

	v, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	for want := 1; want <= 3; want++ {
		v, err := rq.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err = rq.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	_, err = rq.Peek()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRingQueuePushEvicts(t *testing.T) {
	rq := NewRingQueue[string](2)
	_, ok := rq.Push("a")
	assert.False(t, ok)
	_, ok = rq.Push("b")
	assert.False(t, ok)

	evicted, ok := rq.Push("c")
	assert.True(t, ok)
	assert.Equal(t, "a", evicted)
	assert.Equal(t, 2, rq.Len())

	v, err := rq.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestRingQueueMinimumCapacity(t *testing.T) {
	rq := NewRingQueue[int](0)
	assert.Equal(t, 1, rq.Cap())
}
