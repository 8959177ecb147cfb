package fifo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/traverse"
)

func TestQueueOrder(t *testing.T) {
	q := New[string]()
	require.True(t, q.Empty())

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	require.Equal(t, 3, q.Len())
	require.Equal(t, []string{"c", "b", "a"}, traverse.Collect[string](q.Iterate()))

	for _, exp := range []string{"a", "b"} {
		v, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, exp, v)
	}
	q.Enqueue("d")
	v, _ := q.Dequeue()
	require.Equal(t, "c", v)
	v, _ = q.Dequeue()
	require.Equal(t, "d", v)
	require.True(t, q.Empty())
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := New[int]()
	_, err := q.Dequeue()
	require.True(t, errors.Is(err, codeerrors.ErrEmptyCollection))

	q.Enqueue(1)
	q.Clear()
	require.True(t, q.Empty())
	_, err = q.Dequeue()
	require.True(t, errors.Is(err, codeerrors.ErrEmptyCollection))
}
