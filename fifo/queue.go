// Package fifo implements a queue on top of dlist.List.
package fifo

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/dlist"
)

// Queue is FIFO container: items enter at list head and leave at list tail
type Queue[T any] struct {
	list dlist.List[T]
}

// New creates empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Clear removes all items
func (q *Queue[T]) Clear() {
	q.list.Clear()
}

// Empty checks queue is empty
func (q *Queue[T]) Empty() bool {
	return q.list.Empty()
}

// Len returns number of items
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// Enqueue appends item
func (q *Queue[T]) Enqueue(item T) {
	q.list.InsertFront(item)
}

// Dequeue removes and returns the oldest item
func (q *Queue[T]) Dequeue() (item T, err error) {
	if q.list.Empty() {
		return item, codeerrors.ErrEmptyCollection.WithMessage("queue is empty")
	}
	return q.list.RemoveLast()
}

// Iterate returns items from newest to oldest
func (q *Queue[T]) Iterate() *dlist.Iter[T] {
	return q.list.Iterate()
}
