// Package lifo implements a stack on top of dlist.List.
package lifo

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/dlist"
)

// Stack is LIFO container: push and pop both work on list head
type Stack[T any] struct {
	list dlist.List[T]
}

// New creates empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Clear removes all items
func (s *Stack[T]) Clear() {
	s.list.Clear()
}

// Empty checks stack is empty
func (s *Stack[T]) Empty() bool {
	return s.list.Empty()
}

// Len returns number of items
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// Push puts item on top
func (s *Stack[T]) Push(item T) {
	s.list.InsertFront(item)
}

// Pop removes and returns the top item
func (s *Stack[T]) Pop() (item T, err error) {
	if s.list.Empty() {
		return item, codeerrors.ErrEmptyCollection.WithMessage("stack is empty")
	}
	return s.list.RemoveFirst()
}

// Iterate returns items from top to bottom
func (s *Stack[T]) Iterate() *dlist.Iter[T] {
	return s.list.Iterate()
}
