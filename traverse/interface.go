// Package traverse describes traversal modes and the one-shot iterators
// produced by the collections of this module.
package traverse

import "iter"

// Mode selects the traversal order
type Mode int

const (
	// DepthFirst walks the structure using a stack of pending positions
	DepthFirst Mode = iota
	// BreadthFirst walks the structure level by level using a queue
	BreadthFirst
)

func (m Mode) String() string {
	switch m {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	}
	return "unknown"
}

// ForEachFunc is func, that runs for each item
type ForEachFunc[T any] func(item T) bool

// Iter is a finite, non-restartable sequence of items.
// The source structure must not be mutated between advances.
type Iter[T any] interface {
	HasNext() bool
	// Next returns the next item or an invalid state error when exhausted
	Next() (item T, err error)

	// iterate over the remaining items
	ForEach(f ForEachFunc[T])
}

// Seq adapts an iterator to a range-over-func sequence
func Seq[T any](it Iter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it.ForEach(yield)
	}
}

// Collect drains the iterator into a slice
func Collect[T any](it Iter[T]) []T {
	items := make([]T, 0)
	it.ForEach(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}
