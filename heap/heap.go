// Package heap implements an array-backed binary max-heap ordered by a
// replaceable comparator.
package heap

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/traverse"
)

// Comparator returns negative, zero or positive when a has lower, equal or higher priority than b
type Comparator[T any] func(a, b T) int

// MaxHeap keeps the item with the highest priority at index 0.
// For every i the item at i is not less than its children at 2i+1 and 2i+2.
type MaxHeap[T any] struct {
	items      []T // len(items) is the capacity, only items[:size] are live
	size       int
	comparator Comparator[T]
}

// nolint: unused, deadcode
func assertInterfaces() {
	var _ traverse.Iter[int] = (*preorderIter[int])(nil)
	var _ traverse.Iter[int] = (*levelIter[int])(nil)
}

// New creates empty heap without comparator, use Build to set it
func New[T any]() *MaxHeap[T] {
	return &MaxHeap[T]{}
}

// Build copies items into the heap, replaces the comparator and heapifies bottom-up
func (h *MaxHeap[T]) Build(items []T, comparator Comparator[T]) error {
	if comparator == nil {
		return codeerrors.ErrInvalidState.WithMessage("heap comparator is not set")
	}
	h.items = make([]T, len(items))
	copy(h.items, items)
	h.size = len(items)
	h.comparator = comparator
	h.heapify()
	return nil
}

// Size returns number of items
func (h *MaxHeap[T]) Size() int {
	return h.size
}

// Empty checks heap is empty
func (h *MaxHeap[T]) Empty() bool {
	return h.size == 0
}

// Insert adds item, buffer capacity doubles when full
func (h *MaxHeap[T]) Insert(item T) error {
	if h.comparator == nil {
		return codeerrors.ErrInvalidState.WithMessage("heap comparator is not set")
	}
	if h.size == len(h.items) {
		h.grow()
	}
	h.items[h.size] = item
	h.size++
	h.siftUp(h.size - 1)
	return nil
}

// ExtractMax removes and returns the item with the highest priority
func (h *MaxHeap[T]) ExtractMax() (item T, err error) {
	if h.size == 0 {
		return item, codeerrors.ErrEmptyCollection.WithMessage("heap is empty")
	}
	item = h.items[0]
	last := h.size - 1
	h.swap(0, last)
	var zero T
	h.items[last] = zero
	h.size--
	h.siftDown(0)
	return item, nil
}

// PeekMax returns the item with the highest priority without removing it
func (h *MaxHeap[T]) PeekMax() (item T, err error) {
	if h.size == 0 {
		return item, codeerrors.ErrEmptyCollection.WithMessage("heap is empty")
	}
	return h.items[0], nil
}

// Reorganize replaces the comparator and heapifies the current items again.
// A nil comparator leaves the heap untouched.
func (h *MaxHeap[T]) Reorganize(comparator Comparator[T]) {
	if comparator == nil {
		return
	}
	h.comparator = comparator
	h.heapify()
}

// Clear drops all items, the comparator is kept
func (h *MaxHeap[T]) Clear() {
	h.items = nil
	h.size = 0
}

// Items returns copy of live items in buffer order
func (h *MaxHeap[T]) Items() []T {
	items := make([]T, h.size)
	copy(items, h.items[:h.size])
	return items
}

// Iterate returns one-shot iterator over items: depth-first is preorder over
// the implicit tree, breadth-first is buffer order.
// Size is captured at call time, mutating the heap while iterating is not supported.
func (h *MaxHeap[T]) Iterate(mode traverse.Mode) traverse.Iter[T] {
	switch mode {
	case traverse.DepthFirst:
		return newPreorderIter(h.items, h.size)
	case traverse.BreadthFirst:
		return newLevelIter(h.items, h.size)
	default:
		panic("mode")
	}
}

func (h *MaxHeap[T]) heapify() {
	for i := h.size/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

func (h *MaxHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.comparator(h.items[i], h.items[parent]) <= 0 {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *MaxHeap[T]) siftDown(i int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < h.size && h.comparator(h.items[left], h.items[largest]) > 0 {
			largest = left
		}
		if right < h.size && h.comparator(h.items[right], h.items[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *MaxHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *MaxHeap[T]) grow() {
	capacity := 2 * len(h.items)
	if capacity == 0 {
		capacity = 1
	}
	items := make([]T, capacity)
	copy(items, h.items[:h.size])
	h.items = items
}
