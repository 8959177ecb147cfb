package heap

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/fifo"
	"github.com/neganovalexey/agenda/lifo"
	"github.com/neganovalexey/agenda/traverse"
)

// preorderIter walks the implicit tree with a stack of pending indices
type preorderIter[T any] struct {
	items []T
	size  int
	stack *lifo.Stack[int]
}

func newPreorderIter[T any](items []T, size int) *preorderIter[T] {
	it := &preorderIter[T]{items: items, size: size, stack: lifo.New[int]()}
	if size > 0 {
		it.stack.Push(0)
	}
	return it
}

// HasNext checks has next element
func (i *preorderIter[T]) HasNext() bool {
	return !i.stack.Empty()
}

// Next returns next item, left subtree is visited before right one
func (i *preorderIter[T]) Next() (item T, err error) {
	idx, err := i.stack.Pop()
	if err != nil {
		return item, codeerrors.ErrInvalidState.WithMessage("iteration is finished")
	}
	if right := 2*idx + 2; right < i.size {
		i.stack.Push(right)
	}
	if left := 2*idx + 1; left < i.size {
		i.stack.Push(left)
	}
	return i.items[idx], nil
}

// ForEach applies for each next item
func (i *preorderIter[T]) ForEach(f traverse.ForEachFunc[T]) {
	for i.HasNext() {
		item, _ := i.Next()
		if !f(item) {
			break
		}
	}
}

// levelIter queues all indices up front, ascending index order is level order
type levelIter[T any] struct {
	items []T
	queue *fifo.Queue[int]
}

func newLevelIter[T any](items []T, size int) *levelIter[T] {
	it := &levelIter[T]{items: items, queue: fifo.New[int]()}
	for idx := 0; idx < size; idx++ {
		it.queue.Enqueue(idx)
	}
	return it
}

// HasNext checks has next element
func (i *levelIter[T]) HasNext() bool {
	return !i.queue.Empty()
}

// Next returns next item
func (i *levelIter[T]) Next() (item T, err error) {
	idx, err := i.queue.Dequeue()
	if err != nil {
		return item, codeerrors.ErrInvalidState.WithMessage("iteration is finished")
	}
	return i.items[idx], nil
}

// ForEach applies for each next item
func (i *levelIter[T]) ForEach(f traverse.ForEachFunc[T]) {
	for i.HasNext() {
		item, _ := i.Next()
		if !f(item) {
			break
		}
	}
}
