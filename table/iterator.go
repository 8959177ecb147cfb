package table

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/fifo"
	"github.com/neganovalexey/agenda/lifo"
	"github.com/neganovalexey/agenda/traverse"
)

// dfsIter keeps the pending left spines on a stack
type dfsIter[K any, V any] struct {
	stack *lifo.Stack[*Node[K, V]]
}

func newDfsIter[K any, V any](root *Node[K, V]) *dfsIter[K, V] {
	it := &dfsIter[K, V]{stack: lifo.New[*Node[K, V]]()}
	it.pushLeft(root)
	return it
}

func (i *dfsIter[K, V]) pushLeft(node *Node[K, V]) {
	for ; node != nil; node = node.Left {
		i.stack.Push(node)
	}
}

// HasNext checks has next element
func (i *dfsIter[K, V]) HasNext() bool {
	return !i.stack.Empty()
}

// Next returns next value
func (i *dfsIter[K, V]) Next() (value V, err error) {
	node, err := i.stack.Pop()
	if err != nil {
		return value, codeerrors.ErrInvalidState.WithMessage("iteration is finished")
	}
	if node.Right != nil {
		i.pushLeft(node.Right)
	}
	return node.Value, nil
}

// ForEach applies for each next item
func (i *dfsIter[K, V]) ForEach(f traverse.ForEachFunc[V]) {
	for i.HasNext() {
		v, _ := i.Next()
		if !f(v) {
			break
		}
	}
}

// bfsIter visits nodes level by level
type bfsIter[K any, V any] struct {
	queue *fifo.Queue[*Node[K, V]]
}

func newBfsIter[K any, V any](root *Node[K, V]) *bfsIter[K, V] {
	it := &bfsIter[K, V]{queue: fifo.New[*Node[K, V]]()}
	if root != nil {
		it.queue.Enqueue(root)
	}
	return it
}

// HasNext checks has next element
func (i *bfsIter[K, V]) HasNext() bool {
	return !i.queue.Empty()
}

// Next returns next value
func (i *bfsIter[K, V]) Next() (value V, err error) {
	node, err := i.queue.Dequeue()
	if err != nil {
		return value, codeerrors.ErrInvalidState.WithMessage("iteration is finished")
	}
	if node.Left != nil {
		i.queue.Enqueue(node.Left)
	}
	if node.Right != nil {
		i.queue.Enqueue(node.Right)
	}
	return node.Value, nil
}

// ForEach applies for each next item
func (i *bfsIter[K, V]) ForEach(f traverse.ForEachFunc[V]) {
	for i.HasNext() {
		v, _ := i.Next()
		if !f(v) {
			break
		}
	}
}
