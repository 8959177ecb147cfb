// Package table implements a keyed table on an unbalanced binary search tree.
package table

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/traverse"
)

// Table holds elements of the binary search tree
type Table[K any, V any] struct {
	root       *Node[K, V]
	count      int
	Comparator Comparator[K]
}

// Node is a single element within the tree
type Node[K any, V any] struct {
	Key   K
	Value V
	Left  *Node[K, V]
	Right *Node[K, V]
}

// nolint: unused, deadcode
func assertInterfaces() {
	var _ OrderedTable[string, int] = (*Table[string, int])(nil)
	var _ traverse.Iter[int] = (*dfsIter[string, int])(nil)
	var _ traverse.Iter[int] = (*bfsIter[string, int])(nil)
}

// New instantiates a table with the custom comparator.
func New[K any, V any](comparator Comparator[K]) *Table[K, V] {
	return &Table[K, V]{Comparator: comparator}
}

// NewOrdered instantiates a table keyed by a builtin ordered type.
func NewOrdered[K constraints.Ordered, V any]() *Table[K, V] {
	return &Table[K, V]{Comparator: OrderedComparator[K]}
}

// Clear removes all nodes from the table.
func (t *Table[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Empty returns true if table does not contain any nodes
func (t *Table[K, V]) Empty() bool {
	return t.root == nil
}

// Count returns number of nodes in the table.
func (t *Table[K, V]) Count() int {
	return t.count
}

// Find returns value stored under key
func (t *Table[K, V]) Find(key K) (value V, err error) {
	if t.root == nil {
		return value, codeerrors.ErrNotFound.WithMessage("table is empty")
	}
	node, _ := t.lookup(key)
	if node == nil {
		return value, codeerrors.ErrNotFound.WithMessage("key %v not found", key)
	}
	return node.Value, nil
}

// Insert adds value under key, existing keys are rejected
func (t *Table[K, V]) Insert(key K, value V) error {
	inserted := &Node[K, V]{Key: key, Value: value}
	if t.root == nil {
		t.root = inserted
		t.count++
		return nil
	}
	if _, err := t.Find(key); err == nil {
		return codeerrors.ErrDuplicateKey.WithMessage("key %v already exists", key)
	}

	node := t.root
	for {
		if t.Comparator(key, node.Key) < 0 {
			if node.Left == nil {
				node.Left = inserted
				break
			}
			node = node.Left
		} else {
			if node.Right == nil {
				node.Right = inserted
				break
			}
			node = node.Right
		}
	}
	t.count++
	return nil
}

// Delete removes key and returns its value.
// A node with two children is replaced by its in-order successor.
func (t *Table[K, V]) Delete(key K) (value V, err error) {
	if t.root == nil {
		return value, codeerrors.ErrNotFound.WithMessage("table is empty")
	}
	node, parent := t.lookup(key)
	if node == nil {
		return value, codeerrors.ErrNotFound.WithMessage("key %v not found", key)
	}

	switch {
	case node.Left == nil && node.Right == nil:
		t.replaceChild(parent, node, nil)
	case node.Left == nil:
		t.replaceChild(parent, node, node.Right)
	case node.Right == nil:
		t.replaceChild(parent, node, node.Left)
	default:
		succ, succParent := node.Right, node
		for succ.Left != nil {
			succParent = succ
			succ = succ.Left
		}
		if succParent != node {
			succParent.Left = succ.Right
			succ.Right = node.Right
		}
		succ.Left = node.Left
		t.replaceChild(parent, node, succ)
	}
	node.Left, node.Right = nil, nil
	t.count--
	return node.Value, nil
}

// Iterate returns one-shot iterator over values in the given order.
// Depth-first visits keys in ascending order, breadth-first visits them level by level.
func (t *Table[K, V]) Iterate(mode traverse.Mode) traverse.Iter[V] {
	switch mode {
	case traverse.DepthFirst:
		return newDfsIter(t.root)
	case traverse.BreadthFirst:
		return newBfsIter(t.root)
	default:
		panic("mode")
	}
}

// Items returns all values in ascending key order
func (t *Table[K, V]) Items() []V {
	items := make([]V, 0, t.count)
	t.ForEach(func(v V) bool {
		items = append(items, v)
		return true
	})
	return items
}

// ForEach calls func for each value in ascending key order
func (t *Table[K, V]) ForEach(fn traverse.ForEachFunc[V]) {
	t.Iterate(traverse.DepthFirst).ForEach(fn)
}

// String returns a string representation of container
func (t *Table[K, V]) String() string {
	str := "Table\n"
	if !t.Empty() {
		output(t.root, "", true, &str)
	}
	return str
}

func (node *Node[K, V]) String() string {
	return fmt.Sprintf("%v", node.Key)
}

func output[K any, V any](node *Node[K, V], prefix string, isTail bool, str *string) {
	if node.Right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}
		output(node.Right, newPrefix, false, str)
	}
	*str += prefix
	if isTail {
		*str += "└── "
	} else {
		*str += "┌── "
	}
	*str += node.String() + "\n"
	if node.Left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}
		output(node.Left, newPrefix, true, str)
	}
}

// lookup returns node with key and its parent (nil for root)
func (t *Table[K, V]) lookup(key K) (node, parent *Node[K, V]) {
	node = t.root
	for node != nil {
		compare := t.Comparator(key, node.Key)
		switch {
		case compare == 0:
			return node, parent
		case compare < 0:
			parent, node = node, node.Left
		default:
			parent, node = node, node.Right
		}
	}
	return nil, nil
}

func (t *Table[K, V]) replaceChild(parent, old, new *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = new
	case parent.Left == old:
		parent.Left = new
	default:
		parent.Right = new
	}
}
