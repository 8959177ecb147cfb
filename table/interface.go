package table

import (
	"golang.org/x/exp/constraints"

	"github.com/neganovalexey/agenda/traverse"
)

// Comparator returns negative, zero or positive when a is less, equal or greater than b
type Comparator[K any] func(a, b K) int

// OrderedComparator compares keys of builtin ordered types
func OrderedComparator[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// OrderedTable is interface that described common keyed table interface
type OrderedTable[K any, V any] interface {
	Empty() bool
	Count() int
	Clear()

	Insert(key K, value V) error
	Find(key K) (V, error)
	Delete(key K) (V, error)

	Items() []V
	Iterate(mode traverse.Mode) traverse.Iter[V]
	ForEach(f traverse.ForEachFunc[V])
}
