package dlist

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/traverse"
)

// Iter is forward iterator over list
type Iter[T any] struct {
	el *element[T]
}

// HasNext checks has next element
func (i *Iter[T]) HasNext() bool {
	return i.el != nil
}

// Next returns current item and steps forward
func (i *Iter[T]) Next() (item T, err error) {
	if i.el == nil {
		return item, codeerrors.ErrInvalidState.WithMessage("iteration is finished")
	}
	item = i.el.value
	i.el = i.el.next
	return item, nil
}

// ForEach applies for each next item
func (i *Iter[T]) ForEach(f traverse.ForEachFunc[T]) {
	for i.el != nil {
		item := i.el.value
		i.el = i.el.next
		if !f(item) {
			break
		}
	}
}
