// Package dlist implements a generic doubly linked list with a movable cursor.
// It backs the lifo and fifo adapters.
package dlist

import (
	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/traverse"
)

type element[T any] struct {
	next, prev *element[T]
	value      T
}

// List is double-linked list.
// The cursor ("current") is either unset or points to an element of the list.
type List[T any] struct {
	head, tail *element[T]
	current    *element[T]
	count      int
}

// nolint: unused, deadcode
func assertInterfaces() {
	var _ traverse.Iter[int] = (*Iter[int])(nil)
}

// New creates empty list
func New[T any]() *List[T] {
	return &List[T]{}
}

// Clear drops all elements and unsets the cursor
func (l *List[T]) Clear() {
	l.head, l.tail, l.current = nil, nil, nil
	l.count = 0
}

// Empty checks list empty
func (l *List[T]) Empty() bool {
	return l.count == 0
}

// Len returns number of elements
func (l *List[T]) Len() int {
	return l.count
}

// InsertFront adds value to list head
func (l *List[T]) InsertFront(v T) {
	el := &element[T]{value: v}
	if l.head == nil {
		l.head, l.tail = el, el
	} else {
		el.next = l.head
		l.head.prev = el
		l.head = el
	}
	l.count++
}

// InsertBack adds value to list tail
func (l *List[T]) InsertBack(v T) {
	el := &element[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = el, el
	} else {
		el.prev = l.tail
		l.tail.next = el
		l.tail = el
	}
	l.count++
}

// InsertAfterCurrent adds value right after the cursor
func (l *List[T]) InsertAfterCurrent(v T) error {
	if err := l.checkCurrent(); err != nil {
		return err
	}
	cur := l.current
	el := &element[T]{value: v, prev: cur, next: cur.next}
	if cur.next != nil {
		cur.next.prev = el
	} else {
		l.tail = el
	}
	cur.next = el
	l.count++
	return nil
}

// InsertBeforeCurrent adds value right before the cursor
func (l *List[T]) InsertBeforeCurrent(v T) error {
	if err := l.checkCurrent(); err != nil {
		return err
	}
	cur := l.current
	el := &element[T]{value: v, prev: cur.prev, next: cur}
	if cur.prev != nil {
		cur.prev.next = el
	} else {
		l.head = el
	}
	cur.prev = el
	l.count++
	return nil
}

// Current returns value at cursor
func (l *List[T]) Current() (v T, err error) {
	if err = l.checkCurrent(); err != nil {
		return
	}
	return l.current.value, nil
}

// First moves cursor to list head and returns its value
func (l *List[T]) First() (v T, err error) {
	if l.head == nil {
		return v, errEmpty()
	}
	l.current = l.head
	return l.current.value, nil
}

// Last moves cursor to list tail and returns its value
func (l *List[T]) Last() (v T, err error) {
	if l.tail == nil {
		return v, errEmpty()
	}
	l.current = l.tail
	return l.current.value, nil
}

// Next moves cursor one step towards tail, there is no wraparound
func (l *List[T]) Next() (v T, err error) {
	if err = l.checkCurrent(); err != nil {
		return
	}
	if l.current.next == nil {
		return v, codeerrors.ErrInvalidState.WithMessage("current element is the last one")
	}
	l.current = l.current.next
	return l.current.value, nil
}

// Prev moves cursor one step towards head, there is no wraparound
func (l *List[T]) Prev() (v T, err error) {
	if err = l.checkCurrent(); err != nil {
		return
	}
	if l.current.prev == nil {
		return v, codeerrors.ErrInvalidState.WithMessage("current element is the first one")
	}
	l.current = l.current.prev
	return l.current.value, nil
}

// RemoveCurrent removes element at cursor, cursor moves to list head
func (l *List[T]) RemoveCurrent() (v T, err error) {
	if err = l.checkCurrent(); err != nil {
		return
	}
	return l.remove(l.current), nil
}

// RemoveFirst removes list head
func (l *List[T]) RemoveFirst() (v T, err error) {
	if l.head == nil {
		return v, errEmpty()
	}
	return l.remove(l.head), nil
}

// RemoveLast removes list tail
func (l *List[T]) RemoveLast() (v T, err error) {
	if l.tail == nil {
		return v, errEmpty()
	}
	return l.remove(l.tail), nil
}

// RemoveAfterCurrent removes the successor of the cursor, cursor stays in place
func (l *List[T]) RemoveAfterCurrent() (v T, err error) {
	if err = l.checkCurrent(); err != nil {
		return
	}
	if l.current.next == nil {
		return v, codeerrors.ErrInvalidState.WithMessage("current element has no successor")
	}
	return l.remove(l.current.next), nil
}

// RemoveBeforeCurrent removes the predecessor of the cursor, cursor stays in place
func (l *List[T]) RemoveBeforeCurrent() (v T, err error) {
	if err = l.checkCurrent(); err != nil {
		return
	}
	if l.current.prev == nil {
		return v, codeerrors.ErrInvalidState.WithMessage("current element has no predecessor")
	}
	return l.remove(l.current.prev), nil
}

// Iterate returns forward iterator from head to tail.
// Mutating the list while iterating is not supported.
func (l *List[T]) Iterate() *Iter[T] {
	return &Iter[T]{el: l.head}
}

// ForEach is safe vs. removal of the visited element in callback
func (l *List[T]) ForEach(f traverse.ForEachFunc[T]) {
	var next *element[T]
	for el := l.head; el != nil; el = next {
		next = el.next
		if !f(el.value) {
			break
		}
	}
}

// Items returns list items
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.count)
	for el := l.head; el != nil; el = el.next {
		items = append(items, el.value)
	}
	return items
}

func (l *List[T]) remove(el *element[T]) T {
	if el.prev != nil {
		el.prev.next = el.next
	} else {
		l.head = el.next
	}
	if el.next != nil {
		el.next.prev = el.prev
	} else {
		l.tail = el.prev
	}
	el.prev, el.next = nil, nil
	l.count--

	if l.current == el {
		l.current = l.head
	}
	return el.value
}

func (l *List[T]) checkCurrent() error {
	if l.count == 0 {
		return errEmpty()
	}
	if l.current == nil {
		return codeerrors.ErrInvalidState.WithMessage("no current element")
	}
	return nil
}

func errEmpty() error {
	return codeerrors.ErrInvalidState.WithMessage("list is empty")
}
