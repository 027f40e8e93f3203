package list

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly linked list keeping a tail reference for O(1) appends.
// It is not safe for concurrent use.
//
// The zero value is an empty list comparing values with reflect.DeepEqual.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	equal func(a, b T) bool
}

// New returns an empty list comparing values with ==.
func New[T comparable]() *List[T] {
	return NewWithEqual(func(a, b T) bool { return a == b })
}

// NewWithEqual returns an empty list comparing values with equal.
func NewWithEqual[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// NewFromSlice returns a list holding values in order.
func NewFromSlice[T comparable](values []T) *List[T] {
	list := New[T]()
	for _, value := range values {
		list.Append(value)
	}
	return list
}

func (list *List[T]) insertFirstNode(n *node[T]) {
	list.head = n
	list.tail = n
	list.size = 1
}

// Append adds value after the current last element.
func (list *List[T]) Append(value T) {
	n := &node[T]{value: value}
	if list.IsEmpty() {
		list.insertFirstNode(n)
		return
	}
	list.tail.next = n
	list.tail = n
	list.size++
}

// Prepend adds value before the current first element.
func (list *List[T]) Prepend(value T) {
	n := &node[T]{value: value}
	if list.IsEmpty() {
		list.insertFirstNode(n)
		return
	}
	n.next = list.head
	list.head = n
	list.size++
}

// InsertAt places value at index, shifting the following elements back by one.
// Valid indices are 0 through Len() inclusive.
func (list *List[T]) InsertAt(value T, index int) error {
	if index < 0 || index > list.size {
		return &IndexError{Index: index, Size: list.size}
	}
	if index == 0 {
		list.Prepend(value)
		return nil
	}
	if index == list.size {
		list.Append(value)
		return nil
	}

	prev := list.nodeAt(index - 1)
	prev.next = &node[T]{value: value, next: prev.next}
	list.size++
	return nil
}

func (list *List[T]) removeOneNode() T {
	value := list.head.value
	list.head = nil
	list.tail = nil
	list.size = 0
	return value
}

// Pop removes and returns the last element.
func (list *List[T]) Pop() (T, error) {
	var zero T
	if list.IsEmpty() {
		return zero, ErrEmptyList
	}
	if list.size == 1 {
		return list.removeOneNode(), nil
	}

	prev := list.nodeAt(list.size - 2)
	value := list.tail.value
	prev.next = nil
	list.tail = prev
	list.size--
	return value, nil
}

// Shift removes and returns the first element.
func (list *List[T]) Shift() (T, error) {
	var zero T
	if list.IsEmpty() {
		return zero, ErrEmptyList
	}
	if list.size == 1 {
		return list.removeOneNode(), nil
	}

	removed := list.head
	list.head = removed.next
	removed.next = nil
	list.size--
	return removed.value, nil
}

// RemoveAt removes and returns the element at index.
func (list *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := list.checkIndex(index); err != nil {
		return zero, err
	}
	if index == 0 {
		return list.Shift()
	}
	if index == list.size-1 {
		return list.Pop()
	}

	prev := list.nodeAt(index - 1)
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	list.size--
	return removed.value, nil
}

// At returns the element at index.
func (list *List[T]) At(index int) (T, error) {
	var zero T
	if err := list.checkIndex(index); err != nil {
		return zero, err
	}
	return list.nodeAt(index).value, nil
}

func (list *List[T]) checkIndex(index int) error {
	if list.IsEmpty() {
		return ErrEmptyList
	}
	if index < 0 || index >= list.size {
		return &IndexError{Index: index, Size: list.size}
	}
	return nil
}

// nodeAt expects 0 <= index < size.
func (list *List[T]) nodeAt(index int) *node[T] {
	curr := list.head
	for i := 0; i < index; i++ {
		curr = curr.next
	}
	return curr
}

// Contains reports whether any element equals value.
func (list *List[T]) Contains(value T) bool {
	_, err := list.Find(value)
	return err == nil
}

// Find returns the index of the first element equal to value.
func (list *List[T]) Find(value T) (int, error) {
	equal := list.equal
	if equal == nil {
		equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return list.FindFunc(func(v T) bool { return equal(v, value) })
}

// FindFunc returns the index of the first element satisfying match.
func (list *List[T]) FindFunc(match func(T) bool) (int, error) {
	for i, curr := 0, list.head; curr != nil; i, curr = i+1, curr.next {
		if match(curr.value) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

func (list *List[T]) IsEmpty() bool {
	return list.size == 0
}

func (list *List[T]) Len() int {
	return list.size
}

// PeekFirst returns the first element without removing it.
func (list *List[T]) PeekFirst() (T, error) {
	var zero T
	if list.IsEmpty() {
		return zero, ErrEmptyList
	}
	return list.head.value, nil
}

// PeekLast returns the last element without removing it.
func (list *List[T]) PeekLast() (T, error) {
	var zero T
	if list.IsEmpty() {
		return zero, ErrEmptyList
	}
	return list.tail.value, nil
}

// Clear drops every element. Links are cut one by one so that no released
// node keeps a later one reachable.
func (list *List[T]) Clear() {
	for curr := list.head; curr != nil; {
		next := curr.next
		curr.next = nil
		curr = next
	}
	list.head = nil
	list.tail = nil
	list.size = 0
}

// Values returns a copy of the elements in order.
func (list *List[T]) Values() []T {
	values := make([]T, 0, list.size)
	for curr := list.head; curr != nil; curr = curr.next {
		values = append(values, curr.value)
	}
	return values
}

// All iterates over index/value pairs. The list must not be modified while
// iterating.
func (list *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, curr := 0, list.head; curr != nil; i, curr = i+1, curr.next {
			if !yield(i, curr.value) {
				return
			}
		}
	}
}

// String renders the list as "(v1) -> (v2) -> null".
func (list *List[T]) String() string {
	var builder strings.Builder
	for curr := list.head; curr != nil; curr = curr.next {
		fmt.Fprintf(&builder, "(%v) -> ", curr.value)
	}
	builder.WriteString("null")
	return builder.String()
}
