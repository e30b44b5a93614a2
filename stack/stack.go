// Package stack provides a generic growable LIFO container.
//
// A Stack is not safe for concurrent use; callers sharing one across
// goroutines must provide their own synchronization.
package stack

import (
	"fmt"
	"strings"
)

const defaultCapacity = 4

// Stack is a last-in-first-out container backed by a slice. The zero value is
// ready to use; New and WithCapacity avoid early growth reallocations.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with a small preallocated capacity.
func New[T any]() *Stack[T] {
	return WithCapacity[T](defaultCapacity)
}

// WithCapacity returns an empty stack preallocated for n elements.
func WithCapacity[T any](n int) *Stack[T] {
	if n < 0 {
		n = 0
	}
	return &Stack[T]{items: make([]T, 0, n)}
}

// FromSlice returns a stack holding the elements of s, the last element of s
// on top. The slice is copied; later mutations of s do not affect the stack.
func FromSlice[T any](s []T) *Stack[T] {
	st := WithCapacity[T](len(s))
	st.items = append(st.items, s...)
	return st
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. The second return value is false
// when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the top element without removing it. The second return value
// is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear removes all elements, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	return FromSlice(s.items)
}

// ToSlice returns the elements bottom-first, the top element last.
func (s *Stack[T]) ToSlice() []T {
	return append([]T(nil), s.items...)
}

// String renders the stack bottom-first for debugging.
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
