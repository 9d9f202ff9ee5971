// Package stack provides a last-in, first-out stack backed by a slice.
package stack

type Stack[T any] struct {
	elements []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{
		elements: []T{},
	}
}

func (s *Stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	last := len(s.elements) - 1
	x := s.elements[last]
	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return x, true
}

// Peek is like Pop but leaves the element on the stack.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[T]) Len() uint64 {
	return uint64(len(s.elements))
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}
