// Package linkedlist provides a singly-linked list that is only modified at
// its front.
package linkedlist

type node[T any] struct {
	elem T
	next *node[T]
}

type SinglyLinkedList[T any] struct {
	// nil when the list is empty
	head    *node[T]
	counter uint64
}

func New[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

func (l *SinglyLinkedList[T]) PushFront(elem T) {
	l.head = &node[T]{elem: elem, next: l.head}
	l.counter++
}

// PopFront removes and returns the first element. The boolean is false if the
// list was empty.
func (l *SinglyLinkedList[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	l.counter--
	return n.elem, true
}

func (l *SinglyLinkedList[T]) PeekFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.elem, true
}

func (l *SinglyLinkedList[T]) Len() uint64 {
	return l.counter
}

func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.counter == 0
}

// Clear drops every node; they are reclaimed once unreachable.
func (l *SinglyLinkedList[T]) Clear() {
	l.head = nil
	l.counter = 0
}
