// Package queue provides a first-in, first-out queue.
//
// The queue is two stacks: Enqueue pushes onto back, and Dequeue pops from
// front, refilling front from back (which reverses it into FIFO order) only
// once front runs out. Each element moves at most once, so every operation is
// amortized O(1).
package queue

type Queue[T any] struct {
	back  []T
	front []T
}

func New[T any]() *Queue[T] {
	return &Queue[T]{
		back:  []T{},
		front: []T{},
	}
}

func (q *Queue[T]) Enqueue(x T) {
	q.back = append(q.back, x)
}

// move all of back onto front, reversing the order
func (q *Queue[T]) emptyBack() {
	for i := len(q.back) - 1; i >= 0; i-- {
		q.front = append(q.front, q.back[i])
	}
	clear(q.back)
	q.back = q.back[:0]
}

// Dequeue removes and returns the oldest element. The boolean is false if the
// queue was empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if len(q.front) == 0 {
		q.emptyBack()
	}
	if len(q.front) == 0 {
		var zero T
		return zero, false
	}
	last := len(q.front) - 1
	x := q.front[last]
	var zero T
	q.front[last] = zero
	q.front = q.front[:last]
	return x, true
}

// PeekFront returns the oldest element without removing it.
func (q *Queue[T]) PeekFront() (T, bool) {
	if len(q.front) > 0 {
		return q.front[len(q.front)-1], true
	}
	if len(q.back) > 0 {
		return q.back[0], true
	}
	var zero T
	return zero, false
}

func (q *Queue[T]) Len() uint64 {
	return uint64(len(q.back) + len(q.front))
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.back) == 0 && len(q.front) == 0
}

func (q *Queue[T]) Clear() {
	clear(q.back)
	clear(q.front)
	q.back = q.back[:0]
	q.front = q.front[:0]
}
