// Package queue provides the FIFO that drives breadth-first traversal.
//
// Queue is a thin typed wrapper around gods' array-backed queue. It holds
// values without taking ownership of what they point at and applies no
// duplicate suppression: pushing the same value twice yields it twice.
//
// Complexity: Push, Pop, Peek amortized O(1).
package queue

import (
	"errors"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// ErrEmptyQueue is returned by Pop and Peek on an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")

// Queue is a FIFO of T. The zero value is not usable; call New.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	q *arrayqueue.Queue
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{q: arrayqueue.New()}
}

// Push appends v at the tail.
func (q *Queue[T]) Push(v T) {
	q.q.Enqueue(v)
}

// Pop removes and returns the head, or ErrEmptyQueue.
func (q *Queue[T]) Pop() (T, error) {
	v, ok := q.q.Dequeue()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}
	return v.(T), nil
}

// Peek returns the head without removing it, or ErrEmptyQueue.
func (q *Queue[T]) Peek() (T, error) {
	v, ok := q.q.Peek()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}
	return v.(T), nil
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.q.Empty()
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return q.q.Size()
}

// Clear drops every queued value.
func (q *Queue[T]) Clear() {
	q.q.Clear()
}
