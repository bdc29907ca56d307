package lists

import (
	"iter"
	"slices"

	"github.com/eapache/queue"
)

// sliceCollection is a read-only Collection view over a caller-owned slice.
type sliceCollection[T any] struct {
	data  []T
	equal func(a, b T) bool
}

// FromSlice wraps s as a Collection compared with ==. s is not copied.
func FromSlice[T comparable](s []T) Collection[T] {
	return &sliceCollection[T]{data: s, equal: func(a, b T) bool { return a == b }}
}

// FromSliceFunc wraps s as a Collection using equal for membership.
// It panics if equal is nil.
func FromSliceFunc[T any](s []T, equal func(a, b T) bool) Collection[T] {
	if equal == nil {
		panic("lists.FromSliceFunc: equal function cannot be nil")
	}
	return &sliceCollection[T]{data: s, equal: equal}
}

func (sc *sliceCollection[T]) Size() int {
	return len(sc.data)
}

func (sc *sliceCollection[T]) Values() iter.Seq[T] {
	return slices.Values(sc.data)
}

func (sc *sliceCollection[T]) Contains(value T) bool {
	if len(sc.data) == 0 {
		return false
	}
	_ = sc.data[len(sc.data)-1] // BCE hint
	for _, v := range sc.data {
		if sc.equal(v, value) {
			return true
		}
	}
	return false
}

// queueCollection exposes an eapache ring-buffer queue as a Collection in FIFO order.
// Elements that are not of type T are skipped.
type queueCollection[T comparable] struct {
	q *queue.Queue
}

// FromQueue wraps q as a Collection without draining it.
// A nil q behaves as an empty collection.
func FromQueue[T comparable](q *queue.Queue) Collection[T] {
	return &queueCollection[T]{q: q}
}

func (qc *queueCollection[T]) Size() int {
	if qc.q == nil {
		return 0
	}
	n := 0
	for range qc.Values() {
		n++
	}
	return n
}

func (qc *queueCollection[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if qc.q == nil {
			return
		}
		for i := 0; i < qc.q.Length(); i++ {
			v, ok := qc.q.Get(i).(T)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (qc *queueCollection[T]) Contains(value T) bool {
	for v := range qc.Values() {
		if v == value {
			return true
		}
	}
	return false
}
