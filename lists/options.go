package lists

import "github.com/pkg/errors"

// DefaultCapacity is the capacity allocated on first growth of a list built without WithCapacity.
const DefaultCapacity = 10

type ArrayListOption[T any] func(*ArrayListConfig[T])

type ArrayListConfig[T any] struct {
	capacity    int
	hasCapacity bool
	elements    Collection[T]
	hasElements bool
}

// WithCapacity preallocates exactly capacity slots.
// A negative capacity makes the constructor fail with ErrInvalidArgument.
func WithCapacity[T any](capacity int) ArrayListOption[T] {
	return func(cfg *ArrayListConfig[T]) {
		cfg.capacity = capacity
		cfg.hasCapacity = true
	}
}

// WithElements seeds the list with a copy of src in iteration order.
// The resulting capacity equals src.Size(); it takes precedence over WithCapacity.
func WithElements[T any](src Collection[T]) ArrayListOption[T] {
	return func(cfg *ArrayListConfig[T]) {
		cfg.elements = src
		cfg.hasElements = true
	}
}

// NewArrayList creates an empty list whose elements are compared with ==.
// Without options no storage is allocated until the first element is added.
func NewArrayList[T comparable](opts ...ArrayListOption[T]) (*ArrayList[T], error) {
	return newArrayList(func(a, b T) bool { return a == b }, opts)
}

// NewArrayListFunc is like NewArrayList for element types that need a custom equality.
func NewArrayListFunc[T any](equal func(a, b T) bool, opts ...ArrayListOption[T]) (*ArrayList[T], error) {
	if equal == nil {
		return nil, nullArgument("equal")
	}
	return newArrayList(equal, opts)
}

func newArrayList[T any](equal func(a, b T) bool, opts []ArrayListOption[T]) (*ArrayList[T], error) {
	cfg := &ArrayListConfig[T]{}
	for _, opt := range opts {
		opt(cfg)
	}

	al := &ArrayList[T]{equal: equal}
	switch {
	case cfg.hasElements:
		if cfg.elements == nil {
			return nil, nullArgument("elements")
		}
		// no slack: capacity is exactly the source size
		al.buf = make([]T, 0, cfg.elements.Size())
		for v := range cfg.elements.Values() {
			al.buf = append(al.buf, v)
		}
		al.length = len(al.buf)
		al.buf = al.buf[:cap(al.buf)]
	case cfg.hasCapacity:
		if cfg.capacity < 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "illegal capacity: %d", cfg.capacity)
		}
		al.buf = make([]T, cfg.capacity)
	default:
		al.deferred = true
	}
	return al, nil
}
