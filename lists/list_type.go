package lists

import "iter"

// Collection is the minimal capability set a bulk operation needs from its argument:
// a count, an in-order traversal and membership by value equality.
// Any container can satisfy it, so bulk operations never depend on one concrete type.
type Collection[T any] interface {
	// Size returns the number of elements
	Size() int

	// Values yields the elements in iteration order
	Values() iter.Seq[T]

	// Contains reports whether an element equal to value is present
	Contains(value T) bool
}

// List Defines a generic index-addressable list.
// T can be any type; equality is fixed when the list is constructed.
type List[T any] interface {
	Collection[T]

	// -------------------------------------------------------
	// Basic Operations
	// -------------------------------------------------------

	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns an error if index < 0 or index > Size()
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index
	// Returns an error if index is out of bounds
	Remove(index int) (T, error)

	// RemoveValue removes the first element equal to value
	RemoveValue(value T) bool

	// Set replaces the element at the specified index and returns the previous one
	// Returns an error if index is out of bounds
	Set(index int, value T) (T, error)

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear removes all elements, the capacity is kept
	Clear()

	// IndexOf finds the first occurrence index of an element, returns -1 if not found
	IndexOf(value T) int

	// -------------------------------------------------------
	// Bulk Operations
	// -------------------------------------------------------

	ContainsAll(other Collection[T]) (bool, error)
	AddAll(other Collection[T]) (bool, error)
	AddAllAt(index int, other Collection[T]) (bool, error)
	RemoveAll(other Collection[T]) (bool, error)
	RetainAll(other Collection[T]) (bool, error)

	// -------------------------------------------------------
	// Transformation & Iteration
	// -------------------------------------------------------

	// Sort orders the list in place with a three-way comparator
	Sort(compare func(a, b T) int) error

	// ToSlice copies the list into a fresh native slice
	ToSlice() []T

	// Iterator returns a cursor positioned before the first element
	Iterator() ListIterator[T]
}

// ListIterator is a bidirectional cursor that can also modify the list it walks.
// The cursor sits between elements: Next returns the element after it, Previous the one before it.
type ListIterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	HasPrevious() bool
	Previous() (T, error)

	// NextIndex is the index Next would return
	NextIndex() int
	// PreviousIndex is the index Previous would return, -1 at the front
	PreviousIndex() int

	// Remove deletes the element last returned by Next or Previous
	Remove() error
	// Set replaces the element last returned by Next or Previous
	Set(value T) error
	// Add inserts value before the cursor; a following Next is unaffected
	Add(value T) error
}
