package lists

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayList is a growable list over a contiguous buffer.
// Live elements occupy buf[:length]; len(buf) is the capacity.
// Build it with NewArrayList or NewArrayListFunc, the zero value has no equality.
type ArrayList[T any] struct {
	buf    []T
	length int
	// deferred is set until a default-constructed list first allocates
	deferred bool
	equal    func(a, b T) bool
	// modCount counts structural changes, cursors use it to detect staleness
	modCount int
}

var (
	_ List[int]         = (*ArrayList[int])(nil)
	_ ListIterator[int] = (*ArrayListCursor[int])(nil)
)

// EnsureCapacity grows the buffer so it can hold at least minCapacity elements.
// Growth is 1.5x the current capacity or minCapacity, whichever is larger.
func (al *ArrayList[T]) EnsureCapacity(minCapacity int) {
	if minCapacity <= len(al.buf) {
		return
	}
	var newCapacity int
	if al.deferred && len(al.buf) == 0 {
		newCapacity = max(DefaultCapacity, minCapacity)
	} else {
		oldCapacity := len(al.buf)
		newCapacity = max(oldCapacity+oldCapacity/2, minCapacity)
	}
	newBuf := make([]T, newCapacity)
	copy(newBuf, al.buf[:al.length])
	// release old references
	clear(al.buf)
	al.buf = newBuf
	al.deferred = false
}

func (al *ArrayList[T]) Add(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	al.EnsureCapacity(al.length + n)
	copy(al.buf[al.length:], values)
	al.length += n
	al.modCount++
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > al.length {
		return outOfRange(index, al.length)
	}
	al.EnsureCapacity(al.length + 1)
	// copy treats overlapping regions correctly
	copy(al.buf[index+1:al.length+1], al.buf[index:al.length])
	al.buf[index] = value
	al.length++
	al.modCount++
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= al.length {
		var zero T
		return zero, outOfRange(index, al.length)
	}
	return al.buf[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) (T, error) {
	if index < 0 || index >= al.length {
		var zero T
		return zero, outOfRange(index, al.length)
	}
	old := al.buf[index]
	al.buf[index] = value
	return old, nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= al.length {
		var zero T
		return zero, outOfRange(index, al.length)
	}
	removed := al.buf[index]
	al.fastRemove(index)
	return removed, nil
}

// fastRemove skips bounds checking and does not return the removed value.
func (al *ArrayList[T]) fastRemove(index int) {
	copy(al.buf[index:], al.buf[index+1:al.length])
	al.length--
	// clear the vacated slot, let it be GCed
	var zero T
	al.buf[al.length] = zero
	al.modCount++
}

// RemoveValue removes the first element equal to value and reports whether one was found.
func (al *ArrayList[T]) RemoveValue(value T) bool {
	i := al.IndexOf(value)
	if i < 0 {
		return false
	}
	al.fastRemove(i)
	return true
}

// RemoveIf removes every element matching predicate and returns how many were removed.
func (al *ArrayList[T]) RemoveIf(predicate func(T) bool) int {
	// DeleteFunc zeroes the obsolete tail itself
	kept := slices.DeleteFunc(al.buf[:al.length], predicate)
	removed := al.length - len(kept)
	if removed > 0 {
		al.length = len(kept)
		al.modCount++
	}
	return removed
}

func (al *ArrayList[T]) Size() int {
	return al.length
}

// Cap returns the number of slots in the backing buffer.
func (al *ArrayList[T]) Cap() int {
	return len(al.buf)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return al.length == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the live slots to let elements be GCed
	clear(al.buf[:al.length])
	al.length = 0
	al.modCount++
}

func (al *ArrayList[T]) IndexOf(value T) int {
	data := al.buf[:al.length]
	for i, v := range data {
		if al.equal(v, value) {
			return i
		}
	}
	return -1
}

func (al *ArrayList[T]) LastIndexOf(value T) int {
	for i := al.length - 1; i >= 0; i-- {
		if al.equal(al.buf[i], value) {
			return i
		}
	}
	return -1
}

func (al *ArrayList[T]) Contains(value T) bool {
	return al.IndexOf(value) >= 0
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.buf[:al.length], predicate)
}

// Clone returns a shallow copy of the list with the same equality.
// The copy has no slack: its capacity equals the current size.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	newBuf := make([]T, al.length)
	copy(newBuf, al.buf[:al.length])
	return &ArrayList[T]{
		buf:    newBuf,
		length: al.length,
		equal:  al.equal,
	}
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.buf[:al.length])
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.buf[:al.length])
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.buf[:al.length])
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.buf[:al.length])
}
