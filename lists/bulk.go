package lists

// ContainsAll reports whether every element of other is contained in the list.
// An empty other only matches an empty list.
func (al *ArrayList[T]) ContainsAll(other Collection[T]) (bool, error) {
	if other == nil {
		return false, nullArgument("collection")
	}
	if other.Size() == 0 && !al.IsEmpty() {
		return false, nil
	}
	for v := range other.Values() {
		if !al.Contains(v) {
			return false, nil
		}
	}
	return true, nil
}

// AddAll appends every element of other in its iteration order.
// Returns false if other is empty.
func (al *ArrayList[T]) AddAll(other Collection[T]) (bool, error) {
	if other == nil {
		return false, nullArgument("collection")
	}
	// snapshot first, other may be the list itself
	values := collect(other)
	if len(values) == 0 {
		return false, nil
	}
	al.Add(values...)
	return true, nil
}

// AddAllAt inserts every element of other at index, keeping its iteration order.
// Unlike Insert, index must refer to an existing element: 0 <= index < Size().
// Performs at most ONE allocation and ONE memory shift.
func (al *ArrayList[T]) AddAllAt(index int, other Collection[T]) (bool, error) {
	if other == nil {
		return false, nullArgument("collection")
	}
	if index < 0 || index >= al.length {
		return false, outOfRange(index, al.length)
	}
	values := collect(other)
	n := len(values)
	if n == 0 {
		return false, nil
	}
	al.EnsureCapacity(al.length + n)
	// [index...] -> [index+n...] (leave a gap in the middle)
	copy(al.buf[index+n:al.length+n], al.buf[index:al.length])
	copy(al.buf[index:], values)
	al.length += n
	al.modCount++
	return true, nil
}

// RemoveAll removes every element that other contains.
func (al *ArrayList[T]) RemoveAll(other Collection[T]) (bool, error) {
	if other == nil {
		return false, nullArgument("collection")
	}
	return al.RemoveIf(other.Contains) > 0, nil
}

// RetainAll removes every element that other does not contain.
func (al *ArrayList[T]) RetainAll(other Collection[T]) (bool, error) {
	if other == nil {
		return false, nullArgument("collection")
	}
	return al.RemoveIf(func(v T) bool { return !other.Contains(v) }) > 0, nil
}

// ToSlice returns a fresh slice holding the elements in order.
// It never shares storage with the list.
func (al *ArrayList[T]) ToSlice() []T {
	out := make([]T, al.length)
	copy(out, al.buf[:al.length])
	return out
}

// ToSliceInto copies the elements into sink when it is long enough and returns it.
// If sink is longer than the list, sink[Size()] is set to the zero value as a terminator.
// If sink is too short, a new slice of exactly Size() elements is returned instead.
func (al *ArrayList[T]) ToSliceInto(sink []T) []T {
	if len(sink) < al.length {
		return al.ToSlice()
	}
	copy(sink, al.buf[:al.length])
	if len(sink) > al.length {
		var zero T
		sink[al.length] = zero
	}
	return sink
}

func collect[T any](c Collection[T]) []T {
	values := make([]T, 0, c.Size())
	for v := range c.Values() {
		values = append(values, v)
	}
	return values
}
