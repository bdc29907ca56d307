package lists

// QuickSort sorts s in place with a Hoare partition around the middle element.
// compare returns a negative number when a precedes b, zero when they rank equal
// and a positive number when a follows b. The sort is not stable.
func QuickSort[T any](s []T, compare func(a, b T) int) {
	quickSort(s, 0, len(s)-1, compare)
}

// quickSort sorts s[low:high+1].
// It recurses into the smaller partition and loops on the larger one,
// which bounds the stack depth to O(log n).
func quickSort[T any](s []T, low, high int, compare func(a, b T) int) {
	for low < high {
		// the pivot value is fixed, swaps may move it
		pivot := s[low+(high-low)/2]
		i, j := low, high
		for i <= j {
			for compare(s[i], pivot) < 0 {
				i++
			}
			for compare(s[j], pivot) > 0 {
				j--
			}
			if i <= j {
				s[i], s[j] = s[j], s[i]
				i++
				j--
			}
		}

		if j-low < high-i {
			if low < j {
				quickSort(s, low, j, compare)
			}
			low = i
		} else {
			if i < high {
				quickSort(s, i, high, compare)
			}
			high = j
		}
	}
}

// Sort orders the list in place. It is not a structural change: open cursors stay valid.
func (al *ArrayList[T]) Sort(compare func(a, b T) int) error {
	if compare == nil {
		return nullArgument("compare")
	}
	QuickSort(al.buf[:al.length], compare)
	return nil
}
