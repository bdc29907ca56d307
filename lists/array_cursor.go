package lists

import (
	"fmt"

	"github.com/pkg/errors"
)

/*
ArrayListCursor for bidirectional iteration with modification support.

The cursor sits between two elements. lastRet remembers the index handed out by the
last Next or Previous so that Remove and Set know which element to touch; it is reset
to -1 by Remove and Add.

Writes are fail-fast: if the list was structurally changed through any other path
since the cursor last synchronised with it, or the remembered index no longer fits the
list, the write returns ErrConcurrentModification and nothing is modified.
Reads do not check.
*/
type ArrayListCursor[T any] struct {
	list             *ArrayList[T]
	cursor           int
	lastRet          int
	expectedModCount int
}

// Iterator returns a cursor positioned before the first element.
func (al *ArrayList[T]) Iterator() ListIterator[T] {
	return al.newCursor(0)
}

// CursorAt returns a cursor whose first Next returns the element at index.
// index may equal Size(), leaving the cursor at the end.
func (al *ArrayList[T]) CursorAt(index int) (*ArrayListCursor[T], error) {
	if index < 0 || index > al.length {
		return nil, outOfRange(index, al.length)
	}
	return al.newCursor(index), nil
}

func (al *ArrayList[T]) newCursor(index int) *ArrayListCursor[T] {
	return &ArrayListCursor[T]{
		list:             al,
		cursor:           index,
		lastRet:          -1,
		expectedModCount: al.modCount,
	}
}

func (c *ArrayListCursor[T]) HasNext() bool {
	return c.cursor != c.list.length
}

func (c *ArrayListCursor[T]) Next() (T, error) {
	i := c.cursor
	v, err := c.list.Get(i)
	if err != nil {
		return v, errors.Wrapf(ErrNoSuchElement, "next at %d", i)
	}
	c.lastRet = i
	c.cursor = i + 1
	return v, nil
}

func (c *ArrayListCursor[T]) HasPrevious() bool {
	return c.cursor != 0
}

func (c *ArrayListCursor[T]) Previous() (T, error) {
	i := c.cursor - 1
	v, err := c.list.Get(i)
	if err != nil {
		return v, errors.Wrapf(ErrNoSuchElement, "previous at %d", i)
	}
	c.lastRet = i
	c.cursor = i
	return v, nil
}

func (c *ArrayListCursor[T]) NextIndex() int {
	return c.cursor
}

func (c *ArrayListCursor[T]) PreviousIndex() int {
	return c.cursor - 1
}

func (c *ArrayListCursor[T]) Remove() error {
	if c.lastRet < 0 {
		return errors.Wrap(ErrIllegalState, "remove without a preceding next or previous")
	}
	if err := c.checkModCount(); err != nil {
		return err
	}
	if _, err := c.list.Remove(c.lastRet); err != nil {
		return c.stale(err)
	}
	if c.lastRet < c.cursor {
		c.cursor--
	}
	c.lastRet = -1
	c.expectedModCount = c.list.modCount
	return nil
}

func (c *ArrayListCursor[T]) Set(value T) error {
	if c.lastRet < 0 {
		return errors.Wrap(ErrIllegalState, "set without a preceding next or previous")
	}
	if err := c.checkModCount(); err != nil {
		return err
	}
	if _, err := c.list.Set(c.lastRet, value); err != nil {
		return c.stale(err)
	}
	return nil
}

func (c *ArrayListCursor[T]) Add(value T) error {
	if err := c.checkModCount(); err != nil {
		return err
	}
	i := c.cursor
	if err := c.list.Insert(i, value); err != nil {
		return c.stale(err)
	}
	c.lastRet = -1
	c.cursor = i + 1
	c.expectedModCount = c.list.modCount
	return nil
}

func (c *ArrayListCursor[T]) checkModCount() error {
	if c.list.modCount != c.expectedModCount {
		return errors.Wrapf(ErrConcurrentModification, "list changed %d time(s) behind the cursor",
			c.list.modCount-c.expectedModCount)
	}
	return nil
}

// stale converts a bounds failure on the remembered index into ErrConcurrentModification.
func (c *ArrayListCursor[T]) stale(cause error) error {
	return errors.Wrapf(ErrConcurrentModification, "stale cursor (%v)", cause)
}

// String returns a string representation of the cursor
func (c *ArrayListCursor[T]) String() string {
	return fmt.Sprintf("Cursor[next=%d, last=%d]", c.cursor, c.lastRet)
}
