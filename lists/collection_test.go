package lists_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynarray/lists"
)

func TestFromSlice(t *testing.T) {
	c := lists.FromSlice([]string{"a", "b", "c"})
	assert.Equal(t, 3, c.Size())
	assert.True(t, c.Contains("b"))
	assert.False(t, c.Contains("z"))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(c.Values()))

	empty := lists.FromSlice[string](nil)
	assert.Equal(t, 0, empty.Size())
	assert.False(t, empty.Contains(""))
}

func TestFromSliceFunc(t *testing.T) {
	c := lists.FromSliceFunc([]string{"Alpha", "Beta"}, strings.EqualFold)
	assert.True(t, c.Contains("alpha"))
	assert.False(t, c.Contains("gamma"))

	assert.Panics(t, func() { lists.FromSliceFunc[string](nil, nil) })
}

func TestFromQueue(t *testing.T) {
	q := queue.New()
	q.Add(3)
	q.Add(1)
	q.Add("not an int")
	q.Add(2)

	c := lists.FromQueue[int](q)
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []int{3, 1, 2}, slices.Collect(c.Values()))
	assert.True(t, c.Contains(1))
	assert.False(t, c.Contains(4))
	assert.Equal(t, 4, q.Length(), "the queue is not drained")

	assert.Equal(t, 0, lists.FromQueue[int](nil).Size())
}

// TestBulk_ForeignCollections feeds bulk operations from containers that are not ArrayLists
func TestBulk_ForeignCollections(t *testing.T) {
	q := queue.New()
	for _, v := range []int{4, 5, 6} {
		q.Add(v)
	}
	src := lists.FromQueue[int](q)

	l, err := lists.NewArrayList(lists.WithElements(src))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, l.ToSlice())
	assert.Equal(t, 3, l.Cap())

	_, err = l.AddAllAt(0, lists.FromSlice([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, l.ToSlice())

	ok, err := l.ContainsAll(src)
	require.NoError(t, err)
	assert.True(t, ok)

	changed, err := l.RetainAll(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{4, 5, 6}, l.ToSlice())

	// another ArrayList is a Collection as well
	other, _ := lists.NewArrayList[int]()
	other.Add(5)
	changed, err = l.RemoveAll(other)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{4, 6}, l.ToSlice())
}
