package forward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmpty(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Begin() == l.End())
}

func TestZeroValueIsEmptyList(t *testing.T) {
	var l List[string]
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())

	require.NoError(t, l.PushFront("a"))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.IsEmpty())
}

func TestPushFrontOrder(t *testing.T) {
	l := New[int]()
	require.NoError(t, l.PushFront(1))
	require.NoError(t, l.PushFront(2))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []int{2, 1}, l.ToSlice())
}

func TestNewPreservesLiteralOrder(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	assert.Equal(t, 5, l.Len())
	assert.False(t, l.IsEmpty())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
}

func TestFrom(t *testing.T) {
	values := []string{"x", "y", "z"}
	l := From(values)
	assert.Equal(t, values, l.ToSlice())

	// The list owns its own storage.
	values[0] = "mutated"
	assert.Equal(t, "x", l.ToSlice()[0])
}

func TestFront(t *testing.T) {
	l := New[int]()
	_, ok := l.Front()
	assert.False(t, ok)

	require.NoError(t, l.PushFront(7))
	v, ok := l.Front()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestClear(t *testing.T) {
	l := New(1, 2, 3)
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.True(t, l.Begin() == l.End())

	// The list stays usable after Clear.
	require.NoError(t, l.PushFront(42))
	assert.Equal(t, []int{42}, l.ToSlice())
}

func TestClearEmpty(t *testing.T) {
	l := New[int]()
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestAll(t *testing.T) {
	l := New(10, 20, 30)

	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 20, 30}, got)

	// Early break must not run the remainder.
	count := 0
	for range l.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestCloneIndependence(t *testing.T) {
	src := New(1, 2, 3, 4)

	cp, err := src.Clone()
	require.NoError(t, err)

	assert.Equal(t, src.ToSlice(), cp.ToSlice())
	assert.False(t, src.Begin() == cp.Begin())

	// Mutating the copy leaves the source alone.
	*cp.Begin().Ptr() = 99
	assert.Equal(t, 1, src.Begin().Value())
	assert.Equal(t, 99, cp.Begin().Value())
}

func TestCloneEmpty(t *testing.T) {
	src := New[int]()
	cp, err := src.Clone()
	require.NoError(t, err)
	assert.True(t, cp.IsEmpty())
}

func TestAssign(t *testing.T) {
	src := New(1, 2, 3, 4)
	dst := New(5, 4, 3, 2, 1)

	require.NoError(t, dst.Assign(src))
	assert.Equal(t, src.ToSlice(), dst.ToSlice())
	assert.False(t, dst.Begin() == src.Begin())
}

func TestAssignNil(t *testing.T) {
	l := New(1, 2)
	err := l.Assign(nil)
	assert.Equal(t, ErrNilSource, err)
	assert.Equal(t, []int{1, 2}, l.ToSlice())
}

func TestAssignSelf(t *testing.T) {
	l := New(1, 2, 3)
	require.NoError(t, l.Assign(l))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestSwap(t *testing.T) {
	first := New[int]()
	require.NoError(t, first.PushFront(1))
	require.NoError(t, first.PushFront(2))

	second := New[int]()
	require.NoError(t, second.PushFront(10))
	require.NoError(t, second.PushFront(11))
	require.NoError(t, second.PushFront(15))

	oldFirstBegin := first.Begin()
	oldSecondBegin := second.Begin()
	oldFirstSize := first.Len()
	oldSecondSize := second.Len()

	first.Swap(second)

	// Node identity travels with the chain, not with the list header.
	assert.True(t, second.Begin() == oldFirstBegin)
	assert.True(t, first.Begin() == oldSecondBegin)
	assert.Equal(t, oldFirstSize, second.Len())
	assert.Equal(t, oldSecondSize, first.Len())

	// The free function must swap in place as well, not via copies.
	Swap(first, second)
	assert.True(t, first.Begin() == oldFirstBegin)
	assert.True(t, second.Begin() == oldSecondBegin)
	assert.Equal(t, oldFirstSize, first.Len())
	assert.Equal(t, oldSecondSize, second.Len())
}

func TestToSliceEmpty(t *testing.T) {
	l := New[int]()
	assert.Len(t, l.ToSlice(), 0)
}
