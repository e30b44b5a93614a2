package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopOrder(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	require.Equal(t, 3, s.Len())
	for want := 3; want >= 1; want-- {
		v, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.True(t, s.IsEmpty())
}

func TestPopEmpty(t *testing.T) {
	s := New[string]()
	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestPeek(t *testing.T) {
	s := New[int]()
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(7)
	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, s.Len(), "Peek must not remove the element")
}

func TestFromSlice(t *testing.T) {
	src := []int{1, 2, 3}
	s := FromSlice(src)

	src[2] = 99
	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v, "the last slice element is on top and the slice is copied")
}

func TestClear(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	s.Clear()
	assert.True(t, s.IsEmpty())

	s.Push(4)
	v, _ := s.Peek()
	assert.Equal(t, 4, v)
}

func TestClone(t *testing.T) {
	s := FromSlice([]int{1, 2})
	c := s.Clone()
	c.Push(3)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, c.Len())
}

func TestToSlice(t *testing.T) {
	s := FromSlice([]string{"a", "b"})
	s.Push("c")
	assert.Equal(t, []string{"a", "b", "c"}, s.ToSlice())
}

func TestString(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	assert.Equal(t, "[1 2 3]", s.String())
	assert.Equal(t, "[]", New[int]().String())
}

func TestWithCapacityNegative(t *testing.T) {
	s := WithCapacity[int](-5)
	assert.True(t, s.IsEmpty())
	s.Push(1)
	assert.Equal(t, 1, s.Len())
}
