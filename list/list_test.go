package list

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type listTestSuite struct {
	suite.Suite
	list *List[int]
}

func TestListTestSuite(t *testing.T) {
	suite.Run(t, new(listTestSuite))
}

func (listSuite *listTestSuite) SetupTest() {
	listSuite.list = New[int]()
}

// verifyLinks walks the chain and checks the size/head/tail invariants.
func (listSuite *listTestSuite) verifyLinks() {
	list := listSuite.list
	if list.size == 0 {
		listSuite.Nil(list.head, "head must be empty")
		listSuite.Nil(list.tail, "tail must be empty")
		return
	}
	listSuite.Require().NotNil(list.head)
	listSuite.Require().NotNil(list.tail)
	curr := list.head
	for i := 1; i < list.size; i++ {
		listSuite.Require().NotNil(curr.next, "chain ends early at %v", i)
		curr = curr.next
	}
	listSuite.Nil(curr.next, "chain is longer than size")
	listSuite.Same(list.tail, curr, "tail is not the last node")
}

func (listSuite *listTestSuite) fill(values ...int) {
	for _, value := range values {
		listSuite.list.Append(value)
	}
}

func (listSuite *listTestSuite) TestEmptyList() {
	list := listSuite.list
	listSuite.True(list.IsEmpty())
	listSuite.Equal(0, list.Len())
	listSuite.Equal("null", list.String())

	_, err := list.Pop()
	listSuite.ErrorIs(err, ErrEmptyList)
	_, err = list.Shift()
	listSuite.ErrorIs(err, ErrEmptyList)
	_, err = list.PeekFirst()
	listSuite.ErrorIs(err, ErrEmptyList)
	_, err = list.PeekLast()
	listSuite.ErrorIs(err, ErrEmptyList)
	_, err = list.At(0)
	listSuite.ErrorIs(err, ErrEmptyList)
	_, err = list.RemoveAt(0)
	listSuite.ErrorIs(err, ErrEmptyList)
	listSuite.False(list.Contains(1))
	_, err = list.Find(1)
	listSuite.ErrorIs(err, ErrNotFound)

	listSuite.Equal("null", list.String())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestAppend() {
	list := listSuite.list
	listSuite.fill(40, 15, 6)

	listSuite.Equal("(40) -> (15) -> (6) -> null", list.String())
	first, err := list.PeekFirst()
	listSuite.Require().NoError(err)
	listSuite.Equal(40, first)
	last, err := list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(6, last)
	listSuite.Equal(3, list.Len())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestPrepend() {
	list := listSuite.list
	listSuite.fill(40, 15, 6)
	list.Prepend(4)

	first, err := list.PeekFirst()
	listSuite.Require().NoError(err)
	listSuite.Equal(4, first)
	listSuite.Equal("(4) -> (40) -> (15) -> (6) -> null", list.String())

	list.Prepend(18)
	list.Prepend(74)
	listSuite.Equal("(74) -> (18) -> (4) -> (40) -> (15) -> (6) -> null", list.String())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestPrependOnEmpty() {
	listSuite.list.Prepend(7)
	last, err := listSuite.list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(7, last)
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestPopSingle() {
	list := listSuite.list
	list.Append(12000)
	value, err := list.Pop()
	listSuite.Require().NoError(err)
	listSuite.Equal(12000, value)
	listSuite.True(list.IsEmpty())
	listSuite.Equal("null", list.String())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestShiftSingle() {
	list := listSuite.list
	list.Append(12000)
	value, err := list.Shift()
	listSuite.Require().NoError(err)
	listSuite.Equal(12000, value)
	listSuite.True(list.IsEmpty())
	_, err = list.PeekFirst()
	listSuite.ErrorIs(err, ErrEmptyList)
	_, err = list.PeekLast()
	listSuite.ErrorIs(err, ErrEmptyList)
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestPopThenAppend() {
	list := listSuite.list
	listSuite.fill(1, 2, 3)

	value, err := list.Pop()
	listSuite.Require().NoError(err)
	listSuite.Equal(3, value)
	last, err := list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(2, last)

	list.Append(9)
	last, err = list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(9, last)
	listSuite.Equal("(1) -> (2) -> (9) -> null", list.String())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestShift() {
	list := listSuite.list
	listSuite.fill(1, 2, 3)

	value, err := list.Shift()
	listSuite.Require().NoError(err)
	listSuite.Equal(1, value)
	first, err := list.PeekFirst()
	listSuite.Require().NoError(err)
	listSuite.Equal(2, first)
	listSuite.Equal(2, list.Len())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestAt() {
	list := listSuite.list
	values := []int{74, 18, 4, 40, 15, 6}
	listSuite.fill(values...)

	for i, expected := range values {
		value, err := list.At(i)
		listSuite.Require().NoError(err, "index %v", i)
		listSuite.Equal(expected, value, "index %v", i)
	}

	for _, index := range []int{-1, -9, len(values), 36} {
		_, err := list.At(index)
		listSuite.ErrorIs(err, ErrInvalidIndex, "index %v", index)
		var indexErr *IndexError
		listSuite.Require().True(errors.As(err, &indexErr))
		listSuite.Equal(index, indexErr.Index)
		listSuite.Equal(len(values), indexErr.Size)
	}
}

func (listSuite *listTestSuite) TestInsertAtMiddle() {
	list := listSuite.list
	listSuite.fill(4, 40, 15, 6)

	listSuite.Require().NoError(list.InsertAt(99, 2))
	listSuite.Equal(5, list.Len())
	listSuite.Equal([]int{4, 40, 99, 15, 6}, list.Values())
	value, err := list.At(2)
	listSuite.Require().NoError(err)
	listSuite.Equal(99, value)
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestInsertAtEnds() {
	list := listSuite.list
	listSuite.Require().NoError(list.InsertAt(5, 0))
	listSuite.Require().NoError(list.InsertAt(1, 0))
	listSuite.Require().NoError(list.InsertAt(9, list.Len()))
	listSuite.Equal("(1) -> (5) -> (9) -> null", list.String())
	last, err := list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(9, last)
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestInsertAtInvalid() {
	list := listSuite.list
	err := list.InsertAt(1, 1)
	listSuite.ErrorIs(err, ErrInvalidIndex)
	listSuite.True(list.IsEmpty())

	listSuite.fill(1, 2)
	for _, index := range []int{-1, 3, 100} {
		err = list.InsertAt(7, index)
		listSuite.ErrorIs(err, ErrInvalidIndex, "index %v", index)
	}
	listSuite.Equal("(1) -> (2) -> null", list.String())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestInsertAtSequence() {
	list := listSuite.list
	listSuite.fill(4, 40)

	listSuite.Require().NoError(list.InsertAt(12, 0))
	listSuite.Require().NoError(list.InsertAt(10, 1))
	listSuite.Require().NoError(list.InsertAt(132, 1))
	listSuite.Require().NoError(list.InsertAt(32, 3))
	listSuite.Equal("(12) -> (132) -> (10) -> (32) -> (4) -> (40) -> null", list.String())
	listSuite.Require().NoError(list.InsertAt(562, 6))
	listSuite.Equal(7, list.Len())
	last, err := list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(562, last)
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestRemoveAt() {
	list := listSuite.list
	listSuite.fill(1, 2, 3, 4, 5)

	value, err := list.RemoveAt(2)
	listSuite.Require().NoError(err)
	listSuite.Equal(3, value)
	listSuite.Equal([]int{1, 2, 4, 5}, list.Values())

	value, err = list.RemoveAt(list.Len() - 1)
	listSuite.Require().NoError(err)
	listSuite.Equal(5, value)
	last, err := list.PeekLast()
	listSuite.Require().NoError(err)
	listSuite.Equal(4, last)

	value, err = list.RemoveAt(0)
	listSuite.Require().NoError(err)
	listSuite.Equal(1, value)

	_, err = list.RemoveAt(2)
	listSuite.ErrorIs(err, ErrInvalidIndex)
	listSuite.Equal([]int{2, 4}, list.Values())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestContainsAndFind() {
	list := listSuite.list
	listSuite.fill(4, 40, 15, 40)

	listSuite.True(list.Contains(40))
	listSuite.False(list.Contains(74))

	index, err := list.Find(40)
	listSuite.Require().NoError(err)
	listSuite.Equal(1, index)

	index, err = list.Find(74)
	listSuite.ErrorIs(err, ErrNotFound)
	listSuite.Equal(-1, index)
}

func (listSuite *listTestSuite) TestClear() {
	list := listSuite.list
	listSuite.fill(1, 2, 3)
	list.Clear()
	listSuite.True(list.IsEmpty())
	listSuite.Equal("null", list.String())
	listSuite.verifyLinks()

	list.Append(8)
	listSuite.Equal("(8) -> null", list.String())
	listSuite.verifyLinks()
}

func (listSuite *listTestSuite) TestAll() {
	listSuite.fill(3, 2, 1)
	indices := []int{}
	values := []int{}
	for i, value := range listSuite.list.All() {
		indices = append(indices, i)
		values = append(values, value)
		if i == 1 {
			break
		}
	}
	listSuite.Equal([]int{0, 1}, indices)
	listSuite.Equal([]int{3, 2}, values)
}

func TestInsertAtMatchesPrependAndAppend(t *testing.T) {
	states := [][]int{{}, {1}, {1, 2}, {5, 6, 7, 8}}
	for _, state := range states {
		viaInsert := NewFromSlice(state)
		viaPrepend := NewFromSlice(state)
		require.NoError(t, viaInsert.InsertAt(42, 0))
		viaPrepend.Prepend(42)
		assert.Equal(t, viaPrepend.Values(), viaInsert.Values(), "state %v", state)

		viaInsert = NewFromSlice(state)
		viaAppend := NewFromSlice(state)
		require.NoError(t, viaInsert.InsertAt(42, viaInsert.Len()))
		viaAppend.Append(42)
		assert.Equal(t, viaAppend.Values(), viaInsert.Values(), "state %v", state)
	}
}

func TestFindAgreesWithAt(t *testing.T) {
	list := NewFromSlice([]string{"a", "b", "c", "b"})
	for _, value := range []string{"a", "b", "c", "z"} {
		index, err := list.Find(value)
		if !list.Contains(value) {
			assert.ErrorIs(t, err, ErrNotFound, "value %v", value)
			continue
		}
		require.NoError(t, err)
		found, err := list.At(index)
		require.NoError(t, err)
		assert.Equal(t, value, found)
	}
}

func TestSizeTracksOperations(t *testing.T) {
	tests := []struct {
		name     string
		ops      func(*List[int])
		wantSize int
		wantText string
	}{
		{"appends", func(l *List[int]) { l.Append(1); l.Append(2) }, 2, "(1) -> (2) -> null"},
		{"prepends", func(l *List[int]) { l.Prepend(1); l.Prepend(2) }, 2, "(2) -> (1) -> null"},
		{"mixed", func(l *List[int]) { l.Append(1); l.Prepend(0); l.Append(2) }, 3, "(0) -> (1) -> (2) -> null"},
		{"pop on empty", func(l *List[int]) { _, _ = l.Pop() }, 0, "null"},
		{"shift all", func(l *List[int]) { l.Append(1); l.Append(2); _, _ = l.Shift(); _, _ = l.Shift() }, 0, "null"},
		{"pop then prepend", func(l *List[int]) { l.Append(1); l.Append(2); _, _ = l.Pop(); l.Prepend(3) }, 2, "(3) -> (1) -> null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := New[int]()
			tt.ops(list)
			assert.Equal(t, tt.wantSize, list.Len())
			assert.Equal(t, tt.wantText, list.String())
		})
	}
}

type point struct {
	X, Y int
	Tags []string
}

func TestValueEquality(t *testing.T) {
	var zero List[point]
	zero.Append(point{X: 1, Y: 2, Tags: []string{"a"}})
	zero.Append(point{X: 3, Y: 4})
	assert.True(t, zero.Contains(point{X: 1, Y: 2, Tags: []string{"a"}}))
	index, err := zero.Find(point{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	byX := NewWithEqual(func(a, b point) bool { return a.X == b.X })
	byX.Append(point{X: 5})
	assert.True(t, byX.Contains(point{X: 5, Y: 100}))
	assert.False(t, byX.Contains(point{X: 6}))
}
