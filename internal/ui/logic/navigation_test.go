package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorFitsWithoutScrolling(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 3)

	idx, off := n.SetSelectedIndex(2)
	assert.Equal(t, 2, idx)
	assert.Zero(t, off)
	assert.False(t, n.NeedsTopIndicator())
	assert.False(t, n.NeedsBottomIndicator())

	start, end := n.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestNavigatorClampsCursor(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 3)

	idx, _ := n.SetSelectedIndex(10)
	assert.Equal(t, 2, idx)

	idx, _ = n.SetSelectedIndex(-4)
	assert.Zero(t, idx)

	n.UpdateState(0, 0, 5, 0)
	idx, off := n.SetSelectedIndex(1)
	assert.Zero(t, idx)
	assert.Zero(t, off)
}

func TestNavigatorScrollsToLastItem(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 10)

	idx, off := n.SetSelectedIndex(9)
	assert.Equal(t, 9, idx)
	assert.Equal(t, 6, off)
	assert.True(t, n.NeedsTopIndicator())
	assert.False(t, n.NeedsBottomIndicator())

	start, end := n.VisibleRange()
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)
}

func TestNavigatorKeepsCursorVisibleInMiddle(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 10)

	idx, off := n.SetSelectedIndex(5)
	assert.Equal(t, 5, idx)

	start, end := n.VisibleRange()
	assert.Equal(t, off, start)
	assert.True(t, idx >= start && idx < end, "cursor %d outside [%d,%d)", idx, start, end)

	// Back to the top drops the top indicator again
	_, off = n.SetSelectedIndex(0)
	assert.Zero(t, off)
	assert.False(t, n.NeedsTopIndicator())
}

func TestNavigatorMoveAndPageSize(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(3, 0, 6, 10)

	idx, _ := n.Move(-1)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 4, n.PageSize())

	n.UpdateState(0, 0, 2, 10)
	assert.Equal(t, 1, n.PageSize())
}
