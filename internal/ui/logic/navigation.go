package logic

// Navigator keeps a cursor inside a flat list and the list scrolled so the
// cursor stays on screen. One line at the top and one at the bottom are given
// up to scroll indicators when there is more above or below.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// SetSelectedIndex moves the cursor, clamping to the list, and returns the
// resulting index and viewport offset
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the cursor by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageSize is the number of rows a page up/down moves, leaving some overlap
func (n *Navigator) PageSize() int {
	size := n.viewportHeight - 2
	if size < 1 {
		size = 1
	}
	return size
}

// MaxIndex returns the last selectable index, -1 for an empty list
func (n *Navigator) MaxIndex() int {
	return n.totalItems - 1
}

func (n *Navigator) clamp() {
	if n.selectedIndex > n.MaxIndex() {
		n.selectedIndex = n.MaxIndex()
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

func (n *Navigator) ensureSelectedVisible() {
	if n.totalItems <= n.viewportHeight {
		n.viewportOffset = 0
		return
	}

	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	effectiveHeight := n.EffectiveHeight()

	if n.selectedIndex >= n.viewportOffset+effectiveHeight {
		newOffset := n.selectedIndex - effectiveHeight + 1

		// Near the bottom the last rows are shown without a bottom indicator
		maxPossibleOffset := n.totalItems - effectiveHeight
		if maxPossibleOffset < 0 {
			maxPossibleOffset = 0
		}
		if newOffset > maxPossibleOffset {
			newOffset = maxPossibleOffset
		}
		if newOffset < 0 {
			newOffset = 0
		}
		n.viewportOffset = newOffset
	}

	// Indicators may have changed after scrolling
	if n.selectedIndex >= n.viewportOffset+n.EffectiveHeight() {
		n.viewportOffset = n.selectedIndex - n.EffectiveHeight() + 1
	}

	if last := n.totalItems - 1; n.viewportOffset > last {
		n.viewportOffset = last
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// NeedsTopIndicator reports whether rows are hidden above the viewport
func (n *Navigator) NeedsTopIndicator() bool {
	return n.viewportOffset > 0
}

// NeedsBottomIndicator reports whether rows are hidden below the viewport
func (n *Navigator) NeedsBottomIndicator() bool {
	height := n.viewportHeight
	if n.NeedsTopIndicator() {
		height--
	}
	return n.viewportOffset+height < n.totalItems
}

// EffectiveHeight is the number of rows left for items once indicators are drawn
func (n *Navigator) EffectiveHeight() int {
	height := n.viewportHeight
	if n.NeedsTopIndicator() {
		height--
	}
	if n.NeedsBottomIndicator() {
		height--
	}
	if height < 1 {
		height = 1
	}
	return height
}

// VisibleRange returns the half-open range of item indices on screen
func (n *Navigator) VisibleRange() (start, end int) {
	start = n.viewportOffset
	end = start + n.EffectiveHeight()
	if end > n.totalItems {
		end = n.totalItems
	}
	return start, end
}
