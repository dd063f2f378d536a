package state

// NavigationState is the cursor over the current listing.
//
// Invariants after Clamp: 0 <= SelectedIndex < max(1, count),
// ScrollOffset <= SelectedIndex <= ScrollOffset+ViewportHeight-1, ScrollOffset >= 0.
type NavigationState struct {
	CurrentPath    string
	SelectedIndex  int
	ScrollOffset   int
	ViewportHeight int
}

func (n *NavigationState) rows() int {
	return max(1, n.ViewportHeight)
}

// MoveUp moves the selection one row up, scrolling when it leaves the viewport.
func (n *NavigationState) MoveUp() {
	if n.SelectedIndex <= 0 {
		return
	}
	n.SelectedIndex--
	if n.SelectedIndex < n.ScrollOffset {
		n.ScrollOffset = n.SelectedIndex
	}
}

// MoveDown moves the selection one row down within count entries.
func (n *NavigationState) MoveDown(count int) {
	if n.SelectedIndex >= count-1 {
		return
	}
	n.SelectedIndex++
	if n.SelectedIndex >= n.ScrollOffset+n.rows() {
		n.ScrollOffset++
	}
}

// JumpTop selects the first entry.
func (n *NavigationState) JumpTop() {
	n.SelectedIndex = 0
	n.ScrollOffset = 0
}

// JumpBottom selects the last of count entries and scrolls it into the
// bottom row of the viewport.
func (n *NavigationState) JumpBottom(count int) {
	n.SelectedIndex = max(0, count-1)
	n.ScrollOffset = max(0, n.SelectedIndex-n.rows()+1)
}

// Reset puts selection and scroll back on the first entry.
func (n *NavigationState) Reset() {
	n.JumpTop()
}

// Clamp restores the invariants for a listing of count entries.
func (n *NavigationState) Clamp(count int) {
	if n.SelectedIndex >= count {
		n.SelectedIndex = count - 1
	}
	if n.SelectedIndex < 0 {
		n.SelectedIndex = 0
	}

	h := n.rows()
	if n.SelectedIndex < n.ScrollOffset {
		n.ScrollOffset = n.SelectedIndex
	}
	if n.SelectedIndex >= n.ScrollOffset+h {
		n.ScrollOffset = n.SelectedIndex - h + 1
	}
	if n.ScrollOffset < 0 {
		n.ScrollOffset = 0
	}
}
