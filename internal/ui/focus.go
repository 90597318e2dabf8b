package ui

import "slices"

// FocusManager tracks the focused row of the editor by ID.
// Row IDs are stable across edits ("title", "check.2.link"), so focus
// survives a re-render unless the focused row itself disappears.
type FocusManager struct {
	Current  string   // ID of the focused row
	Order    []string // top-to-bottom row order
	OnChange func(from, to string)
}

// Index returns the position of Current in Order, or -1.
func (f *FocusManager) Index() int {
	return slices.Index(f.Order, f.Current)
}

// Next moves focus one row down, wrapping to the top.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move((f.Index() + 1) % len(f.Order))
}

// Prev moves focus one row up, wrapping to the bottom.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.Index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(i)
}

// SetFocus focuses id. Returns false when id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	i := slices.Index(f.Order, id)
	if i < 0 {
		return false
	}
	f.move(i)
	return true
}

// SetOrder replaces the row order. If the focused row is gone, focus lands
// on the row now occupying its old position (or the last row).
func (f *FocusManager) SetOrder(order []string) {
	prev := f.Index()
	f.Order = order
	if len(order) == 0 {
		f.Current = ""
		return
	}
	if f.Index() >= 0 {
		return
	}
	f.move(min(max(prev, 0), len(order)-1))
}

func (f *FocusManager) move(i int) string {
	from := f.Current
	f.Current = f.Order[i]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}
