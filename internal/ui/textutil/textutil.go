// Package textutil measures and fits text by terminal columns rather than bytes.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// Fit truncates or right-pads s to exactly width columns.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", max(0, width-Width(s)))
}

// Spread places left and right on one line of width columns, separated by
// spaces. The left side is truncated when both do not fit.
func Spread(left, right string, width int) string {
	gap := width - Width(left) - Width(right)
	if gap < 1 {
		left = Truncate(left, max(0, width-Width(right)-1))
		gap = max(1, width-Width(left)-Width(right))
	}
	return left + strings.Repeat(" ", gap) + right
}
