// Package customize holds the editable configuration of the payment widget.
//
// A State is a snapshot: every operation returns a new State and leaves its
// input untouched, so a renderer can keep a reference to the snapshot it last
// drew and compare it against the next one.
package customize

import "slices"

// Check is one line of the checks list shown on the card.
type Check struct {
	Label string `yaml:"label"`
	Link  string `yaml:"link"` // optional
}

// PictureSquare is one slot of the picture grid.
// An empty ImageURL renders a placeholder marker.
type PictureSquare struct {
	ImageURL string `yaml:"imageUrl"` // optional
	Link     string `yaml:"link"`     // optional
}

// State is the full widget configuration at one point in time.
type State struct {
	Title          string
	Recipient      string
	Checks         []Check
	ButtonText     string
	PictureSquares []PictureSquare
	DarkMode       bool
	ShowPoints     bool
}

// Default returns the snapshot the editor starts with.
func Default() State {
	return State{
		Title:     "OpenCommerce",
		Recipient: "OpenCommerce",
		Checks: []Check{
			{Label: "Compliance Check"},
			{Label: "Eligibility Check"},
			{Label: "Promotion Application"},
			{Label: "Payment Distribution"},
		},
		ButtonText: "Pay Now",
		PictureSquares: []PictureSquare{
			{Link: "https://example.com/1"},
			{Link: "https://example.com/2"},
		},
		DarkMode:   true,
		ShowPoints: true,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Checks = slices.Clone(s.Checks)
	s.PictureSquares = slices.Clone(s.PictureSquares)
	return s
}

// Equal reports whether two snapshots hold the same values.
// A nil list and an empty list are equal.
func (s State) Equal(o State) bool {
	return s.Title == o.Title &&
		s.Recipient == o.Recipient &&
		s.ButtonText == o.ButtonText &&
		s.DarkMode == o.DarkMode &&
		s.ShowPoints == o.ShowPoints &&
		slices.Equal(s.Checks, o.Checks) &&
		slices.Equal(s.PictureSquares, o.PictureSquares)
}
