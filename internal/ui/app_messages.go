package ui

import "time"

// PayMsg presses the card's pay button (p or SPC p).
type PayMsg struct{}

// AddCheckMsg appends an empty check and focuses it (SPC c a).
type AddCheckMsg struct{}

// ShowRemoveCheckMsg asks to remove the focused check (SPC c d).
type ShowRemoveCheckMsg struct{}

// RemoveCheckMsg removes the check at Index once confirmed.
type RemoveCheckMsg struct {
	Index int
}

// AddPictureSquareMsg appends an empty picture square and focuses it (SPC i a).
type AddPictureSquareMsg struct{}

// ShowRemovePictureSquareMsg asks to remove the focused picture square (SPC i d).
type ShowRemovePictureSquareMsg struct{}

// RemovePictureSquareMsg removes the picture square at Index once confirmed.
type RemovePictureSquareMsg struct {
	Index int
}

// ToggleDarkModeMsg flips the card palette (SPC t d).
type ToggleDarkModeMsg struct{}

// TogglePointsMsg shows or hides the points badge (SPC t p).
type TogglePointsMsg struct{}

// DismissModalMsg closes the top modal (Esc).
type DismissModalMsg struct{}

// QuitMsg tears the window down and exits.
type QuitMsg struct{}

// FrameMsg is one display frame for the counter animation.
type FrameMsg struct {
	Time time.Time
}
