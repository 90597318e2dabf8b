package ui

// AppMode is the input mode of the editor window.
type AppMode int

const (
	// ModeNavigate moves focus between rows and accepts keybinds.
	ModeNavigate AppMode = iota
	// ModeInsert routes keystrokes into the focused text field.
	ModeInsert
	// ModeConfirm is active while a confirmation modal is open.
	ModeConfirm
)

func (m AppMode) String() string {
	switch m {
	case ModeNavigate:
		return "NAV"
	case ModeInsert:
		return "INSERT"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "Unknown"
	}
}
