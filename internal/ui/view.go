package ui

import tea "github.com/charmbracelet/bubbletea"

// View is one pane of the editor window with its own Elm-style loop.
// Update returns the View so panes can swap themselves out.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
