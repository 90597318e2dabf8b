package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleAddCheck appends an empty check and focuses its label.
func (a *appModelAdapter) handleAddCheck() (tea.Model, tea.Cmd) {
	s := a.Store.AddCheck()
	i := len(s.Checks) - 1
	a.Editor.Focus(fmt.Sprintf("check.%d.label", i))
	a.Status = fmt.Sprintf("Added check %d", i+1)
	a.StatusIsError = false
	return a, nil
}

// handleShowRemoveCheck opens a confirm modal for the focused check.
func (a *appModelAdapter) handleShowRemoveCheck() (tea.Model, tea.Cmd) {
	i, ok := a.Editor.FocusedCheck()
	if !ok {
		a.Status = "Focus a check to remove it"
		a.StatusIsError = true
		return a, nil
	}
	c := a.Store.Snapshot().Checks[i]
	a.Overlays.Push(Overlay{View: NewRemoveCheckModal(i, c), Dismiss: "esc"})
	return a, nil
}

// handleRemoveCheck handles RemoveCheckMsg after confirmation.
func (a *appModelAdapter) handleRemoveCheck(msg RemoveCheckMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if msg.Index < 0 || msg.Index >= len(a.Store.Snapshot().Checks) {
		a.Status = fmt.Sprintf("Remove check: no check %d", msg.Index+1)
		a.StatusIsError = true
		return a, nil
	}
	a.Store.RemoveCheck(msg.Index)
	a.Status = fmt.Sprintf("Removed check %d", msg.Index+1)
	a.StatusIsError = false
	return a, nil
}

// handleAddPictureSquare appends an empty picture square and focuses its image URL.
func (a *appModelAdapter) handleAddPictureSquare() (tea.Model, tea.Cmd) {
	s := a.Store.AddPictureSquare()
	i := len(s.PictureSquares) - 1
	a.Editor.Focus(fmt.Sprintf("square.%d.imageUrl", i))
	a.Status = fmt.Sprintf("Added picture square %d", i+1)
	a.StatusIsError = false
	return a, nil
}

// handleShowRemovePictureSquare opens a confirm modal for the focused picture square.
func (a *appModelAdapter) handleShowRemovePictureSquare() (tea.Model, tea.Cmd) {
	i, ok := a.Editor.FocusedPictureSquare()
	if !ok {
		a.Status = "Focus a picture square to remove it"
		a.StatusIsError = true
		return a, nil
	}
	sq := a.Store.Snapshot().PictureSquares[i]
	a.Overlays.Push(Overlay{View: NewRemovePictureSquareModal(i, sq), Dismiss: "esc"})
	return a, nil
}

// handleRemovePictureSquare handles RemovePictureSquareMsg after confirmation.
func (a *appModelAdapter) handleRemovePictureSquare(msg RemovePictureSquareMsg) (tea.Model, tea.Cmd) {
	a.Overlays.Pop()
	if msg.Index < 0 || msg.Index >= len(a.Store.Snapshot().PictureSquares) {
		a.Status = fmt.Sprintf("Remove picture square: no square %d", msg.Index+1)
		a.StatusIsError = true
		return a, nil
	}
	a.Store.RemovePictureSquare(msg.Index)
	a.Status = fmt.Sprintf("Removed picture square %d", msg.Index+1)
	a.StatusIsError = false
	return a, nil
}

// handleKey routes a key press: open modal first, then insert mode, then
// the key handler, and finally the editor.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	mode := a.Mode()
	if mode == ModeInsert && msg.String() != "ctrl+c" {
		v, cmd := a.Editor.Update(msg)
		a.Editor = v.(*EditorView)
		return a, cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, mode); consumed {
		return a, cmd
	}
	v, cmd := a.Editor.Update(msg)
	a.Editor = v.(*EditorView)
	return a, cmd
}
