package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"paymaker/internal/customize"
)

// ConfirmModal asks before a destructive edit. Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{Title: title, Label: label, OnConfirm: onConfirm}
}

// WithDetails adds a warning line under the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewRemoveCheckModal confirms removing check index.
func NewRemoveCheckModal(index int, c customize.Check) *ConfirmModal {
	modal := NewConfirmModal(
		"Remove check?",
		fmt.Sprintf("Check %d: %s", index+1, orPlaceholder(c.Label, "(no label)")),
		func() tea.Msg { return RemoveCheckMsg{Index: index} },
	)
	if c.Link != "" {
		modal.WithDetails("Link " + c.Link + " will be dropped")
	}
	return modal
}

// NewRemovePictureSquareModal confirms removing picture square index.
func NewRemovePictureSquareModal(index int, sq customize.PictureSquare) *ConfirmModal {
	label := fmt.Sprintf("Picture square %d", index+1)
	if sq.ImageURL != "" {
		label += ": " + sq.ImageURL
	}
	return NewConfirmModal(
		"Remove picture square?",
		label,
		func() tea.Msg { return RemovePictureSquareMsg{Index: index} },
	)
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return Styles.BoxDanger.Render(content)
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
