package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	assert.NotNil(t, reg.Lookup("q", ModeNavigate))
	assert.NotNil(t, reg.Lookup("space q", ModeNavigate), "space normalizes to SPC")
	assert.Nil(t, reg.Lookup("unknown", ModeNavigate))
	assert.Nil(t, reg.Lookup("j", ModeNavigate))
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("p", tea.Quit, "Pay", []AppMode{ModeNavigate})
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")

	assert.NotNil(t, reg.Lookup("p", ModeNavigate))
	assert.Nil(t, reg.Lookup("p", ModeInsert))
	assert.NotNil(t, reg.Lookup("ctrl+c", ModeInsert))
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " ".
	consumed, cmd := h.Handle(keyMsg(" "), ModeNavigate)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)
	assert.Equal(t, "SPC", h.CurrentSeq())

	consumed, cmd = h.Handle(keyMsg("x"), ModeNavigate)
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting)
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_NestedSequence(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	h.Handle(keyMsg(" "), ModeNavigate)
	consumed, cmd := h.Handle(keyMsg("c"), ModeNavigate)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.Equal(t, "SPC c", h.CurrentSeq())

	consumed, cmd = h.Handle(keyMsg("a"), ModeNavigate)
	assert.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, AddCheckMsg{}, cmd())
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	h.Handle(keyMsg(" "), ModeNavigate)
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"), ModeNavigate)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	consumed, _ = h.Handle(keyMsg("esc"), ModeNavigate)
	assert.False(t, consumed, "esc without a leader passes through")
}

func TestKeyHandler_DeadEndIsSwallowed(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	h.Handle(keyMsg(" "), ModeNavigate)
	consumed, cmd := h.Handle(keyMsg("z"), ModeNavigate)
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SingleKey(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	consumed, cmd := h.Handle(keyMsg("p"), ModeNavigate)
	assert.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, PayMsg{}, cmd())

	consumed, _ = h.Handle(keyMsg("j"), ModeNavigate)
	assert.False(t, consumed, "j belongs to the editor")
}

func TestKeyHandler_InsertModeIgnoresLeader(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())

	consumed, _ := h.Handle(keyMsg(" "), ModeInsert)
	assert.False(t, consumed)
	assert.False(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("ctrl+c"), ModeInsert)
	assert.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, QuitMsg{}, cmd())
}

func TestLeaderHints(t *testing.T) {
	reg := DefaultKeybinds()

	top := reg.LeaderHints("", ModeNavigate)
	assert.Equal(t, map[string]string{
		"c": "Checks",
		"i": "Pictures",
		"t": "Toggle",
		"p": "Pay",
		"q": "Quit",
	}, top)

	checks := reg.LeaderHints("SPC c", ModeNavigate)
	assert.Equal(t, map[string]string{"a": "Add check", "d": "Remove check"}, checks)

	assert.Empty(t, reg.LeaderHints("", ModeInsert))
}

func TestRenderKeybindHelp(t *testing.T) {
	h := NewKeyHandler(DefaultKeybinds())
	assert.Empty(t, RenderKeybindHelp(h, ModeNavigate))

	h.Handle(keyMsg(" "), ModeNavigate)
	out := RenderKeybindHelp(h, ModeNavigate)
	assert.Contains(t, out, "Checks")
	assert.Contains(t, out, "Toggle")

	h.Handle(keyMsg("t"), ModeNavigate)
	out = RenderKeybindHelp(h, ModeNavigate)
	assert.Contains(t, out, "Dark mode")
	assert.NotContains(t, out, "Checks")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}
