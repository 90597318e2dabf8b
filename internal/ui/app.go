package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"paymaker/internal/counter"
	"paymaker/internal/customize"
)

// AppModel is the root of the editor window: editor pane on the left,
// preview pane on the right, modals on top.
type AppModel struct {
	Store    *customize.Store
	Animator *counter.Animator
	Frames   *FrameScheduler

	Editor     *EditorView
	Preview    *PreviewView
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	Status        string
	StatusIsError bool

	unsubscribe func()
	disposed    bool
}

// Options configures NewAppModel. Zero values pick defaults.
type Options struct {
	Initial  customize.State
	FPS      int
	Loader   ImageLoader
	Observer counter.Observer
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel wires a store, animator and both panes together.
func NewAppModel(opts Options) *AppModel {
	store := customize.NewStore(opts.Initial)
	animator := counter.NewAnimator()
	animator.Observer = opts.Observer

	a := &AppModel{
		Store:      store,
		Animator:   animator,
		Frames:     NewFrameScheduler(opts.FPS),
		Editor:     NewEditorView(store),
		Preview:    NewPreviewView(store.Snapshot(), animator.Displayed(), opts.Loader),
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
	}
	a.unsubscribe = store.Subscribe(a.Preview.SetSnapshot)
	return a
}

// DefaultKeybinds returns the editor's key bindings.
func DefaultKeybinds() *KeybindRegistry {
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }
	nav := []AppMode{ModeNavigate}

	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", msg(QuitMsg{}), "Quit", nav)
	reg.BindWithDesc("ctrl+c", msg(QuitMsg{}), "Quit")
	reg.BindWithDescForMode("p", msg(PayMsg{}), "Pay", nav)
	reg.BindWithDescForMode("SPC q", msg(QuitMsg{}), "Quit", nav)
	reg.BindWithDescForMode("SPC p", msg(PayMsg{}), "Pay", nav)
	reg.BindWithDescForMode("SPC c a", msg(AddCheckMsg{}), "Add check", nav)
	reg.BindWithDescForMode("SPC c d", msg(ShowRemoveCheckMsg{}), "Remove check", nav)
	reg.BindWithDescForMode("SPC i a", msg(AddPictureSquareMsg{}), "Add picture square", nav)
	reg.BindWithDescForMode("SPC i d", msg(ShowRemovePictureSquareMsg{}), "Remove picture square", nav)
	reg.BindWithDescForMode("SPC t d", msg(ToggleDarkModeMsg{}), "Dark mode", nav)
	reg.BindWithDescForMode("SPC t p", msg(TogglePointsMsg{}), "Show points", nav)
	return reg
}

// Mode returns the current input mode.
func (m *AppModel) Mode() AppMode {
	switch {
	case m.Overlays.Len() > 0:
		return ModeConfirm
	case m.Editor.Editing():
		return ModeInsert
	default:
		return ModeNavigate
	}
}

// Dispose cancels any counter run and detaches from the store.
// Safe to call more than once; only the first call has an effect.
func (m *AppModel) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.Animator.Cancel()
	m.Editor.Close()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	logrus.WithField("points", m.Animator.Committed()).Info("ui: disposed")
}

// Disposed reports whether Dispose has run.
func (m *AppModel) Disposed() bool { return m.disposed }

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Editor.Init(), a.Preview.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return a.handleFrame(msg)
	case QuitMsg:
		a.Dispose()
		return a, tea.Quit
	case PayMsg:
		return a.handlePay()
	case AddCheckMsg:
		return a.handleAddCheck()
	case ShowRemoveCheckMsg:
		return a.handleShowRemoveCheck()
	case RemoveCheckMsg:
		return a.handleRemoveCheck(msg)
	case AddPictureSquareMsg:
		return a.handleAddPictureSquare()
	case ShowRemovePictureSquareMsg:
		return a.handleShowRemovePictureSquare()
	case RemovePictureSquareMsg:
		return a.handleRemovePictureSquare(msg)
	case ToggleDarkModeMsg:
		a.Store.Toggle(customize.ToggleDarkMode)
		return a, nil
	case TogglePointsMsg:
		a.Store.Toggle(customize.ToggleShowPoints)
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	v, cmd := a.Editor.Update(msg)
	a.Editor = v.(*EditorView)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}

	left := Styles.PaneActive.Width(EditorWidth).Render(a.Editor.View())
	right := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Preview"),
		a.Preview.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	footer := Styles.Mode.Render(a.Mode().String()) + " " + Styles.Hint.Render(footerHint(a.Mode()))
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.StatusError
		}
		footer += "  " + style.Render(a.Status)
	}
	out := body + "\n" + footer
	if help := RenderKeybindHelp(a.KeyHandler, a.Mode()); help != "" {
		out += "\n" + help
	}
	return out
}

func footerHint(mode AppMode) string {
	switch mode {
	case ModeInsert:
		return "type to edit · enter/esc: done · tab: next field"
	default:
		return "j/k: move · enter: edit/toggle · p: pay · SPC: commands · q: quit"
	}
}
