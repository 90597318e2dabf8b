package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"paymaker/internal/customize"
	"paymaker/internal/ui/textutil"
)

// EditorWidth is the inner width of the editor pane in columns.
const EditorWidth = 56

type rowKind int

const (
	rowToggle rowKind = iota
	rowText
)

// row is one focusable line of the editor.
type row struct {
	ID          string
	Section     string
	Label       string
	Placeholder string
	Kind        rowKind
	Value       string // text rows
	On          bool   // toggle rows
	CheckIndex  int    // -1 unless the row edits a check
	SquareIndex int    // -1 unless the row edits a picture square

	toggle customize.Toggle
	set    func(st *customize.Store, value string)
}

// buildRows lists the editor rows for s in display order.
func buildRows(s customize.State) []row {
	rows := []row{
		toggleRow("darkMode", "Dark Mode", s.DarkMode, customize.ToggleDarkMode),
		toggleRow("showPoints", "Show Points", s.ShowPoints, customize.ToggleShowPoints),
		fieldRow("title", "Title", "Enter title", s.Title, customize.FieldTitle),
		fieldRow("recipient", "Recipient", "Enter recipient", s.Recipient, customize.FieldRecipient),
	}
	for i, c := range s.Checks {
		rows = append(rows,
			checkRow(i, customize.CheckLabel, "Label", "Check Label", c.Label),
			checkRow(i, customize.CheckLink, "Link", "Check Link (optional)", c.Link),
		)
	}
	rows = append(rows, fieldRow("buttonText", "Button Text", "Enter button text", s.ButtonText, customize.FieldButtonText))
	for i, sq := range s.PictureSquares {
		rows = append(rows,
			squareRow(i, customize.SquareImageURL, "Image", "Image URL", sq.ImageURL),
			squareRow(i, customize.SquareLink, "Link", "Link URL", sq.Link),
		)
	}
	return rows
}

func toggleRow(id, label string, on bool, t customize.Toggle) row {
	return row{ID: id, Section: "Display", Label: label, Kind: rowToggle, On: on, toggle: t, CheckIndex: -1, SquareIndex: -1}
}

func fieldRow(id, label, placeholder, value string, f customize.Field) row {
	section := "Card"
	if f == customize.FieldButtonText {
		section = "Button"
	}
	return row{
		ID: id, Section: section, Label: label, Placeholder: placeholder, Kind: rowText, Value: value,
		CheckIndex: -1, SquareIndex: -1,
		set: func(st *customize.Store, v string) { st.SetField(f, v) },
	}
}

func checkRow(i int, f customize.CheckField, label, placeholder, value string) row {
	return row{
		ID: fmt.Sprintf("check.%d.%s", i, f), Section: "Checks",
		Label: fmt.Sprintf("#%d %s", i+1, label), Placeholder: placeholder, Kind: rowText, Value: value,
		CheckIndex: i, SquareIndex: -1,
		set: func(st *customize.Store, v string) { st.SetCheckField(i, f, v) },
	}
}

func squareRow(i int, f customize.SquareField, label, placeholder, value string) row {
	return row{
		ID: fmt.Sprintf("square.%d.%s", i, f), Section: "Picture Squares",
		Label: fmt.Sprintf("#%d %s", i+1, label), Placeholder: placeholder, Kind: rowText, Value: value,
		CheckIndex: -1, SquareIndex: i,
		set: func(st *customize.Store, v string) { st.SetPictureSquareField(i, f, v) },
	}
}

// EditorView is the form pane. In navigate mode it moves focus between rows;
// in insert mode keystrokes go to a textinput whose value is written to the
// store on every change so the preview follows along.
type EditorView struct {
	store   *customize.Store
	rows    []row
	focus   FocusManager
	input   textinput.Model
	editing bool

	unsubscribe func()
}

// Ensure EditorView implements View.
var _ View = (*EditorView)(nil)

// NewEditorView creates an editor over store, focused on the first row.
// The editor follows the store until Close is called.
func NewEditorView(store *customize.Store) *EditorView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = EditorWidth - 16
	e := &EditorView{store: store, input: ti}
	e.Sync(store.Snapshot())
	if len(e.focus.Order) > 0 {
		e.focus.Current = e.focus.Order[0]
	}
	e.unsubscribe = store.Subscribe(e.Sync)
	return e
}

// Close stops following the store.
func (e *EditorView) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// Sync rebuilds the rows from s, keeping focus on the same row ID when it
// still exists.
func (e *EditorView) Sync(s customize.State) {
	e.rows = buildRows(s)
	ids := make([]string, len(e.rows))
	for i, r := range e.rows {
		ids[i] = r.ID
	}
	e.focus.SetOrder(ids)
}

// Editing reports whether a text row is being edited.
func (e *EditorView) Editing() bool { return e.editing }

// FocusedID returns the ID of the focused row.
func (e *EditorView) FocusedID() string { return e.focus.Current }

// Focus moves focus to id. Returns false if no such row exists.
func (e *EditorView) Focus(id string) bool { return e.focus.SetFocus(id) }

// FocusedCheck returns the index of the check whose row is focused.
func (e *EditorView) FocusedCheck() (int, bool) {
	r, ok := e.focused()
	if !ok || r.CheckIndex < 0 {
		return 0, false
	}
	return r.CheckIndex, true
}

// FocusedPictureSquare returns the index of the picture square whose row is focused.
func (e *EditorView) FocusedPictureSquare() (int, bool) {
	r, ok := e.focused()
	if !ok || r.SquareIndex < 0 {
		return 0, false
	}
	return r.SquareIndex, true
}

func (e *EditorView) focused() (row, bool) {
	i := e.focus.Index()
	if i < 0 {
		return row{}, false
	}
	return e.rows[i], true
}

// Init implements View.
func (e *EditorView) Init() tea.Cmd { return nil }

// Update implements View.
func (e *EditorView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if e.editing {
			var cmd tea.Cmd
			e.input, cmd = e.input.Update(msg)
			return e, cmd
		}
		return e, nil
	}
	if e.editing {
		return e, e.updateInsert(km)
	}
	return e, e.updateNavigate(km)
}

func (e *EditorView) updateNavigate(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down", "tab":
		e.focus.Next()
	case "k", "up", "shift+tab":
		e.focus.Prev()
	case "g", "home":
		if len(e.focus.Order) > 0 {
			e.focus.SetFocus(e.focus.Order[0])
		}
	case "G", "end":
		if n := len(e.focus.Order); n > 0 {
			e.focus.SetFocus(e.focus.Order[n-1])
		}
	case "enter", "i":
		r, ok := e.focused()
		if !ok {
			return nil
		}
		if r.Kind == rowToggle {
			e.store.Toggle(r.toggle)
			return nil
		}
		e.editing = true
		e.input.Placeholder = r.Placeholder
		e.input.SetValue(r.Value)
		e.input.CursorEnd()
		return e.input.Focus()
	}
	return nil
}

func (e *EditorView) updateInsert(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		e.editing = false
		e.input.Blur()
		return nil
	case "tab", "down":
		e.editing = false
		e.input.Blur()
		e.focus.Next()
		return nil
	case "shift+tab", "up":
		e.editing = false
		e.input.Blur()
		e.focus.Prev()
		return nil
	}
	var cmd tea.Cmd
	before := e.input.Value()
	e.input, cmd = e.input.Update(msg)
	if after := e.input.Value(); after != before {
		if r, ok := e.focused(); ok && r.set != nil {
			r.set(e.store, after)
		}
	}
	return cmd
}

// View implements View.
func (e *EditorView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Customize Your Payment Interface"))
	b.WriteString("\n")
	section := ""
	for _, r := range e.rows {
		if r.Section != section {
			section = r.Section
			b.WriteString("\n" + Styles.Section.Render(section) + "\n")
		}
		b.WriteString(e.renderRow(r) + "\n")
	}
	s := e.store.Snapshot()
	b.WriteString("\n" + Styles.Hint.Render(fmt.Sprintf("%d checks · %d picture squares", len(s.Checks), len(s.PictureSquares))))
	return b.String()
}

func (e *EditorView) renderRow(r row) string {
	focused := r.ID == e.focus.Current
	cursor := "  "
	labelStyle := Styles.Normal
	if focused {
		cursor = Styles.Focused.Render("▸ ")
		labelStyle = Styles.Focused
	}
	label := labelStyle.Render(textutil.Fit(r.Label, 14))

	var value string
	switch {
	case r.Kind == rowToggle:
		box := "[ ]"
		if r.On {
			box = "[x]"
		}
		value = Styles.Normal.Render(box)
	case focused && e.editing:
		value = e.input.View()
	case r.Value == "":
		value = Styles.Muted.Render(textutil.Truncate(r.Placeholder, EditorWidth-18))
	default:
		value = Styles.Normal.Render(textutil.Truncate(r.Value, EditorWidth-18))
	}
	return cursor + label + " " + value
}
