package ui

import "github.com/charmbracelet/lipgloss"

// Editor chrome colors (ANSI 256).
const (
	ColorAccent    = "86"  // titles, active borders
	ColorHighlight = "205" // focused row, key hints
	ColorDanger    = "196" // destructive confirmations
	ColorMuted     = "241" // hints, placeholders
	ColorText      = "252"
	ColorWarning   = "208"
	ColorSuccess   = "42"
)

// Styles holds the editor chrome styles shared by panes and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	PaneActive   lipgloss.Style
	BoxDanger    lipgloss.Style
	Section      lipgloss.Style
	Focused      lipgloss.Style
	Normal       lipgloss.Style
	Muted        lipgloss.Style
	Hint         lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Label        lipgloss.Style
	Details      lipgloss.Style
	Mode         lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	PaneActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Focused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Mode: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)),
}

// CardTheme is the palette of the preview card.
type CardTheme struct {
	Card    lipgloss.Style // outer card
	Panel   lipgloss.Style // inner "pay with" panel
	Text    lipgloss.Style
	Subtle  lipgloss.Style
	Badge   lipgloss.Style // points badge
	Good    lipgloss.Style // "Approved"
	Link    lipgloss.Style
	Button  lipgloss.Style
	Tile    lipgloss.Style // picture square
	Coin    lipgloss.Style
	Heading lipgloss.Style
}

func newCardTheme(bg, panel, text, subtle, tile string) CardTheme {
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	return CardTheme{
		Card: lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(text)).
			Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Background(lipgloss.Color(panel)).
			Foreground(lipgloss.Color(text)).
			Padding(0, 1),
		Text:   base.Foreground(lipgloss.Color(text)),
		Subtle: base.Foreground(lipgloss.Color(subtle)),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("48")).
			Background(lipgloss.Color(panel)).
			Padding(0, 1),
		Good:    lipgloss.NewStyle().Foreground(lipgloss.Color("48")).Background(lipgloss.Color(panel)),
		Link:    base.Foreground(lipgloss.Color("39")).Underline(true),
		Heading: base.Foreground(lipgloss.Color(text)).Bold(true),
		Button: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("99")),
		Tile: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(lipgloss.Color(text)).
			Background(lipgloss.Color(tile)),
		Coin: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("33")),
	}
}

// DarkCard and LightCard are the two preview palettes.
var (
	DarkCard  = newCardTheme("234", "236", "255", "245", "238")
	LightCard = newCardTheme("255", "253", "235", "242", "252")
)

// cardTheme picks the palette for the dark mode flag.
func cardTheme(dark bool) CardTheme {
	if dark {
		return DarkCard
	}
	return LightCard
}
