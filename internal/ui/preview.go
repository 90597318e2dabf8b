package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paymaker/internal/customize"
	"paymaker/internal/ui/textutil"
)

const (
	// CardWidth is the inner width of the preview card in columns.
	CardWidth = 40
	// PointsUnit labels the points badge.
	PointsUnit = "GIGGLES"

	tilesPerRow = 4
	tileHeight  = 3
)

// PreviewView renders the simulated checkout card from a snapshot.
// It holds no editable state of its own.
type PreviewView struct {
	snapshot customize.State
	points   int
	loader   ImageLoader
}

// Ensure PreviewView implements View.
var _ View = (*PreviewView)(nil)

// NewPreviewView creates a preview of snapshot showing points.
func NewPreviewView(snapshot customize.State, points int, loader ImageLoader) *PreviewView {
	if loader == nil {
		loader = URLImageLoader{}
	}
	return &PreviewView{snapshot: snapshot, points: points, loader: loader}
}

// SetSnapshot replaces the snapshot to render.
func (p *PreviewView) SetSnapshot(s customize.State) { p.snapshot = s }

// Snapshot returns the snapshot last rendered.
func (p *PreviewView) Snapshot() customize.State { return p.snapshot }

// SetPoints sets the value shown in the points badge.
func (p *PreviewView) SetPoints(n int) { p.points = n }

// Points returns the value shown in the points badge.
func (p *PreviewView) Points() int { return p.points }

// Init implements View.
func (p *PreviewView) Init() tea.Cmd { return nil }

// Update implements View. The preview is driven by setters, not messages.
func (p *PreviewView) Update(tea.Msg) (View, tea.Cmd) { return p, nil }

// View implements View.
func (p *PreviewView) View() string {
	s := p.snapshot
	th := cardTheme(s.DarkMode)

	var sections []string
	sections = append(sections, p.header(th))
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Center,
		th.Heading.Render("Pay 1.00 USD"),
		th.Subtle.Render("To "+textutil.Truncate(s.Recipient, CardWidth-3)),
	))
	sections = append(sections, p.payWith(th))
	if len(s.Checks) > 0 {
		sections = append(sections, p.checks(th))
	}
	if grid := p.grid(th); grid != "" {
		sections = append(sections, grid)
	}
	sections = append(sections, p.totals(th))
	sections = append(sections, th.Button.Width(CardWidth).Render(textutil.Truncate(s.ButtonText, CardWidth-2)))

	body := lipgloss.NewStyle().Width(CardWidth).Render(strings.Join(sections, "\n\n"))
	return th.Card.Render(body)
}

func (p *PreviewView) header(th CardTheme) string {
	var badge string
	if p.snapshot.ShowPoints {
		badge = th.Badge.Render(fmt.Sprintf("%d %s", p.points, PointsUnit))
	}
	title := "≡ " + textutil.Truncate(p.snapshot.Title, CardWidth-lipgloss.Width(badge)-3)
	gap := max(1, CardWidth-lipgloss.Width(title)-lipgloss.Width(badge))
	return th.Heading.Render(title) + strings.Repeat(" ", gap) + badge
}

func (p *PreviewView) payWith(th CardTheme) string {
	w := CardWidth - 2
	coin := th.Coin.Render(" Ξ ")
	left := coin + " Pay with"
	right := th.Good.Render("Approved") + " $24.39 ›"
	gap := max(1, w-lipgloss.Width(left)-lipgloss.Width(right))
	lines := []string{
		left + strings.Repeat(" ", gap) + right,
		th.Text.Render("    ETH on Base"),
		th.Subtle.Render("Available"),
	}
	return th.Panel.Width(CardWidth).Render(strings.Join(lines, "\n"))
}

func (p *PreviewView) checks(th CardTheme) string {
	lines := make([]string, len(p.snapshot.Checks))
	for i, c := range p.snapshot.Checks {
		label := orPlaceholder(c.Label, "Untitled check")
		icon := "↻"
		if c.Link != "" {
			icon = "↗"
		}
		label = textutil.Truncate(label, CardWidth-3)
		gap := strings.Repeat(" ", max(1, CardWidth-textutil.Width(label)-textutil.Width(icon)))
		if c.Link != "" {
			lines[i] = th.Link.Render(label) + gap + th.Subtle.Render(icon)
		} else {
			lines[i] = th.Subtle.Render(label) + gap + th.Subtle.Render(icon)
		}
	}
	return strings.Join(lines, "\n")
}

// GridItems returns the number of picture tiles the card draws.
func (p *PreviewView) GridItems() int {
	return len(p.snapshot.PictureSquares)
}

// grid renders the picture squares, or "" when there are none.
func (p *PreviewView) grid(th CardTheme) string {
	squares := p.snapshot.PictureSquares
	if len(squares) == 0 {
		return ""
	}
	tileW := (CardWidth - (tilesPerRow - 1)) / tilesPerRow
	var rows []string
	for start := 0; start < len(squares); start += tilesPerRow {
		end := min(start+tilesPerRow, len(squares))
		tiles := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				tiles = append(tiles, " ")
			}
			tiles = append(tiles, p.tile(th, i, tileW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

func (p *PreviewView) tile(th CardTheme, index, width int) string {
	sq := p.snapshot.PictureSquares[index]
	content, ok := p.loader.Load(sq.ImageURL, width-2)
	if !ok {
		content = PlaceholderMarker(index)
	}
	link := ""
	if sq.Link != "" {
		link = "↗"
	}
	return th.Tile.Width(width).Height(tileHeight).Render("\n" + content + "\n" + link)
}

func (p *PreviewView) totals(th CardTheme) string {
	lines := []string{
		th.Subtle.Render(textutil.Spread("Network fee", "$0.19 USD", CardWidth)),
		th.Subtle.Render(textutil.Spread("", "0.00003902 ETH", CardWidth)),
		"",
		th.Heading.Render(textutil.Spread("Total", "$1.19 USD", CardWidth)),
	}
	return strings.Join(lines, "\n")
}
