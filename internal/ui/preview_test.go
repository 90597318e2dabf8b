package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"paymaker/internal/customize"
)

type stubLoader map[string]string

func (l stubLoader) Load(url string, _ int) (string, bool) {
	s, ok := l[url]
	return s, ok
}

func TestPreview_RendersCard(t *testing.T) {
	p := NewPreviewView(customize.Default(), 1000, nil)
	out := p.View()

	for _, want := range []string{
		"OpenCommerce",
		"1000 GIGGLES",
		"Pay 1.00 USD",
		"To OpenCommerce",
		"ETH on Base",
		"Compliance Check",
		"Payment Distribution",
		"Network fee",
		"$1.19 USD",
		"Pay Now",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPreview_PointsBadgeHidden(t *testing.T) {
	s := customize.Default()
	s.ShowPoints = false
	p := NewPreviewView(s, 1000, nil)
	assert.NotContains(t, p.View(), PointsUnit)
}

func TestPreview_SetPoints(t *testing.T) {
	p := NewPreviewView(customize.Default(), 1000, nil)
	p.SetPoints(1094)
	assert.Equal(t, 1094, p.Points())
	assert.Contains(t, p.View(), "1094 GIGGLES")
}

func TestPreview_NoPictureSquaresDrawsNoGrid(t *testing.T) {
	s := customize.Default()
	s.PictureSquares = nil
	p := NewPreviewView(s, 1000, nil)

	assert.Equal(t, 0, p.GridItems())
	out := p.View()
	for _, m := range PlaceholderMarkers {
		assert.NotContains(t, out, m)
	}
}

func TestPreview_PlaceholderMarkers(t *testing.T) {
	s := customize.Default()
	for range 3 {
		s = s.AddPictureSquare()
	}
	p := NewPreviewView(s, 1000, nil)

	assert.Equal(t, 5, p.GridItems())
	out := p.View()
	for _, m := range PlaceholderMarkers {
		assert.Contains(t, out, m)
	}
	assert.Equal(t, "ϟ", PlaceholderMarker(5))
	assert.Equal(t, "▣", PlaceholderMarker(8))
}

func TestPreview_LoadedImageReplacesMarker(t *testing.T) {
	s := customize.Default()
	s.PictureSquares = []customize.PictureSquare{{ImageURL: "img://cat"}}
	p := NewPreviewView(s, 1000, stubLoader{"img://cat": "CAT"})

	out := p.View()
	assert.Contains(t, out, "CAT")
	assert.NotContains(t, out, PlaceholderMarker(0))
}

func TestPreview_EmptyLabelsUsePlaceholder(t *testing.T) {
	s := customize.Default()
	s.Checks = []customize.Check{{}}
	p := NewPreviewView(s, 1000, nil)
	assert.Contains(t, p.View(), "Untitled check")
}

func TestPreview_FollowsSnapshot(t *testing.T) {
	store := customize.NewStore(customize.Default())
	p := NewPreviewView(store.Snapshot(), 1000, nil)
	unsubscribe := store.Subscribe(p.SetSnapshot)
	defer unsubscribe()

	store.SetField(customize.FieldButtonText, "Send it")
	assert.Equal(t, "Send it", p.Snapshot().ButtonText)
	assert.Contains(t, p.View(), "Send it")
}

func TestURLImageLoader(t *testing.T) {
	var l URLImageLoader

	got, ok := l.Load("https://cdn.example.com/img/cat.png", 20)
	assert.True(t, ok)
	assert.Equal(t, "cat.png", got)

	got, ok = l.Load("https://cdn.example.com/img/", 20)
	assert.True(t, ok)
	assert.Equal(t, "img", got)

	_, ok = l.Load("  ", 20)
	assert.False(t, ok)

	got, ok = l.Load("https://x/"+strings.Repeat("a", 30), 8)
	assert.True(t, ok)
	assert.LessOrEqual(t, len([]rune(got)), 8)
}
