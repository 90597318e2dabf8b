package ui

import (
	"strings"

	"paymaker/internal/ui/textutil"
)

// PlaceholderMarkers stand in for picture squares without an image:
// image, zap, shield, star.
var PlaceholderMarkers = []string{"▣", "ϟ", "⛨", "★"}

// PlaceholderMarker returns the marker for the picture square at index.
func PlaceholderMarker(index int) string {
	return PlaceholderMarkers[index%len(PlaceholderMarkers)]
}

// ImageLoader turns a picture square's image URL into tile content.
// ok=false means the preview should draw the placeholder marker instead.
type ImageLoader interface {
	Load(url string, width int) (content string, ok bool)
}

// URLImageLoader shows the image's file name, since a terminal cannot
// draw the picture itself.
type URLImageLoader struct{}

// Load implements ImageLoader.
func (URLImageLoader) Load(url string, width int) (string, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", false
	}
	name := url
	if i := strings.LastIndex(strings.TrimRight(url, "/"), "/"); i >= 0 {
		name = strings.TrimRight(url, "/")[i+1:]
	}
	if name == "" {
		return "", false
	}
	return textutil.Truncate(name, width), true
}
