package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := FocusManager{Order: []string{"a", "b", "c"}, Current: "a"}

	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "c", f.Prev())
}

func TestFocusManager_EmptyOrder(t *testing.T) {
	var f FocusManager
	assert.Equal(t, "", f.Next())
	assert.Equal(t, "", f.Prev())
	assert.Equal(t, -1, f.Index())
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := FocusManager{Order: []string{"a", "b"}, Current: "a"}
	assert.True(t, f.SetFocus("b"))
	assert.False(t, f.SetFocus("zzz"))
	assert.Equal(t, "b", f.Current)
}

func TestFocusManager_SetOrderKeepsFocusedID(t *testing.T) {
	f := FocusManager{Order: []string{"a", "b", "c"}, Current: "b"}
	f.SetOrder([]string{"x", "a", "b", "c"})
	assert.Equal(t, "b", f.Current)
}

func TestFocusManager_SetOrderFallsBackToSamePosition(t *testing.T) {
	f := FocusManager{Order: []string{"a", "b", "c"}, Current: "b"}
	f.SetOrder([]string{"a", "c"})
	assert.Equal(t, "c", f.Current)

	f.SetOrder([]string{"a"})
	assert.Equal(t, "a", f.Current, "clamps to the last row")

	f.SetOrder(nil)
	assert.Equal(t, "", f.Current)
}

func TestFocusManager_OnChange(t *testing.T) {
	var moves [][2]string
	f := FocusManager{
		Order:   []string{"a", "b"},
		Current: "a",
		OnChange: func(from, to string) {
			moves = append(moves, [2]string{from, to})
		},
	}
	f.Next()
	f.SetFocus("b")
	assert.Equal(t, [][2]string{{"a", "b"}}, moves)
}
