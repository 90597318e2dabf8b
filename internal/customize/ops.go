package customize

import (
	"fmt"
	"slices"
)

// Field names a top-level text field of State.
type Field string

const (
	FieldTitle      Field = "title"
	FieldRecipient  Field = "recipient"
	FieldButtonText Field = "buttonText"
)

// Toggle names a boolean display flag of State.
type Toggle string

const (
	ToggleDarkMode   Toggle = "darkMode"
	ToggleShowPoints Toggle = "showPoints"
)

// CheckField names a field of Check.
type CheckField string

const (
	CheckLabel CheckField = "label"
	CheckLink  CheckField = "link"
)

// SquareField names a field of PictureSquare.
type SquareField string

const (
	SquareImageURL SquareField = "imageUrl"
	SquareLink     SquareField = "link"
)

// Operations below are pure: they return a new State and never write through
// the receiver's slices. Out-of-range indices and unknown field names are
// caller bugs and panic.

// SetField replaces a top-level text field.
func (s State) SetField(f Field, value string) State {
	switch f {
	case FieldTitle:
		s.Title = value
	case FieldRecipient:
		s.Recipient = value
	case FieldButtonText:
		s.ButtonText = value
	default:
		panic(fmt.Sprintf("customize: unknown field %q", f))
	}
	return s
}

// Toggle flips a boolean display flag.
func (s State) Toggle(t Toggle) State {
	switch t {
	case ToggleDarkMode:
		s.DarkMode = !s.DarkMode
	case ToggleShowPoints:
		s.ShowPoints = !s.ShowPoints
	default:
		panic(fmt.Sprintf("customize: unknown toggle %q", t))
	}
	return s
}

// SetCheckField replaces one field of the check at index.
func (s State) SetCheckField(index int, f CheckField, value string) State {
	mustIndex("check", index, len(s.Checks))
	checks := slices.Clone(s.Checks)
	switch f {
	case CheckLabel:
		checks[index].Label = value
	case CheckLink:
		checks[index].Link = value
	default:
		panic(fmt.Sprintf("customize: unknown check field %q", f))
	}
	s.Checks = checks
	return s
}

// AddCheck appends an empty check.
func (s State) AddCheck() State {
	s.Checks = append(slices.Clip(s.Checks), Check{})
	return s
}

// RemoveCheck drops the check at index; later checks move down by one.
func (s State) RemoveCheck(index int) State {
	mustIndex("check", index, len(s.Checks))
	s.Checks = slices.Delete(slices.Clone(s.Checks), index, index+1)
	return s
}

// SetPictureSquareField replaces one field of the picture square at index.
func (s State) SetPictureSquareField(index int, f SquareField, value string) State {
	mustIndex("picture square", index, len(s.PictureSquares))
	squares := slices.Clone(s.PictureSquares)
	switch f {
	case SquareImageURL:
		squares[index].ImageURL = value
	case SquareLink:
		squares[index].Link = value
	default:
		panic(fmt.Sprintf("customize: unknown picture square field %q", f))
	}
	s.PictureSquares = squares
	return s
}

// AddPictureSquare appends an empty picture square.
func (s State) AddPictureSquare() State {
	s.PictureSquares = append(slices.Clip(s.PictureSquares), PictureSquare{})
	return s
}

// RemovePictureSquare drops the picture square at index.
func (s State) RemovePictureSquare(index int) State {
	mustIndex("picture square", index, len(s.PictureSquares))
	s.PictureSquares = slices.Delete(slices.Clone(s.PictureSquares), index, index+1)
	return s
}

func mustIndex(kind string, index, n int) {
	if index < 0 || index >= n {
		panic(fmt.Sprintf("customize: %s index %d out of range [0,%d)", kind, index, n))
	}
}
