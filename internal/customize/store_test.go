package customize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_NotifiesSubscribers(t *testing.T) {
	st := NewStore(Default())
	var got []State
	st.Subscribe(func(s State) { got = append(got, s) })

	st.SetField(FieldTitle, "Shop")
	st.Toggle(ToggleDarkMode)
	st.AddCheck()

	require.Len(t, got, 3)
	assert.Equal(t, "Shop", got[0].Title)
	assert.False(t, got[1].DarkMode)
	assert.Len(t, got[2].Checks, 5)
	assert.True(t, got[2].Equal(st.Snapshot()))
}

func TestStore_PublishedSnapshotsAreNotMutated(t *testing.T) {
	st := NewStore(Default())
	first := st.SetCheckField(0, CheckLabel, "first")
	st.SetCheckField(0, CheckLabel, "second")
	st.RemoveCheck(0)

	assert.Equal(t, "first", first.Checks[0].Label)
	assert.Len(t, first.Checks, 4)
	assert.Equal(t, "Eligibility Check", st.Snapshot().Checks[0].Label)
}

func TestStore_Unsubscribe(t *testing.T) {
	st := NewStore(Default())
	calls := 0
	unsubscribe := st.Subscribe(func(State) { calls++ })
	st.AddPictureSquare()
	unsubscribe()
	st.RemovePictureSquare(0)
	assert.Equal(t, 1, calls)
	assert.Len(t, st.Snapshot().PictureSquares, 2)
}

func TestStore_InitialIsCopied(t *testing.T) {
	initial := Default()
	st := NewStore(initial)
	initial.Checks[0].Label = "changed"
	assert.Equal(t, "Compliance Check", st.Snapshot().Checks[0].Label)
}

func TestStore_PictureSquareEdits(t *testing.T) {
	st := NewStore(Default())
	s := st.SetPictureSquareField(1, SquareImageURL, "https://img/2.png")
	assert.Equal(t, "https://img/2.png", s.PictureSquares[1].ImageURL)
	s = st.SetField(FieldRecipient, "Alice")
	assert.Equal(t, "Alice", s.Recipient)
	assert.Equal(t, "https://img/2.png", s.PictureSquares[1].ImageURL)
}

func TestStore_SubscriberOrder(t *testing.T) {
	st := NewStore(Default())
	var order []int
	for i := range 5 {
		st.Subscribe(func(State) { order = append(order, i) })
	}
	st.Toggle(ToggleShowPoints)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
