package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// noopShuffler keeps source order so draws are deterministic: cards come
// off the end of the pile, so the last source card is drawn first.
type noopShuffler struct{}

func (noopShuffler) Shuffle(n int, swap func(i, j int)) {}

type countingShuffler struct {
	calls int
}

func (s *countingShuffler) Shuffle(n int, swap func(i, j int)) { s.calls++ }

func TestDeckDrawRemovesCards(t *testing.T) {
	d := NewDeck([]string{"a", "b", "c", "d", "e"}, noopShuffler{})

	drawn := d.Draw(2)

	assert.Equal(t, []string{"e", "d"}, drawn)
	assert.Equal(t, 3, d.Len())
}

func TestDeckDrawNeverReturnsShort(t *testing.T) {
	d := NewDeck([]string{"a", "b"}, noopShuffler{})

	drawn := d.Draw(5)

	assert.Len(t, drawn, 5)
	assert.GreaterOrEqual(t, d.Len(), 0)
}

func TestDeckReshufflesOnExhaustion(t *testing.T) {
	d := NewDeck([]string{"a", "b", "c"}, noopShuffler{})

	first := d.Draw(2)
	assert.Equal(t, []string{"c", "b"}, first)

	// Second draw exhausts the pile after "a" and refills mid-draw.
	second := d.Draw(2)
	assert.Equal(t, []string{"a", "c"}, second)
	assert.Equal(t, 2, d.Len())
}

func TestDeckReshuffleCountPerDraw(t *testing.T) {
	s := &countingShuffler{}
	d := NewDeck([]string{"a", "b", "c"}, s)
	assert.Equal(t, 1, s.calls) // initial shuffle

	d.Draw(3)
	assert.Equal(t, 1, s.calls)

	d.Draw(1)
	assert.Equal(t, 2, s.calls) // exactly one refill for the offending draw
}

func TestDeckEmptySource(t *testing.T) {
	d := NewDeck(nil, noopShuffler{})

	drawn := d.Draw(3)

	assert.Empty(t, drawn)
	assert.Equal(t, 0, d.Len())
}

func TestDeckSourceNotMutated(t *testing.T) {
	source := []string{"a", "b", "c"}
	d := NewDeck(source, noopShuffler{})

	d.Draw(3)
	d.Draw(1)

	assert.Equal(t, []string{"a", "b", "c"}, source)
}
