package game

import "math/rand"

// Shuffler randomizes card order. The default implementation uses the
// shared math/rand source; tests inject a deterministic one.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type randShuffler struct{}

func (randShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// Deck is a draw pile over a fixed source set of cards. Cards are drawn
// from the top (end of the slice); when the pile runs out mid-draw it is
// replaced with a freshly shuffled copy of the full source set.
type Deck struct {
	cards    []string
	source   []string
	shuffler Shuffler
}

func NewDeck(source []string, shuffler Shuffler) *Deck {
	d := &Deck{
		source:   source,
		shuffler: shuffler,
	}
	d.refill()
	return d
}

// restoreDeck rebuilds a deck around a previously persisted pile.
func restoreDeck(cards, source []string, shuffler Shuffler) *Deck {
	return &Deck{
		cards:    cards,
		source:   source,
		shuffler: shuffler,
	}
}

// Draw removes and returns exactly n cards, card by card, refilling the
// pile from the source set whenever it is empty at a draw step.
func (d *Deck) Draw(n int) []string {
	drawn := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if len(d.cards) == 0 {
			d.refill()
			if len(d.cards) == 0 {
				break
			}
		}
		last := len(d.cards) - 1
		drawn = append(drawn, d.cards[last])
		d.cards = d.cards[:last]
	}
	return drawn
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) refill() {
	d.cards = append([]string(nil), d.source...)
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
