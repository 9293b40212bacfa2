package deck

import (
	"math/rand"
	"sort"
)

// Deck represents an ordered pile of cards. It backs the shared
// auction pile, player hands, won piles and the discard pile.
type Deck []Card

// New creates a deck containing every rank of the given suits.
// With no arguments it builds a standard 52-card deck.
func New(suits ...Suit) Deck {
	if len(suits) == 0 {
		suits = []Suit{Clubs, Diamonds, Hearts, Spades}
	}
	cards := Deck{}
	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck using the given source, so games are
// reproducible under a fixed seed.
func (d *Deck) Shuffle(rng *rand.Rand) {
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}
}

// Draw removes and returns the front card. The second return value is
// false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c := (*d)[0]
	*d = (*d)[1:]
	return c, true
}

// Deal deals n cards from the front of the deck, fewer if the deck
// runs out.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	subSlice := (*d)[:n]
	*d = (*d)[n:]
	return subSlice
}

// Add appends cards to the back of the deck.
func (d *Deck) Add(cards ...Card) {
	*d = append(*d, cards...)
}

// Remove removes the first card identical to c (rank and suit).
// It returns false if the card is not present.
func (d *Deck) Remove(c Card) bool {
	for i, held := range *d {
		if held.Same(c) {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the deck holds a card identical to c.
func (d Deck) Contains(c Card) bool {
	for _, held := range d {
		if held.Same(c) {
			return true
		}
	}
	return false
}

// BySuit returns the cards of the given suit, in deck order.
func (d Deck) BySuit(suit Suit) Deck {
	cards := Deck{}
	for _, c := range d {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}

// Values returns the total point value of the deck.
func (d Deck) Values() int {
	total := 0
	for _, c := range d {
		total += c.Value()
	}
	return total
}

// Sort orders the deck by ascending rank, in place.
func (d Deck) Sort() {
	sort.SliceStable(d, func(i, j int) bool {
		return d[i].Less(d[j])
	})
}
