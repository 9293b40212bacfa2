package deck

import "fmt"

// Rank represents a rank in a deck of cards. Its numeric value doubles
// as the card's point value, Two lowest through Ace highest.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r-Two]
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// ParseSuit maps a suit name to its Suit value.
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// Card represents a playing card. Cards are compared by rank alone;
// suit is deliberately ignored, so a tie between same-rank cards of
// different suits is a real tie.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the card's point value.
func (c Card) Value() int {
	return int(c.Rank)
}

// Beats reports whether the card outranks another.
func (c Card) Beats(other Card) bool {
	return c.Rank > other.Rank
}

// Less reports whether the card ranks below another.
func (c Card) Less(other Card) bool {
	return c.Rank < other.Rank
}

// EqualRank reports rank equality, suit ignored.
func (c Card) EqualRank(other Card) bool {
	return c.Rank == other.Rank
}

// Same reports full identity (rank and suit). Card movement between
// piles goes through Same so two same-rank cards are never confused.
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
