package players

import (
	"blindauction/deck"

	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a participant in the game. A player owns their
// hand and won pile exclusively; cards move between piles by transfer,
// never by copy.
type Player struct {
	id       string
	name     string
	suit     deck.Suit
	strategy Strategy

	// Hand holds the cards still available for bidding.
	Hand deck.Deck
	// Won holds auction cards won outright.
	Won deck.Deck

	// credit accumulates fractional points from split ties, which
	// award value rather than a physical card.
	credit float64
}

// NewPlayer constructs a player with a fresh ID.
func NewPlayer(name string, suit deck.Suit, strategy Strategy) *Player {
	return &Player{
		id:       NewID(),
		name:     name,
		suit:     suit,
		strategy: strategy,
		Hand:     deck.Deck{},
		Won:      deck.Deck{},
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

// Suit returns the suit the player bids with.
func (p *Player) Suit() deck.Suit {
	return p.suit
}

// Strategy returns the player's bidding strategy.
func (p *Player) Strategy() Strategy {
	return p.strategy
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(c deck.Card) {
	p.Hand.Add(c)
}

// RemoveCard removes a card from the player's hand by identity.
// It returns false if the card is not held.
func (p *Player) RemoveCard(c deck.Card) bool {
	return p.Hand.Remove(c)
}

// HasCards reports whether the player can still bid.
func (p *Player) HasCards() bool {
	return len(p.Hand) > 0
}

// AddWonCard adds an auction card won outright.
func (p *Player) AddWonCard(c deck.Card) {
	p.Won.Add(c)
}

// AddCredit awards fractional points from a split tie.
func (p *Player) AddCredit(points float64) {
	p.credit += points
}

// Score is the total of won-card values plus split credits.
func (p *Player) Score() float64 {
	return float64(p.Won.Values()) + p.credit
}

// Players represents all players in the game
type Players []*Player

// NewPlayers returns a set of Players
func NewPlayers(p ...*Player) Players {
	return Players(p)
}

// Find finds a player by id
func (ps Players) Find(id string) (*Player, bool) {
	for _, p := range ps {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}
