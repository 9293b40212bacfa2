package players

import (
	"fmt"
	"math/rand"
	"sort"

	"blindauction/deck"
	"blindauction/protocol"
)

// Strategy chooses a card to bid for the revealed auction card.
// Implementations must return a card currently in hand (or false for
// no bid) and must not mutate the hand. The snapshot is public state
// only; the current round's bids are never visible.
type Strategy interface {
	Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool)
}

// StrategyConstructor builds a strategy. Strategies needing randomness
// draw from the supplied source so games stay reproducible.
type StrategyConstructor func(rng *rand.Rand) Strategy

var registry = map[string]StrategyConstructor{}

// Register adds a named strategy to the registry. Registering an
// existing name replaces it.
func Register(name string, ctor StrategyConstructor) {
	registry[name] = ctor
}

// NewStrategy builds the named strategy.
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return ctor(rng), nil
}

// StrategyNames lists the registered strategies in sorted order.
func StrategyNames() []string {
	names := []string{}
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("random", func(rng *rand.Rand) Strategy { return &randomStrategy{rng} })
	Register("highest", func(rng *rand.Rand) Strategy { return highestStrategy{} })
	Register("lowest", func(rng *rand.Rand) Strategy { return lowestStrategy{} })
	Register("median", func(rng *rand.Rand) Strategy { return medianStrategy{} })
	Register("value-relative", func(rng *rand.Rand) Strategy { return valueRelativeStrategy{} })
}

// randomStrategy bids any card.
type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	return hand[s.rng.Intn(len(hand))], true
}

// highestStrategy always bids the strongest card.
type highestStrategy struct{}

func (highestStrategy) Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool) {
	return highestCard(hand)
}

// lowestStrategy always bids the weakest card.
type lowestStrategy struct{}

func (lowestStrategy) Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool) {
	return lowestCard(hand)
}

// medianStrategy scales its bid to the revealed card: high cards for
// face cards, the middle of the hand for the mid range, low cards
// otherwise.
type medianStrategy struct{}

func (medianStrategy) Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	switch {
	case revealed.Rank >= deck.Jack:
		return highestCard(hand)
	case revealed.Value() >= 7:
		return medianCard(hand)
	default:
		return lowestCard(hand)
	}
}

// valueRelativeStrategy compares the revealed card to the mean value
// of the hand and bids high or low accordingly.
type valueRelativeStrategy struct{}

func (valueRelativeStrategy) Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	mean := float64(hand.Values()) / float64(len(hand))
	if float64(revealed.Value()) > mean {
		return highestCard(hand)
	}
	return lowestCard(hand)
}

func highestCard(hand deck.Deck) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	best := hand[0]
	for _, c := range hand[1:] {
		if c.Beats(best) {
			best = c
		}
	}
	return best, true
}

func lowestCard(hand deck.Deck) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	worst := hand[0]
	for _, c := range hand[1:] {
		if c.Less(worst) {
			worst = c
		}
	}
	return worst, true
}

func medianCard(hand deck.Deck) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}
	sorted := make(deck.Deck, len(hand))
	copy(sorted, hand)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	return sorted[len(sorted)/2], true
}
