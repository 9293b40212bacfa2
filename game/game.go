package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"blindauction/deck"
	"blindauction/players"
	"blindauction/protocol"
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 3 players allowed")
	ErrNilStrategy    = errors.New("player has no strategy")
	ErrGameOver       = errors.New("game is already over")
)

const (
	minPlayers = 2
	maxPlayers = 3
)

// Opts are the options for constructing a Game.
type Opts struct {
	Players players.Players
	// AuctionSuits are the suits auctioned off round by round.
	// Defaults to Diamonds alone.
	AuctionSuits []deck.Suit
	TiePolicy    TiePolicy
	// Rand drives shuffling. Defaults to a time-seeded source; tests
	// inject a fixed seed.
	Rand *rand.Rand
}

// Game owns round sequencing: it reveals auction cards, collects one
// sealed bid per player, applies the resolved outcome and keeps the
// carry-forward queue and scores. All card movement between piles goes
// through the Game, never through strategies.
type Game struct {
	Players players.Players

	// Pile is the shared auction supply, drawn from the front.
	Pile deck.Deck
	// CarryForward queues auction cards deferred from unresolved
	// rounds. It is drained front-first before the pile.
	CarryForward deck.Deck
	// Discards receives every spent bid card and any auction card
	// consumed by a split, so no card ever leaves the books.
	Discards deck.Deck

	Round   int
	auction *Auction

	auctionSuits []deck.Suit
	history      []protocol.RoundEvent
	terminal     bool
}

// New constructs a game and deals the opening hands: each player
// receives every card of their assigned suit, the auction pile is the
// shuffled run of the auction suit(s), and any suit belonging to
// neither leaves the game before the first round.
func New(opts Opts) (*Game, error) {
	if len(opts.Players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	auctionSuits := opts.AuctionSuits
	if len(auctionSuits) == 0 {
		auctionSuits = []deck.Suit{deck.Diamonds}
	}

	taken := map[deck.Suit]bool{}
	for _, s := range auctionSuits {
		taken[s] = true
	}
	for _, p := range opts.Players {
		if p.Strategy() == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilStrategy, p.Name())
		}
		if taken[p.Suit()] {
			return nil, fmt.Errorf("suit %s is already in use", p.Suit())
		}
		taken[p.Suit()] = true
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Players:      opts.Players,
		Pile:         deck.New(auctionSuits...),
		CarryForward: deck.Deck{},
		Discards:     deck.Deck{},
		auction:      NewAuction(opts.TiePolicy),
		auctionSuits: auctionSuits,
		history:      []protocol.RoundEvent{},
	}
	g.Pile.Shuffle(rng)

	for _, p := range g.Players {
		for _, c := range deck.New(p.Suit()) {
			p.AddCard(c)
		}
	}

	return g, nil
}

// nextAuctionCard pops the carry-forward queue first, then the pile.
// false means the supply is exhausted, which ends the game.
func (g *Game) nextAuctionCard() (deck.Card, bool) {
	if c, ok := g.CarryForward.Draw(); ok {
		return c, true
	}
	return g.Pile.Draw()
}

// PlayRound plays a single round. It returns nil once the game has
// reached a terminal state instead of playing a round, and ErrGameOver
// if called again after that.
func (g *Game) PlayRound() (*protocol.RoundEvent, error) {
	if g.terminal {
		return nil, ErrGameOver
	}

	if g.handsEmpty() {
		g.terminal = true
		return nil, nil
	}

	revealed, ok := g.nextAuctionCard()
	if !ok {
		// Empty supply is normal termination, not an error.
		g.terminal = true
		return nil, nil
	}

	round := g.Round + 1
	g.auction.Start(revealed, round)

	snap := g.Snapshot()
	for _, p := range g.Players {
		if !p.HasCards() {
			continue
		}

		hand := make(deck.Deck, len(p.Hand))
		copy(hand, p.Hand)

		c, bid := p.Strategy().Choose(revealed, hand, snap)
		if !bid {
			continue
		}
		if !p.Hand.Contains(c) {
			// Contract violation: the chosen card is not in the hand.
			// Treated as no bid rather than guessing at a card.
			continue
		}
		g.auction.PlaceBid(p.ID(), c)
	}

	outcome := g.auction.Resolve()
	g.applyOutcome(revealed, outcome)
	g.auction.Clear()
	g.Round = round

	event := g.buildRoundEvent(round, revealed, outcome)
	g.history = append(g.history, event)

	return &event, nil
}

// applyOutcome moves the revealed card and every bid card to their
// destinations. Bid cards leave the bidders' hands whatever the
// outcome; bidding is a forced discard.
func (g *Game) applyOutcome(revealed deck.Card, outcome Outcome) {
	switch outcome.Kind {
	case OutcomeWinner:
		if winner, ok := g.Players.Find(outcome.WinnerID); ok {
			winner.AddWonCard(revealed)
		}

	case OutcomeTieSplit:
		// The card cannot be subdivided, so the tied players are
		// credited value/n each and the card itself is spent.
		for _, id := range outcome.TiedIDs {
			if p, ok := g.Players.Find(id); ok {
				p.AddCredit(outcome.SplitCredit)
			}
		}
		g.Discards.Add(revealed)

	case OutcomeTieCarryForward:
		g.CarryForward.Add(revealed)

	case OutcomeNoBids, OutcomeInsufficient:
		// Nobody can take the card, so it goes back to the queue to
		// be auctioned again. Dropping it would lose a card from the
		// game's books.
		g.CarryForward.Add(revealed)
	}

	for _, b := range outcome.Bids {
		if p, ok := g.Players.Find(b.PlayerID); ok {
			if p.RemoveCard(b.Card) {
				g.Discards.Add(b.Card)
			}
		}
	}
}

func (g *Game) buildRoundEvent(round int, revealed deck.Card, outcome Outcome) protocol.RoundEvent {
	bids := []protocol.Bid{}
	for _, b := range outcome.Bids {
		name := ""
		if p, ok := g.Players.Find(b.PlayerID); ok {
			name = p.Name()
		}
		bids = append(bids, protocol.Bid{PlayerID: b.PlayerID, Name: name, Card: b.Card})
	}

	return protocol.RoundEvent{
		Round:       round,
		Revealed:    revealed,
		Bids:        bids,
		Outcome:     outcome.Kind.String(),
		WinnerID:    outcome.WinnerID,
		TiedIDs:     outcome.TiedIDs,
		SplitCredit: outcome.SplitCredit,
		Scores:      g.Scores(),
	}
}

// Play runs rounds until the game ends and returns the final result.
func (g *Game) Play() (protocol.GameEvent, error) {
	for {
		event, err := g.PlayRound()
		if err != nil {
			return protocol.GameEvent{}, err
		}
		if event == nil {
			return g.Result(), nil
		}
	}
}

func (g *Game) handsEmpty() bool {
	for _, p := range g.Players {
		if p.HasCards() {
			return false
		}
	}
	return true
}

// Terminal reports whether the game has ended.
func (g *Game) Terminal() bool {
	return g.terminal
}

// Scores maps player ID to current score, split credits included.
func (g *Game) Scores() map[string]float64 {
	scores := map[string]float64{}
	for _, p := range g.Players {
		scores[p.ID()] = p.Score()
	}
	return scores
}

// Winners returns the IDs of every player holding the maximum score.
// More than one winner is a draw.
func (g *Game) Winners() []string {
	max := 0.0
	for i, p := range g.Players {
		if i == 0 || p.Score() > max {
			max = p.Score()
		}
	}

	winners := []string{}
	for _, p := range g.Players {
		if p.Score() == max {
			winners = append(winners, p.ID())
		}
	}
	return winners
}

// Result builds the end-of-game event.
func (g *Game) Result() protocol.GameEvent {
	winners := g.Winners()
	return protocol.GameEvent{
		Rounds:      g.Round,
		FinalScores: g.Scores(),
		WinnerIDs:   winners,
		Draw:        len(winners) > 1,
	}
}

// History returns the per-round events so far.
func (g *Game) History() []protocol.RoundEvent {
	return g.history
}

// Snapshot builds the read-only public state handed to strategies.
// It is a copy; nothing a strategy does to it can leak back.
func (g *Game) Snapshot() protocol.Snapshot {
	states := []protocol.PlayerState{}
	for _, p := range g.Players {
		states = append(states, protocol.PlayerState{
			PlayerID:  p.ID(),
			Name:      p.Name(),
			Suit:      p.Suit().String(),
			CardsLeft: len(p.Hand),
			Score:     p.Score(),
		})
	}

	history := make([]protocol.RoundEvent, len(g.history))
	copy(history, g.history)

	return protocol.Snapshot{
		Round:   g.Round,
		Players: states,
		History: history,
	}
}
