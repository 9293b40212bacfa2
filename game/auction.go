package game

import (
	"fmt"

	"blindauction/deck"
	"blindauction/protocol"
)

// TiePolicy governs unresolved maximum-bid ties. Split divides the
// auction card's value between the tied players; carry-forward defers
// the card to a later round.
type TiePolicy int

const (
	TieSplit TiePolicy = iota
	TieCarryForward
)

var tiePolicyNames = map[TiePolicy]string{
	TieSplit:        "split",
	TieCarryForward: "carry_forward",
}

func (tp TiePolicy) String() string {
	return tiePolicyNames[tp]
}

// ParseTiePolicy maps a configured name to a TiePolicy. Anything
// unrecognised is a setup error and must prevent game start.
func ParseTiePolicy(name string) (TiePolicy, error) {
	for tp, n := range tiePolicyNames {
		if n == name {
			return tp, nil
		}
	}
	return 0, fmt.Errorf("tie policy must be one of \"split\" or \"carry_forward\", got %q", name)
}

// auctionPhase represents the state of a single round's auction
// empty -> collecting (Start) -> resolved (Resolve) -> empty (Clear)
type auctionPhase int

const (
	auctionEmpty auctionPhase = iota
	auctionCollecting
	auctionResolved
)

// OutcomeKind classifies a resolved auction.
type OutcomeKind int

const (
	OutcomeNoBids OutcomeKind = iota
	OutcomeInsufficient
	OutcomeWinner
	OutcomeTieSplit
	OutcomeTieCarryForward
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeNoBids:          protocol.OutcomeNoBids,
	OutcomeInsufficient:    protocol.OutcomeInsufficient,
	OutcomeWinner:          protocol.OutcomeWinner,
	OutcomeTieSplit:        protocol.OutcomeTieSplit,
	OutcomeTieCarryForward: protocol.OutcomeTieCarry,
}

func (k OutcomeKind) String() string {
	return outcomeNames[k]
}

// Outcome is the result of resolving one auction. Bids lists every
// recorded bid in placement order, all of which must be discarded by
// the caller whatever the outcome.
type Outcome struct {
	Kind        OutcomeKind
	WinnerID    string
	TiedIDs     []string
	SplitCredit float64
	Bids        []protocol.Bid
}

// Auction holds the sealed bidding for a single round: the revealed
// card and at most one bid per participant. It does not move cards;
// that is the game's job once the outcome is known.
type Auction struct {
	Revealed  deck.Card
	Round     int
	TiePolicy TiePolicy

	bids  map[string]deck.Card
	order []string
	phase auctionPhase
}

// NewAuction constructs an auction with the given tie policy.
func NewAuction(policy TiePolicy) *Auction {
	return &Auction{
		TiePolicy: policy,
		bids:      map[string]deck.Card{},
	}
}

// Start begins collecting bids for a revealed card, discarding any
// bids left over from a previous round.
func (a *Auction) Start(revealed deck.Card, round int) {
	a.Revealed = revealed
	a.Round = round
	a.bids = map[string]deck.Card{}
	a.order = []string{}
	a.phase = auctionCollecting
}

// PlaceBid records a participant's bid. It returns false, without
// recording anything, if the participant already bid this round or if
// the auction is not collecting. It does not check that the card is in
// the bidder's hand; the caller owns that contract.
func (a *Auction) PlaceBid(playerID string, c deck.Card) bool {
	if a.phase != auctionCollecting {
		return false
	}
	if _, ok := a.bids[playerID]; ok {
		return false
	}
	a.bids[playerID] = c
	a.order = append(a.order, playerID)
	return true
}

// HasBid reports whether the participant has a recorded bid this round.
func (a *Auction) HasBid(playerID string) bool {
	_, ok := a.bids[playerID]
	return ok
}

// Bids returns the recorded bids in placement order.
func (a *Auction) Bids() []protocol.Bid {
	bids := []protocol.Bid{}
	for _, id := range a.order {
		bids = append(bids, protocol.Bid{PlayerID: id, Card: a.bids[id]})
	}
	return bids
}

// Resolve computes the outcome from the recorded bids. Resolution is
// atomic over the current bid map; no partial state exists.
//
// Fewer than two bids cannot make an auction: zero bids is NoBids and
// a single bid is Insufficient, and in neither case is the revealed
// card awarded. Otherwise all bidders whose bid equals the round
// maximum are tied (rank equality only, suit ignored); a single such
// bidder wins outright, more than one falls to the tie policy.
func (a *Auction) Resolve() Outcome {
	a.phase = auctionResolved
	bids := a.Bids()

	switch len(bids) {
	case 0:
		return Outcome{Kind: OutcomeNoBids, Bids: bids}
	case 1:
		return Outcome{Kind: OutcomeInsufficient, Bids: bids}
	}

	highest := bids[0].Card
	for _, b := range bids[1:] {
		if b.Card.Beats(highest) {
			highest = b.Card
		}
	}

	tied := []string{}
	for _, b := range bids {
		if b.Card.EqualRank(highest) {
			tied = append(tied, b.PlayerID)
		}
	}

	if len(tied) == 1 {
		return Outcome{Kind: OutcomeWinner, WinnerID: tied[0], Bids: bids}
	}

	if a.TiePolicy == TieSplit {
		return Outcome{
			Kind:        OutcomeTieSplit,
			TiedIDs:     tied,
			SplitCredit: float64(a.Revealed.Value()) / float64(len(tied)),
			Bids:        bids,
		}
	}

	return Outcome{Kind: OutcomeTieCarryForward, TiedIDs: tied, Bids: bids}
}

// Clear resets the bid map for the next round. The revealed card field
// is left alone.
func (a *Auction) Clear() {
	a.bids = map[string]deck.Card{}
	a.order = []string{}
	a.phase = auctionEmpty
}
