package protocol

import (
	"blindauction/deck"
)

// PlayerInfo identifies a participant.
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// Outcome names for a resolved round.
const (
	OutcomeNoBids       = "no_bids"
	OutcomeInsufficient = "insufficient"
	OutcomeWinner       = "winner"
	OutcomeTieSplit     = "tie_split"
	OutcomeTieCarry     = "tie_carry_forward"
)

// Bid records one participant's sealed bid, in the order bids were
// collected.
type Bid struct {
	PlayerID string    `json:"playerID"`
	Name     string    `json:"name"`
	Card     deck.Card `json:"card"`
}

// RoundEvent is the plain-data record of a resolved round, emitted by
// the game for presentation layers to format however they like.
type RoundEvent struct {
	Round       int                `json:"round"`
	Revealed    deck.Card          `json:"revealed"`
	Bids        []Bid              `json:"bids"`
	Outcome     string             `json:"outcome"`
	WinnerID    string             `json:"winnerID,omitempty"`
	TiedIDs     []string           `json:"tiedIDs,omitempty"`
	SplitCredit float64            `json:"splitCredit,omitempty"`
	Scores      map[string]float64 `json:"scores"`
}

// GameEvent is the end-of-game record.
type GameEvent struct {
	Rounds      int                `json:"rounds"`
	FinalScores map[string]float64 `json:"finalScores"`
	WinnerIDs   []string           `json:"winnerIDs"`
	Draw        bool               `json:"draw"`
}
