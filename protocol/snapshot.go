package protocol

// PlayerState is the public view of a participant: no hand contents,
// only the card count.
type PlayerState struct {
	PlayerID  string  `json:"playerID"`
	Name      string  `json:"name"`
	Suit      string  `json:"suit"`
	CardsLeft int     `json:"cardsLeft"`
	Score     float64 `json:"score"`
}

// Snapshot is the read-only game state passed by value into each
// strategy call. It never includes the current round's bids, so no
// strategy can observe another's bid before resolution.
type Snapshot struct {
	Round   int           `json:"round"`
	Players []PlayerState `json:"players"`
	History []RoundEvent  `json:"history"`
}
