package game

import (
	"testing"

	"blindauction/deck"
	utils "blindauction/internal"

	"github.com/stretchr/testify/assert"
)

func TestParseTiePolicy(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected TiePolicy
		wantErr  bool
	}{
		{"split", "split", TieSplit, false},
		{"carry forward", "carry_forward", TieCarryForward, false},
		{"unknown", "sudden_death", 0, true},
		{"empty", "", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseTiePolicy(c.input)
			if c.wantErr {
				utils.AssertErrored(t, err)
				return
			}
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, got, c.expected)
		})
	}
}

func TestPlaceBid(t *testing.T) {
	t.Run("rejects bids before the auction starts", func(t *testing.T) {
		a := NewAuction(TieSplit)
		assert.False(t, a.PlaceBid("p1", deck.NewCard(deck.King, deck.Hearts)))
	})

	t.Run("rejects a second bid from the same player", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(deck.NewCard(deck.Ten, deck.Diamonds), 1)

		utils.AssertTrue(t, a.PlaceBid("p1", deck.NewCard(deck.King, deck.Hearts)))
		assert.False(t, a.PlaceBid("p1", deck.NewCard(deck.Ace, deck.Hearts)))

		bids := a.Bids()
		utils.AssertEqual(t, len(bids), 1)
		utils.AssertEqual(t, bids[0].Card, deck.NewCard(deck.King, deck.Hearts))
	})

	t.Run("keeps placement order", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(deck.NewCard(deck.Ten, deck.Diamonds), 1)
		a.PlaceBid("p2", deck.NewCard(deck.Two, deck.Clubs))
		a.PlaceBid("p1", deck.NewCard(deck.Three, deck.Hearts))

		bids := a.Bids()
		utils.AssertEqual(t, bids[0].PlayerID, "p2")
		utils.AssertEqual(t, bids[1].PlayerID, "p1")
	})
}

func TestResolve(t *testing.T) {
	revealed := deck.NewCard(deck.Ten, deck.Diamonds)

	t.Run("no bids", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(revealed, 1)
		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeNoBids)
	})

	t.Run("a single bid cannot make an auction", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(revealed, 1)
		a.PlaceBid("p1", deck.NewCard(deck.Ace, deck.Hearts))

		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeInsufficient)
		utils.AssertEqual(t, outcome.WinnerID, "")
	})

	t.Run("highest bid wins", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(revealed, 1)
		a.PlaceBid("p1", deck.NewCard(deck.Four, deck.Hearts))
		a.PlaceBid("p2", deck.NewCard(deck.Jack, deck.Clubs))
		a.PlaceBid("p3", deck.NewCard(deck.Nine, deck.Spades))

		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeWinner)
		utils.AssertEqual(t, outcome.WinnerID, "p2")
		utils.AssertEqual(t, len(outcome.Bids), 3)
	})

	t.Run("ties are by rank regardless of suit", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(deck.NewCard(deck.Ace, deck.Diamonds), 1)
		a.PlaceBid("p1", deck.NewCard(deck.King, deck.Hearts))
		a.PlaceBid("p2", deck.NewCard(deck.King, deck.Clubs))

		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeTieSplit)
		utils.AssertDeepEqual(t, outcome.TiedIDs, []string{"p1", "p2"})
		utils.AssertEqual(t, outcome.SplitCredit, 7.0)
	})

	t.Run("split credits always total the card value", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(deck.NewCard(deck.Ten, deck.Diamonds), 1)
		a.PlaceBid("p1", deck.NewCard(deck.Queen, deck.Hearts))
		a.PlaceBid("p2", deck.NewCard(deck.Queen, deck.Clubs))
		a.PlaceBid("p3", deck.NewCard(deck.Queen, deck.Spades))

		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeTieSplit)
		utils.AssertEqual(t, len(outcome.TiedIDs), 3)
		assert.InDelta(t, 10.0, outcome.SplitCredit*float64(len(outcome.TiedIDs)), 1e-9)
	})

	t.Run("a lower tie does not count", func(t *testing.T) {
		a := NewAuction(TieSplit)
		a.Start(revealed, 1)
		a.PlaceBid("p1", deck.NewCard(deck.Five, deck.Hearts))
		a.PlaceBid("p2", deck.NewCard(deck.Five, deck.Clubs))
		a.PlaceBid("p3", deck.NewCard(deck.Eight, deck.Spades))

		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeWinner)
		utils.AssertEqual(t, outcome.WinnerID, "p3")
	})

	t.Run("carry-forward policy defers the card", func(t *testing.T) {
		a := NewAuction(TieCarryForward)
		a.Start(revealed, 1)
		a.PlaceBid("p1", deck.NewCard(deck.King, deck.Hearts))
		a.PlaceBid("p2", deck.NewCard(deck.King, deck.Clubs))

		outcome := a.Resolve()
		utils.AssertEqual(t, outcome.Kind, OutcomeTieCarryForward)
		utils.AssertEqual(t, outcome.SplitCredit, 0.0)
	})
}

func TestClear(t *testing.T) {
	a := NewAuction(TieSplit)
	a.Start(deck.NewCard(deck.Ten, deck.Diamonds), 1)
	a.PlaceBid("p1", deck.NewCard(deck.King, deck.Hearts))
	a.Resolve()
	a.Clear()

	utils.AssertEqual(t, len(a.Bids()), 0)
	// revealed card survives a clear
	utils.AssertEqual(t, a.Revealed, deck.NewCard(deck.Ten, deck.Diamonds))
	// but bidding only reopens on Start
	assert.False(t, a.PlaceBid("p1", deck.NewCard(deck.Two, deck.Hearts)))
}
