package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"blindauction/deck"
	"blindauction/protocol"
)

const passOption = "Pass (no bid)"

// humanStrategy asks a person which card to bid. It satisfies the same
// contract as the heuristics: it only ever returns a card from the
// hand, and passing is allowed.
type humanStrategy struct {
	name string
}

func (h *humanStrategy) Choose(revealed deck.Card, hand deck.Deck, snap protocol.Snapshot) (deck.Card, bool) {
	if len(hand) == 0 {
		return deck.Card{}, false
	}

	sorted := make(deck.Deck, len(hand))
	copy(sorted, hand)
	sorted.Sort()

	options := []string{}
	for _, c := range sorted {
		options = append(options, fmt.Sprintf("%s (%d)", c, c.Value()))
	}
	options = append(options, passOption)

	pterm.Println()
	pterm.Printfln("%s, the auction card is %s (%d points)",
		pterm.Bold.Sprint(h.name), pterm.Bold.Sprint(revealed), revealed.Value())

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(len(options)).
		WithDefaultText("Choose a card to bid").
		Show()
	if err != nil {
		return deck.Card{}, false
	}

	for i, option := range options {
		if option == choice && option != passOption {
			return sorted[i], true
		}
	}
	return deck.Card{}, false
}
