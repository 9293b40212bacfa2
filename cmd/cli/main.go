package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pterm/pterm"

	"blindauction/config"
	"blindauction/deck"
	"blindauction/game"
	"blindauction/players"
	"blindauction/protocol"
	"blindauction/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	playersFlag := flag.Int("players", cfg.PlayerCount, "number of players (2 or 3)")
	tieFlag := flag.String("tie", cfg.TiePolicy, "tie policy: split or carry_forward")
	suitsFlag := flag.String("suits", cfg.Suits, "comma-separated auction suits")
	seedFlag := flag.Int64("seed", cfg.Seed, "shuffle seed (0 means time-based)")
	flag.Parse()

	cfg.PlayerCount = *playersFlag
	cfg.TiePolicy = *tieFlag
	cfg.Suits = *suitsFlag
	cfg.Seed = *seedFlag
	if err := cfg.Validate(); err != nil {
		log.Fatal(err.Error())
	}

	policy, err := cfg.ParsedTiePolicy()
	if err != nil {
		log.Fatal(err.Error())
	}
	auctionSuits, err := cfg.AuctionSuits()
	if err != nil {
		log.Fatal(err.Error())
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pterm.DefaultHeader.WithFullWidth().Println("Blind Auction")
	pterm.Info.Printfln("Tie policy: %s | Auction suits: %s", policy, cfg.Suits)
	pterm.Println()

	seats := chooseSeats(cfg)
	ps, err := buildPlayers(seats, auctionSuits, rng)
	if err != nil {
		log.Fatal(err.Error())
	}

	g, err := game.New(game.Opts{
		Players:      ps,
		AuctionSuits: auctionSuits,
		TiePolicy:    policy,
		Rand:         rng,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	gameStore := store.NewInMemoryGameStore()
	if err := gameStore.AddGame(store.NewGameID(), g); err != nil {
		log.Fatal(err.Error())
	}

	for _, p := range ps {
		pterm.Printfln("%s plays %s (%s)", p.Name(), pterm.Bold.Sprint(p.Suit()), seats[p.Name()])
	}

	for {
		event, err := g.PlayRound()
		if err != nil {
			log.Fatal(err.Error())
		}
		if event == nil {
			break
		}
		renderRound(g, *event)
	}

	renderResult(g, g.Result())
}

// chooseSeats resolves a strategy name per seat, prompting when the
// configuration leaves them unset.
func chooseSeats(cfg config.Config) map[string]string {
	names := cfg.StrategyNames()
	seats := map[string]string{}

	options := append([]string{config.HumanStrategy}, players.StrategyNames()...)
	for i := 0; i < cfg.PlayerCount; i++ {
		seatName := fmt.Sprintf("Player %d", i+1)
		if len(names) > i {
			seats[seatName] = names[i]
			continue
		}
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText(fmt.Sprintf("Who plays seat %d?", i+1)).
			Show()
		if err != nil {
			choice = "random"
		}
		seats[seatName] = choice
	}
	return seats
}

// buildPlayers assigns a random non-auction suit to each seat and
// wires up its strategy.
func buildPlayers(seats map[string]string, auctionSuits []deck.Suit, rng *rand.Rand) (players.Players, error) {
	available := []deck.Suit{}
	for _, s := range []deck.Suit{deck.Clubs, deck.Diamonds, deck.Hearts, deck.Spades} {
		reserved := false
		for _, as := range auctionSuits {
			if s == as {
				reserved = true
			}
		}
		if !reserved {
			available = append(available, s)
		}
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	ps := players.Players{}
	i := 0
	for seat := 1; seat <= len(seats); seat++ {
		seatName := fmt.Sprintf("Player %d", seat)
		strategyName := seats[seatName]

		var strategy players.Strategy
		if strategyName == config.HumanStrategy {
			strategy = &humanStrategy{name: seatName}
		} else {
			var err error
			strategy, err = players.NewStrategy(strategyName, rng)
			if err != nil {
				return nil, err
			}
		}

		ps = append(ps, players.NewPlayer(seatName, available[i], strategy))
		i++
	}
	return ps, nil
}

func renderRound(g *game.Game, event protocol.RoundEvent) {
	pterm.DefaultSection.Printfln("Round %d", event.Round)
	pterm.Printfln("Auction card: %s (%d points)", pterm.Bold.Sprint(event.Revealed), event.Revealed.Value())

	for _, b := range event.Bids {
		pterm.Printfln("  %s bids %s", b.Name, b.Card)
	}

	switch event.Outcome {
	case protocol.OutcomeWinner:
		if p, ok := g.Players.Find(event.WinnerID); ok {
			pterm.Success.Printfln("%s wins the %s", p.Name(), event.Revealed)
		}
	case protocol.OutcomeTieSplit:
		pterm.Info.Printfln("Tie! %s split %.2f points each", tiedNames(g, event.TiedIDs), event.SplitCredit)
	case protocol.OutcomeTieCarry:
		pterm.Info.Printfln("Tie! The %s carries forward", event.Revealed)
	case protocol.OutcomeInsufficient:
		pterm.Warning.Printfln("Only one bid placed; the %s goes back up for auction", event.Revealed)
	case protocol.OutcomeNoBids:
		pterm.Warning.Printfln("No bids; the %s goes back up for auction", event.Revealed)
	}

	scoreLine := ""
	for _, p := range g.Players {
		scoreLine += fmt.Sprintf("%s: %.2f  ", p.Name(), event.Scores[p.ID()])
	}
	pterm.Printfln("Scores: %s", scoreLine)
}

func renderResult(g *game.Game, result protocol.GameEvent) {
	pterm.DefaultSection.Println("Final scores")

	rows := [][]string{{"Player", "Suit", "Score", "Won cards"}}
	for _, p := range g.Players {
		rows = append(rows, []string{
			p.Name(),
			p.Suit().String(),
			fmt.Sprintf("%.2f", p.Score()),
			fmt.Sprintf("%d", len(p.Won)),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		log.Print(err.Error())
	}

	if result.Draw {
		pterm.Info.Printfln("Draw between %s after %d rounds", tiedNames(g, result.WinnerIDs), result.Rounds)
		return
	}
	if p, ok := g.Players.Find(result.WinnerIDs[0]); ok {
		pterm.Success.Printfln("%s wins with %.2f points after %d rounds", p.Name(), p.Score(), result.Rounds)
	}
}

func tiedNames(g *game.Game, ids []string) string {
	names := ""
	for i, id := range ids {
		if p, ok := g.Players.Find(id); ok {
			if i > 0 {
				names += " and "
			}
			names += p.Name()
		}
	}
	return names
}
