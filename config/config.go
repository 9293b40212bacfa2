package config

import (
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"

	"blindauction/deck"
	"blindauction/game"
	"blindauction/players"
)

// HumanStrategy is the reserved strategy name for a seat controlled by
// a person rather than a registered heuristic. The presentation layer
// supplies the implementation.
const HumanStrategy = "human"

// Config is the game configuration, read from the environment.
// Strategies is a comma-separated list of one name per seat; an empty
// value leaves seat selection to the presentation layer.
type Config struct {
	PlayerCount int    `env:"AUCTION_PLAYERS,default=2"`
	TiePolicy   string `env:"AUCTION_TIE_POLICY,default=split"`
	Suits       string `env:"AUCTION_SUITS,default=Diamonds"`
	Strategies  string `env:"AUCTION_STRATEGIES,default="`
	Seed        int64  `env:"AUCTION_SEED,default=0"`
}

// Load reads and validates configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configuration the game cannot start with.
func (c Config) Validate() error {
	if c.PlayerCount < 2 || c.PlayerCount > 3 {
		return fmt.Errorf("player count must be 2 or 3, got %d", c.PlayerCount)
	}
	if _, err := c.ParsedTiePolicy(); err != nil {
		return err
	}
	suits, err := c.AuctionSuits()
	if err != nil {
		return err
	}
	if c.PlayerCount+len(suits) > 4 {
		return fmt.Errorf("%d auction suits leave too few suits for %d players", len(suits), c.PlayerCount)
	}

	for _, name := range c.StrategyNames() {
		if name == HumanStrategy {
			continue
		}
		if _, err := players.NewStrategy(name, nil); err != nil {
			return err
		}
	}
	if n := len(c.StrategyNames()); n != 0 && n != c.PlayerCount {
		return fmt.Errorf("expected %d strategies, got %d", c.PlayerCount, n)
	}

	return nil
}

// ParsedTiePolicy resolves the configured tie policy.
func (c Config) ParsedTiePolicy() (game.TiePolicy, error) {
	return game.ParseTiePolicy(c.TiePolicy)
}

// AuctionSuits resolves the configured auction suit names.
func (c Config) AuctionSuits() ([]deck.Suit, error) {
	suits := []deck.Suit{}
	for _, name := range strings.Split(c.Suits, ",") {
		s, err := deck.ParseSuit(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		suits = append(suits, s)
	}
	return suits, nil
}

// StrategyNames splits the per-seat strategy list. Empty entries are
// dropped.
func (c Config) StrategyNames() []string {
	names := []string{}
	for _, name := range strings.Split(c.Strategies, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
