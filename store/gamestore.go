package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"blindauction/game"

	uuid "github.com/satori/go.uuid"
)

var ErrUnknownGameID = errors.New("unknown game ID")

// NewGameID constructs a game ID.
func NewGameID() string {
	return uuid.NewV4().String()
}

// GameStore holds the games running in this process. Nothing survives
// a restart.
type GameStore interface {
	FindGame(gameID string) (*game.Game, error)
	AddGame(gameID string, g *game.Game) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to game
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*game.Game{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return g, nil
}

func (s *InMemoryGameStore) AddGame(gameID string, g *game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return fmt.Errorf("game with id %s already exists", gameID)
	}
	s.games[gameID] = g
	return nil
}

// GameIDs lists the stored games in sorted order.
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{}
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
