package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaminalder/nine-mens-morris/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrNotFound     = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNotAPlayer   = errors.New("not a player")
	ErrTooManyGames = errors.New("too many games")
)

// GameState is the in-memory state tracked per game.
type GameState struct {
	ID      string
	Game    domain.Game
	White   string
	Black   string
	Created time.Time
	Updated time.Time
}

// snapshot returns a copy that shares nothing with gs.
func (gs *GameState) snapshot() GameState {
	cp := *gs
	cp.Game = gs.Game.Clone()
	return cp
}

// SeatOf returns the color playerID sits at, or None for spectators.
func (gs *GameState) SeatOf(playerID string) domain.Color {
	switch {
	case playerID == "":
		return domain.None
	case gs.White == playerID:
		return domain.White
	case gs.Black == playerID:
		return domain.Black
	default:
		return domain.None
	}
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games and subscribers. Every game owns its own engine; the
// service mutex serialises access to all of them.
type Service struct {
	mu       sync.Mutex
	games    map[string]*GameState
	subs     map[string]map[*subscriber]struct{}
	render   func(GameState) []byte
	log      zerolog.Logger
	maxGames int
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService() *Service { return NewServiceWithRenderer(nil) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte) *Service {
	if renderer == nil {
		renderer = func(gs GameState) []byte { return nil }
	}
	return &Service{
		games:  make(map[string]*GameState),
		subs:   make(map[string]map[*subscriber]struct{}),
		render: renderer,
		log:    zerolog.Nop(),
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(gs GameState) []byte { return nil }
		return
	}
	s.render = renderer
}

// SetLogger replaces the service logger.
func (s *Service) SetLogger(l zerolog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = l.With().Str("component", "app").Logger()
}

// SetMaxGames bounds the number of live games. Zero means unbounded.
func (s *Service) SetMaxGames(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxGames = n
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return nil, ErrTooManyGames
	}
	id := uuid.NewString()
	now := time.Now()
	gs := &GameState{ID: id, Game: domain.New(), Created: now, Updated: now}
	s.games[id] = gs
	s.log.Info().Str("game", id).Msg("game created")
	cp := gs.snapshot()
	return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := gs.snapshot()
	return &cp, true
}

// Len returns the number of registered games.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// Join assigns a seat to the player if available; returns None for spectators.
// White is claimed first.
func (s *Service) Join(id, playerID string) (domain.Color, *GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return domain.None, nil, ErrNotFound
	}
	side := domain.None
	if gs.White == "" || gs.White == playerID {
		gs.White = playerID
		side = domain.White
	} else if gs.Black == "" || gs.Black == playerID {
		gs.Black = playerID
		side = domain.Black
	}
	gs.Updated = time.Now()
	s.log.Debug().Str("game", id).Str("player", playerID).Stringer("seat", side).Msg("player joined")
	cp := gs.snapshot()
	return side, &cp, nil
}

// Seat returns the color playerID plays in game id.
func (s *Service) Seat(id, playerID string) (domain.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return domain.None, ErrNotFound
	}
	return gs.SeatOf(playerID), nil
}

// Play validates the seat, applies the action, updates timestamps, and
// broadcasts. The action's player must be the caller's seat; turn order and
// game rules are left to the engine.
func (s *Service) Play(id, playerID string, a domain.Action) (*GameState, error) {
	return s.mutate(id, playerID, func(gs *GameState, seat domain.Color) error {
		if a.Player != seat {
			return ErrNotYourTurn
		}
		if err := gs.Game.Play(a); err != nil {
			s.log.Debug().Str("game", id).Stringer("action", a).Err(err).Msg("action rejected")
			return err
		}
		ev := s.log.Debug()
		if w := gs.Game.Winner(); w != domain.None {
			ev = s.log.Info().Stringer("winner", w)
		}
		ev.Str("game", id).Stringer("action", a).Stringer("phase", gs.Game.Phase()).Msg("action applied")
		return nil
	})
}

// Undo reverts the last action of game id. Either seated player may undo.
func (s *Service) Undo(id, playerID string) (*GameState, error) {
	return s.mutate(id, playerID, func(gs *GameState, seat domain.Color) error {
		if err := gs.Game.Undo(); err != nil {
			return err
		}
		s.log.Debug().Str("game", id).Stringer("by", seat).Msg("action undone")
		return nil
	})
}

// mutate runs fn on a seated player's game under the lock, then fans out the
// new state to subscribers.
func (s *Service) mutate(id, playerID string, fn func(*GameState, domain.Color) error) (*GameState, error) {
	var toDrop []*subscriber

	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	seat := gs.SeatOf(playerID)
	if seat == domain.None {
		s.mu.Unlock()
		return nil, ErrNotAPlayer
	}
	if err := fn(gs, seat); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	gs.Updated = time.Now()

	// Snapshot state and subscribers
	cp := gs.snapshot()
	subs := s.copySubsLocked(id)
	payload := s.render(cp)
	s.mu.Unlock()

	// Fan-out; drop slow subscribers by closing and marking for deletion
	for sub := range subs {
		select {
		case sub.ch <- payload:
		default:
			sub.close()
			toDrop = append(toDrop, sub)
		}
	}
	if len(toDrop) > 0 {
		s.mu.Lock()
		for _, sub := range toDrop {
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
		}
		s.mu.Unlock()
		s.log.Debug().Str("game", id).Int("dropped", len(toDrop)).Msg("dropped slow subscribers")
	}
	return &cp, nil
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(s.subs, id)
				}
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
	out := make(map[*subscriber]struct{})
	if set, ok := s.subs[id]; ok {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
