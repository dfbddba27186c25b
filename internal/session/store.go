// Package session keeps track of live carve sessions. Sessions exist only
// in memory: the service animates carving, it does not persist finished
// mazes.
package session

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mzegla/maze-carver/internal/maze"
)

var ErrNotFound = errors.New("session not found")

// Session binds a grid to the seed it was carved from. The embedded mutex
// serializes access to the grid: Step is strictly sequential, so concurrent
// drivers of the same session must take the lock around any read or step.
type Session struct {
	sync.Mutex

	ID        uuid.UUID
	Seed      uint64
	Grid      *maze.Grid
	CreatedAt time.Time
}

func newGrid(rows, cols int, seed uint64) (*maze.Grid, error) {
	return maze.New(rows, cols, rand.New(rand.NewPCG(seed, seed)))
}

// Reset rebuilds the session's grid from its recorded seed, so a reset
// session replays the exact same carve. Callers must hold the lock.
func (s *Session) Reset() {
	grid, err := newGrid(s.Grid.Rows(), s.Grid.Cols(), s.Seed)
	if err != nil {
		// Dimensions were validated at session creation.
		panic(err)
	}
	s.Grid = grid
}

// Store is a mutex-guarded registry of sessions keyed by UUID.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create builds a new grid seeded with seed and registers it under a fresh
// UUID.
func (s *Store) Create(rows, cols int, seed uint64) (*Session, error) {
	grid, err := newGrid(rows, cols, seed)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        uuid.New(),
		Seed:      seed,
		Grid:      grid,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
