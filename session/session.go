// Package session is the process-wide, id-keyed map of live boards
// (spec §4.5/§5/§7): create/get/list/delete, move application with
// eval-cache invalidation, and goroutine-offloaded evaluation.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/G4mingJon4s/govo/board"
	"github.com/G4mingJon4s/govo/eval"
	"github.com/G4mingJon4s/govo/search"
)

// Error taxonomy mapping 1:1 to spec §6/§7: callers (e.g. cmd/govo) use
// errors.Is against these to classify a failure into one of the four
// buckets below.
var (
	ErrNotFound    = errors.New("session: not found")
	ErrIllegalMove = errors.New("session: illegal move")
	ErrBadRequest  = errors.New("session: bad request")
	ErrInternal    = errors.New("session: internal error")
)

// MoveScore is one root move's searched evaluation, the unit EvalCache
// stores.
type MoveScore struct {
	Move  board.Move
	Score float64
}

// EvalCache holds the last search's results for a session, invalidated
// (niled out) by any mutating operation (spec §4.5).
type EvalCache struct {
	Elapsed time.Duration
	Moves   []MoveScore
}

// Session is one live analyzed position plus its search configuration
// and cached evaluation.
type Session struct {
	ID        uint64
	Board     *board.Board
	Search    search.Config
	EvalCache *EvalCache

	mu sync.Mutex // serializes Evaluate calls against this one session
}

// copy returns a deep, read-only snapshot (spec §4.5): Board is cloned
// so a concurrent ApplyMove/Undo mutating the live session's chain
// arena can never race with, or invalidate, a caller's snapshot.
func (s *Session) copy() *Session {
	return &Session{
		ID:        s.ID,
		Board:     s.Board.Clone(),
		Search:    s.Search,
		EvalCache: s.EvalCache,
	}
}

// Store is the process-wide session map, guarded by a single mutex
// (spec §5 "(3) The session map"): values are copied out on Get, while
// ApplyMove, Undo and Evaluate mutate the stored session in place under
// that session's own mutex rather than the map's. There is no Update
// operation that stores a modified copy back. Grounded on the teacher's
// sync.Mutex-guarded active search handle generalized to one handle per
// session.
type Store struct {
	mu      sync.Mutex
	nextID  uint64
	entries map[uint64]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{entries: make(map[uint64]*Session)}
}

// Create starts a new session from a board representation and returns
// its id.
func (st *Store) Create(rep string, size int, turn board.Turn, komi float64, cfg search.Config) (uint64, error) {
	b, err := board.FromRepresentation(rep, size, turn, komi)
	if err != nil {
		return 0, errors.Wrap(ErrBadRequest, err.Error())
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextID++
	id := st.nextID
	st.entries[id] = &Session{ID: id, Board: b, Search: cfg}
	return id, nil
}

// Get returns a deep copy of the session for id.
func (st *Store) Get(id uint64) (*Session, error) {
	st.mu.Lock()
	s, ok := st.entries[id]
	st.mu.Unlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "session %d", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copy(), nil
}

// Delete removes a session, or returns ErrNotFound if the session does
// not exist.
func (st *Store) Delete(id uint64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.entries[id]; !ok {
		return errors.Wrapf(ErrNotFound, "session %d", id)
	}
	delete(st.entries, id)
	return nil
}

// List returns every live session id.
func (st *Store) List() []uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	ids := make([]uint64, 0, len(st.entries))
	for id := range st.entries {
		ids = append(ids, id)
	}
	return ids
}

func (st *Store) find(id uint64) (*Session, error) {
	st.mu.Lock()
	s, ok := st.entries[id]
	st.mu.Unlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "session %d", id)
	}
	return s, nil
}

// ApplyMove plays m on session id's board and invalidates its eval
// cache.
func (st *Store) ApplyMove(id uint64, m board.Move) error {
	s, err := st.find(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Board.ApplyMove(m); err != nil {
		return errors.Wrapf(ErrIllegalMove, "session %d: %v", id, err)
	}
	s.EvalCache = nil
	return nil
}

// Undo pops the last move on session id's board and invalidates its
// eval cache.
func (st *Store) Undo(id uint64) error {
	s, err := st.find(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Board.UndoMove(); err != nil {
		return errors.Wrapf(ErrIllegalMove, "session %d: %v", id, err)
	}
	s.EvalCache = nil
	return nil
}

// Evaluate returns session id's cached evaluation if present, otherwise
// runs the configured alpha-beta search off a spawned goroutine (spec §5
// "offloaded to a blocking worker"), under a per-session lock so only
// one search runs per session at a time; other sessions remain fully
// concurrent.
func (st *Store) Evaluate(ctx context.Context, id uint64) (*EvalCache, error) {
	s, err := st.find(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.EvalCache != nil {
		return s.EvalCache, nil
	}

	type result struct {
		cache *EvalCache
	}
	done := make(chan result, 1)
	go func() {
		start := time.Now()
		results, _ := search.AlphaBeta(ctx, s.Board, s.Search)
		moves := make([]MoveScore, len(results))
		for i, r := range results {
			moves[i] = MoveScore{Move: r.Move, Score: r.Score}
		}
		done <- result{cache: &EvalCache{Elapsed: time.Since(start), Moves: moves}}
	}()

	r := <-done
	s.EvalCache = r.cache
	return s.EvalCache, nil
}

// Score is a convenience wrapper around eval.Score for session id's
// current board, bypassing search entirely.
func (st *Store) Score(id uint64) (float64, error) {
	s, err := st.find(id)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return eval.Score(s.Board), nil
}
