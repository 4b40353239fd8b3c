package search

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/G4mingJon4s/govo/board"
	"github.com/G4mingJon4s/govo/eval"
)

// Config selects a search's depth, transposition table and parallelism,
// per spec §4.3 and §6.
type Config struct {
	Depth uint8
	Cache CacheConfig
	// Threads caps the number of concurrently-dispatched root moves.
	// Threads<=0 defaults to half of runtime.NumCPU() (at least 1),
	// grounded on blunext-chess's defaultNumOfCPU = runtime.NumCPU()/2.
	Threads int
	Logger  Logger
}

func (c Config) threads() int {
	if c.Threads > 0 {
		return c.Threads
	}
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

func (c Config) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NopLogger
}

// RootResult is one root move's searched score.
type RootResult struct {
	Move  board.Move
	Score float64
}

// AlphaBeta runs the spec §4.3 root dispatch: one goroutine per legal
// root move, each owning a clone of b, searched to cfg.Depth under a
// shared transposition table. Ordering of the returned slice is
// unspecified (spec §5 "Ordering guarantees").
func AlphaBeta(ctx context.Context, b *board.Board, cfg Config) ([]RootResult, Stats) {
	logger := cfg.logger()
	logger.BeginSearch(ctx, cfg.Depth)

	tt := NewTable(cfg.Cache)
	stats := &Stats{}
	moves := b.LegalMoves()

	sem := make(chan struct{}, cfg.threads())
	results := make(chan RootResult, len(moves))
	var wg sync.WaitGroup

	for _, m := range moves {
		m := m
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			clone := b.Clone()
			if err := clone.ApplyMove(m); err != nil {
				// A move LegalMoves() offered but ApplyMove rejects (ko)
				// contributes no result: it simply isn't a legal root
				// move after all.
				return
			}
			g := eval.NewGame(clone)
			score := -alphaBeta(g, tt, stats, cfg.Depth-1, math.Inf(-1), math.Inf(1))
			results <- RootResult{Move: m, Score: score}
		}()
	}

	wg.Wait()
	close(results)

	out := make([]RootResult, 0, len(moves))
	var best board.Move
	bestScore := math.Inf(-1)
	for r := range results {
		out = append(out, r)
		if r.Score > bestScore {
			bestScore = r.Score
			best = r.Move
		}
	}
	logger.EndSearch(ctx, *stats, best, bestScore)
	return out, *stats
}

// alphaBeta is the fail-soft negamax recursion of spec §4.3: probe the
// table, recurse over legal moves with undo, classify and store the
// result. Grounded on herohde-morlock's pkg/search/alphabeta.go
// recursion shape and engine/hash_table.go's bound vocabulary.
func alphaBeta(g eval.Game, tt *Table, stats *Stats, depth uint8, alpha, beta float64) float64 {
	stats.recordNode()
	key := g.Hash()
	originalAlpha := alpha

	var ttBest board.Move
	hasTTBest := false
	if e, ok := tt.probe(key); ok {
		stats.recordHit()
		if e.depth >= depth {
			switch e.bound {
			case Exact:
				return e.value
			case LowerBound:
				if e.value > alpha {
					alpha = e.value
				}
			case UpperBound:
				if e.value < beta {
					beta = e.value
				}
			}
			if alpha >= beta {
				return e.value
			}
		}
		if e.hasBest {
			ttBest = e.best
			hasTTBest = true
		}
	} else {
		stats.recordMiss()
	}

	if depth == 0 || g.Terminal() {
		sign := 1.0
		if !g.Maximizing() {
			sign = -1.0
		}
		return sign * g.Score()
	}

	moves := orderMoves(g.LegalMoves(), ttBest, hasTTBest)
	best := math.Inf(-1)
	var bestMove board.Move
	hasBestMove := false

	for _, m := range moves {
		if err := g.Play(m); err != nil {
			continue
		}
		score := -alphaBeta(g, tt, stats, depth-1, -beta, -alpha)
		_ = g.Undo()

		if score > best {
			best = score
			bestMove = m
			hasBestMove = true
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	bound := Exact
	if best <= originalAlpha {
		bound = UpperBound
	} else if best >= beta {
		bound = LowerBound
	}
	tt.store(key, entry{depth: depth, value: best, bound: bound, best: bestMove, hasBest: hasBestMove})
	return best
}

// orderMoves puts the transposition table's best move first, if any —
// a non-functional accelerator (it never changes the final score) on
// top of the fail-soft cutoff semantics, grounded on the teacher's
// engine/move_ordering.go hash-move-first scheme.
func orderMoves(moves []board.Move, ttBest board.Move, hasTTBest bool) []board.Move {
	if !hasTTBest {
		return moves
	}
	idx := -1
	for i, m := range moves {
		if m.Equals(ttBest) {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return moves
	}
	ordered := make([]board.Move, 0, len(moves))
	ordered = append(ordered, moves[idx])
	ordered = append(ordered, moves[:idx]...)
	ordered = append(ordered, moves[idx+1:]...)
	return ordered
}
