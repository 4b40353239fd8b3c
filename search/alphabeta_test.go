package search

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/G4mingJon4s/govo/board"
	"github.com/G4mingJon4s/govo/eval"
)

// minimax is a reference depth-limited negamax without alpha-beta
// pruning or a transposition table, used only by Scenario F to check
// that pruning and caching never change the final score.
func minimax(g eval.Game, depth uint8) float64 {
	if depth == 0 || g.Terminal() {
		sign := 1.0
		if !g.Maximizing() {
			sign = -1.0
		}
		return sign * g.Score()
	}
	best := math.Inf(-1)
	for _, m := range g.LegalMoves() {
		if err := g.Play(m); err != nil {
			continue
		}
		score := -minimax(g, depth-1)
		_ = g.Undo()
		if score > best {
			best = score
		}
	}
	return best
}

func rootScores(results []RootResult) map[board.Move]float64 {
	out := make(map[board.Move]float64, len(results))
	for _, r := range results {
		out[r.Move] = r.Score
	}
	return out
}

// Scenario F: on a 5x5 board at depth 3, per-root-move scores from
// alpha-beta (cache on and off) must equal scores from a reference
// depth-limited minimax.
func TestScenarioFAlphaBetaEqualsMinimax(t *testing.T) {
	b := board.New(5, board.TurnBlack, 0.5)
	if err := b.ApplyMove(board.Place(12)); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := b.ApplyMove(board.Place(6)); err != nil {
		t.Fatalf("setup: %v", err)
	}

	const depth = 3
	reference := make(map[board.Move]float64)
	for _, m := range b.LegalMoves() {
		clone := b.Clone()
		if err := clone.ApplyMove(m); err != nil {
			continue
		}
		reference[m] = -minimax(eval.NewGame(clone), depth-1)
	}

	for _, cache := range []CacheConfig{{Disabled: true}, {Capacity: 4096}} {
		cfg := Config{Depth: depth, Cache: cache}
		results, _ := AlphaBeta(context.Background(), b, cfg)
		got := rootScores(results)
		if len(got) != len(reference) {
			t.Fatalf("cache=%+v: got %d root results, want %d", cache, len(got), len(reference))
		}
		for m, want := range reference {
			g, ok := got[m]
			if !ok {
				t.Fatalf("cache=%+v: missing root move %v", cache, m)
			}
			if math.Abs(g-want) > 1e-9 {
				t.Fatalf("cache=%+v: move %v score = %v, want %v", cache, m, g, want)
			}
		}
	}
}

func TestAlphaBetaDeterministicMoveSet(t *testing.T) {
	b := board.New(3, board.TurnBlack, 0.5)
	results, _ := AlphaBeta(context.Background(), b, Config{Depth: 2, Cache: CacheConfig{Capacity: 1024}})
	moves := make([]string, 0, len(results))
	for _, r := range results {
		moves = append(moves, r.Move.String())
	}
	sort.Strings(moves)
	want := len(b.LegalMoves())
	if len(moves) != want {
		t.Fatalf("got %d root results, want %d", len(moves), want)
	}
}

func TestAlphaBetaStatsRecordsNodes(t *testing.T) {
	b := board.New(3, board.TurnBlack, 0.5)
	_, stats := AlphaBeta(context.Background(), b, Config{Depth: 2, Cache: CacheConfig{Capacity: 1024}})
	if stats.Nodes == 0 {
		t.Fatal("expected at least one node to be recorded")
	}
}
