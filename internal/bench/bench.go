// Package bench is the search throughput benchmark harness: a fixed
// suite of scenario boards searched by both search.AlphaBeta and
// search.MCTS, returning the node count and rollout count respectively.
// bench_test.go times these runs with testing.B; no per-second rate is
// computed or reported. Same
// shape as the teacher's internal/bench/bench.go (a fixed FEN suite
// searched to a fixed depth), new payload.
package bench

import (
	"context"
	"time"

	"github.com/G4mingJon4s/govo/scenario"
	"github.com/G4mingJon4s/govo/search"
)

// Case is one benchmark target: a named fixture plus the depth/budget to
// search it with.
type Case struct {
	Fixture scenario.Fixture
	Depth   uint8
	Budget  time.Duration
}

// Suite is the fixed set of cases iterated by bench_test.go's
// testing.B loop.
var Suite = []Case{
	{Fixture: mustFixture("single_stone_capture"), Depth: 4, Budget: 200 * time.Millisecond},
	{Fixture: mustFixture("ko_shape"), Depth: 3, Budget: 200 * time.Millisecond},
}

func mustFixture(name string) scenario.Fixture {
	f, ok := scenario.ByName(name)
	if !ok {
		panic("bench: unknown fixture " + name)
	}
	return f
}

// RunAlphaBeta runs one case's alpha-beta search and returns the node
// count observed.
func RunAlphaBeta(c Case) (uint64, error) {
	b, err := c.Fixture.Board()
	if err != nil {
		return 0, err
	}
	cfg := search.Config{Depth: c.Depth, Cache: search.CacheConfig{Capacity: 1 << 16}}
	_, stats := search.AlphaBeta(context.Background(), b, cfg)
	return stats.Nodes, nil
}

// RunMCTS runs one case's MCTS search and returns the total rollout
// count observed (the sum of root children's visit counts).
func RunMCTS(c Case) (uint64, error) {
	b, err := c.Fixture.Board()
	if err != nil {
		return 0, err
	}
	results := search.MCTS(context.Background(), b, search.MCTSConfig{Budget: c.Budget, Logger: search.DefaultLogger})
	var rollouts uint64
	for _, r := range results {
		rollouts += r.Visits
	}
	return rollouts, nil
}
