package search

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/G4mingJon4s/govo/board"
	"github.com/G4mingJon4s/govo/eval"
)

// UCB1C is the exploration constant used by node selection, per spec
// §4.4 ("UCB1_C ≈ 1.1").
const UCB1C = 1.1

// MCTSConfig bounds one Monte Carlo tree search by wall-clock budget.
type MCTSConfig struct {
	Budget time.Duration
	Rand   *rand.Rand // nil uses a fresh source seeded with 1 on every call
	Logger Logger
}

func (c MCTSConfig) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(1))
}

func (c MCTSConfig) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NopLogger
}

// mctsNode is one tree node: per spec §4.4, {children, maximizing,
// total, visits}. Expansion happens on a node's second visit (the
// first visit only simulates), mirroring brensch-aisnake/mcts.go and
// janpfeifer-hiveGo's cache-node shape, simplified to plain UCB1 (no
// policy network, per spec's Non-goals).
type mctsNode struct {
	move       board.Move // the move that produced this node from its parent
	maximizing bool
	total      float64
	visits     uint64
	children   []*mctsNode
	expanded   bool
}

// MCTSResult reports one root move's visit count and the total of the
// values backed up through it. Visits is an unsigned count: it is not
// signed by the side to move.
type MCTSResult struct {
	Move   board.Move
	Visits uint64
	Total  float64
}

// MCTS runs spec §4.4's time-budgeted Monte Carlo tree search from b's
// current position and returns per-root-move visit counts. The budget is
// checked only between iterations (spec §5 "no preemption
// mid-iteration"), grounded on the teacher's engine/time_control.go
// elapsed/soft-limit pattern repurposed from iterative deepening to
// MCTS's wall-clock cutoff.
func MCTS(ctx context.Context, b *board.Board, cfg MCTSConfig) []MCTSResult {
	logger := cfg.logger()
	logger.BeginSearch(ctx, 0)

	rng := cfg.rng()
	root := &mctsNode{maximizing: b.Turn() == board.TurnBlack}
	g := eval.NewGame(b.Clone())

	deadline := time.Now().Add(cfg.Budget)
	for time.Now().Before(deadline) {
		runIteration(g, root, rng)
	}

	out := make([]MCTSResult, 0, len(root.children))
	var best board.Move
	var bestVisits uint64
	for _, c := range root.children {
		out = append(out, MCTSResult{Move: c.move, Visits: c.visits, Total: c.total})
		if c.visits > bestVisits {
			bestVisits = c.visits
			best = c.move
		}
	}
	logger.EndSearch(ctx, Stats{}, best, float64(bestVisits))
	return out
}

// runIteration performs one select/expand/simulate/backpropagate pass
// starting at root, mutating g in place (play down, undo back up) so no
// board is cloned per iteration.
func runIteration(g eval.Game, root *mctsNode, rng *rand.Rand) {
	path := []*mctsNode{root}
	node := root

	for node.expanded && len(node.children) > 0 {
		next := selectChild(node)
		if err := g.Play(next.move); err != nil {
			// A previously-legal child can become illegal after an
			// intervening capture/ko elsewhere in the tree; treat it as
			// a dead end for this iteration.
			break
		}
		node = next
		path = append(path, node)
	}

	if !node.expanded && node.visits > 0 && !g.Terminal() {
		expand(g, node)
		if len(node.children) > 0 {
			next := node.children[rng.Intn(len(node.children))]
			if err := g.Play(next.move); err == nil {
				node = next
				path = append(path, node)
			}
		}
	}

	result := simulate(g, rng)

	for i := len(path) - 1; i >= 1; i-- {
		_ = g.Undo()
	}
	for _, n := range path {
		n.visits++
		n.total += result
	}
}

// expand probes each of g.LegalMoves() via Play/Undo and keeps only
// those that actually succeed: board.LegalMoves() is an advisory filter
// (board/legal.go) that can offer a move ApplyMove rejects (ko), and
// a child built from such a move would sit at zero
// visits forever — selectChild always picks an unvisited child first,
// so it would be reselected and immediately fail on every subsequent
// visit to node, starving its siblings of the rest of the budget.
func expand(g eval.Game, node *mctsNode) {
	node.expanded = true
	for _, m := range g.LegalMoves() {
		if err := g.Play(m); err != nil {
			continue
		}
		maximizing := g.Maximizing()
		_ = g.Undo()
		node.children = append(node.children, &mctsNode{move: m, maximizing: maximizing})
	}
}

// selectChild applies UCB1 with a sigmoid-squashed exploitation term, as
// specified in §4.4: unvisited children are selected first.
func selectChild(node *mctsNode) *mctsNode {
	var chosen *mctsNode
	best := math.Inf(-1)
	for _, c := range node.children {
		if c.visits == 0 {
			return c
		}
		exploit := sigmoid(c.total / float64(c.visits))
		if !c.maximizing {
			exploit = 1 - exploit
		}
		explore := UCB1C * math.Sqrt(math.Log(float64(node.visits))/float64(c.visits))
		score := exploit + explore
		if score > best {
			best = score
			chosen = c
		}
	}
	return chosen
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// simulate plays uniformly random moves to a terminal position and
// returns its score, undoing every move it played before returning.
func simulate(g eval.Game, rng *rand.Rand) float64 {
	depth := 0
	for !g.Terminal() {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]
		if err := g.Play(m); err != nil {
			continue
		}
		depth++
	}
	score := g.Score()
	for i := 0; i < depth; i++ {
		_ = g.Undo()
	}
	return score
}
