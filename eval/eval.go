// Package eval provides the abstract game interface search depends on,
// plus the concrete area-style scoring heuristic for a board.Board.
package eval

import "github.com/G4mingJon4s/govo/board"

// Game is the abstract interface the search package plays against: a
// node that can be hashed, queried for terminal/maximizing status,
// enumerated for moves, and mutated with undo. board.Board satisfies
// this role via the NewGame adapter, keeping search itself ignorant of
// chains, tiles and the undo log.
type Game interface {
	Hash() uint64
	Terminal() bool
	Maximizing() bool
	LegalMoves() []board.Move
	Play(board.Move) error
	Undo() error
	Score() float64
}

// boardGame adapts *board.Board to Game.
type boardGame struct {
	b *board.Board
}

// NewGame adapts a board.Board for use by the search package.
func NewGame(b *board.Board) Game {
	return &boardGame{b: b}
}

func (g *boardGame) Hash() uint64 { return g.b.Hash() }

func (g *boardGame) Terminal() bool { return g.b.Turn() == board.TurnNone }

func (g *boardGame) Maximizing() bool { return g.b.Turn() == board.TurnBlack }

func (g *boardGame) LegalMoves() []board.Move { return g.b.LegalMoves() }

func (g *boardGame) Play(m board.Move) error { return g.b.ApplyMove(m) }

func (g *boardGame) Undo() error { return g.b.UndoMove() }

func (g *boardGame) Score() float64 { return Score(g.b) }

// Score implements the area-style heuristic of spec §4.2: positive
// favors Black. Every non-Dead chain contributes: stone chains by their
// size (signed by color), Free chains only when every adjacent non-Dead
// position shares a single stone color (pure territory); mixed or
// stoneless boundaries contribute zero.
func Score(b *board.Board) float64 {
	score := -b.Komi()
	b.Chains(func(c *board.Chain) {
		switch c.Tile {
		case board.Black:
			score += float64(c.Size())
		case board.White:
			score -= float64(c.Size())
		case board.Free:
			score += territoryContribution(b, c)
		}
	})
	return score
}

func territoryContribution(b *board.Board, c *board.Chain) float64 {
	var owner board.Tile
	seen := false
	for p := range c.Adjacent {
		t := b.Tile(p)
		if t == board.Dead {
			continue
		}
		if !seen {
			owner = t
			seen = true
			continue
		}
		if t != owner {
			return 0
		}
	}
	if !seen {
		return 0
	}
	switch owner {
	case board.Black:
		return float64(c.Size())
	case board.White:
		return -float64(c.Size())
	default:
		return 0
	}
}
