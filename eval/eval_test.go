package eval

import (
	"testing"

	"github.com/G4mingJon4s/govo/board"
)

// Scenario D (score sign): an empty board scores -komi; after Black
// plays center, the sign of the komi term and the stone term must hold.
func TestScenarioDScoreSign(t *testing.T) {
	b := board.New(5, board.TurnBlack, 6.5)
	if got := Score(b); got != -6.5 {
		t.Fatalf("Score() = %v, want -6.5", got)
	}
	if err := b.ApplyMove(board.Place(12)); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if got := Score(b); got <= -6.5 {
		t.Fatalf("Score() = %v, want > -6.5 after Black plays a stone", got)
	}
}

func TestScoreStoneCounting(t *testing.T) {
	rep := "XXO" +
		"X.O" +
		"..."
	b, err := board.FromRepresentation(rep, 3, board.TurnBlack, 0)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	// 3 black stones, 2 white stones, komi 0: stone term is +3-2=+1.
	// The Free region at the bottom touches both colors (mixed
	// boundary) so it contributes 0.
	if got := Score(b); got != 1 {
		t.Fatalf("Score() = %v, want 1", got)
	}
}

func TestScoreTerritoryAttribution(t *testing.T) {
	rep := "XX." +
		"XX." +
		"..."
	b, err := board.FromRepresentation(rep, 3, board.TurnBlack, 0)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	// 4 black stones; the entire remaining Free region borders only
	// Black, so it's pure Black territory: 4 + 5 = 9.
	if got := Score(b); got != 9 {
		t.Fatalf("Score() = %v, want 9", got)
	}
}

func TestScoreDeadTileIgnored(t *testing.T) {
	rep := "X#." +
		"###" +
		"###"
	b, err := board.FromRepresentation(rep, 3, board.TurnBlack, 0)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	// The lone Free tile at index 2 is adjacent only to Dead (indices 1
	// and 5) and off-board edges, so it has no stone-color neighbor:
	// scores 0.
	if got := Score(b); got != 1 {
		t.Fatalf("Score() = %v, want 1 (stone term only)", got)
	}
}

func TestNewGameTerminalAndMaximizing(t *testing.T) {
	b := board.New(5, board.TurnBlack, 0)
	g := NewGame(b)
	if g.Terminal() {
		t.Fatal("fresh board must not be terminal")
	}
	if !g.Maximizing() {
		t.Fatal("Black to move must be maximizing")
	}
	if err := g.Play(board.Pass); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := g.Play(board.Pass); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !g.Terminal() {
		t.Fatal("board after two passes must be terminal")
	}
}
