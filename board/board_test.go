package board

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestFromRepresentationRoundTrip(t *testing.T) {
	rep := ".O.OXO.O."
	b, err := FromRepresentation(rep, 3, TurnBlack, 0.5)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	if got := b.Representation(); got != rep {
		t.Fatalf("Representation() = %q, want %q", got, rep)
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestFromRepresentationErrors(t *testing.T) {
	if _, err := FromRepresentation(".O.", 3, TurnBlack, 0); err == nil {
		t.Fatal("expected error for wrong length")
	}
	if _, err := FromRepresentation(".O.OXO.O?", 3, TurnBlack, 0); err == nil {
		t.Fatal("expected error for unknown tile character")
	}
}

// Scenario A (single-stone capture): Black to move, komi 0.5, rep
// ".O.OXO.O." — the Black stone at index 4 is already enclosed by White
// on all four sides. This fixture checks the illegal-move path for an
// occupied point, plays a Pass, then checks it again for White, per
// spec.md's worked example.
func TestScenarioASingleStoneCapture(t *testing.T) {
	b, err := FromRepresentation(".O.OXO.O.", 3, TurnBlack, 0.5)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	if err := b.ApplyMove(Place(4)); err == nil {
		t.Fatal("expected TileOccupied placing on an occupied point")
	} else if !errors.Is(err, ErrTileOccupied) {
		t.Fatalf("got %v, want ErrTileOccupied", err)
	}

	if err := b.ApplyMove(Pass); err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if b.Turn() != TurnWhite {
		t.Fatalf("Turn() = %v, want White", b.Turn())
	}
	if err := b.ApplyMove(Place(4)); err == nil {
		t.Fatal("expected TileOccupied for White placing on the same occupied point")
	}
}

// Scenario B (ko / superko): a classical ko shape where Black captures,
// and White's immediate recapture must fail with Repetition.
func TestScenarioBKo(t *testing.T) {
	// 4x4 board, a classical ko shape:
	//  . O X .
	//  O . O X
	//  . O X .
	//  . . . .
	// White's lone stone at 6 has its only liberty at 5. Black plays 5,
	// capturing it; the resulting Black stone at 5 then has its only
	// liberty at 6. White recapturing at 6 would capture Black's stone
	// at 5 right back, recreating the exact prior position: superko
	// must reject it.
	rep := ".OX." +
		"O.OX" +
		".OX." +
		"...."
	b, err := FromRepresentation(rep, 4, TurnBlack, 0.5)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	if err := b.ApplyMove(Place(5)); err != nil {
		t.Fatalf("Black captures: %v", err)
	}
	if b.Tile(5) != Black {
		t.Fatalf("Tile(5) = %v, want Black after capture placement", b.Tile(5))
	}
	if b.Tile(6) != Free {
		t.Fatalf("Tile(6) = %v, want Free (captured)", b.Tile(6))
	}
	if b.Turn() != TurnWhite {
		t.Fatalf("Turn() = %v, want White", b.Turn())
	}
	if err := b.ApplyMove(Place(6)); err == nil {
		t.Fatal("expected Repetition on immediate recapture")
	} else if !errors.Is(err, ErrRepetition) {
		t.Fatalf("got %v, want ErrRepetition", err)
	}
}

// Scenario C (two-pass termination).
func TestScenarioCTwoPassTermination(t *testing.T) {
	b := New(5, TurnBlack, 0.5)
	if err := b.ApplyMove(Pass); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if b.Turn() != TurnWhite {
		t.Fatalf("Turn() = %v, want White", b.Turn())
	}
	if err := b.ApplyMove(Pass); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if b.Turn() != TurnNone {
		t.Fatalf("Turn() = %v, want None", b.Turn())
	}
	if err := b.ApplyMove(Pass); err == nil {
		t.Fatal("expected GameOver after two passes")
	} else if !errors.Is(err, ErrGameOver) {
		t.Fatalf("got %v, want ErrGameOver", err)
	}
}

// Scenario E (undo round trip): randomly generated legal move sequences
// must fully reverse via UndoMove, restoring representation and hash.
func TestScenarioEUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		b := New(9, TurnBlack, 6.5)
		initialRep := b.Representation()
		initialHash := b.Hash()

		played := 0
		for played < 50 {
			moves := b.LegalMoves()
			m := moves[rng.Intn(len(moves))]
			if err := b.ApplyMove(m); err != nil {
				continue
			}
			played++
			if b.Turn() == TurnNone {
				break
			}
		}

		for i := 0; i < played; i++ {
			if err := b.UndoMove(); err != nil {
				t.Fatalf("trial %d: UndoMove at step %d: %v", trial, i, err)
			}
			if err := b.Verify(); err != nil {
				t.Fatalf("trial %d: Verify after undo %d: %v", trial, i, err)
			}
		}

		if got := b.Representation(); got != initialRep {
			t.Fatalf("trial %d: Representation() = %q, want %q", trial, got, initialRep)
		}
		if got := b.Hash(); got != initialHash {
			t.Fatalf("trial %d: Hash() = %x, want %x", trial, got, initialHash)
		}
	}
}

func TestHashIgnoresTurnKomiHistory(t *testing.T) {
	b1 := New(5, TurnBlack, 0.5)
	b2 := New(5, TurnWhite, 6.5)
	if b1.Hash() != b2.Hash() {
		t.Fatal("Hash() must be independent of turn and komi")
	}
	if err := b1.ApplyMove(Place(0)); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	h1 := b1.Hash()
	if err := b1.UndoMove(); err != nil {
		t.Fatalf("UndoMove: %v", err)
	}
	if b1.Hash() == h1 {
		t.Fatal("Hash() should change after placing a stone")
	}
	if err := b2.ApplyMove(Pass); err != nil {
		t.Fatalf("ApplyMove(Pass): %v", err)
	}
	if b1.Hash() != b2.Hash() {
		t.Fatal("Hash() must be independent of move history")
	}
}

func TestSuicideRejected(t *testing.T) {
	// 3x3 board where the center is surrounded by White with no
	// liberties and nothing to capture: X at center is suicide.
	rep := ".O." +
		"O.O" +
		".O."
	b, err := FromRepresentation(rep, 3, TurnBlack, 0)
	if err != nil {
		t.Fatalf("FromRepresentation: %v", err)
	}
	if err := b.ApplyMove(Place(4)); err == nil {
		t.Fatal("expected Suicide")
	} else if !errors.Is(err, ErrSuicide) {
		t.Fatalf("got %v, want ErrSuicide", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	b := New(5, TurnBlack, 0.5)
	clone := b.Clone()
	if err := clone.ApplyMove(Place(0)); err != nil {
		t.Fatalf("ApplyMove on clone: %v", err)
	}
	if b.Tile(0) != Free {
		t.Fatal("mutating a clone must not affect the original board")
	}
	if err := b.Verify(); err != nil {
		t.Fatalf("Verify original: %v", err)
	}
	if err := clone.Verify(); err != nil {
		t.Fatalf("Verify clone: %v", err)
	}
}
