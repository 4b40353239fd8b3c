package notation

import (
	"testing"

	"github.com/G4mingJon4s/govo/board"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(".O.OXO.O.", 3, "Black", 0.5)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if b.Turn() != board.TurnBlack {
		t.Fatalf("Turn() = %v, want Black", b.Turn())
	}
	if b.Komi() != 0.5 {
		t.Fatalf("Komi() = %v, want 0.5", b.Komi())
	}
}

func TestParseBoardBadTurn(t *testing.T) {
	if _, err := ParseBoard("...", 1, "sideways", 0); err == nil {
		t.Fatal("expected syntax error for unknown turn text")
	}
}

func TestParseMovePass(t *testing.T) {
	m, isUndo, err := ParseMove("pass", 9)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if isUndo || !m.IsPass() {
		t.Fatal("expected Pass")
	}
}

func TestParseMoveUndo(t *testing.T) {
	_, isUndo, err := ParseMove("undo", 9)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !isUndo {
		t.Fatal("expected isUndo = true")
	}
}

func TestParseMoveCoordinate(t *testing.T) {
	m, _, err := ParseMove("1,2", 9)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if want := board.Place(1*9 + 2); !m.Equals(want) {
		t.Fatalf("ParseMove(1,2) = %v, want %v", m, want)
	}
}

func TestParseMoveLinear(t *testing.T) {
	m, _, err := ParseMove("42", 9)
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if want := board.Place(42); !m.Equals(want) {
		t.Fatalf("ParseMove(42) = %v, want %v", m, want)
	}
}

func TestParseMoveOutOfRange(t *testing.T) {
	if _, _, err := ParseMove("99", 9); err == nil {
		t.Fatal("expected error for out-of-range position")
	}
	if _, _, err := ParseMove("9,9", 9); err == nil {
		t.Fatal("expected error for out-of-range coordinate")
	}
}

func TestRenderMoveRoundTrip(t *testing.T) {
	for _, m := range []board.Move{board.Pass, board.Place(0), board.Place(17)} {
		text := RenderMove(m)
		got, isUndo, err := ParseMove(text, 9)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		if isUndo || !got.Equals(m) {
			t.Fatalf("round trip of %v via %q produced %v", m, text, got)
		}
	}
}
