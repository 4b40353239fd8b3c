// Package scenario holds the literal end-to-end fixtures from spec §8,
// consumed by internal/bench's throughput harness and by this package's
// own tests; the board, eval and search tests build their positions
// inline instead. Grounded structurally on the teacher's puzzle/puzzle.go
// []Puzzle table plus loader function.
package scenario

import "github.com/G4mingJon4s/govo/board"

// Fixture is one named starting position plus the size/turn/komi needed
// to construct it.
type Fixture struct {
	Name           string
	Representation string
	Size           int
	Turn           board.Turn
	Komi           float64
}

// Board constructs the board.Board for this fixture.
func (f Fixture) Board() (*board.Board, error) {
	return board.FromRepresentation(f.Representation, f.Size, f.Turn, f.Komi)
}

// All is the spec §8 scenario table: the 3x3 single-stone capture
// position (A), ko (B's starting shape), an empty 5x5 board for the
// score-sign check (D), and a 9x9 empty board for the undo-round-trip
// fuzz target (E). Scenarios C and F have no fixture of their own here.
var All = []Fixture{
	{
		Name:           "single_stone_capture",
		Representation: ".O.OXO.O.",
		Size:           3,
		Turn:           board.TurnBlack,
		Komi:           0.5,
	},
	{
		Name: "ko_shape",
		// . O X .
		// O . O X
		// . O X .
		// . . . .
		// White's lone stone at 6 has its only liberty at 5; Black
		// capturing there sets up the immediate-recapture superko case.
		Representation: ".OX." + "O.OX" + ".OX." + "....",
		Size:           4,
		Turn:           board.TurnBlack,
		Komi:           0.5,
	},
	{
		Name:           "empty_5x5",
		Representation: repeat(".", 25),
		Size:           5,
		Turn:           board.TurnBlack,
		Komi:           6.5,
	},
	{
		Name:           "empty_9x9",
		Representation: repeat(".", 81),
		Size:           9,
		Turn:           board.TurnBlack,
		Komi:           6.5,
	},
}

func repeat(s string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = s[0]
	}
	return string(out)
}

// ByName looks up a fixture by its Name, or reports ok=false.
func ByName(name string) (Fixture, bool) {
	for _, f := range All {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}
