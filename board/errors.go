package board

import "github.com/pkg/errors"

// Sentinel errors forming the core error taxonomy (spec §7). Wrapped with
// positional context via github.com/pkg/errors; callers compare against
// these with errors.Is.
var (
	// ErrInvalidInput covers malformed representations, bad sizes and
	// unknown tile/turn characters.
	ErrInvalidInput = errors.New("board: invalid input")

	// ErrGameOver is returned by ApplyMove once Turn has reached TurnNone.
	ErrGameOver = errors.New("board: game over")
	// ErrTileOccupied is returned when placing on a non-Free tile.
	ErrTileOccupied = errors.New("board: tile occupied")
	// ErrSuicide is returned for a placement that captures nothing and
	// leaves its own chain with zero liberties. Surfaced distinctly from
	// ErrRepetition per the Open Question in spec §9.
	ErrSuicide = errors.New("board: suicide")
	// ErrRepetition is positional superko: the resulting position repeats
	// a prior non-pass position in history.
	ErrRepetition = errors.New("board: repetition (superko)")

	// ErrNoHistory is returned by UndoMove when history is empty.
	ErrNoHistory = errors.New("board: no history to undo")

	// ErrInternal marks a detected invariant violation (debug builds) or
	// an otherwise-impossible internal state.
	ErrInternal = errors.New("board: internal invariant violation")
)

func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
