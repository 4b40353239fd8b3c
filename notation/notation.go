// Package notation parses and renders the text grammar described in
// spec §6 "External Interfaces": board representations, turn strings,
// and move encodings. Grounded on the teacher's notation/epd.go split
// between parsing a description and applying it to a board — govo's
// grammar has no opcodes, so the separation collapses to a couple of
// parse functions plus one apply step, but the separation itself is
// kept.
package notation

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/G4mingJon4s/govo/board"
)

// ErrSyntax is returned for any text that doesn't match the grammar.
var ErrSyntax = errors.New("notation: syntax error")

// ParseBoard parses a representation string plus turn/size/komi into a
// board.Board. Whitespace, colons and newlines are stripped by
// board.FromRepresentation itself; this function only validates size
// and turn text before delegating.
func ParseBoard(rep string, size int, turnText string, komi float64) (*board.Board, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrSyntax, "invalid size %d", size)
	}
	turn, err := board.ParseTurn(turnText)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	b, err := board.FromRepresentation(rep, size, turn, komi)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return b, nil
}

// moveToken is the parsed shape of one move-text token, before it is
// converted to a board.Move (or recognized as the "undo" sentinel,
// which is not a board.Move at all).
type moveToken struct {
	isUndo bool
	move   board.Move
}

// ParseMove parses one of: "pass", "undo", "x,y", or a bare linear
// integer. "undo" is reported via isUndo, distinct from any board.Move,
// since it addresses session history rather than placing a stone.
func ParseMove(s string, size int) (move board.Move, isUndo bool, err error) {
	tok, err := parseMoveToken(strings.TrimSpace(s), size)
	if err != nil {
		return board.Move{}, false, err
	}
	return tok.move, tok.isUndo, nil
}

func parseMoveToken(s string, size int) (moveToken, error) {
	switch strings.ToLower(s) {
	case "pass":
		return moveToken{move: board.Pass}, nil
	case "undo":
		return moveToken{isUndo: true}, nil
	}
	if strings.Contains(s, ",") {
		parts := strings.SplitN(s, ",", 2)
		if len(parts) != 2 {
			return moveToken{}, errors.Wrapf(ErrSyntax, "malformed coordinate %q", s)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errX != nil || errY != nil {
			return moveToken{}, errors.Wrapf(ErrSyntax, "malformed coordinate %q", s)
		}
		if x < 0 || x >= size || y < 0 || y >= size {
			return moveToken{}, errors.Wrapf(ErrSyntax, "coordinate %q out of range for size %d", s, size)
		}
		return moveToken{move: board.Place(x*size + y)}, nil
	}
	pos, err := strconv.Atoi(s)
	if err != nil {
		return moveToken{}, errors.Wrapf(ErrSyntax, "unrecognized move %q", s)
	}
	if pos < 0 || pos >= size*size {
		return moveToken{}, errors.Wrapf(ErrSyntax, "position %d out of range for size %d", pos, size)
	}
	return moveToken{move: board.Place(pos)}, nil
}

// RenderMove renders m the way ParseMove expects to read it back.
func RenderMove(m board.Move) string {
	if m.IsPass() {
		return "pass"
	}
	return strconv.Itoa(m.Pos())
}
