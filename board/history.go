package board

// modKind tags one entry in a MoveChange's modification log (spec §4.1
// "MoveChange records").
type modKind uint8

const (
	// modAppend records that chainID was newly created; undo deletes it.
	modAppend modKind = iota
	// modReassign records that pos's chain id was old before the move;
	// undo restores posToChain[pos] = old.
	modReassign
	// modReplace records chainID's full contents before the move
	// mutated, deleted, or (for a just-captured chain) tombstoned it;
	// undo re-inserts the snapshot verbatim. This also covers
	// "undelete": re-inserting into the arena map is enough regardless
	// of whether the entry is currently absent.
	modReplace
)

type modification struct {
	kind    modKind
	chainID int
	pos     int // only meaningful for modReassign
	old     int // only meaningful for modReassign: the prior chain id
	snap    *Chain
}

// MoveChange is one entry in a Board's undo history: the move that was
// applied, the turn and hash immediately before it, and the ordered
// modifications needed to reverse it.
type MoveChange struct {
	Move         Move
	PreviousTurn Turn
	BoardHash    uint64
	mods         []modification
}

// rollback reverses mods in strict reverse order, per spec §4.1.
func (b *Board) rollback(mods []modification) {
	for i := len(mods) - 1; i >= 0; i-- {
		m := mods[i]
		switch m.kind {
		case modAppend:
			delete(b.chains, m.chainID)
		case modReassign:
			b.posToChain[m.pos] = m.old
		case modReplace:
			b.chains[m.chainID] = m.snap
		}
	}
}
