package board

// LegalMoves returns an advisory list of moves that are plausibly worth
// search: Pass is always included while the game is running (once Turn
// is TurnNone the list is empty); a Free position is a candidate only
// if playing there could matter (spec §4.1). This is a filter, not a
// guarantee — ApplyMove remains the authority on legality, since
// positional superko can still reject a candidate it returns.
func (b *Board) LegalMoves() []Move {
	if b.turn == TurnNone {
		return nil
	}
	moves := []Move{Pass}
	for id, c := range b.chains {
		if c.Tile != Free {
			continue
		}
		if c.Size() >= 2 {
			for p := range c.Positions {
				moves = append(moves, Place(p))
			}
			continue
		}
		// Singleton Free chain: only a candidate if it could plausibly
		// help (a friendly chain gains room) or capture (an enemy chain
		// is down to this point as its last liberty).
		for p := range c.Positions {
			if b.singletonCandidate(p, id) {
				moves = append(moves, Place(p))
			}
		}
	}
	return moves
}

func (b *Board) singletonCandidate(pos, freeChainID int) bool {
	for _, n := range b.neighbors(pos) {
		nid := b.posToChain[n]
		if nid == deadSentinel || nid == freeChainID {
			continue
		}
		nc := b.chains[nid]
		switch nc.Tile {
		case b.turn.Tile():
			if len(nc.Liberties) >= 2 {
				return true
			}
		case b.turn.Tile().Opposite():
			if len(nc.Liberties) == 1 {
				return true
			}
		}
	}
	return false
}
