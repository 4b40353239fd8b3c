package board

// recorder accumulates the modification log for one in-progress move,
// mutating the board's chain arena as it goes so that a later rollback
// (suicide, repetition) or a later undo can reverse exactly what
// happened, in strict reverse order (spec §4.1 "MoveChange records").
type recorder struct {
	b    *Board
	mods []modification
}

func (r *recorder) alloc() int {
	return r.b.allocChainID()
}

// appendChain installs a brand-new chain id; undo deletes it outright.
func (r *recorder) appendChain(c *Chain) {
	r.mods = append(r.mods, modification{kind: modAppend, chainID: c.ID})
	r.b.chains[c.ID] = c
}

// replaceChain overwrites an existing chain's contents in place; undo
// restores the snapshot taken just before the overwrite.
func (r *recorder) replaceChain(c *Chain) {
	old := r.b.chains[c.ID]
	r.mods = append(r.mods, modification{kind: modReplace, chainID: c.ID, snap: old.clone()})
	r.b.chains[c.ID] = c
}

// deleteChain tombstones an existing chain (capture, merge-absorption);
// undo re-inserts the snapshot, which both restores content and
// "undeletes" it.
func (r *recorder) deleteChain(id int) {
	old := r.b.chains[id]
	r.mods = append(r.mods, modification{kind: modReplace, chainID: id, snap: old.clone()})
	delete(r.b.chains, id)
}

// reassign repoints pos to a new chain id, recording the prior id.
func (r *recorder) reassign(pos, newID int) {
	old := r.b.posToChain[pos]
	if old == newID {
		return
	}
	r.mods = append(r.mods, modification{kind: modReassign, pos: pos, old: old})
	r.b.posToChain[pos] = newID
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	ns := make(map[int]struct{}, len(s))
	for k := range s {
		ns[k] = struct{}{}
	}
	return ns
}

// ApplyMove mutates the board according to m, or leaves it byte-for-byte
// unchanged and returns an error (spec §7: apply_move is transactional).
func (b *Board) ApplyMove(m Move) error {
	if b.turn == TurnNone {
		return errorf(ErrGameOver, "cannot play: game is over")
	}
	if m.IsPass() {
		return b.applyPass()
	}
	return b.applyPlace(m)
}

func (b *Board) applyPass() error {
	change := &MoveChange{Move: Pass, PreviousTurn: b.turn, BoardHash: b.Hash()}
	if len(b.history) > 0 && b.history[len(b.history)-1].Move.IsPass() {
		b.turn = TurnNone
	} else {
		b.turn = b.turn.Next()
	}
	b.history = append(b.history, change)
	return nil
}

func (b *Board) applyPlace(m Move) error {
	pos := m.Pos()
	if pos < 0 || pos >= b.size*b.size {
		return errorf(ErrInvalidInput, "position %d out of range", pos)
	}
	if b.Tile(pos) != Free {
		return errorf(ErrTileOccupied, "position %d is occupied", pos)
	}

	preHash := b.Hash()
	prevTurn := b.turn
	friendly := b.turn.Tile()
	enemy := friendly.Opposite()

	// orig is a frozen snapshot of tile contents taken before any
	// mutation: every subsequent "what was here before this move"
	// decision consults it instead of the live, partially-mutated arena.
	orig := make([]Tile, b.size*b.size)
	for p := range orig {
		orig[p] = b.Tile(p)
	}
	oldFreeID := b.posToChain[pos]

	rec := &recorder{b: b}

	// Step 2: resolve enemy neighbor chains, capturing any left with no
	// liberties.
	enemyIDs := map[int]struct{}{}
	for _, n := range b.neighbors(pos) {
		if orig[n] == enemy {
			enemyIDs[b.posToChain[n]] = struct{}{}
		}
	}

	captured := map[int]struct{}{}
	for id := range enemyIDs {
		c := b.chains[id]
		newLibs := cloneSet(c.Liberties)
		delete(newLibs, pos)
		if len(newLibs) == 0 {
			for p := range c.Positions {
				captured[p] = struct{}{}
			}
			rec.deleteChain(id)
			continue
		}
		nc := c.clone()
		nc.Liberties = newLibs
		rec.replaceChain(nc)
	}

	// Propagate newly-freed liberties to surviving neighbor stone chains
	// (spec step 2, final sentence).
	if len(captured) > 0 {
		touched := map[int]*Chain{}
		for p := range captured {
			for _, q := range b.neighbors(p) {
				if q == pos {
					continue
				}
				if _, isCaptured := captured[q]; isCaptured {
					continue
				}
				t := orig[q]
				if t != Black && t != White {
					continue
				}
				qid := b.posToChain[q]
				if _, wasCaptured := enemyIDs[qid]; wasCaptured {
					continue
				}
				c, ok := touched[qid]
				if !ok {
					c = b.chains[qid].clone()
					touched[qid] = c
				}
				c.Liberties[p] = struct{}{}
			}
		}
		for _, c := range touched {
			rec.replaceChain(c)
		}
	}

	// effective reports a position's tile as of just before Step 4
	// (placement made, captures resolved, nothing re-flooded yet).
	effective := func(p int) Tile {
		if p == pos {
			return friendly
		}
		if _, ok := captured[p]; ok {
			return Free
		}
		return orig[p]
	}

	// Step 3: friendly neighbor chains merge into a freshly-minted chain.
	friendlyIDs := map[int]struct{}{}
	for _, n := range b.neighbors(pos) {
		if effective(n) == friendly {
			friendlyIDs[b.posToChain[n]] = struct{}{}
		}
	}
	newStone := newChain(rec.alloc(), friendly)
	newStone.Positions[pos] = struct{}{}
	for id := range friendlyIDs {
		for p := range b.chains[id].Positions {
			newStone.Positions[p] = struct{}{}
		}
		rec.deleteChain(id)
	}
	for p := range newStone.Positions {
		for _, n := range b.neighbors(p) {
			if _, member := newStone.Positions[n]; member {
				continue
			}
			newStone.Adjacent[n] = struct{}{}
			if effective(n) == Free {
				newStone.Liberties[n] = struct{}{}
			}
		}
	}
	rec.appendChain(newStone)
	for p := range newStone.Positions {
		rec.reassign(p, newStone.ID)
	}

	if len(newStone.Liberties) == 0 && len(captured) == 0 {
		b.rollback(rec.mods)
		return errorf(ErrSuicide, "placement at %d has no liberties and captures nothing", pos)
	}

	// Step 4: re-derive Free chains touching pos and the newly-captured
	// area. Rather than the spec's incremental split/shrink/retire case
	// analysis, every position that was Free before the move (minus pos)
	// plus every just-captured position is re-flooded from scratch; at
	// Go-board scale the extra work is negligible and this is
	// unconditionally correct, including the split case (k>=2).
	oldFree := b.chains[oldFreeID]
	candidates := map[int]struct{}{}
	for p := range oldFree.Positions {
		if p != pos {
			candidates[p] = struct{}{}
		}
	}
	for p := range captured {
		candidates[p] = struct{}{}
	}
	rec.deleteChain(oldFreeID)

	isFreeNow := func(p int) bool {
		if p == pos {
			return false
		}
		if _, ok := captured[p]; ok {
			return true
		}
		return orig[p] == Free
	}

	// A flood-filled region can reach Free positions that belonged to a
	// different pre-move Free chain entirely (one that only bordered a
	// now-captured chain, not oldFree) — e.g. a captured wall that used
	// to separate two distinct Free regions. Every such other chain must
	// be tombstoned too, or it is left in b.chains with no position
	// still pointing at it, which Verify() flags as orphaned.
	tombstoned := map[int]struct{}{oldFreeID: {}}

	visited := map[int]struct{}{}
	for seed := range candidates {
		if _, ok := visited[seed]; ok {
			continue
		}
		members := b.floodFill(seed, isFreeNow)
		for _, p := range members {
			if p == pos {
				continue
			}
			if _, wasCaptured := captured[p]; wasCaptured {
				continue
			}
			if otherID := b.posToChain[p]; otherID != deadSentinel {
				if _, done := tombstoned[otherID]; !done {
					rec.deleteChain(otherID)
					tombstoned[otherID] = struct{}{}
				}
			}
		}

		fc := newChain(rec.alloc(), Free)
		for _, p := range members {
			visited[p] = struct{}{}
			fc.Positions[p] = struct{}{}
		}
		for _, p := range members {
			for _, n := range b.neighbors(p) {
				if _, member := fc.Positions[n]; member {
					continue
				}
				fc.Adjacent[n] = struct{}{}
			}
		}
		rec.appendChain(fc)
		for p := range fc.Positions {
			rec.reassign(p, fc.ID)
		}
	}

	// Step 5: positional superko.
	newHash := b.Hash()
	for _, h := range b.history {
		if h.Move.IsPass() {
			continue
		}
		if h.BoardHash == newHash {
			b.rollback(rec.mods)
			return errorf(ErrRepetition, "position at %d repeats an earlier board state", pos)
		}
	}

	// Step 6: commit.
	b.turn = b.turn.Next()
	b.history = append(b.history, &MoveChange{
		Move:         m,
		PreviousTurn: prevTurn,
		BoardHash:    preHash,
		mods:         rec.mods,
	})
	return nil
}

// UndoMove pops the last MoveChange and reverses it in strict reverse
// order, restoring turn.
func (b *Board) UndoMove() error {
	if len(b.history) == 0 {
		return errorf(ErrNoHistory, "no moves to undo")
	}
	n := len(b.history) - 1
	change := b.history[n]
	b.history = b.history[:n]
	b.rollback(change.mods)
	b.turn = change.PreviousTurn
	return nil
}
