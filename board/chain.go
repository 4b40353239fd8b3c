package board

// Chain is a maximal orthogonally-connected component of same-tile
// positions (spec §3). Free regions are represented as chains too: this
// gives O(1) liberty counts, O(|chain|) captures, and O(1) eye/territory
// queries over empty regions instead of re-flood-filling for every query.
type Chain struct {
	// ID is a stable integer identifier within the board's chain arena.
	// IDs are never reused: merges and captures tombstone old ids rather
	// than renumbering, so an undo step can re-address a retired chain
	// without shifting any other chain's id.
	ID int
	// Tile is the chain's color, or Free for an empty region. Never Dead.
	Tile Tile
	// Positions is the set of linear indices belonging to the chain.
	Positions map[int]struct{}
	// Liberties is the set of Free neighbor positions of the chain. For a
	// Free chain this is always empty: Free chains are maximal, so no
	// Free neighbor of a Free chain can lie outside it.
	Liberties map[int]struct{}
	// Adjacent is the set of neighbor positions that are not members of
	// the chain, regardless of their tile.
	Adjacent map[int]struct{}
}

func newChain(id int, tile Tile) *Chain {
	return &Chain{
		ID:        id,
		Tile:      tile,
		Positions: make(map[int]struct{}),
		Liberties: make(map[int]struct{}),
		Adjacent:  make(map[int]struct{}),
	}
}

func (c *Chain) clone() *Chain {
	nc := newChain(c.ID, c.Tile)
	for p := range c.Positions {
		nc.Positions[p] = struct{}{}
	}
	for p := range c.Liberties {
		nc.Liberties[p] = struct{}{}
	}
	for p := range c.Adjacent {
		nc.Adjacent[p] = struct{}{}
	}
	return nc
}

// Size returns the number of positions in the chain.
func (c *Chain) Size() int {
	return len(c.Positions)
}
