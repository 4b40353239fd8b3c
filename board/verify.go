package board

// Verify walks the chain arena and returns the first invariant violation
// found, or nil. It is not called on any hot path; it exists for tests
// and for debugging search code that clones and mutates boards heavily.
func (b *Board) Verify() error {
	if len(b.posToChain) != b.size*b.size {
		return errorf(ErrInternal, "posToChain has %d entries, want %d", len(b.posToChain), b.size*b.size)
	}

	seen := make(map[int]struct{}, b.size*b.size)
	for id, c := range b.chains {
		if c.ID != id {
			return errorf(ErrInternal, "chain stored under key %d has ID %d", id, c.ID)
		}
		if c.Size() == 0 {
			return errorf(ErrInternal, "chain %d is empty", id)
		}
		for p := range c.Positions {
			if _, dup := seen[p]; dup {
				return errorf(ErrInternal, "position %d belongs to more than one chain", p)
			}
			seen[p] = struct{}{}
			if b.posToChain[p] != id {
				return errorf(ErrInternal, "posToChain[%d] = %d, want %d", p, b.posToChain[p], id)
			}
		}
		if err := b.verifyChainEdges(c); err != nil {
			return err
		}
		if c.Tile != Free {
			if err := b.verifyMaximal(c); err != nil {
				return err
			}
		}
	}
	for p, id := range b.posToChain {
		if id == deadSentinel {
			if _, ok := seen[p]; ok {
				return errorf(ErrInternal, "position %d marked Dead but claimed by a chain", p)
			}
			continue
		}
		if _, ok := seen[p]; !ok {
			return errorf(ErrInternal, "position %d has chain id %d but no chain claims it", p, id)
		}
	}
	return nil
}

func (b *Board) verifyChainEdges(c *Chain) error {
	for p := range c.Positions {
		for _, n := range b.neighbors(p) {
			if _, member := c.Positions[n]; member {
				continue
			}
			if _, adj := c.Adjacent[n]; !adj {
				return errorf(ErrInternal, "chain %d missing adjacency to %d", c.ID, n)
			}
		}
	}
	for p := range c.Liberties {
		if b.Tile(p) != Free {
			return errorf(ErrInternal, "chain %d lists occupied position %d as a liberty", c.ID, p)
		}
		if _, adj := c.Adjacent[p]; !adj {
			return errorf(ErrInternal, "chain %d liberty %d is not recorded as adjacent", c.ID, p)
		}
	}
	if c.Tile == Free && len(c.Liberties) != 0 {
		return errorf(ErrInternal, "Free chain %d has non-empty Liberties", c.ID)
	}
	return nil
}

// verifyMaximal checks that no same-color stone chain is adjacent to
// another chain of the same color, per spec invariant §3.4.
func (b *Board) verifyMaximal(c *Chain) error {
	for n := range c.Adjacent {
		if b.Tile(n) == c.Tile {
			return errorf(ErrInternal, "chain %d is adjacent to same-color chain at %d", c.ID, n)
		}
	}
	return nil
}
