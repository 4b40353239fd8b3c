package board

import (
	"strings"
)

// Board is the aggregate Go position: size, komi, turn to move, the
// chain arena, and the undo history (spec §3).
type Board struct {
	size int
	komi float64
	turn Turn

	posToChain []int // chain id per position; deadSentinel for Dead tiles
	chains     map[int]*Chain

	nextChainID int
	history     []*MoveChange
}

// deadSentinel marks a Dead position in posToChain: Dead tiles never
// belong to a chain.
const deadSentinel = -1

// New creates an empty board of the given size: every intersection Free,
// grouped into one Free chain, with no history.
func New(size int, turn Turn, komi float64) *Board {
	b := &Board{
		size:       size,
		komi:       komi,
		turn:       turn,
		posToChain: make([]int, size*size),
		chains:     make(map[int]*Chain),
	}
	id := b.allocChainID()
	free := newChain(id, Free)
	for p := 0; p < size*size; p++ {
		free.Positions[p] = struct{}{}
		b.posToChain[p] = id
	}
	b.chains[id] = free
	return b
}

// FromRepresentation parses rep (spec §6): whitespace, colons and
// newlines are stripped first; the remainder must be exactly size*size
// characters drawn from X/O/./#.
func FromRepresentation(rep string, size int, turn Turn, komi float64) (*Board, error) {
	clean := stripIgnored(rep)
	if len(clean) != size*size {
		return nil, errorf(ErrInvalidInput, "representation has %d characters, want %d", len(clean), size*size)
	}
	tiles := make([]Tile, size*size)
	for i, r := range clean {
		switch r {
		case 'X':
			tiles[i] = Black
		case 'O':
			tiles[i] = White
		case '.':
			tiles[i] = Free
		case '#':
			tiles[i] = Dead
		default:
			return nil, errorf(ErrInvalidInput, "unknown tile character %q at offset %d", r, i)
		}
	}

	b := &Board{
		size:       size,
		komi:       komi,
		turn:       turn,
		posToChain: make([]int, size*size),
		chains:     make(map[int]*Chain),
	}
	for p := range b.posToChain {
		b.posToChain[p] = deadSentinel
	}

	visited := make([]bool, size*size)
	for p := 0; p < size*size; p++ {
		if visited[p] || tiles[p] == Dead {
			continue
		}
		members := b.floodFill(p, func(q int) bool { return !visited[q] && tiles[q] == tiles[p] })
		id := b.allocChainID()
		chain := newChain(id, tiles[p])
		for _, m := range members {
			visited[m] = true
			chain.Positions[m] = struct{}{}
			b.posToChain[m] = id
		}
		for _, m := range members {
			for _, n := range b.neighbors(m) {
				if _, ok := chain.Positions[n]; ok {
					continue
				}
				chain.Adjacent[n] = struct{}{}
				if tiles[n] == Free {
					chain.Liberties[n] = struct{}{}
				}
			}
		}
		b.chains[id] = chain
	}
	return b, nil
}

func stripIgnored(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			continue
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Representation renders the board as the row-major X/O/./# string.
func (b *Board) Representation() string {
	var sb strings.Builder
	sb.Grow(b.size * b.size)
	for p := 0; p < b.size*b.size; p++ {
		sb.WriteString(b.Tile(p).String())
	}
	return sb.String()
}

// Size returns the board's side length.
func (b *Board) Size() int { return b.size }

// Komi returns the board's komi.
func (b *Board) Komi() float64 { return b.komi }

// Turn returns whose move it is.
func (b *Board) Turn() Turn { return b.turn }

// History returns the move history so far. The returned slice must not be
// mutated by callers.
func (b *Board) History() []*MoveChange { return b.history }

// Tile returns the occupant of pos in O(1).
func (b *Board) Tile(pos int) Tile {
	id := b.posToChain[pos]
	if id == deadSentinel {
		return Dead
	}
	return b.chains[id].Tile
}

// Chain returns the chain containing pos, or nil if pos is Dead.
func (b *Board) Chain(pos int) *Chain {
	id := b.posToChain[pos]
	if id == deadSentinel {
		return nil
	}
	return b.chains[id]
}

// Chains calls fn for every live chain in the arena. Iteration order is
// unspecified.
func (b *Board) Chains(fn func(*Chain)) {
	for _, c := range b.chains {
		fn(c)
	}
}

// Clone returns a deep copy of the board, used by the search engine to
// dispatch one goroutine per root move over an independently-mutable
// board (spec §4.3, §5).
func (b *Board) Clone() *Board {
	nb := &Board{
		size:        b.size,
		komi:        b.komi,
		turn:        b.turn,
		posToChain:  append([]int(nil), b.posToChain...),
		chains:      make(map[int]*Chain, len(b.chains)),
		nextChainID: b.nextChainID,
		history:     append([]*MoveChange(nil), b.history...),
	}
	for id, c := range b.chains {
		nb.chains[id] = c.clone()
	}
	return nb
}

func (b *Board) allocChainID() int {
	id := b.nextChainID
	b.nextChainID++
	return id
}

// neighbors returns the orthogonal neighbors of pos within the grid.
func (b *Board) neighbors(pos int) []int {
	x, y := pos/b.size, pos%b.size
	ns := make([]int, 0, 4)
	if x > 0 {
		ns = append(ns, pos-b.size)
	}
	if x < b.size-1 {
		ns = append(ns, pos+b.size)
	}
	if y > 0 {
		ns = append(ns, pos-1)
	}
	if y < b.size-1 {
		ns = append(ns, pos+1)
	}
	return ns
}

// floodFill gathers the connected component reachable from start via
// neighbors satisfying include, using breadth-first search.
func (b *Board) floodFill(start int, include func(int) bool) []int {
	queue := []int{start}
	seen := map[int]struct{}{start: {}}
	members := []int{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range b.neighbors(p) {
			if _, ok := seen[n]; ok {
				continue
			}
			if !include(n) {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
			members = append(members, n)
		}
	}
	return members
}
