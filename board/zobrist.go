package board

import "math/rand"

// maxZobristPositions bounds the largest board size (spec §3 mentions
// typical sizes 5-19; 19*19 covers every realistic board) the shared
// Zobrist table needs to index.
const maxZobristPositions = 19 * 19

// zobristTable holds one random 64-bit value per (tile, position) pair.
// Hash() XORs the entries for the board's actual tile vector: a pure
// function of tile contents, independent of turn, komi, history and
// chain id assignment, as required by spec invariant §3.6.
var zobristTable [4][maxZobristPositions]uint64

func init() {
	r := rand.New(rand.NewSource(1))
	for t := range zobristTable {
		for p := range zobristTable[t] {
			zobristTable[t][p] = rand64(r)
		}
	}
}

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

// Hash returns a 64-bit value that is a pure function of the tile vector.
func (b *Board) Hash() uint64 {
	var h uint64
	for p := 0; p < b.size*b.size; p++ {
		h ^= zobristTable[b.Tile(p)][p]
	}
	return h
}
