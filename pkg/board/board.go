// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements a complete 15x15 renju board along with the
// incremental Zobrist hash carried alongside it.
package board

import (
	"fmt"
	"strings"

	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/zobrist"
)

// Board represents the state of a renju board at a given position.
type Board struct {
	cells [position.Size][position.Size]stone.Color

	Hash zobrist.Key

	StoneCount  [stone.N]int
	SideToMove  stone.Color
	LastMove    position.Position
}

// New returns an empty board with black to move, matching renju's fixed
// opening convention (black always plays first).
func New() *Board {
	b := &Board{SideToMove: stone.Black, LastMove: position.None}
	return b
}

// At returns the colour at p. Calling it with an invalid position
// panics, mirroring mess's square-indexing contract.
func (b *Board) At(p position.Position) stone.Color {
	if !p.Valid() {
		panic(fmt.Sprintf("board: invalid position %v", p))
	}
	return b.cells[p.Row][p.Col]
}

// Place puts a stone of colour c at p, updates the stone counts, the
// incremental Zobrist hash, side to move and last move. Placing on an
// occupied cell, or placing Empty, is a programming error and panics.
func (b *Board) Place(p position.Position, c stone.Color) {
	if c == stone.Empty {
		panic("board: cannot place an empty stone")
	}
	if b.cells[p.Row][p.Col] != stone.Empty {
		panic(fmt.Sprintf("board: cell %v already occupied", p))
	}

	b.cells[p.Row][p.Col] = c
	b.StoneCount[c]++
	b.Hash ^= zobrist.PieceSquare[c][p.Row][p.Col]
	b.Hash ^= zobrist.SideToMove
	b.SideToMove = b.SideToMove.Other()
	b.LastMove = p
}

// Remove clears the stone at p, the inverse of Place for the cell, the
// stone counts, the hash and the side to move. LastMove is reset to
// None rather than to the move before the matching Place; a caller that
// needs the earlier LastMove restores it itself.
func (b *Board) Remove(p position.Position) {
	c := b.cells[p.Row][p.Col]
	if c == stone.Empty {
		panic(fmt.Sprintf("board: cell %v already empty", p))
	}

	b.cells[p.Row][p.Col] = stone.Empty
	b.StoneCount[c]--
	b.Hash ^= zobrist.PieceSquare[c][p.Row][p.Col]
	b.Hash ^= zobrist.SideToMove
	b.SideToMove = b.SideToMove.Other()
	b.LastMove = position.None
}

// PlaceRaw/RemoveRaw mutate only the colour grid and stone counts, not
// the hash or side to move. Speculative tactics-layer helpers use these
// so that they never need to touch the LineTable or Zobrist hash that a
// full Place/Remove round trip would disturb; see line.Table's
// non-reentrancy contract.
func (b *Board) PlaceRaw(p position.Position, c stone.Color) {
	b.cells[p.Row][p.Col] = c
	b.StoneCount[c]++
}

func (b *Board) RemoveRaw(p position.Position) {
	c := b.cells[p.Row][p.Col]
	b.cells[p.Row][p.Col] = stone.Empty
	b.StoneCount[c]--
}

// Empty reports whether the board has no stones on it.
func (b *Board) Empty() bool {
	return b.StoneCount[stone.Black] == 0 && b.StoneCount[stone.White] == 0
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Equal reports whether two boards hold the same stones, side to move
// and hash. Used by tests to check that a speculative probe left the
// board as it found it.
func (b *Board) Equal(o *Board) bool {
	if b.SideToMove != o.SideToMove || b.Hash != o.Hash {
		return false
	}
	return b.cells == o.cells
}

// Each calls f for every occupied cell on the board.
func (b *Board) Each(f func(p position.Position, c stone.Color)) {
	for r := 0; r < position.Size; r++ {
		for c := 0; c < position.Size; c++ {
			if col := b.cells[r][c]; col != stone.Empty {
				f(position.Position{Row: r, Col: c}, col)
			}
		}
	}
}

// String renders an ascii-art board, matching mess's
// human-readable Board.String idiom.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < position.Size; r++ {
		for c := 0; c < position.Size; c++ {
			switch b.cells[r][c] {
			case stone.Black:
				sb.WriteByte('X')
			case stone.White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "side to move: %s  hash: %016x\n", b.SideToMove, uint64(b.Hash))
	return sb.String()
}
