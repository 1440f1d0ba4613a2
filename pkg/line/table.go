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

package line

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// Table is the 72-line bitboard mirror of a board: one bit per cell per
// line, two colours. Unlike board.Board, Table is not safe for the
// speculative PlaceRaw/RemoveRaw helpers in pkg/tactics to touch: those
// mutate the colour grid only and never call Table.Place/Remove, so a
// Table built once up front stays correct only as long as every mutation
// to the board it mirrors goes through Place/Remove. Callers that use
// PlaceRaw/RemoveRaw must fall back to pattern.AnalyzeDirection instead.
type Table struct {
	blacks [NLines]uint16
	whites [NLines]uint16
}

// Build constructs a Table from scratch by replaying every stone on b.
func Build(b *board.Board) *Table {
	t := &Table{}
	b.Each(func(p position.Position, c stone.Color) {
		t.set(p, c)
	})
	return t
}

func (t *Table) set(p position.Position, c stone.Color) {
	for d := position.Direction(0); d < position.NDirections; d++ {
		ref := cellLines[p.Row][p.Col][d]
		if !ref.ok {
			continue
		}
		bit := uint16(1) << uint(ref.bitPos)
		switch c {
		case stone.Black:
			t.blacks[ref.lineID] |= bit
		case stone.White:
			t.whites[ref.lineID] |= bit
		}
	}
}

func (t *Table) clear(p position.Position) {
	for d := position.Direction(0); d < position.NDirections; d++ {
		ref := cellLines[p.Row][p.Col][d]
		if !ref.ok {
			continue
		}
		bit := ^(uint16(1) << uint(ref.bitPos))
		t.blacks[ref.lineID] &= bit
		t.whites[ref.lineID] &= bit
	}
}

// Place records a stone of colour c at p in O(1): at most 4 lines touch
// any one cell (row, column, and up to two diagonals).
func (t *Table) Place(p position.Position, c stone.Color) {
	t.set(p, c)
}

// Remove clears the stone previously placed at p.
func (t *Table) Remove(p position.Position) {
	t.clear(p)
}

// colorAt reports which colour, if any, has its bit set in the given
// line at bitPos, used by walkLine and endStateAt below.
func (t *Table) colorAt(lineID, bitPos int) stone.Color {
	bit := uint16(1) << uint(bitPos)
	switch {
	case t.blacks[lineID]&bit != 0:
		return stone.Black
	case t.whites[lineID]&bit != 0:
		return stone.White
	default:
		return stone.Empty
	}
}

// AnalyzeDirection extracts the DirectionPattern through p along d for
// colour c directly from the packed line masks, in O(run length) time
// with no board access. It does not require the cell itself to be
// occupied by c, so it also serves speculative what-if callers probing
// an empty cell.
func (t *Table) AnalyzeDirection(p position.Position, d position.Direction, c stone.Color) pattern.DirectionPattern {
	ref := cellLines[p.Row][p.Col][d]
	if !ref.ok {
		// no 5-long line exists through this cell on this axis (only
		// possible at the very corners of the two diagonal axes); treat
		// as a degenerate single-cell run boxed in by both edges.
		return pattern.DirectionPattern{Count: 1, End1: pattern.Edge, End2: pattern.Edge}
	}

	length := lineLen[ref.lineID]

	posCount := t.walkLine(ref.lineID, ref.bitPos, length, 1, c)
	negCount := t.walkLine(ref.lineID, ref.bitPos, length, -1, c)

	end1 := t.endStateAt(ref.lineID, ref.bitPos+posCount+1, length, c)
	end2 := t.endStateAt(ref.lineID, ref.bitPos-negCount-1, length, c)

	if reversedLine[ref.lineID] {
		end1, end2 = end2, end1
	}

	return pattern.DirectionPattern{
		Count: posCount + negCount + 1,
		End1:  end1,
		End2:  end2,
	}
}

func (t *Table) walkLine(lineID, bitPos, length, sign int, c stone.Color) int {
	count := 0
	for {
		next := bitPos + sign*(count+1)
		if next < 0 || next >= length || t.colorAt(lineID, next) != c {
			return count
		}
		count++
	}
}

func (t *Table) endStateAt(lineID, bitPos, length int, c stone.Color) pattern.EndState {
	if bitPos < 0 || bitPos >= length {
		return pattern.Edge
	}
	switch t.colorAt(lineID, bitPos) {
	case stone.Empty:
		return pattern.Empty
	case c:
		return pattern.Empty // unreachable: walkLine would have consumed it
	default:
		return pattern.Opponent
	}
}

// LineLength returns the number of cells on the line that passes through
// p along d, or 0 if no line exists there.
func LineLength(p position.Position, d position.Direction) int {
	ref := cellLines[p.Row][p.Col][d]
	if !ref.ok {
		return 0
	}
	return lineLen[ref.lineID]
}
