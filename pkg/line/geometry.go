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

// Package line implements the 72-line bitboard mirror of the board, with
// O(1) incremental update on stone placement, generalized from mess's
// single 64-bit occupancy bitboard (pkg/board/bitboard) to 72
// independent per-line masks, since renju's pattern evaluator needs
// packed per-line state rather than whole-board occupancy.
package line

import "github.com/ef81sp/holorenju-sub000/pkg/position"

// NLines is the total number of lines in the mirror: 15 rows + 15
// columns + 21 down-right diagonals + 21 up-right diagonals.
const NLines = 72

// cellRef locates one cell's bit within one of the 72 lines.
type cellRef struct {
	lineID int
	bitPos int
	ok     bool // false for directions with no 5-long line through this cell
}

// cellLines[row][col][dir] is precomputed once at package init, since it
// depends only on board geometry, not on stone placement.
var cellLines [position.Size][position.Size][position.NDirections]cellRef

// lineLen[lineID] is the length of that line, precomputed once.
var lineLen [NLines]int

// reversedLine[lineID] is true for a line whose bit order runs against
// position.Direction's positive step, where End1 and End2 must be
// swapped so every caller observes the same physical convention as
// pattern.AnalyzeDirection (see DirectionPattern). No line is marked:
// on up-right diagonals the bit position grows as row falls and col
// rises, which is already DiagUp's positive step.
var reversedLine [NLines]bool

func init() {
	for row := 0; row < position.Size; row++ {
		for col := 0; col < position.Size; col++ {
			cellLines[row][col][position.Horizontal] = cellRef{lineID: row, bitPos: col, ok: true}
			cellLines[row][col][position.Vertical] = cellRef{lineID: 15 + col, bitPos: row, ok: true}

			if id, bit, ok := downRightLine(row, col); ok {
				cellLines[row][col][position.DiagDown] = cellRef{lineID: id, bitPos: bit, ok: true}
			}
			if id, bit, ok := upRightLine(row, col); ok {
				cellLines[row][col][position.DiagUp] = cellRef{lineID: id, bitPos: bit, ok: true}
			}
		}
	}

	for id := 0; id < 15; id++ {
		lineLen[id] = position.Size // rows
	}
	for id := 15; id < 30; id++ {
		lineLen[id] = position.Size // columns
	}
	for id := 30; id <= 50; id++ {
		d := (id - 30) - 10 // row - col
		lineLen[id] = position.Size - abs(d)
	}
	for id := 51; id <= 71; id++ {
		s := (id - 51) + 4 // row + col
		if s <= 14 {
			lineLen[id] = s + 1
		} else {
			lineLen[id] = 29 - s
		}
	}
}

// downRightLine computes the (lineID, bitPos) of (row,col) on its
// down-right diagonal (row and col both increasing along the line),
// lineId = 30 + (row-col+10), bitPos = row - max(0, row-col).
func downRightLine(row, col int) (id, bit int, ok bool) {
	d := row - col
	if d < -10 || d > 10 {
		return 0, 0, false
	}
	id = 30 + (d + 10)
	m := d
	if m < 0 {
		m = 0
	}
	bit = row - m
	return id, bit, true
}

// upRightLine computes the (lineID, bitPos) of (row,col) on its up-right
// diagonal (row decreasing as col increases):
// lineId = 51 + (row+col-4), bitPos = min(row+col,14) - row.
func upRightLine(row, col int) (id, bit int, ok bool) {
	s := row + col
	if s < 4 || s > 24 {
		return 0, 0, false
	}
	id = 51 + (s - 4)
	m := s
	if m > 14 {
		m = 14
	}
	bit = m - row
	return id, bit, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
