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
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// Features is the dense per-cell precomputation the leaf evaluator reads
// on every call: the pattern through each occupied cell in each
// direction, and, for every empty cell and colour, which directions
// would become a four or an open three if that colour played there.
//
// A Features value is built fresh by Precompute for each evaluateBoard
// call rather than mutated in place, since Go gives a cheap,
// goroutine-safe way to get the same "exactly one evaluation in-flight
// per value" contract without a global — the search context still only
// ever runs one evaluation at a time. eval.Board is the consumer: it
// calls Precompute once per evaluateBoard call against the search
// context's incrementally-maintained Table and reads Pattern/
// FourThreePotential instead of board-walking every stone.
type Features struct {
	// Pattern[row][col][dir] is valid only where the board has a stone.
	Pattern [position.Size][position.Size][position.NDirections]pattern.DirectionPattern

	// fourDirBits[colour][row][col] has bit d set iff playing colour at
	// the empty cell (row,col) would produce at least a Four in
	// direction d.
	fourDirBits [stone.N][position.Size][position.Size]uint8
	// threeDirBits is the same for at-least-OpenThree.
	threeDirBits [stone.N][position.Size][position.Size]uint8
}

// Precompute walks all 72 lines of t in O(total line length) and fills a
// Features value.
func Precompute(t *Table, occupied func(position.Position) stone.Color) *Features {
	f := &Features{}

	for r := 0; r < position.Size; r++ {
		for c := 0; c < position.Size; c++ {
			p := position.Position{Row: r, Col: c}
			col := occupied(p)

			if col != stone.Empty {
				for d := position.Direction(0); d < position.NDirections; d++ {
					f.Pattern[r][c][d] = t.AnalyzeDirection(p, d, col)
				}
				continue
			}

			for _, col := range [2]stone.Color{stone.Black, stone.White} {
				var fourBits, threeBits uint8
				for d := position.Direction(0); d < position.NDirections; d++ {
					dp := t.AnalyzeDirection(p, d, col)
					// AnalyzeDirection counts the probed empty cell as if
					// col occupied it, so dp is already the shape that
					// playing col at p would produce.
					shape := pattern.Classify(dp)
					if shape == pattern.Four || shape == pattern.OpenFour || shape == pattern.Five {
						fourBits |= 1 << uint(d)
					}
					if shape == pattern.OpenThree {
						threeBits |= 1 << uint(d)
					}
				}
				f.fourDirBits[col][r][c] = fourBits
				f.threeDirBits[col][r][c] = threeBits
			}
		}
	}

	return f
}

// FourThreePotential reports whether playing colour at the empty cell
// (row,col) would simultaneously create a four in some direction and an
// open three in some (possibly different) direction — the
// hasFourThreePotential invariant.
func (f *Features) FourThreePotential(row, col int, c stone.Color) bool {
	return f.fourDirBits[c][row][col] != 0 && f.threeDirBits[c][row][col] != 0
}

// FourDirections returns the bitset (bit d set per position.Direction)
// of directions in which playing c at the empty cell (row,col) creates
// at least a four.
func (f *Features) FourDirections(row, col int, c stone.Color) uint8 {
	return f.fourDirBits[c][row][col]
}

// ThreeDirections is FourDirections' open-three analogue.
func (f *Features) ThreeDirections(row, col int, c stone.Color) uint8 {
	return f.threeDirBits[c][row][col]
}
