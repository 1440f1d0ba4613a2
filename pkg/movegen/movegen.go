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

// Package movegen generates and orders candidate moves, the way mess's
// pkg/search/eval package scores moves via OfMove for
// move-ordering, generalized here from legal-move enumeration over a
// piece-move table to legal-cell enumeration over a stone grid.
package movegen

import (
	"sort"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// Generate returns every empty cell within Chebyshev distance 2 of an
// existing stone, or just the centre point (7,7) on an empty board. For
// black, forbidden cells are filtered out unless skipForbiddenCheck is
// set — except a forbidden cell that also completes a five, which is
// always kept, since five takes precedence over any forbidden
// classification.
func Generate(b *board.Board, colour stone.Color, skipForbiddenCheck bool) []position.Position {
	if b.Empty() {
		return []position.Position{position.New(7, 7)}
	}

	var moves []position.Position
	seen := make(map[position.Position]bool)

	b.Each(func(p position.Position, _ stone.Color) {
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := position.New(p.Row+dr, p.Col+dc)
				if !q.Valid() || seen[q] || b.At(q) != stone.Empty {
					continue
				}
				seen[q] = true

				if colour == stone.Black && !skipForbiddenCheck {
					b.PlaceRaw(q, colour)
					five := rule.CheckFive(b, q)
					forbidden, _ := rule.CheckForbiddenMoveCached(b, q)
					b.RemoveRaw(q)
					if forbidden && !five {
						continue
					}
				}

				moves = append(moves, q)
			}
		}
	})

	return moves
}

// Hints carries the move-ordering context sortMoves needs: the
// principal/TT move to try first, this ply's killer moves, and the
// history table.
type Hints struct {
	PVMove  position.Position
	Killers [2]position.Position
	History *[position.Size][position.Size]int
}

// Sort orders moves by PV/TT move, then killer moves, then history
// score, then a shallow tactical score favouring cells near existing
// stones and near the board centre.
func Sort(moves []position.Position, b *board.Board, hints Hints) {
	score := func(p position.Position) int {
		switch {
		case p == hints.PVMove:
			return 1 << 30
		case p == hints.Killers[0]:
			return 1 << 29
		case p == hints.Killers[1]:
			return 1<<29 - 1
		}

		sc := 0
		if hints.History != nil {
			sc = hints.History[p.Row][p.Col]
		}
		sc += tacticalScore(b, p)
		return sc
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return score(moves[i]) > score(moves[j])
	})
}

// tacticalScore favours cells close to existing stones and close to the
// board centre, a cheap proxy for "probably interesting" used only to
// break ties among moves with no PV/killer/history signal.
func tacticalScore(b *board.Board, p position.Position) int {
	const mid = position.Size / 2
	centerDist := abs(p.Row-mid) + abs(p.Col-mid)
	score := 14 - centerDist

	nearest := 1 << 30
	b.Each(func(q position.Position, _ stone.Color) {
		if d := p.Chebyshev(q); d < nearest {
			nearest = d
		}
	})
	if nearest <= 2 {
		score += (3 - nearest) * 2
	}
	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
