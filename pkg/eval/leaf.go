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

package eval

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/line"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
)

// Board scores the whole board from perspective's point of view: the sum
// of every stone's pattern score, plus connectivity, minus a single-four
// penalty, with a tempo discount for the side that moved last, and a
// four-three threat scan bonus for either side that can still make one.
// If opts.Lines is set, the per-direction patterns
// are read from it via a single line.Precompute call instead of
// board-walking every stone in every direction.
func Board(b *board.Board, perspective stone.Color, lastMoverIsPerspective bool, opts Options) int {
	s := opts.Scores

	var features *line.Features
	if opts.Lines != nil {
		features = line.Precompute(opts.Lines, b.At)
	}

	my := sideScore(b, perspective, lastMoverIsPerspective, opts, features)
	opp := sideScore(b, perspective.Other(), false, opts, features)

	if s.LeafFourThreeThreat > 0 {
		if b.StoneCount[perspective] >= 5 && hasFourThreeThreat(b, perspective, features) {
			my += s.LeafFourThreeThreat
		}
		if b.StoneCount[perspective.Other()] >= 5 && hasFourThreeThreat(b, perspective.Other(), features) {
			opp += s.LeafFourThreeThreat
		}
	}

	return my - opp
}

// sideScore sums colour's per-stone pattern scores, applying
// connectivity bonus, the single-four penalty, and (if discount applies)
// the tempo discount on open-three contributions.
func sideScore(b *board.Board, colour stone.Color, discountOpenThree bool, opts Options, features *line.Features) int {
	s := opts.Scores

	total := 0
	fourScore := 0
	openThreeScore := 0

	b.Each(func(p position.Position, c stone.Color) {
		if c != colour {
			return
		}

		stoneTotal := 0
		activeDirs := 0
		for d := position.Direction(0); d < position.NDirections; d++ {
			var dp pattern.DirectionPattern
			if features != nil {
				dp = features.Pattern[p.Row][p.Col][d]
			} else {
				dp = pattern.AnalyzeDirection(b, p, d, colour)
			}
			t := pattern.Classify(dp)
			sc := pattern.Score(s, dp)
			if d == position.DiagDown || d == position.DiagUp {
				sc = int(float64(sc) * s.DiagonalBonusMultiplier)
			}
			if sc > 0 {
				activeDirs++
			}
			stoneTotal += sc

			switch t {
			case pattern.Four, pattern.OpenFour:
				fourScore += sc
			case pattern.OpenThree:
				openThreeScore += sc
			}
		}

		if activeDirs >= 2 {
			stoneTotal += s.ConnectivityBonus * (activeDirs - 1)
		}

		total += stoneTotal
	})

	if opts.EnableSingleFourPenalty && fourScore > 0 && openThreeScore == 0 {
		total -= int(float64(fourScore) * (1 - opts.SingleFourPenaltyMultiplier))
	}

	if discountOpenThree && openThreeScore > 0 {
		total -= int(float64(openThreeScore) * s.TempoOpenThreeDiscount)
	}

	return total
}

// hasFourThreeThreat reports whether colour has any empty cell where
// playing next would create a simultaneous four and open three,
// pre-filtered by cells adjacent to an existing stone. When features is
// available, the fourDirBits/threeDirBits precomputed per empty cell
// answer this directly; otherwise it falls back to a speculative
// tactics.CreatesFourThree probe per candidate cell.
func hasFourThreeThreat(b *board.Board, colour stone.Color, features *line.Features) bool {
	found := false
	b.Each(func(p position.Position, c stone.Color) {
		if found || c == stone.Empty {
			return
		}
		for dr := -1; dr <= 1 && !found; dr++ {
			for dc := -1; dc <= 1 && !found; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := position.New(p.Row+dr, p.Col+dc)
				if !q.Valid() || b.At(q) != stone.Empty {
					continue
				}
				if features != nil {
					if features.FourThreePotential(q.Row, q.Col, colour) {
						found = true
					}
					continue
				}
				if tactics.CreatesFourThree(b, q, colour) {
					found = true
				}
			}
		}
	})
	return found
}
