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

package tactics

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// EvaluateForbiddenTrap scores a just-placed WHITE stone at p for how
// much of its threat is unaddressable by black because the defence
// cells are themselves forbidden moves.
func EvaluateForbiddenTrap(b *board.Board, p position.Position, s pattern.Scores) int {
	bonus := 0
	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, stone.White)
		switch pattern.Classify(dp) {
		case pattern.Four:
			ends := FourCompletionPoints(b, p, d, stone.White)
			if len(ends) > 0 && allForbidden(b, ends) {
				bonus += s.ForbiddenTrapStrong
			}
		case pattern.OpenThree:
			for _, end := range consecutiveThreeExtensions(b, p, d, stone.White) {
				if forbidden, _ := rule.CheckPlacementForbidden(b, end); forbidden {
					bonus += s.ForbiddenTrapSetup
				}
			}
			straightPts := rule.GetConsecutiveThreeStraightFourPoints(b, p, d, stone.White)
			if countForbidden(b, straightPts) == 1 {
				bonus += s.ForbiddenTrapStrong
			}
		default:
			if gaps := rule.CheckJumpThree(b, p, d, stone.White); len(gaps) > 0 {
				straightPts := rule.GetJumpThreeStraightFourPoints(b, p, d, stone.White)
				if countForbidden(b, straightPts) == 1 {
					bonus += s.ForbiddenTrapStrong
				}
			}
		}
	}
	return bonus
}

// EvaluateForbiddenVulnerability scores the symmetric penalty for a
// just-placed BLACK stone at p: open threes (or valid jump threes) whose
// extension is itself forbidden for black expose that three to being
// neutralised for free, worse so if white is already poised to exploit
// it. The total is clamped by ForbiddenVulnerabilityCap.
func EvaluateForbiddenVulnerability(b *board.Board, p position.Position, s pattern.Scores) int {
	penalty := 0
	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, stone.Black)
		var extensions []position.Position
		switch {
		case pattern.Classify(dp) == pattern.OpenThree:
			extensions = consecutiveThreeExtensions(b, p, d, stone.Black)
		default:
			if gaps := rule.CheckJumpThree(b, p, d, stone.Black); len(gaps) > 0 {
				extensions = gaps
			}
		}

		for _, end := range extensions {
			forbidden, _ := rule.CheckPlacementForbidden(b, end)
			if !forbidden {
				continue
			}
			if whiteWithinTwo(b, end) {
				penalty += s.ForbiddenVulnerabilityStrong
			} else {
				penalty += s.ForbiddenVulnerabilityMild
			}
		}
	}
	if penalty > s.ForbiddenVulnerabilityCap {
		penalty = s.ForbiddenVulnerabilityCap
	}
	return penalty
}

// consecutiveThreeExtensions returns the one or two physical extension
// cells of a consecutive three through p in direction d, without the
// stricter "leads to a true open four" filter that
// GetConsecutiveThreeStraightFourPoints applies.
func consecutiveThreeExtensions(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	pos := p
	for pos.Step(d, 1).Valid() && b.At(pos.Step(d, 1)) == c {
		pos = pos.Step(d, 1)
	}
	neg := p
	for neg.Step(d, -1).Valid() && b.At(neg.Step(d, -1)) == c {
		neg = neg.Step(d, -1)
	}

	var pts []position.Position
	if end := pos.Step(d, 1); end.Valid() && b.At(end) == stone.Empty {
		pts = append(pts, end)
	}
	if end := neg.Step(d, -1); end.Valid() && b.At(end) == stone.Empty {
		pts = append(pts, end)
	}
	return pts
}

func allForbidden(b *board.Board, ps []position.Position) bool {
	if len(ps) == 0 {
		return false
	}
	for _, p := range ps {
		if forbidden, _ := rule.CheckPlacementForbidden(b, p); !forbidden {
			return false
		}
	}
	return true
}

func countForbidden(b *board.Board, ps []position.Position) int {
	n := 0
	for _, p := range ps {
		if forbidden, _ := rule.CheckPlacementForbidden(b, p); forbidden {
			n++
		}
	}
	return n
}

// whiteWithinTwo reports whether a white stone lies within Chebyshev
// distance 2 of p, marking the extension as "under attack" for the
// stronger forbidden-vulnerability penalty.
func whiteWithinTwo(b *board.Board, p position.Position) bool {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			q := position.New(p.Row+dr, p.Col+dc)
			if q.Valid() && b.At(q) == stone.White {
				return true
			}
		}
	}
	return false
}
