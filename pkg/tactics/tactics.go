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

// Package tactics implements the speculative "place, probe, undo"
// helpers used by the position evaluator and the VCF/VCT solvers:
// four-three and double-three detection, mise targeting, and the two
// forbidden-move-exploitation bonuses (trap for white, vulnerability for
// black). Grounded on mess's static-exchange-evaluation idiom
// (pkg/search/eval/see.go), which speculatively plays a capture, scores
// the resulting material swing, then reverts — generalized here from a
// capture sequence to a single stone placement.
package tactics

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// CreatesFourThree reports whether placing c at p makes a simultaneous
// four (of any kind) and a valid open three (consecutive or jump) on the
// resulting stone. The placement is temporary: PlaceRaw/RemoveRaw bound
// every exit path so the board is always restored.
func CreatesFourThree(b *board.Board, p position.Position, c stone.Color) bool {
	b.PlaceRaw(p, c)
	fourDirs, threeDirs, _, _ := rule.CountThreatDirections(b, p, c)
	b.RemoveRaw(p)
	return fourDirs >= 1 && threeDirs >= 1
}

// CreatesDoubleThree reports whether placing c at p makes two or more
// open threes (consecutive or valid jump).
func CreatesDoubleThree(b *board.Board, p position.Position, c stone.Color) bool {
	b.PlaceRaw(p, c)
	_, threeDirs, _, _ := rule.CountThreatDirections(b, p, c)
	b.RemoveRaw(p)
	return threeDirs >= 2
}

// neighbourhood5 lists the 5x5 neighbourhood of p, excluding its centre.
func neighbourhood5(p position.Position) []position.Position {
	var out []position.Position
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			q := position.New(p.Row+dr, p.Col+dc)
			if q.Valid() {
				out = append(out, q)
			}
		}
	}
	return out
}

// FindMiseTargets returns the deduplicated set of empty cells at which
// colour c, having just played at p, could next play to create a
// four-three: the empty cells up to four steps from p in each of the
// four directions, plus the 5x5 neighbourhood of p.
func FindMiseTargets(b *board.Board, p position.Position, c stone.Color) []position.Position {
	seen := make(map[position.Position]bool)
	var targets []position.Position

	consider := func(q position.Position) {
		if !q.Valid() || seen[q] || b.At(q) != stone.Empty {
			return
		}
		seen[q] = true
		if c == stone.Black {
			if forbidden, _ := rule.CheckPlacementForbidden(b, q); forbidden {
				return
			}
		}
		if CreatesFourThree(b, q, c) {
			targets = append(targets, q)
		}
	}

	for d := position.Direction(0); d < position.NDirections; d++ {
		for sign := -1; sign <= 1; sign += 2 {
			cur := p
			for i := 1; i <= 4; i++ {
				cur = p.Step(d, sign*i)
				if !cur.Valid() {
					break
				}
				if b.At(cur) != stone.Empty {
					continue
				}
				consider(cur)
			}
		}
	}

	for _, q := range neighbourhood5(p) {
		consider(q)
	}

	return targets
}

// IsDoubleMise reports whether, among targets, playing an opposing stone
// at any single target still leaves some other target able to create a
// four-three — meaning a single opponent reply cannot defend against
// every target simultaneously.
func IsDoubleMise(b *board.Board, p position.Position, c stone.Color, targets []position.Position) bool {
	if len(targets) < 2 {
		return false
	}

	opp := c.Other()
	for i, ti := range targets {
		b.PlaceRaw(ti, opp)
		survives := false
		for j, tj := range targets {
			if i == j {
				continue
			}
			if b.At(tj) == stone.Empty && CreatesFourThree(b, tj, c) {
				survives = true
				break
			}
		}
		b.RemoveRaw(ti)
		if !survives {
			return false
		}
	}
	return true
}

// HasFollowUpThreat reports whether, after the opponent defends every
// defence position of the four just made at p by c, some cell in the 3x3
// neighbourhood of that defence still lets c make a new four. Used to
// gate the single-four penalty in the leaf/position evaluators.
func HasFollowUpThreat(b *board.Board, p position.Position, c stone.Color) bool {
	opp := c.Other()
	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, c)
		if pattern.Classify(dp) != pattern.Four && pattern.Classify(dp) != pattern.OpenFour {
			continue
		}

		for _, def := range FourCompletionPoints(b, p, d, c) {
			if b.At(def) != stone.Empty {
				continue
			}
			b.PlaceRaw(def, opp)
			found := false
			for dr := -1; dr <= 1 && !found; dr++ {
				for dc := -1; dc <= 1 && !found; dc++ {
					q := position.New(def.Row+dr, def.Col+dc)
					if !q.Valid() || b.At(q) != stone.Empty {
						continue
					}
					if CreatesFourThree(b, q, c) {
						found = true
					} else {
						b.PlaceRaw(q, c)
						fourDirs, _, _, _ := rule.CountThreatDirections(b, q, c)
						b.RemoveRaw(q)
						if fourDirs >= 1 {
							found = true
						}
					}
				}
			}
			b.RemoveRaw(def)
			if found {
				return true
			}
		}
	}
	return false
}

// FourCompletionPoints enumerates the empty cell(s) that complete a
// four through p in direction d to a five: the open end(s) of a
// consecutive four, or the gap of a jump four.
func FourCompletionPoints(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	var pts []position.Position

	// consecutive four: walk to both physical ends of the run, then look
	// one cell beyond each.
	pos := p
	for pos.Step(d, 1).Valid() && b.At(pos.Step(d, 1)) == c {
		pos = pos.Step(d, 1)
	}
	neg := p
	for neg.Step(d, -1).Valid() && b.At(neg.Step(d, -1)) == c {
		neg = neg.Step(d, -1)
	}
	if end := pos.Step(d, 1); end.Valid() && b.At(end) == stone.Empty {
		pts = append(pts, end)
	}
	if end := neg.Step(d, -1); end.Valid() && b.At(end) == stone.Empty {
		pts = append(pts, end)
	}

	pts = append(pts, rule.CheckJumpFour(b, p, d, c)...)
	return pts
}
