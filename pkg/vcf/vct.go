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

package vcf

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
)

// FindVCT runs the attacker/defender AND/OR search: the
// attacker's moves are those making a four or a valid open three; the
// defender's moves are the threat's defence cells plus any cell where
// the defender can answer with a counter-four or counter-open-three of
// their own. Before searching, if the defender already has an
// unaddressed open three on the board, VCT is skipped outright — a VCT
// proof cannot gate through a three it hasn't itself neutralised; the
// caller should fall back to FindVCF.
func FindVCT(b *board.Board, colour stone.Color, opts Options) (Proof, bool) {
	if HasOpenThree(b, colour.Other()) {
		return Proof{}, false
	}

	var moves []position.Position
	ok := vct(b, colour, 0, &moves)
	if !ok {
		return Proof{}, false
	}
	return Proof{FirstMove: moves[0], Moves: moves}, true
}

func vct(b *board.Board, colour stone.Color, depth int, path *[]position.Position) bool {
	if depth >= MaxDepth {
		return false
	}

	opp := colour.Other()

	for _, p := range candidateCells(b) {
		if colour == stone.Black {
			if forbidden, _ := rule.CheckPlacementForbidden(b, p); forbidden {
				continue
			}
		}

		b.PlaceRaw(p, colour)

		if rule.CheckFive(b, p) {
			*path = append(*path, p)
			b.RemoveRaw(p)
			return true
		}

		unstoppable, defenders, isThree := attackerThreat(b, p, colour)
		if len(defenders) == 0 && !unstoppable {
			b.RemoveRaw(p)
			continue
		}
		if unstoppable {
			*path = append(*path, p)
			b.RemoveRaw(p)
			return true
		}

		defenders = append(defenders, counterMoves(b, opp)...)
		defenders = dedupPositions(defenders)

		allRefuted := true
		for _, def := range defenders {
			if b.At(def) != stone.Empty {
				continue
			}
			b.PlaceRaw(def, opp)

			sub := append(append([]position.Position{}, *path...), p, def)
			solved := vct(b, colour, depth+1, &sub)
			if !solved && isThree {
				// ct=three fallback: a defender reply that merely
				// counter-threatens (rather than truly defending) only
				// refutes the line if the attacker also lacks a VCF
				// from here.
				solved = vcf(b, colour, depth+1, &sub)
			}

			b.RemoveRaw(def)
			if !solved {
				allRefuted = false
				break
			}
			*path = sub
		}

		b.RemoveRaw(p)
		if allRefuted && len(defenders) > 0 {
			return true
		}
	}

	return false
}

// attackerThreat classifies the just-placed stone at p for colour: an
// unstoppable four/open-four, a single four's forced defence cell(s), or
// a valid open three's defence cells. isThree reports the latter case,
// used to gate the ct=three VCF fallback above.
func attackerThreat(b *board.Board, p position.Position, c stone.Color) (unstoppable bool, defenders []position.Position, isThree bool) {
	if u, def := fourShape(b, p, c); u || !def.IsNone() {
		if u {
			return true, nil, false
		}
		return false, []position.Position{def}, false
	}

	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, c)
		if pattern.Classify(dp) == pattern.OpenThree {
			defenders = append(defenders, threeExtensions(b, p, d, c)...)
			isThree = true
			continue
		}
		if c != stone.Black {
			if gaps := rule.CheckJumpThree(b, p, d, c); len(gaps) > 0 {
				defenders = append(defenders, gaps...)
				isThree = true
			}
			continue
		}
		// black: a jump three only counts if it is not a "fake" per
		// rule.CheckForbiddenMove's validity rule.
		if gaps := rule.CheckJumpThree(b, p, d, c); len(gaps) > 0 {
			for _, g := range gaps {
				if forbidden, _ := rule.CheckPlacementForbidden(b, g); !forbidden {
					defenders = append(defenders, gaps...)
					isThree = true
					break
				}
			}
		}
	}

	return false, dedupPositions(defenders), isThree
}

func threeExtensions(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	pos := p
	for pos.Step(d, 1).Valid() && b.At(pos.Step(d, 1)) == c {
		pos = pos.Step(d, 1)
	}
	neg := p
	for neg.Step(d, -1).Valid() && b.At(neg.Step(d, -1)) == c {
		neg = neg.Step(d, -1)
	}

	var pts []position.Position
	if e := pos.Step(d, 1); e.Valid() && b.At(e) == stone.Empty {
		pts = append(pts, e)
	}
	if e := neg.Step(d, -1); e.Valid() && b.At(e) == stone.Empty {
		pts = append(pts, e)
	}
	return pts
}

// counterMoves returns every empty cell near existing stones at which
// defender could answer with a counter-four or counter-open-three of
// their own, widening the defender's options beyond the strict defence
// cells.
func counterMoves(b *board.Board, defender stone.Color) []position.Position {
	var moves []position.Position
	for _, q := range candidateCells(b) {
		if defender == stone.Black {
			if forbidden, _ := rule.CheckPlacementForbidden(b, q); forbidden {
				continue
			}
		}
		if tactics.CreatesFourThree(b, q, defender) {
			moves = append(moves, q)
			continue
		}

		b.PlaceRaw(q, defender)
		u, def := fourShape(b, q, defender)
		makesFour := u || !def.IsNone()
		makesThree := false
		if !makesFour {
			for d := position.Direction(0); d < position.NDirections; d++ {
				if pattern.Classify(pattern.AnalyzeDirection(b, q, d, defender)) == pattern.OpenThree {
					makesThree = true
					break
				}
			}
		}
		b.RemoveRaw(q)

		if makesFour || makesThree {
			moves = append(moves, q)
		}
	}
	return moves
}

func dedupPositions(ps []position.Position) []position.Position {
	if len(ps) < 2 {
		return ps
	}
	seen := make(map[position.Position]bool, len(ps))
	out := ps[:0]
	for _, p := range ps {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
