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

// Package vcf implements the forcing-sequence proof searches: VCF
// (Victory by Continuous Fours), VCT (Victory by Continuous Threats),
// and Mise-VCF. Each is a depth-bounded AND/OR search — grounded on
// mess's quiescence search (pkg/search/quiescence.go), which recurses
// through forcing captures only until the position goes quiet; here the
// "forcing moves" are fours and open threes instead of captures, and the
// search terminates on a proven five instead of a quiet position.
package vcf

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
)

// MaxDepth bounds every proof search below, so a position with no proof
// terminates instead of exhausting the board.
const MaxDepth = 40

// StoneCountThreshold is the ≈14-stone gate below which only immediate
// VCF (not the more expensive VCT) is attempted.
const StoneCountThreshold = 14

// Proof is a winning forcing sequence: Moves alternates attacker,
// defender, attacker, ... starting and ending on an attacker move that
// completes a five. FirstMove is the move the caller should actually
// play now.
type Proof struct {
	FirstMove position.Position
	Moves     []position.Position
}

// Options carries the handful of feature flags the solvers consult.
type Options struct {
	Scores pattern.Scores
}

// FindVCF runs a depth-bounded AND/OR search where the attacker always
// plays a move that makes a four or a five, and the defender has only
// the four's forced defence cell(s). Returns the proof, or ok=false if
// none exists within MaxDepth.
func FindVCF(b *board.Board, colour stone.Color, opts Options) (Proof, bool) {
	var moves []position.Position
	ok := vcf(b, colour, 0, &moves)
	if !ok {
		return Proof{}, false
	}
	return Proof{FirstMove: moves[0], Moves: moves}, true
}

func vcf(b *board.Board, colour stone.Color, depth int, path *[]position.Position) bool {
	if depth >= MaxDepth {
		return false
	}

	for _, p := range candidateCells(b) {
		if b.At(p) != stone.Empty {
			continue
		}
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

		unstoppable, forcedDefence := fourShape(b, p, colour)
		if !unstoppable && forcedDefence.IsNone() {
			b.RemoveRaw(p)
			continue
		}

		if unstoppable {
			// either both ends of one four are open, or two independent
			// four threats exist: a single defending move cannot cover
			// both, so the attacker wins regardless of the reply.
			*path = append(*path, p)
			b.RemoveRaw(p)
			return true
		}

		opp := colour.Other()
		b.PlaceRaw(forcedDefence, opp)
		sub := append(append([]position.Position{}, *path...), p, forcedDefence)
		solved := vcf(b, colour, depth+1, &sub)
		b.RemoveRaw(forcedDefence)
		b.RemoveRaw(p)

		if solved {
			*path = sub
			return true
		}
	}

	return false
}

// fourShape reports whether p (just placed) makes an unstoppable shape
// (an open four, or two or more independent four threats that a single
// defending move cannot all cover) or a single plain four, in which case
// its one forced defence cell is returned.
func fourShape(b *board.Board, p position.Position, c stone.Color) (unstoppable bool, forcedDefence position.Position) {
	seen := make(map[position.Position]bool)
	var defence []position.Position

	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, c)
		switch pattern.Classify(dp) {
		case pattern.OpenFour:
			return true, position.None
		case pattern.Four:
			for _, q := range tactics.FourCompletionPoints(b, p, d, c) {
				if !seen[q] {
					seen[q] = true
					defence = append(defence, q)
				}
			}
		default:
			for _, q := range rule.CheckJumpFour(b, p, d, c) {
				if !seen[q] {
					seen[q] = true
					defence = append(defence, q)
				}
			}
		}
	}

	switch len(defence) {
	case 0:
		return false, position.None
	case 1:
		return false, defence[0]
	default:
		return true, position.None
	}
}

// candidateCells returns every empty cell within Chebyshev distance 2 of
// a stone, the same neighbourhood move generation uses, since a forcing
// move is always adjacent to existing stones in practice.
func candidateCells(b *board.Board) []position.Position {
	seen := make(map[position.Position]bool)
	var cells []position.Position
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
				cells = append(cells, q)
			}
		}
	})
	return cells
}

// HasOpenThree reports whether colour has an open three anywhere on the
// board, the VCT root guard.
func HasOpenThree(b *board.Board, colour stone.Color) bool {
	found := false
	b.Each(func(p position.Position, c stone.Color) {
		if found || c != colour {
			return
		}
		for d := position.Direction(0); d < position.NDirections; d++ {
			if pattern.Classify(pattern.AnalyzeDirection(b, p, d, colour)) == pattern.OpenThree {
				found = true
				return
			}
		}
	})
	return found
}
