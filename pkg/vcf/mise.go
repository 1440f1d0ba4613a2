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
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
)

// FindMiseVCF looks for a quiet setup move (a "mise") that makes no
// immediate four or open three itself, but leaves one or more cells from
// which the next move would complete a four-three (tactics.FindMiseTargets).
// A mise only counts as winning if, for every reasonable reply the
// opponent has, the resulting position still yields a FindVCF proof —
// the "nori" filter: a mise whose direct answer (blocking the target
// outright) leaves the opponent with a counter-threat that breaks the
// follow-up VCF is rejected, since then the mise bought nothing.
func FindMiseVCF(b *board.Board, colour stone.Color, opts Options) (Proof, bool) {
	opp := colour.Other()

	for _, p := range candidateCells(b) {
		if colour == stone.Black {
			if forbidden, _ := rule.CheckPlacementForbidden(b, p); forbidden {
				continue
			}
		}

		b.PlaceRaw(p, colour)

		if rule.CheckFive(b, p) {
			b.RemoveRaw(p)
			continue // a direct five isn't a "mise", it's already won elsewhere.
		}
		if makesForcingThreat(b, p, colour) {
			b.RemoveRaw(p)
			continue // not quiet: VCF/VCT already cover this move.
		}

		targets := tactics.FindMiseTargets(b, p, colour)
		if len(targets) == 0 {
			b.RemoveRaw(p)
			continue
		}

		replies := miseReplies(b, targets, opp)
		if len(replies) == 0 {
			b.RemoveRaw(p)
			continue
		}

		allLeaveVCF := true
		for _, r := range replies {
			if b.At(r) != stone.Empty {
				continue
			}
			b.PlaceRaw(r, opp)
			_, ok := FindVCF(b, colour, opts)
			b.RemoveRaw(r)
			if !ok {
				allLeaveVCF = false
				break
			}
		}

		b.RemoveRaw(p)
		if allLeaveVCF {
			return Proof{FirstMove: p, Moves: []position.Position{p}}, true
		}
	}

	return Proof{}, false
}

// makesForcingThreat reports whether p already makes a four or open
// three for colour, disqualifying it as a quiet mise setup move.
func makesForcingThreat(b *board.Board, p position.Position, c stone.Color) bool {
	if u, def := fourShape(b, p, c); u || !def.IsNone() {
		return true
	}
	_, defenders, isThree := attackerThreat(b, p, c)
	return isThree || len(defenders) > 0
}

// miseReplies enumerates the opponent's reasonable answers to a mise: a
// direct block of each future four-three target, plus any cell where the
// opponent can raise a counter-four or counter-open-three of their own
// (the same widened defender set VCT uses).
func miseReplies(b *board.Board, targets []position.Position, opp stone.Color) []position.Position {
	replies := append([]position.Position{}, targets...)
	replies = append(replies, counterMoves(b, opp)...)
	return dedupPositions(replies)
}
