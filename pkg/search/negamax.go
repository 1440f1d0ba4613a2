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

package search

import (
	"github.com/ef81sp/holorenju-sub000/pkg/eval"
	"github.com/ef81sp/holorenju-sub000/pkg/movegen"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/search/tt"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/zobrist"
)

// nmpDepth is the minimum depth at which null-move pruning is tried.
const nmpDepth = 3

// nmpReduction is the extra depth reduction (R) applied to the
// null-move's verification search.
const nmpReduction = 2

// negamax is the alpha-beta search over stone placements: colour is the
// side to move at this node, and the returned score is from colour's
// point of view (a negamax framing of the two-player minimax, the same
// simplification mess's negamax.go applies to chess).
func (ctx *Context) negamax(ply, depth int, alpha, beta int, colour stone.Color, pvMove position.Position, pv *[]position.Position) int {
	ctx.nodes++

	if ctx.shouldStop() {
		return alpha
	}

	if depth <= 0 || ply >= MaxPly {
		return eval.Board(ctx.Board, colour, false, ctx.EvalOptions)
	}

	isPVNode := beta-alpha > 1

	originalAlpha := alpha
	bestMove := position.None
	bestScore := -Inf

	hash := ctx.Board.Hash
	ttMove := pvMove
	if entry, hit := ctx.TT.Probe(hash); hit {
		ttMove = entry.BestMove
		if !isPVNode && int(entry.Depth) >= depth {
			ctx.ttHits++
			score := int(entry.Score)
			switch entry.Type {
			case tt.ExactEntry:
				return score
			case tt.LowerBound:
				if score > alpha {
					alpha = score
				}
			case tt.UpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				ctx.ttCutoffs++
				return score
			}
		}
	}

	// null-move pruning: give the opponent a free move and verify our
	// position still holds up at a shallower depth; if it does, this
	// node is unlikely to need full-depth verification.
	if ctx.EvalOptions.EnableNullMovePruning && !isPVNode && depth >= nmpDepth && !ctx.Board.Empty() {
		ctx.Board.SideToMove = colour.Other()
		ctx.Board.Hash ^= zobrist.SideToMove
		var childPV []position.Position
		score := -ctx.negamax(ply+1, depth-1-nmpReduction, -beta, -beta+1, colour.Other(), position.None, &childPV)
		ctx.Board.SideToMove = colour
		ctx.Board.Hash ^= zobrist.SideToMove

		if score >= beta {
			return beta
		}
	}

	moves := movegen.Generate(ctx.Board, colour, false)
	if len(moves) == 0 {
		return 0 // board exhausted: no further placements possible.
	}
	movegen.Sort(moves, ctx.Board, ctx.movegenHints(ply, ttMove))

	// futility pruning: at the shallowest depth, if the static
	// evaluation is already far below alpha, quiet moves are unlikely to
	// recover enough to matter.
	futile := false
	if ctx.EvalOptions.EnableFutilityPruning && !isPVNode && depth == 1 {
		const futilityMargin = 2000
		if eval.Board(ctx.Board, colour, false, ctx.EvalOptions)+futilityMargin <= alpha {
			futile = true
		}
	}

	for i, move := range moves {
		if futile && i > 0 {
			break
		}

		// position evaluator at the interior choice point: a move that
		// neither wins immediately nor addresses an unaddressed opponent
		// open-four/four/open-three is tactically inadmissible and is
		// pruned here rather than spending a recursive call on it.
		if ctx.EvalOptions.EnableMandatoryDefense && eval.Position(ctx.Board, move, colour, ctx.EvalOptions) == eval.NegInf {
			if bestMove == position.None {
				bestMove = move
				bestScore = eval.NegInf
			}
			continue
		}

		var childPV []position.Position
		ctx.Board.Place(move, colour)
		ctx.Lines.Place(move, colour)
		score := -ctx.negamax(ply+1, depth-1, -beta, -alpha, colour.Other(), position.None, &childPV)
		ctx.Board.Remove(move)
		ctx.Lines.Remove(move)

		if score > bestScore {
			bestScore = score
			bestMove = move

			if score > alpha {
				alpha = score
				*pv = append([]position.Position{move}, childPV...)

				if alpha >= beta {
					ctx.betaCutoffs++
					ctx.storeKiller(ply, move)
					ctx.updateHistory(move, depth)
					break
				}
			}
		}
	}

	if !ctx.stopped {
		var entryType tt.EntryType
		switch {
		case bestScore <= originalAlpha:
			entryType = tt.UpperBound
		case bestScore >= beta:
			entryType = tt.LowerBound
		default:
			entryType = tt.ExactEntry
		}

		ctx.TT.Store(tt.Entry{
			Hash:     hash,
			Depth:    uint16(depth),
			Score:    int32(bestScore),
			Type:     entryType,
			BestMove: bestMove,
		})
	}

	return bestScore
}
