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
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// timePressureDrop is the score regression that triggers
// applyTimePressureFallback: an interrupted iteration whose move looks
// this much worse than the highest-scoring earlier (shallower)
// iteration's move is distrusted in favour of that earlier move.
const timePressureDrop = 1500

// iterativeDeepening runs negamax at depth 1, 2, ... up to maxDepth,
// re-using the previous iteration's best move as the next iteration's
// first move to try (principal-variation re-ordering). It returns the
// deepest completed iteration's move, the full per-depth history, the
// deepest depth actually completed, and whether the final iteration was
// interrupted by a deadline or node-count limit.
func iterativeDeepening(ctx *Context, colour stone.Color, maxDepth int) (position.Position, []DepthRecord, int, bool) {
	var (
		bestMove    = position.None
		history     []DepthRecord
		completed   int
		interrupted bool
		pvMove      = position.None
	)

	for depth := 1; depth <= maxDepth; depth++ {
		var pv []position.Position
		score := ctx.negamax(0, depth, -Inf, Inf, colour, pvMove, &pv)

		if ctx.stopped && depth > 1 {
			interrupted = true
			break
		}

		if len(pv) > 0 {
			bestMove = pv[0]
			pvMove = pv[0]
		}

		history = append(history, DepthRecord{Depth: depth, BestMove: bestMove, Score: score})
		completed = depth

		if ctx.stopped {
			interrupted = true
			break
		}
	}

	return bestMove, history, completed, interrupted
}

// applyTimePressureFallback implements the regression guard: if the
// latest depth's score dropped by at least timePressureDrop
// relative to the highest-scoring prior depth (itself deeper than 0), the
// caller should adopt that prior depth's move instead of the
// interrupted iteration's.
func applyTimePressureFallback(history []DepthRecord) (position.Position, int, bool) {
	if len(history) < 2 {
		return position.None, 0, false
	}

	latest := history[len(history)-1]
	prior := history[:len(history)-1]

	best := prior[0]
	for _, r := range prior[1:] {
		if r.Score > best.Score {
			best = r
		}
	}

	if best.Depth > 0 && best.Score-latest.Score >= timePressureDrop {
		return best.BestMove, best.Depth, true
	}
	return position.None, 0, false
}
