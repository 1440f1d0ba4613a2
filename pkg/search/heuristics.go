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

import "github.com/ef81sp/holorenju-sub000/pkg/position"

// storeKiller records move as this ply's most recent killer, demoting
// the previous killer-1 to killer-2, the same two-slot scheme mess uses
// for quiet beta-cutoff moves.
func (ctx *Context) storeKiller(ply int, move position.Position) {
	if move == ctx.killers[ply][0] {
		return
	}
	ctx.killers[ply][1] = ctx.killers[ply][0]
	ctx.killers[ply][0] = move
}

// updateHistory bumps the history score for a quiet move that caused a
// beta cutoff, weighted by search depth.
func (ctx *Context) updateHistory(move position.Position, depth int) {
	bonus := depth * depth
	if bonus > 2000 {
		bonus = 2000
	}
	entry := &ctx.history[move.Row][move.Col]
	*entry += bonus - *entry*abs(bonus)/32768
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
