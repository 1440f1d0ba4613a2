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

package pattern

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// AnalyzeDirection is the board-walking fallback direction analyser used
// when no line.Table is available: it counts contiguous same-colour
// cells in both directions from (row,col) and records the end state at
// each terminus. Grounded on the gomoku reference's evaluateDirection /
// hasOpenFour walk-both-ways idiom.
func AnalyzeDirection(b *board.Board, p position.Position, d position.Direction, c stone.Color) DirectionPattern {
	posCount := walk(b, p, d, 1, c)
	negCount := walk(b, p, d, -1, c)

	end1 := endState(b, p.Step(d, posCount+1), c)
	end2 := endState(b, p.Step(d, -(negCount + 1)), c)

	return DirectionPattern{
		Count: posCount + negCount + 1,
		End1:  end1,
		End2:  end2,
	}
}

func walk(b *board.Board, p position.Position, d position.Direction, sign int, c stone.Color) int {
	count := 0
	for {
		next := p.Step(d, sign*(count+1))
		if !next.Valid() || b.At(next) != c {
			return count
		}
		count++
	}
}

func endState(b *board.Board, p position.Position, c stone.Color) EndState {
	if !p.Valid() {
		return Edge
	}
	switch b.At(p) {
	case stone.Empty:
		return Empty
	case c:
		// should not happen: walk() would have consumed this cell
		return Empty
	default:
		return Opponent
	}
}
