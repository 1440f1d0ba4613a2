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

package rule

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// fingerprint is a 81-cell snapshot of the 9x9 neighbourhood around a
// candidate black placement, used to key the forbidden-move cache. It is
// a plain array so it is directly usable as a map key, the way mess
// keys its transposition table by a plain uint64 hash.
type fingerprint [81]stone.Color

// verdict is the cached result of a forbidden-move check.
type verdict struct {
	forbidden bool
	kind      ForbiddenKind
}

// cache is process-wide and monotonic: entries are never invalidated,
// since a different board configuration produces a different
// fingerprint. CheckForbiddenMoveCached is the only
// entry point that consults it; CheckForbiddenMove itself is uncached.
// The speculative straight-four validity probes (isValidJumpThree ->
// wouldBeForbidden) call CheckForbiddenMoveCached between their
// temporary PlaceRaw/RemoveRaw, so they read and fill the cache too.
var cache = make(map[fingerprint]verdict)

// CheckForbiddenMoveCached is CheckForbiddenMove with memoisation on the
// placed stone's 9x9 neighbourhood fingerprint: a cache hit must match
// the exact neighbourhood, so placing a black stone at the same cell
// with different surrounding stones always misses.
func CheckForbiddenMoveCached(b *board.Board, p position.Position) (isForbidden bool, kind ForbiddenKind) {
	fp := neighbourhoodFingerprint(b, p)
	if v, ok := cache[fp]; ok {
		return v.forbidden, v.kind
	}

	forbidden, k := CheckForbiddenMove(b, p)
	cache[fp] = verdict{forbidden, k}
	return forbidden, k
}

func neighbourhoodFingerprint(b *board.Board, p position.Position) fingerprint {
	var fp fingerprint
	i := 0
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			q := position.New(p.Row+dr, p.Col+dc)
			if q.Valid() {
				fp[i] = b.At(q)
			} else {
				// off-board cells are encoded distinctly from Empty by
				// reusing stone.N as an out-of-range sentinel value,
				// since stone.Color's zero value is Empty itself.
				fp[i] = stone.N
			}
			i++
		}
	}
	return fp
}
