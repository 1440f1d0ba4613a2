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

// Package zobrist implements the 64-bit incremental position hash used
// by the transposition table and by forbidden-move caching.
package zobrist

import "github.com/ef81sp/holorenju-sub000/internal/util"

// Key is a Zobrist hash value.
type Key uint64

// PieceSquare[colour][row][col] is the per-(colour,row,col) random
// constant XORed in/out when a stone is placed/removed. Index 0 (stone
// Empty) is unused but kept so colour values can index directly, the
// same indexing mess uses for piece.Color in pkg/zobrist/zobrist.go.
var PieceSquare [3][15][15]Key

// SideToMove is XORed into the hash every time the side to move changes.
var SideToMove Key

func init() {
	var rng util.PRNG
	rng.Seed(1070372) // seed used from Stockfish, as mess does

	for c := 0; c < 3; c++ {
		for r := 0; r < 15; r++ {
			for col := 0; col < 15; col++ {
				PieceSquare[c][r][col] = Key(rng.Uint64())
			}
		}
	}

	SideToMove = Key(rng.Uint64())
}
