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

package line_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/line"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

func buildFeatures(b *board.Board) *line.Features {
	table := line.Build(b)
	return line.Precompute(table, b.At)
}

func TestFourThreePotentialDetectsCrossingShape(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 4), stone.Black)
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)
	b.Place(position.New(5, 7), stone.Black)
	b.Place(position.New(6, 7), stone.Black)

	f := buildFeatures(b)
	if !f.FourThreePotential(7, 7, stone.Black) {
		t.Error("FourThreePotential = false, want true for a cell that completes a four and an open three at once")
	}
}

func TestFourThreePotentialFalseOnEmptyBoard(t *testing.T) {
	b := board.New()
	f := buildFeatures(b)
	if f.FourThreePotential(7, 7, stone.Black) {
		t.Error("FourThreePotential = true on an empty board, want false")
	}
}

func TestFourDirectionsBitSetForCompletingMove(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 4), stone.Black)
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)

	f := buildFeatures(b)
	bits := f.FourDirections(7, 7, stone.Black)
	if bits&(1<<uint(position.Horizontal)) == 0 {
		t.Error("FourDirections has no Horizontal bit set for a move completing a four on that axis")
	}
}

func TestThreeDirectionsBitSetForOpenThreeMove(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)

	f := buildFeatures(b)
	bits := f.ThreeDirections(7, 7, stone.Black)
	if bits&(1<<uint(position.Horizontal)) == 0 {
		t.Error("ThreeDirections has no Horizontal bit set for a move completing an open three on that axis")
	}
}
