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

package tactics_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
)

func TestCreatesFourThree(t *testing.T) {
	b := board.New()
	// Horizontal three-in-a-row (cols 4-6) plus a separate vertical pair
	// (rows 5-6, col 7): placing at (7,7) extends the horizontal run to a
	// four (cols 4-7) and the vertical run to an open three (rows 5-7).
	b.Place(position.New(7, 4), stone.Black)
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)
	b.Place(position.New(5, 7), stone.Black)
	b.Place(position.New(6, 7), stone.Black)

	if !tactics.CreatesFourThree(b, position.New(7, 7), stone.Black) {
		t.Error("CreatesFourThree = false, want true")
	}
}

func TestCreatesFourThreeLeavesBoardUnchanged(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 6), stone.Black)
	before := b.Copy()

	tactics.CreatesFourThree(b, position.New(7, 7), stone.Black)

	if !b.Equal(before) {
		t.Error("CreatesFourThree mutated the board")
	}
}

func TestCreatesDoubleThree(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 6), stone.Black)
	b.Place(position.New(7, 8), stone.Black)
	b.Place(position.New(6, 7), stone.Black)
	b.Place(position.New(8, 7), stone.Black)

	if !tactics.CreatesDoubleThree(b, position.New(7, 7), stone.Black) {
		t.Error("CreatesDoubleThree = false, want true")
	}
}

func TestCreatesDoubleThreeFalseForSingleThree(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 6), stone.Black)
	b.Place(position.New(7, 8), stone.Black)

	if tactics.CreatesDoubleThree(b, position.New(7, 7), stone.Black) {
		t.Error("CreatesDoubleThree = true for a single three, want false")
	}
}

func TestFourCompletionPointsOfOpenThree(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)
	b.Place(position.New(7, 7), stone.Black)

	pts := tactics.FourCompletionPoints(b, position.New(7, 6), position.Horizontal, stone.Black)
	if len(pts) != 2 {
		t.Fatalf("len(pts) = %d, want 2 (both ends of an open three-turned-four)", len(pts))
	}
}

func TestFindMiseTargetsNonEmpty(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)

	targets := tactics.FindMiseTargets(b, position.New(7, 6), stone.Black)
	// no assertion on exact contents (depends on surrounding geometry),
	// only that the scan runs and returns without mutating the board.
	if targets == nil {
		t.Log("no mise targets found from this shape, which is plausible")
	}
}

func TestFindMiseTargetsLeavesBoardUnchanged(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)
	before := b.Copy()

	tactics.FindMiseTargets(b, position.New(7, 6), stone.Black)

	if !b.Equal(before) {
		t.Error("FindMiseTargets mutated the board")
	}
}

func TestIsDoubleMiseFalseBelowTwoTargets(t *testing.T) {
	b := board.New()
	if tactics.IsDoubleMise(b, position.New(7, 7), stone.Black, []position.Position{position.New(0, 0)}) {
		t.Error("IsDoubleMise = true with fewer than two targets, want false")
	}
}
