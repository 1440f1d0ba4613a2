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

package eval_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/eval"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

func TestPositionWinningMoveScoresFive(t *testing.T) {
	b := board.New()
	for c := 3; c <= 6; c++ {
		b.Place(position.New(7, c), stone.Black)
	}
	opts := eval.Default()

	got := eval.Position(b, position.New(7, 7), stone.Black, opts)
	if got != opts.Scores.Five {
		t.Errorf("Position(winning move) = %d, want %d", got, opts.Scores.Five)
	}
}

func TestPositionLeavesBoardUnchanged(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 7), stone.Black)
	before := b.Copy()

	eval.Position(b, position.New(7, 8), stone.White, eval.Default())

	if !b.Equal(before) {
		t.Error("Position mutated the board")
	}
}

func TestPositionMandatoryDefenseVeto(t *testing.T) {
	b := board.New()
	// White already has an unaddressed open four; black ignoring it
	// anywhere else on the board must be vetoed.
	for c := 5; c <= 8; c++ {
		b.Place(position.New(7, c), stone.White)
	}

	got := eval.Position(b, position.New(0, 0), stone.Black, eval.Default())
	if got != eval.NegInf {
		t.Errorf("Position(ignoring opponent open four) = %d, want NegInf", got)
	}
}

func TestPositionDefendingOpenFourIsNotVetoed(t *testing.T) {
	b := board.New()
	for c := 5; c <= 8; c++ {
		b.Place(position.New(7, c), stone.White)
	}

	got := eval.Position(b, position.New(7, 9), stone.Black, eval.Default())
	if got == eval.NegInf {
		t.Error("Position(blocking the open four) was vetoed, want a real score")
	}
}

func TestBoardSymmetric(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 7), stone.Black)
	b.Place(position.New(7, 8), stone.White)

	opts := eval.Default()
	fromBlack := eval.Board(b, stone.Black, false, opts)
	fromWhite := eval.Board(b, stone.White, false, opts)

	if fromBlack != -fromWhite {
		t.Errorf("Board(black) = %d, Board(white) = %d, want negatives of each other", fromBlack, fromWhite)
	}
}

func TestBoardOfEmptyBoardIsZero(t *testing.T) {
	b := board.New()
	if got := eval.Board(b, stone.Black, false, eval.Default()); got != 0 {
		t.Errorf("Board(empty) = %d, want 0", got)
	}
}
