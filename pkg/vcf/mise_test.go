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

package vcf_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/vcf"
)

func TestFindMiseVCFNoProofOnEmptyBoard(t *testing.T) {
	b := board.New()
	_, ok := vcf.FindMiseVCF(b, stone.Black, opts())
	if ok {
		t.Error("FindMiseVCF found a mise on an empty board, want false")
	}
}

func TestFindMiseVCFLeavesBoardUnchanged(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 7), stone.Black)
	b.Place(position.New(8, 8), stone.Black)
	b.Place(position.New(7, 4), stone.White)
	before := b.Copy()

	vcf.FindMiseVCF(b, stone.Black, opts())

	if !b.Equal(before) {
		t.Error("FindMiseVCF mutated the board")
	}
}

func TestFindMiseVCFSkipsImmediateWin(t *testing.T) {
	b := board.New()
	for c := 3; c <= 6; c++ {
		b.Place(position.New(7, c), stone.Black)
	}
	// (7,7) completes a five directly, which FindMiseVCF must not report
	// as a "mise" — a direct five is FindVCF's job, not a quiet setup.
	proof, ok := vcf.FindMiseVCF(b, stone.Black, opts())
	if ok && proof.FirstMove == position.New(7, 7) {
		t.Error("FindMiseVCF reported a five-completing move as a mise")
	}
}
