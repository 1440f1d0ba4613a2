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

func TestFindVCTRootGuardSkipsWhenDefenderHasOpenThree(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)
	b.Place(position.New(7, 7), stone.Black)
	// White has no forcing shape of its own, but black (the defender
	// from white's point of view) already has an unaddressed open three.
	_, ok := vcf.FindVCT(b, stone.White, vcf.Options{})
	if ok {
		t.Error("FindVCT succeeded despite the defender already holding an open three")
	}
}

func TestFindVCTImmediateWinViaUnstoppableFour(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 4), stone.Black)
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)

	proof, ok := vcf.FindVCT(b, stone.Black, opts())
	if !ok {
		t.Fatal("FindVCT found no proof for a board one move from an open four")
	}
	if proof.FirstMove.IsNone() {
		t.Error("proof.FirstMove is the None sentinel")
	}
}

func TestFindVCTLeavesBoardUnchanged(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 4), stone.Black)
	b.Place(position.New(7, 5), stone.Black)
	b.Place(position.New(7, 6), stone.Black)
	before := b.Copy()

	vcf.FindVCT(b, stone.Black, opts())

	if !b.Equal(before) {
		t.Error("FindVCT mutated the board")
	}
}
