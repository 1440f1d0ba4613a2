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
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/vcf"
)

// tryRootForcingSequences runs the root-level shortcuts before any
// minimax: a move that completes a five right away, then VCT (gated by
// stone count and the defender-already-has-an-open-three guard), then
// VCF, then Mise-VCF. The first one to succeed returns its first move to
// play immediately, bypassing alpha-beta entirely.
func tryRootForcingSequences(ctx *Context, colour stone.Color) (position.Position, bool) {
	vcfOpts := vcf.Options{Scores: ctx.EvalOptions.Scores}
	stoneCount := ctx.Board.StoneCount[stone.Black] + ctx.Board.StoneCount[stone.White]

	// The proof searches may return a longer forcing line whose first
	// move is not the five, so an immediate five is looked for first.
	for r := 0; r < position.Size; r++ {
		for c := 0; c < position.Size; c++ {
			p := position.New(r, c)
			if ctx.Board.At(p) != stone.Empty {
				continue
			}
			ctx.Board.PlaceRaw(p, colour)
			five := rule.CheckFive(ctx.Board, p)
			ctx.Board.RemoveRaw(p)
			if five {
				return p, true
			}
		}
	}

	if ctx.EvalOptions.EnableVCT && stoneCount >= vcf.StoneCountThreshold {
		if proof, ok := vcf.FindVCT(ctx.Board, colour, vcfOpts); ok {
			return proof.FirstMove, true
		}
	}

	if proof, ok := vcf.FindVCF(ctx.Board, colour, vcfOpts); ok {
		return proof.FirstMove, true
	}

	if ctx.EvalOptions.EnableMise {
		if proof, ok := vcf.FindMiseVCF(ctx.Board, colour, vcfOpts); ok {
			return proof.FirstMove, true
		}
	}

	return position.None, false
}
