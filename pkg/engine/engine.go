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

// Package engine is the single entry point external callers use: it
// wraps pkg/search, pkg/eval, pkg/threat and pkg/vcf behind the small
// set of functions a GUI, CLI, or test harness actually needs, the way
// mess's cmd/mess package sits on top of pkg/search/pkg/board without
// exposing their internals directly.
package engine

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/eval"
	"github.com/ef81sp/holorenju-sub000/pkg/line"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/search"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/threat"
	"github.com/ef81sp/holorenju-sub000/pkg/vcf"
)

// Engine bundles a board with the reusable search context (transposition
// table, evaluation options) used across successive moves of one game.
type Engine struct {
	Board   *board.Board
	Options eval.Options
	ctx     *search.Context
}

// New creates an Engine over an empty board with the full-strength
// default Options.
func New() *Engine {
	b := board.New()
	return &Engine{
		Board:   b,
		Options: eval.Default(),
		ctx:     search.NewContext(b, eval.Default()),
	}
}

// FindBestMove searches the current board for colour's best move.
// timeLimitMs is the soft budget; absoluteTimeLimitMs is the hard
// ceiling (0 uses the clock package's 10s default); maxNodes disables
// the node cap when 0.
func (e *Engine) FindBestMove(colour stone.Color, depth, timeLimitMs, absoluteTimeLimitMs, maxNodes int) search.Result {
	e.ctx.Board = e.Board
	e.ctx.EvalOptions = e.Options
	return search.FindBestMove(e.ctx, colour, depth, timeLimitMs, absoluteTimeLimitMs, maxNodes)
}

// EvaluatePosition scores placing colour at p on the current board, from
// colour's point of view.
func (e *Engine) EvaluatePosition(p position.Position, colour stone.Color) int {
	return eval.Position(e.Board, p, colour, e.Options)
}

// EvaluateBoard scores the whole current board from perspective's point
// of view. It builds its own line.Table mirror for the call rather than
// reusing ctx's, since a caller may invoke EvaluateBoard between moves
// without a FindBestMove call to keep ctx.Lines in sync.
func (e *Engine) EvaluateBoard(perspective stone.Color) int {
	opts := e.Options
	opts.Lines = line.Build(e.Board)
	return eval.Board(e.Board, perspective, false, opts)
}

// DetectOpponentThreats returns every defence position opponentColour's
// stones currently threaten.
func (e *Engine) DetectOpponentThreats(opponentColour stone.Color) threat.Info {
	return threat.Detect(e.Board, opponentColour)
}

// FindVCFSequence looks for a Victory-by-Continuous-Fours proof for
// colour on the current board.
func (e *Engine) FindVCFSequence(colour stone.Color) (vcf.Proof, bool) {
	return vcf.FindVCF(e.Board, colour, vcf.Options{Scores: e.Options.Scores})
}

// FindVCTSequence looks for a Victory-by-Continuous-Threats proof for
// colour on the current board.
func (e *Engine) FindVCTSequence(colour stone.Color) (vcf.Proof, bool) {
	return vcf.FindVCT(e.Board, colour, vcf.Options{Scores: e.Options.Scores})
}

// FindMiseVCFSequence looks for a mise setup move for colour whose every
// opponent reply still leaves a VCF proof.
func (e *Engine) FindMiseVCFSequence(colour stone.Color) (vcf.Proof, bool) {
	return vcf.FindMiseVCF(e.Board, colour, vcf.Options{Scores: e.Options.Scores})
}

// Play places colour at p on the engine's board, the external mutator
// callers use to advance the game between FindBestMove calls.
func (e *Engine) Play(p position.Position, colour stone.Color) {
	e.Board.Place(p, colour)
}
