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

// Package search implements the iterative-deepening alpha-beta search
// that sits on top of pkg/eval's position/board scorers: a transposition
// table, killer/history move ordering, null-move and futility pruning,
// a deadline-aware node loop, and root-level VCT/VCF/Mise-VCF shortcuts.
// Grounded on mess's pkg/search package (Context/negamax/
// iterativeDeepening), generalized from chess's negamax-over-captures to
// renju's negamax-over-placements.
package search

import (
	"time"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/eval"
	"github.com/ef81sp/holorenju-sub000/pkg/line"
	"github.com/ef81sp/holorenju-sub000/pkg/movegen"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/search/clock"
	"github.com/ef81sp/holorenju-sub000/pkg/search/tt"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/threat"
)

// MaxPly bounds the killer-move table and the recursion depth a single
// search will ever reach, independent of the caller's requested depth.
const MaxPly = 64

// Inf is the alpha-beta window's open bound. It sits comfortably above
// the practical score ceiling of about 2*FIVE.
const Inf = 1 << 30

// Context carries all state for one findBestMove call: the board being
// searched, the transposition table (which may be reused across calls),
// and the killer/history tables (which are not).
type Context struct {
	Board *board.Board
	TT    *tt.Table

	// Lines mirrors Board as the 72-line bitboard the leaf evaluator
	// reads from (via EvalOptions.Lines). It is rebuilt fresh at the
	// start of every FindBestMove call and kept in lockstep with every
	// placement negamax makes during that call.
	Lines *line.Table

	EvalOptions eval.Options

	clock *clock.Manager

	killers [MaxPly][2]position.Position
	history [position.Size][position.Size]int

	nodes       int
	ttHits      int
	ttCutoffs   int
	betaCutoffs int

	maxNodes          int
	nodeCountExceeded bool

	stopped bool
}

// NewContext creates a Context over b, allocating a fresh 16 MiB
// transposition table. Callers that want to keep a warm table across
// moves should construct Context directly and reuse TT.
func NewContext(b *board.Board, opts eval.Options) *Context {
	return &Context{
		Board:       b,
		TT:          tt.NewTable(16),
		Lines:       line.Build(b),
		EvalOptions: opts,
		stopped:     true,
	}
}

// Result is findBestMove's return value.
type Result struct {
	Position       position.Position
	Score          int
	CompletedDepth int
	Interrupted    bool
	ElapsedTime    time.Duration

	Stats Stats

	DepthHistory []DepthRecord

	TimePressureFallback bool
	FallbackFromDepth    int
}

// DepthRecord is one entry of the iterative-deepening history: the best
// move and score found at the end of a completed depth.
type DepthRecord struct {
	Depth    int
	BestMove position.Position
	Score    int
}

// FindBestMove runs the full search pipeline: root-level immediate-five,
// VCT, VCF and Mise-VCF shortcuts, then iterative-deepening alpha-beta up to depth, bounded by
// timeLimitMs (soft) and absoluteTimeLimitMs (hard, 0 meaning the
// clock package's default of 10s), and by maxNodes if positive.
func FindBestMove(ctx *Context, colour stone.Color, depth, timeLimitMs, absoluteTimeLimitMs, maxNodes int) Result {
	start := time.Now()

	ctx.stopped = false
	ctx.nodes = 0
	ctx.ttHits = 0
	ctx.ttCutoffs = 0
	ctx.betaCutoffs = 0
	ctx.killers = [MaxPly][2]position.Position{}
	ctx.history = [position.Size][position.Size]int{}
	ctx.maxNodes = maxNodes
	ctx.nodeCountExceeded = false
	ctx.clock = clock.New(
		time.Duration(timeLimitMs)*time.Millisecond,
		time.Duration(absoluteTimeLimitMs)*time.Millisecond,
	)
	ctx.TT.NextAge()

	if depth > MaxPly {
		depth = MaxPly
	}

	// Root-level adjunct: a single ThreatInfo snapshot of the opponent's
	// threats, reused by evaluatePosition at every depth of this call.
	threats := threat.Detect(ctx.Board, colour.Other())
	ctx.EvalOptions.PrecomputedThreats = &threats

	// Rebuild the line mirror from the current board before searching:
	// callers may have placed stones directly on ctx.Board (e.g. between
	// games moves) without going through negamax's Place/Remove pairs.
	// From here on negamax keeps it incrementally in sync.
	ctx.Lines = line.Build(ctx.Board)
	ctx.EvalOptions.Lines = ctx.Lines

	if proof, ok := tryRootForcingSequences(ctx, colour); ok {
		return Result{
			Position:       proof,
			Score:          ctx.EvalOptions.Scores.Five,
			CompletedDepth: 0,
			ElapsedTime:    time.Since(start),
			Stats:          ctx.buildStats(start, 0),
		}
	}

	pv, depthHistory, completedDepth, interrupted := iterativeDeepening(ctx, colour, depth)

	result := Result{
		Score:          scoreOf(depthHistory, completedDepth),
		CompletedDepth: completedDepth,
		Interrupted:    interrupted,
		ElapsedTime:    time.Since(start),
		Stats:          ctx.buildStats(start, completedDepth),
		DepthHistory:   depthHistory,
	}
	result.Position = pv

	if interrupted {
		if fallback, fromDepth, ok := applyTimePressureFallback(depthHistory); ok {
			result.Position = fallback
			result.TimePressureFallback = true
			result.FallbackFromDepth = fromDepth
		}
	}

	return result
}

func scoreOf(history []DepthRecord, depth int) int {
	for _, r := range history {
		if r.Depth == depth {
			return r.Score
		}
	}
	return 0
}

// Stop requests that any in-progress search return as soon as the next
// node-entry check runs.
func (ctx *Context) Stop() {
	ctx.stopped = true
}

// InProgress reports whether a search is currently running on ctx.
func (ctx *Context) InProgress() bool {
	return !ctx.stopped
}

// shouldStop polls the clock and node-count limits. It is checked at the
// entry of every alpha-beta node, the search's sole suspension point.
func (ctx *Context) shouldStop() bool {
	if ctx.stopped {
		return true
	}
	if ctx.maxNodes > 0 && ctx.nodes > ctx.maxNodes {
		ctx.nodeCountExceeded = true
		ctx.Stop()
		return true
	}
	if ctx.nodes&1023 == 0 && ctx.clock.Check() {
		ctx.Stop()
		return true
	}
	return false
}

// movegenHints builds this ply's move-ordering hints from the killer
// table, the history table, and the optional principal move.
func (ctx *Context) movegenHints(ply int, pvMove position.Position) movegen.Hints {
	return movegen.Hints{
		PVMove:  pvMove,
		Killers: ctx.killers[ply],
		History: &ctx.history,
	}
}
