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

// Package eval implements the two score-producing entry points the
// search tree calls at every node: evaluatePosition (a speculative "what
// if I play here" score at interior choice points) and evaluateBoard
// (the whole-board leaf score at the search horizon). Grounded on
// mess's pkg/search/eval package, which separates per-move scoring
// (move.go's OfMove) from whole-position scoring (evaluation.go)
// the same way.
package eval

import (
	"math"

	"github.com/ef81sp/holorenju-sub000/pkg/line"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/threat"
)

// NegInf is the sentinel score returned when a move violates mandatory
// defence: it is strictly dominated by every other legal move, the way
// mess represents an illegal line by never generating it, but
// this engine's evaluator sometimes has to say "this one technically
// exists but must never be chosen."
const NegInf = math.MinInt32 / 2

// Options is the bundle of boolean feature flags and tunables threaded
// through evaluatePosition/evaluateBoard.
type Options struct {
	Scores pattern.Scores

	EnableFukumi                 bool
	EnableMise                   bool
	EnableForbiddenTrap          bool
	EnableMultiThreat            bool
	EnableCounterFour            bool
	EnableVCT                    bool
	EnableMandatoryDefense       bool
	EnableSingleFourPenalty      bool
	EnableMiseThreat             bool
	EnableDoubleThreeThreat      bool
	EnableNullMovePruning        bool
	EnableFutilityPruning        bool
	EnableForbiddenVulnerability bool

	SingleFourPenaltyMultiplier float64

	// PrecomputedThreats, if non-nil, is used instead of recomputing
	// ThreatInfo on demand — the root-level adjunct
	// that keeps every depth of one search consistent with the same
	// threat snapshot.
	PrecomputedThreats *threat.Info

	// Lines, if non-nil, is the line.Table mirror evaluateBoard reads its
	// per-direction patterns from instead of walking the board: the
	// search context owns one Table per call to FindBestMove and keeps it
	// in lockstep with every Board.Place/Remove, so evaluateBoard's
	// per-node line.Precompute call reads each direction's pattern from
	// the packed line masks instead of walking the board.
	Lines *line.Table
}

// Default returns an Options value with every tactical feature enabled
// and the reference score table, the configuration a full-strength
// search runs with.
func Default() Options {
	return Options{
		Scores: pattern.Default(),

		EnableFukumi:                 true,
		EnableMise:                   true,
		EnableForbiddenTrap:          true,
		EnableMultiThreat:            true,
		EnableCounterFour:            true,
		EnableVCT:                    true,
		EnableMandatoryDefense:       true,
		EnableSingleFourPenalty:      true,
		EnableMiseThreat:             true,
		EnableDoubleThreeThreat:      true,
		EnableNullMovePruning:        true,
		EnableFutilityPruning:        true,
		EnableForbiddenVulnerability: true,

		SingleFourPenaltyMultiplier: 0.5,
	}
}
