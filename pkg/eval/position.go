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

package eval

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
	"github.com/ef81sp/holorenju-sub000/pkg/threat"
)

// Position evaluates the speculative score of placing colour at p, from
// colour's point of view. The board is left exactly as it was found on
// every return path ("evaluatePosition ... board
// unchanged" invariant) — PlaceRaw/RemoveRaw are paired via defer so a
// panic from deeper in the call chain cannot leave the board mutated
// either.
func Position(b *board.Board, p position.Position, c stone.Color, opts Options) int {
	s := opts.Scores

	b.PlaceRaw(p, c)
	defer b.RemoveRaw(p)

	// 1. winning move.
	if rule.CheckFive(b, p) {
		return s.Five
	}

	attackScore, fourDirs, hasFour, threeDirs, hasOpenThree := stoneAttack(b, p, c, s)

	// 4. four-three bonus.
	fourThreeBonus := 0
	if hasFour && hasOpenThree {
		fourThreeBonus = s.FourThreeBonus
	}

	// 5. mandatory defence.
	if opts.EnableMandatoryDefense {
		if veto := mandatoryDefenseVeto(b, p, c, attackScore, fourThreeBonus, opts); veto {
			return NegInf
		}
	}

	// 6. white winning pattern: two or more open threes or fours from
	// this single move wins unconditionally, since white has no
	// forbidden-move restriction to stop it following through.
	if c == stone.White && (fourDirs >= 2 || threeDirs >= 2) {
		return s.Five
	}

	forbiddenTrapBonus := 0
	if c == stone.White && opts.EnableForbiddenTrap {
		forbiddenTrapBonus = tactics.EvaluateForbiddenTrap(b, p, s)
	}

	forbiddenVulnerabilityPenalty := 0
	if c == stone.Black && opts.EnableForbiddenVulnerability {
		forbiddenVulnerabilityPenalty = tactics.EvaluateForbiddenVulnerability(b, p, s)
	}

	miseBonus := 0
	if opts.EnableMise {
		targets := tactics.FindMiseTargets(b, p, c)
		switch {
		case len(targets) >= 2 && tactics.IsDoubleMise(b, p, c, targets):
			miseBonus = s.DoubleMiseBonus
		case len(targets) >= 1:
			miseBonus = s.MiseBonus
		}
	}

	multiThreatBonus := 0
	threatDirs := fourDirs + threeDirs
	if opts.EnableMultiThreat && threatDirs >= 2 {
		multiThreatBonus = s.MultiThreatBonus * (threatDirs - 1)
	}

	singleFourPenalty := 0
	if opts.EnableSingleFourPenalty && hasFour && !hasOpenThree && !tactics.HasFollowUpThreat(b, p, c) {
		singleFourPenalty = int(float64(s.Four) * float64(fourDirs) * (1 - opts.SingleFourPenaltyMultiplier))
	}

	centerBonus := pattern.CenterBonus(s, p)

	defenseScore, defenseMultiThreatBonus := defenseValue(b, p, c, attackScore, opts)

	return attackScore + defenseScore + centerBonus + fourThreeBonus +
		forbiddenTrapBonus + miseBonus + multiThreatBonus + defenseMultiThreatBonus -
		singleFourPenalty - forbiddenVulnerabilityPenalty
}

// stoneAttack sums the pattern score of colour c's stone at p across all
// four directions (with the diagonal-direction bonus multiplier
// applied), and reports the four/open-three census used by several of
// the bonuses above.
func stoneAttack(b *board.Board, p position.Position, c stone.Color, s pattern.Scores) (total, fourDirs int, hasFour bool, threeDirs int, hasOpenThree bool) {
	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, c)
		t := pattern.Classify(dp)
		sc := pattern.Score(s, dp)

		switch t {
		case pattern.Four, pattern.OpenFour:
			fourDirs++
			hasFour = true
		default:
			if jumps := rule.CheckJumpFour(b, p, d, c); len(jumps) > 0 {
				fourDirs += len(jumps)
				hasFour = true
				sc += s.Four * len(jumps)
			}
		}

		if t == pattern.OpenThree {
			threeDirs++
			hasOpenThree = true
		} else if validJumpThree(b, p, d, c) {
			threeDirs++
			hasOpenThree = true
		}

		if d == position.DiagDown || d == position.DiagUp {
			sc = int(float64(sc) * s.DiagonalBonusMultiplier)
		}
		total += sc
	}
	return
}

func validJumpThree(b *board.Board, p position.Position, d position.Direction, c stone.Color) bool {
	gaps := rule.CheckJumpThree(b, p, d, c)
	if len(gaps) == 0 {
		return false
	}
	if c != stone.Black {
		return true
	}
	for _, g := range gaps {
		if forbidden, _ := rule.CheckPlacementForbidden(b, g); !forbidden {
			return true
		}
	}
	return false
}

// defenseValue evaluates the board as though the opponent had played at
// p instead, weights the resulting per-direction pattern scores by
// DEFENSE_MULTIPLIERS, optionally scales the whole thing up by
// COUNTER_FOUR_MULTIPLIER, and returns it alongside the defence
// multi-threat bonus.
func defenseValue(b *board.Board, p position.Position, c stone.Color, attackScore int, opts Options) (defenseScore, defenseMultiThreatBonus int) {
	s := opts.Scores
	opp := c.Other()

	b.RemoveRaw(p)
	b.PlaceRaw(p, opp)

	oppBestType := pattern.None
	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, opp)
		t := pattern.Classify(dp)
		sc := pattern.Score(s, dp)
		defenseScore += int(float64(sc) * pattern.DefenseMultiplier(t))
		if t > oppBestType {
			oppBestType = t
		}
	}

	oppFourDirs, oppThreeDirs, _, _ := rule.CountThreatDirections(b, p, opp)
	oppThreatDirs := oppFourDirs + oppThreeDirs
	if opts.EnableMultiThreat && oppThreatDirs >= 2 {
		defenseMultiThreatBonus = s.DefenseMultiThreatBonus * (oppThreatDirs - 1)
	}

	b.RemoveRaw(p)
	b.PlaceRaw(p, c)

	if opts.EnableCounterFour && attackScore >= s.Four && oppBestType >= pattern.OpenThree {
		defenseScore = int(float64(defenseScore) * s.CounterFourMultiplier)
	}

	return defenseScore, defenseMultiThreatBonus
}

// mandatoryDefenseVeto implements the mandatory-defence escalation: if the opponent
// has an unaddressed mandatory threat on the board as it stood before
// this placement, and this move neither wins immediately nor occupies
// one of that threat's defence cells, the move is strictly illegal from
// a tactical standpoint and is signalled with NegInf.
func mandatoryDefenseVeto(b *board.Board, p position.Position, c stone.Color, attackScore, fourThreeBonus int, opts Options) bool {
	s := opts.Scores
	opp := c.Other()

	var info threat.Info
	if opts.PrecomputedThreats != nil {
		info = *opts.PrecomputedThreats
	} else {
		b.RemoveRaw(p)
		info = threat.Detect(b, opp)
		b.PlaceRaw(p, c)
	}

	hasMyOpenFour := attackScore >= s.OpenFour
	canWinFirst := hasMyOpenFour || fourThreeBonus > 0

	switch {
	case len(info.OpenFours) > 0:
		return !hasMyOpenFour && !contains(info.OpenFours, p)

	case len(info.Fours) > 0:
		return !hasMyOpenFour && !contains(info.Fours, p)

	case len(info.OpenThrees) > 0:
		if canWinFirst {
			return false
		}
		if opts.EnableMiseThreat {
			common := intersect(info.OpenThrees, info.Mises)
			if len(common) > 0 {
				return !contains(common, p)
			}
		}
		return !contains(info.OpenThrees, p)

	case opts.EnableDoubleThreeThreat && len(info.DoubleThrees) == 1:
		return !canWinFirst && !contains(info.DoubleThrees, p)

	case opts.EnableMiseThreat && len(info.Mises) > 0:
		return !canWinFirst && !contains(info.Mises, p)

	default:
		return false
	}
}

func contains(ps []position.Position, p position.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func intersect(a, b []position.Position) []position.Position {
	var out []position.Position
	for _, p := range a {
		if contains(b, p) {
			out = append(out, p)
		}
	}
	return out
}
