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

package pattern_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		p    pattern.DirectionPattern
		want pattern.Type
	}{
		{pattern.DirectionPattern{Count: 5, End1: pattern.Empty, End2: pattern.Empty}, pattern.Five},
		{pattern.DirectionPattern{Count: 4, End1: pattern.Empty, End2: pattern.Empty}, pattern.OpenFour},
		{pattern.DirectionPattern{Count: 4, End1: pattern.Empty, End2: pattern.Opponent}, pattern.Four},
		{pattern.DirectionPattern{Count: 4, End1: pattern.Opponent, End2: pattern.Opponent}, pattern.None},
		{pattern.DirectionPattern{Count: 3, End1: pattern.Empty, End2: pattern.Empty}, pattern.OpenThree},
		{pattern.DirectionPattern{Count: 3, End1: pattern.Edge, End2: pattern.Empty}, pattern.Three},
		{pattern.DirectionPattern{Count: 3, End1: pattern.Opponent, End2: pattern.Edge}, pattern.None},
		{pattern.DirectionPattern{Count: 2, End1: pattern.Empty, End2: pattern.Empty}, pattern.OpenTwo},
		{pattern.DirectionPattern{Count: 2, End1: pattern.Opponent, End2: pattern.Empty}, pattern.Two},
		{pattern.DirectionPattern{Count: 1, End1: pattern.Empty, End2: pattern.Empty}, pattern.None},
	}
	for _, tt := range tests {
		if got := pattern.Classify(tt.p); got != tt.want {
			t.Errorf("Classify(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestScoreMatchesClassifyOrdering(t *testing.T) {
	s := pattern.Default()
	five := pattern.DirectionPattern{Count: 5, End1: pattern.Empty, End2: pattern.Empty}
	openFour := pattern.DirectionPattern{Count: 4, End1: pattern.Empty, End2: pattern.Empty}
	four := pattern.DirectionPattern{Count: 4, End1: pattern.Empty, End2: pattern.Opponent}
	openThree := pattern.DirectionPattern{Count: 3, End1: pattern.Empty, End2: pattern.Empty}

	if pattern.Score(s, five) <= pattern.Score(s, openFour) {
		t.Error("five does not outscore open four")
	}
	if pattern.Score(s, openFour) <= pattern.Score(s, four) {
		t.Error("open four does not outscore closed four")
	}
	if pattern.Score(s, four) <= pattern.Score(s, openThree) {
		t.Error("closed four does not outscore open three")
	}
}

func TestScoreOfBlockedRunIsZero(t *testing.T) {
	s := pattern.Default()
	blocked := pattern.DirectionPattern{Count: 3, End1: pattern.Opponent, End2: pattern.Edge}
	if got := pattern.Score(s, blocked); got != 0 {
		t.Errorf("Score(blocked three) = %d, want 0", got)
	}
}

func TestDefenseMultiplierMonotone(t *testing.T) {
	order := []pattern.Type{pattern.Two, pattern.OpenTwo, pattern.Three, pattern.OpenThree, pattern.Four, pattern.OpenFour, pattern.Five}
	prev := -1.0
	for _, ty := range order {
		m := pattern.DefenseMultiplier(ty)
		if m < prev {
			t.Errorf("DefenseMultiplier(%v) = %f, decreased from previous %f", ty, m, prev)
		}
		prev = m
	}
}

func TestDefenseMultiplierOfNoneIsZero(t *testing.T) {
	if got := pattern.DefenseMultiplier(pattern.None); got != 0 {
		t.Errorf("DefenseMultiplier(None) = %f, want 0", got)
	}
}

func TestCenterBonusPeaksAtCenter(t *testing.T) {
	s := pattern.Default()
	center := pattern.CenterBonus(s, position.New(7, 7))
	corner := pattern.CenterBonus(s, position.New(0, 0))
	if center <= corner {
		t.Errorf("CenterBonus(center)=%d not greater than CenterBonus(corner)=%d", center, corner)
	}
	if corner < 0 {
		t.Error("CenterBonus went negative")
	}
}
