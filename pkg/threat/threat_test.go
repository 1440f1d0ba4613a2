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

package threat_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/threat"
)

func containsPos(ps []position.Position, p position.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func TestDetectOpenFour(t *testing.T) {
	b := board.New()
	for c := 5; c <= 8; c++ {
		b.Place(position.New(7, c), stone.White)
	}

	info := threat.Detect(b, stone.White)
	if !containsPos(info.OpenFours, position.New(7, 4)) || !containsPos(info.OpenFours, position.New(7, 9)) {
		t.Errorf("OpenFours = %v, want both (7,4) and (7,9)", info.OpenFours)
	}
}

func TestDetectOpenThree(t *testing.T) {
	b := board.New()
	for c := 6; c <= 8; c++ {
		b.Place(position.New(7, c), stone.White)
	}

	info := threat.Detect(b, stone.White)
	if !containsPos(info.OpenThrees, position.New(7, 5)) || !containsPos(info.OpenThrees, position.New(7, 9)) {
		t.Errorf("OpenThrees = %v, want both (7,5) and (7,9)", info.OpenThrees)
	}
}

func TestDetectClosedFourIsNotOpenFour(t *testing.T) {
	b := board.New()
	b.Place(position.New(7, 4), stone.Black)
	for c := 5; c <= 8; c++ {
		b.Place(position.New(7, c), stone.White)
	}

	info := threat.Detect(b, stone.White)
	if !containsPos(info.Fours, position.New(7, 9)) {
		t.Errorf("Fours = %v, want the single open end (7,9)", info.Fours)
	}
	if len(info.OpenFours) != 0 {
		t.Errorf("a one-sided four was reported as an OpenFour: %v", info.OpenFours)
	}
}

func TestDetectNeutralisedOpenThreeIsEmpty(t *testing.T) {
	b := board.New()
	// White's run (cols 6-8) has both immediate ends (5,9) empty, so it
	// classifies as an open three, but both cells one step further out
	// (4,10) are already blocked by black, so following through to an
	// open four is impossible either way and no defence is owed.
	b.Place(position.New(7, 4), stone.Black)
	b.Place(position.New(7, 10), stone.Black)
	for c := 6; c <= 8; c++ {
		b.Place(position.New(7, c), stone.White)
	}

	info := threat.Detect(b, stone.White)
	if containsPos(info.OpenThrees, position.New(7, 5)) || containsPos(info.OpenThrees, position.New(7, 9)) {
		t.Errorf("neutralised three reported open threats: %v", info.OpenThrees)
	}
}
