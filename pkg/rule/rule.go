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

// Package rule implements renju's legality layer: five/overline detection
// and the black-only forbidden-move classification (double-three,
// double-four, overline), plus the gapped jump-four/jump-three
// predicates the pattern and tactics layers build on. Grounded on
// mess's legality-checking idiom (board.IsAttacked / board.IsInCheck
// in the chess engine this module was adapted from): a handful of small,
// independently callable boolean predicates rather than one monolithic
// move-legality function.
package rule

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// ForbiddenKind classifies why a black placement is illegal under renju
// rules, or None if it is legal.
type ForbiddenKind int8

const (
	None ForbiddenKind = iota
	DoubleThree
	DoubleFour
	Overline
)

func (k ForbiddenKind) String() string {
	switch k {
	case DoubleThree:
		return "double-three"
	case DoubleFour:
		return "double-four"
	case Overline:
		return "overline"
	default:
		return "none"
	}
}

// CheckFive reports whether the stone at p participates in exactly five
// consecutive same-colour stones in some direction.
func CheckFive(b *board.Board, p position.Position) bool {
	c := b.At(p)
	for d := position.Direction(0); d < position.NDirections; d++ {
		if pattern.AnalyzeDirection(b, p, d, c).Count == 5 {
			return true
		}
	}
	return false
}

// CheckOverline reports whether the stone at p participates in six or
// more consecutive stones of its own colour in some direction. Only
// meaningful for black, since overline is not forbidden for white.
func CheckOverline(b *board.Board, p position.Position) bool {
	c := b.At(p)
	for d := position.Direction(0); d < position.NDirections; d++ {
		if pattern.AnalyzeDirection(b, p, d, c).Count >= 6 {
			return true
		}
	}
	return false
}

// CheckForbiddenMove classifies a just-placed black stone at p. Five
// takes precedence over every forbidden classification (a move that
// makes a five is never forbidden even if it also makes a double-three).
func CheckForbiddenMove(b *board.Board, p position.Position) (isForbidden bool, kind ForbiddenKind) {
	if CheckFive(b, p) {
		return false, None
	}
	if CheckOverline(b, p) {
		return true, Overline
	}

	fourDirs, threeDirs, _, _ := CountThreatDirections(b, p, b.At(p))

	switch {
	case fourDirs >= 2:
		return true, DoubleFour
	case threeDirs >= 2:
		return true, DoubleThree
	default:
		return false, None
	}
}

// CountThreatDirections reports, for the stone at p, how many of the
// four directions carry at least a four (consecutive or jump) and how
// many carry at least a valid open three (consecutive or valid jump),
// along with bitmasks (bit = position.Direction) of which directions
// qualify. Shared by the forbidden-move classifier and the tactics
// layer's createsFourThree/createsDoubleThree, since both need the same
// per-direction shape census.
func CountThreatDirections(b *board.Board, p position.Position, c stone.Color) (fourDirs, threeDirs int, fourMask, threeMask uint8) {
	for d := position.Direction(0); d < position.NDirections; d++ {
		dp := pattern.AnalyzeDirection(b, p, d, c)
		t := pattern.Classify(dp)
		if t == pattern.Four || t == pattern.OpenFour {
			fourDirs++
			fourMask |= 1 << uint(d)
		} else if len(CheckJumpFour(b, p, d, c)) > 0 {
			fourDirs++
			fourMask |= 1 << uint(d)
		}

		if t == pattern.OpenThree {
			threeDirs++
			threeMask |= 1 << uint(d)
		} else if isValidJumpThree(b, p, d, c) {
			threeDirs++
			threeMask |= 1 << uint(d)
		}
	}
	return
}

// isValidJumpThree reports whether direction d has a jump three through p
// for colour c that is not a "fake" — at least one of its straight-four
// completion points must not be forbidden for black. The
// distinction only matters for black; white jump threes are always valid.
func isValidJumpThree(b *board.Board, p position.Position, d position.Direction, c stone.Color) bool {
	gaps := CheckJumpThree(b, p, d, c)
	if len(gaps) == 0 {
		return false
	}
	if c != stone.Black {
		return true
	}
	for _, g := range gaps {
		if f, _ := wouldBeForbidden(b, g, stone.Black); !f {
			return true
		}
	}
	return false
}

// wouldBeForbidden speculatively places c at p and reports whether that
// placement would be forbidden, then undoes it. Only meaningful for
// black; for any other colour it always reports not-forbidden.
func wouldBeForbidden(b *board.Board, p position.Position, c stone.Color) (bool, ForbiddenKind) {
	if c != stone.Black {
		return false, None
	}
	if !p.Valid() || b.At(p) != stone.Empty {
		return false, None
	}
	b.PlaceRaw(p, c)
	f, kind := CheckForbiddenMoveCached(b, p)
	b.RemoveRaw(p)
	return f, kind
}

// CheckPlacementForbidden is the exported form of wouldBeForbidden: it
// speculatively places black at the empty cell p, classifies it, and
// restores the board. Used by the tactics layer's mise/trap scanners,
// which need to test candidate cells without committing to them.
func CheckPlacementForbidden(b *board.Board, p position.Position) (bool, ForbiddenKind) {
	return wouldBeForbidden(b, p, stone.Black)
}

// window5 returns the 5 positions p.Step(d, o), p.Step(d, o+1), ...,
// p.Step(d, o+4), or ok=false if any of them is off-board.
func window5(p position.Position, d position.Direction, o int) (cells [5]position.Position, ok bool) {
	for i := 0; i < 5; i++ {
		cells[i] = p.Step(d, o+i)
		if !cells[i].Valid() {
			return cells, false
		}
	}
	return cells, true
}

// CheckJumpFour finds every window of 5 cells along d through p
// containing exactly 4 stones of colour c and 1 gap in the middle three
// positions (XXX·X, XX·XX, X·XXX), with p one of the 4 stones. Returns
// the gap position of every such window; multiple jump fours through the
// same stone in the same direction are possible and are all returned, so
// callers can total a jumpFourCount.
func CheckJumpFour(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	var gaps []position.Position
	for o := -4; o <= 0; o++ {
		cells, ok := window5(p, d, o)
		if !ok {
			continue
		}

		pIdx := -o // p's index within the window
		gapIdx := -1
		count := 0
		valid := true
		for i, cell := range cells {
			switch b.At(cell) {
			case c:
				count++
			case stone.Empty:
				if gapIdx != -1 {
					valid = false
				}
				gapIdx = i
			default:
				valid = false
			}
			if !valid {
				break
			}
		}
		if !valid || count != 4 || gapIdx < 1 || gapIdx > 3 {
			continue
		}
		if pIdx == gapIdx {
			continue // p itself must be a stone, not the gap
		}

		gaps = append(gaps, cells[gapIdx])
	}
	return dedup(gaps)
}

// CheckJumpThree finds every window of 6 cells along d through p
// matching ·XX·X· or ·X·XX· (both outer cells empty, exactly one
// internal gap at index 2 or 3, the other three internal cells colour
// c), with p one of the stones. Returns the gap position of each match.
func CheckJumpThree(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	var gaps []position.Position
	for o := -5; o <= 0; o++ {
		var cells [6]position.Position
		ok := true
		for i := 0; i < 6; i++ {
			cells[i] = p.Step(d, o+i)
			if !cells[i].Valid() {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		pIdx := -o
		if pIdx < 1 || pIdx > 4 {
			continue // p must be one of the 4 interior cells
		}
		if b.At(cells[0]) != stone.Empty || b.At(cells[5]) != stone.Empty {
			continue
		}

		gapIdx := -1
		count := 0
		valid := true
		for i := 1; i <= 4; i++ {
			switch b.At(cells[i]) {
			case c:
				count++
			case stone.Empty:
				if gapIdx != -1 {
					valid = false
				}
				gapIdx = i
			default:
				valid = false
			}
		}
		if !valid || count != 3 || gapIdx != 2 && gapIdx != 3 {
			continue
		}
		if pIdx == gapIdx {
			continue
		}

		gaps = append(gaps, cells[gapIdx])
	}
	return dedup(gaps)
}

// GetConsecutiveThreeStraightFourPoints returns the 0, 1, or 2 empty
// extension cells that would upgrade the consecutive three through p in
// direction d into an open four: the immediate extension cell must be
// empty, AND the cell one further beyond it must also be empty, else
// filling the extension only yields a one-sided four.
func GetConsecutiveThreeStraightFourPoints(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	dp := pattern.AnalyzeDirection(b, p, d, c)
	if dp.Count != 3 {
		return nil
	}

	var points []position.Position
	// positive end: p's run reaches its positive end somewhere; walk
	// from p to find it directly instead of trusting dp's End1 (which
	// only reports state, not position).
	posEnd := runEnd(b, p, d, 1, c)
	negEnd := runEnd(b, p, d, -1, c)

	if beyond := posEnd.Step(d, 1); posEnd.Valid() && b.At(posEnd) == stone.Empty && beyond.Valid() && b.At(beyond) == stone.Empty {
		points = append(points, posEnd)
	}
	if beyond := negEnd.Step(d, -1); negEnd.Valid() && b.At(negEnd) == stone.Empty && beyond.Valid() && b.At(beyond) == stone.Empty {
		points = append(points, negEnd)
	}
	return points
}

// GetJumpThreeStraightFourPoints returns the gap position of every jump
// three through p in direction d: filling the gap always completes a
// true open four directly, by construction of the jump-three templates.
func GetJumpThreeStraightFourPoints(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	return CheckJumpThree(b, p, d, c)
}

// runEnd walks from p in direction d, sign, through same-colour stones,
// and returns the first cell past the run (on-board or not — callers
// must check Valid()).
func runEnd(b *board.Board, p position.Position, d position.Direction, sign int, c stone.Color) position.Position {
	cur := p
	for {
		next := cur.Step(d, sign)
		if !next.Valid() || b.At(next) != c {
			return next
		}
		cur = next
	}
}

func dedup(ps []position.Position) []position.Position {
	if len(ps) < 2 {
		return ps
	}
	out := ps[:0]
	for _, p := range ps {
		found := false
		for _, q := range out {
			if p == q {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}
