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

// Package threat enumerates an opponent's mandatory-defence threats: the
// cells a defender must occupy to keep an opponent's open/closed fours,
// open threes, mises, and double-threes from resolving into a win.
// Grounded on the gomoku reference's findThreatsMove, which scans every
// stone of one colour and records the cell(s) that would neutralise it,
// generalized here to renju's extra shape vocabulary (jump patterns,
// natsu-dome, forbidden-aware double-threes).
package threat

import (
	"github.com/ef81sp/holorenju-sub000/pkg/board"
	"github.com/ef81sp/holorenju-sub000/pkg/pattern"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/rule"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
	"github.com/ef81sp/holorenju-sub000/pkg/tactics"
)

// Info lists every defence position a colour's opponent must consider,
// grouped by the threat tier that produced it. Positions are
// deduplicated within a list but not across lists.
type Info struct {
	OpenFours    []position.Position
	Fours        []position.Position
	OpenThrees   []position.Position
	Mises        []position.Position
	DoubleThrees []position.Position
}

// Detect scans every stone of opponentColour on b and returns the
// defence positions its owner's opponent must keep in mind.
func Detect(b *board.Board, opponentColour stone.Color) Info {
	var info Info
	defender := opponentColour.Other()

	b.Each(func(p position.Position, c stone.Color) {
		if c != opponentColour {
			return
		}
		for d := position.Direction(0); d < position.NDirections; d++ {
			scanDirection(b, p, d, opponentColour, defender, &info)
		}
	})

	info.OpenFours = dedup(info.OpenFours)
	info.Fours = dedup(info.Fours)
	info.OpenThrees = dedup(info.OpenThrees)

	scanMises(b, opponentColour, &info)
	if opponentColour == stone.White {
		scanDoubleThrees(b, opponentColour, &info)
	}

	return info
}

func scanDirection(b *board.Board, p position.Position, d position.Direction, attacker, defender stone.Color, info *Info) {
	dp := pattern.AnalyzeDirection(b, p, d, attacker)
	shape := pattern.Classify(dp)

	switch shape {
	case pattern.OpenFour:
		for _, end := range fourEnds(b, p, d, attacker) {
			info.OpenFours = append(info.OpenFours, end)
		}
		return
	case pattern.Four:
		for _, end := range fourEnds(b, p, d, attacker) {
			info.Fours = append(info.Fours, end)
		}
		return
	}

	if gaps := rule.CheckJumpFour(b, p, d, attacker); len(gaps) > 0 {
		info.Fours = append(info.Fours, gaps...)
		return
	}

	if shape == pattern.OpenThree {
		scanOpenThree(b, p, d, attacker, defender, info)
		return
	}

	if gaps := rule.CheckJumpThree(b, p, d, attacker); len(gaps) > 0 {
		info.OpenThrees = append(info.OpenThrees, gaps...)
		// the two outer sentinel cells of the jump-three window are also
		// defence positions per the "gap cell plus both outer
		// ends" rule.
		for _, g := range gaps {
			ends := jumpThreeOuterEnds(b, p, d, attacker, g)
			info.OpenThrees = append(info.OpenThrees, ends...)
		}
	}
}

func scanOpenThree(b *board.Board, p position.Position, d position.Direction, attacker, defender stone.Color, info *Info) {
	pos := p
	for pos.Step(d, 1).Valid() && b.At(pos.Step(d, 1)) == attacker {
		pos = pos.Step(d, 1)
	}
	neg := p
	for neg.Step(d, -1).Valid() && b.At(neg.Step(d, -1)) == attacker {
		neg = neg.Step(d, -1)
	}
	posEnd := pos.Step(d, 1)
	negEnd := neg.Step(d, -1)
	if !posEnd.Valid() || !negEnd.Valid() || b.At(posEnd) != stone.Empty || b.At(negEnd) != stone.Empty {
		return // not actually both-open; AnalyzeDirection already filtered this, defensive only
	}

	posBeyond := posEnd.Step(d, 1)
	negBeyond := negEnd.Step(d, -1)
	posBlocked := !posBeyond.Valid() || b.At(posBeyond) == defender
	negBlocked := !negBeyond.Valid() || b.At(negBeyond) == defender

	if posBlocked && negBlocked {
		return // neutralised already; no defence needed
	}

	info.OpenThrees = append(info.OpenThrees, posEnd, negEnd)

	if posBlocked != negBlocked {
		if posBlocked {
			info.OpenThrees = append(info.OpenThrees, negBeyond)
		} else {
			info.OpenThrees = append(info.OpenThrees, posBeyond)
		}
	}
}

// fourEnds returns the open end(s) of a consecutive four through p in
// direction d.
func fourEnds(b *board.Board, p position.Position, d position.Direction, c stone.Color) []position.Position {
	pos := p
	for pos.Step(d, 1).Valid() && b.At(pos.Step(d, 1)) == c {
		pos = pos.Step(d, 1)
	}
	neg := p
	for neg.Step(d, -1).Valid() && b.At(neg.Step(d, -1)) == c {
		neg = neg.Step(d, -1)
	}

	var ends []position.Position
	if e := pos.Step(d, 1); e.Valid() && b.At(e) == stone.Empty {
		ends = append(ends, e)
	}
	if e := neg.Step(d, -1); e.Valid() && b.At(e) == stone.Empty {
		ends = append(ends, e)
	}
	return ends
}

// jumpThreeOuterEnds locates the window (one of the two jump-three
// templates) whose gap is g and returns its two outer sentinel cells.
func jumpThreeOuterEnds(b *board.Board, p position.Position, d position.Direction, c stone.Color, gap position.Position) []position.Position {
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
		if !ok || cells[2] != gap && cells[3] != gap {
			continue
		}
		if b.At(cells[0]) == stone.Empty && b.At(cells[5]) == stone.Empty {
			return []position.Position{cells[0], cells[5]}
		}
	}
	return nil
}

func scanMises(b *board.Board, attacker stone.Color, info *Info) {
	b.Each(func(p position.Position, c stone.Color) {
		if c == stone.Empty {
			return
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := position.New(p.Row+dr, p.Col+dc)
				if !q.Valid() || b.At(q) != stone.Empty {
					continue
				}
				if tactics.CreatesFourThree(b, q, attacker) {
					info.Mises = append(info.Mises, q)
				}
			}
		}
	})
	info.Mises = dedup(info.Mises)
}

func scanDoubleThrees(b *board.Board, attacker stone.Color, info *Info) {
	b.Each(func(p position.Position, c stone.Color) {
		if c == stone.Empty {
			return
		}
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				q := position.New(p.Row+dr, p.Col+dc)
				if !q.Valid() || b.At(q) != stone.Empty {
					continue
				}
				if tactics.CreatesDoubleThree(b, q, attacker) {
					info.DoubleThrees = append(info.DoubleThrees, q)
				}
			}
		}
	})
	info.DoubleThrees = dedup(info.DoubleThrees)
}

func dedup(ps []position.Position) []position.Position {
	seen := make(map[position.Position]bool, len(ps))
	out := ps[:0]
	for _, p := range ps {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
