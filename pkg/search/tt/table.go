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

// Package tt implements the search's transposition table: Zobrist-keyed
// cached scores and best moves, grounded on mess's
// pkg/search/tt.Table — same Probe/Store shape and depth/age
// replacement policy, generalized from chess moves to board positions.
package tt

import (
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/zobrist"
)

// EntryType is the bound type a stored score represents.
type EntryType uint8

const (
	NoEntry    EntryType = iota // no entry exists
	ExactEntry                  // the value is an exact score
	LowerBound                  // the value is a lower bound on the exact score
	UpperBound                  // the value is an upper bound on the exact score
)

// Entry is a single transposition table slot.
type Entry struct {
	Hash     zobrist.Key
	Depth    uint16
	Score    int32
	Type     EntryType
	BestMove position.Position
	Age      uint32
}

// Table is a fixed-size, power-of-two-free hash table of Entry, indexed
// by hash modulo size.
type Table struct {
	table []Entry
	size  uint64
	age   uint32
}

// NewTable creates a Table sized to hold roughly mbs megabytes of
// entries.
func NewTable(mbs int) *Table {
	const entrySize = 32 // approximate; Entry has no padding-sensitive fields
	size := uint64(mbs*1024*1024) / entrySize
	if size == 0 {
		size = 1
	}
	return &Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Clear empties every slot.
func (tt *Table) Clear() {
	for i := range tt.table {
		tt.table[i] = Entry{}
	}
}

// NextAge bumps the table's current age, called once per top-level
// findBestMove call so older searches' entries decay in quality.
func (tt *Table) NextAge() {
	tt.age++
}

// Store writes entry into its slot, replacing the existing occupant only
// when the new entry is of equal or higher depth, or the ages differ
// (depth/age replacement policy).
func (tt *Table) Store(entry Entry) {
	entry.Age = tt.age
	slot := &tt.table[tt.indexOf(entry.Hash)]
	if slot.Type == NoEntry || entry.Depth >= slot.Depth || entry.Age != slot.Age {
		*slot = entry
	}
}

// Probe fetches the entry for hash, reporting whether it is a genuine
// match (guarding against index collisions between different hashes).
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := tt.table[tt.indexOf(hash)]
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

func (tt *Table) indexOf(hash zobrist.Key) uint64 {
	return uint64(hash) % tt.size
}
