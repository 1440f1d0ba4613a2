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

// Package clock implements the search's dual wall-clock budget, adapted
// from mess's pkg/search/time.Manager (GetDeadline/ExtendDeadline/
// Expired): that manager derives its deadline from chess clock fields
// (wtime, btime, increment, movestogo), none of which apply here. This
// Manager instead takes a flat per-move time budget and a hard absolute
// ceiling, and distinguishes which of the two expired.
package clock

import "time"

// DefaultAbsoluteLimit is the ceiling applied when the caller doesn't
// specify one: a runaway search is cut off at 10 seconds regardless of
// its nominal time budget.
const DefaultAbsoluteLimit = 10 * time.Second

// Manager tracks a soft deadline (the requested time budget) and a hard
// absolute deadline (a backstop independent of the caller's budget).
type Manager struct {
	start            time.Time
	deadline         time.Time
	absoluteDeadline time.Time

	timeoutFlag              bool
	absoluteDeadlineExceeded bool
}

// New starts a Manager whose soft deadline is now+timeLimit and whose
// hard deadline is now+absoluteLimit. A non-positive absoluteLimit
// substitutes DefaultAbsoluteLimit.
func New(timeLimit, absoluteLimit time.Duration) *Manager {
	if absoluteLimit <= 0 {
		absoluteLimit = DefaultAbsoluteLimit
	}
	now := time.Now()
	return &Manager{
		start:            now,
		deadline:         now.Add(timeLimit),
		absoluteDeadline: now.Add(absoluteLimit),
	}
}

// Unbounded returns a Manager with no effective deadline, for callers
// (tests, VCF/VCT-only queries) that never want a search aborted on time.
func Unbounded() *Manager {
	now := time.Now()
	far := now.Add(365 * 24 * time.Hour)
	return &Manager{start: now, deadline: far, absoluteDeadline: far}
}

// ExtendDeadline pushes the soft deadline out by extra. It never
// extends past the absolute deadline.
func (m *Manager) ExtendDeadline(extra time.Duration) {
	next := m.deadline.Add(extra)
	if next.After(m.absoluteDeadline) {
		next = m.absoluteDeadline
	}
	m.deadline = next
}

// Check polls both deadlines, latching timeoutFlag / absoluteDeadlineExceeded
// the first time each is observed crossed, and reports whether the
// search should stop at the current node.
func (m *Manager) Check() bool {
	now := time.Now()
	if now.After(m.absoluteDeadline) {
		m.absoluteDeadlineExceeded = true
	}
	if now.After(m.deadline) {
		m.timeoutFlag = true
	}
	return m.timeoutFlag || m.absoluteDeadlineExceeded
}

// Expired reports whether Check has observed either deadline crossed,
// without re-polling the clock; used by the outer loop after Check has
// already run this node.
func (m *Manager) Expired() bool {
	return m.timeoutFlag || m.absoluteDeadlineExceeded
}

// AbsoluteDeadlineExceeded reports whether the hard backstop specifically
// was crossed, distinct from a plain soft-budget timeout.
func (m *Manager) AbsoluteDeadlineExceeded() bool {
	return m.absoluteDeadlineExceeded
}

// Elapsed returns how long this Manager has been running.
func (m *Manager) Elapsed() time.Duration {
	return time.Since(m.start)
}
