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

package search

import (
	"fmt"
	"time"
)

// Stats reports the running counters of a single findBestMove call,
// grounded on mess's pkg/search/stats.go Stats/Report split.
type Stats struct {
	Nodes       int
	TTHits      int
	TTCutoffs   int
	BetaCutoffs int

	Depth int
	Time  time.Duration
}

// Report is Stats plus its derived nodes-per-second figure, and a
// String implementation for human-readable logging.
type Report struct {
	Stats
	Nps float64
}

func (ctx *Context) buildStats(start time.Time, depth int) Stats {
	return Stats{
		Nodes:       ctx.nodes,
		TTHits:      ctx.ttHits,
		TTCutoffs:   ctx.ttCutoffs,
		BetaCutoffs: ctx.betaCutoffs,
		Depth:       depth,
		Time:        time.Since(start),
	}
}

// GenerateReport derives a Report from s, computing nodes-per-second.
func (s Stats) GenerateReport() Report {
	seconds := s.Time.Seconds()
	if seconds < 0.001 {
		seconds = 0.001
	}
	return Report{Stats: s, Nps: float64(s.Nodes) / seconds}
}

// String renders a one-line "depth N nodes N nps N tthits N ttcuts N
// betacuts N time N" summary (time in milliseconds), modelled on the
// UCI-flavoured info line mess prints per iteration.
func (r Report) String() string {
	return fmt.Sprintf(
		"depth %d nodes %d nps %.f tthits %d ttcuts %d betacuts %d time %d",
		r.Depth, r.Nodes, r.Nps, r.TTHits, r.TTCutoffs, r.BetaCutoffs, r.Time.Milliseconds(),
	)
}
