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

package main

import (
	"fmt"

	"github.com/ef81sp/holorenju-sub000/pkg/engine"
	"github.com/ef81sp/holorenju-sub000/pkg/position"
	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

// main demonstrates the engine package end to end: play a short opening,
// print the board, then let white search for its next move. This
// mirrors how mess's cmd/mess/main.go exercises pkg/board/pkg/square
// directly rather than through a GUI or benchmark harness.
func main() {
	e := engine.New()

	e.Play(position.New(7, 7), stone.Black)
	e.Play(position.New(7, 8), stone.White)
	e.Play(position.New(8, 8), stone.Black)

	fmt.Println()
	fmt.Println(e.Board)

	result := e.FindBestMove(stone.White, 6, 1000, 0, 0)
	fmt.Printf("white plays %s (score %d, depth %d)\n", result.Position, result.Score, result.CompletedDepth)

	threats := e.DetectOpponentThreats(stone.Black)
	fmt.Printf("black threats: %+v\n", threats)
}
