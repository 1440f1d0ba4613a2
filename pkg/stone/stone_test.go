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

package stone_test

import (
	"testing"

	"github.com/ef81sp/holorenju-sub000/pkg/stone"
)

func TestOther(t *testing.T) {
	if stone.Black.Other() != stone.White {
		t.Errorf("Black.Other() = %v, want White", stone.Black.Other())
	}
	if stone.White.Other() != stone.Black {
		t.Errorf("White.Other() = %v, want Black", stone.White.Other())
	}
}

func TestOtherOfEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Other() on Empty did not panic")
		}
	}()
	stone.Empty.Other()
}

func TestOtherInvolution(t *testing.T) {
	for _, c := range []stone.Color{stone.Black, stone.White} {
		if c.Other().Other() != c {
			t.Errorf("%v.Other().Other() != %v", c, c)
		}
	}
}

func TestString(t *testing.T) {
	tests := map[stone.Color]string{
		stone.Empty: "empty",
		stone.Black: "black",
		stone.White: "white",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", c, got, want)
		}
	}
}
