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

package clock_test

import (
	"testing"
	"time"

	"github.com/ef81sp/holorenju-sub000/pkg/search/clock"
)

func TestNewNotExpiredImmediately(t *testing.T) {
	m := clock.New(time.Second, 2*time.Second)
	if m.Check() {
		t.Error("Check() = true immediately after New, want false")
	}
}

func TestCheckLatchesSoftTimeout(t *testing.T) {
	m := clock.New(time.Millisecond, time.Second)
	time.Sleep(5 * time.Millisecond)

	if !m.Check() {
		t.Fatal("Check() = false after the soft deadline passed, want true")
	}
	if !m.Expired() {
		t.Error("Expired() = false after Check observed a timeout, want true")
	}
	if m.AbsoluteDeadlineExceeded() {
		t.Error("AbsoluteDeadlineExceeded() = true from a soft timeout alone, want false")
	}
}

func TestCheckLatchesAbsoluteDeadline(t *testing.T) {
	m := clock.New(time.Hour, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if !m.Check() {
		t.Fatal("Check() = false after the absolute deadline passed, want true")
	}
	if !m.AbsoluteDeadlineExceeded() {
		t.Error("AbsoluteDeadlineExceeded() = false, want true")
	}
}

func TestNewNonPositiveAbsoluteLimitUsesDefault(t *testing.T) {
	before := time.Now()
	m := clock.New(time.Millisecond, 0)
	time.Sleep(5 * time.Millisecond)
	m.Check()

	if m.AbsoluteDeadlineExceeded() {
		t.Error("AbsoluteDeadlineExceeded() = true well before the default 10s ceiling, want false")
	}
	if time.Since(before) >= clock.DefaultAbsoluteLimit {
		t.Skip("test ran too slowly to be meaningful")
	}
}

func TestUnboundedNeverExpires(t *testing.T) {
	m := clock.Unbounded()
	time.Sleep(time.Millisecond)
	if m.Check() {
		t.Error("Check() = true on an Unbounded manager, want false")
	}
}

func TestExtendDeadlineClampsToAbsolute(t *testing.T) {
	m := clock.New(time.Millisecond, 2*time.Millisecond)
	m.ExtendDeadline(time.Hour)
	time.Sleep(5 * time.Millisecond)

	if !m.Check() {
		t.Error("Check() = false after the absolute deadline despite ExtendDeadline, want true (clamped)")
	}
}

func TestElapsedIsPositive(t *testing.T) {
	m := clock.New(time.Second, time.Second)
	time.Sleep(time.Millisecond)
	if m.Elapsed() <= 0 {
		t.Error("Elapsed() <= 0 after a real sleep, want positive")
	}
}
