// Copyright 2025 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testhelper

import (
	"testing"

	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	t.Run("records", func(t *testing.T) {
		r := NewRecorder(t)
		r.Log("a", 1, "b")
		r.Logf("x=%d", 2)
		r.FailNow()

		assert.That(t, r.logs, should.Match([]string{"a 1 b", "x=2"}))
		assert.Loosely(t, r.failed, should.BeTrue)
		assert.Loosely(t, r.failedNow, should.BeTrue)
	})

	t.Run("Fail is not FailNow", func(t *testing.T) {
		r := NewRecorder(t)
		r.Fail()

		assert.Loosely(t, r.failed, should.BeTrue)
		assert.Loosely(t, r.failedNow, should.BeFalse)
	})

	t.Run("missing", func(t *testing.T) {
		r := NewRecorder(t)
		r.Log("expected A to equal B")
		r.Log("Message", "deadline")

		assert.Loosely(t, r.missing([]string{"to equal", "deadline"}), should.BeEmpty)
		assert.That(t, r.missing([]string{"to equal", "A to equal B deadline", "nope"}),
			should.Match([]string{"A to equal B deadline", "nope"}))
	})

	t.Run("dump", func(t *testing.T) {
		r := NewRecorder(t)
		assert.That(t, r.dump(), should.Equal("(nothing was logged)"))

		r.Log("first")
		r.Log("second\nline")
		assert.That(t, r.dump(), should.Equal("logged:\n[0] first\n[1] second\n    line"))
	})
}
