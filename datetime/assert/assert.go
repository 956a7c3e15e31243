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

// Package assert has flat, function-call forms of the date/time comparisons
// in the sibling "should" package.
//
//	assert.BeforeDate(t, got, deadline)
//	assert.NotWithinTime(t, got, start, end, "job %q ran in the freeze", name)
//
// Each function is exactly
//
//	assert.That(t, actual, should.X(...))
//
// from the truth library, with the optional message attached to the failure.
// Like truth's assert.That, a failure ends the test with t.FailNow().
package assert

import (
	"fmt"

	"go.chromium.org/luci/common/testing/truth"
	truthassert "go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/comparison"
	"go.chromium.org/luci/common/testing/truth/failure"

	"go.chromium.org/truthtime/datetime/should"
)

// message renders `msgAndArgs`: a single value as is, or a format string
// followed by its arguments.
func message(msgAndArgs []any) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}

func withMessage[T any](cmp comparison.Func[T], msgAndArgs []any) comparison.Func[T] {
	msg := message(msgAndArgs)
	if msg == "" {
		return cmp
	}
	return func(actual T) *failure.Summary {
		ret := cmp(actual)
		if ret != nil {
			(&comparison.SummaryBuilder{Summary: ret}).AddFindingf("Message", "%s", msg)
		}
		return ret
	}
}

func that[T should.Value](t truth.TestingTB, actual T, cmp comparison.Func[T], msgAndArgs []any) {
	t.Helper()
	truthassert.That(t, actual, withMessage(cmp, msgAndArgs))
}

// EqualTime asserts that `actual` is the same millisecond as `expected`.
func EqualTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.EqualTime(expected), msgAndArgs)
}

// NotEqualTime is the negation of EqualTime.
func NotEqualTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotEqualTime(expected), msgAndArgs)
}

// CloseToTime asserts that `actual` is strictly less than `deltaSeconds`
// away from `expected`.
func CloseToTime[T should.Value](t truth.TestingTB, actual, expected T, deltaSeconds float64, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.CloseToTime(expected, deltaSeconds), msgAndArgs)
}

// NotCloseToTime is the negation of CloseToTime.
func NotCloseToTime[T should.Value](t truth.TestingTB, actual, expected T, deltaSeconds float64, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotCloseToTime(expected, deltaSeconds), msgAndArgs)
}

// EqualDate asserts that `actual` falls on the same calendar date as
// `expected`.
func EqualDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.EqualDate(expected), msgAndArgs)
}

// NotEqualDate is the negation of EqualDate.
func NotEqualDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotEqualDate(expected), msgAndArgs)
}

// BeforeDate asserts that the date of `actual` precedes that of `expected`.
func BeforeDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.BeforeDate(expected), msgAndArgs)
}

// NotBeforeDate is the negation of BeforeDate.
func NotBeforeDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotBeforeDate(expected), msgAndArgs)
}

// BeforeOrEqualDate asserts that the date of `actual` is not after that of
// `expected`.
func BeforeOrEqualDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.BeforeOrEqualDate(expected), msgAndArgs)
}

// NotBeforeOrEqualDate is the negation of BeforeOrEqualDate.
func NotBeforeOrEqualDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotBeforeOrEqualDate(expected), msgAndArgs)
}

// AfterDate asserts that the date of `actual` follows that of `expected`.
func AfterDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.AfterDate(expected), msgAndArgs)
}

// NotAfterDate is the negation of AfterDate.
func NotAfterDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotAfterDate(expected), msgAndArgs)
}

// AfterOrEqualDate asserts that the date of `actual` is not before that of
// `expected`.
func AfterOrEqualDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.AfterOrEqualDate(expected), msgAndArgs)
}

// NotAfterOrEqualDate is the negation of AfterOrEqualDate.
func NotAfterOrEqualDate[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotAfterOrEqualDate(expected), msgAndArgs)
}

// WithinDate asserts that the date of `actual` is within [from, to].
func WithinDate[T should.Value](t truth.TestingTB, actual, from, to T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.WithinDate(from, to), msgAndArgs)
}

// NotWithinDate is the negation of WithinDate.
func NotWithinDate[T should.Value](t truth.TestingTB, actual, from, to T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotWithinDate(from, to), msgAndArgs)
}

// BeforeTime asserts that `actual` is strictly earlier than `expected`.
func BeforeTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.BeforeTime(expected), msgAndArgs)
}

// NotBeforeTime is the negation of BeforeTime.
func NotBeforeTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotBeforeTime(expected), msgAndArgs)
}

// BeforeOrEqualTime asserts that `actual` is not later than `expected`.
func BeforeOrEqualTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.BeforeOrEqualTime(expected), msgAndArgs)
}

// NotBeforeOrEqualTime is the negation of BeforeOrEqualTime.
func NotBeforeOrEqualTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotBeforeOrEqualTime(expected), msgAndArgs)
}

// AfterTime asserts that `actual` is strictly later than `expected`.
func AfterTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.AfterTime(expected), msgAndArgs)
}

// NotAfterTime is the negation of AfterTime.
func NotAfterTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotAfterTime(expected), msgAndArgs)
}

// AfterOrEqualTime asserts that `actual` is not earlier than `expected`.
func AfterOrEqualTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.AfterOrEqualTime(expected), msgAndArgs)
}

// NotAfterOrEqualTime is the negation of AfterOrEqualTime.
func NotAfterOrEqualTime[T should.Value](t truth.TestingTB, actual, expected T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotAfterOrEqualTime(expected), msgAndArgs)
}

// WithinTime asserts that from <= actual <= to.
func WithinTime[T should.Value](t truth.TestingTB, actual, from, to T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.WithinTime(from, to), msgAndArgs)
}

// NotWithinTime is the negation of WithinTime.
func NotWithinTime[T should.Value](t truth.TestingTB, actual, from, to T, msgAndArgs ...any) {
	t.Helper()
	that(t, actual, should.NotWithinTime(from, to), msgAndArgs)
}
