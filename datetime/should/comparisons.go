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

package should

import (
	"go.chromium.org/luci/common/testing/truth/comparison"

	"go.chromium.org/truthtime/datetime/registry"
)

// EqualTime checks that `actual` is the same millisecond as `expected`.
func EqualTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.EqualTime, false, nil, expected)
}

// NotEqualTime is the negation of EqualTime.
func NotEqualTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.EqualTime, true, nil, expected)
}

// CloseToTime checks that `actual` is strictly less than `deltaSeconds` away
// from `expected`.
//
// A NaN delta fails every comparison as an invalid argument.
func CloseToTime[T Value](expected T, deltaSeconds float64) comparison.Func[T] {
	return compare(registry.CloseToTime, false, deltaSeconds, expected)
}

// NotCloseToTime is the negation of CloseToTime.
func NotCloseToTime[T Value](expected T, deltaSeconds float64) comparison.Func[T] {
	return compare(registry.CloseToTime, true, deltaSeconds, expected)
}

// EqualDate checks that `actual` falls on the same calendar date as
// `expected`.
func EqualDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.EqualDate, false, nil, expected)
}

// NotEqualDate is the negation of EqualDate.
func NotEqualDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.EqualDate, true, nil, expected)
}

// BeforeDate checks that the calendar date of `actual` precedes that of
// `expected`.
func BeforeDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeDate, false, nil, expected)
}

// NotBeforeDate is the negation of BeforeDate.
func NotBeforeDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeDate, true, nil, expected)
}

// BeforeOrEqualDate checks that the calendar date of `actual` is not after
// that of `expected`.
func BeforeOrEqualDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeOrEqualDate, false, nil, expected)
}

// NotBeforeOrEqualDate is the negation of BeforeOrEqualDate.
func NotBeforeOrEqualDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeOrEqualDate, true, nil, expected)
}

// AfterDate checks that the calendar date of `actual` follows that of
// `expected`.
func AfterDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterDate, false, nil, expected)
}

// NotAfterDate is the negation of AfterDate.
func NotAfterDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterDate, true, nil, expected)
}

// AfterOrEqualDate checks that the calendar date of `actual` is not before
// that of `expected`.
func AfterOrEqualDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterOrEqualDate, false, nil, expected)
}

// NotAfterOrEqualDate is the negation of AfterOrEqualDate.
func NotAfterOrEqualDate[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterOrEqualDate, true, nil, expected)
}

// WithinDate checks that the calendar date of `actual` is in the inclusive
// range of dates [from, to].
func WithinDate[T Value](from, to T) comparison.Func[T] {
	return compare(registry.WithinDate, false, nil, from, to)
}

// NotWithinDate is the negation of WithinDate.
func NotWithinDate[T Value](from, to T) comparison.Func[T] {
	return compare(registry.WithinDate, true, nil, from, to)
}

// BeforeTime checks that `actual` is strictly earlier than `expected`.
func BeforeTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeTime, false, nil, expected)
}

// NotBeforeTime is the negation of BeforeTime.
func NotBeforeTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeTime, true, nil, expected)
}

// BeforeOrEqualTime checks that `actual` is not later than `expected`.
func BeforeOrEqualTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeOrEqualTime, false, nil, expected)
}

// NotBeforeOrEqualTime is the negation of BeforeOrEqualTime.
func NotBeforeOrEqualTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.BeforeOrEqualTime, true, nil, expected)
}

// AfterTime checks that `actual` is strictly later than `expected`.
func AfterTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterTime, false, nil, expected)
}

// NotAfterTime is the negation of AfterTime.
func NotAfterTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterTime, true, nil, expected)
}

// AfterOrEqualTime checks that `actual` is not earlier than `expected`.
func AfterOrEqualTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterOrEqualTime, false, nil, expected)
}

// NotAfterOrEqualTime is the negation of AfterOrEqualTime.
func NotAfterOrEqualTime[T Value](expected T) comparison.Func[T] {
	return compare(registry.AfterOrEqualTime, true, nil, expected)
}

// WithinTime checks that from <= actual <= to.
func WithinTime[T Value](from, to T) comparison.Func[T] {
	return compare(registry.WithinTime, false, nil, from, to)
}

// NotWithinTime is the negation of WithinTime.
func NotWithinTime[T Value](from, to T) comparison.Func[T] {
	return compare(registry.WithinTime, true, nil, from, to)
}
