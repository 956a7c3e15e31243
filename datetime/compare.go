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

package datetime

import (
	"math"
	"reflect"
	"time"

	"go.chromium.org/luci/common/errors"
)

// ErrInvalidArgument is wrapped by every error caused by a malformed call (as
// opposed to a comparison which simply does not hold).
var ErrInvalidArgument = errors.New("invalid argument")

// EqualTime returns true iff `a` and `b` are the same millisecond.
func EqualTime(a, b Instant) bool {
	return a.EpochMillis() == b.EpochMillis()
}

// CloseToTime returns true iff `a` and `b` are strictly less than
// `deltaSeconds` apart.
//
// A zero delta is accepted (and never holds). A negative delta never holds.
// A NaN delta is an ErrInvalidArgument.
func CloseToTime(a, b Instant, deltaSeconds float64) (bool, error) {
	if math.IsNaN(deltaSeconds) {
		return false, errors.Fmt("%w: closeToTime: deltaSeconds is NaN", ErrInvalidArgument)
	}
	diff := a.EpochMillis() - b.EpochMillis()
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) < deltaSeconds*1000, nil
}

// DeltaSeconds coerces a dynamically typed tolerance to seconds.
//
// Any integer or floating point kind is taken as a number of seconds and a
// time.Duration is converted. A nil (missing) value, a non-numeric value and
// NaN are rejected with ErrInvalidArgument.
func DeltaSeconds(v any) (float64, error) {
	if d, ok := v.(time.Duration); ok {
		return d.Seconds(), nil
	}
	if v == nil {
		return 0, errors.Fmt("%w: deltaSeconds is missing, must be a number", ErrInvalidArgument)
	}

	var ret float64
	switch rv := reflect.ValueOf(v); {
	case rv.CanInt():
		ret = float64(rv.Int())
	case rv.CanUint():
		ret = float64(rv.Uint())
	case rv.CanFloat():
		ret = rv.Float()
	default:
		return 0, errors.Fmt("%w: deltaSeconds must be a number, got %T", ErrInvalidArgument, v)
	}
	if math.IsNaN(ret) {
		return 0, errors.Fmt("%w: deltaSeconds must be a number, got NaN", ErrInvalidArgument)
	}
	return ret, nil
}

// EqualDate returns true iff `a` and `b` fall on the same calendar date.
func EqualDate(a, b Instant) bool {
	return FormatDate(a) == FormatDate(b)
}

// BeforeTime returns true iff `a` is strictly earlier than `b`.
func BeforeTime(a, b Instant) bool {
	return a.EpochMillis() < b.EpochMillis()
}

// AfterTime returns true iff `a` is strictly later than `b`.
func AfterTime(a, b Instant) bool {
	return a.EpochMillis() > b.EpochMillis()
}

// BeforeOrEqualTime is BeforeTime || EqualTime.
func BeforeOrEqualTime(a, b Instant) bool {
	return BeforeTime(a, b) || EqualTime(a, b)
}

// AfterOrEqualTime is AfterTime || EqualTime.
func AfterOrEqualTime(a, b Instant) bool {
	return AfterTime(a, b) || EqualTime(a, b)
}

// WithinTime returns true iff from <= a <= to.
//
// If from is later than to, the range is empty.
func WithinTime(a, from, to Instant) bool {
	ms := a.EpochMillis()
	return from.EpochMillis() <= ms && ms <= to.EpochMillis()
}

// BeforeDate returns true iff the calendar date of `a` is earlier than that
// of `b`.
func BeforeDate(a, b Instant) bool {
	return BeforeTime(DateOf(a), DateOf(b))
}

// AfterDate returns true iff the calendar date of `a` is later than that of
// `b`.
func AfterDate(a, b Instant) bool {
	return AfterTime(DateOf(a), DateOf(b))
}

// BeforeOrEqualDate compares calendar dates with BeforeOrEqualTime.
func BeforeOrEqualDate(a, b Instant) bool {
	return BeforeOrEqualTime(DateOf(a), DateOf(b))
}

// AfterOrEqualDate compares calendar dates with AfterOrEqualTime.
func AfterOrEqualDate(a, b Instant) bool {
	return AfterOrEqualTime(DateOf(a), DateOf(b))
}

// WithinDate returns true iff the calendar date of `a` is within the
// (inclusive) range of calendar dates [from, to].
func WithinDate(a, from, to Instant) bool {
	return WithinTime(DateOf(a), DateOf(from), DateOf(to))
}
