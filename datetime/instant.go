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
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"go.chromium.org/luci/common/errors"
)

// Instant is a point in time with millisecond resolution.
//
// Any date/time representation can take part in comparisons by implementing
// this interface. FromTime, FromUnixMilli and FromTimestamp adapt the common
// ones.
type Instant interface {
	// EpochMillis returns the number of milliseconds since the Unix epoch.
	EpochMillis() int64
	// LocalFields decomposes the instant into calendar fields of its own zone.
	LocalFields() Fields
	// UTCOffsetMinutes returns the offset of the instant's zone east of UTC,
	// in minutes (e.g. 120 for UTC+2, -300 for UTC-5).
	UTCOffsetMinutes() int
}

// Fields is the calendar decomposition of an Instant.
type Fields struct {
	Year        int
	Month       time.Month
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

type timeInstant struct {
	t time.Time
}

var _ Instant = timeInstant{}

// FromTime adapts a time.Time.
//
// Calendar fields are taken in t's location. Precision below a millisecond
// is dropped.
func FromTime(t time.Time) Instant {
	return timeInstant{t}
}

// FromUnixMilli returns the Instant `ms` milliseconds after the Unix epoch,
// observed in `loc` (UTC if nil).
func FromUnixMilli(ms int64, loc *time.Location) Instant {
	if loc == nil {
		loc = time.UTC
	}
	return timeInstant{time.UnixMilli(ms).In(loc)}
}

// FromTimestamp adapts a protobuf Timestamp, observed in `loc` (UTC if nil).
//
// Returns an error wrapping ErrInvalidArgument if ts is nil or out of the
// range allowed for Timestamp.
func FromTimestamp(ts *timestamppb.Timestamp, loc *time.Location) (Instant, error) {
	if err := ts.CheckValid(); err != nil {
		return nil, errors.Fmt("%w: timestamp: %w", ErrInvalidArgument, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return timeInstant{ts.AsTime().In(loc)}, nil
}

func (i timeInstant) EpochMillis() int64 {
	return i.t.UnixMilli()
}

func (i timeInstant) LocalFields() Fields {
	year, month, day := i.t.Date()
	hour, min, sec := i.t.Clock()
	return Fields{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      min,
		Second:      sec,
		Millisecond: i.t.Nanosecond() / int(time.Millisecond),
	}
}

func (i timeInstant) UTCOffsetMinutes() int {
	_, offset := i.t.Zone()
	return offset / 60
}

func (i timeInstant) String() string {
	return FormatTime(i)
}

// civilDate is midnight of a calendar date, detached from any zone.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

// DateOf returns the calendar date of `i` as an Instant.
//
// The result is midnight of the same year/month/day, pinned to UTC, so two
// instants have equal DateOf epoch values iff they fall on the same calendar
// day in their respective zones. Daylight-saving transitions never shift it.
func DateOf(i Instant) Instant {
	f := i.LocalFields()
	return civilDate{f.Year, f.Month, f.Day}
}

func (d civilDate) EpochMillis() int64 {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func (d civilDate) LocalFields() Fields {
	return Fields{Year: d.year, Month: d.month, Day: d.day}
}

func (civilDate) UTCOffsetMinutes() int { return 0 }

func (d civilDate) String() string {
	return FormatDate(d)
}
