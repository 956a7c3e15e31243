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
	"fmt"
	"time"
)

// dateLayout renders e.g. "Thu May 30 2013".
const dateLayout = "Mon Jan 02 2006"

// FormatDate renders the calendar date of `i`, e.g. "Thu May 30 2013".
//
// Two instants are EqualDate iff their FormatDate renderings are identical.
func FormatDate(i Instant) string {
	f := i.LocalFields()
	return time.Date(f.Year, f.Month, f.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

// FormattedTimezone renders a zone offset as "±HH:MM".
//
// The input counts minutes *behind* UTC, so the sign is inverted: 300 (UTC-5)
// renders as "-05:00" and -525 (UTC+8:45) as "+08:45". Zero renders as
// "+00:00".
func FormattedTimezone(minutesBehindUTC int) string {
	sign := '+'
	if minutesBehindUTC > 0 {
		sign = '-'
	}
	tz := minutesBehindUTC
	if tz < 0 {
		tz = -tz
	}
	return fmt.Sprintf("%c%02d:%02d", sign, tz/60, tz%60)
}

// FormatTime renders `i` with millisecond precision and its zone offset, e.g.
// "Thu May 30 2013 16:05:00.000 (-07:00)".
func FormatTime(i Instant) string {
	f := i.LocalFields()
	return fmt.Sprintf("%s %02d:%02d:%02d.%03d (%s)",
		FormatDate(i), f.Hour, f.Minute, f.Second, f.Millisecond,
		FormattedTimezone(-i.UTCOffsetMinutes()))
}
