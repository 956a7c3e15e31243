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

// Package datetime implements the comparison and formatting core of the
// truthtime matchers.
//
// All comparisons operate on an Instant, a point in time with millisecond
// resolution which can also be decomposed into calendar fields of its own
// time zone. Time comparisons (EqualTime, BeforeTime, ...) look only at the
// epoch milliseconds. Date comparisons (EqualDate, BeforeDate, ...) look only
// at the calendar date of each operand, as observed in that operand's zone:
//
//	a := datetime.FromTime(time.Date(2013, time.May, 30, 17, 0, 0, 0, time.Local))
//	b := datetime.FromTime(time.Date(2013, time.May, 30, 18, 0, 0, 0, time.Local))
//	datetime.EqualDate(a, b) // true
//	datetime.EqualTime(a, b) // false
//
// The formatting helpers (FormatDate, FormatTime, FormattedTimezone) produce
// the renderings used in failure messages; their field widths are fixed.
//
// The matchers themselves live in the "should" (chainable truth comparisons)
// and "assert" (flat functions) subpackages, both driven by the predicate
// table in the "registry" subpackage.
package datetime
