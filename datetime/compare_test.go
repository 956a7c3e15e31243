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
	"testing"
	"time"
	_ "time/tzdata"

	"go.chromium.org/luci/common/clock/testclock"
	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/check"
	"go.chromium.org/luci/common/testing/truth/should"
)

func day(year int, month time.Month, d, hour int) Instant {
	return FromTime(time.Date(year, month, d, hour, 0, 0, 0, time.Local))
}

func TestTimeComparisons(t *testing.T) {
	t.Parallel()

	now := testclock.TestRecentTimeLocal
	samples := []Instant{
		FromTime(now),
		FromTime(now.Add(-time.Millisecond)),
		FromTime(now.Add(time.Millisecond)),
		FromTime(now.Add(999 * time.Microsecond)), // same millisecond as now
		FromTime(now.Add(-24 * time.Hour)),
		FromTime(now.In(eucla)),
	}

	ftt.Run("reflexivity", t, func(t *ftt.Test) {
		for _, a := range samples {
			check.Loosely(t, EqualTime(a, a), should.BeTrue)
			check.Loosely(t, BeforeTime(a, a), should.BeFalse)
			check.Loosely(t, AfterTime(a, a), should.BeFalse)
			check.Loosely(t, BeforeOrEqualTime(a, a), should.BeTrue)
			check.Loosely(t, AfterOrEqualTime(a, a), should.BeTrue)
		}
	})

	ftt.Run("trichotomy", t, func(t *ftt.Test) {
		for _, a := range samples {
			for _, b := range samples {
				n := 0
				for _, holds := range []bool{BeforeTime(a, b), EqualTime(a, b), AfterTime(a, b)} {
					if holds {
						n++
					}
				}
				check.That(t, n, should.Equal(1))
			}
		}
	})

	ftt.Run("WithinTime", t, func(t *ftt.Test) {
		t.Run("degenerate range is equality", func(t *ftt.Test) {
			for _, a := range samples {
				for _, b := range samples {
					check.That(t, WithinTime(a, b, b), should.Equal(EqualTime(a, b)))
				}
			}
		})
		t.Run("inclusive on both ends", func(t *ftt.Test) {
			from, to := FromTime(now), FromTime(now.Add(time.Second))
			assert.Loosely(t, WithinTime(from, from, to), should.BeTrue)
			assert.Loosely(t, WithinTime(to, from, to), should.BeTrue)
			assert.Loosely(t, WithinTime(FromTime(now.Add(time.Second+time.Millisecond)), from, to), should.BeFalse)
		})
		t.Run("inverted range is empty", func(t *ftt.Test) {
			from, to := FromTime(now.Add(time.Second)), FromTime(now)
			assert.Loosely(t, WithinTime(FromTime(now.Add(time.Second/2)), from, to), should.BeFalse)
		})
	})

	ftt.Run("EqualTime ignores the zone", t, func(t *ftt.Test) {
		assert.Loosely(t, EqualTime(FromTime(now), FromTime(now.In(eucla))), should.BeTrue)
	})
}

func TestCloseToTime(t *testing.T) {
	t.Parallel()

	ftt.Run("CloseToTime", t, func(t *ftt.Test) {
		subject := FromTime(time.Date(2013, time.May, 30, 16, 5, 16, 323e6, time.Local))
		plus200ms := FromTime(time.Date(2013, time.May, 30, 16, 5, 16, 523e6, time.Local))
		plus3s := FromTime(time.Date(2013, time.May, 30, 16, 5, 19, 323e6, time.Local))

		closeTo := func(t testing.TB, a, b Instant, delta float64) bool {
			t.Helper()
			ok, err := CloseToTime(a, b, delta)
			assert.NoErr(t, err)
			return ok
		}

		t.Run("within delta", func(t *ftt.Test) {
			assert.Loosely(t, closeTo(t, subject, plus3s, 5), should.BeTrue)
			assert.Loosely(t, closeTo(t, plus3s, subject, 5), should.BeTrue)
			assert.Loosely(t, closeTo(t, subject, plus200ms, 0.5), should.BeTrue)
		})
		t.Run("outside delta", func(t *ftt.Test) {
			assert.Loosely(t, closeTo(t, subject, plus3s, 1), should.BeFalse)
			assert.Loosely(t, closeTo(t, subject, plus200ms, 0.1), should.BeFalse)
		})
		t.Run("delta equal to the difference is not close", func(t *ftt.Test) {
			assert.Loosely(t, closeTo(t, subject, plus3s, 3), should.BeFalse)
			assert.Loosely(t, closeTo(t, subject, plus200ms, 0.2), should.BeFalse)
		})
		t.Run("zero delta is accepted and never holds", func(t *ftt.Test) {
			assert.Loosely(t, closeTo(t, subject, subject, 0), should.BeFalse)
			assert.Loosely(t, closeTo(t, subject, plus200ms, 0), should.BeFalse)
		})
		t.Run("negative delta never holds", func(t *ftt.Test) {
			assert.Loosely(t, closeTo(t, subject, subject, -1), should.BeFalse)
		})
		t.Run("infinite delta always holds", func(t *ftt.Test) {
			assert.Loosely(t, closeTo(t, subject, FromUnixMilli(0, nil), math.Inf(1)), should.BeTrue)
		})
		t.Run("NaN is an invalid argument", func(t *ftt.Test) {
			_, err := CloseToTime(subject, subject, math.NaN())
			assert.That(t, err, should.ErrLike(ErrInvalidArgument))
		})
	})

	ftt.Run("DeltaSeconds", t, func(t *ftt.Test) {
		type seconds float32

		t.Run("numbers", func(t *ftt.Test) {
			for _, tc := range []struct {
				in   any
				want float64
			}{
				{0, 0},
				{5, 5},
				{int8(-3), -3},
				{uint16(7), 7},
				{0.25, 0.25},
				{seconds(1.5), 1.5},
				{1500 * time.Millisecond, 1.5},
				{math.Inf(1), math.Inf(1)},
			} {
				got, err := DeltaSeconds(tc.in)
				check.That(t, err, should.ErrLike(nil))
				check.That(t, got, should.Equal(tc.want))
			}
		})
		t.Run("missing", func(t *ftt.Test) {
			_, err := DeltaSeconds(nil)
			assert.That(t, err, should.ErrLike(ErrInvalidArgument))
			assert.That(t, err, should.ErrLike("missing"))
		})
		t.Run("not a number", func(t *ftt.Test) {
			for _, in := range []any{"5", true, []int{1}, struct{}{}} {
				_, err := DeltaSeconds(in)
				check.That(t, err, should.ErrLike(ErrInvalidArgument))
			}
		})
		t.Run("NaN", func(t *ftt.Test) {
			_, err := DeltaSeconds(math.NaN())
			assert.That(t, err, should.ErrLike("NaN"))
		})
	})
}

func TestDateComparisons(t *testing.T) {
	t.Parallel()

	ftt.Run("consecutive days", t, func(t *ftt.Test) {
		a := day(2013, time.May, 30, 0)
		b := day(2013, time.May, 31, 0)

		assert.Loosely(t, BeforeDate(a, b), should.BeTrue)
		assert.Loosely(t, AfterDate(a, b), should.BeFalse)
		assert.Loosely(t, EqualDate(a, b), should.BeFalse)
		assert.Loosely(t, BeforeOrEqualDate(a, b), should.BeTrue)
		assert.Loosely(t, AfterOrEqualDate(a, b), should.BeFalse)
		assert.Loosely(t, AfterDate(b, a), should.BeTrue)
	})

	ftt.Run("same day, different times", t, func(t *ftt.Test) {
		a := day(2013, time.May, 30, 17)
		b := day(2013, time.May, 30, 18)

		assert.Loosely(t, EqualDate(a, b), should.BeTrue)
		assert.Loosely(t, EqualTime(a, b), should.BeFalse)
		assert.Loosely(t, BeforeDate(a, b), should.BeFalse)
		assert.Loosely(t, AfterDate(b, a), should.BeFalse)
		assert.Loosely(t, BeforeOrEqualDate(b, a), should.BeTrue)
		assert.Loosely(t, AfterOrEqualDate(a, b), should.BeTrue)
	})

	ftt.Run("WithinDate", t, func(t *ftt.Test) {
		from := day(2013, time.May, 29, 0)
		to := day(2013, time.May, 31, 0)

		assert.Loosely(t, WithinDate(day(2013, time.May, 30, 0), from, to), should.BeTrue)
		assert.Loosely(t, WithinDate(day(2013, time.May, 28, 0), from, to), should.BeFalse)

		t.Run("ignores time of day at the bounds", func(t *ftt.Test) {
			assert.Loosely(t, WithinDate(day(2013, time.May, 31, 23), from, to), should.BeTrue)
			assert.Loosely(t, WithinDate(day(2013, time.May, 29, 0), day(2013, time.May, 29, 23), to), should.BeTrue)
		})
	})

	ftt.Run("EqualDate agrees with FormatDate", t, func(t *ftt.Test) {
		instants := []Instant{
			day(2013, time.May, 30, 0),
			day(2013, time.May, 30, 23),
			day(2014, time.May, 30, 12),
			day(2013, time.May, 31, 1),
			FromTime(time.Date(2013, time.May, 30, 23, 0, 0, 0, eucla)),
		}
		for _, a := range instants {
			for _, b := range instants {
				check.That(t, EqualDate(a, b), should.Equal(FormatDate(a) == FormatDate(b)))
			}
		}
	})

	ftt.Run("cross-year ordering uses the full date", t, func(t *ftt.Test) {
		t.Run("new year's eve", func(t *ftt.Test) {
			assert.Loosely(t, BeforeDate(day(2013, time.December, 31, 23), day(2014, time.January, 1, 0)), should.BeTrue)
			assert.Loosely(t, AfterDate(day(2014, time.January, 1, 0), day(2013, time.December, 31, 23)), should.BeTrue)
		})
		t.Run("earlier month in a later year", func(t *ftt.Test) {
			assert.Loosely(t, AfterDate(day(2014, time.January, 2, 0), day(2013, time.April, 30, 0)), should.BeTrue)
			assert.Loosely(t, BeforeDate(day(2013, time.December, 31, 0), day(2014, time.January, 2, 0)), should.BeTrue)
		})
		t.Run("same month and day, different years", func(t *ftt.Test) {
			a := day(2013, time.May, 30, 12)
			b := day(2014, time.May, 30, 12)
			assert.Loosely(t, EqualDate(a, b), should.BeFalse)
			assert.Loosely(t, BeforeDate(a, b), should.BeTrue)
			assert.Loosely(t, AfterDate(a, b), should.BeFalse)
			assert.Loosely(t, AfterDate(b, a), should.BeTrue)
		})
		t.Run("364 days apart", func(t *ftt.Test) {
			a := day(2013, time.January, 2, 0)
			b := day(2013, time.December, 31, 0)
			assert.Loosely(t, BeforeDate(a, b), should.BeTrue)
			assert.Loosely(t, AfterDate(b, a), should.BeTrue)
			assert.Loosely(t, WithinDate(day(2013, time.July, 1, 0), a, b), should.BeTrue)
		})
	})

	ftt.Run("dates are observed in each operand's zone", t, func(t *ftt.Test) {
		// Same instant, different calendar days.
		utc := FromTime(time.Date(2013, time.May, 31, 2, 0, 0, 0, time.UTC))
		west := FromTime(time.Date(2013, time.May, 31, 2, 0, 0, 0, time.UTC).In(pdt))

		assert.Loosely(t, EqualTime(utc, west), should.BeTrue)
		assert.Loosely(t, EqualDate(utc, west), should.BeFalse)
		assert.Loosely(t, BeforeDate(west, utc), should.BeTrue)
	})

	ftt.Run("daylight saving transitions", t, func(t *ftt.Test) {
		la, err := time.LoadLocation("America/Los_Angeles")
		assert.NoErr(t, err)

		// 2013-03-10 is 23 hours long in Los Angeles.
		early := FromTime(time.Date(2013, time.March, 10, 0, 30, 0, 0, la))
		late := FromTime(time.Date(2013, time.March, 10, 23, 30, 0, 0, la))
		next := FromTime(time.Date(2013, time.March, 11, 0, 0, 0, 0, la))

		assert.Loosely(t, EqualDate(early, late), should.BeTrue)
		assert.Loosely(t, BeforeDate(early, late), should.BeFalse)
		assert.Loosely(t, AfterDate(late, early), should.BeFalse)
		assert.Loosely(t, BeforeDate(late, next), should.BeTrue)
		assert.That(t, DateOf(early).EpochMillis(), should.Equal(DateOf(late).EpochMillis()))
		assert.That(t, DateOf(next).EpochMillis()-DateOf(late).EpochMillis(), should.Equal(int64(24*time.Hour/time.Millisecond)))
	})
}
