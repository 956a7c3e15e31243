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

package registry

import (
	"fmt"
	"strconv"

	"go.chromium.org/truthtime/datetime"
)

// Predicate names.
const (
	EqualTime         = "equalTime"
	CloseToTime       = "closeToTime"
	EqualDate         = "equalDate"
	BeforeDate        = "beforeDate"
	BeforeOrEqualDate = "beforeOrEqualDate"
	AfterDate         = "afterDate"
	AfterOrEqualDate  = "afterOrEqualDate"
	WithinDate        = "withinDate"
	BeforeTime        = "beforeTime"
	BeforeOrEqualTime = "beforeOrEqualTime"
	AfterTime         = "afterTime"
	AfterOrEqualTime  = "afterOrEqualTime"
	WithinTime        = "withinTime"
)

var predicates = []func() *Predicate{
	func() *Predicate {
		return binary(EqualTime, datetime.FormatTime, datetime.EqualTime, "to equal", "to not equal")
	},
	closeToTime,
	func() *Predicate {
		return dates(binary(EqualDate, datetime.FormatDate, datetime.EqualDate, "to equal", "to not equal"))
	},

	func() *Predicate {
		return dates(ordering(BeforeDate, datetime.FormatDate, datetime.BeforeDate, "before"))
	},
	func() *Predicate {
		return dates(ordering(BeforeOrEqualDate, datetime.FormatDate, datetime.BeforeOrEqualDate, "before or equal to"))
	},
	func() *Predicate {
		return dates(ordering(AfterDate, datetime.FormatDate, datetime.AfterDate, "after"))
	},
	func() *Predicate {
		return dates(ordering(AfterOrEqualDate, datetime.FormatDate, datetime.AfterOrEqualDate, "after or equal to"))
	},
	func() *Predicate {
		return dates(within(WithinDate, datetime.FormatDate, datetime.WithinDate))
	},

	func() *Predicate {
		return ordering(BeforeTime, datetime.FormatTime, datetime.BeforeTime, "before")
	},
	func() *Predicate {
		return ordering(BeforeOrEqualTime, datetime.FormatTime, datetime.BeforeOrEqualTime, "before or equal to")
	},
	func() *Predicate {
		return ordering(AfterTime, datetime.FormatTime, datetime.AfterTime, "after")
	},
	func() *Predicate {
		return ordering(AfterOrEqualTime, datetime.FormatTime, datetime.AfterOrEqualTime, "after or equal to")
	},
	func() *Predicate {
		return within(WithinTime, datetime.FormatTime, datetime.WithinTime)
	},
}

// dates marks `p` as comparing calendar dates only.
func dates(p *Predicate) *Predicate {
	p.CalendarDates = true
	return p
}

// binary is a single-operand predicate with the messages
// "expected A <pos> E" and "expected A <neg> E".
func binary(name string, render func(datetime.Instant) string, cmp func(a, b datetime.Instant) bool, pos, neg string) *Predicate {
	message := func(verb string) func(datetime.Instant, Args) string {
		return func(actual datetime.Instant, args Args) string {
			return fmt.Sprintf("expected %s %s %s", render(actual), verb, render(args.Expected[0]))
		}
	}
	return &Predicate{
		Name:     name,
		Operands: 1,
		Render:   render,
		Evaluate: func(actual datetime.Instant, args Args) (bool, error) {
			return cmp(actual, args.Expected[0]), nil
		},
		Positive: message(pos),
		Negative: message(neg),
	}
}

func ordering(name string, render func(datetime.Instant) string, cmp func(a, b datetime.Instant) bool, relation string) *Predicate {
	return binary(name, render, cmp, "to be "+relation, "not to be "+relation)
}

func within(name string, render func(datetime.Instant) string, cmp func(a, from, to datetime.Instant) bool) *Predicate {
	message := func(verb string) func(datetime.Instant, Args) string {
		return func(actual datetime.Instant, args Args) string {
			return fmt.Sprintf("expected %s %s %s and %s",
				render(actual), verb, render(args.Expected[0]), render(args.Expected[1]))
		}
	}
	return &Predicate{
		Name:     name,
		Operands: 2,
		Render:   render,
		Evaluate: func(actual datetime.Instant, args Args) (bool, error) {
			return cmp(actual, args.Expected[0], args.Expected[1]), nil
		},
		Positive: message("to be within"),
		Negative: message("not to be within"),
	}
}

func closeToTime() *Predicate {
	message := func(verb string) func(datetime.Instant, Args) string {
		return func(actual datetime.Instant, args Args) string {
			// Only reached after Evaluate accepted the delta.
			delta, _ := datetime.DeltaSeconds(args.Delta)
			return fmt.Sprintf("expected %s %s %ss of %s",
				datetime.FormatTime(actual), verb, FormatSeconds(delta), datetime.FormatTime(args.Expected[0]))
		}
	}
	return &Predicate{
		Name:       CloseToTime,
		Operands:   1,
		TakesDelta: true,
		Render:     datetime.FormatTime,
		Evaluate: func(actual datetime.Instant, args Args) (bool, error) {
			delta, err := datetime.DeltaSeconds(args.Delta)
			if err != nil {
				return false, err
			}
			return datetime.CloseToTime(actual, args.Expected[0], delta)
		},
		Positive: message("to be within"),
		Negative: message("to not be within"),
	}
}

// FormatSeconds renders a tolerance in the shortest form, e.g. "5" or "0.5".
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
