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

// Package should contains date/time comparisons for the truth assertion
// library.
//
// Every comparison has a negated twin:
//
//	assert.That(t, got, should.BeforeDate(deadline))
//	check.That(t, got, should.NotEqualTime(start))
//	assert.That(t, got, should.CloseToTime(want, 1.5))
//
// Operands may be time.Time (compared in their own location),
// *timestamppb.Timestamp (compared in UTC) or any datetime.Instant. Failures
// carry the message rendered by the datetime registry, e.g.
//
//	expected Thu May 30 2013 not to be before Fri May 31 2013
package should

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"google.golang.org/protobuf/types/known/timestamppb"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/testing/truth/comparison"
	"go.chromium.org/luci/common/testing/truth/failure"

	"go.chromium.org/truthtime/datetime"
	"go.chromium.org/truthtime/datetime/registry"
)

// Value constrains the operand type of the comparisons.
//
// time.Time, *timestamppb.Timestamp and implementations of datetime.Instant
// are supported. Any other type fails every comparison as an invalid
// argument.
type Value any

var predicates = sync.OnceValue(registry.New)

func toInstant[T Value](v T) (datetime.Instant, error) {
	switch x := any(v).(type) {
	case time.Time:
		return datetime.FromTime(x), nil
	case *timestamppb.Timestamp:
		return datetime.FromTimestamp(x, nil)
	case datetime.Instant:
		return x, nil
	case nil:
		return nil, errors.Fmt("%w: operand is nil", datetime.ErrInvalidArgument)
	}
	return nil, errors.Fmt("%w: unsupported operand type %T, want time.Time, *timestamppb.Timestamp or datetime.Instant",
		datetime.ErrInvalidArgument, v)
}

// cmpNameOf returns e.g. "should.NotBeforeDate" for ("beforeDate", true).
func cmpNameOf(name string, negated bool) string {
	exported := strings.ToUpper(name[:1]) + name[1:]
	if negated {
		exported = "Not" + exported
	}
	return "should." + exported
}

func invalid[T Value](cmpName string, err error) comparison.Func[T] {
	return func(T) *failure.Summary {
		return invalidSummary(cmpName, err)
	}
}

func invalidSummary(cmpName string, err error) *failure.Summary {
	return comparison.NewSummaryBuilder(cmpName).
		Because("%s", err).
		Summary
}

// compare builds the comparison.Func for the registered predicate `name`.
//
// Malformed expected operands are reported when the returned Func is called,
// the same way should.AlmostEqual reports a bad epsilon.
func compare[T Value](name string, negated bool, delta any, expected ...T) comparison.Func[T] {
	cmpName := cmpNameOf(name, negated)
	p, ok := predicates().Lookup(name)
	if !ok {
		panic(fmt.Errorf("%s: predicate %q is not registered", cmpName, name))
	}

	args := registry.Args{Expected: make([]datetime.Instant, len(expected)), Delta: delta}
	for i, e := range expected {
		inst, err := toInstant(e)
		if err != nil {
			return invalid[T](cmpName, err)
		}
		args.Expected[i] = inst
	}
	if p.TakesDelta {
		if _, err := datetime.DeltaSeconds(delta); err != nil {
			return invalid[T](cmpName, err)
		}
	}

	return func(actual T) *failure.Summary {
		a, err := toInstant(actual)
		if err != nil {
			return invalidSummary(cmpName, err)
		}
		err = p.Check(a, args, negated)
		if err == nil {
			return nil
		}
		ae, ok := registry.AsAssertionError(err)
		if !ok {
			return invalidSummary(cmpName, err)
		}

		ret := comparison.NewSummaryBuilder(cmpName, actual).
			Because("%s", ae.Message).
			AddFindingf("Actual", "%s", ae.Actual).
			AddFindingf("Expected", "%s", ae.Expected)
		if len(args.Expected) == 1 && !p.CalendarDates && a.EpochMillis() != args.Expected[0].EpochMillis() {
			ret.AddFindingf("Offset", "%s", offset(a, args.Expected[0]))
		}
		return ret.Summary
	}
}

// offset describes how far `actual` is from `expected`, e.g. "3 hours earlier".
func offset(actual, expected datetime.Instant) string {
	return humanize.RelTime(
		time.UnixMilli(actual.EpochMillis()), time.UnixMilli(expected.EpochMillis()),
		"earlier", "later")
}
