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

// Package registry holds the table of named date/time predicates.
//
// Each Predicate pairs an evaluator from the datetime package with the
// messages to report when it fails in the positive ("expected A to be before
// B") or negated ("expected A not to be before B") direction. The table is
// built once by New and is read-only afterwards; the "should" and "assert"
// packages, as well as the datetimecheck tool, are all driven by it.
package registry

import (
	"reflect"
	"slices"
	"strings"

	"go.chromium.org/luci/common/errors"

	"go.chromium.org/truthtime/datetime"
)

// Args are the operands of a predicate besides the actual value.
type Args struct {
	// Expected holds Predicate.Operands instants: the expected value, or the
	// (from, to) bounds of a range.
	Expected []datetime.Instant

	// Delta is the tolerance in seconds, for predicates with TakesDelta. It is
	// deliberately untyped, see datetime.DeltaSeconds.
	Delta any
}

// Predicate is a single named comparison.
type Predicate struct {
	// Name is the public name, e.g. "beforeDate".
	Name string

	// Operands is the number of expected instants (1, or 2 for ranges).
	Operands int

	// TakesDelta is true if the predicate requires Args.Delta.
	TakesDelta bool

	// CalendarDates is true if only the calendar dates of the operands are
	// compared.
	CalendarDates bool

	// Render formats operands for messages (datetime.FormatDate or
	// datetime.FormatTime).
	Render func(datetime.Instant) string

	// Evaluate computes the predicate. It may assume that the arguments were
	// validated.
	Evaluate func(actual datetime.Instant, args Args) (bool, error)

	// Positive and Negative build the failure message for `to.X` and
	// `not.to.X` respectively.
	Positive func(actual datetime.Instant, args Args) string
	Negative func(actual datetime.Instant, args Args) string
}

// Check evaluates the predicate against `actual`.
//
// Returns nil if the outcome matches the polarity (true when !negated, false
// when negated), an *AssertionError if it does not, and an error wrapping
// datetime.ErrInvalidArgument if the arguments are malformed.
func (p *Predicate) Check(actual datetime.Instant, args Args, negated bool) error {
	if err := p.validate(actual, args); err != nil {
		return err
	}
	holds, err := p.Evaluate(actual, args)
	if err != nil {
		return err
	}
	if holds != negated {
		return nil
	}

	msg := p.Positive
	if negated {
		msg = p.Negative
	}
	return &AssertionError{
		Predicate: p.Name,
		Negated:   negated,
		Message:   msg(actual, args),
		Expected:  p.renderExpected(args),
		Actual:    p.Render(actual),
	}
}

func (p *Predicate) validate(actual datetime.Instant, args Args) error {
	if isNil(actual) {
		return errors.Fmt("%w: %s: actual value is nil", datetime.ErrInvalidArgument, p.Name)
	}
	if len(args.Expected) != p.Operands {
		return errors.Fmt("%w: %s: expected %d operand(s), got %d",
			datetime.ErrInvalidArgument, p.Name, p.Operands, len(args.Expected))
	}
	for i, e := range args.Expected {
		if isNil(e) {
			return errors.Fmt("%w: %s: operand %d is nil", datetime.ErrInvalidArgument, p.Name, i)
		}
	}
	if !p.TakesDelta && args.Delta != nil {
		return errors.Fmt("%w: %s does not take a delta", datetime.ErrInvalidArgument, p.Name)
	}
	return nil
}

// isNil also catches a nil pointer (or map, func...) stored in a non-nil
// Instant, whose methods would panic.
func isNil(i datetime.Instant) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (p *Predicate) renderExpected(args Args) string {
	if len(args.Expected) == 1 {
		return p.Render(args.Expected[0])
	}
	parts := make([]string, len(args.Expected))
	for i, e := range args.Expected {
		parts[i] = p.Render(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Registry maps predicate names to Predicates.
type Registry struct {
	byName map[string]*Predicate
	names  []string
}

// New returns a Registry with all the date/time predicates.
func New() *Registry {
	r := &Registry{byName: make(map[string]*Predicate, len(predicates))}
	for _, mk := range predicates {
		r.register(mk())
	}
	slices.Sort(r.names)
	return r
}

func (r *Registry) register(p *Predicate) {
	switch {
	case p.Name == "" || strings.HasPrefix(p.Name, negationPrefix):
		panic(errors.Fmt("registry: bad predicate name %q", p.Name))
	case r.byName[p.Name] != nil:
		panic(errors.Fmt("registry: predicate %q registered twice", p.Name))
	case p.Evaluate == nil || p.Positive == nil || p.Negative == nil || p.Render == nil:
		panic(errors.Fmt("registry: predicate %q is incomplete", p.Name))
	}
	r.byName[p.Name] = p
	r.names = append(r.names, p.Name)
}

// Names returns the sorted names of all predicates.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Lookup returns the predicate called `name`.
func (r *Registry) Lookup(name string) (*Predicate, bool) {
	p, ok := r.byName[name]
	return p, ok
}

const negationPrefix = "not"

// Resolve is like Lookup, but also understands the negated names of the flat
// interface, e.g. "notBeforeDate".
func (r *Registry) Resolve(name string) (p *Predicate, negated bool, ok bool) {
	if p, ok = r.byName[name]; ok {
		return p, false, true
	}
	rest, found := strings.CutPrefix(name, negationPrefix)
	if !found || rest == "" {
		return nil, false, false
	}
	p, ok = r.byName[strings.ToLower(rest[:1])+rest[1:]]
	return p, ok, ok
}

// Check resolves `name` (see Resolve) and runs Predicate.Check.
//
// The negation in the name and `negated` compose, so
// Check("notEqualDate", a, args, true) is the same as
// Check("equalDate", a, args, false).
//
// Unknown names are reported as datetime.ErrInvalidArgument.
func (r *Registry) Check(name string, actual datetime.Instant, args Args, negated bool) error {
	p, nameNegated, ok := r.Resolve(name)
	if !ok {
		return errors.Fmt("%w: unknown predicate %q", datetime.ErrInvalidArgument, name)
	}
	return p.Check(actual, args, negated != nameNegated)
}
