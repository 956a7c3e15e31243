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

package main

import (
	"context"
	"strconv"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/logging"

	"go.chromium.org/truthtime/datetime"
	"go.chromium.org/truthtime/datetime/registry"
)

func cmdCheck() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "check [-not] [-delta SECONDS] [-tz ZONE] PREDICATE ACTUAL EXPECTED [EXPECTED]",
		ShortDesc: "evaluates a date/time predicate",
		LongDesc: `Evaluates a date/time predicate.

PREDICATE is one of the names printed by "list", optionally prefixed with
"not", e.g. "notBeforeDate". The predicates "withinDate" and "withinTime"
take two EXPECTED timestamps, "from" and "to"; the rest take one.
"closeToTime" requires -delta.

Exits with 0 if the predicate holds, 1 if it does not and 2 if the arguments
are invalid.`,
		CommandRun: func() subcommands.CommandRun {
			c := &checkRun{}
			c.init(true)
			c.Flags.BoolVar(&c.negated, "not", false, "Negate the predicate.")
			c.Flags.StringVar(&c.delta, "delta", "", "Tolerance of closeToTime, in seconds.")
			return c
		},
	}
}

type checkRun struct {
	commandBase

	negated bool
	delta   string
}

func (c *checkRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	return c.done(ctx, c.run(ctx, args))
}

func (c *checkRun) run(ctx context.Context, args []string) error {
	if err := c.checkArgs(args, 3, 4); err != nil {
		return err
	}
	loc, err := c.location()
	if err != nil {
		return err
	}

	name := args[0]
	operands := make([]datetime.Instant, len(args)-1)
	for i, v := range args[1:] {
		if operands[i], err = parseInstant(v, loc); err != nil {
			return err
		}
		logging.Debugf(ctx, "operand %d: %s", i, operands[i])
	}
	delta, err := c.deltaArg()
	if err != nil {
		return err
	}

	err = predicates().Check(name, operands[0], registry.Args{
		Expected: operands[1:],
		Delta:    delta,
	}, c.negated)
	if err == nil {
		logging.Infof(ctx, "%s holds", name)
	}
	return err
}

// deltaArg returns the -delta value, or nil if it was not given.
func (c *checkRun) deltaArg() (any, error) {
	if c.delta == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(c.delta, 64)
	if err != nil {
		return nil, newCLIError("bad -delta %q, must be a number of seconds", c.delta)
	}
	return f, nil
}
