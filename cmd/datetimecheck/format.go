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
	"fmt"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"go.chromium.org/truthtime/datetime"
)

func cmdFormat() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "format [-tz ZONE] VALUE...",
		ShortDesc: "prints timestamps the way failure messages render them",
		LongDesc: `Prints the date and the time rendering of each timestamp, separated by a
tab, one timestamp per line.`,
		CommandRun: func() subcommands.CommandRun {
			c := &formatRun{}
			c.init(true)
			return c
		},
	}
}

type formatRun struct {
	commandBase
}

func (c *formatRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	return c.done(ctx, c.run(ctx, args))
}

func (c *formatRun) run(_ context.Context, args []string) error {
	if err := c.checkArgs(args, 1, -1); err != nil {
		return err
	}
	loc, err := c.location()
	if err != nil {
		return err
	}
	for _, v := range args {
		i, err := parseInstant(v, loc)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.out, "%s\t%s\n", datetime.FormatDate(i), datetime.FormatTime(i)); err != nil {
			return err
		}
	}
	return nil
}
