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
	"strings"
	"text/tabwriter"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"

	"go.chromium.org/truthtime/datetime/registry"
)

func cmdList() *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "list",
		ShortDesc: "prints the names of the predicates and their arguments",
		CommandRun: func() subcommands.CommandRun {
			c := &listRun{}
			c.init(false)
			return c
		},
	}
}

type listRun struct {
	commandBase
}

func (c *listRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	ctx := cli.GetContext(a, c, env)
	return c.done(ctx, c.run(ctx, args))
}

func (c *listRun) run(_ context.Context, args []string) error {
	if err := c.checkArgs(args, 0, 0); err != nil {
		return err
	}
	reg := predicates()
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, name := range reg.Names() {
		p, _ := reg.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, signature(p))
	}
	return tw.Flush()
}

// signature describes the arguments of `p`, e.g. "(actual, from, to)".
func signature(p *registry.Predicate) string {
	params := []string{"actual"}
	switch p.Operands {
	case 1:
		params = append(params, "expected")
	case 2:
		params = append(params, "from", "to")
	default:
		for i := range p.Operands {
			params = append(params, fmt.Sprintf("expected%d", i))
		}
	}
	if p.TakesDelta {
		params = append(params, "deltaSeconds")
	}
	return "(" + strings.Join(params, ", ") + ")"
}
