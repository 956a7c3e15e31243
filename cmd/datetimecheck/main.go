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

// Command datetimecheck evaluates the date/time predicates of
// go.chromium.org/truthtime/datetime against timestamps given on the command
// line.
//
//	datetimecheck check -tz America/Los_Angeles beforeDate 2013-05-30T23:00 2013-05-31
//	datetimecheck check -delta 5 closeToTime 2013-05-30T16:05:16Z 2013-05-30T16:05:19Z
//	datetimecheck list
//	datetimecheck format 2013-05-30T16:05:16.323-07:00
//
// "check" exits with 0 if the predicate holds, 1 if it does not and 2 if the
// arguments are invalid.
package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/cli"
	"go.chromium.org/luci/common/flag/fixflagpos"
	"go.chromium.org/luci/common/logging/gologger"
)

func application() *cli.Application {
	return &cli.Application{
		Name:  "datetimecheck",
		Title: "Evaluates date/time comparisons.",
		Context: func(ctx context.Context) context.Context {
			return gologger.StdConfig.Use(ctx)
		},
		Commands: []*subcommands.Command{
			cmdCheck(),
			cmdList(),
			cmdFormat(),

			{}, // a separator
			subcommands.CmdHelp,
		},
	}
}

func main() {
	os.Exit(subcommands.Run(application(), fixflagpos.FixSubcommands(os.Args[1:])))
}
