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
	"io"
	"os"
	"sync"
	"time"

	"github.com/maruel/subcommands"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"go.chromium.org/truthtime/datetime"
	"go.chromium.org/truthtime/datetime/registry"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

var predicates = sync.OnceValue(registry.New)

// newCLIError returns an error about bad command line arguments.
//
// It wraps datetime.ErrInvalidArgument, so it is reported like any other
// invalid argument.
func newCLIError(msg string, args ...any) error {
	return errors.Fmt("%w: %s", datetime.ErrInvalidArgument, fmt.Sprintf(msg, args...))
}

// commandBase is embedded by all subcommands.
//
// It registers the -log-level flag and, if asked to, -tz.
type commandBase struct {
	subcommands.CommandRunBase

	out       io.Writer      // where results are printed
	logConfig logging.Config // for -log-level, used by ModifyContext
	tz        string         // for -tz, used by location
}

func (c *commandBase) init(withTZ bool) {
	c.out = os.Stdout
	c.logConfig.Level = logging.Warning
	c.logConfig.AddFlags(&c.Flags)
	if withTZ {
		c.Flags.StringVar(&c.tz, "tz", "Local",
			"IANA time zone of timestamps given without an offset, e.g. `America/Los_Angeles`.")
	}
}

// ModifyContext implements cli.ContextModificator.
func (c *commandBase) ModifyContext(ctx context.Context) context.Context {
	return c.logConfig.Set(ctx)
}

func (c *commandBase) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.tz)
	if err != nil {
		return nil, newCLIError("bad -tz %q: %s", c.tz, err)
	}
	return loc, nil
}

// checkArgs checks the number of positional arguments. A negative maxPosCount
// means there is no upper bound.
func (c *commandBase) checkArgs(args []string, minPosCount, maxPosCount int) error {
	if len(args) >= minPosCount && (maxPosCount < 0 || len(args) <= maxPosCount) {
		return nil
	}
	switch {
	case maxPosCount == 0:
		return newCLIError("unexpected arguments %v", args)
	case minPosCount == maxPosCount:
		return newCLIError("expecting %d positional arguments, got %d instead", minPosCount, len(args))
	case maxPosCount > 0:
		return newCLIError("expecting from %d to %d positional arguments, got %d instead",
			minPosCount, maxPosCount, len(args))
	default:
		return newCLIError("expecting at least %d positional arguments, got %d instead",
			minPosCount, len(args))
	}
}

// done logs `err` and returns the exit code for it.
func (c *commandBase) done(ctx context.Context, err error) int {
	if err == nil {
		return exitOK
	}
	if ae, ok := registry.AsAssertionError(err); ok {
		logging.Errorf(ctx, "%s", ae.Message)
		logging.Debugf(ctx, "predicate: %s (negated: %v)", ae.Predicate, ae.Negated)
		logging.Debugf(ctx, "expected: %s", ae.Expected)
		logging.Debugf(ctx, "actual: %s", ae.Actual)
		return exitFailed
	}
	logging.Errorf(ctx, "%s", err)
	return exitInvalid
}
