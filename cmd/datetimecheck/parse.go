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
	"strings"
	"time"

	"go.chromium.org/luci/common/errors"

	"go.chromium.org/truthtime/datetime"
)

// localLayouts are accepted for timestamps without a UTC offset.
var localLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseInstant parses an RFC 3339 timestamp, which keeps its own offset, or
// one of localLayouts, which is interpreted in `loc`.
func parseInstant(v string, loc *time.Location) (datetime.Instant, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return datetime.FromTime(t), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return datetime.FromTime(t), nil
		}
	}
	return nil, errors.Fmt("%w: %q is not a timestamp, want RFC 3339 or one of %s",
		datetime.ErrInvalidArgument, v, strings.Join(localLayouts, ", "))
}
