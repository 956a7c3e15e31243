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

// Package testhelper has a fake testing.TB for observing assertion failures.
package testhelper

import (
	"fmt"
	"strings"
	"testing"
)

// Recorder wraps a real *testing.T, capturing Log and Fail calls instead of
// forwarding them.
type Recorder struct {
	*testing.T

	logs      []string
	failed    bool
	failedNow bool
}

var _ testing.TB = (*Recorder)(nil)

// NewRecorder returns a Recorder around `t`.
func NewRecorder(t *testing.T) *Recorder {
	return &Recorder{T: t}
}

func (r *Recorder) Log(args ...any) {
	formatted := make([]string, len(args))
	for i, arg := range args {
		formatted[i] = fmt.Sprint(arg)
	}
	r.logs = append(r.logs, strings.Join(formatted, " "))
}

func (r *Recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *Recorder) Fail() {
	r.failed = true
}

// FailNow records the failure. Unlike testing.T it returns normally.
func (r *Recorder) FailNow() {
	r.failed = true
	r.failedNow = true
}

// ExpectPass fails the real test if anything failed the Recorder.
func (r *Recorder) ExpectPass() {
	r.T.Helper()

	if r.failed {
		r.T.Errorf("Recorder: unexpected failure\n%s", r.dump())
	}
}

// ExpectFatal fails the real test unless FailNow was called and every one of
// `msgs` appears in the logged output.
func (r *Recorder) ExpectFatal(msgs ...string) {
	r.T.Helper()

	if !r.failedNow {
		r.T.Errorf("Recorder: FailNow was not called\n%s", r.dump())
	}
	if missing := r.missing(msgs); len(missing) > 0 {
		r.T.Errorf("Recorder: missing messages:\n  * %s\n%s", strings.Join(missing, "\n  * "), r.dump())
	}
}

// missing returns the elements of `msgs` found in no single Log call.
func (r *Recorder) missing(msgs []string) []string {
	var ret []string
	for _, msg := range msgs {
		found := false
		for _, logged := range r.logs {
			if strings.Contains(logged, msg) {
				found = true
				break
			}
		}
		if !found {
			ret = append(ret, msg)
		}
	}
	return ret
}

// dump renders the recorded Log calls, one numbered block each.
func (r *Recorder) dump() string {
	if len(r.logs) == 0 {
		return "(nothing was logged)"
	}
	var sb strings.Builder
	sb.WriteString("logged:")
	for i, logged := range r.logs {
		fmt.Fprintf(&sb, "\n[%d] %s", i, strings.ReplaceAll(logged, "\n", "\n    "))
	}
	return sb.String()
}
