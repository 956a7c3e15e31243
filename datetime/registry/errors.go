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
	"go.chromium.org/luci/common/errors"
)

// AssertionError is returned by Check when a well-formed comparison does not
// hold in the requested direction.
type AssertionError struct {
	// Predicate is the name of the failed predicate.
	Predicate string
	// Negated is true if the predicate was expected NOT to hold.
	Negated bool
	// Message is the human readable failure, e.g.
	// "expected Thu May 30 2013 to be before Wed May 29 2013".
	Message string

	// Expected and Actual are the rendered operands, suitable for diffing.
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// AsAssertionError returns the *AssertionError in err's chain, if any.
func AsAssertionError(err error) (*AssertionError, bool) {
	var ae *AssertionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
