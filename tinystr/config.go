// Copyright 2025 go-tinystr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tinystr

import (
	"os"
	"strconv"
	"sync/atomic"
)

// debugAssertions enables invariant audits in the unchecked constructors.
// Seeded by init from TINYSTR_DEBUG.
var debugAssertions atomic.Bool

func init() {
	debugAssertions.Store(DebugEnv())
}

// DebugEnv reports whether the TINYSTR_DEBUG environment variable asks for
// debug assertions. When it does, the *FromRawUnchecked constructors audit
// their input and panic if it does not describe a valid tiny string.
func DebugEnv() bool {
	val := os.Getenv("TINYSTR_DEBUG")
	if val == "" {
		return false
	}
	// Values strconv cannot parse, such as "yes", still switch it on.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// DebugAssertions reports whether the unchecked constructors audit their input.
func DebugAssertions() bool {
	return debugAssertions.Load()
}

// SetDebugAssertions turns the audits in the unchecked constructors on or
// off and returns the previous setting. It overrides TINYSTR_DEBUG.
func SetDebugAssertions(on bool) (previous bool) {
	return debugAssertions.Swap(on)
}
