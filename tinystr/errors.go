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

// Error classifies why a byte sequence cannot be stored as a tiny string.
//
// Every parser in this package returns one of the values below. They compare
// with == as well as errors.Is.
type Error uint8

const (
	// ErrInvalidSize is returned for empty input or input longer than the
	// target capacity.
	ErrInvalidSize Error = iota + 1

	// ErrInvalidNull is returned when the input contains a 0x00 byte.
	ErrInvalidNull

	// ErrNonASCII is returned when any input byte is 0x80 or above.
	ErrNonASCII

	// ErrInfallible is never returned. It exists for conversions whose
	// signature carries an error but which cannot fail.
	ErrInfallible
)

// Error implements the error interface.
func (e Error) Error() string {
	switch e {
	case ErrInvalidSize:
		return "tinystr: invalid size"
	case ErrInvalidNull:
		return "tinystr: contains null byte"
	case ErrNonASCII:
		return "tinystr: contains non-ASCII byte"
	case ErrInfallible:
		return "tinystr: infallible"
	default:
		return "tinystr: unknown error"
	}
}
