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

// Package tinystr provides small, fixed-capacity ASCII strings stored inline
// in machine words.
//
// Short identifiers such as language tags, country codes and currency codes
// rarely exceed a few bytes. Str4, Str8 and Str16 store up to 4, 8 or 16
// ASCII bytes in a single 32-, 64- or 128-bit word, so equality and ordering
// are integer comparisons and case conversion and character-class tests run
// on all bytes at once (see package swar).
//
// # Example Usage
//
//	s, err := tinystr.Parse4String("tEsT")
//	if err != nil {
//	    return err
//	}
//	s.ToASCIIUppercase()    // "TEST"
//	s.ToASCIITitlecase()    // "Test"
//	s.IsASCIIAlphanumeric() // true
//
//	city := tinystr.MustParse8("New York")
//	city.IsASCIIAlphanumeric() // false, because of the space
//
// # Validation
//
// Parsers accept 1 to N bytes in the range 0x01 to 0x7F and report failures
// as an Error:
//
//   - ErrInvalidSize: empty input, or longer than the capacity
//   - ErrNonASCII: a byte at or above 0x80 (reported first)
//   - ErrInvalidNull: a 0x00 byte
//
// # Raw Words
//
// Raw returns the packed word, with the first byte in the most significant
// lane. Raw words order like their content and may be persisted and restored
// with the *FromRaw constructors, which validate, or *FromRawUnchecked, which
// trust the caller. Setting TINYSTR_DEBUG=1 makes the unchecked constructors
// validate as well and panic on bad input.
//
// # Auto
//
// Auto picks the narrowest inline form for content of up to 16 bytes and
// falls back to a heap string beyond that. It offers content access,
// comparison and case-insensitive matching, but no SWAR operations.
package tinystr
