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
	"strings"
)

// Byte-loop reference implementations used to check the SWAR results.

func refValid(b []byte) error {
	for _, c := range b {
		if c >= 0x80 {
			return ErrNonASCII
		}
	}
	for _, c := range b {
		if c == 0 {
			return ErrInvalidNull
		}
	}
	return nil
}

func refIsLower(c byte) bool { return 'a' <= c && c <= 'z' }
func refIsUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func refIsAlpha(c byte) bool { return refIsLower(c) || refIsUpper(c) }
func refIsDigit(c byte) bool { return '0' <= c && c <= '9' }

func refAll(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func refTitle(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// predicateSet collects the character-class results for one value.
type predicateSet struct {
	alpha, alnum, numeric, lower, upper bool
}

func refPredicates(s string) predicateSet {
	return predicateSet{
		alpha:   refAll(s, refIsAlpha),
		alnum:   refAll(s, func(c byte) bool { return refIsAlpha(c) || refIsDigit(c) }),
		numeric: refAll(s, refIsDigit),
		lower:   refAll(s, refIsLower),
		upper:   refAll(s, refIsUpper),
	}
}

// tinyValue is the surface shared by Str4, Str8 and Str16 in these tests.
type tinyValue interface {
	Len() int
	String() string
	Bytes() []byte
	Valid() error
	IsASCIIAlphabetic() bool
	IsASCIIAlphanumeric() bool
	IsASCIINumeric() bool
	IsASCIILowercase() bool
	IsASCIIUppercase() bool
}

func predicatesOf(v tinyValue) predicateSet {
	return predicateSet{
		alpha:   v.IsASCIIAlphabetic(),
		alnum:   v.IsASCIIAlphanumeric(),
		numeric: v.IsASCIINumeric(),
		lower:   v.IsASCIILowercase(),
		upper:   v.IsASCIIUppercase(),
	}
}
