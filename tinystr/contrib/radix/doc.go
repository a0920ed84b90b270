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

// Package radix sorts and searches slices of tiny strings by their packed
// words.
//
// A Str4, Str8 or Str16 orders exactly like its raw word, so an LSD radix
// sort over the word's lanes sorts the strings bytewise in O(n * lanes)
// without comparing a single string.
//
// # Algorithm
//
// Each pass is a stable counting sort on one lane, from the least
// significant lane to the most significant:
//  1. Build a 256-bucket histogram of the lane byte
//  2. Turn the histogram into bucket offsets with a prefix sum
//  3. Scatter elements into a scratch slice at their bucket offsets
//
// A pass whose lane holds the same byte in every element is skipped. Short
// identifiers leave their tail lanes zero, so most of those passes cost a
// histogram only.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-tinystr/tinystr/contrib/radix"
//
//	tags := []tinystr.Str8{tinystr.MustParse8("fr"), tinystr.MustParse8("de-CH"), tinystr.MustParse8("de")}
//	radix.Sort8(tags)                                        // de, de-CH, fr
//	i, ok := radix.Search8(tags, tinystr.MustParse8("de-CH")) // 1, true
package radix
