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

package radix

import (
	"slices"

	"github.com/ajroetker/go-tinystr/tinystr"
)

// IsSorted4 reports whether data is in bytewise order.
func IsSorted4(data []tinystr.Str4) bool {
	return slices.IsSortedFunc(data, tinystr.Str4.Compare)
}

// IsSorted8 reports whether data is in bytewise order.
func IsSorted8(data []tinystr.Str8) bool {
	return slices.IsSortedFunc(data, tinystr.Str8.Compare)
}

// IsSorted16 reports whether data is in bytewise order.
func IsSorted16(data []tinystr.Str16) bool {
	return slices.IsSortedFunc(data, tinystr.Str16.Compare)
}

// Search4 finds key in sorted data. It returns the position where key is or
// would be inserted, and whether it was found.
func Search4(sorted []tinystr.Str4, key tinystr.Str4) (int, bool) {
	return slices.BinarySearchFunc(sorted, key, tinystr.Str4.Compare)
}

// Search8 is Search4 for Str8.
func Search8(sorted []tinystr.Str8, key tinystr.Str8) (int, bool) {
	return slices.BinarySearchFunc(sorted, key, tinystr.Str8.Compare)
}

// Search16 is Search4 for Str16.
func Search16(sorted []tinystr.Str16, key tinystr.Str16) (int, bool) {
	return slices.BinarySearchFunc(sorted, key, tinystr.Str16.Compare)
}

// Dedup4 removes adjacent duplicates from sorted data in place and returns
// the shortened slice.
func Dedup4(sorted []tinystr.Str4) []tinystr.Str4 { return slices.Compact(sorted) }

// Dedup8 is Dedup4 for Str8.
func Dedup8(sorted []tinystr.Str8) []tinystr.Str8 { return slices.Compact(sorted) }

// Dedup16 is Dedup4 for Str16.
func Dedup16(sorted []tinystr.Str16) []tinystr.Str16 { return slices.Compact(sorted) }
