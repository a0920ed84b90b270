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

// sortSmallThreshold: below this size a comparison sort beats the fixed
// cost of the radix histograms.
const sortSmallThreshold = 48

// radixPass performs one pass of LSD radix sort, bucketing src into dst by
// digit. It reports false, leaving dst untouched, when every element shares
// the same digit.
func radixPass[T any](src, dst []T, digit func(T) uint8) bool {
	// Count histogram for each bucket (256 buckets for 8 bits)
	var count [256]int
	for _, v := range src {
		count[digit(v)]++
	}
	if count[digit(src[0])] == len(src) {
		return false
	}

	// Compute prefix sum to get bucket offsets
	offset := 0
	for b := range count {
		c := count[b]
		count[b] = offset
		offset += c
	}

	// Scatter elements to destination
	for _, v := range src {
		d := digit(v)
		dst[count[d]] = v
		count[d]++
	}
	return true
}

// sortLanes runs one radixPass per lane, least significant lane first.
// lane(v, i) returns the byte in lane i of v, where lane 0 is the most
// significant.
func sortLanes[T any](data []T, lanes int, lane func(T, int) uint8, compare func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}
	if n <= sortSmallThreshold {
		slices.SortStableFunc(data, compare)
		return
	}

	scratch := make([]T, n)
	src, dst := data, scratch
	for i := lanes - 1; i >= 0; i-- {
		if radixPass(src, dst, func(v T) uint8 { return lane(v, i) }) {
			src, dst = dst, src
		}
	}
	if &src[0] != &data[0] {
		copy(data, src)
	}
}

func lane4(s tinystr.Str4, i int) uint8 {
	return uint8(s.Raw() >> uint(8*(3-i)))
}

func lane8(s tinystr.Str8, i int) uint8 {
	return uint8(s.Raw() >> uint(8*(7-i)))
}

func lane16(s tinystr.Str16, i int) uint8 {
	hi, lo := s.Words()
	if i < 8 {
		return uint8(hi >> uint(8*(7-i)))
	}
	return uint8(lo >> uint(8*(15-i)))
}

// Sort4 sorts data in place in bytewise order. The sort is stable.
func Sort4(data []tinystr.Str4) {
	sortLanes(data, 4, lane4, tinystr.Str4.Compare)
}

// Sort8 sorts data in place in bytewise order. The sort is stable.
func Sort8(data []tinystr.Str8) {
	sortLanes(data, 8, lane8, tinystr.Str8.Compare)
}

// Sort16 sorts data in place in bytewise order. The sort is stable.
func Sort16(data []tinystr.Str16) {
	sortLanes(data, 16, lane16, tinystr.Str16.Compare)
}
