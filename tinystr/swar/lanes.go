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

package swar

import (
	"math/bits"
	"unsafe"
)

// Word is a constraint for the unsigned integer types that can carry packed
// ASCII lanes.
type Word interface {
	~uint32 | ~uint64
}

// Lanes returns the number of byte lanes in W.
func Lanes[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// Splat returns a word with b in every lane.
func Splat[W Word](b byte) W {
	return ^W(0) / 0xFF * W(b)
}

// HighBits returns a word with 0x80 in every lane.
func HighBits[W Word]() W {
	return Splat[W](0x80)
}

// RangeMask marks the lanes of w holding a byte in [lo, hi].
//
// Every lane of w must be below 0x80 and 1 <= lo <= hi <= 0x7F. Under those
// bounds neither addition can carry out of a lane.
func RangeMask[W Word](w W, lo, hi byte) W {
	geLo := w + Splat[W](0x80-lo)
	gtHi := w + Splat[W](0x7F-hi)
	return geLo &^ gtHi & HighBits[W]()
}

// NonZeroMask marks the lanes of w that are not zero.
func NonZeroMask[W Word](w W) W {
	return (w + Splat[W](0x7F)) & HighBits[W]()
}

// LowerMask marks the lanes of w holding 'a' through 'z'.
func LowerMask[W Word](w W) W {
	return RangeMask(w, 'a', 'z')
}

// UpperMask marks the lanes of w holding 'A' through 'Z'.
func UpperMask[W Word](w W) W {
	return RangeMask(w, 'A', 'Z')
}

// AlphaMask marks the lanes of w holding an ASCII letter of either case.
//
// Setting 0x20 maps 'A'..'Z' onto 'a'..'z' and moves no other byte into that
// range, so a single range test covers both cases.
func AlphaMask[W Word](w W) W {
	return RangeMask(w|Splat[W](0x20), 'a', 'z')
}

// DigitMask marks the lanes of w holding '0' through '9'.
func DigitMask[W Word](w W) W {
	return RangeMask(w, '0', '9')
}

// Spread widens every 0x80 lane of a mask to 0xFF.
func Spread[W Word](m W) W {
	return (m >> 7) * 0xFF
}

// LeadingLanesMask returns 0x80 in the n most significant lanes of W.
// n may range from 0 to Lanes[W]().
func LeadingLanesMask[W Word](n int) W {
	shift := uint(8 * (Lanes[W]() - n))
	return HighBits[W]() << shift
}

// FirstLaneMask returns 0x80 in the most significant lane of W.
func FirstLaneMask[W Word]() W {
	return LeadingLanesMask[W](1)
}

// ContentLen returns the number of leading non-zero lanes of w, assuming the
// zero lanes form a contiguous tail. A zero word has length 0.
func ContentLen[W Word](w W) int {
	n := Lanes[W]()
	nz := uint64(NonZeroMask(w))
	// The sentinel bit caps the count at n lanes for a zero 32-bit mask; for
	// 64-bit words the shift overflows to zero and TrailingZeros64 returns 64.
	tz := bits.TrailingZeros64(nz | uint64(1)<<uint(8*n))
	return n - tz/8
}

// ToUpper clears 0x20 in every lowercase letter lane.
func ToUpper[W Word](w W) W {
	return w ^ LowerMask(w)>>2
}

// ToLower sets 0x20 in every uppercase letter lane.
func ToLower[W Word](w W) W {
	return w ^ UpperMask(w)>>2
}

// ToTitle lowercases w, then uppercases the first lane if it is a letter.
func ToTitle[W Word](w W) W {
	l := ToLower(w)
	return l ^ (LowerMask(l)&FirstLaneMask[W]())>>2
}

// AllOf reports whether every non-zero lane of w is marked in mask and no
// zero lane is.
func AllOf[W Word](w, mask W) bool {
	return mask == NonZeroMask(w)
}
