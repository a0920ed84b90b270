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
	"testing"
)

// laneBytes returns the lanes of w from most to least significant.
func laneBytes[W Word](w W) []byte {
	n := Lanes[W]()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(w >> uint(8*(n-1-i)))
	}
	return out
}

// refMask is the byte-loop reference for the lane classifiers.
func refMask[W Word](w W, pred func(byte) bool) W {
	var m W
	for i, c := range laneBytes(w) {
		if pred(c) {
			m |= W(0x80) << uint(8*(Lanes[W]()-1-i))
		}
	}
	return m
}

func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func TestSplat(t *testing.T) {
	if got := Splat[uint32](0x80); got != 0x80808080 {
		t.Errorf("Splat[uint32](0x80) = %#x, want 0x80808080", got)
	}
	if got := Splat[uint64](0x20); got != 0x2020202020202020 {
		t.Errorf("Splat[uint64](0x20) = %#x, want 0x2020202020202020", got)
	}
	if got := HighBits[uint64](); got != 0x8080808080808080 {
		t.Errorf("HighBits[uint64]() = %#x", got)
	}
	if Lanes[uint32]() != 4 || Lanes[uint64]() != 8 {
		t.Errorf("Lanes = %d/%d, want 4/8", Lanes[uint32](), Lanes[uint64]())
	}
}

func TestClassifyAllASCII(t *testing.T) {
	// Walk every ASCII byte through every lane position.
	for c := 0; c < 0x80; c++ {
		for lane := 0; lane < 8; lane++ {
			w := uint64(c) << uint(8*lane)
			// Neighbouring lanes carry bytes that sit right at the range edges.
			w |= uint64('z') << uint(8*((lane+1)%8))
			w |= uint64('@') << uint(8*((lane+2)%8))
			w |= uint64('9') << uint(8*((lane+3)%8))

			checks := []struct {
				name string
				got  uint64
				pred func(byte) bool
			}{
				{"lower", LowerMask(w), isLower},
				{"upper", UpperMask(w), isUpper},
				{"alpha", AlphaMask(w), func(b byte) bool { return isLower(b) || isUpper(b) }},
				{"digit", DigitMask(w), isDigit},
				{"nonzero", NonZeroMask(w), func(b byte) bool { return b != 0 }},
			}
			for _, ck := range checks {
				if want := refMask(w, ck.pred); ck.got != want {
					t.Fatalf("%s(%#016x) = %#016x, want %#016x", ck.name, w, ck.got, want)
				}
			}
		}
	}
}

func TestRangeMaskEdges(t *testing.T) {
	tests := []struct {
		name   string
		w      uint32
		lo, hi byte
		want   uint32
	}{
		{name: "single", w: 0x41424344, lo: 'B', hi: 'B', want: 0x00800000},
		{name: "full", w: 0x017F4020, lo: 0x01, hi: 0x7F, want: 0x80808080},
		{name: "zero lanes", w: 0x61000000, lo: 'a', hi: 'z', want: 0x80000000},
		{name: "none", w: 0x5B5C5D5E, lo: 'a', hi: 'z', want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeMask(tt.w, tt.lo, tt.hi); got != tt.want {
				t.Errorf("RangeMask(%#x, %#x, %#x) = %#x, want %#x", tt.w, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestSpread(t *testing.T) {
	if got := Spread[uint32](0x80008000); got != 0xFF00FF00 {
		t.Errorf("Spread = %#x, want 0xff00ff00", got)
	}
	if got := Spread[uint64](HighBits[uint64]()); got != ^uint64(0) {
		t.Errorf("Spread(high) = %#x, want all ones", got)
	}
}

func TestLeadingLanesMask(t *testing.T) {
	tests := []struct {
		n    int
		want uint32
	}{
		{0, 0},
		{1, 0x80000000},
		{2, 0x80800000},
		{4, 0x80808080},
	}
	for _, tt := range tests {
		if got := LeadingLanesMask[uint32](tt.n); got != tt.want {
			t.Errorf("LeadingLanesMask[uint32](%d) = %#x, want %#x", tt.n, got, tt.want)
		}
	}
	if got := LeadingLanesMask[uint64](0); got != 0 {
		t.Errorf("LeadingLanesMask[uint64](0) = %#x, want 0", got)
	}
	if got := FirstLaneMask[uint64](); got != 0x8000000000000000 {
		t.Errorf("FirstLaneMask[uint64]() = %#x", got)
	}
}

func TestContentLen(t *testing.T) {
	for n := 0; n <= 8; n++ {
		b := []byte("abcdefgh")[:n]
		if got := ContentLen(Pack64(b)); got != n {
			t.Errorf("ContentLen(Pack64(%q)) = %d, want %d", b, got, n)
		}
		if n <= 4 {
			if got := ContentLen(Pack32(b)); got != n {
				t.Errorf("ContentLen(Pack32(%q)) = %d, want %d", b, got, n)
			}
		}
	}
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		in, upper, lower, title string
	}{
		{"tEsT", "TEST", "test", "Test"},
		{"New York", "NEW YORK", "new york", "New york"},
		{"1aB", "1AB", "1ab", "1ab"},
		{"@[`{", "@[`{", "@[`{", "@[`{"},
		{"z", "Z", "z", "Z"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w := Pack64([]byte(tt.in))
			var buf [8]byte
			check := func(op string, got uint64, want string) {
				Unpack64(buf[:], got)
				if string(buf[:len(want)]) != want {
					t.Errorf("%s(%q) = %q, want %q", op, tt.in, buf[:len(want)], want)
				}
				if ContentLen(got) != len(want) {
					t.Errorf("%s(%q) changed length to %d", op, tt.in, ContentLen(got))
				}
			}
			check("ToUpper", ToUpper(w), tt.upper)
			check("ToLower", ToLower(w), tt.lower)
			check("ToTitle", ToTitle(w), tt.title)
		})
	}
}

func TestAllOf(t *testing.T) {
	w := Pack32([]byte("ab"))
	if !AllOf(w, LowerMask(w)) {
		t.Errorf("AllOf(ab, lower) = false, want true")
	}
	w = Pack32([]byte("a1"))
	if AllOf(w, LowerMask(w)) {
		t.Errorf("AllOf(a1, lower) = true, want false")
	}
}
