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
	"cmp"
	"hash/maphash"

	"github.com/ajroetker/go-tinystr/tinystr/swar"
	num "github.com/shabbyrobe/go-num"
)

// Str16 is an ASCII string of 1 to 16 bytes stored in two 64-bit lanes.
//
// hi carries bytes 0 through 7 and lo bytes 8 through 15, each packed like a
// Str8. Taken together (hi, lo) is a 128-bit word with the first byte in the
// most significant lane: comparing hi first and then lo orders values
// bytewise, and Raw exposes the pair as a num.U128.
type Str16 struct {
	hi, lo uint64
}

// Parse16 validates b and packs it into a Str16.
func Parse16(b []byte) (Str16, error) {
	if len(b) == 0 || len(b) > 16 {
		return Str16{}, ErrInvalidSize
	}
	hi, lo := swar.Pack128(b)
	if err := checkPair(hi, lo, len(b)); err != nil {
		return Str16{}, err
	}
	return Str16{hi: hi, lo: lo}, nil
}

// Parse16String is Parse16 for a string.
func Parse16String(s string) (Str16, error) {
	return Parse16(bytesOf(s))
}

// MustParse16 is like Parse16String but panics if s is not a valid Str16.
func MustParse16(s string) Str16 {
	v, err := Parse16String(s)
	if err != nil {
		panic(mustf("MustParse16", s, err))
	}
	return v
}

// Str16FromRaw rebuilds a Str16 from a value previously returned by Raw,
// validating it first.
func Str16FromRaw(u num.U128) (Str16, error) {
	hi, lo := u.Raw()
	if err := auditPair(hi, lo); err != nil {
		return Str16{}, err
	}
	return Str16{hi: hi, lo: lo}, nil
}

// Str16FromRawUnchecked rebuilds a Str16 from a trusted value previously
// returned by Raw. See Str4FromRawUnchecked.
func Str16FromRawUnchecked(u num.U128) Str16 {
	hi, lo := u.Raw()
	if debugAssertions.Load() {
		if err := auditPair(hi, lo); err != nil {
			panic(uncheckedf("Str16FromRawUnchecked", [2]uint64{hi, lo}, err))
		}
	}
	return Str16{hi: hi, lo: lo}
}

// Raw returns the packed content as a 128-bit integer.
func (s Str16) Raw() num.U128 { return num.U128FromRaw(s.hi, s.lo) }

// Words returns the two 64-bit halves of the packed content.
func (s Str16) Words() (hi, lo uint64) { return s.hi, s.lo }

// Len returns the number of content bytes.
func (s Str16) Len() int {
	// lo is non-zero only when hi is full.
	return swar.ContentLen(s.hi) + swar.ContentLen(s.lo)
}

// Bytes returns a copy of the content bytes.
func (s Str16) Bytes() []byte {
	return s.AppendTo(make([]byte, 0, 16))
}

// AppendTo appends the content bytes to dst and returns the extended slice.
func (s Str16) AppendTo(dst []byte) []byte {
	var buf [16]byte
	swar.Unpack128(buf[:], s.hi, s.lo)
	return append(dst, buf[:s.Len()]...)
}

// String returns the content as a string.
func (s Str16) String() string {
	var buf [16]byte
	swar.Unpack128(buf[:], s.hi, s.lo)
	return string(buf[:s.Len()])
}

// EqualString reports whether s holds exactly the bytes of str.
func (s Str16) EqualString(str string) bool {
	if len(str) != s.Len() {
		return false
	}
	hi, lo := swar.Pack128(bytesOf(str))
	return hi == s.hi && lo == s.lo
}

// Compare orders s and t bytewise.
func (s Str16) Compare(t Str16) int {
	if c := cmp.Compare(s.hi, t.hi); c != 0 {
		return c
	}
	return cmp.Compare(s.lo, t.lo)
}

// Less reports whether s sorts before t.
func (s Str16) Less(t Str16) bool {
	return s.hi < t.hi || (s.hi == t.hi && s.lo < t.lo)
}

// Hash returns a seeded hash of the packed content.
func (s Str16) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, [2]uint64{s.hi, s.lo})
}

// Valid audits the value invariants.
func (s Str16) Valid() error { return auditPair(s.hi, s.lo) }

// ToASCIIUppercase maps 'a'..'z' to 'A'..'Z'. Other bytes are unchanged.
func (s Str16) ToASCIIUppercase() Str16 {
	return Str16{hi: swar.ToUpper(s.hi), lo: swar.ToUpper(s.lo)}
}

// ToASCIILowercase maps 'A'..'Z' to 'a'..'z'. Other bytes are unchanged.
func (s Str16) ToASCIILowercase() Str16 {
	return Str16{hi: swar.ToLower(s.hi), lo: swar.ToLower(s.lo)}
}

// ToASCIITitlecase uppercases the first byte if it is a letter and
// lowercases every other letter. Only hi holds the first lane.
func (s Str16) ToASCIITitlecase() Str16 {
	return Str16{hi: swar.ToTitle(s.hi), lo: swar.ToLower(s.lo)}
}

// allOf applies the lane classifier to both halves.
func (s Str16) allOf(class func(uint64) uint64) bool {
	return swar.AllOf(s.hi, class(s.hi)) && swar.AllOf(s.lo, class(s.lo))
}

func alnumMask(w uint64) uint64 { return swar.AlphaMask(w) | swar.DigitMask(w) }

// IsASCIIAlphabetic reports whether every byte is an ASCII letter.
func (s Str16) IsASCIIAlphabetic() bool { return s.allOf(swar.AlphaMask[uint64]) }

// IsASCIIAlphanumeric reports whether every byte is an ASCII letter or digit.
func (s Str16) IsASCIIAlphanumeric() bool { return s.allOf(alnumMask) }

// IsASCIINumeric reports whether every byte is an ASCII digit.
func (s Str16) IsASCIINumeric() bool { return s.allOf(swar.DigitMask[uint64]) }

// IsASCIILowercase reports whether every byte is in 'a'..'z'.
func (s Str16) IsASCIILowercase() bool { return s.allOf(swar.LowerMask[uint64]) }

// IsASCIIUppercase reports whether every byte is in 'A'..'Z'.
func (s Str16) IsASCIIUppercase() bool { return s.allOf(swar.UpperMask[uint64]) }
