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
)

// Str4 is an ASCII string of 1 to 4 bytes stored in a uint32.
//
// The first byte occupies the most significant lane and unused lanes are
// zero, so Compare on two Str4 values matches bytewise string order.
// The zero Str4 is not a valid string; obtain values from Parse4.
type Str4 struct {
	w uint32
}

// Parse4 validates b and packs it into a Str4.
func Parse4(b []byte) (Str4, error) {
	if len(b) == 0 || len(b) > 4 {
		return Str4{}, ErrInvalidSize
	}
	w := swar.Pack32(b)
	if err := checkWord(w, len(b)); err != nil {
		return Str4{}, err
	}
	return Str4{w: w}, nil
}

// Parse4String is Parse4 for a string.
func Parse4String(s string) (Str4, error) {
	return Parse4(bytesOf(s))
}

// MustParse4 is like Parse4String but panics if s is not a valid Str4.
// It simplifies initialization of package-level lookup tables.
func MustParse4(s string) Str4 {
	v, err := Parse4String(s)
	if err != nil {
		panic(mustf("MustParse4", s, err))
	}
	return v
}

// Str4FromRaw rebuilds a Str4 from a word previously returned by Raw,
// validating it first.
func Str4FromRaw(w uint32) (Str4, error) {
	if err := auditWord(w); err != nil {
		return Str4{}, err
	}
	return Str4{w: w}, nil
}

// Str4FromRawUnchecked rebuilds a Str4 from a word previously returned by
// Raw. The word is trusted; passing anything else yields a value whose
// methods return meaningless results. With TINYSTR_DEBUG set it panics instead.
func Str4FromRawUnchecked(w uint32) Str4 {
	if debugAssertions.Load() {
		if err := auditWord(w); err != nil {
			panic(uncheckedf("Str4FromRawUnchecked", w, err))
		}
	}
	return Str4{w: w}
}

// Raw returns the packed word.
func (s Str4) Raw() uint32 { return s.w }

// Len returns the number of content bytes.
func (s Str4) Len() int { return swar.ContentLen(s.w) }

// Bytes returns a copy of the content bytes.
func (s Str4) Bytes() []byte {
	return s.AppendTo(make([]byte, 0, 4))
}

// AppendTo appends the content bytes to dst and returns the extended slice.
func (s Str4) AppendTo(dst []byte) []byte {
	var buf [4]byte
	swar.Unpack32(buf[:], s.w)
	return append(dst, buf[:s.Len()]...)
}

// String returns the content as a string.
func (s Str4) String() string {
	var buf [4]byte
	swar.Unpack32(buf[:], s.w)
	return string(buf[:s.Len()])
}

// EqualString reports whether s holds exactly the bytes of str.
func (s Str4) EqualString(str string) bool {
	return len(str) == s.Len() && swar.Pack32(bytesOf(str)) == s.w
}

// Compare returns -1, 0 or +1 depending on whether s sorts before, equal to,
// or after t.
func (s Str4) Compare(t Str4) int { return cmp.Compare(s.w, t.w) }

// Less reports whether s sorts before t.
func (s Str4) Less(t Str4) bool { return s.w < t.w }

// Hash returns a seeded hash of the packed word.
func (s Str4) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, s.w)
}

// Valid audits the value invariants. It returns nil for every value built by
// Parse4 or Str4FromRaw.
func (s Str4) Valid() error { return auditWord(s.w) }

// ToASCIIUppercase maps 'a'..'z' to 'A'..'Z'. Other bytes are unchanged.
func (s Str4) ToASCIIUppercase() Str4 { return Str4{w: swar.ToUpper(s.w)} }

// ToASCIILowercase maps 'A'..'Z' to 'a'..'z'. Other bytes are unchanged.
func (s Str4) ToASCIILowercase() Str4 { return Str4{w: swar.ToLower(s.w)} }

// ToASCIITitlecase uppercases the first byte if it is a letter and
// lowercases every other letter.
func (s Str4) ToASCIITitlecase() Str4 { return Str4{w: swar.ToTitle(s.w)} }

// IsASCIIAlphabetic reports whether every byte is an ASCII letter.
func (s Str4) IsASCIIAlphabetic() bool {
	return swar.AllOf(s.w, swar.AlphaMask(s.w))
}

// IsASCIIAlphanumeric reports whether every byte is an ASCII letter or digit.
func (s Str4) IsASCIIAlphanumeric() bool {
	return swar.AllOf(s.w, swar.AlphaMask(s.w)|swar.DigitMask(s.w))
}

// IsASCIINumeric reports whether every byte is an ASCII digit.
func (s Str4) IsASCIINumeric() bool {
	return swar.AllOf(s.w, swar.DigitMask(s.w))
}

// IsASCIILowercase reports whether every byte is in 'a'..'z'.
func (s Str4) IsASCIILowercase() bool {
	return swar.AllOf(s.w, swar.LowerMask(s.w))
}

// IsASCIIUppercase reports whether every byte is in 'A'..'Z'.
func (s Str4) IsASCIIUppercase() bool {
	return swar.AllOf(s.w, swar.UpperMask(s.w))
}
