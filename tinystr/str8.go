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

// Str8 is an ASCII string of 1 to 8 bytes stored in a uint64.
// It has the same layout rules as Str4 with eight lanes.
type Str8 struct {
	w uint64
}

// Parse8 validates b and packs it into a Str8.
func Parse8(b []byte) (Str8, error) {
	if len(b) == 0 || len(b) > 8 {
		return Str8{}, ErrInvalidSize
	}
	w := swar.Pack64(b)
	if err := checkWord(w, len(b)); err != nil {
		return Str8{}, err
	}
	return Str8{w: w}, nil
}

// Parse8String is Parse8 for a string.
func Parse8String(s string) (Str8, error) {
	return Parse8(bytesOf(s))
}

// MustParse8 is like Parse8String but panics if s is not a valid Str8.
func MustParse8(s string) Str8 {
	v, err := Parse8String(s)
	if err != nil {
		panic(mustf("MustParse8", s, err))
	}
	return v
}

// Str8FromRaw rebuilds a Str8 from a word previously returned by Raw,
// validating it first.
func Str8FromRaw(w uint64) (Str8, error) {
	if err := auditWord(w); err != nil {
		return Str8{}, err
	}
	return Str8{w: w}, nil
}

// Str8FromRawUnchecked rebuilds a Str8 from a trusted word. See
// Str4FromRawUnchecked.
func Str8FromRawUnchecked(w uint64) Str8 {
	if debugAssertions.Load() {
		if err := auditWord(w); err != nil {
			panic(uncheckedf("Str8FromRawUnchecked", w, err))
		}
	}
	return Str8{w: w}
}

// Raw returns the packed word.
func (s Str8) Raw() uint64 { return s.w }

// Len returns the number of content bytes.
func (s Str8) Len() int { return swar.ContentLen(s.w) }

// Bytes returns a copy of the content bytes.
func (s Str8) Bytes() []byte {
	return s.AppendTo(make([]byte, 0, 8))
}

// AppendTo appends the content bytes to dst and returns the extended slice.
func (s Str8) AppendTo(dst []byte) []byte {
	var buf [8]byte
	swar.Unpack64(buf[:], s.w)
	return append(dst, buf[:s.Len()]...)
}

// String returns the content as a string.
func (s Str8) String() string {
	var buf [8]byte
	swar.Unpack64(buf[:], s.w)
	return string(buf[:s.Len()])
}

// EqualString reports whether s holds exactly the bytes of str.
func (s Str8) EqualString(str string) bool {
	return len(str) == s.Len() && swar.Pack64(bytesOf(str)) == s.w
}

// Compare orders s and t bytewise.
func (s Str8) Compare(t Str8) int { return cmp.Compare(s.w, t.w) }

// Less reports whether s sorts before t.
func (s Str8) Less(t Str8) bool { return s.w < t.w }

// Hash returns a seeded hash of the packed word.
func (s Str8) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, s.w)
}

// Valid audits the value invariants. It returns nil for every value built by
// Parse8 or Str8FromRaw.
func (s Str8) Valid() error { return auditWord(s.w) }

// ToASCIIUppercase maps 'a'..'z' to 'A'..'Z'. Other bytes are unchanged.
func (s Str8) ToASCIIUppercase() Str8 { return Str8{w: swar.ToUpper(s.w)} }

// ToASCIILowercase maps 'A'..'Z' to 'a'..'z'. Other bytes are unchanged.
func (s Str8) ToASCIILowercase() Str8 { return Str8{w: swar.ToLower(s.w)} }

// ToASCIITitlecase uppercases the first byte if it is a letter and
// lowercases every other letter.
func (s Str8) ToASCIITitlecase() Str8 { return Str8{w: swar.ToTitle(s.w)} }

// IsASCIIAlphabetic reports whether every byte is an ASCII letter.
func (s Str8) IsASCIIAlphabetic() bool {
	return swar.AllOf(s.w, swar.AlphaMask(s.w))
}

// IsASCIIAlphanumeric reports whether every byte is an ASCII letter or digit.
func (s Str8) IsASCIIAlphanumeric() bool {
	return swar.AllOf(s.w, swar.AlphaMask(s.w)|swar.DigitMask(s.w))
}

// IsASCIINumeric reports whether every byte is an ASCII digit.
func (s Str8) IsASCIINumeric() bool {
	return swar.AllOf(s.w, swar.DigitMask(s.w))
}

// IsASCIILowercase reports whether every byte is in 'a'..'z'.
func (s Str8) IsASCIILowercase() bool {
	return swar.AllOf(s.w, swar.LowerMask(s.w))
}

// IsASCIIUppercase reports whether every byte is in 'A'..'Z'.
func (s Str8) IsASCIIUppercase() bool {
	return swar.AllOf(s.w, swar.UpperMask(s.w))
}
