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
	"strings"

	"github.com/ajroetker/go-tinystr/tinystr/swar"
	"github.com/charlievieth/strcase"
)

// Kind identifies which representation an Auto uses.
type Kind uint8

const (
	// KindInvalid is the Kind of the zero Auto.
	KindInvalid Kind = iota

	// KindStr4 holds 1 to 4 bytes inline.
	KindStr4

	// KindStr8 holds 5 to 8 bytes inline.
	KindStr8

	// KindStr16 holds 9 to 16 bytes inline.
	KindStr16

	// KindOwned holds more than 16 bytes in a heap string.
	KindOwned
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStr4:
		return "str4"
	case KindStr8:
		return "str8"
	case KindStr16:
		return "str16"
	case KindOwned:
		return "owned"
	default:
		return "invalid"
	}
}

// kindForLen maps a content length to the narrowest representation.
func kindForLen(n int) Kind {
	switch {
	case n <= 0:
		return KindInvalid
	case n <= 4:
		return KindStr4
	case n <= 8:
		return KindStr8
	case n <= 16:
		return KindStr16
	default:
		return KindOwned
	}
}

// Auto is an ASCII string of any non-zero length. Content of up to 16 bytes
// is stored inline in the narrowest of Str4, Str8 or Str16; longer content
// lives in an immutable heap string shared by copies of the value.
//
// The representation depends only on the length, so == on two Auto values
// compares their content and Auto can be used as a map key.
//
// Case conversion and character-class tests are not offered on Auto; use
// Kind and the Str4, Str8 or Str16 accessors to reach the inline forms.
type Auto struct {
	kind Kind
	// Inline content packed like a Str16 regardless of kind, so a Str4 is
	// the top half of hi and a Str8 is hi.
	hi, lo uint64
	owned  string
}

// ParseAuto validates b and stores it in the narrowest representation.
// Empty input fails with ErrInvalidSize; any other length is accepted.
func ParseAuto(b []byte) (Auto, error) {
	n := len(b)
	if n == 0 {
		return Auto{}, ErrInvalidSize
	}
	if n > 16 {
		if err := checkBytes(b); err != nil {
			return Auto{}, err
		}
		return Auto{kind: KindOwned, owned: string(b)}, nil
	}
	hi, lo := swar.Pack128(b)
	if err := checkPair(hi, lo, n); err != nil {
		return Auto{}, err
	}
	return Auto{kind: kindForLen(n), hi: hi, lo: lo}, nil
}

// ParseAutoString is ParseAuto for a string. Long content is copied so the
// result never pins a larger string s may be a substring of.
func ParseAutoString(s string) (Auto, error) {
	if len(s) > 16 {
		if err := checkBytes(bytesOf(s)); err != nil {
			return Auto{}, err
		}
		return Auto{kind: KindOwned, owned: strings.Clone(s)}, nil
	}
	return ParseAuto(bytesOf(s))
}

// MustParseAuto is like ParseAutoString but panics if s is not valid.
func MustParseAuto(s string) Auto {
	v, err := ParseAutoString(s)
	if err != nil {
		panic(mustf("MustParseAuto", s, err))
	}
	return v
}

// AutoFrom4 wraps a Str4.
func AutoFrom4(s Str4) Auto {
	return Auto{kind: KindStr4, hi: uint64(s.w) << 32}
}

// AutoFrom8 wraps a Str8. A value short enough for a Str4 is narrowed.
func AutoFrom8(s Str8) Auto {
	return Auto{kind: kindForLen(s.Len()), hi: s.w}
}

// AutoFrom16 wraps a Str16, narrowing it when the content allows.
func AutoFrom16(s Str16) Auto {
	return Auto{kind: kindForLen(s.Len()), hi: s.hi, lo: s.lo}
}

// Kind returns the representation in use.
func (a Auto) Kind() Kind { return a.kind }

func (a Auto) inline() bool { return a.kind != KindOwned }

// Str4 returns the inline value if a is a KindStr4.
func (a Auto) Str4() (Str4, bool) {
	if a.kind != KindStr4 {
		return Str4{}, false
	}
	return Str4{w: uint32(a.hi >> 32)}, true
}

// Str8 returns the inline value if a is a KindStr8.
func (a Auto) Str8() (Str8, bool) {
	if a.kind != KindStr8 {
		return Str8{}, false
	}
	return Str8{w: a.hi}, true
}

// Str16 returns the inline value if a is a KindStr16.
func (a Auto) Str16() (Str16, bool) {
	if a.kind != KindStr16 {
		return Str16{}, false
	}
	return Str16{hi: a.hi, lo: a.lo}, true
}

// Owned returns the heap string if a is a KindOwned.
func (a Auto) Owned() (string, bool) {
	if a.kind != KindOwned {
		return "", false
	}
	return a.owned, true
}

// Len returns the number of content bytes.
func (a Auto) Len() int {
	if !a.inline() {
		return len(a.owned)
	}
	return swar.ContentLen(a.hi) + swar.ContentLen(a.lo)
}

// AppendTo appends the content bytes to dst and returns the extended slice.
func (a Auto) AppendTo(dst []byte) []byte {
	if !a.inline() {
		return append(dst, a.owned...)
	}
	var buf [16]byte
	swar.Unpack128(buf[:], a.hi, a.lo)
	return append(dst, buf[:a.Len()]...)
}

// Bytes returns a copy of the content bytes.
func (a Auto) Bytes() []byte {
	return a.AppendTo(make([]byte, 0, a.Len()))
}

// String returns the content. For KindOwned it is the stored string itself.
func (a Auto) String() string {
	if !a.inline() {
		return a.owned
	}
	var buf [16]byte
	swar.Unpack128(buf[:], a.hi, a.lo)
	return string(buf[:a.Len()])
}

// Equal reports whether a and b hold the same bytes. It is equivalent to ==.
func (a Auto) Equal(b Auto) bool { return a == b }

// Compare orders a and b bytewise, whatever their kinds.
func (a Auto) Compare(b Auto) int {
	if a.inline() && b.inline() {
		if c := cmp.Compare(a.hi, b.hi); c != 0 {
			return c
		}
		return cmp.Compare(a.lo, b.lo)
	}
	return strings.Compare(a.String(), b.String())
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func (a Auto) EqualFold(b Auto) bool {
	if a.kind != b.kind {
		// Kinds are chosen by length alone.
		return false
	}
	if a.inline() {
		return swar.ToLower(a.hi) == swar.ToLower(b.hi) &&
			swar.ToLower(a.lo) == swar.ToLower(b.lo)
	}
	return strcase.Compare(a.owned, b.owned) == 0
}

// CompareFold orders a and b bytewise after ASCII lowercasing both.
func (a Auto) CompareFold(b Auto) int {
	if a.inline() && b.inline() {
		if c := cmp.Compare(swar.ToLower(a.hi), swar.ToLower(b.hi)); c != 0 {
			return c
		}
		return cmp.Compare(swar.ToLower(a.lo), swar.ToLower(b.lo))
	}
	return strcase.Compare(a.String(), b.String())
}

// HasPrefixFold reports whether the content begins with prefix, ignoring
// case. prefix may be any UTF-8 string; it is folded with Unicode simple
// case folding, so the Kelvin sign matches 'k'.
func (a Auto) HasPrefixFold(prefix string) bool {
	return strcase.HasPrefix(a.String(), prefix)
}

// Clone returns a copy of a. Owned content is copied into a new allocation;
// inline values are returned as is.
func (a Auto) Clone() Auto {
	if !a.inline() {
		a.owned = strings.Clone(a.owned)
	}
	return a
}

// Hash returns a seeded hash of the content. Equal values hash equally.
func (a Auto) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, a)
}
