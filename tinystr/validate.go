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
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/ajroetker/go-tinystr/tinystr/swar"
)

// bytesOf views s as a byte slice without copying. The result must not be
// modified or retained.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// checkWord validates a word freshly packed from n input bytes.
// Non-ASCII input is reported before interior NUL bytes.
func checkWord[W swar.Word](w W, n int) error {
	if w&swar.HighBits[W]() != 0 {
		return ErrNonASCII
	}
	if swar.NonZeroMask(w) != swar.LeadingLanesMask[W](n) {
		return ErrInvalidNull
	}
	return nil
}

// checkPair is checkWord for a (hi, lo) pair packed from n <= 16 bytes.
func checkPair(hi, lo uint64, n int) error {
	if (hi|lo)&swar.HighBits[uint64]() != 0 {
		return ErrNonASCII
	}
	nh, nl := min(n, 8), max(n-8, 0)
	if swar.NonZeroMask(hi) != swar.LeadingLanesMask[uint64](nh) ||
		swar.NonZeroMask(lo) != swar.LeadingLanesMask[uint64](nl) {
		return ErrInvalidNull
	}
	return nil
}

// auditWord checks a raw word of unknown length against the value invariants:
// non-zero, ASCII only, and content lanes followed by a zero tail.
func auditWord[W swar.Word](w W) error {
	if w == 0 {
		return ErrInvalidSize
	}
	if w&swar.HighBits[W]() != 0 {
		return ErrNonASCII
	}
	nz := swar.NonZeroMask(w)
	if nz != swar.LeadingLanesMask[W](bits.OnesCount64(uint64(nz))) {
		return ErrInvalidNull
	}
	return nil
}

// auditPair is auditWord for a (hi, lo) pair.
func auditPair(hi, lo uint64) error {
	if hi|lo == 0 {
		return ErrInvalidSize
	}
	if (hi|lo)&swar.HighBits[uint64]() != 0 {
		return ErrNonASCII
	}
	nzh, nzl := swar.NonZeroMask(hi), swar.NonZeroMask(lo)
	nh, nl := bits.OnesCount64(nzh), bits.OnesCount64(nzl)
	if nzh != swar.LeadingLanesMask[uint64](nh) ||
		nzl != swar.LeadingLanesMask[uint64](nl) ||
		(nl != 0 && nh != 8) {
		return ErrInvalidNull
	}
	return nil
}

// checkBytes validates input of any length eight bytes at a time.
func checkBytes(b []byte) error {
	if len(b) == 0 {
		return ErrInvalidSize
	}
	hasNull := false
	for i := 0; i < len(b); i += 8 {
		chunk := b[i:min(i+8, len(b))]
		w := swar.Pack64(chunk)
		if w&swar.HighBits[uint64]() != 0 {
			return ErrNonASCII
		}
		if swar.NonZeroMask(w) != swar.LeadingLanesMask[uint64](len(chunk)) {
			hasNull = true
		}
	}
	if hasNull {
		return ErrInvalidNull
	}
	return nil
}

// mustf formats the panic raised by the Must* helpers.
func mustf(fn, s string, err error) string {
	return fmt.Sprintf("tinystr: %s(%q): %v", fn, s, err)
}

// uncheckedf formats the panic raised by the unchecked constructors when
// debug assertions are enabled.
func uncheckedf(fn string, raw any, err error) string {
	return fmt.Sprintf("tinystr: %s(%#x): %v", fn, raw, err)
}
