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
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// ByteOrder identifies how the host lays out a native word in memory.
type ByteOrder int

const (
	// LittleEndian hosts store the least significant byte first.
	LittleEndian ByteOrder = iota

	// BigEndian hosts store the most significant byte first.
	BigEndian
)

// String returns "little" or "big".
func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

// hostOrder is detected once by init.
var hostOrder ByteOrder

func init() {
	if cpu.IsBigEndian {
		hostOrder = BigEndian
		return
	}
	hostOrder = LittleEndian
}

// HostByteOrder returns the byte order detected for this process.
func HostByteOrder() ByteOrder {
	return hostOrder
}

// Pack32 packs up to 4 bytes of b into a word whose most significant lane is
// b[0]. Lanes past len(b) are zero; bytes past the fourth are ignored.
func Pack32(b []byte) uint32 {
	var buf [4]byte
	copy(buf[:], b)
	w := binary.NativeEndian.Uint32(buf[:])
	if hostOrder == BigEndian {
		return w
	}
	return bits.ReverseBytes32(w)
}

// Pack64 packs up to 8 bytes of b into a word whose most significant lane is
// b[0]. Lanes past len(b) are zero; bytes past the eighth are ignored.
func Pack64(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	w := binary.NativeEndian.Uint64(buf[:])
	if hostOrder == BigEndian {
		return w
	}
	return bits.ReverseBytes64(w)
}

// Pack128 packs up to 16 bytes of b into a (hi, lo) pair. hi carries bytes
// 0 through 7 and lo bytes 8 through 15, each with the earlier byte in the
// more significant lane.
func Pack128(b []byte) (hi, lo uint64) {
	var buf [16]byte
	copy(buf[:], b)
	hi = binary.NativeEndian.Uint64(buf[:8])
	lo = binary.NativeEndian.Uint64(buf[8:])
	if hostOrder == BigEndian {
		return hi, lo
	}
	return bits.ReverseBytes64(hi), bits.ReverseBytes64(lo)
}

// Unpack32 stores the lanes of w into dst, most significant lane first.
// dst must hold at least 4 bytes.
func Unpack32(dst []byte, w uint32) {
	if hostOrder != BigEndian {
		w = bits.ReverseBytes32(w)
	}
	binary.NativeEndian.PutUint32(dst, w)
}

// Unpack64 stores the lanes of w into dst, most significant lane first.
// dst must hold at least 8 bytes.
func Unpack64(dst []byte, w uint64) {
	if hostOrder != BigEndian {
		w = bits.ReverseBytes64(w)
	}
	binary.NativeEndian.PutUint64(dst, w)
}

// Unpack128 stores hi then lo into dst. dst must hold at least 16 bytes.
func Unpack128(dst []byte, hi, lo uint64) {
	Unpack64(dst[:8], hi)
	Unpack64(dst[8:16], lo)
}
