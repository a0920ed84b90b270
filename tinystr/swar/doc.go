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

// Package swar provides "SIMD within a register" helpers for ASCII bytes
// packed into a single unsigned word.
//
// A word holds one byte per lane. The first byte of the logical string lives
// in the most significant lane, so comparing two words as unsigned integers
// orders them like their byte content. Unused trailing lanes are zero.
//
// # Lane Masks
//
// Classification functions return a word with 0x80 set in every lane that
// matches and 0x00 elsewhere:
//
//	w := swar.Pack64([]byte("New York"))
//	lower := swar.LowerMask(w)   // lanes holding a-z
//	upper := swar.UpperMask(w)   // lanes holding A-Z
//	digit := swar.DigitMask(w)   // lanes holding 0-9
//	used := swar.NonZeroMask(w)  // lanes holding content
//
// All range tests assume every lane is below 0x80. Callers must reject
// non-ASCII words before classifying them; otherwise per-lane additions may
// carry into the neighbouring lane.
//
// # Packing
//
// Pack32, Pack64 and Pack128 load up to 4, 8 or 16 bytes with the first byte
// in the most significant lane. The host byte order is detected once at init
// using golang.org/x/sys/cpu; little-endian hosts byte-swap the native load,
// big-endian hosts use it directly.
//
// 128-bit words are handled as a (hi, lo) pair of 64-bit halves. Lanes never
// straddle the halves, so every lane operation applies to each half on its own.
package swar
