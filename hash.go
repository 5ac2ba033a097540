// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// textTerminator is written after every piece of text so that the
// pairs ("ab", "c") and ("a", "bc") do not hash identically when a key
// writes several strings in a row. 0xff never appears in valid UTF-8.
const textTerminator = 0xff

// Hasher is the hash state every key is written into. The algorithm is
// fixed and unkeyed: equal input produces the same hash in every Table
// and in every run of the program.
type Hasher struct {
	d xxhash.Digest
}

func newHasher() *Hasher {
	h := &Hasher{}
	h.d.Reset()
	return h
}

// Write adds p to the hash.
func (h *Hasher) Write(p []byte) {
	h.d.Write(p)
}

// WriteString adds s to the hash.
func (h *Hasher) WriteString(s string) {
	h.d.WriteString(s)
}

// WriteByte adds b to the hash.
func (h *Hasher) WriteByte(b byte) error {
	h.d.Write([]byte{b})
	return nil
}

// WriteUint64 adds v to the hash as 8 little-endian bytes.
func (h *Hasher) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.d.Write(buf[:])
}

// Sum64 returns the hash of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// HashString writes s into h. It is the key writer for string keys and
// matches the way String, Text and Bytes hash themselves.
func HashString(h *Hasher, s string) {
	h.WriteString(s)
	h.WriteByte(textTerminator)
}

// HashBytes writes b into h, hashing identically to HashString(h,
// string(b)).
func HashBytes(h *Hasher, b []byte) {
	h.Write(b)
	h.WriteByte(textTerminator)
}

// HashInt writes v into h. Values of different integer types that are
// numerically equal hash identically as long as they are non-negative.
func HashInt[T constraints.Integer](h *Hasher, v T) {
	h.WriteUint64(uint64(v))
}

// Equal is an equal func for comparable key types, for use with
// NewFunc.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// bucketIndex places hash into one of n buckets. n must be at least 1;
// callers reach it only after reserve, or after checking for an empty
// bucket array.
func bucketIndex(hash uint64, n int) int {
	return int(hash % uint64(n))
}
