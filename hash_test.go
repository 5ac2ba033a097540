// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

import (
	"testing"

	"github.com/cespare/xxhash/v2"
)

func sum(write func(h *Hasher)) uint64 {
	h := newHasher()
	write(h)
	return h.Sum64()
}

func TestHashStable(t *testing.T) {
	a := sum(func(h *Hasher) { HashString(h, "foo") })
	b := sum(func(h *Hasher) { HashString(h, "foo") })
	if a != b {
		t.Errorf("hash of equal keys differs: %x != %x", a, b)
	}
	if want := xxhash.Sum64String("foo\xff"); a != want {
		t.Errorf("expected unkeyed hash %x got %x", want, a)
	}
}

func TestHashViewsAgree(t *testing.T) {
	for _, s := range []string{"", "foo", "quox", "日本語"} {
		want := sum(func(h *Hasher) { HashString(h, s) })
		if got := sum(func(h *Hasher) { HashBytes(h, []byte(s)) }); got != want {
			t.Errorf("HashBytes(%q) = %x, HashString = %x", s, got, want)
		}
		if got := sum(String(s).Hash); got != want {
			t.Errorf("String(%q).Hash = %x, HashString = %x", s, got, want)
		}
		if got := sum(Text(s).Hash); got != want {
			t.Errorf("Text(%q).Hash = %x, HashString = %x", s, got, want)
		}
		if got := sum(Bytes(s).Hash); got != want {
			t.Errorf("Bytes(%q).Hash = %x, HashString = %x", s, got, want)
		}
	}
}

func TestHashTextBoundaries(t *testing.T) {
	ab := sum(func(h *Hasher) { HashString(h, "a"); HashString(h, "bc") })
	abc := sum(func(h *Hasher) { HashString(h, "ab"); HashString(h, "c") })
	if ab == abc {
		t.Error("split point of consecutive strings does not affect the hash")
	}
}

func TestHashInt(t *testing.T) {
	i := sum(func(h *Hasher) { HashInt(h, 7) })
	u := sum(func(h *Hasher) { HashInt(h, uint8(7)) })
	if i != u {
		t.Errorf("equal integers of different types hash differently: %x != %x", i, u)
	}
}

func TestBucketIndex(t *testing.T) {
	for n := 1; n <= 64; n *= 2 {
		for h := uint64(0); h < 200; h++ {
			if b := bucketIndex(h, n); b < 0 || b >= n {
				t.Fatalf("bucketIndex(%d, %d) = %d", h, n, b)
			}
		}
	}
	if b := bucketIndex(^uint64(0), 3); b != int(^uint64(0)%3) {
		t.Errorf("unexpected index for max hash: %d", b)
	}
}
