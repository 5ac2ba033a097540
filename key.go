// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

// Query is implemented by any value that can look up keys of type K in
// a Table[K, V], including types other than K itself. The following
// requirements are the implementer's responsibility:
//   - q.Equal(k) must agree with the Table's key equality: q.Equal(k)
//     is true exactly when q and k denote the same key.
//   - If q.Equal(k), q must write the same bytes into the Hasher as the
//     Table's hash func writes for k.
type Query[K any] interface {
	Hash(h *Hasher)
	Equal(key K) bool
}

// Key is implemented by key types that know how to hash and compare
// themselves. Tables of such keys are created with New. It has the same
// method set as Query[K]; the separate name marks the stored-key role,
// where the receiver and the argument are both of type K.
type Key[K any] interface {
	Query[K]
}

// String is an owned text key.
type String string

// Hash implements Key.
func (s String) Hash(h *Hasher) {
	HashString(h, string(s))
}

// Equal implements Key.
func (s String) Equal(key String) bool {
	return s == key
}

// Text is a plain string view used to look up String keys without
// converting it first.
type Text string

// Hash implements Query.
func (t Text) Hash(h *Hasher) {
	HashString(h, string(t))
}

// Equal implements Query.
func (t Text) Equal(key String) bool {
	return string(t) == string(key)
}

// Bytes is a byte slice view used to look up string keys without
// allocating a string.
type Bytes []byte

// Hash implements Query.
func (b Bytes) Hash(h *Hasher) {
	HashBytes(h, b)
}

// Equal implements Query.
func (b Bytes) Equal(key string) bool {
	return string(b) == key
}

// funcQuery adapts a key and the Table's funcs to a Query, so that the
// key-typed and Query-typed lookups share one code path.
type funcQuery[K any] struct {
	key   K
	equal func(a, b K) bool
	hash  func(*Hasher, K)
}

func (q funcQuery[K]) Hash(h *Hasher) {
	q.hash(h, q.key)
}

func (q funcQuery[K]) Equal(key K) bool {
	return q.equal(q.key, key)
}
