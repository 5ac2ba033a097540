// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

import "iter"

// Iterator is instantiated by a call to Iter. It allows iterating over
// a Table.
type Iterator[K, V any] struct {
	key   K
	value V
	t     *Table[K, V]
	gen   uint64
	// bucket and i are the position of the next pair to return.
	bucket int
	i      int
}

// Iter instantiates an Iterator to explore the pairs of the Table.
// Pairs are visited bucket by bucket, and in chain order within a
// bucket. That order depends on the Table's history and callers must
// not rely on it beyond every pair appearing exactly once. The Table
// must not be written to until the Iterator is done.
func (t *Table[K, V]) Iter() *Iterator[K, V] {
	if t == nil || t.count == 0 {
		return &Iterator[K, V]{}
	}
	return &Iterator[K, V]{t: t, gen: t.gen}
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, V]) Value() V {
	return it.value
}

// Next moves the iterator to the next pair. Next returns false when the
// iterator is complete.
func (it *Iterator[K, V]) Next() bool {
	t := it.t
	if t == nil {
		return false
	}
	if t.gen != it.gen {
		panic("concurrent table iteration and table write")
	}
	for ; it.bucket < len(t.buckets); it.bucket++ {
		pairs := t.buckets[it.bucket].pairs
		if it.i < len(pairs) {
			p := &pairs[it.i]
			it.key = p.key
			it.value = p.value
			it.i++
			return true
		}
		it.i = 0
	}
	// end of iteration
	var (
		zeroK K
		zeroV V
	)
	it.key = zeroK
	it.value = zeroV
	it.t = nil
	return false
}

// All returns an iterator over key-value pairs from t.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in t.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in t.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
