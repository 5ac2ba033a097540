// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hashtable provides the Table type, a hash table that maps
// unique keys to values using separate chaining.
//
// Keys either hash and compare themselves (see Key and New) or are
// paired with an equal and hash func (see NewFunc). The following
// requirements are the user's responsibility to follow:
//   - equal(a, b) => a and b write identical bytes into the Hasher
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - If a key in a Table contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that effects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//
// A Table is owned by one goroutine at a time. Any number of reads may
// run together, but a write must not overlap with any other use of the
// same Table. Overlapping writes, and use of an Entry or Iterator after
// the Table was written to, panic.
package hashtable

// The table is an array of buckets. Each bucket is a chain: a slice of
// key/value pairs that is scanned linearly. A key lives in bucket
// hash(key) % len(buckets), where the hash is taken when the key is
// inserted or rehashed.
//
// The bucket array is allocated lazily by the first write. Before a
// write that may add a pair, the table grows if the pair would push
// the load factor (count/len(buckets)) over 3/4. Growth doubles the
// bucket count and moves every pair into its new chain in one pass; it
// is never incremental and the table never shrinks.
//
// Removal swaps the last pair of a chain into the hole, so chain order,
// and therefore iteration order, changes over the life of a table.

const (
	// InitialBuckets is the size of the first bucket array.
	InitialBuckets = 1

	// Maximum average length of a chain that triggers growth is 0.75.
	// Represent as loadFactorNum/loadFactorDen, to allow integer math.
	loadFactorNum = 3
	loadFactorDen = 4

	// flags
	hashWriting = 1 // a write to the table is in progress
)

// Table implements a hash table.
type Table[K, V any] struct {
	count int // # live pairs == size of table
	flags uint8
	// gen is bumped by every write. Entries and Iterators remember the
	// generation they were made in and refuse to run in another.
	gen uint64

	// array of buckets. nil until the first write.
	buckets []bucket[K, V]

	hash  func(*Hasher, K)
	equal func(a, b K) bool
}

type bucket[K, V any] struct {
	pairs []pair[K, V]
}

type pair[K, V any] struct {
	key   K
	value V
}

// KeyValue contains a Key and Value.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// New instantiates a new Table of self-hashing keys, initialized with
// any KeyValues passed.
func New[K Key[K], V any](kvs ...KeyValue[K, V]) *Table[K, V] {
	return NewFunc(
		func(a, b K) bool { return a.Equal(b) },
		func(h *Hasher, k K) { k.Hash(h) },
		kvs...)
}

// NewHint instantiates a new Table of self-hashing keys with a hint as
// to how many pairs will be inserted.
func NewHint[K Key[K], V any](hint int) *Table[K, V] {
	return NewFuncHint[K, V](hint,
		func(a, b K) bool { return a.Equal(b) },
		func(h *Hasher, k K) { k.Hash(h) })
}

// NewFunc instantiates a new Table initialized with any KeyValues
// passed. The equal func must return true for two values of K that are
// equal and false otherwise. The hash func writes a key into the
// Hasher; if equal(a, b) then hash must write the same bytes for a and
// b. HashString, HashBytes, HashInt and Equal cover common key types.
func NewFunc[K, V any](
	equal func(a, b K) bool,
	hash func(*Hasher, K),
	kvs ...KeyValue[K, V]) *Table[K, V] {

	t := NewFuncHint[K, V](len(kvs), equal, hash)
	for _, kv := range kvs {
		t.Insert(kv.Key, kv.Value)
	}
	return t
}

// NewFuncHint instantiates a new Table with a hint as to how many pairs
// will be inserted. See [NewFunc] for discussion of the equal and hash
// arguments. A hint of zero or less allocates nothing.
func NewFuncHint[K, V any](
	hint int,
	equal func(a, b K) bool,
	hash func(*Hasher, K)) *Table[K, V] {

	if equal == nil || hash == nil {
		panic("hashtable: nil equal or hash func")
	}
	t := &Table[K, V]{hash: hash, equal: equal}
	if hint <= 0 {
		return t
	}
	nbuckets := InitialBuckets
	for overLoadFactor(hint, nbuckets) {
		nbuckets *= 2
	}
	t.buckets = make([]bucket[K, V], nbuckets)
	return t
}

// overLoadFactor reports whether count pairs placed in nbuckets buckets
// is over the load factor.
func overLoadFactor(count int, nbuckets int) bool {
	return uint64(count)*loadFactorDen > uint64(nbuckets)*loadFactorNum
}

// Len returns the count of pairs in t.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether t holds no pairs.
func (t *Table[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

func (t *Table[K, V]) hashKey(key K) uint64 {
	h := newHasher()
	t.hash(h, key)
	return h.Sum64()
}

func hashQuery[K any, Q Query[K]](q Q) uint64 {
	h := newHasher()
	q.Hash(h)
	return h.Sum64()
}

func (t *Table[K, V]) keyQuery(key K) funcQuery[K] {
	return funcQuery[K]{key: key, equal: t.equal, hash: t.hash}
}

// find returns the bucket and chain position of the pair matching q,
// or -1 for the position if there is none. It returns -1 for the bucket
// too if t has no buckets at all.
func find[K, V any, Q Query[K]](t *Table[K, V], q Q) (b int, i int) {
	if t == nil || len(t.buckets) == 0 {
		return -1, -1
	}
	b = bucketIndex(hashQuery[K](q), len(t.buckets))
	return b, t.buckets[b].position(q.Equal)
}

// position scans the chain for a key matching eq.
func (b *bucket[K, V]) position(eq func(K) bool) int {
	for i := range b.pairs {
		if eq(b.pairs[i].key) {
			return i
		}
	}
	return -1
}

// Get returns the value associated with key and true if that key is in
// the Table, otherwise it returns the zero value of V and false.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if t == nil {
		var zeroV V
		return zeroV, false
	}
	return get(t, t.keyQuery(key))
}

// GetBy is like Get, but looks the key up through q, which need not be
// of type K.
func (t *Table[K, V]) GetBy(q Query[K]) (V, bool) {
	return get(t, q)
}

func get[K, V any, Q Query[K]](t *Table[K, V], q Q) (V, bool) {
	if t != nil && t.flags&hashWriting != 0 {
		panic("concurrent table read and table write")
	}
	b, i := find(t, q)
	if i < 0 {
		var zeroV V
		return zeroV, false
	}
	return t.buckets[b].pairs[i].value, true
}

// ContainsKey reports whether key is in t.
func (t *Table[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// ContainsBy reports whether the key q looks up is in t.
func (t *Table[K, V]) ContainsBy(q Query[K]) bool {
	_, ok := t.GetBy(q)
	return ok
}

// Insert associates key with value in t. If key was already present
// its value is replaced, the stored key is kept, and the previous value
// is returned along with true.
func (t *Table[K, V]) Insert(key K, value V) (V, bool) {
	if t == nil {
		// We have to panic here rather than initialize an empty table
		// because we need the user to pass in hash and equal
		// functions
		panic("Insert called on nil Table")
	}
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	hash := t.hashKey(key)
	// Set hashWriting after calling t.hash, since t.hash may panic,
	// in which case we have not actually done a write.
	t.flags ^= hashWriting
	t.gen++

	t.reserve()

	// Placement uses the bucket count after any growth above.
	b := &t.buckets[bucketIndex(hash, len(t.buckets))]
	var old V
	replaced := false
	if i := b.position(func(k K) bool { return t.equal(key, k) }); i >= 0 {
		old, b.pairs[i].value = b.pairs[i].value, value
		replaced = true
	} else {
		b.pairs = append(b.pairs, pair[K, V]{key: key, value: value})
		t.count++
	}

	t.doneWriting()
	return old, replaced
}

// Remove deletes key and its associated value from t, returning the
// value and true if key was present. Remove never shrinks the table.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	if t == nil {
		var zeroV V
		return zeroV, false
	}
	return remove(t, t.keyQuery(key))
}

// RemoveBy is like Remove, but looks the key up through q.
func (t *Table[K, V]) RemoveBy(q Query[K]) (V, bool) {
	return remove(t, q)
}

func remove[K, V any, Q Query[K]](t *Table[K, V], q Q) (V, bool) {
	var zeroV V
	if t == nil || t.count == 0 {
		return zeroV, false
	}
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	b, i := find(t, q)
	if i < 0 {
		return zeroV, false
	}
	t.flags ^= hashWriting
	t.gen++
	v := t.buckets[b].removeAt(i)
	t.count--
	t.doneWriting()
	return v, true
}

// removeAt swaps the last pair of the chain into position i and returns
// the value that was there.
func (b *bucket[K, V]) removeAt(i int) V {
	v := b.pairs[i].value
	last := len(b.pairs) - 1
	b.pairs[i] = b.pairs[last]
	// Clear the vacated slot in case it has pointers
	b.pairs[last] = pair[K, V]{}
	b.pairs = b.pairs[:last]
	return v
}

// Clear deletes all keys from t. The bucket array is kept.
func (t *Table[K, V]) Clear() {
	if t == nil || t.count == 0 {
		return
	}
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	t.flags ^= hashWriting
	t.gen++

	for i := range t.buckets {
		b := &t.buckets[i]
		clear(b.pairs)
		b.pairs = b.pairs[:0]
	}
	t.count = 0

	t.doneWriting()
}

// Resize grows t to twice its current number of buckets, or to
// InitialBuckets if it has none, and moves every pair to the bucket its
// hash selects in the new array. Writes resize automatically; calling
// Resize directly is only useful to grow ahead of time.
func (t *Table[K, V]) Resize() {
	if t == nil {
		panic("Resize called on nil Table")
	}
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	t.flags ^= hashWriting
	t.gen++
	t.resize()
	t.doneWriting()
}

// reserve makes sure there is a bucket array and that one more pair can
// be added without exceeding the load factor.
func (t *Table[K, V]) reserve() {
	for len(t.buckets) == 0 || overLoadFactor(t.count+1, len(t.buckets)) {
		t.resize()
	}
}

func (t *Table[K, V]) resize() {
	newsize := InitialBuckets
	if n := len(t.buckets); n > 0 {
		newsize = n * 2
	}
	newbuckets := make([]bucket[K, V], newsize)

	// Move the pairs rather than copying the chains, and drop the old
	// chains so they can be collected.
	for i := range t.buckets {
		old := &t.buckets[i]
		for _, p := range old.pairs {
			nb := &newbuckets[bucketIndex(t.hashKey(p.key), newsize)]
			nb.pairs = append(nb.pairs, p)
		}
		old.pairs = nil
	}
	t.buckets = newbuckets
}

func (t *Table[K, V]) doneWriting() {
	if t.flags&hashWriting == 0 {
		panic("concurrent table writes")
	}
	t.flags &^= hashWriting
}

// callWriting runs f with t marked as being written, so that any use of
// t from inside f panics. The mark is cleared even if f panics.
func (t *Table[K, V]) callWriting(f func()) {
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	t.flags ^= hashWriting
	defer func() { t.flags &^= hashWriting }()
	f()
}

// Stats describes the shape of a Table.
type Stats struct {
	Len          int
	Buckets      int
	EmptyBuckets int
	LongestChain int
	LoadFactor   float64
}

// Stats reports the current shape of t.
func (t *Table[K, V]) Stats() Stats {
	var s Stats
	if t == nil {
		return s
	}
	s.Len = t.count
	s.Buckets = len(t.buckets)
	for i := range t.buckets {
		n := len(t.buckets[i].pairs)
		if n == 0 {
			s.EmptyBuckets++
		}
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	if s.Buckets > 0 {
		s.LoadFactor = float64(s.Len) / float64(s.Buckets)
	}
	return s
}
