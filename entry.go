// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

// Entry is a view into a single slot of a Table, which is either
// occupied by a key or vacant. It is created by Table.Entry and lets
// callers get-or-insert without looking the key up twice.
//
// An Entry does not hold a pointer into the chain; the slot is found
// again from its bucket and position each time the Entry is used. It is
// only valid until the Table is next written to by anything other than
// the Entry itself.
type Entry[K, V any] struct {
	t      *Table[K, V]
	key    K
	bucket int
	pos    int // -1 when vacant
	gen    uint64
}

// OccupiedEntry is an Entry whose key is present in the Table.
type OccupiedEntry[K, V any] struct {
	e Entry[K, V]
}

// VacantEntry is an Entry whose key is absent from the Table.
type VacantEntry[K, V any] struct {
	e Entry[K, V]
}

// Entry returns the Entry for key. The Table grows first, as it would
// for an insertion, so that a vacant Entry's bucket stays correct when
// it is filled in.
func (t *Table[K, V]) Entry(key K) Entry[K, V] {
	if t == nil {
		panic("Entry called on nil Table")
	}
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	hash := t.hashKey(key)
	t.flags ^= hashWriting
	t.gen++

	t.reserve()
	b := bucketIndex(hash, len(t.buckets))
	pos := t.buckets[b].position(func(k K) bool { return t.equal(key, k) })

	t.doneWriting()
	return Entry[K, V]{t: t, key: key, bucket: b, pos: pos, gen: t.gen}
}

func (e *Entry[K, V]) check() {
	if e.t == nil {
		panic("hashtable: use of zero Entry")
	}
	if e.t.gen != e.gen {
		panic("hashtable: entry used after table was modified")
	}
}

func (e *Entry[K, V]) slot() *pair[K, V] {
	e.check()
	return &e.t.buckets[e.bucket].pairs[e.pos]
}

// Key returns the key of the entry. For an occupied entry this is the
// key stored in the Table, not the one passed to Table.Entry.
func (e Entry[K, V]) Key() K {
	if e.pos >= 0 {
		return e.slot().key
	}
	return e.key
}

// Occupied returns e as an OccupiedEntry and true if its key is present.
func (e Entry[K, V]) Occupied() (OccupiedEntry[K, V], bool) {
	if e.t == nil || e.pos < 0 {
		return OccupiedEntry[K, V]{}, false
	}
	return OccupiedEntry[K, V]{e: e}, true
}

// Vacant returns e as a VacantEntry and true if its key is absent.
func (e Entry[K, V]) Vacant() (VacantEntry[K, V], bool) {
	if e.t == nil || e.pos >= 0 {
		return VacantEntry[K, V]{}, false
	}
	return VacantEntry[K, V]{e: e}, true
}

// OrInsert returns a pointer to the value for e's key, inserting value
// first if the key is absent.
func (e Entry[K, V]) OrInsert(value V) *V {
	if e.pos >= 0 {
		return &e.slot().value
	}
	return VacantEntry[K, V]{e: e}.Insert(value)
}

// OrInsertWith is like OrInsert, but calls makeValue for the value and
// only when the key is absent. makeValue must not use the Table.
func (e Entry[K, V]) OrInsertWith(makeValue func() V) *V {
	if e.pos >= 0 {
		return &e.slot().value
	}
	e.check()
	var value V
	e.t.callWriting(func() { value = makeValue() })
	return VacantEntry[K, V]{e: e}.Insert(value)
}

// OrDefault is like OrInsert with the zero value of V.
func (e Entry[K, V]) OrDefault() *V {
	return e.OrInsertWith(func() V {
		var zeroV V
		return zeroV
	})
}

// AndModify calls f with a pointer to the value if e is occupied, and
// returns e for further chaining. f must not use the Table.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.pos >= 0 {
		v := &e.slot().value
		e.t.callWriting(func() { f(v) })
	}
	return e
}

// Key returns the key stored in the Table.
func (o *OccupiedEntry[K, V]) Key() K {
	return o.e.slot().key
}

// Value returns a pointer to the stored value. It is valid until the
// Table is next written to.
func (o *OccupiedEntry[K, V]) Value() *V {
	return &o.e.slot().value
}

// Set replaces the stored value and returns the previous one.
func (o *OccupiedEntry[K, V]) Set(value V) V {
	p := o.e.slot()
	t := o.e.t
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	t.flags ^= hashWriting
	old := p.value
	p.value = value
	t.gen++
	o.e.gen = t.gen
	t.doneWriting()
	return old
}

// Remove deletes the pair from the Table and returns its value. o must
// not be used afterwards.
func (o *OccupiedEntry[K, V]) Remove() V {
	o.e.check()
	t := o.e.t
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	t.flags ^= hashWriting
	t.gen++
	v := t.buckets[o.e.bucket].removeAt(o.e.pos)
	t.count--
	t.doneWriting()
	return v
}

// Key returns the key that would be inserted.
func (v VacantEntry[K, V]) Key() K {
	return v.e.key
}

// Insert adds the entry's key with value to the Table and returns a
// pointer to the stored value. The entry is used up.
func (v VacantEntry[K, V]) Insert(value V) *V {
	v.e.check()
	t := v.e.t
	if t.flags&hashWriting != 0 {
		panic("concurrent table writes")
	}
	t.flags ^= hashWriting
	t.gen++

	b := &t.buckets[v.e.bucket]
	b.pairs = append(b.pairs, pair[K, V]{key: v.e.key, value: value})
	t.count++

	t.doneWriting()
	return &b.pairs[len(b.pairs)-1].value
}
