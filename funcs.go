// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// String converts t to a string representation using fmt's default
// formatting of K and V. Pairs are sorted by key text.
func (t *Table[K, V]) String() string {
	return StringFunc(t,
		func(key K) string { return fmt.Sprint(key) },
		func(value V) string { return fmt.Sprint(value) },
	)
}

type strKV struct {
	k string
	v string
}

// StringFunc converts t to a string representation with the help of
// strK and strV functions to stringify t's keys and values.
func StringFunc[K any, V any](t *Table[K, V],
	strK func(key K) string,
	strV func(value V) string) string {
	if t.Len() == 0 {
		return "hashtable.Table[]"
	}
	strs := make([]strKV, 0, t.Len())
	s := 0
	for it := t.Iter(); it.Next(); {
		kv := strKV{k: strK(it.Key()), v: strV(it.Value())}
		s += len(kv.k) + len(kv.v)
		strs = append(strs, kv)
	}
	slices.SortFunc(strs, func(a, b strKV) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("hashtable.Table[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and values
	b.WriteString("hashtable.Table[")
	for i, kv := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kv.k)
		b.WriteByte(':')
		b.WriteString(kv.v)
	}
	b.WriteByte(']')
	return b.String()
}

// EqualTables returns true if the same set of keys and values are in
// t1 and t2. Values are compared using ==.
func EqualTables[K any, V comparable](t1, t2 *Table[K, V]) bool {
	return EqualTablesFunc(t1, t2, func(a, b V) bool { return a == b })
}

// EqualTablesFunc returns true if the same set of keys and values are
// in t1 and t2. Values are compared using eq.
func EqualTablesFunc[K, V any](t1, t2 *Table[K, V], eq func(V, V) bool) bool {
	if t1.Len() != t2.Len() {
		return false
	}
	for it := t1.Iter(); it.Next(); {
		v2, ok := t2.Get(it.Key())
		if !ok || !eq(it.Value(), v2) {
			return false
		}
	}
	return true
}

// Collect copies the pairs of t into a builtin map.
func Collect[K comparable, V any](t *Table[K, V]) map[K]V {
	m := make(map[K]V, t.Len())
	for it := t.Iter(); it.Next(); {
		m[it.Key()] = it.Value()
	}
	return m
}

// SortedKeys returns the keys of t in ascending order.
func SortedKeys[K constraints.Ordered, V any](t *Table[K, V]) []K {
	keys := maps.Keys(Collect(t))
	slices.Sort(keys)
	return keys
}
