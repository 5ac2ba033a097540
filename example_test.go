// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hashtable_test

import (
	"fmt"
	"strings"

	"github.com/aristanetworks/hashtable"
)

func ExampleTable_Iter() {
	t := hashtable.NewFunc(
		hashtable.Equal[string],
		hashtable.HashString,
		hashtable.KeyValue[string, string]{"Avenue", "AVE"},
		hashtable.KeyValue[string, string]{"Street", "ST"},
		hashtable.KeyValue[string, string]{"Court", "CT"},
	)

	for i := t.Iter(); i.Next(); {
		fmt.Printf("The abbreviation for %q is %q", i.Key(), i.Value())
	}
}

func ExampleTable_Entry() {
	t := hashtable.NewFunc[string, int](hashtable.Equal[string], hashtable.HashString)
	for _, w := range strings.Fields("a b a c b a") {
		*t.Entry(w).OrDefault()++
	}
	for _, k := range hashtable.SortedKeys(t) {
		v, _ := t.Get(k)
		fmt.Println(k, v)
	}
	// Output:
	// a 3
	// b 2
	// c 1
}

func ExampleTable_GetBy() {
	t := hashtable.New(hashtable.KeyValue[hashtable.String, int]{"foo", 42})
	v, ok := t.GetBy(hashtable.Text("foo"))
	fmt.Println(v, ok)
	// Output: 42 true
}
