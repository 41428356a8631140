// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package treemap_test

import (
	"fmt"
	"strings"

	"github.com/ajwerner/treemap"
)

func ExampleMap() {
	m := treemap.New[string, int](strings.Compare)
	m.Set("foo", 1)
	m.Set("bar", 2)
	fmt.Println(m.Get("foo"))
	fmt.Println(m.Get("baz"))
	it := m.Iterator()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Cur(), it.Value())
	}

	// Output:
	// 1 true
	// 0 false
	// bar 2
	// foo 1
}

func ExampleMultiMap() {
	m := treemap.NewOrderedMulti[int, string]()
	for _, kv := range []struct {
		k int
		v string
	}{
		{2, "b"}, {1, "a"}, {2, "c"}, {3, "d"},
	} {
		m.Add(kv.k, kv.v)
	}
	m.Ascend(func(k int, v string) bool {
		fmt.Println(k, v)
		return true
	})
	m.Delete(2)
	fmt.Println(m.Values(2), m.Len(), m.KeyLen())

	// Output:
	// 1 a
	// 2 b
	// 2 c
	// 3 d
	// [c] 3 3
}
