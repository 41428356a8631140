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

// Package treemap provides ordered associative containers backed by a
// copy-on-write B-Tree.
package treemap

import (
	"errors"

	"github.com/ajwerner/treemap/internal/abstract"
	"golang.org/x/exp/constraints"
)

// ErrKeyNotFound is returned by Fetch when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Compare is a three-way comparison for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Map is an ordered map from K to V.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Map[K, V any] struct {
	t abstract.Map[K, V]
}

// New returns an empty Map ordered by cmp.
func New[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{t: abstract.MakeMap[K, V](cmp)}
}

// NewOrdered returns an empty Map ordered by the natural order of K.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	return New[K, V](Compare[K])
}

// Set stores v under k, replacing any previous value.
func (m *Map[K, V]) Set(k K, v V) {
	m.t.Upsert(k, v)
}

// Upsert stores v under k and returns the value it replaced, if any.
func (m *Map[K, V]) Upsert(k K, v V) (old V, replaced bool) {
	_, old, replaced = m.t.Upsert(k, v)
	return old, replaced
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.t.Get(k)
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.t.Get(k)
	return ok
}

// Fetch is like Get but reports a missing key as ErrKeyNotFound.
func (m *Map[K, V]) Fetch(k K) (V, error) {
	v, ok := m.t.Get(k)
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

// FetchOr returns the value stored under k, or def if there is none.
func (m *Map[K, V]) FetchOr(k K, def V) V {
	if v, ok := m.t.Get(k); ok {
		return v
	}
	return def
}

// Delete removes k and returns the value it held. Deleting an absent key
// is a no-op.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	_, v, found := m.t.Delete(k)
	return v, found
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// Clear removes every entry, recycling the underlying nodes.
func (m *Map[K, V]) Clear() { m.t.Reset() }

// Clone returns a copy of the Map in constant time. Subsequent writes to
// either Map are not observed by the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.Clone()}
}

// First returns the entry with the smallest key.
func (m *Map[K, V]) First() (k K, v V, ok bool) {
	it := m.t.MakeIter()
	it.First()
	if !it.Valid() {
		return k, v, false
	}
	return it.Key(), it.Value(), true
}

// Last returns the entry with the largest key.
func (m *Map[K, V]) Last() (k K, v V, ok bool) {
	it := m.t.MakeIter()
	it.Last()
	if !it.Valid() {
		return k, v, false
	}
	return it.Key(), it.Value(), true
}

// Ascend calls f for each entry in ascending key order until f returns
// false.
func (m *Map[K, V]) Ascend(f func(K, V) bool) {
	it := m.t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		if !f(it.Key(), it.Value()) {
			return
		}
	}
}

// Descend calls f for each entry in descending key order until f returns
// false.
func (m *Map[K, V]) Descend(f func(K, V) bool) {
	it := m.t.MakeIter()
	for it.Last(); it.Valid(); it.Prev() {
		if !f(it.Key(), it.Value()) {
			return
		}
	}
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Ascend(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns the values in ascending key order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	m.Ascend(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Entry is a key-value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Entries returns every entry in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Len())
	m.Ascend(func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return entries
}

func (m *Map[K, V]) String() string { return m.t.String() }

// Iterator is a cursor over a Map. It must not be used after the Map is
// modified.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

// Iterator returns an Iterator positioned before the first entry.
func (m *Map[K, V]) Iterator() Iterator[K, V] {
	return Iterator[K, V]{it: m.t.MakeIter()}
}

func (it *Iterator[K, V]) First() { it.it.First() }

func (it *Iterator[K, V]) Last() { it.it.Last() }

func (it *Iterator[K, V]) SeekGE(k K) { it.it.SeekGE(k) }

func (it *Iterator[K, V]) SeekLT(k K) { it.it.SeekLT(k) }

func (it *Iterator[K, V]) Next() { it.it.Next() }

func (it *Iterator[K, V]) Prev() { it.it.Prev() }

func (it *Iterator[K, V]) Valid() bool { return it.it.Valid() }

func (it *Iterator[K, V]) Cur() K { return it.it.Key() }

func (it *Iterator[K, V]) Value() V { return it.it.Value() }
