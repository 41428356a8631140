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

package treemap

import (
	"github.com/ajwerner/treemap/internal/abstract"
	"golang.org/x/exp/constraints"
)

// MultiMap is an ordered map in which each key holds a list of values in
// insertion order.
type MultiMap[K, V any] struct {
	t    abstract.Map[K, []V]
	size int
}

// NewMulti returns an empty MultiMap ordered by cmp.
func NewMulti[K, V any](cmp func(K, K) int) *MultiMap[K, V] {
	return &MultiMap[K, V]{t: abstract.MakeMap[K, []V](cmp)}
}

// NewOrderedMulti returns an empty MultiMap ordered by the natural order
// of K.
func NewOrderedMulti[K constraints.Ordered, V any]() *MultiMap[K, V] {
	return NewMulti[K, V](Compare[K])
}

// Add appends v to the values held by k.
func (m *MultiMap[K, V]) Add(k K, v V) {
	vs, _ := m.t.Get(k)
	m.t.Upsert(k, append(vs, v))
	m.size++
}

// Get returns the first value held by k.
func (m *MultiMap[K, V]) Get(k K) (v V, ok bool) {
	vs, ok := m.t.Get(k)
	if !ok {
		return v, false
	}
	return vs[0], true
}

// Values returns every value held by k, oldest first.
func (m *MultiMap[K, V]) Values(k K) []V {
	vs, _ := m.t.Get(k)
	return append([]V(nil), vs...)
}

// Has reports whether k holds at least one value.
func (m *MultiMap[K, V]) Has(k K) bool {
	_, ok := m.t.Get(k)
	return ok
}

// Delete removes the oldest value held by k. The key itself is removed once
// it holds no values. It returns false if k was absent.
func (m *MultiMap[K, V]) Delete(k K) bool {
	vs, ok := m.t.Get(k)
	if !ok {
		return false
	}
	m.size--
	if len(vs) == 1 {
		m.t.Delete(k)
		return true
	}
	m.t.Upsert(k, vs[1:])
	return true
}

// Len returns the number of values across all keys.
func (m *MultiMap[K, V]) Len() int { return m.size }

// KeyLen returns the number of distinct keys.
func (m *MultiMap[K, V]) KeyLen() int { return m.t.Len() }

// Clear removes every key and value.
func (m *MultiMap[K, V]) Clear() {
	m.t.Reset()
	m.size = 0
}

// Ascend calls f for every value in ascending key order, values of a key in
// insertion order, until f returns false.
func (m *MultiMap[K, V]) Ascend(f func(K, V) bool) {
	it := m.t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		for _, v := range it.Value() {
			if !f(it.Key(), v) {
				return
			}
		}
	}
}

// Descend calls f for every value in descending key order, values of a key
// newest first, until f returns false.
func (m *MultiMap[K, V]) Descend(f func(K, V) bool) {
	it := m.t.MakeIter()
	for it.Last(); it.Valid(); it.Prev() {
		vs := it.Value()
		for i := len(vs) - 1; i >= 0; i-- {
			if !f(it.Key(), vs[i]) {
				return
			}
		}
	}
}
