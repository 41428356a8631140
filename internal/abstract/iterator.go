// Copyright 2018 The Cockroach Authors.
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

package abstract

// Iterator is responsible for search and traversal within a Map.
type Iterator[K, V any] struct {
	r *Map[K, V]
	iterFrame[K, V]
	s iterStack[K, V]
}

// Reset positions the iterator at an invalid position at the root of the
// tree.
func (i *Iterator[K, V]) Reset() {
	i.node = i.r.root
	i.pos = -1
	i.s.reset()
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V]) SeekGE(key K) {
	i.Reset()
	if i.node == nil {
		return
	}
	for {
		pos, found := i.find(i.r.cfg.cmp, key)
		i.pos = int16(pos)
		if found {
			return
		}
		if i.leaf {
			for i.s.len() > 0 && i.pos >= i.count {
				i.ascend()
			}
			return
		}
		i.descend()
	}
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V]) SeekLT(key K) {
	i.Reset()
	if i.node == nil {
		return
	}
	for {
		pos, found := i.find(i.r.cfg.cmp, key)
		i.pos = int16(pos)
		if found || i.leaf {
			i.prev()
			return
		}
		i.descend()
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V]) First() {
	i.Reset()
	if i.node == nil {
		return
	}
	i.pos = 0
	for !i.leaf {
		i.descend()
	}
	i.pos = 0
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V]) Last() {
	i.Reset()
	if i.node == nil {
		return
	}
	for !i.leaf {
		i.pos = i.count
		i.descend()
	}
	i.pos = i.count - 1
}

// Next positions the Iterator to the key immediately following
// its current position. It is a no-op on an invalid Iterator.
func (i *Iterator[K, V]) Next() {
	if !i.Valid() {
		return
	}
	i.next()
}

// Prev positions the Iterator to the key immediately preceding
// its current position. It is a no-op on an invalid Iterator.
func (i *Iterator[K, V]) Prev() {
	if !i.Valid() {
		return
	}
	i.prev()
}

func (i *Iterator[K, V]) next() {
	if i.leaf {
		i.pos++
		if i.pos < i.count {
			return
		}
		for i.s.len() > 0 && i.pos >= i.count {
			i.ascend()
		}
		return
	}
	i.pos++
	i.descend()
	for !i.leaf {
		i.pos = 0
		i.descend()
	}
	i.pos = 0
}

func (i *Iterator[K, V]) prev() {
	if i.leaf {
		i.pos--
		if i.pos >= 0 {
			return
		}
		for i.s.len() > 0 && i.pos < 0 {
			i.ascend()
			i.pos--
		}
		return
	}
	i.descend()
	for !i.leaf {
		i.pos = i.count
		i.descend()
	}
	i.pos = i.count - 1
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V]) Valid() bool {
	return i.node != nil && i.pos >= 0 && i.pos < i.count
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V]) Key() K {
	return i.keys[i.pos]
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V]) Value() V {
	return i.values[i.pos]
}

// descend pushes the current position onto the stack and descends into the
// child at that position. The position in the new node will be 0.
func (i *Iterator[K, V]) descend() {
	i.s.push(i.iterFrame)
	i.iterFrame = iterFrame[K, V]{node: i.children[i.pos]}
}

// ascend ascends up to the current node's parent and resets the position
// to the one previously set for this parent node.
func (i *Iterator[K, V]) ascend() {
	i.iterFrame = i.s.pop()
}
