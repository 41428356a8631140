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

import (
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	degree     = 16
	maxEntries = 2*degree - 1
	minEntries = degree - 1
)

type node[K, V any] struct {
	ref      int32
	count    int16
	leaf     bool
	keys     [maxEntries]K
	values   [maxEntries]V
	children [maxEntries + 1]*node[K, V]
}

// mut creates and returns a mutable node reference. If the node is not shared
// with any other trees then it can be modified in place. Otherwise, it must be
// cloned to ensure unique ownership. In this way, we enforce a copy-on-write
// policy which transparently incorporates the idea of local mutations, like
// Clojure's transients or Haskell's ST monad, where nodes are only copied
// during the first time that they are modified between Clone operations.
//
// When a node is cloned, the provided pointer will be redirected to the new
// mutable node.
func mut[K, V any](np *nodePool[K, V], n **node[K, V]) *node[K, V] {
	if atomic.LoadInt32(&(*n).ref) == 1 {
		// Exclusive ownership. Can mutate in place.
		return *n
	}
	// If we do not have unique ownership over the node then we
	// clone it to gain unique ownership. After doing so, we can
	// release our reference to the old node. We pass recursive
	// as true because even though we just observed the node's
	// reference count to be greater than 1, we might be racing
	// with another call to decRef on this node.
	c := (*n).clone(np)
	(*n).decRef(np, true /* recursive */)
	*n = c
	return *n
}

// incRef acquires a reference to the node.
func (n *node[K, V]) incRef() {
	atomic.AddInt32(&n.ref, 1)
}

// decRef releases a reference to the node. If requested, the method
// will recurse into child nodes and decrease their refcounts as well.
func (n *node[K, V]) decRef(np *nodePool[K, V], recursive bool) {
	if atomic.AddInt32(&n.ref, -1) > 0 {
		// Other references remain. Can't free.
		return
	}
	// Release child references first, if requested.
	if !n.leaf && recursive {
		for i := int16(0); i <= n.count; i++ {
			n.children[i].decRef(np, true /* recursive */)
		}
	}
	np.putNode(n)
}

// clone creates a clone of the receiver with a single reference count.
func (n *node[K, V]) clone(np *nodePool[K, V]) *node[K, V] {
	var c *node[K, V]
	if n.leaf {
		c = np.getLeafNode()
	} else {
		c = np.getInteriorNode()
	}
	// NB: copy field-by-field without touching n.ref to avoid
	// triggering the race detector and looking like a data race.
	c.count = n.count
	c.keys = n.keys
	c.values = n.values
	if !c.leaf {
		// Copy children and increase each refcount.
		c.children = n.children
		for i := int16(0); i <= c.count; i++ {
			c.children[i].incRef()
		}
	}
	return c
}

func (n *node[K, V]) insertAt(index int, k K, v V, nd *node[K, V]) {
	if index < int(n.count) {
		copy(n.keys[index+1:n.count+1], n.keys[index:n.count])
		copy(n.values[index+1:n.count+1], n.values[index:n.count])
		if !n.leaf {
			copy(n.children[index+2:n.count+2], n.children[index+1:n.count+1])
		}
	}
	n.keys[index] = k
	n.values[index] = v
	if !n.leaf {
		n.children[index+1] = nd
	}
	n.count++
}

func (n *node[K, V]) pushBack(k K, v V, nd *node[K, V]) {
	n.keys[n.count] = k
	n.values[n.count] = v
	if !n.leaf {
		n.children[n.count+1] = nd
	}
	n.count++
}

func (n *node[K, V]) pushFront(k K, v V, nd *node[K, V]) {
	if !n.leaf {
		copy(n.children[1:n.count+2], n.children[:n.count+1])
		n.children[0] = nd
	}
	copy(n.keys[1:n.count+1], n.keys[:n.count])
	copy(n.values[1:n.count+1], n.values[:n.count])
	n.keys[0] = k
	n.values[0] = v
	n.count++
}

// removeAt removes an entry at a given index, pulling all subsequent entries
// back.
func (n *node[K, V]) removeAt(index int) (K, V, *node[K, V]) {
	var child *node[K, V]
	if !n.leaf {
		child = n.children[index+1]
		copy(n.children[index+1:n.count], n.children[index+2:n.count+1])
		n.children[n.count] = nil
	}
	n.count--
	outK := n.keys[index]
	outV := n.values[index]
	copy(n.keys[index:n.count], n.keys[index+1:n.count+1])
	copy(n.values[index:n.count], n.values[index+1:n.count+1])
	var rK K
	var rV V
	n.keys[n.count] = rK
	n.values[n.count] = rV
	return outK, outV, child
}

// popBack removes and returns the last entry in the node.
func (n *node[K, V]) popBack() (K, V, *node[K, V]) {
	n.count--
	outK := n.keys[n.count]
	outV := n.values[n.count]
	var rK K
	var rV V
	n.keys[n.count] = rK
	n.values[n.count] = rV
	if n.leaf {
		return outK, outV, nil
	}
	child := n.children[n.count+1]
	n.children[n.count+1] = nil
	return outK, outV, child
}

// popFront removes and returns the first entry in the node.
func (n *node[K, V]) popFront() (K, V, *node[K, V]) {
	n.count--
	var child *node[K, V]
	if !n.leaf {
		child = n.children[0]
		copy(n.children[:n.count+1], n.children[1:n.count+2])
		n.children[n.count+1] = nil
	}
	outK := n.keys[0]
	outV := n.values[0]
	copy(n.keys[:n.count], n.keys[1:n.count+1])
	copy(n.values[:n.count], n.values[1:n.count+1])
	var rK K
	var rV V
	n.keys[n.count] = rK
	n.values[n.count] = rV
	return outK, outV, child
}

// find returns the index where the given key should be inserted into this
// node. 'found' is true if the key already exists in the node at the given
// index.
func (n *node[K, V]) find(cmp func(K, K) int, k K) (index int, found bool) {
	// Logic copied from sort.Search. Inlining this gave
	// an 11% speedup on BenchmarkBTreeDeleteInsert.
	i, j := 0, int(n.count)
	for i < j {
		h := int(uint(i+j) >> 1) // avoid overflow when computing h
		// i ≤ h < j
		c := cmp(k, n.keys[h])
		if c < 0 {
			j = h
		} else if c > 0 {
			i = h + 1
		} else {
			return h, true
		}
	}
	return i, false
}

// split splits the given node at the given index. The current node shrinks,
// and this function returns the entry that existed at that index and a new
// node containing all keys/children after it.
//
// Before:
//
//	         +-----------+
//	         |   x y z   |
//	         +--/-/-\-\--+
//
// After:
//
//	         +-----------+
//	         |     y     |
//	         +----/-\----+
//	             /   \
//	            v     v
//	+-----------+     +-----------+
//	|         x |     | z         |
//	+-----------+     +-----------+
func (n *node[K, V]) split(np *nodePool[K, V], i int) (K, V, *node[K, V]) {
	outK := n.keys[i]
	outV := n.values[i]
	var next *node[K, V]
	if n.leaf {
		next = np.getLeafNode()
	} else {
		next = np.getInteriorNode()
	}
	next.count = n.count - int16(i+1)
	copy(next.keys[:], n.keys[i+1:n.count])
	copy(next.values[:], n.values[i+1:n.count])
	var rK K
	var rV V
	for j := int16(i); j < n.count; j++ {
		n.keys[j] = rK
		n.values[j] = rV
	}
	if !n.leaf {
		copy(next.children[:], n.children[i+1:n.count+1])
		for j := int16(i + 1); j <= n.count; j++ {
			n.children[j] = nil
		}
	}
	n.count = int16(i)
	return outK, outV, next
}

// insert inserts an entry into the subtree rooted at this node, making sure
// no nodes in the subtree exceed maxEntries keys. Returns true if an existing
// entry was replaced and false if an entry was inserted.
func (n *node[K, V]) insert(cfg *config[K, V], k K, v V) (replacedK K, replacedV V, replaced bool) {
	i, found := n.find(cfg.cmp, k)
	if found {
		replacedK, replacedV = n.keys[i], n.values[i]
		n.keys[i], n.values[i] = k, v
		return replacedK, replacedV, true
	}
	if n.leaf {
		n.insertAt(i, k, v, nil)
		return replacedK, replacedV, false
	}
	if n.children[i].count >= maxEntries {
		splitK, splitV, splitNode := mut(cfg.np, &n.children[i]).split(cfg.np, maxEntries/2)
		n.insertAt(i, splitK, splitV, splitNode)
		if c := cfg.cmp(k, n.keys[i]); c < 0 {
			// no change, we want first split node
		} else if c > 0 {
			i++ // we want second split node
		} else {
			replacedK, replacedV = n.keys[i], n.values[i]
			n.keys[i], n.values[i] = k, v
			return replacedK, replacedV, true
		}
	}
	return mut(cfg.np, &n.children[i]).insert(cfg, k, v)
}

// removeMax removes and returns the maximum entry from the subtree rooted
// at this node.
func (n *node[K, V]) removeMax(np *nodePool[K, V]) (K, V) {
	if n.leaf {
		n.count--
		outK := n.keys[n.count]
		outV := n.values[n.count]
		var rK K
		var rV V
		n.keys[n.count] = rK
		n.values[n.count] = rV
		return outK, outV
	}
	// Recurse into max child.
	i := int(n.count)
	if n.children[i].count <= minEntries {
		// Child not large enough to remove from.
		n.rebalanceOrMerge(np, i)
		return n.removeMax(np) // redo
	}
	return mut(np, &n.children[i]).removeMax(np)
}

// rebalanceOrMerge grows child 'i' to ensure it has sufficient room to remove
// an entry from it while keeping it at or above minEntries.
func (n *node[K, V]) rebalanceOrMerge(np *nodePool[K, V], i int) {
	switch {
	case i > 0 && n.children[i-1].count > minEntries:
		// Rebalance from left sibling.
		//
		//          +-----------+
		//          |     y     |
		//          +----/-\----+
		//              /   \
		//             v     v
		// +-----------+     +-----------+
		// |         x |     |           |
		// +----------\+     +-----------+
		//             \
		//              v
		//              a
		//
		// After:
		//
		//          +-----------+
		//          |     x     |
		//          +----/-\----+
		//              /   \
		//             v     v
		// +-----------+     +-----------+
		// |           |     | y         |
		// +-----------+     +/----------+
		//                   /
		//                  v
		//                  a
		//
		left := mut(np, &n.children[i-1])
		child := mut(np, &n.children[i])
		xK, xV, grandChild := left.popBack()
		yK, yV := n.keys[i-1], n.values[i-1]
		child.pushFront(yK, yV, grandChild)
		n.keys[i-1], n.values[i-1] = xK, xV

	case i < int(n.count) && n.children[i+1].count > minEntries:
		// Rebalance from right sibling.
		//
		//          +-----------+
		//          |     y     |
		//          +----/-\----+
		//              /   \
		//             v     v
		// +-----------+     +-----------+
		// |           |     | x         |
		// +-----------+     +/----------+
		//                   /
		//                  v
		//                  a
		//
		// After:
		//
		//          +-----------+
		//          |     x     |
		//          +----/-\----+
		//              /   \
		//             v     v
		// +-----------+     +-----------+
		// |         y |     |           |
		// +----------\+     +-----------+
		//             \
		//              v
		//              a
		//
		right := mut(np, &n.children[i+1])
		child := mut(np, &n.children[i])
		xK, xV, grandChild := right.popFront()
		yK, yV := n.keys[i], n.values[i]
		child.pushBack(yK, yV, grandChild)
		n.keys[i], n.values[i] = xK, xV

	default:
		// Merge with either the left or right sibling.
		//
		//          +-----------+
		//          |   u y v   |
		//          +----/-\----+
		//              /   \
		//             v     v
		// +-----------+     +-----------+
		// |         x |     | z         |
		// +-----------+     +-----------+
		//
		// After:
		//
		//          +-----------+
		//          |    u v    |
		//          +-----|-----+
		//                |
		//                v
		//          +-----------+
		//          |   x y z   |
		//          +-----------+
		//
		if i >= int(n.count) {
			i = int(n.count - 1)
		}
		child := mut(np, &n.children[i])
		// Make mergeChild mutable, bumping the refcounts on its children if necessary.
		_ = mut(np, &n.children[i+1])
		mergeK, mergeV, mergeChild := n.removeAt(i)
		child.keys[child.count] = mergeK
		child.values[child.count] = mergeV
		copy(child.keys[child.count+1:], mergeChild.keys[:mergeChild.count])
		copy(child.values[child.count+1:], mergeChild.values[:mergeChild.count])
		if !child.leaf {
			copy(child.children[child.count+1:], mergeChild.children[:mergeChild.count+1])
		}
		child.count += mergeChild.count + 1
		mergeChild.decRef(np, false /* recursive */)
	}
}

// remove removes an entry from the subtree rooted at this node. Returns the
// entry that was removed and whether a matching entry was found.
func (n *node[K, V]) remove(cfg *config[K, V], k K) (outK K, outV V, found bool) {
	i, found := n.find(cfg.cmp, k)
	if n.leaf {
		if found {
			outK, outV, _ = n.removeAt(i)
			return outK, outV, true
		}
		return outK, outV, false
	}
	if n.children[i].count <= minEntries {
		// Child not large enough to remove from.
		n.rebalanceOrMerge(cfg.np, i)
		return n.remove(cfg, k) // redo
	}
	child := mut(cfg.np, &n.children[i])
	if found {
		// Replace the entry being removed with the max entry in our left child.
		outK, outV = n.keys[i], n.values[i]
		n.keys[i], n.values[i] = child.removeMax(cfg.np)
		return outK, outV, true
	}
	// Key is not in this node and child is large enough to remove from.
	return child.remove(cfg, k)
}

func (n *node[K, V]) writeString(b *strings.Builder) {
	if n.leaf {
		for i := int16(0); i < n.count; i++ {
			if i != 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, "%v:%v", n.keys[i], n.values[i])
		}
		return
	}
	for i := int16(0); i <= n.count; i++ {
		b.WriteString("(")
		n.children[i].writeString(b)
		b.WriteString(")")
		if i < n.count {
			fmt.Fprintf(b, "%v:%v", n.keys[i], n.values[i])
		}
	}
}
