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

import "sync"

type nodePool[K, V any] struct {
	interiorNodePool, leafNodePool sync.Pool
}

// syncPoolMap holds one *nodePool per instantiation of node, keyed by a
// typed nil *node.
var syncPoolMap sync.Map

func getNodePool[K, V any]() *nodePool[K, V] {
	var nilNode *node[K, V]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[K, V]())
	}
	return v.(*nodePool[K, V])
}

func newNodePool[K, V any]() *nodePool[K, V] {
	np := nodePool[K, V]{}
	np.leafNodePool = sync.Pool{
		New: func() interface{} {
			return new(node[K, V])
		},
	}
	np.interiorNodePool = sync.Pool{
		New: func() interface{} {
			return new(node[K, V])
		},
	}
	return &np
}

func (np *nodePool[K, V]) getInteriorNode() *node[K, V] {
	n := np.interiorNodePool.Get().(*node[K, V])
	n.ref = 1
	n.leaf = false
	return n
}

func (np *nodePool[K, V]) getLeafNode() *node[K, V] {
	n := np.leafNodePool.Get().(*node[K, V])
	n.ref = 1
	n.leaf = true
	return n
}

// putNode clears n and returns it to the pool it belongs to. The caller
// must hold the last reference to n.
func (np *nodePool[K, V]) putNode(n *node[K, V]) {
	leaf := n.leaf
	*n = node[K, V]{}
	if leaf {
		np.leafNodePool.Put(n)
	} else {
		np.interiorNodePool.Put(n)
	}
}
