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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiMap(t *testing.T) {
	m := NewMulti[string, int](strings.Compare)
	for i, k := range strings.Fields("1 2 1 3 3 4 5 6") {
		m.Add(k, i)
	}
	assert.Equal(t, 8, m.Len())
	assert.Equal(t, 6, m.KeyLen())
	assert.Equal(t, []int{0, 2}, m.Values("1"))
	assert.Empty(t, m.Values("7"))

	v, ok := m.Get("3")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = m.Get("7")
	assert.False(t, ok)

	type pair struct {
		k string
		v int
	}
	var asc []pair
	m.Ascend(func(k string, v int) bool {
		asc = append(asc, pair{k, v})
		return true
	})
	assert.Equal(t, []pair{
		{"1", 0}, {"1", 2}, {"2", 1}, {"3", 3}, {"3", 4}, {"4", 5}, {"5", 6}, {"6", 7},
	}, asc)

	var desc []pair
	m.Descend(func(k string, v int) bool {
		desc = append(desc, pair{k, v})
		return len(desc) < 3
	})
	assert.Equal(t, []pair{{"6", 7}, {"5", 6}, {"4", 5}}, desc)

	assert.True(t, m.Delete("1"))
	assert.True(t, m.Has("1"))
	assert.Equal(t, []int{2}, m.Values("1"))
	assert.True(t, m.Delete("1"))
	assert.False(t, m.Has("1"))
	assert.False(t, m.Delete("1"))
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, 5, m.KeyLen())

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.KeyLen())
}
