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

// Package bench is the reference benchmark for ordered maps. It builds a
// self-mapped treemap.Map from a list of keys, verifies lookups against it
// and removes entries, and times those operations as a suite.
//
// The map is always owned by the caller and passed explicitly; nothing in
// this package retains one between calls.
package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajwerner/treemap"
)

// ErrMissingKey is wrapped by the error VerifyGet returns when a probed key
// is absent from the map.
var ErrMissingKey = errors.New("key not present in map")

// VerificationError is returned by VerifyGet when the value stored under a
// key is not the key itself.
type VerificationError struct {
	Key   string
	Value string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("item [%s] not equal to self in map : [%s]", e.Key, e.Value)
}

// Insert returns a new map holding every key of keys mapped to itself.
// Later duplicates overwrite earlier ones.
func Insert(keys []string) *treemap.Map[string, string] {
	return InsertFunc(strings.Compare, keys)
}

// InsertFunc is like Insert but orders the map by cmp.
func InsertFunc(cmp func(a, b string) int, keys []string) *treemap.Map[string, string] {
	m := treemap.New[string, string](cmp)
	for _, item := range keys {
		m.Set(item, item)
	}
	return m
}

// VerifyGet checks that m maps every key in keys to itself. It stops at the
// first key that is missing or maps elsewhere.
func VerifyGet(m *treemap.Map[string, string], keys []string) error {
	for _, item := range keys {
		v, ok := m.Get(item)
		if !ok {
			return fmt.Errorf("item [%s]: %w", item, ErrMissingKey)
		}
		if v != item {
			return &VerificationError{Key: item, Value: v}
		}
	}
	return nil
}

// MustVerifyGet is like VerifyGet but panics on failure.
func MustVerifyGet(m *treemap.Map[string, string], keys []string) {
	if err := VerifyGet(m, keys); err != nil {
		panic(err)
	}
}

// Remove deletes every key in keys from m. Absent keys are ignored.
func Remove(m *treemap.Map[string, string], keys []string) {
	for _, item := range keys {
		m.Delete(item)
	}
}
