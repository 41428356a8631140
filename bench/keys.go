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

package bench

import "math/rand"

const letters = "abcdefghijklmnopqrstuvwxyz"

// GenerateKeys returns n keys of length random lowercase letters drawn
// from r. Keys may repeat.
func GenerateKeys(r *rand.Rand, n, length int) []string {
	keys := make([]string, n)
	buf := make([]byte, length)
	for i := range keys {
		for j := range buf {
			buf[j] = letters[r.Intn(len(letters))]
		}
		keys[i] = string(buf)
	}
	return keys
}
