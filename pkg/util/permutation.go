// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import "iter"

// Permutations enumerates every ordering of the given items, using Heap's
// algorithm.  Each permutation yielded is a fresh slice, which the caller may
// keep.  The items themselves are not modified.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var (
			n     = len(items)
			perm  = make([]T, n)
			state = make([]int, n)
		)
		//
		copy(perm, items)
		//
		if !yield(clone(perm)) {
			return
		}
		//
		for i := 1; i < n; {
			if state[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[state[i]], perm[i] = perm[i], perm[state[i]]
				}
				//
				if !yield(clone(perm)) {
					return
				}
				//
				state[i]++
				i = 1
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

func clone[T any](items []T) []T {
	var result = make([]T, len(items))
	//
	copy(result, items)
	//
	return result
}
