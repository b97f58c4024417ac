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
package harness

import (
	"context"
	"math"

	"github.com/consensys/go-intcode/pkg/util"
	"github.com/pkg/errors"
)

// Best is the strongest signal found when searching over phase orderings.
type Best struct {
	Phases []int64
	Signal int64
}

// SearchChain tries every ordering of the given phases with Chain, returning
// the one producing the strongest signal.
func SearchChain(program []int64, phases []int64, seed int64) (Best, error) {
	return search(phases, func(perm []int64) (int64, error) {
		return Chain(program, perm, seed)
	})
}

// SearchFeedbackLoop tries every ordering of the given phases with
// FeedbackLoop, returning the one producing the strongest signal.
func SearchFeedbackLoop(ctx context.Context, program []int64, phases []int64, seed int64) (Best, error) {
	return search(phases, func(perm []int64) (int64, error) {
		return FeedbackLoop(ctx, program, perm, seed)
	})
}

func search(phases []int64, fn func([]int64) (int64, error)) (Best, error) {
	var best = Best{nil, math.MinInt64}
	//
	for perm := range util.Permutations(phases) {
		signal, err := fn(perm)
		if err != nil {
			return best, errors.Wrapf(err, "phases %v", perm)
		}
		//
		if best.Phases == nil || signal > best.Signal {
			best = Best{perm, signal}
		}
	}
	//
	return best, nil
}
