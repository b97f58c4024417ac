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
package memory

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func Test_Sparse_01(t *testing.T) {
	mem := NewSparse([]int64{1, 2, 3})
	//
	for i, v := range []int64{1, 2, 3, 0, 0} {
		if r := mem.Read(int64(i)); r != v {
			t.Errorf("unexpected value at %d: %d (expected %d)", i, r, v)
		}
	}
	// Far beyond the image reads zero without growing anything
	if r := mem.Read(1 << 40); r != 0 {
		t.Errorf("unexpected value %d", r)
	}
	//
	if mem.Len() != 3 {
		t.Errorf("unexpected length %d", mem.Len())
	}
}

func Test_Sparse_02(t *testing.T) {
	image := []int64{1, 2, 3}
	mem := NewSparse(image)
	mem.Write(1, 20)
	mem.Write(1000, -7)
	//
	if image[1] != 2 {
		t.Errorf("initial image modified")
	}
	//
	if mem.Read(1) != 20 || mem.Read(1000) != -7 || mem.Read(999) != 0 {
		t.Errorf("unexpected contents")
	}
	//
	if mem.Len() != 1001 {
		t.Errorf("unexpected length %d", mem.Len())
	}
	//
	contents := mem.Contents()
	if len(contents) != 1001 || contents[1000] != -7 || !slices.Equal(contents[:3], []int64{1, 20, 3}) {
		t.Errorf("unexpected dense contents")
	}
}

func Test_Sparse_03(t *testing.T) {
	mem := NewSparse([]int64{9})
	mem.Write(5, 5)
	clone := mem.Clone()
	clone.Write(0, 1)
	clone.Write(5, 6)
	//
	if mem.Read(0) != 9 || mem.Read(5) != 5 {
		t.Errorf("clone shares state with original")
	}
	//
	copied := NewSparseFrom(clone.Prefix(), clone.Overlay())
	if !slices.Equal(copied.Contents(), clone.Contents()) {
		t.Errorf("unexpected reconstruction %v", copied.Contents())
	}
}

func Test_Sparse_04(t *testing.T) {
	check_NegativeAddress(t, func(m *Sparse) { m.Read(-1) })
	check_NegativeAddress(t, func(m *Sparse) { m.Write(-5, 1) })
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_NegativeAddress(t *testing.T, fn func(*Sparse)) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		//
		if !ok || !errors.Is(err, ErrNegativeAddress) {
			t.Errorf("expected negative address panic, got %v", r)
		}
	}()
	//
	fn(NewSparse(nil))
}
