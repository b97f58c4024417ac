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
package ascii

import (
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
)

func Test_Encode_01(t *testing.T) {
	check_Encode(t, "NOT A J", []int64{78, 79, 84, 32, 65, 32, 74, 10})
}

func Test_Encode_02(t *testing.T) {
	check_Encode(t, "WALK\r\n", []int64{87, 65, 76, 75, 10})
}

func Test_Encode_03(t *testing.T) {
	check_Encode(t, "", []int64{10})
}

func Test_Encode_04(t *testing.T) {
	if _, ok := Encode("café"); ok {
		t.Errorf("expected non-ASCII line to be rejected")
	}
}

func Test_Decode_01(t *testing.T) {
	text, others := Decode([]int64{35, 46, 35, 10, 19355345})
	//
	if text != "#.#\n" {
		t.Errorf("unexpected text %q", text)
	} else if !slices.Equal(others, []int64{19355345}) {
		t.Errorf("unexpected values %v", others)
	}
}

func Test_Machine_01(t *testing.T) {
	// Echo input characters until a newline, shifting each up by one
	var m = machine.New([]int64{3, 20, 1008, 20, 10, 21, 1005, 21, 18, 1001, 20, 1, 20, 4, 20, 1105, 1, 0, 99, 0, 0, 0})
	//
	values, _ := Encode("HAL")
	m.AddInputs(values...)
	//
	if result, err := m.Run(); err != nil || result != machine.Halted {
		t.Fatalf("unexpected result %s (%v)", result, err)
	}
	//
	if text, _ := Decode(m.TakeOutputs()); text != "IBM" {
		t.Errorf("unexpected text %q", text)
	}
}

func check_Encode(t *testing.T, line string, expected []int64) {
	t.Helper()
	//
	if actual, ok := Encode(line); !ok {
		t.Errorf("unexpected encoding failure")
	} else if !slices.Equal(actual, expected) {
		t.Errorf("unexpected values %v", actual)
	}
}
