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
package program

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
)

func Test_Parse_01(t *testing.T) {
	check_Parse(t, "1,9,10,3,2,3,11,0,99,30,40,50", []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})
}

func Test_Parse_02(t *testing.T) {
	check_Parse(t, " 104, -1125899906842624 ,\n99,\n", []int64{104, -1125899906842624, 99})
}

func Test_Parse_03(t *testing.T) {
	check_Parse(t, "42", []int64{42})
}

func Test_Parse_Invalid_01(t *testing.T) {
	for _, text := range []string{"", "1,,2", "1,x,2", "99999999999999999999"} {
		if _, err := Parse(text); err == nil {
			t.Errorf("expected error parsing %q", text)
		}
	}
}

func Test_Format_01(t *testing.T) {
	var image = []int64{1002, 4, 3, 4, -33}
	//
	if text := Format(image); text != "1002,4,3,4,-33" {
		t.Errorf("unexpected text %q", text)
	}
}

func Test_File_01(t *testing.T) {
	check_File(t, "program.txt")
}

func Test_File_02(t *testing.T) {
	check_File(t, "program.txt.zst")
}

func check_Parse(t *testing.T, text string, expected []int64) {
	t.Helper()
	//
	if actual, err := Parse(text); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if !slices.Equal(actual, expected) {
		t.Errorf("unexpected image %v", actual)
	}
}

func check_File(t *testing.T, name string) {
	t.Helper()
	//
	var (
		path  = filepath.Join(t.TempDir(), name)
		image = []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	)
	//
	if err := WriteFile(path, image); err != nil {
		t.Fatal(err)
	}
	//
	if actual, err := ReadFile(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if !slices.Equal(actual, image) {
		t.Errorf("unexpected image %v", actual)
	}
}

func Test_Samples_01(t *testing.T) {
	var m = machine.New(Quine())
	//
	if result, err := m.Run(); err != nil || result != machine.Halted {
		t.Errorf("unexpected result %s (%v)", result, err)
	} else if !slices.Equal(m.Outputs(), Quine()) {
		t.Errorf("unexpected outputs %v", m.Outputs())
	}
}

func Test_Samples_02(t *testing.T) {
	var m = machine.New(Echo())
	//
	m.AddInputs(3, -1, 7)
	//
	if result, err := m.Run(); err != nil || result != machine.AwaitingInput {
		t.Errorf("unexpected result %s (%v)", result, err)
	} else if !slices.Equal(m.Outputs(), []int64{3, -1, 7}) {
		t.Errorf("unexpected outputs %v", m.Outputs())
	}
}

func Test_Samples_03(t *testing.T) {
	// A single node ring sends its token to itself
	var m = machine.New(Ring(1, 2))
	//
	m.AddInputs(0)
	//
	if _, err := m.Run(); err != nil {
		t.Fatal(err)
	} else if out := m.TakeOutputs(); !slices.Equal(out, []int64{0, 2, 0}) {
		t.Errorf("unexpected outputs %v", out)
	}
	// Deliver token back
	m.AddInputs(2, 0)
	//
	if _, err := m.Run(); err != nil {
		t.Fatal(err)
	} else if out := m.TakeOutputs(); !slices.Equal(out, []int64{0, 1, 1}) {
		t.Errorf("unexpected outputs %v", out)
	}
	//
	m.AddInputs(0, 2)
	//
	if _, err := m.Run(); err != nil {
		t.Fatal(err)
	} else if out := m.TakeOutputs(); !slices.Equal(out, []int64{255, 0, 2}) {
		t.Errorf("unexpected outputs %v", out)
	}
}
