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
package test

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/consensys/go-intcode/pkg/intcode/harness"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/program"
)

// Determines the (relative) location of the test directory.  That is where the
// sample programs and configuration files are found.
const TestDir = "../../testdata"

// ===================================================================
// Programs
// ===================================================================

func Test_Quine(t *testing.T) {
	var image = ReadProgram(t, "quine")
	//
	CheckOutputs(t, image, nil, image)
}

func Test_Echo(t *testing.T) {
	var m = machine.New(ReadProgram(t, "echo"))
	//
	m.AddInputs(1, 2, 3)
	//
	if result, err := m.Run(); err != nil || result != machine.AwaitingInput {
		t.Errorf("unexpected result %s (%v)", result, err)
	} else if !slices.Equal(m.Outputs(), []int64{1, 2, 3}) {
		t.Errorf("unexpected outputs %v", m.Outputs())
	}
}

func Test_Compare(t *testing.T) {
	var image = ReadProgram(t, "compare")
	//
	for input := int64(0); input < 16; input++ {
		var expected = int64(1000)
		//
		if input < 8 {
			expected = 999
		} else if input > 8 {
			expected = 1001
		}
		//
		CheckOutputs(t, image, []int64{input}, []int64{expected})
	}
}

func Test_Samples(t *testing.T) {
	// Checked in samples are up to date with their generators
	CheckSample(t, "quine", program.Quine())
	CheckSample(t, "echo", program.Echo())
	CheckSample(t, "ring", program.Ring(50, 100))
	CheckSample(t, "saturate", program.Saturate(3))
}

// ===================================================================
// Harness
// ===================================================================

func Test_Amplifier(t *testing.T) {
	best, err := harness.SearchChain(ReadProgram(t, "amplifier"), []int64{0, 1, 2, 3, 4}, 0)
	//
	if err != nil {
		t.Fatal(err)
	} else if best.Signal != 65210 {
		t.Errorf("unexpected signal %d", best.Signal)
	}
}

func Test_Feedback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	//
	best, err := harness.SearchFeedbackLoop(ctx, ReadProgram(t, "feedback"), []int64{5, 6, 7, 8, 9}, 0)
	//
	if err != nil {
		t.Fatal(err)
	} else if best.Signal != 18216 {
		t.Errorf("unexpected signal %d", best.Signal)
	}
}

func Test_Network(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	//
	config, err := harness.LoadConfig(fmt.Sprintf("%s/network.toml", TestDir))
	if err != nil {
		t.Fatal(err)
	}
	//
	network, err := harness.NewNetwork(ReadProgram(t, "ring"), config)
	if err != nil {
		t.Fatal(err)
	}
	//
	result, err := network.Run(ctx)
	if err != nil {
		t.Fatal(err)
	} else if result.FirstCaptured.Y != 100 || result.Converged != 100 {
		t.Errorf("unexpected result %v", result)
	}
}

func Test_Network_Saturate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	//
	config, err := harness.LoadConfig(fmt.Sprintf("%s/network.toml", TestDir))
	if err != nil {
		t.Fatal(err)
	}
	//
	network, err := harness.NewNetwork(ReadProgram(t, "saturate"), config)
	if err != nil {
		t.Fatal(err)
	}
	//
	result, err := network.Run(ctx)
	if err != nil {
		t.Fatal(err)
	} else if result.Converged != 3 || result.IdleBreaks != 4 {
		t.Errorf("unexpected result %v", result)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// ReadProgram reads a sample program from the test directory.
func ReadProgram(t *testing.T, name string) []int64 {
	t.Helper()
	//
	image, err := program.ReadFile(fmt.Sprintf("%s/%s.txt", TestDir, name))
	if err != nil {
		t.Fatal(err)
	}
	//
	return image
}

// CheckOutputs runs a program to completion on the given inputs, and checks
// the outputs produced.
func CheckOutputs(t *testing.T, image []int64, inputs []int64, expected []int64) {
	t.Helper()
	//
	var m = machine.New(image)
	//
	m.AddInputs(inputs...)
	//
	if result, err := m.Run(); err != nil || result != machine.Halted {
		t.Errorf("unexpected result %s (%v)", result, err)
	} else if !slices.Equal(m.Outputs(), expected) {
		t.Errorf("unexpected outputs %v (expected %v)", m.Outputs(), expected)
	}
}

// CheckSample checks a sample program in the test directory matches its
// generated form.
func CheckSample(t *testing.T, name string, expected []int64) {
	t.Helper()
	//
	if actual := ReadProgram(t, name); !slices.Equal(actual, expected) {
		t.Errorf("sample %s out of date", name)
	}
}
