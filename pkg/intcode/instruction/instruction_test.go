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
package instruction

import (
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/pkg/errors"
)

// ===================================================================
// Decoding
// ===================================================================

func Test_Decode_01(t *testing.T) {
	// 1002 => multiply with modes (position, immediate, position)
	check_Decode(t, []int64{1002, 4, 3, 4, 33}, New(Multiply, Pos(4), Imm(3), Pos(4)))
}

func Test_Decode_02(t *testing.T) {
	check_Decode(t, []int64{99}, New(Halt))
}

func Test_Decode_03(t *testing.T) {
	check_Decode(t, []int64{203, -5}, New(Input, Rel(-5)))
}

func Test_Decode_04(t *testing.T) {
	check_Decode(t, []int64{21107, 1, 2, 3}, New(LessThan, Imm(1), Imm(2), Rel(3)))
}

func Test_Decode_05(t *testing.T) {
	// Parameters are read even when they lie beyond the loaded image.
	check_Decode(t, []int64{1105, 1}, New(JumpIfTrue, Imm(1), Imm(0)))
}

func Test_Decode_06(t *testing.T) {
	// Mode digits beyond the arity are ignored.
	check_Decode(t, []int64{11104, 7}, New(Output, Imm(7)))
}

func Test_Decode_Invalid_01(t *testing.T) {
	check_DecodeError(t, []int64{0}, ErrUnknownOpCode)
	check_DecodeError(t, []int64{10}, ErrUnknownOpCode)
	check_DecodeError(t, []int64{98}, ErrUnknownOpCode)
	check_DecodeError(t, []int64{-1}, ErrUnknownOpCode)
}

func Test_Decode_Invalid_02(t *testing.T) {
	check_DecodeError(t, []int64{304, 0}, ErrUnknownMode)
	check_DecodeError(t, []int64{3901, 0, 0, 0}, ErrUnknownMode)
}

func Test_Decode_Invalid_03(t *testing.T) {
	check_DecodeError(t, []int64{103, 0}, ErrImmediateWrite)
	check_DecodeError(t, []int64{11101, 1, 2, 3}, ErrImmediateWrite)
	check_DecodeError(t, []int64{10008, 1, 2, 3}, ErrImmediateWrite)
}

// ===================================================================
// Encoding
// ===================================================================

func Test_Encode_01(t *testing.T) {
	insn := New(Multiply, Pos(4), Imm(3), Pos(4))
	//
	if words := insn.Encode(); !slices.Equal(words, []int64{1002, 4, 3, 4}) {
		t.Errorf("unexpected encoding %v", words)
	}
}

func Test_Encode_02(t *testing.T) {
	// Encode then decode every opcode in every legal mode combination.
	modes := []Mode{Position, Immediate, Relative}
	//
	for _, op := range OpCodes() {
		for _, m := range modes {
			params := make([]Parameter, op.Arity())
			//
			for i := range params {
				params[i] = Parameter{m, int64(i + 1)}
			}
			//
			if target, ok := op.Target(); ok && m == Immediate {
				params[target].Mode = Position
			}
			//
			check_Decode(t, New(op, params...).Encode(), New(op, params...))
		}
	}
}

func Test_Assemble_01(t *testing.T) {
	words := Assemble(New(Input, Pos(9)), New(Output, Rel(-1)), New(Halt))
	//
	if !slices.Equal(words, []int64{3, 9, 204, -1, 99}) {
		t.Errorf("unexpected program %v", words)
	}
}

// ===================================================================
// Resolving
// ===================================================================

func Test_Resolve_01(t *testing.T) {
	mem := memory.NewSparse([]int64{10, 20, 30, 40})
	//
	if v := Pos(2).Resolve(mem, 1); v != 30 {
		t.Errorf("unexpected position value %d", v)
	}
	//
	if v := Imm(2).Resolve(mem, 1); v != 2 {
		t.Errorf("unexpected immediate value %d", v)
	}
	//
	if v := Rel(2).Resolve(mem, 1); v != 40 {
		t.Errorf("unexpected relative value %d", v)
	}
	//
	if v := Rel(-1).Resolve(mem, 1); v != 10 {
		t.Errorf("unexpected relative value %d", v)
	}
	//
	if a := Rel(5).Address(100); a != 105 {
		t.Errorf("unexpected relative address %d", a)
	}
}

// ===================================================================
// Disassembly
// ===================================================================

func Test_Disassemble_01(t *testing.T) {
	var (
		builder strings.Builder
		mem     = memory.NewSparse([]int64{1002, 4, 3, 4, 33, 204, -2, 99})
	)
	//
	if err := Disassemble(mem, 0, 8, &builder); err != nil {
		t.Fatal(err)
	}
	//
	expected := []string{"mul [4], 3, [4]", "data 33", "out [rb-2]", "halt"}
	lines := strings.Split(strings.TrimSpace(builder.String()), "\n")
	//
	if len(lines) != len(expected) {
		t.Fatalf("unexpected listing:\n%s", builder.String())
	}
	//
	for i, line := range lines {
		if !strings.HasSuffix(line, "\t"+expected[i]) {
			t.Errorf("unexpected line %q (expected %q)", line, expected[i])
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Decode(t *testing.T, words []int64, expected Instruction) {
	t.Helper()
	//
	insn, err := Decode(memory.NewSparse(words), 0)
	//
	if err != nil {
		t.Errorf("decoding %v failed: %v", words, err)
	} else if insn.Op != expected.Op || !slices.Equal(insn.Params(), expected.Params()) {
		t.Errorf("decoding %v: got %s, expected %s", words, insn, expected)
	}
}

func check_DecodeError(t *testing.T, words []int64, expected error) {
	t.Helper()
	//
	if insn, err := Decode(memory.NewSparse(words), 0); !errors.Is(err, expected) {
		t.Errorf("decoding %v: got %s (%v), expected %v", words, insn, err, expected)
	}
}
