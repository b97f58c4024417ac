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

import "fmt"

// OpCode identifies an operation within the fixed Intcode instruction set.  The
// numeric value of each opcode matches its encoding in the low two decimal
// digits of an instruction word.
type OpCode uint8

// The complete Intcode instruction set.
const (
	// Add writes p0 + p1 to p2.
	Add OpCode = 1
	// Multiply writes p0 * p1 to p2.
	Multiply OpCode = 2
	// Input pops the next pending input into p0, or suspends the machine.
	Input OpCode = 3
	// Output appends p0 to the output log.
	Output OpCode = 4
	// JumpIfTrue sets the program counter to p1 when p0 is non-zero.
	JumpIfTrue OpCode = 5
	// JumpIfFalse sets the program counter to p1 when p0 is zero.
	JumpIfFalse OpCode = 6
	// LessThan writes 1 to p2 if p0 < p1, and 0 otherwise.
	LessThan OpCode = 7
	// Equals writes 1 to p2 if p0 == p1, and 0 otherwise.
	Equals OpCode = 8
	// AdjustRelativeBase adds p0 to the relative base.
	AdjustRelativeBase OpCode = 9
	// Halt stops the machine.
	Halt OpCode = 99
)

// MaxArity is the largest number of parameters taken by any opcode.
const MaxArity = 3

// noTarget marks an opcode which writes nothing to memory.
const noTarget = -1

// opInfo describes the static properties of an opcode.
type opInfo struct {
	mnemonic string
	arity    uint
	// Index of the parameter written by this opcode (or noTarget)
	target int
}

// opcodes is the arity table for the instruction set.  Any opcode not present
// here is invalid.
var opcodes = map[OpCode]opInfo{
	Add:                {"add", 3, 2},
	Multiply:           {"mul", 3, 2},
	Input:              {"in", 1, 0},
	Output:             {"out", 1, noTarget},
	JumpIfTrue:         {"jnz", 2, noTarget},
	JumpIfFalse:        {"jz", 2, noTarget},
	LessThan:           {"lt", 3, 2},
	Equals:             {"eq", 3, 2},
	AdjustRelativeBase: {"arb", 1, noTarget},
	Halt:               {"halt", 0, noTarget},
}

// OpCodes returns every valid opcode, in encoding order.
func OpCodes() []OpCode {
	return []OpCode{Add, Multiply, Input, Output, JumpIfTrue, JumpIfFalse, LessThan, Equals,
		AdjustRelativeBase, Halt}
}

// IsValid determines whether this is a recognised opcode.
func (op OpCode) IsValid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of parameters which follow this opcode.
func (op OpCode) Arity() uint {
	return opcodes[op].arity
}

// Target returns the index of the parameter this opcode writes through, and
// false if it writes nothing.
func (op OpCode) Target() (uint, bool) {
	var info = opcodes[op]
	//
	if info.target == noTarget || !op.IsValid() {
		return 0, false
	}
	//
	return uint(info.target), true
}

// Width returns the number of words occupied by an instruction with this
// opcode, which is also the amount by which the program counter advances after
// executing it (unless it jumps, suspends or halts).
func (op OpCode) Width() int64 {
	return 1 + int64(op.Arity())
}

func (op OpCode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.mnemonic
	}
	//
	return fmt.Sprintf("op%d", uint8(op))
}
