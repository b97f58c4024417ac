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
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownOpCode signals an instruction word whose low two digits do not
	// name an opcode.
	ErrUnknownOpCode = errors.New("unknown opcode")
	// ErrUnknownMode signals a parameter mode digit other than 0, 1 or 2.
	ErrUnknownMode = errors.New("unknown parameter mode")
	// ErrImmediateWrite signals an instruction whose write target parameter is
	// in immediate mode, and hence has no address to write.
	ErrImmediateWrite = errors.New("immediate mode write target")
)

// Instruction is a single decoded Intcode instruction.  Instructions are
// ephemeral: the machine decodes one afresh from memory on every cycle, since
// programs are free to modify their own code.
type Instruction struct {
	// Op identifies the operation performed.
	Op OpCode
	// Only the first Op.Arity() parameters are meaningful.
	params [MaxArity]Parameter
}

// New constructs an instruction from an opcode and its parameters.  This does
// not check the parameters are well-formed, hence the result should be
// validated before it is executed.
func New(op OpCode, params ...Parameter) Instruction {
	var insn = Instruction{Op: op}
	//
	copy(insn.params[:], params)
	//
	return insn
}

// Decode the instruction held in memory at a given address.  Mode digits are
// read from the hundreds place upwards, one per parameter, with absent digits
// meaning position mode.  Digits beyond the arity of the opcode are ignored.
func Decode(mem memory.ReadOnlyMemory, pc int64) (Instruction, error) {
	var (
		word  = mem.Read(pc)
		op    = OpCode(word % 100)
		modes = word / 100
		insn  = Instruction{Op: op}
	)
	//
	if word < 0 || !op.IsValid() {
		return insn, errors.Wrapf(ErrUnknownOpCode, "word %d at address %d", word, pc)
	}
	//
	for i := range op.Arity() {
		mode := Mode(modes % 10)
		modes /= 10
		//
		if !mode.IsValid() {
			return insn, errors.Wrapf(ErrUnknownMode, "word %d at address %d (parameter %d)", word, pc, i)
		}
		//
		insn.params[i] = Parameter{mode, mem.Read(pc + 1 + int64(i))}
	}
	//
	return insn, insn.Validate()
}

// Validate that this instruction is well-formed.  That is, it has a recognised
// opcode, recognised modes and does not write through an immediate parameter.
func (p Instruction) Validate() error {
	if !p.Op.IsValid() {
		return errors.Wrapf(ErrUnknownOpCode, "opcode %d", uint8(p.Op))
	}
	//
	for i, param := range p.Params() {
		if !param.Mode.IsValid() {
			return errors.Wrapf(ErrUnknownMode, "%s (parameter %d)", p.Op, i)
		}
	}
	//
	if target, ok := p.Op.Target(); ok && p.params[target].Mode == Immediate {
		return errors.Wrapf(ErrImmediateWrite, "%s (parameter %d)", p.Op, target)
	}
	//
	return nil
}

// Params returns the parameters of this instruction.
func (p Instruction) Params() []Parameter {
	return p.params[:p.Op.Arity()]
}

// Param returns the ith parameter of this instruction.
func (p Instruction) Param(i uint) Parameter {
	return p.params[i]
}

// Width returns the number of words this instruction occupies.
func (p Instruction) Width() int64 {
	return p.Op.Width()
}

// Encode this instruction as a sequence of memory words.  This is the inverse
// of Decode.
func (p Instruction) Encode() []int64 {
	var (
		words = make([]int64, 1, p.Width())
		scale = int64(100)
		word  = int64(p.Op)
	)
	//
	for _, param := range p.Params() {
		word += int64(param.Mode) * scale
		scale *= 10
		//
		words = append(words, param.Value)
	}
	//
	words[0] = word
	//
	return words
}

func (p Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Op.String())
	//
	for i, param := range p.Params() {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(param.String())
	}
	//
	return builder.String()
}

// Assemble encodes a sequence of instructions into a contiguous program image,
// with the first instruction at address zero.  Any data words should be
// appended by the caller.
func Assemble(insns ...Instruction) []int64 {
	var words []int64
	//
	for _, insn := range insns {
		words = append(words, insn.Encode()...)
	}
	//
	return words
}
