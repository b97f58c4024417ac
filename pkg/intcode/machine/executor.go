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
package machine

import (
	"github.com/consensys/go-intcode/pkg/intcode/instruction"
)

// Execute a single decoded instruction against this machine, updating its
// program counter accordingly.  An input instruction with nothing to consume
// leaves the program counter where it is, so the instruction is re-executed
// when the machine resumes.
func (p *Machine) execute(insn instruction.Instruction) Result {
	var (
		pc   = p.pc + insn.Width()
		arg0 = insn.Param(0)
		arg1 = insn.Param(1)
		arg2 = insn.Param(2)
	)
	//
	switch insn.Op {
	case instruction.Add:
		p.store(arg2, p.load(arg0)+p.load(arg1))
	case instruction.Multiply:
		p.store(arg2, p.load(arg0)*p.load(arg1))
	case instruction.Input:
		if p.inputs.IsEmpty() {
			return AwaitingInput
		}
		//
		// Write before popping, so an addressing error leaves the input queued
		p.store(arg0, p.inputs.Peek(0))
		p.inputs.Pop()
	case instruction.Output:
		p.outputs = append(p.outputs, p.load(arg0))
	case instruction.JumpIfTrue:
		if p.load(arg0) != 0 {
			pc = p.load(arg1)
		}
	case instruction.JumpIfFalse:
		if p.load(arg0) == 0 {
			pc = p.load(arg1)
		}
	case instruction.LessThan:
		p.store(arg2, flag(p.load(arg0) < p.load(arg1)))
	case instruction.Equals:
		p.store(arg2, flag(p.load(arg0) == p.load(arg1)))
	case instruction.AdjustRelativeBase:
		p.base += p.load(arg0)
	case instruction.Halt:
		p.halted = true
		p.steps++
		//
		return Halted
	}
	//
	p.pc = pc
	p.steps++
	//
	return Running
}

func (p *Machine) load(arg instruction.Parameter) int64 {
	return arg.Resolve(p.mem, p.base)
}

func (p *Machine) store(arg instruction.Parameter, value int64) {
	p.mem.Write(arg.Address(p.base), value)
}

func flag(b bool) int64 {
	if b {
		return 1
	}
	//
	return 0
}
