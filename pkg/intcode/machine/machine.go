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
	"fmt"
	"slices"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/collection/queue"
	"github.com/pkg/errors"
)

// Result explains why a machine stopped executing.
type Result uint8

const (
	// Running indicates the machine can continue executing.  This is only
	// ever returned by Step, since Run does not return until the machine
	// stops.
	Running Result = iota
	// AwaitingInput indicates the machine is suspended on an input
	// instruction with nothing in its input queue.  Adding input and running
	// again resumes execution at that same instruction.
	AwaitingInput
	// Halted indicates the machine executed a halt instruction.  It will not
	// execute any further instructions until reinitialised.
	Halted
)

func (r Result) String() string {
	switch r {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting input"
	case Halted:
		return "halted"
	}
	//
	return fmt.Sprintf("result%d", uint8(r))
}

// Machine is a single Intcode machine.  It owns its memory, program counter,
// relative base, a queue of pending input and a log of produced output.  A
// machine is not safe for concurrent use; the harness gives each machine a
// single owner.
type Machine struct {
	// Image from which this machine was (last) initialised
	image []int64
	// Working memory
	mem *memory.Sparse
	// Program counter
	pc int64
	// Relative base
	base int64
	// Pending input, consumed front first
	inputs *queue.Queue[int64]
	// Produced output, in production order
	outputs []int64
	// Set once a halt instruction is executed
	halted bool
	// Number of instructions executed since initialisation
	steps uint64
}

// New constructs a machine whose memory is initialised from a copy of the
// given image.
func New(image []int64) *Machine {
	var m = &Machine{}
	//
	m.Reinitialize(image)
	//
	return m
}

// Reinitialize resets this machine to run the given image from scratch.  Any
// pending input and produced output is discarded.
func (p *Machine) Reinitialize(image []int64) {
	p.image = slices.Clone(image)
	p.Reset()
}

// Reset this machine to run its current image again from scratch.
func (p *Machine) Reset() {
	p.mem = memory.NewSparse(p.image)
	p.pc = 0
	p.base = 0
	p.inputs = queue.NewQueue[int64]()
	p.outputs = nil
	p.halted = false
	p.steps = 0
}

// Clone returns an independent deep copy of this machine, including its
// memory, registers, pending input and output log.
func (p *Machine) Clone() *Machine {
	return &Machine{
		image:   p.image,
		mem:     p.mem.Clone(),
		pc:      p.pc,
		base:    p.base,
		inputs:  p.inputs.Clone(),
		outputs: slices.Clone(p.outputs),
		halted:  p.halted,
		steps:   p.steps,
	}
}

// AddInput appends a value to the back of the input queue.
func (p *Machine) AddInput(value int64) {
	p.inputs.Push(value)
}

// AddInputs appends zero or more values to the back of the input queue, in
// order.
func (p *Machine) AddInputs(values ...int64) {
	p.inputs.PushAll(values)
}

// PendingInputs returns the number of input values not yet consumed.
func (p *Machine) PendingInputs() uint {
	return p.inputs.Len()
}

// Outputs returns the values produced so far, in production order.  The
// returned slice must not be modified.
func (p *Machine) Outputs() []int64 {
	return p.outputs
}

// TakeLastOutput removes and returns the most recently produced value, or
// false if there is none.
func (p *Machine) TakeLastOutput() (int64, bool) {
	var n = len(p.outputs)
	//
	if n == 0 {
		return 0, false
	}
	//
	last := p.outputs[n-1]
	p.outputs = p.outputs[:n-1]
	//
	return last, true
}

// TakeOutputs removes and returns all values produced so far, in production
// order.
func (p *Machine) TakeOutputs() []int64 {
	var outputs = p.outputs
	//
	p.outputs = nil
	//
	return outputs
}

// Read the word held at a given address.
func (p *Machine) Read(address int64) int64 {
	return p.mem.Read(address)
}

// Write a word to a given address.  This is typically used to patch a loaded
// program before running it.
func (p *Machine) Write(address int64, value int64) {
	p.mem.Write(address, value)
}

// Output returns the word held at address zero, which is where simple programs
// leave their result.
func (p *Machine) Output() int64 {
	return p.mem.Read(0)
}

// Memory gives read access to the memory of this machine.
func (p *Machine) Memory() memory.ReadOnlyMemory {
	return p.mem
}

// Image returns the image from which this machine was initialised.  The
// returned slice must not be modified.
func (p *Machine) Image() []int64 {
	return p.image
}

// PC returns the current program counter.
func (p *Machine) PC() int64 {
	return p.pc
}

// RelativeBase returns the current relative base.
func (p *Machine) RelativeBase() int64 {
	return p.base
}

// Steps returns the number of instructions executed since this machine was
// initialised.
func (p *Machine) Steps() uint64 {
	return p.steps
}

// IsHalted checks whether this machine has executed a halt instruction.
func (p *Machine) IsHalted() bool {
	return p.halted
}

// Run executes instructions until the machine either suspends for input or
// halts, and reports which.  This never blocks: when input is needed, the
// caller must add some and run again, at which point execution resumes exactly
// at the pending input instruction.  Running a halted machine does nothing.
//
// Decoding and addressing errors are fatal.  If one occurs, the program
// counter is left pointing at the offending instruction.
func (p *Machine) Run() (Result, error) {
	for {
		if r, err := p.Step(); err != nil || r != Running {
			return r, err
		}
	}
}

// Step executes at most one instruction, returning Running if the machine can
// continue.
func (p *Machine) Step() (result Result, err error) {
	defer func() {
		// Addressing errors surface as panics from memory
		if e := recover(); e != nil {
			cause, ok := e.(error)
			if !ok || !errors.Is(cause, memory.ErrNegativeAddress) {
				panic(e)
			}
			//
			result, err = Running, errors.Wrapf(cause, "pc=%d, rb=%d", p.pc, p.base)
		}
	}()
	//
	if p.halted {
		return Halted, nil
	}
	//
	insn, err := instruction.Decode(p.mem, p.pc)
	if err != nil {
		return Running, errors.Wrapf(err, "pc=%d", p.pc)
	}
	//
	return p.execute(insn), nil
}
