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
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Mode determines how the raw value of a parameter maps to the value it
// denotes.
type Mode uint8

const (
	// Position mode parameters hold the address of their value.
	Position Mode = 0
	// Immediate mode parameters are their value.  They cannot be written.
	Immediate Mode = 1
	// Relative mode parameters hold an address offset from the relative base.
	Relative Mode = 2
)

// IsValid determines whether this is a recognised addressing mode.
func (m Mode) IsValid() bool {
	return m <= Relative
}

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	//
	return fmt.Sprintf("mode%d", uint8(m))
}

// Parameter is a single decoded operand of an instruction: an addressing mode
// together with the raw word which followed the opcode.
type Parameter struct {
	Mode  Mode
	Value int64
}

// Pos constructs a position mode parameter.
func Pos(address int64) Parameter {
	return Parameter{Position, address}
}

// Imm constructs an immediate mode parameter.
func Imm(value int64) Parameter {
	return Parameter{Immediate, value}
}

// Rel constructs a relative mode parameter.
func Rel(offset int64) Parameter {
	return Parameter{Relative, offset}
}

// Resolve returns the effective value of this parameter, given the memory it
// reads from and the current relative base.
func (p Parameter) Resolve(mem memory.ReadOnlyMemory, base int64) int64 {
	switch p.Mode {
	case Immediate:
		return p.Value
	case Relative:
		return mem.Read(p.Value + base)
	default:
		return mem.Read(p.Value)
	}
}

// Address returns the effective address written through this parameter, given
// the current relative base.  Decoding guarantees a write target is never in
// immediate mode.
func (p Parameter) Address(base int64) int64 {
	switch p.Mode {
	case Relative:
		return p.Value + base
	case Position:
		return p.Value
	default:
		panic("immediate mode parameter has no address")
	}
}

func (p Parameter) String() string {
	switch p.Mode {
	case Immediate:
		return fmt.Sprintf("%d", p.Value)
	case Relative:
		if p.Value < 0 {
			return fmt.Sprintf("[rb%d]", p.Value)
		}
		//
		return fmt.Sprintf("[rb+%d]", p.Value)
	default:
		return fmt.Sprintf("[%d]", p.Value)
	}
}
