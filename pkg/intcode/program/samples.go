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
	"github.com/consensys/go-intcode/pkg/intcode/instruction"
)

var (
	op  = instruction.New
	pos = instruction.Pos
	imm = instruction.Imm
)

// Quine returns a program which outputs a copy of itself and halts.
func Quine() []int64 {
	return []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
}

// Echo returns a program which outputs every value it reads, forever.
func Echo() []int64 {
	return instruction.Assemble(
		op(instruction.Input, pos(100)),
		op(instruction.Output, pos(100)),
		op(instruction.JumpIfTrue, imm(1), imm(0)),
	)
}

// Ring returns a network interface program for a network of the given size.
// Worker 0 starts a token which is passed from each worker to its successor,
// counting down hops in X and counting up in Y.  When the count reaches zero,
// the token goes to address 255 (i.e. the controller).  Thus, the network
// converges on the value of hops.
func Ring(size int64, hops int64) []int64 {
	const (
		addr = 66
		x    = 67
		y    = 68
		tmp  = 69
		dest = 70
	)
	//
	return instruction.Assemble(
		op(instruction.Input, pos(addr)),                       // 0
		op(instruction.JumpIfTrue, pos(addr), imm(11)),         // 2
		op(instruction.Output, imm(1%size)),                    // 5
		op(instruction.Output, imm(hops)),                      // 7
		op(instruction.Output, imm(0)),                         // 9
		op(instruction.Input, pos(x)),                          // 11
		op(instruction.Equals, pos(x), imm(-1), pos(tmp)),      // 13
		op(instruction.JumpIfTrue, pos(tmp), imm(11)),          // 17
		op(instruction.Input, pos(y)),                          // 20
		op(instruction.JumpIfTrue, pos(x), imm(34)),            // 22
		op(instruction.Output, imm(255)),                       // 25
		op(instruction.Output, imm(0)),                         // 27
		op(instruction.Output, pos(y)),                         // 29
		op(instruction.JumpIfTrue, imm(1), imm(11)),            // 31
		op(instruction.Add, pos(addr), imm(1), pos(dest)),      // 34
		op(instruction.Equals, pos(dest), imm(size), pos(tmp)), // 38
		op(instruction.JumpIfFalse, pos(tmp), imm(49)),         // 42
		op(instruction.Add, imm(0), imm(0), pos(dest)),         // 45
		op(instruction.Output, pos(dest)),                      // 49
		op(instruction.Add, pos(x), imm(-1), pos(x)),           // 51
		op(instruction.Output, pos(x)),                         // 55
		op(instruction.Add, pos(y), imm(1), pos(y)),            // 57
		op(instruction.Output, pos(y)),                         // 61
		op(instruction.JumpIfTrue, imm(1), imm(11)),            // 63
	)
}

// Saturate returns a network interface program in which worker 0 reports Y=0
// to address 255, and then answers every packet (X, Y) it receives by
// reporting min(Y+1, limit) to address 255.  Each time the network is woken the
// value grows, until it saturates at limit.  Thus, the network converges on
// limit after limit+1 idle breaks.
func Saturate(limit int64) []int64 {
	const (
		addr = 42
		x    = 43
		y    = 44
		tmp  = 45
	)
	//
	return instruction.Assemble(
		op(instruction.Input, pos(addr)),                       // 0
		op(instruction.JumpIfTrue, pos(addr), imm(11)),         // 2
		op(instruction.Output, imm(255)),                       // 5
		op(instruction.Output, imm(0)),                         // 7
		op(instruction.Output, imm(0)),                         // 9
		op(instruction.Input, pos(x)),                          // 11
		op(instruction.Equals, pos(x), imm(-1), pos(tmp)),      // 13
		op(instruction.JumpIfTrue, pos(tmp), imm(11)),          // 17
		op(instruction.Input, pos(y)),                          // 20
		op(instruction.LessThan, pos(y), imm(limit), pos(tmp)), // 22
		op(instruction.JumpIfFalse, pos(tmp), imm(33)),         // 26
		op(instruction.Add, pos(y), imm(1), pos(y)),            // 29
		op(instruction.Output, imm(255)),                       // 33
		op(instruction.Output, imm(0)),                         // 35
		op(instruction.Output, pos(y)),                         // 37
		op(instruction.JumpIfTrue, imm(1), imm(11)),            // 39
	)
}
