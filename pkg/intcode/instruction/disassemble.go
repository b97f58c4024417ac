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
	"io"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Disassemble writes a listing of the memory range [from, to) to the given
// writer, one instruction per line.  Words which do not decode to a valid
// instruction are listed as data, and decoding resumes at the next word.  Since
// Intcode freely mixes code and data, the listing is only a best effort.
func Disassemble(mem memory.ReadOnlyMemory, from int64, to int64, w io.Writer) error {
	for pc := from; pc < to; {
		var (
			insn, err = Decode(mem, pc)
			line      string
			width     = int64(1)
		)
		//
		if err != nil || pc+insn.Width() > to {
			line = fmt.Sprintf("data %d", mem.Read(pc))
		} else {
			line = insn.String()
			width = insn.Width()
		}
		//
		if _, err := fmt.Fprintf(w, "%8d\t%s\n", pc, line); err != nil {
			return err
		}
		//
		pc += width
	}
	//
	return nil
}
