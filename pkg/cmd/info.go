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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [flags] file",
	Short: "summarise an Intcode program or checkpoint.",
	Long: `Summarise an Intcode program (or, with --checkpoint, a saved checkpoint), including its
	fingerprint and a breakdown of the instructions it contains.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var table = termio.NewTablePrinter(2)
		//
		if GetFlag(cmd, "checkpoint") {
			cp := readCheckPoint(args[0])
			table.AddRow("fingerprint", cp.Fingerprint.String())
			table.AddRow("words", fmt.Sprintf("%d", len(cp.Image)))
			table.AddRow("pc", fmt.Sprintf("%d", cp.PC))
			table.AddRow("relative base", fmt.Sprintf("%d", cp.RelativeBase))
			table.AddRow("steps", fmt.Sprintf("%d", cp.Steps))
			table.AddRow("halted", fmt.Sprintf("%t", cp.Halted))
			table.AddRow("pending inputs", fmt.Sprintf("%d", len(cp.Inputs)))
			table.AddRow("outputs", fmt.Sprintf("%d", len(cp.Outputs)))
			table.AddRow("extended words", fmt.Sprintf("%d", len(cp.Overlay)))
		} else {
			image := ReadProgramFile(args[0])
			table.AddRow("fingerprint", machine.FingerprintOf(image).String())
			table.AddRow("words", fmt.Sprintf("%d", len(image)))
			//
			counts := countOpCodes(memory.NewSparse(image))
			//
			for _, op := range instruction.OpCodes() {
				if n := counts[op]; n > 0 {
					table.AddRow(op.String(), fmt.Sprintf("%d", n))
				}
			}
		}
		//
		exitOnError(table.Print(os.Stdout), 1)
	},
}

// Count the instructions of each opcode encountered when decoding linearly from
// the start of the program.  Undecodable words are skipped one at a time.
func countOpCodes(mem memory.Memory) map[instruction.OpCode]uint {
	var counts = make(map[instruction.OpCode]uint)
	//
	for pc := int64(0); pc < mem.Len(); {
		insn, err := instruction.Decode(mem, pc)
		if err != nil {
			pc++
			continue
		}
		//
		counts[insn.Op]++
		pc += insn.Width()
	}
	//
	return counts
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Bool("checkpoint", false, "treat file as a checkpoint")
}
