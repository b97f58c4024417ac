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
	"strconv"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program_file",
	Short: "disassemble an Intcode program.",
	Long: `Disassemble an Intcode program, printing one line per instruction.  Words which cannot be
	decoded are printed as data.  Alternatively, trace the instructions actually executed when running the
	program.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			image = ReadProgramFile(args[0])
			from  = GetInt(cmd, "from")
			to    = GetInt(cmd, "to")
		)
		//
		if from < 0 {
			fmt.Println("--from cannot be negative")
			os.Exit(2)
		} else if to < 0 {
			to = int64(len(image))
		}
		//
		if GetFlag(cmd, "trace") {
			m := machine.New(image)
			ApplyPatches(m, GetStringArray(cmd, "set"))
			m.AddInputs(GetIntArray(cmd, "input")...)
			traceProgram(m, GetUint(cmd, "steps"), !GetFlag(cmd, "no-colour"))
		} else {
			m := machine.New(image)
			ApplyPatches(m, GetStringArray(cmd, "set"))
			exitOnError(instruction.Disassemble(m.Memory(), from, to, os.Stdout), 1)
		}
	},
}

// Execute a machine one instruction at a time, printing each instruction before
// it executes along with the machine's registers.
func traceProgram(m *machine.Machine, limit uint, colour bool) {
	var table = termio.NewTablePrinter(5)
	//
	header := table.AddRow("step", "pc", "rb", "instruction", "output")
	table.SetEscape(header, termio.BoldAnsiEscape())
	table.AnsiEscapes(colour && termio.IsInteractive())
	//
	for i := uint(0); i < limit; i++ {
		var (
			pc   = m.PC()
			rb   = m.RelativeBase()
			text = "???"
		)
		//
		if pc >= 0 {
			if insn, err := instruction.Decode(m.Memory(), pc); err == nil {
				text = insn.String()
			}
		}
		//
		result, err := m.Step()
		//
		var output string
		//
		if v, ok := m.TakeLastOutput(); ok {
			output = strconv.FormatInt(v, 10)
		}
		//
		row := table.AddRow(fmt.Sprintf("%d", i), fmt.Sprintf("%d", pc), fmt.Sprintf("%d", rb), text, output)
		//
		if err != nil {
			table.SetEscape(row, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
			table.AddRow("", "", "", err.Error(), "")
		} else if result == machine.AwaitingInput {
			table.SetEscape(row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
			table.AddRow("", "", "", "awaiting input", "")
		}
		//
		if err != nil || result != machine.Running {
			break
		}
	}
	//
	table.SetMaxWidth(3, termio.Width(120)/2)
	exitOnError(table.Print(os.Stdout), 1)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().Int64("from", 0, "first address to disassemble")
	disasmCmd.Flags().Int64("to", -1, "address to stop disassembling at (default end of program)")
	disasmCmd.Flags().Bool("trace", false, "trace execution rather than disassemble")
	disasmCmd.Flags().Uint("steps", 1000, "maximum number of steps to trace")
	disasmCmd.Flags().Int64SliceP("input", "i", nil, "input values to supply when tracing (comma separated)")
	disasmCmd.Flags().StringArray("set", nil, "patch memory before disassembling (address=value)")
	disasmCmd.Flags().Bool("no-colour", false, "disable colour when tracing")
}
