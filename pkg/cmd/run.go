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
	"io"
	"os"

	"github.com/consensys/go-intcode/pkg/intcode/ascii"
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "run an Intcode program.",
	Long: `Run an Intcode program, feeding it the given inputs and printing whatever it outputs.  When
	the program needs more input than was given, it can either be prompted for interactively, or the machine
	can be saved as a checkpoint and resumed later.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			m       *machine.Machine
			restore = GetString(cmd, "restore")
			save    = GetString(cmd, "save")
			stats   = util.NewPerfStats()
		)
		//
		switch {
		case restore != "":
			m = readCheckPointFile(restore)
		case len(args) == 1:
			m = machine.New(ReadProgramFile(args[0]))
		default:
			fmt.Println("expected a program file (or --restore)")
			os.Exit(2)
		}
		//
		ApplyPatches(m, GetStringArray(cmd, "set"))
		//
		r := &runner{
			m:           m,
			ascii:       GetFlag(cmd, "ascii"),
			interactive: GetFlag(cmd, "interactive"),
			out:         os.Stdout,
		}
		// Supply initial inputs
		r.m.AddInputs(GetIntArray(cmd, "input")...)
		//
		for _, line := range GetStringArray(cmd, "line") {
			exitOnError(r.addLine(line), 2)
		}
		//
		result := r.run()
		//
		stats.Log("Running program", m.Steps())
		//
		if result == machine.AwaitingInput {
			if save == "" {
				log.Errorf("program awaiting input at pc=%d", m.PC())
				os.Exit(3)
			}
			//
			writeCheckPointFile(m, save)
		}
		//
		if GetFlag(cmd, "show-memory") {
			fmt.Printf("[0] = %d\n", m.Output())
		}
	},
}

// runner drives a machine, printing its output as it goes.
type runner struct {
	m           *machine.Machine
	ascii       bool
	interactive bool
	out         io.Writer
}

// Run the machine until it either halts, or suspends for input which cannot be
// provided.
func (p *runner) run() machine.Result {
	var console *termio.Console
	//
	if p.interactive {
		var err error
		//
		console, err = termio.NewConsole("> ")
		exitOnError(err, 2)
		//
		defer console.Close()
		//
		p.out = console
	}
	//
	for {
		result, err := p.m.Run()
		//
		p.flush()
		//
		if err != nil {
			if console != nil {
				_ = console.Close()
			}
			//
			exitOnError(err, 4)
		} else if result == machine.Halted || console == nil {
			return result
		}
		//
		line, err := console.ReadLine()
		if err == io.EOF {
			return result
		} else if err != nil {
			log.Error(err)
			return result
		}
		//
		if err := p.addLine(line); err != nil {
			fmt.Fprintln(p.out, err)
		}
	}
}

// Add a line of input to the machine, either as ASCII or as comma separated
// values.
func (p *runner) addLine(line string) error {
	if p.ascii {
		values, ok := ascii.Encode(line)
		if !ok {
			return fmt.Errorf("line is not ASCII: %q", line)
		}
		//
		p.m.AddInputs(values...)
		//
		return nil
	}
	//
	values, err := program.Parse(line)
	if err != nil {
		return err
	}
	//
	p.m.AddInputs(values...)
	//
	return nil
}

// Print any output produced since the last flush.
func (p *runner) flush() {
	var outputs = p.m.TakeOutputs()
	//
	if !p.ascii {
		for _, v := range outputs {
			fmt.Fprintln(p.out, v)
		}
		//
		return
	}
	//
	text, others := ascii.Decode(outputs)
	fmt.Fprint(p.out, text)
	//
	for _, v := range others {
		fmt.Fprintln(p.out, v)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int64SliceP("input", "i", nil, "input values to supply (comma separated)")
	runCmd.Flags().StringArrayP("line", "l", nil, "line of input to supply (repeatable)")
	runCmd.Flags().StringArray("set", nil, "patch memory before running (address=value)")
	runCmd.Flags().Bool("ascii", false, "treat input and output as ASCII text")
	runCmd.Flags().Bool("interactive", false, "prompt for more input when needed")
	runCmd.Flags().Bool("show-memory", false, "print value at address 0 afterwards")
	runCmd.Flags().String("save", "", "save checkpoint to file when awaiting input")
	runCmd.Flags().String("restore", "", "resume from a checkpoint file")
}
