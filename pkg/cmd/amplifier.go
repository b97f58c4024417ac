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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/consensys/go-intcode/pkg/intcode/harness"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain [flags] program_file",
	Short: "run a program as a chain of amplifiers.",
	Long: `Run one copy of a program per phase, in sequence, where each copy receives its phase and then
	the signal output by the previous copy.  The final signal is printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			image  = ReadProgramFile(args[0])
			phases = GetIntArray(cmd, "phases")
			seed   = GetInt(cmd, "seed")
		)
		//
		if GetFlag(cmd, "search") {
			best, err := harness.SearchChain(image, phases, seed)
			exitOnError(err, 4)
			printBest(best)
		} else {
			output, err := harness.Chain(image, phases, seed)
			exitOnError(err, 4)
			fmt.Println(output)
		}
	},
}

var loopCmd = &cobra.Command{
	Use:   "loop [flags] program_file",
	Short: "run a program as a feedback loop of amplifiers.",
	Long: `Run one copy of a program per phase, concurrently, connected in a ring so that each copy
	receives the signals output by the one before it.  Once every copy has halted, the last signal output
	by the final copy is printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			image  = ReadProgramFile(args[0])
			phases = GetIntArray(cmd, "phases")
			seed   = GetInt(cmd, "seed")
		)
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		//
		if GetFlag(cmd, "search") {
			best, err := harness.SearchFeedbackLoop(ctx, image, phases, seed)
			exitOnError(err, 4)
			printBest(best)
		} else {
			output, err := harness.FeedbackLoop(ctx, image, phases, seed)
			exitOnError(err, 4)
			fmt.Println(output)
		}
	},
}

func printBest(best harness.Best) {
	log.Debugf("best phases %v", best.Phases)
	//
	fmt.Printf("%d (phases", best.Signal)
	//
	for _, phase := range best.Phases {
		fmt.Printf(" %d", phase)
	}
	//
	fmt.Println(")")
}

//nolint:errcheck
func init() {
	for _, cmd := range []*cobra.Command{chainCmd, loopCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().Int64SliceP("phases", "p", nil, "phase of each amplifier (comma separated)")
		cmd.Flags().Int64("seed", 0, "initial signal given to the first amplifier")
		cmd.Flags().Bool("search", false, "try every ordering of the phases, reporting the strongest signal")
		cmd.MarkFlagRequired("phases")
	}
}
