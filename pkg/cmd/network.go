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

var networkCmd = &cobra.Command{
	Use:   "network [flags] program_file",
	Short: "run a program on every computer of a packet network.",
	Long: `Boot a network of computers all running the same program, where each is given its network
	address and then exchanges packets with the others.  Packets sent to the controller address are
	captured and, whenever the whole network goes idle, the last one is resent to computer 0.  The run ends
	when the same value is resent twice in a row.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			image  = ReadProgramFile(args[0])
			config = readNetworkConfig(cmd)
		)
		//
		network, err := harness.NewNetwork(image, config)
		exitOnError(err, 2)
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		//
		log.Debugf("booting network of %d computers", config.Size)
		//
		result, err := network.Run(ctx)
		exitOnError(err, 4)
		//
		fmt.Printf("first captured: %s\n", result.FirstCaptured)
		fmt.Printf("converged: %d (after %d idle breaks)\n", result.Converged, result.IdleBreaks)
	},
}

// Construct the network configuration, starting from the defaults (or a given
// configuration file) and then applying any flags given explicitly.
func readNetworkConfig(cmd *cobra.Command) harness.Config {
	var (
		config = harness.DefaultConfig()
		flags  = cmd.Flags()
		err    error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		config, err = harness.LoadConfig(filename)
		exitOnError(err, 2)
	}
	//
	if flags.Changed("size") {
		config.Size = GetUint(cmd, "size")
	}
	//
	if flags.Changed("controller-address") {
		config.ControllerAddress = GetInt(cmd, "controller-address")
	}
	//
	if flags.Changed("idle-threshold") {
		config.IdleThreshold = GetUint(cmd, "idle-threshold")
	}
	//
	if flags.Changed("status-interval") {
		config.StatusInterval = GetUint(cmd, "status-interval")
	}
	//
	if flags.Changed("poll-interval") {
		config.PollInterval, err = flags.GetDuration("poll-interval")
		exitOnError(err, 2)
	}
	//
	exitOnError(config.Validate(), 2)
	//
	return config
}

//nolint:errcheck
func init() {
	var defaults = harness.DefaultConfig()
	//
	rootCmd.AddCommand(networkCmd)
	networkCmd.Flags().String("config", "", "network configuration file (TOML)")
	networkCmd.Flags().Uint("size", defaults.Size, "number of computers in the network")
	networkCmd.Flags().Int64("controller-address", defaults.ControllerAddress, "address of the controller")
	networkCmd.Flags().Uint("idle-threshold", defaults.IdleThreshold, "quiet cycles before a computer is idle")
	networkCmd.Flags().Uint("status-interval", defaults.StatusInterval, "cycles between repeated status reports")
	networkCmd.Flags().Duration("poll-interval", defaults.PollInterval, "delay between cycles")
}
