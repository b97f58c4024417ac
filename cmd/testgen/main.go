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
package main

import (
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-intcode/pkg/intcode/program"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("size", 50, "number of computers (ring only)")
	rootCmd.Flags().Uint("hops", 100, "number of hops before converging (ring only)")
	rootCmd.Flags().Int64("limit", 3, "value at which reports saturate (saturate only)")
	rootCmd.Flags().String("dir", "testdata", "directory to write programs into")
	rootCmd.Flags().Bool("compress", false, "write compressed programs")
}

// Sample describes a program which can be generated.
type Sample struct {
	Name     string
	Generate func(cmd *cobra.Command) []int64
}

var samples = []Sample{
	{"quine", func(*cobra.Command) []int64 { return program.Quine() }},
	{"echo", func(*cobra.Command) []int64 { return program.Echo() }},
	{"ring", func(cmd *cobra.Command) []int64 {
		size := getUint(cmd, "size")
		hops := getUint(cmd, "hops")
		//
		return program.Ring(int64(size), int64(hops))
	}},
	{"saturate", func(cmd *cobra.Command) []int64 { return program.Saturate(getInt(cmd, "limit")) }},
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [flags] sample...",
	Short: "Test program generation utility for intcode.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			dir       = getString(cmd, "dir")
			extension = ".txt"
		)
		//
		if getFlag(cmd, "compress") {
			extension += program.CompressedExtension
		}
		//
		for _, name := range args {
			sample := findSample(name)
			filename := path.Join(dir, sample.Name+extension)
			//
			if err := program.WriteFile(filename, sample.Generate(cmd)); err != nil {
				log.Error(err)
				os.Exit(2)
			}
			//
			log.Infof("wrote %s", filename)
		}
	},
}

func findSample(name string) Sample {
	for _, s := range samples {
		if s.Name == name {
			return s
		}
	}
	//
	fmt.Printf("unknown sample \"%s\"\n", name)
	os.Exit(2)
	// unreachable
	return Sample{}
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

func getInt(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}
