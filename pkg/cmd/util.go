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
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected signed integer flag, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array flag, or panic if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetIntArray gets an expected array of signed integers, or panic if an error
// arises.
func GetIntArray(cmd *cobra.Command, flag string) []int64 {
	r, err := cmd.Flags().GetInt64Slice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// ReadProgramFile reads a program image from a given file, or exits if an
// error arises.
func ReadProgramFile(filename string) []int64 {
	image, err := program.ReadFile(filename)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	log.Debugf("read %d words from %s", len(image), filename)
	//
	return image
}

// ApplyPatches writes any memory patches (given as "address=value") to a
// machine before it runs, or exits if a patch is malformed.
func ApplyPatches(m *machine.Machine, patches []string) {
	for _, patch := range patches {
		address, value, err := parsePatch(patch)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		m.Write(address, value)
	}
}

func parsePatch(patch string) (int64, int64, error) {
	lhs, rhs, ok := strings.Cut(patch, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid patch \"%s\" (expected address=value)", patch)
	}
	//
	address, err := strconv.ParseInt(strings.TrimSpace(lhs), 10, 64)
	if err != nil || address < 0 {
		return 0, 0, fmt.Errorf("invalid patch address \"%s\"", lhs)
	}
	//
	value, err := strconv.ParseInt(strings.TrimSpace(rhs), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid patch value \"%s\"", rhs)
	}
	//
	return address, value, nil
}

// Exit with a given status code after logging an error.
func exitOnError(err error, code int) {
	if err != nil {
		log.Error(err)
		os.Exit(code)
	}
}
