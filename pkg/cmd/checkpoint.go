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
	"os"
	"path/filepath"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	log "github.com/sirupsen/logrus"
)

// Read a checkpoint file and restore the machine it holds, or exit if an error
// arises.  Checkpoint files with the compressed extension are decompressed
// first.
func readCheckPointFile(filename string) *machine.Machine {
	var cp = readCheckPoint(filename)
	//
	m, err := machine.Restore(cp)
	exitOnError(err, 2)
	//
	log.Debugf("restored %s at pc=%d after %d steps", cp.Fingerprint, cp.PC, cp.Steps)
	//
	return m
}

func readCheckPoint(filename string) *machine.CheckPoint {
	var cp machine.CheckPoint
	//
	bytes, err := os.ReadFile(filename)
	exitOnError(err, 2)
	//
	if filepath.Ext(filename) == program.CompressedExtension {
		bytes, err = program.Decompress(bytes)
		exitOnError(err, 2)
	}
	//
	exitOnError(cp.UnmarshalBinary(bytes), 2)
	//
	return &cp
}

// Write a checkpoint of the given machine to a file, or exit if an error
// arises.
func writeCheckPointFile(m *machine.Machine, filename string) {
	var cp = m.CheckPoint()
	//
	bytes, err := cp.MarshalBinary()
	exitOnError(err, 1)
	//
	if filepath.Ext(filename) == program.CompressedExtension {
		bytes, err = program.Compress(bytes)
		exitOnError(err, 1)
	}
	//
	exitOnError(os.WriteFile(filename, bytes, 0644), 1)
	//
	log.Infof("saved checkpoint of %s at pc=%d to %s", cp.Fingerprint, cp.PC, filename)
}
