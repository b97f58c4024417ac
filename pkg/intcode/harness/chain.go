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
package harness

import (
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/pkg/errors"
)

var (
	// ErrNoOutput is returned when a stage of a pipeline finishes without
	// producing any value to pass on.
	ErrNoOutput = errors.New("stage produced no output")
	// ErrStageSuspended is returned when a stage of a chain asks for more input
	// than its phase and signal, rather than halting.
	ErrStageSuspended = errors.New("stage awaiting input")
)

// Chain runs the given program once per phase, in sequence.  Each stage is fed
// its phase followed by the signal produced by the previous stage (or the seed,
// for the first stage), and the last value output by the final stage is
// returned.  Every stage must halt.  A single machine is reinitialised for
// every stage.
func Chain(program []int64, phases []int64, seed int64) (int64, error) {
	var (
		m      = machine.New(program)
		signal = seed
	)
	//
	for i, phase := range phases {
		m.Reinitialize(program)
		m.AddInputs(phase, signal)
		//
		if result, err := m.Run(); err != nil {
			return 0, errors.Wrapf(err, "stage %d", i)
		} else if result != machine.Halted {
			return 0, errors.Wrapf(ErrStageSuspended, "stage %d at pc=%d", i, m.PC())
		}
		//
		output, ok := m.TakeLastOutput()
		if !ok {
			return 0, errors.Wrapf(ErrNoOutput, "stage %d", i)
		}
		//
		signal = output
	}
	//
	return signal, nil
}
