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
package memory

import "github.com/pkg/errors"

// ErrNegativeAddress signals an attempt to access a location below address
// zero.  This can only arise from malformed relative-mode arithmetic in a
// loaded program, and is always fatal for the machine concerned.
var ErrNegativeAddress = errors.New("negative memory address")

// ReadOnlyMemory represents a form of memory that can be read but not
// written.  This is the view given to the instruction decoder, which never
// modifies the program it is decoding.
type ReadOnlyMemory interface {
	// Read the word held at a given address.  Reading a location which has
	// never been written returns zero.
	Read(address int64) int64
}

// Memory represents (in many ways) the simplest form of memory which can be
// read or written without restrictions.  Initially, all locations beyond the
// loaded image can be considered to hold zero.  Thus, reading a location which
// has not yet been written will return zero; otherwise, it will return the last
// value written.  The size of the memory expands transparently as it is
// written.
type Memory interface {
	ReadOnlyMemory
	// Write a given word to a given address, overwriting the previous value
	// stored at that address.
	Write(address int64, value int64)
	// Len returns one past the highest address holding a value (either from
	// the initial image, or because it was written).
	Len() int64
	// Contents returns the contents of this memory as a dense sequence of
	// words, from address zero up to Len().
	Contents() []int64
}

// check an address is valid, panicking otherwise.  Panics raised here are
// recovered by the machine run loop and reported as errors.
func check(address int64) {
	if address < 0 {
		panic(errors.Wrapf(ErrNegativeAddress, "address %d", address))
	}
}
