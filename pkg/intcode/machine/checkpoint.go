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
package machine

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/util/collection/queue"
	"github.com/fxamacker/cbor/v2"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// ErrFingerprintMismatch is returned when restoring a checkpoint against an
// image other than the one it was captured from.
var ErrFingerprintMismatch = errors.New("checkpoint fingerprint mismatch")

// FingerprintSize is the number of bytes in an image fingerprint.
const FingerprintSize = 32

// Fingerprint identifies a program image by hashing its words.
type Fingerprint [FingerprintSize]byte

// FingerprintOf computes the fingerprint of a given program image.  Each word is
// hashed in little-endian order.
func FingerprintOf(image []int64) Fingerprint {
	var (
		hasher = blake3.New()
		word   [8]byte
	)
	//
	for _, w := range image {
		binary.LittleEndian.PutUint64(word[:], uint64(w))
		// Writing to a hasher never fails
		_, _ = hasher.Write(word[:])
	}
	//
	var fp Fingerprint
	//
	copy(fp[:], hasher.Sum(nil))
	//
	return fp
}

// ParseFingerprint parses a base58-encoded fingerprint.
func ParseFingerprint(s string) (Fingerprint, error) {
	var fp Fingerprint
	//
	data, err := base58.Decode(s)
	if err != nil {
		return fp, errors.Wrap(err, "base58 decode")
	} else if len(data) != FingerprintSize {
		return fp, errors.Errorf("invalid fingerprint length (%d bytes)", len(data))
	}
	//
	copy(fp[:], data)
	//
	return fp, nil
}

// String returns the base58-encoded representation.
func (fp Fingerprint) String() string {
	return base58.Encode(fp[:])
}

// CheckPoint captures the complete state of a suspended machine, such that
// execution can be continued later from exactly this position.  Memory is
// stored as the dense prefix it was loaded with, plus the sparse set of words
// written beyond it.
type CheckPoint struct {
	Fingerprint  Fingerprint     `cbor:"1,keyasint"`
	PC           int64           `cbor:"2,keyasint"`
	RelativeBase int64           `cbor:"3,keyasint"`
	Halted       bool            `cbor:"4,keyasint,omitempty"`
	Steps        uint64          `cbor:"5,keyasint"`
	Image        []int64         `cbor:"6,keyasint"`
	Prefix       []int64         `cbor:"7,keyasint"`
	Overlay      map[int64]int64 `cbor:"8,keyasint,omitempty"`
	Inputs       []int64         `cbor:"9,keyasint,omitempty"`
	Outputs      []int64         `cbor:"10,keyasint,omitempty"`
}

// checkPoint has the fields of CheckPoint but none of its methods, such that
// the codec does not dispatch back into MarshalBinary or UnmarshalBinary.
type checkPoint CheckPoint

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("machine: failed to create CBOR enc mode: %v", err))
	}
	//
	cborEncMode = em
}

// CheckPoint captures the current state of this machine.
func (p *Machine) CheckPoint() *CheckPoint {
	return &CheckPoint{
		Fingerprint:  FingerprintOf(p.image),
		PC:           p.pc,
		RelativeBase: p.base,
		Halted:       p.halted,
		Steps:        p.steps,
		Image:        slices.Clone(p.image),
		Prefix:       slices.Clone(p.mem.Prefix()),
		Overlay:      p.mem.Overlay(),
		Inputs:       slices.Clone(p.inputs.Items()),
		Outputs:      slices.Clone(p.outputs),
	}
}

// Restore constructs a machine from a given checkpoint, such that running it
// continues exactly where the captured machine left off.  The checkpoint's
// fingerprint must match its image, and every address it holds must be
// non-negative.
func Restore(cp *CheckPoint) (*Machine, error) {
	if actual := FingerprintOf(cp.Image); actual != cp.Fingerprint {
		return nil, errors.Wrapf(ErrFingerprintMismatch, "expected %s, found %s", cp.Fingerprint, actual)
	} else if cp.PC < 0 {
		return nil, errors.Wrapf(memory.ErrNegativeAddress, "checkpoint pc=%d", cp.PC)
	}
	//
	for address := range cp.Overlay {
		if address < 0 {
			return nil, errors.Wrapf(memory.ErrNegativeAddress, "checkpoint overlay address %d", address)
		}
	}
	//
	var inputs = queue.NewQueue[int64]()
	//
	inputs.PushAll(cp.Inputs)
	//
	return &Machine{
		image:   slices.Clone(cp.Image),
		mem:     memory.NewSparseFrom(cp.Prefix, cp.Overlay),
		pc:      cp.PC,
		base:    cp.RelativeBase,
		inputs:  inputs,
		outputs: slices.Clone(cp.Outputs),
		halted:  cp.Halted,
		steps:   cp.Steps,
	}, nil
}

// MarshalBinary encodes this checkpoint in canonical CBOR.
func (cp *CheckPoint) MarshalBinary() ([]byte, error) {
	return cborEncMode.Marshal((*checkPoint)(cp))
}

// UnmarshalBinary decodes a checkpoint previously encoded with MarshalBinary.
func (cp *CheckPoint) UnmarshalBinary(data []byte) error {
	if err := cbor.Unmarshal(data, (*checkPoint)(cp)); err != nil {
		return errors.Wrap(err, "unmarshal checkpoint")
	}
	//
	return nil
}
