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

import (
	"maps"
	"slices"
)

// Sparse is the memory used by an Intcode machine.  It consists of a dense
// prefix, initially holding the loaded program image, plus a sparse overlay
// which holds any location written beyond the end of that prefix.  Programs
// typically use a handful of scratch cells far beyond their image, hence the
// overlay avoids allocating the gap in between.
type Sparse struct {
	prefix  []int64
	overlay map[int64]int64
	// One past the highest address written into the overlay
	limit int64
}

// NewSparse constructs a memory whose initial contents are a copy of the given
// image.  The image itself is never modified.
func NewSparse(image []int64) *Sparse {
	return &Sparse{slices.Clone(image), nil, int64(len(image))}
}

// NewSparseFrom reconstructs a memory from a dense prefix and an overlay, as
// produced by Prefix() and Overlay().  Both are copied.
func NewSparseFrom(prefix []int64, overlay map[int64]int64) *Sparse {
	var mem = NewSparse(prefix)
	//
	for addr, val := range overlay {
		mem.Write(addr, val)
	}
	//
	return mem
}

// Read implementation for the ReadOnlyMemory interface.
func (p *Sparse) Read(address int64) int64 {
	check(address)
	//
	if address < int64(len(p.prefix)) {
		return p.prefix[address]
	}
	// Missing entries read as zero
	return p.overlay[address]
}

// Write implementation for the Memory interface.
func (p *Sparse) Write(address int64, value int64) {
	check(address)
	//
	if address < int64(len(p.prefix)) {
		p.prefix[address] = value
		return
	} else if p.overlay == nil {
		p.overlay = make(map[int64]int64)
	}
	//
	p.overlay[address] = value
	p.limit = max(p.limit, address+1)
}

// Len implementation for the Memory interface.
func (p *Sparse) Len() int64 {
	return p.limit
}

// Contents implementation for the Memory interface.  Observe that this
// allocates the full dense range, which may be large when a program writes far
// beyond its image.
func (p *Sparse) Contents() []int64 {
	var words = make([]int64, p.limit)
	//
	copy(words, p.prefix)
	//
	for addr, val := range p.overlay {
		words[addr] = val
	}
	//
	return words
}

// Prefix returns the dense part of this memory.  The returned slice must not
// be modified.
func (p *Sparse) Prefix() []int64 {
	return p.prefix
}

// Overlay returns a copy of the sparse part of this memory.
func (p *Sparse) Overlay() map[int64]int64 {
	return maps.Clone(p.overlay)
}

// Clone returns an independent deep copy of this memory.
func (p *Sparse) Clone() *Sparse {
	return &Sparse{slices.Clone(p.prefix), maps.Clone(p.overlay), p.limit}
}
