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
package queue

// Queue represents a reusable FIFO queue which is implemented using an array.
// Items are appended at the back and removed from the front.  Removed slots at
// the front are reclaimed lazily, once they make up at least half of the
// backing array.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// IsEmpty checks whether or not there are still items in the queue
func (p *Queue[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items in the queue.
func (p *Queue[T]) Len() uint {
	return uint(len(p.items) - p.head)
}

// Peek at nth item from the front of the queue.
func (p *Queue[T]) Peek(offset uint) T {
	var n = p.head + int(offset)
	//
	if n >= len(p.items) {
		panic("peek out-of-bounds")
	}
	//
	return p.items[n]
}

// Push a new item onto the back of the queue
func (p *Queue[T]) Push(item T) {
	p.items = append(p.items, item)
}

// PushAll pushes zero or more items onto the back of the queue, in order.
func (p *Queue[T]) PushAll(items []T) {
	p.items = append(p.items, items...)
}

// Pop the front item off the queue
func (p *Queue[T]) Pop() T {
	var zero T
	//
	if p.IsEmpty() {
		panic("cannot pop from empty queue")
	}
	// Get front item
	item := p.items[p.head]
	// Release reference held by the backing array
	p.items[p.head] = zero
	p.head++
	// Compact once the dead prefix dominates
	if p.head*2 >= len(p.items) {
		n := copy(p.items, p.items[p.head:])
		p.items = p.items[:n]
		p.head = 0
	}
	//
	return item
}

// Drain removes all items from the queue, returning them in order.
func (p *Queue[T]) Drain() []T {
	var items = make([]T, p.Len())
	//
	copy(items, p.items[p.head:])
	p.Clear()
	//
	return items
}

// Items returns the items currently held, front first.  The returned slice
// must not be modified.
func (p *Queue[T]) Items() []T {
	return p.items[p.head:]
}

// Clear removes all items from the queue.
func (p *Queue[T]) Clear() {
	p.items = nil
	p.head = 0
}

// Clone returns an independent copy of this queue.
func (p *Queue[T]) Clone() *Queue[T] {
	var items = make([]T, p.Len())
	//
	copy(items, p.items[p.head:])
	//
	return &Queue[T]{items, 0}
}
