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
	"fmt"
	"sync"

	"github.com/consensys/go-intcode/pkg/util/collection/queue"
	"github.com/pkg/errors"
)

// ErrMailboxClosed is returned when sending to a mailbox whose owner has
// already exited.
var ErrMailboxClosed = errors.New("mailbox closed")

// Packet is an address-tagged pair of values routed between the workers of a
// network, or to its controller.
type Packet struct {
	Address int64
	X       int64
	Y       int64
}

func (p Packet) String() string {
	return fmt.Sprintf("%d:(%d,%d)", p.Address, p.X, p.Y)
}

// Mailbox is an unbounded multi-producer, single-consumer queue.  Senders never
// block, and the owner drains everything queued so far without blocking.
// Messages from any one sender are drained in the order they were sent.
type Mailbox[T any] struct {
	mux    sync.Mutex
	items  *queue.Queue[T]
	closed bool
}

// NewMailbox constructs an empty, open mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{items: queue.NewQueue[T]()}
}

// Send a message to this mailbox, or fail with ErrMailboxClosed if its owner
// has exited.
func (p *Mailbox[T]) Send(item T) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	if p.closed {
		return ErrMailboxClosed
	}
	//
	p.items.Push(item)
	//
	return nil
}

// Drain removes and returns all queued messages, oldest first.
func (p *Mailbox[T]) Drain() []T {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	return p.items.Drain()
}

// Close this mailbox, discarding anything still queued.  Subsequent sends fail.
func (p *Mailbox[T]) Close() {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	p.closed = true
	p.items.Clear()
}
