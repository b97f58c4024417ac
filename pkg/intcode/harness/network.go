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
	"context"
	"time"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnexpectedHalt is returned when a network worker's program halts,
	// rather than waiting for more packets.
	ErrUnexpectedHalt = errors.New("worker halted unexpectedly")
	// ErrUnknownAddress is returned when a worker sends a packet to an
	// address which is neither a worker nor the controller.
	ErrUnknownAddress = errors.New("packet sent to unknown address")
	// ErrStalled is returned when the network goes idle before any packet has
	// been captured by the controller, leaving nothing to wake it with.
	ErrStalled = errors.New("network idle with no captured packet")
)

// NoInput is fed to a worker on any cycle in which no packets arrived.
const NoInput int64 = -1

// NetworkResult summarises a completed network run.
type NetworkResult struct {
	// FirstCaptured is the first packet sent to the controller address.
	FirstCaptured Packet
	// Converged is the Y value which, when the network next went idle, had
	// already been delivered to worker 0 by the previous idle break.
	Converged int64
	// IdleBreaks counts how many times the controller woke an idle network.
	IdleBreaks int
}

// Network is a fixed size pool of machines, each running the same program
// and driven by its own worker goroutine, which exchange packets with each
// other.  A controller captures packets sent to its reserved address, and
// breaks deadlock by waking worker 0 whenever the whole network goes idle.
type Network struct {
	config  Config
	program *machine.Machine
}

// NewNetwork constructs a network which will run the given program on every
// worker.
func NewNetwork(program []int64, config Config) (*Network, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	//
	return &Network{config, machine.New(program)}, nil
}

// Config returns the configuration of this network.
func (p *Network) Config() Config {
	return p.config
}

// Run boots every worker and the controller, then waits until the controller
// observes convergence (or an error occurs).  Every worker has exited by the
// time this returns.
func (p *Network) Run(ctx context.Context) (NetworkResult, error) {
	var (
		n         = p.config.Size
		inboxes   = make([]*Mailbox[Packet], n)
		captured  = NewMailbox[Packet]()
		statuses  = NewMailbox[StatusReport]()
		quit      = make(chan struct{})
		result    NetworkResult
		g, gctx   = errgroup.WithContext(ctx)
		startTime = time.Now()
	)
	//
	for i := range inboxes {
		inboxes[i] = NewMailbox[Packet]()
	}
	//
	for i := range n {
		var w = &worker{
			address:  int64(i),
			config:   p.config,
			m:        p.program.Clone(),
			inbox:    inboxes[i],
			peers:    inboxes,
			captured: captured,
			statuses: statuses,
			quit:     quit,
		}
		//
		g.Go(func() error {
			defer w.inbox.Close()
			//
			return w.run(gctx)
		})
	}
	//
	g.Go(func() error {
		var c = &controller{
			config:   p.config,
			wake:     inboxes[0],
			captured: captured,
			statuses: statuses,
			views:    make([]StatusReport, n),
		}
		// Shutdown all workers once the controller is done
		defer close(quit)
		//
		return c.run(gctx, &result)
	})
	//
	if err := g.Wait(); err != nil {
		return result, err
	}
	//
	log.Debugf("network converged on %d after %d idle breaks (%s)", result.Converged, result.IdleBreaks,
		time.Since(startTime))
	//
	return result, nil
}
