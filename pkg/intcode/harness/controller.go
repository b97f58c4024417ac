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

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// controller supervises a network.  It captures packets sent to the controller
// address and tracks the most recent status of every worker.  When the whole
// network is idle, it wakes worker 0 by resending the last captured packet.
// Resending the same Y value on two consecutive idle breaks means the network
// has converged.
type controller struct {
	config Config
	// Inbox of worker 0
	wake *Mailbox[Packet]
	// Packets addressed to the controller
	captured *Mailbox[Packet]
	// Status reports from workers
	statuses *Mailbox[StatusReport]
	// Last known status of each worker
	views []StatusReport
	// Most recently captured packet
	last *Packet
	// Most recently sent packet
	sent *Packet
	// Number of packets captured and injected so far
	ncaptured uint64
	ninjected uint64
}

func (p *controller) run(ctx context.Context, result *NetworkResult) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		//
		for _, packet := range p.captured.Drain() {
			if p.last == nil {
				log.Debugf("controller captured first packet %s", packet)
				result.FirstCaptured = packet
			}
			//
			p.last = &packet
			p.ncaptured++
		}
		//
		for _, report := range p.statuses.Drain() {
			p.views[report.Address] = report
		}
		//
		if p.isIdle() {
			if p.last == nil {
				return ErrStalled
			} else if p.sent != nil && p.sent.Y == p.last.Y {
				log.Infof("network converged on %d", p.last.Y)
				result.Converged = p.last.Y
				//
				return nil
			}
			//
			if err := p.breakIdle(); err != nil {
				return err
			}
			//
			result.IdleBreaks++
		}
		//
		time.Sleep(p.config.PollInterval)
	}
}

// Check whether every worker is idle and every packet sent has been received.
func (p *controller) isIdle() bool {
	var sent, received = p.ninjected, p.ncaptured
	//
	for _, view := range p.views {
		if view.Status != Idle {
			return false
		}
		//
		sent += view.Sent
		received += view.Received
	}
	//
	return sent == received
}

// Wake worker 0 by resending the last captured packet, and then assume every
// worker is active until it reports otherwise.
func (p *controller) breakIdle() error {
	var packet = Packet{0, p.last.X, p.last.Y}
	//
	log.Debugf("network idle, sending %s", packet)
	//
	if err := p.wake.Send(packet); err != nil {
		return errors.Wrap(err, "controller waking network")
	}
	//
	p.sent = &packet
	p.ninjected++
	//
	for i := range p.views {
		p.views[i].Status = Active
	}
	//
	return nil
}
