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
)

// Status of a network worker, as last reported to the controller.
type Status uint8

const (
	// Active indicates a worker has recently received or produced packets.
	Active Status = iota
	// Idle indicates a worker has neither received nor produced any packets
	// for a while.
	Idle
)

func (s Status) String() string {
	if s == Idle {
		return "idle"
	}
	//
	return "active"
}

// StatusReport is sent by a worker to the controller.  Alongside its status, a
// worker reports how many packets it has sent and received in total, which lets
// the controller distinguish a truly idle network from one with packets still
// in flight.
type StatusReport struct {
	Address  int64
	Status   Status
	Sent     uint64
	Received uint64
}

// worker drives a single machine of a network.  It is the only goroutine which
// touches that machine.
type worker struct {
	address int64
	config  Config
	m       *machine.Machine
	// Packets addressed to this worker
	inbox *Mailbox[Packet]
	// Inboxes of all workers, indexed by address
	peers []*Mailbox[Packet]
	// Packets addressed to the controller
	captured *Mailbox[Packet]
	// Status reports for the controller
	statuses *Mailbox[StatusReport]
	// Closed to instruct every worker to exit
	quit <-chan struct{}
	// Output values not yet forming a complete packet
	pending []int64
	// Current status and packet counters
	status   Status
	sent     uint64
	received uint64
}

func (p *worker) run(ctx context.Context) error {
	var idle, sinceReport uint
	//
	if err := p.boot(); err != nil {
		return err
	}
	//
	for {
		// Shutdown takes priority over everything else
		select {
		case <-p.quit:
			log.Debugf("worker %d shutting down", p.address)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		//
		active, err := p.cycle()
		if err != nil {
			return p.fail(err)
		}
		//
		if active {
			idle = 0
		} else {
			idle++
		}
		//
		status := Active
		if idle >= p.config.IdleThreshold {
			status = Idle
		}
		//
		sinceReport++
		//
		if status != p.status || sinceReport >= p.config.StatusInterval {
			if status != p.status {
				log.Debugf("worker %d now %s", p.address, status)
			}
			//
			p.status = status
			sinceReport = 0
			//
			if err := p.statuses.Send(p.report()); err != nil {
				return p.fail(err)
			}
		}
		//
		time.Sleep(p.config.PollInterval)
	}
}

// Boot the machine up to the point where it asks for its address, and then
// supply it.
func (p *worker) boot() error {
	result, err := p.m.Run()
	if err != nil {
		return errors.Wrapf(err, "worker %d", p.address)
	} else if result == machine.Halted {
		return errors.Wrapf(ErrUnexpectedHalt, "worker %d booting", p.address)
	}
	//
	log.Debugf("worker %d booted", p.address)
	//
	p.m.AddInput(p.address)
	//
	return nil
}

// Execute one cycle: feed in any packets which arrived (or NoInput), run the
// machine and route whatever it produced.  This reports whether anything was
// received or produced.
func (p *worker) cycle() (bool, error) {
	var packets = p.inbox.Drain()
	//
	if len(packets) == 0 {
		p.m.AddInput(NoInput)
	}
	//
	for _, packet := range packets {
		p.m.AddInputs(packet.X, packet.Y)
	}
	//
	p.received += uint64(len(packets))
	//
	result, err := p.m.Run()
	if err != nil {
		return false, errors.Wrapf(err, "worker %d", p.address)
	} else if result == machine.Halted {
		return false, errors.Wrapf(ErrUnexpectedHalt, "worker %d", p.address)
	}
	//
	outputs := p.m.TakeOutputs()
	p.pending = append(p.pending, outputs...)
	//
	for len(p.pending) >= 3 {
		packet := Packet{p.pending[0], p.pending[1], p.pending[2]}
		p.pending = p.pending[3:]
		//
		if err := p.route(packet); err != nil {
			return false, err
		}
	}
	//
	return len(packets) != 0 || len(outputs) != 0, nil
}

func (p *worker) route(packet Packet) error {
	var target *Mailbox[Packet]
	//
	switch {
	case packet.Address == p.config.ControllerAddress:
		target = p.captured
	case packet.Address >= 0 && packet.Address < int64(len(p.peers)):
		target = p.peers[packet.Address]
	default:
		return errors.Wrapf(ErrUnknownAddress, "worker %d sending %s", p.address, packet)
	}
	//
	if err := target.Send(packet); err != nil {
		return errors.Wrapf(err, "worker %d sending %s", p.address, packet)
	}
	//
	p.sent++
	//
	return nil
}

func (p *worker) report() StatusReport {
	return StatusReport{p.address, p.status, p.sent, p.received}
}

// A failure to communicate with another worker is expected once the network is
// shutting down, in which case it is ignored.
func (p *worker) fail(err error) error {
	select {
	case <-p.quit:
		if errors.Is(err, ErrMailboxClosed) {
			return nil
		}
	default:
	}
	//
	return err
}
