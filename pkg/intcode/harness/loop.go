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

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrBrokenLink is returned when a stage of a feedback loop cannot pass on its
// output, or receive its next input, because its neighbour finished early.
var ErrBrokenLink = errors.New("broken link in feedback loop")

// FeedbackLoop runs one copy of the given program per phase, connected in a
// ring so that each stage's output becomes the next stage's input (and the
// last stage feeds the first).  Every stage is driven by its own goroutine.
// Each stage first receives its phase, whilst the seed is delivered to the
// first stage to start things going.  The loop ends when the stages halt, and
// the last value output by the final stage is returned.
func FeedbackLoop(ctx context.Context, program []int64, phases []int64, seed int64) (int64, error) {
	var (
		n         = len(phases)
		links     = make([]chan int64, n)
		done      = make([]chan struct{}, n)
		finals    = make([]int64, n)
		prototype = machine.New(program)
	)
	//
	if n == 0 {
		return seed, nil
	}
	//
	for i := range n {
		links[i] = make(chan int64, 1)
		done[i] = make(chan struct{})
	}
	// Get things going
	links[0] <- seed
	//
	g, gctx := errgroup.WithContext(ctx)
	//
	for i, phase := range phases {
		var s = &stage{
			index: i,
			m:     prototype.Clone(),
			in:    links[i],
			out:   links[(i+1)%n],
			prev:  done[(i+n-1)%n],
			next:  done[(i+1)%n],
		}
		//
		s.m.AddInput(phase)
		//
		g.Go(func() error {
			defer close(done[i])
			//
			final, err := s.run(gctx)
			finals[i] = final
			//
			return err
		})
	}
	//
	if err := g.Wait(); err != nil {
		return 0, err
	}
	//
	return finals[n-1], nil
}

// stage of a feedback loop, linked to its neighbours.
type stage struct {
	index int
	m     *machine.Machine
	// Links to and from neighbours
	in  <-chan int64
	out chan<- int64
	// Closed when the corresponding neighbour finishes
	prev <-chan struct{}
	next <-chan struct{}
}

func (p *stage) run(ctx context.Context) (int64, error) {
	for {
		input, err := p.receive(ctx)
		if err != nil {
			return 0, err
		}
		//
		p.m.AddInput(input)
		//
		result, err := p.m.Run()
		if err != nil {
			return 0, errors.Wrapf(err, "stage %d", p.index)
		}
		//
		outputs := p.m.Outputs()
		if len(outputs) == 0 {
			return 0, errors.Wrapf(ErrNoOutput, "stage %d", p.index)
		}
		//
		last := outputs[len(outputs)-1]
		//
		if err := p.send(ctx, last, result == machine.Halted); err != nil {
			return 0, err
		}
		//
		if result == machine.Halted {
			log.Debugf("stage %d halted with %d", p.index, last)
			return last, nil
		}
	}
}

func (p *stage) receive(ctx context.Context) (int64, error) {
	select {
	case v := <-p.in:
		return v, nil
	case <-p.prev:
		// A final value may still be in flight
		select {
		case v := <-p.in:
			return v, nil
		default:
			return 0, errors.Wrapf(ErrBrokenLink, "stage %d awaiting input", p.index)
		}
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Send a value to the next stage.  Once this stage has halted, it is expected
// that the next stage may have finished already.
func (p *stage) send(ctx context.Context, value int64, halted bool) error {
	select {
	case p.out <- value:
		return nil
	case <-p.next:
		if halted {
			return nil
		}
		//
		return errors.Wrapf(ErrBrokenLink, "stage %d sending %d", p.index, value)
	case <-ctx.Done():
		return ctx.Err()
	}
}
