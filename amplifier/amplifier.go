// Package amplifier chains Intcode machines into a feedback ring.
//
// Machine i's output becomes machine (i+1) mod N's next input. Each machine
// is first given its phase, then a signal is fed to machine 0 and carried
// around the ring until every machine has halted. The last output of the
// last machine is the ring's result.
//
// Two schedulers produce identical results: Run interleaves the machines on
// the calling goroutine using pause and resume, and RunParallel gives each
// machine its own goroutine connected by blocking pipes.
package amplifier

import (
	"context"
	"errors"
	"log"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

// Pipeline is a feedback ring of machines all running the same image.
type Pipeline struct {
	Verbose  bool          // If set, enables verbose logging.
	Parallel bool          // If set, Search uses RunParallel.
	Image    intcode.Image // Program run by every amplifier.
}

// NewPipeline creates a pipeline for the image.
func NewPipeline(image intcode.Image) (p *Pipeline) {
	p = &Pipeline{
		Image: image,
	}

	return
}

func (p *Pipeline) machines(count int) (amps []*intcode.Machine) {
	amps = make([]*intcode.Machine, count)
	for n := range amps {
		amps[n] = intcode.NewMachine(p.Image)
	}
	return
}

// Run computes the ring's output for the phases and initial signal,
// scheduling the amplifiers round-robin on the calling goroutine.
func (p *Pipeline) Run(phases []int64, signal int64) (output int64, err error) {
	if len(phases) == 0 {
		err = ErrNoAmplifiers
		return
	}

	if p.Verbose {
		log.Printf("amplifier: run phases %v signal %d", phases, signal)
	}

	amps := p.machines(len(phases))
	for n, amp := range amps {
		amp.Resume(phases[n])
		_, err = amp.Run()
		if err != nil {
			err = &ErrAmplifier{Index: n, Err: err}
			return
		}
	}

	value := signal
	for round := 0; ; round++ {
		for n, amp := range amps {
			amp.Resume(value)
			_, err = amp.Run()
			if err != nil {
				err = &ErrAmplifier{Index: n, Err: err}
				return
			}
			var ok bool
			value, ok = amp.LastOutput()
			if !ok {
				err = &ErrAmplifier{Index: n, Err: ErrNoOutput}
				return
			}
		}

		if p.Verbose {
			log.Printf("amplifier: round %d signal %d", round, value)
		}

		if !slices.ContainsFunc(amps, func(amp *intcode.Machine) bool {
			return amp.State() != intcode.STATE_HALTED
		}) {
			break
		}
	}

	output = value
	return
}

// RunParallel computes the same result as Run with one goroutine per
// amplifier. The first amplifier to fail cancels the rest. If the ring
// deadlocks, RunParallel waits until ctx is done.
func (p *Pipeline) RunParallel(ctx context.Context, phases []int64, signal int64) (output int64, err error) {
	if len(phases) == 0 {
		err = ErrNoAmplifiers
		return
	}

	if p.Verbose {
		log.Printf("amplifier: run parallel phases %v signal %d", phases, signal)
	}

	g, ctx := errgroup.WithContext(ctx)

	count := len(phases)
	pipes := make([]*io.Pipe, count)
	for n, phase := range phases {
		pipes[n] = io.NewPipe(ctx, phase)
	}
	pipes[0].Send([]int64{signal})

	amps := p.machines(count)
	for n, amp := range amps {
		amp.Input = pipes[n]
		amp.Output = pipes[(n+1)%count]
		g.Go(func() error {
			state, err := amp.Run()
			if err != nil {
				return &ErrAmplifier{Index: n, Err: err}
			}
			if state != intcode.STATE_HALTED {
				return &ErrAmplifier{Index: n, Err: errors.Join(ErrStalled, ctx.Err())}
			}
			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return
	}

	output, ok := amps[count-1].LastOutput()
	if !ok {
		err = &ErrAmplifier{Index: count - 1, Err: ErrNoOutput}
	}

	return
}

func (p *Pipeline) run(ctx context.Context, phases []int64, signal int64) (int64, error) {
	if p.Parallel {
		return p.RunParallel(ctx, phases, signal)
	}
	return p.Run(phases, signal)
}

// Search tries every ordering of the phases and returns the ordering that
// gives the largest output. Ties keep the first ordering found.
func (p *Pipeline) Search(ctx context.Context, phases []int64, signal int64) (best []int64, output int64, err error) {
	if len(phases) == 0 {
		err = ErrNoAmplifiers
		return
	}

	for perm := range internal.Permutations(phases) {
		err = ctx.Err()
		if err != nil {
			return
		}

		var value int64
		value, err = p.run(ctx, perm, signal)
		if err != nil {
			return
		}

		if best == nil || value > output {
			best = slices.Clone(perm)
			output = value
		}
	}

	if p.Verbose {
		log.Printf("amplifier: best phases %v output %d", best, output)
	}

	return
}
