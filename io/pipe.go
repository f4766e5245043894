package io

import (
	"context"
	"sync"
)

// Pipe is an unbounded, blocking hand-off queue between two goroutines.
// Receive blocks until a value is sent or the pipe's context is done, so a
// machine reading from a Pipe only pauses when it is being cancelled.
//
// A Pipe has exactly one sending and one receiving goroutine.
type Pipe struct {
	ctx   context.Context
	mutex sync.Mutex
	data  []int64
	ready chan struct{}
}

var _ Receiver = (*Pipe)(nil)
var _ Sender = (*Pipe)(nil)

// NewPipe creates a pipe whose Receive gives up when ctx is done.
func NewPipe(ctx context.Context, values ...int64) *Pipe {
	return &Pipe{
		ctx:   ctx,
		data:  append([]int64(nil), values...),
		ready: make(chan struct{}, 1),
	}
}

// Len returns the number of values waiting in the pipe.
func (p *Pipe) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.data)
}

// Receive waits for and dequeues the oldest value.
func (p *Pipe) Receive() (value int64, ok bool) {
	for {
		p.mutex.Lock()
		if len(p.data) > 0 {
			value = p.data[0]
			p.data = p.data[1:]
			p.mutex.Unlock()
			return value, true
		}
		p.mutex.Unlock()

		select {
		case <-p.ready:
		case <-p.ctx.Done():
			return
		}
	}
}

// Arity is always 1.
func (p *Pipe) Arity() int {
	return 1
}

// Send enqueues the values and wakes the receiver. It never blocks.
func (p *Pipe) Send(values []int64) (err error) {
	p.mutex.Lock()
	p.data = append(p.data, values...)
	p.mutex.Unlock()

	select {
	case p.ready <- struct{}{}:
	default:
	}

	return
}
