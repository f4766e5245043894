// Package io provides the input and output ports of an Intcode machine.
// It includes pull sources (Queue, Chain, Tape, Pipe), push sinks
// (Queue, Recorder, Tape, Pipe) and function adapters for both, including
// sinks that group several consecutive outputs into one event.
package io

// Receiver is the pull contract of a machine's input port.
type Receiver interface {
	// Receive returns the next input value, or ok == false when none is
	// currently available.
	Receive() (value int64, ok bool)
}

// Sender is the push contract of a machine's output port.
type Sender interface {
	// Arity is the number of consecutive outputs grouped into one Send.
	Arity() int
	// Send accepts one group of Arity() values. The slice is only valid
	// for the duration of the call.
	Send(values []int64) error
}

// ReceiveFunc adapts a function to a Receiver.
type ReceiveFunc func() (value int64, ok bool)

var _ Receiver = ReceiveFunc(nil)

// Receive calls the function.
func (fn ReceiveFunc) Receive() (value int64, ok bool) {
	return fn()
}

// SendFunc adapts a single-value function to a Sender.
type SendFunc func(value int64) error

var _ Sender = SendFunc(nil)

// Arity is always 1.
func (fn SendFunc) Arity() int {
	return 1
}

// Send calls the function with the single value.
func (fn SendFunc) Send(values []int64) error {
	return fn(values[0])
}

// Batch is a Sender that groups N consecutive outputs into one call of Func,
// e.g. a (x, y, tile) draw event sent as three scalar outputs.
type Batch struct {
	N    int
	Func func(values []int64) error
}

var _ Sender = Batch{}

// Arity returns N, or 1 if N is not positive.
func (b Batch) Arity() int {
	return max(b.N, 1)
}

// Send calls Func with the group.
func (b Batch) Send(values []int64) error {
	return b.Func(values)
}

// Chain is a Receiver that drains each receiver in turn.
type Chain []Receiver

var _ Receiver = Chain(nil)

// Receive returns the first value available from the receivers, in order.
func (ch Chain) Receive() (value int64, ok bool) {
	for _, rc := range ch {
		if rc == nil {
			continue
		}
		value, ok = rc.Receive()
		if ok {
			return
		}
	}

	return
}
