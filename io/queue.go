package io

// Queue is an unbounded FIFO of values. It is both a Receiver, yielding
// values in the order they were pushed, and an arity-1 Sender.
type Queue struct {
	Data []int64
}

var _ Receiver = (*Queue)(nil)
var _ Sender = (*Queue)(nil)

// NewQueue creates a queue holding the given values.
func NewQueue(values ...int64) *Queue {
	return &Queue{Data: append([]int64(nil), values...)}
}

// Reset empties the queue.
func (q *Queue) Reset() {
	q.Data = nil
}

// Len returns the number of queued values.
func (q *Queue) Len() int {
	return len(q.Data)
}

// Push appends values to the queue.
func (q *Queue) Push(values ...int64) {
	q.Data = append(q.Data, values...)
}

// Receive dequeues the oldest value.
func (q *Queue) Receive() (value int64, ok bool) {
	if len(q.Data) > 0 {
		ok = true
		value = q.Data[0]
		q.Data = q.Data[1:]
	}
	return
}

// Arity is always 1.
func (q *Queue) Arity() int {
	return 1
}

// Send pushes the values.
func (q *Queue) Send(values []int64) (err error) {
	q.Push(values...)
	return
}
