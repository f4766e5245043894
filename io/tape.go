package io

import (
	"io"
	"strconv"
)

// ASCII_MAX is the largest output value a Tape writes as a character.
const ASCII_MAX = 127

// Tape adapts a machine to a text stream. Input bytes from Input become input
// values. Output values in 0..ASCII_MAX are written to Output as bytes; any
// other value is written as a decimal line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt string // Written to Output before reading each new input line.

	midLine bool
}

var _ Receiver = (*Tape)(nil)
var _ Sender = (*Tape)(nil)

// Receive reads the next byte of input. It reports no value at end of input,
// on a read error, or when the prompt cannot be written.
func (tc *Tape) Receive() (value int64, ok bool) {
	if tc.Input == nil {
		return
	}

	if !tc.midLine && len(tc.Prompt) != 0 && tc.Output != nil {
		_, err := io.WriteString(tc.Output, tc.Prompt)
		if err != nil {
			return
		}
	}

	var one [1]byte
	n, err := tc.Input.Read(one[:])
	for n == 0 && err == nil {
		n, err = tc.Input.Read(one[:])
	}
	if n == 0 {
		return
	}

	tc.midLine = one[0] != '\n'

	return int64(one[0]), true
}

// Arity is always 1.
func (tc *Tape) Arity() int {
	return 1
}

// Send writes each value as a character or a decimal line.
func (tc *Tape) Send(values []int64) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	for _, value := range values {
		if value >= 0 && value <= ASCII_MAX {
			_, err = tc.Output.Write([]byte{byte(value)})
		} else {
			_, err = io.WriteString(tc.Output, strconv.FormatInt(value, 10)+"\n")
		}
		if err != nil {
			return
		}
	}

	return
}
