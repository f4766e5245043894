package amplifier

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoAmplifiers = errors.New(f("no amplifiers"))
	ErrNoOutput     = errors.New(f("amplifier produced no output"))
	ErrStalled      = errors.New(f("amplifier stopped before halting"))
)

// ErrAmplifier identifies the amplifier in the ring that failed.
type ErrAmplifier struct {
	Index int
	Err   error
}

func (err *ErrAmplifier) Error() string {
	return f("amplifier %d: %v", err.Index, err.Err)
}

func (err *ErrAmplifier) Unwrap() error {
	return err.Err
}
