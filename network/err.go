package network

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrUnknownAddress = errors.New(f("unknown destination address"))
	ErrIdle           = errors.New(f("network idle with no last-resort message"))
	ErrNoNodes        = errors.New(f("no nodes"))
)

// ErrDestination is the destination address of a misrouted message.
type ErrDestination int64

func (ed ErrDestination) Error() string {
	return f("destination %v", int64(ed))
}

// ErrNode identifies the node whose machine failed.
type ErrNode struct {
	Address int
	Err     error
}

func (err *ErrNode) Error() string {
	return f("node %d: %v", err.Address, err.Err)
}

func (err *ErrNode) Unwrap() error {
	return err.Err
}
