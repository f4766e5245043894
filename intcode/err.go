package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrNegativeAddress = errors.New(f("negative address"))
	ErrAddressLimit    = errors.New(f("address beyond memory limit"))

	// Instruction decode errors
	ErrIllegalOpcode    = errors.New(f("illegal opcode"))
	ErrIllegalMode      = errors.New(f("illegal parameter mode"))
	ErrIllegalWriteMode = errors.New(f("immediate mode write"))

	// Execution errors
	ErrHalted = errors.New(f("machine halted"))
	ErrOutput = errors.New(f("output rejected"))
)

// ErrParameter identifies the 1-indexed parameter involved in an error.
type ErrParameter int

func (ep ErrParameter) Error() string {
	return f("parameter %d", int(ep))
}

// ErrFault records the instruction that caused a machine to fault.
type ErrFault struct {
	Ip   int64 // Instruction pointer of the failing instruction.
	Word int64 // Instruction word at Ip.
	Err  error
}

func (err *ErrFault) Error() string {
	return f("ip %v word %v: %v", err.Ip, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
